package cinedex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cinedex/cinedex"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", cinedex.ErrorCode(nil))
	assert.Equal(t, cinedex.ENOTFOUND, cinedex.ErrorCode(cinedex.Errorf(cinedex.ENOTFOUND, "missing")))
	assert.Equal(t, cinedex.EINTERNAL, cinedex.ErrorCode(errors.New("plain")))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("searching: %w", cinedex.Errorf(cinedex.ENOTFOUND, "index file missing"))
	assert.Equal(t, cinedex.ENOTFOUND, cinedex.ErrorCode(err))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", cinedex.ErrorMessage(nil))
	assert.Equal(t, "index file missing", cinedex.ErrorMessage(cinedex.Errorf(cinedex.ENOTFOUND, "index file missing")))
	assert.Equal(t, "Internal error.", cinedex.ErrorMessage(errors.New("plain")))
}
