// Package toml loads cinedex configuration from TOML files.
// Durations are written as strings ("15s", "500ms"); unset fields keep
// their defaults.
package toml

import (
	"fmt"
	"os"
	"time"

	"github.com/cinedex/cinedex"
	"github.com/pelletier/go-toml/v2"
)

type fileConfig struct {
	URLTemplate string `toml:"url_template"`
	Start       int    `toml:"start"`
	End         int    `toml:"end"`
	CacheDir    string `toml:"cache_dir"`
	IndexPath   string `toml:"index_path"`

	Fetch struct {
		Timeout           string  `toml:"timeout"`
		Attempts          int     `toml:"attempts"`
		Backoff           string  `toml:"backoff"`
		TransportRetries  int     `toml:"transport_retries"`
		UserAgent         string  `toml:"user_agent"`
		RequestsPerSecond float64 `toml:"requests_per_second"`
	} `toml:"fetch"`

	Check struct {
		SettleDelay string `toml:"settle_delay"`
		PageDelay   string `toml:"page_delay"`
	} `toml:"check"`
}

// Load reads the TOML file at path and returns a Config with defaults
// applied for anything the file leaves unset.
func Load(path string) (cinedex.Config, error) {
	cfg := cinedex.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.URLTemplate != "" {
		cfg.URLTemplate = fc.URLTemplate
	}
	if fc.Start != 0 {
		cfg.Start = fc.Start
	}
	if fc.End != 0 {
		cfg.End = fc.End
	}
	if fc.CacheDir != "" {
		cfg.CacheDir = fc.CacheDir
	}
	if fc.IndexPath != "" {
		cfg.IndexPath = fc.IndexPath
	}
	if fc.Fetch.Attempts != 0 {
		cfg.FetchAttempts = fc.Fetch.Attempts
	}
	if fc.Fetch.TransportRetries != 0 {
		cfg.TransportRetries = fc.Fetch.TransportRetries
	}
	if fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if fc.Fetch.RequestsPerSecond != 0 {
		cfg.RequestsPerSecond = fc.Fetch.RequestsPerSecond
	}

	if err := setDuration(&cfg.FetchTimeout, fc.Fetch.Timeout, "fetch.timeout"); err != nil {
		return cfg, err
	}
	if err := setDuration(&cfg.BackoffBase, fc.Fetch.Backoff, "fetch.backoff"); err != nil {
		return cfg, err
	}
	if err := setDuration(&cfg.SettleDelay, fc.Check.SettleDelay, "check.settle_delay"); err != nil {
		return cfg, err
	}
	if err := setDuration(&cfg.PageDelay, fc.Check.PageDelay, "check.page_delay"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func setDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return cinedex.Errorf(cinedex.EINVALID, "invalid duration %q for %s", raw, field)
	}
	*dst = d
	return nil
}
