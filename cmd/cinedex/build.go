package main

import "fmt"

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := deps.Builder.Build(deps.Ctx); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Index ready at %s\n", deps.Config.IndexPath)
	return nil
}
