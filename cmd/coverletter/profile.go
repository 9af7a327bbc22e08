package main

import "fmt"

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	if c.JSON {
		return writeJSON(deps, deps.Profile)
	}
	fmt.Fprint(deps.Stdout, deps.Profile.Text())
	return nil
}
