package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const exitCodeFailure = 1

// fail reports err on the error writer of the app and ends the invocation with a non-zero exit code
func fail(c *cli.Context, prefix string, err error) error {
	if err != nil {
		fmt.Fprintln(c.App.ErrWriter, prefix, err)
	} else {
		fmt.Fprintln(c.App.ErrWriter, prefix)
	}
	return cli.Exit("", exitCodeFailure)
}
