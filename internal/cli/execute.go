package cli

import (
	"bytes"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a command with the given arguments and returns its
// combined output. Used by command tests.
func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(root, args...)
	return output, err
}

// ExecuteCommandC runs a command and returns the resolved subcommand, its
// combined output, and any error
func ExecuteCommandC(root *cobra.Command, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err = root.ExecuteC()

	return c, buf.String(), err
}
