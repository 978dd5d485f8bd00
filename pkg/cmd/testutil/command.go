package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command under a throwaway root command. input is fed
// to the command as operator input and everything written to the root's
// output is returned.
func RunCommand(t *testing.T, command *cli.Command, input string, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, input, args...)
}

// RunCommandWithContext is RunCommand with a custom context.
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "test",
		Reader:   strings.NewReader(input),
		Writer:   &out,
		Commands: []*cli.Command{command},
	}

	fullArgs := append([]string{"test", command.Name}, args...)
	err := app.Run(ctx, fullArgs)

	return out.String(), err
}
