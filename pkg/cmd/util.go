package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/ui"
	"github.com/urfave/cli/v3"
)

// printer returns a ui.Printer writing to the command's output. Colours are
// used only when the output is a terminal and --no-color wasn't passed.
func printer(cmd *cli.Command) *ui.Printer {
	w := writer(cmd)

	color := !cmd.Bool("no-color")
	if f, ok := w.(*os.File); !ok || !ui.IsTerminal(f) {
		color = false
	}

	return ui.New(w, color)
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// manifestArg returns the single manifest path argument.
func manifestArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one manifest path argument is required")
	}

	return cmd.Args().First(), nil
}
