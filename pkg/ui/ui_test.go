package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/steward/pkg/ui"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := ui.New(&buf, false)

	p.Info("Annotating %s", "users")
	p.Success("done\nall good")
	p.Error("[%s] failed", "x")
	p.Print("prompt: ")

	require.Equal(t, "Annotating users\ndone\nall good\n[x] failed\nprompt: ", buf.String())
}

func TestPrinter_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := ui.New(&buf, true)

	p.Success("generated")
	p.Error("failed")

	// The renderer may or may not emit escape codes depending on the
	// environment, but the message text is always present.
	require.Contains(t, buf.String(), "generated")
	require.Contains(t, buf.String(), "failed")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.False(t, ui.IsTerminal(f))
}
