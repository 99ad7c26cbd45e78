package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closeFailWriter buffers writes and fails on Close, like a file whose final
// flush did not reach the disk.
type closeFailWriter struct {
	bytes.Buffer
}

func (*closeFailWriter) Close() error { return errors.New("disk full") }

func openerFor(a *App) Opener {
	return func(context.Context) (*App, error) { return a, nil }
}

func runExport(t *testing.T, a *App, output string) subcommands.ExitStatus {
	t.Helper()
	cmd := &exportCmd{open: openerFor(a)}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-o", output}))
	return cmd.Execute(context.Background(), fs)
}

func TestExportCmd_WritesFile(t *testing.T) {
	capturePrint(t)
	a := newTestApp(t, nil)
	signUp(t, a, "alice")

	path := filepath.Join(t.TempDir(), "dump.json")
	require.Equal(t, subcommands.ExitSuccess, runExport(t, a, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"alice"`)
}

func TestExportCmd_FailedCloseIsFailure(t *testing.T) {
	a := newTestApp(t, nil)

	w := &closeFailWriter{}
	orig := createFile
	createFile = func(string) (io.WriteCloser, error) { return w, nil }
	t.Cleanup(func() { createFile = orig })

	assert.Equal(t, subcommands.ExitFailure, runExport(t, a, "dump.json"))
	assert.NotZero(t, w.Len(), "dump was written before the close failed")
}

func TestExportCmd_CreateError(t *testing.T) {
	a := newTestApp(t, nil)

	orig := createFile
	createFile = func(string) (io.WriteCloser, error) { return nil, os.ErrPermission }
	t.Cleanup(func() { createFile = orig })

	assert.Equal(t, subcommands.ExitFailure, runExport(t, a, "dump.json"))
}
