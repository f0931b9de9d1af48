package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// TempFile creates a temp file, unlinks it, and then returns the file.
// TempFile adds f.Close for Cleanup
func TempFile(t testing.TB) *os.File {
	f, err := os.CreateTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	require.NoError(t, os.Remove(f.Name()))
	return f
}

// WriteTempFile writes data to a new file under t.TempDir and returns its path.
func WriteTempFile(t testing.TB, name, data string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}
