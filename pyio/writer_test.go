package pyio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oilgo/mylib/internal/testutil"
	"github.com/oilgo/mylib/pyio"
	"github.com/oilgo/mylib/pystr"
)

func s(x string) pystr.Str {
	return pystr.New(x)
}

func TestBufWriter(t *testing.T) {
	t.Parallel()
	w := pyio.NewBufWriter()
	require.Equal(t, s(""), w.GetValue())
	w.FormatD(42)
	w.FormatS(s(" x"))
	require.Equal(t, s("42 x"), w.GetValue())
	require.Equal(t, 4, w.Len())

	w.Clear()
	require.Equal(t, s(""), w.GetValue())
	require.Equal(t, 0, w.Len())
	require.False(t, w.IsATTY())
}

func TestBufWriterSnapshot(t *testing.T) {
	t.Parallel()
	w := pyio.NewBufWriter()
	require.NoError(t, w.Write(s("abc")))
	snap := w.GetValue()
	w.Clear()
	w.WriteConst("xyz")
	require.Equal(t, s("abc"), snap)
	require.Equal(t, s("xyz"), w.GetValue())
}

func TestBufWriterFormatR(t *testing.T) {
	t.Parallel()
	w := pyio.NewBufWriter()
	w.FormatR(s("it's\n"))
	w.WriteConst(" ")
	w.FormatR(7)
	w.WriteConst(" ")
	w.FormatR(nil)
	require.Equal(t, `"it's\n" 7 None`, w.GetValue().String())
}

func TestFileWriter(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	w := pyio.NewFileWriter(&out)
	require.NoError(t, w.Write(s("hello ")))
	require.NoError(t, w.Write(s("world\n")))
	require.Equal(t, "hello world\n", out.String())
	require.False(t, w.IsATTY())

	f := testutil.TempFile(t)
	fw := pyio.NewFileWriter(f)
	require.False(t, fw.IsATTY())
	require.NoError(t, fw.Write(s("data")))
	_, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "data", string(data))
}

func TestDefaults(t *testing.T) {
	require.Same(t, pyio.Buf(), pyio.Buf())
	require.NotNil(t, pyio.Stdout())
	require.NotNil(t, pyio.Stderr())

	buf := pyio.NewBufWriter()
	prev := pyio.SetStdout(buf)
	t.Cleanup(func() { pyio.SetStdout(prev) })
	require.NoError(t, pyio.Stdout().Write(s("captured")))
	require.Equal(t, s("captured"), buf.GetValue())
}
