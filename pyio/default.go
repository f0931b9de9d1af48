package pyio

import (
	"os"
	"sync"
)

// Process wide defaults. Each is created on first use, exactly once.
var (
	stdoutOnce sync.Once
	stdout     Writer

	stderrOnce sync.Once
	stderr     Writer

	bufOnce sync.Once
	buf     *BufWriter
)

// Stdout returns the default output sink, a FileWriter on os.Stdout
// unless replaced with SetStdout.
func Stdout() Writer {
	stdoutOnce.Do(func() {
		stdout = NewFileWriter(os.Stdout)
	})
	return stdout
}

// SetStdout replaces the default output sink and returns the previous one.
// It is not safe to call concurrently with Stdout.
func SetStdout(w Writer) Writer {
	prev := Stdout()
	stdout = w
	return prev
}

func Stderr() Writer {
	stderrOnce.Do(func() {
		stderr = NewFileWriter(os.Stderr)
	})
	return stderr
}

// Buf returns the shared formatting buffer used by Format.
// Its contents are only meaningful until the next Format call.
func Buf() *BufWriter {
	bufOnce.Do(func() {
		buf = NewBufWriter()
	})
	return buf
}
