// package pyio implements line input, output sinks and %-formatting for generated code.
package pyio

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/oilgo/mylib/pystr"
)

// Writer is an output sink for byte strings.
type Writer interface {
	Write(s pystr.Str) error
	// IsATTY reports whether the sink is an interactive terminal.
	IsATTY() bool
}

var (
	_ Writer = &BufWriter{}
	_ Writer = &FileWriter{}
)

// BufWriter is an in-memory Writer, like the source language's StringIO.
// It also carries the append operations that compiled format strings use.
//
// Clear keeps the allocation so that one BufWriter can be reused for every
// format operation. GetValue copies, so later writes never change a value
// returned earlier.
type BufWriter struct {
	data []byte
}

func NewBufWriter() *BufWriter {
	return &BufWriter{}
}

func (w *BufWriter) Write(s pystr.Str) error {
	w.data = append(w.data, s.String()...)
	return nil
}

func (w *BufWriter) IsATTY() bool {
	return false
}

func (w *BufWriter) Len() int {
	return len(w.data)
}

// GetValue returns a snapshot of the buffered bytes.
func (w *BufWriter) GetValue() pystr.Str {
	return pystr.FromBytes(w.data)
}

// Clear empties the buffer without releasing it.
func (w *BufWriter) Clear() {
	w.data = w.data[:0]
}

// WriteConst appends literal text.
func (w *BufWriter) WriteConst(s string) {
	w.data = append(w.data, s...)
}

// FormatD appends the decimal form of i (%d).
func (w *BufWriter) FormatD(i int) {
	w.data = pystr.AppendInt(w.data, i)
}

// FormatS appends the bytes of s (%s).
func (w *BufWriter) FormatS(s pystr.Str) {
	w.data = append(w.data, s.String()...)
}

// FormatR appends the repr of x (%r).
// Strings are quoted and escaped; other values use pystr.ReprOf.
func (w *BufWriter) FormatR(x any) {
	if s, ok := x.(pystr.Str); ok {
		w.data = pystr.AppendRepr(w.data, s)
		return
	}
	w.data = append(w.data, pystr.ReprOf(x).String()...)
}

// FileWriter is a Writer backed by an io.Writer, usually an *os.File.
type FileWriter struct {
	w io.Writer
}

func NewFileWriter(w io.Writer) *FileWriter {
	return &FileWriter{w: w}
}

func (w *FileWriter) Write(s pystr.Str) error {
	_, err := io.WriteString(w.w, s.String())
	return err
}

// IsATTY reports whether the underlying file is a terminal.
// Writers without a file descriptor are never terminals.
func (w *FileWriter) IsATTY() bool {
	f, ok := w.w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
