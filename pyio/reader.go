package pyio

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/oilgo/mylib/pyerr"
	"github.com/oilgo/mylib/pystr"
)

// LineReader reads newline terminated lines.
// At end of input ReadLine returns the empty string and a nil error.
type LineReader interface {
	ReadLine() (pystr.Str, error)
}

var (
	_ LineReader = &BufLineReader{}
	_ LineReader = &FileLineReader{}
)

// BufLineReader reads lines out of a Str.
type BufLineReader struct {
	s   pystr.Str
	pos int
}

func NewBufLineReader(s pystr.Str) *BufLineReader {
	return &BufLineReader{s: s}
}

// ReadLine returns the next line including its '\n'.
// The last line may lack one. It never returns an error.
func (r *BufLineReader) ReadLine() (pystr.Str, error) {
	rest := r.s.String()[r.pos:]
	if rest == "" {
		return pystr.Str{}, nil
	}
	n := len(rest)
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		n = i + 1
	}
	line := r.s.Slice(r.pos, r.pos+n)
	r.pos += n
	return line, nil
}

// FileLineReader reads lines from an io.Reader, usually an open file.
type FileLineReader struct {
	r   *bufio.Reader
	c   io.Closer
	eof bool
}

// NewFileLineReader reads lines from r.
// If r is an io.Closer, Close closes it.
func NewFileLineReader(r io.Reader) *FileLineReader {
	flr := &FileLineReader{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		flr.c = c
	}
	return flr
}

// Open opens the file at p for line reading.
func Open(p string) (*FileLineReader, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	return NewFileLineReader(f), nil
}

func (r *FileLineReader) ReadLine() (pystr.Str, error) {
	if r.eof {
		return pystr.Str{}, nil
	}
	data, err := r.r.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		r.eof = true
		err = nil
	}
	if err != nil {
		return pystr.Str{}, err
	}
	return pystr.FromBytes(data), nil
}

func (r *FileLineReader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}

// Lines iterates over the remaining lines of r.
// Iteration stops after the first error, which is yielded with an empty line.
func Lines(r LineReader) iter.Seq2[pystr.Str, error] {
	return func(yield func(pystr.Str, error) bool) {
		for {
			line, err := r.ReadLine()
			if err != nil {
				yield(pystr.Str{}, err)
				return
			}
			if line.Len() == 0 {
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// ReadLineOrEOF is ReadLine, except end of input is an EOFError.
func ReadLineOrEOF(r LineReader) (pystr.Str, error) {
	line, err := r.ReadLine()
	if err != nil {
		return pystr.Str{}, err
	}
	if line.Len() == 0 {
		return pystr.Str{}, &pyerr.EOFError{}
	}
	return line, nil
}
