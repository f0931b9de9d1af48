package mylibcmd

import (
	"errors"

	"github.com/oilgo/mylib/pyio"
	"github.com/oilgo/mylib/pystr"
)

// CSVConcat writes the files at paths to w, keeping only the first header.
// Every file must start with the same header, ignoring surrounding whitespace.
// Fields are not parsed, so quoting and escaping are passed through.
func CSVConcat(w pyio.Writer, paths []string) error {
	var firstHeader *pystr.Str
	for _, p := range paths {
		if err := catCSV(w, p, &firstHeader); err != nil {
			return err
		}
	}
	return nil
}

func catCSV(w pyio.Writer, p string, firstHeader **pystr.Str) error {
	r, err := pyio.Open(p)
	if err != nil {
		return err
	}
	defer r.Close()
	header, err := r.ReadLine()
	if err != nil {
		return err
	}
	h := header.Strip()
	if *firstHeader == nil {
		if err := w.Write(header); err != nil {
			return err
		}
		*firstHeader = &h
	} else if !pystr.MaybeEquals(&h, *firstHeader) {
		msg := pyio.Format("Invalid header in %r: %r.  Expected %r", p, h, **firstHeader)
		return errors.New(msg.String())
	}
	for line, err := range pyio.Lines(r) {
		if err != nil {
			return err
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// PrintReprs writes the repr of each arg to w, one per line.
func PrintReprs(w pyio.Writer, args []pystr.Str) error {
	for _, arg := range args {
		if err := w.Write(pyio.Format("%r\n", arg)); err != nil {
			return err
		}
	}
	return nil
}

// NumberLines copies r to w, prefixing each line with its 1-based number.
// It returns the number of lines.
func NumberLines(w pyio.Writer, r pyio.LineReader) (int, error) {
	var n int
	for line, err := range pyio.Lines(r) {
		if err != nil {
			return n, err
		}
		n++
		if err := w.Write(pyio.Format("%5d %s", n, line)); err != nil {
			return n, err
		}
	}
	return n, nil
}
