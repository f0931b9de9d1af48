// package mylib is the support runtime for programs translated to Go.
//
// The value types live in their own packages: pystr for byte strings,
// pylist, pydict and pytuple for containers, pyio for input, output and
// formatting, and pyerr for the exceptions they raise.
// This package holds the builtins that span them.
package mylib

import (
	"context"

	"go.brendoncarroll.net/stdctx/logctx"

	"github.com/oilgo/mylib/pyio"
	"github.com/oilgo/mylib/pystr"
)

type (
	Str = pystr.Str

	// Sized is anything with a length: Str, List, Dict and BufWriter.
	Sized interface {
		Len() int
	}
)

// Len is the builtin len().
func Len(x Sized) int {
	return x.Len()
}

var newline = pystr.New("\n")

// Print writes s and a newline to pyio.Stdout.
func Print(s Str) error {
	out := pyio.Stdout()
	if err := out.Write(s); err != nil {
		return err
	}
	return out.Write(newline)
}

// Log formats its arguments with pyio.Format and logs the result at Info level
// to the logger in ctx.
func Log(ctx context.Context, format string, args ...any) {
	logctx.Info(ctx, pyio.Format(format, args...).String())
}
