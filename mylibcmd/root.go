// package mylibcmd implements the mylib command line tool.
package mylibcmd

import (
	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/oilgo/mylib/pyio"
	"github.com/oilgo/mylib/pystr"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "tools built on the mylib runtime",
}, map[star.Symbol]star.Command{
	"csv-concat": csvConcatCmd,
	"repr":       reprCmd,
	"lines":      linesCmd,
})

var pathsParam = star.Param[string]{
	Name:     "paths",
	Parse:    star.ParseString,
	Repeated: true,
}

var pathParam = star.Param[string]{
	Name:  "path",
	Parse: star.ParseString,
}

var argsParam = star.Param[string]{
	Name:     "args",
	Parse:    star.ParseString,
	Repeated: true,
}

var csvConcatCmd = star.Command{
	Metadata: star.Metadata{
		Short: "concatenate CSV files which share a header",
	},
	Pos: []star.IParam{pathsParam},
	F: func(c star.Context) error {
		paths := pathsParam.LoadAll(c)
		logctx.Infof(c.Context, "csv-concat %d files", len(paths))
		if err := CSVConcat(pyio.NewFileWriter(c.StdOut), paths); err != nil {
			logctx.Error(c.Context, "csv-concat", zap.Error(err))
			return err
		}
		return nil
	},
}

var reprCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the repr of each argument",
	},
	Pos: []star.IParam{argsParam},
	F: func(c star.Context) error {
		args := slices2.Map(argsParam.LoadAll(c), pystr.New)
		return PrintReprs(pyio.NewFileWriter(c.StdOut), args)
	},
}

var linesCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print each line of a file with its line number",
	},
	Pos: []star.IParam{pathParam},
	F: func(c star.Context) error {
		p := pathParam.Load(c)
		r, err := pyio.Open(p)
		if err != nil {
			return err
		}
		defer r.Close()
		n, err := NumberLines(pyio.NewFileWriter(c.StdOut), r)
		if err != nil {
			return err
		}
		logctx.Info(c.Context, "numbered lines", zap.String("path", p), zap.Int("count", n))
		return nil
	},
}
