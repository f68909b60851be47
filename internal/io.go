package pathtool

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

const (
	logDataKey = "data"
	logErrKey  = "err"
)

func dataAttrs(attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = any(attr)
	}
	return slog.Group(logDataKey, args...)
}

func errAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}

// isTerminal returns true if w is attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// table writes rows of cells. Cells are tab-separated, and aligned when writing to a terminal.
type table struct {
	w  io.Writer
	tw *tabwriter.Writer
}

func newTable(out io.Writer) *table {
	if isTerminal(out) {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		return &table{w: tw, tw: tw}
	}
	return &table{w: out}
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	if t.tw == nil {
		return nil
	}
	return t.tw.Flush()
}
