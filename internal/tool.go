package pathtool

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	typedpath "github.com/chipsenkbeil/typed-path"
)

var (
	errCwdRequired = errors.New("a current directory is required for non-native encodings")

	// currentDir provides the working directory of native paths.
	currentDir typedpath.CurrentDirFunc = typedpath.HostCurrentDir
)

// Tool runs path commands and prints their results.
type Tool struct {
	cfg  *Config
	kind typedpath.EncodingKind
	out  io.Writer
}

// NewTool returns a tool printing to out.
func NewTool(cfg *Config, out io.Writer) (*Tool, error) {
	kind, err := cfg.EncodingKind()
	if err != nil {
		return nil, err
	}
	return &Tool{cfg: cfg, kind: kind, out: out}, nil
}

func (t *Tool) parse(s string) (typedpath.TypedPath, error) {
	p := typedpath.NewTypedPath(t.kind, []byte(s))
	if t.cfg.UTF8 {
		if _, err := p.ToUtf8(); err != nil {
			return p, fmt.Errorf("%w: %q", err, s)
		}
	}
	return p, nil
}

func optional(b []byte, ok bool) string {
	if !ok {
		return "-"
	}
	return string(b)
}

func describeComponent(c typedpath.Component[[]byte], r *typedpath.Rules) (string, string) {
	switch c.Kind {
	case typedpath.KindPrefix:
		return c.Kind.String() + "/" + c.Prefix.Kind.String(), string(c.Prefix.Raw)
	case typedpath.KindRootDir, typedpath.KindCurDir, typedpath.KindParentDir:
		return c.Kind.String(), string(c.Render(r))
	}
	return c.Kind.String(), string(c.Name)
}

// Components prints one row per component of the path.
func (t *Tool) Components(s string) error {
	p, err := t.parse(s)
	if err != nil {
		return err
	}
	tbl := newTable(t.out)
	for comp := range p.Components().All() {
		kind, value := describeComponent(comp, p.Rules())
		valid := comp.IsValid(p.Rules())
		tbl.row(kind, value, strconv.FormatBool(valid))
	}
	return tbl.flush()
}

// Info prints the path's properties.
func (t *Tool) Info(s string) error {
	p, err := t.parse(s)
	if err != nil {
		return err
	}
	parent, hasParent := p.Parent()
	name, hasName := p.FileName()
	stem, hasStem := p.FileStem()
	ext, hasExt := p.Extension()

	tbl := newTable(t.out)
	tbl.row("encoding", p.Kind().String())
	tbl.row("absolute", strconv.FormatBool(p.IsAbsolute()))
	tbl.row("root", strconv.FormatBool(p.HasRoot()))
	tbl.row("valid", strconv.FormatBool(p.IsValid()))
	tbl.row("parent", optional(parent.Bytes(), hasParent))
	tbl.row("name", optional(name, hasName))
	tbl.row("stem", optional(stem, hasStem))
	tbl.row("extension", optional(ext, hasExt))
	tbl.row("normalized", p.Normalize().String())
	return tbl.flush()
}

// Normalize prints the normalized path.
func (t *Tool) Normalize(s string) error {
	p, err := t.parse(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.out, p.Normalize().String())
	return err
}

// Join appends each fragment to base in turn and prints the result. Fragments are checked unless
// the configuration or unchecked disables it.
func (t *Tool) Join(base string, frags []string, unchecked bool) error {
	p, err := t.parse(base)
	if err != nil {
		return err
	}
	checked := t.cfg.IsChecked() && !unchecked
	for _, s := range frags {
		frag, err := t.parse(s)
		if err != nil {
			return err
		}
		if !checked {
			p = p.Join(frag)
			continue
		}
		if p, err = p.JoinChecked(frag); err != nil {
			slog.Info("Join rejected.", dataAttrs(slog.String("fragment", s)), errAttr(err))
			return err
		}
	}
	_, err = fmt.Fprintln(t.out, p.String())
	return err
}

// Absolutize resolves the path against cwd, or against the working directory if cwd is empty.
func (t *Tool) Absolutize(s, cwd string) error {
	p, err := t.parse(s)
	if err != nil {
		return err
	}
	var abs typedpath.TypedPath
	if cwd == "" {
		if t.kind != typedpath.NativeKind {
			return errCwdRequired
		}
		abs, err = p.AbsolutizeWith(currentDir)
	} else {
		var dir typedpath.TypedPath
		if dir, err = t.parse(cwd); err != nil {
			return err
		}
		abs, err = p.Absolutize(dir)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.out, abs.String())
	return err
}

// Convert prints the path under another encoding.
func (t *Tool) Convert(s string, to typedpath.EncodingKind, checked bool) error {
	p, err := t.parse(s)
	if err != nil {
		return err
	}
	var conv typedpath.TypedPath
	if checked {
		if conv, err = p.WithEncodingChecked(to); err != nil {
			return err
		}
	} else {
		conv = p.WithEncoding(to)
	}
	_, err = fmt.Fprintln(t.out, conv.String())
	return err
}

// Audit checks every entry name read from r against base and prints a verdict for each. It fails
// if any entry was rejected.
func (t *Tool) Audit(base string, r io.Reader, skip []string) error {
	p, err := t.parse(base)
	if err != nil {
		return err
	}
	entries, err := GatherEntries(p, r, slices.Concat(t.cfg.Audit.Skip, skip))
	if err != nil {
		return err
	}
	rejected := 0
	tbl := newTable(t.out)
	for _, entry := range entries {
		dest := "-"
		if entry.Accepted() {
			dest = entry.Dest.Normalize().String()
		} else {
			rejected++
		}
		tbl.row(entry.Verdict.String(), entry.Name, dest)
	}
	if err := tbl.flush(); err != nil {
		return err
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejectedEntries, rejected, len(entries))
	}
	return nil
}
