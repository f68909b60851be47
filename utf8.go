package typedpath

import (
	"iter"
)

// Utf8Path is a borrowed view of a UTF-8 path whose syntax is fixed by E.
type Utf8Path[E Encoding] string

type (
	Utf8UnixPath    = Utf8Path[Unix]
	Utf8WindowsPath = Utf8Path[Windows]
	Utf8NativePath  = Utf8Path[Native]
)

// Rules returns the syntax rules of the path.
func (p Utf8Path[E]) Rules() *Rules { return rulesOf[E]() }

// Components returns a fresh iterator over the path's components.
func (p Utf8Path[E]) Components() Components[string] {
	return Parse(rulesOf[E](), string(p))
}

// Prefix returns the path's Windows prefix, if any.
func (p Utf8Path[E]) Prefix() (PrefixComponent[string], bool) {
	c := p.Components()
	return c.Prefix()
}

// HasRoot returns true if the path has a root, explicit or implied by its prefix.
func (p Utf8Path[E]) HasRoot() bool {
	c := p.Components()
	return c.HasRoot()
}

// IsAbsolute returns true if the path does not depend on a current directory.
func (p Utf8Path[E]) IsAbsolute() bool {
	c := p.Components()
	return c.IsAbsolute()
}

func (p Utf8Path[E]) IsRelative() bool { return !p.IsAbsolute() }

func (p Utf8Path[E]) IsValid() bool { return isValidPath(rulesOf[E](), string(p)) }

// Parent returns the path without its final component.
func (p Utf8Path[E]) Parent() (Utf8Path[E], bool) {
	parent, ok := parentOf(rulesOf[E](), string(p))
	return Utf8Path[E](parent), ok
}

// Ancestors iterates over the path and each of its successive parents.
func (p Utf8Path[E]) Ancestors() iter.Seq[Utf8Path[E]] {
	return func(yield func(Utf8Path[E]) bool) {
		for cur, ok := p, true; ok; cur, ok = cur.Parent() {
			if !yield(cur) {
				return
			}
		}
	}
}

func (p Utf8Path[E]) FileName() (string, bool)  { return fileNameOf(rulesOf[E](), string(p)) }
func (p Utf8Path[E]) FileStem() (string, bool)  { return fileStemOf(rulesOf[E](), string(p)) }
func (p Utf8Path[E]) Extension() (string, bool) { return extensionOf(rulesOf[E](), string(p)) }

func (p Utf8Path[E]) StartsWith(base Utf8Path[E]) bool {
	return startsWith(rulesOf[E](), string(p), string(base))
}

func (p Utf8Path[E]) EndsWith(child Utf8Path[E]) bool {
	return endsWith(rulesOf[E](), string(p), string(child))
}

// StripPrefix returns the path relative to base.
func (p Utf8Path[E]) StripPrefix(base Utf8Path[E]) (Utf8Path[E], error) {
	rest, err := stripPrefix(rulesOf[E](), string(p), string(base))
	return Utf8Path[E](rest), err
}

// Join returns a new buffer with frag pushed onto the path.
func (p Utf8Path[E]) Join(frag Utf8Path[E]) Utf8PathBuf[E] {
	b := p.ToPathBuf()
	b.Push(frag)
	return b
}

// JoinChecked returns a new buffer with frag appended to the path, or an error if frag could
// escape it.
func (p Utf8Path[E]) JoinChecked(frag Utf8Path[E]) (Utf8PathBuf[E], error) {
	b := p.ToPathBuf()
	if err := b.PushChecked(frag); err != nil {
		return Utf8PathBuf[E]{}, err
	}
	return b, nil
}

func (p Utf8Path[E]) WithFileName(name string) Utf8PathBuf[E] {
	b := p.ToPathBuf()
	b.SetFileName(name)
	return b
}

func (p Utf8Path[E]) WithExtension(ext string) Utf8PathBuf[E] {
	b := p.ToPathBuf()
	b.SetExtension(ext)
	return b
}

// Normalize returns the lexically simplified path.
func (p Utf8Path[E]) Normalize() Utf8PathBuf[E] {
	return Utf8PathBuf[E]{inner: normalize(rulesOf[E](), string(p))}
}

// Absolutize resolves the path against cwd and normalizes the result.
func (p Utf8Path[E]) Absolutize(cwd Utf8Path[E]) (Utf8PathBuf[E], error) {
	buf, err := absolutize(rulesOf[E](), string(p), string(cwd))
	if err != nil {
		return Utf8PathBuf[E]{}, err
	}
	return Utf8PathBuf[E]{inner: buf}, nil
}

// AbsolutizeWith resolves the path against the directory returned by fn, which must be valid
// UTF-8.
func (p Utf8Path[E]) AbsolutizeWith(fn CurrentDirFunc) (Utf8PathBuf[E], error) {
	if p.IsAbsolute() {
		return p.Normalize(), nil
	}
	cwd, err := callCurrentDir(fn)
	if err != nil {
		return Utf8PathBuf[E]{}, err
	}
	text, err := Utf8PathFromBytes[E](cwd)
	if err != nil {
		return Utf8PathBuf[E]{}, err
	}
	return p.Absolutize(text)
}

func (p Utf8Path[E]) Equal(o Utf8Path[E]) bool { return p.Compare(o) == 0 }

func (p Utf8Path[E]) Compare(o Utf8Path[E]) int {
	return comparePaths(rulesOf[E](), string(p), string(o))
}

// ToPathBuf copies the path into a new buffer.
func (p Utf8Path[E]) ToPathBuf() Utf8PathBuf[E] {
	return Utf8PathBuf[E]{inner: clone(string(p))}
}

// AsBytes returns the path as a byte path.
func (p Utf8Path[E]) AsBytes() Path[E] { return Path[E](p) }

func (p Utf8Path[E]) String() string { return string(p) }

// Utf8PathBuf is an owned, growable UTF-8 path whose syntax is fixed by E.
type Utf8PathBuf[E Encoding] struct {
	inner []byte
}

type (
	Utf8UnixPathBuf    = Utf8PathBuf[Unix]
	Utf8WindowsPathBuf = Utf8PathBuf[Windows]
	Utf8NativePathBuf  = Utf8PathBuf[Native]
)

// NewUtf8PathBuf copies s into a new buffer.
func NewUtf8PathBuf[E Encoding](s string) Utf8PathBuf[E] {
	return Utf8PathBuf[E]{inner: clone(s)}
}

// AsPath returns a copy of the buffer's text.
func (b *Utf8PathBuf[E]) AsPath() Utf8Path[E] { return Utf8Path[E](b.inner) }

func (b *Utf8PathBuf[E]) Len() int { return len(b.inner) }

func (b *Utf8PathBuf[E]) String() string { return string(b.inner) }

func (b *Utf8PathBuf[E]) Clone() Utf8PathBuf[E] { return Utf8PathBuf[E]{inner: clone(b.inner)} }

func (b *Utf8PathBuf[E]) Clear() { b.inner = b.inner[:0] }

// Push extends the buffer with frag, with the same semantics as PathBuf.Push.
func (b *Utf8PathBuf[E]) Push(frag Utf8Path[E]) {
	b.inner = push(rulesOf[E](), b.inner, string(frag))
}

// PushChecked appends frag with the same checks as PathBuf.PushChecked.
func (b *Utf8PathBuf[E]) PushChecked(frag Utf8Path[E]) error {
	inner, err := pushChecked(rulesOf[E](), b.inner, string(frag))
	if err != nil {
		return err
	}
	b.inner = inner
	return nil
}

func (b *Utf8PathBuf[E]) Pop() bool {
	inner, ok := pop(rulesOf[E](), b.inner)
	b.inner = inner
	return ok
}

func (b *Utf8PathBuf[E]) SetFileName(name string) {
	b.inner = setFileName(rulesOf[E](), b.inner, name)
}

func (b *Utf8PathBuf[E]) SetExtension(ext string) bool {
	inner, ok := setExtension(rulesOf[E](), b.inner, ext)
	b.inner = inner
	return ok
}
