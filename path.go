package typedpath

import (
	"iter"
	"unicode/utf8"
)

// Path is a borrowed view of a path whose syntax is fixed by E, independently of the host. Its
// bytes need not be valid UTF-8.
type Path[E Encoding] []byte

type (
	UnixPath    = Path[Unix]
	WindowsPath = Path[Windows]
	NativePath  = Path[Native]
)

// NewPath returns a view of the given string.
func NewPath[E Encoding](s string) Path[E] {
	return Path[E](s)
}

// Rules returns the syntax rules of the path.
func (p Path[E]) Rules() *Rules { return rulesOf[E]() }

// Components returns a fresh iterator over the path's components.
func (p Path[E]) Components() Components[[]byte] {
	return Parse(rulesOf[E](), []byte(p))
}

// Prefix returns the path's Windows prefix, if any.
func (p Path[E]) Prefix() (PrefixComponent[[]byte], bool) {
	c := p.Components()
	return c.Prefix()
}

// HasRoot returns true if the path has a root, explicit or implied by its prefix.
func (p Path[E]) HasRoot() bool {
	c := p.Components()
	return c.HasRoot()
}

// IsAbsolute returns true if the path does not depend on a current directory.
func (p Path[E]) IsAbsolute() bool {
	c := p.Components()
	return c.IsAbsolute()
}

// IsRelative is the negation of IsAbsolute.
func (p Path[E]) IsRelative() bool { return !p.IsAbsolute() }

// IsValid returns true if every component is valid under the path's rules.
func (p Path[E]) IsValid() bool { return isValidPath(rulesOf[E](), []byte(p)) }

// Parent returns the path without its final component. It returns false if the path ends in a
// root or prefix, or is empty.
func (p Path[E]) Parent() (Path[E], bool) {
	parent, ok := parentOf(rulesOf[E](), []byte(p))
	return Path[E](parent), ok
}

// Ancestors iterates over the path and each of its successive parents.
func (p Path[E]) Ancestors() iter.Seq[Path[E]] {
	return func(yield func(Path[E]) bool) {
		for cur, ok := p, true; ok; cur, ok = cur.Parent() {
			if !yield(cur) {
				return
			}
		}
	}
}

// FileName returns the final normal component of the path.
func (p Path[E]) FileName() ([]byte, bool) { return fileNameOf(rulesOf[E](), []byte(p)) }

// FileStem returns the file name without its extension.
func (p Path[E]) FileStem() ([]byte, bool) { return fileStemOf(rulesOf[E](), []byte(p)) }

// Extension returns the text after the final dot of the file name.
func (p Path[E]) Extension() ([]byte, bool) { return extensionOf(rulesOf[E](), []byte(p)) }

// StartsWith returns true if base's components are a leading run of the path's.
func (p Path[E]) StartsWith(base Path[E]) bool {
	return startsWith(rulesOf[E](), []byte(p), []byte(base))
}

// EndsWith returns true if child's components are a trailing run of the path's.
func (p Path[E]) EndsWith(child Path[E]) bool {
	return endsWith(rulesOf[E](), []byte(p), []byte(child))
}

// StripPrefix returns the path relative to base.
func (p Path[E]) StripPrefix(base Path[E]) (Path[E], error) {
	rest, err := stripPrefix(rulesOf[E](), []byte(p), []byte(base))
	return Path[E](rest), err
}

// Join returns a new buffer with frag pushed onto the path. See PathBuf.Push.
func (p Path[E]) Join(frag Path[E]) PathBuf[E] {
	b := p.ToPathBuf()
	b.Push(frag)
	return b
}

// JoinChecked returns a new buffer with frag appended to the path, or an error if frag could
// escape it. See PathBuf.PushChecked.
func (p Path[E]) JoinChecked(frag Path[E]) (PathBuf[E], error) {
	b := p.ToPathBuf()
	if err := b.PushChecked(frag); err != nil {
		return PathBuf[E]{}, err
	}
	return b, nil
}

// WithFileName returns a copy of the path with its file name replaced.
func (p Path[E]) WithFileName(name []byte) PathBuf[E] {
	b := p.ToPathBuf()
	b.SetFileName(name)
	return b
}

// WithExtension returns a copy of the path with its extension replaced.
func (p Path[E]) WithExtension(ext []byte) PathBuf[E] {
	b := p.ToPathBuf()
	b.SetExtension(ext)
	return b
}

// Normalize returns the lexically simplified path.
func (p Path[E]) Normalize() PathBuf[E] {
	return PathBuf[E]{inner: normalize(rulesOf[E](), []byte(p))}
}

// Absolutize resolves the path against cwd and normalizes the result.
func (p Path[E]) Absolutize(cwd Path[E]) (PathBuf[E], error) {
	buf, err := absolutize(rulesOf[E](), []byte(p), []byte(cwd))
	if err != nil {
		return PathBuf[E]{}, err
	}
	return PathBuf[E]{inner: buf}, nil
}

// AbsolutizeWith resolves the path against the directory returned by fn.
func (p Path[E]) AbsolutizeWith(fn CurrentDirFunc) (PathBuf[E], error) {
	if p.IsAbsolute() {
		return p.Normalize(), nil
	}
	cwd, err := callCurrentDir(fn)
	if err != nil {
		return PathBuf[E]{}, err
	}
	return p.Absolutize(Path[E](cwd))
}

// Equal compares paths component-wise, so `a//b` equals `a/b`.
func (p Path[E]) Equal(o Path[E]) bool { return p.Compare(o) == 0 }

// Compare orders paths component-wise.
func (p Path[E]) Compare(o Path[E]) int {
	return comparePaths(rulesOf[E](), []byte(p), []byte(o))
}

// ToPathBuf copies the path into a new buffer.
func (p Path[E]) ToPathBuf() PathBuf[E] {
	return PathBuf[E]{inner: clone([]byte(p))}
}

// ToUtf8 returns the path as text, failing if it is not valid UTF-8.
func (p Path[E]) ToUtf8() (Utf8Path[E], error) {
	return Utf8PathFromBytes[E](p)
}

// String returns the path's bytes as a string. Invalid UTF-8 is kept as is.
func (p Path[E]) String() string { return string(p) }

// PathBuf is an owned, growable path whose syntax is fixed by E. The zero value is an empty path.
type PathBuf[E Encoding] struct {
	inner []byte
}

type (
	UnixPathBuf    = PathBuf[Unix]
	WindowsPathBuf = PathBuf[Windows]
	NativePathBuf  = PathBuf[Native]
)

// NewPathBuf copies b into a new buffer.
func NewPathBuf[E Encoding](b []byte) PathBuf[E] {
	return PathBuf[E]{inner: clone(b)}
}

// AsPath returns a view of the buffer, valid until the next mutation.
func (b *PathBuf[E]) AsPath() Path[E] { return Path[E](b.inner) }

// Bytes returns the buffer's contents, valid until the next mutation.
func (b *PathBuf[E]) Bytes() []byte { return b.inner }

// Len returns the buffer's length in bytes.
func (b *PathBuf[E]) Len() int { return len(b.inner) }

// String returns a copy of the buffer's contents.
func (b *PathBuf[E]) String() string { return string(b.inner) }

// Clone returns an independent copy of the buffer.
func (b *PathBuf[E]) Clone() PathBuf[E] { return PathBuf[E]{inner: clone(b.inner)} }

// Clear empties the buffer, keeping its capacity.
func (b *PathBuf[E]) Clear() { b.inner = b.inner[:0] }

// Push extends the buffer with frag, with no safety checks. An absolute fragment replaces the
// buffer. Under Windows rules, a fragment with a prefix also replaces it and a rooted fragment
// only keeps the buffer's prefix.
func (b *PathBuf[E]) Push(frag Path[E]) {
	b.inner = push(rulesOf[E](), b.inner, []byte(frag))
}

// PushChecked appends frag to the buffer if it is relative, has no prefix, contains only valid
// components, and does not traverse above the buffer's first normal component. The result must
// also keep the buffer's prefix and root: `\\server` followed by `share` would form a UNC prefix.
// Otherwise the buffer is unchanged and a *CheckedPathError is returned.
func (b *PathBuf[E]) PushChecked(frag Path[E]) error {
	inner, err := pushChecked(rulesOf[E](), b.inner, []byte(frag))
	if err != nil {
		return err
	}
	b.inner = inner
	return nil
}

// Pop truncates the buffer to its parent. It returns false, leaving the buffer unchanged, if
// there is no parent.
func (b *PathBuf[E]) Pop() bool {
	inner, ok := pop(rulesOf[E](), b.inner)
	b.inner = inner
	return ok
}

// SetFileName replaces the final normal component with name, or pushes it if there is none.
func (b *PathBuf[E]) SetFileName(name []byte) {
	b.inner = setFileName(rulesOf[E](), b.inner, name)
}

// SetExtension replaces the file name's extension, removing it when ext is empty. It returns
// false if the path has no file name.
func (b *PathBuf[E]) SetExtension(ext []byte) bool {
	inner, ok := setExtension(rulesOf[E](), b.inner, ext)
	b.inner = inner
	return ok
}

// Utf8PathFromBytes validates b as UTF-8 and returns it as a text path.
func Utf8PathFromBytes[E Encoding](b []byte) (Utf8Path[E], error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return Utf8Path[E](b), nil
}
