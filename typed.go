package typedpath

import (
	"unicode/utf8"
)

// typedPath carries its encoding at runtime rather than in its type. Every operation dispatches
// to the rule set of its kind.
type typedPath[S unit] struct {
	kind EncodingKind
	path S
}

func deriveKind[S unit](path S) EncodingKind {
	if _, ok := ParsePrefix(path); ok || (len(path) > 0 && path[0] == '\\') {
		return EncodingWindows
	}
	return EncodingUnix
}

// Kind returns the encoding of the path.
func (t typedPath[S]) Kind() EncodingKind { return t.kind }

func (t typedPath[S]) Rules() *Rules { return RulesFor(t.kind) }

func (t typedPath[S]) IsUnix() bool { return t.kind == EncodingUnix }

func (t typedPath[S]) IsWindows() bool { return t.kind == EncodingWindows }

// Components returns a fresh iterator over the path's components.
func (t typedPath[S]) Components() Components[S] { return Parse(t.Rules(), t.path) }

func (t typedPath[S]) HasRoot() bool {
	c := t.Components()
	return c.HasRoot()
}

func (t typedPath[S]) IsAbsolute() bool {
	c := t.Components()
	return c.IsAbsolute()
}

func (t typedPath[S]) IsRelative() bool { return !t.IsAbsolute() }

func (t typedPath[S]) IsValid() bool { return isValidPath(t.Rules(), t.path) }

func (t typedPath[S]) FileName() (S, bool) { return fileNameOf(t.Rules(), t.path) }

func (t typedPath[S]) FileStem() (S, bool) { return fileStemOf(t.Rules(), t.path) }

func (t typedPath[S]) Extension() (S, bool) { return extensionOf(t.Rules(), t.path) }

func (t typedPath[S]) String() string { return string(t.path) }

func (t typedPath[S]) parent() (typedPath[S], bool) {
	parent, ok := parentOf(t.Rules(), t.path)
	return typedPath[S]{t.kind, parent}, ok
}

func (t typedPath[S]) startsWith(o typedPath[S]) bool {
	return t.kind == o.kind && startsWith(t.Rules(), t.path, o.path)
}

func (t typedPath[S]) endsWith(o typedPath[S]) bool {
	return t.kind == o.kind && endsWith(t.Rules(), t.path, o.path)
}

func (t typedPath[S]) stripPrefix(o typedPath[S]) (typedPath[S], error) {
	if t.kind != o.kind {
		return typedPath[S]{t.kind, t.path[:0]}, ErrPrefixNotFound
	}
	rest, err := stripPrefix(t.Rules(), t.path, o.path)
	return typedPath[S]{t.kind, rest}, err
}

func (t typedPath[S]) compare(o typedPath[S]) int {
	if t.kind != o.kind {
		return int(t.kind) - int(o.kind)
	}
	return comparePaths(t.Rules(), t.path, o.path)
}

// adopt returns o's path under t's encoding.
func (t typedPath[S]) adopt(o typedPath[S]) S {
	if t.kind == o.kind {
		return o.path
	}
	buf, _ := convert(o.Rules(), t.Rules(), o.path, false)
	return S(buf)
}

func (t typedPath[S]) join(o typedPath[S]) []byte {
	return push(t.Rules(), clone(t.path), t.adopt(o))
}

func (t typedPath[S]) joinChecked(o typedPath[S]) ([]byte, error) {
	return pushChecked(t.Rules(), clone(t.path), t.adopt(o))
}

func (t typedPath[S]) absolutize(cwd typedPath[S]) ([]byte, error) {
	return absolutize(t.Rules(), t.path, t.adopt(cwd))
}

// absolutizeWith reads the current directory from fn, under the path's own encoding.
func (t typedPath[S]) absolutizeWith(fn CurrentDirFunc) ([]byte, error) {
	if t.IsAbsolute() {
		return normalize(t.Rules(), t.path), nil
	}
	cwd, err := callCurrentDir(fn)
	if err != nil {
		return nil, err
	}
	return absolutize(t.Rules(), t.path, cwd)
}

func (t typedPath[S]) withEncoding(kind EncodingKind, checked bool) ([]byte, error) {
	return convert(t.Rules(), RulesFor(kind), t.path, checked)
}

// TypedPath is a path whose encoding is chosen at runtime. Paths of different encodings never
// compare equal; joining one onto another converts it first.
type TypedPath struct {
	typedPath[[]byte]
}

// NewTypedPath wraps b, without copying it, as a path of the given encoding.
func NewTypedPath(kind EncodingKind, b []byte) TypedPath {
	RulesFor(kind)
	return TypedPath{typedPath[[]byte]{kind, b}}
}

// DeriveTypedPath guesses the encoding of b: Windows if it starts with a Windows prefix or a
// backslash, Unix otherwise.
func DeriveTypedPath(b []byte) TypedPath {
	return NewTypedPath(deriveKind(b), b)
}

// Bytes returns the path's bytes.
func (t TypedPath) Bytes() []byte { return t.path }

// Parent returns the path without its final component.
func (t TypedPath) Parent() (TypedPath, bool) {
	p, ok := t.parent()
	return TypedPath{p}, ok
}

func (t TypedPath) StartsWith(base TypedPath) bool { return t.startsWith(base.typedPath) }

func (t TypedPath) EndsWith(child TypedPath) bool { return t.endsWith(child.typedPath) }

// StripPrefix returns the path relative to base. Paths of different encodings share no prefix.
func (t TypedPath) StripPrefix(base TypedPath) (TypedPath, error) {
	p, err := t.stripPrefix(base.typedPath)
	return TypedPath{p}, err
}

// Join pushes frag onto a copy of the path, converting it to the path's encoding if needed.
func (t TypedPath) Join(frag TypedPath) TypedPath {
	return NewTypedPath(t.kind, t.join(frag.typedPath))
}

// JoinChecked is the checked variant of Join.
func (t TypedPath) JoinChecked(frag TypedPath) (TypedPath, error) {
	buf, err := t.joinChecked(frag.typedPath)
	if err != nil {
		return TypedPath{}, err
	}
	return NewTypedPath(t.kind, buf), nil
}

func (t TypedPath) Normalize() TypedPath {
	return NewTypedPath(t.kind, normalize(t.Rules(), t.path))
}

// Absolutize resolves the path against cwd, converted to the path's encoding if needed.
func (t TypedPath) Absolutize(cwd TypedPath) (TypedPath, error) {
	buf, err := t.absolutize(cwd.typedPath)
	if err != nil {
		return TypedPath{}, err
	}
	return NewTypedPath(t.kind, buf), nil
}

// AbsolutizeWith resolves the path against the directory returned by fn, which is read with the
// path's encoding.
func (t TypedPath) AbsolutizeWith(fn CurrentDirFunc) (TypedPath, error) {
	buf, err := t.absolutizeWith(fn)
	if err != nil {
		return TypedPath{}, err
	}
	return NewTypedPath(t.kind, buf), nil
}

func (t TypedPath) WithFileName(name []byte) TypedPath {
	return NewTypedPath(t.kind, setFileName(t.Rules(), clone(t.path), name))
}

func (t TypedPath) WithExtension(ext []byte) TypedPath {
	buf, _ := setExtension(t.Rules(), clone(t.path), ext)
	return NewTypedPath(t.kind, buf)
}

// WithEncoding converts the path to another encoding.
func (t TypedPath) WithEncoding(kind EncodingKind) TypedPath {
	buf, _ := t.withEncoding(kind, false)
	return NewTypedPath(kind, buf)
}

// WithEncodingChecked converts the path to another encoding, failing if a component would be
// invalid there.
func (t TypedPath) WithEncodingChecked(kind EncodingKind) (TypedPath, error) {
	buf, err := t.withEncoding(kind, true)
	if err != nil {
		return TypedPath{}, err
	}
	return NewTypedPath(kind, buf), nil
}

func (t TypedPath) Equal(o TypedPath) bool { return t.compare(o.typedPath) == 0 }

func (t TypedPath) Compare(o TypedPath) int { return t.compare(o.typedPath) }

// ToUtf8 returns the path as text, failing if it is not valid UTF-8.
func (t TypedPath) ToUtf8() (Utf8TypedPath, error) {
	if !utf8.Valid(t.path) {
		return Utf8TypedPath{}, ErrInvalidUTF8
	}
	return Utf8TypedPath{typedPath[string]{t.kind, string(t.path)}}, nil
}

// Utf8TypedPath is the UTF-8 flavour of TypedPath.
type Utf8TypedPath struct {
	typedPath[string]
}

// NewUtf8TypedPath wraps s as a path of the given encoding.
func NewUtf8TypedPath(kind EncodingKind, s string) Utf8TypedPath {
	RulesFor(kind)
	return Utf8TypedPath{typedPath[string]{kind, s}}
}

// DeriveUtf8TypedPath guesses the encoding of s, like DeriveTypedPath.
func DeriveUtf8TypedPath(s string) Utf8TypedPath {
	return NewUtf8TypedPath(deriveKind(s), s)
}

func (t Utf8TypedPath) Parent() (Utf8TypedPath, bool) {
	p, ok := t.parent()
	return Utf8TypedPath{p}, ok
}

func (t Utf8TypedPath) StartsWith(base Utf8TypedPath) bool { return t.startsWith(base.typedPath) }

func (t Utf8TypedPath) EndsWith(child Utf8TypedPath) bool { return t.endsWith(child.typedPath) }

func (t Utf8TypedPath) StripPrefix(base Utf8TypedPath) (Utf8TypedPath, error) {
	p, err := t.stripPrefix(base.typedPath)
	return Utf8TypedPath{p}, err
}

func (t Utf8TypedPath) Join(frag Utf8TypedPath) Utf8TypedPath {
	return NewUtf8TypedPath(t.kind, string(t.join(frag.typedPath)))
}

func (t Utf8TypedPath) JoinChecked(frag Utf8TypedPath) (Utf8TypedPath, error) {
	buf, err := t.joinChecked(frag.typedPath)
	if err != nil {
		return Utf8TypedPath{}, err
	}
	return NewUtf8TypedPath(t.kind, string(buf)), nil
}

func (t Utf8TypedPath) Normalize() Utf8TypedPath {
	return NewUtf8TypedPath(t.kind, string(normalize(t.Rules(), t.path)))
}

func (t Utf8TypedPath) Absolutize(cwd Utf8TypedPath) (Utf8TypedPath, error) {
	buf, err := t.absolutize(cwd.typedPath)
	if err != nil {
		return Utf8TypedPath{}, err
	}
	return NewUtf8TypedPath(t.kind, string(buf)), nil
}

func (t Utf8TypedPath) AbsolutizeWith(fn CurrentDirFunc) (Utf8TypedPath, error) {
	buf, err := t.absolutizeWith(fn)
	if err != nil {
		return Utf8TypedPath{}, err
	}
	if !utf8.Valid(buf) {
		return Utf8TypedPath{}, ErrInvalidUTF8
	}
	return NewUtf8TypedPath(t.kind, string(buf)), nil
}

func (t Utf8TypedPath) WithFileName(name string) Utf8TypedPath {
	return NewUtf8TypedPath(t.kind, string(setFileName(t.Rules(), clone(t.path), name)))
}

func (t Utf8TypedPath) WithExtension(ext string) Utf8TypedPath {
	buf, _ := setExtension(t.Rules(), clone(t.path), ext)
	return NewUtf8TypedPath(t.kind, string(buf))
}

func (t Utf8TypedPath) WithEncoding(kind EncodingKind) Utf8TypedPath {
	buf, _ := t.withEncoding(kind, false)
	return NewUtf8TypedPath(kind, string(buf))
}

func (t Utf8TypedPath) WithEncodingChecked(kind EncodingKind) (Utf8TypedPath, error) {
	buf, err := t.withEncoding(kind, true)
	if err != nil {
		return Utf8TypedPath{}, err
	}
	return NewUtf8TypedPath(kind, string(buf)), nil
}

func (t Utf8TypedPath) Equal(o Utf8TypedPath) bool { return t.compare(o.typedPath) == 0 }

func (t Utf8TypedPath) Compare(o Utf8TypedPath) int { return t.compare(o.typedPath) }

// AsBytes returns the byte flavour of the path.
func (t Utf8TypedPath) AsBytes() TypedPath {
	return NewTypedPath(t.kind, []byte(t.path))
}
