package typedpath

import (
	"cmp"
	"strings"
)

// Kind identifies the variant of a Component.
type Kind int

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind -transform snake-upper
const (
	// A Windows prefix, e.g. `C:` or `\\server\share`. Always the first component.
	KindPrefix Kind = iota
	// The root separator, at most one per path and only after an optional prefix.
	KindRootDir
	// A `.` reference. Only reported at the start of a relative path, or anywhere in a verbatim
	// Windows path.
	KindCurDir
	// A `..` reference.
	KindParentDir
	// Any other segment.
	KindNormal
)

// PrefixKind identifies the variant of a Windows prefix.
type PrefixKind int

//go:generate go run github.com/dmarkham/enumer -type=PrefixKind -trimprefix Prefix -transform snake-upper
const (
	// `\\?\name`
	PrefixVerbatim PrefixKind = iota
	// `\\?\UNC\server\share`
	PrefixVerbatimUNC
	// `\\?\C:`
	PrefixVerbatimDisk
	// `\\.\name`
	PrefixDeviceNS
	// `\\server\share`
	PrefixUNC
	// `C:`
	PrefixDisk
)

// PrefixComponent is a parsed Windows prefix.
type PrefixComponent[S unit] struct {
	Kind PrefixKind
	// Raw holds the exact bytes the prefix was parsed from.
	Raw S
	// Server and Share are set for UNC kinds. Share may be empty for verbatim UNC prefixes.
	Server, Share S
	// Name is set for device namespace and verbatim kinds.
	Name S
	// Drive is the upper-cased drive letter of disk kinds.
	Drive byte
}

// IsVerbatim returns true for prefixes which disable path normalization (`\\?\`).
func (p PrefixComponent[S]) IsVerbatim() bool {
	switch p.Kind {
	case PrefixVerbatim, PrefixVerbatimUNC, PrefixVerbatimDisk:
		return true
	}
	return false
}

// IsDrive returns true for the plain drive prefix, the only one which is not implicitly rooted.
func (p PrefixComponent[S]) IsDrive() bool {
	return p.Kind == PrefixDisk
}

// HasImplicitRoot returns true if paths starting with the prefix are rooted even without a
// separator following it.
func (p PrefixComponent[S]) HasImplicitRoot() bool {
	return !p.IsDrive()
}

func (p PrefixComponent[S]) compare(o PrefixComponent[S]) int {
	return cmp.Or(
		cmp.Compare(p.Kind, o.Kind),
		cmp.Compare(p.Drive, o.Drive),
		strings.Compare(string(p.Server), string(o.Server)),
		strings.Compare(string(p.Share), string(o.Share)),
		strings.Compare(string(p.Name), string(o.Name)),
	)
}

// Component is one syntactic unit of a parsed path.
type Component[S unit] struct {
	Kind Kind
	// Prefix is set iff Kind is KindPrefix.
	Prefix PrefixComponent[S]
	// Name is set iff Kind is KindNormal.
	Name S
}

func normal[S unit](name S) Component[S] {
	return Component[S]{Kind: KindNormal, Name: name}
}

// IsRoot returns true for the root separator and for prefixes carrying an implicit root.
func (c Component[S]) IsRoot() bool {
	switch c.Kind {
	case KindRootDir:
		return true
	case KindPrefix:
		return c.Prefix.HasImplicitRoot()
	}
	return false
}

// IsNormal returns true for named segments.
func (c Component[S]) IsNormal() bool { return c.Kind == KindNormal }

// IsParent returns true for `..`.
func (c Component[S]) IsParent() bool { return c.Kind == KindParentDir }

// IsCurrent returns true for `.`.
func (c Component[S]) IsCurrent() bool { return c.Kind == KindCurDir }

// IsValid returns true unless the component is a normal segment containing a byte which the
// rules disallow.
func (c Component[S]) IsValid(r *Rules) bool {
	return c.Kind != KindNormal || validSegment(r, c.Name)
}

// Equal compares two components. Prefixes compare by their parsed value, not their raw bytes.
func (c Component[S]) Equal(o Component[S]) bool {
	return c.Compare(o) == 0
}

// Compare orders components by kind first, then by value.
func (c Component[S]) Compare(o Component[S]) int {
	if n := cmp.Compare(c.Kind, o.Kind); n != 0 {
		return n
	}
	switch c.Kind {
	case KindPrefix:
		return c.Prefix.compare(o.Prefix)
	case KindNormal:
		return strings.Compare(string(c.Name), string(o.Name))
	}
	return 0
}

// appendTo renders the component under the given rules.
func (c Component[S]) appendTo(buf []byte, r *Rules) []byte {
	switch c.Kind {
	case KindPrefix:
		return append(buf, c.Prefix.Raw...)
	case KindRootDir:
		return append(buf, r.Separator)
	case KindCurDir:
		return append(buf, '.')
	case KindParentDir:
		return append(buf, '.', '.')
	default:
		return append(buf, c.Name...)
	}
}

// Render returns the component's bytes under the given rules.
func (c Component[S]) Render(r *Rules) S {
	return S(c.appendTo(nil, r))
}
