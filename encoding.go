package typedpath

import (
	"strings"

	"github.com/chipsenkbeil/typed-path/internal/except"
)

// unit is the storage of a path: raw bytes or UTF-8 text. Every parsing and rendering algorithm
// is written once against this constraint.
type unit interface {
	string | []byte
}

// EncodingKind identifies a rule set at runtime.
type EncodingKind int

//go:generate go run github.com/dmarkham/enumer -type=EncodingKind -trimprefix Encoding -transform lower
const (
	// POSIX-style paths: `/` separated, no prefixes.
	EncodingUnix EncodingKind = iota
	// Windows-style paths: `\` (or `/`) separated, with drive, UNC and device prefixes.
	EncodingWindows
)

// Rules is the syntax of one platform's paths. Values are immutable and shared; they never hold
// path data.
type Rules struct {
	// Kind of the rule set.
	Kind EncodingKind
	// Separator is the primary separator, used whenever a separator is rendered.
	Separator byte
	// AltSeparator is also accepted as a separator when parsing, or 0 if there is none. Verbatim
	// Windows paths ignore it.
	AltSeparator byte
	// Disallowed contains the bytes which may not appear in a normal component.
	Disallowed string
	// Prefixes is true iff the Windows prefix grammar applies.
	Prefixes bool
	// ReservedNames are device names which the platform reserves, compared case-insensitively.
	ReservedNames []string
}

var (
	unixRules = Rules{
		Kind:       EncodingUnix,
		Separator:  '/',
		Disallowed: "/\x00",
	}

	windowsRules = Rules{
		Kind:         EncodingWindows,
		Separator:    '\\',
		AltSeparator: '/',
		Disallowed:   "\\/:?*\"<>|\x00",
		Prefixes:     true,
		ReservedNames: []string{
			"CON", "PRN", "AUX", "NUL",
			"COM0", "COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
			"LPT0", "LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
		},
	}
)

// Encoding is satisfied by the two supported rule sets. It is used as a type parameter so that
// paths with different rule sets are different types.
type Encoding interface {
	Unix | Windows
	Rules() *Rules
}

// Unix selects POSIX-style path rules.
type Unix struct{}

// Rules implements Encoding.
func (Unix) Rules() *Rules { return &unixRules }

// Windows selects Windows-style path rules.
type Windows struct{}

// Rules implements Encoding.
func (Windows) Rules() *Rules { return &windowsRules }

func rulesOf[E Encoding]() *Rules {
	var enc E
	return enc.Rules()
}

// RulesFor returns the rule set of a kind. It panics on unknown kinds.
func RulesFor(kind EncodingKind) *Rules {
	except.Must(kind.IsAEncodingKind(), "unknown encoding kind: %v", kind)
	if kind == EncodingWindows {
		return &windowsRules
	}
	return &unixRules
}

// Label returns the name of the rule set, e.g. "unix".
func (r *Rules) Label() string {
	return r.Kind.String()
}

// IsSeparator returns true iff b separates components outside of verbatim paths.
func (r *Rules) IsSeparator(b byte) bool {
	return b == r.Separator || (r.AltSeparator != 0 && b == r.AltSeparator)
}

func (r *Rules) isSeparator(b byte, verbatim bool) bool {
	if verbatim {
		return b == r.Separator
	}
	return r.IsSeparator(b)
}

// IsReservedName returns true if name, ignoring any extension, is reserved by the platform.
func (r *Rules) IsReservedName(name string) bool {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	for _, reserved := range r.ReservedNames {
		if strings.EqualFold(name, reserved) {
			return true
		}
	}
	return false
}

// validSegment returns true iff seg contains none of the rule set's disallowed bytes.
func validSegment[S unit](r *Rules, seg S) bool {
	for i := 0; i < len(seg); i++ {
		if strings.IndexByte(r.Disallowed, seg[i]) >= 0 {
			return false
		}
	}
	return true
}

func hasPrefix[S unit](s S, prefix string) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == prefix
}
