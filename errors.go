package typedpath

import (
	"errors"
	"fmt"
)

// Sentinel errors, for use with errors.Is. Parsing never fails: these are only returned by
// validating operations.
var (
	// ErrInvalidComponent is returned when a normal component contains a disallowed byte.
	ErrInvalidComponent = errors.New("invalid character in component")
	// ErrNotRelative is returned when a checked append is given an absolute or rooted fragment.
	ErrNotRelative = errors.New("fragment must be relative")
	// ErrUnexpectedPrefix is returned when a checked append is given a fragment with a prefix.
	ErrUnexpectedPrefix = errors.New("fragment must not carry a prefix")
	// ErrPathTraversal is returned when a checked append would escape its base path.
	ErrPathTraversal = errors.New("path traversal")
	// ErrConversion is returned when a checked conversion produces an invalid component.
	ErrConversion = errors.New("encoding conversion rejected")
	// ErrCurrentDirUnavailable wraps failures of the current directory provider.
	ErrCurrentDirUnavailable = errors.New("current directory unavailable")
	// ErrNotAbsolute is returned when a current directory is not absolute.
	ErrNotAbsolute = errors.New("path is not absolute")
	// ErrPrefixNotFound is returned when stripping a base which the path does not start with.
	ErrPrefixNotFound = errors.New("prefix not found")
	// ErrInvalidUTF8 is returned when bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// RejectReason captures which condition rejected a checked append.
type RejectReason int

//go:generate go run github.com/dmarkham/enumer -type=RejectReason -trimprefix Reject -transform snake-upper
const (
	// The fragment is absolute or rooted.
	RejectNotRelative RejectReason = iota
	// The fragment starts with a Windows prefix.
	RejectPrefix
	// A component of the fragment contains a disallowed byte.
	RejectInvalidComponent
	// The fragment's parent references escape the base path.
	RejectTraversal
)

var rejectSentinels = map[RejectReason]error{
	RejectNotRelative:      ErrNotRelative,
	RejectPrefix:           ErrUnexpectedPrefix,
	RejectInvalidComponent: ErrInvalidComponent,
	RejectTraversal:        ErrPathTraversal,
}

// CheckedPathError is returned by checked pushes and joins.
type CheckedPathError struct {
	Reason RejectReason
	// Fragment is the rejected input.
	Fragment string
	// Component is the offending component, when a single one is to blame.
	Component string
}

// Error implements the error interface.
func (e *CheckedPathError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%v: %q in %q", e.Unwrap(), e.Component, e.Fragment)
	}
	return fmt.Sprintf("%v: %q", e.Unwrap(), e.Fragment)
}

// Unwrap returns the sentinel matching the rejection reason.
func (e *CheckedPathError) Unwrap() error {
	return rejectSentinels[e.Reason]
}

// ConversionError is returned by checked conversions.
type ConversionError struct {
	From, To EncodingKind
	// Component is the segment which is invalid under the target rules.
	Component string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %q from %v is invalid under %v rules", ErrConversion, e.Component, e.From, e.To)
}

// Unwrap returns ErrConversion.
func (e *ConversionError) Unwrap() error { return ErrConversion }
