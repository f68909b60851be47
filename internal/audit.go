package pathtool

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	typedpath "github.com/chipsenkbeil/typed-path"
	"github.com/gobwas/glob"
)

// ErrRejectedEntries is returned when at least one audited entry was rejected.
var ErrRejectedEntries = errors.New("rejected entries")

// Verdict captures the outcome of checking an entry name against a base directory.
type Verdict int

//go:generate go run github.com/dmarkham/enumer -type=Verdict -trimprefix Verdict -transform snake-upper
const (
	// The entry stays inside the base directory.
	VerdictAccepted Verdict = iota
	// The entry is absolute or rooted.
	VerdictNotRelative
	// The entry starts with a Windows prefix.
	VerdictPrefixed
	// The entry contains a character which is invalid under the base's encoding.
	VerdictInvalid
	// The entry escapes the base directory.
	VerdictTraversal
)

var verdictsByReason = map[typedpath.RejectReason]Verdict{
	typedpath.RejectNotRelative:      VerdictNotRelative,
	typedpath.RejectPrefix:           VerdictPrefixed,
	typedpath.RejectInvalidComponent: VerdictInvalid,
	typedpath.RejectTraversal:        VerdictTraversal,
}

// Entry is an audited entry name, typically from an archive listing.
type Entry struct {
	// Name as read from the listing.
	Name string
	// Line number of the entry in the listing, starting at 1.
	Line int
	// Destination of the entry, set iff it was accepted.
	Dest typedpath.TypedPath
	// Verdict of the check.
	Verdict Verdict
}

// Accepted returns true iff the entry may be extracted.
func (e *Entry) Accepted() bool {
	return e.Verdict == VerdictAccepted
}

func verdictOf(err error) Verdict {
	var cerr *typedpath.CheckedPathError
	if errors.As(err, &cerr) {
		if v, ok := verdictsByReason[cerr.Reason]; ok {
			return v
		}
	}
	return VerdictInvalid
}

type skipPredicate []glob.Glob

func newSkipPredicate(pats []string) (skipPredicate, error) {
	var globs []glob.Glob
	for _, pat := range pats {
		compiled, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("%w: bad skip pattern %q: %v", ErrInvalidConfig, pat, err)
		}
		globs = append(globs, compiled)
	}
	return skipPredicate(globs), nil
}

func (p skipPredicate) skips(name string) bool {
	for _, g := range p {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// GatherEntries reads one entry name per line and checks each against base. Blank lines and names
// matching a skip pattern are ignored.
func GatherEntries(base typedpath.TypedPath, r io.Reader, skip []string) ([]Entry, error) {
	slog.Debug("Gathering entries...", dataAttrs(slog.String("base", base.String())))

	pred, err := newSkipPredicate(skip)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		name := strings.TrimSuffix(scanner.Text(), "\r")
		if name == "" || pred.skips(name) {
			continue
		}
		entry := Entry{Name: name, Line: line}
		frag := typedpath.NewTypedPath(base.Kind(), []byte(name))
		if dest, err := base.JoinChecked(frag); err != nil {
			entry.Verdict = verdictOf(err)
			slog.Debug("Rejected entry.", dataAttrs(slog.String("name", name)), errAttr(err))
		} else {
			entry.Dest = dest
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("Gathered %v entries.", len(entries)))
	return entries, nil
}
