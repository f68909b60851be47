package pathtool

import (
	"strings"
	"testing"

	typedpath "github.com/chipsenkbeil/typed-path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherEntries(t *testing.T) {
	listing := strings.Join([]string{
		"docs/readme.md",
		"",
		"docs/../img/logo.png",
		"../../etc/passwd",
		"/etc/shadow",
		"__MACOSX/docs/._readme.md",
		"bin/run\x00",
	}, "\n")

	base := typedpath.NewTypedPath(typedpath.EncodingUnix, []byte("/srv/extract"))
	entries, err := GatherEntries(base, strings.NewReader(listing), []string{"__MACOSX/*"})
	require.NoError(t, err)

	var got []string
	for _, entry := range entries {
		got = append(got, entry.Verdict.String()+" "+entry.Name)
	}
	assert.Equal(t, []string{
		"ACCEPTED docs/readme.md",
		"ACCEPTED docs/../img/logo.png",
		"TRAVERSAL ../../etc/passwd",
		"NOT_RELATIVE /etc/shadow",
		"INVALID bin/run\x00",
	}, got)

	assert.Equal(t, 3, entries[1].Line)
	assert.Equal(t, "/srv/extract/docs/readme.md", entries[0].Dest.String())
	assert.True(t, entries[0].Accepted())
	assert.False(t, entries[2].Accepted())
}

func TestGatherEntries_Windows(t *testing.T) {
	listing := "a\\b.txt\r\n..\\..\\evil.dll\r\nD:payload\r\nc:\\x\r\n"
	base := typedpath.NewTypedPath(typedpath.EncodingWindows, []byte(`C:\out`))
	entries, err := GatherEntries(base, strings.NewReader(listing), nil)
	require.NoError(t, err)

	var got []Verdict
	for _, entry := range entries {
		got = append(got, entry.Verdict)
	}
	assert.Equal(t, []Verdict{VerdictAccepted, VerdictTraversal, VerdictPrefixed, VerdictNotRelative}, got)
}

func TestGatherEntries_BadPattern(t *testing.T) {
	base := typedpath.NewTypedPath(typedpath.EncodingUnix, []byte("/srv"))
	_, err := GatherEntries(base, strings.NewReader("a"), []string{"[unclosed"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
