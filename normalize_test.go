package typedpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		rules *Rules
		path  string
		want  string
	}{
		{&unixRules, "foo/bar//baz/./asdf/quux/..", "foo/bar/baz/asdf"},
		{&unixRules, "/a/../..", "/.."},
		{&unixRules, "../a/../b", "../b"},
		{&unixRules, "./a", "a"},
		{&unixRules, "a/..", ""},
		{&unixRules, "", ""},
		{&unixRules, "/", "/"},
		{&unixRules, "//a/./b/", "/a/b"},
		{&windowsRules, `C:\a\..\b`, `C:\b`},
		{&windowsRules, `C:a/./b`, `C:a\b`},
		{&windowsRules, `C:..`, `C:..`},
		{&windowsRules, `\\server\share\a\..`, `\\server\share\`},
		{&windowsRules, `/a/b`, `\a\b`},
		{&windowsRules, `.\C:`, `.\C:`},
		{&windowsRules, `\\?\C:\a\.\b`, `\\?\C:\a\b`},
	} {
		t.Run(tc.rules.Label()+" "+tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, string(normalize(tc.rules, tc.path)))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	paths := []string{
		"", ".", "..", "/", "a/b/../../..", "/x/./y/../z/", "./../a", `C:`, `C:\`, `C:..\x`,
		`\\server\share\..`, `\\?\UNC\s\h\.\a\..\b`, `\\.\dev\x\..`, `a\b:c\..\d`, `.\C:\x`,
	}
	for _, rules := range []*Rules{&unixRules, &windowsRules} {
		for _, p := range paths {
			once := normalize(rules, p)
			twice := normalize(rules, once)
			assert.Equal(t, string(once), string(twice), "%s %q", rules.Label(), p)
		}
	}
}

func TestNormalize_NoCurDir(t *testing.T) {
	for _, p := range []string{"./a/./b", "a/.", "."} {
		for comp := range Parse(&unixRules, string(normalize(&unixRules, p))).All() {
			assert.NotEqual(t, KindCurDir, comp.Kind, p)
		}
	}
}

func TestAbsolutize(t *testing.T) {
	for _, tc := range []struct {
		rules *Rules
		path  string
		cwd   string
		want  string
	}{
		{&unixRules, "a/b/../c/./d", "/x/y", "/x/y/a/c/d"},
		{&unixRules, "/abs/./p", "/ignored", "/abs/p"},
		{&unixRules, "../..", "/x", "/.."},
		{&windowsRules, `foo`, `C:\work`, `C:\work\foo`},
		{&windowsRules, `C:foo`, `C:\work`, `C:\work\foo`},
		{&windowsRules, `D:foo`, `C:\work`, `D:\foo`},
		{&windowsRules, `\x`, `C:\work`, `C:\x`},
		{&windowsRules, `a\..\b`, `\\srv\shr\dir`, `\\srv\shr\dir\b`},
	} {
		t.Run(tc.rules.Label()+" "+tc.path, func(t *testing.T) {
			got, err := absolutize(tc.rules, tc.path, tc.cwd)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestAbsolutize_RelativeCwd(t *testing.T) {
	_, err := absolutize(&unixRules, "a", "x/y")
	assert.ErrorIs(t, err, ErrNotAbsolute)

	_, err = absolutize(&windowsRules, "a", `\x`)
	assert.ErrorIs(t, err, ErrNotAbsolute)
}

func TestAbsolutizeWith(t *testing.T) {
	cause := errors.New("boom")
	failing := func() ([]byte, error) { return nil, cause }

	_, err := UnixPath("a").AbsolutizeWith(failing)
	assert.ErrorIs(t, err, ErrCurrentDirUnavailable)
	assert.ErrorIs(t, err, cause)

	got, err := UnixPath("/a/./b").AbsolutizeWith(failing)
	require.NoError(t, err)
	assert.Equal(t, "/a/b", got.String())

	got, err = UnixPath("c").AbsolutizeWith(func() ([]byte, error) { return []byte("/r"), nil })
	require.NoError(t, err)
	assert.Equal(t, "/r/c", got.String())
}
