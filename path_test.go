package typedpath

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_FileName(t *testing.T) {
	for _, tc := range []struct {
		path         string
		name         string
		stem         string
		ext          string
		hasName      bool
		hasExtension bool
	}{
		{"/usr/bin/", "bin", "bin", "", true, false},
		{"tmp/foo.txt", "foo.txt", "foo", "txt", true, true},
		{"foo.txt/.", "foo.txt", "foo", "txt", true, true},
		{"foo.tar.gz", "foo.tar.gz", "foo.tar", "gz", true, true},
		{".bashrc", ".bashrc", ".bashrc", "", true, false},
		{"foo.", "foo.", "foo", "", true, true},
		{"foo/..", "", "", "", false, false},
		{"/", "", "", "", false, false},
		{"", "", "", "", false, false},
	} {
		t.Run(tc.path, func(t *testing.T) {
			p := Utf8UnixPath(tc.path)
			name, ok := p.FileName()
			assert.Equal(t, tc.hasName, ok)
			assert.Equal(t, tc.name, name)
			stem, ok := p.FileStem()
			assert.Equal(t, tc.hasName, ok)
			assert.Equal(t, tc.stem, stem)
			ext, ok := p.Extension()
			assert.Equal(t, tc.hasExtension, ok)
			assert.Equal(t, tc.ext, ext)
		})
	}
}

func TestPath_Parent(t *testing.T) {
	for _, tc := range []struct {
		rules  EncodingKind
		path   string
		parent string
		ok     bool
	}{
		{EncodingUnix, "/a/b", "/a", true},
		{EncodingUnix, "/a", "/", true},
		{EncodingUnix, "/", "", false},
		{EncodingUnix, "a", "", true},
		{EncodingUnix, "", "", false},
		{EncodingUnix, "a/b/", "a", true},
		{EncodingWindows, `C:\a`, `C:\`, true},
		{EncodingWindows, `C:\`, ``, false},
		{EncodingWindows, `C:a`, `C:`, true},
		{EncodingWindows, `\\server\share\a`, `\\server\share\`, true},
		{EncodingWindows, `\\server\share`, ``, false},
	} {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := NewUtf8TypedPath(tc.rules, tc.path).Parent()
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.parent, got.String())
			}
		})
	}
}

func TestPath_Ancestors(t *testing.T) {
	var got []string
	for p := range UnixPath("/a/b").Ancestors() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"/a/b", "/a", "/"}, got)
}

func TestPath_StartsWith(t *testing.T) {
	p := UnixPath("/etc/passwd")
	assert.True(t, p.StartsWith(UnixPath("/etc")))
	assert.True(t, p.StartsWith(UnixPath("/etc/")))
	assert.True(t, p.StartsWith(UnixPath("/etc/passwd")))
	assert.True(t, p.StartsWith(UnixPath("/etc/passwd/")))
	assert.False(t, p.StartsWith(UnixPath("/e")))
	assert.False(t, p.StartsWith(UnixPath("/etc/passwd.txt")))

	w := WindowsPath(`c:/Users/me`)
	assert.True(t, w.StartsWith(WindowsPath(`C:\Users`)))
}

func TestPath_EndsWith(t *testing.T) {
	p := UnixPath("/etc/resolv.conf")
	assert.True(t, p.EndsWith(UnixPath("resolv.conf")))
	assert.True(t, p.EndsWith(UnixPath("etc/resolv.conf")))
	assert.True(t, p.EndsWith(UnixPath("/etc/resolv.conf")))
	assert.False(t, p.EndsWith(UnixPath("/resolv.conf")))
	assert.False(t, p.EndsWith(UnixPath("conf")))
}

func TestPath_StripPrefix(t *testing.T) {
	p := UnixPath("/test/haha/foo.txt")

	got, err := p.StripPrefix(UnixPath("/test"))
	require.NoError(t, err)
	assert.Equal(t, "haha/foo.txt", got.String())

	got, err = p.StripPrefix(UnixPath("/test/"))
	require.NoError(t, err)
	assert.Equal(t, "haha/foo.txt", got.String())

	got, err = p.StripPrefix(UnixPath("/test/haha/foo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "", got.String())

	_, err = p.StripPrefix(UnixPath("/haha"))
	assert.ErrorIs(t, err, ErrPrefixNotFound)
}

func TestPath_Compare(t *testing.T) {
	assert.True(t, UnixPath("a//b/").Equal(UnixPath("a/b")))
	assert.True(t, UnixPath("a/./b").Equal(UnixPath("a/b")))
	assert.False(t, UnixPath("a/../b").Equal(UnixPath("b")))
	assert.True(t, WindowsPath(`C:\a`).Equal(WindowsPath(`c:/a`)))
	assert.Negative(t, UnixPath("/a").Compare(UnixPath("/b")))
	assert.Positive(t, UnixPath("a/b").Compare(UnixPath("a")))

	paths := []UnixPath{UnixPath("b"), UnixPath("a/c"), UnixPath("a"), UnixPath("a/b")}
	slices.SortFunc(paths, UnixPath.Compare)
	assert.Equal(t, []UnixPath{UnixPath("a"), UnixPath("a/b"), UnixPath("a/c"), UnixPath("b")}, paths)
}

func TestPath_IsValid(t *testing.T) {
	assert.True(t, UnixPath(`/a\b:c`).IsValid())
	assert.False(t, UnixPath("/a\x00b").IsValid())
	assert.True(t, WindowsPath(`C:\a\b`).IsValid())
	assert.False(t, WindowsPath(`C:\a\b?`).IsValid())
	assert.False(t, WindowsPath(`\\?\C:\a/b`).IsValid())
}

func TestPathBuf_Push(t *testing.T) {
	for _, tc := range []struct {
		kind EncodingKind
		base string
		frag string
		want string
	}{
		{EncodingUnix, "/etc", "passwd", "/etc/passwd"},
		{EncodingUnix, "/etc/", "passwd", "/etc/passwd"},
		{EncodingUnix, "/etc", "/bin", "/bin"},
		{EncodingUnix, "", "a", "a"},
		{EncodingUnix, "a", "", "a"},
		{EncodingUnix, "a", "../b", "a/../b"},
		{EncodingWindows, `C:\a`, `D:\b`, `D:\b`},
		{EncodingWindows, `C:\a`, `D:b`, `D:b`},
		{EncodingWindows, `C:\a`, `\b`, `C:\b`},
		{EncodingWindows, `\\srv\shr\a`, `\b`, `\\srv\shr\b`},
		{EncodingWindows, `C:`, `b`, `C:b`},
		{EncodingWindows, `C:\a`, `b`, `C:\a\b`},
		{EncodingWindows, `C:/a/`, `b`, `C:/a/b`},
		{EncodingWindows, `\\?\C:\a`, `..\b\.\c`, `\\?\C:\b\c`},
		{EncodingWindows, `\\?\C:\a`, `\d`, `\\?\C:\d`},
	} {
		t.Run(tc.base+" "+tc.frag, func(t *testing.T) {
			got := NewTypedPath(tc.kind, []byte(tc.base)).Join(NewTypedPath(tc.kind, []byte(tc.frag)))
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestPathBuf_Pop(t *testing.T) {
	buf := NewPathBuf[Unix]([]byte("/a/b"))
	assert.True(t, buf.Pop())
	assert.Equal(t, "/a", buf.String())
	assert.True(t, buf.Pop())
	assert.Equal(t, "/", buf.String())
	assert.False(t, buf.Pop())
	assert.Equal(t, "/", buf.String())

	rel := NewPathBuf[Unix]([]byte("a"))
	assert.True(t, rel.Pop())
	assert.Equal(t, 0, rel.Len())
	assert.False(t, rel.Pop())
}

func TestPathBuf_SetFileName(t *testing.T) {
	buf := NewPathBuf[Unix]([]byte("/tmp/foo.txt"))
	buf.SetFileName([]byte("bar.txt"))
	assert.Equal(t, "/tmp/bar.txt", buf.String())

	buf = NewPathBuf[Unix]([]byte("/tmp"))
	buf.SetFileName([]byte("var"))
	assert.Equal(t, "/var", buf.String())

	buf = NewPathBuf[Unix]([]byte("/"))
	buf.SetFileName([]byte("x"))
	assert.Equal(t, "/x", buf.String())

	w := WindowsPath(`C:\dir\old.txt`).WithFileName([]byte("new.txt"))
	assert.Equal(t, `C:\dir\new.txt`, w.String())
}

func TestPathBuf_SetExtension(t *testing.T) {
	for _, tc := range []struct {
		path string
		ext  string
		want string
		ok   bool
	}{
		{"foo.rs", "txt", "foo.txt", true},
		{"foo.tar.gz", "", "foo.tar", true},
		{"foo.tar.gz", "xz", "foo.tar.xz", true},
		{"foo", "rs", "foo.rs", true},
		{".bashrc", "bak", ".bashrc.bak", true},
		{"a/b.txt/", "md", "a/b.md", true},
		{"/", "x", "/", false},
		{"a/..", "x", "a/..", false},
	} {
		t.Run(tc.path+" "+tc.ext, func(t *testing.T) {
			buf := NewUtf8PathBuf[Unix](tc.path)
			assert.Equal(t, tc.ok, buf.SetExtension(tc.ext))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPathBuf_CloneAndClear(t *testing.T) {
	buf := NewPathBuf[Unix]([]byte("/a"))
	other := buf.Clone()
	buf.Push(UnixPath("b"))
	assert.Equal(t, "/a/b", buf.String())
	assert.Equal(t, "/a", other.String())
	buf.Clear()
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, "", string(buf.AsPath()))
}

func TestNewPathBuf_Copies(t *testing.T) {
	src := []byte("/a/b")
	buf := NewPathBuf[Unix](src[:2])
	buf.Push(UnixPath("z"))
	assert.Equal(t, "/a/b", string(src))
	assert.Equal(t, "/a/z", buf.String())
}

func TestUtf8Path(t *testing.T) {
	_, err := Utf8PathFromBytes[Unix]([]byte("a/\xff"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = UnixPath("a/\xff").ToUtf8()
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	p, err := UnixPath("/tmp/été").ToUtf8()
	require.NoError(t, err)
	name, ok := p.FileName()
	require.True(t, ok)
	assert.Equal(t, "été", name)

	joined := Utf8WindowsPath(`C:\données`).Join(Utf8WindowsPath(`fichier.txt`))
	assert.Equal(t, `C:\données\fichier.txt`, joined.String())
	assert.Equal(t, `C:\données\fichier.txt`, joined.AsPath().AsBytes().String())
}
