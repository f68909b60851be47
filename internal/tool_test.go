package pathtool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	typedpath "github.com/chipsenkbeil/typed-path"
	"github.com/chipsenkbeil/typed-path/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(t *testing.T, cfg *Config) (*Tool, *bytes.Buffer) {
	var out bytes.Buffer
	tool, err := NewTool(cfg, &out)
	require.NoError(t, err)
	return tool, &out
}

func lines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestTool_Components(t *testing.T) {
	tool, out := newTestTool(t, &Config{Encoding: "windows"})
	require.NoError(t, tool.Components(`\\?\UNC\server\share\a*b`))
	assert.Equal(t, []string{
		`PREFIX/VERBATIM_UNC` + "\t" + `\\?\UNC\server\share` + "\ttrue",
		"ROOT_DIR\t\\\ttrue",
		"NORMAL\ta*b\tfalse",
	}, lines(out))
}

func TestTool_Info(t *testing.T) {
	tool, out := newTestTool(t, &Config{Encoding: "unix"})
	require.NoError(t, tool.Info("/tmp/./archive.tar.gz"))
	assert.Equal(t, []string{
		"encoding\tunix",
		"absolute\ttrue",
		"root\ttrue",
		"valid\ttrue",
		"parent\t/tmp",
		"name\tarchive.tar.gz",
		"stem\tarchive.tar",
		"extension\tgz",
		"normalized\t/tmp/archive.tar.gz",
	}, lines(out))
}

func TestTool_Normalize(t *testing.T) {
	tool, out := newTestTool(t, &Config{Encoding: "unix"})
	require.NoError(t, tool.Normalize("foo/bar//baz/./asdf/quux/.."))
	assert.Equal(t, "foo/bar/baz/asdf\n", out.String())
}

func TestTool_Join(t *testing.T) {
	t.Run("checked", func(t *testing.T) {
		tool, out := newTestTool(t, &Config{Encoding: "unix"})
		require.NoError(t, tool.Join("a/b", []string{"../c", "d"}, false))
		assert.Equal(t, "a/b/../c/d\n", out.String())

		err := tool.Join("a/b", []string{"../../etc/passwd"}, false)
		assert.ErrorIs(t, err, typedpath.ErrPathTraversal)
	})

	t.Run("unchecked flag", func(t *testing.T) {
		tool, out := newTestTool(t, &Config{Encoding: "unix"})
		require.NoError(t, tool.Join("a/b", []string{"/etc", "passwd"}, true))
		assert.Equal(t, "/etc/passwd\n", out.String())
	})

	t.Run("unchecked config", func(t *testing.T) {
		checked := false
		tool, out := newTestTool(t, &Config{Encoding: "windows", Checked: &checked})
		require.NoError(t, tool.Join(`C:\a`, []string{`\b`}, false))
		assert.Equal(t, `C:\b`+"\n", out.String())
	})

	t.Run("utf8", func(t *testing.T) {
		tool, _ := newTestTool(t, &Config{Encoding: "unix", UTF8: true})
		err := tool.Join("a", []string{"\xff"}, false)
		assert.ErrorIs(t, err, typedpath.ErrInvalidUTF8)
	})
}

func TestTool_Absolutize(t *testing.T) {
	t.Run("explicit cwd", func(t *testing.T) {
		tool, out := newTestTool(t, &Config{Encoding: "unix"})
		require.NoError(t, tool.Absolutize("a/b/../c/./d", "/x/y"))
		assert.Equal(t, "/x/y/a/c/d\n", out.String())
	})

	t.Run("working directory", func(t *testing.T) {
		defer effect.Swap(&currentDir, func() ([]byte, error) { return []byte("/home/me"), nil })()
		tool, out := newTestTool(t, &Config{Encoding: typedpath.EncodingUnix.String()})
		if typedpath.NativeKind != typedpath.EncodingUnix {
			t.Skip("native encoding is not unix")
		}
		require.NoError(t, tool.Absolutize("src", ""))
		assert.Equal(t, "/home/me/src\n", out.String())
	})

	t.Run("working directory unavailable", func(t *testing.T) {
		cause := errors.New("gone")
		defer effect.Swap(&currentDir, func() ([]byte, error) { return nil, cause })()
		tool, _ := newTestTool(t, &Config{})
		err := tool.Absolutize("src", "")
		assert.ErrorIs(t, err, typedpath.ErrCurrentDirUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("foreign encoding", func(t *testing.T) {
		foreign := "windows"
		if typedpath.NativeKind == typedpath.EncodingWindows {
			foreign = "unix"
		}
		tool, _ := newTestTool(t, &Config{Encoding: foreign})
		assert.ErrorIs(t, tool.Absolutize("src", ""), errCwdRequired)
	})
}

func TestTool_Convert(t *testing.T) {
	tool, out := newTestTool(t, &Config{Encoding: "unix"})
	require.NoError(t, tool.Convert("/tmp/foo.txt", typedpath.EncodingWindows, false))
	assert.Equal(t, `\tmp\foo.txt`+"\n", out.String())

	err := tool.Convert("/tmp/a:b", typedpath.EncodingWindows, true)
	assert.ErrorIs(t, err, typedpath.ErrConversion)
}

func TestTool_Audit(t *testing.T) {
	cfg := &Config{Encoding: "unix", Audit: AuditConfig{Skip: []string{"*.DS_Store"}}}

	t.Run("accepted", func(t *testing.T) {
		tool, out := newTestTool(t, cfg)
		listing := "a/b.txt\nc/../d.txt\nx/.DS_Store\n"
		require.NoError(t, tool.Audit("/out", strings.NewReader(listing), nil))
		assert.Equal(t, []string{
			"ACCEPTED\ta/b.txt\t/out/a/b.txt",
			"ACCEPTED\tc/../d.txt\t/out/d.txt",
		}, lines(out))
	})

	t.Run("rejected", func(t *testing.T) {
		tool, out := newTestTool(t, cfg)
		listing := "ok\n../escape\nskipped/file\n"
		err := tool.Audit("/out", strings.NewReader(listing), []string{"skipped/*"})
		assert.ErrorIs(t, err, ErrRejectedEntries)
		assert.Equal(t, []string{
			"ACCEPTED\tok\t/out/ok",
			"TRAVERSAL\t../escape\t-",
		}, lines(out))
		assert.Equal(t, []string{"*.DS_Store"}, cfg.Audit.Skip)
	})
}

func TestNewTable_Terminal(t *testing.T) {
	defer effect.Swap(&isTerminal, func(io.Writer) bool { return true })()
	var out bytes.Buffer
	tbl := newTable(&out)
	tbl.row("a", "long value", "x")
	tbl.row("longer key", "v", "y")
	require.NoError(t, tbl.flush())
	assert.Equal(t, []string{
		"a           long value  x",
		"longer key  v           y",
	}, lines(&out))
}
