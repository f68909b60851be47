package except

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	t.Run("no-op", func(t *testing.T) {
		Must(true, "ok")
	})

	t.Run("panic", func(t *testing.T) {
		require.PanicsWithValue(t, "bad kind: 3", func() {
			Must(false, "bad kind: %d", 3)
		})
	})
}

func TestRequire(t *testing.T) {
	Require(nil)
	require.Panics(t, func() { Require(errors.New("boom")) })
}

func TestLogErrAttr(t *testing.T) {
	attr := LogErrAttr(errors.New("boom"))
	assert.Equal(t, "err", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
	assert.Equal(t, slog.KindGroup, LogErrAttr(nil).Value.Kind())
}
