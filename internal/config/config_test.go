package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the file and fills defaults", func(t *testing.T) {
		// Given: a config file that only sets a few values
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
log-level: debug
redis:
  host: redis
opponent:
  think-delay: 250ms
defaults:
  difficulty: expert
`), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: the file wins and everything else keeps its default
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 30*time.Minute, conf.Redis.SnapshotTTL)
		assert.Equal(t, 250*time.Millisecond, conf.Opponent.ThinkDelay)
		assert.Equal(t, 20, conf.Opponent.HistoryPageSize)
		assert.Equal(t, "expert", conf.Defaults.Difficulty)
		assert.True(t, conf.Defaults.Sound)
		assert.Equal(t, "You won!", conf.Defaults.VictoryMessage)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When / Then: loading it panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}
