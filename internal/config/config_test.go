package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads every section", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
socket-port: "8081"
redis:
  host: redis
  port: "6380"
  game-ttl: 1h
postgres:
  dsn: postgres://gomoku:gomoku@db:5432/gomoku
kafka:
  brokers: kafka-1:9092, kafka-2:9092
  topic: events
engine:
  ai-strategy: random
  hint-strategy: heuristic
  seed: 42
  jitter: 0.5
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: all values are set
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "8081", conf.SocketPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.GameTTL)
		assert.Equal(t, "postgres://gomoku:gomoku@db:5432/gomoku", conf.Postgres.DSN)
		assert.True(t, conf.Kafka.Enabled())
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.BrokerList())
		assert.Equal(t, "events", conf.Kafka.Topic)
		assert.Equal(t, Engine{AIStrategy: "random", HintStrategy: "heuristic", Seed: 42, Jitter: 0.5}, conf.Engine)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf := MustLoad(path)

		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.GameTTL)
		assert.False(t, conf.Kafka.Enabled())
		assert.Empty(t, conf.Kafka.BrokerList())
		assert.Equal(t, "heuristic", conf.Engine.AIStrategy)
		assert.Equal(t, "random", conf.Engine.HintStrategy)
		assert.InDelta(t, 2.0, conf.Engine.Jitter, 1e-9)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
