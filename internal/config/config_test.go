package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/internal/config/configs"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.Sim.TickInterval)
	assert.Equal(t, 4, cfg.Sim.Concurrency)
	assert.Equal(t, 100, cfg.Sim.HistoryLimit)
	assert.True(t, cfg.Sim.Enabled)
	assert.Equal(t, int64(1), cfg.Auth.UserID)
	assert.Equal(t, "simulation.datapoints", cfg.Kafka.Topic)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Stripe.Enabled())
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("SIM_TICK_INTERVAL", "1s")
	t.Setenv("AUTH_USER_ID", "7")
	t.Setenv("PSQL_MAX_CONNS", "20")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Stripe.Enabled())
	assert.Equal(t, time.Second, cfg.Sim.TickInterval)
	assert.Equal(t, int64(7), cfg.Auth.UserID)
	assert.Equal(t, int32(20), cfg.Psql.MaxConns)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("SIM_TICK_INTERVAL", "often")
	_, err := Parse()
	assert.Error(t, err)
}

func TestLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, configs.Logger{Level: tt.level}.SlogLevel())
		})
	}
}

func TestLogger_NewHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.NewHandler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.Int64("campaign_id", 3))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"campaign_id":3`)
}
