package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("stellate", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 260, cfg.HUDWidth)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Preset)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("stellate", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-width", "640",
		"-tps", "30",
		"-preset", "deep.yaml",
		"-metrics-addr", ":9100",
		"-log-level", "debug",
	}))

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "deep.yaml", cfg.Preset)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}
