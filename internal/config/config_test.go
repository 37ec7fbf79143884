package config

import (
	"testing"

	"github.com/qiniu/x/log"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvPRBody, "## Summary\nbody")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := Load()
	assert.Equal(t, "## Summary\nbody", cfg.PRBody)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, log.Ldebug, cfg.Log.OutputLevel())
}

func TestLoadDefaults(t *testing.T) {
	// 空值等同于未设置
	t.Setenv(EnvPRBody, "")
	t.Setenv(EnvLogLevel, "")

	cfg := Load()
	assert.Equal(t, "", cfg.PRBody)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, log.Linfo, cfg.Log.OutputLevel())
}

func TestLogConfig_OutputLevel(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"debug", log.Ldebug},
		{"info", log.Linfo},
		{"warn", log.Lwarn},
		{"warning", log.Lwarn},
		{"error", log.Lerror},
		{"verbose", log.Linfo},
		{"", log.Linfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogConfig{Level: tt.level}.OutputLevel())
		})
	}
}
