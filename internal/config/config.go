package config

import (
	"os"
	"strings"

	"github.com/qiniu/x/log"
)

// 环境变量名
const (
	EnvPRBody   = "PR_BODY"
	EnvLogLevel = "DOD_LOG_LEVEL"
)

type Config struct {
	PRBody string
	Log    LogConfig
}

type LogConfig struct {
	Level string
}

// Load 从环境变量加载配置。PR_BODY 未设置时视为空字符串。
func Load() *Config {
	return &Config{
		PRBody: os.Getenv(EnvPRBody),
		Log: LogConfig{
			Level: strings.ToLower(getEnvOrDefault(EnvLogLevel, "info")),
		},
	}
}

// OutputLevel 将日志级别名映射为 qiniu/x/log 的级别，未知值按 info 处理
func (c LogConfig) OutputLevel() int {
	switch c.Level {
	case "debug":
		return log.Ldebug
	case "warn", "warning":
		return log.Lwarn
	case "error":
		return log.Lerror
	default:
		return log.Linfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
