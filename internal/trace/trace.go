package trace

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/qiniu/x/xlog"
)

// TraceID 表示一次校验运行的追踪 ID
type TraceID string

const (
	TracePrefix  = "dod"
	PRBodyPrefix = "pr_body"
)

// generateTraceID 生成随机的追踪 ID，随机数不可用时退回到时间戳
func generateTraceID() TraceID {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return TraceID(fmt.Sprintf("%s_%d", TracePrefix, time.Now().UnixNano()))
	}
	return TraceID(fmt.Sprintf("%s_%x", TracePrefix, bytes))
}

// NewTraceID 为指定的检查类型创建追踪 ID
func NewTraceID(checkType string) TraceID {
	return TraceID(fmt.Sprintf("%s_%s", checkType, generateTraceID()))
}

type contextKey string

const traceLoggerKey contextKey = "trace_logger"

// NewContext 创建携带追踪日志器的上下文
func NewContext(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, traceLoggerKey, xlog.New(string(traceID)))
}

// FromContext 从上下文中获取追踪日志器，没有时返回 nil
func FromContext(ctx context.Context) *xlog.Logger {
	if logger, ok := ctx.Value(traceLoggerKey).(*xlog.Logger); ok {
		return logger
	}
	return nil
}

// GetTraceID 从上下文中获取追踪 ID
func GetTraceID(ctx context.Context) TraceID {
	logger := FromContext(ctx)
	if logger == nil {
		return ""
	}
	return TraceID(logger.ReqId)
}

// Info 记录信息级别的追踪日志
func Info(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Infof(format, args...)
	}
}

// Warn 记录警告级别的追踪日志
func Warn(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Warnf(format, args...)
	}
}

// Error 记录错误级别的追踪日志
func Error(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Errorf(format, args...)
	}
}

// Debug 记录调试级别的追踪日志
func Debug(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Debugf(format, args...)
	}
}
