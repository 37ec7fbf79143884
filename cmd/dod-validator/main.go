package main

import (
	"context"
	"os"

	"github.com/qiniu/dodvalidator/internal/config"
	"github.com/qiniu/dodvalidator/internal/trace"
	"github.com/qiniu/dodvalidator/internal/validator"

	"github.com/qiniu/x/log"
)

func main() {
	os.Exit(run())
}

// run 加载环境配置并执行一次检查，返回进程退出码
func run() int {
	cfg := config.Load()

	// 标准输出只留给结果行，日志写到标准错误
	log.SetOutput(os.Stderr)
	log.SetOutputLevel(cfg.Log.OutputLevel())

	traceID := trace.NewTraceID(trace.PRBodyPrefix)
	ctx := trace.NewContext(context.Background(), traceID)
	log.Debugf("Starting DOD validator, trace %s", traceID)

	return validator.Run(ctx, cfg, os.Stdout)
}
