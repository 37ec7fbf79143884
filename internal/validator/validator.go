package validator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/qiniu/dodvalidator/internal/config"
	"github.com/qiniu/dodvalidator/internal/sections"
	"github.com/qiniu/dodvalidator/internal/trace"
)

// 进程退出码
const (
	ExitOK              = 0
	ExitMissingSections = 2
)

// Run 对配置中的 PR 描述执行一次检查，把结果行写到 out 并返回退出码。
// 写 out 失败只记录日志，退出码仍以检查结果为准。
func Run(ctx context.Context, cfg *config.Config, out io.Writer) int {
	result := sections.DefaultChecker().Check(ctx, cfg.PRBody)

	if _, err := fmt.Fprintln(out, result.Message()); err != nil {
		trace.Error(ctx, "Failed to write result: %v", err)
	}

	if err := result.Err(); err != nil {
		if errors.Is(err, sections.ErrMissingSections) {
			trace.Warn(ctx, "PR body check failed: %v", err)
			return ExitMissingSections
		}
		// 目前 Result.Err 只会返回缺失章节
		trace.Error(ctx, "Unexpected check error: %v", err)
		return ExitMissingSections
	}

	trace.Info(ctx, "All %d required sections present", len(sections.Required()))
	return ExitOK
}
