package sections

import (
	"context"
	"strings"

	"github.com/qiniu/dodvalidator/internal/trace"
)

// requiredSections PR 描述中必须出现的章节标题，顺序即报告顺序
var requiredSections = []string{
	"Summary",
	"Scope / Branch",
	"Backend (FastAPI)",
	"Frontend (React + TS)",
	"Metrics / KPIs",
	"Tests",
	"Ops / Migrations",
	"Rollback Plan",
	"Risks & Mitigations",
}

const (
	okMessage      = "DOD validator: OK"
	missingMessage = "PR missing sections: "
)

// Required 返回必需章节列表的副本
func Required() []string {
	out := make([]string, len(requiredSections))
	copy(out, requiredSections)
	return out
}

// Checker 检查 PR 描述是否包含一组章节标题
type Checker struct {
	required []string
}

// NewChecker 使用给定的章节列表创建检查器，列表会被复制
func NewChecker(required []string) *Checker {
	c := &Checker{required: make([]string, len(required))}
	copy(c.required, required)
	return c
}

// DefaultChecker 使用内置的必需章节列表创建检查器
func DefaultChecker() *Checker {
	return NewChecker(requiredSections)
}

// Missing 返回 body 中缺失的章节，保持声明顺序。
// 匹配是大小写不敏感的子串匹配，不做空白或 Unicode 规范化，
// 所以 "Retests" 也算包含 "Tests"。
func (c *Checker) Missing(body string) []string {
	lowered := strings.ToLower(body)

	var missing []string
	for _, section := range c.required {
		if !strings.Contains(lowered, strings.ToLower(section)) {
			missing = append(missing, section)
		}
	}
	return missing
}

// Check 执行一次检查并返回结果
func (c *Checker) Check(ctx context.Context, body string) *Result {
	trace.Debug(ctx, "Checking PR body (%d bytes) against %d required sections", len(body), len(c.required))

	missing := c.Missing(body)
	for _, section := range missing {
		trace.Debug(ctx, "Section not found: %q", section)
	}

	return &Result{Missing: missing}
}

// Result 一次检查的结果
type Result struct {
	Missing []string
}

// OK 所有章节都存在时返回 true
func (r *Result) OK() bool {
	return len(r.Missing) == 0
}

// Message 返回写到标准输出的单行结果
func (r *Result) Message() string {
	if r.OK() {
		return okMessage
	}
	return missingMessage + strings.Join(r.Missing, ", ")
}

// Err 缺失章节时返回 *SectionError，否则返回 nil
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return NewSectionError("check", r.Missing, ErrMissingSections)
}
