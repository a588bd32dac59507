// Package conflict 实现护肤流程的活性成分冲突检测。
//
// 设计要点：
//   - 纯函数：不做 I/O，不持有状态，输入输出都是普通数据记录
//   - 输入/输出都带协议版本，版本不一致整体拒绝，不做尽力解析
//   - 活性成分提取走"多来源适配器，首个非空生效"
//   - 类别检测走数据表驱动的中英双语模式表，语言只影响文案不影响结论
package conflict

import (
	"fmt"

	"github.com/rushteam/skinkit/core"
)

// Detect 检查一套流程（可叠加一个待评估产品）中已知的不安全活性组合。
//
// 流程内信号与待评估产品信号按逻辑或合并后再评估规则，
// 因此"流程里已有的"与"正在考虑加入的"之间的冲突同样会被抓到。
func Detect(input core.ConflictInput) (core.ConflictOutput, error) {
	if input.SchemaVersion != "" && input.SchemaVersion != core.ConflictSchemaVersion {
		return core.ConflictOutput{}, core.NewDomainError(
			core.ModuleConflict,
			core.ErrorCodeSchemaMismatch,
			fmt.Sprintf("conflict: schema version %q, expected %q", input.SchemaVersion, core.ConflictSchemaVersion),
		)
	}

	locale := input.Locale
	if locale == "" {
		locale = core.LocaleZH
	}

	out := core.ConflictOutput{
		SchemaVersion: core.ConflictSchemaVersion,
		Safe:          true,
	}

	steps := input.Routine.Steps()
	if len(steps) == 0 && input.Candidate == nil {
		out.Summary = summaryNothingToCheck.in(locale)
		return out, nil
	}

	// 第一步：逐步骤提取活性成分；第二步：类别信号检测。
	// 步骤信号与待评估产品信号（步骤下标 -1）在同一个 signalSet 中合并。
	signals := newSignalSet()
	hadActives := false

	for i, step := range steps {
		actives := extractStepActives(step)
		if len(actives) > 0 {
			hadActives = true
		}
		detectInto(signals, actives, i)
	}
	if actives := extractProductActives(input.Candidate); len(actives) > 0 {
		hadActives = true
		detectInto(signals, actives, -1)
	}

	// 第三步：固定优先级的规则评估，重复命中按规则 ID 折叠。
	out.Findings = evaluateRules(signals, locale)

	// 第四步：总结。"没提取到任何成分"与"查过确实安全"必须区分开。
	if len(out.Findings) == 0 {
		if !hadActives {
			out.Summary = summaryNoActives.in(locale)
		} else {
			out.Summary = summarySafe.in(locale)
		}
		return out, nil
	}

	out.Safe = false
	blocks := 0
	for _, f := range out.Findings {
		if f.Severity == core.SeverityBlock {
			blocks++
		}
	}
	out.Summary = summaryUnsafe(locale, len(out.Findings), blocks)
	return out, nil
}
