package conflict

import (
	"strings"

	"github.com/rushteam/skinkit/core"
)

// ValidateRoutine 是一个轻量的流程校验器：只看显式的早晚步骤，
// 只检查 蓝铜肽 + 维C 这一对组合。
//
// 它与完整的 Detect 不共享任何状态，用在不需要完整双语检测器的场合
// （例如编辑流程时的即时提示）；但对这一条规则，两者的结论必须一致，
// 包括共用同一个规则 ID。
func ValidateRoutine(plan *core.RoutinePlan, locale core.Locale) *core.ConflictFinding {
	if plan == nil {
		return nil
	}

	hasCopper, hasVitC := false, false
	for _, step := range plan.Steps() {
		text := strings.ToLower(stepText(step))
		if text == "" {
			continue
		}
		if !hasCopper && containsAny(text, copperPeptideHints) {
			hasCopper = true
		}
		if !hasVitC && containsAny(text, vitaminCHints) {
			hasVitC = true
		}
	}

	if hasCopper && hasVitC {
		return &core.ConflictFinding{
			Severity: core.SeverityWarn,
			RuleID:   RuleCopperPeptideVitaminC,
			Message:  ruleMessage(RuleCopperPeptideVitaminC, locale),
		}
	}
	return nil
}

// stepText 拼出一个步骤的全部可见文本：活性成分列表 + 产品名 + 步骤名。
func stepText(step core.RoutineStep) string {
	parts := make([]string, 0, 4)
	parts = append(parts, step.Actives...)
	if step.Product != nil {
		parts = append(parts, step.Product.Actives...)
		parts = append(parts, step.Product.Name)
	}
	parts = append(parts, step.Name)
	return strings.Join(parts, " ")
}

// 校验器自带的最小提示词表，与检测器的模式表无共享。
var copperPeptideHints = []string{"copper peptide", "copper tripeptide", "ghk", "蓝铜", "铜肽"}
var vitaminCHints = []string{"ascorbic", "ascorbyl", "ascorbate", "vitamin c", "维c", "维生素c", "抗坏血酸"}

func containsAny(text string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
