package conflict

import "github.com/rushteam/skinkit/core"

// 规则标识。标识是对外协议的一部分：调用方靠它去重、埋点、做白名单，
// 一经发布不可改名。
const (
	RuleRetinoidBenzoylPeroxide = "retinoid_benzoyl_peroxide"
	RuleRetinoidExfoliatingAcid = "retinoid_exfoliating_acid"
	RuleMultipleExfoliants      = "multiple_exfoliants"
	RuleCopperPeptideVitaminC   = "copper_peptide_vitamin_c"
)

// rule 是一条冲突规则：稳定标识、严重级别、命中判定、
// 以及用于定位"哪一步引入了冲突"的相关类别。
type rule struct {
	ID       string
	Severity core.Severity
	Classes  []Class
	Fires    func(s *signalSet) bool
}

// rules 按固定优先级排列，评估顺序即输出顺序。
var rules = []rule{
	{
		ID:       RuleRetinoidBenzoylPeroxide,
		Severity: core.SeverityBlock,
		Classes:  []Class{ClassRetinoid, ClassBenzoylPeroxide},
		Fires: func(s *signalSet) bool {
			return s.has(ClassRetinoid) && s.has(ClassBenzoylPeroxide)
		},
	},
	{
		ID:       RuleRetinoidExfoliatingAcid,
		Severity: core.SeverityWarn,
		Classes:  []Class{ClassRetinoid, ClassAHA, ClassBHA, ClassPHA},
		Fires: func(s *signalSet) bool {
			return s.has(ClassRetinoid) && s.exfoliantCount() > 0
		},
	},
	{
		ID:       RuleMultipleExfoliants,
		Severity: core.SeverityWarn,
		Classes:  exfoliantClasses,
		Fires: func(s *signalSet) bool {
			return s.exfoliantCount() >= 2
		},
	},
	{
		ID:       RuleCopperPeptideVitaminC,
		Severity: core.SeverityWarn,
		Classes:  []Class{ClassCopperPeptide, ClassVitaminC},
		Fires: func(s *signalSet) bool {
			return s.has(ClassCopperPeptide) && s.has(ClassVitaminC)
		},
	},
}

// evaluateRules 对合并后的信号做一遍规则评估。
// 同一规则的重复命中按 ID 折叠；StepIndex 取相关类别中最晚出现的流程步骤
// （即"补齐冲突"的那一步），全部来自待评估产品时为空。
func evaluateRules(signals *signalSet, locale core.Locale) []core.ConflictFinding {
	findings := make([]core.ConflictFinding, 0, len(rules))
	seen := make(map[string]bool, len(rules))

	for _, r := range rules {
		if seen[r.ID] || !r.Fires(signals) {
			continue
		}
		seen[r.ID] = true

		finding := core.ConflictFinding{
			Severity: r.Severity,
			RuleID:   r.ID,
			Message:  ruleMessage(r.ID, locale),
		}
		if idx, ok := latestStep(signals, r.Classes); ok {
			finding.StepIndex = &idx
		}
		findings = append(findings, finding)
	}
	return findings
}

// latestStep 返回相关类别在流程中最晚的首次出现位置。
func latestStep(signals *signalSet, classes []Class) (int, bool) {
	latest, found := 0, false
	for _, class := range classes {
		if idx, ok := signals.stepOf(class); ok {
			if !found || idx > latest {
				latest = idx
			}
			found = true
		}
	}
	return latest, found
}
