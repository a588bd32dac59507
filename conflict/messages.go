package conflict

import (
	"fmt"

	"github.com/rushteam/skinkit/core"
)

// 文案目录。两种语言的文案按规则共置，由同一次规则命中渲染，
// 检测逻辑不会因语言不同重跑；语言只影响文本，不影响结论。

type bilingual struct {
	zh string
	en string
}

func (b bilingual) in(locale core.Locale) string {
	if locale == core.LocaleEN {
		return b.en
	}
	return b.zh
}

var ruleMessages = map[string]bilingual{
	RuleRetinoidBenzoylPeroxide: {
		zh: "维A类成分与过氧化苯甲酰不能同流程叠加：两者互相降解且刺激叠加，请分早晚或隔天使用",
		en: "Retinoids and benzoyl peroxide must not be layered in the same routine: they degrade each other and stack irritation; split them between AM/PM or alternate days",
	},
	RuleRetinoidExfoliatingAcid: {
		zh: "维A类成分与刷酸（AHA/BHA/PHA）同用会显著提高刺激风险，建议错开使用",
		en: "Retinoids combined with exfoliating acids (AHA/BHA/PHA) sharply raise irritation risk; consider alternating them",
	},
	RuleMultipleExfoliants: {
		zh: "流程中同时出现多种刷酸类别，叠加去角质容易损伤屏障，建议只保留一种",
		en: "Multiple exfoliant classes appear in the same routine; stacked exfoliation can damage the barrier, so keep only one",
	},
	RuleCopperPeptideVitaminC: {
		zh: "蓝铜肽与维C同用可能互相影响稳定性，建议分开早晚使用",
		en: "Copper peptides and vitamin C may destabilize each other; use them in separate AM/PM slots",
	},
}

func ruleMessage(ruleID string, locale core.Locale) string {
	if msg, ok := ruleMessages[ruleID]; ok {
		return msg.in(locale)
	}
	return ruleID
}

// 总结文案。三种互斥状态：没有可检查的输入 / 安全但未提取到任何活性成分
// （"没得查"≠"查过没问题"）/ 检出冲突（报告总数与 block 数）。

var summaryNothingToCheck = bilingual{
	zh: "没有提供流程或待评估产品，无法进行冲突检查",
	en: "No routine or candidate product was supplied; nothing could be checked",
}

var summaryNoActives = bilingual{
	zh: "未检出冲突，但没有提取到任何活性成分，本次检查可能不完整",
	en: "No conflicts found, but no active ingredients could be extracted; this check may be incomplete",
}

var summarySafe = bilingual{
	zh: "已检查全部活性成分，未发现已知的不安全组合",
	en: "All extracted actives were checked; no known unsafe combinations found",
}

func summaryUnsafe(locale core.Locale, total, blocks int) string {
	if locale == core.LocaleEN {
		return fmt.Sprintf("Found %d ingredient conflict(s), %d of block severity", total, blocks)
	}
	return fmt.Sprintf("检出 %d 条成分冲突，其中 %d 条为禁止级", total, blocks)
}
