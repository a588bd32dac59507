package conflict

import (
	"regexp"
	"strings"

	"github.com/rushteam/skinkit/core"
)

// 活性成分提取。
//
// 同一个步骤的数据可能来自不同上游（目录原始行 / 富化流水线 / 成分表行），
// 各来源填充的字段不同。这里用一组按固定顺序排列的类型化适配器依次尝试，
// 首个产出非空结果的适配器生效；展示名只在其余来源全部落空时作为兜底文本。
type activeExtractor func(step core.RoutineStep) []string

var stepExtractors = []activeExtractor{
	fromExplicitActives,
	fromProductRecord,
	fromEvidenceRecord,
	fromIngredientRecord,
	fromDisplayName, // 兜底：产品/步骤的展示名里常直接写着 "A醇精华"
}

func fromExplicitActives(step core.RoutineStep) []string {
	return step.Actives
}

func fromProductRecord(step core.RoutineStep) []string {
	if step.Product == nil {
		return nil
	}
	return step.Product.Actives
}

func fromEvidenceRecord(step core.RoutineStep) []string {
	if step.Evidence == nil {
		return nil
	}
	return step.Evidence.KeyActives
}

func fromIngredientRecord(step core.RoutineStep) []string {
	if step.Ingredients == nil {
		return nil
	}
	if len(step.Ingredients.List) > 0 {
		return step.Ingredients.List
	}
	if step.Ingredients.Raw != "" {
		return []string{step.Ingredients.Raw}
	}
	return nil
}

func fromDisplayName(step core.RoutineStep) []string {
	if step.Product != nil && step.Product.Name != "" {
		return []string{step.Product.Name}
	}
	if step.Name != "" {
		return []string{step.Name}
	}
	return nil
}

// extractStepActives 提取一个步骤的活性成分：按适配器顺序尝试，首个非空生效，
// 再做切分/去空白/大小写不敏感去重。
func extractStepActives(step core.RoutineStep) []string {
	for _, extract := range stepExtractors {
		if raw := extract(step); len(raw) > 0 {
			if actives := normalizeActives(raw); len(actives) > 0 {
				return actives
			}
		}
	}
	return nil
}

// extractProductActives 提取待评估产品的活性成分：先看整理过的 Actives，
// 落空时用展示名兜底。
func extractProductActives(p *core.ProductVector) []string {
	if p == nil {
		return nil
	}
	if actives := normalizeActives(p.Actives); len(actives) > 0 {
		return actives
	}
	if p.Name != "" {
		return normalizeActives([]string{p.Name})
	}
	return nil
}

// activeDelimiters 覆盖上游常见的分隔习惯：竖线、半角/全角逗号分号、顿号、斜杠、换行。
var activeDelimiters = regexp.MustCompile(`[|,，;；、/\n]+`)

// junkTokens 是上游表格里常见的占位值，直接丢弃。
var junkTokens = map[string]bool{
	"n/a": true, "na": true, "none": true, "unknown": true, "无": true,
}

// normalizeActives 切分、去空白、丢弃占位符，并做大小写不敏感去重（保留首次出现的写法）。
func normalizeActives(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, chunk := range raw {
		for _, part := range activeDelimiters.Split(chunk, -1) {
			cleaned := strings.TrimSpace(part)
			if cleaned == "" {
				continue
			}
			key := strings.ToLower(cleaned)
			if junkTokens[key] || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, cleaned)
		}
	}
	return out
}
