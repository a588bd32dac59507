package conflict

import (
	"regexp"
	"strings"

	"github.com/rushteam/skinkit/core"
)

// 从原始全成分文本做确定性的风险标记/关键活性推断。
// 目录侧的富化流水线可能给出过度标记（把温和洁面标成高刺激），
// 这里的保守词表是兜底：只认成分表里有确凿证据的信号。

// ingredientSplitter 按成分表常见分隔符切分全成分文本。
var ingredientSplitter = regexp.MustCompile(`[,，;；、\n]+`)

// splitIngredients 切分并规范化全成分文本，保持原始顺序（顺序承载浓度信息）。
func splitIngredients(text string) []string {
	parts := ingredientSplitter.Split(strings.ToLower(text), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if cleaned := strings.TrimSpace(p); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// 风险推断词表。酒精只看前 5 位（位置代表浓度量级），强酸看前 10 位，
// 维A/过氧化苯甲酰在任何位置都算。
var (
	alcoholTerms = []string{"alcohol denat", "denatured alcohol", "sd alcohol", "ethyl alcohol", "变性乙醇"}
	strongAcidTerms = []string{
		"salicylic acid", "capryloyl salicylic acid", "betaine salicylate",
		"glycolic acid", "lactic acid", "水杨酸", "乙醇酸", "果酸",
	}
	retinoidTerms = []string{
		"retinol", "retinal", "retinaldehyde", "tretinoin", "adapalene",
		"tazarotene", "retinoate", "视黄", "a醇",
	}
	benzoylPeroxideTerms = []string{"benzoyl peroxide", "过氧化苯甲酰"}
)

func hasAnyTerm(items []string, terms []string) bool {
	for _, item := range items {
		for _, term := range terms {
			if strings.Contains(item, term) {
				return true
			}
		}
	}
	return false
}

// InferRiskFlags 从全成分文本推断受控词表内的风险标记。
//
// 规则：
//   - 前 5 位出现变性酒精 → alcohol
//   - 前 10 位出现强酸（水杨酸/乙醇酸/乳酸等，pH 调节用柠檬酸不算）→ acid
//   - 任意位置出现维A类/过氧化苯甲酰，或命中 acid → high_irritation
//
// 输出顺序固定，方便 diff 与调试。
func InferRiskFlags(ingredientsText string) []core.RiskFlag {
	items := splitIngredients(ingredientsText)
	if len(items) == 0 {
		return nil
	}

	top5 := items
	if len(top5) > 5 {
		top5 = items[:5]
	}
	top10 := items
	if len(top10) > 10 {
		top10 = items[:10]
	}

	hasAlcohol := hasAnyTerm(top5, alcoholTerms)
	hasStrongAcid := hasAnyTerm(top10, strongAcidTerms)
	hasRetinoid := hasAnyTerm(items, retinoidTerms)
	hasBPO := hasAnyTerm(items, benzoylPeroxideTerms)

	flags := make([]core.RiskFlag, 0, 3)
	if hasAlcohol {
		flags = append(flags, core.RiskAlcohol)
	}
	if hasStrongAcid {
		flags = append(flags, core.RiskAcid)
	}
	if hasStrongAcid || hasRetinoid || hasBPO {
		flags = append(flags, core.RiskHighIrritation)
	}
	return flags
}

// keyActiveRule 是"成分表命中 → 规范化活性标签"的一条映射。
type keyActiveRule struct {
	label string
	terms []string
}

// keyActiveRules 是保守的高信号活性词表（双语），顺序即输出顺序。
var keyActiveRules = []keyActiveRule{
	{"Niacinamide", []string{"niacinamide", "烟酰胺"}},
	{"Tranexamic Acid", []string{"tranexamic acid", "传明酸"}},
	{"Arbutin", []string{"alpha-arbutin", "arbutin", "熊果苷"}},
	{"Azelaic Acid", []string{"azelaic", "壬二酸"}},
	{"Vitamin C (Ascorbate family)", []string{"ascorbic acid", "l-ascorbic", "ascorbyl", "ascorbate", "维c", "维生素c"}},
	{"Retinoid", []string{"retinol", "retinal", "retinaldehyde", "tretinoin", "adapalene", "retinoate", "a醇", "维a", "视黄"}},
	{"BHA (Salicylic Acid)", []string{"salicylic acid", "betaine salicylate", "capryloyl salicylic", "水杨酸"}},
	{"AHA (Glycolic/Lactic)", []string{"glycolic acid", "lactic acid", "乙醇酸", "乳酸"}},
	{"PHA", []string{"gluconolactone", "lactobionic", "葡糖酸内酯"}},
	{"Peptides", []string{"peptide", "tripeptide", "hexapeptide", "palmitoyl", "ghk", "多肽", "蓝铜"}},
	{"Panthenol (B5)", []string{"panthenol", "泛醇"}},
	{"Ceramides", []string{"ceramide", "神经酰胺"}},
	{"Centella (Madecassoside family)", []string{"centella", "madecassoside", "asiaticoside", "积雪草"}},
	{"Hyaluronic Acid", []string{"hyaluronic", "sodium hyaluronate", "透明质酸", "玻尿酸"}},
	{"Benzoyl Peroxide", []string{"benzoyl peroxide", "过氧化苯甲酰"}},
}

// maxKeyActives 控制输出上限，下游拼 prompt/摘要时预算有限。
const maxKeyActives = 16

// InferKeyActives 从全成分文本推断规范化的关键活性标签列表。
// expert 是人工整理的活性标签（可为空），排在推断结果之前并参与去重。
func InferKeyActives(ingredientsText string, expert []string) []string {
	out := make([]string, 0, maxKeyActives)
	seen := make(map[string]bool)

	add := func(label string) {
		key := strings.ToLower(label)
		if key == "" || seen[key] || len(out) >= maxKeyActives {
			return
		}
		seen[key] = true
		out = append(out, label)
	}

	for _, label := range normalizeActives(expert) {
		add(label)
	}

	lower := strings.ToLower(ingredientsText)
	for _, rule := range keyActiveRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				add(rule.label)
				break
			}
		}
	}
	return out
}

// DefaultBurnRate 在社交统计缺失时按风险标记给出保守的默认翻车率。
// 高刺激产品给 0.15（超过 VETO 阈值），其余给 0.02。
func DefaultBurnRate(flags []core.RiskFlag) float64 {
	for _, f := range flags {
		if f == core.RiskHighIrritation {
			return 0.15
		}
	}
	return 0.02
}
