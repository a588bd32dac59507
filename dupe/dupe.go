// Package dupe 实现平替检索：给定锚点产品，在候选池中按功效机制相似度
// 找出严格更便宜的替代品。
//
// 设计要点：
//   - 相似度只看功效向量（固定维度余弦），不看品牌/价格/口碑
//   - 平替必须严格更便宜，价格 ≥ 锚点的一律排除
//   - 相似度必须为正：零模长或正交向量与锚点无机制重叠，不构成平替
//   - 每个候选只给一条取舍提示，规则按固定优先级，首个命中即停
package dupe

import (
	"math"
	"sort"
	"strings"

	"github.com/rushteam/skinkit/core"
)

// 取舍提示的数值阈值。
const (
	stickyThreshold  = 0.6 // Stickiness 达到此值视为"明显更黏"
	pillingThreshold = 0.5 // PillingRisk 达到此值视为"叠涂有搓泥风险"
)

// FindDupes 在 catalog 中检索 anchor 的平替，按相似度降序，最多 limit 条。
// 入选条件：严格更便宜且相似度为正；两者缺一即排除。
//
// 纯函数、全函数：anchor 为 nil、catalog 为空、limit 非正都返回空列表；
// 零模长向量的相似度按 0 处理，永不除零。
func FindDupes(anchor *core.ProductVector, catalog []*core.ProductVector, limit int) []core.DupeMatch {
	if anchor == nil || len(catalog) == 0 || limit <= 0 {
		return nil
	}

	anchorVec := core.DenseMechanism(anchor.Mechanism)

	matches := make([]core.DupeMatch, 0, len(catalog))
	for _, candidate := range catalog {
		if candidate == nil {
			continue
		}
		// 排除锚点自身（按身份），以及价格不低于锚点的候选
		if candidate == anchor || (candidate.ID != "" && candidate.ID == anchor.ID) {
			continue
		}
		if candidate.Price >= anchor.Price {
			continue
		}

		sim := cosine(anchorVec, core.DenseMechanism(candidate.Mechanism))
		if sim <= 0 {
			continue
		}
		matches = append(matches, core.DupeMatch{
			Product:    candidate,
			Similarity: sim,
			TradeOff:   tradeOffNote(candidate),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// cosine 计算两个等长稠密向量的余弦相似度，任一侧零模长时返回 0。
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// tradeOffNote 为候选生成一条取舍提示。
// 规则固定优先级：更黏 > 更厚重 > 搓泥风险 > 泛化的"更便宜"提示；首个命中即返回。
func tradeOffNote(p *core.ProductVector) string {
	exp := p.Experience
	texture := strings.ToLower(exp.Texture)

	if (exp.Stickiness != nil && *exp.Stickiness >= stickyThreshold) ||
		strings.Contains(texture, "sticky") || strings.Contains(texture, "黏") {
		return "texture runs stickier than the original"
	}
	if strings.Contains(texture, "thick") || strings.Contains(texture, "rich") ||
		strings.Contains(texture, "balm") || strings.Contains(texture, "厚重") {
		return "thicker, richer texture than the original"
	}
	if exp.PillingRisk != nil && *exp.PillingRisk >= pillingThreshold {
		return "pilling risk when layered under other products"
	}
	return "lower-cost alternative with a similar mechanism profile"
}
