// Package score 实现产品 × 用户画像的适配度打分（0-100），含硬性安全 VETO。
//
// 设计要点：
//   - 纯函数、全函数：坏数据截断处理，任何输入都不 panic
//   - VETO 在加权混合之前独立判定，任何分量组合都不能翻盘
//   - 0.3/0.6/0.1 的混合权重刻意让社交信号压过配方科学：
//     产品优化的是用户信任，不是实验室数据
package score

import (
	"fmt"
	"math"

	"github.com/rushteam/skinkit/core"
)

// 业务调参常量。数值没有工程推导来源，属于产品侧调参，保持原样，
// 改动需产品负责人评审。
const (
	scienceWeight     = 0.3
	socialWeight      = 0.6
	engineeringWeight = 0.1

	// 工程分只吃"半个"惩罚，避免可用性瑕疵主导整体排序
	engineeringHalfPenalty = 0.5

	// 缺失可用性数据时按中等惩罚处理
	defaultUsabilityPenalty = 0.5

	// 屏障受损用户的翻车率 VETO 阈值
	burnRateVetoThreshold = 0.10

	// 环境压力惩罚的上限（满分压力扣 10 分）
	envPenaltyCap = 10.0
)

// fallbackPlatformWeights 是画像权重全部非正时的兜底分布，
// 保证社交分不会因为一份坏画像而静默归零。
var fallbackPlatformWeights = map[core.Platform]float64{
	core.PlatformRED:    0.5,
	core.PlatformReddit: 0.5,
}

// Score 计算一个产品对一个用户的适配度。
//
// 返回的 ScoreBreakdown 每次新建，引擎不缓存；Vetoed 时 Total 恒为 0，
// 但三个分量照常给出供诊断展示。
func Score(product *core.ProductVector, user *core.UserVector) core.ScoreBreakdown {
	science := scienceScore(product, user)
	social := socialScore(product, user)
	engineering := engineeringScore(product)

	out := core.ScoreBreakdown{
		Science:     science,
		Social:      social,
		Engineering: engineering,
	}

	// VETO 先于混合：屏障受损 + 高刺激信号 → 直接清零。
	// 两个条件同时命中时，理由以刺激性标记为准。
	if user != nil && user.Barrier == core.BarrierImpaired && product != nil {
		burn := core.Clamp01(product.Social.BurnRate)
		switch {
		case product.HasRiskFlag(core.RiskHighIrritation):
			out.Vetoed = true
			out.VetoReason = "barrier impaired: product flagged high_irritation"
		case burn > burnRateVetoThreshold:
			out.Vetoed = true
			out.VetoReason = fmt.Sprintf(
				"barrier impaired: social burn rate %.2f exceeds %.2f", burn, burnRateVetoThreshold)
		}
		if out.Vetoed {
			out.Total = 0
			return out
		}
	}

	total := scienceWeight*science + socialWeight*social + engineeringWeight*engineering
	total -= envPenalty(user)
	out.Total = core.Clamp(total, 0, 100)
	return out
}

// scienceScore 按用户诉求对功效向量加权平均：
// 权重 1/priority（priority ≤ 0 按 1），缺失维度计 0，无诉求时得 0 分。
func scienceScore(product *core.ProductVector, user *core.UserVector) float64 {
	if user == nil || len(user.Goals) == 0 {
		return 0
	}

	var weighted, totalWeight float64
	for _, goal := range user.Goals {
		w := 1.0
		if goal.Priority > 0 {
			w = 1.0 / float64(goal.Priority)
		}
		weighted += w * product.MechanismValue(goal.Dimension)
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return core.Clamp(weighted/totalWeight*100, 0, 100)
}

// socialScore 对固定平台集合做 归一化权重 × 平台分 的加权和。
func socialScore(product *core.ProductVector, user *core.UserVector) float64 {
	var weights map[core.Platform]float64
	if user != nil {
		weights = user.PlatformWeights
	}
	normalized := NormalizePlatformWeights(weights)

	var sum float64
	for _, platform := range core.Platforms {
		sum += normalized[platform] * product.PlatformScore(platform)
	}
	return core.Clamp(sum*100, 0, 100)
}

// engineeringScore = (1 - 0.5 × usability_penalty) × 100。
// 惩罚缺失时按 0.5，越界截断到 [0,1]。
func engineeringScore(product *core.ProductVector) float64 {
	penalty := defaultUsabilityPenalty
	if product != nil && product.UsabilityPenalty != nil {
		penalty = core.Clamp01(*product.UsabilityPenalty)
	}
	return core.Clamp((1-engineeringHalfPenalty*penalty)*100, 0, 100)
}

// envPenalty = (stress/100) × 10，上限 10 分；缺失/非法压力分不惩罚也不报错。
func envPenalty(user *core.UserVector) float64 {
	if user == nil || user.EnvStress == nil {
		return 0
	}
	stress := core.Clamp(*user.EnvStress, 0, 100)
	return core.Clamp(stress/100*envPenaltyCap, 0, envPenaltyCap)
}

// NormalizePlatformWeights 将平台权重归一化为总和 1：
//   - 负权重先归零
//   - 全部非正时整体替换为兜底分布
//
// 返回的 map 覆盖固定平台集合的每个平台。
func NormalizePlatformWeights(weights map[core.Platform]float64) map[core.Platform]float64 {
	floored := make(map[core.Platform]float64, len(core.Platforms))
	var sum float64
	for _, platform := range core.Platforms {
		w := weights[platform]
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			w = 0
		}
		floored[platform] = w
		sum += w
	}

	if sum <= 0 {
		out := make(map[core.Platform]float64, len(core.Platforms))
		for _, platform := range core.Platforms {
			out[platform] = fallbackPlatformWeights[platform]
		}
		return out
	}

	for platform, w := range floored {
		floored[platform] = w / sum
	}
	return floored
}
