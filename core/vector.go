package core

import "math"

// MechanismDims 是功效向量的固定维度及固定顺序。
// 稠密投影（平替检索的余弦相似度）依赖这个顺序保持稳定；
// 新增维度只能追加在末尾，不能插入或重排。
var MechanismDims = []string{
	"oil_control",
	"soothing",
	"repair",
	"redness",
	"acne",
	"brightening",
	"anti_aging",
}

// DenseMechanism 将稀疏的功效 map 投影为固定顺序的稠密向量，缺失维度补 0。
func DenseMechanism(m map[string]float64) []float64 {
	out := make([]float64, len(MechanismDims))
	if m == nil {
		return out
	}
	for i, dim := range MechanismDims {
		out[i] = Clamp01(m[dim])
	}
	return out
}

// Clamp01 将任意数值截断到 [0,1]；NaN 按 0 处理。
// 引擎对坏数据的统一策略是"截断而非报错"，见 Clamp。
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp 将 v 截断到 [lo,hi]；NaN/±Inf 按 lo 处理。
// 画像和目录数据来自外部协作方，坏掉的数值必须退化为保守结果而不是 panic。
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
