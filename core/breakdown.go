package core

// ScoreBreakdown 是一次 (product, user) 打分的完整结果，四个分量均在 [0,100]。
//
// Vetoed 为 true 时 Total 恒为 0，但三个分量照常给出，供前端做诊断展示
// （"为什么这个产品被一票否决，但科学分其实很高"）。
// 每次打分都产出新对象，引擎内部不缓存。
type ScoreBreakdown struct {
	Science     float64
	Social      float64
	Engineering float64
	Total       float64

	Vetoed     bool
	VetoReason string
}

// DupeMatch 是平替检索的一条结果：候选产品、与锚点功效向量的余弦相似度、
// 以及一条人话版的取舍提示（更黏/更厚重/叠涂搓泥风险/单纯更便宜）。
type DupeMatch struct {
	Product    *ProductVector
	Similarity float64
	TradeOff   string
}
