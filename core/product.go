package core

// RiskFlag 是产品风险标记的受控词表。
// 词表之外的标记会在入库阶段被丢弃，保证下游 VETO 逻辑只面对已知信号。
type RiskFlag string

const (
	RiskAlcohol        RiskFlag = "alcohol"         // 高位酒精（Alcohol Denat 等）
	RiskAcid           RiskFlag = "acid"            // 强效刷酸成分（AHA/BHA 等）
	RiskHighIrritation RiskFlag = "high_irritation" // 高刺激性（强酸/高浓度 A 醇/过氧化苯甲酰）
)

// Platform 是社交声量的固定平台集合。
type Platform string

const (
	PlatformRED    Platform = "red"    // 小红书
	PlatformReddit Platform = "reddit" // Reddit / SkincareAddiction
)

// Platforms 是平台的固定遍历顺序，权重归一化与社交打分都按此顺序进行。
var Platforms = []Platform{PlatformRED, PlatformReddit}

// Experience 是产品的肤感向量。
// Texture/Finish 为自由文本（gel/cream/matte/dewy...），
// Stickiness/PillingRisk 为可选的 [0,1] 数值，缺失表示未标注。
type Experience struct {
	Texture     string
	Finish      string
	Stickiness  *float64
	PillingRisk *float64
}

// SocialStats 是产品的社交统计：平台分（[0,1]）、翻车率、热词。
// BurnRate 表示"用了刺痛/烂脸"类讨论的占比，是 VETO 的输入之一。
type SocialStats struct {
	PlatformScores map[Platform]float64
	BurnRate       float64
	TopKeywords    []string
}

// ProductVector 是单个产品（SKU）在决策引擎中的完整画像。
//
// 设计要点：
//   - 由目录方（catalog）构造，进入引擎后视为不可变
//   - Mechanism 是固定维度的功效向量，见 MechanismDims
//   - Actives 是自由文本的活性成分名，仅供冲突检测使用
//   - UsabilityPenalty 是工程可用性惩罚（包装/氧化/涂抹难度），缺失时引擎按 0.5 处理
type ProductVector struct {
	ID       string
	Brand    string
	Name     string
	Category string
	Price    float64
	Currency string

	Mechanism  map[string]float64
	Experience Experience
	RiskFlags  []RiskFlag
	Social     SocialStats

	Actives          []string
	UsabilityPenalty *float64
}

// HasRiskFlag 判断产品是否带有某个风险标记。
func (p *ProductVector) HasRiskFlag(flag RiskFlag) bool {
	if p == nil {
		return false
	}
	for _, f := range p.RiskFlags {
		if f == flag {
			return true
		}
	}
	return false
}

// MechanismValue 返回产品在某个功效维度上的值：缺失按 0，越界截断到 [0,1]。
func (p *ProductVector) MechanismValue(dim string) float64 {
	if p == nil || p.Mechanism == nil {
		return 0
	}
	return Clamp01(p.Mechanism[dim])
}

// PlatformScore 返回产品在某个平台上的声量分，缺失按 0，越界截断到 [0,1]。
func (p *ProductVector) PlatformScore(platform Platform) float64 {
	if p == nil || p.Social.PlatformScores == nil {
		return 0
	}
	return Clamp01(p.Social.PlatformScores[platform])
}
