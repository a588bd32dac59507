package core

// SkinType 是肤质的闭合枚举，一个用户可以同时具备多个（例如混油 + 敏感）。
type SkinType string

const (
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
	SkinNormal      SkinType = "normal"
)

// BarrierStatus 是屏障状态的粗粒度指标，驱动 VETO 与冲突检测的严格程度。
type BarrierStatus string

const (
	BarrierHealthy  BarrierStatus = "healthy"
	BarrierImpaired BarrierStatus = "impaired"
)

// Budget 是用户的月度预算与花钱策略标签（例如 "student" / "invest_in_serums"）。
type Budget struct {
	Monthly  float64
	Strategy string
}

// Goal 是一条护肤诉求：功效维度 + 优先级。
// Priority 数字越小越重要；打分时按 1/Priority 加权。
type Goal struct {
	Dimension string
	Priority  int
}

// UserVector 是单次决策的用户画像。
//
// 由画像方（profile）每次请求提供，引擎只读不写：
//   - Goals 是有序的诉求列表，驱动 Science 分
//   - PlatformWeights 不要求归一，引擎内部归一化
//   - EnvStress 是可选的环境压力分 [0,100]（熬夜/污染/换季），缺失按无惩罚处理
type UserVector struct {
	SkinTypes []SkinType
	Barrier   BarrierStatus

	Budget Budget
	Goals  []Goal

	PlatformWeights map[Platform]float64
	EnvStress       *float64
}

// HasSkinType 判断用户是否具备某个肤质标签。
func (u *UserVector) HasSkinType(t SkinType) bool {
	if u == nil {
		return false
	}
	for _, s := range u.SkinTypes {
		if s == t {
			return true
		}
	}
	return false
}
