package core

import "github.com/rushteam/skinkit/pkg/utils"

// Candidate 是决策链路中的统一承载行：产品、分数拆解、元信息、标签。
//
// 对增量合并而言它是不透明记录：合并引擎只用 ID/Name/AltID/位置 推导
// 合并键，从不解释其余字段的语义。
type Candidate struct {
	ID    string
	Name  string
	AltID string

	Score     float64
	Product   *ProductVector
	Breakdown *ScoreBreakdown

	Meta   map[string]any
	Labels map[string]utils.Label
}

// NewCandidate 以产品为内容构造候选行，ID/Name 取自产品本身。
func NewCandidate(p *ProductVector) *Candidate {
	c := &Candidate{
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
	if p != nil {
		c.ID = p.ID
		c.Name = p.Name
		c.Product = p
	}
	return c
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// DecisionContext 承载一次决策的用户/场景信息，贯穿整个 Pipeline 透传。
type DecisionContext struct {
	UserID string
	Scene  string
	Locale Locale

	// User 是本次决策的用户画像，引擎只读不写
	User *UserVector

	// Displayed 是用户当前已经看到的列表，稳定重排（lock-top-n）据此保序
	Displayed []*Candidate

	// Params 是请求级上下文参数（ticket_id、since_version、debug 等）
	Params map[string]any

	// Labels 是用户级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label
}

// PutLabel 写入用户级 Label。
func (dctx *DecisionContext) PutLabel(key string, lbl utils.Label) {
	if dctx.Labels == nil {
		dctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := dctx.Labels[key]; ok {
		dctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	dctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (dctx *DecisionContext) GetLabel(key string) (utils.Label, bool) {
	if dctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := dctx.Labels[key]
	return lbl, ok
}
