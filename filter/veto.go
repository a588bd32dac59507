package filter

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pkg/utils"
	"github.com/rushteam/skinkit/score"
)

// VetoFilter 是安全否决过滤器：屏障受损用户遇到高刺激产品时直接出局。
// 判定口径与打分引擎完全一致，过滤掉的候选不会出现在任何排序结果里。
type VetoFilter struct{}

func (f *VetoFilter) Name() string {
	return "filter.veto"
}

func (f *VetoFilter) ShouldFilter(
	_ context.Context,
	dctx *core.DecisionContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil {
		return true, nil
	}
	if dctx == nil || dctx.User == nil || c.Product == nil {
		return false, nil
	}

	breakdown := score.Score(c.Product, dctx.User)
	if !breakdown.Vetoed {
		return false, nil
	}
	c.PutLabel("veto_reason", utils.Label{
		Value:  breakdown.VetoReason,
		Source: f.Name(),
	})
	return true, nil
}
