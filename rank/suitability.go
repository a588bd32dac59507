package rank

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/utils"
	"github.com/rushteam/skinkit/score"
)

// SuitabilityNode 是适配度排序 Node：对每个候选计算 产品 × 画像 的打分，
// 写回 Score 与 Breakdown，并按总分降序稳定排序。
// - 写入 labels：rank_total / veto_reason（被否决时）
// - 打分是纯函数，候选之间互不依赖，可并发执行
// - DropVetoed 为 true 时被否决的候选直接出列（默认保留，Total 为 0 自然沉底）
type SuitabilityNode struct {
	MaxConcurrent int // 最大并发数（0 表示逐个串行）
	DropVetoed    bool
}

func (n *SuitabilityNode) Name() string        { return "rank.suitability" }
func (n *SuitabilityNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *SuitabilityNode) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	var user *core.UserVector
	if dctx != nil {
		user = dctx.User
	}

	if n.MaxConcurrent > 1 {
		eg, _ := errgroup.WithContext(ctx)
		eg.SetLimit(n.MaxConcurrent)
		for _, c := range candidates {
			c := c
			eg.Go(func() error {
				n.scoreOne(c, user)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, c := range candidates {
			n.scoreOne(c, user)
		}
	}

	out := candidates
	if n.DropVetoed {
		out = make([]*core.Candidate, 0, len(candidates))
		for _, c := range candidates {
			if c == nil || (c.Breakdown != nil && c.Breakdown.Vetoed) {
				continue
			}
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i] == nil {
			return false
		}
		if out[j] == nil {
			return true
		}
		return out[i].Score > out[j].Score
	})
	return out, nil
}

func (n *SuitabilityNode) scoreOne(c *core.Candidate, user *core.UserVector) {
	if c == nil {
		return
	}
	breakdown := score.Score(c.Product, user)
	c.Breakdown = &breakdown
	c.Score = breakdown.Total
	c.PutLabel("rank_total", utils.Label{
		Value:  fmt.Sprintf("%.2f", breakdown.Total),
		Source: "rank.suitability",
	})
	if breakdown.Vetoed {
		c.PutLabel("veto_reason", utils.Label{
			Value:  breakdown.VetoReason,
			Source: "rank.suitability",
		})
	}
}
