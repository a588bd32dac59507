package recall

import (
	"context"
	"strconv"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/dupe"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/conv"
	"github.com/rushteam/skinkit/pkg/utils"
)

// Dupes 是平替召回源：以某个锚点产品为基准，从货架同品类里
// 召回机制相似但更便宜的候选。锚点通常来自用户正在浏览的产品，
// 通过请求参数 anchor_id 传入。
// Dupes 同时实现了 Source 和 Node 接口。
type Dupes struct {
	Store    core.CatalogStore
	AnchorID string // 缺省锚点，可被请求参数覆盖
	Limit    int
}

func (r *Dupes) Name() string        { return "recall.dupes" }
func (r *Dupes) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Dupes) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, dctx)
}

// Recall 实现 Source 接口。锚点缺失或查不到时召回为空，不报错，
// 保持与其他召回源 fan-out 时"单源失败不拖垮整轮"的约定。
func (r *Dupes) Recall(
	ctx context.Context,
	dctx *core.DecisionContext,
) ([]*core.Candidate, error) {
	if r.Store == nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "catalog store not configured")
	}

	anchorID := r.AnchorID
	if dctx != nil {
		if v, ok := dctx.Params["anchor_id"]; ok {
			if s, ok := conv.ToString(v); ok && s != "" {
				anchorID = s
			}
		}
	}
	if anchorID == "" {
		return nil, nil
	}

	anchor, err := r.Store.GetProduct(ctx, anchorID)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	pool, err := r.Store.ListByCategory(ctx, anchor.Category)
	if err != nil {
		return nil, err
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 10
	}
	matches := dupe.FindDupes(anchor, pool, limit)

	out := make([]*core.Candidate, 0, len(matches))
	for _, m := range matches {
		c := core.NewCandidate(m.Product)
		c.PutLabel("dupe_of", utils.Label{Value: anchor.ID, Source: "recall.dupes"})
		c.PutLabel("dupe_similarity", utils.Label{
			Value:  strconv.FormatFloat(m.Similarity, 'f', 4, 64),
			Source: "recall.dupes",
		})
		c.PutLabel("dupe_trade_off", utils.Label{Value: m.TradeOff, Source: "recall.dupes"})
		out = append(out, c)
	}
	return out, nil
}
