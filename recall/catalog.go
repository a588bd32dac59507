package recall

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/conv"
)

// Catalog 是货架召回源：从 CatalogStore 按品类拉取候选产品。
// - Category 非空时按品类取（价格升序）
// - 否则整个货架入场
// - Limit 只限制入场数量，排序交给后面的 rank 阶段
// Catalog 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type Catalog struct {
	Store    core.CatalogStore
	Category string
	Limit    int
}

func (r *Catalog) Name() string        { return "recall.catalog" }
func (r *Catalog) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Catalog) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, dctx)
}

// Recall 实现 Source 接口。品类可以被请求参数 category 覆盖。
func (r *Catalog) Recall(
	ctx context.Context,
	dctx *core.DecisionContext,
) ([]*core.Candidate, error) {
	if r.Store == nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "catalog store not configured")
	}

	category := r.Category
	if dctx != nil {
		if v, ok := dctx.Params["category"]; ok {
			if s, ok := conv.ToString(v); ok && s != "" {
				category = s
			}
		}
	}

	var (
		products []*core.ProductVector
		err      error
	)
	if category != "" {
		products, err = r.Store.ListByCategory(ctx, category)
	} else {
		products, err = r.Store.ListProducts(ctx)
	}
	if err != nil {
		return nil, err
	}
	if r.Limit > 0 && len(products) > r.Limit {
		products = products[:r.Limit]
	}

	out := make([]*core.Candidate, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		out = append(out, core.NewCandidate(p))
	}
	return out, nil
}
