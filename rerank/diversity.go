package rerank

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
)

// Diversity 是一个简单的多样性 ReRank：按品类去重（保留首个出现的品类），
// 避免一屏全是精华。品类来源优先级：
// - Product.Category
// - label["category"].Value
// - meta["category"] (string)
type Diversity struct {
	LabelKey string // 默认 "category"
}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	key := n.LabelKey
	if key == "" {
		key = "category"
	}

	seen := make(map[string]bool, 32)
	out := make([]*core.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c == nil {
			continue
		}

		cate := ""
		if c.Product != nil {
			cate = c.Product.Category
		}
		if cate == "" && c.Labels != nil {
			if lbl, ok := c.Labels[key]; ok {
				cate = lbl.Value
			}
		}
		if cate == "" && c.Meta != nil {
			if v, ok := c.Meta[key]; ok {
				if s, ok := v.(string); ok {
					cate = s
				}
			}
		}

		if cate == "" {
			out = append(out, c)
			continue
		}
		if seen[cate] {
			continue
		}
		seen[cate] = true
		out = append(out, c)
	}

	return out, nil
}
