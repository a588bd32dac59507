package filter

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该候选就会被过滤掉。
type FilterNode struct {
	Filters []Filter
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 || len(candidates) == 0 {
		return candidates, nil
	}

	out := make([]*core.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c == nil {
			continue
		}

		shouldFilter := false
		filterReason := ""

		// 依次检查每个过滤器
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, dctx, c)
			if err != nil {
				// 过滤器错误时记录但不中断流程
				continue
			}
			if ok {
				shouldFilter = true
				filterReason = f.Name()
				break
			}
		}

		if shouldFilter {
			// 记录过滤原因（可选，用于调试/观测）
			c.PutLabel("filtered", utils.Label{
				Value:  "true",
				Source: filterReason,
			})
			continue
		}

		out = append(out, c)
	}

	return out, nil
}
