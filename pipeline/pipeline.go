package pipeline

import (
	"context"

	"github.com/rushteam/skinkit/core"
)

// Pipeline 是 skinkit 的核心抽象：把决策逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	dctx *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := candidates
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, dctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
