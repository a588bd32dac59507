package rerank

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/merge"
	"github.com/rushteam/skinkit/pipeline"
)

// StableNode 是稳定合并重排节点：当请求上下文携带"用户正在看的列表"
// （dctx.Displayed）时，锁定其前 N 行的身份不动，只把新一轮排序结果
// 贴到锁定行之后。富化流水线重算分数不会把用户盯着的产品顶走。
//
// Displayed 为空时（首轮请求）此节点是恒等变换。
type StableNode struct {
	// N 要锁定的行数，内部收敛到 [0, 12]
	N int
}

func (n *StableNode) Name() string {
	return "rerank.stable"
}

func (n *StableNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *StableNode) Process(
	_ context.Context,
	dctx *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if dctx == nil || len(dctx.Displayed) == 0 {
		return candidates, nil
	}
	return merge.LockTopN(dctx.Displayed, candidates, n.N), nil
}
