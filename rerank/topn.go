package rerank

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在排序后截取前 N 个候选。
// 通常在排序（Rank）节点之后使用，用于限制返回结果数量。
//
// 使用场景：
//   - 排序后只返回 Top 10/20/50 个结果
//   - 控制决策结果数量，提升性能
//   - 配合稳定合并重排使用
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.SuitabilityNode{},   // 排序
//	        &rerank.TopNNode{N: 20},   // 截取 Top 20
//	        &rerank.StableNode{N: 3},  // 锁定已展示的前 3 行
//	    },
//	}
type TopNNode struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，则返回所有候选（不截断）
	// 如果 N > len(candidates)，则返回所有候选
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	// 如果 N <= 0，不截断，返回所有候选
	if n.N <= 0 {
		return candidates, nil
	}

	// 如果候选数量小于等于 N，直接返回
	if len(candidates) <= n.N {
		return candidates, nil
	}

	// 截取前 N 个候选
	return candidates[:n.N], nil
}
