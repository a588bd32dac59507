package pipeline

import (
	"context"

	"github.com/rushteam/skinkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall      Kind = "recall"      // 召回阶段：从货架生成候选集
	KindFilter      Kind = "filter"      // 过滤阶段：剔除安全否决/预算越界的候选
	KindRank        Kind = "rank"        // 排序阶段：按适配分对候选打分并排序
	KindReRank      Kind = "rerank"      // 重排阶段：截断、锁定已展示行等业务调优
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充解释标签或最终修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态，方便召回生成、过滤截断、重排调序等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		dctx *core.DecisionContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}
