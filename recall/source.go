package recall

import (
	"context"

	"github.com/rushteam/skinkit/core"
)

// Source 表示一个可复用的召回源（货架/平替/关注清单/...）。
// 你可以把它理解为“可并发 fan-out 的策略单元”。
type Source interface {
	Name() string
	Recall(ctx context.Context, dctx *core.DecisionContext) ([]*core.Candidate, error)
}
