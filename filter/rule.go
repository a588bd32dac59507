package filter

import (
	"context"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pkg/dsl"
)

// RuleFilter 是表达式过滤器：用 CEL 表达式描述"命中即过滤"的运营规则，
// 例如 `candidate.burn_rate > 0.2 || candidate.price > 500.0`。
// 表达式编译一次复用，求值失败时保留候选（规则坏了不应清空货架）。
type RuleFilter struct {
	eval *dsl.Eval
	expr string
}

// NewRuleFilter 编译过滤表达式。空表达式返回不过滤任何候选的过滤器。
func NewRuleFilter(expr string) (*RuleFilter, error) {
	eval, err := dsl.NewEval(expr)
	if err != nil {
		return nil, err
	}
	return &RuleFilter{eval: eval, expr: expr}, nil
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	dctx *core.DecisionContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil {
		return true, nil
	}
	if f.eval == nil || f.expr == "" {
		return false, nil
	}

	matched, err := f.eval.Evaluate(c, dctx)
	if err != nil {
		return false, nil
	}
	return matched, nil
}
