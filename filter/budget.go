package filter

import (
	"context"

	"github.com/rushteam/skinkit/core"
)

// 预算策略对应的价格容忍系数。
// performance_first 允许超预算两成，给"值得为效果加钱"的产品留口子。
const (
	strategyPerformanceFirst = "performance_first"
	performanceTolerance     = 1.2
)

// BudgetFilter 是预算过滤器：过滤掉超出用户月度预算的单品。
// 预算缺失或非正时不过滤（画像没给约束就不替用户做主）。
type BudgetFilter struct{}

func (f *BudgetFilter) Name() string {
	return "filter.budget"
}

func (f *BudgetFilter) ShouldFilter(
	_ context.Context,
	dctx *core.DecisionContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil {
		return true, nil
	}
	if dctx == nil || dctx.User == nil || c.Product == nil {
		return false, nil
	}

	budget := dctx.User.Budget
	if budget.Monthly <= 0 {
		return false, nil
	}

	limit := budget.Monthly
	if budget.Strategy == strategyPerformanceFirst {
		limit *= performanceTolerance
	}
	return c.Product.Price > limit, nil
}
