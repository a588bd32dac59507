package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/skinkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("candidate", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("user", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Eval 是候选行规则的解释器，使用 CEL (Common Expression Language) 实现。
// 表达式在构造时编译一次，之后对每个候选行反复求值。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：candidate.price < 300.0 / candidate.score > 60.0
//   - 标签：label.veto == "true" / label.dupe_source != null
//   - 用户：user.barrier == "impaired" && candidate.burn_rate > 0.1
//   - 逻辑：candidate.category == "toner" && candidate.price < user.budget
//
// 示例：
//   - `candidate.price > user.budget` → 超出月度预算
//   - `user.barrier == "impaired" && candidate.burn_rate > 0.05` → 屏障受损时收紧翻车率
type Eval struct {
	expr string
	prg  cel.Program
}

// NewEval 编译一条 CEL 表达式。表达式为空时视为恒真。
func NewEval(expr string) (*Eval, error) {
	if expr == "" {
		return &Eval{expr: expr}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	return &Eval{expr: expr, prg: prg}, nil
}

// Evaluate 对一个候选行求值，返回布尔结果。
// 注意：CEL 访问不存在的 key 会报错，应使用 label.key != null 检查存在性。
func (e *Eval) Evaluate(c *core.Candidate, dctx *core.DecisionContext) (bool, error) {
	if e.prg == nil {
		return true, nil
	}

	out, _, err := e.prg.Eval(buildInput(c, dctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(c *core.Candidate, dctx *core.DecisionContext) map[string]interface{} {
	// label.xxx 直接取 Label.Value，方便写 label.veto == "true"
	labelAccessor := make(map[string]interface{})
	if c != nil {
		for k, v := range c.Labels {
			labelAccessor[k] = v.Value
		}
	}

	candidate := map[string]interface{}{
		"id":    "",
		"name":  "",
		"score": 0.0,
	}
	if c != nil {
		candidate["id"] = c.ID
		candidate["name"] = c.Name
		candidate["score"] = c.Score
		if c.Product != nil {
			candidate["brand"] = c.Product.Brand
			candidate["category"] = c.Product.Category
			candidate["price"] = c.Product.Price
			candidate["burn_rate"] = c.Product.Social.BurnRate
		}
		if c.Breakdown != nil {
			candidate["breakdown"] = map[string]interface{}{
				"science":     c.Breakdown.Science,
				"social":      c.Breakdown.Social,
				"engineering": c.Breakdown.Engineering,
				"total":       c.Breakdown.Total,
				"vetoed":      c.Breakdown.Vetoed,
			}
		}
	}

	user := map[string]interface{}{}
	if dctx != nil && dctx.User != nil {
		u := dctx.User
		user["barrier"] = string(u.Barrier)
		user["budget"] = u.Budget.Monthly
		user["budget_strategy"] = u.Budget.Strategy
		types := make([]string, 0, len(u.SkinTypes))
		for _, t := range u.SkinTypes {
			types = append(types, string(t))
		}
		user["skin_types"] = types
	}

	return map[string]interface{}{
		"candidate": candidate,
		"label":     labelAccessor,
		"user":      user,
	}
}
