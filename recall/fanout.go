package recall

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/utils"
)

// Fanout 是一个 Recall Node：并发执行多个召回源，并合并结果。
// 支持超时、限流、优先级合并策略。
type Fanout struct {
	Sources       []Source
	Dedup         bool
	Timeout       time.Duration // 每个召回源的超时时间
	MaxConcurrent int           // 最大并发数（0 表示无限制）
	MergeStrategy string        // 合并策略：first / union / priority（优先级按 Sources 顺序）
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	dctx *core.DecisionContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	var (
		mu    sync.Mutex
		all   []*core.Candidate
		eg, _ = errgroup.WithContext(ctx)
	)

	// 限流：使用 semaphore 控制并发数
	sem := make(chan struct{}, n.MaxConcurrent)
	if n.MaxConcurrent <= 0 {
		close(sem) // 无限制时直接关闭，避免阻塞
	}

	for i, src := range n.Sources {
		s := src
		priority := i // 优先级（索引越小优先级越高）

		eg.Go(func() error {
			// 限流
			if n.MaxConcurrent > 0 {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			// 超时控制
			recallCtx := ctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(ctx, n.Timeout)
				defer cancel()
			}

			candidates, err := s.Recall(recallCtx, dctx)
			if err != nil {
				// 超时或错误时返回空结果，不中断其他召回源
				return nil
			}

			// 记录召回来源 label，方便 explain / 观测
			for _, c := range candidates {
				c.PutLabel("recall_source", utils.Label{Value: s.Name(), Source: "recall"})
				c.PutLabel("recall_priority", utils.Label{Value: strconv.Itoa(priority), Source: "recall"})
			}

			mu.Lock()
			all = append(all, candidates...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 合并策略
	switch n.MergeStrategy {
	case "priority":
		return n.mergeByPriority(all), nil
	case "union":
		return n.mergeUnion(all), nil
	default: // "first" 或默认
		return n.mergeFirst(all), nil
	}
}

// mergeFirst 按 ID 去重，保留第一个出现的（默认策略）。
func (n *Fanout) mergeFirst(all []*core.Candidate) []*core.Candidate {
	if !n.Dedup {
		return all
	}
	seen := make(map[string]*core.Candidate, len(all))
	out := make([]*core.Candidate, 0, len(all))
	for _, c := range all {
		if c == nil {
			continue
		}
		if old, ok := seen[c.ID]; ok {
			for k, v := range c.Labels {
				old.PutLabel(k, v)
			}
			continue
		}
		seen[c.ID] = c
		out = append(out, c)
	}
	return out
}

// mergeUnion 合并所有结果，不去重（用于需要保留所有来源的场景）。
func (n *Fanout) mergeUnion(all []*core.Candidate) []*core.Candidate {
	return all
}

// mergeByPriority 按优先级合并：相同 ID 时保留优先级更高的（索引更小）。
func (n *Fanout) mergeByPriority(all []*core.Candidate) []*core.Candidate {
	if !n.Dedup {
		return all
	}
	seen := make(map[string]*core.Candidate, len(all))
	order := make([]string, 0, len(all))
	for _, c := range all {
		if c == nil {
			continue
		}
		old, exists := seen[c.ID]
		if !exists {
			seen[c.ID] = c
			order = append(order, c.ID)
			continue
		}
		// 保留优先级更高的（值更小）
		if priorityOf(c) < priorityOf(old) {
			seen[c.ID] = c
		} else {
			// 合并 labels
			for k, v := range c.Labels {
				old.PutLabel(k, v)
			}
		}
	}
	out := make([]*core.Candidate, 0, len(seen))
	for _, id := range order {
		out = append(out, seen[id])
	}
	return out
}

// lowestPriority 是缺失/损坏 recall_priority label 时的兜底优先级。
const lowestPriority = 999

// priorityOf 读取候选的 recall_priority。label 按默认 Merge 规则可能累积成
// "2|10"，取首段（最早写入的来源）按十进制解析；解析失败按最低优先级处理。
func priorityOf(c *core.Candidate) int {
	lbl, ok := c.Labels["recall_priority"]
	if !ok {
		return lowestPriority
	}
	v := lbl.Value
	if i := strings.IndexByte(v, '|'); i >= 0 {
		v = v[:i]
	}
	p, err := strconv.Atoi(v)
	if err != nil || p < 0 {
		return lowestPriority
	}
	return p
}
