package recall

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pkg/utils"
	"github.com/rushteam/skinkit/store"
)

func seedCatalog(t *testing.T) *store.MemoryCatalog {
	t.Helper()
	ctx := context.Background()
	catalog := store.NewMemoryCatalog()

	products := []*core.ProductVector{
		{ID: "lux", Category: "serum", Price: 350, Mechanism: map[string]float64{"repair": 0.9}},
		{ID: "dupe", Category: "serum", Price: 30, Mechanism: map[string]float64{"repair": 0.85}},
		{ID: "pricier", Category: "serum", Price: 400, Mechanism: map[string]float64{"repair": 0.9}},
		{ID: "toner", Category: "toner", Price: 50, Mechanism: map[string]float64{"soothing": 0.5}},
	}
	for _, p := range products {
		if err := catalog.PutProduct(ctx, p); err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}
	return catalog
}

func TestCatalog_RecallByCategory(t *testing.T) {
	node := &Catalog{Store: seedCatalog(t), Category: "serum"}

	out, err := node.Recall(context.Background(), &core.DecisionContext{})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d candidates, want 3", len(out))
	}
	// 目录按价格升序返回
	if out[0].ID != "dupe" || out[2].ID != "pricier" {
		t.Errorf("order = %s..%s, want price ascending", out[0].ID, out[2].ID)
	}
}

func TestCatalog_CategoryOverrideFromParams(t *testing.T) {
	node := &Catalog{Store: seedCatalog(t), Category: "serum"}

	out, err := node.Recall(context.Background(), &core.DecisionContext{
		Params: map[string]any{"category": "toner"},
	})
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "toner" {
		t.Errorf("got %+v, want the toner only", out)
	}
}

func TestCatalog_Limit(t *testing.T) {
	node := &Catalog{Store: seedCatalog(t), Limit: 2}

	out, err := node.Recall(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(out) != 2 {
		t.Errorf("got %d candidates, want 2", len(out))
	}
}

func TestCatalog_MissingStore(t *testing.T) {
	node := &Catalog{}
	if _, err := node.Recall(context.Background(), nil); err == nil {
		t.Error("expected error when store is not configured")
	}
}

func TestDupes_RecallCheaperSimilar(t *testing.T) {
	node := &Dupes{Store: seedCatalog(t), AnchorID: "lux", Limit: 5}

	out, err := node.Recall(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "dupe" {
		t.Fatalf("got %+v, want only the cheaper dupe", out)
	}
	for _, key := range []string{"dupe_of", "dupe_similarity", "dupe_trade_off"} {
		if _, ok := out[0].Labels[key]; !ok {
			t.Errorf("missing label %s", key)
		}
	}
}

func TestDupes_MissingAnchorIsEmptyNotError(t *testing.T) {
	node := &Dupes{Store: seedCatalog(t), AnchorID: "no-such-product"}

	out, err := node.Recall(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates, want 0", len(out))
	}
}

type staticSource struct {
	name string
	ids  []string
	err  error
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Recall(_ context.Context, _ *core.DecisionContext) ([]*core.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*core.Candidate, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, &core.Candidate{ID: id})
	}
	return out, nil
}

func TestFanout_MergeFirstDedupes(t *testing.T) {
	node := &Fanout{
		Sources: []Source{
			&staticSource{name: "s1", ids: []string{"a", "b"}},
			&staticSource{name: "s2", ids: []string{"b", "c"}},
		},
		Dedup:         true,
		MaxConcurrent: 1, // 串行保证结果顺序可断言
	}

	out, err := node.Process(context.Background(), &core.DecisionContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d candidates, want 3 deduped", len(out))
	}
	for _, c := range out {
		if _, ok := c.Labels["recall_source"]; !ok {
			t.Errorf("candidate %s missing recall_source label", c.ID)
		}
	}
}

func TestFanout_PriorityLabelIsDecimalBeyondTenSources(t *testing.T) {
	// 超过 10 个召回源时优先级必须仍是十进制文本，不能退化成 ':' ';' 等字符
	sources := make([]Source, 0, 12)
	for i := 0; i < 12; i++ {
		sources = append(sources, &staticSource{
			name: fmt.Sprintf("s%d", i),
			ids:  []string{fmt.Sprintf("c%d", i)},
		})
	}
	node := &Fanout{Sources: sources, MergeStrategy: "union"}

	out, err := node.Process(context.Background(), &core.DecisionContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 12 {
		t.Fatalf("got %d candidates, want 12", len(out))
	}
	for _, c := range out {
		want := "c" + c.Labels["recall_priority"].Value
		if c.ID != want {
			t.Errorf("candidate %s carries recall_priority %q", c.ID, c.Labels["recall_priority"].Value)
		}
	}
}

func TestFanout_MergeByPriorityTwoDigit(t *testing.T) {
	// 同一 ID 出现在第 10 号和第 2 号来源时，必须保留 2 号的那份
	low := &core.Candidate{ID: "x", Name: "from-10"}
	low.PutLabel("recall_priority", utils.Label{Value: "10", Source: "recall"})
	high := &core.Candidate{ID: "x", Name: "from-2"}
	high.PutLabel("recall_priority", utils.Label{Value: "2", Source: "recall"})

	node := &Fanout{Dedup: true}
	out := node.mergeByPriority([]*core.Candidate{low, high})
	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1", len(out))
	}
	if out[0].Name != "from-2" {
		t.Errorf("kept %s, want the priority-2 instance", out[0].Name)
	}
}

func TestPriorityOf(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"single digit", "3", 3},
		{"two digits", "10", 10},
		{"merged value takes first segment", "2|10", 2},
		{"garbage falls to lowest", "x", lowestPriority},
		{"empty falls to lowest", "", lowestPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &core.Candidate{ID: "c"}
			if tt.value != "" {
				c.PutLabel("recall_priority", utils.Label{Value: tt.value, Source: "recall"})
			}
			if got := priorityOf(c); got != tt.want {
				t.Errorf("priorityOf(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestFanout_SourceErrorDoesNotAbort(t *testing.T) {
	node := &Fanout{
		Sources: []Source{
			&staticSource{name: "bad", err: errors.New("upstream down")},
			&staticSource{name: "good", ids: []string{"a"}},
		},
		Dedup: true,
	}

	out, err := node.Process(context.Background(), &core.DecisionContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("got %+v, want the good source's candidate", out)
	}
}
