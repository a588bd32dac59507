package filter

import (
	"context"
	"testing"

	"github.com/rushteam/skinkit/core"
)

func candidateOf(p *core.ProductVector) *core.Candidate {
	return core.NewCandidate(p)
}

func dctxWith(user *core.UserVector) *core.DecisionContext {
	return &core.DecisionContext{UserID: "u1", User: user}
}

func TestVetoFilter(t *testing.T) {
	impaired := &core.UserVector{Barrier: core.BarrierImpaired}
	healthy := &core.UserVector{Barrier: core.BarrierHealthy}

	flagged := &core.ProductVector{ID: "p1", RiskFlags: []core.RiskFlag{core.RiskHighIrritation}}
	burny := &core.ProductVector{ID: "p2", Social: core.SocialStats{BurnRate: 0.2}}
	mild := &core.ProductVector{ID: "p3", Social: core.SocialStats{BurnRate: 0.05}}

	tests := []struct {
		name    string
		user    *core.UserVector
		product *core.ProductVector
		want    bool
	}{
		{"impaired barrier blocks flagged product", impaired, flagged, true},
		{"impaired barrier blocks high burn rate", impaired, burny, true},
		{"impaired barrier keeps mild product", impaired, mild, false},
		{"healthy barrier keeps flagged product", healthy, flagged, false},
	}

	f := &VetoFilter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidateOf(tt.product)
			got, err := f.ShouldFilter(context.Background(), dctxWith(tt.user), c)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.want {
				if lbl, ok := c.Labels["veto_reason"]; !ok || lbl.Value == "" {
					t.Error("vetoed candidate should carry a veto_reason label")
				}
			}
		})
	}
}

func TestBudgetFilter(t *testing.T) {
	tests := []struct {
		name   string
		budget core.Budget
		price  float64
		want   bool
	}{
		{"within budget", core.Budget{Monthly: 300}, 299, false},
		{"over budget", core.Budget{Monthly: 300}, 301, true},
		{"no budget means no filtering", core.Budget{}, 9999, false},
		{"performance_first tolerates 20% over", core.Budget{Monthly: 300, Strategy: "performance_first"}, 350, false},
		{"performance_first still has a ceiling", core.Budget{Monthly: 300, Strategy: "performance_first"}, 400, true},
	}

	f := &BudgetFilter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &core.UserVector{Budget: tt.budget}
			c := candidateOf(&core.ProductVector{ID: "p", Price: tt.price})
			got, err := f.ShouldFilter(context.Background(), dctxWith(user), c)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeAvoidStore struct {
	lists map[string][]string
}

func (s *fakeAvoidStore) GetAvoidList(_ context.Context, key string) ([]string, error) {
	return s.lists[key], nil
}

func TestAvoidFilter(t *testing.T) {
	f := &AvoidFilter{
		IDs: []string{"banned"},
		Store: &fakeAvoidStore{lists: map[string][]string{
			"user:avoid:u1": {"personal"},
		}},
	}

	ctx := context.Background()
	dctx := dctxWith(nil)

	if got, _ := f.ShouldFilter(ctx, dctx, candidateOf(&core.ProductVector{ID: "banned"})); !got {
		t.Error("global avoid id should be filtered")
	}
	if got, _ := f.ShouldFilter(ctx, dctx, candidateOf(&core.ProductVector{ID: "personal"})); !got {
		t.Error("user avoid id should be filtered")
	}
	if got, _ := f.ShouldFilter(ctx, dctx, candidateOf(&core.ProductVector{ID: "ok"})); got {
		t.Error("unlisted id should be kept")
	}
}

func TestRuleFilter(t *testing.T) {
	f, err := NewRuleFilter(`candidate.price > 500.0`)
	if err != nil {
		t.Fatalf("NewRuleFilter() error = %v", err)
	}

	ctx := context.Background()
	if got, _ := f.ShouldFilter(ctx, nil, candidateOf(&core.ProductVector{ID: "a", Price: 600})); !got {
		t.Error("expression matched, candidate should be filtered")
	}
	if got, _ := f.ShouldFilter(ctx, nil, candidateOf(&core.ProductVector{ID: "b", Price: 100})); got {
		t.Error("expression not matched, candidate should be kept")
	}
}

func TestRuleFilter_EmptyExpressionKeepsEverything(t *testing.T) {
	f, err := NewRuleFilter("")
	if err != nil {
		t.Fatalf("NewRuleFilter() error = %v", err)
	}
	if got, _ := f.ShouldFilter(context.Background(), nil, candidateOf(&core.ProductVector{ID: "a"})); got {
		t.Error("empty expression must not filter")
	}
}

func TestFilterNode_LabelsFilteredReason(t *testing.T) {
	node := &FilterNode{Filters: []Filter{&VetoFilter{}}}
	user := &core.UserVector{Barrier: core.BarrierImpaired}

	kept := candidateOf(&core.ProductVector{ID: "safe"})
	dropped := candidateOf(&core.ProductVector{ID: "risky", RiskFlags: []core.RiskFlag{core.RiskHighIrritation}})

	out, err := node.Process(context.Background(), dctxWith(user), []*core.Candidate{kept, dropped, nil})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "safe" {
		t.Fatalf("out = %+v, want only the safe candidate", out)
	}
	if lbl, ok := dropped.Labels["filtered"]; !ok || lbl.Source != "filter.veto" {
		t.Errorf("dropped candidate labels = %v, want filtered label from filter.veto", dropped.Labels)
	}
}
