package dupe

import (
	"math"
	"strings"
	"testing"

	"github.com/rushteam/skinkit/core"
)

func floatPtr(v float64) *float64 { return &v }

func TestFindDupes_PriceAndIdentityExclusion(t *testing.T) {
	// 规格场景：350 元锚点，30 元候选（机制几乎一致）入选，
	// 400 元候选（机制更强）因为更贵被排除。
	anchor := &core.ProductVector{
		ID:        "anchor",
		Price:     350,
		Mechanism: map[string]float64{"oil_control": 0.9},
	}
	cheap := &core.ProductVector{
		ID:        "cheap",
		Price:     30,
		Mechanism: map[string]float64{"oil_control": 0.85},
	}
	expensive := &core.ProductVector{
		ID:        "expensive",
		Price:     400,
		Mechanism: map[string]float64{"oil_control": 0.95},
	}

	got := FindDupes(anchor, []*core.ProductVector{anchor, cheap, expensive}, 10)

	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Product.ID != "cheap" {
		t.Errorf("top match = %s, want cheap", got[0].Product.ID)
	}
	// 单维同向向量的余弦相似度为 1
	if math.Abs(got[0].Similarity-1) > 1e-6 {
		t.Errorf("similarity = %v, want ≈1", got[0].Similarity)
	}
}

func TestFindDupes_NeverReturnsAnchorOrPricier(t *testing.T) {
	anchor := &core.ProductVector{ID: "a", Price: 100, Mechanism: map[string]float64{"acne": 1}}
	catalog := []*core.ProductVector{
		anchor,
		{ID: "same_price", Price: 100, Mechanism: map[string]float64{"acne": 1}},
		{ID: "cheaper", Price: 50, Mechanism: map[string]float64{"acne": 0.9}},
		nil,
	}

	got := FindDupes(anchor, catalog, 10)
	for _, m := range got {
		if m.Product.ID == "a" {
			t.Error("anchor returned as its own dupe")
		}
		if m.Product.Price >= anchor.Price {
			t.Errorf("product %s priced %v >= anchor %v", m.Product.ID, m.Product.Price, anchor.Price)
		}
	}
	if len(got) != 1 || got[0].Product.ID != "cheaper" {
		t.Fatalf("got %v, want only [cheaper]", got)
	}
}

func TestFindDupes_SortAndLimit(t *testing.T) {
	anchor := &core.ProductVector{
		ID:    "a",
		Price: 500,
		Mechanism: map[string]float64{
			"oil_control": 0.9,
			"soothing":    0.1,
		},
	}
	catalog := []*core.ProductVector{
		{ID: "close", Price: 100, Mechanism: map[string]float64{"oil_control": 0.8, "soothing": 0.1}},
		{ID: "far", Price: 100, Mechanism: map[string]float64{"soothing": 0.9}},
		{ID: "mid", Price: 100, Mechanism: map[string]float64{"oil_control": 0.5, "soothing": 0.5}},
	}

	got := FindDupes(anchor, catalog, 2)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2 (limit)", len(got))
	}
	if got[0].Product.ID != "close" {
		t.Errorf("first = %s, want close", got[0].Product.ID)
	}
	if got[0].Similarity < got[1].Similarity {
		t.Error("matches not sorted by similarity descending")
	}
}

func TestFindDupes_NonPositiveSimilarityExcluded(t *testing.T) {
	// 更便宜但机制无重叠的候选不是平替：
	// 零模长向量与正交向量的相似度都不为正，必须整体排除而不是以 0 分返回。
	anchor := &core.ProductVector{
		ID:        "anchor",
		Price:     350,
		Mechanism: map[string]float64{"oil_control": 0.9},
	}
	catalog := []*core.ProductVector{
		{ID: "blank", Price: 10}, // 无功效向量
		{ID: "cheap-unrelated", Price: 30, Mechanism: map[string]float64{"brightening": 0.9}},
	}

	got := FindDupes(anchor, catalog, 5)
	if len(got) != 0 {
		t.Fatalf("got %d matches, want empty list: %+v", len(got), got)
	}
}

func TestFindDupes_AllReturnedSimilaritiesPositive(t *testing.T) {
	anchor := &core.ProductVector{
		ID:        "a",
		Price:     200,
		Mechanism: map[string]float64{"repair": 0.8, "soothing": 0.4},
	}
	catalog := []*core.ProductVector{
		{ID: "overlap", Price: 40, Mechanism: map[string]float64{"repair": 0.6}},
		{ID: "orthogonal", Price: 40, Mechanism: map[string]float64{"acne": 0.9}},
		{ID: "blank", Price: 40},
	}

	got := FindDupes(anchor, catalog, 10)
	if len(got) != 1 || got[0].Product.ID != "overlap" {
		t.Fatalf("got %+v, want only the overlapping candidate", got)
	}
	for _, m := range got {
		if m.Similarity <= 0 {
			t.Errorf("product %s returned with non-positive similarity %v", m.Product.ID, m.Similarity)
		}
	}
}

func TestCosine_Identities(t *testing.T) {
	a := core.DenseMechanism(map[string]float64{"oil_control": 0.7, "acne": 0.3})
	if sim := cosine(a, a); math.Abs(sim-1) > 1e-9 {
		t.Errorf("cosine(v,v) = %v, want 1", sim)
	}

	x := core.DenseMechanism(map[string]float64{"oil_control": 1})
	y := core.DenseMechanism(map[string]float64{"soothing": 1})
	if sim := cosine(x, y); sim != 0 {
		t.Errorf("cosine(orthogonal) = %v, want 0", sim)
	}
}

func TestTradeOffNote_FirstRuleWins(t *testing.T) {
	tests := []struct {
		name    string
		product *core.ProductVector
		wantSub string
	}{
		{
			"high stickiness",
			&core.ProductVector{Experience: core.Experience{Stickiness: floatPtr(0.8)}},
			"stickier",
		},
		{
			"sticky texture text",
			&core.ProductVector{Experience: core.Experience{Texture: "sticky gel"}},
			"stickier",
		},
		{
			"thick texture",
			&core.ProductVector{Experience: core.Experience{Texture: "rich cream"}},
			"richer",
		},
		{
			"pilling risk",
			&core.ProductVector{Experience: core.Experience{PillingRisk: floatPtr(0.7)}},
			"pilling",
		},
		{
			"sticky wins over pilling",
			&core.ProductVector{Experience: core.Experience{
				Stickiness:  floatPtr(0.9),
				PillingRisk: floatPtr(0.9),
			}},
			"stickier",
		},
		{
			"default note",
			&core.ProductVector{},
			"lower-cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := tradeOffNote(tt.product)
			if !strings.Contains(note, tt.wantSub) {
				t.Errorf("note %q should contain %q", note, tt.wantSub)
			}
		})
	}
}

func TestFindDupes_DegenerateInputs(t *testing.T) {
	anchor := &core.ProductVector{ID: "a", Price: 10}
	if got := FindDupes(nil, []*core.ProductVector{anchor}, 5); got != nil {
		t.Errorf("nil anchor: got %v, want nil", got)
	}
	if got := FindDupes(anchor, nil, 5); got != nil {
		t.Errorf("nil catalog: got %v, want nil", got)
	}
	if got := FindDupes(anchor, []*core.ProductVector{{ID: "b", Price: 1}}, 0); got != nil {
		t.Errorf("limit 0: got %v, want nil", got)
	}
}
