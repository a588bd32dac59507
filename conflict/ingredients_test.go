package conflict

import (
	"reflect"
	"testing"

	"github.com/rushteam/skinkit/core"
)

func TestInferRiskFlags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []core.RiskFlag
	}{
		{
			"gentle cleanser has no flags",
			"water, glycerin, cocamidopropyl betaine, panthenol",
			nil,
		},
		{
			"alcohol denat in top 5",
			"water, alcohol denat, glycerin, niacinamide",
			[]core.RiskFlag{core.RiskAlcohol},
		},
		{
			"alcohol denat beyond top 5 is positional noise",
			"water, glycerin, butylene glycol, niacinamide, panthenol, alcohol denat",
			nil,
		},
		{
			"salicylic acid in top 10",
			"water, butylene glycol, salicylic acid, glycerin",
			[]core.RiskFlag{core.RiskAcid, core.RiskHighIrritation},
		},
		{
			"retinoid anywhere",
			"water, glycerin, squalane, dimethicone, panthenol, ceramide np, cholesterol, carbomer, polysorbate 60, tocopherol, retinol",
			[]core.RiskFlag{core.RiskHighIrritation},
		},
		{
			"benzoyl peroxide",
			"water, benzoyl peroxide, carbomer",
			[]core.RiskFlag{core.RiskHighIrritation},
		},
		{
			"chinese ingredient list",
			"水, 变性乙醇, 甘油, 水杨酸",
			[]core.RiskFlag{core.RiskAlcohol, core.RiskAcid, core.RiskHighIrritation},
		},
		{
			"empty text",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferRiskFlags(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInferKeyActives(t *testing.T) {
	text := "water, niacinamide, salicylic acid, sodium hyaluronate, retinol"
	got := InferKeyActives(text, nil)

	want := []string{"Niacinamide", "Retinoid", "BHA (Salicylic Acid)", "Hyaluronic Acid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInferKeyActives_ExpertSeedsFirstAndDedupes(t *testing.T) {
	got := InferKeyActives("water, niacinamide", []string{"Niacinamide|Tranexamic Acid", "n/a"})

	want := []string{"Niacinamide", "Tranexamic Acid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultBurnRate(t *testing.T) {
	if got := DefaultBurnRate([]core.RiskFlag{core.RiskHighIrritation}); got != 0.15 {
		t.Errorf("high irritation burn rate = %v, want 0.15", got)
	}
	if got := DefaultBurnRate(nil); got != 0.02 {
		t.Errorf("default burn rate = %v, want 0.02", got)
	}
}
