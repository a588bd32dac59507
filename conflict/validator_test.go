package conflict

import (
	"testing"

	"github.com/rushteam/skinkit/core"
)

func TestValidateRoutine_CopperPeptidePlusVitaminC(t *testing.T) {
	plan := &core.RoutinePlan{
		Morning: []core.RoutineStep{
			{Actives: []string{"Vitamin C"}},
		},
		Evening: []core.RoutineStep{
			{Product: &core.ProductVector{Name: "蓝铜肽修护精华"}},
		},
	}

	finding := ValidateRoutine(plan, core.LocaleZH)
	if finding == nil {
		t.Fatal("expected a finding for copper peptide + vitamin C")
	}
	if finding.RuleID != RuleCopperPeptideVitaminC {
		t.Errorf("rule id = %q, want %q", finding.RuleID, RuleCopperPeptideVitaminC)
	}
	if finding.Severity != core.SeverityWarn {
		t.Errorf("severity = %q, want warn", finding.Severity)
	}
}

func TestValidateRoutine_AgreesWithDetector(t *testing.T) {
	// 校验器与完整检测器对同一条规则必须给出一致结论
	tests := []struct {
		name    string
		plan    *core.RoutinePlan
		expects bool
	}{
		{
			"both fire",
			&core.RoutinePlan{Morning: []core.RoutineStep{
				{Actives: []string{"Copper Peptides"}},
				{Actives: []string{"Ascorbic Acid"}},
			}},
			true,
		},
		{
			"neither fires",
			&core.RoutinePlan{Morning: []core.RoutineStep{
				{Actives: []string{"Copper Peptides"}},
				{Actives: []string{"Niacinamide"}},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding := ValidateRoutine(tt.plan, core.LocaleZH)
			out, err := Detect(core.ConflictInput{Routine: tt.plan})
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}

			validatorFired := finding != nil
			detectorFired := hasRule(out, RuleCopperPeptideVitaminC)
			if validatorFired != tt.expects || detectorFired != tt.expects {
				t.Errorf("validator=%v detector=%v, want both %v",
					validatorFired, detectorFired, tt.expects)
			}
		})
	}
}

func TestValidateRoutine_NilPlan(t *testing.T) {
	if got := ValidateRoutine(nil, core.LocaleEN); got != nil {
		t.Errorf("got %v, want nil for nil plan", got)
	}
}
