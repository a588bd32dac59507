package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "empty existing yields incoming",
			existing: Label{},
			incoming: Label{Value: "v", Source: "s"},
			want:     Label{Value: "v", Source: "s"},
		},
		{
			name:     "empty incoming keeps existing",
			existing: Label{Value: "v", Source: "s"},
			incoming: Label{},
			want:     Label{Value: "v", Source: "s"},
		},
		{
			name:     "both set accumulate",
			existing: Label{Value: "a", Source: "recall"},
			incoming: Label{Value: "b", Source: "filter"},
			want:     Label{Value: "a|b", Source: "recall,filter"},
		},
		{
			name:     "missing existing source takes incoming",
			existing: Label{Value: "a"},
			incoming: Label{Value: "b", Source: "filter"},
			want:     Label{Value: "a|b", Source: "filter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
