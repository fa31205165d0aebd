package progression

import (
	"math"
	"testing"
)

func TestComputeSetProgress(t *testing.T) {
	tests := []struct {
		name  string
		owned map[string]bool
		ids   []string
		want  SetProgress
	}{
		{
			name:  "empty group and empty set",
			owned: map[string]bool{},
			ids:   nil,
			want:  SetProgress{Collected: 0, Total: 0, Percentage: 0, IsComplete: false},
		},
		{
			name:  "nothing owned",
			owned: map[string]bool{},
			ids:   []string{"a", "b"},
			want:  SetProgress{Collected: 0, Total: 2, Percentage: 0, IsComplete: false},
		},
		{
			name:  "half owned",
			owned: map[string]bool{"a": true},
			ids:   []string{"a", "b"},
			want:  SetProgress{Collected: 1, Total: 2, Percentage: 50, IsComplete: false},
		},
		{
			name:  "fully owned",
			owned: map[string]bool{"a": true, "b": true},
			ids:   []string{"a", "b"},
			want:  SetProgress{Collected: 2, Total: 2, Percentage: 100, IsComplete: true},
		},
		{
			name:  "owned ids outside the group are ignored",
			owned: map[string]bool{"x": true, "a": true},
			ids:   []string{"a", "b", "c"},
			want:  SetProgress{Collected: 1, Total: 3, Percentage: (1.0 / 3.0) * 100, IsComplete: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSetProgress(tt.owned, tt.ids)
			if got.Collected != tt.want.Collected || got.Total != tt.want.Total || got.IsComplete != tt.want.IsComplete {
				t.Errorf("ComputeSetProgress() = %+v, want %+v", got, tt.want)
			}
			// Percentages like 1/3 differ by an ulp between the constant
			// expectation and the runtime division, so compare with a
			// tolerance instead of exact equality.
			if math.Abs(got.Percentage-tt.want.Percentage) > 1e-9 {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.want.Percentage)
			}
		})
	}
}
