package core

import "testing"

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name  string
		rate  int
		dts   []float64
		ticks int
	}{
		{"exact", 10, []float64{0.1, 0.1, 0.1, 0.1, 0.1}, 5},
		{"accumulates", 8, []float64{0.0625, 0.0625}, 1},
		{"capped", 10, []float64{3}, 1},
		{"capped each frame", 4, []float64{0.125, 0.125}, 0},
		{"negative", 10, []float64{-1, 0}, 0},
		{"default rate", 0, []float64{0.0625}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixedStep(tt.rate)
			got := 0
			for _, dt := range tt.dts {
				got += f.Advance(dt)
			}
			if got != tt.ticks {
				t.Errorf("ticks = %d, expected %d", got, tt.ticks)
			}
		})
	}
}
