package chunker

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentile(t *testing.T) {
	values := []float64{3, 1, 4, 2} // unsorted on purpose
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tt := range tests {
		if got := percentile(values, tt.p); !almostEqual(got, tt.want) {
			t.Errorf("percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile of empty slice = %v, want 0", got)
	}
	if values[0] != 3 {
		t.Error("percentile mutated its input")
	}
}

func TestBreakpointThreshold(t *testing.T) {
	distances := []float64{1, 2, 3, 4}
	tests := []struct {
		name string
		cfg  BreakpointConfig
		want float64
	}{
		{"percentile", BreakpointConfig{Method: BreakpointPercentile, Amount: 50}, 2.5},
		{"stddev", BreakpointConfig{Method: BreakpointStdDev, Amount: 1}, 2.5 + math.Sqrt(1.25)},
		{"iqr", BreakpointConfig{Method: BreakpointIQR, Amount: 1.5}, 2.5 + 1.5*1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := breakpointThreshold(distances, tt.cfg); !almostEqual(got, tt.want) {
				t.Errorf("threshold = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"scaled", []float32{1, 0}, []float32{5, 0}, 0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, 2},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosineDistance(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("cosineDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := mean(values); !almostEqual(got, 5) {
		t.Errorf("mean = %v, want 5", got)
	}
	if got := stdDev(values); !almostEqual(got, 2) {
		t.Errorf("stdDev = %v, want 2", got)
	}
	if got := stdDev(nil); got != 0 {
		t.Errorf("stdDev of empty slice = %v, want 0", got)
	}
}
