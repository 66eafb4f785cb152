package chunker

import (
	"math"
	"sort"
)

// breakpointThreshold derives the boundary cutoff from the distribution
// of adjacent-window distances, using the configured method.
func breakpointThreshold(distances []float64, cfg BreakpointConfig) float64 {
	switch cfg.Method {
	case BreakpointStdDev:
		return mean(distances) + cfg.Amount*stdDev(distances)
	case BreakpointIQR:
		q1 := percentile(distances, 25)
		q3 := percentile(distances, 75)
		return mean(distances) + cfg.Amount*(q3-q1)
	default:
		return percentile(distances, cfg.Amount)
	}
}

// percentile computes the p-th percentile with linear interpolation
// between closest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// cosineDistance is 1 - cosine similarity. Zero vectors are treated as
// maximally distant from everything, including each other.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
