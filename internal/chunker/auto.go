package chunker

// Duration thresholds for automatic strategy selection, in seconds.
const (
	autoRecursiveAfter = 600  // 10 minutes
	autoSemanticAfter  = 1800 // 30 minutes
)

// SelectStrategy maps a video duration to a concrete strategy: short
// videos fit a single prompt, medium ones get recursive splitting, long
// ones get semantic splitting when an embedding backend is available and
// recursive otherwise. Never returns StrategyAuto or StrategyTimestamp.
func SelectStrategy(durationSeconds float64, semanticAvailable bool) Strategy {
	switch {
	case durationSeconds < autoRecursiveAfter:
		return StrategyNone
	case durationSeconds < autoSemanticAfter:
		return StrategyRecursive
	case semanticAvailable:
		return StrategySemantic
	default:
		return StrategyRecursive
	}
}
