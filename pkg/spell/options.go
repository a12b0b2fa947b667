package spell

// Options carries the engine thresholds. The accept conditions are heuristic
// and tuned empirically; keep them here rather than as literals in the scans.
type Options struct {
	// MinFuzzyLength is the shortest query fuzzy and swap matching will
	// consider. Below it, one edit distance cannot disambiguate.
	MinFuzzyLength int
	// MinSplitLength is the shortest query the general split scan considers.
	MinSplitLength int
	// SwapShortWordLen is the word length up to which SwapLimitShort applies.
	SwapShortWordLen int
	// SwapLimitShort and SwapLimitLong cap the mismatched-position count for
	// short and long words respectively.
	SwapLimitShort int
	SwapLimitLong  int
	// SwapMaxSpan caps the distance between the first and last mismatched
	// position, biasing toward local transpositions.
	SwapMaxSpan int
	// ModelFallback enables the trained-model stage when every deterministic
	// engine came up empty.
	ModelFallback bool
	// ModelDepth is the edit-distance depth for the fallback model.
	ModelDepth int
}

// DefaultOptions returns the tuned defaults: mismatch cutoff 2 for words of
// up to 6 characters, 3 otherwise, span at most 2.
func DefaultOptions() Options {
	return Options{
		MinFuzzyLength:   4,
		MinSplitLength:   6,
		SwapShortWordLen: 6,
		SwapLimitShort:   2,
		SwapLimitLong:    3,
		SwapMaxSpan:      2,
		ModelFallback:    false,
		ModelDepth:       2,
	}
}
