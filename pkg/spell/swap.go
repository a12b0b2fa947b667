package spell

import "sort"

// SwapMatches finds same-length corpus words built from exactly the same
// letters as query, differing only by a small cluster of mismatched
// positions. This targets transposed-letter typos ("recieve" for "receive")
// while rejecting scattered substitutions that merely happen to share
// letters.
func SwapMatches(query string, data Data) []string {
	q := []rune(data.List.Key(query))
	n := len(q)
	if n < data.Opts.MinFuzzyLength {
		return nil
	}

	limit := data.Opts.SwapLimitLong
	if n <= data.Opts.SwapShortWordLen {
		limit = data.Opts.SwapLimitShort
	}

	var out []string
	for cand := range data.List.AnagramIndex().Lookup(string(q)) {
		cr := []rune(cand)
		if len(cr) != n || cand == string(q) {
			continue
		}
		mismatches, first, last := 0, -1, -1
		for i := 0; i < n; i++ {
			if cr[i] != q[i] {
				mismatches++
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if mismatches == 0 || mismatches > limit || last-first > data.Opts.SwapMaxSpan {
			continue
		}
		if stored, ok := data.List.Stored(cand); ok {
			out = append(out, stored)
		}
	}

	sort.Strings(out)
	return out
}
