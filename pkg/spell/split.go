package spell

import (
	"sort"

	"github.com/bastiangx/spellserve/pkg/dictionary"
)

// SplitIndexes finds the positions at which query decomposes into two words
// that are each independently in the corpus, handling run-together compounds
// and case-merge fragments. Indexes are returned in ascending order.
//
// Queries starting with a conventional single-letter 'I' or 'T' prefix split
// after the first character whenever the remainder is a corpus word,
// independent of the general scan and its length floor.
func SplitIndexes(query string, data Data) []int {
	found := make(map[int]struct{})

	if len(query) >= 2 && (query[0] == 'I' || query[0] == 'T') && data.List.Contains(query[1:]) {
		found[1] = struct{}{}
	}

	q := []rune(data.List.Key(query))
	n := len(q)
	if n >= data.Opts.MinSplitLength {
		fwd := data.List.CharIndex()
		// Walk the prefix intersection; whenever a surviving word is exactly
		// the prefix consumed so far, the matching suffix completes a split.
		// Stop before the tail gets too short to hold two real fragments.
		var set dictionary.WordSet
		for i := 0; i < n-3; i++ {
			bucket := fwd.Lookup(q[i], i)
			if bucket == nil {
				break
			}
			next := dictionary.Intersect(set, bucket)
			if len(next) == 0 {
				break
			}
			set = next
			if hasWordOfLength(set, i+1) && data.List.Contains(string(q[i+1:])) {
				found[i+1] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]int, 0, len(found))
	for i := range found {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// hasWordOfLength reports whether any member of set has exactly length runes.
// Inside a prefix intersection that member can only be the consumed prefix
// itself.
func hasWordOfLength(set dictionary.WordSet, length int) bool {
	for w := range set {
		if len([]rune(w)) == length {
			return true
		}
	}
	return false
}
