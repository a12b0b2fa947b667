package spell

import (
	"sort"

	"github.com/bastiangx/spellserve/pkg/dictionary"
)

// FuzzyMatches finds corpus words reachable from query by roughly one edit
// (insertion, deletion or substitution).
//
// The scan works from both ends at once: a forward cursor grows the matched
// prefix through the forward position index while the running bucket
// intersection stays non-empty, and a backward cursor grows the matched
// suffix through the reversed index the same way. The gap left between the
// two cursors pins down where the edit happened; a candidate is accepted only
// when exactly one word survives the combined intersection and its length
// difference fits the gap. Either cursor may make no progress at all, which
// pins the edit at that end of the word and leaves the other cursor's
// survivors to decide alone. Outer passes shrink the forward boundary so
// edits with several plausible anchor points are still found.
//
// Queries shorter than the configured minimum return nil: below that, one
// edit distance is too noisy to disambiguate.
func FuzzyMatches(query string, data Data) []string {
	q := []rune(data.List.Key(query))
	n := len(q)
	if n < data.Opts.MinFuzzyLength {
		return nil
	}

	fwd := data.List.CharIndex()
	rev := data.List.ReversedCharIndex()

	seen := make(map[string]struct{})
	var out []string

	max := n - 1
	for max >= 0 {
		// Grow the matched prefix; i ends as the matched length.
		var fwdSet dictionary.WordSet
		i := 0
		for k := 0; k < max; k++ {
			bucket := fwd.Lookup(q[k], k)
			if bucket == nil {
				break
			}
			next := dictionary.Intersect(fwdSet, bucket)
			if len(next) == 0 {
				break
			}
			fwdSet = next
			i = k + 1
		}

		// Grow the matched suffix down to one short of the prefix, so the
		// two regions may overlap by a single position. j staying at n pins
		// the edit at the trailing edge; i == 0 pins it at the leading edge.
		var revSet dictionary.WordSet
		j := n
		stop := i - 1
		if stop < 0 {
			stop = 0
		}
		for k := n - 1; k >= stop; k-- {
			bucket := rev.Lookup(q[k], n-1-k)
			if bucket == nil {
				break
			}
			next := dictionary.Intersect(revSet, bucket)
			if len(next) == 0 {
				break
			}
			revSet = next
			j = k
		}

		if i > 0 || j < n {
			// A backward scan with no progress leaves revSet nil, which must
			// not be mistaken for the universe the running intersection
			// starts from: the forward survivors stand alone there.
			survivors := fwdSet
			if revSet != nil {
				survivors = dictionary.Intersect(fwdSet, revSet)
			}
			if w, ok := singleSurvivor(survivors); ok {
				lenDiff := abs(len([]rune(w)) - n)
				diff := j - i
				accepted := false
				switch {
				case diff == -1 || diff == 0:
					// Prefix and suffix meet or overlap: a single
					// insertion or deletion.
					accepted = lenDiff == 1
				case diff == 1:
					// One unresolved position: substitution, or an
					// insertion at the boundary.
					accepted = lenDiff <= 1
				}
				if accepted && w != string(q) {
					if _, dup := seen[w]; !dup {
						seen[w] = struct{}{}
						if stored, ok := data.List.Stored(w); ok {
							out = append(out, stored)
						}
					}
				}
			}
		}

		max = i - 1
	}

	sort.Strings(out)
	return out
}

// singleSurvivor returns the sole member of set. More than one survivor is
// ambiguous and yields no match rather than a guess.
func singleSurvivor(set dictionary.WordSet) (string, bool) {
	if len(set) != 1 {
		return "", false
	}
	for w := range set {
		return w, true
	}
	return "", false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
