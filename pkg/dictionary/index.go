package dictionary

import "sort"

// WordChar keys the position index: a character at a given offset, counted
// from the start of the word (or from the end, in the reversed index).
type WordChar struct {
	Char rune
	Pos  int
}

// WordSet is a set of comparer keys.
type WordSet map[string]struct{}

// CharPosIndex maps (character, position) to the set of corpus words having
// that character at that position. Read-only after construction.
type CharPosIndex struct {
	buckets map[WordChar]WordSet
}

func buildCharPosIndex(byKey map[string]string, reversed bool) *CharPosIndex {
	ix := &CharPosIndex{buckets: make(map[WordChar]WordSet)}
	for k := range byKey {
		runes := []rune(k)
		n := len(runes)
		for i := 0; i < n; i++ {
			ch := runes[i]
			if reversed {
				ch = runes[n-1-i]
			}
			wc := WordChar{Char: ch, Pos: i}
			set, ok := ix.buckets[wc]
			if !ok {
				set = make(WordSet)
				ix.buckets[wc] = set
			}
			set[k] = struct{}{}
		}
	}
	return ix
}

// Lookup returns the bucket for (ch, pos), or nil when no corpus word has
// that character at that position. A nil result is an expected scan
// terminator, not an error.
func (ix *CharPosIndex) Lookup(ch rune, pos int) WordSet {
	return ix.buckets[WordChar{Char: ch, Pos: pos}]
}

// AnagramIndex maps the canonical sorted-letter key of a word to the set of
// corpus words sharing exactly that letter multiset.
type AnagramIndex struct {
	buckets map[string]WordSet
}

func buildAnagramIndex(byKey map[string]string) *AnagramIndex {
	ix := &AnagramIndex{buckets: make(map[string]WordSet)}
	for k := range byKey {
		ck := AnagramKey(k)
		set, ok := ix.buckets[ck]
		if !ok {
			set = make(WordSet)
			ix.buckets[ck] = set
		}
		set[k] = struct{}{}
	}
	return ix
}

// Lookup returns the words sharing word's exact letter multiset.
func (ix *AnagramIndex) Lookup(word string) WordSet {
	return ix.buckets[AnagramKey(word)]
}

// AnagramKey canonicalizes a word's letters by sorting them.
func AnagramKey(word string) string {
	runes := []rune(word)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// Intersect returns the intersection of two sets. A nil first set is treated
// as "everything", so running intersections can start from nil.
func Intersect(acc, next WordSet) WordSet {
	if acc == nil {
		return next
	}
	small, large := acc, next
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(WordSet, len(small))
	for k := range small {
		if _, ok := large[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}
