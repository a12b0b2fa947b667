/*
Package dictionary holds the reference word corpus and its derived indexes.

A WordList is an immutable set of known-correct words. Set operations
(AddValues, Except, Intersect) return new instances and never mutate the
receiver, so a WordList can be shared freely across goroutines. The derived
indexes used by the matching engines are built lazily, at most once per
instance, and are read-only afterwards.
*/
package dictionary

import (
	"sort"
	"strings"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// WordList is an immutable, optionally case-insensitive set of words.
// The zero value is not usable; construct with NewWordList.
type WordList struct {
	caseSensitive bool
	// comparer key -> spelling as first added
	byKey map[string]string

	charIdxOnce sync.Once
	charIdx     *CharPosIndex

	revIdxOnce sync.Once
	revIdx     *CharPosIndex

	anagramOnce sync.Once
	anagram     *AnagramIndex

	trieOnce sync.Once
	trie     *patricia.Trie
}

// NewWordList builds a case-insensitive word list from the given words.
func NewWordList(words ...string) *WordList {
	return newList(false, words)
}

// NewCaseSensitiveWordList builds a word list that treats casing as significant.
func NewCaseSensitiveWordList(words ...string) *WordList {
	return newList(true, words)
}

func newList(caseSensitive bool, words []string) *WordList {
	wl := &WordList{
		caseSensitive: caseSensitive,
		byKey:         make(map[string]string, len(words)),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		k := wl.Key(w)
		if _, ok := wl.byKey[k]; !ok {
			wl.byKey[k] = w
		}
	}
	return wl
}

// Key returns the comparer key for a word: the word itself for case-sensitive
// lists, its lowercase form otherwise.
func (wl *WordList) Key(word string) string {
	if wl.caseSensitive {
		return word
	}
	return strings.ToLower(word)
}

// CaseSensitive reports the list's comparer policy.
func (wl *WordList) CaseSensitive() bool { return wl.caseSensitive }

// Contains reports whether word is in the list under its comparer.
func (wl *WordList) Contains(word string) bool {
	_, ok := wl.byKey[wl.Key(word)]
	return ok
}

// Stored returns the spelling stored for the given comparer key.
func (wl *WordList) Stored(key string) (string, bool) {
	w, ok := wl.byKey[key]
	return w, ok
}

// Len returns the number of words in the list.
func (wl *WordList) Len() int { return len(wl.byKey) }

// Values returns all words sorted case-invariantly. The slice is owned by the
// caller.
func (wl *WordList) Values() []string {
	out := make([]string, 0, len(wl.byKey))
	for _, w := range wl.byKey {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i]), strings.ToLower(out[j])
		if a == b {
			return out[i] < out[j]
		}
		return a < b
	})
	return out
}

// Keys returns all comparer keys, unsorted. The slice is owned by the caller.
func (wl *WordList) Keys() []string {
	out := make([]string, 0, len(wl.byKey))
	for k := range wl.byKey {
		out = append(out, k)
	}
	return out
}

// AddValues returns a new list with the given words added. Words already
// present under the comparer are ignored.
func (wl *WordList) AddValues(words ...string) *WordList {
	next := wl.copyBase(len(wl.byKey) + len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		k := next.Key(w)
		if _, ok := next.byKey[k]; !ok {
			next.byKey[k] = w
		}
	}
	return next
}

// Except returns a new list without any word present in other.
func (wl *WordList) Except(other *WordList) *WordList {
	next := wl.copyBase(len(wl.byKey))
	for k := range next.byKey {
		if _, ok := other.byKey[other.Key(k)]; ok {
			delete(next.byKey, k)
		}
	}
	return next
}

// Intersect returns a new list keeping only words also present in other.
func (wl *WordList) Intersect(other *WordList) *WordList {
	next := wl.copyBase(len(wl.byKey))
	for k := range next.byKey {
		if _, ok := other.byKey[other.Key(k)]; !ok {
			delete(next.byKey, k)
		}
	}
	return next
}

// copyBase clones the word set into a fresh instance with cold index caches.
func (wl *WordList) copyBase(sizeHint int) *WordList {
	next := &WordList{
		caseSensitive: wl.caseSensitive,
		byKey:         make(map[string]string, sizeHint),
	}
	for k, w := range wl.byKey {
		next.byKey[k] = w
	}
	return next
}

// CharIndex returns the forward character-position index, building it on
// first use. Safe for concurrent callers; all of them observe the same
// completed index.
func (wl *WordList) CharIndex() *CharPosIndex {
	wl.charIdxOnce.Do(func() {
		wl.charIdx = buildCharPosIndex(wl.byKey, false)
	})
	return wl.charIdx
}

// ReversedCharIndex returns the index keyed by position from the end of each
// word, built on first use.
func (wl *WordList) ReversedCharIndex() *CharPosIndex {
	wl.revIdxOnce.Do(func() {
		wl.revIdx = buildCharPosIndex(wl.byKey, true)
	})
	return wl.revIdx
}

// AnagramIndex returns the letter-multiset index, built on first use.
func (wl *WordList) AnagramIndex() *AnagramIndex {
	wl.anagramOnce.Do(func() {
		wl.anagram = buildAnagramIndex(wl.byKey)
	})
	return wl.anagram
}

// PrefixTrie returns a patricia trie over the comparer keys, built on first
// use. Used for prefix completion of corpus words.
func (wl *WordList) PrefixTrie() *patricia.Trie {
	wl.trieOnce.Do(func() {
		t := patricia.NewTrie()
		for k := range wl.byKey {
			t.Insert(patricia.Prefix(k), struct{}{})
		}
		wl.trie = t
	})
	return wl.trie
}

// WordsWithPrefix returns up to limit corpus words starting with prefix,
// sorted. A limit of 0 means no cap.
func (wl *WordList) WordsWithPrefix(prefix string, limit int) []string {
	var out []string
	_ = wl.PrefixTrie().VisitSubtree(patricia.Prefix(wl.Key(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		if w, ok := wl.byKey[string(p)]; ok {
			out = append(out, w)
		}
		return nil
	})
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
