/*
Package spell implements the spelling-analysis and fix-suggestion engine.

The engines are pure functions over an immutable Data snapshot and a query
word. Updates (learning a fix, accepting a word) produce new Data values and
never mutate in place, so one snapshot can serve any number of concurrent
queries while a single writer advances the state.
*/
package spell

import (
	"sort"
	"strings"

	"github.com/bastiangx/spellserve/pkg/dictionary"
)

// FixKind tags where a candidate correction came from. Lower values rank as
// more trustworthy when a correction is recorded.
type FixKind int

const (
	// KindListed is a correction validated against the predefined word list,
	// including previously learned fixes and morphology-rule candidates.
	KindListed FixKind = iota
	// KindSplit is a two-word decomposition of the misspelling.
	KindSplit
	// KindSwap is a transposed-letter correction.
	KindSwap
	// KindFuzzy is an approximate one-edit correction.
	KindFuzzy
	// KindEntered is a correction typed in by the user.
	KindEntered
)

func (k FixKind) String() string {
	switch k {
	case KindListed:
		return "listed"
	case KindSplit:
		return "split"
	case KindSwap:
		return "swap"
	case KindFuzzy:
		return "fuzzy"
	case KindEntered:
		return "entered"
	}
	return "unknown"
}

// Fix is a candidate or chosen correction.
type Fix struct {
	Value string
	Kind  FixKind
}

// FixList maps a misspelling key to the set of corrections accepted for it.
// Treated as immutable; updates copy.
type FixList map[string]map[string]struct{}

// Lookup returns the corrections recorded for key, sorted.
func (fl FixList) Lookup(key string) []string {
	set, ok := fl[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Pairs flattens the list into the persisted key=value form.
func (fl FixList) Pairs() map[string][]string {
	out := make(map[string][]string, len(fl))
	for k, set := range fl {
		for v := range set {
			out[k] = append(out[k], v)
		}
	}
	return out
}

// FixListFromPairs builds a FixList from loaded key=value pairs.
func FixListFromPairs(pairs map[string][]string) FixList {
	fl := make(FixList, len(pairs))
	for k, values := range pairs {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		fl[strings.ToLower(k)] = set
	}
	return fl
}

// Data aggregates the corpus, the words accepted as correct for this run, and
// the persisted fix mapping. Immutable; the With/Add methods return new
// snapshots sharing unchanged parts.
type Data struct {
	List   *dictionary.WordList
	Ignore *dictionary.WordList
	Fixes  FixList
	Opts   Options
}

// NewData builds a snapshot around a corpus with an empty ignore and fix list.
func NewData(list *dictionary.WordList) Data {
	return Data{
		List:   list,
		Ignore: dictionary.NewWordList(),
		Fixes:  make(FixList),
		Opts:   DefaultOptions(),
	}
}

// WithOptions returns a snapshot using the given engine options.
func (d Data) WithOptions(opts Options) Data {
	d.Opts = opts
	return d
}

// WithFixes returns a snapshot using the given fix list.
func (d Data) WithFixes(fl FixList) Data {
	d.Fixes = fl
	return d
}

// AddWords returns a snapshot whose corpus additionally contains words.
func (d Data) AddWords(words ...string) Data {
	d.List = d.List.AddValues(words...)
	return d
}

// AddIgnore returns a snapshot that accepts word as correct for this run.
func (d Data) AddIgnore(word string) Data {
	d.Ignore = d.Ignore.AddValues(word)
	return d
}

// AddFix returns a snapshot recording that wrong was corrected to right. The
// correction also joins the corpus so it can be suggested for other words.
func (d Data) AddFix(wrong string, fix Fix) Data {
	key := strings.ToLower(wrong)
	next := make(FixList, len(d.Fixes)+1)
	for k, set := range d.Fixes {
		next[k] = set
	}
	bucket := make(map[string]struct{}, len(next[key])+1)
	for v := range next[key] {
		bucket[v] = struct{}{}
	}
	bucket[fix.Value] = struct{}{}
	next[key] = bucket
	d.Fixes = next
	if fix.Kind == KindEntered && !d.List.Contains(fix.Value) {
		d.List = d.List.AddValues(fix.Value)
	}
	return d
}

// Known reports whether word is either in the corpus or accepted for this run.
func (d Data) Known(word string) bool {
	return d.List.Contains(word) || d.Ignore.Contains(word)
}
