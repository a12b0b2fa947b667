package spell

import (
	"iter"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
	"github.com/sajari/fuzzy"

	"github.com/bastiangx/spellserve/pkg/dictionary"
)

// suffixRule rewrites a morphological ending into a candidate base form.
// Each rule yields at most one candidate; the corpus membership check decides
// whether it survives.
type suffixRule struct {
	suffix string
	except string
	apply  func(v string) string
}

var suffixRules = []suffixRule{
	{suffix: "tted", apply: func(v string) string { return v[:len(v)-3] }},
	{suffix: "ed", except: "tted", apply: func(v string) string { return v[:len(v)-2] }},
	{suffix: "ial", apply: func(v string) string { return v[:len(v)-3] }},
	{suffix: "ical", apply: func(v string) string { return v[:len(v)-2] }},
	{suffix: "den", except: "dden", apply: func(v string) string { return v[:len(v)-2] + "d" + v[len(v)-2:] }},
	{suffix: "eing", apply: func(v string) string { return v[:len(v)-4] + v[len(v)-3:] }},
	{suffix: "able", apply: func(v string) string { return v[:len(v)-4] + "i" + v[len(v)-3:] }},
	{suffix: "eable", apply: func(v string) string { return v[:len(v)-4] + v[len(v)-3:] }},
	{suffix: "ability", apply: func(v string) string { return v[:len(v)-7] + "i" + v[len(v)-6:] }},
	{suffix: "eability", apply: func(v string) string { return v[:len(v)-8] + v[len(v)-7:] }},
}

// PossibleFixes produces candidate corrections for a misspelling, in priority
// order: previously learned fixes, swap matches, fuzzy matches, suffix
// morphology rules, then the doubled-syllable contraction. The sequence is
// lazy and finite but not restartable; callers may stop after the first few
// candidates without running the later, more expensive stages.
//
// Every candidate is validated as a corpus member not on the ignore list, and
// is re-cased to match the query before being yielded.
func PossibleFixes(m Misspelling, data Data) iter.Seq[Fix] {
	return func(yield func(Fix) bool) {
		seen := make(map[string]struct{})
		yielded := false
		emit := func(word string, kind FixKind) bool {
			key := data.List.Key(word)
			if _, dup := seen[key]; dup {
				return true
			}
			seen[key] = struct{}{}
			if !data.List.Contains(word) || data.Ignore.Contains(word) {
				return true
			}
			yielded = true
			return yield(Fix{Value: ApplyCase(m.Case, word), Kind: kind})
		}

		for _, v := range data.Fixes.Lookup(m.Lower) {
			if !emit(v, KindListed) {
				return
			}
		}

		for _, w := range rankBySimilarity(SwapMatches(m.Lower, data), m.Lower) {
			if !emit(w, KindSwap) {
				return
			}
		}

		for _, w := range rankBySimilarity(FuzzyMatches(m.Lower, data), m.Lower) {
			if !emit(w, KindFuzzy) {
				return
			}
		}

		v := m.Lower
		for _, rule := range suffixRules {
			if !strings.HasSuffix(v, rule.suffix) || len(v) <= len(rule.suffix) {
				continue
			}
			if rule.except != "" && strings.HasSuffix(v, rule.except) {
				continue
			}
			if !emit(rule.apply(v), KindListed) {
				return
			}
		}

		for _, w := range contractedForms(v) {
			if !emit(w, KindListed) {
				return
			}
		}

		if data.Opts.ModelFallback && !yielded {
			for _, w := range modelSuggestions(m.Lower, data) {
				if !emit(w, KindFuzzy) {
					return
				}
			}
		}
	}
}

// FirstFixes collects up to limit candidates from PossibleFixes. A limit of 0
// means no cap.
func FirstFixes(m Misspelling, data Data, limit int) []Fix {
	var out []Fix
	for fix := range PossibleFixes(m, data) {
		out = append(out, fix)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// contractedForms drops a doubled two-character unit ("readonlyly" has "lyly"
// at one position) and returns every resulting form. Corpus validation
// happens at emit time.
func contractedForms(v string) []string {
	var out []string
	for i := 0; i+3 < len(v); i++ {
		if v[i] == v[i+2] && v[i+1] == v[i+3] && v[i] != v[i+1] {
			out = append(out, v[:i]+v[i+2:])
		}
	}
	return out
}

// rankBySimilarity orders candidates by Jaro-Winkler similarity to the query,
// most similar first, with the incoming alphabetical order breaking ties.
func rankBySimilarity(words []string, query string) []string {
	if len(words) < 2 {
		return words
	}
	scores := make(map[string]float32, len(words))
	for _, w := range words {
		score, err := edlib.StringsSimilarity(strings.ToLower(w), query, edlib.JaroWinkler)
		if err != nil {
			log.Warnf("Similarity ranking failed for %q: %v", w, err)
			score = 0
		}
		scores[w] = score
	}
	sort.SliceStable(words, func(i, j int) bool {
		return scores[words[i]] > scores[words[j]]
	})
	return words
}

// modelCache keeps the trained fallback model for the most recent corpus
// snapshot only. Snapshots advance monotonically under the single-writer
// update model, so older models would never be consulted again; holding just
// the latest one keeps learn-heavy servers from accumulating a model per
// snapshot.
var modelCache struct {
	mu    sync.Mutex
	list  *dictionary.WordList
	model *fuzzy.Model
}

// modelSuggestions consults a trained spell model as a last resort for
// queries the deterministic engines could not resolve.
func modelSuggestions(query string, data Data) []string {
	model := trainedModel(data.List, data.Opts.ModelDepth)
	if model == nil {
		return nil
	}
	suggested := model.SpellCheck(query)
	if suggested == "" || suggested == query {
		return nil
	}
	return []string{suggested}
}

func trainedModel(list *dictionary.WordList, depth int) *fuzzy.Model {
	modelCache.mu.Lock()
	defer modelCache.mu.Unlock()
	if modelCache.list == list {
		return modelCache.model
	}
	model := fuzzy.NewModel()
	model.SetDepth(depth)
	model.SetThreshold(1)
	for _, w := range list.Values() {
		model.TrainWord(strings.ToLower(w))
	}
	log.Debugf("Trained fallback model with %d words", list.Len())
	modelCache.list, modelCache.model = list, model
	return model
}
