package spell

import (
	"strings"
	"unicode"
)

// CaseClass classifies a word's letter casing pattern.
type CaseClass int

const (
	CaseLower CaseClass = iota
	CaseUpper
	CaseFirstUpper
	CaseMixed
)

func (c CaseClass) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseFirstUpper:
		return "first-upper"
	case CaseMixed:
		return "mixed"
	}
	return "unknown"
}

// ClassifyCase determines the casing class of a word. Words without letters
// classify as lower.
func ClassifyCase(word string) CaseClass {
	runes := []rune(word)
	upper, lower := 0, 0
	firstIsUpper := false
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper++
			if i == 0 {
				firstIsUpper = true
			}
		case unicode.IsLower(r):
			lower++
		}
	}
	switch {
	case upper == 0:
		return CaseLower
	case lower == 0:
		return CaseUpper
	case firstIsUpper && upper == 1:
		return CaseFirstUpper
	}
	return CaseMixed
}

// ApplyCase re-maps a lowercase candidate to match the casing class of the
// original query. Mixed-cased queries keep the candidate as-is since no
// single pattern applies.
func ApplyCase(class CaseClass, word string) string {
	switch class {
	case CaseUpper:
		return strings.ToUpper(word)
	case CaseFirstUpper:
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		return string(runes)
	}
	return word
}
