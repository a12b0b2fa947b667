package spell

import "strings"

// Misspelling is a token flagged as unknown, carrying enough context for the
// fix engines and for the caller to apply a replacement. Immutable; created
// per detected token and discarded once a fix decision is recorded.
type Misspelling struct {
	// Value is the token exactly as it appeared.
	Value string
	// Lower is the query form the engines operate on.
	Lower string
	// Case is the token's casing classification, used to re-map candidate
	// corrections before presenting them.
	Case CaseClass
	// Context is the full surrounding text (for example the identifier the
	// token was extracted from), with Offset/Length locating the token in it.
	Context string
	Offset  int
	Length  int
}

// NewMisspelling builds a Misspelling for a token found at offset within
// context. Context may equal the token itself for standalone words.
func NewMisspelling(value, context string, offset int) Misspelling {
	return Misspelling{
		Value:   value,
		Lower:   strings.ToLower(value),
		Case:    ClassifyCase(value),
		Context: context,
		Offset:  offset,
		Length:  len(value),
	}
}
