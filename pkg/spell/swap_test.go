package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapMatchesTransposition(t *testing.T) {
	data := newData("receive")
	matches := SwapMatches("recieve", data)
	assert.Equal(t, []string{"receive"}, matches)
}

func TestSwapMatchesAdjacentSwap(t *testing.T) {
	data := newData("united")
	matches := SwapMatches("untied", data)
	assert.Equal(t, []string{"united"}, matches)
}

func TestSwapLengthInvariant(t *testing.T) {
	data := newData("receive", "untied", "united", "listen", "silent", "enlist")
	for _, query := range []string{"recieve", "untied", "lisden"} {
		for _, m := range SwapMatches(query, data) {
			assert.Len(t, m, len(query), "swap match %q must match query length", m)
		}
	}
}

func TestSwapRejectsScatteredMismatches(t *testing.T) {
	// same letters, but the differing positions span the whole word
	data := newData("enlist")
	assert.Empty(t, SwapMatches("listen", data))
}

func TestSwapMinimumLength(t *testing.T) {
	data := newData("tab", "bat")
	assert.Empty(t, SwapMatches("bta", data))
}

func TestSwapEmptyCorpus(t *testing.T) {
	data := newData()
	assert.Empty(t, SwapMatches("recieve", data))
}

func TestSwapExactWordNotReturned(t *testing.T) {
	data := newData("receive")
	assert.Empty(t, SwapMatches("receive", data))
}
