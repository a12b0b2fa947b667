package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCase(t *testing.T) {
	tests := []struct {
		word string
		want CaseClass
	}{
		{"receive", CaseLower},
		{"RECEIVE", CaseUpper},
		{"Receive", CaseFirstUpper},
		{"reCeive", CaseMixed},
		{"ReCeive", CaseMixed},
		{"", CaseLower},
		{"123", CaseLower},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyCase(tc.word))
		})
	}
}

func TestApplyCase(t *testing.T) {
	assert.Equal(t, "receive", ApplyCase(CaseLower, "receive"))
	assert.Equal(t, "RECEIVE", ApplyCase(CaseUpper, "receive"))
	assert.Equal(t, "Receive", ApplyCase(CaseFirstUpper, "receive"))
	assert.Equal(t, "receive", ApplyCase(CaseMixed, "receive"))
}

func TestNewMisspelling(t *testing.T) {
	m := NewMisspelling("Recieve", "getRecieveBuffer", 3)
	assert.Equal(t, "Recieve", m.Value)
	assert.Equal(t, "recieve", m.Lower)
	assert.Equal(t, CaseFirstUpper, m.Case)
	assert.Equal(t, 3, m.Offset)
	assert.Equal(t, 7, m.Length)
}
