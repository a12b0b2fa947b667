package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInput(t *testing.T) {
	valid := []string{"receive", "Receive", "foo-bar", "foo_bar"}
	for _, s := range valid {
		assert.True(t, IsValidInput(s), "expected %q to be valid", s)
	}

	// digit-bearing tokens are skipped: a word corpus cannot fix them
	invalid := []string{"", "12345", "abc123", "abc$def", "dddd", "héllo(x)"}
	for _, s := range invalid {
		assert.False(t, IsValidInput(s), "expected %q to be invalid", s)
	}
}

func TestIsRepetitive(t *testing.T) {
	assert.True(t, IsRepetitive("dddd"))
	assert.False(t, IsRepetitive("dd"))
	assert.False(t, IsRepetitive("dada"))
}

func TestContainsNumbers(t *testing.T) {
	assert.True(t, ContainsNumbers("v42"))
	assert.False(t, ContainsNumbers("receive"))
	assert.False(t, ContainsNumbers(""))
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
	assert.Empty(t, CreateRankList(0))
}
