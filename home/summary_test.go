package home

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitWords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"truncates", "one two three four five", 3, "one two three..."},
		{"under budget unchanged", "one two", 5, "one two"},
		{"exact budget unchanged", "one two three", 3, "one two three"},
		{"keeps original whitespace", "one   two\n\nthree", 5, "one   two\n\nthree"},
		{"collapses whitespace when truncating", "one\t\ttwo   three four", 2, "one two..."},
		{"empty", "", 10, ""},
		{"whitespace only", " \n\t ", 10, ""},
		{"zero limit", "one two", 0, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LimitWords(tt.text, tt.limit))
		})
	}
}

func TestLimitWords_Idempotent(t *testing.T) {
	for _, limit := range []int{1, 3, 10, 60, 75, 100} {
		for _, n := range []int{0, 1, 5, 60, 120} {
			text := words(n)
			once := LimitWords(text, limit)
			assert.Equal(t, once, LimitWords(once, limit), "limit=%d n=%d", limit, n)
		}
	}
}

func TestLimitWords_WordCount(t *testing.T) {
	got := LimitWords(words(120), 60)
	assert.Len(t, strings.Fields(got), 60)
	assert.True(t, strings.HasSuffix(got, "w60..."))
}

func TestIsTruncated(t *testing.T) {
	assert.True(t, IsTruncated("a b c", 2))
	assert.False(t, IsTruncated("a b", 2))
	assert.False(t, IsTruncated("", 0))
}

func TestWordLimitPolicy_Limit(t *testing.T) {
	policy := DefaultWordLimitPolicy()
	tests := []struct {
		width int
		want  int
	}{
		{0, 60},
		{500, 60},
		{639, 60},
		{640, 80},
		{849, 80},
		{850, 90},
		{1023, 90},
		{1024, 100},
		{1535, 100},
		{1536, 75},
		{1600, 75},
		{3840, 75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.Limit(tt.width), "width=%d", tt.width)
	}
}

func TestWordLimitPolicy_TunableTopTier(t *testing.T) {
	policy := DefaultWordLimitPolicy()
	policy.TopTier = 130
	assert.Equal(t, 130, policy.Limit(1920))
	assert.Equal(t, 100, policy.Limit(1200))
}

func TestWordLimitPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultWordLimitPolicy().Validate())
	assert.NoError(t, WordLimitPolicy{TopTier: 10}.Validate())

	unordered := WordLimitPolicy{Tiers: []Tier{{Below: 800, Limit: 10}, {Below: 600, Limit: 20}}, TopTier: 5}
	assert.Error(t, unordered.Validate())

	zeroLimit := WordLimitPolicy{Tiers: []Tier{{Below: 800, Limit: 0}}, TopTier: 5}
	assert.Error(t, zeroLimit.Validate())

	assert.Error(t, WordLimitPolicy{}.Validate())
}
