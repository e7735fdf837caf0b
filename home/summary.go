package home

import (
	"fmt"
	"strings"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// LimitWords truncates text to limit words.
// Text within the budget is returned untouched, whitespace included.
// Truncated text is re-joined with single spaces and ends with Ellipsis.
func LimitWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if len(words) <= limit {
		return text
	}
	if limit <= 0 {
		return Ellipsis
	}
	return strings.Join(words[:limit], " ") + Ellipsis
}

// IsTruncated reports whether LimitWords would cut text.
func IsTruncated(text string, limit int) bool {
	return len(strings.Fields(text)) > limit
}

// Tier maps every width strictly below Below to Limit words.
type Tier struct {
	Below int `yaml:"below" json:"below"`
	Limit int `yaml:"limit" json:"limit"`
}

// WordLimitPolicy is a step function from viewport width to word budget.
type WordLimitPolicy struct {
	Tiers   []Tier `yaml:"tiers" json:"tiers"`
	TopTier int    `yaml:"topTier" json:"topTier"`
}

// DefaultWordLimitPolicy returns the breakpoints used by the studio panel.
func DefaultWordLimitPolicy() WordLimitPolicy {
	return WordLimitPolicy{
		Tiers: []Tier{
			{Below: 640, Limit: 60},
			{Below: 850, Limit: 80},
			{Below: 1024, Limit: 90},
			{Below: 1536, Limit: 100},
		},
		TopTier: 75,
	}
}

// Limit returns the word budget for a viewport width in pixels.
func (p WordLimitPolicy) Limit(widthPx int) int {
	for _, tier := range p.Tiers {
		if widthPx < tier.Below {
			return tier.Limit
		}
	}
	return p.TopTier
}

// Validate checks that tiers are strictly increasing and every limit is positive.
func (p WordLimitPolicy) Validate() error {
	prev := 0
	for i, tier := range p.Tiers {
		if tier.Below <= prev {
			return fmt.Errorf("tier %d: breakpoint %d must be greater than %d", i, tier.Below, prev)
		}
		if tier.Limit < 1 {
			return fmt.Errorf("tier %d: limit must be positive, got %d", i, tier.Limit)
		}
		prev = tier.Below
	}
	if p.TopTier < 1 {
		return fmt.Errorf("topTier must be positive, got %d", p.TopTier)
	}
	return nil
}
