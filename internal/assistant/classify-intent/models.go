package classifyintent

import (
	"regexp"

	"supplychain-assistant/internal/models"
)

// Tier says which stage of the cascade produced a match.
type Tier int

const (
	TierPhrase Tier = iota + 1
	TierKeyword
	TierFollowUp
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierPhrase:
		return "phrase"
	case TierKeyword:
		return "keyword"
	case TierFollowUp:
		return "follow-up"
	}
	return "fallback"
}

// Rule is one row of the ordered rule table.
//
// Phrase rules match when every AllOf substring is present. Keyword rules
// match when any AnyOf term appears as a whole word or phrase. Follow-up
// rules need every AllOf substring; they resolve to Intent when Requires
// holds for the context and to Otherwise when it does not.
type Rule struct {
	Tier      Tier
	Intent    models.Intent
	AllOf     []string
	AnyOf     []string
	Requires  func(models.ConversationContext) bool
	Otherwise models.Intent

	anyOf []*regexp.Regexp
}

// Match is the outcome of classification, kept for logging and tests.
type Match struct {
	Intent models.Intent
	Tier   Tier
	Rule   int
}
