package classifyintent

import (
	"regexp"
	"strings"

	"supplychain-assistant/internal/models"
)

const TaskType = "classify-intent"

// Handler classifies normalized query text with an ordered rule table. No
// scoring is involved; ties are broken purely by rule order.
type Handler struct {
	rules []Rule
}

func NewHandler() *Handler {
	return NewHandlerWithRules(defaultRules())
}

// NewHandlerWithRules compiles a custom table. Used by tests to probe ordering.
func NewHandlerWithRules(rules []Rule) *Handler {
	compiled := make([]Rule, len(rules))
	for i, r := range rules {
		r.anyOf = make([]*regexp.Regexp, 0, len(r.AnyOf))
		for _, term := range r.AnyOf {
			r.anyOf = append(r.anyOf, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
		}
		compiled[i] = r
	}
	return &Handler{rules: compiled}
}

// Rules returns the table in evaluation order.
func (h *Handler) Rules() []Rule {
	return append([]Rule(nil), h.rules...)
}

// Classify returns the intent for text. ctx is only read by follow-up rules.
func (h *Handler) Classify(text string, ctx models.ConversationContext) models.Intent {
	return h.Match(text, ctx).Intent
}

// Match is Classify with the tier and rule index that decided it.
func (h *Handler) Match(text string, ctx models.ConversationContext) Match {
	for i, r := range h.rules {
		switch r.Tier {
		case TierPhrase:
			if containsAll(text, r.AllOf) {
				return Match{Intent: r.Intent, Tier: r.Tier, Rule: i}
			}
		case TierKeyword:
			if matchesAny(text, r.anyOf) {
				return Match{Intent: r.Intent, Tier: r.Tier, Rule: i}
			}
		case TierFollowUp:
			if !containsAll(text, r.AllOf) {
				continue
			}
			if r.Requires == nil || r.Requires(ctx) {
				return Match{Intent: r.Intent, Tier: r.Tier, Rule: i}
			}
			if r.Otherwise != "" {
				return Match{Intent: r.Otherwise, Tier: r.Tier, Rule: i}
			}
		}
	}
	return Match{Intent: models.IntentUnrecognized, Tier: TierFallback, Rule: -1}
}

func containsAll(text string, parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
