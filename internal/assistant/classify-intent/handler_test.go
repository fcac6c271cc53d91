package classifyintent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	extractentities "supplychain-assistant/internal/assistant/extract-entities"
	"supplychain-assistant/internal/models"
)

var noContext = models.ConversationContext{}

// ==========================
// Phrase and keyword tiers
// ==========================

func TestHandler_Classify_KnownQueries(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		query string
		want  models.Intent
	}{
		{"Show me all trailers heading to FC SEA4 in the next 72 hours", models.IntentTrailerLookup},
		{"Show me all trailers heading to FC SEA4 in the next 24 hours", models.IntentTrailerLookup},
		{"Which trailers in the yard need priority unloading?", models.IntentPriorityUnloading},
		{"What's the current capacity utilization?", models.IntentCapacityUtilization},
		{"What's the current capacity utilization at FC ORD3?", models.IntentCapacityUtilization},
		{"Track ASIN B07X2RJ3L9 across all open POs", models.IntentASINTracking},
		{"What's the status of PO12345?", models.IntentPOStatus},
		{"Which ASINs are at risk of stockout this week?", models.IntentStockoutRisk},
		{"Show me delivery window compliance for TechSupply Corp over the last 6 weeks", models.IntentVendorPerformance},
		{"Show me delivery window compliance for TechSupply Corp", models.IntentVendorPerformance},
		{"Compare top 5 vendors by performance", models.IntentVendorComparison},
		{"Which vendors have declining performance trends?", models.IntentVendorDecline},
		{"Where are all trailers carrying ASIN B07X2RJ3L9?", models.IntentLocationLookup},
		{"Show me the route for trailer T12345", models.IntentRouteLookup},
		{"Which shipments are experiencing delays?", models.IntentDelayedShipments},
		{"Show me milestones for PO12345", models.IntentMilestoneTracking},
		{"Show me the FC inbound dashboard", models.IntentFCInboundDashboard},
		{"Show me vendor trending analysis", models.IntentVendorTrending},
		{"Show me trending analysis for TechSupply Corp", models.IntentVendorTrending},
		{"Display real-time tracking", models.IntentRealTimeTracking},
		{"Which trailers contain high-priority items?", models.IntentHighPriorityItems},
		{"What's the current yard capacity?", models.IntentYardCapacity},
		{"Show me the logistics dashboard", models.IntentLogisticsDashboard},
		{"Give me an overview", models.IntentLogisticsDashboard},
		{"Where is trailer T23456 right now?", models.IntentRouteLookup},
		{"Which trailers are carrying B08F7N8LJ9?", models.IntentLocationLookup},
		{"Track B09D34GH7N", models.IntentASINTracking},
		{"Any purchase order updates?", models.IntentPOStatus},
		{"What's the dock availability?", models.IntentCapacityUtilization},
		{"What are the delay reasons?", models.IntentDelayedShipments},
		{"What's the weather in Seattle?", models.IntentUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := h.Classify(extractentities.Normalize(tt.query), noContext)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_Classify_IgnoresCaseAndWhitespace(t *testing.T) {
	h := NewHandler()

	variants := []string{
		"compare top 5 vendors by performance",
		"COMPARE TOP 5 VENDORS BY PERFORMANCE",
		"   Compare   top 5 vendors\tby performance   ",
	}
	for _, v := range variants {
		assert.Equal(t, models.IntentVendorComparison, h.Classify(extractentities.Normalize(v), noContext), v)
	}
}

func TestHandler_Match_SpecificPhraseBeatsGenericKeyword(t *testing.T) {
	h := NewHandler()

	m := h.Match("show me the logistics dashboard", noContext)
	assert.Equal(t, models.IntentLogisticsDashboard, m.Intent)
	assert.Equal(t, TierPhrase, m.Tier)

	// "dashboard" alone would pick the logistics dashboard.
	m = h.Match("show me the fc inbound dashboard", noContext)
	assert.Equal(t, models.IntentFCInboundDashboard, m.Intent)

	// "track" and "asin" are keywords, the full phrase is more specific.
	m = h.Match("track asin b07x2rj3l9 across all open pos", noContext)
	assert.Equal(t, models.IntentASINTracking, m.Intent)
	assert.Equal(t, TierPhrase, m.Tier)
}

func TestHandler_Match_KeywordsAreWholeWords(t *testing.T) {
	h := NewHandler()

	// "tracking" must not trigger the "track" keyword.
	assert.Equal(t, models.IntentUnrecognized, h.Classify("is package tracking available", noContext))
	assert.Equal(t, models.IntentASINTracking, h.Classify("please track it", noContext))
}

// ==========================
// Follow-up tier
// ==========================

func TestHandler_Classify_FollowUps(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		name  string
		query string
		ctx   models.ConversationContext
		want  models.Intent
	}{
		{
			name:  "delayed trailers with facility in context",
			query: "show delayed trailers",
			ctx:   models.ConversationContext{CurrentFacility: "SEA4"},
			want:  models.IntentDelayedTrailers,
		},
		{
			name:  "delayed trailers without facility",
			query: "show delayed trailers",
			ctx:   noContext,
			want:  models.IntentDelayedShipments,
		},
		{
			name:  "suggested follow-up wording",
			query: "show me the delayed trailers",
			ctx:   models.ConversationContext{CurrentFacility: "SEA4", Timeframe: "next 24 hours"},
			want:  models.IntentDelayedTrailers,
		},
		{
			name:  "high-demand items with trailer in context",
			query: "what high-demand items are on t23456?",
			ctx:   models.ConversationContext{TrailerID: "T23456"},
			want:  models.IntentHighDemandItems,
		},
		{
			name:  "high-demand items without trailer",
			query: "what high-demand items are arriving soon?",
			ctx:   noContext,
			want:  models.IntentTrailerLookup,
		},
		{
			name:  "high-demand items without trailer or other keyword",
			query: "list high-demand items",
			ctx:   noContext,
			want:  models.IntentHighPriorityItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := h.Match(tt.query, tt.ctx)
			assert.Equal(t, tt.want, m.Intent)
		})
	}
}

func TestHandler_Classify_ContextDoesNotAffectOtherTiers(t *testing.T) {
	h := NewHandler()
	full := models.ConversationContext{
		CurrentFacility: "SEA4", TrailerID: "T23456", ASIN: "B07X2RJ3L9", Vendor: "TechSupply Corp",
	}

	for _, q := range []string{"compare top 5 vendors by performance", "what's the weather"} {
		assert.Equal(t, h.Classify(q, noContext), h.Classify(q, full), q)
	}
}

// ==========================
// Rule table
// ==========================

func TestHandler_Rules_TiersAreOrdered(t *testing.T) {
	rules := NewHandler().Rules()

	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(t, rules[i-1].Tier, rules[i].Tier, "rule %d (%s) is out of tier order", i, rules[i].Intent)
	}
}

func TestHandler_Rules_CoverEveryIntent(t *testing.T) {
	reachable := map[models.Intent]bool{models.IntentUnrecognized: true}
	for _, r := range NewHandler().Rules() {
		reachable[r.Intent] = true
		if r.Otherwise != "" {
			reachable[r.Otherwise] = true
		}
	}

	for _, intent := range models.Intents() {
		assert.True(t, reachable[intent], "intent %s has no rule", intent)
	}
}

func TestHandler_RuleOrderIsTheTieBreak(t *testing.T) {
	query := "show me the logistics dashboard"
	dashboard := keywords(models.IntentLogisticsDashboard, "dashboard")
	logistics := keywords(models.IntentRealTimeTracking, "logistics")

	first := NewHandlerWithRules([]Rule{dashboard, logistics})
	second := NewHandlerWithRules([]Rule{logistics, dashboard})

	assert.Equal(t, models.IntentLogisticsDashboard, first.Classify(query, noContext))
	assert.Equal(t, models.IntentRealTimeTracking, second.Classify(query, noContext))
}

func TestHandler_Match_Fallback(t *testing.T) {
	m := NewHandler().Match("", noContext)
	assert.Equal(t, models.IntentUnrecognized, m.Intent)
	assert.Equal(t, TierFallback, m.Tier)
	assert.Equal(t, -1, m.Rule)
	assert.Equal(t, "fallback", m.Tier.String())
}
