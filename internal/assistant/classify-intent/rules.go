package classifyintent

import "supplychain-assistant/internal/models"

func phrase(intent models.Intent, allOf ...string) Rule {
	return Rule{Tier: TierPhrase, Intent: intent, AllOf: allOf}
}

func keywords(intent models.Intent, anyOf ...string) Rule {
	return Rule{Tier: TierKeyword, Intent: intent, AnyOf: anyOf}
}

func hasFacility(c models.ConversationContext) bool { return c.CurrentFacility != "" }
func hasTrailer(c models.ConversationContext) bool  { return c.TrailerID != "" }

// defaultRules is evaluated top to bottom; the first match wins. Specific
// phrasings sit above the generic keywords they contain.
//
// The keyword tier deliberately has no bare "trailers" term, so a generic
// "show delayed trailers" falls through to the follow-up tier.
func defaultRules() []Rule {
	return []Rule{
		phrase(models.IntentTrailerLookup, "trailers heading to"),
		phrase(models.IntentTrailerLookup, "trailers arriving at"),
		phrase(models.IntentPriorityUnloading, "priority unloading"),
		phrase(models.IntentCapacityUtilization, "current capacity utilization"),
		phrase(models.IntentASINTracking, "track", "asin", "across all open pos"),
		phrase(models.IntentPOStatus, "status of po"),
		phrase(models.IntentStockoutRisk, "risk of stockout"),
		phrase(models.IntentVendorPerformance, "delivery window compliance", "over the last 6 weeks"),
		phrase(models.IntentVendorComparison, "compare top 5 vendors by performance"),
		phrase(models.IntentVendorDecline, "declining performance"),
		phrase(models.IntentLocationLookup, "where are all trailers carrying asin"),
		phrase(models.IntentRouteLookup, "route for"),
		phrase(models.IntentDelayedShipments, "shipments are experiencing delays"),
		phrase(models.IntentMilestoneTracking, "milestones for po"),
		phrase(models.IntentFCInboundDashboard, "fc inbound dashboard"),
		phrase(models.IntentVendorTrending, "vendor trending"),
		phrase(models.IntentVendorTrending, "trending analysis"),
		phrase(models.IntentRealTimeTracking, "real-time tracking"),
		phrase(models.IntentHighPriorityItems, "high-priority items"),
		phrase(models.IntentYardCapacity, "yard capacity"),
		phrase(models.IntentLogisticsDashboard, "logistics dashboard"),

		keywords(models.IntentLogisticsDashboard, "dashboard", "overview"),
		keywords(models.IntentTrailerLookup, "heading to", "arriving", "inbound trailers", "next 24 hours", "next 72 hours"),
		keywords(models.IntentRouteLookup, "route", "where is trailer", "location of trailer"),
		keywords(models.IntentLocationLookup, "carrying", "where is", "where are", "location of", "located"),
		keywords(models.IntentASINTracking, "track", "asin"),
		keywords(models.IntentPOStatus, "purchase order", "po status"),
		keywords(models.IntentVendorComparison, "compare", "top 5", "top performers"),
		keywords(models.IntentVendorPerformance, "compliance", "vendor performance", "delivery window"),
		keywords(models.IntentStockoutRisk, "stockout", "at risk"),
		keywords(models.IntentCapacityUtilization, "capacity", "dock availability", "utilization"),
		keywords(models.IntentDelayedShipments, "delays", "delayed shipments", "behind schedule", "delay reasons"),
		keywords(models.IntentMilestoneTracking, "milestone", "milestones"),
		keywords(models.IntentHighPriorityItems, "high-priority", "high priority"),

		{
			Tier:      TierFollowUp,
			Intent:    models.IntentDelayedTrailers,
			AllOf:     []string{"delayed", "trailers"},
			Requires:  hasFacility,
			Otherwise: models.IntentDelayedShipments,
		},
		{
			Tier:      TierFollowUp,
			Intent:    models.IntentHighDemandItems,
			AllOf:     []string{"high-demand"},
			Requires:  hasTrailer,
			Otherwise: models.IntentHighPriorityItems,
		},
	}
}
