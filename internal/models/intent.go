package models

// Intent is the single capability a query resolves to.
type Intent string

const (
	IntentTrailerLookup       Intent = "trailer-lookup"
	IntentPriorityUnloading   Intent = "priority-unloading"
	IntentCapacityUtilization Intent = "capacity-utilization"
	IntentASINTracking        Intent = "asin-tracking"
	IntentPOStatus            Intent = "po-status"
	IntentStockoutRisk        Intent = "stockout-risk"
	IntentVendorPerformance   Intent = "vendor-performance"
	IntentVendorComparison    Intent = "vendor-comparison"
	IntentVendorDecline       Intent = "vendor-decline"
	IntentLocationLookup      Intent = "location-lookup"
	IntentRouteLookup         Intent = "route-lookup"
	IntentDelayedShipments    Intent = "delayed-shipments"
	IntentMilestoneTracking   Intent = "milestone-tracking"
	IntentFCInboundDashboard  Intent = "fc-inbound-dashboard"
	IntentVendorTrending      Intent = "vendor-trending"
	IntentRealTimeTracking    Intent = "real-time-tracking"
	IntentHighPriorityItems   Intent = "high-priority-items"
	IntentYardCapacity        Intent = "yard-capacity"
	IntentLogisticsDashboard  Intent = "logistics-dashboard"

	// Follow-up intents, reachable only when the context holds the slot they refine.
	IntentDelayedTrailers Intent = "delayed-trailers"
	IntentHighDemandItems Intent = "high-demand-items"

	IntentUnrecognized Intent = "unrecognized"
)

// Intents lists the closed intent vocabulary.
func Intents() []Intent {
	return []Intent{
		IntentTrailerLookup, IntentPriorityUnloading, IntentCapacityUtilization,
		IntentASINTracking, IntentPOStatus, IntentStockoutRisk,
		IntentVendorPerformance, IntentVendorComparison, IntentVendorDecline,
		IntentLocationLookup, IntentRouteLookup, IntentDelayedShipments,
		IntentMilestoneTracking, IntentFCInboundDashboard, IntentVendorTrending,
		IntentRealTimeTracking, IntentHighPriorityItems, IntentYardCapacity,
		IntentLogisticsDashboard, IntentDelayedTrailers, IntentHighDemandItems,
		IntentUnrecognized,
	}
}
