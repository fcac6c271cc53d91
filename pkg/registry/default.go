package registry

import "supplychain-assistant/internal/models"

// Default returns the built-in registry. Each call builds a fresh value.
func Default() *CapabilityRegistry {
	return &CapabilityRegistry{
		Version:      Version,
		LastUpdated:  "2024-08-20",
		Capabilities: defaultCapabilities(),
		Roles:        defaultRoles(),
		GenericSuggestions: []string{
			"Show me trailer information",
			"Track an ASIN",
			"Check vendor performance",
		},
	}
}

func defaultCapabilities() []Capability {
	return []Capability{
		{
			Intent:        models.IntentTrailerLookup,
			DisplayName:   "Inbound Trailers",
			Description:   "Trailers heading to a fulfillment center with status breakdown",
			Category:      "yard",
			Visualization: models.VisualizationTrailerYard,
			ContextSlots:  []string{"currentFacility", "timeframe"},
			SampleQueries: []string{"Show me all trailers heading to FC SEA4 in the next 24 hours"},
		},
		{
			Intent:        models.IntentPriorityUnloading,
			DisplayName:   "Priority Unloading",
			Description:   "Arrived trailers ordered by unloading priority",
			Category:      "yard",
			Visualization: models.VisualizationTrailerYard,
			SampleQueries: []string{"Which trailers in the yard need priority unloading?"},
		},
		{
			Intent:        models.IntentCapacityUtilization,
			DisplayName:   "Capacity Utilization",
			Description:   "Dock utilization, queue and unload times for a facility",
			Category:      "capacity",
			ContextSlots:  []string{"currentFacility"},
			SampleQueries: []string{"What's the current capacity utilization at FC LAX7?"},
		},
		{
			Intent:        models.IntentASINTracking,
			DisplayName:   "ASIN Tracking",
			Description:   "An ASIN across every open purchase order",
			Category:      "inventory",
			Visualization: models.VisualizationTimeline,
			ContextSlots:  []string{"asin", "currentFacility"},
			SampleQueries: []string{"Track ASIN B07X2RJ3L9 across all open POs"},
		},
		{
			Intent:        models.IntentPOStatus,
			DisplayName:   "Purchase Order Status",
			Description:   "Vendor, lines, value and shipment status of a purchase order",
			Category:      "inventory",
			Visualization: models.VisualizationTimeline,
			ContextSlots:  []string{"purchaseOrderId", "currentFacility"},
			SampleQueries: []string{"What's the status of PO12345?"},
		},
		{
			Intent:        models.IntentStockoutRisk,
			DisplayName:   "Stockout Risk",
			Description:   "ASINs ranked by stockout risk",
			Category:      "inventory",
			SampleQueries: []string{"Which ASINs are at risk of stockout this week?"},
		},
		{
			Intent:        models.IntentVendorPerformance,
			DisplayName:   "Vendor Performance",
			Description:   "Delivery window compliance for one vendor",
			Category:      "vendor",
			Visualization: models.VisualizationComplianceDashboard,
			ContextSlots:  []string{"vendor"},
			SampleQueries: []string{"Show me delivery window compliance for TechSupply Corp over the last 6 weeks"},
		},
		{
			Intent:        models.IntentVendorComparison,
			DisplayName:   "Vendor Comparison",
			Description:   "Top vendors ranked by compliance",
			Category:      "vendor",
			Visualization: models.VisualizationComplianceDashboard,
			SampleQueries: []string{"Compare top 5 vendors by performance"},
		},
		{
			Intent:        models.IntentVendorDecline,
			DisplayName:   "Declining Vendors",
			Description:   "Vendors with a declining performance trend",
			Category:      "vendor",
			Visualization: models.VisualizationComplianceDashboard,
			SampleQueries: []string{"Which vendors have declining performance trends?"},
		},
		{
			Intent:        models.IntentLocationLookup,
			DisplayName:   "Trailer Locations",
			Description:   "Trailers currently carrying an ASIN",
			Category:      "tracking",
			Visualization: models.VisualizationNetworkMap,
			ContextSlots:  []string{"asin"},
			SampleQueries: []string{"Where are all trailers carrying ASIN B07X2RJ3L9?"},
		},
		{
			Intent:        models.IntentRouteLookup,
			DisplayName:   "Trailer Route",
			Description:   "Route, position and ETA of one trailer",
			Category:      "tracking",
			Visualization: models.VisualizationNetworkMap,
			ContextSlots:  []string{"trailerId"},
			SampleQueries: []string{"Show me the route for trailer T12345"},
		},
		{
			Intent:        models.IntentDelayedShipments,
			DisplayName:   "Delayed Shipments",
			Description:   "Every delayed trailer with impact analysis",
			Category:      "tracking",
			Visualization: models.VisualizationNetworkMap,
			SampleQueries: []string{"Which shipments are experiencing delays?"},
		},
		{
			Intent:        models.IntentMilestoneTracking,
			DisplayName:   "Milestone Tracking",
			Description:   "Planned against actual milestones for a purchase order",
			Category:      "inventory",
			Visualization: models.VisualizationMilestoneTimeline,
			ContextSlots:  []string{"purchaseOrderId"},
			SampleQueries: []string{"Show me milestones for PO 12345"},
		},
		{
			Intent:        models.IntentFCInboundDashboard,
			DisplayName:   "FC Inbound Dashboard",
			Description:   "Dock status, yard overview and trailer priorities for a facility",
			Category:      "yard",
			Visualization: models.VisualizationFCInboundDashboard,
			ContextSlots:  []string{"currentFacility"},
			SampleQueries: []string{"Show me the FC inbound dashboard"},
		},
		{
			Intent:        models.IntentVendorTrending,
			DisplayName:   "Vendor Trending",
			Description:   "Compliance trend, benchmarks and risk indicators for a vendor",
			Category:      "vendor",
			Visualization: models.VisualizationVendorTrending,
			ContextSlots:  []string{"vendor"},
			SampleQueries: []string{"Show me vendor trending analysis"},
		},
		{
			Intent:        models.IntentRealTimeTracking,
			DisplayName:   "Real-Time Tracking",
			Description:   "Live GPS, speed and traffic for tracked trailers",
			Category:      "tracking",
			Visualization: models.VisualizationRealTimeLocation,
			SampleQueries: []string{"Display real-time tracking for all trailers"},
		},
		{
			Intent:        models.IntentHighPriorityItems,
			DisplayName:   "High-Priority Items",
			Description:   "Trailers carrying high-priority, high CUT score items",
			Category:      "yard",
			Visualization: models.VisualizationTrailerYard,
			SampleQueries: []string{"Which trailers contain high-priority items?"},
		},
		{
			Intent:        models.IntentYardCapacity,
			DisplayName:   "Yard Capacity",
			Description:   "Yard and dock utilization with zone breakdown",
			Category:      "capacity",
			Visualization: models.VisualizationFCInboundDashboard,
			ContextSlots:  []string{"currentFacility"},
			SampleQueries: []string{"What's the current yard capacity at SEA4?"},
		},
		{
			Intent:        models.IntentLogisticsDashboard,
			DisplayName:   "Logistics Dashboard",
			Description:   "Shipment metrics, activity trend and trailer status overview",
			Category:      "overview",
			Visualization: models.VisualizationLogisticsDashboard,
			SampleQueries: []string{"Show me the logistics dashboard"},
		},
		{
			Intent:        models.IntentDelayedTrailers,
			DisplayName:   "Delayed Trailers",
			Description:   "Delayed trailers at the facility already under discussion",
			Category:      "yard",
			Visualization: models.VisualizationNetworkMap,
			ContextSlots:  []string{"trailerId"},
			FollowUpOnly:  true,
			SampleQueries: []string{"Show me the delayed trailers"},
		},
		{
			Intent:        models.IntentHighDemandItems,
			DisplayName:   "High-Demand Items",
			Description:   "High-demand contents of the trailer already under discussion",
			Category:      "inventory",
			ContextSlots:  []string{"trailerId"},
			FollowUpOnly:  true,
			SampleQueries: []string{"What high-demand items are on T23456?"},
		},
		{
			Intent:      models.IntentUnrecognized,
			DisplayName: "Unrecognized",
			Description: "Queries no rule matched; answered with role suggestions",
			Category:    "fallback",
		},
	}
}

func defaultRoles() []RoleProfile {
	return []RoleProfile{
		{
			Role:        models.RoleSiteLeader,
			DisplayName: "Site Leader",
			Suggestions: []string{
				"Show me all trailers heading to FC SEA4 in the next 72 hours",
				"Which trailers in the yard need priority unloading?",
				"What's the current capacity utilization?",
			},
			SampleQueries: []string{
				"Show me all trailers heading to FC SEA4 in the next 72 hours",
				"Which trailers in the yard need priority unloading?",
				"What's the current capacity utilization at FC LAX7?",
				"Show me the logistics dashboard",
				"Show me all trailers arriving at FC SEA4 tomorrow",
				"Which trailers contain high-priority items?",
				"What's the current yard capacity at SEA4?",
				"Show me the FC inbound dashboard",
			},
		},
		{
			Role:        models.RoleRetailEmployee,
			DisplayName: "Retail Employee",
			Suggestions: []string{
				"Track ASIN B07X2RJ3L9 across all open POs",
				"What's the status of PO12345?",
				"Which ASINs are at risk of stockout this week?",
			},
			SampleQueries: []string{
				"Track ASIN B07X2RJ3L9 across all open POs",
				"What's the status of PO12345?",
				"Which ASINs are at risk of stockout this week?",
				"Show me milestones for PO 12345",
			},
		},
		{
			Role:        models.RoleVendorPerformance,
			DisplayName: "Vendor Performance",
			Suggestions: []string{
				"Show me delivery window compliance for TechSupply Corp",
				"Compare top 5 vendors by performance",
				"Which vendors have declining performance trends?",
			},
			SampleQueries: []string{
				"Show me delivery window compliance for TechSupply Corp over the last 6 weeks",
				"Compare top 5 vendors by performance",
				"Which vendors have declining performance trends?",
				"Show me vendor trending analysis",
			},
		},
		{
			Role:        models.RoleIPEXTeam,
			DisplayName: "IPEX Team",
			Suggestions: []string{
				"Where are all trailers carrying ASIN B07X2RJ3L9?",
				"Show me the route for trailer T12345",
				"Which shipments are experiencing delays?",
			},
			SampleQueries: []string{
				"Where are all trailers carrying ASIN B07X2RJ3L9?",
				"Show me the route for trailer T12345",
				"Which shipments are experiencing delays?",
				"Show me the location of trailer T12345",
				"Display real-time tracking for all trailers",
			},
		},
	}
}
