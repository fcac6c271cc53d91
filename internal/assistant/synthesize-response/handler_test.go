package synthesizeresponse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/models"
	"supplychain-assistant/pkg/registry"
)

var anchor = time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Defaults: Defaults{
			ASIN:          "B07X2RJ3L9",
			Facility:      "SEA4",
			Trailer:       "T12345",
			PurchaseOrder: "PO12345",
			Vendor:        "TechSupply Corp",
		},
		ComparisonSize:      5,
		ComplianceBenchmark: 90,
	}
}

func createTestHandler(t *testing.T, catalog Catalog) *Handler {
	t.Helper()
	if catalog == nil {
		catalog = fixtures.NewStore(anchor)
	}
	return NewHandler(createTestConfig(), catalog, registry.Default(), logger.NewNoOpLogger())
}

func entity(kind models.EntityKind, value string) models.Entities {
	return models.Entities{{Kind: kind, Value: value, Confidence: 0.9}}
}

// bare answers from a catalog with no trailers and no telemetry.
type bare struct {
	*fixtures.Store
}

func (bare) Trailers() []models.Trailer { return nil }
func (bare) Tracking() models.LocationTrackingData { return models.LocationTrackingData{} }
func (bare) InventoryRisk() []models.InventoryRisk { return nil }
func (bare) Vendors() []models.VendorPerformance { return nil }
func (bare) Trailer(string) (models.Trailer, bool) { return models.Trailer{}, false }
func (bare) Inbound(string) (models.FCInboundData, bool) { return models.FCInboundData{}, false }

// ==========================
// Dispatch
// ==========================

func TestHandler_Synthesize_HandlesEveryIntent(t *testing.T) {
	h := createTestHandler(t, nil)

	for _, intent := range models.Intents() {
		t.Run(string(intent), func(t *testing.T) {
			assert.True(t, h.Handles(intent))

			resp := h.Synthesize(Request{Text: "query", Intent: intent, Role: models.RoleSiteLeader})
			assert.Equal(t, intent, resp.Intent)
			assert.NotEmpty(t, resp.Message)
			assert.NotNil(t, resp.SuggestedFollowUps)
			if resp.Visualization != nil {
				require.NotNil(t, resp.Visualization.Payload)
				assert.Equal(t, resp.Visualization.Payload.VisualizationType(), resp.Visualization.Type)
				assert.NotEmpty(t, resp.Visualization.Title)
			}
		})
	}
}

func TestHandler_Synthesize_UnknownIntentIsUnrecognized(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Text: "what's the weather?", Intent: models.Intent("weather"), Role: models.RoleIPEXTeam})
	assert.Equal(t, models.IntentUnrecognized, resp.Intent)
	assert.Contains(t, resp.Message, `"what's the weather?"`)
	assert.Equal(t, registry.Default().Suggestions(models.RoleIPEXTeam), resp.SuggestedFollowUps)
}

func TestHandler_Unrecognized_SuggestionsFollowRole(t *testing.T) {
	h := createTestHandler(t, nil)

	tests := []struct {
		role  models.Role
		first string
	}{
		{models.RoleSiteLeader, "Show me all trailers heading to FC SEA4 in the next 72 hours"},
		{models.RoleRetailEmployee, "Track ASIN B07X2RJ3L9 across all open POs"},
		{models.RoleVendorPerformance, "Show me delivery window compliance for TechSupply Corp"},
		{models.RoleIPEXTeam, "Where are all trailers carrying ASIN B07X2RJ3L9?"},
		{models.Role("guest"), "Show me trailer information"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			resp := h.Synthesize(Request{Text: "hello", Intent: models.IntentUnrecognized, Role: tt.role})
			require.Len(t, resp.SuggestedFollowUps, 3)
			assert.Equal(t, tt.first, resp.SuggestedFollowUps[0])
			assert.Nil(t, resp.Visualization)
			assert.Nil(t, resp.ContextDelta)
		})
	}
}

func TestHandler_Synthesize_IsDeterministic(t *testing.T) {
	h := createTestHandler(t, nil)

	for _, intent := range models.Intents() {
		req := Request{
			Text:    "query",
			Intent:  intent,
			Context: models.ConversationContext{CurrentFacility: "SEA4", TrailerID: "T23456"},
			Role:    models.RoleSiteLeader,
		}
		assert.Equal(t, h.Synthesize(req), h.Synthesize(req), string(intent))
	}
}

// ==========================
// Trailers
// ==========================

func TestHandler_TrailerLookup(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{
		Intent:   models.IntentTrailerLookup,
		Entities: entity(models.EntityFacility, "SEA4"),
	})

	assert.Contains(t, resp.Message, "I found 5 trailers scheduled to arrive at SEA4 in the next 24 hours")
	assert.Contains(t, resp.Message, "1 trailer checked in but not yet unloaded")
	assert.Contains(t, resp.Message, "1 trailer en route with an on-time status")
	assert.Contains(t, resp.Message, "3 trailers en route but delayed")

	require.NotNil(t, resp.Visualization)
	assert.Equal(t, models.VisualizationTrailerYard, resp.Visualization.Type)
	assert.Equal(t, "Trailers for SEA4 - Next 24 Hours", resp.Visualization.Title)
	assert.Len(t, resp.Visualization.Payload, 5)

	assert.Equal(t, &models.ConversationContext{CurrentFacility: "SEA4", Timeframe: "next 24 hours"}, resp.ContextDelta)
	assert.Equal(t, []string{
		"Show me the delayed trailers",
		"Which trailers need priority unloading?",
		"What are the delay reasons?",
	}, resp.SuggestedFollowUps)
}

func TestHandler_TrailerLookup_TimeframeFromQuery(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{
		Intent: models.IntentTrailerLookup,
		Entities: models.Entities{
			{Kind: models.EntityFacility, Value: "SEA4"},
			{Kind: models.EntityDate, Value: "next 72 hours"},
		},
	})

	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "Trailers for SEA4 - Next 72 Hours", resp.Visualization.Title)
	assert.Equal(t, "next 72 hours", resp.ContextDelta.Timeframe)
}

func TestHandler_TrailerLookup_WithoutFacilityAsks(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentTrailerLookup})
	assert.Contains(t, resp.Message, "Please specify the fulfillment center")
	assert.Nil(t, resp.Visualization)
	assert.Nil(t, resp.ContextDelta)
}

func TestHandler_TrailerLookup_UnknownFacility(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentTrailerLookup, Entities: entity(models.EntityFacility, "ORD3")})
	assert.Contains(t, resp.Message, "ORD3")
	assert.Contains(t, resp.Message, "SEA4, LAX7")
	assert.Nil(t, resp.Visualization)
	assert.Nil(t, resp.ContextDelta)
}

func TestHandler_DelayedTrailers_RecommendsHighestPriority(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{
		Intent:  models.IntentDelayedTrailers,
		Context: models.ConversationContext{CurrentFacility: "SEA4"},
	})

	assert.Contains(t, resp.Message, "Trailer ID: T12345 | Carrier: XYZ Logistics | Contents: Electronics (3 ASINs) | ETA: 3 hours behind schedule")
	assert.Contains(t, resp.Message, "I recommend prioritizing T23456")

	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "Delayed Trailers - SEA4", resp.Visualization.Title)
	payload, ok := resp.Visualization.Payload.(models.NetworkMapPayload)
	require.True(t, ok)
	ids := make([]string, 0, len(payload))
	for _, tr := range payload {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"T12345", "T23456", "T34567"}, ids)

	assert.Equal(t, &models.ConversationContext{TrailerID: "T23456"}, resp.ContextDelta)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		trailers []models.Trailer
		want     string
		ok       bool
	}{
		{name: "empty", ok: false},
		{
			name: "priority wins",
			trailers: []models.Trailer{
				{ID: "A", Priority: models.PriorityMedium, Contents: []models.TrailerContent{{CutScore: 99}}},
				{ID: "B", Priority: models.PriorityHigh, Contents: []models.TrailerContent{{CutScore: 10}}},
			},
			want: "B", ok: true,
		},
		{
			name: "cut score breaks priority ties",
			trailers: []models.Trailer{
				{ID: "A", Priority: models.PriorityHigh, Contents: []models.TrailerContent{{CutScore: 70}}},
				{ID: "B", Priority: models.PriorityHigh, Contents: []models.TrailerContent{{CutScore: 90}}},
			},
			want: "B", ok: true,
		},
		{
			name: "earliest wins a full tie",
			trailers: []models.Trailer{
				{ID: "A", Priority: models.PriorityLow},
				{ID: "B", Priority: models.PriorityLow},
			},
			want: "A", ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := recommend(tt.trailers)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestHandler_HighDemandItems(t *testing.T) {
	h := createTestHandler(t, nil)

	t.Run("needs a trailer", func(t *testing.T) {
		resp := h.Synthesize(Request{Intent: models.IntentHighDemandItems})
		assert.Equal(t, "I need more context about which trailer you're asking about.", resp.Message)
		assert.Equal(t, []string{"Show me delayed trailers first"}, resp.SuggestedFollowUps)
		assert.Nil(t, resp.ContextDelta)
	})

	t.Run("trailer from context", func(t *testing.T) {
		resp := h.Synthesize(Request{
			Intent:  models.IntentHighDemandItems,
			Context: models.ConversationContext{TrailerID: "T23456"},
		})
		assert.Contains(t, resp.Message, "ASIN B07X2RJ3L9: Wireless Earbuds (120 units) - Current FC inventory: 35 units")
		assert.Contains(t, resp.Message, "ASIN B09D34GH7N: Tablet Computer (50 units) - Current FC inventory: 8 units")
		assert.Nil(t, resp.Visualization)
		assert.Equal(t, &models.ConversationContext{TrailerID: "T23456"}, resp.ContextDelta)
	})

	t.Run("unknown trailer", func(t *testing.T) {
		resp := h.Synthesize(Request{Intent: models.IntentHighDemandItems, Entities: entity(models.EntityTrailer, "T00001")})
		assert.Contains(t, resp.Message, "T00001")
		assert.Nil(t, resp.ContextDelta)
	})
}

func TestHandler_PriorityUnloading(t *testing.T) {
	h := createTestHandler(t, nil)

	t.Run("every facility", func(t *testing.T) {
		resp := h.Synthesize(Request{Intent: models.IntentPriorityUnloading})
		require.NotNil(t, resp.Visualization)
		payload := resp.Visualization.Payload.(models.TrailerYardPayload)
		require.Len(t, payload, 2)
		assert.Equal(t, "T90123", payload[0].ID)
		assert.Equal(t, "T56789", payload[1].ID)
		assert.Contains(t, resp.Message, "avg CUT score: 79")
		assert.Nil(t, resp.ContextDelta)
	})

	t.Run("facility from context", func(t *testing.T) {
		resp := h.Synthesize(Request{
			Intent:  models.IntentPriorityUnloading,
			Context: models.ConversationContext{CurrentFacility: "SEA4"},
		})
		require.NotNil(t, resp.Visualization)
		payload := resp.Visualization.Payload.(models.TrailerYardPayload)
		require.Len(t, payload, 1)
		assert.Equal(t, "T56789", payload[0].ID)
		assert.Equal(t, &models.ConversationContext{CurrentFacility: "SEA4"}, resp.ContextDelta)
	})
}

func TestHandler_HighPriorityItems(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentHighPriorityItems})
	require.NotNil(t, resp.Visualization)

	payload := resp.Visualization.Payload.(models.TrailerYardPayload)
	ids := make([]string, 0, len(payload))
	for _, tr := range payload {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"T12345", "T23456", "T89012", "T90123"}, ids)
	assert.Contains(t, resp.Message, "1. T90123 - average CUT score 88")

	actions := make([]string, 0)
	for _, a := range resp.Visualization.InteractiveActions {
		actions = append(actions, a.ID)
	}
	assert.Equal(t, []string{"notify-receiving", "assign-dock", "expedite-shipment"}, actions)
}

func TestHandler_DelayedShipments(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentDelayedShipments})
	assert.Contains(t, resp.Message, "Found 3 shipments currently experiencing delays")
	assert.Contains(t, resp.Message, "Average delay: 3 hours")
	assert.Contains(t, resp.Message, "1. Prioritize T23456")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "All Delayed Shipments", resp.Visualization.Title)
	assert.Nil(t, resp.ContextDelta)
}

// ==========================
// Empty data guards
// ==========================

func TestHandler_EmptyDataNeverDividesByZero(t *testing.T) {
	h := createTestHandler(t, bare{fixtures.NewStore(anchor)})

	tests := []struct {
		intent models.Intent
		want   string
	}{
		{models.IntentDelayedShipments, "Average delay: insufficient data"},
		{models.IntentRealTimeTracking, "Average Speed: insufficient data"},
		{models.IntentHighPriorityItems, "No trailers are currently carrying high-priority items."},
		{models.IntentStockoutRisk, "No ASINs are currently at risk of stockout."},
		{models.IntentVendorComparison, "No vendor performance data is available."},
		{models.IntentVendorDecline, "No vendors currently show a declining performance trend."},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			resp := h.Synthesize(Request{Intent: tt.intent})
			assert.Contains(t, resp.Message, tt.want)
			assert.NotContains(t, resp.Message, "NaN")
		})
	}
}

func TestAverageAndPercent(t *testing.T) {
	_, ok := average(nil)
	assert.False(t, ok)

	avg, ok := average([]float64{2, 4})
	assert.True(t, ok)
	assert.Equal(t, 3.0, avg)

	_, ok = percent(3, 0)
	assert.False(t, ok)
	assert.Equal(t, insufficientData, percentText(1, 0))
	assert.Equal(t, "75%", percentText(18, 24))
}

// ==========================
// Facilities
// ==========================

func TestHandler_CapacityUtilization(t *testing.T) {
	h := createTestHandler(t, nil)

	tests := []struct {
		name      string
		facility  string
		contains  []string
		wantDelta bool
	}{
		{
			name:      "normal band",
			facility:  "SEA4",
			contains:  []string{"**Dock Utilization:** 75% (18/24 docks occupied)", "🟢"},
			wantDelta: true,
		},
		{
			name:      "alert band",
			facility:  "LAX7",
			contains:  []string{"**Dock Utilization:** 91% (29/32 docks occupied)", "🔴"},
			wantDelta: true,
		},
		{
			name:     "unknown facility",
			facility: "ORD3",
			contains: []string{"I don't have capacity data for FC ORD3. Available FCs: SEA4, LAX7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Synthesize(Request{
				Intent:   models.IntentCapacityUtilization,
				Entities: entity(models.EntityFacility, tt.facility),
			})
			for _, s := range tt.contains {
				assert.Contains(t, resp.Message, s)
			}
			assert.Nil(t, resp.Visualization)
			if tt.wantDelta {
				assert.Equal(t, &models.ConversationContext{CurrentFacility: tt.facility}, resp.ContextDelta)
			} else {
				assert.Nil(t, resp.ContextDelta)
			}
		})
	}
}

func TestHandler_FCInboundDashboard(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentFCInboundDashboard})
	assert.Contains(t, resp.Message, "Available: 4 | Occupied: 3 | Maintenance: 1")
	assert.Contains(t, resp.Message, "Average Dwell Time: 2.4 hours")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, models.VisualizationFCInboundDashboard, resp.Visualization.Type)
	assert.Len(t, resp.Visualization.InteractiveActions, 3)
	assert.Equal(t, &models.ConversationContext{CurrentFacility: "SEA4"}, resp.ContextDelta)
}

func TestHandler_YardCapacity(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentYardCapacity, Entities: entity(models.EntityFacility, "LAX7")})
	assert.Contains(t, resp.Message, "**Yard Utilization:** 95% (57/60 spots occupied)")
	assert.Contains(t, resp.Message, "🔴")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "LAX7 Yard Capacity Overview", resp.Visualization.Title)

	unknown := h.Synthesize(Request{Intent: models.IntentYardCapacity, Entities: entity(models.EntityFacility, "ORD3")})
	assert.Nil(t, unknown.Visualization)
	assert.Nil(t, unknown.ContextDelta)
}

// ==========================
// Orders and inventory
// ==========================

func TestHandler_ASINTracking_UsesDefaults(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentASINTracking})
	assert.Contains(t, resp.Message, "ASIN B07X2RJ3L9 (Wireless Earbuds) is on 2 open POs")
	assert.Contains(t, resp.Message, "**PO12345**")
	assert.Contains(t, resp.Message, "**PO12349**")
	assert.NotContains(t, resp.Message, "PO12340")
	assert.Contains(t, resp.Message, "**Current Inventory at SEA4:** 35 units")

	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "ASIN B07X2RJ3L9 Journey Timeline", resp.Visualization.Title)
	assert.Equal(t, &models.ConversationContext{ASIN: "B07X2RJ3L9", CurrentFacility: "SEA4"}, resp.ContextDelta)
}

func TestHandler_POStatus(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentPOStatus, Entities: entity(models.EntityPO, "PO12345")})
	assert.Contains(t, resp.Message, "Order Value: $47,500")
	assert.Contains(t, resp.Message, "**Current Status:** In Transit")
	assert.Contains(t, resp.Message, "Total Quantity: 500 units (3 ASINs)")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "PO12345 Status Timeline", resp.Visualization.Title)
	assert.Equal(t, &models.ConversationContext{PurchaseOrderID: "PO12345", CurrentFacility: "SEA4"}, resp.ContextDelta)

	unknown := h.Synthesize(Request{Intent: models.IntentPOStatus, Entities: entity(models.EntityPO, "PO99999")})
	assert.Contains(t, unknown.Message, "PO99999")
	assert.Nil(t, unknown.Visualization)
	assert.Nil(t, unknown.ContextDelta)
}

func TestRankStockoutRisk(t *testing.T) {
	store := fixtures.NewStore(anchor)

	ranked := rankStockoutRisk(store.InventoryRisk())
	asins := make([]string, 0, len(ranked))
	for _, r := range ranked {
		asins = append(asins, r.ASIN)
	}
	assert.Equal(t, []string{"B08F7N8LJ9", "B09D34GH7N", "B07X2RJ3L9", "B07Y3K5L8M", "B08G7H9K2L"}, asins)

	assert.Equal(t, "B07X2RJ3L9", store.InventoryRisk()[0].ASIN, "input must not be reordered")
}

func TestHandler_StockoutRisk(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentStockoutRisk})
	assert.Contains(t, resp.Message, "Found 5 ASINs at risk of stockout this week")
	assert.Contains(t, resp.Message, "Consider emergency procurement for B08F7N8LJ9 and B09D34GH7N")
	assert.Contains(t, resp.Message, "**Lower Risk:** 2 ASINs at medium or low risk")
	assert.Nil(t, resp.Visualization)
}

func TestHandler_MilestoneTracking(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentMilestoneTracking})
	assert.Contains(t, resp.Message, "Completed: 4/6 milestones")
	assert.Contains(t, resp.Message, "Delays affecting downstream milestones")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, models.VisualizationMilestoneTimeline, resp.Visualization.Type)
	assert.Equal(t, &models.ConversationContext{PurchaseOrderID: "PO12345"}, resp.ContextDelta)

	missing := h.Synthesize(Request{Intent: models.IntentMilestoneTracking, Entities: entity(models.EntityPO, "PO12347")})
	assert.Contains(t, missing.Message, "No milestone data is recorded for PO12347")
	assert.Nil(t, missing.Visualization)
	assert.Nil(t, missing.ContextDelta)
}

// ==========================
// Vendors
// ==========================

func TestHandler_VendorComparison_SortedByCompliance(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentVendorComparison})
	require.NotNil(t, resp.Visualization)

	payload := resp.Visualization.Payload.(models.ComplianceDashboardPayload)
	names := make([]string, 0, len(payload))
	for _, v := range payload {
		names = append(names, v.VendorName)
	}
	assert.Equal(t, []string{
		"FastShip Logistics",
		"Global Electronics Ltd",
		"Prime Suppliers Inc",
		"Reliable Freight Co",
		"TechSupply Corp",
	}, names)

	assert.Contains(t, resp.Message, "**1. FastShip Logistics** - 95% compliance")
	assert.Contains(t, resp.Message, "⭐ Top Performer")
	assert.Contains(t, resp.Message, "⚠️ Needs Attention")
	assert.Contains(t, resp.Message, "**Industry Benchmark:** 90% compliance")
	assert.Contains(t, resp.SuggestedFollowUps, "What's causing Reliable Freight Co's decline?")
}

func TestHandler_VendorComparison_SizeFromQuery(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentVendorComparison, Entities: entity(models.EntityQuantity, "3")})
	require.NotNil(t, resp.Visualization)
	assert.Len(t, resp.Visualization.Payload, 3)
	assert.Equal(t, "Top 3 Vendor Performance Comparison", resp.Visualization.Title)
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name string
		rank int
		v    models.VendorPerformance
		want string
	}{
		{"first place", 1, models.VendorPerformance{CompliancePercentage: 80, PerformanceTrend: models.TrendDeclining}, "⭐ Top Performer"},
		{"declining", 2, models.VendorPerformance{CompliancePercentage: 95, PerformanceTrend: models.TrendDeclining}, "⚠️ Needs Attention"},
		{"well above benchmark", 2, models.VendorPerformance{CompliancePercentage: 92, PerformanceTrend: models.TrendStable}, "✅ Excellent"},
		{"improving at benchmark", 3, models.VendorPerformance{CompliancePercentage: 91, PerformanceTrend: models.TrendImproving}, "⬆️ Rising Star"},
		{"improving below benchmark", 5, models.VendorPerformance{CompliancePercentage: 87, PerformanceTrend: models.TrendImproving}, "⬆️ Getting Better"},
		{"stable below benchmark", 4, models.VendorPerformance{CompliancePercentage: 89, PerformanceTrend: models.TrendStable}, "➡️ Steady"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, badge(tt.rank, tt.v, 90))
		})
	}
}

func TestHandler_VendorPerformance(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentVendorPerformance, Entities: entity(models.EntityVendor, "techsupply")})
	assert.Contains(t, resp.Message, "Delivery performance for TechSupply Corp")
	assert.Contains(t, resp.Message, "On-Time Deliveries: 218/245 (89%)")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "Vendor Performance Analysis - Last 6 Weeks", resp.Visualization.Title)
	assert.Equal(t, &models.ConversationContext{Vendor: "TechSupply Corp"}, resp.ContextDelta)

	unknown := h.Synthesize(Request{Intent: models.IntentVendorPerformance, Entities: entity(models.EntityVendor, "Acme Freight")})
	assert.Contains(t, unknown.Message, "Acme Freight")
	assert.Nil(t, unknown.Visualization)
	assert.Nil(t, unknown.ContextDelta)
}

func TestHandler_VendorDecline(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentVendorDecline})
	assert.Contains(t, resp.Message, "**Reliable Freight Co** - 88% compliance (↓8% decline)")
	assert.Contains(t, resp.Message, "**Budget Logistics** - 82% compliance (↓12% decline)")
	assert.Contains(t, resp.Message, "Risk Level: High")
	assert.Contains(t, resp.Message, "Risk Level: Medium")
	require.NotNil(t, resp.Visualization)
	assert.Len(t, resp.Visualization.Payload, 2)
}

func TestHandler_VendorTrending(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentVendorTrending})
	assert.Contains(t, resp.Message, "Performance trending analysis for TechSupply Corp")
	assert.Contains(t, resp.Message, "↗️ Improving (+5%)")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, models.VisualizationVendorTrending, resp.Visualization.Type)
	assert.Equal(t, &models.ConversationContext{Vendor: "TechSupply Corp"}, resp.ContextDelta)

	missing := h.Synthesize(Request{Intent: models.IntentVendorTrending, Entities: entity(models.EntityVendor, "Budget Logistics")})
	assert.Contains(t, missing.Message, "Vendors with trend data: TechSupply Corp, Reliable Freight Co")
	assert.Nil(t, missing.ContextDelta)
}

// ==========================
// Tracking
// ==========================

func TestHandler_RouteLookup(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentRouteLookup, Entities: entity(models.EntityTrailer, "T12345")})
	assert.Contains(t, resp.Message, "Origin: Tacoma, WA (TechSupply Corp Warehouse)")
	assert.Contains(t, resp.Message, "Traffic Delay: +30 minutes")
	assert.Contains(t, resp.Message, "**Delay Reason:** Traffic delay on I-5")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, "Route for Trailer T12345", resp.Visualization.Title)
	assert.Equal(t, &models.ConversationContext{TrailerID: "T12345"}, resp.ContextDelta)
}

func TestHandler_RouteLookup_UnknownTrailer(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentRouteLookup, Entities: entity(models.EntityTrailer, "T99999")})
	assert.Contains(t, resp.Message, "I couldn't find trailer T99999. Available trailers: T12345")
	assert.Nil(t, resp.Visualization)
	assert.Nil(t, resp.ContextDelta)
}

func TestHandler_LocationLookup(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentLocationLookup, Entities: entity(models.EntityASIN, "B07X2RJ3L9")})
	assert.Contains(t, resp.Message, "Found 3 trailers carrying ASIN B07X2RJ3L9")
	require.NotNil(t, resp.Visualization)
	assert.Len(t, resp.Visualization.Payload, 3)
	assert.Equal(t, &models.ConversationContext{ASIN: "B07X2RJ3L9"}, resp.ContextDelta)
}

func TestHandler_RealTimeTracking(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentRealTimeTracking})
	assert.Contains(t, resp.Message, "Average Speed: 51.5 mph")
	assert.Contains(t, resp.Message, "Total Traffic Delay: 75 minutes")
	assert.Contains(t, resp.Message, "Actual: In progress")
	require.NotNil(t, resp.Visualization)
	assert.Len(t, resp.Visualization.InteractiveActions, 2)
	assert.Nil(t, resp.ContextDelta)
}

// uneven reports telemetry whose average speed is not a round number.
type uneven struct {
	*fixtures.Store
}

func (uneven) Tracking() models.LocationTrackingData {
	return models.LocationTrackingData{
		Trailers: []models.TrackedTrailer{
			{Trailer: models.Trailer{ID: "T12345"}, Speed: 55},
			{Trailer: models.Trailer{ID: "T23456"}, Speed: 48},
			{Trailer: models.Trailer{ID: "T34567"}, Speed: 52},
		},
	}
}

func TestHandler_RealTimeTracking_RoundsAverageSpeed(t *testing.T) {
	h := createTestHandler(t, uneven{fixtures.NewStore(anchor)})

	resp := h.Synthesize(Request{Intent: models.IntentRealTimeTracking})
	assert.Contains(t, resp.Message, "Average Speed: 51.7 mph")
	assert.NotContains(t, resp.Message, "51.666")
	assert.Regexp(t, `Average Speed: \d+\.\d mph`, resp.Message)
}

func TestHandler_LogisticsDashboard(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := h.Synthesize(Request{Intent: models.IntentLogisticsDashboard})
	assert.Contains(t, resp.Message, "Total Shipments: 534 ↗️ 12% vs last month")
	assert.Contains(t, resp.Message, "Delayed: 3")
	require.NotNil(t, resp.Visualization)
	assert.Equal(t, models.VisualizationLogisticsDashboard, resp.Visualization.Type)
}
