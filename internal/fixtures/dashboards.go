package fixtures

import (
	"fmt"
	"time"

	"supplychain-assistant/internal/models"
)

func buildDashboard(trailers []models.Trailer) models.LogisticsDashboard {
	return models.LogisticsDashboard{
		Metrics: models.DashboardMetrics{
			TotalShipments: models.MetricValue{Value: 534, Trend: models.MetricTrend{Direction: "up", Percentage: 12, Period: "vs last month"}},
			Completed:      models.MetricValue{Value: 109, Trend: models.MetricTrend{Direction: "down", Percentage: 21, Period: "vs last month"}},
			Pending:        models.MetricValue{Value: 293, Trend: models.MetricTrend{Direction: "up", Percentage: 26, Period: "vs last month"}},
			Delayed:        models.MetricValue{Value: 23, Trend: models.MetricTrend{Direction: "down", Percentage: 10, Period: "vs last month"}},
		},
		Shipments: []models.DashboardShipment{
			{ID: "SH001", CustomerName: "Wade Warren", ShippingID: "#6275", Date: "2024-08-08", Location: "65 S.William NY", Status: "complete"},
			{ID: "SH002", CustomerName: "Brooklyn Simmons", ShippingID: "#6012", Date: "2024-08-10", Location: "27 Park Street, CAL", Status: "pending"},
			{ID: "SH003", CustomerName: "Savannah Nguyen", ShippingID: "#1074", Date: "2024-08-12", Location: "42 Green Road, NY", Status: "complete"},
			{ID: "SH004", CustomerName: "Darlene Robertson", ShippingID: "#7356", Date: "2024-08-13", Location: "21 Riverside, OH", Status: "pending"},
			{ID: "SH005", CustomerName: "Darrell Steward", ShippingID: "#0164", Date: "2024-08-20", Location: "70 Green Road, CH", Status: "complete"},
		},
		ActivityData:  buildActivity(),
		TrailerStatus: summarizeTrailers(trailers),
	}
}

func summarizeTrailers(trailers []models.Trailer) models.TrailerStatusSummary {
	byStatus := make(map[models.TrailerStatus]int)
	for _, s := range models.TrailerStatuses() {
		byStatus[s] = 0
	}
	for _, t := range trailers {
		byStatus[t.Status]++
	}
	return models.TrailerStatusSummary{Total: len(trailers), ByStatus: byStatus}
}

func buildActivity() []models.ActivityPoint {
	values := []struct {
		day   string
		value int
	}{
		{"2024-06-01", 12}, {"2024-06-02", 8}, {"2024-06-03", 15}, {"2024-06-04", 22},
		{"2024-06-05", 18}, {"2024-06-08", 25}, {"2024-06-09", 30}, {"2024-06-10", 28},
		{"2024-06-11", 20}, {"2024-06-12", 16}, {"2024-06-15", 35}, {"2024-06-16", 40},
		{"2024-06-17", 32}, {"2024-06-18", 28}, {"2024-06-19", 24}, {"2024-06-22", 45},
		{"2024-06-23", 38}, {"2024-06-24", 42}, {"2024-06-25", 36}, {"2024-06-26", 30},
		{"2024-07-01", 50}, {"2024-07-02", 48}, {"2024-07-03", 52}, {"2024-07-08", 55},
		{"2024-07-09", 60}, {"2024-07-10", 58}, {"2024-07-15", 65}, {"2024-07-16", 62},
		{"2024-07-22", 70}, {"2024-07-23", 68}, {"2024-08-01", 75}, {"2024-08-05", 80},
		{"2024-08-06", 78}, {"2024-08-07", 82},
	}
	out := make([]models.ActivityPoint, 0, len(values))
	for _, v := range values {
		d := date(v.day)
		out = append(out, models.ActivityPoint{
			Date:  v.day,
			Value: v.value,
			Label: fmt.Sprintf("%s %d: %d shipments", d.Month(), d.Day(), v.value),
		})
	}
	return out
}

func buildMilestones() []models.ShipmentMilestones {
	return []models.ShipmentMilestones{
		{
			ShipmentID:    "PO12345",
			ASIN:          "B07X2RJ3L9",
			POID:          "PO12345",
			OverallStatus: "delayed",
			CriticalPath:  []string{"po-created", "vendor-confirmed", "shipped", "in-transit", "fc-arrival", "stowed"},
			Milestones: []models.MilestoneEvent{
				{
					ID: "po-created", Name: "PO Created",
					PlannedDate: date("2024-02-10T08:00:00Z"), ActualDate: ptr(date("2024-02-10T08:15:00Z")),
					Status: "completed", Variance: 0.25,
					Description: "Purchase order created and sent to vendor", Owner: "Procurement Team",
				},
				{
					ID: "vendor-confirmed", Name: "Vendor Confirmation",
					PlannedDate: date("2024-02-11T12:00:00Z"), ActualDate: ptr(date("2024-02-11T14:30:00Z")),
					Status: "completed", Variance: 2.5,
					Description: "Vendor confirmed order and provided ship date", Owner: "TechSupply Corp",
				},
				{
					ID: "shipped", Name: "Shipped from Vendor",
					PlannedDate: date("2024-02-14T10:00:00Z"), ActualDate: ptr(date("2024-02-14T16:00:00Z")),
					Status: "completed", Variance: 6,
					Description: "Shipment departed vendor facility", Owner: "TechSupply Corp",
				},
				{
					ID: "in-transit", Name: "In Transit",
					PlannedDate: date("2024-02-14T18:00:00Z"), ActualDate: ptr(date("2024-02-15T02:00:00Z")),
					Status: "completed", Variance: 8,
					Description: "Shipment picked up by carrier", Owner: "XYZ Logistics",
				},
				{
					ID: "fc-arrival", Name: "FC Arrival",
					PlannedDate: date("2024-02-15T14:00:00Z"),
					Status:      "delayed", Variance: 3,
					Description: "Expected arrival at SEA4 fulfillment center", Owner: "FC Operations",
				},
				{
					ID: "stowed", Name: "Stowed",
					PlannedDate: date("2024-02-15T20:00:00Z"),
					Status:      "at-risk",
					Description: "Items stowed and available for picking", Owner: "FC Operations",
				},
			},
		},
		{
			ShipmentID:    "PO12346",
			ASIN:          "B08F7N8LJ9",
			POID:          "PO12346",
			OverallStatus: "on-track",
			CriticalPath:  []string{"po-created", "vendor-confirmed", "shipped", "fc-arrival"},
			Milestones: []models.MilestoneEvent{
				{
					ID: "po-created", Name: "PO Created",
					PlannedDate: date("2024-02-11T09:00:00Z"), ActualDate: ptr(date("2024-02-11T09:00:00Z")),
					Status:      "completed",
					Description: "Purchase order created and sent to vendor", Owner: "Procurement Team",
				},
				{
					ID: "vendor-confirmed", Name: "Vendor Confirmation",
					PlannedDate: date("2024-02-12T12:00:00Z"), ActualDate: ptr(date("2024-02-12T11:00:00Z")),
					Status: "completed", Variance: -1,
					Description: "Vendor confirmed order and provided ship date", Owner: "Global Electronics Ltd",
				},
				{
					ID: "shipped", Name: "Shipped from Vendor",
					PlannedDate: date("2024-02-14T12:00:00Z"), ActualDate: ptr(date("2024-02-14T11:30:00Z")),
					Status: "completed", Variance: -0.5,
					Description: "Shipment departed vendor facility", Owner: "Global Electronics Ltd",
				},
				{
					ID: "fc-arrival", Name: "FC Arrival",
					PlannedDate: date("2024-02-16T10:00:00Z"),
					Status:      "pending",
					Description: "Expected arrival at SEA4 fulfillment center", Owner: "FC Operations",
				},
			},
		},
	}
}

func buildTimeline(anchor time.Time, asin string) []models.TimelineEvent {
	return []models.TimelineEvent{
		{ID: "1", Title: "PO Created", Description: "Purchase order created for ASIN " + asin,
			Timestamp: at(anchor, -7*day), Status: "completed", Location: "Vendor Portal"},
		{ID: "2", Title: "Vendor Confirmation", Description: "Vendor confirmed order and provided estimated ship date",
			Timestamp: at(anchor, -6*day), Status: "completed", Location: "TechSupply Corp"},
		{ID: "3", Title: "Shipment Dispatched", Description: "Items picked up from vendor facility",
			Timestamp: at(anchor, -3*day), Status: "completed", Location: "Vendor Facility - Portland, OR"},
		{ID: "4", Title: "In Transit", Description: "Shipment en route to fulfillment center",
			Timestamp: at(anchor, -2*day), Status: "in-progress", Location: "Trailer T12345 - I-5 Corridor"},
		{ID: "5", Title: "FC Arrival", Description: "Expected arrival at fulfillment center",
			Timestamp: at(anchor, 3*hour), Status: "delayed", Location: "SEA4 Fulfillment Center"},
		{ID: "6", Title: "Receive & Stow", Description: "Items will be received and stowed in inventory",
			Timestamp: at(anchor, 6*hour), Status: "pending", Location: "SEA4 Fulfillment Center"},
	}
}

func buildActions() []models.InteractiveAction {
	return []models.InteractiveAction{
		{ID: "notify-receiving", Label: "Notify Receiving Team", Type: models.ActionPrimary, Handler: "notifyReceivingTeam"},
		{ID: "assign-dock", Label: "Assign Dock", Type: models.ActionSecondary, Handler: "assignDock",
			RequiresConfirmation: true, ConfirmationMessage: "Assign the selected trailer to the next available dock?"},
		{ID: "redirect-trailer", Label: "Redirect Trailer", Type: models.ActionWarning, Handler: "redirectTrailer",
			RequiresConfirmation: true, ConfirmationMessage: "Redirecting changes the trailer's destination FC. Continue?"},
		{ID: "schedule-review", Label: "Schedule Performance Review", Type: models.ActionSecondary, Handler: "scheduleReview"},
		{ID: "create-alert", Label: "Create Alert", Type: models.ActionWarning, Handler: "createAlert"},
		{ID: "expedite-shipment", Label: "Expedite Shipment", Type: models.ActionPrimary, Handler: "expediteShipment",
			RequiresConfirmation: true, ConfirmationMessage: "Expediting may incur additional carrier charges. Continue?",
			Metadata: map[string]interface{}{"costImpact": "carrier surcharge"}},
	}
}
