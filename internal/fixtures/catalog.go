package fixtures

import "supplychain-assistant/internal/models"

func weekly(values ...int) []models.WeeklyCompliance {
	weeks := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29", "2024-02-05"}
	out := make([]models.WeeklyCompliance, 0, len(values))
	for i, v := range values {
		out = append(out, models.WeeklyCompliance{Week: weeks[i%len(weeks)], Compliance: v})
	}
	return out
}

func buildVendors() []models.VendorPerformance {
	return []models.VendorPerformance{
		{
			VendorID: "V001", VendorName: "TechSupply Corp",
			CompliancePercentage: 87, DeliveryWindowCompliance: 89,
			TotalShipments: 245, OnTimeDeliveries: 218,
			PerformanceTrend: models.TrendImproving,
			WeeklyData:       weekly(82, 85, 87, 89, 91, 87),
		},
		{
			VendorID: "V002", VendorName: "Global Electronics Ltd",
			CompliancePercentage: 92, DeliveryWindowCompliance: 94,
			TotalShipments: 189, OnTimeDeliveries: 178,
			PerformanceTrend: models.TrendStable,
			WeeklyData:       weekly(91, 93, 92, 94, 92, 94),
		},
		{
			VendorID: "V003", VendorName: "FastShip Logistics",
			CompliancePercentage: 95, DeliveryWindowCompliance: 96,
			TotalShipments: 156, OnTimeDeliveries: 149,
			PerformanceTrend: models.TrendStable,
		},
		{
			VendorID: "V004", VendorName: "Prime Suppliers Inc",
			CompliancePercentage: 91, DeliveryWindowCompliance: 93,
			TotalShipments: 203, OnTimeDeliveries: 189,
			PerformanceTrend: models.TrendImproving,
		},
		{
			VendorID: "V005", VendorName: "Reliable Freight Co",
			CompliancePercentage: 88, DeliveryWindowCompliance: 90,
			TotalShipments: 178, OnTimeDeliveries: 160,
			PerformanceTrend: models.TrendDeclining,
			DeclineRate:      -8,
			IssuesSummary:    "Driver shortages causing increased delays",
			WeeklyData:       weekly(96, 94, 93, 91, 89, 88),
		},
		{
			VendorID: "V006", VendorName: "Budget Logistics",
			CompliancePercentage: 82, DeliveryWindowCompliance: 85,
			TotalShipments: 134, OnTimeDeliveries: 110,
			PerformanceTrend: models.TrendDeclining,
			DeclineRate:      -12,
			IssuesSummary:    "Equipment maintenance affecting delivery times",
		},
	}
}

func buildInventory() map[string]models.InventoryItem {
	items := []models.InventoryItem{
		{ASIN: "B07X2RJ3L9", Name: "Wireless Earbuds", CurrentInventory: 35, Category: "Electronics", Priority: models.PriorityHigh},
		{ASIN: "B08F7N8LJ9", Name: "Smart Speaker", CurrentInventory: 12, Category: "Electronics", Priority: models.PriorityHigh},
		{ASIN: "B09D34GH7N", Name: "Tablet Computer", CurrentInventory: 8, Category: "Electronics", Priority: models.PriorityHigh},
		{ASIN: "B08G7H9K2L", Name: "Fleece Jacket", CurrentInventory: 140, Category: "Apparel", Priority: models.PriorityMedium},
		{ASIN: "B09H8J3M4N", Name: "Running Socks", CurrentInventory: 260, Category: "Apparel", Priority: models.PriorityLow},
		{ASIN: "B07Y3K5L8M", Name: "Garden Hose Reel", CurrentInventory: 75, Category: "Home & Garden", Priority: models.PriorityMedium},
		{ASIN: "B08K9L2N5P", Name: "Paperback Cookbook", CurrentInventory: 410, Category: "Books", Priority: models.PriorityLow},
	}
	out := make(map[string]models.InventoryItem, len(items))
	for _, item := range items {
		out[item.ASIN] = item
	}
	return out
}

// Risk rows are deliberately not in severity order.
func buildInventoryRisk() []models.InventoryRisk {
	return []models.InventoryRisk{
		{
			ASIN: "B07X2RJ3L9", Name: "Wireless Earbuds",
			CurrentStock: 35, DailyDemand: 12, DaysOfSupply: 2.9,
			RiskLevel: models.RiskHigh, ReorderPoint: 50, IncomingShipments: 500,
		},
		{
			ASIN: "B08G7H9K2L", Name: "Fleece Jacket",
			CurrentStock: 140, DailyDemand: 15, DaysOfSupply: 9.3,
			RiskLevel: models.RiskLow, ReorderPoint: 60, IncomingShipments: 200,
		},
		{
			ASIN: "B08F7N8LJ9", Name: "Smart Speaker",
			CurrentStock: 12, DailyDemand: 8, DaysOfSupply: 1.5,
			RiskLevel: models.RiskCritical, ReorderPoint: 40, IncomingShipments: 300,
		},
		{
			ASIN: "B07Y3K5L8M", Name: "Garden Hose Reel",
			CurrentStock: 75, DailyDemand: 15, DaysOfSupply: 5.0,
			RiskLevel: models.RiskMedium, ReorderPoint: 70, IncomingShipments: 300,
		},
		{
			ASIN: "B09D34GH7N", Name: "Tablet Computer",
			CurrentStock: 8, DailyDemand: 5, DaysOfSupply: 1.6,
			RiskLevel: models.RiskCritical, ReorderPoint: 30, IncomingShipments: 200,
		},
	}
}

func buildCapacity() (map[string]models.CapacityInfo, []string) {
	rows := []models.CapacityInfo{
		{
			FacilityID: "SEA4", TotalDocks: 24, AvailableDocks: 6,
			ProcessingRate: 85, QueueLength: 8, AverageUnloadTime: 45,
			UtilizationTrend: "increasing",
		},
		{
			FacilityID: "LAX7", TotalDocks: 32, AvailableDocks: 3,
			ProcessingRate: 92, QueueLength: 12, AverageUnloadTime: 38,
			UtilizationTrend: "stable",
		},
	}
	out := make(map[string]models.CapacityInfo, len(rows))
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		out[r.FacilityID] = r
		order = append(order, r.FacilityID)
	}
	return out, order
}

func buildFacilities() []models.Facility {
	return []models.Facility{
		{
			ID: "SEA4", Name: "SEA4 Fulfillment Center", Type: "fulfillment-center",
			Location: models.Location{Lat: 47.5480, Lng: -122.3010},
			Address:  "Seattle, WA",
			Capacity: &models.FacilityCapacity{Total: 100, Current: 75},
		},
		{
			ID: "LAX7", Name: "LAX7 Fulfillment Center", Type: "fulfillment-center",
			Location: models.Location{Lat: 34.0522, Lng: -118.2437},
			Address:  "Los Angeles, CA",
			Capacity: &models.FacilityCapacity{Total: 120, Current: 95},
		},
		{
			ID: "VENDOR_A", Name: "TechSupply Corp Warehouse", Type: "vendor",
			Location: models.Location{Lat: 47.2529, Lng: -122.4443},
			Address:  "Tacoma, WA",
		},
	}
}

func buildPurchaseOrders() []models.PurchaseOrder {
	return []models.PurchaseOrder{
		{
			ID: "PO12345", Vendor: "TechSupply Corp",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B07X2RJ3L9", Name: "Wireless Earbuds", Quantity: 200},
				{ASIN: "B08F7N8LJ9", Name: "Smart Speaker", Quantity: 200},
				{ASIN: "B09D34GH7N", Name: "Tablet Computer", Quantity: 100},
			},
			OrderValue:  47500,
			CreatedAt:   date("2024-02-10T08:15:00Z"),
			ShippedAt:   date("2024-02-14T16:00:00Z"),
			PlannedDate: date("2024-02-15"),
			TrailerID:   "T12345",
			Destination: "SEA4",
			Status:      "in-transit",
			Priority:    models.PriorityHigh,
		},
		{
			ID: "PO12346", Vendor: "Global Electronics Ltd",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B08F7N8LJ9", Name: "Smart Speaker", Quantity: 300},
			},
			OrderValue:  28500,
			CreatedAt:   date("2024-02-11T09:00:00Z"),
			ShippedAt:   date("2024-02-14T11:30:00Z"),
			PlannedDate: date("2024-02-16"),
			TrailerID:   "T23456",
			Destination: "SEA4",
			Status:      "in-transit",
			Priority:    models.PriorityHigh,
		},
		{
			ID: "PO12347", Vendor: "Prime Suppliers Inc",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B07Y3K5L8M", Name: "Garden Hose Reel", Quantity: 300},
			},
			OrderValue:  9600,
			CreatedAt:   date("2024-02-12T13:00:00Z"),
			ShippedAt:   date("2024-02-15T07:45:00Z"),
			PlannedDate: date("2024-02-16"),
			TrailerID:   "T45678",
			Destination: "SEA4",
			Status:      "in-transit",
			Priority:    models.PriorityMedium,
		},
		{
			ID: "PO12348", Vendor: "Reliable Freight Co",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B08G7H9K2L", Name: "Fleece Jacket", Quantity: 200},
				{ASIN: "B09H8J3M4N", Name: "Running Socks", Quantity: 150},
			},
			OrderValue:  11250,
			CreatedAt:   date("2024-02-09T10:30:00Z"),
			ShippedAt:   date("2024-02-14T19:00:00Z"),
			PlannedDate: date("2024-02-15"),
			TrailerID:   "T34567",
			Destination: "SEA4",
			Status:      "in-transit",
			Priority:    models.PriorityLow,
		},
		{
			ID: "PO12349", Vendor: "TechSupply Corp",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B07X2RJ3L9", Name: "Wireless Earbuds", Quantity: 240},
			},
			OrderValue:  16800,
			CreatedAt:   date("2024-02-13T08:00:00Z"),
			ShippedAt:   date("2024-02-15T06:00:00Z"),
			PlannedDate: date("2024-02-17"),
			TrailerID:   "T89012",
			Destination: "LAX7",
			Status:      "in-transit",
			Priority:    models.PriorityMedium,
		},
		{
			ID: "PO12340", Vendor: "TechSupply Corp",
			Lines: []models.PurchaseOrderLine{
				{ASIN: "B07X2RJ3L9", Name: "Wireless Earbuds", Quantity: 400},
			},
			OrderValue:  28000,
			CreatedAt:   date("2024-01-20T08:00:00Z"),
			ShippedAt:   date("2024-01-24T12:00:00Z"),
			PlannedDate: date("2024-01-25"),
			Destination: "SEA4",
			Status:      "received",
			Priority:    models.PriorityMedium,
		},
	}
}
