package fixtures

import (
	"time"

	"supplychain-assistant/internal/models"
)

func buildVendorTrends(vendors []models.VendorPerformance) []models.VendorTrendData {
	byID := make(map[string]models.VendorPerformance, len(vendors))
	for _, v := range vendors {
		byID[v.VendorID] = v
	}

	return []models.VendorTrendData{
		{
			Vendor: byID["V001"],
			TrendData: []models.TrendPoint{
				{Date: date("2024-01-01"), Compliance: 82, OnTimeDeliveries: 41, TotalShipments: 50, AverageDelay: 2.3},
				{Date: date("2024-01-08"), Compliance: 85, OnTimeDeliveries: 43, TotalShipments: 51, AverageDelay: 1.8},
				{Date: date("2024-01-15"), Compliance: 87, OnTimeDeliveries: 44, TotalShipments: 51, AverageDelay: 1.5},
				{Date: date("2024-01-22"), Compliance: 89, OnTimeDeliveries: 45, TotalShipments: 51, AverageDelay: 1.2},
				{Date: date("2024-01-29"), Compliance: 91, OnTimeDeliveries: 46, TotalShipments: 51, AverageDelay: 0.9},
				{Date: date("2024-02-05"), Compliance: 87, OnTimeDeliveries: 44, TotalShipments: 51, AverageDelay: 1.4},
			},
			ComparisonMetrics: []models.ComparisonMetric{
				{Metric: "On-Time Delivery", Value: 89, Benchmark: 90, Variance: -1, Trend: models.TrendImproving, Unit: "%"},
				{Metric: "Delivery Window Compliance", Value: 87, Benchmark: 85, Variance: 2, Trend: models.TrendStable, Unit: "%"},
				{Metric: "Average Delay", Value: 1.4, Benchmark: 2.0, Variance: -0.6, Trend: models.TrendImproving, Unit: "hours"},
			},
			RiskIndicators: []models.RiskIndicator{
				{
					Type: "delivery-window", Severity: models.RiskMedium,
					Description:    "Recent dip in compliance from 91% to 87%",
					Recommendation: "Monitor next 2 weeks for trend confirmation",
				},
			},
		},
		{
			Vendor: byID["V005"],
			TrendData: []models.TrendPoint{
				{Date: date("2024-01-01"), Compliance: 96, OnTimeDeliveries: 29, TotalShipments: 30, AverageDelay: 0.6},
				{Date: date("2024-01-08"), Compliance: 94, OnTimeDeliveries: 28, TotalShipments: 30, AverageDelay: 0.9},
				{Date: date("2024-01-15"), Compliance: 93, OnTimeDeliveries: 27, TotalShipments: 29, AverageDelay: 1.1},
				{Date: date("2024-01-22"), Compliance: 91, OnTimeDeliveries: 27, TotalShipments: 30, AverageDelay: 1.6},
				{Date: date("2024-01-29"), Compliance: 89, OnTimeDeliveries: 26, TotalShipments: 30, AverageDelay: 2.2},
				{Date: date("2024-02-05"), Compliance: 88, OnTimeDeliveries: 26, TotalShipments: 29, AverageDelay: 2.5},
			},
			ComparisonMetrics: []models.ComparisonMetric{
				{Metric: "On-Time Delivery", Value: 90, Benchmark: 90, Variance: 0, Trend: models.TrendDeclining, Unit: "%"},
				{Metric: "Delivery Window Compliance", Value: 88, Benchmark: 85, Variance: 3, Trend: models.TrendDeclining, Unit: "%"},
				{Metric: "Average Delay", Value: 2.5, Benchmark: 2.0, Variance: 0.5, Trend: models.TrendDeclining, Unit: "hours"},
			},
			RiskIndicators: []models.RiskIndicator{
				{
					Type: "capacity", Severity: models.RiskHigh,
					Description:    "Compliance down 8 points over six weeks",
					Recommendation: "Schedule a performance review and qualify a backup carrier",
				},
			},
		},
	}
}

func buildTracking(anchor time.Time, trailers []models.Trailer) models.LocationTrackingData {
	seattle := models.Location{Lat: 47.6062, Lng: -122.3321, Address: "Seattle, WA", Name: "SEA4 Fulfillment Center"}

	return models.LocationTrackingData{
		Trailers: []models.TrackedTrailer{
			{
				Trailer: findTrailer(trailers, "T12345"),
				GPSCoordinates: []models.GPSCoordinate{
					{Lat: 47.6062, Lng: -122.3321, Timestamp: at(anchor, -5*time.Minute), Accuracy: 5},
					{Lat: 47.6050, Lng: -122.3310, Timestamp: at(anchor, -4*time.Minute), Accuracy: 4},
					{Lat: 47.6040, Lng: -122.3300, Timestamp: at(anchor, -3*time.Minute), Accuracy: 3},
				},
				Speed:   55,
				Heading: 180,
				EstimatedRoute: []models.RoutePoint{
					{Lat: 47.6062, Lng: -122.3321, EstimatedTime: anchor, Waypoint: true},
					{Lat: 47.5500, Lng: -122.3000, EstimatedTime: at(anchor, 30*time.Minute)},
					{Lat: 47.5480, Lng: -122.3010, EstimatedTime: at(anchor, 60*time.Minute), Waypoint: true},
				},
				TrafficConditions: []models.TrafficCondition{
					{Segment: "I-5 Seattle Downtown", Condition: "moderate", Delay: 15, Description: "Construction in right lane"},
					{Segment: "I-5 South Seattle", Condition: "light", Delay: 5, Description: "Normal traffic flow"},
				},
			},
			{
				Trailer: findTrailer(trailers, "T45678"),
				GPSCoordinates: []models.GPSCoordinate{
					{Lat: 47.4502, Lng: -122.3088, Timestamp: at(anchor, -2*time.Minute), Accuracy: 4},
				},
				Speed:   48,
				Heading: 350,
				EstimatedRoute: []models.RoutePoint{
					{Lat: 47.4502, Lng: -122.3088, EstimatedTime: anchor, Waypoint: true},
					{Lat: 47.5480, Lng: -122.3010, EstimatedTime: at(anchor, 60*time.Minute), Waypoint: true},
				},
				TrafficConditions: []models.TrafficCondition{
					{Segment: "I-405 Renton", Condition: "heavy", Delay: 10, Description: "Merge congestion at SR-167"},
				},
			},
		},
		Routes: []models.RouteData{
			{
				TrailerID:   "T12345",
				Origin:      models.Location{Lat: 47.2529, Lng: -122.4443, Address: "Tacoma, WA", Name: "TechSupply Corp Warehouse"},
				Destination: seattle,
				Waypoints: []models.Location{
					{Lat: 47.4502, Lng: -122.3088, Address: "Renton, WA", Name: "Rest Stop"},
				},
				EstimatedDuration: 180,
				ActualDuration:    210,
				TrafficDelay:      30,
			},
			{
				TrailerID:         "T23456",
				Origin:            models.Location{Lat: 45.5152, Lng: -122.6784, Address: "Portland, OR", Name: "Global Electronics DC"},
				Destination:       seattle,
				EstimatedDuration: 240,
				TrafficDelay:      45,
			},
		},
		RealTimeUpdates: true,
		LastUpdated:     anchor,
	}
}
