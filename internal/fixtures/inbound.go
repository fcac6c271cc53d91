package fixtures

import (
	"time"

	"supplychain-assistant/internal/models"
)

func dockAt(x, y float64, section string) *models.DockLayoutPosition {
	return &models.DockLayoutPosition{X: x, Y: y, Width: 80, Height: 40, Orientation: "horizontal", Section: section}
}

func buildInbound(anchor time.Time, trailers []models.Trailer) (map[string]models.FCInboundData, []string) {
	sea4 := models.FCInboundData{
		FCID: "SEA4",
		CapacityMetrics: models.CapacityMetrics{
			TotalDocks: 24, AvailableDocks: 6, UtilizationPercentage: 75,
			AverageUnloadTime: 45, QueueLength: 8, ProcessingRate: 85,
		},
		DockUtilization: []models.DockStatus{
			{
				DockID: "D01", Status: "occupied", CurrentTrailer: "T56789",
				EstimatedFreeTime: ptr(at(anchor, 2*hour)), Efficiency: 92,
				Position: dockAt(50, 100, "north"),
				UtilizationHistory: &models.DockUtilizationMetrics{
					HourlyUtilization: []models.UtilizationPattern{
						{Hour: 8, Day: "Monday", UtilizationPercentage: 85, TrailerCount: 3, AverageWaitTime: 25},
						{Hour: 9, Day: "Monday", UtilizationPercentage: 92, TrailerCount: 4, AverageWaitTime: 30},
						{Hour: 10, Day: "Monday", UtilizationPercentage: 88, TrailerCount: 3, AverageWaitTime: 20},
					},
					DailyThroughput: []models.ThroughputMetric{
						{Date: at(anchor, -1*day), TrailersProcessed: 12, AverageUnloadTime: 42, TotalDowntime: 30, Efficiency: 91},
						{Date: at(anchor, -2*day), TrailersProcessed: 14, AverageUnloadTime: 40, TotalDowntime: 15, Efficiency: 94},
					},
					AverageUnloadTime: 42,
					PeakHours:         []string{"09:00", "14:00"},
				},
				MaintenanceSchedule: &models.MaintenanceSchedule{
					ScheduledMaintenance: []models.MaintenanceEvent{
						{ID: "M001", Type: "preventive", ScheduledDate: at(anchor, 3*day), EstimatedDuration: 120,
							Description: "Dock leveler inspection", Priority: models.RiskMedium, Status: "scheduled"},
					},
					LastMaintenance: at(anchor, -30*day),
					NextMaintenance: at(anchor, 3*day),
				},
			},
			{DockID: "D02", Status: "available", Efficiency: 88, Position: dockAt(150, 100, "north")},
			{
				DockID: "D03", Status: "occupied", CurrentTrailer: "T67890",
				EstimatedFreeTime: ptr(at(anchor, 90*time.Minute)), Efficiency: 95,
				Position: dockAt(250, 100, "north"),
			},
			{DockID: "D04", Status: "maintenance", Efficiency: 0, Position: dockAt(350, 100, "north")},
			{DockID: "D05", Status: "available", Efficiency: 90, Position: dockAt(450, 100, "north")},
			{DockID: "D06", Status: "available", Efficiency: 87, Position: dockAt(550, 100, "north")},
			{
				DockID: "D07", Status: "occupied", CurrentTrailer: "T78901",
				EstimatedFreeTime: ptr(at(anchor, 3*hour)), Efficiency: 89,
				Position: dockAt(50, 200, "south"),
			},
			{DockID: "D08", Status: "available", Efficiency: 91, Position: dockAt(150, 200, "south")},
		},
		QueueManagement: models.QueueManagement{
			WaitingTrailers: []models.QueuedTrailer{
				{
					TrailerID: "T12345", ArrivalTime: at(anchor, -30*time.Minute), EstimatedWaitTime: 45,
					Priority: models.PriorityHigh, PreferredDock: "D02",
					Contents: []models.TrailerContent{{ASIN: "B07X2RJ3L9", Quantity: 120, Category: "Electronics", Priority: models.PriorityHigh}},
				},
				{
					TrailerID: "T23456", ArrivalTime: at(anchor, -15*time.Minute), EstimatedWaitTime: 60,
					Priority: models.PriorityMedium,
					Contents: []models.TrailerContent{{ASIN: "B08F7N8LJ9", Quantity: 85, Category: "Electronics", Priority: models.PriorityMedium}},
				},
			},
			AverageWaitTime:         52,
			MaxQueueLength:          12,
			CurrentQueueLength:      2,
			EstimatedProcessingTime: 180,
		},
		YardMap: models.YardLayout{
			TotalSpots:    50,
			OccupiedSpots: 32,
			Zones: []models.YardZone{
				{
					ID: "inbound-a", Name: "Inbound Zone A", Type: "inbound",
					Spots: []models.YardSpot{
						{ID: "IA01", Coordinates: models.Point{X: 100, Y: 300}, Occupied: true, TrailerID: "T12345"},
						{ID: "IA02", Coordinates: models.Point{X: 200, Y: 300}, Occupied: true, TrailerID: "T23456"},
						{ID: "IA03", Coordinates: models.Point{X: 300, Y: 300}},
						{ID: "IA04", Coordinates: models.Point{X: 400, Y: 300}, Occupied: true, TrailerID: "T34567"},
					},
				},
				{
					ID: "staging", Name: "Staging Area", Type: "staging",
					Spots: []models.YardSpot{
						{ID: "ST01", Coordinates: models.Point{X: 100, Y: 400}},
						{ID: "ST02", Coordinates: models.Point{X: 200, Y: 400}},
					},
				},
			},
		},
		Trailers: []models.TrailerYardPosition{
			{
				Trailer:      findTrailer(trailers, "T12345"),
				YardPosition: models.YardPosition{Zone: "inbound-a", Spot: 1, Coordinates: models.Point{X: 100, Y: 300}},
				DwellTime:    2.5, PriorityScore: 85,
			},
			{
				Trailer:      findTrailer(trailers, "T23456"),
				YardPosition: models.YardPosition{Zone: "inbound-a", Spot: 2, Coordinates: models.Point{X: 200, Y: 300}},
				DwellTime:    4.2, PriorityScore: 92,
			},
			{
				Trailer:      findTrailer(trailers, "T56789"),
				YardPosition: models.YardPosition{Zone: "staging", Spot: 1, Coordinates: models.Point{X: 100, Y: 400}},
				DwellTime:    0.5, PriorityScore: 78,
			},
		},
	}
	sea4.DockLayout = layoutOf(sea4.DockUtilization)

	lax7 := models.FCInboundData{
		FCID: "LAX7",
		CapacityMetrics: models.CapacityMetrics{
			TotalDocks: 32, AvailableDocks: 3, UtilizationPercentage: 91,
			AverageUnloadTime: 38, QueueLength: 12, ProcessingRate: 92,
		},
		DockUtilization: []models.DockStatus{
			{DockID: "L01", Status: "occupied", CurrentTrailer: "T90123",
				EstimatedFreeTime: ptr(at(anchor, 1*hour)), Efficiency: 93, Position: dockAt(50, 100, "east")},
			{DockID: "L02", Status: "occupied", CurrentTrailer: "T91234",
				EstimatedFreeTime: ptr(at(anchor, 2*hour)), Efficiency: 90, Position: dockAt(150, 100, "east")},
			{DockID: "L03", Status: "available", Efficiency: 94, Position: dockAt(250, 100, "east")},
			{DockID: "L04", Status: "occupied", CurrentTrailer: "T92345",
				EstimatedFreeTime: ptr(at(anchor, 45*time.Minute)), Efficiency: 88, Position: dockAt(350, 100, "east")},
		},
		QueueManagement: models.QueueManagement{
			AverageWaitTime:         70,
			MaxQueueLength:          15,
			EstimatedProcessingTime: 240,
		},
		YardMap: models.YardLayout{
			TotalSpots:    60,
			OccupiedSpots: 57,
			Zones: []models.YardZone{
				{
					ID: "inbound-east", Name: "Inbound East", Type: "inbound",
					Spots: []models.YardSpot{
						{ID: "IE01", Coordinates: models.Point{X: 100, Y: 300}, Occupied: true, TrailerID: "T90123"},
						{ID: "IE02", Coordinates: models.Point{X: 200, Y: 300}, Occupied: true, TrailerID: "T93456"},
					},
				},
			},
		},
		Trailers: []models.TrailerYardPosition{
			{
				Trailer:      findTrailer(trailers, "T90123"),
				YardPosition: models.YardPosition{Zone: "inbound-east", Spot: 1, Coordinates: models.Point{X: 100, Y: 300}},
				DwellTime:    1.8, PriorityScore: 88,
			},
		},
	}
	lax7.DockLayout = layoutOf(lax7.DockUtilization)

	return map[string]models.FCInboundData{"SEA4": sea4, "LAX7": lax7}, []string{"SEA4", "LAX7"}
}

func layoutOf(docks []models.DockStatus) []models.DockLayoutPosition {
	out := make([]models.DockLayoutPosition, 0, len(docks))
	for _, d := range docks {
		if d.Position != nil {
			out = append(out, *d.Position)
		}
	}
	return out
}
