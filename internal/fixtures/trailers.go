package fixtures

import (
	"time"

	"supplychain-assistant/internal/models"
)

var (
	electronicsLoad = []models.TrailerContent{
		{ASIN: "B07X2RJ3L9", Quantity: 120, Category: "Electronics", Priority: models.PriorityHigh, CutScore: 85},
		{ASIN: "B08F7N8LJ9", Quantity: 85, Category: "Electronics", Priority: models.PriorityHigh, CutScore: 92},
		{ASIN: "B09D34GH7N", Quantity: 50, Category: "Electronics", Priority: models.PriorityHigh, CutScore: 78},
	}
)

func buildTrailers(anchor time.Time) []models.Trailer {
	return []models.Trailer{
		{
			ID:      "T12345",
			Carrier: "XYZ Logistics",
			Status:  models.TrailerDelayed,
			ETA:     at(anchor, 3*hour),
			CurrentLocation: models.Location{
				Lat: 47.6062, Lng: -122.3321, Address: "I-5 near Seattle, WA",
			},
			Destination: "SEA4",
			DelayReason: "Traffic delay on I-5",
			Priority:    models.PriorityMedium,
			Contents:    append([]models.TrailerContent(nil), electronicsLoad...),
		},
		{
			ID:      "T23456",
			Carrier: "ABC Transport",
			Status:  models.TrailerDelayed,
			ETA:     at(anchor, 5*hour),
			CurrentLocation: models.Location{
				Lat: 47.2529, Lng: -122.4443, Address: "Tacoma, WA",
			},
			Destination: "SEA4",
			DelayReason: "Mechanical issues",
			Priority:    models.PriorityHigh,
			Contents:    append([]models.TrailerContent(nil), electronicsLoad...),
		},
		{
			ID:      "T34567",
			Carrier: "Fast Freight",
			Status:  models.TrailerDelayed,
			ETA:     at(anchor, 2*hour),
			CurrentLocation: models.Location{
				Lat: 47.0379, Lng: -122.9015, Address: "Olympia, WA",
			},
			Destination: "SEA4",
			DelayReason: "Delayed departure from origin",
			Priority:    models.PriorityLow,
			Contents: []models.TrailerContent{
				{ASIN: "B08G7H9K2L", Quantity: 200, Category: "Apparel", Priority: models.PriorityMedium},
				{ASIN: "B09H8J3M4N", Quantity: 150, Category: "Apparel", Priority: models.PriorityLow},
			},
		},
		{
			ID:      "T45678",
			Carrier: "Prime Logistics",
			Status:  models.TrailerEnRoute,
			ETA:     at(anchor, 1*hour),
			CurrentLocation: models.Location{
				Lat: 47.4502, Lng: -122.3088, Address: "Renton, WA",
			},
			Destination: "SEA4",
			Priority:    models.PriorityHigh,
			Contents: []models.TrailerContent{
				{ASIN: "B07Y3K5L8M", Quantity: 300, Category: "Home & Garden", Priority: models.PriorityMedium},
			},
		},
		{
			ID:      "T56789",
			Carrier: "Swift Transport",
			Status:  models.TrailerArrived,
			ETA:     at(anchor, -30*time.Minute),
			CurrentLocation: models.Location{
				Lat: 47.5480, Lng: -122.3010, Address: "SEA4 Fulfillment Center",
			},
			Destination: "SEA4",
			Priority:    models.PriorityMedium,
			Contents: []models.TrailerContent{
				{ASIN: "B08K9L2N5P", Quantity: 180, Category: "Books", Priority: models.PriorityLow},
			},
		},
		{
			ID:      "T89012",
			Carrier: "Pacific Haulers",
			Status:  models.TrailerEnRoute,
			ETA:     at(anchor, 30*hour),
			CurrentLocation: models.Location{
				Lat: 35.3733, Lng: -119.0187, Address: "I-5 near Bakersfield, CA",
			},
			Destination: "LAX7",
			Priority:    models.PriorityMedium,
			Contents: []models.TrailerContent{
				{ASIN: "B07X2RJ3L9", Quantity: 240, Category: "Electronics", Priority: models.PriorityHigh, CutScore: 81},
				{ASIN: "B07Y3K5L8M", Quantity: 90, Category: "Home & Garden", Priority: models.PriorityLow},
			},
		},
		{
			ID:      "T90123",
			Carrier: "Golden State Freight",
			Status:  models.TrailerArrived,
			ETA:     at(anchor, -2*hour),
			CurrentLocation: models.Location{
				Lat: 34.0522, Lng: -118.2437, Address: "LAX7 Fulfillment Center",
			},
			Destination: "LAX7",
			Priority:    models.PriorityHigh,
			Contents: []models.TrailerContent{
				{ASIN: "B09D34GH7N", Quantity: 60, Category: "Electronics", Priority: models.PriorityHigh, CutScore: 88},
				{ASIN: "B08F7N8LJ9", Quantity: 40, Category: "Electronics", Priority: models.PriorityMedium, CutScore: 70},
			},
		},
	}
}

func findTrailer(trailers []models.Trailer, id string) models.Trailer {
	for _, t := range trailers {
		if t.ID == id {
			return t
		}
	}
	panic("fixtures: unknown trailer " + id)
}
