// internal/models/supplychain.go
package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight orders priorities for sorting: high > medium > low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type TrailerStatus string

const (
	TrailerEnRoute   TrailerStatus = "en-route"
	TrailerArrived   TrailerStatus = "arrived"
	TrailerUnloading TrailerStatus = "unloading"
	TrailerDelayed   TrailerStatus = "delayed"
)

// TrailerStatuses lists every status in display order.
func TrailerStatuses() []TrailerStatus {
	return []TrailerStatus{TrailerEnRoute, TrailerArrived, TrailerUnloading, TrailerDelayed}
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// RiskLevel is shared by stockout risk, vendor risk indicators and maintenance.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// Rank orders risk levels: critical > high > medium > low. Unknown levels rank lowest.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	}
	return 0
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	Name    string  `json:"name,omitempty"`
}

type TrailerContent struct {
	ASIN     string   `json:"asin"`
	Quantity int      `json:"quantity"`
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	CutScore int      `json:"cutScore,omitempty"`
}

type Trailer struct {
	ID              string           `json:"id"`
	Carrier         string           `json:"carrier"`
	Contents        []TrailerContent `json:"contents"`
	Status          TrailerStatus    `json:"status"`
	ETA             time.Time        `json:"eta"`
	CurrentLocation Location         `json:"currentLocation"`
	Destination     string           `json:"destination"`
	DelayReason     string           `json:"delayReason,omitempty"`
	Priority        Priority         `json:"priority"`
}

// TotalUnits sums the quantity of every content line.
func (t Trailer) TotalUnits() int {
	total := 0
	for _, c := range t.Contents {
		total += c.Quantity
	}
	return total
}

// Carries reports whether any content line holds the ASIN.
func (t Trailer) Carries(asin string) (TrailerContent, bool) {
	for _, c := range t.Contents {
		if c.ASIN == asin {
			return c, true
		}
	}
	return TrailerContent{}, false
}

type WeeklyCompliance struct {
	Week       string `json:"week"`
	Compliance int    `json:"compliance"`
}

type VendorPerformance struct {
	VendorID                 string             `json:"vendorId"`
	VendorName               string             `json:"vendorName"`
	CompliancePercentage     int                `json:"compliancePercentage"`
	DeliveryWindowCompliance int                `json:"deliveryWindowCompliance"`
	TotalShipments           int                `json:"totalShipments"`
	OnTimeDeliveries         int                `json:"onTimeDeliveries"`
	PerformanceTrend         Trend              `json:"performanceTrend"`
	WeeklyData               []WeeklyCompliance `json:"weeklyData"`
	DeclineRate              float64            `json:"declineRate,omitempty"`
	IssuesSummary            string             `json:"issuesSummary,omitempty"`
}

type InventoryItem struct {
	ASIN             string   `json:"asin"`
	Name             string   `json:"name"`
	CurrentInventory int      `json:"currentInventory"`
	Category         string   `json:"category"`
	Priority         Priority `json:"priority"`
}

type InventoryRisk struct {
	ASIN              string    `json:"asin"`
	Name              string    `json:"name"`
	CurrentStock      int       `json:"currentStock"`
	DailyDemand       int       `json:"dailyDemand"`
	DaysOfSupply      float64   `json:"daysOfSupply"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	ReorderPoint      int       `json:"reorderPoint"`
	IncomingShipments int       `json:"incomingShipments"`
}

type CapacityInfo struct {
	FacilityID        string `json:"facilityId"`
	TotalDocks        int    `json:"totalDocks"`
	AvailableDocks    int    `json:"availableDocks"`
	ProcessingRate    int    `json:"processingRate"`
	QueueLength       int    `json:"queueLength"`
	AverageUnloadTime int    `json:"averageUnloadTime"`
	UtilizationTrend  string `json:"utilizationTrend"`
}

type FacilityCapacity struct {
	Total   int `json:"total"`
	Current int `json:"current"`
}

type Facility struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Location Location          `json:"location"`
	Address  string            `json:"address"`
	Capacity *FacilityCapacity `json:"capacity,omitempty"`
}

type PurchaseOrderLine struct {
	ASIN     string `json:"asin"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type PurchaseOrder struct {
	ID          string              `json:"id"`
	Vendor      string              `json:"vendor"`
	Lines       []PurchaseOrderLine `json:"lines"`
	OrderValue  float64             `json:"orderValue"`
	CreatedAt   time.Time           `json:"createdAt"`
	ShippedAt   time.Time           `json:"shippedAt"`
	PlannedDate time.Time           `json:"plannedDate"`
	TrailerID   string              `json:"trailerId"`
	Destination string              `json:"destination"`
	Status      string              `json:"status"`
	Priority    Priority            `json:"priority"`
}

// TotalQuantity sums every line.
func (po PurchaseOrder) TotalQuantity() int {
	total := 0
	for _, l := range po.Lines {
		total += l.Quantity
	}
	return total
}

// Open reports whether the order is still awaiting receipt.
func (po PurchaseOrder) Open() bool {
	return po.Status != "received" && po.Status != "closed"
}

// Line returns the line for the ASIN, if the order has one.
func (po PurchaseOrder) Line(asin string) (PurchaseOrderLine, bool) {
	for _, l := range po.Lines {
		if l.ASIN == asin {
			return l, true
		}
	}
	return PurchaseOrderLine{}, false
}

type TimelineEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
}
