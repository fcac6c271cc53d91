// internal/models/dashboard.go
package models

import "time"

type MetricTrend struct {
	Direction  string `json:"direction"`
	Percentage int    `json:"percentage"`
	Period     string `json:"period"`
}

type MetricValue struct {
	Value int         `json:"value"`
	Trend MetricTrend `json:"trend"`
}

type DashboardMetrics struct {
	TotalShipments MetricValue `json:"totalShipments"`
	Completed      MetricValue `json:"completed"`
	Pending        MetricValue `json:"pending"`
	Delayed        MetricValue `json:"delayed"`
}

type DashboardShipment struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	ShippingID   string `json:"shippingId"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Status       string `json:"status"`
}

type ActivityPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

type TrailerStatusSummary struct {
	Total    int                   `json:"total"`
	ByStatus map[TrailerStatus]int `json:"byStatus"`
}

type LogisticsDashboard struct {
	Metrics       DashboardMetrics     `json:"metrics"`
	Shipments     []DashboardShipment  `json:"shipments"`
	ActivityData  []ActivityPoint      `json:"activityData"`
	TrailerStatus TrailerStatusSummary `json:"trailerStatus"`
}

type MilestoneEvent struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PlannedDate time.Time  `json:"plannedDate"`
	ActualDate  *time.Time `json:"actualDate,omitempty"`
	Status      string     `json:"status"`
	Variance    float64    `json:"variance,omitempty"`
	Description string     `json:"description,omitempty"`
	Owner       string     `json:"owner,omitempty"`
	Location    string     `json:"location,omitempty"`
}

type ShipmentMilestones struct {
	ShipmentID    string           `json:"shipmentId"`
	ASIN          string           `json:"asin,omitempty"`
	POID          string           `json:"poId,omitempty"`
	Milestones    []MilestoneEvent `json:"milestones"`
	OverallStatus string           `json:"overallStatus"`
	CriticalPath  []string         `json:"criticalPath"`
}

type YardPosition struct {
	Zone        string `json:"zone"`
	Spot        int    `json:"spot"`
	Coordinates Point  `json:"coordinates"`
}

type TrailerYardPosition struct {
	Trailer       Trailer      `json:"trailer"`
	YardPosition  YardPosition `json:"yardPosition"`
	DwellTime     float64      `json:"dwellTime"`
	PriorityScore int          `json:"priorityScore"`
}

type DockLayoutPosition struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"`
	Section     string  `json:"section"`
}

type UtilizationPattern struct {
	Hour                  int    `json:"hour"`
	Day                   string `json:"day"`
	UtilizationPercentage int    `json:"utilizationPercentage"`
	TrailerCount          int    `json:"trailerCount"`
	AverageWaitTime       int    `json:"averageWaitTime"`
}

type ThroughputMetric struct {
	Date              time.Time `json:"date"`
	TrailersProcessed int       `json:"trailersProcessed"`
	AverageUnloadTime int       `json:"averageUnloadTime"`
	TotalDowntime     int       `json:"totalDowntime"`
	Efficiency        int       `json:"efficiency"`
}

type TrendPoint struct {
	Date             time.Time `json:"date"`
	Compliance       float64   `json:"compliance"`
	OnTimeDeliveries int       `json:"onTimeDeliveries"`
	TotalShipments   int       `json:"totalShipments"`
	AverageDelay     float64   `json:"averageDelay"`
}

type DockUtilizationMetrics struct {
	HourlyUtilization []UtilizationPattern `json:"hourlyUtilization"`
	DailyThroughput   []ThroughputMetric   `json:"dailyThroughput"`
	AverageUnloadTime int                  `json:"averageUnloadTime"`
	PeakHours         []string             `json:"peakHours"`
	EfficiencyTrend   []TrendPoint         `json:"efficiencyTrend"`
}

type MaintenanceEvent struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	ScheduledDate     time.Time `json:"scheduledDate"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Description       string    `json:"description"`
	Priority          RiskLevel `json:"priority"`
	Status            string    `json:"status"`
}

type MaintenanceSchedule struct {
	ScheduledMaintenance []MaintenanceEvent `json:"scheduledMaintenance"`
	LastMaintenance      time.Time          `json:"lastMaintenance"`
	NextMaintenance      time.Time          `json:"nextMaintenance"`
	MaintenanceHistory   []MaintenanceEvent `json:"maintenanceHistory"`
}

type DockStatus struct {
	DockID              string                  `json:"dockId"`
	Status              string                  `json:"status"`
	CurrentTrailer      string                  `json:"currentTrailer,omitempty"`
	EstimatedFreeTime   *time.Time              `json:"estimatedFreeTime,omitempty"`
	Efficiency          int                     `json:"efficiency"`
	Position            *DockLayoutPosition     `json:"position,omitempty"`
	UtilizationHistory  *DockUtilizationMetrics `json:"utilizationHistory,omitempty"`
	MaintenanceSchedule *MaintenanceSchedule    `json:"maintenanceSchedule,omitempty"`
}

type QueuedTrailer struct {
	TrailerID         string           `json:"trailerId"`
	ArrivalTime       time.Time        `json:"arrivalTime"`
	EstimatedWaitTime int              `json:"estimatedWaitTime"`
	Priority          Priority         `json:"priority"`
	PreferredDock     string           `json:"preferredDock,omitempty"`
	Contents          []TrailerContent `json:"contents"`
}

type QueueManagement struct {
	WaitingTrailers         []QueuedTrailer `json:"waitingTrailers"`
	AverageWaitTime         int             `json:"averageWaitTime"`
	MaxQueueLength          int             `json:"maxQueueLength"`
	CurrentQueueLength      int             `json:"currentQueueLength"`
	EstimatedProcessingTime int             `json:"estimatedProcessingTime"`
}

type YardSpot struct {
	ID          string `json:"id"`
	Coordinates Point  `json:"coordinates"`
	Occupied    bool   `json:"occupied"`
	TrailerID   string `json:"trailerId,omitempty"`
}

type YardZone struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Spots []YardSpot `json:"spots"`
}

// OccupiedSpots counts spots holding a trailer.
func (z YardZone) OccupiedSpots() int {
	n := 0
	for _, s := range z.Spots {
		if s.Occupied {
			n++
		}
	}
	return n
}

type YardLayout struct {
	Zones         []YardZone `json:"zones"`
	TotalSpots    int        `json:"totalSpots"`
	OccupiedSpots int        `json:"occupiedSpots"`
}

type CapacityMetrics struct {
	TotalDocks            int `json:"totalDocks"`
	AvailableDocks        int `json:"availableDocks"`
	UtilizationPercentage int `json:"utilizationPercentage"`
	AverageUnloadTime     int `json:"averageUnloadTime"`
	QueueLength           int `json:"queueLength"`
	ProcessingRate        int `json:"processingRate"`
}

type FCInboundData struct {
	FCID            string                `json:"fcId"`
	Trailers        []TrailerYardPosition `json:"trailers"`
	DockUtilization []DockStatus          `json:"dockUtilization"`
	YardMap         YardLayout            `json:"yardMap"`
	CapacityMetrics CapacityMetrics       `json:"capacityMetrics"`
	QueueManagement QueueManagement       `json:"queueManagement"`
	DockLayout      []DockLayoutPosition  `json:"dockLayout"`
}

// DocksByStatus counts docks per status.
func (d FCInboundData) DocksByStatus() map[string]int {
	counts := make(map[string]int)
	for _, dock := range d.DockUtilization {
		counts[dock.Status]++
	}
	return counts
}

type ComparisonMetric struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Benchmark float64 `json:"benchmark"`
	Variance  float64 `json:"variance"`
	Trend     Trend   `json:"trend"`
	Unit      string  `json:"unit"`
}

type RiskIndicator struct {
	Type           string    `json:"type"`
	Severity       RiskLevel `json:"severity"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

type VendorTrendData struct {
	Vendor            VendorPerformance  `json:"vendor"`
	TrendData         []TrendPoint       `json:"trendData"`
	ComparisonMetrics []ComparisonMetric `json:"comparisonMetrics"`
	RiskIndicators    []RiskIndicator    `json:"riskIndicators"`
}

type GPSCoordinate struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  float64   `json:"accuracy"`
}

type RoutePoint struct {
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	EstimatedTime time.Time `json:"estimatedTime"`
	Waypoint      bool      `json:"waypoint"`
}

type TrafficCondition struct {
	Segment     string `json:"segment"`
	Condition   string `json:"condition"`
	Delay       int    `json:"delay"`
	Description string `json:"description"`
}

// TrackedTrailer flattens the trailer fields alongside the live telemetry.
type TrackedTrailer struct {
	Trailer
	GPSCoordinates    []GPSCoordinate    `json:"gpsCoordinates"`
	Speed             float64            `json:"speed"`
	Heading           float64            `json:"heading"`
	EstimatedRoute    []RoutePoint       `json:"estimatedRoute"`
	TrafficConditions []TrafficCondition `json:"trafficConditions"`
}

type RouteData struct {
	TrailerID         string     `json:"trailerId"`
	Origin            Location   `json:"origin"`
	Destination       Location   `json:"destination"`
	Waypoints         []Location `json:"waypoints"`
	EstimatedDuration int        `json:"estimatedDuration"`
	ActualDuration    int        `json:"actualDuration,omitempty"`
	TrafficDelay      int        `json:"trafficDelay"`
}

type LocationTrackingData struct {
	Trailers        []TrackedTrailer `json:"trailers"`
	Routes          []RouteData      `json:"routes"`
	RealTimeUpdates bool             `json:"realTimeUpdates"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// Route returns the route recorded for the trailer.
func (l LocationTrackingData) Route(trailerID string) (RouteData, bool) {
	for _, r := range l.Routes {
		if r.TrailerID == trailerID {
			return r, true
		}
	}
	return RouteData{}, false
}
