package synthesizeresponse

import (
	"time"

	"supplychain-assistant/internal/models"
)

// Request is everything a handler may read. Context is the conversation
// context as it stood before this turn; handlers never modify it.
type Request struct {
	Text     string
	Intent   models.Intent
	Entities models.Entities
	Context  models.ConversationContext
	Role     models.Role
}

// Catalog is the read-only data the handlers answer from.
type Catalog interface {
	Now() time.Time
	Trailers() []models.Trailer
	Trailer(id string) (models.Trailer, bool)
	TrailerIDs() []string
	Vendors() []models.VendorPerformance
	Inventory(asin string) (models.InventoryItem, bool)
	InventoryRisk() []models.InventoryRisk
	Capacity(fc string) (models.CapacityInfo, bool)
	CapacityFacilities() []string
	PurchaseOrders() []models.PurchaseOrder
	PurchaseOrder(id string) (models.PurchaseOrder, bool)
	Dashboard() models.LogisticsDashboard
	Milestones(po string) (models.ShipmentMilestones, bool)
	Inbound(fc string) (models.FCInboundData, bool)
	InboundFacilities() []string
	VendorTrend(name string) (models.VendorTrendData, bool)
	Tracking() models.LocationTrackingData
	Actions(ids ...string) []models.InteractiveAction
	Timeline(asin string) []models.TimelineEvent
}

// Logger is the subset of logger.Logger the synthesizer needs.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
}

type intentHandler func(h *Handler, req Request) models.QueryResponse

// source records where a resolved slot value came from.
type source int

const (
	fromEntity source = iota
	fromContext
	fromDefault
)

func (s source) String() string {
	switch s {
	case fromEntity:
		return "entity"
	case fromContext:
		return "context"
	}
	return "default"
}

const insufficientData = "insufficient data"

// Capacity and yard alert bands, in percent.
const (
	utilizationAlert       = 90
	utilizationWatch       = 75
	inboundUtilizationHigh = 85
)

const (
	// Trailers scoring above this are counted as high priority on the inbound dashboard.
	yardPriorityCutoff = 85

	// Content lines at or below this CUT score do not make a trailer high priority.
	highCutScore = 80

	// Average dwell, in hours, above which unloading should be prioritized.
	longDwellHours = 4

	// Decline rates at or beyond this magnitude are high risk.
	severeDeclineRate = 10
)
