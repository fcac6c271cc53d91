// internal/models/visualization.go
package models

// VisualizationType is the closed vocabulary shared with the rendering layer.
type VisualizationType string

const (
	VisualizationNetworkMap          VisualizationType = "network-map"
	VisualizationTimeline            VisualizationType = "timeline"
	VisualizationComplianceDashboard VisualizationType = "compliance-dashboard"
	VisualizationTrailerYard         VisualizationType = "trailer-yard"
	VisualizationLogisticsDashboard  VisualizationType = "logistics-dashboard"
	VisualizationMilestoneTimeline   VisualizationType = "milestone-timeline"
	VisualizationFCInboundDashboard  VisualizationType = "fc-inbound-dashboard"
	VisualizationVendorTrending      VisualizationType = "vendor-trending"
	VisualizationRealTimeLocation    VisualizationType = "real-time-location"
)

// VisualizationTypes lists every type a renderer must handle.
func VisualizationTypes() []VisualizationType {
	return []VisualizationType{
		VisualizationNetworkMap, VisualizationTimeline, VisualizationComplianceDashboard,
		VisualizationTrailerYard, VisualizationLogisticsDashboard, VisualizationMilestoneTimeline,
		VisualizationFCInboundDashboard, VisualizationVendorTrending, VisualizationRealTimeLocation,
	}
}

// VisualizationPayload is implemented only by the payload types below, one per
// VisualizationType.
type VisualizationPayload interface {
	VisualizationType() VisualizationType
}

type (
	TrailerYardPayload         []Trailer
	NetworkMapPayload          []Trailer
	TimelinePayload            []TimelineEvent
	ComplianceDashboardPayload []VendorPerformance
	LogisticsDashboardPayload  LogisticsDashboard
	MilestoneTimelinePayload   ShipmentMilestones
	FCInboundDashboardPayload  FCInboundData
	VendorTrendingPayload      VendorTrendData
	RealTimeLocationPayload    LocationTrackingData
)

func (TrailerYardPayload) VisualizationType() VisualizationType { return VisualizationTrailerYard }
func (NetworkMapPayload) VisualizationType() VisualizationType  { return VisualizationNetworkMap }
func (TimelinePayload) VisualizationType() VisualizationType    { return VisualizationTimeline }
func (ComplianceDashboardPayload) VisualizationType() VisualizationType {
	return VisualizationComplianceDashboard
}
func (LogisticsDashboardPayload) VisualizationType() VisualizationType {
	return VisualizationLogisticsDashboard
}
func (MilestoneTimelinePayload) VisualizationType() VisualizationType {
	return VisualizationMilestoneTimeline
}
func (FCInboundDashboardPayload) VisualizationType() VisualizationType {
	return VisualizationFCInboundDashboard
}
func (VendorTrendingPayload) VisualizationType() VisualizationType {
	return VisualizationVendorTrending
}
func (RealTimeLocationPayload) VisualizationType() VisualizationType {
	return VisualizationRealTimeLocation
}

type ActionClass string

const (
	ActionPrimary   ActionClass = "primary"
	ActionSecondary ActionClass = "secondary"
	ActionWarning   ActionClass = "warning"
	ActionSuccess   ActionClass = "success"
)

// InteractiveAction is advertised to the UI; the engine never executes it.
type InteractiveAction struct {
	ID                   string                 `json:"id"`
	Label                string                 `json:"label"`
	Type                 ActionClass            `json:"type"`
	Handler              string                 `json:"handler,omitempty"`
	RequiresConfirmation bool                   `json:"requiresConfirmation"`
	ConfirmationMessage  string                 `json:"confirmationMessage,omitempty"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
}

type VisualizationDescriptor struct {
	Type               VisualizationType    `json:"type"`
	Payload            VisualizationPayload `json:"payload"`
	Title              string               `json:"title"`
	Description        string               `json:"description,omitempty"`
	InteractiveActions []InteractiveAction  `json:"interactiveActions,omitempty"`
}

// NewVisualization derives the descriptor type from the payload so the two
// can never disagree.
func NewVisualization(payload VisualizationPayload, title, description string, actions ...InteractiveAction) *VisualizationDescriptor {
	return &VisualizationDescriptor{
		Type:               payload.VisualizationType(),
		Payload:            payload,
		Title:              title,
		Description:        description,
		InteractiveActions: actions,
	}
}
