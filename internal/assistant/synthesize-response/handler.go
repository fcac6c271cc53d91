package synthesizeresponse

import "supplychain-assistant/internal/models"

const TaskType = "synthesize-response"

// SuggestionSource supplies the role prompts offered for unrecognized queries.
type SuggestionSource interface {
	Suggestions(role models.Role) []string
}

// Handler builds one QueryResponse per intent from the catalog. It holds no
// per-conversation state and is safe for concurrent use.
type Handler struct {
	config      *Config
	catalog     Catalog
	suggestions SuggestionSource
	logger      Logger
	handlers    map[models.Intent]intentHandler
}

func NewHandler(config *Config, catalog Catalog, suggestions SuggestionSource, log Logger) *Handler {
	return &Handler{
		config:      config,
		catalog:     catalog,
		suggestions: suggestions,
		logger:      log,
		handlers: map[models.Intent]intentHandler{
			models.IntentTrailerLookup:       (*Handler).trailerLookup,
			models.IntentPriorityUnloading:   (*Handler).priorityUnloading,
			models.IntentCapacityUtilization: (*Handler).capacityUtilization,
			models.IntentASINTracking:        (*Handler).asinTracking,
			models.IntentPOStatus:            (*Handler).poStatus,
			models.IntentStockoutRisk:        (*Handler).stockoutRisk,
			models.IntentVendorPerformance:   (*Handler).vendorPerformance,
			models.IntentVendorComparison:    (*Handler).vendorComparison,
			models.IntentVendorDecline:       (*Handler).vendorDecline,
			models.IntentLocationLookup:      (*Handler).locationLookup,
			models.IntentRouteLookup:         (*Handler).routeLookup,
			models.IntentDelayedShipments:    (*Handler).delayedShipments,
			models.IntentMilestoneTracking:   (*Handler).milestoneTracking,
			models.IntentFCInboundDashboard:  (*Handler).fcInboundDashboard,
			models.IntentVendorTrending:      (*Handler).vendorTrending,
			models.IntentRealTimeTracking:    (*Handler).realTimeTracking,
			models.IntentHighPriorityItems:   (*Handler).highPriorityItems,
			models.IntentYardCapacity:        (*Handler).yardCapacity,
			models.IntentLogisticsDashboard:  (*Handler).logisticsDashboard,
			models.IntentDelayedTrailers:     (*Handler).delayedTrailers,
			models.IntentHighDemandItems:     (*Handler).highDemandItems,
			models.IntentUnrecognized:        (*Handler).unrecognized,
		},
	}
}

// Handles reports whether the intent has a dedicated handler.
func (h *Handler) Handles(intent models.Intent) bool {
	_, ok := h.handlers[intent]
	return ok
}

// Synthesize never fails: intents without a handler are answered as unrecognized.
func (h *Handler) Synthesize(req Request) models.QueryResponse {
	fn, ok := h.handlers[req.Intent]
	if !ok {
		req.Intent = models.IntentUnrecognized
		fn = (*Handler).unrecognized
	}

	resp := fn(h, req)
	resp.Intent = req.Intent
	if resp.SuggestedFollowUps == nil {
		resp.SuggestedFollowUps = []string{}
	}
	return resp
}

func (h *Handler) unrecognized(req Request) models.QueryResponse {
	return models.QueryResponse{
		Message:            `I'm not sure how to help with "` + req.Text + `". Here are some things I can help you with based on your role:`,
		SuggestedFollowUps: h.suggestions.Suggestions(req.Role),
	}
}

// resolve picks a slot value from the query, then the context, then the
// configured default.
func (h *Handler) resolve(req Request, kind models.EntityKind) (string, source) {
	if v, ok := req.Entities.First(kind); ok {
		return v, fromEntity
	}

	var fromCtx, fallback string
	switch kind {
	case models.EntityFacility:
		fromCtx, fallback = req.Context.CurrentFacility, h.config.Defaults.Facility
	case models.EntityASIN:
		fromCtx, fallback = req.Context.ASIN, h.config.Defaults.ASIN
	case models.EntityTrailer:
		fromCtx, fallback = req.Context.TrailerID, h.config.Defaults.Trailer
	case models.EntityPO:
		fromCtx, fallback = req.Context.PurchaseOrderID, h.config.Defaults.PurchaseOrder
	case models.EntityVendor:
		fromCtx, fallback = req.Context.Vendor, h.config.Defaults.Vendor
	case models.EntityDate:
		fromCtx = req.Context.Timeframe
	}
	if fromCtx != "" {
		return fromCtx, fromContext
	}

	h.logger.Debug("slot defaulted", map[string]interface{}{
		"intent": req.Intent,
		"kind":   kind,
		"value":  fallback,
	})
	return fallback, fromDefault
}
