package models

// ConversationContext holds the slots established by earlier turns of a chat
// session so later turns can omit them.
type ConversationContext struct {
	CurrentFacility string `json:"currentFacility,omitempty"`
	Timeframe       string `json:"timeframe,omitempty"`
	ASIN            string `json:"asin,omitempty"`
	Vendor          string `json:"vendor,omitempty"`
	PurchaseOrderID string `json:"purchaseOrderId,omitempty"`
	TrailerID       string `json:"trailerId,omitempty"`
}

// Merge returns a copy of c with every non-empty field of delta applied.
// Fields the delta leaves empty keep their current value.
func (c ConversationContext) Merge(delta *ConversationContext) ConversationContext {
	if delta == nil {
		return c
	}
	merged := c
	if delta.CurrentFacility != "" {
		merged.CurrentFacility = delta.CurrentFacility
	}
	if delta.Timeframe != "" {
		merged.Timeframe = delta.Timeframe
	}
	if delta.ASIN != "" {
		merged.ASIN = delta.ASIN
	}
	if delta.Vendor != "" {
		merged.Vendor = delta.Vendor
	}
	if delta.PurchaseOrderID != "" {
		merged.PurchaseOrderID = delta.PurchaseOrderID
	}
	if delta.TrailerID != "" {
		merged.TrailerID = delta.TrailerID
	}
	return merged
}

// IsEmpty reports whether no slot has been established.
func (c ConversationContext) IsEmpty() bool {
	return c == ConversationContext{}
}
