// internal/models/response.go
package models

// QueryResponse is produced once per query. ContextDelta holds only the slots
// this turn established; the caller merges it.
type QueryResponse struct {
	Intent             Intent                   `json:"intent"`
	Message            string                   `json:"message"`
	Visualization      *VisualizationDescriptor `json:"visualization,omitempty"`
	SuggestedFollowUps []string                 `json:"suggestedFollowUps"`
	ContextDelta       *ConversationContext     `json:"contextDelta,omitempty"`
}
