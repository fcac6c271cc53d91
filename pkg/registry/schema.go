// pkg/registry/schema.go
package registry

import "supplychain-assistant/internal/models"

// CapabilityRegistry describes what the assistant can answer. It is served to
// chat clients; registry-updater exports it for review and editing.
type CapabilityRegistry struct {
	Version            string        `json:"version"`
	LastUpdated        string        `json:"lastUpdated"`
	Capabilities       []Capability  `json:"capabilities"`
	Roles              []RoleProfile `json:"roles"`
	GenericSuggestions []string      `json:"genericSuggestions"`
}

type Capability struct {
	Intent        models.Intent            `json:"intent"`
	DisplayName   string                   `json:"displayName"`
	Description   string                   `json:"description"`
	Category      string                   `json:"category"`
	Visualization models.VisualizationType `json:"visualization,omitempty"`
	ContextSlots  []string                 `json:"contextSlots,omitempty"`
	FollowUpOnly  bool                     `json:"followUpOnly,omitempty"`
	SampleQueries []string                 `json:"sampleQueries,omitempty"`
	Tags          []string                 `json:"tags,omitempty"`
}

// RoleProfile holds the prompts shown to one role. Suggestions answer an
// unrecognized query; SampleQueries seed an empty chat.
type RoleProfile struct {
	Role          models.Role `json:"role"`
	DisplayName   string      `json:"displayName"`
	Suggestions   []string    `json:"suggestions"`
	SampleQueries []string    `json:"sampleQueries"`
}
