// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"supplychain-assistant/internal/models"
)

const Version = "1.0.0"

func LoadRegistry(path string) (*CapabilityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg CapabilityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Save writes the registry as indented JSON.
func (r *CapabilityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Suggestions returns the unrecognized-query prompts for role, or the generic
// list when the role has no profile.
func (r *CapabilityRegistry) Suggestions(role models.Role) []string {
	if p, ok := r.Role(role); ok && len(p.Suggestions) > 0 {
		return append([]string(nil), p.Suggestions...)
	}
	return append([]string(nil), r.GenericSuggestions...)
}

// SampleQueries returns the starter prompts for role.
func (r *CapabilityRegistry) SampleQueries(role models.Role) []string {
	if p, ok := r.Role(role); ok {
		return append([]string(nil), p.SampleQueries...)
	}
	return nil
}

func (r *CapabilityRegistry) Role(role models.Role) (RoleProfile, bool) {
	for _, p := range r.Roles {
		if p.Role == role {
			return p, true
		}
	}
	return RoleProfile{}, false
}

func (r *CapabilityRegistry) Capability(intent models.Intent) (Capability, bool) {
	for _, c := range r.Capabilities {
		if c.Intent == intent {
			return c, true
		}
	}
	return Capability{}, false
}

// Validate checks the registry against the closed intent, role and
// visualization vocabularies.
func (r *CapabilityRegistry) Validate() error {
	knownIntents := make(map[models.Intent]bool)
	for _, i := range models.Intents() {
		knownIntents[i] = true
	}
	knownTypes := make(map[models.VisualizationType]bool)
	for _, t := range models.VisualizationTypes() {
		knownTypes[t] = true
	}

	seen := make(map[models.Intent]bool)
	for _, c := range r.Capabilities {
		if !knownIntents[c.Intent] {
			return fmt.Errorf("capability %q: unknown intent", c.Intent)
		}
		if seen[c.Intent] {
			return fmt.Errorf("capability %q: listed twice", c.Intent)
		}
		seen[c.Intent] = true
		if c.Visualization != "" && !knownTypes[c.Visualization] {
			return fmt.Errorf("capability %q: unknown visualization type %q", c.Intent, c.Visualization)
		}
	}
	for _, i := range models.Intents() {
		if !seen[i] {
			return fmt.Errorf("intent %q has no capability entry", i)
		}
	}

	for _, p := range r.Roles {
		if !p.Role.Valid() {
			return fmt.Errorf("role profile %q: unknown role", p.Role)
		}
	}
	for _, role := range models.Roles() {
		if _, ok := r.Role(role); !ok {
			return fmt.Errorf("role %q has no profile", role)
		}
	}

	if len(r.GenericSuggestions) == 0 {
		return fmt.Errorf("genericSuggestions must not be empty")
	}
	return nil
}
