package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/models"
)

func TestDefault_Validates(t *testing.T) {
	reg := Default()
	require.NoError(t, reg.Validate())
	assert.Len(t, reg.Capabilities, len(models.Intents()))
}

func TestSuggestions(t *testing.T) {
	reg := Default()

	tests := []struct {
		name  string
		role  models.Role
		first string
	}{
		{"site leader", models.RoleSiteLeader, "Show me all trailers heading to FC SEA4 in the next 72 hours"},
		{"retail employee", models.RoleRetailEmployee, "Track ASIN B07X2RJ3L9 across all open POs"},
		{"vendor performance", models.RoleVendorPerformance, "Show me delivery window compliance for TechSupply Corp"},
		{"ipex team", models.RoleIPEXTeam, "Where are all trailers carrying ASIN B07X2RJ3L9?"},
		{"unknown role falls back", models.Role("warehouse-manager"), "Show me trailer information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Suggestions(tt.role)
			require.Len(t, got, 3)
			assert.Equal(t, tt.first, got[0])
		})
	}
}

func TestSuggestions_ReturnsCopy(t *testing.T) {
	reg := Default()
	got := reg.Suggestions(models.RoleSiteLeader)
	got[0] = "changed"
	assert.NotEqual(t, "changed", reg.Suggestions(models.RoleSiteLeader)[0])
}

func TestSampleQueries(t *testing.T) {
	reg := Default()
	assert.Contains(t, reg.SampleQueries(models.RoleSiteLeader), "Show me the logistics dashboard")
	assert.Nil(t, reg.SampleQueries(models.Role("nobody")))
}

func TestCapability(t *testing.T) {
	reg := Default()

	c, ok := reg.Capability(models.IntentDelayedTrailers)
	require.True(t, ok)
	assert.True(t, c.FollowUpOnly)
	assert.Equal(t, models.VisualizationNetworkMap, c.Visualization)

	_, ok = reg.Capability(models.Intent("weather"))
	assert.False(t, ok)
}

// =============================================================================
// Validate
// =============================================================================

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CapabilityRegistry)
		wantErr string
	}{
		{
			name: "unknown visualization type",
			mutate: func(r *CapabilityRegistry) {
				r.Capabilities[0].Visualization = "pie-chart"
			},
			wantErr: "unknown visualization type",
		},
		{
			name: "missing intent",
			mutate: func(r *CapabilityRegistry) {
				r.Capabilities = r.Capabilities[1:]
			},
			wantErr: "has no capability entry",
		},
		{
			name: "duplicate intent",
			mutate: func(r *CapabilityRegistry) {
				r.Capabilities = append(r.Capabilities, r.Capabilities[0])
			},
			wantErr: "listed twice",
		},
		{
			name: "unknown intent",
			mutate: func(r *CapabilityRegistry) {
				r.Capabilities[0].Intent = "weather"
			},
			wantErr: "unknown intent",
		},
		{
			name: "missing role profile",
			mutate: func(r *CapabilityRegistry) {
				r.Roles = r.Roles[:len(r.Roles)-1]
			},
			wantErr: "has no profile",
		},
		{
			name: "empty generic suggestions",
			mutate: func(r *CapabilityRegistry) {
				r.GenericSuggestions = nil
			},
			wantErr: "genericSuggestions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Default()
			tt.mutate(reg)
			err := reg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveAndLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capability-registry.json")
	require.NoError(t, Default().Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate())
	assert.Equal(t, Default(), loaded)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
