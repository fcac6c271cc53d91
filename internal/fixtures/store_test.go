package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/models"
)

var anchor = time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Store construction
// =============================================================================

func TestNewStore_RelativeTimes(t *testing.T) {
	s := NewStore(anchor)

	assert.Equal(t, anchor, s.Now())

	tr, ok := s.Trailer("T12345")
	require.True(t, ok)
	assert.Equal(t, anchor.Add(3*time.Hour), tr.ETA)

	arrived, ok := s.Trailer("T56789")
	require.True(t, ok)
	assert.True(t, arrived.ETA.Before(anchor))
	assert.Equal(t, models.TrailerArrived, arrived.Status)
}

func TestNewStore_IsDeterministic(t *testing.T) {
	a := NewStore(anchor)
	b := NewStore(anchor)

	assert.Equal(t, a.Trailers(), b.Trailers())
	assert.Equal(t, a.Tracking(), b.Tracking())
	assert.Equal(t, a.Timeline("B07X2RJ3L9"), b.Timeline("B07X2RJ3L9"))
}

func TestStore_SliceAccessorsReturnCopies(t *testing.T) {
	s := NewStore(anchor)

	trailers := s.Trailers()
	trailers[0], trailers[1] = trailers[1], trailers[0]

	assert.Equal(t, "T12345", s.Trailers()[0].ID)
}

// =============================================================================
// Lookups
// =============================================================================

func TestStore_Lookups(t *testing.T) {
	s := NewStore(anchor)

	tests := []struct {
		name  string
		found func() bool
		want  bool
	}{
		{"known trailer", func() bool { _, ok := s.Trailer("T23456"); return ok }, true},
		{"unknown trailer", func() bool { _, ok := s.Trailer("T00000"); return ok }, false},
		{"known capacity", func() bool { _, ok := s.Capacity("LAX7"); return ok }, true},
		{"unknown capacity", func() bool { _, ok := s.Capacity("ORD3"); return ok }, false},
		{"known po", func() bool { _, ok := s.PurchaseOrder("PO12345"); return ok }, true},
		{"unknown po", func() bool { _, ok := s.PurchaseOrder("PO99999"); return ok }, false},
		{"known inbound", func() bool { _, ok := s.Inbound("SEA4"); return ok }, true},
		{"vendor trend by partial name", func() bool { _, ok := s.VendorTrend("techsupply"); return ok }, true},
		{"unknown vendor trend", func() bool { _, ok := s.VendorTrend("Acme"); return ok }, false},
		{"known milestones", func() bool { _, ok := s.Milestones("PO12345"); return ok }, true},
		{"inventory item", func() bool { _, ok := s.Inventory("B08F7N8LJ9"); return ok }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.found())
		})
	}
}

func TestStore_FacilityIDs(t *testing.T) {
	s := NewStore(anchor)

	assert.Equal(t, []string{"SEA4", "LAX7"}, s.FacilityIDs())
	assert.Equal(t, []string{"SEA4", "LAX7"}, s.CapacityFacilities())
	assert.Equal(t, []string{"SEA4", "LAX7"}, s.InboundFacilities())
}

func TestStore_Actions(t *testing.T) {
	s := NewStore(anchor)

	actions := s.Actions("expedite-shipment", "missing", "create-alert")
	require.Len(t, actions, 2)
	assert.Equal(t, "expedite-shipment", actions[0].ID)
	assert.True(t, actions[0].RequiresConfirmation)
	assert.Equal(t, "create-alert", actions[1].ID)
}

func TestStore_DashboardTrailerSummary(t *testing.T) {
	s := NewStore(anchor)

	summary := s.Dashboard().TrailerStatus
	assert.Equal(t, len(s.Trailers()), summary.Total)
	assert.Equal(t, 3, summary.ByStatus[models.TrailerDelayed])
	assert.Equal(t, 2, summary.ByStatus[models.TrailerArrived])
	assert.Equal(t, 0, summary.ByStatus[models.TrailerUnloading])
}

func TestStore_PurchaseOrderIntegrity(t *testing.T) {
	s := NewStore(anchor)

	po, ok := s.PurchaseOrder("PO12345")
	require.True(t, ok)
	assert.Equal(t, 500, po.TotalQuantity())
	assert.Len(t, po.Lines, 3)
	assert.True(t, po.Open())

	closed, ok := s.PurchaseOrder("PO12340")
	require.True(t, ok)
	assert.False(t, closed.Open())

	for _, po := range s.PurchaseOrders() {
		if po.TrailerID == "" {
			continue
		}
		_, ok := s.Trailer(po.TrailerID)
		assert.True(t, ok, "po %s references unknown trailer %s", po.ID, po.TrailerID)
	}
}

func TestStore_Timeline(t *testing.T) {
	s := NewStore(anchor)

	events := s.Timeline("B08F7N8LJ9")
	require.Len(t, events, 6)
	assert.Contains(t, events[0].Description, "B08F7N8LJ9")
	assert.Equal(t, "delayed", events[4].Status)
	assert.Equal(t, anchor.Add(3*time.Hour), events[4].Timestamp)
}
