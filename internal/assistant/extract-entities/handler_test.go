package extractentities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store := fixtures.NewStore(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	return NewHandler(LoadConfig(store))
}

type found struct {
	Kind  models.EntityKind
	Value string
}

func summarize(es models.Entities) []found {
	var out []found
	for _, e := range es {
		out = append(out, found{Kind: e.Kind, Value: e.Value})
	}
	return out
}

// ==========================
// Normalize
// ==========================

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Show ME   the   Dashboard  ", "show me the dashboard"},
		{"What’s the STATUS of PO12345?", "what's the status of po12345?"},
		{"\tTrack\nASIN  B07X2RJ3L9 ", "track asin b07x2rj3l9"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

// ==========================
// Extract
// ==========================

func TestHandler_Extract(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		query string
		want  []found
	}{
		{
			name:  "asin is uppercased",
			query: "track asin b07x2rj3l9 across all open pos",
			want:  []found{{models.EntityASIN, "B07X2RJ3L9"}},
		},
		{
			name:  "purchase order",
			query: "what's the status of po12345?",
			want:  []found{{models.EntityPO, "PO12345"}},
		},
		{
			name:  "purchase order with hash",
			query: "milestones for po #12346",
			want:  []found{{models.EntityPO, "PO12346"}},
		},
		{
			name:  "trailer",
			query: "show me the route for trailer t12345",
			want:  []found{{models.EntityTrailer, "T12345"}},
		},
		{
			name:  "fc prefixed facility with timeframe",
			query: "show me all trailers heading to fc sea4 in the next 72 hours",
			want: []found{
				{models.EntityFacility, "SEA4"},
				{models.EntityDate, "next 72 hours"},
			},
		},
		{
			name:  "bare known facility",
			query: "what's the yard capacity at lax7",
			want:  []found{{models.EntityFacility, "LAX7"}},
		},
		{
			name:  "unknown facility behind fc prefix",
			query: "what's the current capacity utilization at fc ord3?",
			want:  []found{{models.EntityFacility, "ORD3"}},
		},
		{
			name:  "full vendor name",
			query: "show me delivery window compliance for techsupply corp over the last 6 weeks",
			want: []found{
				{models.EntityVendor, "TechSupply Corp"},
				{models.EntityDate, "last 6 weeks"},
			},
		},
		{
			name:  "vendor short name",
			query: "show me vendor trending for techsupply",
			want:  []found{{models.EntityVendor, "TechSupply Corp"}},
		},
		{
			name:  "heuristic vendor phrase stops at stopword",
			query: "performance for vendor acme widgets over the last quarter",
			want:  []found{{models.EntityVendor, "Acme Widgets"}},
		},
		{
			name:  "heuristic vendor phrase is capped at three words",
			query: "vendor north coast fresh produce",
			want:  []found{{models.EntityVendor, "North Coast Fresh"}},
		},
		{
			name:  "quantity from top n",
			query: "compare top 5 vendors by performance",
			want:  []found{{models.EntityQuantity, "5"}},
		},
		{
			name:  "quantity in units",
			query: "which trailers carry 120 units",
			want:  []found{{models.EntityQuantity, "120"}},
		},
		{
			name:  "asin shaped word without digits is ignored",
			query: "which vendors have backorders",
			want:  nil,
		},
		{
			name:  "several kinds in one query",
			query: "is b08f7n8lj9 from po12345 on t12345 going to sea4 tomorrow",
			want: []found{
				{models.EntityASIN, "B08F7N8LJ9"},
				{models.EntityPO, "PO12345"},
				{models.EntityTrailer, "T12345"},
				{models.EntityFacility, "SEA4"},
				{models.EntityDate, "tomorrow"},
			},
		},
		{
			name:  "nothing to extract",
			query: "hello there",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Extract(tt.query)
			assert.Equal(t, tt.want, summarize(got))
		})
	}
}

func TestHandler_Extract_FirstMatchWins(t *testing.T) {
	h := newTestHandler(t)

	got := h.Extract("where are b07x2rj3l9 and b08f7n8lj9")
	require.Len(t, got, 2)

	asin, ok := got.First(models.EntityASIN)
	require.True(t, ok)
	assert.Equal(t, "B07X2RJ3L9", asin)
}

func TestHandler_Extract_SpansAndConfidence(t *testing.T) {
	h := newTestHandler(t)
	query := "trailers heading to fc sea4 in the next 24 hours"

	got := h.Extract(query)
	require.Len(t, got, 2)

	facility := got[0]
	assert.Equal(t, strings.Index(query, "fc sea4"), facility.Span.Start)
	assert.Equal(t, "fc sea4", query[facility.Span.Start:facility.Span.End])
	assert.Equal(t, 0.95, facility.Confidence)

	date := got[1]
	assert.Equal(t, "next 24 hours", query[date.Span.Start:date.Span.End])
	assert.False(t, facility.Span.Overlaps(date.Span))
}

func TestHandler_Extract_NoOverlappingEntities(t *testing.T) {
	h := newTestHandler(t)

	got := h.Extract("vendor techsupply corp at fc sea4 sea4")
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, got[i].Span.Overlaps(got[j].Span), "%v overlaps %v", got[i], got[j])
		}
	}

	vendor, ok := got.First(models.EntityVendor)
	require.True(t, ok)
	assert.Equal(t, "TechSupply Corp", vendor)
	assert.Equal(t, 2, got.Count()[models.EntityFacility])
}

func TestLoadConfig(t *testing.T) {
	store := fixtures.NewStore(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	cfg := LoadConfig(store)

	assert.ElementsMatch(t, []string{"SEA4", "LAX7"}, cfg.KnownFacilities)
	assert.Contains(t, cfg.KnownVendors, "TechSupply Corp")
}

func BenchmarkHandler_Extract(b *testing.B) {
	store := fixtures.NewStore(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	h := NewHandler(LoadConfig(store))

	for i := 0; i < b.N; i++ {
		h.Extract("show me all trailers heading to fc sea4 in the next 72 hours")
	}
}
