// Package fixtures holds the static supply-chain data set the assistant answers from.
package fixtures

import (
	"time"

	"supplychain-assistant/internal/models"
)

// Store is read-only after construction. Slice accessors return a fresh
// top-level slice so callers may sort it; nested slices are shared and must
// not be modified.
type Store struct {
	anchor time.Time

	trailers       []models.Trailer
	vendors        []models.VendorPerformance
	inventory      map[string]models.InventoryItem
	capacity       map[string]models.CapacityInfo
	capacityOrder  []string
	facilities     []models.Facility
	inventoryRisk  []models.InventoryRisk
	purchaseOrders []models.PurchaseOrder
	dashboard      models.LogisticsDashboard
	milestones     []models.ShipmentMilestones
	inbound        map[string]models.FCInboundData
	inboundOrder   []string
	vendorTrends   []models.VendorTrendData
	tracking       models.LocationTrackingData
	actions        []models.InteractiveAction
}

// NewStore builds the data set with every relative timestamp computed from anchor.
func NewStore(anchor time.Time) *Store {
	s := &Store{anchor: anchor}
	s.trailers = buildTrailers(anchor)
	s.vendors = buildVendors()
	s.inventory = buildInventory()
	s.capacity, s.capacityOrder = buildCapacity()
	s.facilities = buildFacilities()
	s.inventoryRisk = buildInventoryRisk()
	s.purchaseOrders = buildPurchaseOrders()
	s.dashboard = buildDashboard(s.trailers)
	s.milestones = buildMilestones()
	s.inbound, s.inboundOrder = buildInbound(anchor, s.trailers)
	s.vendorTrends = buildVendorTrends(s.vendors)
	s.tracking = buildTracking(anchor, s.trailers)
	s.actions = buildActions()
	return s
}

// Now is the reference time every relative value was computed from.
func (s *Store) Now() time.Time {
	return s.anchor
}

func (s *Store) Trailers() []models.Trailer {
	return append([]models.Trailer(nil), s.trailers...)
}

func (s *Store) Trailer(id string) (models.Trailer, bool) {
	for _, t := range s.trailers {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trailer{}, false
}

// TrailerIDs returns every known trailer id in fixture order.
func (s *Store) TrailerIDs() []string {
	ids := make([]string, 0, len(s.trailers))
	for _, t := range s.trailers {
		ids = append(ids, t.ID)
	}
	return ids
}

func (s *Store) Vendors() []models.VendorPerformance {
	return append([]models.VendorPerformance(nil), s.vendors...)
}

// VendorNames returns vendor display names in fixture order.
func (s *Store) VendorNames() []string {
	names := make([]string, 0, len(s.vendors))
	for _, v := range s.vendors {
		names = append(names, v.VendorName)
	}
	return names
}

func (s *Store) Inventory(asin string) (models.InventoryItem, bool) {
	item, ok := s.inventory[asin]
	return item, ok
}

func (s *Store) Capacity(fc string) (models.CapacityInfo, bool) {
	info, ok := s.capacity[fc]
	return info, ok
}

// CapacityFacilities lists the facilities with dock capacity data.
func (s *Store) CapacityFacilities() []string {
	return append([]string(nil), s.capacityOrder...)
}

func (s *Store) Facilities() []models.Facility {
	return append([]models.Facility(nil), s.facilities...)
}

// FacilityIDs returns the fulfillment center identifiers.
func (s *Store) FacilityIDs() []string {
	var ids []string
	for _, f := range s.facilities {
		if f.Type == "fulfillment-center" {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func (s *Store) InventoryRisk() []models.InventoryRisk {
	return append([]models.InventoryRisk(nil), s.inventoryRisk...)
}

func (s *Store) PurchaseOrders() []models.PurchaseOrder {
	return append([]models.PurchaseOrder(nil), s.purchaseOrders...)
}

func (s *Store) PurchaseOrder(id string) (models.PurchaseOrder, bool) {
	for _, po := range s.purchaseOrders {
		if po.ID == id {
			return po, true
		}
	}
	return models.PurchaseOrder{}, false
}

func (s *Store) Dashboard() models.LogisticsDashboard {
	return s.dashboard
}

// Milestones returns the milestone set recorded for the purchase order.
func (s *Store) Milestones(po string) (models.ShipmentMilestones, bool) {
	for _, m := range s.milestones {
		if m.POID == po {
			return m, true
		}
	}
	return models.ShipmentMilestones{}, false
}

// DefaultMilestones is the first recorded milestone set.
func (s *Store) DefaultMilestones() models.ShipmentMilestones {
	return s.milestones[0]
}

func (s *Store) Inbound(fc string) (models.FCInboundData, bool) {
	data, ok := s.inbound[fc]
	return data, ok
}

// InboundFacilities lists the facilities with yard and dock data.
func (s *Store) InboundFacilities() []string {
	return append([]string(nil), s.inboundOrder...)
}

// VendorTrend finds trend data whose vendor name contains name, ignoring case.
func (s *Store) VendorTrend(name string) (models.VendorTrendData, bool) {
	for _, td := range s.vendorTrends {
		if containsFold(td.Vendor.VendorName, name) {
			return td, true
		}
	}
	return models.VendorTrendData{}, false
}

func (s *Store) Tracking() models.LocationTrackingData {
	return s.tracking
}

// Actions returns the actions with the given ids, in argument order.
// Unknown ids are skipped.
func (s *Store) Actions(ids ...string) []models.InteractiveAction {
	var out []models.InteractiveAction
	for _, id := range ids {
		for _, a := range s.actions {
			if a.ID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// Timeline builds the procure-to-stow journey for an ASIN.
func (s *Store) Timeline(asin string) []models.TimelineEvent {
	return buildTimeline(s.anchor, asin)
}
