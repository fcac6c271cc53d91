package extractentities

import "supplychain-assistant/internal/fixtures"

// Config lists the identifiers the extractor recognizes without a prefix.
type Config struct {
	KnownFacilities []string
	KnownVendors    []string
}

// LoadConfig collects known facilities and vendor names from the fixture store.
func LoadConfig(store *fixtures.Store) *Config {
	seen := make(map[string]bool)
	var facilities []string
	for _, group := range [][]string{store.FacilityIDs(), store.CapacityFacilities(), store.InboundFacilities()} {
		for _, id := range group {
			if !seen[id] {
				seen[id] = true
				facilities = append(facilities, id)
			}
		}
	}

	return &Config{
		KnownFacilities: facilities,
		KnownVendors:    store.VendorNames(),
	}
}
