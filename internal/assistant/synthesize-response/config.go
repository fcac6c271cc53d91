package synthesizeresponse

import "supplychain-assistant/internal/common/config"

// Defaults fill slots that neither the query nor the context supplies.
type Defaults struct {
	ASIN          string
	Facility      string
	Trailer       string
	PurchaseOrder string
	Vendor        string
}

type Config struct {
	Defaults Defaults

	// ComparisonSize caps the vendor comparison ranking.
	ComparisonSize int
	// ComplianceBenchmark is the industry compliance percentage vendors are measured against.
	ComplianceBenchmark int
}

func LoadConfig(engine config.EngineConfig) *Config {
	return &Config{
		Defaults: Defaults{
			ASIN:          engine.DefaultASIN,
			Facility:      engine.DefaultFacility,
			Trailer:       engine.DefaultTrailer,
			PurchaseOrder: engine.DefaultPurchaseOrder,
			Vendor:        engine.DefaultVendor,
		},
		ComparisonSize:      5,
		ComplianceBenchmark: 90,
	}
}
