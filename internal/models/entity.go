package models

type EntityKind string

const (
	EntityASIN     EntityKind = "asin"
	EntityPO       EntityKind = "po"
	EntityTrailer  EntityKind = "trailer"
	EntityFacility EntityKind = "facility"
	EntityVendor   EntityKind = "vendor"
	EntityDate     EntityKind = "date"
	EntityQuantity EntityKind = "quantity"
)

// Span is a half-open byte range into the normalized query text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Entity is a typed token pulled out of a query.
type Entity struct {
	Kind       EntityKind `json:"kind"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
	Span       Span       `json:"span"`
}

// Entities is the extractor output in match order.
type Entities []Entity

// First returns the value of the first entity of the given kind.
func (es Entities) First(kind EntityKind) (string, bool) {
	for _, e := range es {
		if e.Kind == kind {
			return e.Value, true
		}
	}
	return "", false
}

// Count returns how many entities of each kind were extracted.
func (es Entities) Count() map[EntityKind]int {
	counts := make(map[EntityKind]int)
	for _, e := range es {
		counts[e.Kind]++
	}
	return counts
}
