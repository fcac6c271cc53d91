package extractentities

import (
	"regexp"

	"supplychain-assistant/internal/models"
)

const (
	confidenceExact     = 0.95
	confidenceTrailer   = 0.9
	confidenceKnown     = 0.9
	confidenceDate      = 0.8
	confidenceQuantity  = 0.7
	confidenceHeuristic = 0.6
)

// candidate is one raw recognizer hit before overlap resolution.
type candidate struct {
	value      string
	confidence float64
	span       models.Span
}

// recognizer finds every candidate of one kind in normalized text.
type recognizer struct {
	kind models.EntityKind
	find func(text string) []candidate
}

var (
	asinPattern       = regexp.MustCompile(`\bb[0-9a-z]{9}\b`)
	poPattern         = regexp.MustCompile(`\bpo\s*#?(\d+)\b`)
	trailerPattern    = regexp.MustCompile(`\bt(\d{3,})\b`)
	fcPattern         = regexp.MustCompile(`\bfc\s*([a-z]{3}\d{1,2})\b`)
	vendorLeadPattern = regexp.MustCompile(`\bvendor\s+`)
	wordPattern       = regexp.MustCompile(`[a-z0-9&]+(?:['.-][a-z0-9&]+)*`)
	topPattern        = regexp.MustCompile(`\btop\s+(\d+)\b`)
	unitsPattern      = regexp.MustCompile(`\b(\d+)\s+units?\b`)
	datePatterns      = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:next|last|past)\s+\d+\s+(?:hours?|days?|weeks?)\b`),
		regexp.MustCompile(`\b(?:today|tomorrow|yesterday)\b`),
		regexp.MustCompile(`\b(?:this|next|last)\s+week\b`),
		regexp.MustCompile(`\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}\b`),
	}
)

// vendorStopwords end a heuristic vendor phrase.
var vendorStopwords = map[string]bool{
	"for": true, "over": true, "in": true, "on": true, "the": true, "with": true,
	"during": true, "last": true, "past": true, "this": true, "that": true,
	"trending": true, "performance": true, "compliance": true, "analysis": true,
	"trends": true, "by": true, "to": true, "and": true,
}

// corporateSuffixes are dropped to derive the short form of a vendor name.
var corporateSuffixes = map[string]bool{
	"corp": true, "corporation": true, "ltd": true, "inc": true, "co": true, "llc": true,
}
