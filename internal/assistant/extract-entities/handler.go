package extractentities

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"supplychain-assistant/internal/models"
)

const TaskType = "extract-entities"

var whitespace = regexp.MustCompile(`\s+`)

// Normalize trims, lowercases and collapses whitespace. Curly apostrophes
// become straight ones so phrase rules can match pasted text.
func Normalize(text string) string {
	text = strings.NewReplacer("’", "'", "‘", "'").Replace(text)
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespace.ReplaceAllString(text, " ")
}

// Handler pulls typed tokens out of normalized query text. It is stateless
// after construction and safe for concurrent use.
type Handler struct {
	recognizers []recognizer
}

func NewHandler(config *Config) *Handler {
	h := &Handler{}

	// Order is the tie-break: an earlier recognizer claims its span first.
	h.recognizers = []recognizer{
		{kind: models.EntityASIN, find: findASINs},
		{kind: models.EntityPO, find: findPOs},
		{kind: models.EntityTrailer, find: findTrailers},
		{kind: models.EntityFacility, find: facilityFinder(config.KnownFacilities)},
		{kind: models.EntityVendor, find: vendorFinder(config.KnownVendors)},
		{kind: models.EntityVendor, find: findVendorPhrases},
		{kind: models.EntityDate, find: findDates},
		{kind: models.EntityQuantity, find: findQuantities},
	}
	return h
}

// Extract never fails. A candidate overlapping one already accepted is dropped.
func (h *Handler) Extract(text string) models.Entities {
	var out models.Entities
	for _, r := range h.recognizers {
		for _, c := range r.find(text) {
			if overlapsAny(out, c.span) {
				continue
			}
			out = append(out, models.Entity{
				Kind:       r.kind,
				Value:      c.value,
				Confidence: c.confidence,
				Span:       c.span,
			})
		}
	}
	return out
}

func overlapsAny(accepted models.Entities, span models.Span) bool {
	for _, e := range accepted {
		if e.Span.Overlaps(span) {
			return true
		}
	}
	return false
}

func findASINs(text string) []candidate {
	var out []candidate
	for _, loc := range asinPattern.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		// Words like "backorders" fit the shape; real ASINs carry a digit.
		if !strings.ContainsAny(token, "0123456789") {
			continue
		}
		out = append(out, candidate{
			value:      strings.ToUpper(token),
			confidence: confidenceExact,
			span:       models.Span{Start: loc[0], End: loc[1]},
		})
	}
	return out
}

func findPOs(text string) []candidate {
	var out []candidate
	for _, m := range poPattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, candidate{
			value:      "PO" + text[m[2]:m[3]],
			confidence: confidenceExact,
			span:       models.Span{Start: m[0], End: m[1]},
		})
	}
	return out
}

func findTrailers(text string) []candidate {
	var out []candidate
	for _, m := range trailerPattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, candidate{
			value:      "T" + text[m[2]:m[3]],
			confidence: confidenceTrailer,
			span:       models.Span{Start: m[0], End: m[1]},
		})
	}
	return out
}

func facilityFinder(known []string) func(string) []candidate {
	bare := make([]*regexp.Regexp, 0, len(known))
	for _, id := range known {
		bare = append(bare, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(id))+`\b`))
	}

	return func(text string) []candidate {
		var out []candidate
		for _, m := range fcPattern.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, candidate{
				value:      strings.ToUpper(text[m[2]:m[3]]),
				confidence: confidenceExact,
				span:       models.Span{Start: m[0], End: m[1]},
			})
		}
		for _, re := range bare {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				out = append(out, candidate{
					value:      strings.ToUpper(text[loc[0]:loc[1]]),
					confidence: confidenceKnown,
					span:       models.Span{Start: loc[0], End: loc[1]},
				})
			}
		}
		sortByStart(out)
		return out
	}
}

type vendorForm struct {
	canonical string
	pattern   *regexp.Regexp
}

// vendorFinder matches the full vendor name first, then the name without its
// corporate suffix ("techsupply" for "TechSupply Corp").
func vendorFinder(names []string) func(string) []candidate {
	var forms []vendorForm
	for _, name := range names {
		lower := strings.ToLower(name)
		forms = append(forms, vendorForm{canonical: name, pattern: phrasePattern(lower)})
		if short := shortVendorName(lower); short != "" && short != lower {
			forms = append(forms, vendorForm{canonical: name, pattern: phrasePattern(short)})
		}
	}

	return func(text string) []candidate {
		var out []candidate
		for _, f := range forms {
			if loc := f.pattern.FindStringIndex(text); loc != nil {
				out = append(out, candidate{
					value:      f.canonical,
					confidence: confidenceKnown,
					span:       models.Span{Start: loc[0], End: loc[1]},
				})
			}
		}
		sortByStart(out)
		return out
	}
}

func phrasePattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func shortVendorName(lower string) string {
	words := strings.Fields(lower)
	for len(words) > 1 && corporateSuffixes[strings.TrimSuffix(words[len(words)-1], ".")] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// findVendorPhrases takes up to three words after "vendor", stopping at the
// first stopword, and title-cases them.
func findVendorPhrases(text string) []candidate {
	var out []candidate
	// A Caser keeps state between calls and must not be shared.
	caser := cases.Title(language.English)
	for _, lead := range vendorLeadPattern.FindAllStringIndex(text, -1) {
		rest := text[lead[1]:]
		words := wordPattern.FindAllStringIndex(rest, 3)

		start, end := -1, -1
		for i, w := range words {
			// Words must be contiguous, separated by single spaces.
			if i > 0 && w[0] != end+1 {
				break
			}
			if vendorStopwords[rest[w[0]:w[1]]] {
				break
			}
			if start < 0 {
				start = w[0]
			}
			end = w[1]
		}
		if start != 0 {
			continue
		}

		out = append(out, candidate{
			value:      caser.String(rest[start:end]),
			confidence: confidenceHeuristic,
			span:       models.Span{Start: lead[1] + start, End: lead[1] + end},
		})
	}
	return out
}

func findDates(text string) []candidate {
	var out []candidate
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, candidate{
				value:      text[loc[0]:loc[1]],
				confidence: confidenceDate,
				span:       models.Span{Start: loc[0], End: loc[1]},
			})
		}
	}
	sortByStart(out)
	return out
}

func findQuantities(text string) []candidate {
	var out []candidate
	for _, re := range []*regexp.Regexp{topPattern, unitsPattern} {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, candidate{
				value:      text[m[2]:m[3]],
				confidence: confidenceQuantity,
				span:       models.Span{Start: m[0], End: m[1]},
			})
		}
	}
	sortByStart(out)
	return out
}

func sortByStart(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].span.Start < cs[j].span.Start
	})
}
