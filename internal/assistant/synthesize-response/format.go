package synthesizeresponse

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"supplychain-assistant/internal/models"
)

const bullet = "• "

// average returns false for an empty input instead of NaN.
func average(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// percent rounds part/total*100, returning false when total is not positive.
func percent(part, total int) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	return int(math.Round(float64(part) / float64(total) * 100)), true
}

func percentText(part, total int) string {
	if p, ok := percent(part, total); ok {
		return fmt.Sprintf("%d%%", p)
	}
	return insufficientData
}

// hoursUntil rounds the signed distance from now to t.
func hoursUntil(now, t time.Time) int {
	return int(math.Round(t.Sub(now).Hours()))
}

func cutScores(contents []models.TrailerContent) []float64 {
	out := make([]float64, 0, len(contents))
	for _, c := range contents {
		out = append(out, float64(c.CutScore))
	}
	return out
}

func highPriorityContents(t models.Trailer) []models.TrailerContent {
	var out []models.TrailerContent
	for _, c := range t.Contents {
		if c.Priority == models.PriorityHigh {
			out = append(out, c)
		}
	}
	return out
}

func unitsOf(contents []models.TrailerContent) int {
	total := 0
	for _, c := range contents {
		total += c.Quantity
	}
	return total
}

// contentsLabel names the single category a trailer carries, or "Mixed".
func contentsLabel(t models.Trailer) string {
	category := ""
	for _, c := range t.Contents {
		if category == "" {
			category = c.Category
		} else if c.Category != category {
			return fmt.Sprintf("Mixed (%d ASINs)", len(t.Contents))
		}
	}
	if category == "" {
		return "Empty"
	}
	return fmt.Sprintf("%s (%d ASINs)", category, len(t.Contents))
}

func dollars(v float64) string {
	return message.NewPrinter(language.English).Sprintf("$%d", int64(math.Round(v)))
}

// titleCase turns "in-transit" into "In Transit".
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

func clock(t time.Time) string {
	return t.UTC().Format("15:04 UTC")
}

func day(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

func stamp(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006 15:04 UTC")
}

// eta describes an arrival relative to now.
func eta(now, t time.Time) string {
	h := hoursUntil(now, t)
	switch {
	case h > 1:
		return fmt.Sprintf("%s (in %d hours)", clock(t), h)
	case h == 1:
		return fmt.Sprintf("%s (in 1 hour)", clock(t))
	case h == 0:
		return fmt.Sprintf("%s (within the hour)", clock(t))
	}
	return fmt.Sprintf("%s (%d hours ago)", clock(t), -h)
}

func signed(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%g", v)
	}
	return fmt.Sprintf("%g", v)
}

func arrow(v float64) string {
	switch {
	case v > 0:
		return "↗️"
	case v < 0:
		return "↘️"
	}
	return "➡️"
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}

// sections joins non-empty blocks with a blank line.
func sections(blocks ...string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if b = strings.TrimRight(b, "\n"); b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// lines joins non-empty lines.
func lines(ls ...string) string {
	kept := ls[:0:0]
	for _, l := range ls {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
