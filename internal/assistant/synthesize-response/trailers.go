package synthesizeresponse

import (
	"fmt"
	"sort"
	"strings"

	"supplychain-assistant/internal/models"
)

const defaultTimeframe = "next 24 hours"

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (h *Handler) trailersTo(fc string) []models.Trailer {
	var out []models.Trailer
	for _, t := range h.catalog.Trailers() {
		if t.Destination == fc {
			out = append(out, t)
		}
	}
	return out
}

// destinations lists every facility some trailer is heading to, in fixture order.
func (h *Handler) destinations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range h.catalog.Trailers() {
		if !seen[t.Destination] {
			seen[t.Destination] = true
			out = append(out, t.Destination)
		}
	}
	return out
}

func countStatus(trailers []models.Trailer, status models.TrailerStatus) int {
	n := 0
	for _, t := range trailers {
		if t.Status == status {
			n++
		}
	}
	return n
}

func withStatus(trailers []models.Trailer, status models.TrailerStatus) []models.Trailer {
	var out []models.Trailer
	for _, t := range trailers {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func averageCut(contents []models.TrailerContent) string {
	if avg, ok := average(cutScores(contents)); ok {
		return fmt.Sprintf("%.0f", avg)
	}
	return insufficientData
}

// recommend picks the trailer to unload first: highest priority, then highest
// average CUT score, then earliest in the input.
func recommend(trailers []models.Trailer) (models.Trailer, bool) {
	if len(trailers) == 0 {
		return models.Trailer{}, false
	}
	best := trailers[0]
	bestCut, _ := average(cutScores(best.Contents))
	for _, t := range trailers[1:] {
		cut, _ := average(cutScores(t.Contents))
		w, bw := t.Priority.Weight(), best.Priority.Weight()
		if w > bw || (w == bw && cut > bestCut) {
			best, bestCut = t, cut
		}
	}
	return best, true
}

func (h *Handler) trailerLookup(req Request) models.QueryResponse {
	fc, src := h.resolve(req, models.EntityFacility)
	if src == fromDefault {
		return models.QueryResponse{
			Message: "I can help you track trailers. Please specify the fulfillment center and timeframe you're interested in.",
			SuggestedFollowUps: []string{
				"Show me all trailers heading to FC SEA4 in the next 24 hours",
				"Which trailers are delayed?",
				"What's the current yard capacity?",
			},
		}
	}

	relevant := h.trailersTo(fc)
	if len(relevant) == 0 {
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have any trailers scheduled for FC %s. Facilities with inbound trailers: %s",
				fc, joinIDs(h.destinations())),
			SuggestedFollowUps: []string{
				"Show me all trailers heading to FC SEA4 in the next 24 hours",
				"Which shipments are experiencing delays?",
			},
		}
	}

	timeframe, _ := h.resolve(req, models.EntityDate)
	if timeframe == "" {
		timeframe = defaultTimeframe
	}

	checkedIn := countStatus(relevant, models.TrailerArrived)
	unloading := countStatus(relevant, models.TrailerUnloading)
	enRoute := countStatus(relevant, models.TrailerEnRoute)
	delayed := countStatus(relevant, models.TrailerDelayed)

	breakdown := lines(
		plural(checkedIn, "trailer")+" checked in but not yet unloaded",
		func() string {
			if unloading == 0 {
				return ""
			}
			return plural(unloading, "trailer") + " unloading at the docks"
		}(),
		plural(enRoute, "trailer")+" en route with an on-time status",
		plural(delayed, "trailer")+" en route but delayed",
	)

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("I found %s scheduled to arrive at %s in the %s. Here's the breakdown:",
				plural(len(relevant), "trailer"), fc, timeframe),
			breakdown,
			"Would you like to see details for all trailers or focus on a specific category?",
		),
		Visualization: models.NewVisualization(
			models.TrailerYardPayload(relevant),
			fmt.Sprintf("Trailers for %s - %s", fc, titleCase(timeframe)),
			"Current status of all trailers scheduled to arrive at "+fc,
		),
		SuggestedFollowUps: []string{
			"Show me the delayed trailers",
			"Which trailers need priority unloading?",
			"What are the delay reasons?",
		},
		ContextDelta: &models.ConversationContext{CurrentFacility: fc, Timeframe: timeframe},
	}
}

func (h *Handler) priorityUnloading(req Request) models.QueryResponse {
	fc, src := h.resolve(req, models.EntityFacility)
	scoped := src != fromDefault

	var queue []models.Trailer
	for _, t := range withStatus(h.catalog.Trailers(), models.TrailerArrived) {
		if !scoped || t.Destination == fc {
			queue = append(queue, t)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Priority.Weight() > queue[j].Priority.Weight()
	})

	var delta *models.ConversationContext
	where := "in the yard"
	if scoped {
		delta = &models.ConversationContext{CurrentFacility: fc}
		where = "in the " + fc + " yard"
	}

	if len(queue) == 0 {
		return models.QueryResponse{
			Message: fmt.Sprintf("No trailers are waiting %s for unloading right now.", where),
			SuggestedFollowUps: []string{
				"Which trailers are arriving in the next 24 hours?",
				"What's the current dock availability?",
			},
			ContextDelta: delta,
		}
	}

	var high, medium, low []string
	for _, t := range queue {
		switch t.Priority {
		case models.PriorityHigh:
			high = append(high, fmt.Sprintf("%sTrailer %s - %s (%d ASINs, avg CUT score: %s)",
				bullet, t.ID, t.Carrier, len(t.Contents), averageCut(t.Contents)))
		case models.PriorityMedium:
			medium = append(medium, fmt.Sprintf("%sTrailer %s - %s (%d ASINs)", bullet, t.ID, t.Carrier, len(t.Contents)))
		default:
			low = append(low, fmt.Sprintf("%sTrailer %s - %s (%d ASINs)", bullet, t.ID, t.Carrier, len(t.Contents)))
		}
	}

	group := func(title string, entries []string) string {
		if len(entries) == 0 {
			return ""
		}
		return "**" + title + ":**\n" + strings.Join(entries, "\n")
	}

	first := queue[0].ID
	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Found %s %s requiring priority unloading:", plural(len(queue), "trailer"), where),
			group("High Priority", high),
			group("Medium Priority", medium),
			group("Low Priority", low),
			fmt.Sprintf("Recommendation: Start with %s, then work down the queue by CUT score.", first),
		),
		Visualization: models.NewVisualization(
			models.TrailerYardPayload(queue),
			"Priority Unloading Queue",
			"Trailers sorted by unloading priority based on contents and CUT scores",
		),
		SuggestedFollowUps: []string{
			"Show me contents of trailer " + first,
			"What's the current dock availability?",
			"Assign dock 3 to trailer " + first,
		},
		ContextDelta: delta,
	}
}

func (h *Handler) delayedTrailers(req Request) models.QueryResponse {
	fc, _ := h.resolve(req, models.EntityFacility)
	delayed := withStatus(h.trailersTo(fc), models.TrailerDelayed)

	rec, ok := recommend(delayed)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("None of the trailers heading to %s are delayed right now.", fc),
			SuggestedFollowUps: []string{
				fmt.Sprintf("Show me all trailers heading to FC %s in the next 24 hours", fc),
				"Which shipments are experiencing delays?",
			},
		}
	}

	now := h.catalog.Now()
	rows := make([]string, 0, len(delayed))
	for _, t := range delayed {
		rows = append(rows, fmt.Sprintf("Trailer ID: %s | Carrier: %s | Contents: %s | ETA: %s behind schedule | Reason: %s",
			t.ID, t.Carrier, contentsLabel(t), plural(hoursUntil(now, t.ETA), "hour"), t.DelayReason))
	}

	reason := fmt.Sprintf("it is %s priority with an average CUT score of %s", rec.Priority, averageCut(rec.Contents))
	if short := h.lowStock(rec); short > 0 {
		reason += fmt.Sprintf(", and it carries %s running low on stock at %s", plural(short, "item"), fc)
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Here are the %s:", plural(len(delayed), "delayed trailer")),
			strings.Join(rows, "\n\n"),
			fmt.Sprintf("Based on CUT scores and contents, I recommend prioritizing %s upon arrival: %s. Would you like more details about any of these trailers?",
				rec.ID, reason),
		),
		Visualization: models.NewVisualization(
			models.NetworkMapPayload(delayed),
			"Delayed Trailers - "+fc,
			"Real-time locations of delayed trailers",
		),
		SuggestedFollowUps: []string{
			fmt.Sprintf("What high-demand items are on %s?", rec.ID),
			"Show me the route for " + rec.ID,
			"Notify the receiving team about " + rec.ID,
		},
		ContextDelta: &models.ConversationContext{TrailerID: rec.ID},
	}
}

// lowStock counts high-priority lines whose current inventory is below the
// quantity the trailer carries.
func (h *Handler) lowStock(t models.Trailer) int {
	n := 0
	for _, c := range highPriorityContents(t) {
		if item, ok := h.catalog.Inventory(c.ASIN); ok && item.CurrentInventory < c.Quantity {
			n++
		}
	}
	return n
}

func (h *Handler) highDemandItems(req Request) models.QueryResponse {
	id, src := h.resolve(req, models.EntityTrailer)
	if src == fromDefault {
		return models.QueryResponse{
			Message:            "I need more context about which trailer you're asking about.",
			SuggestedFollowUps: []string{"Show me delayed trailers first"},
		}
	}

	t, ok := h.catalog.Trailer(id)
	if !ok {
		return models.QueryResponse{
			Message:            fmt.Sprintf("I couldn't find trailer %s. Available trailers: %s", id, joinIDs(h.catalog.TrailerIDs())),
			SuggestedFollowUps: []string{"Show me delayed trailers first"},
		}
	}

	items := highPriorityContents(t)
	if len(items) == 0 {
		return models.QueryResponse{
			Message: fmt.Sprintf("Trailer %s has no high-demand items on board.", t.ID),
			SuggestedFollowUps: []string{
				"Which trailers contain high-priority items?",
				"Show me the route for " + t.ID,
			},
			ContextDelta: &models.ConversationContext{TrailerID: t.ID},
		}
	}

	rows := make([]string, 0, len(items))
	for _, c := range items {
		name, stock := "Unknown item", "not tracked"
		if item, ok := h.catalog.Inventory(c.ASIN); ok {
			name, stock = item.Name, fmt.Sprintf("%d units", item.CurrentInventory)
		}
		rows = append(rows, fmt.Sprintf("ASIN %s: %s (%d units) - Current FC inventory: %s", c.ASIN, name, c.Quantity, stock))
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Trailer %s contains the following high-demand items:", t.ID),
			strings.Join(rows, "\n"),
			"These items are flagged as high priority. Would you like me to notify the receiving team about this trailer's contents?",
		),
		SuggestedFollowUps: []string{
			"Notify the receiving team about this trailer",
			"Show me inventory levels for these ASINs",
			"What other trailers have these ASINs?",
		},
		ContextDelta: &models.ConversationContext{TrailerID: t.ID},
	}
}

func (h *Handler) delayedShipments(_ Request) models.QueryResponse {
	delayed := withStatus(h.catalog.Trailers(), models.TrailerDelayed)
	now := h.catalog.Now()

	blocks := make([]string, 0, len(delayed))
	delays := make([]float64, 0, len(delayed))
	totalUnits, highPriority := 0, 0
	for _, t := range delayed {
		hours := hoursUntil(now, t.ETA)
		delays = append(delays, float64(hours))
		totalUnits += t.TotalUnits()
		if t.Priority == models.PriorityHigh {
			highPriority++
		}
		blocks = append(blocks, lines(
			fmt.Sprintf("**Trailer %s** - %s", t.ID, t.Carrier),
			"  "+bullet+"Current Location: "+t.CurrentLocation.Address,
			"  "+bullet+"Destination: "+t.Destination,
			fmt.Sprintf("  %sDelay: %s behind schedule", bullet, plural(hours, "hour")),
			"  "+bullet+"Reason: "+t.DelayReason,
			fmt.Sprintf("  %sContents: %d ASINs (%d units)", bullet, len(t.Contents), t.TotalUnits()),
			fmt.Sprintf("  %sPriority: %s", bullet, t.Priority),
		))
	}

	avgDelay := insufficientData
	if avg, ok := average(delays); ok {
		avgDelay = fmt.Sprintf("%.0f hours", avg)
	}

	impact := lines(
		"**Impact Analysis:**",
		fmt.Sprintf("%sTotal delayed units: %d", bullet, totalUnits),
		fmt.Sprintf("%sHigh-priority shipments affected: %d", bullet, highPriority),
		bullet+"Average delay: "+avgDelay,
	)

	resp := models.QueryResponse{
		SuggestedFollowUps: []string{
			"Show me customer impact for these delays",
			"Which delays can be recovered?",
			"Escalate critical shipments to operations team",
		},
	}

	rec, ok := recommend(delayed)
	if !ok {
		resp.Message = sections("No shipments are currently experiencing delays.", impact)
		return resp
	}

	resp.Message = sections(
		fmt.Sprintf("Found %s currently experiencing delays:", plural(len(delayed), "shipment")),
		strings.Join(blocks, "\n\n"),
		impact,
		lines(
			"**Recommendations:**",
			fmt.Sprintf("1. Prioritize %s (%s, avg CUT score %s)", rec.ID, contentsLabel(rec), averageCut(rec.Contents)),
			"2. Notify customers of potential delivery impacts",
			"3. Consider expedited processing for delayed high-priority items",
		),
	)
	resp.Visualization = models.NewVisualization(
		models.NetworkMapPayload(delayed),
		"All Delayed Shipments",
		"Real-time view of all shipments experiencing delays",
	)
	return resp
}

func (h *Handler) highPriorityItems(_ Request) models.QueryResponse {
	var flagged []models.Trailer
	for _, t := range h.catalog.Trailers() {
		for _, c := range t.Contents {
			if c.Priority == models.PriorityHigh && c.CutScore > highCutScore {
				flagged = append(flagged, t)
				break
			}
		}
	}

	followUps := []string{
		"Assign priority docks to these trailers",
		"Notify receiving team about high-priority items",
		"Show me current inventory levels for these ASINs",
	}
	if len(flagged) == 0 {
		return models.QueryResponse{
			Message:            "No trailers are currently carrying high-priority items.",
			SuggestedFollowUps: followUps,
		}
	}

	type scored struct {
		id  string
		cut float64
	}
	ranking := make([]scored, 0, len(flagged))
	blocks := make([]string, 0, len(flagged))
	totalUnits, electronics := 0, 0
	for _, t := range flagged {
		items := highPriorityContents(t)
		cut, _ := average(cutScores(items))
		ranking = append(ranking, scored{id: t.ID, cut: cut})
		totalUnits += unitsOf(items)

		for _, c := range t.Contents {
			if c.Category == "Electronics" {
				electronics++
				break
			}
		}

		keyItems := make([]string, 0, 2)
		for i, c := range items {
			if i == 2 {
				break
			}
			keyItems = append(keyItems, fmt.Sprintf("%s (%d units)", c.ASIN, c.Quantity))
		}

		blocks = append(blocks, lines(
			fmt.Sprintf("**%s** - %s (%s)", t.ID, t.Carrier, t.Status),
			"  "+bullet+"Location: "+t.CurrentLocation.Address,
			fmt.Sprintf("  %sHigh Priority ASINs: %d", bullet, len(items)),
			"  "+bullet+"Average CUT Score: "+averageCut(items),
			fmt.Sprintf("  %sTotal Units: %d", bullet, unitsOf(items)),
			"  "+bullet+"Key Items: "+strings.Join(keyItems, ", "),
		))
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].cut > ranking[j].cut })
	rank := []string{"**Priority Ranking:**"}
	for i, r := range ranking {
		if i == 3 {
			break
		}
		rank = append(rank, fmt.Sprintf("%d. %s - average CUT score %.0f", i+1, r.id, r.cut))
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Found %s containing high-priority items:", plural(len(flagged), "trailer")),
			strings.Join(blocks, "\n\n"),
			lines(
				"**Summary:**",
				fmt.Sprintf("%sTotal High-Priority Units: %d", bullet, totalUnits),
				fmt.Sprintf("%sCategories: Electronics (%s)", bullet, plural(electronics, "trailer")),
				bullet+"Recommended Action: Prioritize unloading based on CUT scores and inventory levels",
			),
			strings.Join(rank, "\n"),
		),
		Visualization: models.NewVisualization(
			models.TrailerYardPayload(flagged),
			"Trailers with High-Priority Items",
			"Trailers containing high CUT score items and critical inventory",
			h.catalog.Actions("notify-receiving", "assign-dock", "expedite-shipment")...,
		),
		SuggestedFollowUps: followUps,
	}
}
