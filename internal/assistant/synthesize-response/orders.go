package synthesizeresponse

import (
	"fmt"
	"sort"
	"strings"

	"supplychain-assistant/internal/models"
)

// rankStockoutRisk orders items by risk level, most severe first. Items with
// the same level keep their input order.
func rankStockoutRisk(items []models.InventoryRisk) []models.InventoryRisk {
	ranked := append([]models.InventoryRisk(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RiskLevel.Rank() > ranked[j].RiskLevel.Rank()
	})
	return ranked
}

// arrival describes where the order's trailer is and when it lands.
func (h *Handler) arrival(po models.PurchaseOrder) (string, bool) {
	t, ok := h.catalog.Trailer(po.TrailerID)
	if !ok {
		return "", false
	}
	s := eta(h.catalog.Now(), t.ETA)
	if t.Status == models.TrailerDelayed && t.DelayReason != "" {
		s += " - delayed: " + t.DelayReason
	}
	return s, true
}

func (h *Handler) asinTracking(req Request) models.QueryResponse {
	asin, _ := h.resolve(req, models.EntityASIN)
	fc, _ := h.resolve(req, models.EntityFacility)

	var blocks []string
	nextTrailer := ""
	for _, po := range h.catalog.PurchaseOrders() {
		line, ok := po.Line(asin)
		if !ok || !po.Open() {
			continue
		}
		if nextTrailer == "" {
			nextTrailer = po.TrailerID
		}

		status := titleCase(po.Status)
		if po.TrailerID != "" {
			status += fmt.Sprintf(" (Trailer %s)", po.TrailerID)
		}
		arrivalLine := bullet + "Planned Delivery: " + day(po.PlannedDate)
		if a, ok := h.arrival(po); ok {
			arrivalLine = bullet + "Expected FC Arrival: " + a
		}

		blocks = append(blocks, lines(
			fmt.Sprintf("**%s** - %s", po.ID, po.Vendor),
			fmt.Sprintf("%sQuantity: %d units", bullet, line.Quantity),
			bullet+"Destination: "+po.Destination,
			bullet+"Current Status: "+status,
			arrivalLine,
		))
	}

	label := "ASIN " + asin
	stock := fmt.Sprintf("**Current Inventory at %s:** not tracked", fc)
	priority := "**Priority Level:** unknown"
	if item, ok := h.catalog.Inventory(asin); ok {
		label += " (" + item.Name + ")"
		stock = fmt.Sprintf("**Current Inventory at %s:** %d units", fc, item.CurrentInventory)
		priority = fmt.Sprintf("**Priority Level:** %s", item.Priority)
	}

	header := fmt.Sprintf("%s is on %s:", label, plural(len(blocks), "open PO"))
	if len(blocks) == 0 {
		header = fmt.Sprintf("No open purchase orders include %s.", label)
	}

	if nextTrailer == "" {
		nextTrailer = h.config.Defaults.Trailer
	}

	return models.QueryResponse{
		Message: sections(
			header,
			strings.Join(blocks, "\n\n"),
			lines(stock, priority),
		),
		Visualization: models.NewVisualization(
			models.TimelinePayload(h.catalog.Timeline(asin)),
			fmt.Sprintf("ASIN %s Journey Timeline", asin),
			"Complete procure-to-stow timeline for this ASIN",
		),
		SuggestedFollowUps: []string{
			fmt.Sprintf("Where is trailer %s right now?", nextTrailer),
			"What caused the delay?",
			"Show me other POs for this ASIN",
		},
		ContextDelta: &models.ConversationContext{ASIN: asin, CurrentFacility: fc},
	}
}

func (h *Handler) poStatus(req Request) models.QueryResponse {
	id, _ := h.resolve(req, models.EntityPO)
	po, ok := h.catalog.PurchaseOrder(id)
	if !ok {
		known := make([]string, 0)
		for _, p := range h.catalog.PurchaseOrders() {
			known = append(known, p.ID)
		}
		return models.QueryResponse{
			Message: fmt.Sprintf("I couldn't find purchase order %s. Known purchase orders: %s", id, joinIDs(known)),
			SuggestedFollowUps: []string{
				fmt.Sprintf("What's the status of %s?", h.config.Defaults.PurchaseOrder),
				"Track ASIN B07X2RJ3L9 across all open POs",
			},
		}
	}

	details := lines(
		"**Purchase Order Details:**",
		bullet+"Vendor: "+po.Vendor,
		fmt.Sprintf("%sTotal Quantity: %d units (%d ASINs)", bullet, po.TotalQuantity(), len(po.Lines)),
		bullet+"Order Value: "+dollars(po.OrderValue),
		bullet+"Created: "+day(po.CreatedAt),
		fmt.Sprintf("%sPriority: %s", bullet, po.Priority),
	)

	current := []string{"**Current Status:** " + titleCase(po.Status)}
	if !po.ShippedAt.IsZero() {
		current = append(current, bullet+"Shipment departed vendor facility: "+day(po.ShippedAt))
	}
	if po.Open() {
		if t, ok := h.catalog.Trailer(po.TrailerID); ok {
			current = append(current, fmt.Sprintf("%sCurrent location: Trailer %s at %s", bullet, t.ID, t.CurrentLocation.Address))
		}
		if a, ok := h.arrival(po); ok {
			current = append(current, bullet+"Expected FC arrival: "+a)
		}
		current = append(current, bullet+"Planned delivery: "+day(po.PlannedDate))
	} else {
		current = append(current, bullet+"Received at "+po.Destination)
	}

	asins := []string{"**ASINs in this PO:**"}
	for _, l := range po.Lines {
		asins = append(asins, fmt.Sprintf("%s%s: %s (%d units)", bullet, l.ASIN, l.Name, l.Quantity))
	}

	resp := models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Status update for %s:", po.ID),
			details,
			lines(current...),
			lines(asins...),
		),
		SuggestedFollowUps: []string{
			fmt.Sprintf("Where is trailer %s right now?", po.TrailerID),
			"What caused the delay?",
			"Show me other POs from " + po.Vendor,
		},
		ContextDelta: &models.ConversationContext{PurchaseOrderID: po.ID, CurrentFacility: po.Destination},
	}
	if po.TrailerID == "" {
		resp.SuggestedFollowUps[0] = fmt.Sprintf("Show me milestones for %s", po.ID)
	}
	if len(po.Lines) > 0 {
		resp.Visualization = models.NewVisualization(
			models.TimelinePayload(h.catalog.Timeline(po.Lines[0].ASIN)),
			po.ID+" Status Timeline",
			"Procure-to-stow progress for this purchase order",
		)
	}
	return resp
}

func (h *Handler) stockoutRisk(_ Request) models.QueryResponse {
	ranked := rankStockoutRisk(h.catalog.InventoryRisk())

	var critical, high []models.InventoryRisk
	lower := 0
	for _, r := range ranked {
		switch r.RiskLevel {
		case models.RiskCritical:
			critical = append(critical, r)
		case models.RiskHigh:
			high = append(high, r)
		default:
			lower++
		}
	}

	group := func(title string, items []models.InventoryRisk) string {
		if len(items) == 0 {
			return ""
		}
		out := []string{"**" + title + ":**"}
		for _, r := range items {
			out = append(out,
				fmt.Sprintf("%s**%s** (%s)", bullet, r.ASIN, r.Name),
				fmt.Sprintf("  Current Stock: %d units | Daily Demand: %d units", r.CurrentStock, r.DailyDemand),
				fmt.Sprintf("  Days of Supply: %g | Reorder Point: %d", r.DaysOfSupply, r.ReorderPoint),
				fmt.Sprintf("  Incoming: %d units", r.IncomingShipments),
			)
		}
		return lines(out...)
	}

	lowerText := ""
	if lower > 0 {
		lowerText = fmt.Sprintf("**Lower Risk:** %s at medium or low risk", plural(lower, "ASIN"))
	}

	var recs []string
	if len(critical) > 0 {
		asins := make([]string, 0, len(critical))
		for _, r := range critical {
			asins = append(asins, r.ASIN)
		}
		recs = append(recs,
			"Expedite incoming shipments for critical items",
			"Consider emergency procurement for "+strings.Join(asins, " and "),
		)
	}
	for _, r := range high {
		recs = append(recs, fmt.Sprintf("Monitor %s closely as it approaches its reorder point", r.ASIN))
	}
	numbered := []string{"**Recommendations:**"}
	for i, r := range recs {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, r))
	}
	if len(recs) == 0 {
		numbered = nil
	}

	header := fmt.Sprintf("Found %s at risk of stockout this week:", plural(len(ranked), "ASIN"))
	if len(ranked) == 0 {
		header = "No ASINs are currently at risk of stockout."
	}

	return models.QueryResponse{
		Message: sections(
			header,
			group("Critical Risk", critical),
			group("High Risk", high),
			lowerText,
			lines(numbered...),
		),
		SuggestedFollowUps: []string{
			"Expedite shipments for critical ASINs",
			"Show me alternative vendors for these items",
			"When will incoming shipments arrive?",
		},
	}
}

func (h *Handler) milestoneTracking(req Request) models.QueryResponse {
	id, _ := h.resolve(req, models.EntityPO)

	ms, ok := h.catalog.Milestones(id)
	if !ok {
		var tracked []string
		for _, po := range h.catalog.PurchaseOrders() {
			if _, ok := h.catalog.Milestones(po.ID); ok {
				tracked = append(tracked, po.ID)
			}
		}
		return models.QueryResponse{
			Message: fmt.Sprintf("No milestone data is recorded for %s. Purchase orders with milestones: %s", id, joinIDs(tracked)),
			SuggestedFollowUps: []string{
				fmt.Sprintf("Show me milestones for %s", h.config.Defaults.PurchaseOrder),
				fmt.Sprintf("What's the status of %s?", id),
			},
		}
	}

	completed, delayed := 0, 0
	variance := 0.0
	blocks := make([]string, 0, len(ms.Milestones))
	for _, m := range ms.Milestones {
		switch m.Status {
		case "completed":
			completed++
		case "delayed":
			delayed++
		}
		variance += m.Variance

		actual := "Not completed"
		if m.ActualDate != nil {
			actual = stamp(*m.ActualDate)
		}
		varianceLine := ""
		if m.Variance != 0 {
			varianceLine = fmt.Sprintf("    Variance: %s hours", signed(m.Variance))
		}
		blocks = append(blocks, lines(
			fmt.Sprintf("%s**%s** (%s)", bullet, m.Name, m.Status),
			"    Planned: "+stamp(m.PlannedDate),
			"    Actual: "+actual,
			varianceLine,
			"    Owner: "+m.Owner,
		))
	}

	impact := "On track for delivery window"
	if delayed > 0 {
		impact = "Delays affecting downstream milestones"
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Milestone tracking for %s:", ms.POID),
			lines(
				"**Progress Summary:**",
				fmt.Sprintf("%sCompleted: %d/%d milestones", bullet, completed, len(ms.Milestones)),
				fmt.Sprintf("%sDelayed: %d", bullet, delayed),
				fmt.Sprintf("%sTotal Variance: %.1f hours", bullet, variance),
				bullet+"Overall Status: "+titleCase(ms.OverallStatus),
			),
			lines(append([]string{"**Milestones:**"}, blocks...)...),
			"**Critical Path Impact:** "+impact,
		),
		Visualization: models.NewVisualization(
			models.MilestoneTimelinePayload(ms),
			"Milestone Tracking - "+ms.POID,
			"Planned against actual milestone dates",
			h.catalog.Actions("expedite-shipment", "create-alert")...,
		),
		SuggestedFollowUps: []string{
			"What's causing the delays?",
			"Expedite the remaining milestones",
			"Notify stakeholders of the delay",
		},
		ContextDelta: &models.ConversationContext{PurchaseOrderID: ms.POID},
	}
}
