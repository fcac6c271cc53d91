package synthesizeresponse

import (
	"fmt"
	"strings"

	"supplychain-assistant/internal/models"
)

// place renders "Address (Name)", or whichever half is present.
func place(l models.Location) string {
	switch {
	case l.Address != "" && l.Name != "":
		return fmt.Sprintf("%s (%s)", l.Address, l.Name)
	case l.Address != "":
		return l.Address
	}
	return l.Name
}

func (h *Handler) routeLookup(req Request) models.QueryResponse {
	id, _ := h.resolve(req, models.EntityTrailer)
	t, ok := h.catalog.Trailer(id)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("I couldn't find trailer %s. Available trailers: %s", id, joinIDs(h.catalog.TrailerIDs())),
			SuggestedFollowUps: []string{
				"Show me the route for trailer " + h.config.Defaults.Trailer,
				"Which shipments are experiencing delays?",
			},
		}
	}

	now := h.catalog.Now()
	status := lines(
		"**Current Status:** "+titleCase(string(t.Status)),
		"**Carrier:** "+t.Carrier,
		"**Current Location:** "+t.CurrentLocation.Address,
		"**Destination:** "+t.Destination,
		"**ETA:** "+eta(now, t.ETA),
	)

	routeInfo := "**Route Information:** no planned route is on record for this trailer."
	if route, ok := h.catalog.Tracking().Route(t.ID); ok {
		stops := []string{"**Route Information:**", bullet + "Origin: " + place(route.Origin)}
		for _, w := range route.Waypoints {
			stops = append(stops, bullet+"Waypoint: "+place(w))
		}
		stops = append(stops,
			bullet+"Current: "+t.CurrentLocation.Address,
			bullet+"Destination: "+place(route.Destination),
			fmt.Sprintf("%sPlanned Duration: %d minutes | Traffic Delay: +%d minutes", bullet, route.EstimatedDuration, route.TrafficDelay),
		)
		routeInfo = lines(stops...)
	}

	delay := ""
	if t.Status == models.TrailerDelayed && t.DelayReason != "" {
		delay = "**Delay Reason:** " + t.DelayReason
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Route details for Trailer %s:", t.ID),
			status,
			routeInfo,
			delay,
			"Would you like me to notify the receiving team of the updated arrival time?",
		),
		Visualization: models.NewVisualization(
			models.NetworkMapPayload{t},
			"Route for Trailer "+t.ID,
			"Current position and planned route to "+t.Destination,
		),
		SuggestedFollowUps: []string{
			"What's the traffic situation on this route?",
			fmt.Sprintf("Notify %s receiving team of ETA", t.Destination),
			"Show me other trailers on similar routes",
		},
		ContextDelta: &models.ConversationContext{TrailerID: t.ID},
	}
}

func (h *Handler) locationLookup(req Request) models.QueryResponse {
	asin, _ := h.resolve(req, models.EntityASIN)
	now := h.catalog.Now()

	var carrying []models.Trailer
	var blocks []string
	for _, t := range h.catalog.Trailers() {
		c, ok := t.Carries(asin)
		if !ok {
			continue
		}
		carrying = append(carrying, t)
		blocks = append(blocks, lines(
			fmt.Sprintf("**Trailer %s** - %s", t.ID, t.Carrier),
			"  "+bullet+"Status: "+titleCase(string(t.Status)),
			"  "+bullet+"Current Location: "+t.CurrentLocation.Address,
			"  "+bullet+"Destination: "+t.Destination,
			"  "+bullet+"ETA: "+eta(now, t.ETA),
			fmt.Sprintf("  %sQuantity: %d units (%s priority)", bullet, c.Quantity, c.Priority),
		))
	}

	if len(carrying) == 0 {
		return models.QueryResponse{
			Message: fmt.Sprintf("No trailers are currently carrying ASIN %s.", asin),
			SuggestedFollowUps: []string{
				fmt.Sprintf("Track ASIN %s across all open POs", asin),
				"Which trailers contain high-priority items?",
			},
		}
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Found %s carrying ASIN %s:", plural(len(carrying), "trailer"), asin),
			strings.Join(blocks, "\n\n"),
		),
		Visualization: models.NewVisualization(
			models.NetworkMapPayload(carrying),
			"Trailers Carrying ASIN "+asin,
			"Current locations of every trailer with this ASIN on board",
		),
		SuggestedFollowUps: []string{
			"Show me the route for trailer " + carrying[0].ID,
			"Which trailer will arrive first?",
			"Are there any delivery risks?",
		},
		ContextDelta: &models.ConversationContext{ASIN: asin},
	}
}

func (h *Handler) realTimeTracking(_ Request) models.QueryResponse {
	data := h.catalog.Tracking()

	speeds := make([]float64, 0, len(data.Trailers))
	var trailers, traffic []string
	for _, tt := range data.Trailers {
		speeds = append(speeds, tt.Speed)

		position := "no GPS fix"
		if n := len(tt.GPSCoordinates); n > 0 {
			fix := tt.GPSCoordinates[n-1]
			position = fmt.Sprintf("%.4f, %.4f (±%gm)", fix.Lat, fix.Lng, fix.Accuracy)
		}
		trailers = append(trailers, lines(
			fmt.Sprintf("**%s** - %s", tt.ID, tt.Carrier),
			fmt.Sprintf("  %sSpeed: %g mph | Heading: %g°", bullet, tt.Speed, tt.Heading),
			"  "+bullet+"Position: "+position,
			"  "+bullet+"Destination: "+tt.Destination,
		))

		for _, c := range tt.TrafficConditions {
			traffic = append(traffic, fmt.Sprintf("%s%s (%s): +%d min, %s", bullet, c.Segment, c.Condition, c.Delay, c.Description))
		}
	}

	avgSpeed := insufficientData
	if avg, ok := average(speeds); ok {
		avgSpeed = fmt.Sprintf("%.1f mph", avg)
	}

	totalDelay := 0
	var routes []string
	for _, r := range data.Routes {
		totalDelay += r.TrafficDelay
		actual := "In progress"
		if r.ActualDuration > 0 {
			actual = fmt.Sprintf("%dmin", r.ActualDuration)
		}
		routes = append(routes, lines(
			fmt.Sprintf("%s**%s**: %s → %s", bullet, r.TrailerID, r.Origin.Name, r.Destination.Name),
			fmt.Sprintf("    Estimated: %dmin | Actual: %s", r.EstimatedDuration, actual),
			fmt.Sprintf("    Traffic Impact: +%dmin", r.TrafficDelay),
		))
	}

	live := "🔴 Offline"
	if data.RealTimeUpdates {
		live = "🟢 Active"
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Real-time tracking for %s:", plural(len(data.Trailers), "trailer")),
			lines(
				"**Fleet Overview:**",
				bullet+"Average Speed: "+avgSpeed,
				fmt.Sprintf("%sTotal Traffic Delay: %d minutes", bullet, totalDelay),
				bullet+"Live Updates: "+live,
				bullet+"Last Updated: "+clock(data.LastUpdated),
			),
			strings.Join(trailers, "\n\n"),
			lines(append([]string{"**Traffic Conditions:**"}, traffic...)...),
			lines(append([]string{"**Route Analysis:**"}, routes...)...),
		),
		Visualization: models.NewVisualization(
			models.RealTimeLocationPayload(data),
			"Real-Time Trailer Tracking",
			"Live GPS positions, routes and traffic conditions",
			h.catalog.Actions("notify-receiving", "redirect-trailer")...,
		),
		SuggestedFollowUps: []string{
			"Which trailers are affected by traffic?",
			"Show me alternative routes",
			"Notify receiving teams of updated ETAs",
		},
	}
}

func (h *Handler) logisticsDashboard(_ Request) models.QueryResponse {
	d := h.catalog.Dashboard()

	metric := func(label string, m models.MetricValue) string {
		dir := "↘️"
		if m.Trend.Direction == "up" {
			dir = "↗️"
		}
		return fmt.Sprintf("%s%s: %d %s %d%% %s", bullet, label, m.Value, dir, m.Trend.Percentage, m.Trend.Period)
	}

	status := []string{fmt.Sprintf("**Trailer Status (%d total):**", d.TrailerStatus.Total)}
	for _, s := range models.TrailerStatuses() {
		status = append(status, fmt.Sprintf("%s%s: %d", bullet, titleCase(string(s)), d.TrailerStatus.ByStatus[s]))
	}

	recent := []string{"**Recent Shipments:**"}
	for _, s := range d.Shipments {
		recent = append(recent, fmt.Sprintf("%s%s %s - %s (%s)", bullet, s.ShippingID, s.CustomerName, s.Location, s.Status))
	}

	activity := "**Activity:** " + insufficientData
	if n := len(d.ActivityData); n > 0 {
		values := make([]float64, 0, n)
		for _, p := range d.ActivityData {
			values = append(values, float64(p.Value))
		}
		avg, _ := average(values)
		activity = fmt.Sprintf("**Activity:** %d data points from %s to %s, averaging %.0f shipments per day",
			n, d.ActivityData[0].Date, d.ActivityData[n-1].Date, avg)
	}

	return models.QueryResponse{
		Message: sections(
			"Here's your logistics overview:",
			lines(
				"**Key Metrics:**",
				metric("Total Shipments", d.Metrics.TotalShipments),
				metric("Completed", d.Metrics.Completed),
				metric("Pending", d.Metrics.Pending),
				metric("Delayed", d.Metrics.Delayed),
			),
			lines(status...),
			lines(recent...),
			activity,
		),
		Visualization: models.NewVisualization(
			models.LogisticsDashboardPayload(d),
			"Logistics Dashboard",
			"Shipment metrics, activity trend and trailer status overview",
		),
		SuggestedFollowUps: []string{
			"Show me the delayed shipments",
			"Which trailers need priority unloading?",
			"What's the current yard capacity?",
		},
	}
}
