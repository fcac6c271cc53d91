package synthesizeresponse

import (
	"fmt"
	"math"

	"supplychain-assistant/internal/models"
)

func (h *Handler) capacityUtilization(req Request) models.QueryResponse {
	fc, _ := h.resolve(req, models.EntityFacility)
	info, ok := h.catalog.Capacity(fc)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have capacity data for FC %s. Available FCs: %s", fc, joinIDs(h.catalog.CapacityFacilities())),
			SuggestedFollowUps: []string{
				"What's the current capacity utilization at FC SEA4?",
				"Show me dock availability at LAX7",
			},
		}
	}

	occupied := info.TotalDocks - info.AvailableDocks
	util, known := percent(occupied, info.TotalDocks)

	utilLine := "**Dock Utilization:** " + insufficientData
	status := ""
	if known {
		utilLine = fmt.Sprintf("**Dock Utilization:** %d%% (%d/%d docks occupied)", util, occupied, info.TotalDocks)
		switch {
		case util > utilizationAlert:
			status = "🔴 **Alert:** Dock capacity is critically high. Consider redirecting non-urgent trailers to a nearby facility."
		case util > utilizationWatch:
			status = "🟡 **Watch:** Utilization is elevated. Prioritize unloading of high CUT score trailers."
		default:
			status = "🟢 **Normal:** Capacity is within normal operating range."
		}
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Current capacity utilization at FC %s:", fc),
			lines(
				utilLine,
				fmt.Sprintf("**Available Docks:** %d", info.AvailableDocks),
				fmt.Sprintf("**Processing Rate:** %d%% of target", info.ProcessingRate),
				fmt.Sprintf("**Queue Length:** %s waiting", plural(info.QueueLength, "trailer")),
				fmt.Sprintf("**Average Unload Time:** %d minutes", info.AverageUnloadTime),
				"**Utilization Trend:** "+titleCase(info.UtilizationTrend),
			),
			status,
		),
		SuggestedFollowUps: []string{
			"Show me the trailer queue for " + fc,
			"Which trailers can be redirected?",
			"What's the forecast for tomorrow?",
		},
		ContextDelta: &models.ConversationContext{CurrentFacility: fc},
	}
}

func (h *Handler) fcInboundDashboard(req Request) models.QueryResponse {
	fc, _ := h.resolve(req, models.EntityFacility)
	data, ok := h.catalog.Inbound(fc)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have inbound data for FC %s. Available FCs: %s", fc, joinIDs(h.catalog.InboundFacilities())),
			SuggestedFollowUps: []string{
				"Show me the FC inbound dashboard for SEA4",
				"What's the current yard capacity at LAX7?",
			},
		}
	}

	docks := data.DocksByStatus()
	cm := data.CapacityMetrics

	dwell := make([]float64, 0, len(data.Trailers))
	highPriority := 0
	for _, t := range data.Trailers {
		dwell = append(dwell, t.DwellTime)
		if t.PriorityScore > yardPriorityCutoff {
			highPriority++
		}
	}

	avgDwell := insufficientData
	var recs []string
	if cm.UtilizationPercentage > inboundUtilizationHigh {
		recs = append(recs, bullet+"⚠️ High utilization - consider redirecting non-critical shipments")
	} else {
		recs = append(recs, bullet+"✅ Normal operations")
	}
	if avg, ok := average(dwell); ok {
		avgDwell = fmt.Sprintf("%.1f hours", avg)
		if avg > longDwellHours {
			recs = append(recs, bullet+"⚡ Long dwell times detected - prioritize unloading")
		}
	}
	if highPriority > 0 {
		recs = append(recs, fmt.Sprintf("%s🎯 %s waiting - assign docks first", bullet, plural(highPriority, "high-priority trailer")))
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("FC %s inbound operations overview:", fc),
			lines(
				"**Dock Status:**",
				fmt.Sprintf("%sAvailable: %d | Occupied: %d | Maintenance: %d", bullet, docks["available"], docks["occupied"], docks["maintenance"]),
				fmt.Sprintf("%sUtilization: %d%%", bullet, cm.UtilizationPercentage),
				fmt.Sprintf("%sAverage Unload Time: %d minutes", bullet, cm.AverageUnloadTime),
			),
			lines(
				"**Yard Overview:**",
				fmt.Sprintf("%sOccupied Spots: %d/%d (%s)", bullet, data.YardMap.OccupiedSpots, data.YardMap.TotalSpots,
					percentText(data.YardMap.OccupiedSpots, data.YardMap.TotalSpots)),
				fmt.Sprintf("%sTrailers in Yard: %d", bullet, len(data.Trailers)),
				fmt.Sprintf("%sQueue Length: %d", bullet, cm.QueueLength),
			),
			lines(
				"**Trailer Priorities:**",
				fmt.Sprintf("%sHigh Priority (score above %d): %d", bullet, yardPriorityCutoff, highPriority),
				bullet+"Average Dwell Time: "+avgDwell,
			),
			lines(append([]string{"**Recommendations:**"}, recs...)...),
		),
		Visualization: models.NewVisualization(
			models.FCInboundDashboardPayload(data),
			fmt.Sprintf("FC %s Inbound Operations Dashboard", fc),
			"Dock status, yard layout and trailer priorities",
			h.catalog.Actions("assign-dock", "notify-receiving", "redirect-trailer")...,
		),
		SuggestedFollowUps: []string{
			"Which trailers need priority unloading?",
			"Show me dock maintenance schedules",
			"What's the current yard capacity?",
		},
		ContextDelta: &models.ConversationContext{CurrentFacility: fc},
	}
}

func (h *Handler) yardCapacity(req Request) models.QueryResponse {
	fc, _ := h.resolve(req, models.EntityFacility)
	data, ok := h.catalog.Inbound(fc)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have yard data for FC %s. Available FCs: %s", fc, joinIDs(h.catalog.InboundFacilities())),
			SuggestedFollowUps: []string{
				"What's the current yard capacity at SEA4?",
				"Show me the FC inbound dashboard",
			},
		}
	}

	yard := data.YardMap
	cm := data.CapacityMetrics
	throughput := int(math.Round(float64(cm.TotalDocks) * float64(cm.ProcessingRate) / 100))

	status := "**Capacity Status:** " + insufficientData
	if util, ok := percent(yard.OccupiedSpots, yard.TotalSpots); ok {
		switch {
		case util > utilizationAlert:
			status = "🔴 **Critical:** The yard is nearly full. Redirect incoming trailers or expedite unloading."
		case util > utilizationWatch:
			status = "🟡 **Warning:** Yard utilization is high. Monitor incoming arrivals closely."
		default:
			status = "🟢 **Normal:** Yard capacity is within normal operating range."
		}
	}

	zones := []string{"**Zone Breakdown:**"}
	for _, z := range yard.Zones {
		zones = append(zones, fmt.Sprintf("%s%s: %d/%d spots occupied", bullet, z.Name, z.OccupiedSpots(), len(z.Spots)))
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Yard capacity overview for %s:", fc),
			lines(
				fmt.Sprintf("**Yard Utilization:** %s (%d/%d spots occupied)", percentText(yard.OccupiedSpots, yard.TotalSpots),
					yard.OccupiedSpots, yard.TotalSpots),
				fmt.Sprintf("**Dock Utilization:** %s (%d/%d docks in use)",
					percentText(cm.TotalDocks-cm.AvailableDocks, cm.TotalDocks), cm.TotalDocks-cm.AvailableDocks, cm.TotalDocks),
				fmt.Sprintf("**Estimated Throughput:** %s per cycle", plural(throughput, "trailer")),
				fmt.Sprintf("**Queue Length:** %d", cm.QueueLength),
			),
			status,
			lines(zones...),
		),
		Visualization: models.NewVisualization(
			models.FCInboundDashboardPayload(data),
			fc+" Yard Capacity Overview",
			"Yard spots, dock usage and zone occupancy",
		),
		SuggestedFollowUps: []string{
			"Which trailers need priority unloading?",
			"Show me the FC inbound dashboard",
			"What's the current capacity utilization?",
		},
		ContextDelta: &models.ConversationContext{CurrentFacility: fc},
	}
}
