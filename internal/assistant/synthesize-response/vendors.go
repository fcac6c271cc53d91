package synthesizeresponse

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"supplychain-assistant/internal/models"
)

func (h *Handler) findVendor(name string) (models.VendorPerformance, bool) {
	needle := strings.ToLower(name)
	for _, v := range h.catalog.Vendors() {
		if strings.Contains(strings.ToLower(v.VendorName), needle) {
			return v, true
		}
	}
	return models.VendorPerformance{}, false
}

func vendorNames(vendors []models.VendorPerformance) []string {
	names := make([]string, 0, len(vendors))
	for _, v := range vendors {
		names = append(names, v.VendorName)
	}
	return names
}

// rankVendors sorts by compliance, best first; ties keep fixture order.
func rankVendors(vendors []models.VendorPerformance) []models.VendorPerformance {
	ranked := append([]models.VendorPerformance(nil), vendors...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompliancePercentage > ranked[j].CompliancePercentage
	})
	return ranked
}

func badge(rank int, v models.VendorPerformance, benchmark int) string {
	switch {
	case rank == 1:
		return "⭐ Top Performer"
	case v.PerformanceTrend == models.TrendDeclining:
		return "⚠️ Needs Attention"
	case v.CompliancePercentage >= benchmark+2:
		return "✅ Excellent"
	case v.PerformanceTrend == models.TrendImproving && v.CompliancePercentage >= benchmark:
		return "⬆️ Rising Star"
	case v.PerformanceTrend == models.TrendImproving:
		return "⬆️ Getting Better"
	}
	return "➡️ Steady"
}

func (h *Handler) vendorPerformance(req Request) models.QueryResponse {
	name, _ := h.resolve(req, models.EntityVendor)
	v, ok := h.findVendor(name)
	if !ok {
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have performance data for vendor %s. Tracked vendors: %s",
				name, joinIDs(vendorNames(h.catalog.Vendors()))),
			SuggestedFollowUps: []string{
				"Show me delivery window compliance for TechSupply Corp",
				"Compare top 5 vendors by performance",
			},
		}
	}

	benchmark := h.config.ComplianceBenchmark
	weekly := bullet + "Weekly compliance: " + insufficientData
	pattern := ""
	if n := len(v.WeeklyData); n > 0 {
		points := make([]string, 0, n)
		for _, w := range v.WeeklyData {
			points = append(points, fmt.Sprintf("%d%%", w.Compliance))
		}
		weekly = bullet + "Weekly compliance: " + strings.Join(points, " → ")
		change := v.WeeklyData[n-1].Compliance - v.WeeklyData[0].Compliance
		pattern = fmt.Sprintf("%s%s %s points since %s", bullet, arrow(float64(change)), signed(float64(change)), v.WeeklyData[0].Week)
	}

	var recommendation string
	switch {
	case v.PerformanceTrend == models.TrendDeclining:
		recommendation = "Schedule a performance review and agree on a corrective action plan."
	case v.CompliancePercentage < benchmark:
		recommendation = fmt.Sprintf("Compliance is below the %d%% benchmark. Continue monitoring and share weekly scorecards.", benchmark)
	default:
		recommendation = "Performance meets the benchmark. Consider this vendor for additional volume."
	}

	issues := ""
	if v.IssuesSummary != "" {
		issues = "**Known Issues:** " + v.IssuesSummary
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Delivery performance for %s over the last 6 weeks:", v.VendorName),
			lines(
				"**Compliance Summary:**",
				fmt.Sprintf("%sOverall Compliance: %d%% (benchmark %d%%)", bullet, v.CompliancePercentage, benchmark),
				fmt.Sprintf("%sDelivery Window Compliance: %d%%", bullet, v.DeliveryWindowCompliance),
				fmt.Sprintf("%sOn-Time Deliveries: %d/%d (%s)", bullet, v.OnTimeDeliveries, v.TotalShipments,
					percentText(v.OnTimeDeliveries, v.TotalShipments)),
				bullet+"Trend: "+titleCase(string(v.PerformanceTrend)),
			),
			lines("**Weekly Pattern:**", weekly, pattern),
			issues,
			"**Recommendation:** "+recommendation,
		),
		Visualization: models.NewVisualization(
			models.ComplianceDashboardPayload(h.catalog.Vendors()),
			"Vendor Performance Analysis - Last 6 Weeks",
			"Delivery window compliance across tracked vendors",
		),
		SuggestedFollowUps: []string{
			fmt.Sprintf("Show me trending analysis for %s", v.VendorName),
			"Compare top 5 vendors by performance",
			"Which vendors have declining performance trends?",
		},
		ContextDelta: &models.ConversationContext{Vendor: v.VendorName},
	}
}

func (h *Handler) vendorComparison(req Request) models.QueryResponse {
	size := h.config.ComparisonSize
	if q, ok := req.Entities.First(models.EntityQuantity); ok {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			size = n
		}
	}

	ranked := rankVendors(h.catalog.Vendors())
	if len(ranked) == 0 {
		return models.QueryResponse{Message: "No vendor performance data is available."}
	}
	if size < len(ranked) {
		ranked = ranked[:size]
	}

	benchmark := h.config.ComplianceBenchmark
	blocks := make([]string, 0, len(ranked))
	declining := ""
	for i, v := range ranked {
		if declining == "" && v.PerformanceTrend == models.TrendDeclining {
			declining = v.VendorName
		}
		blocks = append(blocks, lines(
			fmt.Sprintf("**%d. %s** - %d%% compliance", i+1, v.VendorName, v.CompliancePercentage),
			fmt.Sprintf("%sDelivery Window: %d%% | On-Time: %d/%d shipments", bullet, v.DeliveryWindowCompliance,
				v.OnTimeDeliveries, v.TotalShipments),
			fmt.Sprintf("%sTrend: %s | Status: %s", bullet, titleCase(string(v.PerformanceTrend)), badge(i+1, v, benchmark)),
		))
	}

	followUps := []string{fmt.Sprintf("Show me %s detailed metrics", ranked[0].VendorName)}
	if declining != "" {
		followUps = append(followUps, fmt.Sprintf("What's causing %s's decline?", declining))
	}
	followUps = append(followUps, "Schedule performance review with bottom performers")

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Top %d vendors by delivery compliance:", len(ranked)),
			strings.Join(blocks, "\n\n"),
			fmt.Sprintf("**Industry Benchmark:** %d%% compliance", benchmark),
		),
		Visualization: models.NewVisualization(
			models.ComplianceDashboardPayload(ranked),
			fmt.Sprintf("Top %d Vendor Performance Comparison", len(ranked)),
			"Vendors ranked by delivery window compliance",
		),
		SuggestedFollowUps: followUps,
	}
}

func (h *Handler) vendorDecline(_ Request) models.QueryResponse {
	var declining []models.VendorPerformance
	for _, v := range h.catalog.Vendors() {
		if v.PerformanceTrend == models.TrendDeclining {
			declining = append(declining, v)
		}
	}

	if len(declining) == 0 {
		return models.QueryResponse{
			Message: "No vendors currently show a declining performance trend.",
			SuggestedFollowUps: []string{
				"Compare top 5 vendors by performance",
				"Show me vendor trending analysis",
			},
		}
	}

	blocks := make([]string, 0, len(declining))
	for _, v := range declining {
		decline := "declining"
		if v.DeclineRate != 0 {
			decline = fmt.Sprintf("↓%g%% decline", math.Abs(v.DeclineRate))
		}

		risk, rec := "Medium", "Monitor weekly and request an improvement plan"
		if math.Abs(v.DeclineRate) >= severeDeclineRate {
			risk, rec = "High", "Escalate to vendor management and identify backup carriers"
		}

		issues := v.IssuesSummary
		if issues == "" {
			issues = "Not reported"
		}

		blocks = append(blocks, lines(
			fmt.Sprintf("**%s** - %d%% compliance (%s)", v.VendorName, v.CompliancePercentage, decline),
			fmt.Sprintf("%sCurrent Performance: %d/%d on-time deliveries (%s)", bullet, v.OnTimeDeliveries, v.TotalShipments,
				percentText(v.OnTimeDeliveries, v.TotalShipments)),
			bullet+"Primary Issues: "+issues,
			bullet+"Recommendation: "+rec,
			bullet+"Risk Level: "+risk,
		))
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Found %s with declining performance trends:", plural(len(declining), "vendor")),
			strings.Join(blocks, "\n\n"),
			lines(
				"**Action Items:**",
				"1. Schedule performance reviews with these vendors",
				"2. Request corrective action plans",
				"3. Evaluate alternative vendors for critical shipments",
			),
		),
		Visualization: models.NewVisualization(
			models.ComplianceDashboardPayload(declining),
			"Vendors with Declining Performance",
			"Compliance of vendors trending downward",
		),
		SuggestedFollowUps: []string{
			"Schedule performance review meetings",
			"Show me alternative vendors",
			"What's the impact on our delivery commitments?",
		},
	}
}

func (h *Handler) vendorTrending(req Request) models.QueryResponse {
	name, _ := h.resolve(req, models.EntityVendor)
	td, ok := h.catalog.VendorTrend(name)
	if !ok {
		var tracked []string
		for _, v := range h.catalog.Vendors() {
			if _, ok := h.catalog.VendorTrend(v.VendorName); ok {
				tracked = append(tracked, v.VendorName)
			}
		}
		return models.QueryResponse{
			Message: fmt.Sprintf("I don't have trend data for vendor %s. Vendors with trend data: %s", name, joinIDs(tracked)),
			SuggestedFollowUps: []string{
				"Show me vendor trending analysis",
				"Compare top 5 vendors by performance",
			},
		}
	}

	v := td.Vendor
	trend := "**Compliance Trend:** " + insufficientData
	var weeks []string
	if n := len(td.TrendData); n > 0 {
		change := td.TrendData[n-1].Compliance - td.TrendData[0].Compliance
		label := "Stable"
		switch {
		case change > 0:
			label = "Improving"
		case change < 0:
			label = "Declining"
		}
		trend = fmt.Sprintf("**Compliance Trend:** %s %s (%s%%)", arrow(change), label, signed(math.Round(change*10)/10))

		start := n - 3
		if start < 0 {
			start = 0
		}
		weeks = append(weeks, "**Recent Weeks:**")
		for _, p := range td.TrendData[start:] {
			weeks = append(weeks, fmt.Sprintf("%sWeek of %s: %g%% compliance, %d/%d on-time, %gh average delay",
				bullet, day(p.Date), p.Compliance, p.OnTimeDeliveries, p.TotalShipments, p.AverageDelay))
		}
	}

	benchmarks := []string{"**Benchmark Comparison:**"}
	for _, m := range td.ComparisonMetrics {
		unit := m.Unit
		if unit == "hours" {
			unit = "h"
		}
		benchmarks = append(benchmarks, fmt.Sprintf("%s%s: %g%s vs %g%s benchmark (%s)",
			bullet, m.Metric, m.Value, unit, m.Benchmark, unit, signed(m.Variance)))
	}

	risks := []string{"**Risk Assessment:**"}
	for _, r := range td.RiskIndicators {
		risks = append(risks,
			fmt.Sprintf("%s%s risk (%s): %s", bullet, titleCase(r.Type), r.Severity, r.Description),
			"  Recommendation: "+r.Recommendation,
		)
	}
	if len(td.RiskIndicators) == 0 {
		risks = append(risks, bullet+"No active risk indicators")
	}

	return models.QueryResponse{
		Message: sections(
			fmt.Sprintf("Performance trending analysis for %s:", v.VendorName),
			lines(
				trend,
				fmt.Sprintf("**Current Compliance:** %d%% | **Trend Classification:** %s", v.CompliancePercentage,
					titleCase(string(v.PerformanceTrend))),
			),
			lines(benchmarks...),
			lines(risks...),
			lines(weeks...),
		),
		Visualization: models.NewVisualization(
			models.VendorTrendingPayload(td),
			v.VendorName+" Performance Trends",
			"Weekly compliance, benchmarks and risk indicators",
			h.catalog.Actions("schedule-review", "create-alert")...,
		),
		SuggestedFollowUps: []string{
			"Compare with other vendors",
			"Schedule a performance review",
			"Set up alerts for compliance drops",
		},
		ContextDelta: &models.ConversationContext{Vendor: v.VendorName},
	}
}
