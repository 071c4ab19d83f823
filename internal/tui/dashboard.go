package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
	"github.com/fyrsmithlabs/stairtrek/internal/stats"
)

// createSparkline creates a sparkline chart from a value series
func createSparkline(data []float64) string {
	if len(data) == 0 {
		return dimStyle.Render(fmt.Sprintf("%*s", sparklineWidth, "no data"))
	}

	spark := sparkline.New(sparklineWidth, sparklineHeight)
	for _, v := range data {
		spark.Push(v)
	}

	return sparklineStyle.Render(spark.View())
}

// renderCard renders a small labeled metric card.
func renderCard(label, value string) string {
	inner := labelStyle.Render(label) + "\n" + valueStyle.Render(value)
	return cardStyle.Render(inner)
}

// renderDashboard renders the progress, prediction, and averages sections.
func (m Model) renderDashboard() string {
	var content string

	content += m.renderProgressSection()
	content += m.renderPredictionSection()
	content += m.renderAveragesSection()

	return content
}

func (m Model) renderProgressSection() string {
	mountain := m.cfg.Mountain
	total := record.TotalFlights(m.records)
	climbedFeet := float64(total) * mountain.FeetPerFlight
	ratio := 0.0
	if mountain.HeightFeet > 0 {
		ratio = climbedFeet / mountain.HeightFeet
	}

	var content string
	content += sectionStyle.Render("┃ Progress") + "\n\n"

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Flights climbed", FormatFlights(total)),
		renderCard("Height gained", FormatFeet(climbedFeet)),
		renderCard(mountain.Name, FormatFeet(mountain.HeightFeet)),
		renderCard("Progress", FormatPercentage(ratio)),
	)
	content += cards + "\n\n"

	// The bar is capped at 100% but the percentage card above is not.
	barRatio := ratio
	if barRatio > 1 {
		barRatio = 1
	}
	content += labelStyle.Render("Ascent") + "\n"
	content += m.progress.ViewAs(barRatio) + "\n\n"

	content += m.renderComparisonChart(climbedFeet) + "\n"

	return content
}

func (m Model) renderComparisonChart(climbedFeet float64) string {
	bc := barchart.New(barChartWidth, barChartHeight)
	bc.Push(barchart.BarData{
		Label: "You",
		Values: []barchart.BarValue{
			{Name: "climbed", Value: climbedFeet, Style: barClimbedStyle},
		},
	})
	bc.Push(barchart.BarData{
		Label: "Peak",
		Values: []barchart.BarValue{
			{Name: "target", Value: m.cfg.Mountain.HeightFeet, Style: barTargetStyle},
		},
	})
	bc.Draw()
	return bc.View()
}

func (m Model) renderPredictionSection() string {
	var content string
	content += sectionStyle.Render("┃ Predictions") + "\n\n"

	if !m.hasProjection {
		content += dimStyle.Render("Not enough data yet. Log some climbs first.") + "\n"
		return content
	}

	p := m.projection
	days := fmt.Sprintf("%d days", p.WholeDays())
	if p.WholeDays() < 0 {
		days = "done!"
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Days to summit", days),
		renderCard("Estimated summit date", record.FormatDate(p.CompletionDate)),
		renderCard("Flights remaining", fmt.Sprintf("%.1f", p.Remaining)),
	)
	content += cards + "\n"

	return content
}

func (m Model) renderAveragesSection() string {
	var content string
	content += sectionStyle.Render("┃ Averages") + "\n\n"

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Per day", FormatAverage(m.averages.Daily)),
		renderCard("Per week", FormatAverage(m.averages.Weekly)),
		renderCard("Per month", FormatAverage(m.averages.Monthly)),
	)
	content += cards + "\n\n"

	g := m.cfg.Stats.Grouping()
	content += labelStyle.Render("Daily flights") + "\n"
	content += createSparkline(stats.Values(stats.DailyTotals(m.records))) + "\n"
	content += labelStyle.Render("Weekly flights") + "\n"
	content += createSparkline(stats.Values(stats.WeeklyTotals(m.records, g))) + "\n"
	content += labelStyle.Render("Monthly flights") + "\n"
	content += createSparkline(stats.Values(stats.MonthlyTotals(m.records, g))) + "\n"

	return content
}
