package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/sentiview/internal/sentiment"
)

const CHART_BAR_WIDTH = 30

// RenderLabelBars draws the per-label distribution as horizontal bars,
// the terminal stand-in for the pie chart.
func RenderLabelBars(stats []sentiment.LabelStat, styles Styles) string {
	total := 0
	for _, stat := range stats {
		total += stat.Value
	}
	denom := total
	if denom == 0 {
		denom = 1
	}

	var b strings.Builder
	for _, stat := range stats {
		filled := stat.Value * CHART_BAR_WIDTH / denom
		bar := strings.Repeat("█", filled) + strings.Repeat("░", CHART_BAR_WIDTH-filled)

		colored := lipgloss.NewStyle().
			Foreground(lipgloss.Color(stat.Color)).
			Render(bar)

		b.WriteString(fmt.Sprintf("%-9s %s ", stat.Name, colored))
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%3d (%.1f%%)", stat.Value, stat.Percentage)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderScoreBuckets draws the confidence distribution as a bar chart.
func RenderScoreBuckets(buckets []sentiment.ScoreBucket, styles Styles) string {
	max := 0
	for _, bucket := range buckets {
		if bucket.Value > max {
			max = bucket.Value
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, bucket := range buckets {
		filled := bucket.Value * CHART_BAR_WIDTH / max
		bar := strings.Repeat("█", filled) + strings.Repeat("░", CHART_BAR_WIDTH-filled)
		b.WriteString(fmt.Sprintf("%-8s %s %d\n",
			bucket.Name, styles.Muted.Render(bar), bucket.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderConfidenceGauge draws a single score as a filled gauge.
func RenderConfidenceGauge(score float64, label string) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score * CHART_BAR_WIDTH)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", CHART_BAR_WIDTH-filled)
	return SentimentStyle(label).Render(bar) + fmt.Sprintf(" %.1f%%", score*100)
}
