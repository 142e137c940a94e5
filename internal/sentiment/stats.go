package sentiment

import (
	"math"

	"github.com/spacesedan/sentiview/internal/models"
)

type LabelStat struct {
	Name       string
	Value      int
	Color      string
	Percentage float64
}

type ScoreBucket struct {
	Name  string
	Value int
}

// Statistics computes per-label counts and percentages for a batch result.
// Server-supplied aggregate counts win; counting Items is the fallback for
// the ephemeral endpoints that return no aggregates.
func Statistics(result models.BatchResult) []LabelStat {
	var pos, neg, neu int

	if result.Stats != nil {
		pos = result.Stats.Positivos
		neg = result.Stats.Negativos
		neu = result.Stats.Neutrales
	} else {
		for _, item := range result.Items {
			switch NormalizeLabel(item.Sentiment) {
			case LABEL_POSITIVE:
				pos++
			case LABEL_NEGATIVE:
				neg++
			case LABEL_NEUTRAL:
				neu++
			}
		}
	}

	return labelStats(pos, neg, neu)
}

// HistoryStatistics aggregates the per-session counts of the history list.
func HistoryStatistics(sessions []models.HistorySession) []LabelStat {
	var pos, neg, neu int
	for _, s := range sessions {
		pos += s.Positivos
		neg += s.Negativos
		neu += s.Neutrales
	}
	return labelStats(pos, neg, neu)
}

func labelStats(pos, neg, neu int) []LabelStat {
	total := pos + neg + neu
	// Zero batches must not divide by zero; a substituted denominator
	// yields 0.0 for every label.
	denom := total
	if denom == 0 {
		denom = 1
	}

	return []LabelStat{
		{Name: "Positivo", Value: pos, Color: COLOR_POSITIVE, Percentage: percentage(pos, denom)},
		{Name: "Negativo", Value: neg, Color: COLOR_NEGATIVE, Percentage: percentage(neg, denom)},
		{Name: "Neutral", Value: neu, Color: COLOR_NEUTRAL, Percentage: percentage(neu, denom)},
	}
}

func percentage(count, denom int) float64 {
	return math.Round(float64(count)/float64(denom)*1000) / 10
}

var scoreRanges = []string{"0.0-0.2", "0.2-0.4", "0.4-0.6", "0.6-0.8", "0.8-1.0"}

// ScoreDistribution buckets confidence scores into five 0.2-wide ranges.
func ScoreDistribution(scores []float64) []ScoreBucket {
	counts := make([]int, len(scoreRanges))
	for _, score := range scores {
		idx := int(score / 0.2)
		if idx >= len(counts) {
			idx = len(counts) - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	buckets := make([]ScoreBucket, len(scoreRanges))
	for i, name := range scoreRanges {
		buckets[i] = ScoreBucket{Name: name, Value: counts[i]}
	}
	return buckets
}
