package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiview/internal/models"
)

func TestStatisticsFromServerCounts(t *testing.T) {
	result := models.BatchResult{
		IsBatch:       true,
		TotalAnalyzed: 4,
		Stats:         &models.BatchStats{Positivos: 3, Negativos: 1, Neutrales: 0},
	}

	stats := Statistics(result)
	require.Len(t, stats, 3)

	assert.Equal(t, 3, stats[0].Value)
	assert.Equal(t, 75.0, stats[0].Percentage)
	assert.Equal(t, 1, stats[1].Value)
	assert.Equal(t, 25.0, stats[1].Percentage)
	assert.Equal(t, 0, stats[2].Value)
	assert.Equal(t, 0.0, stats[2].Percentage)

	sum := stats[0].Percentage + stats[1].Percentage + stats[2].Percentage
	assert.Equal(t, 100.0, sum)
}

func TestStatisticsZeroCountsDoesNotDivideByZero(t *testing.T) {
	result := models.BatchResult{
		IsBatch: true,
		Stats:   &models.BatchStats{},
	}

	stats := Statistics(result)
	for _, stat := range stats {
		assert.Equal(t, 0, stat.Value)
		assert.Equal(t, 0.0, stat.Percentage)
	}
}

func TestStatisticsEmptyItemsFallback(t *testing.T) {
	stats := Statistics(models.BatchResult{IsBatch: true})
	for _, stat := range stats {
		assert.Equal(t, 0, stat.Value)
		assert.Equal(t, 0.0, stat.Percentage)
	}
}

func TestStatisticsCountsItemsWhenNoServerCounts(t *testing.T) {
	result := models.BatchResult{
		IsBatch: true,
		Items: []models.BatchItem{
			{Sentiment: "positivo"},
			{Sentiment: "positive"}, // alternate spelling still counted
			{Sentiment: "negativo"},
			{Sentiment: "neutral"},
			{Sentiment: "mixed"}, // unrecognized: not counted anywhere
		},
	}

	stats := Statistics(result)
	assert.Equal(t, 2, stats[0].Value)
	assert.Equal(t, 1, stats[1].Value)
	assert.Equal(t, 1, stats[2].Value)
}

func TestStatisticsColors(t *testing.T) {
	stats := Statistics(models.BatchResult{IsBatch: true})
	assert.Equal(t, COLOR_POSITIVE, stats[0].Color)
	assert.Equal(t, COLOR_NEGATIVE, stats[1].Color)
	assert.Equal(t, COLOR_NEUTRAL, stats[2].Color)
}

func TestHistoryStatistics(t *testing.T) {
	sessions := []models.HistorySession{
		{Positivos: 2, Negativos: 1, Neutrales: 0},
		{Positivos: 1, Negativos: 0, Neutrales: 1},
	}

	stats := HistoryStatistics(sessions)
	assert.Equal(t, 3, stats[0].Value)
	assert.Equal(t, 60.0, stats[0].Percentage)
	assert.Equal(t, 1, stats[1].Value)
	assert.Equal(t, 1, stats[2].Value)
}

func TestScoreDistribution(t *testing.T) {
	buckets := ScoreDistribution([]float64{0.05, 0.15, 0.35, 0.55, 0.75, 0.95, 1.0})

	assert.Equal(t, 2, buckets[0].Value)
	assert.Equal(t, 1, buckets[1].Value)
	assert.Equal(t, 1, buckets[2].Value)
	assert.Equal(t, 1, buckets[3].Value)
	// 1.0 lands in the top bucket, not out of range.
	assert.Equal(t, 2, buckets[4].Value)
}

func TestScoreDistributionEmpty(t *testing.T) {
	buckets := ScoreDistribution(nil)
	for _, bucket := range buckets {
		assert.Equal(t, 0, bucket.Value)
	}
}
