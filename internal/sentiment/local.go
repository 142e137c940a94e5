package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentiview/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// AnalyzeLocal classifies a text with VADER, without touching the backend.
// Used by the offline flag when the remote classifier is unreachable.
// Labels come out canonical so the rest of the client cannot tell a local
// result from a remote one.
func AnalyzeLocal(text string) models.Analysis {
	plainText := ConvertMarkdownToText(text)

	scores := analyzer.PolarityScores(plainText)
	compound := scores.Compound

	var label string
	var confidence float64
	switch {
	case compound >= 0.20:
		label = LABEL_POSITIVE
		confidence = compound
	case compound <= -0.20:
		label = LABEL_NEGATIVE
		confidence = -compound
	default:
		label = LABEL_NEUTRAL
		confidence = 1 - math.Abs(compound)
	}

	return models.Analysis{
		Text:      text,
		Sentiment: label,
		Score:     confidence,
	}
}

// AnalyzeLocalBatch runs the local classifier over each text.
func AnalyzeLocalBatch(texts []string) models.BatchResult {
	items := make([]models.BatchItem, 0, len(texts))
	for _, t := range texts {
		a := AnalyzeLocal(t)
		items = append(items, models.BatchItem{
			Text:      a.Text,
			Sentiment: a.Sentiment,
			Score:     a.Score,
		})
	}

	return models.BatchResult{
		IsBatch:       true,
		TotalAnalyzed: len(items),
		Items:         items,
	}
}
