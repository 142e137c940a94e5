package clients

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/sentiment"
)

var (
	sentimentInstance *SentimentClient
	sentimentOnce     sync.Once
)

// SentimentClient wraps the analysis endpoints and reshapes the backend's
// field names and label spellings into the client's canonical shape.
type SentimentClient struct {
	api *APIClient
}

func GetSentimentClient() *SentimentClient {
	sentimentOnce.Do(func() {
		sentimentInstance = NewSentimentClient(GetAPIClient())
	})
	return sentimentInstance
}

func NewSentimentClient(api *APIClient) *SentimentClient {
	return &SentimentClient{api: api}
}

func (c *SentimentClient) AnalyzeSingle(text string) (models.Analysis, error) {
	slog.Info("[SentimentClient] Requesting single analysis",
		slog.Int("text_len", len(text)))
	start := time.Now()

	var resp models.SentimentPrediction
	if err := c.api.postText(c.api.Endpoints.AnalyzeSingle, text, &resp, MSG_ANALYZE_FAILED); err != nil {
		return models.Analysis{}, err
	}

	slog.Info("[SentimentClient] Single analysis successful",
		slog.Duration("elapsed", time.Since(start)))

	return models.Analysis{
		Text:      text,
		Sentiment: sentiment.NormalizeLabel(resp.Prevision),
		Score:     resp.Probabilidad,
	}, nil
}

// AnalyzeBatch submits newline-separated texts to the ephemeral batch
// endpoint. Result i is paired with the i-th non-empty input line.
func (c *SentimentClient) AnalyzeBatch(text string) (models.BatchResult, error) {
	lines := NonEmptyLines(text)
	slog.Info("[SentimentClient] Requesting batch analysis",
		slog.Int("texts", len(lines)))
	start := time.Now()

	var resp models.BatchAnalysisResponse
	if err := c.api.postText(c.api.Endpoints.AnalyzeBatch, text, &resp, MSG_BATCH_FAILED); err != nil {
		return models.BatchResult{}, err
	}

	items := make([]models.BatchItem, 0, len(resp.Results))
	for i, result := range resp.Results {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		items = append(items, models.BatchItem{
			Text:      line,
			Sentiment: sentiment.NormalizeLabel(result.Prevision),
			Score:     result.Probabilidad,
		})
	}

	slog.Info("[SentimentClient] Batch analysis successful",
		slog.Int("total", resp.Total),
		slog.Duration("elapsed", time.Since(start)))

	return models.BatchResult{
		IsBatch:       true,
		TotalAnalyzed: resp.Total,
		Items:         items,
	}, nil
}

// AnalyzeAndSave runs an authenticated batch analysis that the backend
// persists as a session.
func (c *SentimentClient) AnalyzeAndSave(comments []string, token string) (models.BatchResult, error) {
	slog.Info("[SentimentClient] Requesting saved batch analysis",
		slog.Int("comments", len(comments)))

	req := models.SaveSessionRequest{Comentarios: comments}

	var resp models.SavedSessionResponse
	if err := c.api.postJSON(c.api.Endpoints.AnalyzeAndSave, token, req, &resp, MSG_SAVE_FAILED); err != nil {
		return models.BatchResult{}, err
	}

	items := make([]models.BatchItem, 0, len(resp.Comentarios))
	for _, comment := range resp.Comentarios {
		items = append(items, models.BatchItem{
			Text:      comment.Texto,
			Sentiment: sentiment.NormalizeLabel(comment.Sentimiento),
			Score:     comment.Probabilidad,
		})
	}

	return models.BatchResult{
		IsBatch:       true,
		TotalAnalyzed: resp.Total,
		Items:         items,
		SessionID:     resp.SessionID,
		Stats: &models.BatchStats{
			AvgScore:  resp.AvgScore,
			Positivos: resp.Positivos,
			Negativos: resp.Negativos,
			Neutrales: resp.Neutrales,
		},
	}, nil
}

// AnalyzeWithProducts runs an authenticated batch analysis tagged against
// the selected product IDs.
func (c *SentimentClient) AnalyzeWithProducts(comments []string, token string, productIDs []int64) (models.BatchResult, error) {
	slog.Info("[SentimentClient] Requesting multi-product analysis",
		slog.Int("comments", len(comments)),
		slog.Int("products", len(productIDs)))

	req := models.ProductAnalysisRequest{
		Comentarios: comments,
		ProductoIDs: productIDs,
	}

	var resp models.ProductAnalysisResponse
	if err := c.api.postJSON(c.api.Endpoints.AnalyzeProducts, token, req, &resp, MSG_PRODUCTS_ANALYZE); err != nil {
		return models.BatchResult{}, err
	}

	total := resp.TotalComentarios
	if total == 0 {
		total = len(comments)
	}

	items := make([]models.BatchItem, 0, len(resp.Resultados))
	for _, r := range resp.Resultados {
		items = append(items, models.BatchItem{
			Text:      r.Texto,
			Sentiment: sentiment.NormalizeLabel(r.Sentimiento),
			Score:     r.Probabilidad,
			Product:   r.NombreProducto,
		})
	}

	return models.BatchResult{
		IsBatch:       true,
		TotalAnalyzed: total,
		Items:         items,
		SessionID:     resp.AnalisisID,
		Products:      resp.ProductosDetectados,
		Stats: &models.BatchStats{
			AvgScore:  resp.PromedioScore,
			Positivos: resp.ConteoPositivos,
			Negativos: resp.ConteoNegativos,
			Neutrales: resp.ConteoNeutrales,
		},
	}, nil
}

func (c *SentimentClient) GetHistory(token string) ([]models.HistorySession, error) {
	slog.Info("[SentimentClient] Requesting session history")

	var sessions []models.HistorySession
	if err := c.api.getJSON(c.api.Endpoints.History, token, &sessions, MSG_HISTORY_FAILED); err != nil {
		return nil, err
	}

	return sessions, nil
}

// NonEmptyLines splits batch input into its non-empty trimmed lines.
func NonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
