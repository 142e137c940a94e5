package models

type Analysis struct {
	Text      string  `json:"text"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

type BatchItem struct {
	Text      string  `json:"text"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Product   string  `json:"productoAsociado,omitempty"`
}

type BatchStats struct {
	AvgScore  float64 `json:"avgScore"`
	Positivos int     `json:"positivos"`
	Negativos int     `json:"negativos"`
	Neutrales int     `json:"neutrales"`
}

type BatchResult struct {
	IsBatch       bool               `json:"isBatch"`
	TotalAnalyzed int                `json:"totalAnalyzed"`
	Items         []BatchItem        `json:"items"`
	Stats         *BatchStats        `json:"stats,omitempty"`
	SessionID     int64              `json:"sessionId,omitempty"`
	Products      []ProductBreakdown `json:"productosDetectados,omitempty"`
}

type ProductBreakdown struct {
	ProductoID     int64  `json:"productoId"`
	NombreProducto string `json:"nombreProducto"`
	Menciones      int    `json:"menciones"`
}
