package models

// HistorySession is one persisted batch-analysis run, fetched read-only.
type HistorySession struct {
	SessionID int64   `json:"sessionId"`
	Date      string  `json:"date"`
	AvgScore  float64 `json:"avgScore"`
	Total     int     `json:"total"`
	Positivos int     `json:"positivos"`
	Negativos int     `json:"negativos"`
	Neutrales int     `json:"neutrales"`
}
