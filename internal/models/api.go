package models

// Wire shapes for the backend API. One tagged struct per endpoint so
// decoding happens in a single validating step instead of ad-hoc field
// probing at the call sites.

type APIErrorBody struct {
	Error   []string `json:"Error"`
	Message string   `json:"message"`
}

type RegisterRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contraseña"`
}

type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contraseña"`
}

type LoginResponse struct {
	ID       int64  `json:"id"`
	Correo   string `json:"correo"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Token    string `json:"token"`
}

type SentimentPrediction struct {
	Prevision    string  `json:"prevision"`
	Probabilidad float64 `json:"probabilidad"`
}

type BatchAnalysisResponse struct {
	Total   int                   `json:"total"`
	Results []SentimentPrediction `json:"results"`
}

type SaveSessionRequest struct {
	Comentarios []string `json:"comentarios"`
}

type SavedComment struct {
	Texto        string  `json:"texto"`
	Sentimiento  string  `json:"sentimiento"`
	Probabilidad float64 `json:"probabilidad"`
}

type SavedSessionResponse struct {
	SessionID   int64          `json:"sessionId"`
	Date        string         `json:"date"`
	AvgScore    float64        `json:"avgScore"`
	Total       int            `json:"total"`
	Positivos   int            `json:"positivos"`
	Negativos   int            `json:"negativos"`
	Neutrales   int            `json:"neutrales"`
	Comentarios []SavedComment `json:"comentarios"`
}

type ProductAnalysisRequest struct {
	Comentarios []string `json:"comentarios"`
	ProductoIDs []int64  `json:"productoIds"`
}

type ProductAnalysisResult struct {
	Texto          string  `json:"texto"`
	Sentimiento    string  `json:"sentimiento"`
	Probabilidad   float64 `json:"probabilidad"`
	NombreProducto string  `json:"nombreProducto"`
}

type ProductAnalysisResponse struct {
	AnalisisID          int64                   `json:"analisisId"`
	TotalComentarios    int                     `json:"totalComentarios"`
	Resultados          []ProductAnalysisResult `json:"resultados"`
	PromedioScore       float64                 `json:"promedioScore"`
	ConteoPositivos     int                     `json:"conteoPositivos"`
	ConteoNegativos     int                     `json:"conteoNegativos"`
	ConteoNeutrales     int                     `json:"conteoNeutrales"`
	ProductosDetectados []ProductBreakdown      `json:"productosDetectados"`
}

type CreateProductRequest struct {
	NombreProducto string `json:"nombreProducto"`
	CategoriaID    int64  `json:"categoriaId"`
}
