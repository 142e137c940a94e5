package config

import (
	"net/url"
	"os"
	"strconv"
)

const DEFAULT_API_BASE_URL = "http://localhost:8080/project/api/v2"

// Endpoints is the static map of backend URLs the client talks to,
// all derived from a single base URL.
type Endpoints struct {
	Register        string
	Login           string
	AnalyzeSingle   string
	AnalyzeBatch    string
	AnalyzeAndSave  string
	AnalyzeProducts string
	History         string
	Categories      string
	Products        string
}

func APIBaseURL() string {
	if base := os.Getenv("SENTIVIEW_API_URL"); base != "" {
		return base
	}
	return DEFAULT_API_BASE_URL
}

func NewEndpoints(base string) Endpoints {
	return Endpoints{
		Register:        base + "/usuario",
		Login:           base + "/usuario/login",
		AnalyzeSingle:   base + "/sentiment/analyze",
		AnalyzeBatch:    base + "/sentiment/analyze/batch",
		AnalyzeAndSave:  base + "/sesion/analizar",
		AnalyzeProducts: base + "/analisis/analizar-lista-productos",
		History:         base + "/sesion/historial",
		Categories:      base + "/categoria",
		Products:        base + "/producto",
	}
}

func DefaultEndpoints() Endpoints {
	return NewEndpoints(APIBaseURL())
}

// ProductsByCategory builds the catalog query URL for one category.
func (e Endpoints) ProductsByCategory(categoryID int64) string {
	return e.Products + "/por-categoria?categoriaId=" +
		url.QueryEscape(strconv.FormatInt(categoryID, 10))
}
