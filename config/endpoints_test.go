package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEndpoints(t *testing.T) {
	e := NewEndpoints("http://example.com/api")

	assert.Equal(t, "http://example.com/api/usuario/login", e.Login)
	assert.Equal(t, "http://example.com/api/sentiment/analyze", e.AnalyzeSingle)
	assert.Equal(t, "http://example.com/api/sesion/historial", e.History)
}

func TestProductsByCategory(t *testing.T) {
	e := NewEndpoints("http://example.com/api")
	assert.Equal(t,
		"http://example.com/api/producto/por-categoria?categoriaId=42",
		e.ProductsByCategory(42))
}

func TestAPIBaseURL(t *testing.T) {
	t.Setenv("SENTIVIEW_API_URL", "")
	assert.Equal(t, DEFAULT_API_BASE_URL, APIBaseURL())

	t.Setenv("SENTIVIEW_API_URL", "http://staging.example.com/api")
	assert.Equal(t, "http://staging.example.com/api", APIBaseURL())
}
