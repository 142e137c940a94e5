package clients

import (
	"encoding/json"
	"errors"

	"github.com/spacesedan/sentiview/internal/models"
)

// Failure classes for backend responses. Callers branch with errors.Is;
// the message on the APIError is what the UI shows.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("ai backend unavailable")
)

const (
	MSG_VALIDATION       = "Error de validación"
	MSG_UNAUTHORIZED     = "No autorizado. Por favor, inicia sesión nuevamente."
	MSG_UPSTREAM         = "El servidor de IA no está disponible"
	MSG_BAD_CREDENTIALS  = "Credenciales incorrectas"
	MSG_ANALYZE_FAILED   = "Error al analizar el texto"
	MSG_BATCH_FAILED     = "Error al analizar los textos"
	MSG_SAVE_FAILED      = "Error al analizar y guardar los comentarios"
	MSG_HISTORY_FAILED   = "Error al obtener historial"
	MSG_REGISTER_FAILED  = "Error al registrar usuario"
	MSG_LOGIN_FAILED     = "Error al iniciar sesión"
	MSG_CATEGORIES_LOAD  = "Error al cargar categorías"
	MSG_PRODUCTS_LOAD    = "Error al cargar productos"
	MSG_PRODUCT_CREATE   = "Error al crear producto"
	MSG_PRODUCTS_ANALYZE = "Error en el análisis multiproducto"
)

type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.kind }

// statusError maps a non-2xx response onto the error taxonomy. 400 carries
// the backend's own validation message through when the body has one.
func statusError(status int, body []byte, genericMsg string) error {
	switch status {
	case 400:
		msg := MSG_VALIDATION
		var parsed models.APIErrorBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			if len(parsed.Error) > 0 && parsed.Error[0] != "" {
				msg = parsed.Error[0]
			} else if parsed.Message != "" {
				msg = parsed.Message
			}
		}
		return &APIError{Status: status, Message: msg, kind: ErrValidation}
	case 401:
		return &APIError{Status: status, Message: MSG_UNAUTHORIZED, kind: ErrUnauthorized}
	case 502:
		return &APIError{Status: status, Message: MSG_UPSTREAM, kind: ErrUpstream}
	default:
		return &APIError{Status: status, Message: genericMsg}
	}
}
