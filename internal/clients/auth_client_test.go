package clients

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiview/internal/models"
)

func newTestAuthClient(t *testing.T, handler http.HandlerFunc) *AuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAuthClient(NewAPIClient(srv.URL, 5*time.Second))
}

func TestLogin(t *testing.T) {
	client := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuario/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Correo)
		assert.Equal(t, "secreto", req.Contrasena)

		json.NewEncoder(w).Encode(models.LoginResponse{
			ID:       7,
			Correo:   "ana@example.com",
			Nombre:   "Ana",
			Apellido: "García",
			Token:    "jwt-token",
		})
	})

	user, err := client.Login("ana@example.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ana García", user.Name)
	assert.Equal(t, "jwt-token", user.Token)
	assert.True(t, user.Authenticated())
}

func TestLoginBadCredentials(t *testing.T) {
	client := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login("ana@example.com", "mal")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, MSG_BAD_CREDENTIALS, err.Error())
}

func TestLoginFallsBackToEmailPrefix(t *testing.T) {
	client := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.LoginResponse{ID: 1, Token: "t"})
	})

	user, err := client.Login("ana@example.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "ana", user.Name)
}

func TestRegister(t *testing.T) {
	client := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuario", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ana", req.Nombre)

		// Backend answers 200 with no body.
		w.WriteHeader(http.StatusOK)
	})

	user, err := client.Register(models.RegisterRequest{
		Nombre:     "Ana",
		Apellido:   "García",
		Correo:     "ana@example.com",
		Contrasena: "secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana García", user.Name)
	// Registration does not authenticate.
	assert.False(t, user.Authenticated())
}

func TestRegisterValidationError(t *testing.T) {
	client := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.APIErrorBody{Message: "El correo ya está registrado"})
	})

	_, err := client.Register(models.RegisterRequest{Correo: "ana@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "El correo ya está registrado", err.Error())
}
