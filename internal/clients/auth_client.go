package clients

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spacesedan/sentiview/internal/models"
)

var (
	authInstance *AuthClient
	authOnce     sync.Once
)

type AuthClient struct {
	api *APIClient
}

func GetAuthClient() *AuthClient {
	authOnce.Do(func() {
		authInstance = NewAuthClient(GetAPIClient())
	})
	return authInstance
}

func NewAuthClient(api *APIClient) *AuthClient {
	return &AuthClient{api: api}
}

// Register creates a new account. The backend answers 200 with an empty
// body, so the submitted fields are echoed back; registering does not
// log the user in.
func (c *AuthClient) Register(req models.RegisterRequest) (models.User, error) {
	slog.Info("[AuthClient] Registering user", slog.String("correo", req.Correo))

	if err := c.api.postJSON(c.api.Endpoints.Register, "", req, nil, MSG_REGISTER_FAILED); err != nil {
		return models.User{}, err
	}

	return models.User{
		Email: req.Correo,
		Name:  strings.TrimSpace(req.Nombre + " " + req.Apellido),
	}, nil
}

// Login authenticates and normalizes the backend payload into the
// client-side user record. A 401 surfaces as the canonical
// bad-credentials message and nothing is persisted by the caller.
func (c *AuthClient) Login(email, password string) (models.User, error) {
	slog.Info("[AuthClient] Logging in", slog.String("correo", email))

	req := models.LoginRequest{Correo: email, Contrasena: password}

	var resp models.LoginResponse
	if err := c.api.postJSON(c.api.Endpoints.Login, "", req, &resp, MSG_LOGIN_FAILED); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return models.User{}, &APIError{Status: 401, Message: MSG_BAD_CREDENTIALS, kind: ErrUnauthorized}
		}
		return models.User{}, err
	}

	if resp.Correo == "" {
		resp.Correo = email
	}
	name := strings.TrimSpace(resp.Nombre + " " + resp.Apellido)
	if name == "" {
		// Older backend builds omitted the name fields.
		name = strings.SplitN(resp.Correo, "@", 2)[0]
	}

	return models.User{
		ID:    resp.ID,
		Email: resp.Correo,
		Name:  name,
		Token: resp.Token,
	}, nil
}
