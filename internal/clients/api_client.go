package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spacesedan/sentiview/config"
)

const USER_AGENT = "sentiview-client"

var (
	apiInstance *APIClient
	apiOnce     sync.Once
)

// APIClient carries the shared HTTP plumbing for every backend call.
// Each call is a single best-effort round trip; failures surface
// immediately to the caller.
type APIClient struct {
	Client    *http.Client
	Endpoints config.Endpoints
}

func GetAPIClient() *APIClient {
	var timeout time.Duration
	env := os.Getenv("APP_ENV")
	if env == "production" {
		timeout = 15 * time.Second
	} else {
		timeout = 60 * time.Second
	}
	apiOnce.Do(func() {
		slog.Info("[APIClient] Initializing Client",
			slog.Duration("timeout", timeout),
			slog.String("env", env),
			slog.String("base_url", config.APIBaseURL()))
		apiInstance = NewAPIClient(config.APIBaseURL(), timeout)
	})
	return apiInstance
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		Client:    &http.Client{Timeout: timeout},
		Endpoints: config.NewEndpoints(baseURL),
	}
}

// postText sends a raw text body and decodes the JSON response into output.
func (a *APIClient) postText(endpoint, text string, output interface{}, genericMsg string) error {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	return a.do(req, "", output, genericMsg)
}

// postJSON sends a JSON body, with a bearer token when one is given.
func (a *APIClient) postJSON(endpoint, token string, input, output interface{}, genericMsg string) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req, token, output, genericMsg)
}

func (a *APIClient) getJSON(endpoint, token string, output interface{}, genericMsg string) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return a.do(req, token, output, genericMsg)
}

func (a *APIClient) do(req *http.Request, token string, output interface{}, genericMsg string) error {
	req.Header.Set("User-Agent", USER_AGENT)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := a.Client.Do(req)
	if err != nil {
		slog.Error("[APIClient] Request failed",
			slog.String("endpoint", req.URL.Path),
			slog.String("error", err.Error()))
		return &APIError{Message: genericMsg, kind: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[APIClient] Failed to read response",
			slog.String("endpoint", req.URL.Path),
			slog.String("error", err.Error()))
		return &APIError{Message: genericMsg, kind: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("[APIClient] Non-2xx response",
			slog.String("endpoint", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)))
		return statusError(resp.StatusCode, respBody, genericMsg)
	}

	// Some endpoints answer 200 with an empty body.
	if output == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[APIClient] Failed to unmarshal response",
			slog.String("endpoint", req.URL.Path),
			slog.String("error", err.Error()),
			getPreview(respBody))
		return &APIError{Message: genericMsg, kind: err}
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
