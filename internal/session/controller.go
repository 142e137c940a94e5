package session

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/sentiment"
)

// SentimentAPI is the slice of the sentiment client the controller needs.
type SentimentAPI interface {
	AnalyzeSingle(text string) (models.Analysis, error)
	AnalyzeBatch(text string) (models.BatchResult, error)
	AnalyzeAndSave(comments []string, token string) (models.BatchResult, error)
	AnalyzeWithProducts(comments []string, token string, productIDs []int64) (models.BatchResult, error)
	GetHistory(token string) ([]models.HistorySession, error)
}

type AuthAPI interface {
	Register(req models.RegisterRequest) (models.User, error)
	Login(email, password string) (models.User, error)
}

// Controller owns every state transition that touches a service or the
// session store. Views call in, get the next State back, and render it.
type Controller struct {
	Sentiment SentimentAPI
	Auth      AuthAPI
	Store     *Store

	// Offline routes analysis through the local VADER classifier
	// instead of the backend.
	Offline bool
}

func NewController(sentimentAPI SentimentAPI, authAPI AuthAPI, store *Store) *Controller {
	return &Controller{
		Sentiment: sentimentAPI,
		Auth:      authAPI,
		Store:     store,
	}
}

func DefaultController(store *Store) *Controller {
	return NewController(clients.GetSentimentClient(), clients.GetAuthClient(), store)
}

// Restore seeds the initial state from the session store. No stored
// record means an unauthenticated start at the landing route.
func (c *Controller) Restore() State {
	st := NewState()
	if c.Store == nil {
		return st
	}

	user, found, err := c.Store.Load()
	if err != nil {
		slog.Warn("[Controller] Could not restore session",
			slog.String("error", err.Error()))
		return st
	}
	if !found {
		return st
	}

	slog.Info("[Controller] Restored session", slog.String("email", user.Email))
	return LoggedIn(st, user)
}

// Analyze runs the in-flight text through the right endpoint for the
// active route and session. Empty input is a no-op: no network call,
// analyzing stays false.
func (c *Controller) Analyze(st State) State {
	if strings.TrimSpace(st.Text) == "" {
		return st
	}

	batchMode := st.Route == RouteAnalysisBatch

	if c.Offline {
		return c.analyzeOffline(st, batchMode)
	}

	if batchMode {
		return c.analyzeBatch(st)
	}

	result, err := c.Sentiment.AnalyzeSingle(st.Text)
	if err != nil {
		return AnalysisFailed(st, err.Error())
	}
	return AnalysisSucceededSingle(st, result)
}

func (c *Controller) analyzeBatch(st State) State {
	var result models.BatchResult
	var err error

	// Authenticated users persist their batch as a session; demo users
	// hit the ephemeral endpoint.
	switch {
	case st.Logged && !st.IsDemo && st.User.Authenticated() && len(st.SelectedProducts) > 0:
		ids := make([]int64, 0, len(st.SelectedProducts))
		for _, p := range st.SelectedProducts {
			ids = append(ids, p.ProductoID)
		}
		result, err = c.Sentiment.AnalyzeWithProducts(clients.NonEmptyLines(st.Text), st.User.Token, ids)
	case st.Logged && !st.IsDemo && st.User.Authenticated():
		result, err = c.Sentiment.AnalyzeAndSave(clients.NonEmptyLines(st.Text), st.User.Token)
	default:
		result, err = c.Sentiment.AnalyzeBatch(st.Text)
	}

	if err != nil {
		return AnalysisFailed(st, err.Error())
	}
	return AnalysisSucceededBatch(st, result)
}

func (c *Controller) analyzeOffline(st State, batchMode bool) State {
	slog.Info("[Controller] Analyzing offline with VADER")
	if batchMode {
		return AnalysisSucceededBatch(st, sentiment.AnalyzeLocalBatch(clients.NonEmptyLines(st.Text)))
	}
	return AnalysisSucceededSingle(st, sentiment.AnalyzeLocal(st.Text))
}

// Login authenticates and, on success, persists the user record.
// A 401 leaves the state unauthenticated with the canonical message.
func (c *Controller) Login(st State, email, password string) State {
	user, err := c.Auth.Login(email, password)
	if err != nil {
		st.ErrorMsg = err.Error()
		return st
	}

	if c.Store != nil {
		if err := c.Store.Save(user); err != nil {
			slog.Warn("[Controller] Could not persist session",
				slog.String("error", err.Error()))
		}
	}

	return LoggedIn(st, user)
}

// Register creates the account and routes to the login form; the backend
// does not log new users in.
func (c *Controller) Register(st State, req models.RegisterRequest) State {
	if _, err := c.Auth.Register(req); err != nil {
		st.ErrorMsg = err.Error()
		return st
	}

	st = Navigate(st, RouteLogin)
	st.Notices = []string{"Cuenta creada. Inicia sesión para continuar."}
	return st
}

func (c *Controller) Logout(st State) State {
	if c.Store != nil && !st.IsDemo {
		if err := c.Store.Clear(); err != nil {
			slog.Warn("[Controller] Could not clear session",
				slog.String("error", err.Error()))
		}
	}
	return LoggedOut(st)
}

func (c *Controller) EnterDemo(st State) State {
	id := uuid.NewString()
	slog.Info("[Controller] Starting demo session", slog.String("demo_session", id))
	return EnteredDemo(st, id)
}

func (c *Controller) LoadHistory(st State) State {
	if st.IsDemo || !st.User.Authenticated() {
		return st
	}

	sessions, err := c.Sentiment.GetHistory(st.User.Token)
	if err != nil {
		st.ErrorMsg = err.Error()
		return st
	}
	return HistoryLoaded(st, sessions)
}

// IngestNotices converts ingestion flags into the user-facing notices
// shown alongside the composer.
func IngestNotices(truncated, decodeFallback bool) []string {
	var notices []string
	if truncated {
		notices = append(notices, "El archivo contiene más de 500 filas; solo se analizarán las primeras 500.")
	}
	if decodeFallback {
		notices = append(notices, "El archivo no era UTF-8 válido y se interpretó como Latin-1; revisa los acentos.")
	}
	return notices
}
