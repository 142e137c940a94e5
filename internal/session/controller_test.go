package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiview/internal/models"
)

// fakeSentiment counts which endpoint each call was routed to.
type fakeSentiment struct {
	singleCalls   int
	batchCalls    int
	saveCalls     int
	productsCalls int

	savedComments []string
	productIDs    []int64

	err error
}

func (f *fakeSentiment) AnalyzeSingle(text string) (models.Analysis, error) {
	f.singleCalls++
	return models.Analysis{Text: text, Sentiment: "positivo", Score: 0.9}, f.err
}

func (f *fakeSentiment) AnalyzeBatch(text string) (models.BatchResult, error) {
	f.batchCalls++
	return models.BatchResult{IsBatch: true}, f.err
}

func (f *fakeSentiment) AnalyzeAndSave(comments []string, token string) (models.BatchResult, error) {
	f.saveCalls++
	f.savedComments = comments
	return models.BatchResult{IsBatch: true, SessionID: 42}, f.err
}

func (f *fakeSentiment) AnalyzeWithProducts(comments []string, token string, productIDs []int64) (models.BatchResult, error) {
	f.productsCalls++
	f.productIDs = productIDs
	return models.BatchResult{IsBatch: true, SessionID: 5}, f.err
}

func (f *fakeSentiment) GetHistory(token string) ([]models.HistorySession, error) {
	return []models.HistorySession{{SessionID: 1}}, f.err
}

type fakeAuth struct {
	user models.User
	err  error
}

func (f *fakeAuth) Register(req models.RegisterRequest) (models.User, error) {
	return models.User{Email: req.Correo}, f.err
}

func (f *fakeAuth) Login(email, password string) (models.User, error) {
	return f.user, f.err
}

func newTestController(t *testing.T, api *fakeSentiment, auth *fakeAuth) *Controller {
	t.Helper()
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	return NewController(api, auth, store)
}

func TestAnalyzeEmptyTextIsNoOp(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := NewState()
	st.Route = RouteAnalysisSimple
	st.Text = "   \n  "

	next := ctrl.Analyze(st)
	assert.Equal(t, 0, api.singleCalls)
	assert.False(t, next.Analyzing)
	assert.Empty(t, next.ErrorMsg)
}

func TestAnalyzeSingleRoute(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := NewState()
	st.Route = RouteAnalysisSimple
	st.Text = "me encanta"

	next := ctrl.Analyze(st)
	assert.Equal(t, 1, api.singleCalls)
	require.NotNil(t, next.Single)
	assert.Equal(t, "positivo", next.Single.Sentiment)
	assert.Nil(t, next.Batch)
}

func TestAnalyzeBatchDemoUsesEphemeralEndpoint(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := EnteredDemo(NewState(), "demo-1")
	st.Route = RouteAnalysisBatch
	st.Text = "uno\ndos"

	ctrl.Analyze(st)
	assert.Equal(t, 1, api.batchCalls)
	assert.Equal(t, 0, api.saveCalls)
}

func TestAnalyzeBatchAuthenticatedPersists(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := LoggedIn(NewState(), models.User{Email: "ana@example.com", Token: "jwt"})
	st.Route = RouteAnalysisBatch
	st.Text = "uno\n\ndos\n"

	next := ctrl.Analyze(st)
	assert.Equal(t, 1, api.saveCalls)
	assert.Equal(t, 0, api.batchCalls)
	assert.Equal(t, []string{"uno", "dos"}, api.savedComments)
	require.NotNil(t, next.Batch)
	assert.Equal(t, int64(42), next.Batch.SessionID)
}

func TestAnalyzeBatchWithProducts(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := LoggedIn(NewState(), models.User{Token: "jwt"})
	st.Route = RouteAnalysisBatch
	st.Text = "genial"
	st.SelectedProducts = []models.Product{{ProductoID: 7}, {ProductoID: 9}}

	ctrl.Analyze(st)
	assert.Equal(t, 1, api.productsCalls)
	assert.Equal(t, 0, api.saveCalls)
	assert.Equal(t, []int64{7, 9}, api.productIDs)
}

func TestAnalyzeFailureSetsErrorAndClearsResults(t *testing.T) {
	api := &fakeSentiment{err: errors.New("El servidor de IA no está disponible")}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := NewState()
	st.Route = RouteAnalysisSimple
	st.Text = "hola"
	st.Single = &models.Analysis{}

	next := ctrl.Analyze(st)
	assert.False(t, next.Analyzing)
	assert.Nil(t, next.Single)
	assert.Equal(t, "El servidor de IA no está disponible", next.ErrorMsg)
}

func TestAnalyzeOffline(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})
	ctrl.Offline = true

	st := NewState()
	st.Route = RouteAnalysisSimple
	st.Text = "I love this, it is wonderful"

	next := ctrl.Analyze(st)
	assert.Equal(t, 0, api.singleCalls)
	require.NotNil(t, next.Single)
	assert.Equal(t, "positivo", next.Single.Sentiment)
}

func TestLoginPersistsSession(t *testing.T) {
	user := models.User{ID: 7, Email: "ana@example.com", Token: "jwt"}
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{user: user})

	st := ctrl.Login(NewState(), "ana@example.com", "secreto")
	assert.True(t, st.Logged)
	assert.Equal(t, RouteDashboard, st.Route)

	stored, found, err := ctrl.Store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user, stored)
}

func TestLoginFailureDoesNotPersist(t *testing.T) {
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{err: errors.New("Credenciales incorrectas")})

	st := ctrl.Login(NewState(), "ana@example.com", "mal")
	assert.False(t, st.Logged)
	assert.Equal(t, "Credenciales incorrectas", st.ErrorMsg)

	_, found, err := ctrl.Store.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRegisterRoutesToLogin(t *testing.T) {
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{})

	st := ctrl.Register(NewState(), models.RegisterRequest{Correo: "ana@example.com"})
	assert.Equal(t, RouteLogin, st.Route)
	assert.False(t, st.Logged)
	require.Len(t, st.Notices, 1)
	assert.Equal(t, "Cuenta creada. Inicia sesión para continuar.", st.Notices[0])
}

func TestLogoutClearsStoredSession(t *testing.T) {
	user := models.User{Email: "ana@example.com", Token: "jwt"}
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{user: user})

	st := ctrl.Login(NewState(), "ana@example.com", "secreto")
	st = ctrl.Logout(st)
	assert.Equal(t, NewState(), st)

	_, found, err := ctrl.Store.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEnterDemoDoesNotPersist(t *testing.T) {
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{})

	st := ctrl.EnterDemo(NewState())
	assert.True(t, st.IsDemo)
	assert.Equal(t, models.DEMO_USER_EMAIL, st.User.Email)
	assert.NotEmpty(t, st.DemoSessionID)

	_, found, err := ctrl.Store.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadHistorySkipsDemo(t *testing.T) {
	api := &fakeSentiment{}
	ctrl := newTestController(t, api, &fakeAuth{})

	st := EnteredDemo(NewState(), "demo-1")
	next := ctrl.LoadHistory(st)
	assert.Empty(t, next.History)

	st = LoggedIn(NewState(), models.User{Token: "jwt"})
	next = ctrl.LoadHistory(st)
	require.Len(t, next.History, 1)
}

func TestRestore(t *testing.T) {
	user := models.User{Email: "ana@example.com", Token: "jwt"}
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{})
	require.NoError(t, ctrl.Store.Save(user))

	st := ctrl.Restore()
	assert.True(t, st.Logged)
	assert.Equal(t, RouteDashboard, st.Route)
	assert.Equal(t, user, st.User)
}

func TestRestoreWithoutStoredSession(t *testing.T) {
	ctrl := newTestController(t, &fakeSentiment{}, &fakeAuth{})

	st := ctrl.Restore()
	assert.False(t, st.Logged)
	assert.Equal(t, RouteLanding, st.Route)
}

func TestIngestNotices(t *testing.T) {
	assert.Nil(t, IngestNotices(false, false))
	assert.Len(t, IngestNotices(true, false), 1)
	assert.Len(t, IngestNotices(true, true), 2)
}
