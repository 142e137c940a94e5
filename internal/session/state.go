package session

import (
	"github.com/spacesedan/sentiview/internal/models"
)

// Route enumerates every view the client can show. Navigation goes through
// the guard table below instead of scattered conditionals.
type Route string

const (
	RouteLanding        Route = "landing"
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteDemoSelect     Route = "demo-select"
	RouteDashboard      Route = "dashboard"
	RouteAnalysisSimple Route = "analysis-simple"
	RouteAnalysisBatch  Route = "analysis-batch"
	RouteHistory        Route = "history"
	RouteCategorySelect Route = "category-select"
	RouteProductSelect  Route = "product-select"
)

// State is the single source of truth for the whole client session.
// Transitions are pure: they take a State and return the next one.
type State struct {
	Route  Route
	User   models.User
	Logged bool
	IsDemo bool

	// Demo sessions get a throwaway identity for log correlation only.
	DemoSessionID string

	// In-flight analysis.
	Text      string
	Analyzing bool
	Single    *models.Analysis
	Batch     *models.BatchResult
	ErrorMsg  string
	Notices   []string

	History []models.HistorySession

	// Product-tagging wizard (non-demo only).
	Category         *models.Category
	SelectedProducts []models.Product
}

func NewState() State {
	return State{Route: RouteLanding}
}

// guards maps each route to the session predicate required to visit it.
// A nil guard means the route is public.
var guards = map[Route]func(State) bool{
	RouteLanding:        nil,
	RouteLogin:          nil,
	RouteRegister:       nil,
	RouteDemoSelect:     nil,
	RouteDashboard:      func(s State) bool { return s.Logged },
	RouteAnalysisSimple: func(s State) bool { return s.Logged },
	RouteAnalysisBatch:  func(s State) bool { return s.Logged },
	RouteHistory:        func(s State) bool { return s.Logged && !s.IsDemo },
	RouteCategorySelect: func(s State) bool { return s.Logged && !s.IsDemo },
	RouteProductSelect:  func(s State) bool { return s.Logged && !s.IsDemo && s.Category != nil },
}

func (s State) CanVisit(route Route) bool {
	guard, known := guards[route]
	if !known {
		return false
	}
	return guard == nil || guard(s)
}

// Navigate moves to the route, redirecting to landing when the guard
// predicate is not satisfied. In-flight results are kept so a user can
// bounce between dashboard and analysis without losing them.
func Navigate(s State, route Route) State {
	if !s.CanVisit(route) {
		s.Route = RouteLanding
		return s
	}
	s.Route = route
	s.ErrorMsg = ""
	return s
}

func TextChanged(s State, text string) State {
	s.Text = text
	return s
}

func AnalysisStarted(s State) State {
	s.Analyzing = true
	s.ErrorMsg = ""
	s.Notices = nil
	return s
}

func AnalysisSucceededSingle(s State, result models.Analysis) State {
	s.Analyzing = false
	s.Single = &result
	s.Batch = nil
	s.ErrorMsg = ""
	return s
}

func AnalysisSucceededBatch(s State, result models.BatchResult) State {
	s.Analyzing = false
	s.Single = nil
	s.Batch = &result
	s.ErrorMsg = ""
	return s
}

// AnalysisFailed stores the failure message and clears any partial result.
func AnalysisFailed(s State, msg string) State {
	s.Analyzing = false
	s.Single = nil
	s.Batch = nil
	s.ErrorMsg = msg
	return s
}

func LoggedIn(s State, user models.User) State {
	s.User = user
	s.Logged = true
	s.IsDemo = false
	s.DemoSessionID = ""
	s.Route = RouteDashboard
	s.ErrorMsg = ""
	return s
}

func EnteredDemo(s State, demoSessionID string) State {
	s.User = models.User{Email: models.DEMO_USER_EMAIL, Name: "Demo"}
	s.Logged = true
	s.IsDemo = true
	s.DemoSessionID = demoSessionID
	s.Route = RouteDemoSelect
	s.ErrorMsg = ""
	return s
}

func LoggedOut(s State) State {
	return NewState()
}

func HistoryLoaded(s State, sessions []models.HistorySession) State {
	s.History = sessions
	s.ErrorMsg = ""
	return s
}

func CategoryChosen(s State, category models.Category) State {
	s.Category = &category
	s.SelectedProducts = nil
	s.Route = RouteProductSelect
	return s
}

func ProductToggled(s State, product models.Product) State {
	for i, p := range s.SelectedProducts {
		if p.ProductoID == product.ProductoID {
			s.SelectedProducts = append(s.SelectedProducts[:i:i], s.SelectedProducts[i+1:]...)
			return s
		}
	}
	s.SelectedProducts = append(append([]models.Product(nil), s.SelectedProducts...), product)
	return s
}

func WizardReset(s State) State {
	s.Category = nil
	s.SelectedProducts = nil
	return s
}
