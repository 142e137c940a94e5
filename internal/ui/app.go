package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/sentiview/internal/ingest"
	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/session"
)

// CatalogAPI is the slice of the catalog client the wizard needs.
type CatalogAPI interface {
	GetCategories(token string) ([]models.Category, error)
	GetProductsByCategory(token string, categoryID int64) ([]models.Product, error)
	CreateProduct(token, name string, categoryID int64) (models.Product, error)
}

type (
	stateMsg      session.State
	categoriesMsg struct {
		categories []models.Category
		err        error
	}
	productsMsg struct {
		products []models.Product
		err      error
	}
	productCreatedMsg struct {
		product models.Product
		err     error
	}
	csvLoadedMsg struct {
		result ingest.Result
		err    error
	}
)

// Model is the root bubbletea model. It owns the session State and routes
// every message to the handler of the active view.
type Model struct {
	ctrl    *session.Controller
	catalog CatalogAPI
	st      session.State
	styles  Styles

	width  int
	height int

	composer textarea.Model
	spin     spinner.Model

	inputs []textinput.Model
	focus  int
	cursor int

	categories     []models.Category
	products       []models.Product
	loadingCatalog bool

	filePrompt     textinput.Model
	showFilePrompt bool

	productPrompt  textinput.Model
	showNewProduct bool

	landing  string
	quitting bool
}

func NewModel(ctrl *session.Controller, catalog CatalogAPI) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	composer := textarea.New()
	composer.Placeholder = "Escribe un texto para analizar..."
	composer.CharLimit = 0
	composer.SetHeight(8)

	filePrompt := textinput.New()
	filePrompt.Placeholder = "ruta/al/archivo.csv"

	productPrompt := textinput.New()
	productPrompt.Placeholder = "Nombre del producto"

	return Model{
		ctrl:          ctrl,
		catalog:       catalog,
		st:            ctrl.Restore(),
		styles:        NewStyles(),
		composer:      composer,
		spin:          sp,
		filePrompt:    filePrompt,
		productPrompt: productPrompt,
		landing:       renderLandingCopy(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.composer.SetWidth(min(msg.Width-6, 100))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case stateMsg:
		return m.applyState(session.State(msg))

	case categoriesMsg:
		m.loadingCatalog = false
		if msg.err != nil {
			m.st.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.categories = msg.categories
		m.cursor = 0
		return m, nil

	case productsMsg:
		m.loadingCatalog = false
		if msg.err != nil {
			m.st.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.products = msg.products
		m.cursor = 0
		return m, nil

	case productCreatedMsg:
		m.showNewProduct = false
		m.productPrompt.Reset()
		if msg.err != nil {
			m.st.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.products = append(m.products, msg.product)
		return m, nil

	case csvLoadedMsg:
		m.showFilePrompt = false
		m.filePrompt.Reset()
		if msg.err != nil {
			m.st.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.st.ErrorMsg = ""
		m.st.Notices = session.IngestNotices(msg.result.Truncated, msg.result.DecodeFallback)
		m.st = session.TextChanged(m.st, joinLines(msg.result.Texts))
		m.composer.SetValue(m.st.Text)
		return m, nil
	}

	switch m.st.Route {
	case session.RouteLanding:
		return m.updateLanding(msg)
	case session.RouteLogin, session.RouteRegister:
		return m.updateAuth(msg)
	case session.RouteDemoSelect:
		return m.updateDemoSelect(msg)
	case session.RouteDashboard:
		return m.updateDashboard(msg)
	case session.RouteAnalysisSimple, session.RouteAnalysisBatch:
		return m.updateAnalysis(msg)
	case session.RouteHistory:
		return m.updateHistory(msg)
	case session.RouteCategorySelect, session.RouteProductSelect:
		return m.updateWizard(msg)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.st.Route {
	case session.RouteLanding:
		body = m.viewLanding()
	case session.RouteLogin, session.RouteRegister:
		body = m.viewAuth()
	case session.RouteDemoSelect:
		body = m.viewDemoSelect()
	case session.RouteDashboard:
		body = m.viewDashboard()
	case session.RouteAnalysisSimple, session.RouteAnalysisBatch:
		body = m.viewAnalysis()
	case session.RouteHistory:
		body = m.viewHistory()
	case session.RouteCategorySelect, session.RouteProductSelect:
		body = m.viewWizard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		"",
		body,
		"",
		m.renderFooter(),
	)
}

// applyState swaps in a new session state and triggers whatever loads the
// new route needs.
func (m Model) applyState(st session.State) (tea.Model, tea.Cmd) {
	prev := m.st.Route
	m.st = st

	if prev != st.Route {
		m.cursor = 0
		m.focus = 0
	}

	switch {
	case st.Route == session.RouteHistory && prev != session.RouteHistory:
		return m, m.loadHistoryCmd()
	case st.Route == session.RouteCategorySelect && prev != session.RouteCategorySelect:
		m.loadingCatalog = true
		return m, m.loadCategoriesCmd()
	case st.Route == session.RouteProductSelect && prev != session.RouteProductSelect:
		m.loadingCatalog = true
		return m, m.loadProductsCmd()
	case (st.Route == session.RouteLogin || st.Route == session.RouteRegister) &&
		prev != st.Route:
		m.buildAuthInputs()
	}

	if st.Route == session.RouteAnalysisSimple || st.Route == session.RouteAnalysisBatch {
		m.configureComposer()
	}

	return m, nil
}

func (m Model) navigate(route session.Route) (tea.Model, tea.Cmd) {
	return m.applyState(session.Navigate(m.st, route))
}

// ---- commands ----

func (m Model) analyzeCmd() tea.Cmd {
	ctrl, st := m.ctrl, m.st
	return func() tea.Msg {
		return stateMsg(ctrl.Analyze(st))
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	ctrl, st := m.ctrl, m.st
	return func() tea.Msg {
		return stateMsg(ctrl.Login(st, email, password))
	}
}

func (m Model) registerCmd(req models.RegisterRequest) tea.Cmd {
	ctrl, st := m.ctrl, m.st
	return func() tea.Msg {
		return stateMsg(ctrl.Register(st, req))
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	ctrl, st := m.ctrl, m.st
	return func() tea.Msg {
		return stateMsg(ctrl.LoadHistory(st))
	}
}

func (m Model) loadCategoriesCmd() tea.Cmd {
	catalog, token := m.catalog, m.st.User.Token
	return func() tea.Msg {
		categories, err := catalog.GetCategories(token)
		return categoriesMsg{categories: categories, err: err}
	}
}

func (m Model) loadProductsCmd() tea.Cmd {
	catalog, token := m.catalog, m.st.User.Token
	category := m.st.Category
	return func() tea.Msg {
		if category == nil {
			return productsMsg{}
		}
		products, err := catalog.GetProductsByCategory(token, category.CategoriaID)
		return productsMsg{products: products, err: err}
	}
}

func (m Model) createProductCmd(name string) tea.Cmd {
	catalog, token := m.catalog, m.st.User.Token
	category := m.st.Category
	return func() tea.Msg {
		if category == nil {
			return productCreatedMsg{}
		}
		product, err := catalog.CreateProduct(token, name, category.CategoriaID)
		return productCreatedMsg{product: product, err: err}
	}
}

func (m Model) loadCSVCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return csvLoadedMsg{err: err}
		}
		result, err := ingest.ExtractTexts(data)
		return csvLoadedMsg{result: result, err: err}
	}
}

// ---- helpers ----

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
