package ui

import (
	"strings"

	"github.com/spacesedan/sentiview/internal/session"
)

type navEntry struct {
	label string
	route session.Route
}

// renderNavbar draws the top bar: brand, the routes the current session
// may visit, and who is signed in.
func (m Model) renderNavbar() string {
	brand := m.styles.Navbar.Render("SentimentAPI")

	var items []string
	if m.st.Logged {
		for _, entry := range []navEntry{
			{"Dashboard", session.RouteDashboard},
			{"Historial", session.RouteHistory},
		} {
			if !m.st.CanVisit(entry.route) {
				continue
			}
			if m.st.Route == entry.route {
				items = append(items, m.styles.NavActive.Render(entry.label))
			} else {
				items = append(items, m.styles.NavItem.Render(entry.label))
			}
		}
	}

	who := ""
	switch {
	case m.st.IsDemo:
		who = m.styles.Badge.Render("MODO DEMO")
	case m.st.Logged:
		who = m.styles.Muted.Render(m.st.User.Name)
	}

	parts := []string{brand}
	if len(items) > 0 {
		parts = append(parts, strings.Join(items, " "))
	}
	if who != "" {
		parts = append(parts, who)
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	var help string
	switch m.st.Route {
	case session.RouteLanding, session.RouteDashboard, session.RouteDemoSelect:
		help = "↑/↓ mover • enter seleccionar • ctrl+c salir"
	case session.RouteLogin, session.RouteRegister:
		help = "tab siguiente campo • enter enviar • esc volver • ctrl+c salir"
	case session.RouteAnalysisSimple:
		help = "ctrl+s analizar • esc volver • ctrl+c salir"
	case session.RouteAnalysisBatch:
		help = "ctrl+s analizar • ctrl+o cargar CSV • esc volver • ctrl+c salir"
	case session.RouteHistory:
		help = "esc volver • ctrl+c salir"
	case session.RouteCategorySelect:
		help = "↑/↓ mover • enter seleccionar • esc volver • ctrl+c salir"
	case session.RouteProductSelect:
		help = "espacio marcar • n nuevo producto • enter continuar • esc volver"
	}
	return m.styles.Footer.Render(help)
}
