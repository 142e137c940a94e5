package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/session"
)

type dashboardEntry struct {
	label    string
	subtitle string
	route    session.Route
	wizard   bool
	logout   bool
}

// dashboardMenu returns the actions the current session may take; demo
// sessions lose history and product tagging.
func (m Model) dashboardMenu() []dashboardEntry {
	entries := []dashboardEntry{
		{label: "Análisis Simple", subtitle: "Un texto individual", route: session.RouteAnalysisSimple},
		{label: "Análisis Múltiple", subtitle: "Varios textos, uno por línea o CSV", route: session.RouteAnalysisBatch},
	}
	if !m.st.IsDemo {
		entries = append(entries,
			dashboardEntry{label: "Análisis por Producto", subtitle: "Etiqueta comentarios con tus productos", wizard: true},
			dashboardEntry{label: "Historial", subtitle: "Sesiones guardadas", route: session.RouteHistory},
		)
	}
	entries = append(entries, dashboardEntry{label: "Cerrar Sesión", logout: true})
	return entries
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	menu := m.dashboardMenu()
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
	case "enter":
		entry := menu[m.cursor]
		switch {
		case entry.logout:
			return m.applyState(m.ctrl.Logout(m.st))
		case entry.wizard:
			return m.applyState(session.Navigate(session.WizardReset(m.st), session.RouteCategorySelect))
		default:
			return m.navigate(entry.route)
		}
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Bienvenido, " + m.st.User.Name) + "\n")

	for i, entry := range m.dashboardMenu() {
		line := entry.label
		if entry.subtitle != "" {
			line += "  " + m.styles.Muted.Render(entry.subtitle)
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› "+entry.label) + "  " + m.styles.Muted.Render(entry.subtitle))
		} else {
			b.WriteString(m.styles.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.st.ErrorMsg != "" {
		b.WriteString("\n" + m.styles.ErrorBanner.Render(m.st.ErrorMsg))
	}
	return b.String()
}
