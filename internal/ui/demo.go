package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/session"
)

var demoMenu = []struct {
	label    string
	subtitle string
	route    session.Route
}{
	{"Análisis Simple", "Analiza un texto individual al instante", session.RouteAnalysisSimple},
	{"Análisis Múltiple", "Procesa varios textos y ve las estadísticas", session.RouteAnalysisBatch},
	{"Volver al Inicio", "", session.RouteLanding},
}

func (m Model) updateDemoSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(demoMenu)-1 {
			m.cursor++
		}
	case "esc":
		return m.applyState(m.ctrl.Logout(m.st))
	case "enter":
		entry := demoMenu[m.cursor]
		if entry.route == session.RouteLanding {
			// Leaving demo mode drops the placeholder user.
			return m.applyState(m.ctrl.Logout(m.st))
		}
		return m.navigate(entry.route)
	}
	return m, nil
}

func (m Model) viewDemoSelect() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("¡Prueba el poder de la IA!") + "\n")
	b.WriteString(m.styles.Subtitle.Render("Selecciona el tipo de análisis que deseas probar. Sin registro.") + "\n\n")

	for i, entry := range demoMenu {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› " + entry.label))
		} else {
			b.WriteString(m.styles.Unselected.Render("  " + entry.label))
		}
		if entry.subtitle != "" {
			b.WriteString("  " + m.styles.Muted.Render(entry.subtitle))
		}
		b.WriteString("\n")
	}
	return b.String()
}
