package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/spacesedan/sentiview/internal/session"
)

const landingCopy = `# Análisis de Sentimientos con IA

Clasifica opiniones como **positivas**, **negativas** o **neutrales**
al instante, una por una o por lotes completos.

- Análisis simple y múltiple
- Estadísticas y gráficas por sesión
- Historial para usuarios registrados
`

func renderLandingCopy() string {
	out, err := glamour.Render(landingCopy, "dark")
	if err != nil {
		return landingCopy
	}
	return out
}

var landingMenu = []string{
	"Iniciar Sesión",
	"Registrarse",
	"Probar Demo",
	"Salir",
}

func (m Model) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.cursor < len(landingMenu)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			return m.navigate(session.RouteLogin)
		case 1:
			return m.navigate(session.RouteRegister)
		case 2:
			return m.applyState(m.ctrl.EnterDemo(m.st))
		case 3:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) viewLanding() string {
	var b strings.Builder
	b.WriteString(m.landing)
	b.WriteString("\n")

	for i, label := range landingMenu {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› " + label))
		} else {
			b.WriteString(m.styles.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if m.st.ErrorMsg != "" {
		b.WriteString("\n" + m.styles.ErrorBanner.Render(m.st.ErrorMsg))
	}
	return b.String()
}
