package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/sentiment"
	"github.com/spacesedan/sentiview/internal/session"
)

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m.navigate(session.RouteDashboard)
		case "r":
			return m, m.loadHistoryCmd()
		}
	}
	return m, nil
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Historial de Sesiones") + "\n")

	if m.st.ErrorMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.st.ErrorMsg) + "\n")
		return b.String()
	}

	if len(m.st.History) == 0 {
		b.WriteString(m.styles.Muted.Render("Aún no hay sesiones guardadas. Ejecuta un análisis múltiple para crear la primera.") + "\n")
		return b.String()
	}

	b.WriteString("Distribución acumulada\n")
	b.WriteString(RenderLabelBars(sentiment.HistoryStatistics(m.st.History), m.styles) + "\n\n")

	scores := make([]float64, 0, len(m.st.History))
	for _, s := range m.st.History {
		scores = append(scores, s.AvgScore)
	}
	b.WriteString("Puntuación media por sesión\n")
	b.WriteString(RenderScoreBuckets(sentiment.ScoreDistribution(scores), m.styles) + "\n\n")

	b.WriteString("Sesiones\n")
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("  %-8s %-12s %7s %6s %5s %5s %5s", "SESIÓN", "FECHA", "MEDIA", "TOTAL", "POS", "NEG", "NEU")) + "\n")
	for _, s := range m.st.History {
		b.WriteString(fmt.Sprintf("  #%-7d %-12s %7.2f %6d %5d %5d %5d\n",
			s.SessionID, s.Date, s.AvgScore, s.Total, s.Positivos, s.Negativos, s.Neutrales))
	}

	return b.String()
}
