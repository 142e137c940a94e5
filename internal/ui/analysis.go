package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/sentiment"
	"github.com/spacesedan/sentiview/internal/session"
)

const MAX_DETAIL_ROWS = 15

func (m *Model) configureComposer() {
	if m.st.Route == session.RouteAnalysisBatch {
		m.composer.Placeholder = "Ingresa múltiples textos (uno por línea)"
	} else {
		m.composer.Placeholder = "Escribe un texto para analizar..."
	}
	m.composer.SetValue(m.st.Text)
	m.composer.Focus()
}

func (m Model) updateAnalysis(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showFilePrompt {
		return m.updateFilePrompt(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.st = session.TextChanged(m.st, m.composer.Value())
			if m.st.IsDemo {
				return m.navigate(session.RouteDemoSelect)
			}
			return m.navigate(session.RouteDashboard)

		case "ctrl+s":
			m.st = session.TextChanged(m.st, m.composer.Value())
			// Empty input stays local: no request, no spinner.
			if strings.TrimSpace(m.st.Text) == "" {
				return m, nil
			}
			if m.st.Analyzing {
				return m, nil
			}
			m.st = session.AnalysisStarted(m.st)
			return m, tea.Batch(m.analyzeCmd(), m.spin.Tick)

		case "ctrl+o":
			if m.st.Route == session.RouteAnalysisBatch {
				m.showFilePrompt = true
				m.filePrompt.Focus()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.st = session.TextChanged(m.st, m.composer.Value())
	return m, cmd
}

func (m Model) updateFilePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.showFilePrompt = false
			m.filePrompt.Reset()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.filePrompt.Value())
			if path == "" {
				return m, nil
			}
			return m, m.loadCSVCmd(path)
		}
	}

	var cmd tea.Cmd
	m.filePrompt, cmd = m.filePrompt.Update(msg)
	return m, cmd
}

func (m Model) viewAnalysis() string {
	batchMode := m.st.Route == session.RouteAnalysisBatch

	title := "Análisis Simple"
	subtitle := "Analiza el sentimiento de un texto individual"
	if batchMode {
		title = "Análisis Múltiple"
		subtitle = "Analiza múltiples textos simultáneamente"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title) + "\n")
	b.WriteString(m.styles.Subtitle.Render(subtitle) + "\n\n")

	if m.showFilePrompt {
		b.WriteString(m.styles.Card.Render(
			"Cargar archivo CSV (columna 'texto')\n\n" + m.filePrompt.View()))
		return b.String()
	}

	b.WriteString(m.composer.View() + "\n")

	counter := fmt.Sprintf("%d caracteres", len(m.st.Text))
	if batchMode {
		counter += fmt.Sprintf(" • %d textos", len(clients.NonEmptyLines(m.st.Text)))
	}
	b.WriteString(m.styles.Muted.Render(counter) + "\n")

	if len(m.st.SelectedProducts) > 0 {
		names := make([]string, 0, len(m.st.SelectedProducts))
		for _, p := range m.st.SelectedProducts {
			names = append(names, p.NombreProducto)
		}
		b.WriteString(m.styles.Muted.Render("Productos: "+strings.Join(names, ", ")) + "\n")
	}

	for _, notice := range m.st.Notices {
		b.WriteString(m.styles.NoticeBanner.Render(notice) + "\n")
	}
	if m.st.ErrorMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.st.ErrorMsg) + "\n")
	}

	if m.st.Analyzing {
		b.WriteString("\n" + m.spin.View() + " Analizando con IA...\n")
		return b.String()
	}

	switch {
	case m.st.Batch != nil:
		b.WriteString("\n" + m.viewBatchResult())
	case m.st.Single != nil:
		b.WriteString("\n" + m.viewSingleResult())
	}

	return b.String()
}

func (m Model) viewSingleResult() string {
	result := m.st.Single

	label := SentimentStyle(result.Sentiment).Render(strings.ToUpper(result.Sentiment))
	gauge := RenderConfidenceGauge(result.Score, result.Sentiment)

	body := fmt.Sprintf("Resultado del Análisis\n\nSENTIMIENTO  %s\nCONFIANZA    %s\n\n\"%s\"",
		label, gauge, result.Text)

	return m.styles.Card.Render(body)
}

func (m Model) viewBatchResult() string {
	result := m.st.Batch
	stats := sentiment.Statistics(*result)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Resumen de Análisis — %d textos analizados\n\n", result.TotalAnalyzed))
	b.WriteString(RenderLabelBars(stats, m.styles) + "\n\n")

	scores := make([]float64, 0, len(result.Items))
	for _, item := range result.Items {
		scores = append(scores, item.Score)
	}
	b.WriteString("Distribución de Puntuaciones\n")
	b.WriteString(RenderScoreBuckets(sentiment.ScoreDistribution(scores), m.styles) + "\n")

	if result.Stats != nil {
		b.WriteString(fmt.Sprintf("\nPuntuación media: %.2f", result.Stats.AvgScore))
		if result.SessionID != 0 {
			b.WriteString(fmt.Sprintf(" • Sesión guardada #%d", result.SessionID))
		}
		b.WriteString("\n")
	}

	if len(result.Products) > 0 {
		b.WriteString("\nProductos detectados\n")
		for _, p := range result.Products {
			b.WriteString(fmt.Sprintf("  %s — %d menciones\n", p.NombreProducto, p.Menciones))
		}
	}

	b.WriteString("\nResultados Detallados\n")
	for i, item := range result.Items {
		if i == MAX_DETAIL_ROWS {
			b.WriteString(m.styles.Muted.Render(
				fmt.Sprintf("  … y %d más\n", len(result.Items)-MAX_DETAIL_ROWS)))
			break
		}
		line := fmt.Sprintf("  #%-3d %s %5.1f%%  %q",
			i+1,
			SentimentStyle(item.Sentiment).Render(fmt.Sprintf("%-8s", item.Sentiment)),
			item.Score*100,
			item.Text)
		if item.Product != "" {
			line += m.styles.Muted.Render(" [" + item.Product + "]")
		}
		b.WriteString(line + "\n")
	}

	return m.styles.Card.Render(strings.TrimRight(b.String(), "\n"))
}
