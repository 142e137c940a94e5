package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/session"
)

// The product-tagging wizard: category-select → product-select →
// compose/analyze. Each step is a simple linear gate with back-navigation.

func (m Model) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.st.Route == session.RouteCategorySelect {
		return m.updateCategorySelect(msg)
	}
	return m.updateProductSelect(msg)
}

func (m Model) viewWizard() string {
	if m.st.Route == session.RouteCategorySelect {
		return m.viewCategorySelect()
	}
	return m.viewProductSelect()
}

func (m Model) updateCategorySelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		return m.applyState(session.Navigate(session.WizardReset(m.st), session.RouteDashboard))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.categories) {
			return m.applyState(session.CategoryChosen(m.st, m.categories[m.cursor]))
		}
	}
	return m, nil
}

func (m Model) viewCategorySelect() string {
	var b strings.Builder
	b.WriteString(m.styles.Badge.Render("Paso 1 de 2") + "\n\n")
	b.WriteString(m.styles.Title.Render("Selecciona una Categoría") + "\n")
	b.WriteString(m.styles.Subtitle.Render("Elige la categoría de productos que deseas analizar") + "\n\n")

	if m.st.ErrorMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.st.ErrorMsg) + "\n")
		return b.String()
	}
	if m.loadingCatalog {
		b.WriteString(m.spin.View() + " Cargando categorías...\n")
		return b.String()
	}
	if len(m.categories) == 0 {
		b.WriteString(m.styles.Muted.Render("No hay categorías disponibles.") + "\n")
		return b.String()
	}

	for i, category := range m.categories {
		line := fmt.Sprintf("%s  %s", category.NombreCategoria,
			m.styles.Muted.Render(fmt.Sprintf("%d productos", category.TotalProductos)))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› "+category.NombreCategoria) + "  " +
				m.styles.Muted.Render(fmt.Sprintf("%d productos", category.TotalProductos)))
		} else {
			b.WriteString(m.styles.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) updateProductSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showNewProduct {
		return m.updateNewProductPrompt(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		// Back to category selection, keeping nothing from this step.
		m.st.SelectedProducts = nil
		return m.navigate(session.RouteCategorySelect)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(m.products) {
			m.st = session.ProductToggled(m.st, m.products[m.cursor])
		}
	case "n":
		m.showNewProduct = true
		m.productPrompt.Focus()
		return m, nil
	case "enter":
		if len(m.st.SelectedProducts) == 0 {
			m.st.ErrorMsg = "Debes seleccionar al menos un producto"
			return m, nil
		}
		return m.navigate(session.RouteAnalysisBatch)
	}
	return m, nil
}

func (m Model) updateNewProductPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.showNewProduct = false
			m.productPrompt.Reset()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.productPrompt.Value())
			if name == "" {
				return m, nil
			}
			return m, m.createProductCmd(name)
		}
	}

	var cmd tea.Cmd
	m.productPrompt, cmd = m.productPrompt.Update(msg)
	return m, cmd
}

func (m Model) viewProductSelect() string {
	var b strings.Builder
	b.WriteString(m.styles.Badge.Render("Paso 2 de 2") + "\n\n")

	if m.st.Category != nil {
		b.WriteString(m.styles.Muted.Render("Categoría seleccionada") + "\n")
		b.WriteString(m.styles.Title.Render(m.st.Category.NombreCategoria) + "\n")
	}
	b.WriteString(m.styles.Subtitle.Render("Puedes seleccionar múltiples productos o crear nuevos") + "\n\n")

	if m.showNewProduct {
		b.WriteString(m.styles.Card.Render("Nuevo Producto\n\n"+m.productPrompt.View()) + "\n")
		return b.String()
	}

	if m.st.ErrorMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.st.ErrorMsg) + "\n")
	}
	if m.loadingCatalog {
		b.WriteString(m.spin.View() + " Cargando productos...\n")
		return b.String()
	}

	selected := make(map[int64]bool, len(m.st.SelectedProducts))
	for _, p := range m.st.SelectedProducts {
		selected[p.ProductoID] = true
	}

	for i, product := range m.products {
		mark := "[ ]"
		if selected[product.ProductoID] {
			mark = m.styles.Success.Render("[x]")
		}
		line := fmt.Sprintf("%s %s  %s", mark, product.NombreProducto,
			m.styles.Muted.Render(fmt.Sprintf("%d análisis previos", product.TotalMenciones)))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("›") + " " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if count := len(m.st.SelectedProducts); count > 0 {
		b.WriteString("\n" + m.styles.Success.Render(
			fmt.Sprintf("%d producto(s) seleccionados — enter para continuar al análisis", count)) + "\n")
	}
	return b.String()
}
