package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/session"
)

// Field order mirrors the forms: login is email+password, register is
// first name, last name, email, password.
const (
	loginFieldEmail = iota
	loginFieldPassword
)

const (
	registerFieldName = iota
	registerFieldLastName
	registerFieldEmail
	registerFieldPassword
)

func (m *Model) buildAuthInputs() {
	var labels []string
	if m.st.Route == session.RouteRegister {
		labels = []string{"Nombre", "Apellido", "Correo", "Contraseña"}
	} else {
		labels = []string{"Correo", "Contraseña"}
	}

	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		if label == "Contraseña" {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.inputs[i] = in
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		m.buildAuthInputs()
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m.navigate(session.RouteLanding)
		case "tab", "shift+tab", "down", "up":
			if key.String() == "tab" || key.String() == "down" {
				m.focus = (m.focus + 1) % len(m.inputs)
			} else {
				m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			}
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			return m.submitAuth()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.st.Route == session.RouteRegister {
		req := models.RegisterRequest{
			Nombre:     strings.TrimSpace(m.inputs[registerFieldName].Value()),
			Apellido:   strings.TrimSpace(m.inputs[registerFieldLastName].Value()),
			Correo:     strings.TrimSpace(m.inputs[registerFieldEmail].Value()),
			Contrasena: m.inputs[registerFieldPassword].Value(),
		}
		if req.Correo == "" || req.Contrasena == "" {
			m.st.ErrorMsg = "Correo y contraseña son obligatorios"
			return m, nil
		}
		return m, m.registerCmd(req)
	}

	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()
	if email == "" || password == "" {
		m.st.ErrorMsg = "Correo y contraseña son obligatorios"
		return m, nil
	}
	return m, m.loginCmd(email, password)
}

func (m Model) viewAuth() string {
	title := "Iniciar Sesión"
	if m.st.Route == session.RouteRegister {
		title = "Crear Cuenta"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title) + "\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	for _, notice := range m.st.Notices {
		b.WriteString("\n" + m.styles.Success.Render(notice))
	}
	if m.st.ErrorMsg != "" {
		b.WriteString("\n" + m.styles.ErrorBanner.Render(m.st.ErrorMsg))
	}

	return m.styles.Card.Render(b.String())
}
