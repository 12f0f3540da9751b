package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/auth"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
)

type loginState struct {
	form    form
	loading bool
	spin    spinner.Model
}

func newLoginState() loginState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return loginState{
		form: newForm(
			field{label: "Email", placeholder: "you@example.com", limit: 120},
			field{label: "Password", placeholder: "password", secret: true, limit: 120},
		),
		spin: s,
	}
}

// submit validates locally and returns the login command, or nil when
// validation failed.
func (m *Model) submitLogin() tea.Cmd {
	st := &m.login
	st.form.clearErrors()
	email := st.form.value(loginFieldEmail)
	password := st.form.value(loginFieldPassword)

	fe := auth.ValidateLogin(email, password)
	if !fe.Valid() {
		st.form.setError(loginFieldEmail, fe["email"])
		st.form.setError(loginFieldPassword, fe["password"])
		return nil
	}
	st.loading = true
	return tea.Batch(m.cmdLogin(email, password), st.spin.Tick)
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.login
	if st.loading {
		return nil
	}
	switch msg.String() {
	case "tab", "down":
		st.form.focusNext()
		return nil
	case "shift+tab", "up":
		st.form.focusPrev()
		return nil
	case "enter":
		if st.form.focus == loginFieldPassword {
			return m.submitLogin()
		}
		st.form.focusNext()
		return nil
	case "ctrl+s":
		m.router.ShowScreen(ScreenSignup)
		return nil
	}
	return st.form.update(msg)
}

func (m Model) renderLogin() string {
	st := m.login
	lines := []string{
		sharedtui.TitleStyle.Render("EarnPro"),
		sharedtui.SubtitleStyle.Render("Sign in to continue earning"),
		"",
		st.form.render(),
	}
	if st.loading {
		lines = append(lines, "", st.spin.View()+" Signing in…")
	}
	lines = append(lines, "",
		sharedtui.HelpKeyStyle.Render("enter")+sharedtui.HelpDescStyle.Render(" sign in")+
			sharedtui.HelpDescStyle.Render(" • ")+
			sharedtui.HelpKeyStyle.Render("ctrl+s")+sharedtui.HelpDescStyle.Render(" create account"))

	card := sharedtui.CardStyle.Width(min(48, m.width-4)).Render(strings.Join(lines, "\n"))
	return centerBlock(card, m.width, m.contentHeight())
}
