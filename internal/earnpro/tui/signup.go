package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/auth"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
)

type signupState struct {
	form    form
	loading bool
	spin    spinner.Model
}

func newSignupState() signupState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return signupState{
		form: newForm(
			field{label: "Full name", placeholder: "Jane Doe", limit: 80},
			field{label: "Email", placeholder: "you@example.com", limit: 120},
			field{label: "Password", placeholder: "min 8 chars, Aa1", secret: true, limit: 120},
			field{label: "Confirm password", secret: true, limit: 120},
		),
		spin: s,
	}
}

func (m *Model) submitSignup() tea.Cmd {
	st := &m.signup
	st.form.clearErrors()
	name := st.form.value(signupFieldName)
	email := st.form.value(signupFieldEmail)
	password := st.form.inputs[signupFieldPassword].Value()
	confirm := st.form.inputs[signupFieldConfirm].Value()

	fe := auth.ValidateSignup(name, email, password, confirm)
	if !fe.Valid() {
		st.form.setError(signupFieldName, fe["name"])
		st.form.setError(signupFieldEmail, fe["email"])
		st.form.setError(signupFieldPassword, fe["password"])
		st.form.setError(signupFieldConfirm, fe["confirm"])
		return nil
	}
	st.loading = true
	return tea.Batch(m.cmdSignup(api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}), st.spin.Tick)
}

func (m *Model) handleSignupKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.signup
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
		if st.form.focus == signupFieldConfirm {
			return m.submitSignup()
		}
		st.form.focusNext()
		return nil
	}
	return st.form.update(msg)
}

func (m Model) renderSignup() string {
	st := m.signup
	lines := []string{
		sharedtui.TitleStyle.Render("Create your EarnPro account"),
		sharedtui.SubtitleStyle.Render("New accounts start with a $5.00 welcome bonus"),
		"",
		st.form.render(),
	}
	if password := st.form.inputs[signupFieldPassword].Value(); password != "" {
		score, label := forms.PasswordStrength(password)
		bar := strings.Repeat("█", score) + strings.Repeat("░", 4-score)
		style := sharedtui.FieldErrorStyle
		if score >= 3 {
			style = sharedtui.AmountPositiveStyle
		}
		lines = append(lines, "", style.Render(bar+" "+label))
	}
	if st.loading {
		lines = append(lines, "", st.spin.View()+" Creating account…")
	}
	lines = append(lines, "",
		sharedtui.HelpKeyStyle.Render("enter")+sharedtui.HelpDescStyle.Render(" create account")+
			sharedtui.HelpDescStyle.Render(" • ")+
			sharedtui.HelpKeyStyle.Render("esc")+sharedtui.HelpDescStyle.Render(" back to sign in"))

	card := sharedtui.CardStyle.Width(min(52, m.width-4)).Render(strings.Join(lines, "\n"))
	return centerBlock(card, m.width, m.contentHeight())
}
