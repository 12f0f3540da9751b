package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/demo"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/session"
)

// newTestModel wires a model to the in-memory demo backend and a temp
// session store.
func newTestModel(t *testing.T) (Model, *demo.Server, *session.Store) {
	t.Helper()
	dir := t.TempDir()
	store := session.NewStore(filepath.Join(dir, "token"))
	svc := demo.New()
	m := NewModel(svc, store, filepath.Join(dir, "ui.json"))
	return m, svc, store
}

// loggedInModel returns a model with an installed member session on the
// main screen.
func loggedInModel(t *testing.T, user domain.User) (Model, *session.Store) {
	t.Helper()
	m, _, store := newTestModel(t)
	store.Start("tok", user)
	m.router.Reset(ScreenMain, SectionDashboard)
	return m, store
}

func pressKey(m Model, key string) Model {
	m2, _ := updateKey(m, key)
	return m2
}

// updateKey applies a key and returns the command for tests that need
// to inspect it.
func updateKey(m Model, key string) (Model, tea.Cmd) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(m Model, input string) Model {
	for _, r := range input {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func apply(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func memberResponse() api.AuthResponse {
	return api.AuthResponse{
		Token: "tok-user",
		User: domain.User{
			ID: "u1", Name: "Demo User", Email: "demo@example.com",
			Role: domain.RoleUser, Plan: "Basic", Balance: 5,
		},
	}
}

func adminResponse() api.AuthResponse {
	return api.AuthResponse{
		Token: "tok-admin",
		User: domain.User{
			ID: "a1", Name: "Admin User", Email: "admin@earnpro.com",
			Role: domain.RoleAdmin, Plan: "Diamond", Balance: 999999.99,
		},
	}
}
