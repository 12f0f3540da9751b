package tui

import (
	"fmt"
	"strings"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

type dashboardState struct {
	stats   domain.Stats
	loading bool
}

func (m Model) renderDashboard() string {
	user := m.store.User()
	if user == nil {
		return sharedtui.SubtitleStyle.Render("Loading profile…")
	}
	st := m.dashboard

	balanceCard := sharedtui.CardStyle.Render(strings.Join([]string{
		sharedtui.LabelStyle.Render("Available balance"),
		sharedtui.BalanceStyle.Render(forms.FormatCurrency(user.Balance)),
		"",
		sharedtui.LabelStyle.Render("Plan ") + sharedtui.PlanBadge(user.Plan),
	}, "\n"))

	statCard := func(label, value string) string {
		return sharedtui.CardStyle.Render(
			sharedtui.LabelStyle.Render(label) + "\n" + sharedtui.TitleStyle.Render(value))
	}
	earnedCard := statCard("Total earned", forms.FormatCurrency(st.stats.TotalEarned))
	tasksCard := statCard("Tasks completed", fmt.Sprintf("%d", st.stats.TasksCompleted))
	notifCard := statCard("Notifications", fmt.Sprintf("%d unread", st.stats.Notifications))

	var body string
	if layoutMode(m.width) == LayoutModeSingle {
		body = strings.Join([]string{balanceCard, earnedCard, tasksCard, notifCard}, "\n")
	} else {
		top := joinColumns(strings.Split(balanceCard, "\n"), strings.Split(earnedCard, "\n"), 36)
		bottom := joinColumns(strings.Split(tasksCard, "\n"), strings.Split(notifCard, "\n"), 36)
		body = top + "\n" + bottom
	}

	greeting := sharedtui.TitleStyle.Render("Welcome back, "+forms.SanitizeInput(user.Name)) + "\n"
	if st.loading {
		greeting += sharedtui.SubtitleStyle.Render("Refreshing…") + "\n"
	}
	return greeting + "\n" + body
}
