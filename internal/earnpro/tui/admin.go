package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

const (
	adminPaneUsers       = "users"
	adminPaneWithdrawals = "withdrawals"
)

type adminState struct {
	stats       domain.AdminStats
	users       []domain.User
	filtered    []domain.User
	withdrawals []domain.Withdrawal
	pane        string
	selUser     int
	selWd       int
	search      textinput.Model
	searching   bool
	searchSeq   int
	loading     bool
}

func newAdminState() adminState {
	ti := textinput.New()
	ti.Placeholder = "search users"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	return adminState{pane: adminPaneUsers, search: ti}
}

// userSearchTargets adapts users to fuzzy.Source over "name email".
type userSearchTargets []domain.User

func (u userSearchTargets) String(i int) string { return u[i].Name + " " + u[i].Email }
func (u userSearchTargets) Len() int            { return len(u) }

// applySearch filters the cached user list with fuzzy matching. An
// empty query restores the full list.
func (st *adminState) applySearch() {
	query := strings.TrimSpace(st.search.Value())
	if query == "" {
		st.filtered = st.users
		st.clampSelection()
		return
	}
	matches := fuzzy.FindFrom(query, userSearchTargets(st.users))
	out := make([]domain.User, 0, len(matches))
	for _, match := range matches {
		out = append(out, st.users[match.Index])
	}
	st.filtered = out
	st.clampSelection()
}

func (st *adminState) clampSelection() {
	if n := len(st.filtered); st.selUser >= n && n > 0 {
		st.selUser = n - 1
	} else if n == 0 {
		st.selUser = 0
	}
	if n := len(st.withdrawals); st.selWd >= n && n > 0 {
		st.selWd = n - 1
	} else if n == 0 {
		st.selWd = 0
	}
}

func (st *adminState) selectedUser() *domain.User {
	if len(st.filtered) == 0 || st.selUser >= len(st.filtered) {
		return nil
	}
	return &st.filtered[st.selUser]
}

func (st *adminState) selectedWithdrawal() *domain.Withdrawal {
	if len(st.withdrawals) == 0 || st.selWd >= len(st.withdrawals) {
		return nil
	}
	return &st.withdrawals[st.selWd]
}

func (m *Model) handleAdminKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.admin

	if st.searching {
		switch msg.String() {
		case "esc":
			st.searching = false
			st.search.Blur()
			return nil
		case "enter":
			st.searching = false
			st.search.Blur()
			st.applySearch()
			return nil
		}
		var cmd tea.Cmd
		st.search, cmd = st.search.Update(msg)
		st.searchSeq++
		return tea.Batch(cmd, cmdDebounceSearch(st.searchSeq))
	}

	switch msg.String() {
	case "/":
		st.searching = true
		st.search.Focus()
		return nil
	case "tab":
		if st.pane == adminPaneUsers {
			st.pane = adminPaneWithdrawals
		} else {
			st.pane = adminPaneUsers
		}
		return nil
	case "j", "down":
		if st.pane == adminPaneUsers && st.selUser < len(st.filtered)-1 {
			st.selUser++
		} else if st.pane == adminPaneWithdrawals && st.selWd < len(st.withdrawals)-1 {
			st.selWd++
		}
		return nil
	case "k", "up":
		if st.pane == adminPaneUsers && st.selUser > 0 {
			st.selUser--
		} else if st.pane == adminPaneWithdrawals && st.selWd > 0 {
			st.selWd--
		}
		return nil
	case "b":
		if user := st.selectedUser(); user != nil && st.pane == adminPaneUsers {
			f := newForm(field{label: "New balance for " + forms.SanitizeInput(user.Name), limit: 12})
			f.setValue(0, fmt.Sprintf("%.2f", user.Balance))
			m.modalForm = f
			m.modalSubject = user.ID
			m.overlay = overlayAdminBalance
		}
		return nil
	case "p":
		if user := st.selectedUser(); user != nil && st.pane == adminPaneUsers {
			m.modalSubject = user.ID
			m.profile.planIndex = currentPlanIndex(user)
			m.overlay = overlayAdminPlan
		}
		return nil
	case "a":
		if wd := st.selectedWithdrawal(); wd != nil && st.pane == adminPaneWithdrawals {
			m.confirm("approve_withdrawal", wd.ID,
				"Approve "+forms.FormatCurrency(wd.Amount)+" withdrawal for "+forms.SanitizeInput(wd.UserName)+"?")
		}
		return nil
	case "x":
		if wd := st.selectedWithdrawal(); wd != nil && st.pane == adminPaneWithdrawals {
			m.modalForm = newForm(field{label: "Rejection reason", limit: 200})
			m.modalSubject = wd.ID
			m.overlay = overlayReject
		}
		return nil
	}
	return nil
}

func (m *Model) submitAdminBalance() tea.Cmd {
	if m.admin.loading {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	balance, err := forms.ParseAmount(f.value(0))
	if err != nil {
		f.setError(0, err.Error())
		return nil
	}
	if balance < 0 {
		f.setError(0, "Balance cannot be negative")
		return nil
	}
	m.admin.loading = true
	return m.cmdSetUserBalance(m.modalSubject, balance)
}

func (m *Model) submitReject() tea.Cmd {
	if m.admin.loading {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	reason := forms.SanitizeInput(f.value(0))
	if reason == "" {
		f.setError(0, "A reason is required")
		return nil
	}
	m.admin.loading = true
	return m.cmdRejectWithdrawal(m.modalSubject, reason)
}

func (m *Model) handleAdminPlanOverlayKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.profile
	plans := domain.Plans()
	switch msg.String() {
	case "j", "down":
		if st.planIndex < len(plans)-1 {
			st.planIndex++
		}
	case "k", "up":
		if st.planIndex > 0 {
			st.planIndex--
		}
	case "enter":
		plan := plans[st.planIndex]
		m.overlay = overlayNone
		return m.cmdSetUserPlan(m.modalSubject, plan.Name)
	}
	return nil
}

func (m Model) renderAdmin() string {
	st := m.admin
	var b strings.Builder

	statLine := fmt.Sprintf("%s %d   %s %d   %s %s",
		sharedtui.LabelStyle.Render("Users"), st.stats.TotalUsers,
		sharedtui.LabelStyle.Render("Pending withdrawals"), st.stats.PendingWithdrawals,
		sharedtui.LabelStyle.Render("Platform balance"), sharedtui.BalanceStyle.Render(forms.FormatCurrency(st.stats.TotalBalance)))
	b.WriteString(statLine)
	b.WriteString("\n\n")

	if st.searching || st.search.Value() != "" {
		b.WriteString(st.search.View())
		b.WriteString("\n\n")
	}

	users := m.renderAdminUsers()
	withdrawals := m.renderAdminWithdrawals()
	if layoutMode(m.width) == LayoutModeDual {
		b.WriteString(joinColumns(strings.Split(users, "\n"), strings.Split(withdrawals, "\n"), m.width/2-2))
	} else {
		b.WriteString(users)
		b.WriteString("\n\n")
		b.WriteString(withdrawals)
	}

	b.WriteString("\n\n")
	b.WriteString(sharedtui.HelpKeyStyle.Render("tab") + sharedtui.HelpDescStyle.Render(" switch pane") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("/") + sharedtui.HelpDescStyle.Render(" search") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("b") + sharedtui.HelpDescStyle.Render(" balance") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("p") + sharedtui.HelpDescStyle.Render(" plan") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("a") + sharedtui.HelpDescStyle.Render(" approve") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("x") + sharedtui.HelpDescStyle.Render(" reject"))
	return b.String()
}

func (m Model) renderAdminUsers() string {
	st := m.admin
	title := sharedtui.TitleStyle.Render("Users")
	if st.pane == adminPaneUsers {
		title = sharedtui.TitleStyle.Render("▸ Users")
	}
	rows := []string{title}
	if len(st.filtered) == 0 {
		rows = append(rows, sharedtui.SubtitleStyle.Render("No matching users"))
	}
	for i, u := range st.filtered {
		status := ""
		if !u.IsActive {
			status = sharedtui.AmountNegativeStyle.Render(" inactive")
		}
		line := fmt.Sprintf("%s %s  %s%s",
			padRight(truncate(forms.SanitizeInput(u.Name), 20), 20),
			sharedtui.PlanBadge(u.Plan),
			sharedtui.BalanceStyle.Render(forms.FormatCurrency(u.Balance)),
			status)
		if i == st.selUser && st.pane == adminPaneUsers {
			line = sharedtui.SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderAdminWithdrawals() string {
	st := m.admin
	title := sharedtui.TitleStyle.Render("Pending withdrawals")
	if st.pane == adminPaneWithdrawals {
		title = sharedtui.TitleStyle.Render("▸ Pending withdrawals")
	}
	rows := []string{title}
	if len(st.withdrawals) == 0 {
		rows = append(rows, sharedtui.SubtitleStyle.Render("Nothing waiting for review"))
	}
	for i, wd := range st.withdrawals {
		line := fmt.Sprintf("%s %s  %s",
			padRight(truncate(forms.SanitizeInput(wd.UserName), 20), 20),
			sharedtui.AmountNegativeStyle.Render(forms.FormatCurrency(wd.Amount)),
			sharedtui.LabelStyle.Render(wd.Method))
		if i == st.selWd && st.pane == adminPaneWithdrawals {
			line = sharedtui.SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
