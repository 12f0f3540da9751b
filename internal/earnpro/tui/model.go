// Package tui implements the EarnPro terminal client: login/signup,
// the main member screens (dashboard, tasks, wallet, profile) and the
// admin console, all driven by a single Bubble Tea model.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/session"
	"github.com/ezsaad07/earnpro-frontend/pkg/logger"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

// Overlay identifiers. At most one overlay is active at a time.
const (
	overlayNone          = ""
	overlayConfirm       = "confirm"
	overlayDeposit       = "deposit"
	overlayWithdraw      = "withdraw"
	overlayTxHistory     = "tx_history"
	overlayTaskHistory   = "task_history"
	overlayEditProfile   = "edit_profile"
	overlayPaymentMethod = "payment_method"
	overlayPlan          = "plan"
	overlayAdminBalance  = "admin_balance"
	overlayAdminPlan     = "admin_plan"
	overlayReject        = "reject"
)

type Model struct {
	svc       api.Service
	store     *session.Store
	statePath string

	router      Router
	keys        sharedtui.CommonKeys
	helpOverlay sharedtui.HelpOverlay
	toasts      toastQueue
	mdCache     *MarkdownCache

	width  int
	height int

	overlay        string
	modalForm      form
	modalSubject   string // user or withdrawal id the modal acts on
	confirmAction  string
	confirmID      string
	confirmMessage string

	restoring bool // profile fetch for a token that survived a restart

	login     loginState
	signup    signupState
	dashboard dashboardState
	tasks     tasksState
	wallet    walletState
	profile   profileState
	admin     adminState
}

// NewModel wires the model to a backend and session store. statePath
// is where UI state is persisted between runs; empty disables it.
func NewModel(svc api.Service, store *session.Store, statePath string) Model {
	m := Model{
		svc:         svc,
		store:       store,
		statePath:   statePath,
		router:      NewRouter(),
		keys:        sharedtui.NewCommonKeys(),
		helpOverlay: sharedtui.NewHelpOverlay(),
		mdCache:     NewMarkdownCache(),
		width:       120,
		height:      40,
		login:       newLoginState(),
		signup:      newSignupState(),
		tasks:       newTasksState(),
		admin:       newAdminState(),
	}
	// A token that survived the last run means the session should be
	// resumed, not re-entered through the login form.
	m.restoring = store.HasToken()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.restoring {
		cmds = append(cmds, m.cmdLoadProfile())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sharedtui.ToggleHelpMsg:
		m.helpOverlay.Toggle()
		return m, nil

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.login.loading {
			var cmd tea.Cmd
			m.login.spin, cmd = m.login.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.signup.loading {
			var cmd tea.Cmd
			m.signup.spin, cmd = m.signup.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case searchSettledMsg:
		if msg.seq == m.admin.searchSeq {
			m.admin.applySearch()
		}
		return m, nil

	case errMsg:
		return m.handleError(msg)

	case loginDoneMsg:
		return m.handleAuthenticated(msg.resp, "Welcome back, "+forms.SanitizeInput(msg.resp.User.Name)+"!")

	case signupDoneMsg:
		return m.handleAuthenticated(msg.resp,
			"Welcome to EarnPro, "+forms.SanitizeInput(msg.resp.User.Name)+"! Your account has been created with a $5.00 welcome bonus.")

	case loggedOutMsg:
		return m, nil

	case profileLoadedMsg:
		m.store.SetUser(msg.user)
		m.dashboard.loading = false
		if m.restoring {
			m.restoring = false
			return m.enterApp(nil)
		}
		return m, nil

	case statsLoadedMsg:
		m.dashboard.stats = msg.stats
		m.dashboard.loading = false
		return m, nil

	case profileSavedMsg:
		m.store.SetUser(msg.user)
		m.profile.saving = false
		m.overlay = overlayNone
		return m, m.toasts.push(toastSuccess, "Profile updated")

	case tasksLoadedMsg:
		m.tasks.tasks = msg.tasks
		m.tasks.loading = false
		m.tasks.clampSelection()
		return m, nil

	case taskCompletedMsg:
		m.tasks.inflight = ""
		m.store.SetBalance(msg.balance)
		return m, m.toasts.push(toastSuccess, "+"+forms.FormatCurrency(msg.reward)+" earned!")

	case taskHistoryLoadedMsg:
		m.tasks.history = msg.tasks
		return m, nil

	case transactionsLoadedMsg:
		m.wallet.txs = msg.txs
		m.wallet.loading = false
		return m, nil

	case paymentMethodsLoadedMsg:
		m.wallet.methods = msg.methods
		if n := len(msg.methods); n > 0 {
			pm := msg.methods[n-1]
			m.profile.paymentMethod = &pm
		}
		return m, nil

	case paymentMethodSavedMsg:
		pm := msg.method
		m.profile.paymentMethod = &pm
		m.profile.saving = false
		m.wallet.methods = append(m.wallet.methods, pm)
		m.overlay = overlayNone
		return m, m.toasts.push(toastSuccess, "Payment method added")

	case walletActionMsg:
		m.wallet.loading = false
		m.overlay = overlayNone
		// Show the confirmed transaction immediately; the reload below
		// replaces the slice with the server's ordering.
		m.wallet.txs = append([]domain.Transaction{msg.tx}, m.wallet.txs...)
		note := "Deposit submitted"
		if msg.kind == "withdraw" {
			note = "Withdrawal requested"
		}
		return m, tea.Batch(
			m.toasts.push(toastSuccess, note),
			m.cmdLoadTransactions(),
			m.cmdLoadDashboard(),
		)

	case adminStatsLoadedMsg:
		m.admin.stats = msg.stats
		m.admin.loading = false
		return m, nil

	case adminUsersLoadedMsg:
		m.admin.users = msg.users
		m.admin.applySearch()
		m.admin.loading = false
		return m, nil

	case withdrawalsLoadedMsg:
		m.admin.withdrawals = msg.withdrawals
		m.admin.clampSelection()
		return m, nil

	case adminActionDoneMsg:
		m.overlay = overlayNone
		return m, tea.Batch(m.toasts.push(toastSuccess, msg.note), m.cmdLoadAdmin())
	}
	return m, nil
}

// handleAuthenticated installs the session and routes to the right
// screen for the user's role.
func (m Model) handleAuthenticated(resp api.AuthResponse, welcome string) (tea.Model, tea.Cmd) {
	m.login.loading = false
	m.signup.loading = false
	m.store.Start(resp.Token, resp.User)
	return m.enterApp(m.toasts.push(toastSuccess, welcome))
}

func (m Model) enterApp(toastCmd tea.Cmd) (tea.Model, tea.Cmd) {
	section := SectionDashboard
	if state, err := LoadUIState(m.statePath); err == nil && state.Section != "" {
		section = state.Section
	}
	var loadCmd tea.Cmd
	if m.store.IsAdmin() {
		m.router.Reset(ScreenAdmin, section)
		m.admin.loading = true
		loadCmd = m.cmdLoadAdmin()
	} else {
		m.router.Reset(ScreenMain, section)
		loadCmd = tea.Batch(m.cmdLoadDashboard(), m.sectionLoadCmd(section))
	}
	return m, tea.Batch(toastCmd, loadCmd)
}

func (m Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, api.ErrUnauthorized) {
		return m.handleSessionExpired()
	}

	m.login.loading = false
	m.signup.loading = false
	m.dashboard.loading = false
	m.tasks.loading = false
	m.wallet.loading = false
	m.profile.saving = false
	m.admin.loading = false
	m.restoring = false

	logger.Get().Warn().Str("scope", msg.scope).Err(msg.err).Msg("request failed")

	var cmds []tea.Cmd
	if msg.scope == "tasks" && m.tasks.inflight != "" {
		// The optimistic completion guessed wrong; reload the
		// authoritative state.
		m.tasks.inflight = ""
		cmds = append(cmds, m.cmdLoadTasks(), m.cmdLoadDashboard())
	}
	cmds = append(cmds, m.toasts.push(toastError, msg.err.Error()))
	return m, tea.Batch(cmds...)
}

// handleSessionExpired destroys the session and forces the login
// screen, whatever the user was doing.
func (m Model) handleSessionExpired() (tea.Model, tea.Cmd) {
	m.store.Clear()
	m.restoring = false
	m.overlay = overlayNone
	m.login = newLoginState()
	m.router.Reset(ScreenLogin, SectionDashboard)
	return m, m.toasts.push(toastError, "Session expired. Please log in again.")
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.saveUIState()
		return m, sharedtui.HandleCommon(msg, m.keys)
	}

	if m.helpOverlay.Visible {
		m.helpOverlay.Toggle()
		return m, nil
	}

	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch m.router.Screen() {
	case ScreenLogin:
		return m, m.handleLoginKey(msg)
	case ScreenSignup:
		if msg.String() == "esc" {
			m.router.ShowScreen(ScreenLogin)
			return m, nil
		}
		return m, m.handleSignupKey(msg)
	case ScreenAdmin:
		return m.handleAdminScreenKey(msg)
	default:
		return m.handleMainScreenKey(msg)
	}
}

func (m Model) handleMainScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		return m, sharedtui.HandleCommon(msg, m.keys)
	case "esc":
		m.router.Back()
		return m, nil
	case "ctrl+f":
		m.router.Forward()
		return m, nil
	case "1", "2", "3", "4":
		section := []string{SectionDashboard, SectionTasks, SectionWallet, SectionProfile}[int(msg.String()[0]-'1')]
		m.router.ShowContent(section)
		m.saveUIState()
		return m, m.sectionLoadCmd(section)
	case "r":
		return m, tea.Batch(m.cmdLoadDashboard(), m.sectionLoadCmd(m.router.Section()))
	}

	switch m.router.Section() {
	case SectionTasks:
		return m, m.handleTasksKey(msg)
	case SectionWallet:
		return m, m.handleWalletKey(msg)
	case SectionProfile:
		return m, m.handleProfileKey(msg)
	}
	return m, nil
}

func (m Model) handleAdminScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.admin.searching {
		return m, m.handleAdminKey(msg)
	}
	switch msg.String() {
	case "?":
		return m, sharedtui.HandleCommon(msg, m.keys)
	case "r":
		m.admin.loading = true
		return m, m.cmdLoadAdmin()
	case "l":
		m.confirm("logout", "", "Log out of EarnPro?")
		return m, nil
	}
	return m, m.handleAdminKey(msg)
}

// sectionLoadCmd returns the fetch command for a main-screen section
// and flips its loading flag.
func (m *Model) sectionLoadCmd(section string) tea.Cmd {
	switch section {
	case SectionTasks:
		m.tasks.loading = true
		return m.cmdLoadTasks()
	case SectionWallet:
		m.wallet.loading = true
		return m.cmdLoadWallet()
	case SectionProfile:
		return m.cmdLoadPaymentMethods()
	case SectionDashboard:
		return m.cmdLoadDashboard()
	}
	return nil
}

// confirm opens the confirmation overlay for a destructive action.
func (m *Model) confirm(action, id, message string) {
	m.overlay = overlayConfirm
	m.confirmAction = action
	m.confirmID = id
	m.confirmMessage = message
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.overlay = overlayNone
		return m, nil
	}

	switch m.overlay {
	case overlayConfirm:
		if msg.String() == "enter" {
			return m.runConfirmedAction()
		}
		return m, nil

	case overlayTxHistory, overlayTaskHistory:
		return m, nil

	case overlayPlan:
		return m, m.handlePlanOverlayKey(msg)

	case overlayAdminPlan:
		return m, m.handleAdminPlanOverlayKey(msg)
	}

	// Remaining overlays are input forms.
	switch msg.String() {
	case "tab", "down":
		m.modalForm.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.modalForm.focusPrev()
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		m.modalForm.cycleOption(delta)
		switch m.overlay {
		case overlayWithdraw:
			m.syncWithdrawDetailField()
		case overlayPaymentMethod:
			m.syncPaymentMethodFields()
		}
		return m, nil
	case "enter":
		if m.modalForm.focus < len(m.modalForm.inputs)-1 {
			m.modalForm.focusNext()
			return m, nil
		}
		return m, m.submitOverlay()
	}
	return m, m.modalForm.update(msg)
}

func (m *Model) submitOverlay() tea.Cmd {
	switch m.overlay {
	case overlayDeposit:
		return m.submitDeposit()
	case overlayWithdraw:
		return m.submitWithdraw()
	case overlayEditProfile:
		return m.submitEditProfile()
	case overlayPaymentMethod:
		return m.submitPaymentMethod()
	case overlayAdminBalance:
		return m.submitAdminBalance()
	case overlayReject:
		return m.submitReject()
	}
	return nil
}

func (m Model) runConfirmedAction() (tea.Model, tea.Cmd) {
	action, id := m.confirmAction, m.confirmID
	m.overlay = overlayNone
	m.confirmAction = ""
	m.confirmID = ""
	switch action {
	case "logout":
		cmd := m.cmdLogout()
		m.store.Clear()
		m.login = newLoginState()
		m.signup = newSignupState()
		m.tasks = newTasksState()
		m.wallet = walletState{}
		m.profile = profileState{}
		m.admin = newAdminState()
		m.router.Reset(ScreenLogin, SectionDashboard)
		return m, tea.Batch(cmd, m.toasts.push(toastInfo, "Logged out"))
	case "approve_withdrawal":
		return m, m.cmdApproveWithdrawal(id)
	case "upgrade_plan":
		if plan, ok := domain.PlanByName(id); ok {
			m.profile.saving = true
			return m, m.cmdUpgradePlan(plan)
		}
	}
	return m, nil
}

func (m *Model) saveUIState() {
	if m.statePath == "" {
		return
	}
	state := UIState{Screen: m.router.Screen(), Section: m.router.Section()}
	if err := SaveUIState(m.statePath, state); err != nil {
		logger.Get().Warn().Err(err).Msg("persist ui state")
	}
}

func (m Model) View() string {
	body := m.renderBody()
	if m.helpOverlay.Visible {
		body = centerBlock(m.helpOverlay.Render(m.keys, m.screenHelp(), m.width), m.width, m.contentHeight())
	} else if m.overlay != overlayNone {
		body = m.renderOverlay()
	}
	return renderFrame(m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderBody() string {
	var content string
	switch m.router.Screen() {
	case ScreenLogin:
		content = m.renderLogin()
	case ScreenSignup:
		content = m.renderSignup()
	case ScreenAdmin:
		content = m.renderAdmin()
	default:
		switch m.router.Section() {
		case SectionTasks:
			content = m.renderTasks()
		case SectionWallet:
			content = m.renderWallet()
		case SectionProfile:
			content = m.renderProfile()
		default:
			content = m.renderDashboard()
		}
	}
	return sharedtui.ContentStyle.Render(content)
}

func (m Model) renderOverlay() string {
	switch m.overlay {
	case overlayConfirm:
		body := sharedtui.HelpDescStyle.Render(m.confirmMessage)
		return renderModal("Confirm", body, "enter confirm • esc cancel", m.width, m.contentHeight())
	case overlayDeposit:
		return renderModal("Deposit funds", m.modalForm.render(), "enter submit • ←/→ method • esc cancel", m.width, m.contentHeight())
	case overlayWithdraw:
		return renderModal("Withdraw funds", m.modalForm.render(), "enter submit • ←/→ method • esc cancel", m.width, m.contentHeight())
	case overlayTxHistory:
		return m.renderTxHistoryOverlay()
	case overlayTaskHistory:
		return m.renderTaskHistoryOverlay()
	case overlayEditProfile:
		return renderModal("Edit profile", m.modalForm.render(), "enter save • esc cancel", m.width, m.contentHeight())
	case overlayPaymentMethod:
		return renderModal("Payout method", m.modalForm.render(), "enter save • ←/→ type • esc cancel", m.width, m.contentHeight())
	case overlayPlan:
		return m.renderPlanOverlay()
	case overlayAdminBalance:
		return renderModal("Edit balance", m.modalForm.render(), "enter save • esc cancel", m.width, m.contentHeight())
	case overlayAdminPlan:
		return m.renderPlanOverlay()
	case overlayReject:
		return renderModal("Reject withdrawal", m.modalForm.render(), "enter reject • esc cancel", m.width, m.contentHeight())
	}
	return ""
}

func (m Model) renderTaskHistoryOverlay() string {
	var lines []string
	for _, t := range m.tasks.history {
		lines = append(lines, padRight(truncate(t.Title, 34), 34)+"  "+
			sharedtui.AmountPositiveStyle.Render(forms.FormatCurrency(t.Reward)))
	}
	if len(lines) == 0 {
		lines = []string{sharedtui.SubtitleStyle.Render("No completed tasks yet")}
	}
	return renderModal("Task history", strings.Join(lines, "\n"), "esc close", m.width, m.contentHeight())
}

func (m Model) renderHeader() string {
	left := sharedtui.TitleStyle.Render("EarnPro")
	right := ""
	if user := m.store.User(); user != nil {
		right = forms.SanitizeInput(user.Name) + "  " + sharedtui.BalanceStyle.Render(forms.FormatCurrency(user.Balance))
		if user.IsAdmin() {
			right = sharedtui.BadgeStyle.Render("ADMIN") + " " + right
		}
	}

	tabs := ""
	if m.router.Screen() == ScreenMain {
		var parts []string
		for i, section := range []string{SectionDashboard, SectionTasks, SectionWallet, SectionProfile} {
			label := fmt.Sprintf("%d %s", i+1, titleCase(section))
			if section == m.router.Section() {
				parts = append(parts, sharedtui.ActiveTabStyle.Render(label))
			} else {
				parts = append(parts, sharedtui.TabStyle.Render(label))
			}
		}
		tabs = strings.Join(parts, "")
	}

	line := left + "  " + tabs
	gap := m.width - visibleWidth(line) - visibleWidth(right) - 2
	if gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return sharedtui.HeaderStyle.Width(m.width).Render(line + right)
}

func (m Model) renderFooter() string {
	if toasts := m.toasts.render(); toasts != "" {
		return sharedtui.FooterStyle.Width(m.width).Render(toasts)
	}
	hint := sharedtui.HelpDescStyle.Render("? help • ctrl+c quit")
	return sharedtui.FooterStyle.Width(m.width).Render(hint)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// contentHeight is the body area between header and footer.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) screenHelp() []sharedtui.HelpBinding {
	switch m.router.Screen() {
	case ScreenAdmin:
		return []sharedtui.HelpBinding{
			{Key: "tab", Description: "switch pane"},
			{Key: "b", Description: "edit balance"},
			{Key: "p", Description: "change plan"},
			{Key: "a", Description: "approve withdrawal"},
			{Key: "x", Description: "reject withdrawal"},
			{Key: "l", Description: "log out"},
		}
	case ScreenMain:
		switch m.router.Section() {
		case SectionTasks:
			return []sharedtui.HelpBinding{
				{Key: "f", Description: "cycle filter"},
				{Key: "c", Description: "complete task"},
				{Key: "h", Description: "task history"},
			}
		case SectionWallet:
			return []sharedtui.HelpBinding{
				{Key: "d", Description: "deposit"},
				{Key: "w", Description: "withdraw"},
				{Key: "h", Description: "history"},
			}
		case SectionProfile:
			return []sharedtui.HelpBinding{
				{Key: "e", Description: "edit profile"},
				{Key: "p", Description: "payment method"},
				{Key: "u", Description: "upgrade plan"},
				{Key: "l", Description: "log out"},
			}
		}
	}
	return nil
}
