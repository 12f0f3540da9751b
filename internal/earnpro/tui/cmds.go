package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

// searchDebounce is the settle window for the admin user search.
const searchDebounce = 300 * time.Millisecond

func (m Model) cmdLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.svc.Login(context.Background(), api.LoginRequest{Email: email, Password: password})
		if err != nil {
			return errMsg{scope: "login", err: err}
		}
		return loginDoneMsg{resp: resp}
	}
}

func (m Model) cmdSignup(req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.svc.Register(context.Background(), req)
		if err != nil {
			return errMsg{scope: "signup", err: err}
		}
		return signupDoneMsg{resp: resp}
	}
}

// cmdLogout is best-effort: the local session is destroyed regardless
// of whether the server call succeeds.
func (m Model) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		_ = m.svc.Logout(context.Background())
		return loggedOutMsg{}
	}
}

func (m Model) cmdLoadProfile() tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.Profile(context.Background())
		if err != nil {
			return errMsg{scope: "dashboard", err: err}
		}
		return profileLoadedMsg{user: user}
	}
}

func (m Model) cmdLoadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats(context.Background())
		if err != nil {
			return errMsg{scope: "dashboard", err: err}
		}
		return statsLoadedMsg{stats: stats}
	}
}

// cmdLoadDashboard fetches profile and stats in parallel.
func (m Model) cmdLoadDashboard() tea.Cmd {
	return tea.Batch(m.cmdLoadProfile(), m.cmdLoadStats())
}

func (m Model) cmdSaveProfile(upd api.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.UpdateProfile(context.Background(), upd)
		if err != nil {
			return errMsg{scope: "profile", err: err}
		}
		return profileSavedMsg{user: user}
	}
}

func (m Model) cmdLoadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.Tasks(context.Background())
		if err != nil {
			return errMsg{scope: "tasks", err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) cmdCompleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.svc.CompleteTask(context.Background(), taskID)
		if err != nil {
			return errMsg{scope: "tasks", err: err}
		}
		return taskCompletedMsg{taskID: taskID, reward: resp.Reward, balance: resp.Balance}
	}
}

func (m Model) cmdLoadTaskHistory() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.TaskHistory(context.Background(), api.Page{})
		if err != nil {
			return errMsg{scope: "tasks", err: err}
		}
		return taskHistoryLoadedMsg{tasks: tasks}
	}
}

func (m Model) cmdLoadTransactions() tea.Cmd {
	return func() tea.Msg {
		txs, err := m.svc.Transactions(context.Background(), api.Page{}, "")
		if err != nil {
			return errMsg{scope: "wallet", err: err}
		}
		return transactionsLoadedMsg{txs: txs}
	}
}

func (m Model) cmdLoadPaymentMethods() tea.Cmd {
	return func() tea.Msg {
		methods, err := m.svc.PaymentMethods(context.Background())
		if err != nil {
			return errMsg{scope: "wallet", err: err}
		}
		return paymentMethodsLoadedMsg{methods: methods}
	}
}

// cmdLoadWallet fetches transactions and payout methods in parallel.
func (m Model) cmdLoadWallet() tea.Cmd {
	return tea.Batch(m.cmdLoadTransactions(), m.cmdLoadPaymentMethods())
}

func (m Model) cmdAddPaymentMethod(pm domain.PaymentMethod) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.svc.AddPaymentMethod(context.Background(), pm)
		if err != nil {
			return errMsg{scope: "profile", err: err}
		}
		return paymentMethodSavedMsg{method: saved}
	}
}

func (m Model) cmdDeposit(amount float64, method string) tea.Cmd {
	return func() tea.Msg {
		tx, err := m.svc.Deposit(context.Background(), amount, method)
		if err != nil {
			return errMsg{scope: "wallet", err: err}
		}
		return walletActionMsg{kind: "deposit", tx: tx}
	}
}

func (m Model) cmdWithdraw(amount float64, method string, details map[string]string) tea.Cmd {
	return func() tea.Msg {
		tx, err := m.svc.Withdraw(context.Background(), amount, method, details)
		if err != nil {
			return errMsg{scope: "wallet", err: err}
		}
		return walletActionMsg{kind: "withdraw", tx: tx}
	}
}

func (m Model) cmdLoadAdminStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.AdminStats(context.Background())
		if err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminStatsLoadedMsg{stats: stats}
	}
}

func (m Model) cmdLoadAdminUsers(search string) tea.Cmd {
	return func() tea.Msg {
		users, err := m.svc.AdminUsers(context.Background(), api.Page{}, search)
		if err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminUsersLoadedMsg{users: users}
	}
}

func (m Model) cmdLoadWithdrawals() tea.Cmd {
	return func() tea.Msg {
		withdrawals, err := m.svc.PendingWithdrawals(context.Background())
		if err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return withdrawalsLoadedMsg{withdrawals: withdrawals}
	}
}

// cmdLoadAdmin fetches the whole admin slice in parallel.
func (m Model) cmdLoadAdmin() tea.Cmd {
	return tea.Batch(m.cmdLoadAdminStats(), m.cmdLoadAdminUsers(""), m.cmdLoadWithdrawals())
}

func (m Model) cmdSetUserBalance(userID string, balance float64) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.SetUserBalance(context.Background(), userID, balance); err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminActionDoneMsg{note: "Balance updated"}
	}
}

func (m Model) cmdSetUserPlan(userID, plan string) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.SetUserPlan(context.Background(), userID, plan); err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminActionDoneMsg{note: "Plan updated to " + plan}
	}
}

func (m Model) cmdApproveWithdrawal(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.ApproveWithdrawal(context.Background(), id); err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminActionDoneMsg{note: "Withdrawal approved"}
	}
}

func (m Model) cmdRejectWithdrawal(id, reason string) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.RejectWithdrawal(context.Background(), id, reason); err != nil {
			return errMsg{scope: "admin", err: err}
		}
		return adminActionDoneMsg{note: "Withdrawal rejected"}
	}
}

func (m Model) cmdUpgradePlan(plan domain.Plan) tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.UpgradePlan(context.Background(), plan.ID)
		if err != nil {
			return errMsg{scope: "profile", err: err}
		}
		return profileSavedMsg{user: user}
	}
}

func cmdDebounceSearch(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
}
