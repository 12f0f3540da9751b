package tui

import (
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

// errMsg reports a failed backend call. scope names the feature slice
// so the toast can say what failed.
type errMsg struct {
	scope string
	err   error
}

type loginDoneMsg struct{ resp api.AuthResponse }

type signupDoneMsg struct{ resp api.AuthResponse }

type loggedOutMsg struct{}

type profileLoadedMsg struct{ user domain.User }

type statsLoadedMsg struct{ stats domain.Stats }

type profileSavedMsg struct{ user domain.User }

type tasksLoadedMsg struct{ tasks []domain.Task }

type taskCompletedMsg struct {
	taskID  string
	reward  float64
	balance float64
}

type taskHistoryLoadedMsg struct{ tasks []domain.Task }

type transactionsLoadedMsg struct{ txs []domain.Transaction }

// walletActionMsg reports a successful deposit or withdrawal.
type walletActionMsg struct {
	kind string // "deposit" or "withdraw"
	tx   domain.Transaction
}

type paymentMethodsLoadedMsg struct{ methods []domain.PaymentMethod }

type paymentMethodSavedMsg struct{ method domain.PaymentMethod }

type adminStatsLoadedMsg struct{ stats domain.AdminStats }

type adminUsersLoadedMsg struct{ users []domain.User }

type withdrawalsLoadedMsg struct{ withdrawals []domain.Withdrawal }

// adminActionDoneMsg reports a completed admin mutation; note becomes
// the success toast.
type adminActionDoneMsg struct{ note string }

// searchSettledMsg fires after the debounce window; stale sequence
// numbers are dropped.
type searchSettledMsg struct{ seq int }
