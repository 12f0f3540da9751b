package api

import (
	"context"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

// Service is the full backend surface the application consumes. It is
// implemented by *Client against a real backend and by the demo package
// for offline use.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (domain.User, error)
	Stats(ctx context.Context) (domain.Stats, error)
	UpgradePlan(ctx context.Context, planID int) (domain.User, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, pm domain.PaymentMethod) (domain.PaymentMethod, error)

	Tasks(ctx context.Context) ([]domain.Task, error)
	CompleteTask(ctx context.Context, taskID string) (CompleteTaskResponse, error)
	TaskHistory(ctx context.Context, page Page) ([]domain.Task, error)

	Transactions(ctx context.Context, page Page, typ domain.TransactionType) ([]domain.Transaction, error)
	Transaction(ctx context.Context, id string) (domain.Transaction, error)
	Deposit(ctx context.Context, amount float64, method string) (domain.Transaction, error)
	Withdraw(ctx context.Context, amount float64, method string, details map[string]string) (domain.Transaction, error)

	AdminStats(ctx context.Context) (domain.AdminStats, error)
	AdminUsers(ctx context.Context, page Page, search string) ([]domain.User, error)
	SetUserBalance(ctx context.Context, userID string, balance float64) error
	SetUserPlan(ctx context.Context, userID, plan string) error
	PendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id string) error
	RejectWithdrawal(ctx context.Context, id, reason string) error
}

var _ Service = (*Client)(nil)
