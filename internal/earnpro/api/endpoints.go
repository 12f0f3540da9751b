package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

// AuthResponse is the payload returned by login and register.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the signup form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	Referral string `json:"referralCode,omitempty"`
}

// ProfileUpdate carries editable profile fields. Nil pointers leave the
// server value unchanged.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Page selects a slice of a paginated listing. Zero values are omitted.
type Page struct {
	Page  int
	Limit int
}

func (p Page) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// CompleteTaskResponse reports the reward granted and the authoritative
// balance after a task completion.
type CompleteTaskResponse struct {
	Reward  float64 `json:"reward"`
	Balance float64 `json:"newBalance"`
}

// Login authenticates and returns the session token and user.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/auth/login", req, &out)
	return out, err
}

// Register creates an account and returns the session token and user.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/auth/register", req, &out)
	return out, err
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Profile fetches the authenticated user.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.get(ctx, "/auth/profile", nil, &out)
	return out.User, err
}

// UpdateProfile applies profile edits and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.put(ctx, "/auth/profile", upd, &out)
	return out.User, err
}

// PaymentMethods lists the saved payout methods.
func (c *Client) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var out struct {
		Methods []domain.PaymentMethod `json:"methods"`
	}
	err := c.get(ctx, "/payment-methods", nil, &out)
	return out.Methods, err
}

// AddPaymentMethod saves a payout method and returns the stored record.
func (c *Client) AddPaymentMethod(ctx context.Context, pm domain.PaymentMethod) (domain.PaymentMethod, error) {
	var out domain.PaymentMethod
	err := c.post(ctx, "/payment-methods", pm, &out)
	return out, err
}

// Stats fetches dashboard statistics for the authenticated user.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats
	err := c.get(ctx, "/user/stats", nil, &out)
	return out, err
}

// Tasks lists available tasks.
func (c *Client) Tasks(ctx context.Context) ([]domain.Task, error) {
	var out struct {
		Tasks []domain.Task `json:"tasks"`
	}
	err := c.get(ctx, "/tasks", nil, &out)
	return out.Tasks, err
}

// CompleteTask marks a task completed and returns the granted reward.
func (c *Client) CompleteTask(ctx context.Context, taskID string) (CompleteTaskResponse, error) {
	var out CompleteTaskResponse
	err := c.post(ctx, "/tasks/"+url.PathEscape(taskID)+"/complete", nil, &out)
	return out, err
}

// TaskHistory lists previously completed tasks.
func (c *Client) TaskHistory(ctx context.Context, page Page) ([]domain.Task, error) {
	var out struct {
		History []domain.Task `json:"history"`
	}
	err := c.get(ctx, "/tasks/history", page.values(), &out)
	return out.History, err
}

// Transactions lists wallet transactions, optionally filtered by type.
func (c *Client) Transactions(ctx context.Context, page Page, typ domain.TransactionType) ([]domain.Transaction, error) {
	q := page.values()
	if typ != "" {
		q.Set("type", string(typ))
	}
	var out struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	err := c.get(ctx, "/transactions", q, &out)
	return out.Transactions, err
}

// Transaction fetches a single transaction by id.
func (c *Client) Transaction(ctx context.Context, id string) (domain.Transaction, error) {
	var out domain.Transaction
	err := c.get(ctx, "/transactions/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Deposit requests a deposit through the given payment method.
func (c *Client) Deposit(ctx context.Context, amount float64, method string) (domain.Transaction, error) {
	body := map[string]any{"amount": amount, "method": method}
	var out domain.Transaction
	err := c.post(ctx, "/transactions/deposit", body, &out)
	return out, err
}

// Withdraw requests a withdrawal. details carries method-specific fields
// such as the IBAN or wallet address.
func (c *Client) Withdraw(ctx context.Context, amount float64, method string, details map[string]string) (domain.Transaction, error) {
	body := map[string]any{"amount": amount, "method": method}
	if len(details) > 0 {
		body["details"] = details
	}
	var out domain.Transaction
	err := c.post(ctx, "/transactions/withdraw", body, &out)
	return out, err
}

// UpgradePlan requests a subscription upgrade and returns the updated
// user.
func (c *Client) UpgradePlan(ctx context.Context, planID int) (domain.User, error) {
	body := map[string]int{"planId": planID}
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.post(ctx, "/plans/upgrade", body, &out)
	return out.User, err
}

// AdminStats fetches platform-wide statistics.
func (c *Client) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var out domain.AdminStats
	err := c.get(ctx, "/admin/stats", nil, &out)
	return out, err
}

// AdminUsers lists users, optionally filtered by a search term.
func (c *Client) AdminUsers(ctx context.Context, page Page, search string) ([]domain.User, error) {
	q := page.values()
	if search != "" {
		q.Set("search", search)
	}
	var out struct {
		Users []domain.User `json:"users"`
	}
	err := c.get(ctx, "/admin/users", q, &out)
	return out.Users, err
}

// SetUserBalance overwrites a user's balance.
func (c *Client) SetUserBalance(ctx context.Context, userID string, balance float64) error {
	body := map[string]float64{"balance": balance}
	return c.put(ctx, "/admin/users/"+url.PathEscape(userID)+"/balance", body, nil)
}

// SetUserPlan changes a user's subscription plan.
func (c *Client) SetUserPlan(ctx context.Context, userID, plan string) error {
	body := map[string]string{"plan": plan}
	return c.put(ctx, "/admin/users/"+url.PathEscape(userID)+"/plan", body, nil)
}

// PendingWithdrawals lists withdrawal requests awaiting review.
func (c *Client) PendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	var out struct {
		Withdrawals []domain.Withdrawal `json:"withdrawals"`
	}
	err := c.get(ctx, "/admin/withdrawals/pending", nil, &out)
	return out.Withdrawals, err
}

// ApproveWithdrawal approves a pending withdrawal.
func (c *Client) ApproveWithdrawal(ctx context.Context, id string) error {
	return c.post(ctx, "/admin/withdrawals/"+url.PathEscape(id)+"/approve", nil, nil)
}

// RejectWithdrawal rejects a pending withdrawal with a reason.
func (c *Client) RejectWithdrawal(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.post(ctx, "/admin/withdrawals/"+url.PathEscape(id)+"/reject", body, nil)
}
