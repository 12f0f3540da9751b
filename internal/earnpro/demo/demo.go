// Package demo is an in-memory backend used when no api_url is
// configured. Login and signup reproduce the hosted platform's demo
// behavior, and the data endpoints operate on seeded local state so the
// whole application works offline.
package demo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

// Demo admin credentials.
const (
	AdminEmail    = "admin@earnpro.com"
	AdminPassword = "EarnPro2024!"
)

// WelcomeBonus is granted to every new demo account.
const WelcomeBonus = 5.0

// Server implements api.Service against in-memory state. Safe for
// concurrent use; every method takes the lock.
type Server struct {
	mu           sync.Mutex
	user         domain.User
	loggedIn     bool
	tasks        []domain.Task
	history      []domain.Task
	transactions []domain.Transaction
	methods      []domain.PaymentMethod
	users        []domain.User
	withdrawals  []domain.Withdrawal
	notification int
	now          func() time.Time
}

var _ api.Service = (*Server)(nil)

// New returns a demo server with seeded catalog data.
func New() *Server {
	s := &Server{now: time.Now}
	s.seed()
	return s
}

func (s *Server) seed() {
	s.tasks = seedTasks()
	s.users = seedUsers()
	s.withdrawals = seedWithdrawals()
	s.notification = 3
}

func adminUser() domain.User {
	return domain.User{
		ID:       "admin-001",
		Name:     "Admin User",
		Email:    AdminEmail,
		Role:     domain.RoleAdmin,
		Plan:     "Diamond",
		Balance:  999999.99,
		IsActive: true,
	}
}

// Login mirrors the platform demo: the admin pair yields the admin
// session, any other non-empty pair yields a fresh demo user, empty
// fields are rejected.
func (s *Server) Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case req.Email == AdminEmail && req.Password == AdminPassword:
		s.user = adminUser()
	case req.Email != "" && req.Password != "":
		s.user = domain.User{
			ID:          "user_" + uuid.NewString()[:8],
			Name:        "Demo User",
			Email:       req.Email,
			Role:        domain.RoleUser,
			Plan:        "Basic",
			Balance:     WelcomeBonus,
			TotalEarned: WelcomeBonus,
			IsActive:    true,
		}
	default:
		return api.AuthResponse{}, &api.APIError{Status: 401, Message: "Invalid credentials"}
	}
	s.loggedIn = true
	s.transactions = seedTransactions(s.now())
	s.methods = seedPaymentMethods()
	return api.AuthResponse{Token: "demo_token_" + uuid.NewString(), User: s.user}, nil
}

// Register creates a demo account with the welcome bonus.
func (s *Server) Register(ctx context.Context, req api.RegisterRequest) (api.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return api.AuthResponse{}, &api.APIError{Status: 400, Message: "Registration failed"}
	}
	s.user = domain.User{
		ID:          "user_" + uuid.NewString()[:8],
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        domain.RoleUser,
		Plan:        "Basic",
		Balance:     WelcomeBonus,
		TotalEarned: WelcomeBonus,
		IsActive:    true,
	}
	s.loggedIn = true
	s.methods = nil
	s.transactions = []domain.Transaction{{
		ID:          uuid.NewString(),
		Type:        domain.TxDeposit,
		Amount:      WelcomeBonus,
		Description: "Welcome bonus",
		Status:      "completed",
		CreatedAt:   s.now(),
	}}
	return api.AuthResponse{Token: "demo_token_" + uuid.NewString(), User: s.user}, nil
}

func (s *Server) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	return nil
}

func (s *Server) requireAuth() error {
	if !s.loggedIn {
		return api.ErrUnauthorized
	}
	return nil
}

func (s *Server) Profile(ctx context.Context) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.User{}, err
	}
	return s.user, nil
}

func (s *Server) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.User{}, err
	}
	if upd.Name != nil {
		s.user.Name = *upd.Name
	}
	if upd.Phone != nil {
		s.user.Phone = *upd.Phone
	}
	return s.user, nil
}

func (s *Server) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	out := make([]domain.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out, nil
}

func (s *Server) AddPaymentMethod(ctx context.Context, pm domain.PaymentMethod) (domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.PaymentMethod{}, err
	}
	switch pm.Type {
	case domain.MethodBankAccount:
		if pm.BankName == "" || pm.AccountHolder == "" || pm.IBAN == "" {
			return domain.PaymentMethod{}, &api.APIError{Status: 400, Message: "Incomplete bank details"}
		}
	case domain.MethodCryptoWallet:
		if pm.WalletAddress == "" {
			return domain.PaymentMethod{}, &api.APIError{Status: 400, Message: "Wallet address is required"}
		}
	default:
		return domain.PaymentMethod{}, &api.APIError{Status: 400, Message: "Unknown payment method type"}
	}
	s.methods = append(s.methods, pm)
	return pm, nil
}

func (s *Server) Stats(ctx context.Context) (domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		TotalEarned:    s.user.TotalEarned,
		TasksCompleted: s.user.TasksCompleted,
		Notifications:  s.notification,
	}, nil
}

func (s *Server) UpgradePlan(ctx context.Context, planID int) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.User{}, err
	}
	plan, ok := domain.PlanByID(planID)
	if !ok {
		return domain.User{}, &api.APIError{Status: 400, Message: "Unknown plan"}
	}
	s.user.Plan = plan.Name
	return s.user, nil
}

func (s *Server) Tasks(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *Server) CompleteTask(ctx context.Context, taskID string) (api.CompleteTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return api.CompleteTaskResponse{}, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		if !s.tasks[i].CanComplete() {
			return api.CompleteTaskResponse{}, &api.APIError{Status: 409, Message: "Task already completed"}
		}
		s.tasks[i].Status = domain.TaskCompleted
		s.tasks[i].UserCompleted = true
		s.history = append(s.history, s.tasks[i])
		s.user.Balance += s.tasks[i].Reward
		s.user.TotalEarned += s.tasks[i].Reward
		s.user.TasksCompleted++
		s.transactions = append([]domain.Transaction{{
			ID:          uuid.NewString(),
			Type:        domain.TxTaskReward,
			Amount:      s.tasks[i].Reward,
			Description: s.tasks[i].Title,
			Status:      "completed",
			CreatedAt:   s.now(),
		}}, s.transactions...)
		return api.CompleteTaskResponse{Reward: s.tasks[i].Reward, Balance: s.user.Balance}, nil
	}
	return api.CompleteTaskResponse{}, &api.APIError{Status: 404, Message: "Task not found"}
}

func (s *Server) TaskHistory(ctx context.Context, page api.Page) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	out := make([]domain.Task, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *Server) Transactions(ctx context.Context, page api.Page, typ domain.TransactionType) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, tx := range s.transactions {
		if typ == "" || tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Server) Transaction(ctx context.Context, id string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.Transaction{}, err
	}
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return domain.Transaction{}, &api.APIError{Status: 404, Message: "Transaction not found"}
}

func (s *Server) Deposit(ctx context.Context, amount float64, method string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.Transaction{}, err
	}
	if amount <= 0 {
		return domain.Transaction{}, &api.APIError{Status: 400, Message: "Invalid amount"}
	}
	s.user.Balance += amount
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Type:        domain.TxDeposit,
		Amount:      amount,
		Description: fmt.Sprintf("Deposit via %s", methodLabel(method)),
		Status:      "completed",
		CreatedAt:   s.now(),
	}
	s.transactions = append([]domain.Transaction{tx}, s.transactions...)
	return tx, nil
}

func (s *Server) Withdraw(ctx context.Context, amount float64, method string, details map[string]string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAuth(); err != nil {
		return domain.Transaction{}, err
	}
	if amount <= 0 || amount > s.user.Balance {
		return domain.Transaction{}, &api.APIError{Status: 400, Message: "Insufficient balance"}
	}
	s.user.Balance -= amount
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Type:        domain.TxWithdrawal,
		Amount:      -amount,
		Description: fmt.Sprintf("Withdrawal via %s", methodLabel(method)),
		Status:      "pending",
		CreatedAt:   s.now(),
	}
	s.transactions = append([]domain.Transaction{tx}, s.transactions...)
	return tx, nil
}

func (s *Server) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return domain.AdminStats{}, err
	}
	var total float64
	for _, u := range s.users {
		total += u.Balance
	}
	pending := 0
	for _, w := range s.withdrawals {
		if w.Status == "pending" {
			pending++
		}
	}
	return domain.AdminStats{
		TotalUsers:         len(s.users),
		PendingWithdrawals: pending,
		TotalBalance:       total,
	}, nil
}

func (s *Server) adminOnly() error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if !s.user.IsAdmin() {
		return &api.APIError{Status: 403, Message: "Admin access required"}
	}
	return nil
}

func (s *Server) AdminUsers(ctx context.Context, page api.Page, search string) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(search)
	var out []domain.User
	for _, u := range s.users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Server) SetUserBalance(ctx context.Context, userID string, balance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return err
	}
	if balance < 0 {
		return &api.APIError{Status: 400, Message: "Balance cannot be negative"}
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Balance = balance
			return nil
		}
	}
	return &api.APIError{Status: 404, Message: "User not found"}
}

func (s *Server) SetUserPlan(ctx context.Context, userID, plan string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return err
	}
	if !domain.ValidPlanName(plan) {
		return &api.APIError{Status: 400, Message: "Unknown plan"}
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Plan = plan
			return nil
		}
	}
	return &api.APIError{Status: 404, Message: "User not found"}
}

func (s *Server) PendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return nil, err
	}
	var out []domain.Withdrawal
	for _, w := range s.withdrawals {
		if w.Status == "pending" {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *Server) ApproveWithdrawal(ctx context.Context, id string) error {
	return s.resolveWithdrawal(id, "approved")
}

func (s *Server) RejectWithdrawal(ctx context.Context, id, reason string) error {
	return s.resolveWithdrawal(id, "rejected")
}

func (s *Server) resolveWithdrawal(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminOnly(); err != nil {
		return err
	}
	for i := range s.withdrawals {
		if s.withdrawals[i].ID == id {
			if s.withdrawals[i].Status != "pending" {
				return &api.APIError{Status: 409, Message: "Withdrawal already processed"}
			}
			s.withdrawals[i].Status = status
			return nil
		}
	}
	return &api.APIError{Status: 404, Message: "Withdrawal not found"}
}

func methodLabel(method string) string {
	switch method {
	case string(domain.MethodBankAccount):
		return "bank transfer"
	case string(domain.MethodCryptoWallet):
		return "crypto wallet"
	default:
		return method
	}
}
