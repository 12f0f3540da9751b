package demo

import (
	"context"
	"errors"
	"testing"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

func login(t *testing.T, s *Server, email, password string) domain.User {
	t.Helper()
	resp, err := s.Login(context.Background(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		t.Fatal(err)
	}
	return resp.User
}

func TestLoginAdminCredentials(t *testing.T) {
	user := login(t, New(), AdminEmail, AdminPassword)
	if !user.IsAdmin() {
		t.Fatal("expected admin role")
	}
	if user.Plan != "Diamond" {
		t.Fatalf("expected Diamond plan, got %q", user.Plan)
	}
}

func TestLoginAnyNonEmptyPair(t *testing.T) {
	user := login(t, New(), "someone@example.com", "whatever")
	if user.IsAdmin() {
		t.Fatal("regular login must not grant admin")
	}
	if user.Name != "Demo User" || user.Plan != "Basic" || user.Balance != WelcomeBonus {
		t.Fatalf("unexpected demo user %+v", user)
	}
}

func TestLoginEmptyCredentialsRejected(t *testing.T) {
	_, err := New().Login(context.Background(), api.LoginRequest{})
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestRegisterGrantsWelcomeBonus(t *testing.T) {
	s := New()
	resp, err := s.Register(context.Background(), api.RegisterRequest{
		Name: "New User", Email: "new@example.com", Password: "Passw0rd",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Balance != WelcomeBonus {
		t.Fatalf("expected welcome bonus balance, got %v", resp.User.Balance)
	}
	txs, err := s.Transactions(context.Background(), api.Page{}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].Description != "Welcome bonus" {
		t.Fatalf("expected welcome bonus transaction, got %+v", txs)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	_, err := New().Tasks(context.Background())
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCompleteTaskUpdatesBalanceAndHistory(t *testing.T) {
	s := New()
	login(t, s, "demo@example.com", "Passw0rd")

	resp, err := s.CompleteTask(context.Background(), "task-002")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Reward != 1.25 {
		t.Fatalf("expected reward 1.25, got %v", resp.Reward)
	}
	if resp.Balance != WelcomeBonus+1.25 {
		t.Fatalf("expected balance %v, got %v", WelcomeBonus+1.25, resp.Balance)
	}
	if _, err := s.CompleteTask(context.Background(), "task-002"); err == nil {
		t.Fatal("completing twice should fail")
	}
	hist, err := s.TaskHistory(context.Background(), api.Page{})
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 1 || hist[0].ID != "task-002" {
		t.Fatalf("unexpected history %+v", hist)
	}
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	s := New()
	login(t, s, "demo@example.com", "Passw0rd")
	if _, err := s.Withdraw(context.Background(), 100, "bank_account", nil); err == nil {
		t.Fatal("withdrawal over balance should fail")
	}
}

func TestDepositThenWithdraw(t *testing.T) {
	s := New()
	login(t, s, "demo@example.com", "Passw0rd")
	if _, err := s.Deposit(context.Background(), 50, "bank_account"); err != nil {
		t.Fatal(err)
	}
	tx, err := s.Withdraw(context.Background(), 20, "crypto_wallet", map[string]string{"walletAddress": "0xabc"})
	if err != nil {
		t.Fatal(err)
	}
	if tx.Amount != -20 {
		t.Fatalf("withdrawal amount should be negative, got %v", tx.Amount)
	}
	user, err := s.Profile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if user.Balance != WelcomeBonus+50-20 {
		t.Fatalf("unexpected balance %v", user.Balance)
	}
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	s := New()
	login(t, s, "demo@example.com", "Passw0rd")
	if _, err := s.AdminStats(context.Background()); err == nil {
		t.Fatal("regular user should not access admin stats")
	}
}

func TestAdminUserSearchAndEdits(t *testing.T) {
	s := New()
	login(t, s, AdminEmail, AdminPassword)

	users, err := s.AdminUsers(context.Background(), api.Page{}, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].Name != "Alice Mercer" {
		t.Fatalf("unexpected search result %+v", users)
	}
	if err := s.SetUserBalance(context.Background(), users[0].ID, 500); err != nil {
		t.Fatal(err)
	}
	if err := s.SetUserPlan(context.Background(), users[0].ID, "Diamond"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetUserPlan(context.Background(), users[0].ID, "NoSuchPlan"); err == nil {
		t.Fatal("unknown plan should be rejected")
	}
	users, _ = s.AdminUsers(context.Background(), api.Page{}, "alice")
	if users[0].Balance != 500 || users[0].Plan != "Diamond" {
		t.Fatalf("edits not applied: %+v", users[0])
	}
}

func TestWithdrawalReview(t *testing.T) {
	s := New()
	login(t, s, AdminEmail, AdminPassword)

	pending, err := s.PendingWithdrawals(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending withdrawals, got %d", len(pending))
	}
	if err := s.ApproveWithdrawal(context.Background(), pending[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := s.ApproveWithdrawal(context.Background(), pending[0].ID); err == nil {
		t.Fatal("approving twice should fail")
	}
	if err := s.RejectWithdrawal(context.Background(), pending[1].ID, "suspicious activity"); err != nil {
		t.Fatal(err)
	}
	left, _ := s.PendingWithdrawals(context.Background())
	if len(left) != 0 {
		t.Fatalf("expected no pending withdrawals, got %+v", left)
	}
}

func TestPaymentMethodsSeededOnLogin(t *testing.T) {
	s := New()
	login(t, s, "someone@example.com", "whatever")

	methods, err := s.PaymentMethods(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(methods) != 1 || methods[0].Type != domain.MethodBankAccount {
		t.Fatalf("expected one seeded bank account, got %+v", methods)
	}
}

func TestAddPaymentMethod(t *testing.T) {
	s := New()
	login(t, s, "someone@example.com", "whatever")

	saved, err := s.AddPaymentMethod(context.Background(), domain.PaymentMethod{
		Type:          domain.MethodCryptoWallet,
		WalletAddress: "0xabc123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.WalletAddress != "0xabc123" {
		t.Fatalf("unexpected saved method %+v", saved)
	}

	methods, _ := s.PaymentMethods(context.Background())
	if len(methods) != 2 {
		t.Fatalf("expected seeded + added method, got %+v", methods)
	}

	if _, err := s.AddPaymentMethod(context.Background(), domain.PaymentMethod{Type: domain.MethodCryptoWallet}); err == nil {
		t.Fatal("missing wallet address should be rejected")
	}
	if _, err := s.AddPaymentMethod(context.Background(), domain.PaymentMethod{Type: domain.MethodBankAccount, BankName: "x"}); err == nil {
		t.Fatal("incomplete bank details should be rejected")
	}
}

func TestPaymentMethodsRequireAuth(t *testing.T) {
	_, err := New().PaymentMethods(context.Background())
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
