package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "token"))
}

func TestStartPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewStore(path)
	s.Start("tok-abc", domain.User{ID: "u1", Balance: 100.5})

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "tok-abc" {
		t.Fatalf("unexpected token file %q", raw)
	}

	reloaded := NewStore(path)
	if !reloaded.HasToken() || reloaded.Token() != "tok-abc" {
		t.Fatal("token should survive a restart")
	}
	if reloaded.LoggedIn() {
		t.Fatal("user must not be considered logged in before a profile fetch")
	}
}

func TestApplyTaskRewardOptimistic(t *testing.T) {
	s := tempStore(t)
	s.Start("tok", domain.User{Balance: 100.5, TotalEarned: 200, TasksCompleted: 4})

	s.ApplyTaskReward(50)
	u := s.User()
	if u.Balance != 150.5 {
		t.Fatalf("expected balance 150.5, got %v", u.Balance)
	}
	if u.TotalEarned != 250 || u.TasksCompleted != 5 {
		t.Fatalf("stats not updated: %+v", u)
	}
}

func TestSetUserServerWins(t *testing.T) {
	s := tempStore(t)
	s.Start("tok", domain.User{Balance: 100})
	s.ApplyTaskReward(50)

	s.SetUser(domain.User{Balance: 145})
	if got := s.User().Balance; got != 145 {
		t.Fatalf("server balance should win, got %v", got)
	}
}

func TestClearRemovesTokenAndUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewStore(path)
	s.Start("tok", domain.User{ID: "u1"})

	s.Clear()
	if s.HasToken() || s.LoggedIn() {
		t.Fatal("session should be destroyed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("token file should be removed")
	}
}

func TestUserReturnsCopy(t *testing.T) {
	s := tempStore(t)
	s.Start("tok", domain.User{Name: "A"})
	u := s.User()
	u.Name = "B"
	if s.User().Name != "A" {
		t.Fatal("mutating the returned user must not affect the store")
	}
}

func TestIsAdmin(t *testing.T) {
	s := tempStore(t)
	if s.IsAdmin() {
		t.Fatal("logged-out store cannot be admin")
	}
	s.Start("tok", domain.User{Role: domain.RoleAdmin})
	if !s.IsAdmin() {
		t.Fatal("admin role not reported")
	}
}
