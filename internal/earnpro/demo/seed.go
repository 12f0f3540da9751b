package demo

import (
	"time"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

func seedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "task-001",
			Title:       "Watch a promotional video",
			Description: "Watch a **2 minute** promotional video from one of our partners.\n\nThe reward is credited as soon as the video finishes.",
			Reward:      0.5,
			Category:    "video",
			Difficulty:  "easy",
			Status:      domain.TaskPending,
		},
		{
			ID:          "task-002",
			Title:       "Complete a product survey",
			Description: "Answer a short survey about your shopping habits.\n\n- 10 questions\n- roughly 5 minutes",
			Reward:      1.25,
			Category:    "survey",
			Difficulty:  "easy",
			Status:      domain.TaskPending,
		},
		{
			ID:          "task-003",
			Title:       "Install and try a partner app",
			Description: "Install the partner app, create an account and keep it installed for 24 hours.",
			Reward:      3.0,
			Category:    "app",
			Difficulty:  "medium",
			Status:      domain.TaskPending,
		},
		{
			ID:          "task-004",
			Title:       "Refer a friend",
			Description: "Share your referral link. The reward is credited once your friend completes their first task.",
			Reward:      5.0,
			Category:    "referral",
			Difficulty:  "medium",
			Status:      domain.TaskPending,
		},
		{
			ID:            "task-005",
			Title:         "Write a product review",
			Description:   "Write a review of at least **100 words** for a product you purchased.",
			Reward:        2.0,
			Category:      "review",
			Difficulty:    "hard",
			Status:        domain.TaskCompleted,
			UserCompleted: true,
		},
	}
}

func seedTransactions(now time.Time) []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "tx-001",
			Type:        domain.TxTaskReward,
			Amount:      2.0,
			Description: "Write a product review",
			Status:      "completed",
			CreatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID:          "tx-002",
			Type:        domain.TxDeposit,
			Amount:      WelcomeBonus,
			Description: "Welcome bonus",
			Status:      "completed",
			CreatedAt:   now.Add(-72 * time.Hour),
		},
	}
}

func seedPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{
			Type:          domain.MethodBankAccount,
			BankName:      "First Demo Bank",
			AccountHolder: "Demo User",
			IBAN:          "DE89 3704 0044 0532 0130 00",
		},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "u-100", Name: "Alice Mercer", Email: "alice@example.com", Role: domain.RoleUser, Plan: "Gold", Balance: 142.75, TotalEarned: 310.25, TasksCompleted: 87, IsActive: true},
		{ID: "u-101", Name: "Bruno Keller", Email: "bruno@example.com", Role: domain.RoleUser, Plan: "Basic", Balance: 12.5, TotalEarned: 18.0, TasksCompleted: 9, IsActive: true},
		{ID: "u-102", Name: "Carla Ibáñez", Email: "carla@example.com", Role: domain.RoleUser, Plan: "Silver", Balance: 58.0, TotalEarned: 96.5, TasksCompleted: 41, IsActive: true},
		{ID: "u-103", Name: "Deniz Aydın", Email: "deniz@example.com", Role: domain.RoleUser, Plan: "Platinum", Balance: 820.4, TotalEarned: 1204.1, TasksCompleted: 233, IsActive: true},
		{ID: "u-104", Name: "Elena Vasquez", Email: "elena@example.com", Role: domain.RoleUser, Plan: "Basic", Balance: 0, TotalEarned: 5.0, TasksCompleted: 1, IsActive: false},
	}
}

func seedWithdrawals() []domain.Withdrawal {
	base := time.Now()
	return []domain.Withdrawal{
		{ID: "wd-001", Amount: 50, UserName: "Alice Mercer", Method: "bank_account", Status: "pending", CreatedAt: base.Add(-26 * time.Hour)},
		{ID: "wd-002", Amount: 200, UserName: "Deniz Aydın", Method: "crypto_wallet", Status: "pending", CreatedAt: base.Add(-8 * time.Hour)},
		{ID: "wd-003", Amount: 25, UserName: "Carla Ibáñez", Method: "bank_account", Status: "approved", CreatedAt: base.Add(-96 * time.Hour)},
	}
}
