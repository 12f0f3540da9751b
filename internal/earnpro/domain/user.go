// Package domain holds the client-side data model for EarnPro.
package domain

// Role distinguishes regular users from platform admins.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated account record owned by the session store.
type User struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Role           Role    `json:"role"`
	Plan           string  `json:"plan"`
	Balance        float64 `json:"balance"`
	TotalEarned    float64 `json:"totalEarned"`
	TasksCompleted int     `json:"tasksCompleted"`
	IsActive       bool    `json:"isActive"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Stats is the per-user dashboard summary.
type Stats struct {
	TotalEarned    float64 `json:"totalEarned"`
	TasksCompleted int     `json:"tasksCompleted"`
	Notifications  int     `json:"notifications"`
}

// AdminStats is the platform-wide summary shown on the admin console.
type AdminStats struct {
	TotalUsers         int     `json:"totalUsers"`
	PendingWithdrawals int     `json:"pendingWithdrawals"`
	TotalBalance       float64 `json:"totalBalance"`
}
