package domain

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Task is a reward-bearing unit of work offered to the user.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Reward        float64    `json:"reward"`
	Category      string     `json:"category"`
	Difficulty    string     `json:"difficulty"`
	Status        TaskStatus `json:"status"`
	UserCompleted bool       `json:"user_completed"`
}

// CanComplete reports whether the current user may complete the task.
func (t Task) CanComplete() bool {
	return t.Status == TaskPending && !t.UserCompleted
}
