package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

const (
	taskFilterAll       = "all"
	taskFilterPending   = "pending"
	taskFilterCompleted = "completed"
)

type tasksState struct {
	tasks    []domain.Task
	history  []domain.Task
	filter   string
	selected int
	detail   bool
	loading  bool
	inflight string // task id being completed, disables the action
}

func newTasksState() tasksState {
	return tasksState{filter: taskFilterAll}
}

func (st tasksState) filtered() []domain.Task {
	if st.filter == taskFilterAll {
		return st.tasks
	}
	var out []domain.Task
	for _, t := range st.tasks {
		if string(t.Status) == st.filter {
			out = append(out, t)
		}
	}
	return out
}

func (st tasksState) selectedTask() *domain.Task {
	list := st.filtered()
	if len(list) == 0 || st.selected >= len(list) {
		return nil
	}
	return &list[st.selected]
}

func (st *tasksState) cycleFilter() {
	switch st.filter {
	case taskFilterAll:
		st.filter = taskFilterPending
	case taskFilterPending:
		st.filter = taskFilterCompleted
	default:
		st.filter = taskFilterAll
	}
	st.selected = 0
}

func (st *tasksState) clampSelection() {
	if n := len(st.filtered()); st.selected >= n && n > 0 {
		st.selected = n - 1
	} else if n == 0 {
		st.selected = 0
	}
}

// markCompleted flips the task locally so the list reflects the action
// before the server answers.
func (st *tasksState) markCompleted(taskID string) {
	for i := range st.tasks {
		if st.tasks[i].ID == taskID {
			st.tasks[i].Status = domain.TaskCompleted
			st.tasks[i].UserCompleted = true
			return
		}
	}
}

func (m *Model) handleTasksKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.tasks
	switch msg.String() {
	case "j", "down":
		if st.selected < len(st.filtered())-1 {
			st.selected++
		}
	case "k", "up":
		if st.selected > 0 {
			st.selected--
		}
	case "f":
		st.cycleFilter()
	case "enter":
		if st.selectedTask() != nil {
			st.detail = true
		}
	case "c":
		return m.completeSelectedTask()
	case "h":
		m.overlay = overlayTaskHistory
		return m.cmdLoadTaskHistory()
	}
	return nil
}

// completeSelectedTask applies the optimistic reward locally, then
// posts the completion. The server's balance answer reconciles later.
func (m *Model) completeSelectedTask() tea.Cmd {
	st := &m.tasks
	task := st.selectedTask()
	if task == nil || !task.CanComplete() || st.inflight != "" {
		return nil
	}
	id := task.ID
	st.inflight = id
	st.markCompleted(id)
	m.store.ApplyTaskReward(task.Reward)
	return m.cmdCompleteTask(id)
}

func (m Model) renderTasks() string {
	st := m.tasks
	var b strings.Builder

	for _, f := range []string{taskFilterAll, taskFilterPending, taskFilterCompleted} {
		if f == st.filter {
			b.WriteString(sharedtui.ActiveTabStyle.Render(f))
		} else {
			b.WriteString(sharedtui.TabStyle.Render(f))
		}
	}
	b.WriteString("\n\n")

	list := st.filtered()
	if st.loading && len(list) == 0 {
		b.WriteString(sharedtui.SubtitleStyle.Render("Loading tasks…"))
		return b.String()
	}
	if len(list) == 0 {
		b.WriteString(sharedtui.SubtitleStyle.Render("No tasks in this view"))
		return b.String()
	}

	listWidth := m.width - 4
	if layoutMode(m.width) == LayoutModeDual && st.detail {
		listWidth = 40
	}
	var rows []string
	for i, t := range list {
		marker := "  "
		if t.Status == domain.TaskCompleted {
			marker = sharedtui.AmountPositiveStyle.Render("✓ ")
		}
		line := fmt.Sprintf("%s%s  %s", marker, truncate(t.Title, listWidth-18),
			sharedtui.AmountPositiveStyle.Render(forms.FormatCurrency(t.Reward)))
		if i == st.selected {
			line = sharedtui.SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	if st.detail {
		if task := st.selectedTask(); task != nil {
			detail := m.renderTaskDetail(*task, m.width-listWidth-4)
			if layoutMode(m.width) == LayoutModeDual {
				b.WriteString(joinColumns(rows, strings.Split(detail, "\n"), listWidth))
			} else {
				b.WriteString(detail)
			}
			return b.String()
		}
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func (m Model) renderTaskDetail(task domain.Task, width int) string {
	if width < 20 {
		width = m.width - 6
	}
	lines := []string{
		sharedtui.TitleStyle.Render(task.Title),
		sharedtui.LabelStyle.Render(task.Category) + " · " + sharedtui.LabelStyle.Render(task.Difficulty) +
			" · " + sharedtui.AmountPositiveStyle.Render(forms.FormatCurrency(task.Reward)),
		"",
		m.mdCache.Render(task.Description, width-4),
	}
	if task.CanComplete() {
		action := sharedtui.HelpKeyStyle.Render("c") + sharedtui.HelpDescStyle.Render(" complete task")
		if m.tasks.inflight == task.ID {
			action = sharedtui.SubtitleStyle.Render("Completing…")
		}
		lines = append(lines, "", action)
	} else {
		lines = append(lines, "", sharedtui.AmountPositiveStyle.Render("Completed"))
	}
	return sharedtui.PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}
