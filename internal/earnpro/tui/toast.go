package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

const toastDuration = 5 * time.Second

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
	toastInfo
)

type toast struct {
	id    int
	level toastLevel
	text  string
}

type toastExpiredMsg struct{ id int }

// toastQueue holds active notifications. Each push schedules its own
// expiry tick; expired ids that were already dismissed are ignored.
type toastQueue struct {
	nextID int
	active []toast
}

func (q *toastQueue) push(level toastLevel, text string) tea.Cmd {
	q.nextID++
	id := q.nextID
	q.active = append(q.active, toast{id: id, level: level, text: text})
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (q *toastQueue) expire(id int) {
	kept := q.active[:0]
	for _, n := range q.active {
		if n.id != id {
			kept = append(kept, n)
		}
	}
	q.active = kept
}

func (q *toastQueue) render() string {
	if len(q.active) == 0 {
		return ""
	}
	out := ""
	for i, n := range q.active {
		if i > 0 {
			out += "  "
		}
		switch n.level {
		case toastSuccess:
			out += sharedtui.ToastSuccessStyle.Render("✓ " + n.text)
		case toastError:
			out += sharedtui.ToastErrorStyle.Render("✗ " + n.text)
		default:
			out += sharedtui.ToastInfoStyle.Render("ℹ " + n.text)
		}
	}
	return out
}
