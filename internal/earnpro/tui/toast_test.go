package tui

import (
	"strings"
	"testing"
)

func TestToastQueuePushAndExpire(t *testing.T) {
	var q toastQueue
	cmd := q.push(toastSuccess, "Task completed")
	if cmd == nil {
		t.Fatal("push should schedule an expiry tick")
	}
	if len(q.active) != 1 {
		t.Fatalf("expected one active toast, got %d", len(q.active))
	}

	msg := cmd()
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		t.Fatalf("expected toastExpiredMsg, got %T", msg)
	}
	q.expire(expired.id)
	if len(q.active) != 0 {
		t.Fatal("toast should be dismissed after expiry")
	}
}

func TestToastExpireUnknownIDIsNoop(t *testing.T) {
	var q toastQueue
	q.push(toastError, "Failed to load tasks")
	q.expire(999)
	if len(q.active) != 1 {
		t.Fatal("expiring an unknown id must not drop other toasts")
	}
}

func TestToastRenderLevels(t *testing.T) {
	var q toastQueue
	q.push(toastSuccess, "ok")
	q.push(toastError, "bad")
	q.push(toastInfo, "fyi")
	out := q.render()
	for _, want := range []string{"ok", "bad", "fyi"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered toasts missing %q: %q", want, out)
		}
	}
}
