package tui

import "testing"

func TestRouterStartsAtLogin(t *testing.T) {
	r := NewRouter()
	if r.Screen() != ScreenLogin || r.Section() != SectionDashboard {
		t.Fatalf("unexpected start %q/%q", r.Screen(), r.Section())
	}
}

func TestRouterBackForward(t *testing.T) {
	r := NewRouter()
	r.ShowScreen(ScreenMain)
	r.ShowContent(SectionTasks)
	r.ShowContent(SectionWallet)

	if !r.Back() || r.Section() != SectionTasks {
		t.Fatalf("back should land on tasks, got %q", r.Section())
	}
	if !r.Back() || r.Section() != SectionDashboard {
		t.Fatalf("back should land on dashboard, got %q", r.Section())
	}
	if !r.Forward() || r.Section() != SectionTasks {
		t.Fatalf("forward should replay tasks, got %q", r.Section())
	}
}

func TestRouterBackAtBottom(t *testing.T) {
	r := NewRouter()
	if r.Back() {
		t.Fatal("back with empty history should report false")
	}
}

func TestRouterNewNavigationClearsForward(t *testing.T) {
	r := NewRouter()
	r.ShowScreen(ScreenMain)
	r.ShowContent(SectionTasks)
	r.Back()
	r.ShowContent(SectionProfile)
	if r.Forward() {
		t.Fatal("forward stack should be cleared by a new navigation")
	}
}

func TestRouterNoopNavigation(t *testing.T) {
	r := NewRouter()
	r.ShowScreen(ScreenLogin)
	if r.Back() {
		t.Fatal("navigating to the current screen must not push history")
	}
}

func TestRouterReset(t *testing.T) {
	r := NewRouter()
	r.ShowScreen(ScreenMain)
	r.ShowContent(SectionWallet)
	r.Reset(ScreenLogin, SectionDashboard)
	if r.Back() || r.Forward() {
		t.Fatal("reset should drop history")
	}
	if r.Screen() != ScreenLogin {
		t.Fatalf("unexpected screen %q", r.Screen())
	}
}
