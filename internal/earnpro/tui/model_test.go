package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
)

func TestLoginValidationBlocksSubmit(t *testing.T) {
	m, _, _ := newTestModel(t)
	if cmd := m.submitLogin(); cmd != nil {
		t.Fatal("empty form must not produce a network command")
	}
	if m.login.form.errs[loginFieldEmail] != "Email is required" {
		t.Fatalf("unexpected email error %q", m.login.form.errs[loginFieldEmail])
	}
	if m.login.form.errs[loginFieldPassword] != "Password is required" {
		t.Fatalf("unexpected password error %q", m.login.form.errs[loginFieldPassword])
	}
}

func TestLoginValidFormProducesCommand(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.login.form.setValue(loginFieldEmail, "demo@example.com")
	m.login.form.setValue(loginFieldPassword, "Passw0rd")
	if cmd := m.submitLogin(); cmd == nil {
		t.Fatal("valid form should submit")
	}
	if !m.login.loading {
		t.Fatal("submit should set the loading flag")
	}
}

func TestLoginDoneRoutesMemberToMain(t *testing.T) {
	m, _, store := newTestModel(t)
	m = apply(m, loginDoneMsg{resp: memberResponse()})
	if m.router.Screen() != ScreenMain {
		t.Fatalf("expected main screen, got %q", m.router.Screen())
	}
	if !store.LoggedIn() || store.Token() != "tok-user" {
		t.Fatal("session not installed")
	}
}

func TestLoginDoneRoutesAdminToAdmin(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = apply(m, loginDoneMsg{resp: adminResponse()})
	if m.router.Screen() != ScreenAdmin {
		t.Fatalf("expected admin screen, got %q", m.router.Screen())
	}
}

func TestUnauthorizedClearsSessionAndForcesLogin(t *testing.T) {
	m, store := loggedInModel(t, memberResponse().User)
	m = apply(m, errMsg{scope: "tasks", err: &api.APIError{Status: 401, Message: "expired"}})
	if m.router.Screen() != ScreenLogin {
		t.Fatalf("expected login screen, got %q", m.router.Screen())
	}
	if store.HasToken() || store.LoggedIn() {
		t.Fatal("session should be destroyed on 401")
	}
}

func TestErrorBecomesToast(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m = apply(m, errMsg{scope: "wallet", err: errors.New("Failed to load transactions")})
	if len(m.toasts.active) != 1 {
		t.Fatalf("expected one toast, got %d", len(m.toasts.active))
	}
	if m.toasts.active[0].level != toastError {
		t.Fatal("expected an error toast")
	}
}

func TestOptimisticTaskCompletion(t *testing.T) {
	user := memberResponse().User
	user.Balance = 100.5
	m, store := loggedInModel(t, user)
	m.router.ShowContent(SectionTasks)
	m = apply(m, tasksLoadedMsg{tasks: []domain.Task{
		{ID: "t1", Title: "Survey", Reward: 50, Status: domain.TaskPending},
	}})

	m, cmd := updateKey(m, "c")
	if cmd == nil {
		t.Fatal("completing a task should produce a command")
	}
	if got := store.User().Balance; got != 150.5 {
		t.Fatalf("optimistic balance = %v, want 150.5", got)
	}
	if m.tasks.tasks[0].Status != domain.TaskCompleted {
		t.Fatal("task should flip to completed locally")
	}
	if m.tasks.inflight != "t1" {
		t.Fatal("inflight task id not tracked")
	}

	// A second press while in flight must be a no-op.
	if _, cmd := updateKey(m, "c"); cmd != nil {
		t.Fatal("duplicate completion should be suppressed")
	}
}

func TestTaskCompletedReconcilesServerBalance(t *testing.T) {
	user := memberResponse().User
	user.Balance = 150.5
	m, store := loggedInModel(t, user)
	m.tasks.inflight = "t1"
	m = apply(m, taskCompletedMsg{taskID: "t1", reward: 50, balance: 145})
	if got := store.User().Balance; got != 145 {
		t.Fatalf("server balance should win, got %v", got)
	}
	if m.tasks.inflight != "" {
		t.Fatal("inflight marker should clear")
	}
}

func TestFailedCompletionReloadsAuthoritativeState(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.tasks.inflight = "t1"
	updated, cmd := m.Update(errMsg{scope: "tasks", err: errors.New("boom")})
	m = updated.(Model)
	if m.tasks.inflight != "" {
		t.Fatal("inflight marker should clear on failure")
	}
	if cmd == nil {
		t.Fatal("failure should trigger a reload")
	}
}

func TestWithdrawOverBalanceRejectedLocally(t *testing.T) {
	user := memberResponse().User
	user.Balance = 50
	m, _ := loggedInModel(t, user)
	m.openWithdrawModal()
	m.modalForm.setValue(0, "100")
	m.modalForm.setValue(1, "DE00")
	if cmd := m.submitWithdraw(); cmd != nil {
		t.Fatal("withdrawal over balance must not reach the network")
	}
	if m.modalForm.errs[0] != "Amount exceeds your balance" {
		t.Fatalf("unexpected error %q", m.modalForm.errs[0])
	}
}

func TestWithdrawBelowMinimumRejected(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.openWithdrawModal()
	m.modalForm.setValue(0, "5")
	if cmd := m.submitWithdraw(); cmd != nil {
		t.Fatal("withdrawal below minimum must not reach the network")
	}
	if !strings.Contains(m.modalForm.errs[0], "Minimum withdrawal") {
		t.Fatalf("unexpected error %q", m.modalForm.errs[0])
	}
}

func TestSectionKeysSwitchContent(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m = pressKey(m, "2")
	if m.router.Section() != SectionTasks {
		t.Fatalf("expected tasks section, got %q", m.router.Section())
	}
	m = pressKey(m, "3")
	if m.router.Section() != SectionWallet {
		t.Fatalf("expected wallet section, got %q", m.router.Section())
	}
	m = pressKey(m, "esc")
	if m.router.Section() != SectionTasks {
		t.Fatalf("esc should navigate back, got %q", m.router.Section())
	}
}

func TestDepositModalOpensAndCloses(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.router.ShowContent(SectionWallet)
	m = pressKey(m, "d")
	if m.overlay != overlayDeposit {
		t.Fatalf("expected deposit overlay, got %q", m.overlay)
	}
	m = pressKey(m, "esc")
	if m.overlay != overlayNone {
		t.Fatal("esc should close the overlay")
	}
}

func TestSessionRestoreEntersApp(t *testing.T) {
	m, _, store := newTestModel(t)
	store.Start("tok", memberResponse().User)
	m.restoring = true
	m = apply(m, profileLoadedMsg{user: memberResponse().User})
	if m.router.Screen() != ScreenMain {
		t.Fatalf("restored session should enter the app, got %q", m.router.Screen())
	}
}

func TestAdminSearchFiltersUsers(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = apply(m, loginDoneMsg{resp: adminResponse()})
	m = apply(m, adminUsersLoadedMsg{users: []domain.User{
		{ID: "u1", Name: "Alice Mercer", Email: "alice@example.com", Plan: "Gold"},
		{ID: "u2", Name: "Bruno Keller", Email: "bruno@example.com", Plan: "Basic"},
	}})
	m = pressKey(m, "/")
	m = typeText(m, "alice")
	m = apply(m, searchSettledMsg{seq: m.admin.searchSeq})
	if len(m.admin.filtered) != 1 || m.admin.filtered[0].Name != "Alice Mercer" {
		t.Fatalf("unexpected filtered users %+v", m.admin.filtered)
	}
}

func TestStaleSearchSettleIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = apply(m, loginDoneMsg{resp: adminResponse()})
	m = apply(m, adminUsersLoadedMsg{users: []domain.User{
		{ID: "u1", Name: "Alice Mercer", Email: "alice@example.com", Plan: "Gold"},
	}})
	m = pressKey(m, "/")
	m = typeText(m, "zzz")
	before := len(m.admin.filtered)
	m = apply(m, searchSettledMsg{seq: m.admin.searchSeq - 1})
	if len(m.admin.filtered) != before {
		t.Fatal("stale debounce tick must not re-filter")
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	m, store := loggedInModel(t, memberResponse().User)
	m.router.ShowContent(SectionProfile)
	m = pressKey(m, "l")
	if m.overlay != overlayConfirm {
		t.Fatalf("expected confirm overlay, got %q", m.overlay)
	}
	m = pressKey(m, "enter")
	if m.router.Screen() != ScreenLogin {
		t.Fatalf("expected login screen after logout, got %q", m.router.Screen())
	}
	if store.LoggedIn() {
		t.Fatal("session should be cleared")
	}
}

func TestViewRendersWithoutUser(t *testing.T) {
	m, _, _ := newTestModel(t)
	if out := m.View(); !strings.Contains(out, "EarnPro") {
		t.Fatal("view should render the brand header")
	}
}

func TestDuplicateDepositSubmissionSuppressed(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.openDepositModal()
	m.modalForm.setValue(0, "45")
	if cmd := m.submitDeposit(); cmd == nil {
		t.Fatal("valid deposit should submit")
	}
	if !m.wallet.loading {
		t.Fatal("submit should mark the request in flight")
	}
	if cmd := m.submitDeposit(); cmd != nil {
		t.Fatal("second enter while in flight must not fire another request")
	}
}

func TestDuplicateWithdrawSubmissionSuppressed(t *testing.T) {
	user := memberResponse().User
	user.Balance = 100
	m, _ := loggedInModel(t, user)
	m.openWithdrawModal()
	m.modalForm.setValue(0, "50")
	m.modalForm.setValue(1, "DE00")
	if cmd := m.submitWithdraw(); cmd == nil {
		t.Fatal("valid withdrawal should submit")
	}
	if cmd := m.submitWithdraw(); cmd != nil {
		t.Fatal("duplicate withdrawal must be suppressed while in flight")
	}
}

func TestDuplicateProfileSaveSuppressed(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.openEditProfileModal()
	m.modalForm.setValue(0, "New Name")
	if cmd := m.submitEditProfile(); cmd == nil {
		t.Fatal("valid edit should submit")
	}
	if !m.profile.saving {
		t.Fatal("submit should mark the save in flight")
	}
	if cmd := m.submitEditProfile(); cmd != nil {
		t.Fatal("duplicate save must be suppressed while in flight")
	}
}

func TestTasksErrorClearsLoadingAndKeepsCache(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.router.ShowContent(SectionTasks)
	m = apply(m, tasksLoadedMsg{tasks: []domain.Task{
		{ID: "t1", Title: "Survey", Reward: 1, Status: domain.TaskPending},
	}})
	m.tasks.loading = true

	m = apply(m, errMsg{scope: "tasks", err: errors.New("Failed to load tasks")})
	if m.tasks.loading {
		t.Fatal("failed load must clear the loading flag")
	}
	if len(m.tasks.tasks) != 1 {
		t.Fatal("failed refresh must keep the cached tasks")
	}
	if strings.Contains(m.renderTasks(), "Loading tasks") {
		t.Fatal("render must not stay stuck on the loading state")
	}
}

func TestPaymentMethodSaveFlow(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m.router.ShowContent(SectionProfile)
	m.openPaymentMethodModal()
	m.modalForm.setValue(0, "GLS Bank")
	m.modalForm.setValue(1, "Demo User")
	m.modalForm.setValue(2, "DE89 3704 0044 0532 0130 00")
	if cmd := m.submitPaymentMethod(); cmd == nil {
		t.Fatal("complete bank details should submit")
	}
	if !m.profile.saving {
		t.Fatal("submit should mark the save in flight")
	}

	pm := domain.PaymentMethod{Type: domain.MethodBankAccount, BankName: "GLS Bank", AccountHolder: "Demo User", IBAN: "DE89"}
	m = apply(m, paymentMethodSavedMsg{method: pm})
	if m.overlay != overlayNone {
		t.Fatal("save should close the modal")
	}
	if m.profile.saving {
		t.Fatal("save should clear the in-flight flag")
	}
	if m.profile.paymentMethod == nil || m.profile.paymentMethod.BankName != "GLS Bank" {
		t.Fatalf("payout card not updated: %+v", m.profile.paymentMethod)
	}
	if len(m.wallet.methods) != 1 {
		t.Fatal("wallet method cache not updated")
	}
}

func TestPaymentMethodsLoadedPopulatesProfile(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m = apply(m, paymentMethodsLoadedMsg{methods: []domain.PaymentMethod{
		{Type: domain.MethodCryptoWallet, WalletAddress: "0xabc"},
	}})
	if len(m.wallet.methods) != 1 {
		t.Fatal("wallet methods not cached")
	}
	if m.profile.paymentMethod == nil || m.profile.paymentMethod.WalletAddress != "0xabc" {
		t.Fatalf("profile payout method not populated: %+v", m.profile.paymentMethod)
	}
}

func TestHelpKeyTogglesOverlay(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m, cmd := updateKey(m, "?")
	if cmd == nil {
		t.Fatal("help key should produce a command")
	}
	m = apply(m, cmd())
	if !m.helpOverlay.Visible {
		t.Fatal("help overlay should open")
	}
	m = pressKey(m, "?")
	if m.helpOverlay.Visible {
		t.Fatal("any key should close the help overlay")
	}
}

func TestWalletActionPrependsTransaction(t *testing.T) {
	m, _ := loggedInModel(t, memberResponse().User)
	m = apply(m, transactionsLoadedMsg{txs: []domain.Transaction{{ID: "tx-old"}}})
	tx := domain.Transaction{ID: "tx-new", Type: domain.TxDeposit, Amount: 45}
	m = apply(m, walletActionMsg{kind: "deposit", tx: tx})
	if len(m.wallet.txs) != 2 || m.wallet.txs[0].ID != "tx-new" {
		t.Fatalf("confirmed transaction not shown first: %+v", m.wallet.txs)
	}
	if m.overlay != overlayNone {
		t.Fatal("wallet action should close the modal")
	}
}
