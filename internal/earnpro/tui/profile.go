package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

type profileState struct {
	paymentMethod *domain.PaymentMethod
	planIndex     int
	saving        bool
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "e":
		m.openEditProfileModal()
	case "p":
		m.openPaymentMethodModal()
	case "u":
		m.profile.planIndex = currentPlanIndex(m.store.User())
		m.overlay = overlayPlan
	case "l":
		m.confirm("logout", "", "Log out of EarnPro?")
	}
	return nil
}

func currentPlanIndex(user *domain.User) int {
	if user == nil {
		return 0
	}
	for i, p := range domain.Plans() {
		if p.Name == user.Plan {
			return i
		}
	}
	return 0
}

func (m *Model) openEditProfileModal() {
	f := newForm(
		field{label: "Full name", limit: 80},
		field{label: "Phone", placeholder: "+1 555 000 0000", limit: 24},
	)
	if user := m.store.User(); user != nil {
		f.setValue(0, user.Name)
		f.setValue(1, user.Phone)
	}
	m.overlay = overlayEditProfile
	m.modalForm = f
}

func (m *Model) openPaymentMethodModal() {
	option := 0
	if pm := m.profile.paymentMethod; pm != nil && pm.Type == domain.MethodCryptoWallet {
		option = 1
	}
	m.modalForm.withOptions(payoutMethods, option)
	m.syncPaymentMethodFields()
	if pm := m.profile.paymentMethod; pm != nil {
		if option == 1 {
			m.modalForm.setValue(0, pm.WalletAddress)
		} else {
			m.modalForm.setValue(0, pm.BankName)
			m.modalForm.setValue(1, pm.AccountHolder)
			m.modalForm.setValue(2, pm.IBAN)
		}
	}
	m.overlay = overlayPaymentMethod
}

// syncPaymentMethodFields rebuilds the inputs when the method type is
// toggled: bank accounts need three fields, wallets one.
func (m *Model) syncPaymentMethodFields() {
	option := m.modalForm.option
	var f form
	if option == 1 {
		f = newForm(field{label: "Wallet address", placeholder: "0x…", limit: 128})
	} else {
		f = newForm(
			field{label: "Bank name", limit: 64},
			field{label: "Account holder", limit: 80},
			field{label: "IBAN", limit: 64},
		)
	}
	f.withOptions(payoutMethods, option)
	m.modalForm = f
}

func (m *Model) submitEditProfile() tea.Cmd {
	if m.profile.saving {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	name := forms.SanitizeInput(f.value(0))
	phone := forms.SanitizeInput(f.value(1))
	if !forms.ValidateName(name) {
		f.setError(0, "Name must be at least 2 characters")
		return nil
	}
	m.profile.saving = true
	return m.cmdSaveProfile(api.ProfileUpdate{Name: &name, Phone: &phone})
}

func (m *Model) submitPaymentMethod() tea.Cmd {
	if m.profile.saving {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	var pm domain.PaymentMethod
	if f.option == 1 {
		addr := f.value(0)
		if addr == "" {
			f.setError(0, "Wallet address is required")
			return nil
		}
		pm = domain.PaymentMethod{Type: domain.MethodCryptoWallet, WalletAddress: addr}
	} else {
		bank, holder, iban := f.value(0), f.value(1), f.value(2)
		missing := false
		if bank == "" {
			f.setError(0, "Bank name is required")
			missing = true
		}
		if holder == "" {
			f.setError(1, "Account holder is required")
			missing = true
		}
		if iban == "" {
			f.setError(2, "IBAN is required")
			missing = true
		}
		if missing {
			return nil
		}
		pm = domain.PaymentMethod{Type: domain.MethodBankAccount, BankName: bank, AccountHolder: holder, IBAN: iban}
	}
	m.profile.saving = true
	return m.cmdAddPaymentMethod(pm)
}

func (m Model) renderProfile() string {
	user := m.store.User()
	if user == nil {
		return sharedtui.SubtitleStyle.Render("Loading profile…")
	}

	info := []string{
		sharedtui.TitleStyle.Render(forms.SanitizeInput(user.Name)),
		sharedtui.SubtitleStyle.Render(user.Email),
	}
	if user.Phone != "" {
		info = append(info, sharedtui.SubtitleStyle.Render(user.Phone))
	}
	info = append(info, "", sharedtui.LabelStyle.Render("Plan ")+sharedtui.PlanBadge(user.Plan))
	infoCard := sharedtui.CardStyle.Render(strings.Join(info, "\n"))

	var pmLines []string
	if pm := m.profile.paymentMethod; pm != nil {
		switch pm.Type {
		case domain.MethodCryptoWallet:
			pmLines = []string{
				sharedtui.LabelStyle.Render("Crypto wallet"),
				truncate(pm.WalletAddress, 40),
			}
		default:
			pmLines = []string{
				sharedtui.LabelStyle.Render("Bank account"),
				pm.BankName + " · " + pm.AccountHolder,
				truncate(pm.IBAN, 40),
			}
		}
	} else {
		pmLines = []string{sharedtui.SubtitleStyle.Render("No payment method on file")}
	}
	pmCard := sharedtui.CardStyle.Render(
		sharedtui.TitleStyle.Render("Payout method") + "\n" + strings.Join(pmLines, "\n"))

	help := sharedtui.HelpKeyStyle.Render("e") + sharedtui.HelpDescStyle.Render(" edit profile") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("p") + sharedtui.HelpDescStyle.Render(" payment method") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("u") + sharedtui.HelpDescStyle.Render(" upgrade plan") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("l") + sharedtui.HelpDescStyle.Render(" log out")

	return infoCard + "\n" + pmCard + "\n\n" + help
}

func (m *Model) handlePlanOverlayKey(msg tea.KeyMsg) tea.Cmd {
	st := &m.profile
	plans := domain.Plans()
	switch msg.String() {
	case "j", "down":
		if st.planIndex < len(plans)-1 {
			st.planIndex++
		}
	case "k", "up":
		if st.planIndex > 0 {
			st.planIndex--
		}
	case "enter":
		plan := plans[st.planIndex]
		if user := m.store.User(); user != nil && user.Plan == plan.Name {
			return nil
		}
		m.confirm("upgrade_plan", plan.Name, "Upgrade to the "+plan.Name+" plan?")
	}
	return nil
}

func (m Model) renderPlanOverlay() string {
	current := ""
	if m.overlay == overlayAdminPlan {
		for _, u := range m.admin.users {
			if u.ID == m.modalSubject {
				current = u.Plan
			}
		}
	} else if user := m.store.User(); user != nil {
		current = user.Plan
	}
	var lines []string
	for i, p := range domain.Plans() {
		price := "Free"
		if p.Price > 0 {
			price = forms.FormatCurrency(p.Price) + "/month"
		}
		row := sharedtui.PlanBadge(p.Name) + " " + sharedtui.LabelStyle.Render(price)
		if p.Name == current {
			row += sharedtui.SubtitleStyle.Render("  (current)")
		}
		if i == m.profile.planIndex {
			row = sharedtui.SelectedStyle.Render("▸ ") + row
			for _, feat := range p.Features {
				row += "\n" + sharedtui.HelpDescStyle.Render("    · "+feat)
			}
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return renderModal("Upgrade plan", strings.Join(lines, "\n"), "enter select • esc close", m.width, m.contentHeight())
}
