package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

type walletState struct {
	txs     []domain.Transaction
	methods []domain.PaymentMethod
	loading bool
}

var payoutMethods = []string{"Bank account", "Crypto wallet"}

func payoutMethodValue(option int) string {
	if option == 1 {
		return string(domain.MethodCryptoWallet)
	}
	return string(domain.MethodBankAccount)
}

func (m *Model) handleWalletKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "d":
		m.openDepositModal()
	case "w":
		m.openWithdrawModal()
	case "h":
		m.overlay = overlayTxHistory
	}
	return nil
}

func (m *Model) openDepositModal() {
	f := newForm(field{label: "Amount", placeholder: "min $10.00", limit: 12})
	f.withOptions(payoutMethods, 0)
	m.overlay = overlayDeposit
	m.modalForm = f
}

func (m *Model) openWithdrawModal() {
	f := newForm(
		field{label: "Amount", placeholder: "min $10.00", limit: 12},
		field{label: "IBAN", placeholder: "DE89 3704 0044 0532 0130 00", limit: 64},
	)
	f.withOptions(payoutMethods, 0)
	m.overlay = overlayWithdraw
	m.modalForm = f
}

// syncWithdrawDetailField keeps the detail input matching the selected
// payout method.
func (m *Model) syncWithdrawDetailField() {
	if m.modalForm.option == 1 {
		m.modalForm.labels[1] = "Wallet address"
		m.modalForm.inputs[1].Placeholder = "0x…"
	} else {
		m.modalForm.labels[1] = "IBAN"
		m.modalForm.inputs[1].Placeholder = "DE89 3704 0044 0532 0130 00"
	}
}

// submitDeposit validates the amount and fires the request. A request
// already in flight swallows the submit, same as the task complete guard.
func (m *Model) submitDeposit() tea.Cmd {
	if m.wallet.loading {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	amount, err := forms.ParseAmount(f.value(0))
	if err != nil {
		f.setError(0, err.Error())
		return nil
	}
	if amount < forms.MinDeposit {
		f.setError(0, "Minimum deposit is "+forms.FormatCurrency(forms.MinDeposit))
		return nil
	}
	m.wallet.loading = true
	return m.cmdDeposit(amount, payoutMethodValue(f.option))
}

// submitWithdraw checks the amount against the minimum and the current
// balance before anything goes over the wire.
func (m *Model) submitWithdraw() tea.Cmd {
	if m.wallet.loading {
		return nil
	}
	f := &m.modalForm
	f.clearErrors()
	amount, err := forms.ParseAmount(f.value(0))
	if err != nil {
		f.setError(0, err.Error())
		return nil
	}
	if amount < forms.MinWithdrawal {
		f.setError(0, "Minimum withdrawal is "+forms.FormatCurrency(forms.MinWithdrawal))
		return nil
	}
	if user := m.store.User(); user != nil && amount > user.Balance {
		f.setError(0, "Amount exceeds your balance")
		return nil
	}
	detail := f.value(1)
	if detail == "" {
		f.setError(1, f.labels[1]+" is required")
		return nil
	}
	details := map[string]string{}
	if f.option == 1 {
		details["walletAddress"] = detail
	} else {
		details["iban"] = detail
	}
	m.wallet.loading = true
	return m.cmdWithdraw(amount, payoutMethodValue(f.option), details)
}

func payoutMethodSummary(pm domain.PaymentMethod) string {
	if pm.Type == domain.MethodCryptoWallet {
		return "Crypto " + truncate(pm.WalletAddress, 12)
	}
	return "Bank " + pm.BankName
}

func renderTransactionRow(tx domain.Transaction, width int) string {
	amount := forms.FormatCurrency(tx.Amount)
	style := sharedtui.AmountPositiveStyle
	if tx.Amount < 0 {
		style = sharedtui.AmountNegativeStyle
	} else {
		amount = "+" + amount
	}
	desc := truncate(tx.Description, width-30)
	return padRight(desc, width-30) + "  " +
		sharedtui.LabelStyle.Render(forms.FormatDate(tx.CreatedAt)) + "  " +
		style.Render(amount)
}

func (m Model) renderWallet() string {
	st := m.wallet
	user := m.store.User()

	var b strings.Builder
	if user != nil {
		b.WriteString(sharedtui.CardStyle.Render(
			sharedtui.LabelStyle.Render("Available balance") + "\n" +
				sharedtui.BalanceStyle.Render(forms.FormatCurrency(user.Balance))))
		b.WriteString("\n\n")
	}

	if len(st.methods) > 0 {
		var names []string
		for _, pm := range st.methods {
			names = append(names, payoutMethodSummary(pm))
		}
		b.WriteString(sharedtui.LabelStyle.Render("Payout methods  "))
		b.WriteString(strings.Join(names, " · "))
		b.WriteString("\n\n")
	}

	b.WriteString(sharedtui.TitleStyle.Render("Recent transactions"))
	b.WriteString("\n")
	if st.loading && len(st.txs) == 0 {
		b.WriteString(sharedtui.SubtitleStyle.Render("Loading transactions…"))
	} else if len(st.txs) == 0 {
		b.WriteString(sharedtui.SubtitleStyle.Render("No transactions yet"))
	} else {
		recent := st.txs
		if len(recent) > 5 {
			recent = recent[:5]
		}
		for _, tx := range recent {
			b.WriteString(renderTransactionRow(tx, m.width-6))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sharedtui.HelpKeyStyle.Render("d") + sharedtui.HelpDescStyle.Render(" deposit") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("w") + sharedtui.HelpDescStyle.Render(" withdraw") +
		sharedtui.HelpDescStyle.Render(" • ") +
		sharedtui.HelpKeyStyle.Render("h") + sharedtui.HelpDescStyle.Render(" full history"))
	return b.String()
}

func (m Model) renderTxHistoryOverlay() string {
	var lines []string
	for _, tx := range m.wallet.txs {
		lines = append(lines, renderTransactionRow(tx, 50))
	}
	if len(lines) == 0 {
		lines = []string{sharedtui.SubtitleStyle.Render("No transactions yet")}
	}
	return renderModal("Transaction history", strings.Join(lines, "\n"), "esc close", m.width, m.contentHeight())
}
