package domain

import "time"

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxTaskReward TransactionType = "task_reward"
)

// Transaction is a read-only ledger entry. Amount is signed: deposits and
// task rewards are positive, withdrawals negative.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Withdrawal is a pending payout request, visible on the admin console.
type Withdrawal struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	UserName  string    `json:"user_name"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentMethodType is the payout destination kind.
type PaymentMethodType string

const (
	MethodBankAccount  PaymentMethodType = "bank_account"
	MethodCryptoWallet PaymentMethodType = "crypto_wallet"
)

// PaymentMethod carries the union of bank and crypto payout details.
// Exactly one detail set is populated depending on Type.
type PaymentMethod struct {
	Type          PaymentMethodType `json:"type"`
	BankName      string            `json:"bankName,omitempty"`
	AccountHolder string            `json:"accountHolder,omitempty"`
	IBAN          string            `json:"iban,omitempty"`
	WalletAddress string            `json:"walletAddress,omitempty"`
}
