package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of a wallet movement.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// WalletTransaction is a raw wallet movement from the upstream API.
// Description is free text; statement reconciliation classifies deposits and
// withdrawals by matching on it.
type WalletTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	RelatedBet  string          `json:"related_bet,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
