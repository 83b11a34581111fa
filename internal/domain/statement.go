package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the inclusive day range a statement covers.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BetsSummary aggregates the bet side of a statement period.
type BetsSummary struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalWin     decimal.Decimal `json:"total_win"`
	TotalLoss    decimal.Decimal `json:"total_loss"`
	TotalPending decimal.Decimal `json:"total_pending"`
	Count        int             `json:"count"`
}

// WalletSummary aggregates wallet movements by heuristic category.
type WalletSummary struct {
	Deposits     decimal.Decimal `json:"deposits"`
	Withdrawals  decimal.Decimal `json:"withdrawals"`
	OtherCredits decimal.Decimal `json:"other_credits"`
	OtherDebits  decimal.Decimal `json:"other_debits"`
}

// StatementTotals holds the combined credit/debit totals and their net.
// NetAmount = TotalCredits - TotalDebits by construction.
type StatementTotals struct {
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

// Statement is the reconciled financial statement for one player and
// period. CurrentBalanceSnapshot is the live wallet balance supplied by the
// caller for display; no prior-period balance exists to check it against.
type Statement struct {
	Period                 Period          `json:"period"`
	BetsSummary            BetsSummary     `json:"bets_summary"`
	WalletSummary          WalletSummary   `json:"wallet_summary"`
	Totals                 StatementTotals `json:"totals"`
	CurrentBalanceSnapshot decimal.Decimal `json:"current_balance_snapshot"`
}
