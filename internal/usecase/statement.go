package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bookie-console/internal/domain"
)

// BuildStatement reconciles a period's bet records and wallet movements
// into a categorized statement. Both inputs are filtered to the inclusive
// day window [from 00:00:00.000, to 23:59:59.999...]; records exactly on a
// boundary are included.
//
// Wallet movements are bucketed by a description heuristic: a credit whose
// description contains "deposit" or "add fund" (case-insensitive) is a
// deposit, a debit containing "withdraw" is a withdrawal, everything else
// falls into the other-credit/other-debit buckets. The matching rules are
// kept verbatim for compatibility with the upstream wording; a wording
// change silently reclassifies movements as "other".
//
// balanceSnapshot is the player's live wallet balance, attached for display
// only — there is no tracked prior-period balance to reconcile it against.
func BuildStatement(bets []domain.Bet, transactions []domain.WalletTransaction, from, to time.Time, balanceSnapshot decimal.Decimal) domain.Statement {
	start := dayStart(from)
	end := dayStart(to).Add(24*time.Hour - time.Nanosecond)

	statement := domain.Statement{
		Period:                 domain.Period{From: start, To: end},
		CurrentBalanceSnapshot: balanceSnapshot,
	}

	betsSummary := &statement.BetsSummary
	for _, bet := range bets {
		if !inWindow(bet.CreatedAt, start, end) {
			continue
		}
		betsSummary.Count++
		betsSummary.TotalAmount = betsSummary.TotalAmount.Add(bet.Amount)
		switch bet.Status {
		case domain.BetStatusWon:
			betsSummary.TotalWin = betsSummary.TotalWin.Add(bet.Payout)
		case domain.BetStatusLost:
			betsSummary.TotalLoss = betsSummary.TotalLoss.Add(bet.Amount)
		case domain.BetStatusPending:
			betsSummary.TotalPending = betsSummary.TotalPending.Add(bet.Amount)
		}
	}

	wallet := &statement.WalletSummary
	for _, tx := range transactions {
		if !inWindow(tx.CreatedAt, start, end) {
			continue
		}
		description := strings.ToLower(tx.Description)
		switch {
		case tx.Type == domain.TransactionTypeCredit &&
			(strings.Contains(description, "deposit") || strings.Contains(description, "add fund")):
			wallet.Deposits = wallet.Deposits.Add(tx.Amount)
		case tx.Type == domain.TransactionTypeDebit && strings.Contains(description, "withdraw"):
			wallet.Withdrawals = wallet.Withdrawals.Add(tx.Amount)
		case tx.Type == domain.TransactionTypeCredit:
			wallet.OtherCredits = wallet.OtherCredits.Add(tx.Amount)
		case tx.Type == domain.TransactionTypeDebit:
			wallet.OtherDebits = wallet.OtherDebits.Add(tx.Amount)
		}
	}

	statement.Totals.TotalCredits = betsSummary.TotalWin.Add(wallet.Deposits).Add(wallet.OtherCredits)
	statement.Totals.TotalDebits = betsSummary.TotalAmount.Add(wallet.Withdrawals).Add(wallet.OtherDebits)
	statement.Totals.NetAmount = statement.Totals.TotalCredits.Sub(statement.Totals.TotalDebits)

	return statement
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// StatementUseCase orchestrates statement reconciliation: it fetches a
// player's records through the source interfaces and runs BuildStatement
// over the materialized snapshot.
type StatementUseCase struct {
	bets    BetSource
	wallet  WalletSource
	players PlayerSource
}

// NewStatementUseCase creates a new instance of the usecase.
func NewStatementUseCase(bets BetSource, wallet WalletSource, players PlayerSource) *StatementUseCase {
	return &StatementUseCase{bets: bets, wallet: wallet, players: players}
}

// Reconcile produces the statement for one player over an inclusive day
// range.
func (uc *StatementUseCase) Reconcile(ctx context.Context, userID string, from, to time.Time) (*domain.Statement, error) {
	bets, err := uc.bets.GetBets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get bets: %w", err)
	}

	transactions, err := uc.wallet.GetWalletTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get wallet transactions: %w", err)
	}

	player, err := uc.players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get player summary: %w", err)
	}

	statement := BuildStatement(bets, transactions, from, to, player.WalletBalance.Decimal)
	return &statement, nil
}
