package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bookie-console/internal/domain"
)

// ComputeReceipt computes the commission-adjusted settlement totals for one
// batch of bets plus the operator's manual adjustments:
//
//	totalAmount      = sum of bet amounts
//	commissionAmount = totalAmount * commissionPercent / 100
//	remainingToPay   = totalAmount - commissionAmount
//	finalTotal       = remainingToPay - paid - cutting
//
// ToGive and ToTake pass through for display and are not netted into
// FinalTotal. Arithmetic is exact decimal throughout; the UI recomputes on
// every keystroke, so callers round only at the display boundary via
// ReceiptTotals.Rounded.
func ComputeReceipt(bets []domain.Bet, adjustments domain.SettlementAdjustments) domain.ReceiptTotals {
	totalAmount := decimal.Zero
	for _, bet := range bets {
		totalAmount = totalAmount.Add(bet.Amount)
	}

	// Shift(-2) divides by 100 exactly, with no division precision cap.
	commissionAmount := totalAmount.Mul(adjustments.CommissionPercent).Shift(-2)
	remainingToPay := totalAmount.Sub(commissionAmount)
	finalTotal := remainingToPay.Sub(adjustments.Paid).Sub(adjustments.Cutting)

	return domain.ReceiptTotals{
		TotalAmount:      totalAmount,
		CommissionAmount: commissionAmount,
		RemainingToPay:   remainingToPay,
		FinalTotal:       finalTotal,
		ToGive:           adjustments.ToGive,
		ToTake:           adjustments.ToTake,
	}
}

// ReceiptUseCase builds a settlement receipt for one session by fetching a
// player's bets, grouping them, and running the settlement calculation.
type ReceiptUseCase struct {
	bets BetSource
}

// NewReceiptUseCase creates a new instance of the usecase.
func NewReceiptUseCase(bets BetSource) *ReceiptUseCase {
	return &ReceiptUseCase{bets: bets}
}

// BuildReceipt fetches the player's bets and computes the receipt for the
// session with the given ID.
func (uc *ReceiptUseCase) BuildReceipt(ctx context.Context, userID, sessionID string, adjustments domain.SettlementAdjustments) (*domain.SessionReceipt, error) {
	bets, err := uc.bets.GetBets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get bets: %w", err)
	}

	for _, session := range GroupBySession(bets) {
		if session.SessionID == sessionID {
			return &domain.SessionReceipt{
				Session: session,
				Totals:  ComputeReceipt(session.Bets, adjustments),
			}, nil
		}
	}
	return nil, fmt.Errorf("no session %q for user %q", sessionID, userID)
}
