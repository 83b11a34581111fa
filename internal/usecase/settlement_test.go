package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bookie-console/internal/domain"
	"bookie-console/internal/usecase"
	mock_usecase "bookie-console/internal/usecase/mocks"
)

func betWithAmount(amount string) domain.Bet {
	return domain.Bet{Amount: decimal.RequireFromString(amount)}
}

func TestComputeReceipt(t *testing.T) {
	tests := []struct {
		name                 string
		bets                 []domain.Bet
		adjustments          domain.SettlementAdjustments
		wantTotalAmount      string
		wantCommissionAmount string
		wantRemainingToPay   string
		wantFinalTotal       string
	}{
		{
			name:                 "ten percent commission on a single bet",
			bets:                 []domain.Bet{betWithAmount("100")},
			adjustments:          domain.AdjustmentsFromStrings("10", "", "", "", ""),
			wantTotalAmount:      "100",
			wantCommissionAmount: "10",
			wantRemainingToPay:   "90",
			wantFinalTotal:       "90",
		},
		{
			name: "paid and cutting reduce the final total",
			bets: []domain.Bet{betWithAmount("250"), betWithAmount("150")},
			adjustments: domain.SettlementAdjustments{
				CommissionPercent: decimal.RequireFromString("5"),
				Paid:              decimal.RequireFromString("100"),
				Cutting:           decimal.RequireFromString("30"),
			},
			wantTotalAmount:      "400",
			wantCommissionAmount: "20",
			wantRemainingToPay:   "380",
			wantFinalTotal:       "250",
		},
		{
			name:                 "fractional amounts stay exact",
			bets:                 []domain.Bet{betWithAmount("33.33"), betWithAmount("66.67")},
			adjustments:          domain.AdjustmentsFromStrings("7.5", "0.005", "", "", ""),
			wantTotalAmount:      "100",
			wantCommissionAmount: "7.5",
			wantRemainingToPay:   "92.5",
			wantFinalTotal:       "92.495",
		},
		{
			name:                 "blank and non-numeric adjustments mean zero",
			bets:                 []domain.Bet{betWithAmount("80")},
			adjustments:          domain.AdjustmentsFromStrings("", "abc", "  ", "", ""),
			wantTotalAmount:      "80",
			wantCommissionAmount: "0",
			wantRemainingToPay:   "80",
			wantFinalTotal:       "80",
		},
		{
			name:                 "no bets",
			bets:                 nil,
			adjustments:          domain.AdjustmentsFromStrings("10", "5", "5", "", ""),
			wantTotalAmount:      "0",
			wantCommissionAmount: "0",
			wantRemainingToPay:   "0",
			wantFinalTotal:       "-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.ComputeReceipt(tt.bets, tt.adjustments)

			assertDecimalEqual(t, tt.wantTotalAmount, got.TotalAmount, "TotalAmount")
			assertDecimalEqual(t, tt.wantCommissionAmount, got.CommissionAmount, "CommissionAmount")
			assertDecimalEqual(t, tt.wantRemainingToPay, got.RemainingToPay, "RemainingToPay")
			assertDecimalEqual(t, tt.wantFinalTotal, got.FinalTotal, "FinalTotal")

			// finalTotal = totalAmount - commissionAmount - paid - cutting, exactly.
			identity := got.TotalAmount.Sub(got.CommissionAmount).Sub(tt.adjustments.Paid).Sub(tt.adjustments.Cutting)
			assert.True(t, got.FinalTotal.Equal(identity), "final total identity broken: %s != %s", got.FinalTotal, identity)
		})
	}
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", field, got, want)
}

func TestComputeReceipt_ToGiveToTakeNotNetted(t *testing.T) {
	bets := []domain.Bet{betWithAmount("100")}
	adjustments := domain.AdjustmentsFromStrings("0", "0", "0", "40", "25")

	got := usecase.ComputeReceipt(bets, adjustments)

	// Carried through for display, never folded into the final total.
	assertDecimalEqual(t, "40", got.ToGive, "ToGive")
	assertDecimalEqual(t, "25", got.ToTake, "ToTake")
	assertDecimalEqual(t, "100", got.FinalTotal, "FinalTotal")
}

func TestComputeReceipt_Idempotent(t *testing.T) {
	bets := []domain.Bet{betWithAmount("33.33"), betWithAmount("0.01"), betWithAmount("199.99")}
	adjustments := domain.AdjustmentsFromStrings("12.5", "10", "2.5", "1", "2")

	first := usecase.ComputeReceipt(bets, adjustments)
	second := usecase.ComputeReceipt(bets, adjustments)

	assert.Equal(t, first, second)
}

func TestReceiptTotals_Rounded(t *testing.T) {
	got := usecase.ComputeReceipt(
		[]domain.Bet{betWithAmount("99.999")},
		domain.AdjustmentsFromStrings("3.333", "", "", "", ""),
	).Rounded(2)

	assert.Equal(t, "100.00", got.TotalAmount.StringFixed(2))
	assert.Equal(t, "3.33", got.CommissionAmount.StringFixed(2))
}

func TestReceiptUseCase_BuildReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bets := []domain.Bet{
		{ID: "b1", UserID: "u1", SessionID: "s1", MarketName: "Kalyan", Amount: decimal.NewFromInt(60)},
		{ID: "b2", UserID: "u1", SessionID: "s1", MarketName: "Kalyan", Amount: decimal.NewFromInt(40)},
		{ID: "b3", UserID: "u1", SessionID: "s2", MarketName: "Milan", Amount: decimal.NewFromInt(500)},
	}

	betSource := mock_usecase.NewMockBetSource(ctrl)
	betSource.EXPECT().GetBets(gomock.Any(), "u1").Return(bets, nil)

	uc := usecase.NewReceiptUseCase(betSource)
	receipt, err := uc.BuildReceipt(context.Background(), "u1", "s1", domain.AdjustmentsFromStrings("10", "", "", "", ""))

	assert.NoError(t, err)
	assert.Equal(t, "s1", receipt.Session.SessionID)
	assert.Equal(t, 2, receipt.Session.TotalBets)
	assertDecimalEqual(t, "100", receipt.Totals.TotalAmount, "TotalAmount")
	assertDecimalEqual(t, "90", receipt.Totals.FinalTotal, "FinalTotal")
}

func TestReceiptUseCase_BuildReceipt_SessionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	betSource := mock_usecase.NewMockBetSource(ctrl)
	betSource.EXPECT().GetBets(gomock.Any(), "u1").Return(nil, nil)

	uc := usecase.NewReceiptUseCase(betSource)
	receipt, err := uc.BuildReceipt(context.Background(), "u1", "missing", domain.SettlementAdjustments{})

	assert.Nil(t, receipt)
	assert.ErrorContains(t, err, "no session")
}

func TestReceiptUseCase_BuildReceipt_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	betSource := mock_usecase.NewMockBetSource(ctrl)
	betSource.EXPECT().GetBets(gomock.Any(), "u1").Return(nil, errors.New("export unavailable"))

	uc := usecase.NewReceiptUseCase(betSource)
	receipt, err := uc.BuildReceipt(context.Background(), "u1", "s1", domain.SettlementAdjustments{})

	assert.Nil(t, receipt)
	assert.ErrorContains(t, err, "could not get bets")
}
