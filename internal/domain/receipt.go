package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SettlementAdjustments are the operator-supplied figures entered on the
// settlement form for one receipt. All fields default to zero; blank or
// non-numeric form input is zero, never an error.
type SettlementAdjustments struct {
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	Paid              decimal.Decimal `json:"paid"`
	Cutting           decimal.Decimal `json:"cutting"`
	ToGive            decimal.Decimal `json:"to_give"`
	ToTake            decimal.Decimal `json:"to_take"`
}

// AdjustmentsFromStrings builds adjustments from raw form input.
func AdjustmentsFromStrings(commissionPercent, paid, cutting, toGive, toTake string) SettlementAdjustments {
	return SettlementAdjustments{
		CommissionPercent: ParseLenientDecimal(commissionPercent),
		Paid:              ParseLenientDecimal(paid),
		Cutting:           ParseLenientDecimal(cutting),
		ToGive:            ParseLenientDecimal(toGive),
		ToTake:            ParseLenientDecimal(toTake),
	}
}

func (a *SettlementAdjustments) UnmarshalJSON(data []byte) error {
	var raw struct {
		CommissionPercent LenientDecimal `json:"commission_percent"`
		Paid              LenientDecimal `json:"paid"`
		Cutting           LenientDecimal `json:"cutting"`
		ToGive            LenientDecimal `json:"to_give"`
		ToTake            LenientDecimal `json:"to_take"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.CommissionPercent = raw.CommissionPercent.Decimal
	a.Paid = raw.Paid.Decimal
	a.Cutting = raw.Cutting.Decimal
	a.ToGive = raw.ToGive.Decimal
	a.ToTake = raw.ToTake.Decimal
	return nil
}

// ReceiptTotals is the commission-adjusted settlement result for one batch
// of bets. ToGive and ToTake are carried through for display only; they are
// not netted into FinalTotal.
type ReceiptTotals struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	RemainingToPay   decimal.Decimal `json:"remaining_to_pay"`
	FinalTotal       decimal.Decimal `json:"final_total"`
	ToGive           decimal.Decimal `json:"to_give"`
	ToTake           decimal.Decimal `json:"to_take"`
}

// Rounded returns a display copy rounded to the given number of decimal
// places. Internal arithmetic stays at full precision; rounding happens
// only at this boundary.
func (r ReceiptTotals) Rounded(places int32) ReceiptTotals {
	return ReceiptTotals{
		TotalAmount:      r.TotalAmount.Round(places),
		CommissionAmount: r.CommissionAmount.Round(places),
		RemainingToPay:   r.RemainingToPay.Round(places),
		FinalTotal:       r.FinalTotal.Round(places),
		ToGive:           r.ToGive.Round(places),
		ToTake:           r.ToTake.Round(places),
	}
}

// SessionReceipt pairs a session with its computed settlement totals.
type SessionReceipt struct {
	Session Session       `json:"session"`
	Totals  ReceiptTotals `json:"totals"`
}
