package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetType identifies the game a bet was placed on.
type BetType string

const (
	BetTypeSingle     BetType = "single"
	BetTypeJodi       BetType = "jodi"
	BetTypePanna      BetType = "panna"
	BetTypeHalfSangam BetType = "half-sangam"
	BetTypeFullSangam BetType = "full-sangam"
)

// BetStatus is a one-way transition from pending; the settlement process
// upstream records the terminal state, this core only reads it.
type BetStatus string

const (
	BetStatusPending   BetStatus = "pending"
	BetStatusWon       BetStatus = "won"
	BetStatusLost      BetStatus = "lost"
	BetStatusCancelled BetStatus = "cancelled"
)

// BetOn marks whether the bet targets the open or close draw of a market.
type BetOn string

const (
	BetOnOpen  BetOn = "open"
	BetOnClose BetOn = "close"
)

// Bet is a raw bet record as supplied by the upstream API. Immutable here;
// Payout is meaningful only when Status is won and is zero otherwise.
type Bet struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	MarketID             string          `json:"market_id"`
	MarketName           string          `json:"market_name"`
	SessionID            string          `json:"session_id"`
	BetType              BetType         `json:"bet_type"`
	BetNumber            string          `json:"bet_number"`
	BetOn                BetOn           `json:"bet_on"`
	Amount               decimal.Decimal `json:"amount"`
	Status               BetStatus       `json:"status"`
	Payout               decimal.Decimal `json:"payout"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CreatedAt            time.Time       `json:"created_at"`
}
