package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is a derived, read-only view over the bets that were placed
// together. The session key is an opaque correlation ID stamped by the
// upstream placement process; this core never invents grouping keys.
type Session struct {
	SessionID   string          `json:"session_id"`
	UserID      string          `json:"user_id"`
	MarketID    string          `json:"market_id"`
	MarketName  string          `json:"market_name"`
	Bets        []Bet           `json:"bets"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalBets   int             `json:"total_bets"`
	CreatedAt   time.Time       `json:"created_at"`
}
