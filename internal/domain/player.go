package domain

// Player is the summary the external service exposes for one player.
// ToGive and ToTake are running balances tracked independently of the
// wallet balance; the money fields arrive as strings or numbers depending
// on the upstream endpoint, hence the lenient decoding.
type Player struct {
	UserID        string         `json:"user_id"`
	Name          string         `json:"name"`
	ToGive        LenientDecimal `json:"to_give"`
	ToTake        LenientDecimal `json:"to_take"`
	WalletBalance LenientDecimal `json:"wallet_balance"`
}
