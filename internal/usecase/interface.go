package usecase

import (
	"context"

	"bookie-console/internal/domain"
)

// Record sources supply the raw data the engine works over. The usecase
// layer depends on these interfaces, not on a concrete implementation; the
// gateway package provides file-backed ones and the console's API client
// provides the live ones.
//
//go:generate mockgen -destination=mocks/mock_sources.go -source=interface.go

// BetSource fetches bet records for a player. An empty userID means every
// player in the source.
type BetSource interface {
	GetBets(ctx context.Context, userID string) ([]domain.Bet, error)
}

// WalletSource fetches wallet movements for a player.
type WalletSource interface {
	GetWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
}

// PlayerSource fetches the player summary (to-give/to-take balances and the
// live wallet balance).
type PlayerSource interface {
	GetPlayer(ctx context.Context, userID string) (domain.Player, error)
}
