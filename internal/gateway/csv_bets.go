package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"bookie-console/internal/domain"
)

// Bet export column order. Structural fields (id, amount, created_at) are
// parsed strictly; optional money fields (payout, commission_percentage)
// are lenient — blank means zero.
const (
	betColID = iota
	betColUserID
	betColMarketID
	betColMarketName
	betColSessionID
	betColBetType
	betColBetNumber
	betColBetOn
	betColAmount
	betColStatus
	betColPayout
	betColCommissionPercentage
	betColCreatedAt

	betColumnCount
)

// CSVBetRepository implements the BetSource interface over a bet export
// CSV file.
type CSVBetRepository struct {
	path string
}

// NewCSVBetRepository creates a repository reading the given export file.
func NewCSVBetRepository(path string) *CSVBetRepository {
	return &CSVBetRepository{path: path}
}

// GetBets reads and parses the bet export, keeping only the given player's
// records. An empty userID keeps everything.
func (r *CSVBetRepository) GetBets(ctx context.Context, userID string) ([]domain.Bet, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bet export %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", r.path, err)
	}

	var bets []domain.Bet
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", r.path, err)
		}
		if len(record) < betColumnCount {
			return nil, fmt.Errorf("short record in %s: got %d columns, want %d", r.path, len(record), betColumnCount)
		}
		if userID != "" && record[betColUserID] != userID {
			continue
		}

		amount, err := decimal.NewFromString(record[betColAmount])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount '%s': %w", record[betColAmount], err)
		}

		createdAt, err := time.Parse(time.RFC3339, record[betColCreatedAt])
		if err != nil {
			return nil, fmt.Errorf("could not parse created_at '%s': %w", record[betColCreatedAt], err)
		}

		bets = append(bets, domain.Bet{
			ID:                   record[betColID],
			UserID:               record[betColUserID],
			MarketID:             record[betColMarketID],
			MarketName:           record[betColMarketName],
			SessionID:            record[betColSessionID],
			BetType:              domain.BetType(record[betColBetType]),
			BetNumber:            record[betColBetNumber],
			BetOn:                domain.BetOn(record[betColBetOn]),
			Amount:               amount,
			Status:               domain.BetStatus(record[betColStatus]),
			Payout:               domain.ParseLenientDecimal(record[betColPayout]),
			CommissionPercentage: domain.ParseLenientDecimal(record[betColCommissionPercentage]),
			CreatedAt:            createdAt,
		})
	}
	return bets, nil
}
