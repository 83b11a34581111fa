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

// Wallet export column order.
const (
	walletColID = iota
	walletColUserID
	walletColType
	walletColAmount
	walletColDescription
	walletColRelatedBet
	walletColCreatedAt

	walletColumnCount
)

// CSVWalletRepository implements the WalletSource interface over a wallet
// export CSV file.
type CSVWalletRepository struct {
	path string
}

// NewCSVWalletRepository creates a repository reading the given export file.
func NewCSVWalletRepository(path string) *CSVWalletRepository {
	return &CSVWalletRepository{path: path}
}

// GetWalletTransactions reads and parses the wallet export, keeping only
// the given player's movements. An empty userID keeps everything.
func (r *CSVWalletRepository) GetWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet export %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", r.path, err)
	}

	var transactions []domain.WalletTransaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", r.path, err)
		}
		if len(record) < walletColumnCount {
			return nil, fmt.Errorf("short record in %s: got %d columns, want %d", r.path, len(record), walletColumnCount)
		}
		if userID != "" && record[walletColUserID] != userID {
			continue
		}

		amount, err := decimal.NewFromString(record[walletColAmount])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount '%s': %w", record[walletColAmount], err)
		}

		createdAt, err := time.Parse(time.RFC3339, record[walletColCreatedAt])
		if err != nil {
			return nil, fmt.Errorf("could not parse created_at '%s': %w", record[walletColCreatedAt], err)
		}

		transactions = append(transactions, domain.WalletTransaction{
			ID:          record[walletColID],
			UserID:      record[walletColUserID],
			Type:        domain.TransactionType(record[walletColType]),
			Amount:      amount,
			Description: record[walletColDescription],
			RelatedBet:  record[walletColRelatedBet],
			CreatedAt:   createdAt,
		})
	}
	return transactions, nil
}
