package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bookie-console/internal/domain"
)

var walletHeader = []string{
	"id", "user_id", "type", "amount", "description", "related_bet", "created_at",
}

func TestCSVWalletRepository_GetWalletTransactions(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		csvData  [][]string
		expected []domain.WalletTransaction
		wantErr  string
	}{
		{
			name:   "valid movements",
			userID: "",
			csvData: [][]string{
				walletHeader,
				{"t1", "u1", "credit", "500", "Deposit via UPI", "", "2025-06-01T09:00:00Z"},
				{"t2", "u1", "debit", "120.75", "Withdraw request", "b9", "2025-06-02T09:00:00Z"},
			},
			expected: []domain.WalletTransaction{
				{
					ID: "t1", UserID: "u1", Type: domain.TransactionTypeCredit,
					Amount: decimal.RequireFromString("500"), Description: "Deposit via UPI",
					CreatedAt: mustParseTime("2025-06-01T09:00:00Z"),
				},
				{
					ID: "t2", UserID: "u1", Type: domain.TransactionTypeDebit,
					Amount: decimal.RequireFromString("120.75"), Description: "Withdraw request",
					RelatedBet: "b9", CreatedAt: mustParseTime("2025-06-02T09:00:00Z"),
				},
			},
		},
		{
			name:   "filters by user",
			userID: "u1",
			csvData: [][]string{
				walletHeader,
				{"t1", "u1", "credit", "500", "Deposit", "", "2025-06-01T09:00:00Z"},
				{"t2", "u2", "credit", "900", "Deposit", "", "2025-06-01T09:00:00Z"},
			},
			expected: []domain.WalletTransaction{
				{
					ID: "t1", UserID: "u1", Type: domain.TransactionTypeCredit,
					Amount: decimal.RequireFromString("500"), Description: "Deposit",
					CreatedAt: mustParseTime("2025-06-01T09:00:00Z"),
				},
			},
		},
		{
			name:    "empty file with header only",
			csvData: [][]string{walletHeader},
		},
		{
			name: "invalid amount is a hard error",
			csvData: [][]string{
				walletHeader,
				{"t1", "u1", "credit", "lots", "Deposit", "", "2025-06-01T09:00:00Z"},
			},
			wantErr: "could not parse amount",
		},
		{
			name: "invalid timestamp is a hard error",
			csvData: [][]string{
				walletHeader,
				{"t1", "u1", "credit", "500", "Deposit", "", "last tuesday"},
			},
			wantErr: "could not parse created_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempCSV(t, tt.csvData)

			repo := NewCSVWalletRepository(path)
			got, err := repo.GetWalletTransactions(context.Background(), tt.userID)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVWalletRepository_MissingFile(t *testing.T) {
	repo := NewCSVWalletRepository(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := repo.GetWalletTransactions(context.Background(), "")
	assert.ErrorContains(t, err, "failed to open wallet export")
}
