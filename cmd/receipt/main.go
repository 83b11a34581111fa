package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bookie-console/internal/config"
	"bookie-console/internal/domain"
	"bookie-console/internal/gateway"
	"bookie-console/internal/usecase"
)

// receiptDocument is the printable envelope handed to the rendering layer.
// The reference ID and issue time are stamped here at the boundary so the
// underlying settlement calculation stays deterministic.
type receiptDocument struct {
	ReceiptID  string               `json:"receipt_id"`
	IssuedAt   time.Time            `json:"issued_at"`
	UserID     string               `json:"user_id"`
	SessionID  string               `json:"session_id"`
	MarketName string               `json:"market_name"`
	Bets       []receiptLine        `json:"bets"`
	Totals     domain.ReceiptTotals `json:"totals"`
}

type receiptLine struct {
	BetNumber string `json:"bet_number"`
	Label     string `json:"label"`
	BetOn     string `json:"bet_on"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	betsFile := flag.String("bets", cfg.BetsFile, "Path to the bet export CSV file (required)")
	playerFile := flag.String("player", cfg.PlayerFile, "Path to the player summary JSON file (optional, supplies to-give/to-take)")
	userID := flag.String("user", "", "Player user ID (required)")
	sessionID := flag.String("session", "", "Session ID to settle (required)")
	commission := flag.String("commission", "", "Commission percent (blank means 0)")
	paid := flag.String("paid", "", "Amount already paid (blank means 0)")
	cutting := flag.String("cutting", "", "Manual cutting deduction (blank means 0)")
	toGive := flag.String("togive", "", "To-give balance override (blank uses the player summary)")
	toTake := flag.String("totake", "", "To-take balance override (blank uses the player summary)")
	flag.Parse()

	if *betsFile == "" || *userID == "" || *sessionID == "" {
		fmt.Println("Error: -bets, -user and -session are required (flags or env defaults).")
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	// Blank or junk adjustment input is a valid form state and means zero.
	adjustments := domain.AdjustmentsFromStrings(*commission, *paid, *cutting, *toGive, *toTake)

	if *playerFile != "" {
		player, err := gateway.NewJSONPlayerRepository(*playerFile).GetPlayer(ctx, *userID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load player summary")
		}
		if *toGive == "" {
			adjustments.ToGive = player.ToGive.Decimal
		}
		if *toTake == "" {
			adjustments.ToTake = player.ToTake.Decimal
		}
	}

	receiptUseCase := usecase.NewReceiptUseCase(gateway.NewCSVBetRepository(*betsFile))

	receipt, err := receiptUseCase.BuildReceipt(ctx, *userID, *sessionID, adjustments)
	if err != nil {
		log.Fatal().Err(err).Msg("settlement failed")
	}

	document := receiptDocument{
		ReceiptID:  uuid.New().String(),
		IssuedAt:   time.Now().UTC(),
		UserID:     receipt.Session.UserID,
		SessionID:  receipt.Session.SessionID,
		MarketName: receipt.Session.MarketName,
		Totals:     receipt.Totals.Rounded(cfg.DisplayPlaces),
	}
	for _, bet := range receipt.Session.Bets {
		document.Bets = append(document.Bets, receiptLine{
			BetNumber: bet.BetNumber,
			Label:     usecase.ClassifySubType(bet.BetType, bet.BetNumber),
			BetOn:     string(bet.BetOn),
			Amount:    bet.Amount.StringFixed(cfg.DisplayPlaces),
			Status:    string(bet.Status),
		})
	}

	log.Info().
		Str("receipt_id", document.ReceiptID).
		Str("session", document.SessionID).
		Int("bets", len(document.Bets)).
		Str("final_total", document.Totals.FinalTotal.String()).
		Msg("receipt settled")

	output, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode receipt")
	}
	fmt.Println(string(output))
}
