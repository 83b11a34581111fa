package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"bookie-console/internal/config"
	"bookie-console/internal/gateway"
	"bookie-console/internal/usecase"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	betsFile := flag.String("bets", cfg.BetsFile, "Path to the bet export CSV file (required)")
	walletFile := flag.String("wallet", cfg.WalletFile, "Path to the wallet export CSV file (required)")
	playerFile := flag.String("player", cfg.PlayerFile, "Path to the player summary JSON file (required)")
	userID := flag.String("user", "", "Player user ID (required)")
	fromStr := flag.String("from", "", "Statement period start (YYYY-MM-DD) (required)")
	toStr := flag.String("to", "", "Statement period end (YYYY-MM-DD) (required)")
	flag.Parse()

	if *betsFile == "" || *walletFile == "" || *playerFile == "" || *userID == "" || *fromStr == "" || *toStr == "" {
		fmt.Println("Error: -bets, -wallet, -player, -user, -from and -to are required (flags or env defaults).")
		flag.Usage()
		os.Exit(1)
	}

	from, err := time.Parse(time.DateOnly, *fromStr)
	if err != nil {
		log.Fatal().Err(err).Str("from", *fromStr).Msg("invalid period start")
	}
	to, err := time.Parse(time.DateOnly, *toStr)
	if err != nil {
		log.Fatal().Err(err).Str("to", *toStr).Msg("invalid period end")
	}

	// Wire the file-backed sources into the reconciliation usecase.
	statementUseCase := usecase.NewStatementUseCase(
		gateway.NewCSVBetRepository(*betsFile),
		gateway.NewCSVWalletRepository(*walletFile),
		gateway.NewJSONPlayerRepository(*playerFile),
	)

	statement, err := statementUseCase.Reconcile(context.Background(), *userID, from, to)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliation failed")
	}

	log.Info().
		Str("user", *userID).
		Int("bets", statement.BetsSummary.Count).
		Str("net_amount", statement.Totals.NetAmount.StringFixed(cfg.DisplayPlaces)).
		Msg("statement reconciled")

	output, err := json.MarshalIndent(statement, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode statement")
	}
	fmt.Println(string(output))
}
