package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the environment-backed defaults for the CLI tools.
// Command-line flags override these.
type Config struct {
	BetsFile      string
	WalletFile    string
	PlayerFile    string
	DisplayPlaces int32
}

// Load reads a .env file when present and returns the effective defaults.
// A missing .env is fine; the environment alone works too.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BetsFile:      os.Getenv("BETS_FILE"),
		WalletFile:    os.Getenv("WALLET_FILE"),
		PlayerFile:    os.Getenv("PLAYER_FILE"),
		DisplayPlaces: 2,
	}
	if v := os.Getenv("DISPLAY_PLACES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DisplayPlaces = int32(n)
		}
	}
	return cfg
}
