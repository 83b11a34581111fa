package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bookie-console/internal/domain"
)

// JSONPlayerRepository implements the PlayerSource interface over a player
// summary JSON file as exported by the console. The money fields decode
// leniently because the upstream emits them as strings or numbers
// depending on the endpoint.
type JSONPlayerRepository struct {
	path string
}

// NewJSONPlayerRepository creates a repository reading the given summary file.
func NewJSONPlayerRepository(path string) *JSONPlayerRepository {
	return &JSONPlayerRepository{path: path}
}

// GetPlayer reads and parses the player summary. A non-empty userID must
// match the record in the file.
func (r *JSONPlayerRepository) GetPlayer(ctx context.Context, userID string) (domain.Player, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Player{}, fmt.Errorf("failed to open player summary %s: %w", r.path, err)
	}

	var player domain.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return domain.Player{}, fmt.Errorf("failed to parse player summary %s: %w", r.path, err)
	}
	if userID != "" && player.UserID != userID {
		return domain.Player{}, fmt.Errorf("player summary %s is for user %q, not %q", r.path, player.UserID, userID)
	}
	return player, nil
}
