package usecase

import (
	"sort"

	"bookie-console/internal/domain"
)

// GroupBySession groups a flat list of bets into per-session summaries.
// Grouping uses only the opaque session key stamped upstream when the bets
// were placed together; no time-bucket heuristics re-derive it. The input
// is never mutated. Output order is deterministic: sessions sorted by
// CreatedAt, then SessionID, with bets in input order within each session.
func GroupBySession(bets []domain.Bet) []domain.Session {
	index := make(map[string]int)
	var sessions []domain.Session

	for _, bet := range bets {
		i, ok := index[bet.SessionID]
		if !ok {
			sessions = append(sessions, domain.Session{
				SessionID:  bet.SessionID,
				UserID:     bet.UserID,
				MarketID:   bet.MarketID,
				MarketName: bet.MarketName,
				CreatedAt:  bet.CreatedAt,
			})
			i = len(sessions) - 1
			index[bet.SessionID] = i
		}

		session := &sessions[i]
		session.Bets = append(session.Bets, bet)
		session.TotalAmount = session.TotalAmount.Add(bet.Amount)
		session.TotalBets++
		// Bets in a session share one placement time in practice; keep the
		// earliest in case the upstream ever disagrees.
		if bet.CreatedAt.Before(session.CreatedAt) {
			session.CreatedAt = bet.CreatedAt
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
		}
		return sessions[i].SessionID < sessions[j].SessionID
	})
	return sessions
}
