package model

import "time"

// Cell identifies one round of one player on the scoreboard
type Cell struct {
	Round       int
	PlayerIndex int
}

// GameState is the persisted record of a scoreboard
type GameState struct {
	Players           []Player
	Rounds            int
	ActivePlayerCount int
	LastModified      time.Time
}

// Clone returns a deep copy
func (g GameState) Clone() GameState {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = p.Clone()
	}
	return GameState{
		Players:           players,
		Rounds:            g.Rounds,
		ActivePlayerCount: g.ActivePlayerCount,
		LastModified:      g.LastModified,
	}
}

// RoundStatus describes how a round is displayed
type RoundStatus string

const (
	RoundStatusOpen      RoundStatus = "open"      // Editable, or not yet judged
	RoundStatusConfirmed RoundStatus = "confirmed" // Frozen and valid
	RoundStatusInvalid   RoundStatus = "invalid"   // Frozen and top scores don't add up
)
