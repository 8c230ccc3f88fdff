package model

import "fmt"

// PlayerID uniquely identifies a player for the lifetime of a session
type PlayerID string

// Player is an active participant and their per-round scores.
// Scores is index-aligned with the scoreboard's round counter.
type Player struct {
	ID     PlayerID
	Name   string
	Scores []RoundScore
}

// NewPlayer creates a player with no scores
func NewPlayer(id PlayerID, name string) Player {
	return Player{ID: id, Name: name, Scores: []RoundScore{}}
}

// TotalScore sums top and bottom over every round
func (p Player) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s.Total()
	}
	return total
}

// ScoreFor returns the score for a round, or false if the round is out of range
func (p Player) ScoreFor(round int) (RoundScore, bool) {
	if round < 0 || round >= len(p.Scores) {
		return RoundScore{}, false
	}
	return p.Scores[round], true
}

// SetScore replaces the score for a round; out-of-range rounds are ignored
func (p *Player) SetScore(score RoundScore, round int) {
	if round < 0 || round >= len(p.Scores) {
		return
	}
	p.Scores[round] = score
}

// EnsureScoreCapacity pads with empty scores or truncates so len(Scores) == rounds
func (p *Player) EnsureScoreCapacity(rounds int) {
	if rounds < 0 {
		rounds = 0
	}
	switch {
	case len(p.Scores) < rounds:
		p.Scores = append(p.Scores, make([]RoundScore, rounds-len(p.Scores))...)
	case len(p.Scores) > rounds:
		p.Scores = p.Scores[:rounds]
	}
	if p.Scores == nil {
		p.Scores = []RoundScore{}
	}
}

// Clone returns a deep copy
func (p Player) Clone() Player {
	scores := make([]RoundScore, len(p.Scores))
	for i, s := range p.Scores {
		scores[i] = s.Clone()
	}
	return Player{ID: p.ID, Name: p.Name, Scores: scores}
}

// DefaultPlayerName returns the fallback name for a roster slot ("Spieler 1" for index 0)
func DefaultPlayerName(index int) string {
	return fmt.Sprintf("Spieler %d", index+1)
}
