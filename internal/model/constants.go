package model

// Game rules
const (
	TotalPointsPerRound = 157  // Top scores of a frozen round must sum to this
	MatchValue          = -257 // Persisted sentinel for a Match
	MinPlayers          = 3
	MaxPlayers          = 6
	DefaultPlayerCount  = 4
)

// Input limits
const (
	MaxScoreValue = 999
	MinScoreValue = -999
	MaxNameLength = 10 // in runes
)

// ScoreIncrements are the bottom-score steps offered to the user (negated for decrements)
var ScoreIncrements = []int{20, 50, 100, 150}
