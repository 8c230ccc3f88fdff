package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidScoreValue  = errors.New("score value must be a number between -999 and 999")
	ErrInvalidPlayerCount = errors.New("player count must be between 3 and 6")
	ErrInvalidRoundNumber = errors.New("invalid round number")
	ErrInvalidPlayer      = errors.New("invalid player number")
	ErrRoundFrozen        = errors.New("only the latest round can be edited")

	// Persistence errors
	ErrGameStateNotFound = errors.New("game state not found")
	ErrDataCorruption    = errors.New("game data appears to be corrupted")
)
