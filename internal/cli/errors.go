package cli

import (
	"errors"

	"github.com/mcoot/vierbure/internal/model"
)

// CLIError is the machine-readable form of a failed command
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps a CLIError
type ErrorResponse struct {
	Error CLIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRound       = "INVALID_ROUND"
	CodeInvalidPlayer      = "INVALID_PLAYER"
	CodeInvalidPlayerCount = "INVALID_PLAYER_COUNT"
	CodeInvalidScore       = "INVALID_SCORE"
	CodeRoundFrozen        = "ROUND_FROZEN"
	CodeInternalError      = "INTERNAL_ERROR"
)

// toCLIError maps an error to its code, keeping the full message
func toCLIError(err error) CLIError {
	code := CodeInternalError
	switch {
	case errors.Is(err, model.ErrInvalidRoundNumber):
		code = CodeInvalidRound
	case errors.Is(err, model.ErrInvalidPlayer):
		code = CodeInvalidPlayer
	case errors.Is(err, model.ErrInvalidPlayerCount):
		code = CodeInvalidPlayerCount
	case errors.Is(err, model.ErrInvalidScoreValue):
		code = CodeInvalidScore
	case errors.Is(err, model.ErrRoundFrozen):
		code = CodeRoundFrozen
	}
	return CLIError{Code: code, Message: err.Error()}
}
