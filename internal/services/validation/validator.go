// Package validation turns raw user input into values the scoreboard can store.
// Every function is pure.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mcoot/vierbure/internal/model"
)

// ValidateTopScore parses a top-score entry. Empty input is 0, numbers are
// clamped to [MinScoreValue, MaxScoreValue], anything else is ErrInvalidScoreValue.
func ValidateTopScore(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		// Numeric but too large for int: clamp by sign
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(trimmed, "-") {
				return model.MinScoreValue, nil
			}
			return model.MaxScoreValue, nil
		}
		return 0, model.ErrInvalidScoreValue
	}

	return clamp(value, model.MinScoreValue, model.MaxScoreValue), nil
}

// ValidatePlayerName trims whitespace. An all-whitespace name becomes "";
// callers substitute a default.
func ValidatePlayerName(input string) string {
	return strings.TrimSpace(input)
}

// ValidatePlayerCount clamps to [MinPlayers, MaxPlayers]
func ValidatePlayerCount(count int) int {
	return clamp(count, model.MinPlayers, model.MaxPlayers)
}

// TruncateName keeps the first MaxNameLength runes of a name
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= model.MaxNameLength {
		return name
	}
	return string(runes[:model.MaxNameLength])
}

// IsValidRoundSum reports whether a round's top scores are acceptable: any Match
// passes when allowMatch is set, otherwise the values must sum to TotalPointsPerRound.
func IsValidRoundSum(tops []model.TopScore, allowMatch bool) bool {
	if allowMatch {
		for _, t := range tops {
			if t.IsMatch() {
				return true
			}
		}
	}

	return SumTops(tops) == model.TotalPointsPerRound
}

// SumTops adds top values, treating unentered scores as 0
func SumTops(tops []model.TopScore) int {
	sum := 0
	for _, t := range tops {
		sum += t.Value()
	}
	return sum
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
