package model

import "strconv"

// TopKind distinguishes the variants of a top score
type TopKind uint8

const (
	TopEmpty  TopKind = iota // Not yet entered
	TopPoints                // A numeric score
	TopMatch                 // The round was a Match
)

// TopScore is the primary score of a cell. The zero value is an unentered score.
type TopScore struct {
	Kind   TopKind
	Points int // Only meaningful for TopPoints
}

// MatchTop is the top score recorded for a Match
var MatchTop = TopScore{Kind: TopMatch}

// PointsTop returns a numeric top score. MatchValue maps to MatchTop so the
// in-memory form always agrees with the persisted sentinel.
func PointsTop(n int) TopScore {
	if n == MatchValue {
		return MatchTop
	}
	return TopScore{Kind: TopPoints, Points: n}
}

// IsSet returns true if a value has been entered
func (t TopScore) IsSet() bool {
	return t.Kind != TopEmpty
}

// IsMatch returns true if this is the Match variant
func (t TopScore) IsMatch() bool {
	return t.Kind == TopMatch
}

// Value returns the arithmetic value: 0 when empty, MatchValue for a Match
func (t TopScore) Value() int {
	switch t.Kind {
	case TopPoints:
		return t.Points
	case TopMatch:
		return MatchValue
	default:
		return 0
	}
}

// String renders the score the way it is displayed in a cell
func (t TopScore) String() string {
	return strconv.Itoa(t.Value())
}

// RoundScore holds one player's two score components for one round
type RoundScore struct {
	Top    TopScore
	Bottom *int // nil until entered
}

// Total returns top + bottom, treating unset components as 0
func (s RoundScore) Total() int {
	return s.Top.Value() + s.BottomValue()
}

// BottomValue returns the bottom score or 0 if unset
func (s RoundScore) BottomValue() int {
	if s.Bottom == nil {
		return 0
	}
	return *s.Bottom
}

// IsEmpty returns true if neither component has been entered
func (s RoundScore) IsEmpty() bool {
	return !s.Top.IsSet() && s.Bottom == nil
}

func (s RoundScore) HasTop() bool {
	return s.Top.IsSet()
}

// Clone returns a deep copy
func (s RoundScore) Clone() RoundScore {
	return RoundScore{Top: s.Top, Bottom: s.cloneBottom()}
}

func (s RoundScore) cloneBottom() *int {
	if s.Bottom == nil {
		return nil
	}
	v := *s.Bottom
	return &v
}
