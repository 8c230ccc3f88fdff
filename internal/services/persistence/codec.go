package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcoot/vierbure/internal/model"
)

// The JSON record below is the on-disk format. It matches the shape written by
// earlier versions of the app: a Match is stored as the top value -257 and
// lastModified is seconds since 2001-01-01 UTC.

type gameStateRecord struct {
	Players           []playerRecord `json:"players"`
	Rounds            int            `json:"rounds"`
	ActivePlayerCount int            `json:"activePlayerCount"`
	LastModified      savedTime      `json:"lastModified"`
}

type playerRecord struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Scores []scoreRecord `json:"scores"`
}

type scoreRecord struct {
	Top    *int `json:"top,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
}

// EncodeGameState serializes a game state
func EncodeGameState(state *model.GameState) ([]byte, error) {
	record := gameStateRecord{
		Players:           make([]playerRecord, len(state.Players)),
		Rounds:            state.Rounds,
		ActivePlayerCount: state.ActivePlayerCount,
		LastModified:      savedTime{state.LastModified.UTC()},
	}

	for i, p := range state.Players {
		pr := playerRecord{
			ID:     string(p.ID),
			Name:   p.Name,
			Scores: make([]scoreRecord, len(p.Scores)),
		}
		for j, s := range p.Scores {
			var sr scoreRecord
			if s.Top.IsSet() {
				v := s.Top.Value()
				sr.Top = &v
			}
			if s.Bottom != nil {
				v := *s.Bottom
				sr.Bottom = &v
			}
			pr.Scores[j] = sr
		}
		record.Players[i] = pr
	}

	return json.Marshal(record)
}

// DecodeGameState parses a serialized game state. Structural problems are
// reported as ErrDataCorruption; value ranges and an empty roster are left for
// the scoreboard to reconcile.
func DecodeGameState(data []byte) (*model.GameState, error) {
	var record gameStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDataCorruption, err)
	}

	state := &model.GameState{
		Players:           make([]model.Player, len(record.Players)),
		Rounds:            record.Rounds,
		ActivePlayerCount: record.ActivePlayerCount,
		LastModified:      record.LastModified.Time,
	}

	for i, pr := range record.Players {
		if pr.ID == "" {
			return nil, fmt.Errorf("%w: player %d has no id", model.ErrDataCorruption, i)
		}
		p := model.NewPlayer(model.PlayerID(pr.ID), pr.Name)
		p.EnsureScoreCapacity(len(pr.Scores))
		for j, sr := range pr.Scores {
			var rs model.RoundScore
			if sr.Top != nil {
				rs.Top = model.PointsTop(*sr.Top)
			}
			if sr.Bottom != nil {
				v := *sr.Bottom
				rs.Bottom = &v
			}
			p.SetScore(rs, j)
		}
		state.Players[i] = p
	}

	return state, nil
}

// referenceDate is the epoch of numeric lastModified values
var referenceDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// savedTime encodes as seconds since referenceDate and also decodes RFC 3339 strings
type savedTime struct {
	time.Time
}

func (t savedTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(t.Sub(referenceDate).Seconds())
}

func (t *savedTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		t.Time = referenceDate.Add(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	return t.Time.UnmarshalJSON(data)
}
