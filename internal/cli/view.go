package cli

import (
	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/services/scoreboard"
)

// ScoreboardView is the printable state of the scoreboard
type ScoreboardView struct {
	Players []PlayerView `json:"players"`
	Rounds  []RoundView  `json:"rounds"`
}

// PlayerView is one column of the scoreboard
type PlayerView struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
	// Leading marks the lowest total, Trailing the highest; neither while all totals are 0
	Leading  bool `json:"leading"`
	Trailing bool `json:"trailing"`
}

// RoundView is one row of the scoreboard
type RoundView struct {
	Number   int               `json:"number"`
	Status   model.RoundStatus `json:"status"`
	Editable bool              `json:"editable"`
	TopSum   int               `json:"topSum"`
	Match    bool              `json:"match"`
	Message  string            `json:"message,omitempty"`
	Cells    []CellView        `json:"cells"`
}

// CellView is one player's score in one round
type CellView struct {
	Top    int  `json:"top"`
	Match  bool `json:"match"`
	Set    bool `json:"set"`
	Bottom *int `json:"bottom,omitempty"`
}

// NamesView lists the saved player names
type NamesView struct {
	Names []string `json:"names"`
}

func buildScoreboardView(c *scoreboard.Controller) ScoreboardView {
	players := c.Players()
	totals := c.PlayerTotals()
	standings := c.PlayerStandings()

	view := ScoreboardView{
		Players: make([]PlayerView, len(players)),
		Rounds:  make([]RoundView, c.Rounds()),
	}
	for i, p := range players {
		view.Players[i] = PlayerView{
			Name:     p.Name,
			Total:    totals[i],
			Leading:  standings[i].Leading,
			Trailing: standings[i].Trailing,
		}
	}

	for r := range view.Rounds {
		row := RoundView{
			Number:   r + 1,
			Status:   c.RoundStatus(r),
			Editable: c.IsRoundEditable(r),
			TopSum:   c.RoundTopSum(r),
			Match:    c.RoundHasMatch(r),
			Message:  c.StatusMessage(r),
			Cells:    make([]CellView, len(players)),
		}
		for i, p := range players {
			score, _ := p.ScoreFor(r)
			row.Cells[i] = CellView{
				Top:    score.Top.Value(),
				Match:  score.Top.IsMatch(),
				Set:    score.HasTop(),
				Bottom: c.BottomScore(r, i),
			}
		}
		view.Rounds[r] = row
	}

	return view
}

func buildNamesView(c *scoreboard.Controller) NamesView {
	return NamesView{Names: c.PlayerNames()}
}
