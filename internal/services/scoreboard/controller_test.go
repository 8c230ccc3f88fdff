package scoreboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/vierbure/internal/dependencies/mocks"
	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/services/autosave"
	"github.com/mcoot/vierbure/internal/services/persistence"
	"github.com/mcoot/vierbure/internal/storage/memory"
	"github.com/mcoot/vierbure/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	gateway    *persistence.Gateway
	clock      *mocks.MockClock
	ids        *mocks.MockIDs
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.gateway = persistence.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDs()
	s.ctx = context.Background()
	s.controller = s.newController()
}

func (s *ControllerSuite) newController() *Controller {
	return NewController(s.ctx, s.gateway, s.clock, s.ids, autosave.DefaultConfig(), testutil.NopLogger())
}

// enterTops types one top score per player into a round
func (s *ControllerSuite) enterTops(round int, values ...string) {
	for i, v := range values {
		s.Require().NoError(s.controller.UpdateTopScore(v, round, i))
	}
}

func (s *ControllerSuite) requireCapacity() {
	for _, p := range s.controller.Players() {
		s.Require().Len(p.Scores, s.controller.Rounds(), "player %s", p.ID)
	}
}

// Boot tests

func (s *ControllerSuite) TestNewGameDefaults() {
	s.Equal(4, s.controller.PlayerCount())
	s.Equal(0, s.controller.Rounds())

	players := s.controller.Players()
	s.Equal("Spieler 1", players[0].Name)
	s.Equal("Spieler 4", players[3].Name)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
	s.Len(s.controller.PlayerNames(), model.MaxPlayers)
}

func (s *ControllerSuite) TestNewGameUsesSavedNames() {
	_ = s.storage.SavePlayerNames(s.ctx, []string{"Anna", "Ben", "Cleo", "Dora", "Emil", "Finn"})

	c := s.newController()
	players := c.Players()
	s.Equal("Anna", players[0].Name)
	s.Equal("Dora", players[3].Name)
}

func (s *ControllerSuite) TestRestoresSavedGame() {
	s.controller.SetPlayerCount(5)
	s.controller.AddRound()
	s.controller.AddRound()
	s.enterTops(0, "50", "50", "50", "7", "0")
	s.controller.UpdatePlayerName("Anna", 0)
	s.controller.Flush(s.ctx)

	restored := s.newController()
	s.Equal(5, restored.PlayerCount())
	s.Equal(2, restored.Rounds())
	s.Equal("Anna", restored.Players()[0].Name)
	s.Equal("Anna", restored.PlayerNames()[0])
	s.Equal("50", restored.TopScoreText(0, 0))
	s.Equal(s.controller.Players()[0].ID, restored.Players()[0].ID)
	s.True(restored.IsRoundValid(0))
}

func (s *ControllerSuite) TestRestoreReconcilesInconsistentRecord() {
	state := &model.GameState{
		Players: []model.Player{
			{ID: "a", Name: "A", Scores: []model.RoundScore{{Top: model.PointsTop(1)}}},
			{ID: "b", Name: "B"},
		},
		Rounds:            3,
		ActivePlayerCount: 1,
	}
	s.gateway.SaveGameState(s.ctx, state)

	c := s.newController()
	s.Equal(model.MinPlayers, c.PlayerCount())
	s.Equal(3, c.Rounds())
	for _, p := range c.Players() {
		s.Len(p.Scores, 3)
	}
	s.Equal("Spieler 3", c.Players()[2].Name)
}

func (s *ControllerSuite) TestRestoreRefillsEmptyRoster() {
	_ = s.storage.SavePlayerNames(s.ctx, []string{"Anna", "Ben", "Cleo", "Dora", "Emil", "Finn"})
	_ = s.storage.SaveGameState(s.ctx, []byte(`{"players":[],"rounds":2,"activePlayerCount":5,"lastModified":725803200}`))

	c := s.newController()
	s.Equal(5, c.PlayerCount())
	s.Equal(2, c.Rounds())
	s.Equal("Emil", c.Players()[4].Name)
	for _, p := range c.Players() {
		s.Len(p.Scores, 2)
	}
}

func (s *ControllerSuite) TestCorruptSavedGameStartsFresh() {
	_ = s.storage.SaveGameState(s.ctx, []byte("garbage"))

	c := s.newController()
	s.Equal(4, c.PlayerCount())
	s.Equal(0, c.Rounds())
}

// Roster tests

func (s *ControllerSuite) TestSetPlayerCountClamps() {
	s.controller.SetPlayerCount(2)
	s.Equal(3, s.controller.PlayerCount())

	s.controller.SetPlayerCount(9)
	s.Equal(6, s.controller.PlayerCount())
}

func (s *ControllerSuite) TestSetPlayerCountAddsPlayersWithRoundCapacity() {
	s.controller.AddRound()
	s.controller.AddRound()
	s.controller.SetPlayerCount(6)

	players := s.controller.Players()
	s.Len(players, 6)
	s.Equal("Spieler 5", players[4].Name)
	s.Len(players[5].Scores, 2)
	s.True(players[5].Scores[0].IsEmpty())
}

func (s *ControllerSuite) TestNamesSurvivePlayerCountChanges() {
	s.controller.SetPlayerCount(6)
	s.controller.UpdatePlayerName("Finn", 5)
	s.controller.SetPlayerCount(3)

	s.Equal("Finn", s.controller.PlayerNames()[5])

	s.controller.SetPlayerCount(6)
	s.Equal("Finn", s.controller.Players()[5].Name)
}

func (s *ControllerSuite) TestSetPlayerCountClearsSelection() {
	s.controller.AddRound()
	s.controller.SelectCell(0, 1)

	s.controller.SetPlayerCount(5)
	_, ok := s.controller.SelectedCell()
	s.False(ok)

	s.controller.SelectCell(0, 4)
	s.controller.SetPlayerCount(3)
	_, ok = s.controller.SelectedCell()
	s.False(ok)
}

func (s *ControllerSuite) TestCapacityInvariantAcrossOperations() {
	steps := []func(){
		s.controller.AddRound,
		func() { s.controller.SetPlayerCount(6) },
		s.controller.AddRound,
		s.controller.AddRound,
		func() { s.controller.SetPlayerCount(3) },
		s.controller.RemoveLastRound,
		func() { s.controller.SetPlayerCount(5) },
		s.controller.RemoveLastRound,
		s.controller.RemoveLastRound,
		s.controller.RemoveLastRound,
		func() { s.controller.SetPlayerCount(4) },
		s.controller.AddRound,
	}

	for _, step := range steps {
		step()
		s.requireCapacity()
	}
	s.Equal(1, s.controller.Rounds())
}

// Round tests

func (s *ControllerSuite) TestRemoveLastRoundAtZeroIsNoop() {
	s.controller.RemoveLastRound()
	s.Equal(0, s.controller.Rounds())
	s.False(s.controller.saver.Pending())
}

func (s *ControllerSuite) TestRemoveLastRoundDropsScores() {
	s.controller.AddRound()
	s.controller.AddRound()
	s.enterTops(1, "10")

	s.controller.RemoveLastRound()
	s.controller.AddRound()

	s.Equal("0", s.controller.TopScoreText(1, 0))
	s.True(s.controller.Players()[0].Scores[1].IsEmpty())
}

func (s *ControllerSuite) TestExactlyOneEditableRound() {
	for r := -1; r <= 1; r++ {
		s.False(s.controller.IsRoundEditable(r))
	}

	for rounds := 1; rounds <= 4; rounds++ {
		s.controller.AddRound()
		editable := 0
		for r := 0; r < rounds; r++ {
			if s.controller.IsRoundEditable(r) {
				editable++
				s.Equal(rounds-1, r)
			}
		}
		s.Equal(1, editable)
	}
}

func (s *ControllerSuite) TestValidationScenario() {
	s.controller.AddRound()
	s.enterTops(0, "50", "50", "50", "7")
	s.True(s.controller.IsRoundEditable(0))

	s.controller.AddRound()
	s.False(s.controller.IsRoundEditable(0))
	s.True(s.controller.IsRoundValid(0))
	s.True(s.controller.IsRoundConfirmed(0))

	s.enterTops(1, "50", "50", "50", "0")
	s.True(s.controller.IsRoundValid(1), "editable round is not judged")

	s.controller.AddRound()
	s.False(s.controller.IsRoundValid(1))
	s.Equal(150, s.controller.RoundTopSum(1))
	s.Equal(model.RoundStatusInvalid, s.controller.RoundStatus(1))
	s.Equal("Runde 2: Fehler - Summe oben ist nicht 157", s.controller.StatusMessage(1))
	s.Equal(model.RoundStatusConfirmed, s.controller.RoundStatus(0))
	s.Equal(model.RoundStatusOpen, s.controller.RoundStatus(2))
	s.Empty(s.controller.StatusMessage(0))
}

func (s *ControllerSuite) TestFrozenRoundWithoutEntriesIsInvalid() {
	s.controller.AddRound()
	s.controller.AddRound()
	s.False(s.controller.IsRoundValid(0))
}

func (s *ControllerSuite) TestResetGame() {
	s.controller.UpdatePlayerName("Anna", 0)
	s.controller.AddRound()
	s.enterTops(0, "157")
	s.controller.SelectCell(0, 0)
	s.controller.Flush(s.ctx)

	s.controller.ResetGame(s.ctx)

	s.Equal(0, s.controller.Rounds())
	s.requireCapacity()
	_, ok := s.controller.SelectedCell()
	s.False(ok)
	s.Equal("Anna", s.controller.Players()[0].Name)
	s.Equal([]int{0, 0, 0, 0}, s.controller.PlayerTotals())

	// Saved game was discarded; the next save records the empty game
	_, err := s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)

	s.clock.Advance(time.Second)
	restored := s.newController()
	s.Equal(0, restored.Rounds())
	s.Equal("Anna", restored.Players()[0].Name)
}

// Name tests

func (s *ControllerSuite) TestUpdatePlayerNameTruncates() {
	s.controller.UpdatePlayerName("Maximiliane", 1)
	s.Equal("Maximilian", s.controller.Players()[1].Name)
	s.Equal("Maximilian", s.controller.PlayerNames()[1])
}

func (s *ControllerSuite) TestUpdatePlayerNameInactiveSlot() {
	s.controller.UpdatePlayerName("Emil", 4)

	s.Equal("Emil", s.controller.PlayerNames()[4])
	s.Equal(4, s.controller.PlayerCount())
}

func (s *ControllerSuite) TestUpdatePlayerNameGrowsRoster() {
	s.controller.UpdatePlayerName("Extra", 7)

	names := s.controller.PlayerNames()
	s.Len(names, 8)
	s.Equal("Spieler 7", names[6])
	s.Equal("Extra", names[7])
}

func (s *ControllerSuite) TestEmptyNamesAllowedUntilDefaultsApplied() {
	s.controller.UpdatePlayerName("   ", 0)
	s.controller.UpdatePlayerName("", 5)
	s.Equal("   ", s.controller.Players()[0].Name)

	s.controller.ApplyDefaultNames()

	s.Equal("Spieler 1", s.controller.Players()[0].Name)
	s.Equal("Spieler 6", s.controller.PlayerNames()[5])
}

// Score tests

func (s *ControllerSuite) TestUpdateTopScoreClamps() {
	s.controller.AddRound()
	s.enterTops(0, "1500", "-2000", "007", "")

	s.Equal("999", s.controller.TopScoreText(0, 0))
	s.Equal("-999", s.controller.TopScoreText(0, 1))
	s.Equal("7", s.controller.TopScoreText(0, 2))
	s.True(s.controller.Players()[3].Scores[0].HasTop())
}

func (s *ControllerSuite) TestUpdateTopScoreInvalidInputKeepsValue() {
	s.controller.AddRound()
	s.enterTops(0, "42")

	err := s.controller.UpdateTopScore("abc", 0, 0)
	s.ErrorIs(err, model.ErrInvalidScoreValue)
	s.Equal("42", s.controller.TopScoreText(0, 0))
}

func (s *ControllerSuite) TestUpdateTopScoreOutOfBoundsIsIgnored() {
	s.controller.AddRound()

	s.NoError(s.controller.UpdateTopScore("5", 1, 0))
	s.NoError(s.controller.UpdateTopScore("5", 0, 4))
	s.NoError(s.controller.UpdateTopScore("5", -1, 0))
	s.Equal([]int{0, 0, 0, 0}, s.controller.PlayerTotals())
}

func (s *ControllerSuite) TestBottomScoreAdjustments() {
	s.controller.AddRound()
	s.controller.SelectCell(0, 2)

	s.controller.AdjustBottomScore(50)
	s.controller.AdjustBottomScore(-20)
	s.Equal(30, *s.controller.BottomScore(0, 2))

	s.controller.ClearBottomScore()
	s.Nil(s.controller.BottomScore(0, 2))
}

func (s *ControllerSuite) TestBottomScoreWithoutSelectionIsNoop() {
	s.controller.AddRound()

	s.controller.AdjustBottomScore(20)
	s.controller.ClearBottomScore()
	s.controller.FillTopScoreToTotal()
	s.controller.SetTopScoreToMatch()

	s.Equal([]int{0, 0, 0, 0}, s.controller.PlayerTotals())
	_, ok := s.controller.SelectedCell()
	s.False(ok)
}

func (s *ControllerSuite) TestStaleSelectionIsNoop() {
	s.controller.SetPlayerCount(6)
	s.controller.AddRound()
	s.controller.SelectCell(0, 5)
	s.controller.SetPlayerCount(3)

	// Selection was cleared; reselect a cell that no longer exists
	s.controller.SelectCell(0, 5)
	s.NotPanics(func() {
		s.controller.AdjustBottomScore(20)
		s.controller.ClearBottomScore()
		s.controller.FillTopScoreToTotal()
		s.controller.SetTopScoreToMatch()
	})
	s.Equal([]int{0, 0, 0}, s.controller.PlayerTotals())
}

func (s *ControllerSuite) TestFillTopScoreToTotal() {
	s.controller.AddRound()
	s.enterTops(0, "50", "40", "30")
	s.controller.SelectCell(0, 3)

	s.controller.FillTopScoreToTotal()
	s.Equal("37", s.controller.TopScoreText(0, 3))

	s.controller.FillTopScoreToTotal()
	s.Equal("37", s.controller.TopScoreText(0, 3))
}

func (s *ControllerSuite) TestFillTopScoreToTotalIgnoresOwnValueAndFloorsAtZero() {
	s.controller.AddRound()
	s.enterTops(0, "999", "100", "100", "100")
	s.controller.SelectCell(0, 0)

	s.controller.FillTopScoreToTotal()
	s.Equal("0", s.controller.TopScoreText(0, 0))
}

func (s *ControllerSuite) TestMatchMakesFrozenRoundValid() {
	s.controller.AddRound()
	s.enterTops(0, "12", "34", "56", "78")
	s.controller.SelectCell(0, 1)
	s.controller.SetTopScoreToMatch()

	s.Equal("-257", s.controller.TopScoreText(0, 1))
	s.True(s.controller.RoundHasMatch(0))

	s.controller.AddRound()
	s.True(s.controller.IsRoundValid(0))
}

func (s *ControllerSuite) TestPlayerTotals() {
	s.controller.AddRound()
	s.enterTops(0, "100", "57")
	s.controller.SelectCell(0, 0)
	s.controller.AdjustBottomScore(50)
	s.controller.AddRound()
	s.enterTops(1, "10", "", "147")

	s.Equal([]int{160, 57, 147, 0}, s.controller.PlayerTotals())
}

func (s *ControllerSuite) TestPlayerStandings() {
	s.Equal(make([]Standing, 4), s.controller.PlayerStandings())

	s.controller.AddRound()
	s.enterTops(0, "40", "60", "57", "0")
	s.Equal([]Standing{
		{},
		{Trailing: true},
		{},
		{Leading: true},
	}, s.controller.PlayerStandings())

	s.controller.SelectCell(0, 3)
	s.controller.AdjustBottomScore(40)
	s.Equal([]Standing{
		{Leading: true},
		{Trailing: true},
		{},
		{Leading: true},
	}, s.controller.PlayerStandings())
}

func (s *ControllerSuite) TestPlayerStandingsAllEqual() {
	s.controller.AddRound()
	s.enterTops(0, "20", "20", "20", "20")

	for _, st := range s.controller.PlayerStandings() {
		s.True(st.Leading)
		s.True(st.Trailing)
	}
}

func (s *ControllerSuite) TestPlayersReturnsCopy() {
	s.controller.AddRound()
	players := s.controller.Players()
	players[0].Name = "Changed"
	players[0].Scores[0].Top = model.PointsTop(99)

	s.Equal("Spieler 1", s.controller.Players()[0].Name)
	s.Equal("0", s.controller.TopScoreText(0, 0))
}

// Auto-save tests

func (s *ControllerSuite) TestAutoSaveAfterQuietPeriod() {
	s.controller.AddRound()
	s.enterTops(0, "100")

	_, err := s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)

	s.clock.Advance(500 * time.Millisecond)

	loaded := s.gateway.LoadGameState(s.ctx)
	s.Require().NotNil(loaded)
	s.Equal(1, loaded.Rounds)
	s.Equal(100, loaded.Players[0].Scores[0].Top.Value())
	s.Equal(4, loaded.ActivePlayerCount)
}

func (s *ControllerSuite) TestAutoSavePersistsLatestState() {
	s.controller.AddRound()
	s.clock.Advance(200 * time.Millisecond)
	s.controller.AddRound()
	s.clock.Advance(200 * time.Millisecond)
	s.controller.AddRound()
	s.clock.Advance(500 * time.Millisecond)

	loaded := s.gateway.LoadGameState(s.ctx)
	s.Require().NotNil(loaded)
	s.Equal(3, loaded.Rounds)
}

func (s *ControllerSuite) TestSelectionDoesNotTriggerSave() {
	s.controller.SelectCell(0, 0)
	s.controller.ClearSelection()
	s.False(s.controller.saver.Pending())
}

func (s *ControllerSuite) TestCloseFlushesAndStops() {
	s.controller.AddRound()
	s.controller.Close(s.ctx)

	s.NotNil(s.gateway.LoadGameState(s.ctx))

	s.controller.AddRound()
	s.clock.Advance(time.Second)
	s.Equal(1, s.gateway.LoadGameState(s.ctx).Rounds)
}
