// Package scoreboard implements the round-scoring state machine. A Controller
// owns the roster, the round counter, the cell selection and the name roster;
// every mutation goes through one of its methods.
//
// Editability and validity are never stored. They are recomputed from the
// round counter and the scores on every call.
//
// A Controller is not safe for concurrent use. Auto-saves run on the
// debouncer's timer and only ever see deep-copied snapshots.
package scoreboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/vierbure/internal/dependencies/clock"
	"github.com/mcoot/vierbure/internal/dependencies/ids"
	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/services/autosave"
	"github.com/mcoot/vierbure/internal/services/validation"
)

// Controller manages scoreboard state
type Controller struct {
	gateway Gateway
	saver   *autosave.Debouncer[Snapshot]
	clock   clock.Clock
	ids     ids.Generator
	logger  *slog.Logger

	players  []model.Player
	rounds   int
	selected *model.Cell
	names    model.NameRoster
}

// NewController creates a Controller and restores the saved game, if any.
// Without a saved game it starts a fresh DefaultPlayerCount-player game with
// no rounds, named from the saved name roster.
func NewController(
	ctx context.Context,
	gateway Gateway,
	clock clock.Clock,
	ids ids.Generator,
	saveCfg autosave.Config,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		gateway: gateway,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
	c.saver = autosave.New(clock, saveCfg, c.save, logger)

	c.names = model.NameRoster(gateway.LoadPlayerNames(ctx)).Normalize()

	if state := gateway.LoadGameState(ctx); state != nil {
		c.restore(state)
	} else {
		c.initializeNewGame(model.DefaultPlayerCount)
	}

	return c
}

func (c *Controller) restore(state *model.GameState) {
	restored := state.Clone()
	c.players = restored.Players
	c.rounds = max(0, restored.Rounds)
	c.setPlayerCount(restored.ActivePlayerCount)
	c.ensureScoreCapacity()

	c.logger.Info("game restored",
		slog.Int("rounds", c.rounds),
		slog.Int("player_count", len(c.players)),
	)
}

func (c *Controller) initializeNewGame(count int) {
	count = validation.ValidatePlayerCount(count)
	c.players = make([]model.Player, 0, count)
	for i := 0; i < count; i++ {
		c.players = append(c.players, c.newPlayer(i))
	}
	c.rounds = 0
	c.ensureScoreCapacity()

	c.logger.Info("new game initialized", slog.Int("player_count", count))
}

func (c *Controller) newPlayer(index int) model.Player {
	p := model.NewPlayer(model.PlayerID(c.ids.NewID()), c.names.At(index))
	p.EnsureScoreCapacity(c.rounds)
	return p
}

func (c *Controller) ensureScoreCapacity() {
	for i := range c.players {
		c.players[i].EnsureScoreCapacity(c.rounds)
	}
}

// Roster and rounds

// SetPlayerCount clamps n to [MinPlayers, MaxPlayers] and adds or removes
// players at the end of the roster. Added players take their names from the
// name roster. The selection is always cleared.
func (c *Controller) SetPlayerCount(n int) {
	before := len(c.players)
	c.setPlayerCount(n)
	if len(c.players) != before {
		c.logger.Info("player count changed",
			slog.Int("from", before),
			slog.Int("to", len(c.players)),
		)
		c.changed()
	}
}

func (c *Controller) setPlayerCount(n int) {
	count := validation.ValidatePlayerCount(n)

	switch {
	case count > len(c.players):
		for i := len(c.players); i < count; i++ {
			c.players = append(c.players, c.newPlayer(i))
		}
	case count < len(c.players):
		c.players = c.players[:count]
	}

	c.selected = nil
}

// AddRound appends an empty round for every player
func (c *Controller) AddRound() {
	c.rounds++
	c.ensureScoreCapacity()
	c.logger.Debug("round added", slog.Int("rounds", c.rounds))
	c.changed()
}

// RemoveLastRound drops the most recent round. It does nothing when there are no rounds.
func (c *Controller) RemoveLastRound() {
	if c.rounds == 0 {
		return
	}
	c.rounds--
	c.ensureScoreCapacity()
	c.logger.Debug("round removed", slog.Int("rounds", c.rounds))
	c.changed()
}

// ResetGame removes all rounds and scores and discards the saved game.
// Player names are kept.
func (c *Controller) ResetGame(ctx context.Context) {
	c.rounds = 0
	for i := range c.players {
		c.players[i].Scores = []model.RoundScore{}
	}
	c.selected = nil
	c.gateway.ClearGameData(ctx)

	c.logger.Info("game reset", slog.Int("player_count", len(c.players)))
	c.changed()
}

// Names

// UpdatePlayerName stores name (cut to MaxNameLength) in roster slot index,
// growing the roster with default names if needed, and renames the active
// player at that index. Empty names are allowed until ApplyDefaultNames.
func (c *Controller) UpdatePlayerName(name string, index int) {
	if index < 0 {
		return
	}
	finalName := validation.TruncateName(name)

	c.names = c.names.Grow(index + 1)
	c.names[index] = finalName

	if index < len(c.players) {
		c.players[index].Name = finalName
	}
	c.changed()
}

// ApplyDefaultNames replaces every blank roster name with its default
func (c *Controller) ApplyDefaultNames() {
	for i := 0; i < model.MaxPlayers && i < len(c.names); i++ {
		if validation.ValidatePlayerName(c.names[i]) == "" {
			c.UpdatePlayerName(model.DefaultPlayerName(i), i)
		}
	}
}

// Scores

// UpdateTopScore validates input and stores it as the top score of a cell.
// Invalid input leaves the cell unchanged and is returned as a diagnostic;
// out-of-range cells are ignored.
func (c *Controller) UpdateTopScore(input string, round, playerIndex int) error {
	value, err := validation.ValidateTopScore(input)
	if err != nil {
		c.logger.Debug("top score rejected",
			slog.String("input", input),
			slog.String("error", err.Error()),
		)
		return err
	}

	score := c.scoreAt(round, playerIndex)
	if score == nil {
		return nil
	}
	score.Top = model.PointsTop(value)
	c.changed()
	return nil
}

// SelectCell targets a cell for the bottom-score and quick-fill operations
func (c *Controller) SelectCell(round, playerIndex int) {
	c.selected = &model.Cell{Round: round, PlayerIndex: playerIndex}
}

// ClearSelection deselects the current cell
func (c *Controller) ClearSelection() {
	c.selected = nil
}

// AdjustBottomScore adds delta to the selected cell's bottom score
func (c *Controller) AdjustBottomScore(delta int) {
	score := c.selectedScore()
	if score == nil {
		return
	}
	v := score.BottomValue() + delta
	score.Bottom = &v
	c.changed()
}

// ClearBottomScore unsets the selected cell's bottom score
func (c *Controller) ClearBottomScore() {
	score := c.selectedScore()
	if score == nil {
		return
	}
	score.Bottom = nil
	c.changed()
}

// FillTopScoreToTotal sets the selected cell's top score to whatever the
// other players leave of TotalPointsPerRound, never below 0. The cell's own
// previous value is ignored, so repeating it changes nothing.
func (c *Controller) FillTopScoreToTotal() {
	score := c.selectedScore()
	if score == nil {
		return
	}

	sel := *c.selected
	others := 0
	for i := range c.players {
		if i == sel.PlayerIndex {
			continue
		}
		if s, ok := c.players[i].ScoreFor(sel.Round); ok {
			others += s.Top.Value()
		}
	}

	score.Top = model.PointsTop(max(0, model.TotalPointsPerRound-others))
	c.changed()
}

// SetTopScoreToMatch records a Match in the selected cell
func (c *Controller) SetTopScoreToMatch() {
	score := c.selectedScore()
	if score == nil {
		return
	}
	score.Top = model.MatchTop
	c.changed()
}

func (c *Controller) selectedScore() *model.RoundScore {
	if c.selected == nil {
		return nil
	}
	return c.scoreAt(c.selected.Round, c.selected.PlayerIndex)
}

// scoreAt returns a pointer into the player's scores, or nil if out of range
func (c *Controller) scoreAt(round, playerIndex int) *model.RoundScore {
	if playerIndex < 0 || playerIndex >= len(c.players) {
		return nil
	}
	scores := c.players[playerIndex].Scores
	if round < 0 || round >= len(scores) {
		return nil
	}
	return &scores[round]
}

// Derived state

// IsRoundEditable returns true only for the most recent round
func (c *Controller) IsRoundEditable(round int) bool {
	return round >= 0 && round == c.rounds-1
}

// IsRoundValid judges rounds before the editable one: a Match makes the round
// valid, otherwise the top scores must sum to TotalPointsPerRound. The editable
// round, later rounds and negative rounds are not judged and report true.
func (c *Controller) IsRoundValid(round int) bool {
	if round < 0 || round >= c.rounds-1 {
		return true
	}
	return validation.IsValidRoundSum(c.roundTops(round), true)
}

// IsRoundConfirmed returns true for frozen rounds that passed validation
func (c *Controller) IsRoundConfirmed(round int) bool {
	return round >= 0 && round < c.rounds-1 && c.IsRoundValid(round)
}

// RoundStatus classifies a round for display
func (c *Controller) RoundStatus(round int) model.RoundStatus {
	switch {
	case round < 0 || round >= c.rounds-1:
		return model.RoundStatusOpen
	case c.IsRoundValid(round):
		return model.RoundStatusConfirmed
	default:
		return model.RoundStatusInvalid
	}
}

// StatusMessage describes an invalid round, or returns "" for any other round
func (c *Controller) StatusMessage(round int) string {
	if c.RoundStatus(round) != model.RoundStatusInvalid {
		return ""
	}
	return fmt.Sprintf("Runde %d: Fehler - Summe oben ist nicht %d", round+1, model.TotalPointsPerRound)
}

// RoundTopSum adds the top scores of a round across all players
func (c *Controller) RoundTopSum(round int) int {
	return validation.SumTops(c.roundTops(round))
}

// RoundHasMatch returns true if any player recorded a Match in the round
func (c *Controller) RoundHasMatch(round int) bool {
	for _, t := range c.roundTops(round) {
		if t.IsMatch() {
			return true
		}
	}
	return false
}

func (c *Controller) roundTops(round int) []model.TopScore {
	tops := make([]model.TopScore, 0, len(c.players))
	for i := range c.players {
		if s, ok := c.players[i].ScoreFor(round); ok {
			tops = append(tops, s.Top)
		}
	}
	return tops
}

// PlayerTotals returns each player's total over all rounds, in roster order
func (c *Controller) PlayerTotals() []int {
	totals := make([]int, len(c.players))
	for i := range c.players {
		totals[i] = c.players[i].TotalScore()
	}
	return totals
}

// Standing marks the lowest total as leading and the highest as trailing
type Standing struct {
	Leading  bool
	Trailing bool
}

// PlayerStandings ranks the totals from PlayerTotals. Ties share a mark, and
// nobody is marked while every total is 0.
func (c *Controller) PlayerStandings() []Standing {
	totals := c.PlayerTotals()
	standings := make([]Standing, len(totals))
	if len(totals) == 0 {
		return standings
	}

	lowest, highest := totals[0], totals[0]
	allZero := true
	for _, t := range totals {
		lowest = min(lowest, t)
		highest = max(highest, t)
		allZero = allZero && t == 0
	}
	if allZero {
		return standings
	}

	for i, t := range totals {
		standings[i] = Standing{Leading: t == lowest, Trailing: t == highest}
	}
	return standings
}

// TopScoreText returns the display text of a top score; "0" when unset or out of range
func (c *Controller) TopScoreText(round, playerIndex int) string {
	score := c.scoreAt(round, playerIndex)
	if score == nil {
		return "0"
	}
	return score.Top.String()
}

// BottomScore returns a copy of a cell's bottom score, or nil if unset or out of range
func (c *Controller) BottomScore(round, playerIndex int) *int {
	score := c.scoreAt(round, playerIndex)
	if score == nil || score.Bottom == nil {
		return nil
	}
	v := *score.Bottom
	return &v
}

// Players returns a deep copy of the active roster
func (c *Controller) Players() []model.Player {
	out := make([]model.Player, len(c.players))
	for i, p := range c.players {
		out[i] = p.Clone()
	}
	return out
}

// PlayerCount returns the number of active players
func (c *Controller) PlayerCount() int {
	return len(c.players)
}

// Rounds returns the number of rounds created
func (c *Controller) Rounds() int {
	return c.rounds
}

// SelectedCell returns the selected cell, if any
func (c *Controller) SelectedCell() (model.Cell, bool) {
	if c.selected == nil {
		return model.Cell{}, false
	}
	return *c.selected, true
}

// PlayerNames returns a copy of the name roster
func (c *Controller) PlayerNames() []string {
	return c.names.Clone()
}

// Persistence

// Flush saves any pending change immediately
func (c *Controller) Flush(ctx context.Context) {
	c.saver.Flush(ctx)
}

// Close flushes pending changes and stops auto-saving
func (c *Controller) Close(ctx context.Context) {
	c.saver.Flush(ctx)
	c.saver.Stop()
}

// changed schedules a debounced save of the current state
func (c *Controller) changed() {
	c.saver.Schedule(c.snapshot())
}

func (c *Controller) snapshot() Snapshot {
	state := model.GameState{
		Players:           c.players,
		Rounds:            c.rounds,
		ActivePlayerCount: len(c.players),
		LastModified:      c.clock.Now(),
	}
	return Snapshot{
		State: state.Clone(),
		Names: c.names.Clone(),
	}
}

func (c *Controller) save(ctx context.Context, snap Snapshot) {
	c.gateway.SaveGameState(ctx, &snap.State)
	c.gateway.SavePlayerNames(ctx, snap.Names)
}
