package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/vierbure/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player name tests

func (s *StorageSuite) TestGetPlayerNamesEmpty() {
	names, err := s.storage.GetPlayerNames(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *StorageSuite) TestSaveAndGetPlayerNames() {
	err := s.storage.SavePlayerNames(s.ctx, []string{"Anna", "Ben", "Cleo"})
	s.Require().NoError(err)

	names, err := s.storage.GetPlayerNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Anna", "Ben", "Cleo"}, names)
}

func (s *StorageSuite) TestSavedNamesAreCopied() {
	input := []string{"Anna"}
	_ = s.storage.SavePlayerNames(s.ctx, input)
	input[0] = "Changed"

	names, _ := s.storage.GetPlayerNames(s.ctx)
	s.Equal([]string{"Anna"}, names)
}

// Game state tests

func (s *StorageSuite) TestGetGameStateNotFound() {
	_, err := s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)
}

func (s *StorageSuite) TestSaveAndGetGameState() {
	err := s.storage.SaveGameState(s.ctx, []byte(`{"rounds":1}`))
	s.Require().NoError(err)

	data, err := s.storage.GetGameState(s.ctx)
	s.Require().NoError(err)
	s.JSONEq(`{"rounds":1}`, string(data))
}

func (s *StorageSuite) TestDeleteGameStateKeepsNames() {
	_ = s.storage.SavePlayerNames(s.ctx, []string{"Anna"})
	_ = s.storage.SaveGameState(s.ctx, []byte(`{}`))

	err := s.storage.DeleteGameState(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)

	names, _ := s.storage.GetPlayerNames(s.ctx)
	s.Equal([]string{"Anna"}, names)
}
