package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
	"github.com/rocketscienceinc/connect4-bot/testing/suite"
)

func newSnapshot(id uuid.UUID, state entity.GameState) *entity.Game {
	game := &entity.Game{
		ID:             id,
		CurrentState:   state,
		RedPlayerID:    uuid.New(),
		YellowPlayerID: uuid.New(),
	}
	game.Cells[2][0] = entity.Red
	game.Cells[4][0] = entity.Yellow

	return game
}

func TestGameRepository_Append(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a snapshot of a running game
	game := newSnapshot(uuid.New(), entity.RedToPlay)

	// When: Append is called
	err := gameRepo.Append(ctx, game)

	// Then: no error should be returned, and the snapshot is the latest one
	require.NoError(t, err)

	latest, err := gameRepo.GetLatest(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game, latest)
}

func TestGameRepository_GetLatest(t *testing.T) {
	t.Run("GetLatest_ReturnsLastAppended", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: two snapshots of the same game
		id := uuid.New()
		first := newSnapshot(id, entity.RedToPlay)
		second := newSnapshot(id, entity.RedWon)

		require.NoError(t, gameRepo.Append(ctx, first))
		require.NoError(t, gameRepo.Append(ctx, second))

		// When: GetLatest is called
		latest, err := gameRepo.GetLatest(ctx, id)

		// Then: the second snapshot is returned
		require.NoError(t, err)
		assert.Equal(t, entity.RedWon, latest.CurrentState)
	})

	t.Run("GetLatest_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetLatest is called with an unknown id
		latest, err := gameRepo.GetLatest(ctx, uuid.New())

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, latest)
	})
}

func TestGameRepository_List(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: three snapshots appended in order
	id := uuid.New()
	states := []entity.GameState{entity.GameNotStarted, entity.RedToPlay, entity.YellowToPlay}
	for _, state := range states {
		require.NoError(t, gameRepo.Append(ctx, newSnapshot(id, state)))
	}

	// When: List is called
	games, err := gameRepo.List(ctx, id)

	// Then: the snapshots come back in the order they were observed
	require.NoError(t, err)
	require.Len(t, games, len(states))
	for i, game := range games {
		assert.Equal(t, states[i], game.CurrentState)
		assert.Equal(t, entity.Red, game.Cells[2][0])
	}

	// And: an unknown game has no snapshots
	empty, err := gameRepo.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a journaled game
		game := newSnapshot(uuid.New(), entity.Draw)
		require.NoError(t, gameRepo.Append(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetLatest(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, uuid.New())

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
