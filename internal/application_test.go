package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect4-bot/internal/config"
	"github.com/rocketscienceinc/connect4-bot/internal/entity"
	"github.com/rocketscienceinc/connect4-bot/testing/fakeservice"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Plays a game to its end", func(t *testing.T) {
		// Given: a service where the game is already drawn
		svc := fakeservice.New(t)
		playerID := uuid.New()
		svc.SetPlayerID(playerID)
		svc.Script(fakeservice.Poll{Game: &entity.Game{
			ID:           uuid.New(),
			CurrentState: entity.Draw,
			RedPlayerID:  playerID,
		}})

		conf := &config.Config{
			BaseAddress:      svc.BaseAddress(),
			TeamName:         "John&James",
			Password:         "qwelkjdflgkj",
			MaxFetchFailures: 1,
		}

		// When: running the application
		err := RunApp(logger, conf)

		// Then: it finishes cleanly after one poll
		require.NoError(t, err)
		assert.Equal(t, 1, svc.PollCount())
	})

	t.Run("Requires a base address", func(t *testing.T) {
		err := RunApp(logger, &config.Config{})

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
