package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

var (
	redID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	yellowID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func sampleGame(state entity.GameState) *entity.Game {
	game := &entity.Game{
		ID:             uuid.New(),
		CurrentState:   state,
		RedPlayerID:    redID,
		YellowPlayerID: yellowID,
	}
	game.Cells[0][0] = entity.Red
	game.Cells[0][1] = entity.Yellow
	game.Cells[3][0] = entity.Yellow
	game.Cells[6][5] = entity.Red

	return game
}

func TestRenderBoard(t *testing.T) {
	// Given: a game with pieces at the bottom and the top right corner
	game := sampleGame(entity.RedToPlay)

	// When: rendering it
	lines := RenderBoard(game)

	// Then: the top row is printed first and the bottom row last
	require.Len(t, lines, entity.NumberOfRows)
	assert.Equal(t, "......R", lines[0])
	assert.Equal(t, "Y......", lines[entity.NumberOfRows-2])
	assert.Equal(t, "R..Y...", lines[entity.NumberOfRows-1])

	for _, line := range lines {
		assert.Len(t, line, entity.NumberOfColumns)
		assert.Empty(t, strings.Trim(line, ".RY"))
	}
}

func TestPresenter_Display(t *testing.T) {
	t.Run("Shows color, state and board for a running game", func(t *testing.T) {
		// Given: a presenter writing into a buffer
		var out bytes.Buffer
		presenter := NewPresenter(&out)

		// When: displaying the game for the red player
		err := presenter.Display(sampleGame(entity.YellowToPlay), redID)

		// Then: the output holds the color, the state name and the board
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"You are Red",
			"Yellow To Play",
			"......R",
			".......",
			".......",
			".......",
			"Y......",
			"R..Y...",
			"",
		}, "\n"), out.String())
	})

	t.Run("Names the yellow seat", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewPresenter(&out).Display(sampleGame(entity.Draw), yellowID))

		assert.True(t, strings.HasPrefix(out.String(), "You are Yellow\nDraw!!!\n"))
	})

	t.Run("Does not guess a color for an unseated player", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewPresenter(&out).Display(sampleGame(entity.RedWon), uuid.New()))

		assert.True(t, strings.HasPrefix(out.String(), "You are not seated in this game\nRed Won\n"))
	})

	t.Run("Omits the board before the game starts", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewPresenter(&out).Display(sampleGame(entity.GameNotStarted), redID))

		assert.Equal(t, "You are Red\nGame Not Started\n", out.String())
	})
}

func TestPresenter_Printf(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewPresenter(&out).Printf("Our move is column %d\n", 4))

	assert.Equal(t, "Our move is column 4\n", out.String())
}
