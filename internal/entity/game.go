package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect4-bot/internal/apperror"
)

const (
	NumberOfColumns = 7
	NumberOfRows    = 6
)

type CellContent int

const (
	Empty CellContent = iota
	Red
	Yellow
)

func (that CellContent) IsValid() bool {
	return that >= Empty && that <= Yellow
}

type GameState int

const (
	GameNotStarted GameState = iota
	RedWon
	YellowWon
	RedToPlay
	YellowToPlay
	Draw
)

var stateNames = map[GameState]string{
	GameNotStarted: "Game Not Started",
	RedWon:         "Red Won",
	YellowWon:      "Yellow Won",
	RedToPlay:      "Red To Play",
	YellowToPlay:   "Yellow To Play",
	Draw:           "Draw!!!",
}

func (that GameState) String() string {
	if name, ok := stateNames[that]; ok {
		return name
	}

	return fmt.Sprintf("Unknown State (%d)", int(that))
}

func (that GameState) IsValid() bool {
	_, ok := stateNames[that]
	return ok
}

// Game is a snapshot of one match as reported by the game service.
// Cells are indexed [column][row], row 0 being the bottom of the board.
type Game struct {
	ID             uuid.UUID
	Cells          [NumberOfColumns][NumberOfRows]CellContent
	CurrentState   GameState
	RedPlayerID    uuid.UUID
	YellowPlayerID uuid.UUID
}

// ColorOf - reports which color the given player holds in this game.
func (that *Game) ColorOf(playerID uuid.UUID) Color {
	switch playerID {
	case that.RedPlayerID:
		return ColorRed
	case that.YellowPlayerID:
		return ColorYellow
	default:
		return ColorUnknown
	}
}

// IsOurTurn - reports whether the given player must move now.
func (that *Game) IsOurTurn(playerID uuid.UUID) bool {
	return (that.RedPlayerID == playerID && that.CurrentState == RedToPlay) ||
		(that.YellowPlayerID == playerID && that.CurrentState == YellowToPlay)
}

func (that *Game) IsFinished() bool {
	switch that.CurrentState {
	case RedWon, YellowWon, Draw:
		return true
	default:
		return false
	}
}

func (that *Game) IsStarted() bool {
	return that.CurrentState != GameNotStarted
}

func (that *Game) Validate() error {
	if !that.CurrentState.IsValid() {
		return fmt.Errorf("%w: unknown state %d", apperror.ErrMalformedGame, int(that.CurrentState))
	}

	for x, column := range that.Cells {
		for y, cell := range column {
			if !cell.IsValid() {
				return fmt.Errorf("%w: unknown cell content %d at [%d,%d]", apperror.ErrMalformedGame, int(cell), x, y)
			}
		}
	}

	return nil
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < NumberOfColumns
}
