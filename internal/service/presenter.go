package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

var cellSymbols = map[entity.CellContent]byte{
	entity.Empty:  '.',
	entity.Red:    'R',
	entity.Yellow: 'Y',
}

type Presenter interface {
	Display(game *entity.Game, playerID uuid.UUID) error
	Printf(format string, args ...any) error
}

type consolePresenter struct {
	out io.Writer
}

// NewPresenter - renders games as plain text into out.
func NewPresenter(out io.Writer) Presenter {
	return &consolePresenter{out: out}
}

func (that *consolePresenter) Display(game *entity.Game, playerID uuid.UUID) error {
	var sb strings.Builder

	switch game.ColorOf(playerID) {
	case entity.ColorRed:
		sb.WriteString("You are Red\n")
	case entity.ColorYellow:
		sb.WriteString("You are Yellow\n")
	default:
		sb.WriteString("You are not seated in this game\n")
	}

	sb.WriteString(game.CurrentState.String())
	sb.WriteByte('\n')

	if game.IsStarted() {
		for _, line := range RenderBoard(game) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to display game: %w", err)
	}

	return nil
}

func (that *consolePresenter) Printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to print: %w", err)
	}

	return nil
}

// RenderBoard - returns the board top row first, one line per row.
func RenderBoard(game *entity.Game) []string {
	lines := make([]string, 0, entity.NumberOfRows)

	for y := entity.NumberOfRows - 1; y >= 0; y-- {
		line := make([]byte, entity.NumberOfColumns)
		for x := 0; x < entity.NumberOfColumns; x++ {
			symbol, ok := cellSymbols[game.Cells[x][y]]
			if !ok {
				symbol = '?'
			}
			line[x] = symbol
		}
		lines = append(lines, string(line))
	}

	return lines
}
