package service

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/connect4-bot/internal/entity"
)

type MoveSelector interface {
	NextMove(game *entity.Game) int
}

// randomSelector - picks any column with equal probability, ignoring the board.
type randomSelector struct {
	rnd *rand.Rand
}

func NewMoveSelector() MoveSelector {
	return NewMoveSelectorWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewMoveSelectorWithSource(src rand.Source) MoveSelector {
	return &randomSelector{
		rnd: rand.New(src), //nolint: gosec // it's ok
	}
}

func (that *randomSelector) NextMove(_ *entity.Game) int {
	return that.rnd.Intn(entity.NumberOfColumns)
}
