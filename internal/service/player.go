package service

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/rocketscienceinc/tictactoe-rl/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rl/internal/entity"
)

const (
	RandomPlayerKind = "random"
	FirstPlayerKind  = "first"
)

// Player picks the next action from the observed board and its legal-action mask.
type Player interface {
	Name() string
	SelectAction(state entity.BoardState, mask []bool) (entity.Action, error)
}

// NewPlayer builds a player by kind.
func NewPlayer(kind, name string, src rand.Source) (Player, error) {
	switch kind {
	case RandomPlayerKind:
		return NewRandomPlayer(name, src), nil
	case FirstPlayerKind:
		return NewFirstAvailablePlayer(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}

type randomPlayer struct {
	name string
	src  rand.Source
}

// NewRandomPlayer picks uniformly among the legal cells.
func NewRandomPlayer(name string, src rand.Source) Player {
	return &randomPlayer{
		name: name,
		src:  src,
	}
}

func (that *randomPlayer) Name() string {
	return that.name
}

func (that *randomPlayer) SelectAction(_ entity.BoardState, mask []bool) (entity.Action, error) {
	weights := make([]float64, len(mask))
	available := 0
	for i, legal := range mask {
		if legal {
			weights[i] = 1
			available++
		}
	}

	if available == 0 {
		return entity.Action{}, apperror.ErrNoAvailableMoves
	}

	index, ok := sampleuv.NewWeighted(weights, that.src).Take()
	if !ok {
		return entity.Action{}, apperror.ErrNoAvailableMoves
	}

	return entity.Action{Index: index}, nil
}

type firstAvailablePlayer struct {
	name string
}

// NewFirstAvailablePlayer always plays the lowest empty cell.
func NewFirstAvailablePlayer(name string) Player {
	return &firstAvailablePlayer{name: name}
}

func (that *firstAvailablePlayer) Name() string {
	return that.name
}

func (that *firstAvailablePlayer) SelectAction(_ entity.BoardState, mask []bool) (entity.Action, error) {
	for i, legal := range mask {
		if legal {
			return entity.Action{Index: i}, nil
		}
	}

	return entity.Action{}, apperror.ErrNoAvailableMoves
}
