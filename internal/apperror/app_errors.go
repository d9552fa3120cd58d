package apperror

import "errors"

var (
	ErrOutOfBounds       = errors.New("action index out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidBoardSize  = errors.New("board size must be positive")
	ErrNilReward         = errors.New("reward callback is nil")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrNilPlayer         = errors.New("player is nil")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
