package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rl/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rl/internal/entity"
)

// Environment is a single-episode N×N tic-tac-toe state machine.
// It is not safe for concurrent use; run one Environment per episode.
type Environment struct {
	state  entity.BoardState
	reward RewardFunc
	player entity.Mark
}

// New creates an environment with an empty n×n board and player one to move.
func New(n int, reward RewardFunc) (*Environment, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, n)
	}

	if reward == nil {
		return nil, apperror.ErrNilReward
	}

	return &Environment{
		state:  entity.NewBoardState(n),
		reward: reward,
		player: entity.PlayerOne,
	}, nil
}

// Reset clears the board in place and gives the move back to player one.
func (that *Environment) Reset() entity.BoardState {
	clear(that.state.Cells)
	that.player = entity.PlayerOne

	return that.state.Clone()
}

// Step places the current player's mark on action.Index.
//
// Steps on a finished board are accepted as long as the cell is empty;
// callers stop on StepResult.Done.
func (that *Environment) Step(action entity.Action) (entity.StepResult, error) {
	if err := that.validateAction(action); err != nil {
		return entity.StepResult{}, fmt.Errorf("invalid action: %w", err)
	}

	mover := that.player
	that.state.Cells[action.Index] = int(mover)

	done := isTerminal(that.state, mover)

	reward := that.reward(that.state.Clone(), action)

	result := entity.StepResult{
		NextState: that.state.Clone(),
		Reward:    reward,
		Done:      done,
	}

	that.player = mover.Opponent()

	return result, nil
}

// validateAction - bounds first, then occupancy.
func (that *Environment) validateAction(action entity.Action) error {
	if action.Index < 0 || action.Index >= that.state.Len() {
		return fmt.Errorf("%w: index %d, board has %d cells", apperror.ErrOutOfBounds, action.Index, that.state.Len())
	}

	if that.state.Cells[action.Index] != int(entity.Empty) {
		return fmt.Errorf("%w: index %d", apperror.ErrCellOccupied, action.Index)
	}

	return nil
}

// isTerminal checks the mover's win before the opponent's and both before a draw.
func isTerminal(state entity.BoardState, mover entity.Mark) bool {
	switch {
	case HasWon(state, mover):
		return true
	case HasWon(state, mover.Opponent()):
		return true
	default:
		return IsFull(state)
	}
}

// Size returns N.
func (that *Environment) Size() int {
	return that.state.N
}

// CurrentPlayer returns the mark that the next successful Step will write.
func (that *Environment) CurrentPlayer() entity.Mark {
	return that.player
}

// State returns a copy of the live board.
func (that *Environment) State() entity.BoardState {
	return that.state.Clone()
}
