package tictactoe

import "github.com/rocketscienceinc/tictactoe-rl/internal/entity"

// Outcome classifies a board.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerOneWins:
		return "player_one_wins"
	case PlayerTwoWins:
		return "player_two_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// HasWon reports whether mark fills a whole row, column or diagonal.
// Only full-length lines count.
func HasWon(state entity.BoardState, mark entity.Mark) bool {
	return hasRow(state, mark) ||
		hasColumn(state, mark) ||
		hasMainDiagonal(state, mark) ||
		hasAntiDiagonal(state, mark)
}

func hasRow(state entity.BoardState, mark entity.Mark) bool {
	for row := 0; row < state.N; row++ {
		if lineFilled(state, mark, state.Index(row, 0), 1) {
			return true
		}
	}

	return false
}

func hasColumn(state entity.BoardState, mark entity.Mark) bool {
	for col := 0; col < state.N; col++ {
		if lineFilled(state, mark, state.Index(0, col), state.N) {
			return true
		}
	}

	return false
}

func hasMainDiagonal(state entity.BoardState, mark entity.Mark) bool {
	return lineFilled(state, mark, 0, state.N+1)
}

func hasAntiDiagonal(state entity.BoardState, mark entity.Mark) bool {
	return lineFilled(state, mark, state.N-1, state.N-1)
}

// lineFilled walks N cells from start with the given stride.
func lineFilled(state entity.BoardState, mark entity.Mark, start, stride int) bool {
	for i, idx := 0, start; i < state.N; i, idx = i+1, idx+stride {
		if state.Cells[idx] != int(mark) {
			return false
		}
	}

	return true
}

// IsFull reports whether no cell is empty.
func IsFull(state entity.BoardState) bool {
	for _, cell := range state.Cells {
		if cell == int(entity.Empty) {
			return false
		}
	}

	return true
}

// IsDraw reports a full board on which neither player has a line.
func IsDraw(state entity.BoardState) bool {
	return IsFull(state) && !HasWon(state, entity.PlayerOne) && !HasWon(state, entity.PlayerTwo)
}

// Winner returns the mark holding a full line, or entity.Empty.
// Player one is checked first on boards where both players hold a line.
func Winner(state entity.BoardState) entity.Mark {
	switch {
	case HasWon(state, entity.PlayerOne):
		return entity.PlayerOne
	case HasWon(state, entity.PlayerTwo):
		return entity.PlayerTwo
	default:
		return entity.Empty
	}
}

func GetOutcome(state entity.BoardState) Outcome {
	switch Winner(state) {
	case entity.PlayerOne:
		return PlayerOneWins
	case entity.PlayerTwo:
		return PlayerTwoWins
	}

	if IsFull(state) {
		return Draw
	}

	return InProgress
}
