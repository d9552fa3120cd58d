package entity

import (
	"slices"
	"strings"
)

// Mark is the value a player writes into a cell.
type Mark int

const (
	Empty     Mark = 0
	PlayerOne Mark = 1
	PlayerTwo Mark = -1
)

// Opponent returns the mark of the other player. Empty has no opponent.
func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return "."
	}
}

// BoardState is a row-major N×N grid: cell (row, col) lives at row*N + col.
type BoardState struct {
	N     int   `json:"n"`
	Cells []int `json:"cells"`
}

// NewBoardState returns an empty n×n board.
func NewBoardState(n int) BoardState {
	return BoardState{
		N:     n,
		Cells: make([]int, n*n),
	}
}

// Equal reports whether both boards have the same size and the same cells in the same order.
func (that BoardState) Equal(other BoardState) bool {
	return that.N == other.N && slices.Equal(that.Cells, other.Cells)
}

// Clone returns a copy that shares no memory with the receiver.
func (that BoardState) Clone() BoardState {
	return BoardState{
		N:     that.N,
		Cells: slices.Clone(that.Cells),
	}
}

func (that BoardState) Len() int {
	return len(that.Cells)
}

func (that BoardState) Index(row, col int) int {
	return row*that.N + col
}

func (that BoardState) RowCol(index int) (int, int) {
	return index / that.N, index % that.N
}

func (that BoardState) At(index int) Mark {
	return Mark(that.Cells[index])
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (that BoardState) EmptyCells() []int {
	cells := make([]int, 0, len(that.Cells))
	for i, cell := range that.Cells {
		if cell == int(Empty) {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold the given mark.
func (that BoardState) Count(mark Mark) int {
	count := 0
	for _, cell := range that.Cells {
		if cell == int(mark) {
			count++
		}
	}

	return count
}

// String renders the board as N lines of X, O and '.'.
func (that BoardState) String() string {
	var sb strings.Builder
	for i, cell := range that.Cells {
		if i > 0 && i%that.N == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(Mark(cell).String())
	}

	return sb.String()
}

// Action targets a single cell by its linear index.
type Action struct {
	Index int `json:"index"`
}

// StepResult is a snapshot returned by a single environment step.
type StepResult struct {
	NextState BoardState `json:"next_state"`
	Reward    float64    `json:"reward"`
	Done      bool       `json:"done"`
}
