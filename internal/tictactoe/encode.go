package tictactoe

import "github.com/rocketscienceinc/tictactoe-rl/internal/entity"

// oneHotChannels: channel 0 holds player one, channel 1 holds player two.
const oneHotChannels = 2

// ActionMask reports, per cell, whether it is a legal move target.
func (that *Environment) ActionMask() []bool {
	return EncodeActionMask(that.state)
}

// FlattenedState returns the cells as -1.0, 0.0 or 1.0 in board order.
func (that *Environment) FlattenedState() []float64 {
	return EncodeFlattened(that.state)
}

// OneHotState returns two N*N channels back to back.
func (that *Environment) OneHotState() []float64 {
	return EncodeOneHot(that.state)
}

func EncodeActionMask(state entity.BoardState) []bool {
	mask := make([]bool, len(state.Cells))
	for i, cell := range state.Cells {
		mask[i] = cell == int(entity.Empty)
	}

	return mask
}

func EncodeFlattened(state entity.BoardState) []float64 {
	flat := make([]float64, len(state.Cells))
	for i, cell := range state.Cells {
		flat[i] = float64(cell)
	}

	return flat
}

// EncodeOneHot lays out channel k at offset k*N*N.
func EncodeOneHot(state entity.BoardState) []float64 {
	size := len(state.Cells)
	tensor := make([]float64, oneHotChannels*size)
	for i, cell := range state.Cells {
		switch entity.Mark(cell) {
		case entity.PlayerOne:
			tensor[i] = 1
		case entity.PlayerTwo:
			tensor[size+i] = 1
		}
	}

	return tensor
}
