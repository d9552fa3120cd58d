package tictactoe

import "github.com/rocketscienceinc/tictactoe-rl/internal/entity"

// RewardFunc scores an accepted move. It receives the post-move board and the action that produced it.
type RewardFunc func(state entity.BoardState, action entity.Action) float64

// DefaultReward always returns zero.
func DefaultReward(entity.BoardState, entity.Action) float64 {
	return 0
}
