package render

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-rl/internal/entity"
)

// Board draws one line per row with cells separated by '|'.
// Colors: X green, O blue.
func Board(state entity.BoardState, colored bool) string {
	au := aurora.NewAurora(colored)

	var sb strings.Builder
	for i, cell := range state.Cells {
		col := i % state.N
		if i > 0 && col == 0 {
			sb.WriteByte('\n')
		}
		if col > 0 {
			sb.WriteString(au.White("|").String())
		}

		mark := entity.Mark(cell)
		switch mark {
		case entity.PlayerOne:
			sb.WriteString(au.Green(mark.String()).String())
		case entity.PlayerTwo:
			sb.WriteString(au.Blue(mark.String()).String())
		default:
			sb.WriteString(mark.String())
		}
	}

	return sb.String()
}
