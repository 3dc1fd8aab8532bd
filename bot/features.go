package bot

import "tetris/game"

// Weights scores a hypothetical resting position; higher is better. Lines
// rewards cleared rows, the rest penalize the classic stack features, so
// sensible values are positive for Lines and negative elsewhere.
type Weights struct {
	Lines     float64
	Holes     float64
	Height    float64
	Bumpiness float64
}

// DefaultWeights plays a flat, cautious game.
func DefaultWeights() Weights {
	return Weights{Lines: 8, Holes: -7, Height: -0.5, Bumpiness: -1}
}

// score locks the piece on a copy of the board, clears what that completes,
// and evaluates the leftover stack.
func (w Weights) score(board *game.Board, rested game.Piece) float64 {
	after := board.Clone()
	row, _ := rested.Position()
	after.Merge(rested.OccupiedRows(), row)
	lines := after.ClearFullRows()

	rows := after.Rows()
	heights := columnHeights(after.Width(), rows)

	return w.Lines*float64(lines) +
		w.Holes*float64(countHoles(rows, heights)) +
		w.Height*float64(sum(heights)) +
		w.Bumpiness*float64(bumpiness(heights))
}

// columnHeights returns, per column, one past the topmost occupied row, so
// an empty column reports 0.
func columnHeights(width int, rows []game.Row) []int {
	heights := make([]int, width)
	for c := 0; c < width; c++ {
		for r := len(rows) - 1; r >= 0; r-- {
			if rows[r]>>c&1 == 1 {
				heights[c] = r + 1
				break
			}
		}
	}
	return heights
}

// countHoles counts empty cells that have at least one occupied cell above
// them in the same column.
func countHoles(rows []game.Row, heights []int) int {
	holes := 0
	for c, h := range heights {
		for r := 0; r < h-1; r++ {
			if rows[r]>>c&1 == 0 {
				holes++
			}
		}
	}
	return holes
}

// bumpiness sums the height differences between adjacent columns.
func bumpiness(heights []int) int {
	total := 0
	for i := 1; i < len(heights); i++ {
		d := heights[i] - heights[i-1]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
