package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOccupiedRowsShiftToColumn(t *testing.T) {
	p := NewPiece(ShapeT, RotSpawn, 5, 3)
	// bottom row first: the stub 0b010 under the bar 0b111, both shifted
	// left by the anchor column
	require.Equal(t, []Row{0b010 << 3, 0b111 << 3}, p.OccupiedRows())
}

func TestPieceCandidatesLeaveOriginalAlone(t *testing.T) {
	p := NewPiece(ShapeJ, RotSpawn, 4, 2)

	moved := p.Moved(-1, 1)
	row, col := moved.Position()
	require.Equal(t, 3, row)
	require.Equal(t, 3, col)

	turned := p.RotatedRight()
	require.Equal(t, RotRight, turned.Rotation())

	// p itself never changed
	row, col = p.Position()
	require.Equal(t, 4, row)
	require.Equal(t, 2, col)
	require.Equal(t, RotSpawn, p.Rotation())
}

func TestRotatedDimensionsFollowVariant(t *testing.T) {
	p := NewPiece(ShapeI, RotSpawn, 0, 0)
	require.Equal(t, 1, p.Width())
	require.Equal(t, 4, p.Height())

	turned := p.RotatedRight()
	require.Equal(t, 4, turned.Width())
	require.Equal(t, 1, turned.Height())
}
