package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameCompositesFallingPiece(t *testing.T) {
	g := newTestGame(t, ShapeT)
	f := g.Frame()

	require.Equal(t, 10, f.Width)
	require.Equal(t, 20, f.Height)
	require.Len(t, f.Rows, 20)

	// T spawns flush with the top: its bar lands on board row 19 and the
	// stub below it on row 18
	require.Equal(t, Row(0b111<<5), f.Rows[0], "board row 19 carries the bar")
	require.Equal(t, Row(0b010<<5), f.Rows[1], "board row 18 carries the stub")
	for i := 2; i < 20; i++ {
		require.Equal(t, Row(0), f.Rows[i])
	}
}

func TestFrameShowsLockedStack(t *testing.T) {
	g := newTestGame(t, ShapeO)
	g.Drop()
	f := g.Frame()

	// locked O at the bottom
	require.Equal(t, Row(0b11<<5), f.Rows[19])
	require.Equal(t, Row(0b11<<5), f.Rows[18])
	// fresh piece at the top
	require.Equal(t, Row(0b11<<5), f.Rows[0])
	require.Equal(t, Row(0b11<<5), f.Rows[1])
}

func TestFrameHoldBox(t *testing.T) {
	g := newTestGame(t, ShapeJ, ShapeO)
	require.Nil(t, g.Frame().Hold, "nothing held yet")

	g.Hold()
	f := g.Frame()
	require.NotNil(t, f.Hold)
	require.Equal(t, ShapeJ, f.Hold.Shape)
	require.Equal(t, 2, f.Hold.Width)
	require.Equal(t, 3, f.Hold.Height)
	// top to bottom
	require.Equal(t, []Row{0b10, 0b10, 0b11}, f.Hold.Rows)
	require.Equal(t, ".X\n.X\nXX", strings.ReplaceAll(f.Hold.String(), "#", "X"))
}

func TestFrameReadout(t *testing.T) {
	rules := NewStandardRules()
	rules.Level = 2
	g := NewGame(rules, WithPicker(pickerOf(ShapeO)))
	g.cleared = 12

	f := g.Frame()
	require.Equal(t, 12, f.Lines)
	require.Equal(t, 3, f.Level)
	require.False(t, f.Over)
}

func TestFrameStringRendersTopDown(t *testing.T) {
	rules := NewStandardRules()
	rules.Width = 4
	rules.Height = 5
	g := NewGame(rules, WithPicker(pickerOf(ShapeO)))
	g.Drop()

	// the locked O and the fresh spawn share columns 2..3
	want := strings.Join([]string{
		"..##",
		"..##",
		"....",
		"..##",
		"..##",
	}, "\n")
	require.Equal(t, want, g.Frame().String())
}

func TestFrameIsDetached(t *testing.T) {
	g := newTestGame(t, ShapeO)
	f := g.Frame()
	f.Rows[19] = 0xFFFF

	require.Equal(t, Row(0), g.Frame().Rows[19], "mutating a frame must not leak into the session")
}
