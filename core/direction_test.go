package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s: expected delta (%d,%d), got (%d,%d)", tt.dir, tt.dx, tt.dy, dx, dy)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	all := []Direction{Up, Down, Left, Right}

	for _, d := range all {
		opp := d.Opposite()
		if !d.IsOpposite(opp) {
			t.Errorf("Expected %s to be opposite of %s", opp, d)
		}
		if opp.Opposite() != d {
			t.Errorf("Expected Opposite to be an involution for %s, got %s", d, opp.Opposite())
		}
		if d.IsOpposite(d) {
			t.Errorf("%s should not be opposite of itself", d)
		}
	}

	// Perpendicular pairs are never opposite
	if Up.IsOpposite(Left) || Up.IsOpposite(Right) || Left.IsOpposite(Down) {
		t.Error("Perpendicular directions reported as opposite")
	}
}

func TestDirectionValid(t *testing.T) {
	if !Right.Valid() {
		t.Error("Expected Right to be valid")
	}
	if Direction(7).Valid() {
		t.Error("Expected Direction(7) to be invalid")
	}
	if Direction(7).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Direction(7).String())
	}
}

func TestCellStepAndBounds(t *testing.T) {
	c := Cell{X: 0, Y: 5}

	if got := c.Step(Left); got != (Cell{X: -1, Y: 5}) {
		t.Errorf("Expected (-1,5), got %v", got)
	}
	if c.Step(Left).InBounds(10, 10) {
		t.Error("Expected x=-1 to be out of bounds")
	}
	if !c.InBounds(10, 10) {
		t.Error("Expected (0,5) to be in bounds")
	}
	if (Cell{X: 10, Y: 0}).InBounds(10, 10) {
		t.Error("Expected x=width to be out of bounds")
	}
	if (Cell{X: 0, Y: 10}).InBounds(10, 10) {
		t.Error("Expected y=height to be out of bounds")
	}
}
