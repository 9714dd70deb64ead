package snake

import "testing"

func TestNewGridHasWallRing(t *testing.T) {
	g := NewGrid(6, 4)

	if g.Width() != 6 || g.Height() != 4 {
		t.Fatalf("grid size = %dx%d, expected 6x4", g.Width(), g.Height())
	}
	// Perimeter of 6x4 is 2*6 + 2*2
	if n := g.Count(CellWall); n != 16 {
		t.Errorf("expected 16 wall cells, got %d", n)
	}
	if n := g.Count(CellEmpty); n != 8 {
		t.Errorf("expected 8 empty cells, got %d", n)
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(Point{Row: 2, Col: 2}, CellFood)
	g.Set(Point{Row: 0, Col: 0}, CellEmpty)

	g.Reset()

	if g.At(Point{Row: 2, Col: 2}) != CellEmpty {
		t.Error("interior should be empty after reset")
	}
	if g.At(Point{Row: 0, Col: 0}) != CellWall {
		t.Error("border should be wall after reset")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)

	outside := []Point{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 5, Col: 2}, {Row: 2, Col: 5}}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Contains(%v) should be false", p)
		}
		if g.At(p) != CellWall {
			t.Errorf("At(%v) should read as wall", p)
		}
		g.Set(p, CellFood)
	}
	if g.Count(CellFood) != 0 {
		t.Error("Set outside the grid should be ignored")
	}
}

func TestGridFindRowMajor(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(Point{Row: 3, Col: 1}, CellFood)
	g.Set(Point{Row: 1, Col: 3}, CellFood)
	g.Set(Point{Row: 1, Col: 1}, CellFood)

	got := g.Find(CellFood)
	expected := []Point{{Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 3, Col: 1}}
	if len(got) != len(expected) {
		t.Fatalf("Find() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Find()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestCellKindString(t *testing.T) {
	tests := map[CellKind]string{
		CellEmpty:     "empty",
		CellWall:      "wall",
		CellSnakeHead: "head",
		CellSnakeBody: "body",
		CellFood:      "food",
		cellKindCount: "unknown",
	}
	for k, expected := range tests {
		if k.String() != expected {
			t.Errorf("CellKind(%d).String() = %q, expected %q", k, k.String(), expected)
		}
	}
}
