package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var allDirections = []Direction{DirUp, DirDown, DirLeft, DirRight}

func TestNextDirection(t *testing.T) {
	tests := []struct {
		current  Direction
		pressed  Direction
		expected Direction
	}{
		{DirUp, DirUnassigned, DirUp},
		{DirUp, DirUp, DirUp},
		{DirUp, DirDown, DirUp},
		{DirUp, DirLeft, DirLeft},
		{DirUp, DirRight, DirRight},
		{DirDown, DirUp, DirDown},
		{DirDown, DirLeft, DirLeft},
		{DirLeft, DirRight, DirLeft},
		{DirLeft, DirUp, DirUp},
		{DirLeft, DirDown, DirDown},
		{DirRight, DirLeft, DirRight},
		{DirRight, DirRight, DirRight},
		{DirRight, DirDown, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"_"+tc.pressed.String(), func(t *testing.T) {
			if got := nextDirection(tc.current, tc.pressed); got != tc.expected {
				t.Errorf("nextDirection(%s, %s) = %s, expected %s", tc.current, tc.pressed, got, tc.expected)
			}
		})
	}
}

func TestNextDirectionNeverReverses(t *testing.T) {
	for _, cur := range allDirections {
		for _, pressed := range append(allDirections, DirUnassigned) {
			got := nextDirection(cur, pressed)
			if got == cur.Opposite() {
				t.Errorf("nextDirection(%s, %s) reversed to %s", cur, pressed, got)
			}
			if got == DirUnassigned {
				t.Errorf("nextDirection(%s, %s) lost the heading", cur, pressed)
			}
		}
	}
}

func TestHeading(t *testing.T) {
	head := Point{Row: 5, Col: 5}
	for _, d := range allDirections {
		// The neck sits one cell behind the head
		neck := head.Add(d.Opposite())
		if got := heading(head, neck); got != d {
			t.Errorf("heading with neck %v = %s, expected %s", neck, got, d)
		}
	}

	if got := heading(head, Point{Row: 6, Col: 6}); got != DirUnassigned {
		t.Errorf("diagonal neck should give no heading, got %s", got)
	}
	if got := heading(head, head); got != DirUnassigned {
		t.Errorf("overlapping neck should give no heading, got %s", got)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{Row: 3, Col: 4}
	tests := map[Direction]Point{
		DirUp:    {Row: 2, Col: 4},
		DirDown:  {Row: 4, Col: 4},
		DirLeft:  {Row: 3, Col: 3},
		DirRight: {Row: 3, Col: 5},
	}
	for d, expected := range tests {
		if got := p.Add(d); got != expected {
			t.Errorf("%v.Add(%s) = %v, expected %v", p, d, got, expected)
		}
	}
}

func TestPointAddUnassignedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add(DirUnassigned) should panic")
		}
	}()
	Point{}.Add(DirUnassigned)
}

func TestPressedDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected Direction
	}{
		{"none", nil, DirUnassigned},
		{"confirm only", []core.Action{core.ActionConfirm}, DirUnassigned},
		{"up", []core.Action{core.ActionUp}, DirUp},
		{"down", []core.Action{core.ActionDown}, DirDown},
		{"left beats right", []core.Action{core.ActionRight, core.ActionLeft}, DirLeft},
		{"right beats down", []core.Action{core.ActionDown, core.ActionRight}, DirRight},
		{"down beats up", []core.Action{core.ActionUp, core.ActionDown}, DirDown},
		{"left beats all", []core.Action{core.ActionUp, core.ActionDown, core.ActionRight, core.ActionLeft}, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PressedDirection(core.NewInputFrame(tc.actions...)); got != tc.expected {
				t.Errorf("PressedDirection(%v) = %s, expected %s", tc.actions, got, tc.expected)
			}
		})
	}
}
