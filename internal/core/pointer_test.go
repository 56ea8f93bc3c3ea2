package core

import "testing"

func TestPointerMove(t *testing.T) {
	var p PointerState
	if p.Seen {
		t.Error("zero PointerState should not be marked as seen")
	}

	p.Move(3, 4)
	if p.Pos != (Point{3, 4}) || !p.Seen {
		t.Errorf("Move(3, 4) = %+v", p)
	}
	if _, ok := p.PendingClick(); ok {
		t.Error("Move should not create a click")
	}
}

func TestPointerClickLastWins(t *testing.T) {
	var p PointerState
	p.Click(1, 1)
	p.Click(7, 2)

	pos, ok := p.PendingClick()
	if !ok {
		t.Fatal("expected a pending click")
	}
	if pos != (Point{7, 2}) {
		t.Errorf("second click should overwrite first, got %+v", pos)
	}
	if p.Pos != (Point{7, 2}) {
		t.Errorf("click should also move the pointer, got %+v", p.Pos)
	}
}

func TestPointerConsumeOnce(t *testing.T) {
	var p PointerState
	p.Click(5, 5)

	if _, ok := p.Consume(); !ok {
		t.Fatal("first Consume should return the click")
	}
	if _, ok := p.Consume(); ok {
		t.Error("second Consume should find nothing")
	}
	if p.Pos != (Point{5, 5}) {
		t.Error("consuming a click should keep the pointer position")
	}
}

func TestInputFrameClearConsumesClick(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Pointer.Click(2, 3)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should drop actions")
	}
	if _, ok := f.Pointer.PendingClick(); ok {
		t.Error("Clear should consume the pending click")
	}
	if f.Pointer.Pos != (Point{2, 3}) {
		t.Error("Clear should keep the pointer position")
	}

	if !clone.Has(ActionPause) {
		t.Error("clone should be independent of the original")
	}
	if _, ok := clone.Pointer.PendingClick(); !ok {
		t.Error("clone should keep its own pending click")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
