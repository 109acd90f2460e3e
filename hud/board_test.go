package hud

import "testing"

func TestBoardSlots(t *testing.T) {
	b := NewBoard()
	b.SetText(SlotSaved, "Saved: 1")
	b.SetText(SlotKilled, "Killed: 2")
	b.SetText(SlotName, "First Steps")
	b.SetVisible(SlotName, false)

	if got, ok := b.Text(SlotSaved); !ok || got != "Saved: 1" {
		t.Fatalf("unexpected text %q ok=%v", got, ok)
	}
	slots := b.Slots()
	if len(slots) != 2 || slots[0] != SlotKilled || slots[1] != SlotSaved {
		t.Fatalf("expected [killed saved], got %v", slots)
	}

	b.SetVisible(SlotName, true)
	if !b.Visible(SlotName) || len(b.Slots()) != 3 {
		t.Fatalf("slot should be visible again")
	}

	var nilBoard *Board
	nilBoard.SetText(SlotFPS, "x")
	if _, ok := nilBoard.Text(SlotFPS); ok {
		t.Fatalf("nil board holds nothing")
	}
}
