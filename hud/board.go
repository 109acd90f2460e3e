package hud

import "sort"

// Slot names written by the simulation and read by the renderer.
const (
	SlotFPS         = "fps"
	SlotSpawned     = "spawned"
	SlotRate        = "rate"
	SlotKilled      = "killed"
	SlotSaved       = "saved"
	SlotName        = "name"
	SlotDescription = "description"
)

// Board holds named text slots and their visibility. The simulation writes,
// the renderer reads; nothing reads a slot back into game state.
type Board struct {
	text   map[string]string
	hidden map[string]bool
}

func NewBoard() *Board {
	return &Board{
		text:   make(map[string]string),
		hidden: make(map[string]bool),
	}
}

func (b *Board) SetText(slot, text string) {
	if b == nil {
		return
	}
	b.text[slot] = text
}

func (b *Board) Text(slot string) (string, bool) {
	if b == nil {
		return "", false
	}
	t, ok := b.text[slot]
	return t, ok
}

func (b *Board) SetVisible(slot string, visible bool) {
	if b == nil {
		return
	}
	if visible {
		delete(b.hidden, slot)
		return
	}
	b.hidden[slot] = true
}

func (b *Board) Visible(slot string) bool {
	if b == nil {
		return false
	}
	return !b.hidden[slot]
}

// Slots returns the names of every visible slot that has text, sorted.
func (b *Board) Slots() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.text))
	for slot := range b.text {
		if !b.hidden[slot] {
			out = append(out, slot)
		}
	}
	sort.Strings(out)
	return out
}
