package levels

import (
	"errors"
	"fmt"
	"testing"

	"github.com/milk9111/matriarch/config"
)

func makeLevels(n int) []config.LevelConfig {
	out := make([]config.LevelConfig, n)
	for i := range out {
		out[i] = config.LevelConfig{Name: fmt.Sprintf("level-%d", i)}
	}
	return out
}

// loadFully drives Update until a load is requested and marks it done. It
// returns the number of updates taken.
func loadFully(t *testing.T, p *Progression) int {
	t.Helper()
	for i := 1; i <= 10; i++ {
		if p.Update() == ActionLoad {
			p.MarkLoaded()
			return i
		}
	}
	t.Fatalf("level never loaded")
	return 0
}

func TestJumpToRoundTrip(t *testing.T) {
	p := NewProgression(makeLevels(4))
	for i := 0; i < 4; i++ {
		t.Run(fmt.Sprintf("level_%d", i), func(t *testing.T) {
			if err := p.JumpTo(i); err != nil {
				t.Fatal(err)
			}
			if p.Current() != i {
				t.Fatalf("expected current %d, got %d", i, p.Current())
			}
			lvl, ok := p.Level()
			if !ok || lvl.Name != fmt.Sprintf("level-%d", i) {
				t.Fatalf("unexpected level %v ok=%v", lvl, ok)
			}
		})
	}

	for _, bad := range []int{-1, 4, 100} {
		if err := p.JumpTo(bad); !errors.Is(err, ErrLevelOutOfRange) {
			t.Fatalf("JumpTo(%d): expected ErrLevelOutOfRange, got %v", bad, err)
		}
	}
}

func TestReloadPreservesOrClampsIndex(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		newLevels int
		want      int
	}{
		{"same_size", 2, 4, 2},
		{"larger", 2, 6, 2},
		{"truncated", 3, 2, 1},
		{"truncated_to_one", 3, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProgression(makeLevels(4))
			if err := p.JumpTo(tc.start); err != nil {
				t.Fatal(err)
			}
			loadFully(t, p)

			p.Initialise(makeLevels(tc.newLevels))
			if p.Current() != tc.want {
				t.Fatalf("expected index %d, got %d", tc.want, p.Current())
			}
		})
	}
}

func TestInitialiseBeforeAnyLevelStartsAtZero(t *testing.T) {
	p := NewProgression(makeLevels(3))
	p.Initialise(makeLevels(5))
	if p.Current() != 0 {
		t.Fatalf("expected index 0, got %d", p.Current())
	}
}

func TestSettleFramesBeforeLoad(t *testing.T) {
	p := NewProgression(makeLevels(2))

	if a := p.Update(); a != ActionUnload {
		t.Fatalf("first update should unload, got %v", a)
	}
	for i := 0; i < SettleFrames; i++ {
		if a := p.Update(); a != ActionNone {
			t.Fatalf("settle frame %d: expected none, got %v", i, a)
		}
		if p.State() != StateLoading {
			t.Fatalf("expected loading state, got %v", p.State())
		}
	}
	if a := p.Update(); a != ActionLoad {
		t.Fatalf("expected load after settling, got %v", a)
	}
	if a := p.Update(); a != ActionLoad {
		t.Fatalf("load repeats until marked, got %v", a)
	}
	p.MarkLoaded()
	if a := p.Update(); a != ActionNone || p.State() != StateLoaded {
		t.Fatalf("expected steady loaded state, got %v %v", a, p.State())
	}
}

func TestNextHasNoLoopBack(t *testing.T) {
	p := NewProgression(makeLevels(2))
	loadFully(t, p)

	if !p.IsMoreLevels() {
		t.Fatalf("expected more levels at 0")
	}
	if !p.Next() || p.Current() != 1 {
		t.Fatalf("expected to advance to 1, got %d", p.Current())
	}
	loadFully(t, p)

	if p.IsMoreLevels() {
		t.Fatalf("last level must report no more levels")
	}
	if p.Next() {
		t.Fatalf("Next on the last level must not advance")
	}
	if p.Current() != 1 {
		t.Fatalf("expected to stay on 1, got %d", p.Current())
	}
	if a := p.Update(); a != ActionNone {
		t.Fatalf("refused Next must not schedule a reload, got %v", a)
	}
}
