package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/matriarch/config"
)

// SettleFrames is how many updates pass between unloading a level and loading
// the next one. Unload destroys entities and queues deferred work; loading
// only after the world has been flushed for these frames guarantees no
// half-destroyed entity or stale physics handle is visible to the new level.
const SettleFrames = 2

var ErrLevelOutOfRange = errors.New("levels: level index out of range")

type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Action tells the caller what to do with the world after Update.
type Action int

const (
	ActionNone Action = iota
	ActionUnload
	ActionLoad
)

// Progression owns the ordered level list, the active index and the
// unloaded -> loading -> loaded cycle. It never touches the world itself.
type Progression struct {
	levels  []config.LevelConfig
	current int
	state   State
	active  bool
	settle  int
	pending bool
}

func NewProgression(levels []config.LevelConfig) *Progression {
	p := &Progression{}
	p.Initialise(levels)
	return p
}

// Initialise replaces the level list. The current index is kept when a level
// was already active; a shorter list truncates it to the last level. The
// current level is then reloaded.
func (p *Progression) Initialise(levels []config.LevelConfig) {
	p.levels = append([]config.LevelConfig(nil), levels...)
	if !p.active {
		p.current = 0
	}
	p.clamp()
	p.Reload()
}

// JumpTo selects level i and schedules its load.
func (p *Progression) JumpTo(i int) error {
	if i < 0 || i >= len(p.levels) {
		return fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, i, len(p.levels))
	}
	p.current = i
	p.active = true
	p.Reload()
	return nil
}

// Current returns the active level index.
func (p *Progression) Current() int {
	return p.current
}

// Level returns the active level definition.
func (p *Progression) Level() (config.LevelConfig, bool) {
	if p.current < 0 || p.current >= len(p.levels) {
		return config.LevelConfig{}, false
	}
	return p.levels[p.current], true
}

// Len returns the number of levels.
func (p *Progression) Len() int {
	return len(p.levels)
}

// State returns the load state.
func (p *Progression) State() State {
	return p.state
}

// IsMoreLevels reports whether Next would advance.
func (p *Progression) IsMoreLevels() bool {
	return p.current+1 < len(p.levels)
}

// Next advances to the following level. There is no wrap-around: on the last
// level it returns false and nothing changes.
func (p *Progression) Next() bool {
	if !p.IsMoreLevels() {
		return false
	}
	p.current++
	p.active = true
	p.Reload()
	return true
}

// Reload schedules an unload of the current content followed by a load.
func (p *Progression) Reload() {
	if len(p.levels) == 0 {
		return
	}
	p.pending = true
}

// Update advances the state machine by one frame.
func (p *Progression) Update() Action {
	if p.pending {
		p.pending = false
		p.state = StateUnloaded
		p.settle = SettleFrames
		return ActionUnload
	}

	switch p.state {
	case StateUnloaded:
		if len(p.levels) == 0 {
			return ActionNone
		}
		p.state = StateLoading
		fallthrough
	case StateLoading:
		if p.settle > 0 {
			p.settle--
			return ActionNone
		}
		return ActionLoad
	default:
		return ActionNone
	}
}

// MarkLoaded records that the caller finished populating the level.
func (p *Progression) MarkLoaded() {
	p.state = StateLoaded
	p.active = true
}

func (p *Progression) clamp() {
	if p.current >= len(p.levels) {
		p.current = len(p.levels) - 1
	}
	if p.current < 0 {
		p.current = 0
	}
}
