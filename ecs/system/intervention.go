package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/logger"
)

// eligibleMatriarch is a snapshot of a matriarch that has outlived its grace
// period, taken when the command is handled.
type eligibleMatriarch struct {
	entity    ecs.Entity
	position  cp.Vector
	direction component.Direction
}

// dropper is the command plumbing shared by the three intervention systems.
type dropper struct {
	kind     component.CommandKind
	commands *ecs.Channel[component.Command]
	reader   ecs.ReaderID
	cfg      *config.Config
}

func newDropper(kind component.CommandKind, commands *ecs.Channel[component.Command], cfg *config.Config) dropper {
	return dropper{
		kind:     kind,
		commands: commands,
		reader:   commands.Register(),
		cfg:      cfg,
	}
}

// triggered drains the reader and reports whether any command was ours.
// Repeats within one tick collapse into one.
func (d *dropper) triggered() bool {
	hit := false
	for _, cmd := range d.commands.Read(d.reader) {
		if cmd.Kind == d.kind {
			hit = true
		}
	}
	return hit
}

// eligible returns the matriarchs old enough to act on a command, skipping
// those still inside the grace period.
func (d *dropper) eligible(w *ecs.World) []eligibleMatriarch {
	grace := d.cfg.Physics.MatriarchGracePeriod
	var out []eligibleMatriarch
	for _, e := range w.Query(
		component.MatriarchComponent.Kind(),
		component.WalkerComponent.Kind(),
		component.AgeComponent.Kind(),
		component.TransformComponent.Kind(),
	) {
		m, _ := ecs.Get(w, e, component.MatriarchComponent)
		age, _ := ecs.Get(w, e, component.AgeComponent)
		if since := age.Seconds - m.AgeWhenPromoted; since < grace {
			logger.Log.WithFields(map[string]any{
				"command": d.kind,
				"entity":  e,
				"since":   since,
				"grace":   grace,
			}).Debug("command inside grace period, dropped")
			continue
		}
		walker, _ := ecs.Get(w, e, component.WalkerComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		out = append(out, eligibleMatriarch{
			entity:    e,
			position:  cp.Vector{X: t.X, Y: t.Y},
			direction: walker.Direction,
		})
	}
	return out
}

// each runs create once per eligible matriarch in a tick that received the
// command. Creation is deferred to the end-of-tick flush.
func (d *dropper) each(w *ecs.World, create func(w *ecs.World, m eligibleMatriarch) (ecs.Entity, error)) {
	if !d.triggered() {
		return
	}
	for _, m := range d.eligible(w) {
		w.Defer(func(w *ecs.World) {
			e, err := create(w, m)
			if err != nil {
				logger.Log.WithError(err).WithField("command", d.kind).Error("intervention failed")
				return
			}
			logger.Log.WithFields(map[string]any{
				"command":   d.kind,
				"matriarch": m.entity,
				"entity":    e,
			}).Debug("intervention dropped")
		})
	}
}
