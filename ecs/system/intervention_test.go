package system

import (
	"testing"

	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

type interventionCase struct {
	name    string
	command component.CommandKind
	effect  component.Kind
	build   func(*ecs.Channel[component.Command], *config.Config) ecs.System
}

func interventionCases() []interventionCase {
	return []interventionCase{
		{"lift", component.CommandDropLift, component.LaunchAreaComponent.Kind(),
			func(c *ecs.Channel[component.Command], cfg *config.Config) ecs.System { return NewDropLiftSystem(c, cfg) }},
		{"ram", component.CommandDropRam, component.ConstantVelocityComponent.Kind(),
			func(c *ecs.Channel[component.Command], cfg *config.Config) ecs.System { return NewDropRamSystem(c, cfg) }},
		{"direction_changer", component.CommandDropDirectionChanger, component.ChangeDirectionComponent.Kind(),
			func(c *ecs.Channel[component.Command], cfg *config.Config) ecs.System {
				return NewDropDirectionChangerSystem(c, cfg)
			}},
	}
}

func TestInterventionGracePeriod(t *testing.T) {
	ages := []struct {
		name string
		age  float64
		want int
	}{
		{"inside_grace", 11.0, 0},
		{"exactly_at_grace", 12.0, 1},
		{"after_grace", 12.5, 1},
	}

	for _, ic := range interventionCases() {
		for _, tc := range ages {
			t.Run(ic.name+"/"+tc.name, func(t *testing.T) {
				cfg := testConfig(t)
				cfg.Physics.MatriarchGracePeriod = 2.0
				w := newTestWorld(t)
				commands := ecs.NewChannel[component.Command](0)
				drop := ic.build(commands, cfg)

				m := addWalker(t, w, cfg, 10, 10, component.DirectionRight, 1)
				setAge(t, w, m, 10.0)
				NewMatriarchSystem().Update(w)

				setAge(t, w, m, tc.age)
				commands.Publish(component.Command{Kind: ic.command})
				drop.Update(w)

				if n := w.Count(ic.effect); n != 0 {
					t.Fatalf("effect must not exist before the flush, got %d", n)
				}
				w.Flush()

				if n := w.Count(ic.effect); n != tc.want {
					t.Fatalf("expected %d effects, got %d", tc.want, n)
				}
			})
		}
	}
}

func TestInterventionRepeatedCommandsInOneTick(t *testing.T) {
	for _, ic := range interventionCases() {
		t.Run(ic.name, func(t *testing.T) {
			cfg := testConfig(t)
			w := newTestWorld(t)
			commands := ecs.NewChannel[component.Command](0)
			drop := ic.build(commands, cfg)

			m := addWalker(t, w, cfg, 0, 0, component.DirectionRight, 1)
			NewMatriarchSystem().Update(w)
			setAge(t, w, m, cfg.Physics.MatriarchGracePeriod+1)

			commands.Publish(component.Command{Kind: ic.command})
			commands.Publish(component.Command{Kind: ic.command})
			drop.Update(w)
			w.Flush()

			if n := w.Count(ic.effect); n != 1 {
				t.Fatalf("expected one effect for two commands in a tick, got %d", n)
			}
		})
	}
}

func TestDropRamFollowsMatriarch(t *testing.T) {
	tests := []struct {
		name      string
		dir       component.Direction
		wantSignX float64
	}{
		{"right", component.DirectionRight, 1},
		{"left", component.DirectionLeft, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			w := newTestWorld(t)
			commands := ecs.NewChannel[component.Command](0)
			drop := NewDropRamSystem(commands, cfg)

			m := addWalker(t, w, cfg, 10, 10, tc.dir, 1)
			NewMatriarchSystem().Update(w)
			setAge(t, w, m, cfg.Physics.MatriarchGracePeriod+0.5)

			commands.Publish(component.Command{Kind: component.CommandDropRam})
			drop.Update(w)
			w.Flush()

			rams := w.Query(component.ConstantVelocityComponent.Kind())
			if len(rams) != 1 {
				t.Fatalf("expected one ram, got %d", len(rams))
			}

			ram := rams[0]
			cv, _ := ecs.Get(w, ram, component.ConstantVelocityComponent)
			wantX := cfg.Physics.RamVelocity.X * tc.wantSignX
			if cv.X != wantX || cv.Y != cfg.Physics.RamVelocity.Y {
				t.Fatalf("expected velocity (%g, %g), got (%g, %g)", wantX, cfg.Physics.RamVelocity.Y, cv.X, cv.Y)
			}
			col, _ := ecs.Get(w, ram, component.ColliderComponent)
			v, _, ok := w.PhysicsWorld().Velocity(col.Body)
			if !ok || v.X != wantX {
				t.Fatalf("expected body velocity x %g, got %v ok=%v", wantX, v, ok)
			}
			age, _ := ecs.Get(w, ram, component.AgeComponent)
			if age.Max == nil || *age.Max != cfg.Physics.RamLife {
				t.Fatalf("expected ram life %g, got %v", cfg.Physics.RamLife, age.Max)
			}
			mc, _ := ecs.Get(w, m, component.ColorComponent)
			rc, ok := ecs.Get(w, ram, component.ColorComponent)
			if !ok || rc != mc {
				t.Fatalf("ram should copy the matriarch color")
			}
			if ecs.Has(w, ram, component.WalkerComponent) {
				t.Fatalf("ram must not be a walker")
			}
		})
	}
}

func TestDropLiftAndDirectionChanger(t *testing.T) {
	cfg := testConfig(t)
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	lift := NewDropLiftSystem(commands, cfg)
	changer := NewDropDirectionChangerSystem(commands, cfg)

	m := addWalker(t, w, cfg, 0, 0, component.DirectionRight, 1)
	NewMatriarchSystem().Update(w)
	setAge(t, w, m, cfg.Physics.MatriarchGracePeriod+1)

	commands.Publish(component.Command{Kind: component.CommandDropLift})
	commands.Publish(component.Command{Kind: component.CommandDropDirectionChanger})
	lift.Update(w)
	changer.Update(w)
	w.Flush()

	lifts := w.Query(component.LaunchAreaComponent.Kind())
	if len(lifts) != 1 {
		t.Fatalf("expected one lift, got %d", len(lifts))
	}
	area, _ := ecs.Get(w, lifts[0], component.LaunchAreaComponent)
	if area.Direction != component.DirectionRight {
		t.Fatalf("lift should carry the matriarch direction")
	}

	changers := w.Query(component.ChangeDirectionComponent.Kind())
	if len(changers) != 1 {
		t.Fatalf("expected one direction changer, got %d", len(changers))
	}
	cd, _ := ecs.Get(w, changers[0], component.ChangeDirectionComponent)
	if cd.Direction != component.DirectionLeft {
		t.Fatalf("changer should reverse the matriarch direction")
	}
	col, _ := ecs.Get(w, changers[0], component.ColliderComponent)
	if !w.PhysicsWorld().IsSensor(col.Collider) {
		t.Fatalf("changer must be a sensor")
	}

	walker, _ := ecs.Get(w, m, component.WalkerComponent)
	if walker.Direction != component.DirectionRight {
		t.Fatalf("interventions must not mutate the matriarch")
	}

	lift.Update(w)
	changer.Update(w)
	w.Flush()
	if w.Count(component.LaunchAreaComponent.Kind()) != 1 || w.Count(component.ChangeDirectionComponent.Kind()) != 1 {
		t.Fatalf("commands must be consumed once")
	}
}

func TestDropWithoutMatriarchCreatesNothing(t *testing.T) {
	cfg := testConfig(t)
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	lift := NewDropLiftSystem(commands, cfg)

	commands.Publish(component.Command{Kind: component.CommandDropLift})
	lift.Update(w)
	w.Flush()
	if w.Count(component.LaunchAreaComponent.Kind()) != 0 {
		t.Fatalf("no matriarch, no lift")
	}
}
