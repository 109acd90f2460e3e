package ecs

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeSensor
	collisionTypeDynamic
)

const (
	defaultFriction   = 0.5
	defaultIterations = 20
)

// PhysicsWorld owns the Chipmunk space. Everything outside this type holds
// only opaque collider and body handles; handles are never reused, so a handle
// whose physics object was removed simply answers "not found".
type PhysicsWorld struct {
	space   *cp.Space
	gravity cp.Vector
	nextID  uint32

	colliders map[component.ColliderHandle]*colliderInfo
	bodies    map[component.BodyHandle]*bodyInfo
}

type colliderInfo struct {
	shape  *cp.Shape
	body   component.BodyHandle
	static *cp.Body
	sensor bool
	owner  Entity
	bound  bool
}

type bodyInfo struct {
	body      *cp.Body
	colliders int
}

// NewPhysicsWorld creates an empty space with the given gravity.
func NewPhysicsWorld(gravity cp.Vector) *PhysicsWorld {
	pw := &PhysicsWorld{gravity: gravity}
	pw.Reset()
	return pw
}

// Reset drops every body and shape and starts from an empty space. Issued
// handles stay invalid forever.
func (pw *PhysicsWorld) Reset() {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(pw.gravity)
	pw.space = space
	pw.colliders = make(map[component.ColliderHandle]*colliderInfo)
	pw.bodies = make(map[component.BodyHandle]*bodyInfo)
}

// SetGravity changes the gravity of the live space.
func (pw *PhysicsWorld) SetGravity(g cp.Vector) {
	if pw == nil {
		return
	}
	pw.gravity = g
	pw.space.SetGravity(g)
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Attach wires the world's Collider component to this physics world: adding
// one binds its handle to the entity, removing it (or destroying the entity)
// removes the physics objects before the call returns.
func (pw *PhysicsWorld) Attach(w *World) {
	w.SetPhysicsWorld(pw)
	OnAdd(w, component.ColliderComponent, func(e Entity, c component.Collider) {
		pw.Bind(c.Collider, e)
	})
	OnRemove(w, component.ColliderComponent, func(e Entity, c component.Collider) {
		pw.RemoveCollider(c.Collider)
	})
}

// CreateStaticBox adds an immovable solid box centred at pos.
func (pw *PhysicsWorld) CreateStaticBox(pos, halfExtent cp.Vector, rotationDeg float64) component.ColliderHandle {
	return pw.createStatic(pos, halfExtent, rotationDeg, false)
}

// CreateSensorBox adds an overlap-only box centred at pos. It exerts no force.
func (pw *PhysicsWorld) CreateSensorBox(pos, halfExtent cp.Vector, rotationDeg float64) component.ColliderHandle {
	return pw.createStatic(pos, halfExtent, rotationDeg, true)
}

func (pw *PhysicsWorld) createStatic(pos, halfExtent cp.Vector, rotationDeg float64, sensor bool) component.ColliderHandle {
	body := cp.NewStaticBody()
	body.SetPosition(pos)
	body.SetAngle(degToRad(rotationDeg))
	pw.space.AddBody(body)

	shape := cp.NewBox(body, halfExtent.X*2, halfExtent.Y*2, 0)
	shape.SetFriction(defaultFriction)
	if sensor {
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}

	h := component.ColliderHandle(pw.issue())
	shape.UserData = h
	pw.space.AddShape(shape)

	pw.colliders[h] = &colliderInfo{shape: shape, static: body, sensor: sensor}
	return h
}

// CreateDynamicBox adds a rigid body with a single box collider. Mass is
// density times area.
func (pw *PhysicsWorld) CreateDynamicBox(pos, halfExtent cp.Vector, rotationDeg, density float64) (component.BodyHandle, component.ColliderHandle) {
	width := halfExtent.X * 2
	height := halfExtent.Y * 2
	mass := density * width * height
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(pos)
	body.SetAngle(degToRad(rotationDeg))
	pw.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(defaultFriction)
	shape.SetCollisionType(collisionTypeDynamic)

	bh := component.BodyHandle(pw.issue())
	ch := component.ColliderHandle(pw.issue())
	shape.UserData = ch
	pw.space.AddShape(shape)

	pw.bodies[bh] = &bodyInfo{body: body, colliders: 1}
	pw.colliders[ch] = &colliderInfo{shape: shape, body: bh}
	return bh, ch
}

// LockRotation gives the body an infinite moment so contacts never tip it.
func (pw *PhysicsWorld) LockRotation(b component.BodyHandle) bool {
	info, ok := pw.bodies[b]
	if !ok {
		return false
	}
	info.body.SetMoment(math.Inf(1))
	info.body.SetAngularVelocity(0)
	return true
}

// Bind records e as the owner of collider h.
func (pw *PhysicsWorld) Bind(h component.ColliderHandle, e Entity) bool {
	info, ok := pw.colliders[h]
	if !ok {
		return false
	}
	info.owner = e
	info.bound = true
	return true
}

// RemoveCollider removes the shape, and its body once no collider uses it.
func (pw *PhysicsWorld) RemoveCollider(h component.ColliderHandle) bool {
	info, ok := pw.colliders[h]
	if !ok {
		return false
	}
	delete(pw.colliders, h)
	pw.space.RemoveShape(info.shape)
	if info.static != nil {
		pw.space.RemoveBody(info.static)
	}
	if b, ok := pw.bodies[info.body]; ok {
		b.colliders--
		if b.colliders <= 0 {
			pw.space.RemoveBody(b.body)
			delete(pw.bodies, info.body)
		}
	}
	return true
}

// ProximityOf returns every other collider currently overlapping h, ordered
// by handle.
func (pw *PhysicsWorld) ProximityOf(h component.ColliderHandle) []component.ColliderHandle {
	info, ok := pw.colliders[h]
	if !ok {
		return nil
	}
	var out []component.ColliderHandle
	pw.space.ShapeQuery(info.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		other, ok := shape.UserData.(component.ColliderHandle)
		if !ok || other == h {
			return
		}
		if _, live := pw.colliders[other]; !live {
			return
		}
		out = append(out, other)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EntityOf returns the entity that owns collider h.
func (pw *PhysicsWorld) EntityOf(h component.ColliderHandle) (Entity, bool) {
	info, ok := pw.colliders[h]
	if !ok || !info.bound {
		return 0, false
	}
	return info.owner, true
}

// BodyOf returns the dynamic body carrying collider h.
func (pw *PhysicsWorld) BodyOf(h component.ColliderHandle) (component.BodyHandle, bool) {
	info, ok := pw.colliders[h]
	if !ok || info.body == 0 {
		return 0, false
	}
	if _, live := pw.bodies[info.body]; !live {
		return 0, false
	}
	return info.body, true
}

// IsSensor reports whether h is an overlap-only collider.
func (pw *PhysicsWorld) IsSensor(h component.ColliderHandle) bool {
	info, ok := pw.colliders[h]
	return ok && info.sensor
}

// SetVelocity overwrites linear and angular velocity of b.
func (pw *PhysicsWorld) SetVelocity(b component.BodyHandle, linear cp.Vector, angular float64) bool {
	info, ok := pw.bodies[b]
	if !ok {
		return false
	}
	info.body.SetVelocityVector(linear)
	info.body.SetAngularVelocity(angular)
	return true
}

// Velocity returns the linear and angular velocity of b.
func (pw *PhysicsWorld) Velocity(b component.BodyHandle) (cp.Vector, float64, bool) {
	info, ok := pw.bodies[b]
	if !ok {
		return cp.Vector{}, 0, false
	}
	return info.body.Velocity(), info.body.AngularVelocity(), true
}

// Position returns the position and angle (radians) of b.
func (pw *PhysicsWorld) Position(b component.BodyHandle) (cp.Vector, float64, bool) {
	info, ok := pw.bodies[b]
	if !ok {
		return cp.Vector{}, 0, false
	}
	return info.body.Position(), info.body.Angle(), true
}

// Bounds returns the axis-aligned bounding box of collider h.
func (pw *PhysicsWorld) Bounds(h component.ColliderHandle) (cp.BB, bool) {
	info, ok := pw.colliders[h]
	if !ok {
		return cp.BB{}, false
	}
	return info.shape.BB(), true
}

// Colliders returns every live collider handle in issue order.
func (pw *PhysicsWorld) Colliders() []component.ColliderHandle {
	out := make([]component.ColliderHandle, 0, len(pw.colliders))
	for h := range pw.colliders {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) issue() uint32 {
	pw.nextID++
	return pw.nextID
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
