package component

// ColliderHandle is an opaque reference to a shape owned by the physics world.
// Zero is never issued.
type ColliderHandle uint32

// BodyHandle is an opaque reference to a rigid body owned by the physics
// world. Zero means "no dynamic body" (static colliders and sensors).
type BodyHandle uint32

// Collider ties an entity to its physics objects. Removing the component, or
// destroying the entity, releases them.
type Collider struct {
	Collider ColliderHandle
	Body     BodyHandle
	Sensor   bool
}

var ColliderComponent = NewComponent[Collider]()
