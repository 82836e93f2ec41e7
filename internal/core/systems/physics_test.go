package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func TestPhysicsSystemIntegratesWorld(t *testing.T) {
	world := newTestWorld()
	e := world.CreateEntity()
	world.AddComponent(e, &components.Transform2D{})
	world.AddComponent(e, &components.Velocity{V: fix.Vec2FromInt(1, 0)})
	world.AddComponent(e, &components.PhysicsBody{Mass: fix.One})
	world.AddComponent(e, &components.CollisionShape{Kind: components.ShapeCircle, Radius: fix.One})

	sys := NewPhysicsSystem(fix.One, physics.DefaultConfig())
	sys.Execute(world, input.Frame{})

	tc, _ := world.GetComponent(e, ecs.ComponentTypeTransform2D)
	assert.True(t, tc.(*components.Transform2D).Position.X.Sign() > 0)
}
