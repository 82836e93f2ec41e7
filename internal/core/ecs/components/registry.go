package components

import "siegefall/internal/core/ecs"

// Register installs a factory for every component kind in the closed set
// (spec §3) into r, in the order listed. This order is the order r.Types
// reports and the order in which any World built from r creates its stores;
// multi-component queries walk the first-named store and do not depend on it.
func Register(r *ecs.Registry) {
	r.Register(ecs.ComponentTypeTransform2D, func() ecs.Component { return &Transform2D{} })
	r.Register(ecs.ComponentTypeVelocity, func() ecs.Component { return &Velocity{} })
	r.Register(ecs.ComponentTypePhysicsBody, func() ecs.Component { return &PhysicsBody{} })
	r.Register(ecs.ComponentTypeCollisionShape, func() ecs.Component { return &CollisionShape{} })
	r.Register(ecs.ComponentTypeCollision, func() ecs.Component { return &Collision{} })
	r.Register(ecs.ComponentTypePlayer, func() ecs.Component { return &Player{} })
	r.Register(ecs.ComponentTypeHP, func() ecs.Component { return &HP{} })
	r.Register(ecs.ComponentTypeDeath, func() ecs.Component { return &Death{} })
	r.Register(ecs.ComponentTypeStiff, func() ecs.Component { return &Stiff{} })
	r.Register(ecs.ComponentTypeBullet, func() ecs.Component { return &Bullet{} })
	r.Register(ecs.ComponentTypeWall, func() ecs.Component { return &Wall{} })
	r.Register(ecs.ComponentTypeBarrel, func() ecs.Component { return &Barrel{} })
	r.Register(ecs.ComponentTypeWallPlacement, func() ecs.Component { return &WallPlacement{} })
	r.Register(ecs.ComponentTypeZombieAI, func() ecs.Component { return &ZombieAI{} })
	r.Register(ecs.ComponentTypeExplosion, func() ecs.Component { return &Explosion{} })
	r.Register(ecs.ComponentTypeGridMap, func() ecs.Component { return &GridMap{} })
	r.Register(ecs.ComponentTypeFlowField, func() ecs.Component { return &FlowField{} })
}
