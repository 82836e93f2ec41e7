package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/input"
)

func TestPlaceWallCreatesStaticTriggerAndObstacle(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	grid := newGridMap(world, 10, 10)
	e := spawnPlayer(world, 1, grid.CellCenter(components.GridCell{X: 3, Y: 3}))
	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	pc.(*components.Player).CurrentModeIndex = components.ModeWall

	NewPlayerPlaceWallSystem(cfg).Execute(world, input.Frame{{PlayerID: 1, IsFire: true}})

	walls := world.Query().With(ecs.ComponentTypeWall).Entities()
	require.Len(t, walls, 1)

	bc, _ := world.GetComponent(walls[0], ecs.ComponentTypePhysicsBody)
	body := bc.(*components.PhysicsBody)
	assert.True(t, body.IsStatic)
	assert.True(t, body.IsTrigger)

	assert.True(t, grid.IsObstacle(components.GridCell{X: 3, Y: 3}))
	assert.Equal(t, cfg.WallCooldown, pc.(*components.Player).WallCooldown)
}

func TestPlaceWallRefusesExistingObstacle(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	grid := newGridMap(world, 10, 10)
	grid.AddObstacle(components.GridCell{X: 3, Y: 3})
	e := spawnPlayer(world, 1, grid.CellCenter(components.GridCell{X: 3, Y: 3}))
	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	pc.(*components.Player).CurrentModeIndex = components.ModeWall

	NewPlayerPlaceWallSystem(cfg).Execute(world, input.Frame{{PlayerID: 1, IsFire: true}})

	assert.Empty(t, world.Query().With(ecs.ComponentTypeWall).Entities())
	assert.Equal(t, 0, pc.(*components.Player).WallCooldown)
}

func TestPlaceBarrelGetsHP(t *testing.T) {
	world := newTestWorld()
	cfg := DefaultConfig()
	grid := newGridMap(world, 10, 10)
	e := spawnPlayer(world, 1, grid.CellCenter(components.GridCell{X: 1, Y: 1}))
	pc, _ := world.GetComponent(e, ecs.ComponentTypePlayer)
	pc.(*components.Player).CurrentModeIndex = components.ModeBarrel

	NewPlayerPlaceBarrelSystem(cfg).Execute(world, input.Frame{{PlayerID: 1, IsFire: true}})

	barrels := world.Query().With(ecs.ComponentTypeBarrel).Entities()
	require.Len(t, barrels, 1)
	hc, ok := world.GetComponent(barrels[0], ecs.ComponentTypeHP)
	require.True(t, ok)
	assert.Equal(t, cfg.BarrelHP, hc.(*components.HP).Current)
}
