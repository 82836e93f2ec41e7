package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/core/ecs"
	"siegefall/internal/core/ecs/components"
	"siegefall/internal/core/physics"
	"siegefall/internal/core/systems"
	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func newTestController() (*Controller, ecs.EntityID) {
	registry := ecs.NewRegistry()
	components.Register(registry)
	world := ecs.NewWorld(registry)

	player := world.CreateEntity()
	world.AddComponent(player, &components.Transform2D{Position: fix.ZeroVec2})
	world.AddComponent(player, &components.Velocity{})
	world.AddComponent(player, &components.PhysicsBody{Mass: fix.One, Layer: components.LayerPlayer})
	world.AddComponent(player, &components.CollisionShape{Kind: components.ShapeCircle, Radius: fix.Half})
	world.AddComponent(player, &components.HP{Current: 100, Max: 100})
	world.AddComponent(player, &components.Player{PlayerID: 0, ModeCount: 3, CurrentModeIndex: components.ModeShoot})

	cfg := systems.DefaultConfig()
	pipeline := systems.NewPipeline(cfg, fix.One, physics.DefaultConfig(), nil)
	return NewController(pipeline, world), player
}

func upInput() input.Frame {
	return input.Frame{{PlayerID: 0, Direction: input.DirUp}}
}

func emptyInput() input.Frame {
	return input.Frame{}
}

func fireInput(x, y fix.Fix64) input.Frame {
	return input.Frame{{PlayerID: 0, Direction: input.DirNone, IsFire: true, FireX: int64(x), FireY: int64(y)}}
}

// Scenario 2 (spec §8): local tick 1 predicts {up}; server confirms frame 1
// with the same input. predicted_frame == confirmed_frame == 1, the worlds
// are value-equal, and predicted_index resets to 1.
func TestPredictionConfirm(t *testing.T) {
	c, _ := newTestController()

	frame := c.LocalTick(upInput())
	require.Equal(t, uint64(1), frame)

	action := c.Reconcile(1, upInput())

	assert.Equal(t, StatePredictedInputsOK, action.State)
	assert.True(t, action.Advanced)
	assert.Equal(t, uint64(1), c.ConfirmedFrame())
	assert.Equal(t, uint64(1), c.PredictedFrame())
	assert.Equal(t, uint64(1), c.PredictedIndex())
	assert.True(t, c.PredictedWorld().Equal(c.ConfirmedWorld()))
}

// Scenario 3 (spec §8): local predicts {fire at (x,y)} at frame 1 while the
// server's authority for frame 1 is empty. Mode A overwrites predicted_world
// with a clone of confirmed_world (re-simulated from the authoritative empty
// input), so the speculative bullet never appears in predicted_world.
func TestPredictionMismatchDiscardsSpeculativeBullet(t *testing.T) {
	c, player := newTestController()

	c.LocalTick(fireInput(fix.FromInt(5), fix.Zero))

	bullets := c.PredictedWorld().Query().With(ecs.ComponentTypeBullet).Entities()
	require.Len(t, bullets, 1, "local prediction should have spawned a bullet")
	_ = player

	action := c.Reconcile(1, emptyInput())

	assert.Equal(t, StatePredictedInputsMismatch, action.State)
	assert.True(t, action.Advanced)
	assert.Equal(t, uint64(1), c.ConfirmedFrame())
	assert.Equal(t, uint64(1), c.PredictedFrame())
	assert.Equal(t, uint64(1), c.PredictedIndex())

	bulletsAfter := c.PredictedWorld().Query().With(ecs.ComponentTypeBullet).Entities()
	assert.Empty(t, bulletsAfter, "mismatch reconciliation must discard the speculative bullet")
	assert.True(t, c.PredictedWorld().Equal(c.ConfirmedWorld()))
}

// Scenario 4 (spec §8): with confirmed_frame == 4, the controller receives
// server frame 7. A FrameLoss(last=4) must be requested and confirmed_world
// must be unchanged.
func TestGapRecoveryRequestsLossFromConfirmedFrame(t *testing.T) {
	c, _ := newTestController()

	for n := uint64(1); n <= 4; n++ {
		c.LocalTick(emptyInput())
		action := c.Reconcile(n, emptyInput())
		require.True(t, action.Advanced)
	}
	require.Equal(t, uint64(4), c.ConfirmedFrame())

	before := c.ConfirmedWorld().Clone()

	action := c.Reconcile(7, emptyInput())

	assert.Equal(t, StateNoPredictionGap, action.State)
	assert.False(t, action.Advanced)
	assert.Equal(t, uint64(4), action.RequestLossFrom)
	assert.Equal(t, uint64(4), c.ConfirmedFrame())
	assert.True(t, c.ConfirmedWorld().Equal(before))
}

func TestClassifyDuplicateFrame(t *testing.T) {
	c, _ := newTestController()
	c.LocalTick(emptyInput())
	c.Reconcile(1, emptyInput())

	assert.Equal(t, StateDuplicate, c.Classify(1, emptyInput()))
	assert.Equal(t, StateDuplicate, c.Classify(0, emptyInput()))
}

func TestClassifyNoPredictionStates(t *testing.T) {
	c, _ := newTestController()

	// No local tick has run yet: predicted_frame == confirmed_frame == 0.
	assert.Equal(t, StateNoPredictionOK, c.Classify(1, emptyInput()))
	assert.Equal(t, StateNoPredictionGap, c.Classify(2, emptyInput()))
}

func TestClassifyPredictedGap(t *testing.T) {
	c, _ := newTestController()
	c.LocalTick(emptyInput())

	assert.Equal(t, StatePredictedGap, c.Classify(3, emptyInput()))
}

func TestIsGap(t *testing.T) {
	assert.True(t, StateNoPredictionGap.IsGap())
	assert.True(t, StatePredictedGap.IsGap())
	assert.False(t, StateDuplicate.IsGap())
	assert.False(t, StateNoPredictionOK.IsGap())
	assert.False(t, StatePredictedInputsOK.IsGap())
	assert.False(t, StatePredictedInputsMismatch.IsGap())
}

func TestReconcileIgnoresDuplicate(t *testing.T) {
	c, _ := newTestController()
	c.LocalTick(emptyInput())
	c.Reconcile(1, emptyInput())

	before := c.ConfirmedWorld().Clone()
	action := c.Reconcile(1, emptyInput())

	assert.Equal(t, StateDuplicate, action.State)
	assert.False(t, action.Advanced)
	assert.True(t, c.ConfirmedWorld().Equal(before))
}

func TestLocalTickAdvancesPredictedIndexAndFrame(t *testing.T) {
	c, _ := newTestController()

	c.LocalTick(emptyInput())
	c.LocalTick(emptyInput())
	c.LocalTick(emptyInput())

	assert.Equal(t, uint64(3), c.PredictedFrame())
	assert.Equal(t, uint64(4), c.PredictedIndex())
}
