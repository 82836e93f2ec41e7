package prediction

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/input"
)

// Action is what Reconcile decided to do, together with the classification
// that led to it — Mode A's actual behaviour collapses three states into one
// advance step, but callers (metrics, logs) still want to know which state
// fired (spec §8 scenarios 2/3 distinguish "confirm" from "mismatch").
type Action struct {
	State State

	// Advanced reports whether confirmed_world/predicted_world were
	// advanced as a result of this call.
	Advanced bool

	// RequestLossFrom is set, and must be submitted via the transport's
	// request_loss_from, only when State.IsGap(); it carries confirmed_frame
	// as spec §6 requires ("asks the server to resend frames strictly after
	// this").
	RequestLossFrom uint64
}

// Controller is the Mode A prediction/rollback controller from spec §4.5:
// double world, no history replay.
type Controller struct {
	pipeline *ecs.StateMachine

	confirmedWorld *ecs.World
	predictedWorld *ecs.World

	confirmedFrame uint64
	predictedFrame uint64
	predictedIndex uint64

	// predictedInputs holds every locally-predicted input not yet
	// reconciled, keyed by frame number, so Classify/Reconcile can compare
	// it against the server's authoritative input for the same frame.
	predictedInputs map[uint64]input.Frame
}

// NewController creates a controller whose confirmed and predicted worlds
// both start as clones of initialWorld at frame 0.
func NewController(pipeline *ecs.StateMachine, initialWorld *ecs.World) *Controller {
	return &Controller{
		pipeline:        pipeline,
		confirmedWorld:  initialWorld.Clone(),
		predictedWorld:  initialWorld.Clone(),
		confirmedFrame:  0,
		predictedFrame:  0,
		predictedIndex:  1,
		predictedInputs: make(map[uint64]input.Frame),
	}
}

// ConfirmedWorld returns the last server-confirmed world. Callers must not
// mutate it.
func (c *Controller) ConfirmedWorld() *ecs.World { return c.confirmedWorld }

// PredictedWorld is what the client renders from. Callers must not mutate
// it.
func (c *Controller) PredictedWorld() *ecs.World { return c.predictedWorld }

// ConfirmedFrame returns the largest server frame applied into ConfirmedWorld.
func (c *Controller) ConfirmedFrame() uint64 { return c.confirmedFrame }

// PredictedFrame returns the largest local tick advanced beyond ConfirmedFrame.
func (c *Controller) PredictedFrame() uint64 { return c.predictedFrame }

// PredictedIndex returns one more than the number of ticks predicted since
// the last confirmation: it starts at 1, is reset to 1 on every successful
// confirmation (spec §4.5), and each LocalTick adds one.
func (c *Controller) PredictedIndex() uint64 { return c.predictedIndex }

// LocalTick runs the pipeline on predicted_world with localInput, advancing
// predicted_frame by one and recording the input for later reconciliation.
// Returns the frame number just predicted.
func (c *Controller) LocalTick(localInput input.Frame) uint64 {
	c.pipeline.Step(c.predictedWorld, localInput)
	c.predictedFrame++
	c.predictedIndex++
	c.predictedInputs[c.predictedFrame] = localInput
	return c.predictedFrame
}

// Classify decides which of the six spec §4.5 states applies to a server
// frame n carrying serverInputs, without taking any action.
func (c *Controller) Classify(n uint64, serverInputs input.Frame) State {
	if n <= c.confirmedFrame {
		return StateDuplicate
	}
	predicted := c.predictedFrame > c.confirmedFrame
	gap := n > c.confirmedFrame+1

	if !predicted {
		if gap {
			return StateNoPredictionGap
		}
		return StateNoPredictionOK
	}
	if gap {
		return StatePredictedGap
	}
	if stored, ok := c.predictedInputs[n]; ok && input.Equal(stored, serverInputs) {
		return StatePredictedInputsOK
	}
	return StatePredictedInputsMismatch
}

// Reconcile classifies server frame n and performs Mode A's action for it.
//
// Mode A's action only has three shapes regardless of the six-way
// classification: ignore (Duplicate), request loss (either gap state), or
// advance (all three non-gap, non-duplicate states alike — NoPrediction+OK,
// Predicted+InputsOK, and Predicted+InputsMismatch all authoritatively
// re-simulate confirmed_world and reset predicted_world from it, since Mode
// A never replays only part of the predicted range). The returned State
// still distinguishes all six for diagnostics.
func (c *Controller) Reconcile(n uint64, serverInputs input.Frame) Action {
	state := c.Classify(n, serverInputs)

	switch state {
	case StateDuplicate:
		return Action{State: state}

	case StateNoPredictionGap, StatePredictedGap:
		return Action{State: state, RequestLossFrom: c.confirmedFrame}

	default: // StateNoPredictionOK, StatePredictedInputsOK, StatePredictedInputsMismatch
		c.pipeline.Step(c.confirmedWorld, serverInputs)
		c.confirmedFrame = n
		c.predictedWorld = c.confirmedWorld.Clone()
		c.predictedFrame = n
		c.predictedIndex = 1
		for frame := range c.predictedInputs {
			if frame <= n {
				delete(c.predictedInputs, frame)
			}
		}
		return Action{State: state, Advanced: true}
	}
}
