// Package input defines the wire-level per-tick input types shared by the
// simulation, the prediction controller, and the transport codec.
package input

// Direction is the 8-way movement input plus "no movement".
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// PlayerID identifies a player within a room.
type PlayerID uint32

// FrameData is one player's input for a single simulation tick (spec §6).
type FrameData struct {
	PlayerID  PlayerID
	Direction Direction
	IsFire    bool
	FireX     int64 // raw Fix64 representation of the fire target X
	FireY     int64 // raw Fix64 representation of the fire target Y
	IsToggle  bool
}

// Equal compares two FrameData values element-wise, respecting the field
// order spec §4.5 requires for input comparison during reconciliation.
func (f FrameData) Equal(o FrameData) bool {
	return f.PlayerID == o.PlayerID &&
		f.Direction == o.Direction &&
		f.IsFire == o.IsFire &&
		f.FireX == o.FireX &&
		f.FireY == o.FireY &&
		f.IsToggle == o.IsToggle
}

// Frame is the ordered list of per-player inputs for one simulation tick.
type Frame []FrameData

// Equal compares two Frames element-wise and in order (spec §4.5: "Input
// comparison must compare lists element-wise, respecting order").
func Equal(a, b Frame) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// DirectionDeltas maps a Direction to its unscaled 8-way integer step
// (-1, 0 or 1 on each axis). The √2/2 diagonal scaling of spec §4.3
// PlayerMoveSystem is not applied here; components.DirectionUnitVector wraps
// this table in Fix64 and applies it for the movement system.
var DirectionDeltas = map[Direction][2]int{
	DirNone:      {0, 0},
	DirUp:        {0, -1},
	DirDown:      {0, 1},
	DirLeft:      {-1, 0},
	DirRight:     {1, 0},
	DirUpLeft:    {-1, -1},
	DirUpRight:   {1, -1},
	DirDownLeft:  {-1, 1},
	DirDownRight: {1, 1},
}
