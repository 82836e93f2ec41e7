package ecs

import "fmt"

// ==============================================
// CoreError — error kinds recognised at the core boundary (spec §7)
// ==============================================

// ErrorKind enumerates the closed set of error kinds the core recognises.
type ErrorKind string

const (
	ErrMalformedMessage     ErrorKind = "MalformedMessage"
	ErrStreamDesynchronised ErrorKind = "StreamDesynchronised"
	ErrDuplicateFrame       ErrorKind = "DuplicateFrame"
	ErrFrameGap             ErrorKind = "FrameGap"
	ErrMissingComponent     ErrorKind = "MissingComponent"
	ErrInvalidEntity        ErrorKind = "InvalidEntity"
	ErrOverflowingBag       ErrorKind = "OverflowingBag"
	ErrDeterminismViolation ErrorKind = "DeterminismViolation"
)

// CoreError carries the context needed to act on a recognised error kind
// without ever propagating a live frame's failure back through the
// transport (spec §7).
type CoreError struct {
	Kind      ErrorKind
	Message   string
	Entity    EntityID
	Component ComponentType
	System    SystemType
	Frame     uint64
}

// Error implements the error interface.
func (e *CoreError) Error() string {
	switch {
	case e.Entity != InvalidEntityID && e.Component != "":
		return fmt.Sprintf("[%s] %s (entity=%d component=%s)", e.Kind, e.Message, e.Entity, e.Component)
	case e.Entity != InvalidEntityID:
		return fmt.Sprintf("[%s] %s (entity=%d)", e.Kind, e.Message, e.Entity)
	case e.Frame != 0:
		return fmt.Sprintf("[%s] %s (frame=%d)", e.Kind, e.Message, e.Frame)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
}

// NewMissingComponentError builds the error a System returns (and swallows)
// when it skips an entity missing an expected component.
func NewMissingComponentError(system SystemType, entity EntityID, component ComponentType) *CoreError {
	return &CoreError{
		Kind:      ErrMissingComponent,
		Message:   "entity is missing a required component",
		Entity:    entity,
		Component: component,
		System:    system,
	}
}

// NewInvalidEntityError builds the error returned when an operation
// references an entity absent from the World's entity set.
func NewInvalidEntityError(entity EntityID) *CoreError {
	return &CoreError{
		Kind:    ErrInvalidEntity,
		Message: "entity does not exist in this world",
		Entity:  entity,
	}
}

// NewDeterminismViolationError builds the one error kind the core treats as
// fatal. Only reachable by programmer error (spec §7); callers should panic
// with it rather than attempt recovery.
func NewDeterminismViolationError(message string) *CoreError {
	return &CoreError{
		Kind:    ErrDeterminismViolation,
		Message: message,
	}
}

// NewMalformedMessageError builds the error the transport codec returns when
// a frame's length prefix is impossibly large or its type tag is out of
// range. The caller's recovery is to drop the message and keep reading.
func NewMalformedMessageError(message string) *CoreError {
	return &CoreError{
		Kind:    ErrMalformedMessage,
		Message: message,
	}
}

// NewStreamDesynchronisedError builds the error the transport codec returns
// when it can no longer find a valid type tag at the expected offset. The
// caller's recovery is to disconnect; the stream cannot be trusted further.
func NewStreamDesynchronisedError(message string) *CoreError {
	return &CoreError{
		Kind:    ErrStreamDesynchronised,
		Message: message,
	}
}

// NewDuplicateFrameError builds the error the prediction controller reports
// (for diagnostics only — recovery is a silent drop) when a server frame
// number is not greater than confirmed_frame.
func NewDuplicateFrameError(frame uint64) *CoreError {
	return &CoreError{
		Kind:    ErrDuplicateFrame,
		Message: "server frame is not newer than the confirmed frame",
		Frame:   frame,
	}
}

// NewFrameGapError builds the error the prediction controller reports when a
// server frame arrives after one or more frames have gone missing. Recovery
// is to request FrameLoss from confirmed_frame; the core does not advance.
func NewFrameGapError(frame uint64) *CoreError {
	return &CoreError{
		Kind:    ErrFrameGap,
		Message: "server frame arrived after a gap in frame numbers",
		Frame:   frame,
	}
}
