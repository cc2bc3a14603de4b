package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed request, rejected before any engine call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineNotReady is returned by queries issued before a seed was applied.
	ErrEngineNotReady = errors.New("engine not ready: no seed applied")

	// ErrEngineFailure marks a bulk fill the engine reported as failed.
	ErrEngineFailure = errors.New("engine computation failed")

	// ErrContractViolation marks an engine result outside its documented range.
	ErrContractViolation = errors.New("engine contract violation")

	// ErrLookupMiss is returned when a structure does not exist in a version.
	ErrLookupMiss = errors.New("structure not available in version")

	// ErrIndexOutOfBounds is returned for cache reads outside the filled range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrBorrowed is returned when a generator is reseeded or closed while a
	// Cache or StrongholdSequence still refers to it.
	ErrBorrowed = errors.New("generator is borrowed")

	// ErrClosed is returned by every operation on a closed generator or cache.
	ErrClosed = errors.New("generator closed")
)

// Axis names the Range dimension a RangeError refers to.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisVolume
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "volume"
}

// RangeError reports a Range size the engine cannot accept.
type RangeError struct {
	Axis Axis
	Size uint64
}

func (e *RangeError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("range size %s is zero", e.Axis)
	}
	return fmt.Sprintf("range size %s is %d, too large", e.Axis, e.Size)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FillError carries the engine status of a failed bulk fill.
type FillError struct {
	Code int32
}

func (e *FillError) Error() string {
	return fmt.Sprintf("fill biomes: engine status %d", e.Code)
}

func (e *FillError) Is(target error) bool {
	return target == ErrEngineFailure
}

// ContractError carries the raw value an engine call returned outside its
// documented range.
type ContractError struct {
	Op  string
	Raw int32
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: unexpected engine result %d", e.Op, e.Raw)
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContractViolation
}
