package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShift      = errors.New("invalid shift")
	ErrForbiddenShift    = fmt.Errorf("%w: reverses the previous shift", ErrInvalidShift)
	ErrUnreachableTarget = errors.New("unreachable target")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrInvalidCoord      = errors.New("invalid coordinate")
	ErrInvalidBoard      = errors.New("invalid board")
)
