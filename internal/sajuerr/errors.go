// Package sajuerr defines the closed taxonomy of errors the saju engine
// reports (spec §7). Every error the core packages return is wrapped as a
// *Error so callers can switch on Kind instead of matching strings.
package sajuerr

import (
	"errors"
	"fmt"
)

// Kind is a closed enumeration of the failure taxonomy in §7.
type Kind int

const (
	// InputFormat covers malformed date, time, timezone, gender, or number input.
	InputFormat Kind = iota
	// InputRange covers out-of-range values: longitude, year_count, leap_month
	// combined with solar calendar, both longitude and location supplied, or
	// an unknown location key.
	InputRange
	// CalendarConflict covers a local wall-clock instant that does not exist
	// in the chosen timezone (spring-forward gap).
	CalendarConflict
	// LunisolarOutOfRange covers a lunar date outside the supported table.
	LunisolarOutOfRange
	// Astronomical covers a solar term not found for a requested year — a
	// contract violation in the astronomical engine, not a user condition.
	Astronomical
)

func (k Kind) String() string {
	switch k {
	case InputFormat:
		return "InputFormat"
	case InputRange:
		return "InputRange"
	case CalendarConflict:
		return "CalendarConflict"
	case LunisolarOutOfRange:
		return "LunisolarOutOfRange"
	case Astronomical:
		return "Astronomical"
	default:
		return "Unknown"
	}
}

// Error is a taxonomy-tagged error. It wraps an underlying cause when one
// exists so errors.Is/errors.As keep working through %w.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a *Error with no wrapped cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds a *Error with a formatted message and no wrapped cause.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a *Error that wraps an underlying cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// As extracts a *Error from err, if any is present in its chain. Callers can
// also use errors.As(err, &target) directly since *Error implements Unwrap.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
