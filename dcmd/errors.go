package dcmd

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error caused by the contents of a
// command line. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrBadSpec is returned when the declared arguments themselves are unusable,
// for example when two of them share a name.
var ErrBadSpec = errors.New("bad argument declaration")

// InvalidArgumentError describes a command line that could not be parsed.
type InvalidArgumentError struct {
	// Name of the argument, if one could be determined.
	Name string
	// Raw value as it appeared on the command line.
	Value string
	// Reason is a short, lower-case explanation.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	switch {
	case e.Name == "" && e.Value == "":
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	case e.Name == "":
		return fmt.Sprintf("invalid value %q: %s", e.Value, e.Reason)
	case e.Value == "":
		return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
	default:
		return fmt.Sprintf("invalid value %q for argument %q: %s", e.Value, e.Name, e.Reason)
	}
}

// Is makes errors.Is(err, ErrInvalidArgument) true.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(name, value, format string, v ...interface{}) error {
	return &InvalidArgumentError{Name: name, Value: value, Reason: fmt.Sprintf(format, v...)}
}

// withName fills in the argument name on an error produced by Type.Normalize,
// which does not know which argument it is parsing.
func withName(err error, name string) error {
	var iae *InvalidArgumentError
	if errors.As(err, &iae) && iae.Name == "" {
		copied := *iae
		copied.Name = name
		return &copied
	}
	return err
}
