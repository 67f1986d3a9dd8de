package dcmd

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the kind of value an argument accepts. The set of types is closed;
// every switch over a Type in this package handles all of them.
type Type int

// The argument types.
const (
	Boolean Type = iota
	JLong
	NanoTime
	MemorySize
	String
)

var typeNames = [...]string{
	Boolean:    "boolean",
	JLong:      "jlong",
	NanoTime:   "nanotime",
	MemorySize: "memorysize",
	String:     "string",
}

func (t Type) valid() bool {
	return t >= Boolean && t <= String
}

func (t Type) String() string {
	if !t.valid() {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// ParseType returns the Type named by s, ignoring case.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown type %q", ErrBadSpec, s)
}

// AllowsBare reports whether an argument of this type may appear on a command
// line as a bare name, with no "=value" part.
func (t Type) AllowsBare() bool {
	return t == Boolean
}

// Normalize parses a single literal of this type and returns its canonical
// string form. Numbers with units are converted to nanoseconds or bytes.
//
// The returned error matches ErrInvalidArgument. It carries the raw value but
// no argument name.
func (t Type) Normalize(raw string) (string, error) {
	switch t {
	case Boolean:
		return normalizeBool(raw)
	case JLong:
		n, err := parseJLong(raw)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case NanoTime:
		n, err := parseScaled(raw, nanoUnits, false)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case MemorySize:
		n, err := parseScaled(raw, memoryUnits, true)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case String:
		return raw, nil
	}
	return "", fmt.Errorf("%w: %v", ErrBadSpec, t)
}

// normalizeBool accepts true or false in any case. An empty value means
// true, as the bare name does.
func normalizeBool(raw string) (string, error) {
	switch {
	case raw == "", strings.EqualFold(raw, "true"):
		return "true", nil
	case strings.EqualFold(raw, "false"):
		return "false", nil
	}
	return "", invalid("", raw, "expected true or false")
}

func parseJLong(raw string) (int64, error) {
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" {
		return 0, invalid("", raw, "expected an integer")
	}
	if end := leadingDigits(digits); end != len(digits) {
		return 0, invalid("", raw, "unexpected %q after integer", digits[end:])
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("", raw, "integer out of range")
	}
	return n, nil
}
