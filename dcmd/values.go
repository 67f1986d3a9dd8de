package dcmd

import (
	"fmt"
	"strconv"
	"time"
)

// Value is one parsed argument.
type Value struct {
	Name  string
	Value string
}

// Values holds the result of a parse, in declaration order.
type Values []Value

// Lookup returns the value for name and true if it is present, or an empty
// string and false if it is not.
func (vs Values) Lookup(name string) (val string, found bool) {
	for _, v := range vs {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Get returns the value for name. If name is absent, Get panics unless a
// default value is given, in which case it returns the default.
func (vs Values) Get(name string, defaultValue ...string) string {
	if val, found := vs.Lookup(name); found {
		return val
	}
	if len(defaultValue) != 1 {
		panic(fmt.Errorf("Argument not present: %s", name))
	}
	return defaultValue[0]
}

// Map copies the values into a map keyed by name.
func (vs Values) Map() map[string]string {
	m := make(map[string]string, len(vs))
	for _, v := range vs {
		m[v.Name] = v.Value
	}
	return m
}

func (vs Values) lookupAs(name string, t Type) (string, error) {
	val, found := vs.Lookup(name)
	if !found {
		return "", fmt.Errorf("argument %q not present", name)
	}
	// Defaults are stored unvalidated, so read them through the type again.
	normalized, err := t.Normalize(val)
	if err != nil {
		return "", withName(err, name)
	}
	return normalized, nil
}

// Bool reads a boolean value.
func (vs Values) Bool(name string) (bool, error) {
	val, err := vs.lookupAs(name, Boolean)
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

// Int64 reads a jlong value.
func (vs Values) Int64(name string) (int64, error) {
	val, err := vs.lookupAs(name, JLong)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Duration reads a nanotime value. Normalized nanotime values are plain
// nanosecond counts, so both "1500000" and "1500us" are accepted here.
func (vs Values) Duration(name string) (time.Duration, error) {
	val, found := vs.Lookup(name)
	if !found {
		return 0, fmt.Errorf("argument %q not present", name)
	}
	if val == "" || leadingDigits(val) != len(val) {
		normalized, err := NanoTime.Normalize(val)
		if err != nil {
			return 0, withName(err, name)
		}
		val = normalized
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, invalid(name, val, "value out of range")
	}
	return time.Duration(n), nil
}

// Bytes reads a memorysize value as a byte count.
func (vs Values) Bytes(name string) (int64, error) {
	val, err := vs.lookupAs(name, MemorySize)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}
