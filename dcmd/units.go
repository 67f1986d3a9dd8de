package dcmd

import (
	"math"
	"strconv"
	"strings"
)

type unitTable struct {
	// factors maps a suffix to its multiplier.
	factors map[string]int64
	// foldCase matches suffixes without regard to ASCII case.
	foldCase bool
	// what is used in error messages, e.g. "time unit".
	what string
	// accepted lists the suffixes for error messages.
	accepted string
}

var nanoUnits = unitTable{
	factors: map[string]int64{
		"ns": 1,
		"us": 1000,
		"ms": 1000 * 1000,
		"s":  1000 * 1000 * 1000,
		"m":  60 * 1000 * 1000 * 1000,
		"h":  60 * 60 * 1000 * 1000 * 1000,
		"d":  24 * 60 * 60 * 1000 * 1000 * 1000,
	},
	what:     "time unit",
	accepted: "ns, us, ms, s, m, h, d",
}

var memoryUnits = unitTable{
	factors: map[string]int64{
		"b": 1,
		"k": 1024,
		"m": 1024 * 1024,
		"g": 1024 * 1024 * 1024,
	},
	foldCase: true,
	what:     "memory unit",
	accepted: "b, k, m, g",
}

func leadingDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// parseScaled reads a non-negative decimal number followed by a unit from
// units and returns number*factor. A number without a unit is accepted when
// unitOptional is set; otherwise only the literal "0" may omit it.
func parseScaled(raw string, units unitTable, unitOptional bool) (int64, error) {
	end := leadingDigits(raw)
	if end == 0 {
		return 0, invalid("", raw, "expected a number followed by a %s (%s)", units.what, units.accepted)
	}
	digits, suffix := raw[:end], raw[end:]

	factor := int64(1)
	switch {
	case suffix == "" && (unitOptional || raw == "0"):
	case suffix == "":
		return 0, invalid("", raw, "missing %s (%s)", units.what, units.accepted)
	default:
		key := suffix
		if units.foldCase {
			key = strings.ToLower(key)
		}
		f, ok := units.factors[key]
		if !ok {
			return 0, invalid("", raw, "unknown %s %q (expected one of %s)", units.what, suffix, units.accepted)
		}
		factor = f
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > math.MaxInt64/factor {
		return 0, invalid("", raw, "value out of range")
	}
	return n * factor, nil
}
