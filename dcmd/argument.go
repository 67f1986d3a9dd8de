package dcmd

import "fmt"

// Argument declares one argument a command accepts.
type Argument struct {
	// Name as written on the command line. Matched exactly.
	Name string
	// Description is shown in help output.
	Description string
	// Type of the value.
	Type Type
	// Mandatory arguments with an empty Default must appear on the command
	// line.
	Mandatory bool
	// Default is reported verbatim, without validation, when the argument is
	// absent from the command line.
	Default string
}

// hasDefault reports whether an absent argument still produces a value.
func (a *Argument) hasDefault() bool {
	return a.Default != ""
}

// checkArguments validates a set of declarations and indexes them by name.
func checkArguments(args []Argument) (map[string]int, error) {
	index := make(map[string]int, len(args))
	for i, a := range args {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: argument %d has no name", ErrBadSpec, i)
		}
		if !a.Type.valid() {
			return nil, fmt.Errorf("%w: argument %q has invalid type %v", ErrBadSpec, a.Name, a.Type)
		}
		if _, dup := index[a.Name]; dup {
			return nil, fmt.Errorf("%w: argument %q declared twice", ErrBadSpec, a.Name)
		}
		index[a.Name] = i
	}
	return index, nil
}
