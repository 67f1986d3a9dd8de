package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/justjake/go-dcmd/dcmd"
)

type argumentValue dcmd.Argument

// Set parses a declaration of the form name:type[:default]. A "!" after the
// type marks the argument mandatory. Everything after the second colon is
// the default, so defaults may themselves contain colons.
func (a *argumentValue) Set(s string) error {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" {
		return fmt.Errorf("bad declaration %q: want name:type[:default]", s)
	}

	typeName := parts[1]
	mandatory := strings.HasSuffix(typeName, "!")
	t, err := dcmd.ParseType(strings.TrimSuffix(typeName, "!"))
	if err != nil {
		return err
	}

	*a = argumentValue{Name: parts[0], Type: t, Mandatory: mandatory}
	if len(parts) == 3 {
		a.Default = parts[2]
	}
	return nil
}

func (a *argumentValue) Get() interface{} { return dcmd.Argument(*a) }

func (a *argumentValue) String() string {
	if a == nil || a.Name == "" {
		return ""
	}
	s := a.Name + ":" + a.Type.String()
	if a.Mandatory {
		s += "!"
	}
	if a.Default != "" {
		s += ":" + a.Default
	}
	return s
}

// ArgumentFlag returns a flag value holding one dcmd.Argument declaration.
// Its Get method returns a dcmd.Argument.
func ArgumentFlag() flag.Getter {
	return &argumentValue{}
}
