package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/justjake/go-dcmd/dcmd"
)

// Description describes an entity in the CLI
type Description struct {
	// Name of this thing
	Name string
	// Short, one-sentence description
	Short string
	// Longer, multi-line description
	Long string
}

// Doc outputs the documentation for this description
func (desc *Description) Doc(out io.Writer) {
	fmt.Fprintf(out, "%s - %s\n", desc.Name, desc.Short)
	if desc.Long != "" {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, desc.Long)
	}
}

// Usage documents a diagnostic command and the arguments it accepts.
type Usage struct {
	Description
	Args []dcmd.Argument
}

func (u *Usage) namePadding() int {
	maxlen := 0
	for _, a := range u.Args {
		if maxlen < len(a.Name) {
			maxlen = len(a.Name)
		}
	}
	return maxlen
}

func (u *Usage) shortFormat() string {
	l := u.namePadding()
	return fmt.Sprintf("  %%-%ds    %%s\n", l)
}

// summary is the one-line description of an argument shown by Overview.
func summary(a *dcmd.Argument) string {
	notes := []string{a.Type.String()}
	if a.Mandatory {
		notes = append(notes, "mandatory")
	}
	if a.Default != "" {
		notes = append(notes, "default "+a.Default)
	}
	s := "(" + strings.Join(notes, ", ") + ")"
	if a.Description != "" {
		s = a.Description + " " + s
	}
	return s
}

// Overview writes the command's description followed by one line per
// argument.
func (u *Usage) Overview(out io.Writer) {
	u.Doc(out)
	fmt.Fprintln(out, "")
	if len(u.Args) == 0 {
		fmt.Fprintln(out, "No arguments.")
		return
	}
	fmt.Fprintln(out, "Arguments:")
	format := u.shortFormat()
	for i := range u.Args {
		fmt.Fprintf(out, format, u.Args[i].Name, summary(&u.Args[i]))
	}
}

func (u *Usage) GetArg(name string) *dcmd.Argument {
	for i := range u.Args {
		if u.Args[i].Name == name {
			return &u.Args[i]
		}
	}
	return nil
}

// AboutArg writes everything known about one argument.
func (u *Usage) AboutArg(name string, out io.Writer) error {
	arg := u.GetArg(name)
	if arg == nil {
		return fmt.Errorf("Unknown argument %q", name)
	}

	desc := Description{Name: arg.Name, Short: arg.Description}
	if desc.Short == "" {
		desc.Short = "(no description)"
	}
	desc.Doc(out)

	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Type:      %s\n", arg.Type)
	fmt.Fprintf(out, "Mandatory: %t\n", arg.Mandatory)
	if arg.Default != "" {
		fmt.Fprintf(out, "Default:   %s\n", arg.Default)
	}
	if arg.Type.AllowsBare() {
		fmt.Fprintf(out, "Usage:     %s[=true|false]\n", arg.Name)
	} else {
		fmt.Fprintf(out, "Usage:     %s=<%s>\n", arg.Name, arg.Type)
	}
	return nil
}
