package dcmd

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser turns a command line into normalized argument values. The zero
// value is a strict, whitespace-separated parser. A Parser holds no state
// between calls and may be shared between goroutines.
type Parser struct {
	// Lenient parsers ignore arguments that were not declared instead of
	// failing.
	Lenient bool
	// Separator between arguments. Zero or ' ' splits on any whitespace;
	// any other rune splits on that rune. Either way a name or a value may be
	// wrapped in single or double quotes to keep separators inside it.
	Separator rune
}

// Parse parses line against args using a strict, whitespace-separated
// Parser.
func Parse(line string, args []Argument) (Values, error) {
	var p Parser
	return p.Parse(line, args)
}

// Parse parses line against the declared args.
//
// The result holds, in declaration order, every argument that was given on
// the line plus every absent argument that has a default. Given values are
// normalized according to their Type; defaults are copied unchanged.
//
// Errors caused by the line match ErrInvalidArgument. Errors caused by args
// or by the Parser's configuration match ErrBadSpec. No values are returned
// with an error.
func (p *Parser) Parse(line string, args []Argument) (Values, error) {
	index, err := checkArguments(args)
	if err != nil {
		return nil, err
	}

	tokens, err := p.split(line)
	if err != nil {
		return nil, err
	}

	supplied := make(map[string]string, len(tokens))
	for _, token := range tokens {
		name, value, hasValue := strings.Cut(token, "=")
		if name == "" {
			return nil, invalid("", token, "missing argument name")
		}
		i, known := index[name]
		if !known {
			if p.Lenient {
				continue
			}
			return nil, invalid(name, "", "unknown argument")
		}
		if _, dup := supplied[name]; dup {
			return nil, invalid(name, "", "given more than once")
		}

		arg := &args[i]
		if !hasValue {
			if !arg.Type.AllowsBare() {
				return nil, invalid(name, "", "%s argument requires a value", arg.Type)
			}
			value = "true"
		}
		normalized, err := arg.Type.Normalize(value)
		if err != nil {
			return nil, withName(err, name)
		}
		supplied[name] = normalized
	}

	values := make(Values, 0, len(args))
	for i := range args {
		arg := &args[i]
		if v, ok := supplied[arg.Name]; ok {
			values = append(values, Value{Name: arg.Name, Value: v})
			continue
		}
		switch {
		case arg.hasDefault():
			values = append(values, Value{Name: arg.Name, Value: arg.Default})
		case arg.Mandatory:
			return nil, invalid(arg.Name, "", "mandatory argument missing")
		}
	}
	return values, nil
}

// split breaks line into "name" and "name=value" tokens.
func (p *Parser) split(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	if p.Separator == 0 || p.Separator == ' ' {
		return splitQuoted(line, unicode.IsSpace)
	}

	switch sep := p.Separator; {
	case sep == '"', sep == '\'', sep == '=', sep == utf8.RuneError, !utf8.ValidRune(sep):
		return nil, fmt.Errorf("%w: invalid separator %q", ErrBadSpec, sep)
	}
	return splitQuoted(line, func(r rune) bool { return r == p.Separator })
}

// splitQuoted splits line into tokens at runes matching isSep. A single or
// double quote opens a quoted section only at the start of a token or right
// after its first '='; the text up to the matching quote is taken literally,
// separators included, and the quotes are dropped. Quotes anywhere else and
// backslashes are ordinary characters. Unquoted whitespace around a token is
// dropped, as are empty tokens.
func splitQuoted(line string, isSep func(rune) bool) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quote  rune
		// quotable is set where a quote may open: at the start of a name or
		// of a value.
		quotable = true
		cut      bool
		// quoted is the length of cur when the last quote closed.
		quoted int
	)
	flush := func() {
		token := cur.String()
		token = token[:quoted] + strings.TrimRightFunc(token[quoted:], unicode.IsSpace)
		if token != "" {
			tokens = append(tokens, token)
		}
		cur.Reset()
		quotable, cut, quoted = true, false, 0
	}
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				quoted = cur.Len()
				continue
			}
			cur.WriteRune(r)
		case isSep(r):
			flush()
		case cur.Len() == 0 && unicode.IsSpace(r):
		case quotable && (r == '"' || r == '\''):
			quote = r
			quotable = false
		default:
			cur.WriteRune(r)
			quotable = r == '=' && !cut
			if r == '=' {
				cut = true
			}
		}
	}
	if quote != 0 {
		return nil, invalid("", "", "unterminated %c quote", quote)
	}
	flush()
	return tokens, nil
}
