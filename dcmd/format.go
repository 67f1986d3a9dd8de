package dcmd

import (
	"strings"
	"unicode"
)

// String renders the values as a command line of name=value tokens that the
// default Parser splits back into the same tokens. Names and values holding
// whitespace, or starting with a quote, are wrapped in whichever quote
// character they do not contain. A value with whitespace and both kinds of
// quote has no such form; it is rendered in double quotes and will not read
// back unchanged.
func (vs Values) String() string {
	tokens := make([]string, len(vs))
	for i, v := range vs {
		tokens[i] = v.String()
	}
	return strings.Join(tokens, " ")
}

func (v Value) String() string {
	return quoteWord(v.Name) + "=" + quoteWord(v.Value)
}

func quoteWord(s string) string {
	if s == "" {
		return s
	}
	if s[0] != '"' && s[0] != '\'' && strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	if !strings.ContainsRune(s, '\'') {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}
