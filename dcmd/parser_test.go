package dcmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func one(t Type, def string) []Argument {
	return []Argument{{Name: "name", Description: "desc", Type: t, Default: def}}
}

func parseOne(t *testing.T, line string, args []Argument) string {
	t.Helper()
	values, err := Parse(line, args)
	require.NoError(t, err, "line %q", line)
	val, found := values.Lookup("name")
	require.True(t, found, "name not found as a parsed argument of %q", line)
	return val
}

func assertInvalid(t *testing.T, line string, args []Argument) {
	t.Helper()
	values, err := Parse(line, args)
	assert.Nil(t, values, "line %q", line)
	if assert.Error(t, err, "parser accepted %q", line) {
		assert.True(t, errors.Is(err, ErrInvalidArgument), "line %q: %v", line, err)
	}
}

func TestParseNanoTime(t *testing.T) {
	args := one(NanoTime, "0")
	cases := []struct {
		in  string
		out string
	}{
		{"name=7ns", "7"},
		{"name=7us", "7000"},
		{"name=7ms", "7000000"},
		{"name=7s", "7000000000"},
		{"name=7m", "420000000000"},
		{"name=7h", "25200000000000"},
		{"name=7d", "604800000000000"},
		{"name=0", "0"},
		{"name=0s", "0"},
		{"name=007ms", "7000000"},
		{"", "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, parseOne(t, c.in, args), "Parse(%q)", c.in)
	}

	for _, bad := range []string{
		"name=7xs",
		"name=7mms",
		"name=7f",
		"name=7",
		"name=00",
		"name=-7s",
		"name=ms",
		"name=7MS",
		"name=",
		"name",
		"name=106752d",
	} {
		assertInvalid(t, bad, args)
	}
}

func TestParseJLong(t *testing.T) {
	args := one(JLong, "0")
	cases := []struct {
		in  string
		out string
	}{
		{"name=10", "10"},
		{"name=-5", "-5"},
		{"name=0", "0"},
		{"name=-0", "0"},
		{"name=0010", "10"},
		{"name=9223372036854775807", "9223372036854775807"},
		{"name=-9223372036854775808", "-9223372036854775808"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, parseOne(t, c.in, args), "Parse(%q)", c.in)
	}

	for _, bad := range []string{
		"name=12m",
		"name=+5",
		"name=1_000",
		"name=-",
		"name=abc",
		"name=",
		"name",
		"name=9223372036854775808",
	} {
		assertInvalid(t, bad, args)
	}
}

func TestParseBoolean(t *testing.T) {
	args := one(Boolean, "false")
	cases := []struct {
		in  string
		out string
	}{
		{"name=true", "true"},
		{"name=false", "false"},
		{"name=TRUE", "true"},
		{"name", "true"},
		{"name=", "true"},
		{"", "false"},
		{"   ", "false"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, parseOne(t, c.in, args), "Parse(%q)", c.in)
	}

	for _, bad := range []string{"name=yes", "name=1", "name=truex"} {
		assertInvalid(t, bad, args)
	}
}

func TestParseMemorySize(t *testing.T) {
	args := one(MemorySize, "1024")
	cases := []struct {
		in  string
		out string
	}{
		{"name=7b", "7"},
		{"name=7k", "7168"},
		{"name=7m", "7340032"},
		{"name=7g", "7516192768"},
		{"name=7K", "7168"},
		{"name=7G", "7516192768"},
		{"name=7", "7"},
		{"", "1024"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, parseOne(t, c.in, args), "Parse(%q)", c.in)
	}

	for _, bad := range []string{
		"name=7gg",
		"name=7t",
		"name=-7k",
		"name=k",
		"name=",
		"name",
		"name=8589934592g",
	} {
		assertInvalid(t, bad, args)
	}
}

func TestParseString(t *testing.T) {
	args := one(String, "none")
	assert.Equal(t, "hello", parseOne(t, "name=hello", args))
	assert.Equal(t, "a=b", parseOne(t, "name=a=b", args))
	assert.Equal(t, "", parseOne(t, "name=", args))
	assert.Equal(t, "hello world", parseOne(t, `name="hello world"`, args))
	assert.Equal(t, "none", parseOne(t, "", args))
	assertInvalid(t, "name", args)

	cases := []struct {
		in  string
		out string
	}{
		{`name=C:\tmp\x`, `C:\tmp\x`},
		{`name=a"b"c`, `a"b"c`},
		{`name=it's`, `it's`},
		{`name=\"x\"`, `\"x\"`},
		{`name='say "hi" now'`, `say "hi" now`},
		{`name="it's here"`, `it's here`},
		{`name=""`, ``},
		{`name=' padded '`, ` padded `},
		{`name='a b'c`, `a bc`},
		{`'name'=x`, `x`},
		{"\tname=tab\t", "tab"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, parseOne(t, c.in, args), "Parse(%q)", c.in)
	}
}

func TestDefaultsAreNotValidated(t *testing.T) {
	assert.Equal(t, "soon", parseOne(t, "", one(NanoTime, "soon")))
	assert.Equal(t, "1k", parseOne(t, "", one(MemorySize, "1k")))
}

func TestParseMultipleArguments(t *testing.T) {
	args := []Argument{
		{Name: "filename", Type: String, Mandatory: true},
		{Name: "all", Type: Boolean, Default: "false"},
		{Name: "interval", Type: NanoTime, Default: "0"},
		{Name: "limit", Type: MemorySize},
		{Name: "depth", Type: JLong},
	}

	values, err := Parse(`interval=10ms filename='/tmp/heap dump.hprof' all`, args)
	require.NoError(t, err)
	assert.Equal(t, Values{
		{"filename", "/tmp/heap dump.hprof"},
		{"all", "true"},
		{"interval", "10000000"},
	}, values)

	values, err = Parse("filename=x depth=-3 limit=2k", args)
	require.NoError(t, err)
	assert.Equal(t, Values{
		{"filename", "x"},
		{"all", "false"},
		{"interval", "0"},
		{"limit", "2048"},
		{"depth", "-3"},
	}, values)
}

func TestParseMandatory(t *testing.T) {
	args := []Argument{{Name: "filename", Type: String, Mandatory: true}}
	_, err := Parse("", args)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, `invalid argument "filename": mandatory argument missing`)

	withDefault := []Argument{{Name: "filename", Type: String, Mandatory: true, Default: "out.txt"}}
	values, err := Parse("", withDefault)
	require.NoError(t, err)
	assert.Equal(t, Values{{"filename", "out.txt"}}, values)
}

func TestParseUnknownAndDuplicate(t *testing.T) {
	args := one(JLong, "0")

	_, err := Parse("other=1", args)
	assert.EqualError(t, err, `invalid argument "other": unknown argument`)

	lenient := &Parser{Lenient: true}
	values, err := lenient.Parse("other=1 name=2", args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"name", "2"}}, values)

	_, err = lenient.Parse("name=1 name=2", args)
	assert.EqualError(t, err, `invalid argument "name": given more than once`)

	_, err = Parse("Name=1", args)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "names are case-sensitive")

	_, err = Parse("=1", args)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("name=7xs", one(NanoTime, "0"))
	assert.EqualError(t, err, `invalid value "7xs" for argument "name": unknown time unit "xs" (expected one of ns, us, ms, s, m, h, d)`)

	_, err = Parse("name=7", one(NanoTime, "0"))
	assert.EqualError(t, err, `invalid value "7" for argument "name": missing time unit (ns, us, ms, s, m, h, d)`)

	_, err = Parse("name", one(JLong, "0"))
	assert.EqualError(t, err, `invalid argument "name": jlong argument requires a value`)

	var iae *InvalidArgumentError
	require.True(t, errors.As(err, &iae))
	assert.Equal(t, "name", iae.Name)
}

func TestParseSeparator(t *testing.T) {
	args := []Argument{
		{Name: "a", Type: JLong},
		{Name: "b", Type: String},
		{Name: "c", Type: Boolean},
	}
	p := &Parser{Separator: ','}

	values, err := p.Parse(`a=1, b="x,y" ,c`, args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"a", "1"}, {"b", "x,y"}, {"c", "true"}}, values)

	values, err = p.Parse("a=1,,", args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"a", "1"}}, values)

	_, err = p.Parse(`b="x`, args)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "%v", err)

	values, err = p.Parse(`b='x, y' ,a=2`, args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"a", "2"}, {"b", "x, y"}}, values)

	values, err = p.Parse(`b=" x " , a=3`, args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"a", "3"}, {"b", " x "}}, values)

	values, err = p.Parse(`b=it's \n`, args)
	require.NoError(t, err)
	assert.Equal(t, Values{{"b", `it's \n`}}, values)

	bad := &Parser{Separator: '='}
	_, err = bad.Parse("a=1", args)
	assert.True(t, errors.Is(err, ErrBadSpec), "%v", err)
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse(`name='abc`, one(String, ""))
	assert.True(t, errors.Is(err, ErrInvalidArgument), "%v", err)
}

func TestParseBadDeclarations(t *testing.T) {
	cases := [][]Argument{
		{{Name: "", Type: String}},
		{{Name: "a", Type: String}, {Name: "a", Type: JLong}},
		{{Name: "a", Type: Type(42)}},
	}
	for _, args := range cases {
		_, err := Parse("", args)
		assert.True(t, errors.Is(err, ErrBadSpec), "%#v: %v", args, err)
		assert.False(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestParseIdempotent(t *testing.T) {
	cases := []struct {
		typ Type
		in  string
	}{
		{JLong, "-0042"},
		{MemorySize, "3g"},
		{Boolean, "FALSE"},
		{NanoTime, "0"},
		{String, "x y"},
	}
	for _, c := range cases {
		args := one(c.typ, "")
		first := parseOne(t, Value{"name", c.in}.String(), args)
		second := parseOne(t, Value{"name", first}.String(), args)
		assert.Equal(t, first, second, "%v %q", c.typ, c.in)
	}
}
