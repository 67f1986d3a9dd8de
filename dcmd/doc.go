/*
Package dcmd parses the argument lines of diagnostic commands. A command
declares its arguments as a slice of Argument, each with a name and a Type.
Parse checks a line such as "interval=5s size=64m verbose" against those
declarations and returns every value in a canonical string form.

# Argument Types

	boolean     true or false; a bare name or an empty value means true
	jlong       a signed decimal integer
	nanotime    a number with a time unit, normalized to nanoseconds
	memorysize  a number with an optional size unit, normalized to bytes
	string      any text, kept as is

Time units are ns, us, ms, s, m, h and d. Only the value 0 may be written
without a unit. Size units are b, k, m and g (in either case) and are powers
of 1024; a number without a unit counts bytes.

All numbers must fit in an int64 after scaling. Signs other than a leading
"-" on a jlong are rejected, as are units on a jlong.

# Command Lines

A command line is a list of "name" or "name=value" tokens. By default the
tokens are separated by whitespace. A value that starts with a single or
double quote runs to the matching quote, so it may hold whitespace:

	message="hello world" path=C:\tmp\dump verbose

Quotes elsewhere in a value and backslashes are kept as they are. A Parser
with a different Separator, such as ',', splits on that rune instead, with
the same quoting.

An empty line is valid and yields only defaults. A name that is not
declared is an error, unless the Parser is Lenient. A name given twice is
always an error.

# Defaults

When an argument does not appear on the line, its Default is reported
unchanged. It is not checked against the argument's Type. An absent argument
with no default is left out of the result, or causes an error if it is
Mandatory.

# Errors

Problems with the line return an error matching ErrInvalidArgument, usually
an *InvalidArgumentError. Problems with the declarations return an error
matching ErrBadSpec.

# Structs

ArgumentsOf, Decode and Unmarshal declare arguments from struct fields and
store parsed values back into them:

	var opts struct {
		Interval time.Duration `default:"1s"`
		Size     int64         `type:"memorysize"`
		Verbose  bool
	}
	err := dcmd.Unmarshal("interval=5s size=64m verbose", &opts)
*/
package dcmd
