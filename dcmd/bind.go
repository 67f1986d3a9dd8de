package dcmd

import (
	"fmt"
	"reflect"
	"time"

	"github.com/iancoleman/strcase"
)

const (
	tagName      = "dcmd"
	tagType      = "type"
	tagDefault   = "default"
	tagHelp      = "help"
	tagMandatory = "mandatory"
)

var durationType = reflect.TypeOf(time.Duration(0))

type boundField struct {
	index int
	arg   Argument
}

// unwrap returns the struct that s points to.
func unwrap(s interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: need a non-nil pointer to a struct, got %T", ErrBadSpec, s)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: need a non-nil pointer to a struct, got %T", ErrBadSpec, s)
	}
	return v, nil
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// inferType picks the argument type for a field without a type tag.
func inferType(t reflect.Type) (Type, bool) {
	switch {
	case t == durationType:
		return NanoTime, true
	case t.Kind() == reflect.Bool:
		return Boolean, true
	case isInt(t.Kind()):
		return JLong, true
	case t.Kind() == reflect.String:
		return String, true
	}
	return 0, false
}

// fits reports whether a field of type ft can hold values of type t.
func fits(t Type, ft reflect.Type) bool {
	switch t {
	case Boolean:
		return ft.Kind() == reflect.Bool
	case JLong, NanoTime:
		return isInt(ft.Kind())
	case MemorySize:
		return isInt(ft.Kind()) || isUint(ft.Kind())
	case String:
		return ft.Kind() == reflect.String
	}
	return false
}

func analyzeStruct(v reflect.Value) ([]boundField, error) {
	typeInfo := v.Type()
	fields := []boundField{}

	for i := 0; i < typeInfo.NumField(); i++ {
		field := typeInfo.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name := field.Tag.Get(tagName)
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}

		arg := Argument{
			Name:        name,
			Description: field.Tag.Get(tagHelp),
			Default:     field.Tag.Get(tagDefault),
		}
		_, arg.Mandatory = field.Tag.Lookup(tagMandatory)

		if typeName, ok := field.Tag.Lookup(tagType); ok {
			t, err := ParseType(typeName)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			arg.Type = t
		} else {
			t, ok := inferType(field.Type)
			if !ok {
				return nil, fmt.Errorf("%w: field %s: %s not supported, maybe use a %s tag",
					ErrBadSpec, field.Name, field.Type, tagType)
			}
			arg.Type = t
		}

		if !fits(arg.Type, field.Type) {
			return nil, fmt.Errorf("%w: field %s: %s cannot hold a %s", ErrBadSpec, field.Name, field.Type, arg.Type)
		}

		fields = append(fields, boundField{index: i, arg: arg})
	}
	return fields, nil
}

// ArgumentsOf declares one argument per exported field of the struct that ptr
// points to.
//
// The argument name is taken from the "dcmd" tag, or derived from the field
// name in snake_case; a "dcmd" tag of "-" skips the field. The "type" tag
// names the argument type; without it the type is inferred from the field:
// bool is boolean, time.Duration is nanotime, other integers are jlong and
// string is string. The "default" and "help" tags fill in Default and
// Description, and the presence of a "mandatory" tag sets Mandatory.
//
//	type GCOptions struct {
//		Full     bool          `help:"Run a full collection"`
//		Pause    time.Duration `default:"0"`
//		MaxHeap  int64         `type:"memorysize" default:"64m"`
//		Filename string        `dcmd:"file" mandatory:""`
//	}
func ArgumentsOf(ptr interface{}) ([]Argument, error) {
	v, err := unwrap(ptr)
	if err != nil {
		return nil, err
	}
	fields, err := analyzeStruct(v)
	if err != nil {
		return nil, err
	}
	args := make([]Argument, len(fields))
	for i, f := range fields {
		args[i] = f.arg
	}
	return args, nil
}

// Decode stores values into the struct that ptr points to, using the field
// mapping described by ArgumentsOf. Fields whose argument is absent from
// values are left untouched.
func Decode(values Values, ptr interface{}) error {
	v, err := unwrap(ptr)
	if err != nil {
		return err
	}
	fields, err := analyzeStruct(v)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if _, found := values.Lookup(f.arg.Name); !found {
			continue
		}
		if err := decodeField(values, f.arg, v.Field(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func decodeField(values Values, arg Argument, field reflect.Value) error {
	var (
		n   int64
		err error
	)
	switch arg.Type {
	case Boolean:
		b, err := values.Bool(arg.Name)
		if err != nil {
			return err
		}
		field.SetBool(b)
		return nil
	case String:
		field.SetString(values.Get(arg.Name))
		return nil
	case JLong:
		n, err = values.Int64(arg.Name)
	case NanoTime:
		var d time.Duration
		d, err = values.Duration(arg.Name)
		n = int64(d)
	case MemorySize:
		n, err = values.Bytes(arg.Name)
	}
	if err != nil {
		return err
	}

	if isUint(field.Kind()) {
		if n < 0 || field.OverflowUint(uint64(n)) {
			return invalid(arg.Name, values.Get(arg.Name), "does not fit in %s", field.Type())
		}
		field.SetUint(uint64(n))
		return nil
	}
	if field.OverflowInt(n) {
		return invalid(arg.Name, values.Get(arg.Name), "does not fit in %s", field.Type())
	}
	field.SetInt(n)
	return nil
}

// Unmarshal parses line against the arguments declared by ptr's struct type
// and stores the result in it.
func Unmarshal(line string, ptr interface{}) error {
	args, err := ArgumentsOf(ptr)
	if err != nil {
		return err
	}
	values, err := Parse(line, args)
	if err != nil {
		return err
	}
	return Decode(values, ptr)
}
