package cli

import (
	"bytes"
	"flag"
	"fmt"
	"reflect"
)

type repeatedFlag struct {
	// maker returns an unset Getter for each occurrence of the flag.
	maker func() flag.Getter
	// out points at the slice that collects each Getter's Get() value.
	out interface{}
	// getters were each Set once without error.
	getters []flag.Getter
}

// Repeated collects every occurrence of a flag into the slice at out. Each
// occurrence is Set on a fresh Getter from maker, and its Get() value is
// appended; out must be a pointer to a slice of that value's type, such as
// *[]dcmd.Argument for ArgumentFlag.
//
// Example:
//
//	args := []dcmd.Argument{}
//	flag.Var(Repeated(ArgumentFlag, &args), "arg", "Declare an argument as `name:type[:default]`. Pass more than once.")
//	flag.Parse()
func Repeated(maker func() flag.Getter, out interface{}) flag.Getter {
	return &repeatedFlag{maker, out, []flag.Getter{}}
}

func (rf *repeatedFlag) Get() interface{} {
	return rf.out
}

func (rf *repeatedFlag) Set(next string) error {
	newval := rf.maker()
	err := newval.Set(next)
	if err != nil {
		return err
	}

	outval := reflect.ValueOf(rf.out)
	toAppend := reflect.ValueOf(newval.Get())
	if want := reflect.PtrTo(reflect.SliceOf(toAppend.Type())); outval.Type() != want {
		return fmt.Errorf("repeated flag collects into %v, need %v", outval.Type(), want)
	}
	outval.Elem().Set(reflect.Append(outval.Elem(), toAppend))
	rf.getters = append(rf.getters, newval)
	return nil
}

// String joins the collected values with spaces.
func (rf *repeatedFlag) String() string {
	if rf == nil || len(rf.getters) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i, v := range rf.getters {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(v.String())
	}
	return buf.String()
}

type maxFlag struct {
	max int
	flag.Getter
	count int
}

// Max allows at most n calls to getter's Set; later calls fail without
// reaching getter. It bounds how many arguments a Repeated flag declares.
//
// Example:
//
//	args := []dcmd.Argument{}
//	val := Max(16, Repeated(ArgumentFlag, &args))
//	flag.Var(val, "arg", "Declare an argument. Max 16 arguments.")
func Max(n int, getter flag.Getter) flag.Getter {
	return &maxFlag{n, getter, 0}
}

func (v *maxFlag) Set(s string) error {
	if v.count == v.max {
		return fmt.Errorf("at most %d values allowed", v.max)
	}
	v.count++
	return v.Getter.Set(s)
}

func (v *maxFlag) String() string {
	if v == nil || v.Getter == nil {
		return ""
	}
	return v.Getter.String()
}
