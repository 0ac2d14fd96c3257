// Package tt supports table-driven tests with little boilerplate.
//
// A table is a list of cases built with Args(...).Rets(...); Test calls the
// function under test with each case's arguments and compares the return
// values with go-cmp.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table is a list of test cases.
type Table []*Case

// Case is one test case. Its setters return the receiver so that calls can
// be chained.
type Case struct {
	args []any
	rets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets sets the wanted return values and returns the receiver. Values that
// implement Matcher are matched with their Match method; all other values
// are compared with cmp.Equal.
func (c *Case) Rets(rets ...any) *Case {
	c.rets = rets
	return c
}

// FnToTest describes a function under test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnToTest with the given name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets a format string used to show arguments in failure messages.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// T is the subset of testing.TB used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Matcher wraps the Match method.
type Matcher interface {
	Match(RetValue) bool
}

// RetValue is the type of values passed to Matcher.Match, so that Matcher
// cannot be implemented accidentally.
type RetValue any

// Any matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// Test runs fn against all cases in tests.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if match(test.rets, rets) {
			continue
		}
		var args string
		if fn.argsFmt == "" {
			args = sprintArgs(test.args)
		} else {
			args = fmt.Sprintf(fn.argsFmt, test.args...)
		}
		t.Errorf("%s(%s) returns (-want +got):\n%s",
			fn.name, args, cmp.Diff(test.rets, rets))
	}
}

func match(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if m, ok := want[i].(Matcher); ok {
			if !m.Match(got[i]) {
				return false
			}
		} else if !cmp.Equal(want[i], got[i]) {
			return false
		}
	}
	return true
}

func sprintArgs(args []any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", fmt.Sprint(arg))
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	in := make([]reflect.Value, len(args))
	fnType := reflect.TypeOf(fn)
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(fnType.In(i))
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}
	out := reflect.ValueOf(fn).Call(in)
	rets := make([]any, len(out))
	for i, v := range out {
		rets[i] = v.Interface()
	}
	return rets
}
