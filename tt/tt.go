// Package tt supports table-driven tests.
package tt

import (
	"fmt"
	"reflect"
	"strings"
)

// T is the interface for accessing testing.T.
type T interface {
	Errorf(format string, args ...interface{})
}

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and added
// to a test table using the Rets method.
type Case struct {
	args         []interface{}
	retsMatchers [][]interface{}
}

// Args returns a new Case with the given arguments.
func Args(args ...interface{}) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. It may be called multiple times,
// requiring the return values to match all of the given values.
func (c *Case) Rets(matchers ...interface{}) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    interface{}
	argsFmt string
	retsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body interface{}) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages,
// and returns fn itself.
func (fn *FnToTest) ArgsFmt(format string) *FnToTest {
	fn.argsFmt = format
	return fn
}

// RetsFmt sets the string for formatting return values in test error
// messages, and returns fn itself.
func (fn *FnToTest) RetsFmt(format string) *FnToTest {
	fn.retsFmt = format
	return fn
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue interface{}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(value RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var args string
				if fn.argsFmt == "" {
					args = sprintArgs(test.args...)
				} else {
					args = fmt.Sprintf(fn.argsFmt, test.args...)
				}
				var diff string
				if fn.retsFmt == "" {
					diff = fmt.Sprintf("(%s), want (%s)",
						sprintArgs(rets...), sprintArgs(retsMatcher...))
				} else {
					shown := fmt.Sprintf(fn.retsFmt, rets...)
					wanted := fmt.Sprintf(fn.retsFmt, retsMatcher...)
					diff = fmt.Sprintf("%s, want %s", shown, wanted)
				}
				t.Errorf("%s(%s) -> %s", fn.name, args, diff)
			}
		}
	}
}

func match(matchers, actual []interface{}) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a interface{}) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return reflect.DeepEqual(m, a)
}

func sprintArgs(args ...interface{}) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

func call(body interface{}, args []interface{}) []interface{} {
	bodyValue := reflect.ValueOf(body)
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is invalid; use the zero value of the
			// parameter type instead.
			argValues[i] = reflect.Zero(argType(bodyValue.Type(), i))
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	rets := bodyValue.Call(argValues)
	retValues := make([]interface{}, len(rets))
	for i, ret := range rets {
		retValues[i] = ret.Interface()
	}
	return retValues
}

func argType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
