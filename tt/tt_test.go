package tt

import (
	"fmt"
	"testing"
)

// testT implements the T interface and is used to verify the Test function's
// interaction with T.
type testT []string

func (t *testT) Errorf(format string, args ...interface{}) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// fn is the function under test.
func fn(x int, y int) (int, int) {
	return x + y, x - y
}

func TestTTPass(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("fn", fn).ArgsFmt("%d, %d").RetsFmt("(%d, %d)"),
		Table{Args(1, 10).Rets(11, -9)})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestTTFail(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("fn", fn).ArgsFmt("%d, %d").RetsFmt("(%d, %d)"),
		Table{Args(1, 10).Rets(11, -90)})
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should")
	case 1:
		if testT[0] != "fn(1, 10) -> (11, -9), want (11, -90)" {
			t.Errorf("Test wrote message %q, not wanted", testT[0])
		}
	default:
		t.Errorf("Test wrote too many error messages")
	}
}

func TestTTDefaultFmt(t *testing.T) {
	var testT testT
	Test(&testT, Fn("fn", fn), Table{Args(1, 10).Rets(0, 0)})
	if len(testT) != 1 {
		t.Fatalf("Test wrote %d messages, want 1", len(testT))
	}
	if testT[0] != "fn(1, 10) -> (11, -9), want (0, 0)" {
		t.Errorf("Test wrote message %q, not wanted", testT[0])
	}
}

type geMatcher int

func (m geMatcher) Match(v RetValue) bool {
	got, ok := v.(int)
	return ok && got >= int(m)
}

func TestTTMatcher(t *testing.T) {
	var testT testT
	Test(&testT, Fn("fn", fn), Table{
		Args(1, 10).Rets(geMatcher(10), Any),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when matcher should match")
	}
}

func TestTTNilArg(t *testing.T) {
	var testT testT
	isNil := func(v interface{}) bool { return v == nil }
	Test(&testT, Fn("isNil", isNil), Table{Args(nil).Rets(true)})
	if len(testT) > 0 {
		t.Errorf("Test errors on nil argument: %v", testT)
	}
}
