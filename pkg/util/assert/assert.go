package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True errors if the given condition does not hold.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	} else {
		t.Errorf("condition does not hold")
	}

	t.FailNow()
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
		t.FailNow()
	}
}

// IsError errors unless err is non-nil and matches target (in the sense of
// errors.Is).
func IsError(t *testing.T, target, err error) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error %q, got none", target)
		t.FailNow()
	} else if !errors.Is(err, target) {
		t.Errorf("expected error %q, got %q", target, err)
		t.FailNow()
	}
}
