// Package testutil provides shared helpers for movecheck tests: assertions
// built on go-cmp and constructors for boards and transcripts.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual compares got and want with cmp.Diff. Errors are compared
// with errors.Is semantics. Extra cmp options may be passed in opts.
func AssertEqual(t *testing.T, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, cmpopts.EquateErrors())
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails if err does not match target in the errors.Is sense.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		t.Errorf("%s%q should not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertBool fails if got differs from want.
func AssertBool(t *testing.T, got, want bool, msgAndArgs ...interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("%sgot = %v; want %v", prefix(msgAndArgs...), got, want)
	}
}

// prefix turns optional printf-style arguments into "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	var msg string
	if s, ok := msgAndArgs[0].(string); ok {
		msg = fmt.Sprintf(s, msgAndArgs[1:]...)
	} else {
		msg = fmt.Sprint(msgAndArgs[0])
	}
	if msg == "" {
		return ""
	}
	return msg + ": "
}
