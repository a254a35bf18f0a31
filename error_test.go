package sdl

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestErrorFromCode(t *testing.T) {
	restore := lastErrorText
	lastErrorText = func() string { return "something broke" }
	defer func() { lastErrorText = restore }()

	tests := []struct {
		name    string
		rc      int32
		wantErr bool
	}{
		{"negative is failure", -1, true},
		{"deep negative is failure", -42, true},
		{"zero is success", 0, false},
		{"positive is success", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromCode(tt.rc)
			if tt.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestErrorFromBool(t *testing.T) {
	restore := lastErrorText
	lastErrorText = func() string { return "" }
	defer func() { lastErrorText = restore }()

	if err := errorFromBool(True); err != nil {
		t.Errorf("True should succeed, got %v", err)
	}
	if err := errorFromBool(False); err == nil {
		t.Error("False should fail")
	}
}

func TestErrorIdentity(t *testing.T) {
	restore := lastErrorText
	lastErrorText = func() string { return "detail text" }
	defer func() { lastErrorText = restore }()

	err := errorFromCode(-1)
	var e Error
	if !errors.As(err, &e) {
		t.Fatalf("error is %T, want Error", err)
	}
	// The library's message is diagnostic only and never reaches the error
	// value.
	if got := err.Error(); got != (Error{}).Error() {
		t.Errorf("Error() = %q, want the fixed message", got)
	}
	if err != error(Error{}) {
		t.Error("all failures should compare equal")
	}
}

func TestFailLogsDiagnostic(t *testing.T) {
	restoreText := lastErrorText
	restoreLog := diagLog
	defer func() {
		lastErrorText = restoreText
		diagLog = restoreLog
	}()

	logger, hook := test.NewNullLogger()
	diagLog = logger
	lastErrorText = func() string { return "window creation failed" }

	_ = fail()

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(hook.Entries))
	}
	entry := hook.LastEntry()
	if entry.Data["sdl_error"] != "window creation failed" {
		t.Errorf("sdl_error field = %v, want the library text", entry.Data["sdl_error"])
	}
}

func TestFailLogsWithoutText(t *testing.T) {
	restoreText := lastErrorText
	restoreLog := diagLog
	defer func() {
		lastErrorText = restoreText
		diagLog = restoreLog
	}()

	logger, hook := test.NewNullLogger()
	diagLog = logger
	lastErrorText = func() string { return "" }

	_ = fail()

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(hook.Entries))
	}
	if _, present := hook.LastEntry().Data["sdl_error"]; present {
		t.Error("empty library text should not add a field")
	}
}
