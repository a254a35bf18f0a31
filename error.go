package sdl

import (
	"github.com/sirupsen/logrus"

	"github.com/agiangrant/sdl3/internal/dyn"
)

// Error is the single error kind produced by this package. It carries no
// structured detail: it means exactly "the library reported failure at this
// call". The library's own last-error text is emitted to the diagnostic logger
// at translation time and is also available via GetError until the next call.
type Error struct{}

func (Error) Error() string {
	return "sdl: the library reported an error"
}

var (
	fnGetError   func() string
	fnSetError   func(format string, msg string) int32
	fnClearError func() int32
)

func registerErrorFuncs() {
	register(&fnGetError, "SDL_GetError")
	register(&fnSetError, "SDL_SetError")
	register(&fnClearError, "SDL_ClearError")
}

var diagLog logrus.FieldLogger = logrus.StandardLogger()

// SetDiagnosticLogger replaces the sink that receives last-error diagnostics.
// The default is the logrus standard logger.
func SetDiagnosticLogger(l logrus.FieldLogger) {
	if l != nil {
		diagLog = l
		dyn.SetLogger(l)
	}
}

// lastErrorText is indirected so tests can install a stand-in library.
var lastErrorText = func() string {
	if fnGetError == nil {
		return ""
	}
	return fnGetError()
}

// fail translates a foreign failure signal into the single error kind, logging
// the library's diagnostic text as a side effect.
func fail() error {
	if msg := lastErrorText(); msg != "" {
		diagLog.WithField("sdl_error", msg).Error("sdl: call failed")
	} else {
		diagLog.Error("sdl: call failed")
	}
	return Error{}
}

// errorFromCode translates the library's status-int convention: negative means
// failure, zero or positive means success.
func errorFromCode(rc int32) error {
	if rc < 0 {
		return fail()
	}
	return nil
}

// errorFromBool translates a boolean-encoded outcome.
func errorFromBool(b Bool) error {
	if b == False {
		return fail()
	}
	return nil
}

// GetError returns the library's last error message for this thread, or ""
// when no error is pending. The message is diagnostic text only; wrapper error
// values never carry it.
func GetError() string {
	return fnGetError()
}

// SetError sets the library's error message.
func SetError(msg string) error {
	// SDL_SetError is printf-style; forwarding through "%s" keeps caller text
	// free of accidental format expansion.
	fnSetError("%s", msg)
	return Error{}
}

// ClearError clears any pending error message.
func ClearError() {
	fnClearError()
}
