package sdl

// HintPriority mirrors SDL_HintPriority.
type HintPriority int32

const (
	HintDefault HintPriority = iota
	HintNormal
	HintOverride
)

// A few commonly used hint names. Any name the library documents works.
const (
	HintAppName                       = "SDL_APP_NAME"
	HintVideoAllowScreensaver         = "SDL_VIDEO_ALLOW_SCREENSAVER"
	HintRenderVSync                   = "SDL_RENDER_VSYNC"
	HintJoystickAllowBackgroundEvents = "SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS"
	HintGamecontrollerConfig          = "SDL_GAMECONTROLLERCONFIG"
)

var (
	fnSetHintWithPriority func(name, value string, priority HintPriority) Bool
	fnSetHint             func(name, value string) Bool
	fnResetHint           func(name string) Bool
	fnResetHints          func()
	fnGetHint             func(name string) string
	fnGetHintBoolean      func(name string, defaultValue Bool) Bool
)

func registerHintFuncs() {
	register(&fnSetHintWithPriority, "SDL_SetHintWithPriority")
	register(&fnSetHint, "SDL_SetHint")
	register(&fnResetHint, "SDL_ResetHint")
	register(&fnResetHints, "SDL_ResetHints")
	register(&fnGetHint, "SDL_GetHint")
	register(&fnGetHintBoolean, "SDL_GetHintBoolean")
}

// SetHintWithPriority sets a configuration hint, overriding lower-priority
// values. It reports whether the value took effect.
func SetHintWithPriority(name, value string, priority HintPriority) bool {
	return fnSetHintWithPriority(name, value, priority).Bool()
}

// SetHint sets a configuration hint at normal priority. Environment
// variables of the same name win over it.
func SetHint(name, value string) bool {
	return fnSetHint(name, value).Bool()
}

// ResetHint restores a hint to its environment or built-in default.
func ResetHint(name string) bool {
	return fnResetHint(name).Bool()
}

// ResetHints restores every hint to its default.
func ResetHints() {
	fnResetHints()
}

// GetHint returns a hint's value, or "".
func GetHint(name string) string {
	return fnGetHint(name)
}

// GetHintBoolean returns a hint interpreted as a boolean.
func GetHintBoolean(name string, defaultValue bool) bool {
	return fnGetHintBoolean(name, FromBool(defaultValue)).Bool()
}
