// Package sdl exposes the SDL3 multimedia library (preview ABI) through thin
// Go wrappers. The shared library is loaded dynamically with purego at Init
// time; every wrapper is a direct pass-through to the corresponding foreign
// symbol, adding only parameter marshaling and result translation. All
// behavior, lifetime rules, and threading contracts are the library's own.
package sdl

import (
	"sync"

	"github.com/agiangrant/sdl3/internal/dyn"
)

// InitFlags selects which library subsystems Init brings up.
type InitFlags uint32

const (
	InitTimer    InitFlags = 0x00000001
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000

	InitEverything = InitTimer | InitAudio | InitVideo | InitJoystick |
		InitHaptic | InitGamepad | InitEvents | InitSensor
)

// Version mirrors SDL_version.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

var (
	fnInit          func(flags InitFlags) int32
	fnInitSubSystem func(flags InitFlags) int32
	fnQuitSubSystem func(flags InitFlags)
	fnWasInit       func(flags InitFlags) InitFlags
	fnQuit          func()
	fnGetVersion    func(ver *Version) int32
	fnGetRevision   func() string
)

func registerInitFuncs() {
	register(&fnInit, "SDL_Init")
	register(&fnInitSubSystem, "SDL_InitSubSystem")
	register(&fnQuitSubSystem, "SDL_QuitSubSystem")
	register(&fnWasInit, "SDL_WasInit")
	register(&fnQuit, "SDL_Quit")
	register(&fnGetVersion, "SDL_GetVersion")
	register(&fnGetRevision, "SDL_GetRevision")
}

var (
	loadOnce sync.Once
	loadErr  error
)

func register(fptr any, name string) {
	dyn.Register(fptr, name)
}

// ensureLoaded opens the shared library and binds every symbol exactly once.
func ensureLoaded() error {
	loadOnce.Do(func() {
		if _, err := dyn.Load(); err != nil {
			loadErr = err
			return
		}
		registerInitFuncs()
		registerErrorFuncs()
		registerStdincFuncs()
		registerRectFuncs()
		registerPixelFuncs()
		registerVideoFuncs()
		registerSurfaceFuncs()
		registerEventFuncs()
		registerKeyboardFuncs()
		registerMouseFuncs()
		registerJoystickFuncs()
		registerGamepadFuncs()
		registerSensorFuncs()
		registerHapticFuncs()
		registerPenFuncs()
		registerTouchFuncs()
		registerAudioFuncs()
		registerPropertiesFuncs()
		registerClipboardFuncs()
		registerHintFuncs()
		registerTimerFuncs()
		registerGUIDFuncs()
	})
	return loadErr
}

// Init loads the shared library if needed and initializes the given
// subsystems. It must succeed before any other call into this package.
func Init(flags InitFlags) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	return errorFromCode(fnInit(flags))
}

// InitSubSystem initializes additional subsystems after Init.
func InitSubSystem(flags InitFlags) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	return errorFromCode(fnInitSubSystem(flags))
}

// QuitSubSystem shuts down the given subsystems.
func QuitSubSystem(flags InitFlags) {
	fnQuitSubSystem(flags)
}

// WasInit reports which of the given subsystems are initialized. Passing zero
// queries all subsystems.
func WasInit(flags InitFlags) InitFlags {
	return fnWasInit(flags)
}

// Quit shuts the library down. The shared library stays mapped; Init may be
// called again afterwards.
func Quit() {
	fnQuit()
}

// GetVersion returns the version of the linked library.
func GetVersion() (Version, error) {
	var v Version
	if err := errorFromCode(fnGetVersion(&v)); err != nil {
		return Version{}, err
	}
	return v, nil
}

// GetRevision returns the library's build revision string.
func GetRevision() string {
	return fnGetRevision()
}
