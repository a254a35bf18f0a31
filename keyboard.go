package sdl

// Keysym mirrors SDL_Keysym, the key description carried by keyboard events.
type Keysym struct {
	Scancode Scancode
	Sym      Keycode
	Mod      uint16
	Unused   uint32
}

// Modifiers returns the modifier state as a structured record.
func (k Keysym) Modifiers() Keymod {
	return KeymodFromMask(k.Mod)
}

// Keymod mask bits, as the library numbers them.
const (
	kmodLShift uint16 = 0x0001
	kmodRShift uint16 = 0x0002
	kmodLCtrl  uint16 = 0x0040
	kmodRCtrl  uint16 = 0x0080
	kmodLAlt   uint16 = 0x0100
	kmodRAlt   uint16 = 0x0200
	kmodLGui   uint16 = 0x0400
	kmodRGui   uint16 = 0x0800
	kmodNum    uint16 = 0x1000
	kmodCaps   uint16 = 0x2000
	kmodMode   uint16 = 0x4000
	kmodScroll uint16 = 0x8000
)

// Keymod is the structured view of the modifier-key bitmask. Conversion
// through Mask and KeymodFromMask is lossless for every defined bit.
type Keymod struct {
	LShift bool
	RShift bool
	LCtrl  bool
	RCtrl  bool
	LAlt   bool
	RAlt   bool
	LGui   bool
	RGui   bool
	Num    bool
	Caps   bool
	Mode   bool
	Scroll bool
}

// Shift reports whether either shift key is held.
func (m Keymod) Shift() bool { return m.LShift || m.RShift }

// Ctrl reports whether either control key is held.
func (m Keymod) Ctrl() bool { return m.LCtrl || m.RCtrl }

// Alt reports whether either alt key is held.
func (m Keymod) Alt() bool { return m.LAlt || m.RAlt }

// Gui reports whether either GUI (meta) key is held.
func (m Keymod) Gui() bool { return m.LGui || m.RGui }

// Mask packs the modifiers into the library's bitmask encoding.
func (m Keymod) Mask() uint16 {
	var v uint16
	set := func(on bool, bit uint16) {
		if on {
			v |= bit
		}
	}
	set(m.LShift, kmodLShift)
	set(m.RShift, kmodRShift)
	set(m.LCtrl, kmodLCtrl)
	set(m.RCtrl, kmodRCtrl)
	set(m.LAlt, kmodLAlt)
	set(m.RAlt, kmodRAlt)
	set(m.LGui, kmodLGui)
	set(m.RGui, kmodRGui)
	set(m.Num, kmodNum)
	set(m.Caps, kmodCaps)
	set(m.Mode, kmodMode)
	set(m.Scroll, kmodScroll)
	return v
}

// KeymodFromMask unpacks the library's bitmask encoding.
func KeymodFromMask(v uint16) Keymod {
	return Keymod{
		LShift: v&kmodLShift != 0,
		RShift: v&kmodRShift != 0,
		LCtrl:  v&kmodLCtrl != 0,
		RCtrl:  v&kmodRCtrl != 0,
		LAlt:   v&kmodLAlt != 0,
		RAlt:   v&kmodRAlt != 0,
		LGui:   v&kmodLGui != 0,
		RGui:   v&kmodRGui != 0,
		Num:    v&kmodNum != 0,
		Caps:   v&kmodCaps != 0,
		Mode:   v&kmodMode != 0,
		Scroll: v&kmodScroll != 0,
	}
}

var (
	fnGetKeyboardFocus         func() *Window
	fnGetKeyboardState         func(numkeys *int32) *uint8
	fnResetKeyboard            func()
	fnGetModState              func() uint32
	fnSetModState              func(mod uint32)
	fnGetKeyFromScancode       func(sc Scancode) Keycode
	fnGetScancodeFromKey       func(key Keycode) Scancode
	fnGetScancodeName          func(sc Scancode) string
	fnGetScancodeFromName      func(name string) Scancode
	fnGetKeyName               func(key Keycode) string
	fnGetKeyFromName           func(name string) Keycode
	fnStartTextInput           func()
	fnTextInputActive          func() Bool
	fnStopTextInput            func()
	fnClearComposition         func()
	fnSetTextInputRect         func(rect *Rect) int32
	fnHasScreenKeyboardSupport func() Bool
	fnScreenKeyboardShown      func(w *Window) Bool
)

func registerKeyboardFuncs() {
	register(&fnGetKeyboardFocus, "SDL_GetKeyboardFocus")
	register(&fnGetKeyboardState, "SDL_GetKeyboardState")
	register(&fnResetKeyboard, "SDL_ResetKeyboard")
	register(&fnGetModState, "SDL_GetModState")
	register(&fnSetModState, "SDL_SetModState")
	register(&fnGetKeyFromScancode, "SDL_GetKeyFromScancode")
	register(&fnGetScancodeFromKey, "SDL_GetScancodeFromKey")
	register(&fnGetScancodeName, "SDL_GetScancodeName")
	register(&fnGetScancodeFromName, "SDL_GetScancodeFromName")
	register(&fnGetKeyName, "SDL_GetKeyName")
	register(&fnGetKeyFromName, "SDL_GetKeyFromName")
	register(&fnStartTextInput, "SDL_StartTextInput")
	register(&fnTextInputActive, "SDL_TextInputActive")
	register(&fnStopTextInput, "SDL_StopTextInput")
	register(&fnClearComposition, "SDL_ClearComposition")
	register(&fnSetTextInputRect, "SDL_SetTextInputRect")
	register(&fnHasScreenKeyboardSupport, "SDL_HasScreenKeyboardSupport")
	register(&fnScreenKeyboardShown, "SDL_ScreenKeyboardShown")
}

// GetKeyboardFocus returns the window with keyboard focus, or nil.
func GetKeyboardFocus() *Window {
	return fnGetKeyboardFocus()
}

// GetKeyboardState returns a borrowed snapshot of key state indexed by
// Scancode. The memory is owned by the library and stays valid for the whole
// application lifetime.
func GetKeyboardState() []uint8 {
	var numkeys int32
	p := fnGetKeyboardState(&numkeys)
	return borrowed(p, numkeys)
}

// ResetKeyboard releases all keys, generating synthetic key-up events.
func ResetKeyboard() {
	fnResetKeyboard()
}

// GetModState returns the current modifier state.
func GetModState() Keymod {
	return KeymodFromMask(uint16(fnGetModState()))
}

// SetModState overrides the modifier state.
func SetModState(mod Keymod) {
	fnSetModState(uint32(mod.Mask()))
}

// GetKeyFromScancode returns the key mapped to a physical scancode under the
// current layout.
func GetKeyFromScancode(sc Scancode) Keycode {
	return fnGetKeyFromScancode(sc)
}

// GetScancodeFromKey returns the physical scancode producing a key under the
// current layout.
func GetScancodeFromKey(key Keycode) Scancode {
	return fnGetScancodeFromKey(key)
}

// GetScancodeName returns a scancode's name.
func GetScancodeName(sc Scancode) string {
	return fnGetScancodeName(sc)
}

// GetScancodeFromName parses a scancode name. ScancodeUnknown means no match.
func GetScancodeFromName(name string) Scancode {
	return fnGetScancodeFromName(name)
}

// GetKeyName returns a key's name.
func GetKeyName(key Keycode) string {
	return fnGetKeyName(key)
}

// GetKeyFromName parses a key name. KeycodeUnknown means no match.
func GetKeyFromName(name string) Keycode {
	return fnGetKeyFromName(name)
}

// StartTextInput enables text input events and, where needed, the screen
// keyboard.
func StartTextInput() {
	fnStartTextInput()
}

// TextInputActive reports whether text input events are enabled.
func TextInputActive() bool {
	return fnTextInputActive().Bool()
}

// StopTextInput disables text input events.
func StopTextInput() {
	fnStopTextInput()
}

// ClearComposition dismisses any in-progress IME composition.
func ClearComposition() {
	fnClearComposition()
}

// SetTextInputRect tells the IME where text is being entered.
func SetTextInputRect(rect *Rect) error {
	return errorFromCode(fnSetTextInputRect(rect))
}

// HasScreenKeyboardSupport reports whether the platform offers a screen
// keyboard.
func HasScreenKeyboardSupport() bool {
	return fnHasScreenKeyboardSupport().Bool()
}

// ScreenKeyboardShown reports whether the screen keyboard covers the window.
func ScreenKeyboardShown(w *Window) bool {
	return fnScreenKeyboardShown(w).Bool()
}
