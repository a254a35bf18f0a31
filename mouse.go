package sdl

// MouseID identifies a mouse. Zero is the invalid sentinel; the library also
// uses special values for touch-synthesized mice.
type MouseID uint32

// Cursor is an opaque handle to a library-owned cursor.
type Cursor struct{ _ [0]byte }

// SystemCursor mirrors SDL_SystemCursor.
type SystemCursor uint32

const (
	SystemCursorArrow SystemCursor = iota
	SystemCursorIBeam
	SystemCursorWait
	SystemCursorCrosshair
	SystemCursorWaitArrow
	SystemCursorSizeNWSE
	SystemCursorSizeNESW
	SystemCursorSizeWE
	SystemCursorSizeNS
	SystemCursorSizeAll
	SystemCursorNo
	SystemCursorHand
)

// MouseWheelDirection mirrors SDL_MouseWheelDirection.
type MouseWheelDirection uint32

const (
	MouseWheelNormal MouseWheelDirection = iota
	MouseWheelFlipped
)

// Mouse button numbers.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
	ButtonX1     = 4
	ButtonX2     = 5
)

// Mouse button mask bits, as the library numbers them.
const (
	buttonLMask  uint32 = 1 << (ButtonLeft - 1)
	buttonMMask  uint32 = 1 << (ButtonMiddle - 1)
	buttonRMask  uint32 = 1 << (ButtonRight - 1)
	buttonX1Mask uint32 = 1 << (ButtonX1 - 1)
	buttonX2Mask uint32 = 1 << (ButtonX2 - 1)
)

// MouseButtonFlags is the structured view of the button-state bitmask.
// Conversion through Mask and MouseButtonFlagsFromMask is lossless for every
// defined bit.
type MouseButtonFlags struct {
	Left   bool
	Middle bool
	Right  bool
	X1     bool
	X2     bool
}

// Mask packs the buttons into the library's bitmask encoding.
func (f MouseButtonFlags) Mask() uint32 {
	var m uint32
	if f.Left {
		m |= buttonLMask
	}
	if f.Middle {
		m |= buttonMMask
	}
	if f.Right {
		m |= buttonRMask
	}
	if f.X1 {
		m |= buttonX1Mask
	}
	if f.X2 {
		m |= buttonX2Mask
	}
	return m
}

// MouseButtonFlagsFromMask unpacks the library's bitmask encoding.
func MouseButtonFlagsFromMask(m uint32) MouseButtonFlags {
	return MouseButtonFlags{
		Left:   m&buttonLMask != 0,
		Middle: m&buttonMMask != 0,
		Right:  m&buttonRMask != 0,
		X1:     m&buttonX1Mask != 0,
		X2:     m&buttonX2Mask != 0,
	}
}

var (
	fnGetMouseFocus         func() *Window
	fnGetMouseState         func(x, y *float32) uint32
	fnGetGlobalMouseState   func(x, y *float32) uint32
	fnGetRelativeMouseState func(x, y *float32) uint32
	fnWarpMouseInWindow     func(w *Window, x, y float32)
	fnWarpMouseGlobal       func(x, y float32) int32
	fnSetRelativeMouseMode  func(enabled Bool) int32
	fnGetRelativeMouseMode  func() Bool
	fnCaptureMouse          func(enabled Bool) int32
	fnCreateCursor          func(data, mask *uint8, w, h, hotX, hotY int32) *Cursor
	fnCreateColorCursor     func(surface *Surface, hotX, hotY int32) *Cursor
	fnCreateSystemCursor    func(id SystemCursor) *Cursor
	fnSetCursor             func(c *Cursor) int32
	fnGetCursor             func() *Cursor
	fnGetDefaultCursor      func() *Cursor
	fnDestroyCursor         func(c *Cursor)
	fnShowCursor            func() int32
	fnHideCursor            func() int32
	fnCursorVisible         func() Bool
)

func registerMouseFuncs() {
	register(&fnGetMouseFocus, "SDL_GetMouseFocus")
	register(&fnGetMouseState, "SDL_GetMouseState")
	register(&fnGetGlobalMouseState, "SDL_GetGlobalMouseState")
	register(&fnGetRelativeMouseState, "SDL_GetRelativeMouseState")
	register(&fnWarpMouseInWindow, "SDL_WarpMouseInWindow")
	register(&fnWarpMouseGlobal, "SDL_WarpMouseGlobal")
	register(&fnSetRelativeMouseMode, "SDL_SetRelativeMouseMode")
	register(&fnGetRelativeMouseMode, "SDL_GetRelativeMouseMode")
	register(&fnCaptureMouse, "SDL_CaptureMouse")
	register(&fnCreateCursor, "SDL_CreateCursor")
	register(&fnCreateColorCursor, "SDL_CreateColorCursor")
	register(&fnCreateSystemCursor, "SDL_CreateSystemCursor")
	register(&fnSetCursor, "SDL_SetCursor")
	register(&fnGetCursor, "SDL_GetCursor")
	register(&fnGetDefaultCursor, "SDL_GetDefaultCursor")
	register(&fnDestroyCursor, "SDL_DestroyCursor")
	register(&fnShowCursor, "SDL_ShowCursor")
	register(&fnHideCursor, "SDL_HideCursor")
	register(&fnCursorVisible, "SDL_CursorVisible")
}

// GetMouseFocus returns the window with mouse focus, or nil.
func GetMouseFocus() *Window {
	return fnGetMouseFocus()
}

// GetMouseState returns the button state and pointer position relative to the
// focused window.
func GetMouseState() (buttons MouseButtonFlags, x, y float32) {
	m := fnGetMouseState(&x, &y)
	return MouseButtonFlagsFromMask(m), x, y
}

// GetGlobalMouseState returns the button state and pointer position in
// desktop coordinates.
func GetGlobalMouseState() (buttons MouseButtonFlags, x, y float32) {
	m := fnGetGlobalMouseState(&x, &y)
	return MouseButtonFlagsFromMask(m), x, y
}

// GetRelativeMouseState returns the button state and the pointer motion since
// the previous call.
func GetRelativeMouseState() (buttons MouseButtonFlags, dx, dy float32) {
	m := fnGetRelativeMouseState(&dx, &dy)
	return MouseButtonFlagsFromMask(m), dx, dy
}

// WarpMouseInWindow moves the pointer to a window coordinate.
func WarpMouseInWindow(w *Window, x, y float32) {
	fnWarpMouseInWindow(w, x, y)
}

// WarpMouseGlobal moves the pointer to a desktop coordinate.
func WarpMouseGlobal(x, y float32) error {
	return errorFromCode(fnWarpMouseGlobal(x, y))
}

// SetRelativeMouseMode hides the cursor and delivers unbounded relative
// motion.
func SetRelativeMouseMode(enabled bool) error {
	return errorFromCode(fnSetRelativeMouseMode(FromBool(enabled)))
}

// GetRelativeMouseMode reports whether relative mode is active.
func GetRelativeMouseMode() bool {
	return fnGetRelativeMouseMode().Bool()
}

// CaptureMouse routes mouse events to the foreground window even when the
// pointer leaves it.
func CaptureMouse(enabled bool) error {
	return errorFromCode(fnCaptureMouse(FromBool(enabled)))
}

// CreateCursor builds a monochrome cursor from packed bit data and mask rows.
func CreateCursor(data, mask []uint8, w, h, hotX, hotY int32) (*Cursor, error) {
	if len(data) == 0 || len(mask) == 0 {
		return nil, SetError("empty cursor bitmap")
	}
	c := fnCreateCursor(&data[0], &mask[0], w, h, hotX, hotY)
	if c == nil {
		return nil, fail()
	}
	return c, nil
}

// CreateColorCursor builds a cursor from a surface.
func CreateColorCursor(surface *Surface, hotX, hotY int32) (*Cursor, error) {
	c := fnCreateColorCursor(surface, hotX, hotY)
	if c == nil {
		return nil, fail()
	}
	return c, nil
}

// CreateSystemCursor returns one of the standard platform cursors.
func CreateSystemCursor(id SystemCursor) (*Cursor, error) {
	c := fnCreateSystemCursor(id)
	if c == nil {
		return nil, fail()
	}
	return c, nil
}

// SetCursor makes the cursor active; nil forces a redraw of the current one.
func SetCursor(c *Cursor) error {
	return errorFromCode(fnSetCursor(c))
}

// GetCursor returns the active cursor.
func GetCursor() *Cursor {
	return fnGetCursor()
}

// GetDefaultCursor returns the default cursor.
func GetDefaultCursor() *Cursor {
	return fnGetDefaultCursor()
}

// Destroy frees a cursor created by one of the Create functions.
func (c *Cursor) Destroy() {
	fnDestroyCursor(c)
}

// ShowCursor makes the cursor visible.
func ShowCursor() error {
	return errorFromCode(fnShowCursor())
}

// HideCursor makes the cursor invisible.
func HideCursor() error {
	return errorFromCode(fnHideCursor())
}

// CursorVisible reports whether the cursor is visible.
func CursorVisible() bool {
	return fnCursorVisible().Bool()
}
