package sdl

import (
	"unsafe"

	"github.com/ebitengine/purego"
	pointer "github.com/mattn/go-pointer"
)

// DisplayID identifies a connected display for the lifetime of its
// connection. Zero is the invalid sentinel.
type DisplayID uint32

// WindowID identifies a window for its lifetime. Zero is the invalid sentinel.
type WindowID uint32

// Window is an opaque handle to a library-owned window. Values are only ever
// produced by the library.
type Window struct{ _ [0]byte }

// SystemTheme mirrors SDL_SystemTheme.
type SystemTheme uint32

const (
	SystemThemeUnknown SystemTheme = iota
	SystemThemeLight
	SystemThemeDark
)

// DisplayOrientation mirrors SDL_DisplayOrientation.
type DisplayOrientation uint32

const (
	OrientationUnknown DisplayOrientation = iota
	OrientationLandscape
	OrientationLandscapeFlipped
	OrientationPortrait
	OrientationPortraitFlipped
)

// DisplayMode mirrors SDL_DisplayMode.
type DisplayMode struct {
	DisplayID    DisplayID
	Format       PixelFormatEnum
	W            int32
	H            int32
	PixelDensity float32
	RefreshRate  float32
	DriverData   unsafe.Pointer
}

// FlashOperation mirrors SDL_FlashOperation.
type FlashOperation uint32

const (
	FlashCancel FlashOperation = iota
	FlashBriefly
	FlashUntilFocused
)

// Window flag mask bits, as the library numbers them.
const (
	windowFullscreen       uint32 = 0x00000001
	windowOpenGL           uint32 = 0x00000002
	windowOccluded         uint32 = 0x00000004
	windowHidden           uint32 = 0x00000008
	windowBorderless       uint32 = 0x00000010
	windowResizable        uint32 = 0x00000020
	windowMinimized        uint32 = 0x00000040
	windowMaximized        uint32 = 0x00000080
	windowMouseGrabbed     uint32 = 0x00000100
	windowInputFocus       uint32 = 0x00000200
	windowMouseFocus       uint32 = 0x00000400
	windowExternal         uint32 = 0x00000800
	windowHighPixelDensity uint32 = 0x00002000
	windowMouseCapture     uint32 = 0x00004000
	windowAlwaysOnTop      uint32 = 0x00008000
	windowUtility          uint32 = 0x00020000
	windowTooltip          uint32 = 0x00040000
	windowPopupMenu        uint32 = 0x00080000
	windowKeyboardGrabbed  uint32 = 0x00100000
	windowVulkan           uint32 = 0x10000000
	windowMetal            uint32 = 0x20000000
	windowTransparent      uint32 = 0x40000000
	windowNotFocusable     uint32 = 0x80000000
)

// WindowFlags is the structured view of the window flag bitmask. Conversion
// through Mask and WindowFlagsFromMask is lossless for every defined bit.
type WindowFlags struct {
	Fullscreen       bool
	OpenGL           bool
	Occluded         bool
	Hidden           bool
	Borderless       bool
	Resizable        bool
	Minimized        bool
	Maximized        bool
	MouseGrabbed     bool
	InputFocus       bool
	MouseFocus       bool
	External         bool
	HighPixelDensity bool
	MouseCapture     bool
	AlwaysOnTop      bool
	Utility          bool
	Tooltip          bool
	PopupMenu        bool
	KeyboardGrabbed  bool
	Vulkan           bool
	Metal            bool
	Transparent      bool
	NotFocusable     bool
}

// Mask packs the flags into the library's bitmask encoding.
func (f WindowFlags) Mask() uint32 {
	var m uint32
	set := func(on bool, bit uint32) {
		if on {
			m |= bit
		}
	}
	set(f.Fullscreen, windowFullscreen)
	set(f.OpenGL, windowOpenGL)
	set(f.Occluded, windowOccluded)
	set(f.Hidden, windowHidden)
	set(f.Borderless, windowBorderless)
	set(f.Resizable, windowResizable)
	set(f.Minimized, windowMinimized)
	set(f.Maximized, windowMaximized)
	set(f.MouseGrabbed, windowMouseGrabbed)
	set(f.InputFocus, windowInputFocus)
	set(f.MouseFocus, windowMouseFocus)
	set(f.External, windowExternal)
	set(f.HighPixelDensity, windowHighPixelDensity)
	set(f.MouseCapture, windowMouseCapture)
	set(f.AlwaysOnTop, windowAlwaysOnTop)
	set(f.Utility, windowUtility)
	set(f.Tooltip, windowTooltip)
	set(f.PopupMenu, windowPopupMenu)
	set(f.KeyboardGrabbed, windowKeyboardGrabbed)
	set(f.Vulkan, windowVulkan)
	set(f.Metal, windowMetal)
	set(f.Transparent, windowTransparent)
	set(f.NotFocusable, windowNotFocusable)
	return m
}

// WindowFlagsFromMask unpacks the library's bitmask encoding.
func WindowFlagsFromMask(m uint32) WindowFlags {
	return WindowFlags{
		Fullscreen:       m&windowFullscreen != 0,
		OpenGL:           m&windowOpenGL != 0,
		Occluded:         m&windowOccluded != 0,
		Hidden:           m&windowHidden != 0,
		Borderless:       m&windowBorderless != 0,
		Resizable:        m&windowResizable != 0,
		Minimized:        m&windowMinimized != 0,
		Maximized:        m&windowMaximized != 0,
		MouseGrabbed:     m&windowMouseGrabbed != 0,
		InputFocus:       m&windowInputFocus != 0,
		MouseFocus:       m&windowMouseFocus != 0,
		External:         m&windowExternal != 0,
		HighPixelDensity: m&windowHighPixelDensity != 0,
		MouseCapture:     m&windowMouseCapture != 0,
		AlwaysOnTop:      m&windowAlwaysOnTop != 0,
		Utility:          m&windowUtility != 0,
		Tooltip:          m&windowTooltip != 0,
		PopupMenu:        m&windowPopupMenu != 0,
		KeyboardGrabbed:  m&windowKeyboardGrabbed != 0,
		Vulkan:           m&windowVulkan != 0,
		Metal:            m&windowMetal != 0,
		Transparent:      m&windowTransparent != 0,
		NotFocusable:     m&windowNotFocusable != 0,
	}
}

// HitTestResult mirrors SDL_HitTestResult.
type HitTestResult uint32

const (
	HitTestNormal HitTestResult = iota
	HitTestDraggable
	HitTestResizeTopLeft
	HitTestResizeTop
	HitTestResizeTopRight
	HitTestResizeRight
	HitTestResizeBottomRight
	HitTestResizeBottom
	HitTestResizeBottomLeft
	HitTestResizeLeft
)

// HitTest decides how a point on a window behaves for dragging and resizing.
type HitTest func(w *Window, area Point) HitTestResult

var (
	fnGetNumVideoDrivers     func() int32
	fnGetVideoDriver         func(index int32) string
	fnGetCurrentVideoDriver  func() string
	fnGetSystemTheme         func() SystemTheme
	fnGetDisplays            func(count *int32) *DisplayID
	fnGetPrimaryDisplay      func() DisplayID
	fnGetDisplayProperties   func(id DisplayID) PropertiesID
	fnGetDisplayName         func(id DisplayID) string
	fnGetDisplayBounds       func(id DisplayID, rect *Rect) int32
	fnGetDisplayUsableBounds func(id DisplayID, rect *Rect) int32

	fnGetNaturalDisplayOrientation func(id DisplayID) DisplayOrientation
	fnGetCurrentDisplayOrientation func(id DisplayID) DisplayOrientation
	fnGetDisplayContentScale       func(id DisplayID) float32

	fnGetFullscreenDisplayModes       func(id DisplayID, count *int32) **DisplayMode
	fnGetClosestFullscreenDisplayMode func(id DisplayID, w, h int32, refreshRate float32, includeHighDensity Bool) *DisplayMode
	fnGetDesktopDisplayMode           func(id DisplayID) *DisplayMode
	fnGetCurrentDisplayMode           func(id DisplayID) *DisplayMode

	fnGetDisplayForPoint  func(p *Point) DisplayID
	fnGetDisplayForRect   func(r *Rect) DisplayID
	fnGetDisplayForWindow func(w *Window) DisplayID

	fnGetWindowPixelDensity   func(w *Window) float32
	fnGetWindowDisplayScale   func(w *Window) float32
	fnSetWindowFullscreenMode func(w *Window, mode *DisplayMode) int32
	fnGetWindowFullscreenMode func(w *Window) *DisplayMode
	fnGetWindowPixelFormat    func(w *Window) PixelFormatEnum

	fnCreateWindow               func(title string, w, h int32, flags uint32) *Window
	fnCreatePopupWindow          func(parent *Window, offsetX, offsetY, w, h int32, flags uint32) *Window
	fnCreateWindowWithProperties func(props PropertiesID) *Window
	fnGetWindowID                func(w *Window) WindowID
	fnGetWindowFromID            func(id WindowID) *Window
	fnGetWindowParent            func(w *Window) *Window
	fnGetWindowProperties        func(w *Window) PropertiesID
	fnGetWindowFlags             func(w *Window) uint32

	fnSetWindowTitle func(w *Window, title string) int32
	fnGetWindowTitle func(w *Window) string
	fnSetWindowIcon  func(w *Window, icon *Surface) int32

	fnSetWindowPosition     func(w *Window, x, y int32) int32
	fnGetWindowPosition     func(w *Window, x, y *int32) int32
	fnSetWindowSize         func(w *Window, width, height int32) int32
	fnGetWindowSize         func(w *Window, width, height *int32) int32
	fnGetWindowBordersSize  func(w *Window, top, left, bottom, right *int32) int32
	fnGetWindowSizeInPixels func(w *Window, width, height *int32) int32
	fnSetWindowMinimumSize  func(w *Window, width, height int32) int32
	fnGetWindowMinimumSize  func(w *Window, width, height *int32) int32
	fnSetWindowMaximumSize  func(w *Window, width, height int32) int32
	fnGetWindowMaximumSize  func(w *Window, width, height *int32) int32

	fnSetWindowBordered    func(w *Window, bordered Bool) int32
	fnSetWindowResizable   func(w *Window, resizable Bool) int32
	fnSetWindowAlwaysOnTop func(w *Window, onTop Bool) int32

	fnShowWindow     func(w *Window) int32
	fnHideWindow     func(w *Window) int32
	fnRaiseWindow    func(w *Window) int32
	fnMaximizeWindow func(w *Window) int32
	fnMinimizeWindow func(w *Window) int32
	fnRestoreWindow  func(w *Window) int32

	fnSetWindowFullscreen func(w *Window, fullscreen Bool) int32
	fnSyncWindow          func(w *Window) int32

	fnWindowHasSurface         func(w *Window) Bool
	fnGetWindowSurface         func(w *Window) *Surface
	fnUpdateWindowSurface      func(w *Window) int32
	fnUpdateWindowSurfaceRects func(w *Window, rects *Rect, numrects int32) int32
	fnDestroyWindowSurface     func(w *Window) int32

	fnSetWindowKeyboardGrab func(w *Window, grabbed Bool) int32
	fnSetWindowMouseGrab    func(w *Window, grabbed Bool) int32
	fnGetWindowKeyboardGrab func(w *Window) Bool
	fnGetWindowMouseGrab    func(w *Window) Bool
	fnGetGrabbedWindow      func() *Window
	fnSetWindowMouseRect    func(w *Window, rect *Rect) int32
	fnGetWindowMouseRect    func(w *Window) *Rect

	fnSetWindowOpacity    func(w *Window, opacity float32) int32
	fnGetWindowOpacity    func(w *Window, opacity *float32) int32
	fnSetWindowModalFor   func(modal, parent *Window) int32
	fnSetWindowInputFocus func(w *Window) int32
	fnSetWindowFocusable  func(w *Window, focusable Bool) int32

	fnShowWindowSystemMenu func(w *Window, x, y int32) int32
	fnSetWindowHitTest     func(w *Window, callback uintptr, data unsafe.Pointer) int32
	fnFlashWindow          func(w *Window, operation FlashOperation) int32
	fnDestroyWindow        func(w *Window)

	fnScreenSaverEnabled func() Bool
	fnEnableScreenSaver  func() int32
	fnDisableScreenSaver func() int32
)

func registerVideoFuncs() {
	register(&fnGetNumVideoDrivers, "SDL_GetNumVideoDrivers")
	register(&fnGetVideoDriver, "SDL_GetVideoDriver")
	register(&fnGetCurrentVideoDriver, "SDL_GetCurrentVideoDriver")
	register(&fnGetSystemTheme, "SDL_GetSystemTheme")
	register(&fnGetDisplays, "SDL_GetDisplays")
	register(&fnGetPrimaryDisplay, "SDL_GetPrimaryDisplay")
	register(&fnGetDisplayProperties, "SDL_GetDisplayProperties")
	register(&fnGetDisplayName, "SDL_GetDisplayName")
	register(&fnGetDisplayBounds, "SDL_GetDisplayBounds")
	register(&fnGetDisplayUsableBounds, "SDL_GetDisplayUsableBounds")
	register(&fnGetNaturalDisplayOrientation, "SDL_GetNaturalDisplayOrientation")
	register(&fnGetCurrentDisplayOrientation, "SDL_GetCurrentDisplayOrientation")
	register(&fnGetDisplayContentScale, "SDL_GetDisplayContentScale")
	register(&fnGetFullscreenDisplayModes, "SDL_GetFullscreenDisplayModes")
	register(&fnGetClosestFullscreenDisplayMode, "SDL_GetClosestFullscreenDisplayMode")
	register(&fnGetDesktopDisplayMode, "SDL_GetDesktopDisplayMode")
	register(&fnGetCurrentDisplayMode, "SDL_GetCurrentDisplayMode")
	register(&fnGetDisplayForPoint, "SDL_GetDisplayForPoint")
	register(&fnGetDisplayForRect, "SDL_GetDisplayForRect")
	register(&fnGetDisplayForWindow, "SDL_GetDisplayForWindow")
	register(&fnGetWindowPixelDensity, "SDL_GetWindowPixelDensity")
	register(&fnGetWindowDisplayScale, "SDL_GetWindowDisplayScale")
	register(&fnSetWindowFullscreenMode, "SDL_SetWindowFullscreenMode")
	register(&fnGetWindowFullscreenMode, "SDL_GetWindowFullscreenMode")
	register(&fnGetWindowPixelFormat, "SDL_GetWindowPixelFormat")
	register(&fnCreateWindow, "SDL_CreateWindow")
	register(&fnCreatePopupWindow, "SDL_CreatePopupWindow")
	register(&fnCreateWindowWithProperties, "SDL_CreateWindowWithProperties")
	register(&fnGetWindowID, "SDL_GetWindowID")
	register(&fnGetWindowFromID, "SDL_GetWindowFromID")
	register(&fnGetWindowParent, "SDL_GetWindowParent")
	register(&fnGetWindowProperties, "SDL_GetWindowProperties")
	register(&fnGetWindowFlags, "SDL_GetWindowFlags")
	register(&fnSetWindowTitle, "SDL_SetWindowTitle")
	register(&fnGetWindowTitle, "SDL_GetWindowTitle")
	register(&fnSetWindowIcon, "SDL_SetWindowIcon")
	register(&fnSetWindowPosition, "SDL_SetWindowPosition")
	register(&fnGetWindowPosition, "SDL_GetWindowPosition")
	register(&fnSetWindowSize, "SDL_SetWindowSize")
	register(&fnGetWindowSize, "SDL_GetWindowSize")
	register(&fnGetWindowBordersSize, "SDL_GetWindowBordersSize")
	register(&fnGetWindowSizeInPixels, "SDL_GetWindowSizeInPixels")
	register(&fnSetWindowMinimumSize, "SDL_SetWindowMinimumSize")
	register(&fnGetWindowMinimumSize, "SDL_GetWindowMinimumSize")
	register(&fnSetWindowMaximumSize, "SDL_SetWindowMaximumSize")
	register(&fnGetWindowMaximumSize, "SDL_GetWindowMaximumSize")
	register(&fnSetWindowBordered, "SDL_SetWindowBordered")
	register(&fnSetWindowResizable, "SDL_SetWindowResizable")
	register(&fnSetWindowAlwaysOnTop, "SDL_SetWindowAlwaysOnTop")
	register(&fnShowWindow, "SDL_ShowWindow")
	register(&fnHideWindow, "SDL_HideWindow")
	register(&fnRaiseWindow, "SDL_RaiseWindow")
	register(&fnMaximizeWindow, "SDL_MaximizeWindow")
	register(&fnMinimizeWindow, "SDL_MinimizeWindow")
	register(&fnRestoreWindow, "SDL_RestoreWindow")
	register(&fnSetWindowFullscreen, "SDL_SetWindowFullscreen")
	register(&fnSyncWindow, "SDL_SyncWindow")
	register(&fnWindowHasSurface, "SDL_WindowHasSurface")
	register(&fnGetWindowSurface, "SDL_GetWindowSurface")
	register(&fnUpdateWindowSurface, "SDL_UpdateWindowSurface")
	register(&fnUpdateWindowSurfaceRects, "SDL_UpdateWindowSurfaceRects")
	register(&fnDestroyWindowSurface, "SDL_DestroyWindowSurface")
	register(&fnSetWindowKeyboardGrab, "SDL_SetWindowKeyboardGrab")
	register(&fnSetWindowMouseGrab, "SDL_SetWindowMouseGrab")
	register(&fnGetWindowKeyboardGrab, "SDL_GetWindowKeyboardGrab")
	register(&fnGetWindowMouseGrab, "SDL_GetWindowMouseGrab")
	register(&fnGetGrabbedWindow, "SDL_GetGrabbedWindow")
	register(&fnSetWindowMouseRect, "SDL_SetWindowMouseRect")
	register(&fnGetWindowMouseRect, "SDL_GetWindowMouseRect")
	register(&fnSetWindowOpacity, "SDL_SetWindowOpacity")
	register(&fnGetWindowOpacity, "SDL_GetWindowOpacity")
	register(&fnSetWindowModalFor, "SDL_SetWindowModalFor")
	register(&fnSetWindowInputFocus, "SDL_SetWindowInputFocus")
	register(&fnSetWindowFocusable, "SDL_SetWindowFocusable")
	register(&fnShowWindowSystemMenu, "SDL_ShowWindowSystemMenu")
	register(&fnSetWindowHitTest, "SDL_SetWindowHitTest")
	register(&fnFlashWindow, "SDL_FlashWindow")
	register(&fnDestroyWindow, "SDL_DestroyWindow")
	register(&fnScreenSaverEnabled, "SDL_ScreenSaverEnabled")
	register(&fnEnableScreenSaver, "SDL_EnableScreenSaver")
	register(&fnDisableScreenSaver, "SDL_DisableScreenSaver")
}

// GetNumVideoDrivers returns the number of built-in video drivers.
func GetNumVideoDrivers() int {
	return int(fnGetNumVideoDrivers())
}

// GetVideoDriver returns the name of a built-in video driver.
func GetVideoDriver(index int) string {
	return fnGetVideoDriver(int32(index))
}

// GetCurrentVideoDriver returns the name of the initialized video driver.
func GetCurrentVideoDriver() string {
	return fnGetCurrentVideoDriver()
}

// GetSystemTheme returns the current system theme.
func GetSystemTheme() SystemTheme {
	return fnGetSystemTheme()
}

// GetDisplays returns the connected displays.
func GetDisplays() ([]DisplayID, error) {
	var count int32
	p := fnGetDisplays(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetPrimaryDisplay returns the primary display.
func GetPrimaryDisplay() (DisplayID, error) {
	id := fnGetPrimaryDisplay()
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// Properties returns the display's property bag.
func (id DisplayID) Properties() (PropertiesID, error) {
	props := fnGetDisplayProperties(id)
	if props == 0 {
		return 0, fail()
	}
	return props, nil
}

// Name returns the display's name.
func (id DisplayID) Name() string {
	return fnGetDisplayName(id)
}

// Bounds returns the display's desktop area.
func (id DisplayID) Bounds() (Rect, error) {
	var r Rect
	if err := errorFromCode(fnGetDisplayBounds(id, &r)); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// UsableBounds returns the display's desktop area minus system decorations.
func (id DisplayID) UsableBounds() (Rect, error) {
	var r Rect
	if err := errorFromCode(fnGetDisplayUsableBounds(id, &r)); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// NaturalOrientation returns the display's orientation when undocked.
func (id DisplayID) NaturalOrientation() DisplayOrientation {
	return fnGetNaturalDisplayOrientation(id)
}

// CurrentOrientation returns the display's current orientation.
func (id DisplayID) CurrentOrientation() DisplayOrientation {
	return fnGetCurrentDisplayOrientation(id)
}

// ContentScale returns the display's recommended UI scale factor.
func (id DisplayID) ContentScale() float32 {
	return fnGetDisplayContentScale(id)
}

// FullscreenModes returns the display's fullscreen modes, best first. The
// DisplayMode structures stay owned by the library.
func (id DisplayID) FullscreenModes() ([]*DisplayMode, error) {
	var count int32
	p := fnGetFullscreenDisplayModes(id, &count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// ClosestFullscreenMode returns the closest match for the requested mode.
func (id DisplayID) ClosestFullscreenMode(w, h int32, refreshRate float32, includeHighDensity bool) (*DisplayMode, error) {
	m := fnGetClosestFullscreenDisplayMode(id, w, h, refreshRate, FromBool(includeHighDensity))
	if m == nil {
		return nil, fail()
	}
	return m, nil
}

// DesktopMode returns the display's mode when no fullscreen window covers it.
func (id DisplayID) DesktopMode() (*DisplayMode, error) {
	m := fnGetDesktopDisplayMode(id)
	if m == nil {
		return nil, fail()
	}
	return m, nil
}

// CurrentMode returns the display's current mode.
func (id DisplayID) CurrentMode() (*DisplayMode, error) {
	m := fnGetCurrentDisplayMode(id)
	if m == nil {
		return nil, fail()
	}
	return m, nil
}

// GetDisplayForPoint returns the display containing the point.
func GetDisplayForPoint(p Point) (DisplayID, error) {
	id := fnGetDisplayForPoint(&p)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// GetDisplayForRect returns the display closest to the rectangle's center.
func GetDisplayForRect(r Rect) (DisplayID, error) {
	id := fnGetDisplayForRect(&r)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// CreateWindow creates a window with the given title, size, and flags.
func CreateWindow(title string, w, h int32, flags WindowFlags) (*Window, error) {
	win := fnCreateWindow(title, w, h, flags.Mask())
	if win == nil {
		return nil, fail()
	}
	return win, nil
}

// CreatePopupWindow creates a popup (tooltip or menu) child of parent. The
// flags must include Tooltip or PopupMenu.
func CreatePopupWindow(parent *Window, offsetX, offsetY, w, h int32, flags WindowFlags) (*Window, error) {
	win := fnCreatePopupWindow(parent, offsetX, offsetY, w, h, flags.Mask())
	if win == nil {
		return nil, fail()
	}
	return win, nil
}

// CreateWindowWithProperties creates a window configured by a property bag.
func CreateWindowWithProperties(props PropertiesID) (*Window, error) {
	win := fnCreateWindowWithProperties(props)
	if win == nil {
		return nil, fail()
	}
	return win, nil
}

// GetWindowFromID returns the window with the given ID, if any.
func GetWindowFromID(id WindowID) (*Window, error) {
	win := fnGetWindowFromID(id)
	if win == nil {
		return nil, fail()
	}
	return win, nil
}

// GetGrabbedWindow returns the window holding an input grab, or nil.
func GetGrabbedWindow() *Window {
	return fnGetGrabbedWindow()
}

// ID returns the window's ID.
func (w *Window) ID() (WindowID, error) {
	id := fnGetWindowID(w)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// Parent returns the window's parent, or nil for top-level windows.
func (w *Window) Parent() *Window {
	return fnGetWindowParent(w)
}

// Properties returns the window's property bag.
func (w *Window) Properties() (PropertiesID, error) {
	props := fnGetWindowProperties(w)
	if props == 0 {
		return 0, fail()
	}
	return props, nil
}

// Display returns the display the window is on.
func (w *Window) Display() (DisplayID, error) {
	id := fnGetDisplayForWindow(w)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// PixelDensity returns the ratio of backing-store pixels to window units.
func (w *Window) PixelDensity() float32 {
	return fnGetWindowPixelDensity(w)
}

// DisplayScale returns the suggested content scale for the window.
func (w *Window) DisplayScale() float32 {
	return fnGetWindowDisplayScale(w)
}

// SetFullscreenMode sets the mode used when the window is fullscreen; nil
// selects borderless fullscreen-desktop.
func (w *Window) SetFullscreenMode(mode *DisplayMode) error {
	return errorFromCode(fnSetWindowFullscreenMode(w, mode))
}

// FullscreenMode returns the window's exclusive fullscreen mode, or nil for
// borderless fullscreen-desktop.
func (w *Window) FullscreenMode() *DisplayMode {
	return fnGetWindowFullscreenMode(w)
}

// PixelFormat returns the window's pixel format.
func (w *Window) PixelFormat() PixelFormatEnum {
	return fnGetWindowPixelFormat(w)
}

// Flags returns the window's current flags.
func (w *Window) Flags() WindowFlags {
	return WindowFlagsFromMask(fnGetWindowFlags(w))
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	return errorFromCode(fnSetWindowTitle(w, title))
}

// Title returns the window title.
func (w *Window) Title() string {
	return fnGetWindowTitle(w)
}

// SetIcon sets the window icon.
func (w *Window) SetIcon(icon *Surface) error {
	return errorFromCode(fnSetWindowIcon(w, icon))
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int32) error {
	return errorFromCode(fnSetWindowPosition(w, x, y))
}

// Position returns the window position.
func (w *Window) Position() (x, y int32, err error) {
	err = errorFromCode(fnGetWindowPosition(w, &x, &y))
	return
}

// SetSize resizes the window's client area.
func (w *Window) SetSize(width, height int32) error {
	return errorFromCode(fnSetWindowSize(w, width, height))
}

// Size returns the window's client area size.
func (w *Window) Size() (width, height int32, err error) {
	err = errorFromCode(fnGetWindowSize(w, &width, &height))
	return
}

// BordersSize returns the size of the window's decorations.
func (w *Window) BordersSize() (top, left, bottom, right int32, err error) {
	err = errorFromCode(fnGetWindowBordersSize(w, &top, &left, &bottom, &right))
	return
}

// SizeInPixels returns the window's client area in backing-store pixels.
func (w *Window) SizeInPixels() (width, height int32, err error) {
	err = errorFromCode(fnGetWindowSizeInPixels(w, &width, &height))
	return
}

// SetMinimumSize sets the window's minimum client area size.
func (w *Window) SetMinimumSize(width, height int32) error {
	return errorFromCode(fnSetWindowMinimumSize(w, width, height))
}

// MinimumSize returns the window's minimum client area size.
func (w *Window) MinimumSize() (width, height int32, err error) {
	err = errorFromCode(fnGetWindowMinimumSize(w, &width, &height))
	return
}

// SetMaximumSize sets the window's maximum client area size.
func (w *Window) SetMaximumSize(width, height int32) error {
	return errorFromCode(fnSetWindowMaximumSize(w, width, height))
}

// MaximumSize returns the window's maximum client area size.
func (w *Window) MaximumSize() (width, height int32, err error) {
	err = errorFromCode(fnGetWindowMaximumSize(w, &width, &height))
	return
}

// SetBordered adds or removes the window's decorations.
func (w *Window) SetBordered(bordered bool) error {
	return errorFromCode(fnSetWindowBordered(w, FromBool(bordered)))
}

// SetResizable allows or disallows user resizing.
func (w *Window) SetResizable(resizable bool) error {
	return errorFromCode(fnSetWindowResizable(w, FromBool(resizable)))
}

// SetAlwaysOnTop keeps the window above others.
func (w *Window) SetAlwaysOnTop(onTop bool) error {
	return errorFromCode(fnSetWindowAlwaysOnTop(w, FromBool(onTop)))
}

// Show makes the window visible.
func (w *Window) Show() error {
	return errorFromCode(fnShowWindow(w))
}

// Hide makes the window invisible.
func (w *Window) Hide() error {
	return errorFromCode(fnHideWindow(w))
}

// Raise brings the window forward and requests input focus.
func (w *Window) Raise() error {
	return errorFromCode(fnRaiseWindow(w))
}

// Maximize requests the window be maximized.
func (w *Window) Maximize() error {
	return errorFromCode(fnMaximizeWindow(w))
}

// Minimize requests the window be minimized.
func (w *Window) Minimize() error {
	return errorFromCode(fnMinimizeWindow(w))
}

// Restore requests the window leave the minimized or maximized state.
func (w *Window) Restore() error {
	return errorFromCode(fnRestoreWindow(w))
}

// SetFullscreen enters or leaves fullscreen.
func (w *Window) SetFullscreen(fullscreen bool) error {
	return errorFromCode(fnSetWindowFullscreen(w, FromBool(fullscreen)))
}

// Sync blocks until any pending asynchronous window state changes settle.
func (w *Window) Sync() error {
	return errorFromCode(fnSyncWindow(w))
}

// HasSurface reports whether the window has an attached software surface.
func (w *Window) HasSurface() bool {
	return fnWindowHasSurface(w).Bool()
}

// Surface returns the window's software framebuffer, creating it if needed.
// The surface is owned by the window and freed with it.
func (w *Window) Surface() (*Surface, error) {
	s := fnGetWindowSurface(w)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// UpdateSurface copies the window surface to the screen.
func (w *Window) UpdateSurface() error {
	return errorFromCode(fnUpdateWindowSurface(w))
}

// UpdateSurfaceRects copies areas of the window surface to the screen.
func (w *Window) UpdateSurfaceRects(rects []Rect) error {
	if len(rects) == 0 {
		return nil
	}
	return errorFromCode(fnUpdateWindowSurfaceRects(w, &rects[0], int32(len(rects))))
}

// DestroySurface detaches and frees the window's software surface.
func (w *Window) DestroySurface() error {
	return errorFromCode(fnDestroyWindowSurface(w))
}

// SetKeyboardGrab confines keyboard input to the window.
func (w *Window) SetKeyboardGrab(grabbed bool) error {
	return errorFromCode(fnSetWindowKeyboardGrab(w, FromBool(grabbed)))
}

// SetMouseGrab confines the mouse pointer to the window.
func (w *Window) SetMouseGrab(grabbed bool) error {
	return errorFromCode(fnSetWindowMouseGrab(w, FromBool(grabbed)))
}

// KeyboardGrab reports whether the window holds a keyboard grab.
func (w *Window) KeyboardGrab() bool {
	return fnGetWindowKeyboardGrab(w).Bool()
}

// MouseGrab reports whether the window holds a mouse grab.
func (w *Window) MouseGrab() bool {
	return fnGetWindowMouseGrab(w).Bool()
}

// SetMouseRect confines the pointer to an area of the window; nil clears it.
func (w *Window) SetMouseRect(rect *Rect) error {
	return errorFromCode(fnSetWindowMouseRect(w, rect))
}

// MouseRect returns the pointer confinement area, or nil. The rectangle is
// owned by the library.
func (w *Window) MouseRect() *Rect {
	return fnGetWindowMouseRect(w)
}

// SetOpacity sets the window opacity in [0, 1].
func (w *Window) SetOpacity(opacity float32) error {
	return errorFromCode(fnSetWindowOpacity(w, opacity))
}

// Opacity returns the window opacity.
func (w *Window) Opacity() (float32, error) {
	var opacity float32
	if err := errorFromCode(fnGetWindowOpacity(w, &opacity)); err != nil {
		return 0, err
	}
	return opacity, nil
}

// SetModalFor makes the window modal relative to parent.
func (w *Window) SetModalFor(parent *Window) error {
	return errorFromCode(fnSetWindowModalFor(w, parent))
}

// SetInputFocus gives the window input focus without raising it.
func (w *Window) SetInputFocus() error {
	return errorFromCode(fnSetWindowInputFocus(w))
}

// SetFocusable controls whether the window can take input focus.
func (w *Window) SetFocusable(focusable bool) error {
	return errorFromCode(fnSetWindowFocusable(w, FromBool(focusable)))
}

// ShowSystemMenu pops up the window manager menu at a window coordinate.
func (w *Window) ShowSystemMenu(x, y int32) error {
	return errorFromCode(fnShowWindowSystemMenu(w, x, y))
}

// Flash requests user attention per the given operation.
func (w *Window) Flash(operation FlashOperation) error {
	return errorFromCode(fnFlashWindow(w, operation))
}

// Destroy closes and frees the window. The handle must not be used again;
// no use-after-destroy protection is added here.
func (w *Window) Destroy() {
	fnDestroyWindow(w)
}

var hitTestTrampoline = purego.NewCallback(func(win uintptr, area uintptr, data uintptr) uintptr {
	cb, ok := pointer.Restore(unsafe.Pointer(data)).(HitTest)
	if !ok || cb == nil {
		return uintptr(HitTestNormal)
	}
	p := *(*Point)(unsafe.Pointer(area))
	return uintptr(cb((*Window)(unsafe.Pointer(win)), p))
})

// SetHitTest installs a hit-testing callback for borderless windows; nil
// removes it. The callback runs on the thread pumping events.
func (w *Window) SetHitTest(cb HitTest) error {
	if cb == nil {
		return errorFromCode(fnSetWindowHitTest(w, 0, nil))
	}
	return errorFromCode(fnSetWindowHitTest(w, hitTestTrampoline, pointer.Save(cb)))
}

// ScreenSaverEnabled reports whether the screen saver is allowed to run.
func ScreenSaverEnabled() bool {
	return fnScreenSaverEnabled().Bool()
}

// EnableScreenSaver allows the screen saver to run.
func EnableScreenSaver() error {
	return errorFromCode(fnEnableScreenSaver())
}

// DisableScreenSaver keeps the screen saver from running.
func DisableScreenSaver() error {
	return errorFromCode(fnDisableScreenSaver())
}
