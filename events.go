package sdl

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	pointer "github.com/mattn/go-pointer"
)

// EventType mirrors SDL_EventType. The numbering bands (0x100 application,
// 0x200 window, 0x300 keyboard, ...) are the library's reserved ranges and are
// preserved exactly, including gaps within a band.
type EventType uint32

const (
	EventFirst EventType = 0

	// Application events.
	EventQuit                EventType = 0x100
	EventTerminating         EventType = 0x101
	EventLowMemory           EventType = 0x102
	EventWillEnterBackground EventType = 0x103
	EventDidEnterBackground  EventType = 0x104
	EventWillEnterForeground EventType = 0x105
	EventDidEnterForeground  EventType = 0x106
	EventLocaleChanged       EventType = 0x107
	EventSystemThemeChanged  EventType = 0x108

	// Display events.
	EventDisplayOrientation         EventType = 0x151
	EventDisplayAdded               EventType = 0x152
	EventDisplayRemoved             EventType = 0x153
	EventDisplayMoved               EventType = 0x154
	EventDisplayContentScaleChanged EventType = 0x155
	EventDisplayFirst                         = EventDisplayOrientation
	EventDisplayLast                          = EventDisplayContentScaleChanged

	// Window events. 0x200/0x201 are reserved (legacy syswm slots).
	EventWindowShown               EventType = 0x202
	EventWindowHidden              EventType = 0x203
	EventWindowExposed             EventType = 0x204
	EventWindowMoved               EventType = 0x205
	EventWindowResized             EventType = 0x206
	EventWindowPixelSizeChanged    EventType = 0x207
	EventWindowMinimized           EventType = 0x208
	EventWindowMaximized           EventType = 0x209
	EventWindowRestored            EventType = 0x20a
	EventWindowMouseEnter          EventType = 0x20b
	EventWindowMouseLeave          EventType = 0x20c
	EventWindowFocusGained         EventType = 0x20d
	EventWindowFocusLost           EventType = 0x20e
	EventWindowCloseRequested      EventType = 0x20f
	EventWindowTakeFocus           EventType = 0x210
	EventWindowHitTest             EventType = 0x211
	EventWindowICCProfChanged      EventType = 0x212
	EventWindowDisplayChanged      EventType = 0x213
	EventWindowDisplayScaleChanged EventType = 0x214
	EventWindowOccluded            EventType = 0x215
	EventWindowEnterFullscreen     EventType = 0x216
	EventWindowLeaveFullscreen     EventType = 0x217
	EventWindowDestroyed           EventType = 0x218
	EventWindowPenEnter            EventType = 0x219
	EventWindowPenLeave            EventType = 0x21a
	EventWindowFirst                         = EventWindowShown
	EventWindowLast                          = EventWindowPenLeave

	// Keyboard events.
	EventKeyDown       EventType = 0x300
	EventKeyUp         EventType = 0x301
	EventTextEditing   EventType = 0x302
	EventTextInput     EventType = 0x303
	EventKeymapChanged EventType = 0x304

	// Mouse events.
	EventMouseMotion     EventType = 0x400
	EventMouseButtonDown EventType = 0x401
	EventMouseButtonUp   EventType = 0x402
	EventMouseWheel      EventType = 0x403

	// Joystick events. 0x601 is a reserved gap (the removed ball-motion slot).
	EventJoystickAxisMotion     EventType = 0x600
	EventJoystickHatMotion      EventType = 0x602
	EventJoystickButtonDown     EventType = 0x603
	EventJoystickButtonUp       EventType = 0x604
	EventJoystickAdded          EventType = 0x605
	EventJoystickRemoved        EventType = 0x606
	EventJoystickBatteryUpdated EventType = 0x607
	EventJoystickUpdateComplete EventType = 0x608

	// Gamepad events.
	EventGamepadAxisMotion     EventType = 0x650
	EventGamepadButtonDown     EventType = 0x651
	EventGamepadButtonUp       EventType = 0x652
	EventGamepadAdded          EventType = 0x653
	EventGamepadRemoved        EventType = 0x654
	EventGamepadRemapped       EventType = 0x655
	EventGamepadTouchpadDown   EventType = 0x656
	EventGamepadTouchpadMotion EventType = 0x657
	EventGamepadTouchpadUp     EventType = 0x658
	EventGamepadSensorUpdate   EventType = 0x659
	EventGamepadUpdateComplete EventType = 0x65a

	// Touch events.
	EventFingerDown   EventType = 0x700
	EventFingerUp     EventType = 0x701
	EventFingerMotion EventType = 0x702

	// Clipboard events.
	EventClipboardUpdate EventType = 0x900

	// Drag and drop events.
	EventDropFile     EventType = 0x1000
	EventDropText     EventType = 0x1001
	EventDropBegin    EventType = 0x1002
	EventDropComplete EventType = 0x1003
	EventDropPosition EventType = 0x1004

	// Audio hotplug events.
	EventAudioDeviceAdded         EventType = 0x1100
	EventAudioDeviceRemoved       EventType = 0x1101
	EventAudioDeviceFormatChanged EventType = 0x1102

	// Sensor events.
	EventSensorUpdate EventType = 0x1200

	// Pen events.
	EventPenDown       EventType = 0x1300
	EventPenUp         EventType = 0x1301
	EventPenMotion     EventType = 0x1302
	EventPenButtonDown EventType = 0x1303
	EventPenButtonUp   EventType = 0x1304

	// Render events.
	EventRenderTargetsReset EventType = 0x2000
	EventRenderDeviceReset  EventType = 0x2001

	EventPollSentinel EventType = 0x7f00

	// EventUser and above are free for application use via RegisterEvents.
	EventUser EventType = 0x8000
	EventLast EventType = 0xffff
)

// Event is the 128-byte event union the library writes into. The raw layout
// exists only for the boundary crossing; read the discriminant with Type and
// take the matching typed view.
type Event struct {
	data [16]uint64
}

// Type returns the event discriminant.
func (e *Event) Type() EventType {
	return *(*EventType)(unsafe.Pointer(e))
}

// CommonEvent holds the fields every event begins with.
type CommonEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
}

// DisplayEvent mirrors SDL_DisplayEvent.
type DisplayEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	DisplayID DisplayID
	Data1     int32
}

// WindowEvent mirrors SDL_WindowEvent.
type WindowEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Data1     int32
	Data2     int32
}

// KeyboardEvent mirrors SDL_KeyboardEvent.
type KeyboardEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	State     uint8
	Repeat    uint8
	_         uint8
	_         uint8
	Keysym    Keysym
}

// TextEditingEvent mirrors SDL_TextEditingEvent. Text is foreign memory owned
// by the event; use the Editing accessor for a Go string.
type TextEditingEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	_         uint32
	Text      *byte
	Start     int32
	Length    int32
}

// Editing returns the edit text as a Go string.
func (e *TextEditingEvent) Editing() string {
	return goString(e.Text)
}

// TextInputEvent mirrors SDL_TextInputEvent.
type TextInputEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	_         uint32
	Text      *byte
}

// Input returns the entered text as a Go string.
func (e *TextInputEvent) Input() string {
	return goString(e.Text)
}

// MouseMotionEvent mirrors SDL_MouseMotionEvent.
type MouseMotionEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     MouseID
	State     uint32
	X         float32
	Y         float32
	Xrel      float32
	Yrel      float32
}

// Buttons returns the button state as a structured record.
func (e *MouseMotionEvent) Buttons() MouseButtonFlags {
	return MouseButtonFlagsFromMask(e.State)
}

// MouseButtonEvent mirrors SDL_MouseButtonEvent.
type MouseButtonEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     MouseID
	Button    uint8
	State     uint8
	Clicks    uint8
	_         uint8
	X         float32
	Y         float32
}

// MouseWheelEvent mirrors SDL_MouseWheelEvent.
type MouseWheelEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     MouseID
	X         float32
	Y         float32
	Direction MouseWheelDirection
	MouseX    float32
	MouseY    float32
}

// JoyAxisEvent mirrors SDL_JoyAxisEvent.
type JoyAxisEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Axis      uint8
	_         uint8
	_         uint8
	_         uint8
	Value     int16
	_         uint16
}

// JoyHatEvent mirrors SDL_JoyHatEvent.
type JoyHatEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Hat       uint8
	Value     uint8
	_         uint8
	_         uint8
}

// JoyButtonEvent mirrors SDL_JoyButtonEvent.
type JoyButtonEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Button    uint8
	State     uint8
	_         uint8
	_         uint8
}

// JoyDeviceEvent mirrors SDL_JoyDeviceEvent.
type JoyDeviceEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
}

// JoyBatteryEvent mirrors SDL_JoyBatteryEvent.
type JoyBatteryEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Level     JoystickPowerLevel
}

// GamepadAxisEvent mirrors SDL_GamepadAxisEvent.
type GamepadAxisEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Axis      uint8
	_         uint8
	_         uint8
	_         uint8
	Value     int16
	_         uint16
}

// GamepadButtonEvent mirrors SDL_GamepadButtonEvent.
type GamepadButtonEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Button    uint8
	State     uint8
	_         uint8
	_         uint8
}

// GamepadDeviceEvent mirrors SDL_GamepadDeviceEvent.
type GamepadDeviceEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
}

// GamepadTouchpadEvent mirrors SDL_GamepadTouchpadEvent.
type GamepadTouchpadEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     JoystickID
	Touchpad  int32
	Finger    int32
	X         float32
	Y         float32
	Pressure  float32
}

// GamepadSensorEvent mirrors SDL_GamepadSensorEvent.
type GamepadSensorEvent struct {
	Type            EventType
	_               uint32
	Timestamp       uint64
	Which           JoystickID
	Sensor          int32
	Data            [3]float32
	_               uint32
	SensorTimestamp uint64
}

// AudioDeviceEvent mirrors SDL_AudioDeviceEvent.
type AudioDeviceEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	Which     AudioDeviceID
	IsCapture uint8
	_         uint8
	_         uint8
	_         uint8
}

// TouchFingerEvent mirrors SDL_TouchFingerEvent.
type TouchFingerEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	TouchID   TouchID
	FingerID  FingerID
	X         float32
	Y         float32
	Dx        float32
	Dy        float32
	Pressure  float32
	WindowID  WindowID
}

// PenTipEvent mirrors SDL_PenTipEvent.
type PenTipEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     PenID
	Tip       uint8
	State     uint8
	PenState  uint16
	X         float32
	Y         float32
	Axes      [PenNumAxes]float32
}

// PenMotionEvent mirrors SDL_PenMotionEvent.
type PenMotionEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     PenID
	_         uint8
	_         uint8
	PenState  uint16
	X         float32
	Y         float32
	Axes      [PenNumAxes]float32
}

// PenButtonEvent mirrors SDL_PenButtonEvent.
type PenButtonEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Which     PenID
	Button    uint8
	State     uint8
	PenState  uint16
	X         float32
	Y         float32
	Axes      [PenNumAxes]float32
}

// DropEvent mirrors SDL_DropEvent. Source and Data are foreign memory owned
// by the event.
type DropEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	X         float32
	Y         float32
	_         uint32
	Source    *byte
	Data      *byte
}

// SourceString returns the drop source as a Go string.
func (e *DropEvent) SourceString() string {
	return goString(e.Source)
}

// DataString returns the dropped payload as a Go string.
func (e *DropEvent) DataString() string {
	return goString(e.Data)
}

// ClipboardEvent mirrors SDL_ClipboardEvent.
type ClipboardEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
}

// SensorEvent mirrors SDL_SensorEvent.
type SensorEvent struct {
	Type            EventType
	_               uint32
	Timestamp       uint64
	Which           SensorID
	Data            [6]float32
	_               uint32
	SensorTimestamp uint64
}

// QuitEvent mirrors SDL_QuitEvent.
type QuitEvent = CommonEvent

// UserEvent mirrors SDL_UserEvent.
type UserEvent struct {
	Type      EventType
	_         uint32
	Timestamp uint64
	WindowID  WindowID
	Code      int32
	Data1     unsafe.Pointer
	Data2     unsafe.Pointer
}

// Typed views over the union. Taking a view whose type does not match the
// discriminant reads garbage, exactly as in C.

func (e *Event) Common() *CommonEvent               { return (*CommonEvent)(unsafe.Pointer(e)) }
func (e *Event) Display() *DisplayEvent             { return (*DisplayEvent)(unsafe.Pointer(e)) }
func (e *Event) Window() *WindowEvent               { return (*WindowEvent)(unsafe.Pointer(e)) }
func (e *Event) Key() *KeyboardEvent                { return (*KeyboardEvent)(unsafe.Pointer(e)) }
func (e *Event) TextEditing() *TextEditingEvent     { return (*TextEditingEvent)(unsafe.Pointer(e)) }
func (e *Event) TextInput() *TextInputEvent         { return (*TextInputEvent)(unsafe.Pointer(e)) }
func (e *Event) MouseMotion() *MouseMotionEvent     { return (*MouseMotionEvent)(unsafe.Pointer(e)) }
func (e *Event) MouseButton() *MouseButtonEvent     { return (*MouseButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) MouseWheel() *MouseWheelEvent       { return (*MouseWheelEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyAxis() *JoyAxisEvent             { return (*JoyAxisEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyHat() *JoyHatEvent               { return (*JoyHatEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyButton() *JoyButtonEvent         { return (*JoyButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyDevice() *JoyDeviceEvent         { return (*JoyDeviceEvent)(unsafe.Pointer(e)) }
func (e *Event) JoyBattery() *JoyBatteryEvent       { return (*JoyBatteryEvent)(unsafe.Pointer(e)) }
func (e *Event) GamepadAxis() *GamepadAxisEvent     { return (*GamepadAxisEvent)(unsafe.Pointer(e)) }
func (e *Event) GamepadButton() *GamepadButtonEvent { return (*GamepadButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) GamepadDevice() *GamepadDeviceEvent { return (*GamepadDeviceEvent)(unsafe.Pointer(e)) }
func (e *Event) GamepadTouchpad() *GamepadTouchpadEvent {
	return (*GamepadTouchpadEvent)(unsafe.Pointer(e))
}
func (e *Event) GamepadSensor() *GamepadSensorEvent { return (*GamepadSensorEvent)(unsafe.Pointer(e)) }
func (e *Event) AudioDevice() *AudioDeviceEvent     { return (*AudioDeviceEvent)(unsafe.Pointer(e)) }
func (e *Event) TouchFinger() *TouchFingerEvent     { return (*TouchFingerEvent)(unsafe.Pointer(e)) }
func (e *Event) PenTip() *PenTipEvent               { return (*PenTipEvent)(unsafe.Pointer(e)) }
func (e *Event) PenMotion() *PenMotionEvent         { return (*PenMotionEvent)(unsafe.Pointer(e)) }
func (e *Event) PenButton() *PenButtonEvent         { return (*PenButtonEvent)(unsafe.Pointer(e)) }
func (e *Event) Drop() *DropEvent                   { return (*DropEvent)(unsafe.Pointer(e)) }
func (e *Event) Clipboard() *ClipboardEvent         { return (*ClipboardEvent)(unsafe.Pointer(e)) }
func (e *Event) Sensor() *SensorEvent               { return (*SensorEvent)(unsafe.Pointer(e)) }
func (e *Event) Quit() *QuitEvent                   { return (*QuitEvent)(unsafe.Pointer(e)) }
func (e *Event) User() *UserEvent                   { return (*UserEvent)(unsafe.Pointer(e)) }

// EventAction mirrors SDL_EventAction for PeepEvents.
type EventAction uint32

const (
	AddEvent EventAction = iota
	PeekEvent
	GetEvent
)

// EventFilter inspects a queued or incoming event. Returning false drops the
// event when used as a queue filter; the return value is ignored for watches.
type EventFilter func(e *Event) bool

// EventWatchHandle identifies an installed event watch.
type EventWatchHandle struct {
	userdata unsafe.Pointer
}

var (
	fnPumpEvents       func()
	fnPeepEvents       func(events *Event, numevents int32, action EventAction, minType, maxType EventType) int32
	fnHasEvent         func(typ EventType) Bool
	fnHasEvents        func(minType, maxType EventType) Bool
	fnFlushEvent       func(typ EventType)
	fnFlushEvents      func(minType, maxType EventType)
	fnPollEvent        func(event *Event) Bool
	fnWaitEvent        func(event *Event) Bool
	fnWaitEventTimeout func(event *Event, timeoutMS int32) Bool
	fnPushEvent        func(event *Event) int32
	fnSetEventFilter   func(filter uintptr, userdata unsafe.Pointer)
	fnAddEventWatch    func(filter uintptr, userdata unsafe.Pointer) int32
	fnDelEventWatch    func(filter uintptr, userdata unsafe.Pointer)
	fnFilterEvents     func(filter uintptr, userdata unsafe.Pointer)
	fnSetEventEnabled  func(typ EventType, enabled Bool)
	fnEventEnabled     func(typ EventType) Bool
	fnRegisterEvents   func(numevents int32) EventType
)

func registerEventFuncs() {
	register(&fnPumpEvents, "SDL_PumpEvents")
	register(&fnPeepEvents, "SDL_PeepEvents")
	register(&fnHasEvent, "SDL_HasEvent")
	register(&fnHasEvents, "SDL_HasEvents")
	register(&fnFlushEvent, "SDL_FlushEvent")
	register(&fnFlushEvents, "SDL_FlushEvents")
	register(&fnPollEvent, "SDL_PollEvent")
	register(&fnWaitEvent, "SDL_WaitEvent")
	register(&fnWaitEventTimeout, "SDL_WaitEventTimeout")
	register(&fnPushEvent, "SDL_PushEvent")
	register(&fnSetEventFilter, "SDL_SetEventFilter")
	register(&fnAddEventWatch, "SDL_AddEventWatch")
	register(&fnDelEventWatch, "SDL_DelEventWatch")
	register(&fnFilterEvents, "SDL_FilterEvents")
	register(&fnSetEventEnabled, "SDL_SetEventEnabled")
	register(&fnEventEnabled, "SDL_EventEnabled")
	register(&fnRegisterEvents, "SDL_RegisterEvents")
}

// PumpEvents gathers pending input into the event queue. Must run on the
// thread that initialized the video subsystem.
func PumpEvents() {
	fnPumpEvents()
}

// PeepEvents adds, peeks, or removes events in a type range. Returns the
// number of events acted on.
func PeepEvents(events []Event, action EventAction, minType, maxType EventType) (int, error) {
	var p *Event
	if len(events) > 0 {
		p = &events[0]
	}
	n := fnPeepEvents(p, int32(len(events)), action, minType, maxType)
	if n < 0 {
		return 0, fail()
	}
	return int(n), nil
}

// HasEvent reports whether an event of the given type is queued.
func HasEvent(typ EventType) bool {
	return fnHasEvent(typ).Bool()
}

// HasEvents reports whether any event in the type range is queued.
func HasEvents(minType, maxType EventType) bool {
	return fnHasEvents(minType, maxType).Bool()
}

// FlushEvent drops all queued events of the given type.
func FlushEvent(typ EventType) {
	fnFlushEvent(typ)
}

// FlushEvents drops all queued events in the type range.
func FlushEvents(minType, maxType EventType) {
	fnFlushEvents(minType, maxType)
}

// PollEvent fills in the next queued event, returning false when the queue is
// empty.
func PollEvent(event *Event) bool {
	return fnPollEvent(event).Bool()
}

// WaitEvent blocks until an event arrives.
func WaitEvent(event *Event) error {
	return errorFromBool(fnWaitEvent(event))
}

// WaitEventTimeout blocks up to timeoutMS for an event; false means the
// timeout elapsed.
func WaitEventTimeout(event *Event, timeoutMS int32) bool {
	return fnWaitEventTimeout(event, timeoutMS).Bool()
}

// PushEvent queues an event, running it through the event filter first.
// Returns false when the filter dropped it.
func PushEvent(event *Event) (bool, error) {
	rc := fnPushEvent(event)
	if rc < 0 {
		return false, fail()
	}
	return rc > 0, nil
}

var eventFilterTrampoline = purego.NewCallback(func(userdata, event uintptr) uintptr {
	fn, ok := pointer.Restore(unsafe.Pointer(userdata)).(EventFilter)
	if !ok || fn == nil {
		return 1
	}
	if fn((*Event)(unsafe.Pointer(event))) {
		return 1
	}
	return 0
})

var (
	filterMu       sync.Mutex
	queueFilter    EventFilter
	queueFilterRef unsafe.Pointer
)

// SetEventFilter installs a filter that runs for every incoming event; nil
// removes it. The filter may run on any thread the library generates events
// on.
func SetEventFilter(filter EventFilter) {
	filterMu.Lock()
	defer filterMu.Unlock()
	if queueFilterRef != nil {
		pointer.Unref(queueFilterRef)
		queueFilterRef = nil
	}
	queueFilter = filter
	if filter == nil {
		fnSetEventFilter(0, nil)
		return
	}
	queueFilterRef = pointer.Save(filter)
	fnSetEventFilter(eventFilterTrampoline, queueFilterRef)
}

// GetEventFilter returns the filter installed through SetEventFilter, or nil.
func GetEventFilter() EventFilter {
	filterMu.Lock()
	defer filterMu.Unlock()
	return queueFilter
}

// AddEventWatch installs a callback that observes every event without
// filtering it. The returned handle removes the watch.
func AddEventWatch(watch EventFilter) (*EventWatchHandle, error) {
	ref := pointer.Save(watch)
	if err := errorFromCode(fnAddEventWatch(eventFilterTrampoline, ref)); err != nil {
		pointer.Unref(ref)
		return nil, err
	}
	return &EventWatchHandle{userdata: ref}, nil
}

// DelEventWatch removes a watch installed by AddEventWatch.
func DelEventWatch(h *EventWatchHandle) {
	if h == nil || h.userdata == nil {
		return
	}
	fnDelEventWatch(eventFilterTrampoline, h.userdata)
	pointer.Unref(h.userdata)
	h.userdata = nil
}

// FilterEvents runs the filter once over the current queue, dropping events
// it rejects.
func FilterEvents(filter EventFilter) {
	ref := pointer.Save(filter)
	fnFilterEvents(eventFilterTrampoline, ref)
	pointer.Unref(ref)
}

// SetEventEnabled turns processing of an event type on or off.
func SetEventEnabled(typ EventType, enabled bool) {
	fnSetEventEnabled(typ, FromBool(enabled))
}

// EventEnabled reports whether an event type is processed.
func EventEnabled(typ EventType) bool {
	return fnEventEnabled(typ).Bool()
}

// RegisterEvents reserves a range of user event types, returning the first.
func RegisterEvents(numevents int32) (EventType, error) {
	typ := fnRegisterEvents(numevents)
	// The library signals exhaustion with an all-ones value.
	if typ == 0 || typ == 0xffffffff {
		return 0, fail()
	}
	return typ, nil
}
