package sdl

import (
	"testing"
	"unsafe"
)

func TestEventTypeValues(t *testing.T) {
	tests := []struct {
		name string
		got  EventType
		want EventType
	}{
		{"quit", EventQuit, 0x100},
		{"system theme changed", EventSystemThemeChanged, 0x108},
		{"display orientation", EventDisplayOrientation, 0x151},
		{"window shown", EventWindowShown, 0x202},
		{"window pen leave", EventWindowPenLeave, 0x21a},
		{"key down", EventKeyDown, 0x300},
		{"mouse motion", EventMouseMotion, 0x400},
		{"joystick axis", EventJoystickAxisMotion, 0x600},
		{"joystick hat skips ball slot", EventJoystickHatMotion, 0x602},
		{"gamepad axis", EventGamepadAxisMotion, 0x650},
		{"finger down", EventFingerDown, 0x700},
		{"clipboard update", EventClipboardUpdate, 0x900},
		{"drop file", EventDropFile, 0x1000},
		{"audio device added", EventAudioDeviceAdded, 0x1100},
		{"sensor update", EventSensorUpdate, 0x1200},
		{"pen down", EventPenDown, 0x1300},
		{"render targets reset", EventRenderTargetsReset, 0x2000},
		{"poll sentinel", EventPollSentinel, 0x7f00},
		{"user", EventUser, 0x8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestEventTypeBallSlotGap(t *testing.T) {
	// 0x601 was the joystick ball slot; nothing may occupy it.
	if EventJoystickAxisMotion+1 == EventJoystickHatMotion {
		t.Error("hat motion must leave the 0x601 slot vacant")
	}
}

func TestEventTypedView(t *testing.T) {
	var e Event
	k := (*KeyboardEvent)(unsafe.Pointer(&e))
	k.Type = EventKeyDown
	k.Timestamp = 123456789
	k.WindowID = 7
	k.State = 1
	k.Repeat = 1
	k.Keysym = Keysym{Scancode: ScancodeA, Sym: KeycodeA, Mod: 0x0001}

	if e.Type() != EventKeyDown {
		t.Fatalf("Type() = %#x, want %#x", e.Type(), EventKeyDown)
	}
	view := e.Key()
	if view.Timestamp != 123456789 || view.WindowID != 7 {
		t.Errorf("view header = %d/%d", view.Timestamp, view.WindowID)
	}
	if view.Keysym.Scancode != ScancodeA || view.Keysym.Sym != KeycodeA {
		t.Errorf("keysym = %+v", view.Keysym)
	}
	if !view.Keysym.Modifiers().LShift {
		t.Error("modifier bit lost in the view")
	}
}

func TestPollEventStandIn(t *testing.T) {
	restore := fnPollEvent
	defer func() { fnPollEvent = restore }()

	queue := []EventType{EventQuit, EventMouseMotion}
	fnPollEvent = func(event *Event) Bool {
		if len(queue) == 0 {
			return False
		}
		c := (*CommonEvent)(unsafe.Pointer(event))
		c.Type = queue[0]
		c.Timestamp = 42
		queue = queue[1:]
		return True
	}

	var got []EventType
	var e Event
	for PollEvent(&e) {
		got = append(got, e.Type())
	}
	if len(got) != 2 || got[0] != EventQuit || got[1] != EventMouseMotion {
		t.Errorf("drained %v", got)
	}
}

func TestPushEventStandIn(t *testing.T) {
	restore := fnPushEvent
	defer func() { fnPushEvent = restore }()

	var received EventType
	fnPushEvent = func(event *Event) int32 {
		received = event.Type()
		return 1
	}

	var e Event
	u := (*UserEvent)(unsafe.Pointer(&e))
	u.Type = EventUser
	u.Code = 5

	queued, err := PushEvent(&e)
	if err != nil {
		t.Fatalf("PushEvent: %v", err)
	}
	if !queued {
		t.Error("event should be queued")
	}
	if received != EventUser {
		t.Errorf("library saw type %#x, want %#x", received, EventUser)
	}
}

func TestPushEventFiltered(t *testing.T) {
	restore := fnPushEvent
	defer func() { fnPushEvent = restore }()

	fnPushEvent = func(event *Event) int32 { return 0 }

	var e Event
	queued, err := PushEvent(&e)
	if err != nil {
		t.Fatalf("PushEvent: %v", err)
	}
	if queued {
		t.Error("filtered event should report not queued")
	}
}
