package sdl

import (
	"testing"
	"unsafe"
)

func TestRectLayout(t *testing.T) {
	var r Rect
	if got := unsafe.Sizeof(r); got != 16 {
		t.Errorf("Sizeof(Rect) = %d, want 16", got)
	}
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"X", unsafe.Offsetof(r.X), 0},
		{"Y", unsafe.Offsetof(r.Y), 4},
		{"W", unsafe.Offsetof(r.W), 8},
		{"H", unsafe.Offsetof(r.H), 12},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("Offsetof(Rect.%s) = %d, want %d", tt.name, tt.offset, tt.want)
		}
	}
}

func TestFRectLayout(t *testing.T) {
	var r FRect
	if got := unsafe.Sizeof(r); got != 16 {
		t.Errorf("Sizeof(FRect) = %d, want 16", got)
	}
}

func TestKeysymLayout(t *testing.T) {
	var k Keysym
	if got := unsafe.Sizeof(k); got != 16 {
		t.Errorf("Sizeof(Keysym) = %d, want 16", got)
	}
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"Scancode", unsafe.Offsetof(k.Scancode), 0},
		{"Sym", unsafe.Offsetof(k.Sym), 4},
		{"Mod", unsafe.Offsetof(k.Mod), 8},
		{"Unused", unsafe.Offsetof(k.Unused), 12},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("Offsetof(Keysym.%s) = %d, want %d", tt.name, tt.offset, tt.want)
		}
	}
}

func TestEventLayout(t *testing.T) {
	var e Event
	if got := unsafe.Sizeof(e); got != 128 {
		t.Errorf("Sizeof(Event) = %d, want 128", got)
	}
	if got := unsafe.Alignof(e); got != 8 {
		t.Errorf("Alignof(Event) = %d, want 8", got)
	}
}

func TestKeyboardEventLayout(t *testing.T) {
	var e KeyboardEvent
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"Type", unsafe.Offsetof(e.Type), 0},
		{"Timestamp", unsafe.Offsetof(e.Timestamp), 8},
		{"WindowID", unsafe.Offsetof(e.WindowID), 16},
		{"State", unsafe.Offsetof(e.State), 20},
		{"Repeat", unsafe.Offsetof(e.Repeat), 21},
		{"Keysym", unsafe.Offsetof(e.Keysym), 24},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("Offsetof(KeyboardEvent.%s) = %d, want %d", tt.name, tt.offset, tt.want)
		}
	}
	if got := unsafe.Sizeof(e); got != 40 {
		t.Errorf("Sizeof(KeyboardEvent) = %d, want 40", got)
	}
}

func TestMouseMotionEventLayout(t *testing.T) {
	var e MouseMotionEvent
	tests := []struct {
		name   string
		offset uintptr
		want   uintptr
	}{
		{"Timestamp", unsafe.Offsetof(e.Timestamp), 8},
		{"WindowID", unsafe.Offsetof(e.WindowID), 16},
		{"Which", unsafe.Offsetof(e.Which), 20},
		{"State", unsafe.Offsetof(e.State), 24},
		{"X", unsafe.Offsetof(e.X), 28},
		{"Yrel", unsafe.Offsetof(e.Yrel), 40},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("Offsetof(MouseMotionEvent.%s) = %d, want %d", tt.name, tt.offset, tt.want)
		}
	}
}

func TestAudioSpecLayout(t *testing.T) {
	var s AudioSpec
	if got := unsafe.Sizeof(s); got != 12 {
		t.Errorf("Sizeof(AudioSpec) = %d, want 12", got)
	}
	if got := unsafe.Offsetof(s.Channels); got != 4 {
		t.Errorf("Offsetof(AudioSpec.Channels) = %d, want 4", got)
	}
	if got := unsafe.Offsetof(s.Freq); got != 8 {
		t.Errorf("Offsetof(AudioSpec.Freq) = %d, want 8", got)
	}
}

func TestFingerLayout(t *testing.T) {
	var f Finger
	if got := unsafe.Sizeof(f); got != 24 {
		t.Errorf("Sizeof(Finger) = %d, want 24", got)
	}
	if got := unsafe.Offsetof(f.X); got != 8 {
		t.Errorf("Offsetof(Finger.X) = %d, want 8", got)
	}
}

func TestGamepadBindingLayout(t *testing.T) {
	var b GamepadBinding
	if got := unsafe.Sizeof(b); got != 32 {
		t.Errorf("Sizeof(GamepadBinding) = %d, want 32", got)
	}
	if got := unsafe.Offsetof(b.OutputType); got != 16 {
		t.Errorf("Offsetof(GamepadBinding.OutputType) = %d, want 16", got)
	}
}

func TestHapticEffectLayout(t *testing.T) {
	var e HapticEffect
	if got := unsafe.Sizeof(e); got != 72 {
		t.Errorf("Sizeof(HapticEffect) = %d, want 72", got)
	}
	var c HapticCondition
	if got := unsafe.Sizeof(c); got > unsafe.Sizeof(e) {
		t.Errorf("Sizeof(HapticCondition) = %d exceeds the union size %d", got, unsafe.Sizeof(e))
	}
	if got := unsafe.Offsetof(c.Length); got != 20 {
		t.Errorf("Offsetof(HapticCondition.Length) = %d, want 20", got)
	}
	var p HapticPeriodic
	if got := unsafe.Offsetof(p.Magnitude); got != 32 {
		t.Errorf("Offsetof(HapticPeriodic.Magnitude) = %d, want 32", got)
	}
}

func TestSurfaceLayout(t *testing.T) {
	var s Surface
	if got := unsafe.Offsetof(s.W); got != 16 {
		t.Errorf("Offsetof(Surface.W) = %d, want 16", got)
	}
	if got := unsafe.Offsetof(s.Pitch); got != 24 {
		t.Errorf("Offsetof(Surface.Pitch) = %d, want 24", got)
	}
	if got := unsafe.Offsetof(s.Pixels); got != 32 {
		t.Errorf("Offsetof(Surface.Pixels) = %d, want 32", got)
	}
}
