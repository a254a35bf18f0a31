package sdl

import (
	"testing"
	"unsafe"
)

func TestGamepadEnumValues(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"type unknown", int32(GamepadTypeUnknown), 0},
		{"type standard", int32(GamepadTypeStandard), 1},
		{"type joycon pair", int32(GamepadTypeNintendoSwitchJoyconPair), 10},
		{"type max", int32(GamepadTypeMax), 11},
		{"button invalid", int32(GamepadButtonInvalid), -1},
		{"button south", int32(GamepadButtonSouth), 0},
		{"button dpad up", int32(GamepadButtonDpadUp), 11},
		{"button touchpad", int32(GamepadButtonTouchpad), 20},
		{"button max", int32(GamepadButtonMax), 21},
		{"axis invalid", int32(GamepadAxisInvalid), -1},
		{"axis left x", int32(GamepadAxisLeftX), 0},
		{"axis right trigger", int32(GamepadAxisRightTrigger), 5},
		{"axis max", int32(GamepadAxisMax), 6},
		{"label triangle", int32(GamepadButtonLabelTriangle), 8},
		{"bind type hat", int32(GamepadBindTypeHat), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestGetGamepadsStandIn(t *testing.T) {
	restoreGet := fnGetGamepads
	restoreFree := fnFree
	defer func() {
		fnGetGamepads = restoreGet
		fnFree = restoreFree
	}()

	ids := []JoystickID{3, 7, 11}
	var freed bool
	fnGetGamepads = func(count *int32) *JoystickID {
		*count = int32(len(ids))
		return &ids[0]
	}
	fnFree = func(mem unsafe.Pointer) { freed = true }

	got, err := GetGamepads()
	if err != nil {
		t.Fatalf("GetGamepads: %v", err)
	}
	if len(got) != 3 || got[0] != 3 || got[2] != 11 {
		t.Errorf("ids = %v, want %v", got, ids)
	}
	if !freed {
		t.Error("the foreign array must be released")
	}
}

func TestGetGamepadsFailure(t *testing.T) {
	restoreGet := fnGetGamepads
	restoreText := lastErrorText
	defer func() {
		fnGetGamepads = restoreGet
		lastErrorText = restoreText
	}()

	fnGetGamepads = func(count *int32) *JoystickID { return nil }
	lastErrorText = func() string { return "joystick subsystem not initialized" }

	if _, err := GetGamepads(); err == nil {
		t.Fatal("nil array should translate to an error")
	}
}

func TestGamepadBindingViews(t *testing.T) {
	b := GamepadBinding{
		InputType:  GamepadBindTypeAxis,
		input:      [3]int32{2, -32768, 32767},
		OutputType: GamepadBindTypeAxis,
		output:     [3]int32{int32(GamepadAxisLeftY), -32768, 32767},
	}
	axis, lo, hi := b.InputAxis()
	if axis != 2 || lo != -32768 || hi != 32767 {
		t.Errorf("InputAxis = %d %d %d", axis, lo, hi)
	}
	outAxis, _, _ := b.OutputAxis()
	if outAxis != GamepadAxisLeftY {
		t.Errorf("OutputAxis = %d, want %d", outAxis, GamepadAxisLeftY)
	}

	hat := GamepadBinding{
		InputType: GamepadBindTypeHat,
		input:     [3]int32{0, int32(HatUp)},
	}
	h, mask := hat.InputHat()
	if h != 0 || mask != int32(HatUp) {
		t.Errorf("InputHat = %d %d", h, mask)
	}
}

func TestAddGamepadMappingStandIn(t *testing.T) {
	restore := fnAddGamepadMapping
	defer func() { fnAddGamepadMapping = restore }()

	var seen string
	fnAddGamepadMapping = func(mapping string) int32 {
		seen = mapping
		return 1
	}

	added, err := AddGamepadMapping("deadbeef,Test Pad,a:b0")
	if err != nil {
		t.Fatalf("AddGamepadMapping: %v", err)
	}
	if !added {
		t.Error("rc 1 means a new mapping")
	}
	if seen != "deadbeef,Test Pad,a:b0" {
		t.Errorf("library saw %q", seen)
	}

	fnAddGamepadMapping = func(mapping string) int32 { return 0 }
	added, err = AddGamepadMapping("deadbeef,Test Pad,a:b1")
	if err != nil {
		t.Fatalf("AddGamepadMapping: %v", err)
	}
	if added {
		t.Error("rc 0 means an updated mapping")
	}
}
