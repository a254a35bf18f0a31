package sdl

import "testing"

func TestScancodeValues(t *testing.T) {
	tests := []struct {
		name string
		got  Scancode
		want Scancode
	}{
		{"A", ScancodeA, 4},
		{"1", Scancode1, 30},
		{"return", ScancodeReturn, 40},
		{"caps lock", ScancodeCapsLock, 57},
		{"F12", ScancodeF12, 69},
		{"volume down", ScancodeVolumeDown, 129},
		{"kp comma after lock gap", ScancodeKpComma, 133},
		{"international1", ScancodeInternational1, 135},
		{"exsel", ScancodeExSel, 164},
		{"kp00 after gap", ScancodeKp00, 176},
		{"kp hexadecimal", ScancodeKpHexadecimal, 221},
		{"lctrl after gap", ScancodeLCtrl, 224},
		{"rgui", ScancodeRGui, 231},
		{"mode after gap", ScancodeMode, 257},
		{"audio next", ScancodeAudioNext, 258},
		{"audio fast forward", ScancodeAudioFastForward, 286},
		{"endcall", ScancodeEndCall, 290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %d, want %d", tt.got, tt.want)
			}
		})
	}

	if NumScancodes != 512 {
		t.Errorf("NumScancodes = %d, want 512", NumScancodes)
	}
}

func TestKeycodeDerivation(t *testing.T) {
	if KeycodeA != 'a' {
		t.Errorf("KeycodeA = %#x, want %#x", KeycodeA, 'a')
	}
	if KeycodeF1 != Keycode(ScancodeF1)|ScancodeMask {
		t.Errorf("KeycodeF1 = %#x", KeycodeF1)
	}
	if got := ScancodeToKeycode(ScancodeLCtrl); got != KeycodeLCtrl {
		t.Errorf("ScancodeToKeycode(LCtrl) = %#x, want %#x", got, KeycodeLCtrl)
	}
	if KeycodeF1&ScancodeMask == 0 {
		t.Error("scancode-derived keycodes must carry the mask bit")
	}
	if KeycodeSpace&ScancodeMask != 0 {
		t.Error("printable keycodes must not carry the mask bit")
	}
}
