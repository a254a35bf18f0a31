package sdl

import "testing"

func TestWindowFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
	}{
		{"empty", 0},
		{"fullscreen", 0x00000001},
		{"opengl resizable", 0x00000002 | 0x00000020},
		{"hidden borderless", 0x00000008 | 0x00000010},
		{"vulkan", 0x10000000},
		{"metal transparent", 0x20000000 | 0x40000000},
		{"not focusable high bit", 0x80000000},
		{"grab cluster", 0x00000100 | 0x00100000},
		{"everything defined", 0xF01EEFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowFlagsFromMask(tt.mask).Mask()
			if got != tt.mask {
				t.Errorf("round trip = %#x, want %#x", got, tt.mask)
			}
		})
	}
}

func TestWindowFlagsMaskBits(t *testing.T) {
	tests := []struct {
		name  string
		flags WindowFlags
		want  uint32
	}{
		{"fullscreen", WindowFlags{Fullscreen: true}, 0x00000001},
		{"opengl", WindowFlags{OpenGL: true}, 0x00000002},
		{"occluded", WindowFlags{Occluded: true}, 0x00000004},
		{"hidden", WindowFlags{Hidden: true}, 0x00000008},
		{"borderless", WindowFlags{Borderless: true}, 0x00000010},
		{"resizable", WindowFlags{Resizable: true}, 0x00000020},
		{"minimized", WindowFlags{Minimized: true}, 0x00000040},
		{"maximized", WindowFlags{Maximized: true}, 0x00000080},
		{"mouse grabbed", WindowFlags{MouseGrabbed: true}, 0x00000100},
		{"input focus", WindowFlags{InputFocus: true}, 0x00000200},
		{"mouse focus", WindowFlags{MouseFocus: true}, 0x00000400},
		{"external", WindowFlags{External: true}, 0x00000800},
		{"high pixel density", WindowFlags{HighPixelDensity: true}, 0x00002000},
		{"mouse capture", WindowFlags{MouseCapture: true}, 0x00004000},
		{"always on top", WindowFlags{AlwaysOnTop: true}, 0x00008000},
		{"utility", WindowFlags{Utility: true}, 0x00020000},
		{"tooltip", WindowFlags{Tooltip: true}, 0x00040000},
		{"popup menu", WindowFlags{PopupMenu: true}, 0x00080000},
		{"keyboard grabbed", WindowFlags{KeyboardGrabbed: true}, 0x00100000},
		{"vulkan", WindowFlags{Vulkan: true}, 0x10000000},
		{"metal", WindowFlags{Metal: true}, 0x20000000},
		{"transparent", WindowFlags{Transparent: true}, 0x40000000},
		{"not focusable", WindowFlags{NotFocusable: true}, 0x80000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Mask(); got != tt.want {
				t.Errorf("Mask() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestKeymodRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
	}{
		{"none", 0x0000},
		{"left shift", 0x0001},
		{"both shifts", 0x0003},
		{"ctrl alt", 0x0040 | 0x0100},
		{"gui pair", 0x0400 | 0x0800},
		{"locks", 0x1000 | 0x2000 | 0x8000},
		{"mode", 0x4000},
		{"all defined", 0xFFC3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeymodFromMask(tt.mask).Mask()
			if got != tt.mask {
				t.Errorf("round trip = %#x, want %#x", got, tt.mask)
			}
		})
	}
}

func TestKeymodHelpers(t *testing.T) {
	m := KeymodFromMask(0x0001 | 0x0080)
	if !m.Shift() {
		t.Error("Shift() should see LShift")
	}
	if !m.Ctrl() {
		t.Error("Ctrl() should see RCtrl")
	}
	if m.Alt() || m.Gui() {
		t.Error("Alt()/Gui() should be clear")
	}
}

func TestMouseButtonFlagsRoundTrip(t *testing.T) {
	for mask := uint32(0); mask < 1<<5; mask++ {
		got := MouseButtonFlagsFromMask(mask).Mask()
		if got != mask {
			t.Errorf("round trip(%#x) = %#x", mask, got)
		}
	}
}

func TestMouseButtonFlagsSpuriousBits(t *testing.T) {
	// Bits above the defined buttons must not leak into the record.
	f := MouseButtonFlagsFromMask(0xFFFFFFE0)
	if f != (MouseButtonFlags{}) {
		t.Errorf("undefined bits produced %+v", f)
	}
	if f.Mask() != 0 {
		t.Errorf("Mask() of empty record = %#x", f.Mask())
	}
}

func TestHapticFeaturesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
	}{
		{"none", 0},
		{"constant", 1 << 0},
		{"periodics", 1<<1 | 1<<3 | 1<<4 | 1<<5},
		{"conditions", 1<<7 | 1<<8 | 1<<9 | 1<<10},
		{"device controls", 1<<12 | 1<<13 | 1<<14 | 1<<15},
		{"all defined", 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HapticFeaturesFromMask(tt.mask).Mask()
			if got != tt.mask {
				t.Errorf("round trip = %#x, want %#x", got, tt.mask)
			}
		})
	}
}

func TestPenCapabilityFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
	}{
		{"none", 0},
		{"down", 1 << 13},
		{"ink eraser", 1<<14 | 1<<15},
		{"pressure", 1 << 16},
		{"all axes", 0x3F << 16},
		{"everything defined", 1<<13 | 1<<14 | 1<<15 | 0x3F<<16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PenCapabilityFlagsFromMask(tt.mask).Mask()
			if got != tt.mask {
				t.Errorf("round trip = %#x, want %#x", got, tt.mask)
			}
		})
	}
}

func TestPenCapabilityAxisBits(t *testing.T) {
	if got := (PenCapabilityFlags{Pressure: true}).Mask(); got != 1<<16 {
		t.Errorf("Pressure bit = %#x, want %#x", got, uint32(1<<16))
	}
	if got := (PenCapabilityFlags{Slider: true}).Mask(); got != 1<<21 {
		t.Errorf("Slider bit = %#x, want %#x", got, uint32(1<<21))
	}
}
