package sdl

import "testing"

func TestPixelFormatValues(t *testing.T) {
	tests := []struct {
		name string
		got  PixelFormatEnum
		want PixelFormatEnum
	}{
		{"index8", PixelFormatIndex8, 0x13000801},
		{"rgb565", PixelFormatRGB565, 0x15151002},
		{"rgb24", PixelFormatRGB24, 0x17101803},
		{"xrgb8888", PixelFormatXRGB8888, 0x16161804},
		{"argb8888", PixelFormatARGB8888, 0x16362004},
		{"rgba8888", PixelFormatRGBA8888, 0x16462004},
		{"abgr8888", PixelFormatABGR8888, 0x16762004},
		{"bgra8888", PixelFormatBGRA8888, 0x16862004},
		{"argb2101010", PixelFormatARGB2101010, 0x16372004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestAudioFormatBits(t *testing.T) {
	tests := []struct {
		name      string
		format    AudioFormat
		bits      int
		float     bool
		signed    bool
		bigEndian bool
	}{
		{"u8", AudioU8, 8, false, false, false},
		{"s8", AudioS8, 8, false, true, false},
		{"s16lsb", AudioS16LSB, 16, false, true, false},
		{"s16msb", AudioS16MSB, 16, false, true, true},
		{"s32lsb", AudioS32LSB, 32, false, true, false},
		{"f32lsb", AudioF32LSB, 32, true, true, false},
		{"f32msb", AudioF32MSB, 32, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BitSize(); got != tt.bits {
				t.Errorf("BitSize = %d, want %d", got, tt.bits)
			}
			if got := tt.format.Float(); got != tt.float {
				t.Errorf("Float = %v, want %v", got, tt.float)
			}
			if got := tt.format.Signed(); got != tt.signed {
				t.Errorf("Signed = %v, want %v", got, tt.signed)
			}
			if got := tt.format.BigEndian(); got != tt.bigEndian {
				t.Errorf("BigEndian = %v, want %v", got, tt.bigEndian)
			}
		})
	}
}
