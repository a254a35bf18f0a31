package sdl

import (
	"testing"
	"unsafe"
)

func TestBoolTotality(t *testing.T) {
	tests := []struct {
		name string
		in   Bool
		want bool
	}{
		{"false", False, false},
		{"true", True, true},
		{"negative out of domain", Bool(-1), false},
		{"large out of domain", Bool(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Bool(); got != tt.want {
				t.Errorf("Bool(%d).Bool() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromBool(t *testing.T) {
	if FromBool(true) != True {
		t.Errorf("FromBool(true) = %d, want %d", FromBool(true), True)
	}
	if FromBool(false) != False {
		t.Errorf("FromBool(false) = %d, want %d", FromBool(false), False)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		if got := FromBool(v).Bool(); got != v {
			t.Errorf("FromBool(%v).Bool() = %v", v, got)
		}
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("hello\x00trailing")
	if got := goString(&buf[0]); got != "hello" {
		t.Errorf("goString = %q, want %q", got, "hello")
	}
	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q, want empty", got)
	}
	empty := []byte{0}
	if got := goString(&empty[0]); got != "" {
		t.Errorf("goString(empty) = %q, want empty", got)
	}
}

func TestBorrowed(t *testing.T) {
	vals := []uint8{10, 20, 30}
	view := borrowed(&vals[0], 3)
	if len(view) != 3 || view[0] != 10 || view[2] != 30 {
		t.Errorf("borrowed view = %v, want %v", view, vals)
	}
	if borrowed[uint8](nil, 3) != nil {
		t.Error("borrowed(nil) should be nil")
	}
	if borrowed(&vals[0], 0) != nil {
		t.Error("borrowed with zero length should be nil")
	}
}

func TestBorrowedFree(t *testing.T) {
	var freed unsafe.Pointer
	origFree := fnFree
	fnFree = func(mem unsafe.Pointer) { freed = mem }
	defer func() { fnFree = origFree }()

	src := []uint32{1, 2, 3, 4}
	got := borrowedFree(&src[0], 4)
	if len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("borrowedFree copy = %v, want %v", got, src)
	}
	if freed != unsafe.Pointer(&src[0]) {
		t.Error("borrowedFree did not release the foreign array")
	}
	got[0] = 99
	if src[0] != 1 {
		t.Error("borrowedFree must copy, not alias")
	}
}
