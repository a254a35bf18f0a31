package sdl

import "unsafe"

// Bool mirrors SDL_bool, which the library defines as a two-value integer
// enumeration rather than a native boolean. Only False (0) and True (1) are in
// the defined domain; other values are the library's own undefined territory and
// are not mitigated here.
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// Bool converts the foreign boolean to a Go bool.
func (b Bool) Bool() bool {
	return b == True
}

// FromBool converts a Go bool to the foreign boolean encoding.
func FromBool(v bool) Bool {
	if v {
		return True
	}
	return False
}

var fnFree func(mem unsafe.Pointer)

func registerStdincFuncs() {
	register(&fnFree, "SDL_free")
}

// goString copies a NUL-terminated foreign string into a Go string. The foreign
// memory is left untouched.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// goStringFree copies a NUL-terminated foreign string and releases the foreign
// allocation with SDL_free. For symbols whose return value the caller owns.
func goStringFree(p *byte) string {
	if p == nil {
		return ""
	}
	s := goString(p)
	fnFree(unsafe.Pointer(p))
	return s
}

// borrowed exposes a foreign-owned array as a Go slice view. The library owns
// the backing memory; the view must not outlive whatever the library documents
// as its lifetime, and must never be freed here.
func borrowed[T any](p *T, n int32) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// borrowedFree copies a foreign ID array the caller owns and releases it.
func borrowedFree[T any](p *T, n int32) []T {
	if p == nil {
		return nil
	}
	out := make([]T, n)
	copy(out, unsafe.Slice(p, n))
	fnFree(unsafe.Pointer(p))
	return out
}
