package sdl

// GUID mirrors SDL_GUID, a 128-bit device identity blob.
type GUID struct {
	Data [16]byte
}

var (
	fnGUIDToString   func(guid GUID, psz *byte, cb int32) int32
	fnGUIDFromString func(s string) GUID
)

func registerGUIDFuncs() {
	register(&fnGUIDToString, "SDL_GUIDToString")
	register(&fnGUIDFromString, "SDL_GUIDFromString")
}

// String renders the GUID as the library's canonical 32-character hex form.
func (g GUID) String() string {
	// 33 bytes per the header contract: 32 hex digits plus NUL.
	var buf [33]byte
	if fnGUIDToString(g, &buf[0], int32(len(buf))) < 0 {
		return ""
	}
	return goString(&buf[0])
}

// GUIDFromString parses the canonical hex form back into a GUID.
func GUIDFromString(s string) GUID {
	return fnGUIDFromString(s)
}

// Zero reports whether the GUID is the all-zero "no device" value.
func (g GUID) Zero() bool {
	for _, b := range g.Data {
		if b != 0 {
			return false
		}
	}
	return true
}
