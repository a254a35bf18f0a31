package sdl

// TouchID identifies a touch device for the lifetime of the process. Zero is
// the invalid sentinel; mouse-synthesized touches use the all-ones value.
type TouchID uint64

// FingerID identifies one finger within a touch device.
type FingerID uint64

// TouchMouseID marks mouse events synthesized from touch input.
const TouchMouseID MouseID = 0xFFFFFFFF

// MouseTouchID marks touch events synthesized from mouse input.
const MouseTouchID TouchID = 0xFFFFFFFFFFFFFFFF

// TouchDeviceType mirrors SDL_TouchDeviceType.
type TouchDeviceType int32

const (
	TouchDeviceInvalid TouchDeviceType = iota - 1
	TouchDeviceDirect
	TouchDeviceIndirectAbsolute
	TouchDeviceIndirectRelative
)

// Finger mirrors SDL_Finger. Coordinates and pressure are normalized 0..1.
type Finger struct {
	ID       FingerID
	X        float32
	Y        float32
	Pressure float32
	_        uint32
}

var (
	fnGetTouchDevices    func(count *int32) *TouchID
	fnGetTouchDeviceName func(id TouchID) string
	fnGetTouchDeviceType func(id TouchID) TouchDeviceType
	fnGetNumTouchFingers func(id TouchID) int32
	fnGetTouchFinger     func(id TouchID, index int32) *Finger
)

func registerTouchFuncs() {
	register(&fnGetTouchDevices, "SDL_GetTouchDevices")
	register(&fnGetTouchDeviceName, "SDL_GetTouchDeviceName")
	register(&fnGetTouchDeviceType, "SDL_GetTouchDeviceType")
	register(&fnGetNumTouchFingers, "SDL_GetNumTouchFingers")
	register(&fnGetTouchFinger, "SDL_GetTouchFinger")
}

// GetTouchDevices returns the IDs of all registered touch devices. Some
// platforms only register a device once it is touched.
func GetTouchDevices() ([]TouchID, error) {
	var count int32
	p := fnGetTouchDevices(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetTouchDeviceName returns a touch device's name.
func GetTouchDeviceName(id TouchID) string {
	return fnGetTouchDeviceName(id)
}

// GetTouchDeviceType returns a touch device's type.
func GetTouchDeviceType(id TouchID) TouchDeviceType {
	return fnGetTouchDeviceType(id)
}

// GetNumTouchFingers returns the number of active fingers on a device.
func GetNumTouchFingers(id TouchID) int32 {
	return fnGetNumTouchFingers(id)
}

// GetTouchFinger returns an active finger by index.
func GetTouchFinger(id TouchID, index int32) (Finger, error) {
	f := fnGetTouchFinger(id, index)
	if f == nil {
		return Finger{}, fail()
	}
	return *f, nil
}
