package sdl

// PenID identifies a pen for the lifetime of the process. Zero is the
// invalid sentinel.
type PenID uint32

// PenAxis indexes the per-axis value arrays carried by pen events and
// GetPenStatus.
type PenAxis int32

const (
	PenAxisPressure PenAxis = iota
	PenAxisXTilt
	PenAxisYTilt
	PenAxisDistance
	PenAxisRotation
	PenAxisSlider

	// PenNumAxes sizes the axis arrays.
	PenNumAxes = 6
)

// PenSubtype mirrors SDL_PenSubtype.
type PenSubtype uint32

const (
	PenTypeUnknown PenSubtype = iota
	PenTypeEraser
	PenTypePen
	PenTypePencil
	PenTypeBrush
	PenTypeAirbrush
)

// Pen status and capability bits. The low bits carry the pen button states;
// these named bits sit above them.
const (
	penDown     uint32 = 1 << 13
	penInk      uint32 = 1 << 14
	penEraser   uint32 = 1 << 15
	penAxisBit         = 16
	penPressure uint32 = 1 << (penAxisBit + uint32(PenAxisPressure))
	penXTilt    uint32 = 1 << (penAxisBit + uint32(PenAxisXTilt))
	penYTilt    uint32 = 1 << (penAxisBit + uint32(PenAxisYTilt))
	penDistance uint32 = 1 << (penAxisBit + uint32(PenAxisDistance))
	penRotation uint32 = 1 << (penAxisBit + uint32(PenAxisRotation))
	penSlider   uint32 = 1 << (penAxisBit + uint32(PenAxisSlider))
)

// PenCapabilityFlags is the structured view of the pen capability and status
// bitmask. Conversion through Mask and PenCapabilityFlagsFromMask is lossless
// for every defined bit.
type PenCapabilityFlags struct {
	Down     bool
	Ink      bool
	Eraser   bool
	Pressure bool
	XTilt    bool
	YTilt    bool
	Distance bool
	Rotation bool
	Slider   bool
}

// Mask packs the flags into the library's bitmask encoding.
func (f PenCapabilityFlags) Mask() uint32 {
	var m uint32
	set := func(on bool, bit uint32) {
		if on {
			m |= bit
		}
	}
	set(f.Down, penDown)
	set(f.Ink, penInk)
	set(f.Eraser, penEraser)
	set(f.Pressure, penPressure)
	set(f.XTilt, penXTilt)
	set(f.YTilt, penYTilt)
	set(f.Distance, penDistance)
	set(f.Rotation, penRotation)
	set(f.Slider, penSlider)
	return m
}

// PenCapabilityFlagsFromMask unpacks the library's bitmask encoding.
func PenCapabilityFlagsFromMask(m uint32) PenCapabilityFlags {
	return PenCapabilityFlags{
		Down:     m&penDown != 0,
		Ink:      m&penInk != 0,
		Eraser:   m&penEraser != 0,
		Pressure: m&penPressure != 0,
		XTilt:    m&penXTilt != 0,
		YTilt:    m&penYTilt != 0,
		Distance: m&penDistance != 0,
		Rotation: m&penRotation != 0,
		Slider:   m&penSlider != 0,
	}
}

// PenCapabilityInfo mirrors SDL_PenCapabilityInfo.
type PenCapabilityInfo struct {
	MaxTilt    float32
	WacomID    uint32
	NumButtons int8
	_          [3]byte
}

var (
	fnGetPens            func(count *int32) *PenID
	fnGetPenStatus       func(id PenID, x, y *float32, axes *float32, numAxes uintptr) uint32
	fnGetPenFromGUID     func(guid GUID) PenID
	fnGetPenGUID         func(id PenID) GUID
	fnPenConnected       func(id PenID) Bool
	fnGetPenName         func(id PenID) string
	fnGetPenCapabilities func(id PenID, capabilities *PenCapabilityInfo) uint32
	fnGetPenType         func(id PenID) PenSubtype
)

func registerPenFuncs() {
	register(&fnGetPens, "SDL_GetPens")
	register(&fnGetPenStatus, "SDL_GetPenStatus")
	register(&fnGetPenFromGUID, "SDL_GetPenFromGUID")
	register(&fnGetPenGUID, "SDL_GetPenGUID")
	register(&fnPenConnected, "SDL_PenConnected")
	register(&fnGetPenName, "SDL_GetPenName")
	register(&fnGetPenCapabilities, "SDL_GetPenCapabilities")
	register(&fnGetPenType, "SDL_GetPenType")
}

// GetPens returns the IDs of all known pens, including recently disconnected
// ones.
func GetPens() ([]PenID, error) {
	var count int32
	p := fnGetPens(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetPenStatus returns a pen's position, axis values and current state.
func GetPenStatus(id PenID) (flags PenCapabilityFlags, x, y float32, axes [PenNumAxes]float32) {
	m := fnGetPenStatus(id, &x, &y, &axes[0], PenNumAxes)
	return PenCapabilityFlagsFromMask(m), x, y, axes
}

// GetPenFromGUID returns the pen with a GUID, or zero.
func GetPenFromGUID(guid GUID) PenID {
	return fnGetPenFromGUID(guid)
}

// GetPenGUID returns a pen's GUID, which is stable across sessions.
func GetPenGUID(id PenID) GUID {
	return fnGetPenGUID(id)
}

// PenConnected reports whether a pen is attached.
func PenConnected(id PenID) bool {
	return fnPenConnected(id).Bool()
}

// GetPenName returns a pen's name.
func GetPenName(id PenID) string {
	return fnGetPenName(id)
}

// GetPenCapabilities returns a pen's capability flags and details.
func GetPenCapabilities(id PenID) (PenCapabilityFlags, PenCapabilityInfo) {
	var info PenCapabilityInfo
	m := fnGetPenCapabilities(id, &info)
	return PenCapabilityFlagsFromMask(m), info
}

// GetPenType returns what kind of instrument a pen is.
func GetPenType(id PenID) PenSubtype {
	return fnGetPenType(id)
}
