package sdl

import "unsafe"

// HapticID identifies a haptic device for the lifetime of the process. Zero
// is the invalid sentinel.
type HapticID uint32

// Haptic is an opaque handle to an opened haptic device.
type Haptic struct{ _ [0]byte }

// HapticInfinity runs an effect until it is stopped explicitly.
const HapticInfinity uint32 = 4294967295

// Haptic feature and effect-type bits. The same values serve as the Type of
// an effect and as bits in the device feature mask.
const (
	hapticConstant     uint32 = 1 << 0
	hapticSine         uint32 = 1 << 1
	hapticLeftRight    uint32 = 1 << 2
	hapticTriangle     uint32 = 1 << 3
	hapticSawtoothUp   uint32 = 1 << 4
	hapticSawtoothDown uint32 = 1 << 5
	hapticRamp         uint32 = 1 << 6
	hapticSpring       uint32 = 1 << 7
	hapticDamper       uint32 = 1 << 8
	hapticInertia      uint32 = 1 << 9
	hapticFriction     uint32 = 1 << 10
	hapticCustom       uint32 = 1 << 11
	hapticGain         uint32 = 1 << 12
	hapticAutocenter   uint32 = 1 << 13
	hapticStatus       uint32 = 1 << 14
	hapticPause        uint32 = 1 << 15
)

// Effect type codes for HapticEffect views.
const (
	HapticConstantType     uint16 = uint16(hapticConstant)
	HapticSineType         uint16 = uint16(hapticSine)
	HapticLeftRightType    uint16 = uint16(hapticLeftRight)
	HapticTriangleType     uint16 = uint16(hapticTriangle)
	HapticSawtoothUpType   uint16 = uint16(hapticSawtoothUp)
	HapticSawtoothDownType uint16 = uint16(hapticSawtoothDown)
	HapticRampType         uint16 = uint16(hapticRamp)
	HapticSpringType       uint16 = uint16(hapticSpring)
	HapticDamperType       uint16 = uint16(hapticDamper)
	HapticInertiaType      uint16 = uint16(hapticInertia)
	HapticFrictionType     uint16 = uint16(hapticFriction)
)

// HapticFeatures is the structured view of the device feature mask.
// Conversion through Mask and HapticFeaturesFromMask is lossless for every
// defined bit.
type HapticFeatures struct {
	Constant     bool
	Sine         bool
	LeftRight    bool
	Triangle     bool
	SawtoothUp   bool
	SawtoothDown bool
	Ramp         bool
	Spring       bool
	Damper       bool
	Inertia      bool
	Friction     bool
	Custom       bool
	Gain         bool
	Autocenter   bool
	Status       bool
	Pause        bool
}

// Mask packs the features into the library's bitmask encoding.
func (f HapticFeatures) Mask() uint32 {
	var m uint32
	set := func(on bool, bit uint32) {
		if on {
			m |= bit
		}
	}
	set(f.Constant, hapticConstant)
	set(f.Sine, hapticSine)
	set(f.LeftRight, hapticLeftRight)
	set(f.Triangle, hapticTriangle)
	set(f.SawtoothUp, hapticSawtoothUp)
	set(f.SawtoothDown, hapticSawtoothDown)
	set(f.Ramp, hapticRamp)
	set(f.Spring, hapticSpring)
	set(f.Damper, hapticDamper)
	set(f.Inertia, hapticInertia)
	set(f.Friction, hapticFriction)
	set(f.Custom, hapticCustom)
	set(f.Gain, hapticGain)
	set(f.Autocenter, hapticAutocenter)
	set(f.Status, hapticStatus)
	set(f.Pause, hapticPause)
	return m
}

// HapticFeaturesFromMask unpacks the library's bitmask encoding.
func HapticFeaturesFromMask(m uint32) HapticFeatures {
	return HapticFeatures{
		Constant:     m&hapticConstant != 0,
		Sine:         m&hapticSine != 0,
		LeftRight:    m&hapticLeftRight != 0,
		Triangle:     m&hapticTriangle != 0,
		SawtoothUp:   m&hapticSawtoothUp != 0,
		SawtoothDown: m&hapticSawtoothDown != 0,
		Ramp:         m&hapticRamp != 0,
		Spring:       m&hapticSpring != 0,
		Damper:       m&hapticDamper != 0,
		Inertia:      m&hapticInertia != 0,
		Friction:     m&hapticFriction != 0,
		Custom:       m&hapticCustom != 0,
		Gain:         m&hapticGain != 0,
		Autocenter:   m&hapticAutocenter != 0,
		Status:       m&hapticStatus != 0,
		Pause:        m&hapticPause != 0,
	}
}

// Direction encodings for HapticDirection.Type.
const (
	HapticPolar        uint8 = 0
	HapticCartesian    uint8 = 1
	HapticSpherical    uint8 = 2
	HapticSteeringAxis uint8 = 3
)

// HapticDirection mirrors SDL_HapticDirection.
type HapticDirection struct {
	Type uint8
	_    [3]byte
	Dir  [3]int32
}

// HapticEffect is the raw 72-byte effect union. Populate it through one of
// the typed views below, setting the view's Type to the matching effect code.
type HapticEffect struct {
	data [9]uint64
}

// Type returns the effect type code.
func (e *HapticEffect) Type() uint16 {
	return *(*uint16)(unsafe.Pointer(e))
}

// HapticConstant mirrors SDL_HapticConstant.
type HapticConstant struct {
	Type         uint16
	_            uint16
	Direction    HapticDirection
	Length       uint32
	Delay        uint16
	Button       uint16
	Interval     uint16
	Level        int16
	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticPeriodic mirrors SDL_HapticPeriodic, shared by the sine, triangle and
// sawtooth effect types.
type HapticPeriodic struct {
	Type         uint16
	_            uint16
	Direction    HapticDirection
	Length       uint32
	Delay        uint16
	Button       uint16
	Interval     uint16
	Period       uint16
	Magnitude    int16
	Offset       int16
	Phase        uint16
	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticCondition mirrors SDL_HapticCondition, shared by the spring, damper,
// inertia and friction effect types. The per-axis arrays are indexed X, Y, Z.
type HapticCondition struct {
	Type       uint16
	_          uint16
	Direction  HapticDirection
	Length     uint32
	Delay      uint16
	Button     uint16
	Interval   uint16
	RightSat   [3]uint16
	LeftSat    [3]uint16
	RightCoeff [3]int16
	LeftCoeff  [3]int16
	Deadband   [3]uint16
	Center     [3]int16
}

// HapticRamp mirrors SDL_HapticRamp.
type HapticRamp struct {
	Type         uint16
	_            uint16
	Direction    HapticDirection
	Length       uint32
	Delay        uint16
	Button       uint16
	Interval     uint16
	Start        int16
	End          int16
	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// HapticLeftRight mirrors SDL_HapticLeftRight, the dual-motor rumble effect.
type HapticLeftRight struct {
	Type           uint16
	_              uint16
	Length         uint32
	LargeMagnitude uint16
	SmallMagnitude uint16
}

// Constant views the effect as a constant-force effect.
func (e *HapticEffect) Constant() *HapticConstant {
	return (*HapticConstant)(unsafe.Pointer(e))
}

// Periodic views the effect as a periodic effect.
func (e *HapticEffect) Periodic() *HapticPeriodic {
	return (*HapticPeriodic)(unsafe.Pointer(e))
}

// Condition views the effect as an axis-condition effect.
func (e *HapticEffect) Condition() *HapticCondition {
	return (*HapticCondition)(unsafe.Pointer(e))
}

// Ramp views the effect as a ramp effect.
func (e *HapticEffect) Ramp() *HapticRamp {
	return (*HapticRamp)(unsafe.Pointer(e))
}

// LeftRight views the effect as a dual-motor rumble effect.
func (e *HapticEffect) LeftRight() *HapticLeftRight {
	return (*HapticLeftRight)(unsafe.Pointer(e))
}

var (
	fnGetHaptics                 func(count *int32) *HapticID
	fnGetHapticInstanceName      func(id HapticID) string
	fnOpenHaptic                 func(id HapticID) *Haptic
	fnGetHapticFromInstanceID    func(id HapticID) *Haptic
	fnGetHapticInstanceID        func(h *Haptic) HapticID
	fnGetHapticName              func(h *Haptic) string
	fnIsMouseHaptic              func() Bool
	fnOpenHapticFromMouse        func() *Haptic
	fnIsJoystickHaptic           func(j *Joystick) Bool
	fnOpenHapticFromJoystick     func(j *Joystick) *Haptic
	fnCloseHaptic                func(h *Haptic)
	fnGetMaxHapticEffects        func(h *Haptic) int32
	fnGetMaxHapticEffectsPlaying func(h *Haptic) int32
	fnGetHapticFeatures          func(h *Haptic) uint32
	fnGetNumHapticAxes           func(h *Haptic) int32
	fnHapticEffectSupported      func(h *Haptic, effect *HapticEffect) Bool
	fnCreateHapticEffect         func(h *Haptic, effect *HapticEffect) int32
	fnUpdateHapticEffect         func(h *Haptic, effect int32, data *HapticEffect) int32
	fnRunHapticEffect            func(h *Haptic, effect int32, iterations uint32) int32
	fnStopHapticEffect           func(h *Haptic, effect int32) int32
	fnDestroyHapticEffect        func(h *Haptic, effect int32)
	fnGetHapticEffectStatus      func(h *Haptic, effect int32) int32
	fnSetHapticGain              func(h *Haptic, gain int32) int32
	fnSetHapticAutocenter        func(h *Haptic, autocenter int32) int32
	fnPauseHaptic                func(h *Haptic) int32
	fnResumeHaptic               func(h *Haptic) int32
	fnStopHapticEffects          func(h *Haptic) int32
	fnHapticRumbleSupported      func(h *Haptic) Bool
	fnInitHapticRumble           func(h *Haptic) int32
	fnPlayHapticRumble           func(h *Haptic, strength float32, length uint32) int32
	fnStopHapticRumble           func(h *Haptic) int32
)

func registerHapticFuncs() {
	register(&fnGetHaptics, "SDL_GetHaptics")
	register(&fnGetHapticInstanceName, "SDL_GetHapticInstanceName")
	register(&fnOpenHaptic, "SDL_OpenHaptic")
	register(&fnGetHapticFromInstanceID, "SDL_GetHapticFromInstanceID")
	register(&fnGetHapticInstanceID, "SDL_GetHapticInstanceID")
	register(&fnGetHapticName, "SDL_GetHapticName")
	register(&fnIsMouseHaptic, "SDL_IsMouseHaptic")
	register(&fnOpenHapticFromMouse, "SDL_OpenHapticFromMouse")
	register(&fnIsJoystickHaptic, "SDL_IsJoystickHaptic")
	register(&fnOpenHapticFromJoystick, "SDL_OpenHapticFromJoystick")
	register(&fnCloseHaptic, "SDL_CloseHaptic")
	register(&fnGetMaxHapticEffects, "SDL_GetMaxHapticEffects")
	register(&fnGetMaxHapticEffectsPlaying, "SDL_GetMaxHapticEffectsPlaying")
	register(&fnGetHapticFeatures, "SDL_GetHapticFeatures")
	register(&fnGetNumHapticAxes, "SDL_GetNumHapticAxes")
	register(&fnHapticEffectSupported, "SDL_HapticEffectSupported")
	register(&fnCreateHapticEffect, "SDL_CreateHapticEffect")
	register(&fnUpdateHapticEffect, "SDL_UpdateHapticEffect")
	register(&fnRunHapticEffect, "SDL_RunHapticEffect")
	register(&fnStopHapticEffect, "SDL_StopHapticEffect")
	register(&fnDestroyHapticEffect, "SDL_DestroyHapticEffect")
	register(&fnGetHapticEffectStatus, "SDL_GetHapticEffectStatus")
	register(&fnSetHapticGain, "SDL_SetHapticGain")
	register(&fnSetHapticAutocenter, "SDL_SetHapticAutocenter")
	register(&fnPauseHaptic, "SDL_PauseHaptic")
	register(&fnResumeHaptic, "SDL_ResumeHaptic")
	register(&fnStopHapticEffects, "SDL_StopHapticEffects")
	register(&fnHapticRumbleSupported, "SDL_HapticRumbleSupported")
	register(&fnInitHapticRumble, "SDL_InitHapticRumble")
	register(&fnPlayHapticRumble, "SDL_PlayHapticRumble")
	register(&fnStopHapticRumble, "SDL_StopHapticRumble")
}

// GetHaptics returns the IDs of all haptic devices.
func GetHaptics() ([]HapticID, error) {
	var count int32
	p := fnGetHaptics(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetHapticInstanceName returns a haptic device's name without opening it.
func GetHapticInstanceName(id HapticID) string {
	return fnGetHapticInstanceName(id)
}

// OpenHaptic opens a haptic device for use.
func OpenHaptic(id HapticID) (*Haptic, error) {
	h := fnOpenHaptic(id)
	if h == nil {
		return nil, fail()
	}
	return h, nil
}

// GetHapticFromInstanceID returns the opened haptic device for an ID, or nil.
func GetHapticFromInstanceID(id HapticID) *Haptic {
	return fnGetHapticFromInstanceID(id)
}

// InstanceID returns the device's ID.
func (h *Haptic) InstanceID() HapticID {
	return fnGetHapticInstanceID(h)
}

// Name returns the device's name.
func (h *Haptic) Name() string {
	return fnGetHapticName(h)
}

// IsMouseHaptic reports whether the mouse has haptic capabilities.
func IsMouseHaptic() bool {
	return fnIsMouseHaptic().Bool()
}

// OpenHapticFromMouse opens the mouse's haptic device.
func OpenHapticFromMouse() (*Haptic, error) {
	h := fnOpenHapticFromMouse()
	if h == nil {
		return nil, fail()
	}
	return h, nil
}

// IsJoystickHaptic reports whether a joystick has haptic capabilities.
func IsJoystickHaptic(j *Joystick) bool {
	return fnIsJoystickHaptic(j).Bool()
}

// OpenHapticFromJoystick opens the haptic device behind a joystick.
func OpenHapticFromJoystick(j *Joystick) (*Haptic, error) {
	h := fnOpenHapticFromJoystick(j)
	if h == nil {
		return nil, fail()
	}
	return h, nil
}

// Close releases an opened haptic device.
func (h *Haptic) Close() {
	fnCloseHaptic(h)
}

// MaxEffects returns how many effects the device can store.
func (h *Haptic) MaxEffects() (int32, error) {
	n := fnGetMaxHapticEffects(h)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// MaxEffectsPlaying returns how many effects the device can play at once.
func (h *Haptic) MaxEffectsPlaying() (int32, error) {
	n := fnGetMaxHapticEffectsPlaying(h)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// Features returns the device's supported effects and capabilities.
func (h *Haptic) Features() HapticFeatures {
	return HapticFeaturesFromMask(fnGetHapticFeatures(h))
}

// NumAxes returns the number of directional axes.
func (h *Haptic) NumAxes() (int32, error) {
	n := fnGetNumHapticAxes(h)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// EffectSupported reports whether the device can play an effect.
func (h *Haptic) EffectSupported(effect *HapticEffect) bool {
	return fnHapticEffectSupported(h, effect).Bool()
}

// CreateEffect uploads an effect to the device and returns its slot.
func (h *Haptic) CreateEffect(effect *HapticEffect) (int32, error) {
	id := fnCreateHapticEffect(h, effect)
	if id < 0 {
		return 0, fail()
	}
	return id, nil
}

// UpdateEffect replaces an uploaded effect's parameters. The effect type
// cannot change.
func (h *Haptic) UpdateEffect(effect int32, data *HapticEffect) error {
	return errorFromCode(fnUpdateHapticEffect(h, effect, data))
}

// RunEffect plays an uploaded effect; HapticInfinity repeats until stopped.
func (h *Haptic) RunEffect(effect int32, iterations uint32) error {
	return errorFromCode(fnRunHapticEffect(h, effect, iterations))
}

// StopEffect stops one playing effect.
func (h *Haptic) StopEffect(effect int32) error {
	return errorFromCode(fnStopHapticEffect(h, effect))
}

// DestroyEffect frees an uploaded effect's slot, stopping it if needed.
func (h *Haptic) DestroyEffect(effect int32) {
	fnDestroyHapticEffect(h, effect)
}

// EffectStatus reports whether an effect is playing. Requires the Status
// feature.
func (h *Haptic) EffectStatus(effect int32) (bool, error) {
	rc := fnGetHapticEffectStatus(h, effect)
	if rc < 0 {
		return false, fail()
	}
	return rc != 0, nil
}

// SetGain scales all effect strengths, 0 to 100. Requires the Gain feature.
func (h *Haptic) SetGain(gain int32) error {
	return errorFromCode(fnSetHapticGain(h, gain))
}

// SetAutocenter sets the self-centering strength, 0 to 100. Requires the
// Autocenter feature.
func (h *Haptic) SetAutocenter(autocenter int32) error {
	return errorFromCode(fnSetHapticAutocenter(h, autocenter))
}

// Pause suspends effect playback. Requires the Pause feature.
func (h *Haptic) Pause() error {
	return errorFromCode(fnPauseHaptic(h))
}

// Resume continues playback after Pause.
func (h *Haptic) Resume() error {
	return errorFromCode(fnResumeHaptic(h))
}

// StopEffects stops every playing effect.
func (h *Haptic) StopEffects() error {
	return errorFromCode(fnStopHapticEffects(h))
}

// RumbleSupported reports whether the simple rumble wrapper can be used.
func (h *Haptic) RumbleSupported() bool {
	return fnHapticRumbleSupported(h).Bool()
}

// InitRumble prepares the device for PlayRumble.
func (h *Haptic) InitRumble() error {
	return errorFromCode(fnInitHapticRumble(h))
}

// PlayRumble plays a rumble at a strength from 0 to 1 for a duration in
// milliseconds.
func (h *Haptic) PlayRumble(strength float32, lengthMS uint32) error {
	return errorFromCode(fnPlayHapticRumble(h, strength, lengthMS))
}

// StopRumble stops the rumble started by PlayRumble.
func (h *Haptic) StopRumble() error {
	return errorFromCode(fnStopHapticRumble(h))
}
