package sdl

import "unsafe"

// JoystickID identifies a joystick for the lifetime of the process. Zero is
// the invalid sentinel; IDs are never reused while the process runs.
type JoystickID uint32

// Joystick is an opaque handle to an opened joystick.
type Joystick struct{ _ [0]byte }

// JoystickType mirrors SDL_JoystickType.
type JoystickType uint32

const (
	JoystickTypeUnknown JoystickType = iota
	JoystickTypeGamepad
	JoystickTypeWheel
	JoystickTypeArcadeStick
	JoystickTypeFlightStick
	JoystickTypeDancePad
	JoystickTypeGuitar
	JoystickTypeDrumKit
	JoystickTypeArcadePad
	JoystickTypeThrottle
)

// JoystickPowerLevel mirrors SDL_JoystickPowerLevel.
type JoystickPowerLevel int32

const (
	JoystickPowerUnknown JoystickPowerLevel = iota - 1
	JoystickPowerEmpty
	JoystickPowerLow
	JoystickPowerMedium
	JoystickPowerFull
	JoystickPowerWired
	JoystickPowerMax
)

// Axis value range reported by GetAxis.
const (
	JoystickAxisMax = 32767
	JoystickAxisMin = -32768
)

// Hat positions. The diagonals are the OR of their components.
const (
	HatCentered  uint8 = 0x00
	HatUp        uint8 = 0x01
	HatRight     uint8 = 0x02
	HatDown      uint8 = 0x04
	HatLeft      uint8 = 0x08
	HatRightUp         = HatRight | HatUp
	HatRightDown       = HatRight | HatDown
	HatLeftUp          = HatLeft | HatUp
	HatLeftDown        = HatLeft | HatDown
)

var (
	fnLockJoysticks                     func()
	fnUnlockJoysticks                   func()
	fnGetJoysticks                      func(count *int32) *JoystickID
	fnGetJoystickInstanceName           func(id JoystickID) string
	fnGetJoystickInstancePath           func(id JoystickID) string
	fnGetJoystickInstancePlayerIndex    func(id JoystickID) int32
	fnGetJoystickInstanceGUID           func(id JoystickID) GUID
	fnGetJoystickInstanceVendor         func(id JoystickID) uint16
	fnGetJoystickInstanceProduct        func(id JoystickID) uint16
	fnGetJoystickInstanceProductVersion func(id JoystickID) uint16
	fnGetJoystickInstanceType           func(id JoystickID) JoystickType
	fnOpenJoystick                      func(id JoystickID) *Joystick
	fnGetJoystickFromInstanceID         func(id JoystickID) *Joystick
	fnGetJoystickFromPlayerIndex        func(playerIndex int32) *Joystick
	fnAttachVirtualJoystick             func(typ JoystickType, naxes, nbuttons, nhats int32) JoystickID
	fnDetachVirtualJoystick             func(id JoystickID) int32
	fnIsJoystickVirtual                 func(id JoystickID) Bool
	fnSetJoystickVirtualAxis            func(j *Joystick, axis int32, value int16) int32
	fnSetJoystickVirtualButton          func(j *Joystick, button int32, value uint8) int32
	fnSetJoystickVirtualHat             func(j *Joystick, hat int32, value uint8) int32
	fnGetJoystickProperties             func(j *Joystick) PropertiesID
	fnGetJoystickName                   func(j *Joystick) string
	fnGetJoystickPath                   func(j *Joystick) string
	fnGetJoystickPlayerIndex            func(j *Joystick) int32
	fnSetJoystickPlayerIndex            func(j *Joystick, playerIndex int32) int32
	fnGetJoystickGUID                   func(j *Joystick) GUID
	fnGetJoystickVendor                 func(j *Joystick) uint16
	fnGetJoystickProduct                func(j *Joystick) uint16
	fnGetJoystickProductVersion         func(j *Joystick) uint16
	fnGetJoystickFirmwareVersion        func(j *Joystick) uint16
	fnGetJoystickSerial                 func(j *Joystick) string
	fnGetJoystickType                   func(j *Joystick) JoystickType
	fnJoystickConnected                 func(j *Joystick) Bool
	fnGetJoystickInstanceID             func(j *Joystick) JoystickID
	fnGetNumJoystickAxes                func(j *Joystick) int32
	fnGetNumJoystickBalls               func(j *Joystick) int32
	fnGetNumJoystickHats                func(j *Joystick) int32
	fnGetNumJoystickButtons             func(j *Joystick) int32
	fnGetJoystickAxis                   func(j *Joystick, axis int32) int16
	fnGetJoystickAxisInitialState       func(j *Joystick, axis int32, state *int16) Bool
	fnGetJoystickBall                   func(j *Joystick, ball int32, dx, dy *int32) int32
	fnGetJoystickHat                    func(j *Joystick, hat int32) uint8
	fnGetJoystickButton                 func(j *Joystick, button int32) uint8
	fnRumbleJoystick                    func(j *Joystick, lowFreq, highFreq uint16, durationMS uint32) int32
	fnRumbleJoystickTriggers            func(j *Joystick, left, right uint16, durationMS uint32) int32
	fnGetJoystickPowerLevel             func(j *Joystick) JoystickPowerLevel
	fnSetJoystickLED                    func(j *Joystick, r, g, b uint8) int32
	fnSendJoystickEffect                func(j *Joystick, data unsafe.Pointer, size int32) int32
	fnCloseJoystick                     func(j *Joystick)
	fnSetJoystickEventsEnabled          func(enabled Bool)
	fnJoystickEventsEnabled             func() Bool
	fnUpdateJoysticks                   func()
)

func registerJoystickFuncs() {
	register(&fnLockJoysticks, "SDL_LockJoysticks")
	register(&fnUnlockJoysticks, "SDL_UnlockJoysticks")
	register(&fnGetJoysticks, "SDL_GetJoysticks")
	register(&fnGetJoystickInstanceName, "SDL_GetJoystickInstanceName")
	register(&fnGetJoystickInstancePath, "SDL_GetJoystickInstancePath")
	register(&fnGetJoystickInstancePlayerIndex, "SDL_GetJoystickInstancePlayerIndex")
	register(&fnGetJoystickInstanceGUID, "SDL_GetJoystickInstanceGUID")
	register(&fnGetJoystickInstanceVendor, "SDL_GetJoystickInstanceVendor")
	register(&fnGetJoystickInstanceProduct, "SDL_GetJoystickInstanceProduct")
	register(&fnGetJoystickInstanceProductVersion, "SDL_GetJoystickInstanceProductVersion")
	register(&fnGetJoystickInstanceType, "SDL_GetJoystickInstanceType")
	register(&fnOpenJoystick, "SDL_OpenJoystick")
	register(&fnGetJoystickFromInstanceID, "SDL_GetJoystickFromInstanceID")
	register(&fnGetJoystickFromPlayerIndex, "SDL_GetJoystickFromPlayerIndex")
	register(&fnAttachVirtualJoystick, "SDL_AttachVirtualJoystick")
	register(&fnDetachVirtualJoystick, "SDL_DetachVirtualJoystick")
	register(&fnIsJoystickVirtual, "SDL_IsJoystickVirtual")
	register(&fnSetJoystickVirtualAxis, "SDL_SetJoystickVirtualAxis")
	register(&fnSetJoystickVirtualButton, "SDL_SetJoystickVirtualButton")
	register(&fnSetJoystickVirtualHat, "SDL_SetJoystickVirtualHat")
	register(&fnGetJoystickProperties, "SDL_GetJoystickProperties")
	register(&fnGetJoystickName, "SDL_GetJoystickName")
	register(&fnGetJoystickPath, "SDL_GetJoystickPath")
	register(&fnGetJoystickPlayerIndex, "SDL_GetJoystickPlayerIndex")
	register(&fnSetJoystickPlayerIndex, "SDL_SetJoystickPlayerIndex")
	register(&fnGetJoystickGUID, "SDL_GetJoystickGUID")
	register(&fnGetJoystickVendor, "SDL_GetJoystickVendor")
	register(&fnGetJoystickProduct, "SDL_GetJoystickProduct")
	register(&fnGetJoystickProductVersion, "SDL_GetJoystickProductVersion")
	register(&fnGetJoystickFirmwareVersion, "SDL_GetJoystickFirmwareVersion")
	register(&fnGetJoystickSerial, "SDL_GetJoystickSerial")
	register(&fnGetJoystickType, "SDL_GetJoystickType")
	register(&fnJoystickConnected, "SDL_JoystickConnected")
	register(&fnGetJoystickInstanceID, "SDL_GetJoystickInstanceID")
	register(&fnGetNumJoystickAxes, "SDL_GetNumJoystickAxes")
	register(&fnGetNumJoystickBalls, "SDL_GetNumJoystickBalls")
	register(&fnGetNumJoystickHats, "SDL_GetNumJoystickHats")
	register(&fnGetNumJoystickButtons, "SDL_GetNumJoystickButtons")
	register(&fnGetJoystickAxis, "SDL_GetJoystickAxis")
	register(&fnGetJoystickAxisInitialState, "SDL_GetJoystickAxisInitialState")
	register(&fnGetJoystickBall, "SDL_GetJoystickBall")
	register(&fnGetJoystickHat, "SDL_GetJoystickHat")
	register(&fnGetJoystickButton, "SDL_GetJoystickButton")
	register(&fnRumbleJoystick, "SDL_RumbleJoystick")
	register(&fnRumbleJoystickTriggers, "SDL_RumbleJoystickTriggers")
	register(&fnGetJoystickPowerLevel, "SDL_GetJoystickPowerLevel")
	register(&fnSetJoystickLED, "SDL_SetJoystickLED")
	register(&fnSendJoystickEffect, "SDL_SendJoystickEffect")
	register(&fnCloseJoystick, "SDL_CloseJoystick")
	register(&fnSetJoystickEventsEnabled, "SDL_SetJoystickEventsEnabled")
	register(&fnJoystickEventsEnabled, "SDL_JoystickEventsEnabled")
	register(&fnUpdateJoysticks, "SDL_UpdateJoysticks")
}

// LockJoysticks serializes access to joystick state against the event loop.
func LockJoysticks() {
	fnLockJoysticks()
}

// UnlockJoysticks releases the lock taken by LockJoysticks.
func UnlockJoysticks() {
	fnUnlockJoysticks()
}

// GetJoysticks returns the IDs of all connected joysticks.
func GetJoysticks() ([]JoystickID, error) {
	var count int32
	p := fnGetJoysticks(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetJoystickInstanceName returns a joystick's name without opening it.
func GetJoystickInstanceName(id JoystickID) string {
	return fnGetJoystickInstanceName(id)
}

// GetJoystickInstancePath returns a joystick's device path without opening it.
func GetJoystickInstancePath(id JoystickID) string {
	return fnGetJoystickInstancePath(id)
}

// GetJoystickInstancePlayerIndex returns a joystick's player index, or -1.
func GetJoystickInstancePlayerIndex(id JoystickID) int32 {
	return fnGetJoystickInstancePlayerIndex(id)
}

// GetJoystickInstanceGUID returns a joystick's GUID without opening it.
func GetJoystickInstanceGUID(id JoystickID) GUID {
	return fnGetJoystickInstanceGUID(id)
}

// GetJoystickInstanceVendor returns a joystick's USB vendor ID, or 0.
func GetJoystickInstanceVendor(id JoystickID) uint16 {
	return fnGetJoystickInstanceVendor(id)
}

// GetJoystickInstanceProduct returns a joystick's USB product ID, or 0.
func GetJoystickInstanceProduct(id JoystickID) uint16 {
	return fnGetJoystickInstanceProduct(id)
}

// GetJoystickInstanceProductVersion returns a joystick's product version, or 0.
func GetJoystickInstanceProductVersion(id JoystickID) uint16 {
	return fnGetJoystickInstanceProductVersion(id)
}

// GetJoystickInstanceType returns a joystick's type without opening it.
func GetJoystickInstanceType(id JoystickID) JoystickType {
	return fnGetJoystickInstanceType(id)
}

// OpenJoystick opens a joystick for use.
func OpenJoystick(id JoystickID) (*Joystick, error) {
	j := fnOpenJoystick(id)
	if j == nil {
		return nil, fail()
	}
	return j, nil
}

// GetJoystickFromInstanceID returns the opened joystick for an ID, or nil.
func GetJoystickFromInstanceID(id JoystickID) *Joystick {
	return fnGetJoystickFromInstanceID(id)
}

// GetJoystickFromPlayerIndex returns the opened joystick for a player, or nil.
func GetJoystickFromPlayerIndex(playerIndex int32) *Joystick {
	return fnGetJoystickFromPlayerIndex(playerIndex)
}

// AttachVirtualJoystick registers a software joystick and returns its ID.
func AttachVirtualJoystick(typ JoystickType, naxes, nbuttons, nhats int32) (JoystickID, error) {
	id := fnAttachVirtualJoystick(typ, naxes, nbuttons, nhats)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// DetachVirtualJoystick removes a virtual joystick.
func DetachVirtualJoystick(id JoystickID) error {
	return errorFromCode(fnDetachVirtualJoystick(id))
}

// IsJoystickVirtual reports whether an ID names a virtual joystick.
func IsJoystickVirtual(id JoystickID) bool {
	return fnIsJoystickVirtual(id).Bool()
}

// SetVirtualAxis feeds an axis value into an opened virtual joystick. The
// value is delivered on the next UpdateJoysticks.
func (j *Joystick) SetVirtualAxis(axis int32, value int16) error {
	return errorFromCode(fnSetJoystickVirtualAxis(j, axis, value))
}

// SetVirtualButton feeds a button state into an opened virtual joystick.
func (j *Joystick) SetVirtualButton(button int32, value uint8) error {
	return errorFromCode(fnSetJoystickVirtualButton(j, button, value))
}

// SetVirtualHat feeds a hat position into an opened virtual joystick.
func (j *Joystick) SetVirtualHat(hat int32, value uint8) error {
	return errorFromCode(fnSetJoystickVirtualHat(j, hat, value))
}

// Properties returns the joystick's property group.
func (j *Joystick) Properties() (PropertiesID, error) {
	id := fnGetJoystickProperties(j)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// Name returns the joystick's name.
func (j *Joystick) Name() string {
	return fnGetJoystickName(j)
}

// Path returns the joystick's device path.
func (j *Joystick) Path() string {
	return fnGetJoystickPath(j)
}

// PlayerIndex returns the joystick's player index, or -1.
func (j *Joystick) PlayerIndex() int32 {
	return fnGetJoystickPlayerIndex(j)
}

// SetPlayerIndex assigns the joystick's player index; -1 clears it.
func (j *Joystick) SetPlayerIndex(playerIndex int32) error {
	return errorFromCode(fnSetJoystickPlayerIndex(j, playerIndex))
}

// GUID returns the joystick's GUID.
func (j *Joystick) GUID() GUID {
	return fnGetJoystickGUID(j)
}

// Vendor returns the joystick's USB vendor ID, or 0.
func (j *Joystick) Vendor() uint16 {
	return fnGetJoystickVendor(j)
}

// Product returns the joystick's USB product ID, or 0.
func (j *Joystick) Product() uint16 {
	return fnGetJoystickProduct(j)
}

// ProductVersion returns the joystick's product version, or 0.
func (j *Joystick) ProductVersion() uint16 {
	return fnGetJoystickProductVersion(j)
}

// FirmwareVersion returns the joystick's firmware version, or 0.
func (j *Joystick) FirmwareVersion() uint16 {
	return fnGetJoystickFirmwareVersion(j)
}

// Serial returns the joystick's serial number, or "".
func (j *Joystick) Serial() string {
	return fnGetJoystickSerial(j)
}

// Type returns the joystick's type.
func (j *Joystick) Type() JoystickType {
	return fnGetJoystickType(j)
}

// Connected reports whether the joystick is still attached.
func (j *Joystick) Connected() bool {
	return fnJoystickConnected(j).Bool()
}

// InstanceID returns the joystick's ID.
func (j *Joystick) InstanceID() JoystickID {
	return fnGetJoystickInstanceID(j)
}

// NumAxes returns the number of axes.
func (j *Joystick) NumAxes() (int32, error) {
	n := fnGetNumJoystickAxes(j)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// NumBalls returns the number of trackballs.
func (j *Joystick) NumBalls() (int32, error) {
	n := fnGetNumJoystickBalls(j)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// NumHats returns the number of hats.
func (j *Joystick) NumHats() (int32, error) {
	n := fnGetNumJoystickHats(j)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// NumButtons returns the number of buttons.
func (j *Joystick) NumButtons() (int32, error) {
	n := fnGetNumJoystickButtons(j)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// Axis returns an axis position in [JoystickAxisMin, JoystickAxisMax].
func (j *Joystick) Axis(axis int32) int16 {
	return fnGetJoystickAxis(j, axis)
}

// AxisInitialState returns an axis's initial value, and whether the device
// reported one.
func (j *Joystick) AxisInitialState(axis int32) (int16, bool) {
	var state int16
	ok := fnGetJoystickAxisInitialState(j, axis, &state)
	return state, ok.Bool()
}

// Ball returns a trackball's motion since the last call.
func (j *Joystick) Ball(ball int32) (dx, dy int32, err error) {
	if rc := fnGetJoystickBall(j, ball, &dx, &dy); rc < 0 {
		return 0, 0, fail()
	}
	return dx, dy, nil
}

// Hat returns a hat position as one of the Hat constants.
func (j *Joystick) Hat(hat int32) uint8 {
	return fnGetJoystickHat(j, hat)
}

// Button reports whether a button is pressed.
func (j *Joystick) Button(button int32) bool {
	return fnGetJoystickButton(j, button) != 0
}

// Rumble starts a rumble effect; zero intensities stop it.
func (j *Joystick) Rumble(lowFreq, highFreq uint16, durationMS uint32) error {
	return errorFromCode(fnRumbleJoystick(j, lowFreq, highFreq, durationMS))
}

// RumbleTriggers starts a trigger rumble effect.
func (j *Joystick) RumbleTriggers(left, right uint16, durationMS uint32) error {
	return errorFromCode(fnRumbleJoystickTriggers(j, left, right, durationMS))
}

// PowerLevel returns the battery level, or JoystickPowerUnknown.
func (j *Joystick) PowerLevel() JoystickPowerLevel {
	return fnGetJoystickPowerLevel(j)
}

// SetLED sets the joystick's LED color where supported.
func (j *Joystick) SetLED(r, g, b uint8) error {
	return errorFromCode(fnSetJoystickLED(j, r, g, b))
}

// SendEffect sends a device-specific effect packet.
func (j *Joystick) SendEffect(data []byte) error {
	if len(data) == 0 {
		return SetError("empty effect packet")
	}
	return errorFromCode(fnSendJoystickEffect(j, unsafe.Pointer(&data[0]), int32(len(data))))
}

// Close releases an opened joystick.
func (j *Joystick) Close() {
	fnCloseJoystick(j)
}

// SetJoystickEventsEnabled toggles delivery of joystick events. When
// disabled, UpdateJoysticks must be called to poll state.
func SetJoystickEventsEnabled(enabled bool) {
	fnSetJoystickEventsEnabled(FromBool(enabled))
}

// JoystickEventsEnabled reports whether joystick events are delivered.
func JoystickEventsEnabled() bool {
	return fnJoystickEventsEnabled().Bool()
}

// UpdateJoysticks refreshes joystick state. The event loop does this
// implicitly.
func UpdateJoysticks() {
	fnUpdateJoysticks()
}
