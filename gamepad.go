package sdl

import "unsafe"

// Gamepad is an opaque handle to a joystick opened through the gamepad
// mapping layer.
type Gamepad struct{ _ [0]byte }

// GamepadType mirrors SDL_GamepadType.
type GamepadType int32

const (
	GamepadTypeUnknown GamepadType = iota
	GamepadTypeStandard
	GamepadTypeXbox360
	GamepadTypeXboxOne
	GamepadTypePS3
	GamepadTypePS4
	GamepadTypePS5
	GamepadTypeNintendoSwitchPro
	GamepadTypeNintendoSwitchJoyconLeft
	GamepadTypeNintendoSwitchJoyconRight
	GamepadTypeNintendoSwitchJoyconPair
	GamepadTypeMax
)

// GamepadButton mirrors SDL_GamepadButton. Buttons are named by position;
// labels vary by controller type.
type GamepadButton int32

const (
	GamepadButtonInvalid GamepadButton = iota - 1
	GamepadButtonSouth
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDpadUp
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonDpadRight
	GamepadButtonMisc1
	GamepadButtonRightPaddle1
	GamepadButtonLeftPaddle1
	GamepadButtonRightPaddle2
	GamepadButtonLeftPaddle2
	GamepadButtonTouchpad
	GamepadButtonMax
)

// GamepadButtonLabel mirrors SDL_GamepadButtonLabel.
type GamepadButtonLabel int32

const (
	GamepadButtonLabelUnknown GamepadButtonLabel = iota
	GamepadButtonLabelA
	GamepadButtonLabelB
	GamepadButtonLabelX
	GamepadButtonLabelY
	GamepadButtonLabelCross
	GamepadButtonLabelCircle
	GamepadButtonLabelSquare
	GamepadButtonLabelTriangle
)

// GamepadAxis mirrors SDL_GamepadAxis. Triggers range 0..JoystickAxisMax,
// sticks JoystickAxisMin..JoystickAxisMax.
type GamepadAxis int32

const (
	GamepadAxisInvalid GamepadAxis = iota - 1
	GamepadAxisLeftX
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	GamepadAxisMax
)

// GamepadBindingType mirrors SDL_GamepadBindingType.
type GamepadBindingType int32

const (
	GamepadBindTypeNone GamepadBindingType = iota
	GamepadBindTypeButton
	GamepadBindTypeAxis
	GamepadBindTypeHat
)

// GamepadBinding mirrors SDL_GamepadBinding: one physical input mapped to one
// logical output. The union payloads are reached through the typed accessors
// below, selected by InputType and OutputType.
type GamepadBinding struct {
	InputType  GamepadBindingType
	input      [3]int32
	OutputType GamepadBindingType
	output     [3]int32
}

// InputButton returns the physical button index for GamepadBindTypeButton.
func (b *GamepadBinding) InputButton() int32 { return b.input[0] }

// InputAxis returns the physical axis and its mapped range for
// GamepadBindTypeAxis.
func (b *GamepadBinding) InputAxis() (axis, axisMin, axisMax int32) {
	return b.input[0], b.input[1], b.input[2]
}

// InputHat returns the physical hat index and position mask for
// GamepadBindTypeHat.
func (b *GamepadBinding) InputHat() (hat, hatMask int32) {
	return b.input[0], b.input[1]
}

// OutputButton returns the logical button for GamepadBindTypeButton.
func (b *GamepadBinding) OutputButton() GamepadButton {
	return GamepadButton(b.output[0])
}

// OutputAxis returns the logical axis and its range for GamepadBindTypeAxis.
func (b *GamepadBinding) OutputAxis() (axis GamepadAxis, axisMin, axisMax int32) {
	return GamepadAxis(b.output[0]), b.output[1], b.output[2]
}

var (
	fnAddGamepadMapping                     func(mapping string) int32
	fnAddGamepadMappingsFromRW              func(src *RWops, freesrc Bool) int32
	fnAddGamepadMappingsFromFile            func(file string) int32
	fnReloadGamepadMappings                 func() int32
	fnGetGamepadMappings                    func(count *int32) **byte
	fnGetGamepadMappingForGUID              func(guid GUID) *byte
	fnGetGamepadMapping                     func(g *Gamepad) *byte
	fnSetGamepadMapping                     func(id JoystickID, mapping string) int32
	fnGetGamepads                           func(count *int32) *JoystickID
	fnIsGamepad                             func(id JoystickID) Bool
	fnGetGamepadInstanceName                func(id JoystickID) string
	fnGetGamepadInstancePath                func(id JoystickID) string
	fnGetGamepadInstancePlayerIndex         func(id JoystickID) int32
	fnGetGamepadInstanceGUID                func(id JoystickID) GUID
	fnGetGamepadInstanceVendor              func(id JoystickID) uint16
	fnGetGamepadInstanceProduct             func(id JoystickID) uint16
	fnGetGamepadInstanceProductVersion      func(id JoystickID) uint16
	fnGetGamepadInstanceType                func(id JoystickID) GamepadType
	fnGetRealGamepadInstanceType            func(id JoystickID) GamepadType
	fnGetGamepadInstanceMapping             func(id JoystickID) *byte
	fnOpenGamepad                           func(id JoystickID) *Gamepad
	fnGetGamepadFromInstanceID              func(id JoystickID) *Gamepad
	fnGetGamepadFromPlayerIndex             func(playerIndex int32) *Gamepad
	fnGetGamepadProperties                  func(g *Gamepad) PropertiesID
	fnGetGamepadInstanceID                  func(g *Gamepad) JoystickID
	fnGetGamepadName                        func(g *Gamepad) string
	fnGetGamepadPath                        func(g *Gamepad) string
	fnGetGamepadType                        func(g *Gamepad) GamepadType
	fnGetRealGamepadType                    func(g *Gamepad) GamepadType
	fnGetGamepadPlayerIndex                 func(g *Gamepad) int32
	fnSetGamepadPlayerIndex                 func(g *Gamepad, playerIndex int32) int32
	fnGetGamepadVendor                      func(g *Gamepad) uint16
	fnGetGamepadProduct                     func(g *Gamepad) uint16
	fnGetGamepadProductVersion              func(g *Gamepad) uint16
	fnGetGamepadFirmwareVersion             func(g *Gamepad) uint16
	fnGetGamepadSerial                      func(g *Gamepad) string
	fnGetGamepadSteamHandle                 func(g *Gamepad) uint64
	fnGetGamepadPowerLevel                  func(g *Gamepad) JoystickPowerLevel
	fnGamepadConnected                      func(g *Gamepad) Bool
	fnGetGamepadJoystick                    func(g *Gamepad) *Joystick
	fnSetGamepadEventsEnabled               func(enabled Bool)
	fnGamepadEventsEnabled                  func() Bool
	fnGetGamepadBindings                    func(g *Gamepad, count *int32) **GamepadBinding
	fnUpdateGamepads                        func()
	fnGetGamepadTypeFromString              func(s string) GamepadType
	fnGetGamepadStringForType               func(typ GamepadType) string
	fnGetGamepadAxisFromString              func(s string) GamepadAxis
	fnGetGamepadStringForAxis               func(axis GamepadAxis) string
	fnGamepadHasAxis                        func(g *Gamepad, axis GamepadAxis) Bool
	fnGetGamepadAxis                        func(g *Gamepad, axis GamepadAxis) int16
	fnGetGamepadButtonFromString            func(s string) GamepadButton
	fnGetGamepadStringForButton             func(button GamepadButton) string
	fnGamepadHasButton                      func(g *Gamepad, button GamepadButton) Bool
	fnGetGamepadButton                      func(g *Gamepad, button GamepadButton) uint8
	fnGetGamepadButtonLabelForType          func(typ GamepadType, button GamepadButton) GamepadButtonLabel
	fnGetGamepadButtonLabel                 func(g *Gamepad, button GamepadButton) GamepadButtonLabel
	fnGetNumGamepadTouchpads                func(g *Gamepad) int32
	fnGetNumGamepadTouchpadFingers          func(g *Gamepad, touchpad int32) int32
	fnGetGamepadTouchpadFinger              func(g *Gamepad, touchpad, finger int32, state *uint8, x, y, pressure *float32) int32
	fnGamepadHasSensor                      func(g *Gamepad, typ SensorType) Bool
	fnSetGamepadSensorEnabled               func(g *Gamepad, typ SensorType, enabled Bool) int32
	fnGamepadSensorEnabled                  func(g *Gamepad, typ SensorType) Bool
	fnGetGamepadSensorDataRate              func(g *Gamepad, typ SensorType) float32
	fnGetGamepadSensorData                  func(g *Gamepad, typ SensorType, data *float32, numValues int32) int32
	fnRumbleGamepad                         func(g *Gamepad, lowFreq, highFreq uint16, durationMS uint32) int32
	fnRumbleGamepadTriggers                 func(g *Gamepad, left, right uint16, durationMS uint32) int32
	fnGamepadHasLED                         func(g *Gamepad) Bool
	fnGamepadHasRumble                      func(g *Gamepad) Bool
	fnGamepadHasRumbleTriggers              func(g *Gamepad) Bool
	fnSetGamepadLED                         func(g *Gamepad, r, gc, b uint8) int32
	fnSendGamepadEffect                     func(g *Gamepad, data unsafe.Pointer, size int32) int32
	fnCloseGamepad                          func(g *Gamepad)
	fnGetGamepadAppleSFSymbolsNameForButton func(g *Gamepad, button GamepadButton) string
	fnGetGamepadAppleSFSymbolsNameForAxis   func(g *Gamepad, axis GamepadAxis) string
)

func registerGamepadFuncs() {
	register(&fnAddGamepadMapping, "SDL_AddGamepadMapping")
	register(&fnAddGamepadMappingsFromRW, "SDL_AddGamepadMappingsFromRW")
	register(&fnAddGamepadMappingsFromFile, "SDL_AddGamepadMappingsFromFile")
	register(&fnReloadGamepadMappings, "SDL_ReloadGamepadMappings")
	register(&fnGetGamepadMappings, "SDL_GetGamepadMappings")
	register(&fnGetGamepadMappingForGUID, "SDL_GetGamepadMappingForGUID")
	register(&fnGetGamepadMapping, "SDL_GetGamepadMapping")
	register(&fnSetGamepadMapping, "SDL_SetGamepadMapping")
	register(&fnGetGamepads, "SDL_GetGamepads")
	register(&fnIsGamepad, "SDL_IsGamepad")
	register(&fnGetGamepadInstanceName, "SDL_GetGamepadInstanceName")
	register(&fnGetGamepadInstancePath, "SDL_GetGamepadInstancePath")
	register(&fnGetGamepadInstancePlayerIndex, "SDL_GetGamepadInstancePlayerIndex")
	register(&fnGetGamepadInstanceGUID, "SDL_GetGamepadInstanceGUID")
	register(&fnGetGamepadInstanceVendor, "SDL_GetGamepadInstanceVendor")
	register(&fnGetGamepadInstanceProduct, "SDL_GetGamepadInstanceProduct")
	register(&fnGetGamepadInstanceProductVersion, "SDL_GetGamepadInstanceProductVersion")
	register(&fnGetGamepadInstanceType, "SDL_GetGamepadInstanceType")
	register(&fnGetRealGamepadInstanceType, "SDL_GetRealGamepadInstanceType")
	register(&fnGetGamepadInstanceMapping, "SDL_GetGamepadInstanceMapping")
	register(&fnOpenGamepad, "SDL_OpenGamepad")
	register(&fnGetGamepadFromInstanceID, "SDL_GetGamepadFromInstanceID")
	register(&fnGetGamepadFromPlayerIndex, "SDL_GetGamepadFromPlayerIndex")
	register(&fnGetGamepadProperties, "SDL_GetGamepadProperties")
	register(&fnGetGamepadInstanceID, "SDL_GetGamepadInstanceID")
	register(&fnGetGamepadName, "SDL_GetGamepadName")
	register(&fnGetGamepadPath, "SDL_GetGamepadPath")
	register(&fnGetGamepadType, "SDL_GetGamepadType")
	register(&fnGetRealGamepadType, "SDL_GetRealGamepadType")
	register(&fnGetGamepadPlayerIndex, "SDL_GetGamepadPlayerIndex")
	register(&fnSetGamepadPlayerIndex, "SDL_SetGamepadPlayerIndex")
	register(&fnGetGamepadVendor, "SDL_GetGamepadVendor")
	register(&fnGetGamepadProduct, "SDL_GetGamepadProduct")
	register(&fnGetGamepadProductVersion, "SDL_GetGamepadProductVersion")
	register(&fnGetGamepadFirmwareVersion, "SDL_GetGamepadFirmwareVersion")
	register(&fnGetGamepadSerial, "SDL_GetGamepadSerial")
	register(&fnGetGamepadSteamHandle, "SDL_GetGamepadSteamHandle")
	register(&fnGetGamepadPowerLevel, "SDL_GetGamepadPowerLevel")
	register(&fnGamepadConnected, "SDL_GamepadConnected")
	register(&fnGetGamepadJoystick, "SDL_GetGamepadJoystick")
	register(&fnSetGamepadEventsEnabled, "SDL_SetGamepadEventsEnabled")
	register(&fnGamepadEventsEnabled, "SDL_GamepadEventsEnabled")
	register(&fnGetGamepadBindings, "SDL_GetGamepadBindings")
	register(&fnUpdateGamepads, "SDL_UpdateGamepads")
	register(&fnGetGamepadTypeFromString, "SDL_GetGamepadTypeFromString")
	register(&fnGetGamepadStringForType, "SDL_GetGamepadStringForType")
	register(&fnGetGamepadAxisFromString, "SDL_GetGamepadAxisFromString")
	register(&fnGetGamepadStringForAxis, "SDL_GetGamepadStringForAxis")
	register(&fnGamepadHasAxis, "SDL_GamepadHasAxis")
	register(&fnGetGamepadAxis, "SDL_GetGamepadAxis")
	register(&fnGetGamepadButtonFromString, "SDL_GetGamepadButtonFromString")
	register(&fnGetGamepadStringForButton, "SDL_GetGamepadStringForButton")
	register(&fnGamepadHasButton, "SDL_GamepadHasButton")
	register(&fnGetGamepadButton, "SDL_GetGamepadButton")
	register(&fnGetGamepadButtonLabelForType, "SDL_GetGamepadButtonLabelForType")
	register(&fnGetGamepadButtonLabel, "SDL_GetGamepadButtonLabel")
	register(&fnGetNumGamepadTouchpads, "SDL_GetNumGamepadTouchpads")
	register(&fnGetNumGamepadTouchpadFingers, "SDL_GetNumGamepadTouchpadFingers")
	register(&fnGetGamepadTouchpadFinger, "SDL_GetGamepadTouchpadFinger")
	register(&fnGamepadHasSensor, "SDL_GamepadHasSensor")
	register(&fnSetGamepadSensorEnabled, "SDL_SetGamepadSensorEnabled")
	register(&fnGamepadSensorEnabled, "SDL_GamepadSensorEnabled")
	register(&fnGetGamepadSensorDataRate, "SDL_GetGamepadSensorDataRate")
	register(&fnGetGamepadSensorData, "SDL_GetGamepadSensorData")
	register(&fnRumbleGamepad, "SDL_RumbleGamepad")
	register(&fnRumbleGamepadTriggers, "SDL_RumbleGamepadTriggers")
	register(&fnGamepadHasLED, "SDL_GamepadHasLED")
	register(&fnGamepadHasRumble, "SDL_GamepadHasRumble")
	register(&fnGamepadHasRumbleTriggers, "SDL_GamepadHasRumbleTriggers")
	register(&fnSetGamepadLED, "SDL_SetGamepadLED")
	register(&fnSendGamepadEffect, "SDL_SendGamepadEffect")
	register(&fnCloseGamepad, "SDL_CloseGamepad")
	register(&fnGetGamepadAppleSFSymbolsNameForButton, "SDL_GetGamepadAppleSFSymbolsNameForButton")
	register(&fnGetGamepadAppleSFSymbolsNameForAxis, "SDL_GetGamepadAppleSFSymbolsNameForAxis")
}

// AddGamepadMapping installs a mapping string. It returns true when the
// mapping is new and false when it updates an existing one.
func AddGamepadMapping(mapping string) (added bool, err error) {
	rc := fnAddGamepadMapping(mapping)
	if rc < 0 {
		return false, fail()
	}
	return rc == 1, nil
}

// AddGamepadMappingsFromRW installs every mapping in a stream and returns how
// many were added. The stream is always consumed and, when freesrc is set,
// closed.
func AddGamepadMappingsFromRW(src *RWops, freesrc bool) (int32, error) {
	n := fnAddGamepadMappingsFromRW(src, FromBool(freesrc))
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// AddGamepadMappingsFromFile installs every mapping in a file and returns how
// many were added.
func AddGamepadMappingsFromFile(file string) (int32, error) {
	n := fnAddGamepadMappingsFromFile(file)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// ReloadGamepadMappings restores the built-in mapping database, dropping any
// added at runtime.
func ReloadGamepadMappings() error {
	return errorFromCode(fnReloadGamepadMappings())
}

// GetGamepadMappings returns every installed mapping string.
func GetGamepadMappings() ([]string, error) {
	var count int32
	p := fnGetGamepadMappings(&count)
	if p == nil {
		return nil, fail()
	}
	ptrs := unsafe.Slice(p, count)
	out := make([]string, count)
	for i, s := range ptrs {
		out[i] = goString(s)
	}
	fnFree(unsafe.Pointer(p))
	return out, nil
}

// GetGamepadMappingForGUID returns the mapping for a device GUID.
func GetGamepadMappingForGUID(guid GUID) (string, error) {
	p := fnGetGamepadMappingForGUID(guid)
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// Mapping returns the mapping in effect for an opened gamepad.
func (g *Gamepad) Mapping() (string, error) {
	p := fnGetGamepadMapping(g)
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// SetGamepadMapping overrides the mapping for one device; an empty mapping
// clears the override.
func SetGamepadMapping(id JoystickID, mapping string) error {
	return errorFromCode(fnSetGamepadMapping(id, mapping))
}

// GetGamepads returns the IDs of all joysticks with a gamepad mapping.
func GetGamepads() ([]JoystickID, error) {
	var count int32
	p := fnGetGamepads(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// IsGamepad reports whether a joystick has a gamepad mapping.
func IsGamepad(id JoystickID) bool {
	return fnIsGamepad(id).Bool()
}

// GetGamepadInstanceName returns a gamepad's name without opening it.
func GetGamepadInstanceName(id JoystickID) string {
	return fnGetGamepadInstanceName(id)
}

// GetGamepadInstancePath returns a gamepad's device path without opening it.
func GetGamepadInstancePath(id JoystickID) string {
	return fnGetGamepadInstancePath(id)
}

// GetGamepadInstancePlayerIndex returns a gamepad's player index, or -1.
func GetGamepadInstancePlayerIndex(id JoystickID) int32 {
	return fnGetGamepadInstancePlayerIndex(id)
}

// GetGamepadInstanceGUID returns a gamepad's GUID without opening it.
func GetGamepadInstanceGUID(id JoystickID) GUID {
	return fnGetGamepadInstanceGUID(id)
}

// GetGamepadInstanceVendor returns a gamepad's USB vendor ID, or 0.
func GetGamepadInstanceVendor(id JoystickID) uint16 {
	return fnGetGamepadInstanceVendor(id)
}

// GetGamepadInstanceProduct returns a gamepad's USB product ID, or 0.
func GetGamepadInstanceProduct(id JoystickID) uint16 {
	return fnGetGamepadInstanceProduct(id)
}

// GetGamepadInstanceProductVersion returns a gamepad's product version, or 0.
func GetGamepadInstanceProductVersion(id JoystickID) uint16 {
	return fnGetGamepadInstanceProductVersion(id)
}

// GetGamepadInstanceType returns the mapped controller type.
func GetGamepadInstanceType(id JoystickID) GamepadType {
	return fnGetGamepadInstanceType(id)
}

// GetRealGamepadInstanceType returns the controller type ignoring any mapping
// override.
func GetRealGamepadInstanceType(id JoystickID) GamepadType {
	return fnGetRealGamepadInstanceType(id)
}

// GetGamepadInstanceMapping returns a gamepad's mapping without opening it.
func GetGamepadInstanceMapping(id JoystickID) (string, error) {
	p := fnGetGamepadInstanceMapping(id)
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// OpenGamepad opens a gamepad for use.
func OpenGamepad(id JoystickID) (*Gamepad, error) {
	g := fnOpenGamepad(id)
	if g == nil {
		return nil, fail()
	}
	return g, nil
}

// GetGamepadFromInstanceID returns the opened gamepad for an ID, or nil.
func GetGamepadFromInstanceID(id JoystickID) *Gamepad {
	return fnGetGamepadFromInstanceID(id)
}

// GetGamepadFromPlayerIndex returns the opened gamepad for a player, or nil.
func GetGamepadFromPlayerIndex(playerIndex int32) *Gamepad {
	return fnGetGamepadFromPlayerIndex(playerIndex)
}

// Properties returns the gamepad's property group.
func (g *Gamepad) Properties() (PropertiesID, error) {
	id := fnGetGamepadProperties(g)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// InstanceID returns the gamepad's joystick ID.
func (g *Gamepad) InstanceID() JoystickID {
	return fnGetGamepadInstanceID(g)
}

// Name returns the gamepad's name.
func (g *Gamepad) Name() string {
	return fnGetGamepadName(g)
}

// Path returns the gamepad's device path.
func (g *Gamepad) Path() string {
	return fnGetGamepadPath(g)
}

// Type returns the mapped controller type.
func (g *Gamepad) Type() GamepadType {
	return fnGetGamepadType(g)
}

// RealType returns the controller type ignoring any mapping override.
func (g *Gamepad) RealType() GamepadType {
	return fnGetRealGamepadType(g)
}

// PlayerIndex returns the gamepad's player index, or -1.
func (g *Gamepad) PlayerIndex() int32 {
	return fnGetGamepadPlayerIndex(g)
}

// SetPlayerIndex assigns the gamepad's player index; -1 clears it.
func (g *Gamepad) SetPlayerIndex(playerIndex int32) error {
	return errorFromCode(fnSetGamepadPlayerIndex(g, playerIndex))
}

// Vendor returns the gamepad's USB vendor ID, or 0.
func (g *Gamepad) Vendor() uint16 {
	return fnGetGamepadVendor(g)
}

// Product returns the gamepad's USB product ID, or 0.
func (g *Gamepad) Product() uint16 {
	return fnGetGamepadProduct(g)
}

// ProductVersion returns the gamepad's product version, or 0.
func (g *Gamepad) ProductVersion() uint16 {
	return fnGetGamepadProductVersion(g)
}

// FirmwareVersion returns the gamepad's firmware version, or 0.
func (g *Gamepad) FirmwareVersion() uint16 {
	return fnGetGamepadFirmwareVersion(g)
}

// Serial returns the gamepad's serial number, or "".
func (g *Gamepad) Serial() string {
	return fnGetGamepadSerial(g)
}

// SteamHandle returns the Steam Input API handle, or 0.
func (g *Gamepad) SteamHandle() uint64 {
	return fnGetGamepadSteamHandle(g)
}

// PowerLevel returns the battery level, or JoystickPowerUnknown.
func (g *Gamepad) PowerLevel() JoystickPowerLevel {
	return fnGetGamepadPowerLevel(g)
}

// Connected reports whether the gamepad is still attached.
func (g *Gamepad) Connected() bool {
	return fnGamepadConnected(g).Bool()
}

// Joystick returns the underlying joystick handle. It is owned by the
// gamepad and must not be closed.
func (g *Gamepad) Joystick() *Joystick {
	return fnGetGamepadJoystick(g)
}

// SetGamepadEventsEnabled toggles delivery of gamepad events. When disabled,
// UpdateGamepads must be called to poll state.
func SetGamepadEventsEnabled(enabled bool) {
	fnSetGamepadEventsEnabled(FromBool(enabled))
}

// GamepadEventsEnabled reports whether gamepad events are delivered.
func GamepadEventsEnabled() bool {
	return fnGamepadEventsEnabled().Bool()
}

// Bindings returns the input bindings the mapping sets up for this gamepad.
func (g *Gamepad) Bindings() ([]GamepadBinding, error) {
	var count int32
	p := fnGetGamepadBindings(g, &count)
	if p == nil {
		return nil, fail()
	}
	ptrs := unsafe.Slice(p, count)
	out := make([]GamepadBinding, count)
	for i, b := range ptrs {
		out[i] = *b
	}
	fnFree(unsafe.Pointer(p))
	return out, nil
}

// UpdateGamepads refreshes gamepad state. The event loop does this
// implicitly.
func UpdateGamepads() {
	fnUpdateGamepads()
}

// GetGamepadTypeFromString parses a controller type name.
func GetGamepadTypeFromString(s string) GamepadType {
	return fnGetGamepadTypeFromString(s)
}

// GetGamepadStringForType returns a controller type's name.
func GetGamepadStringForType(typ GamepadType) string {
	return fnGetGamepadStringForType(typ)
}

// GetGamepadAxisFromString parses an axis name as used in mapping strings.
func GetGamepadAxisFromString(s string) GamepadAxis {
	return fnGetGamepadAxisFromString(s)
}

// GetGamepadStringForAxis returns an axis's mapping-string name.
func GetGamepadStringForAxis(axis GamepadAxis) string {
	return fnGetGamepadStringForAxis(axis)
}

// HasAxis reports whether the mapping exposes an axis.
func (g *Gamepad) HasAxis(axis GamepadAxis) bool {
	return fnGamepadHasAxis(g, axis).Bool()
}

// Axis returns an axis position.
func (g *Gamepad) Axis(axis GamepadAxis) int16 {
	return fnGetGamepadAxis(g, axis)
}

// GetGamepadButtonFromString parses a button name as used in mapping strings.
func GetGamepadButtonFromString(s string) GamepadButton {
	return fnGetGamepadButtonFromString(s)
}

// GetGamepadStringForButton returns a button's mapping-string name.
func GetGamepadStringForButton(button GamepadButton) string {
	return fnGetGamepadStringForButton(button)
}

// HasButton reports whether the mapping exposes a button.
func (g *Gamepad) HasButton(button GamepadButton) bool {
	return fnGamepadHasButton(g, button).Bool()
}

// Button reports whether a button is pressed.
func (g *Gamepad) Button(button GamepadButton) bool {
	return fnGetGamepadButton(g, button) != 0
}

// GetGamepadButtonLabelForType returns the glyph a controller type prints on
// a positional button.
func GetGamepadButtonLabelForType(typ GamepadType, button GamepadButton) GamepadButtonLabel {
	return fnGetGamepadButtonLabelForType(typ, button)
}

// ButtonLabel returns the glyph this gamepad prints on a positional button.
func (g *Gamepad) ButtonLabel(button GamepadButton) GamepadButtonLabel {
	return fnGetGamepadButtonLabel(g, button)
}

// NumTouchpads returns the number of touchpads.
func (g *Gamepad) NumTouchpads() int32 {
	return fnGetNumGamepadTouchpads(g)
}

// NumTouchpadFingers returns how many simultaneous fingers a touchpad tracks.
func (g *Gamepad) NumTouchpadFingers(touchpad int32) int32 {
	return fnGetNumGamepadTouchpadFingers(g, touchpad)
}

// TouchpadFinger returns the state of one finger slot on a touchpad.
func (g *Gamepad) TouchpadFinger(touchpad, finger int32) (down bool, x, y, pressure float32, err error) {
	var state uint8
	if rc := fnGetGamepadTouchpadFinger(g, touchpad, finger, &state, &x, &y, &pressure); rc < 0 {
		return false, 0, 0, 0, fail()
	}
	return state != 0, x, y, pressure, nil
}

// HasSensor reports whether the gamepad carries a sensor.
func (g *Gamepad) HasSensor(typ SensorType) bool {
	return fnGamepadHasSensor(g, typ).Bool()
}

// SetSensorEnabled starts or stops a gamepad sensor's data stream.
func (g *Gamepad) SetSensorEnabled(typ SensorType, enabled bool) error {
	return errorFromCode(fnSetGamepadSensorEnabled(g, typ, FromBool(enabled)))
}

// SensorEnabled reports whether a gamepad sensor is streaming data.
func (g *Gamepad) SensorEnabled(typ SensorType) bool {
	return fnGamepadSensorEnabled(g, typ).Bool()
}

// SensorDataRate returns a sensor's update rate in events per second, or 0.
func (g *Gamepad) SensorDataRate(typ SensorType) float32 {
	return fnGetGamepadSensorDataRate(g, typ)
}

// SensorData fills data with the sensor's current readings.
func (g *Gamepad) SensorData(typ SensorType, data []float32) error {
	if len(data) == 0 {
		return SetError("empty sensor buffer")
	}
	return errorFromCode(fnGetGamepadSensorData(g, typ, &data[0], int32(len(data))))
}

// Rumble starts a rumble effect; zero intensities stop it.
func (g *Gamepad) Rumble(lowFreq, highFreq uint16, durationMS uint32) error {
	return errorFromCode(fnRumbleGamepad(g, lowFreq, highFreq, durationMS))
}

// RumbleTriggers starts a trigger rumble effect.
func (g *Gamepad) RumbleTriggers(left, right uint16, durationMS uint32) error {
	return errorFromCode(fnRumbleGamepadTriggers(g, left, right, durationMS))
}

// HasLED reports whether the gamepad has a controllable LED.
func (g *Gamepad) HasLED() bool {
	return fnGamepadHasLED(g).Bool()
}

// HasRumble reports whether the gamepad supports rumble.
func (g *Gamepad) HasRumble() bool {
	return fnGamepadHasRumble(g).Bool()
}

// HasRumbleTriggers reports whether the gamepad supports trigger rumble.
func (g *Gamepad) HasRumbleTriggers() bool {
	return fnGamepadHasRumbleTriggers(g).Bool()
}

// SetLED sets the gamepad's LED color where supported.
func (g *Gamepad) SetLED(r, gc, b uint8) error {
	return errorFromCode(fnSetGamepadLED(g, r, gc, b))
}

// SendEffect sends a device-specific effect packet.
func (g *Gamepad) SendEffect(data []byte) error {
	if len(data) == 0 {
		return SetError("empty effect packet")
	}
	return errorFromCode(fnSendGamepadEffect(g, unsafe.Pointer(&data[0]), int32(len(data))))
}

// Close releases an opened gamepad.
func (g *Gamepad) Close() {
	fnCloseGamepad(g)
}

// AppleSFSymbolsNameForButton returns the SF Symbols glyph name for a button,
// or "".
func (g *Gamepad) AppleSFSymbolsNameForButton(button GamepadButton) string {
	return fnGetGamepadAppleSFSymbolsNameForButton(g, button)
}

// AppleSFSymbolsNameForAxis returns the SF Symbols glyph name for an axis,
// or "".
func (g *Gamepad) AppleSFSymbolsNameForAxis(axis GamepadAxis) string {
	return fnGetGamepadAppleSFSymbolsNameForAxis(g, axis)
}
