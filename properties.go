package sdl

import (
	"unsafe"

	"github.com/ebitengine/purego"
	pointer "github.com/mattn/go-pointer"
)

// PropertiesID identifies a property group. Zero is the invalid sentinel.
type PropertiesID uint32

// PropertyType mirrors SDL_PropertyType.
type PropertyType int32

const (
	PropertyTypeInvalid PropertyType = iota
	PropertyTypePointer
	PropertyTypeString
	PropertyTypeNumber
	PropertyTypeFloat
	PropertyTypeBoolean
)

// EnumeratePropertiesCallback receives each property name in a group.
type EnumeratePropertiesCallback func(props PropertiesID, name string)

var (
	fnGetGlobalProperties func() PropertiesID
	fnCreateProperties    func() PropertiesID
	fnLockProperties      func(props PropertiesID) int32
	fnUnlockProperties    func(props PropertiesID)
	fnSetProperty         func(props PropertiesID, name string, value unsafe.Pointer) int32
	fnSetStringProperty   func(props PropertiesID, name, value string) int32
	fnSetNumberProperty   func(props PropertiesID, name string, value int64) int32
	fnSetFloatProperty    func(props PropertiesID, name string, value float32) int32
	fnSetBooleanProperty  func(props PropertiesID, name string, value Bool) int32
	fnHasProperty         func(props PropertiesID, name string) Bool
	fnGetPropertyType     func(props PropertiesID, name string) PropertyType
	fnGetProperty         func(props PropertiesID, name string, defaultValue unsafe.Pointer) unsafe.Pointer
	fnGetStringProperty   func(props PropertiesID, name, defaultValue string) string
	fnGetNumberProperty   func(props PropertiesID, name string, defaultValue int64) int64
	fnGetFloatProperty    func(props PropertiesID, name string, defaultValue float32) float32
	fnGetBooleanProperty  func(props PropertiesID, name string, defaultValue Bool) Bool
	fnClearProperty       func(props PropertiesID, name string) int32
	fnEnumerateProperties func(props PropertiesID, callback uintptr, userdata unsafe.Pointer) int32
	fnDestroyProperties   func(props PropertiesID)
)

func registerPropertiesFuncs() {
	register(&fnGetGlobalProperties, "SDL_GetGlobalProperties")
	register(&fnCreateProperties, "SDL_CreateProperties")
	register(&fnLockProperties, "SDL_LockProperties")
	register(&fnUnlockProperties, "SDL_UnlockProperties")
	register(&fnSetProperty, "SDL_SetProperty")
	register(&fnSetStringProperty, "SDL_SetStringProperty")
	register(&fnSetNumberProperty, "SDL_SetNumberProperty")
	register(&fnSetFloatProperty, "SDL_SetFloatProperty")
	register(&fnSetBooleanProperty, "SDL_SetBooleanProperty")
	register(&fnHasProperty, "SDL_HasProperty")
	register(&fnGetPropertyType, "SDL_GetPropertyType")
	register(&fnGetProperty, "SDL_GetProperty")
	register(&fnGetStringProperty, "SDL_GetStringProperty")
	register(&fnGetNumberProperty, "SDL_GetNumberProperty")
	register(&fnGetFloatProperty, "SDL_GetFloatProperty")
	register(&fnGetBooleanProperty, "SDL_GetBooleanProperty")
	register(&fnClearProperty, "SDL_ClearProperty")
	register(&fnEnumerateProperties, "SDL_EnumerateProperties")
	register(&fnDestroyProperties, "SDL_DestroyProperties")
}

// GetGlobalProperties returns the process-wide property group.
func GetGlobalProperties() (PropertiesID, error) {
	id := fnGetGlobalProperties()
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// CreateProperties makes a new property group.
func CreateProperties() (PropertiesID, error) {
	id := fnCreateProperties()
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// LockProperties serializes access to a group across threads. Locks nest
// within a thread.
func LockProperties(props PropertiesID) error {
	return errorFromCode(fnLockProperties(props))
}

// UnlockProperties releases the lock taken by LockProperties.
func UnlockProperties(props PropertiesID) {
	fnUnlockProperties(props)
}

// SetPointerProperty stores a raw pointer; nil deletes the property.
func SetPointerProperty(props PropertiesID, name string, value unsafe.Pointer) error {
	return errorFromCode(fnSetProperty(props, name, value))
}

// SetStringProperty stores a string copy.
func SetStringProperty(props PropertiesID, name, value string) error {
	return errorFromCode(fnSetStringProperty(props, name, value))
}

// SetNumberProperty stores an integer.
func SetNumberProperty(props PropertiesID, name string, value int64) error {
	return errorFromCode(fnSetNumberProperty(props, name, value))
}

// SetFloatProperty stores a float.
func SetFloatProperty(props PropertiesID, name string, value float32) error {
	return errorFromCode(fnSetFloatProperty(props, name, value))
}

// SetBooleanProperty stores a boolean.
func SetBooleanProperty(props PropertiesID, name string, value bool) error {
	return errorFromCode(fnSetBooleanProperty(props, name, FromBool(value)))
}

// HasProperty reports whether a property exists.
func HasProperty(props PropertiesID, name string) bool {
	return fnHasProperty(props, name).Bool()
}

// GetPropertyType returns a property's type, or PropertyTypeInvalid.
func GetPropertyType(props PropertiesID, name string) PropertyType {
	return fnGetPropertyType(props, name)
}

// GetPointerProperty returns a pointer property, or defaultValue. The value
// is only guaranteed stable while the group is locked.
func GetPointerProperty(props PropertiesID, name string, defaultValue unsafe.Pointer) unsafe.Pointer {
	return fnGetProperty(props, name, defaultValue)
}

// GetStringProperty returns a string property, or defaultValue.
func GetStringProperty(props PropertiesID, name, defaultValue string) string {
	return fnGetStringProperty(props, name, defaultValue)
}

// GetNumberProperty returns an integer property, or defaultValue.
func GetNumberProperty(props PropertiesID, name string, defaultValue int64) int64 {
	return fnGetNumberProperty(props, name, defaultValue)
}

// GetFloatProperty returns a float property, or defaultValue.
func GetFloatProperty(props PropertiesID, name string, defaultValue float32) float32 {
	return fnGetFloatProperty(props, name, defaultValue)
}

// GetBooleanProperty returns a boolean property, or defaultValue.
func GetBooleanProperty(props PropertiesID, name string, defaultValue bool) bool {
	return fnGetBooleanProperty(props, name, FromBool(defaultValue)).Bool()
}

// ClearProperty deletes a property.
func ClearProperty(props PropertiesID, name string) error {
	return errorFromCode(fnClearProperty(props, name))
}

var enumPropertiesTrampoline = purego.NewCallback(func(userdata uintptr, props uint32, name uintptr) uintptr {
	cb, ok := pointer.Restore(unsafe.Pointer(userdata)).(EnumeratePropertiesCallback)
	if ok && cb != nil {
		cb(PropertiesID(props), goString((*byte)(unsafe.Pointer(name))))
	}
	return 0
})

// EnumerateProperties calls cb once for each property in the group, with the
// group locked.
func EnumerateProperties(props PropertiesID, cb EnumeratePropertiesCallback) error {
	if cb == nil {
		return SetError("nil enumeration callback")
	}
	data := pointer.Save(cb)
	defer pointer.Unref(data)
	return errorFromCode(fnEnumerateProperties(props, enumPropertiesTrampoline, data))
}

// DestroyProperties frees a group made by CreateProperties. Properties still
// locked elsewhere make this unsafe to call.
func DestroyProperties(props PropertiesID) {
	fnDestroyProperties(props)
}
