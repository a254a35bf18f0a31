package sdl

import "unsafe"

var (
	fnSetClipboardText        func(text string) int32
	fnGetClipboardText        func() *byte
	fnHasClipboardText        func() Bool
	fnSetPrimarySelectionText func(text string) int32
	fnGetPrimarySelectionText func() *byte
	fnHasPrimarySelectionText func() Bool
	fnGetClipboardData        func(mimeType string, size *uintptr) unsafe.Pointer
	fnHasClipboardData        func(mimeType string) Bool
)

func registerClipboardFuncs() {
	register(&fnSetClipboardText, "SDL_SetClipboardText")
	register(&fnGetClipboardText, "SDL_GetClipboardText")
	register(&fnHasClipboardText, "SDL_HasClipboardText")
	register(&fnSetPrimarySelectionText, "SDL_SetPrimarySelectionText")
	register(&fnGetPrimarySelectionText, "SDL_GetPrimarySelectionText")
	register(&fnHasPrimarySelectionText, "SDL_HasPrimarySelectionText")
	register(&fnGetClipboardData, "SDL_GetClipboardData")
	register(&fnHasClipboardData, "SDL_HasClipboardData")
}

// SetClipboardText puts UTF-8 text on the clipboard.
func SetClipboardText(text string) error {
	return errorFromCode(fnSetClipboardText(text))
}

// GetClipboardText returns the clipboard's text. An empty clipboard yields ""
// with no error.
func GetClipboardText() (string, error) {
	p := fnGetClipboardText()
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// HasClipboardText reports whether the clipboard holds non-empty text.
func HasClipboardText() bool {
	return fnHasClipboardText().Bool()
}

// SetPrimarySelectionText puts UTF-8 text in the X11 primary selection. On
// platforms without one this is a second clipboard.
func SetPrimarySelectionText(text string) error {
	return errorFromCode(fnSetPrimarySelectionText(text))
}

// GetPrimarySelectionText returns the primary selection's text.
func GetPrimarySelectionText() (string, error) {
	p := fnGetPrimarySelectionText()
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// HasPrimarySelectionText reports whether the primary selection holds
// non-empty text.
func HasPrimarySelectionText() bool {
	return fnHasPrimarySelectionText().Bool()
}

// GetClipboardData returns the clipboard's contents under a mime type.
func GetClipboardData(mimeType string) ([]byte, error) {
	var size uintptr
	p := fnGetClipboardData(mimeType, &size)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree((*byte)(p), int32(size)), nil
}

// HasClipboardData reports whether the clipboard offers a mime type.
func HasClipboardData(mimeType string) bool {
	return fnHasClipboardData(mimeType).Bool()
}
