package sdl

import "unsafe"

// SurfaceFlags mirror the SDL_Surface flag bits.
type SurfaceFlags uint32

const (
	SWSurface   SurfaceFlags = 0x00000000
	PreAlloc    SurfaceFlags = 0x00000001
	RLEAccel    SurfaceFlags = 0x00000002
	DontFree    SurfaceFlags = 0x00000004
	SIMDAligned SurfaceFlags = 0x00000008
)

// BlendMode mirrors SDL_BlendMode.
type BlendMode uint32

const (
	BlendModeNone    BlendMode = 0x00000000
	BlendModeBlend   BlendMode = 0x00000001
	BlendModeAdd     BlendMode = 0x00000002
	BlendModeMod     BlendMode = 0x00000004
	BlendModeMul     BlendMode = 0x00000008
	BlendModeInvalid BlendMode = 0x7fffffff
)

// Surface mirrors SDL_Surface. The library writes directly into this memory;
// the field order and sizes are load-bearing. Internals past the public fields
// are private to the library.
type Surface struct {
	Flags       SurfaceFlags
	Format      *PixelFormat
	W           int32
	H           int32
	Pitch       int32
	Pixels      unsafe.Pointer
	reserved    unsafe.Pointer
	locked      int32
	listBlitmap unsafe.Pointer
	ClipRect    Rect
	blitmap     unsafe.Pointer
	RefCount    int32
}

// RWops is an opaque handle to a library data stream, used here only to feed
// the BMP and mapping loaders.
type RWops struct{ _ [0]byte }

var (
	fnCreateSurface        func(width, height int32, format PixelFormatEnum) *Surface
	fnCreateSurfaceFrom    func(pixels unsafe.Pointer, width, height, pitch int32, format PixelFormatEnum) *Surface
	fnDestroySurface       func(s *Surface)
	fnGetSurfaceProperties func(s *Surface) PropertiesID
	fnLockSurface          func(s *Surface) int32
	fnUnlockSurface        func(s *Surface)
	fnRWFromFile           func(file, mode string) *RWops
	fnLoadBMPRW            func(src *RWops, freesrc Bool) *Surface
	fnSaveBMPRW            func(s *Surface, dst *RWops, freedst Bool) int32
	fnSetSurfaceRLE        func(s *Surface, flag int32) int32
	fnSurfaceHasRLE        func(s *Surface) Bool
	fnSetSurfaceColorKey   func(s *Surface, flag int32, key uint32) int32
	fnSurfaceHasColorKey   func(s *Surface) Bool
	fnGetSurfaceColorKey   func(s *Surface, key *uint32) int32
	fnSetSurfaceColorMod   func(s *Surface, r, g, b uint8) int32
	fnGetSurfaceColorMod   func(s *Surface, r, g, b *uint8) int32
	fnSetSurfaceAlphaMod   func(s *Surface, alpha uint8) int32
	fnGetSurfaceAlphaMod   func(s *Surface, alpha *uint8) int32
	fnSetSurfaceBlendMode  func(s *Surface, mode BlendMode) int32
	fnGetSurfaceBlendMode  func(s *Surface, mode *BlendMode) int32
	fnSetSurfaceClipRect   func(s *Surface, rect *Rect) Bool
	fnGetSurfaceClipRect   func(s *Surface, rect *Rect) int32
	fnDuplicateSurface     func(s *Surface) *Surface
	fnConvertSurface       func(s *Surface, format *PixelFormat) *Surface
	fnConvertSurfaceFormat func(s *Surface, format PixelFormatEnum) *Surface
	fnFillSurfaceRect      func(dst *Surface, rect *Rect, color uint32) int32
	fnFillSurfaceRects     func(dst *Surface, rects *Rect, count int32, color uint32) int32
	fnBlitSurface          func(src *Surface, srcrect *Rect, dst *Surface, dstrect *Rect) int32
	fnBlitSurfaceScaled    func(src *Surface, srcrect *Rect, dst *Surface, dstrect *Rect) int32
)

func registerSurfaceFuncs() {
	register(&fnCreateSurface, "SDL_CreateSurface")
	register(&fnCreateSurfaceFrom, "SDL_CreateSurfaceFrom")
	register(&fnDestroySurface, "SDL_DestroySurface")
	register(&fnGetSurfaceProperties, "SDL_GetSurfaceProperties")
	register(&fnLockSurface, "SDL_LockSurface")
	register(&fnUnlockSurface, "SDL_UnlockSurface")
	register(&fnRWFromFile, "SDL_RWFromFile")
	register(&fnLoadBMPRW, "SDL_LoadBMP_RW")
	register(&fnSaveBMPRW, "SDL_SaveBMP_RW")
	register(&fnSetSurfaceRLE, "SDL_SetSurfaceRLE")
	register(&fnSurfaceHasRLE, "SDL_SurfaceHasRLE")
	register(&fnSetSurfaceColorKey, "SDL_SetSurfaceColorKey")
	register(&fnSurfaceHasColorKey, "SDL_SurfaceHasColorKey")
	register(&fnGetSurfaceColorKey, "SDL_GetSurfaceColorKey")
	register(&fnSetSurfaceColorMod, "SDL_SetSurfaceColorMod")
	register(&fnGetSurfaceColorMod, "SDL_GetSurfaceColorMod")
	register(&fnSetSurfaceAlphaMod, "SDL_SetSurfaceAlphaMod")
	register(&fnGetSurfaceAlphaMod, "SDL_GetSurfaceAlphaMod")
	register(&fnSetSurfaceBlendMode, "SDL_SetSurfaceBlendMode")
	register(&fnGetSurfaceBlendMode, "SDL_GetSurfaceBlendMode")
	register(&fnSetSurfaceClipRect, "SDL_SetSurfaceClipRect")
	register(&fnGetSurfaceClipRect, "SDL_GetSurfaceClipRect")
	register(&fnDuplicateSurface, "SDL_DuplicateSurface")
	register(&fnConvertSurface, "SDL_ConvertSurface")
	register(&fnConvertSurfaceFormat, "SDL_ConvertSurfaceFormat")
	register(&fnFillSurfaceRect, "SDL_FillSurfaceRect")
	register(&fnFillSurfaceRects, "SDL_FillSurfaceRects")
	register(&fnBlitSurface, "SDL_BlitSurface")
	register(&fnBlitSurfaceScaled, "SDL_BlitSurfaceScaled")
}

// CreateSurface allocates a surface of the given size and format.
func CreateSurface(width, height int32, format PixelFormatEnum) (*Surface, error) {
	s := fnCreateSurface(width, height, format)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// CreateSurfaceFrom wraps existing pixel memory in a surface. The memory is
// not copied and must outlive the surface.
func CreateSurfaceFrom(pixels unsafe.Pointer, width, height, pitch int32, format PixelFormatEnum) (*Surface, error) {
	s := fnCreateSurfaceFrom(pixels, width, height, pitch, format)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// Destroy frees the surface.
func (s *Surface) Destroy() {
	fnDestroySurface(s)
}

// Properties returns the surface's property bag.
func (s *Surface) Properties() (PropertiesID, error) {
	props := fnGetSurfaceProperties(s)
	if props == 0 {
		return 0, fail()
	}
	return props, nil
}

// MustLock reports whether the surface needs locking before pixel access.
// Mirrors the SDL_MUSTLOCK header macro.
func (s *Surface) MustLock() bool {
	return s.Flags&RLEAccel != 0
}

// Lock prepares the surface for direct pixel access.
func (s *Surface) Lock() error {
	return errorFromCode(fnLockSurface(s))
}

// Unlock releases a Lock.
func (s *Surface) Unlock() {
	fnUnlockSurface(s)
}

// RWFromFile opens a file as a stream. mode follows the C fopen convention,
// "rb" to read and "wb" to write.
func RWFromFile(file, mode string) (*RWops, error) {
	rw := fnRWFromFile(file, mode)
	if rw == nil {
		return nil, fail()
	}
	return rw, nil
}

// LoadBMP loads a BMP image from a file.
func LoadBMP(file string) (*Surface, error) {
	rw := fnRWFromFile(file, "rb")
	if rw == nil {
		return nil, fail()
	}
	s := fnLoadBMPRW(rw, True)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// SaveBMP writes the surface to a BMP file.
func (s *Surface) SaveBMP(file string) error {
	rw := fnRWFromFile(file, "wb")
	if rw == nil {
		return fail()
	}
	return errorFromCode(fnSaveBMPRW(s, rw, True))
}

// SetRLE enables or disables RLE acceleration.
func (s *Surface) SetRLE(enabled bool) error {
	var flag int32
	if enabled {
		flag = 1
	}
	return errorFromCode(fnSetSurfaceRLE(s, flag))
}

// HasRLE reports whether RLE acceleration is enabled.
func (s *Surface) HasRLE() bool {
	return fnSurfaceHasRLE(s).Bool()
}

// SetColorKey sets or clears the transparent pixel value.
func (s *Surface) SetColorKey(enabled bool, key uint32) error {
	var flag int32
	if enabled {
		flag = 1
	}
	return errorFromCode(fnSetSurfaceColorKey(s, flag, key))
}

// HasColorKey reports whether a color key is set.
func (s *Surface) HasColorKey() bool {
	return fnSurfaceHasColorKey(s).Bool()
}

// ColorKey returns the transparent pixel value.
func (s *Surface) ColorKey() (uint32, error) {
	var key uint32
	if err := errorFromCode(fnGetSurfaceColorKey(s, &key)); err != nil {
		return 0, err
	}
	return key, nil
}

// SetColorMod sets the multiplier applied to blit colors.
func (s *Surface) SetColorMod(r, g, b uint8) error {
	return errorFromCode(fnSetSurfaceColorMod(s, r, g, b))
}

// ColorMod returns the blit color multiplier.
func (s *Surface) ColorMod() (r, g, b uint8, err error) {
	err = errorFromCode(fnGetSurfaceColorMod(s, &r, &g, &b))
	return
}

// SetAlphaMod sets the multiplier applied to blit alpha.
func (s *Surface) SetAlphaMod(alpha uint8) error {
	return errorFromCode(fnSetSurfaceAlphaMod(s, alpha))
}

// AlphaMod returns the blit alpha multiplier.
func (s *Surface) AlphaMod() (uint8, error) {
	var alpha uint8
	if err := errorFromCode(fnGetSurfaceAlphaMod(s, &alpha)); err != nil {
		return 0, err
	}
	return alpha, nil
}

// SetBlendMode sets the blend mode used for blits.
func (s *Surface) SetBlendMode(mode BlendMode) error {
	return errorFromCode(fnSetSurfaceBlendMode(s, mode))
}

// GetBlendMode returns the blend mode used for blits.
func (s *Surface) GetBlendMode() (BlendMode, error) {
	var mode BlendMode
	if err := errorFromCode(fnGetSurfaceBlendMode(s, &mode)); err != nil {
		return BlendModeInvalid, err
	}
	return mode, nil
}

// SetClipRect limits blits to an area of the surface; nil removes the limit.
// Returns false when the rectangle does not intersect the surface at all.
func (s *Surface) SetClipRect(rect *Rect) bool {
	return fnSetSurfaceClipRect(s, rect).Bool()
}

// GetClipRect returns the current blit clip rectangle.
func (s *Surface) GetClipRect() (Rect, error) {
	var r Rect
	if err := errorFromCode(fnGetSurfaceClipRect(s, &r)); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Duplicate creates an independent copy of the surface.
func (s *Surface) Duplicate() (*Surface, error) {
	d := fnDuplicateSurface(s)
	if d == nil {
		return nil, fail()
	}
	return d, nil
}

// Convert copies the surface into a new one with the given detail format.
func (s *Surface) Convert(format *PixelFormat) (*Surface, error) {
	c := fnConvertSurface(s, format)
	if c == nil {
		return nil, fail()
	}
	return c, nil
}

// ConvertFormat copies the surface into a new one with the given format enum.
func (s *Surface) ConvertFormat(format PixelFormatEnum) (*Surface, error) {
	c := fnConvertSurfaceFormat(s, format)
	if c == nil {
		return nil, fail()
	}
	return c, nil
}

// FillRect fills an area (or, with nil, the whole surface) with a pixel value
// in the surface's format.
func (s *Surface) FillRect(rect *Rect, color uint32) error {
	return errorFromCode(fnFillSurfaceRect(s, rect, color))
}

// FillRects fills several areas with a pixel value.
func (s *Surface) FillRects(rects []Rect, color uint32) error {
	if len(rects) == 0 {
		return nil
	}
	return errorFromCode(fnFillSurfaceRects(s, &rects[0], int32(len(rects)), color))
}

// Blit performs a fast copy from src to s. A nil srcrect copies the whole
// surface; dstrect's position is used and its size updated to the clipped
// copy area, matching the library contract.
func (s *Surface) Blit(src *Surface, srcrect *Rect, dstrect *Rect) error {
	return errorFromCode(fnBlitSurface(src, srcrect, s, dstrect))
}

// BlitScaled copies with scaling to the destination rectangle.
func (s *Surface) BlitScaled(src *Surface, srcrect *Rect, dstrect *Rect) error {
	return errorFromCode(fnBlitSurfaceScaled(src, srcrect, s, dstrect))
}
