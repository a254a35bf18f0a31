package sdl

// PixelFormatEnum mirrors SDL_PixelFormatEnum. Values are packed bit fields
// (type/order/layout/bits/bytes) or FOURCC codes; the numbering is the
// library's own and is preserved verbatim, gaps included.
type PixelFormatEnum uint32

const (
	PixelFormatUnknown PixelFormatEnum = 0

	PixelFormatIndex1LSB PixelFormatEnum = 0x11100100
	PixelFormatIndex1MSB PixelFormatEnum = 0x11200100
	PixelFormatIndex4LSB PixelFormatEnum = 0x12100400
	PixelFormatIndex4MSB PixelFormatEnum = 0x12200400
	PixelFormatIndex8    PixelFormatEnum = 0x13000801

	PixelFormatRGB332 PixelFormatEnum = 0x14110801

	PixelFormatXRGB4444 PixelFormatEnum = 0x15120c02
	PixelFormatXBGR4444 PixelFormatEnum = 0x15520c02
	PixelFormatXRGB1555 PixelFormatEnum = 0x15130f02
	PixelFormatXBGR1555 PixelFormatEnum = 0x15530f02
	PixelFormatARGB4444 PixelFormatEnum = 0x15321002
	PixelFormatRGBA4444 PixelFormatEnum = 0x15421002
	PixelFormatABGR4444 PixelFormatEnum = 0x15721002
	PixelFormatBGRA4444 PixelFormatEnum = 0x15821002
	PixelFormatARGB1555 PixelFormatEnum = 0x15331002
	PixelFormatRGBA5551 PixelFormatEnum = 0x15441002
	PixelFormatABGR1555 PixelFormatEnum = 0x15731002
	PixelFormatBGRA5551 PixelFormatEnum = 0x15841002
	PixelFormatRGB565   PixelFormatEnum = 0x15151002
	PixelFormatBGR565   PixelFormatEnum = 0x15551002

	PixelFormatRGB24 PixelFormatEnum = 0x17101803
	PixelFormatBGR24 PixelFormatEnum = 0x17401803

	PixelFormatXRGB8888    PixelFormatEnum = 0x16161804
	PixelFormatRGBX8888    PixelFormatEnum = 0x16261804
	PixelFormatXBGR8888    PixelFormatEnum = 0x16561804
	PixelFormatBGRX8888    PixelFormatEnum = 0x16661804
	PixelFormatARGB8888    PixelFormatEnum = 0x16362004
	PixelFormatRGBA8888    PixelFormatEnum = 0x16462004
	PixelFormatABGR8888    PixelFormatEnum = 0x16762004
	PixelFormatBGRA8888    PixelFormatEnum = 0x16862004
	PixelFormatARGB2101010 PixelFormatEnum = 0x16372004

	// FOURCC formats.
	PixelFormatYV12 PixelFormatEnum = 0x32315659
	PixelFormatIYUV PixelFormatEnum = 0x56555949
	PixelFormatYUY2 PixelFormatEnum = 0x32595559
	PixelFormatUYVY PixelFormatEnum = 0x59565955
	PixelFormatYVYU PixelFormatEnum = 0x55595659
	PixelFormatNV12 PixelFormatEnum = 0x3231564e
	PixelFormatNV21 PixelFormatEnum = 0x3132564e
)

// Color mirrors SDL_Color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// FColor mirrors SDL_FColor.
type FColor struct {
	R float32
	G float32
	B float32
	A float32
}

// Palette mirrors SDL_Palette. Instances are allocated and freed by the
// library; Colors points into foreign memory.
type Palette struct {
	NColors  int32
	Colors   *Color
	Version  uint32
	RefCount int32
}

// PixelFormat mirrors the SDL_PixelFormat detail structure.
type PixelFormat struct {
	Format        PixelFormatEnum
	Palette       *Palette
	BitsPerPixel  uint8
	BytesPerPixel uint8
	_             [2]uint8
	Rmask         uint32
	Gmask         uint32
	Bmask         uint32
	Amask         uint32
	Rloss         uint8
	Gloss         uint8
	Bloss         uint8
	Aloss         uint8
	Rshift        uint8
	Gshift        uint8
	Bshift        uint8
	Ashift        uint8
	RefCount      int32
	Next          *PixelFormat
}

var (
	fnGetPixelFormatName        func(format PixelFormatEnum) string
	fnGetMasksForPixelFormat    func(format PixelFormatEnum, bpp *int32, r, g, b, a *uint32) Bool
	fnGetPixelFormatEnumForMask func(bpp int32, r, g, b, a uint32) PixelFormatEnum
	fnCreatePixelFormat         func(format PixelFormatEnum) *PixelFormat
	fnDestroyPixelFormat        func(format *PixelFormat)
	fnCreatePalette             func(ncolors int32) *Palette
	fnSetPixelFormatPalette     func(format *PixelFormat, palette *Palette) int32
	fnSetPaletteColors          func(palette *Palette, colors *Color, first, n int32) int32
	fnDestroyPalette            func(palette *Palette)
	fnMapRGB                    func(format *PixelFormat, r, g, b uint8) uint32
	fnMapRGBA                   func(format *PixelFormat, r, g, b, a uint8) uint32
	fnGetRGB                    func(pixel uint32, format *PixelFormat, r, g, b *uint8)
	fnGetRGBA                   func(pixel uint32, format *PixelFormat, r, g, b, a *uint8)
)

func registerPixelFuncs() {
	register(&fnGetPixelFormatName, "SDL_GetPixelFormatName")
	register(&fnGetMasksForPixelFormat, "SDL_GetMasksForPixelFormatEnum")
	register(&fnGetPixelFormatEnumForMask, "SDL_GetPixelFormatEnumForMasks")
	register(&fnCreatePixelFormat, "SDL_CreatePixelFormat")
	register(&fnDestroyPixelFormat, "SDL_DestroyPixelFormat")
	register(&fnCreatePalette, "SDL_CreatePalette")
	register(&fnSetPixelFormatPalette, "SDL_SetPixelFormatPalette")
	register(&fnSetPaletteColors, "SDL_SetPaletteColors")
	register(&fnDestroyPalette, "SDL_DestroyPalette")
	register(&fnMapRGB, "SDL_MapRGB")
	register(&fnMapRGBA, "SDL_MapRGBA")
	register(&fnGetRGB, "SDL_GetRGB")
	register(&fnGetRGBA, "SDL_GetRGBA")
}

// Name returns the library's human readable name for the format.
func (f PixelFormatEnum) Name() string {
	return fnGetPixelFormatName(f)
}

// Masks returns the bits-per-pixel and channel masks for a packed format.
func (f PixelFormatEnum) Masks() (bpp int32, rmask, gmask, bmask, amask uint32, err error) {
	if fnGetMasksForPixelFormat(f, &bpp, &rmask, &gmask, &bmask, &amask) == False {
		return 0, 0, 0, 0, 0, fail()
	}
	return bpp, rmask, gmask, bmask, amask, nil
}

// PixelFormatEnumForMasks finds the packed format matching the given channel
// masks, or PixelFormatUnknown.
func PixelFormatEnumForMasks(bpp int32, rmask, gmask, bmask, amask uint32) PixelFormatEnum {
	return fnGetPixelFormatEnumForMask(bpp, rmask, gmask, bmask, amask)
}

// CreatePixelFormat allocates the detail structure for a format enum.
func CreatePixelFormat(format PixelFormatEnum) (*PixelFormat, error) {
	pf := fnCreatePixelFormat(format)
	if pf == nil {
		return nil, fail()
	}
	return pf, nil
}

// DestroyPixelFormat frees a detail structure from CreatePixelFormat.
func DestroyPixelFormat(format *PixelFormat) {
	fnDestroyPixelFormat(format)
}

// CreatePalette allocates a palette with the given number of color entries.
func CreatePalette(ncolors int32) (*Palette, error) {
	p := fnCreatePalette(ncolors)
	if p == nil {
		return nil, fail()
	}
	return p, nil
}

// SetPalette attaches a palette to an indexed pixel format.
func (f *PixelFormat) SetPalette(palette *Palette) error {
	return errorFromCode(fnSetPixelFormatPalette(f, palette))
}

// SetColors replaces a range of palette entries starting at first.
func (p *Palette) SetColors(colors []Color, first int32) error {
	if len(colors) == 0 {
		return nil
	}
	return errorFromCode(fnSetPaletteColors(p, &colors[0], first, int32(len(colors))))
}

// DestroyPalette frees a palette from CreatePalette.
func DestroyPalette(p *Palette) {
	fnDestroyPalette(p)
}

// MapRGB packs an opaque color into the format's pixel representation.
func (f *PixelFormat) MapRGB(r, g, b uint8) uint32 {
	return fnMapRGB(f, r, g, b)
}

// MapRGBA packs a color into the format's pixel representation.
func (f *PixelFormat) MapRGBA(r, g, b, a uint8) uint32 {
	return fnMapRGBA(f, r, g, b, a)
}

// GetRGB unpacks an opaque color from a pixel value.
func (f *PixelFormat) GetRGB(pixel uint32) (r, g, b uint8) {
	fnGetRGB(pixel, f, &r, &g, &b)
	return
}

// GetRGBA unpacks a color from a pixel value.
func (f *PixelFormat) GetRGBA(pixel uint32) (r, g, b, a uint8) {
	fnGetRGBA(pixel, f, &r, &g, &b, &a)
	return
}
