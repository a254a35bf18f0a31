package sdl

// Keycode mirrors SDL_Keycode: layout-dependent virtual keys. Printable keys
// use their character value; everything else is the key's scancode with the
// scancode mask bit set.
type Keycode uint32

// ScancodeMask marks keycodes derived from scancodes.
const ScancodeMask Keycode = 1 << 30

// ScancodeToKeycode maps a scancode into keycode space, mirroring the
// SDL_SCANCODE_TO_KEYCODE header macro.
func ScancodeToKeycode(sc Scancode) Keycode {
	return Keycode(sc) | ScancodeMask
}

const (
	KeycodeUnknown Keycode = 0

	KeycodeReturn     Keycode = '\r'
	KeycodeEscape     Keycode = '\x1b'
	KeycodeBackspace  Keycode = '\b'
	KeycodeTab        Keycode = '\t'
	KeycodeSpace      Keycode = ' '
	KeycodeExclaim    Keycode = '!'
	KeycodeQuoteDbl   Keycode = '"'
	KeycodeHash       Keycode = '#'
	KeycodePercent    Keycode = '%'
	KeycodeDollar     Keycode = '$'
	KeycodeAmpersand  Keycode = '&'
	KeycodeQuote      Keycode = '\''
	KeycodeLeftParen  Keycode = '('
	KeycodeRightParen Keycode = ')'
	KeycodeAsterisk   Keycode = '*'
	KeycodePlus       Keycode = '+'
	KeycodeComma      Keycode = ','
	KeycodeMinus      Keycode = '-'
	KeycodePeriod     Keycode = '.'
	KeycodeSlash      Keycode = '/'

	Keycode0 Keycode = '0'
	Keycode1 Keycode = '1'
	Keycode2 Keycode = '2'
	Keycode3 Keycode = '3'
	Keycode4 Keycode = '4'
	Keycode5 Keycode = '5'
	Keycode6 Keycode = '6'
	Keycode7 Keycode = '7'
	Keycode8 Keycode = '8'
	Keycode9 Keycode = '9'

	KeycodeColon        Keycode = ':'
	KeycodeSemicolon    Keycode = ';'
	KeycodeLess         Keycode = '<'
	KeycodeEquals       Keycode = '='
	KeycodeGreater      Keycode = '>'
	KeycodeQuestion     Keycode = '?'
	KeycodeAt           Keycode = '@'
	KeycodeLeftBracket  Keycode = '['
	KeycodeBackslash    Keycode = '\\'
	KeycodeRightBracket Keycode = ']'
	KeycodeCaret        Keycode = '^'
	KeycodeUnderscore   Keycode = '_'
	KeycodeBackquote    Keycode = '`'

	KeycodeA Keycode = 'a'
	KeycodeB Keycode = 'b'
	KeycodeC Keycode = 'c'
	KeycodeD Keycode = 'd'
	KeycodeE Keycode = 'e'
	KeycodeF Keycode = 'f'
	KeycodeG Keycode = 'g'
	KeycodeH Keycode = 'h'
	KeycodeI Keycode = 'i'
	KeycodeJ Keycode = 'j'
	KeycodeK Keycode = 'k'
	KeycodeL Keycode = 'l'
	KeycodeM Keycode = 'm'
	KeycodeN Keycode = 'n'
	KeycodeO Keycode = 'o'
	KeycodeP Keycode = 'p'
	KeycodeQ Keycode = 'q'
	KeycodeR Keycode = 'r'
	KeycodeS Keycode = 's'
	KeycodeT Keycode = 't'
	KeycodeU Keycode = 'u'
	KeycodeV Keycode = 'v'
	KeycodeW Keycode = 'w'
	KeycodeX Keycode = 'x'
	KeycodeY Keycode = 'y'
	KeycodeZ Keycode = 'z'

	KeycodeDelete Keycode = '\x7f'

	KeycodeCapsLock = Keycode(ScancodeCapsLock) | ScancodeMask

	KeycodeF1  = Keycode(ScancodeF1) | ScancodeMask
	KeycodeF2  = Keycode(ScancodeF2) | ScancodeMask
	KeycodeF3  = Keycode(ScancodeF3) | ScancodeMask
	KeycodeF4  = Keycode(ScancodeF4) | ScancodeMask
	KeycodeF5  = Keycode(ScancodeF5) | ScancodeMask
	KeycodeF6  = Keycode(ScancodeF6) | ScancodeMask
	KeycodeF7  = Keycode(ScancodeF7) | ScancodeMask
	KeycodeF8  = Keycode(ScancodeF8) | ScancodeMask
	KeycodeF9  = Keycode(ScancodeF9) | ScancodeMask
	KeycodeF10 = Keycode(ScancodeF10) | ScancodeMask
	KeycodeF11 = Keycode(ScancodeF11) | ScancodeMask
	KeycodeF12 = Keycode(ScancodeF12) | ScancodeMask

	KeycodePrintScreen = Keycode(ScancodePrintScreen) | ScancodeMask
	KeycodeScrollLock  = Keycode(ScancodeScrollLock) | ScancodeMask
	KeycodePause       = Keycode(ScancodePause) | ScancodeMask
	KeycodeInsert      = Keycode(ScancodeInsert) | ScancodeMask
	KeycodeHome        = Keycode(ScancodeHome) | ScancodeMask
	KeycodePageUp      = Keycode(ScancodePageUp) | ScancodeMask
	KeycodeEnd         = Keycode(ScancodeEnd) | ScancodeMask
	KeycodePageDown    = Keycode(ScancodePageDown) | ScancodeMask
	KeycodeRight       = Keycode(ScancodeRight) | ScancodeMask
	KeycodeLeft        = Keycode(ScancodeLeft) | ScancodeMask
	KeycodeDown        = Keycode(ScancodeDown) | ScancodeMask
	KeycodeUp          = Keycode(ScancodeUp) | ScancodeMask

	KeycodeNumLockClear = Keycode(ScancodeNumLockClear) | ScancodeMask
	KeycodeKpDivide     = Keycode(ScancodeKpDivide) | ScancodeMask
	KeycodeKpMultiply   = Keycode(ScancodeKpMultiply) | ScancodeMask
	KeycodeKpMinus      = Keycode(ScancodeKpMinus) | ScancodeMask
	KeycodeKpPlus       = Keycode(ScancodeKpPlus) | ScancodeMask
	KeycodeKpEnter      = Keycode(ScancodeKpEnter) | ScancodeMask
	KeycodeKp1          = Keycode(ScancodeKp1) | ScancodeMask
	KeycodeKp2          = Keycode(ScancodeKp2) | ScancodeMask
	KeycodeKp3          = Keycode(ScancodeKp3) | ScancodeMask
	KeycodeKp4          = Keycode(ScancodeKp4) | ScancodeMask
	KeycodeKp5          = Keycode(ScancodeKp5) | ScancodeMask
	KeycodeKp6          = Keycode(ScancodeKp6) | ScancodeMask
	KeycodeKp7          = Keycode(ScancodeKp7) | ScancodeMask
	KeycodeKp8          = Keycode(ScancodeKp8) | ScancodeMask
	KeycodeKp9          = Keycode(ScancodeKp9) | ScancodeMask
	KeycodeKp0          = Keycode(ScancodeKp0) | ScancodeMask
	KeycodeKpPeriod     = Keycode(ScancodeKpPeriod) | ScancodeMask

	KeycodeApplication = Keycode(ScancodeApplication) | ScancodeMask
	KeycodePower       = Keycode(ScancodePower) | ScancodeMask
	KeycodeKpEquals    = Keycode(ScancodeKpEquals) | ScancodeMask
	KeycodeMenu        = Keycode(ScancodeMenu) | ScancodeMask
	KeycodeMute        = Keycode(ScancodeMute) | ScancodeMask
	KeycodeVolumeUp    = Keycode(ScancodeVolumeUp) | ScancodeMask
	KeycodeVolumeDown  = Keycode(ScancodeVolumeDown) | ScancodeMask

	KeycodeLCtrl  = Keycode(ScancodeLCtrl) | ScancodeMask
	KeycodeLShift = Keycode(ScancodeLShift) | ScancodeMask
	KeycodeLAlt   = Keycode(ScancodeLAlt) | ScancodeMask
	KeycodeLGui   = Keycode(ScancodeLGui) | ScancodeMask
	KeycodeRCtrl  = Keycode(ScancodeRCtrl) | ScancodeMask
	KeycodeRShift = Keycode(ScancodeRShift) | ScancodeMask
	KeycodeRAlt   = Keycode(ScancodeRAlt) | ScancodeMask
	KeycodeRGui   = Keycode(ScancodeRGui) | ScancodeMask

	KeycodeMode = Keycode(ScancodeMode) | ScancodeMask
)
