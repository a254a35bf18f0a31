package sdl

// Scancode mirrors SDL_Scancode: physical key positions per the USB HID usage
// tables. The numbering, including its reserved gaps, is the library's own
// and must not be compacted.
type Scancode uint32

const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4
	ScancodeB Scancode = 5
	ScancodeC Scancode = 6
	ScancodeD Scancode = 7
	ScancodeE Scancode = 8
	ScancodeF Scancode = 9
	ScancodeG Scancode = 10
	ScancodeH Scancode = 11
	ScancodeI Scancode = 12
	ScancodeJ Scancode = 13
	ScancodeK Scancode = 14
	ScancodeL Scancode = 15
	ScancodeM Scancode = 16
	ScancodeN Scancode = 17
	ScancodeO Scancode = 18
	ScancodeP Scancode = 19
	ScancodeQ Scancode = 20
	ScancodeR Scancode = 21
	ScancodeS Scancode = 22
	ScancodeT Scancode = 23
	ScancodeU Scancode = 24
	ScancodeV Scancode = 25
	ScancodeW Scancode = 26
	ScancodeX Scancode = 27
	ScancodeY Scancode = 28
	ScancodeZ Scancode = 29

	Scancode1 Scancode = 30
	Scancode2 Scancode = 31
	Scancode3 Scancode = 32
	Scancode4 Scancode = 33
	Scancode5 Scancode = 34
	Scancode6 Scancode = 35
	Scancode7 Scancode = 36
	Scancode8 Scancode = 37
	Scancode9 Scancode = 38
	Scancode0 Scancode = 39

	ScancodeReturn       Scancode = 40
	ScancodeEscape       Scancode = 41
	ScancodeBackspace    Scancode = 42
	ScancodeTab          Scancode = 43
	ScancodeSpace        Scancode = 44
	ScancodeMinus        Scancode = 45
	ScancodeEquals       Scancode = 46
	ScancodeLeftBracket  Scancode = 47
	ScancodeRightBracket Scancode = 48
	ScancodeBackslash    Scancode = 49
	ScancodeNonUSHash    Scancode = 50
	ScancodeSemicolon    Scancode = 51
	ScancodeApostrophe   Scancode = 52
	ScancodeGrave        Scancode = 53
	ScancodeComma        Scancode = 54
	ScancodePeriod       Scancode = 55
	ScancodeSlash        Scancode = 56

	ScancodeCapsLock Scancode = 57

	ScancodeF1  Scancode = 58
	ScancodeF2  Scancode = 59
	ScancodeF3  Scancode = 60
	ScancodeF4  Scancode = 61
	ScancodeF5  Scancode = 62
	ScancodeF6  Scancode = 63
	ScancodeF7  Scancode = 64
	ScancodeF8  Scancode = 65
	ScancodeF9  Scancode = 66
	ScancodeF10 Scancode = 67
	ScancodeF11 Scancode = 68
	ScancodeF12 Scancode = 69

	ScancodePrintScreen Scancode = 70
	ScancodeScrollLock  Scancode = 71
	ScancodePause       Scancode = 72
	ScancodeInsert      Scancode = 73
	ScancodeHome        Scancode = 74
	ScancodePageUp      Scancode = 75
	ScancodeDelete      Scancode = 76
	ScancodeEnd         Scancode = 77
	ScancodePageDown    Scancode = 78
	ScancodeRight       Scancode = 79
	ScancodeLeft        Scancode = 80
	ScancodeDown        Scancode = 81
	ScancodeUp          Scancode = 82

	ScancodeNumLockClear Scancode = 83
	ScancodeKpDivide     Scancode = 84
	ScancodeKpMultiply   Scancode = 85
	ScancodeKpMinus      Scancode = 86
	ScancodeKpPlus       Scancode = 87
	ScancodeKpEnter      Scancode = 88
	ScancodeKp1          Scancode = 89
	ScancodeKp2          Scancode = 90
	ScancodeKp3          Scancode = 91
	ScancodeKp4          Scancode = 92
	ScancodeKp5          Scancode = 93
	ScancodeKp6          Scancode = 94
	ScancodeKp7          Scancode = 95
	ScancodeKp8          Scancode = 96
	ScancodeKp9          Scancode = 97
	ScancodeKp0          Scancode = 98
	ScancodeKpPeriod     Scancode = 99

	ScancodeNonUSBackslash Scancode = 100
	ScancodeApplication    Scancode = 101
	ScancodePower          Scancode = 102
	ScancodeKpEquals       Scancode = 103
	ScancodeF13            Scancode = 104
	ScancodeF14            Scancode = 105
	ScancodeF15            Scancode = 106
	ScancodeF16            Scancode = 107
	ScancodeF17            Scancode = 108
	ScancodeF18            Scancode = 109
	ScancodeF19            Scancode = 110
	ScancodeF20            Scancode = 111
	ScancodeF21            Scancode = 112
	ScancodeF22            Scancode = 113
	ScancodeF23            Scancode = 114
	ScancodeF24            Scancode = 115
	ScancodeExecute        Scancode = 116
	ScancodeHelp           Scancode = 117
	ScancodeMenu           Scancode = 118
	ScancodeSelect         Scancode = 119
	ScancodeStop           Scancode = 120
	ScancodeAgain          Scancode = 121
	ScancodeUndo           Scancode = 122
	ScancodeCut            Scancode = 123
	ScancodeCopy           Scancode = 124
	ScancodePaste          Scancode = 125
	ScancodeFind           Scancode = 126
	ScancodeMute           Scancode = 127
	ScancodeVolumeUp       Scancode = 128
	ScancodeVolumeDown     Scancode = 129

	// 130..132 are reserved (locking modifier keys the library never emits).

	ScancodeKpComma       Scancode = 133
	ScancodeKpEqualsAS400 Scancode = 134

	ScancodeInternational1 Scancode = 135
	ScancodeInternational2 Scancode = 136
	ScancodeInternational3 Scancode = 137
	ScancodeInternational4 Scancode = 138
	ScancodeInternational5 Scancode = 139
	ScancodeInternational6 Scancode = 140
	ScancodeInternational7 Scancode = 141
	ScancodeInternational8 Scancode = 142
	ScancodeInternational9 Scancode = 143
	ScancodeLang1          Scancode = 144
	ScancodeLang2          Scancode = 145
	ScancodeLang3          Scancode = 146
	ScancodeLang4          Scancode = 147
	ScancodeLang5          Scancode = 148
	ScancodeLang6          Scancode = 149
	ScancodeLang7          Scancode = 150
	ScancodeLang8          Scancode = 151
	ScancodeLang9          Scancode = 152

	ScancodeAltErase   Scancode = 153
	ScancodeSysReq     Scancode = 154
	ScancodeCancel     Scancode = 155
	ScancodeClear      Scancode = 156
	ScancodePrior      Scancode = 157
	ScancodeReturn2    Scancode = 158
	ScancodeSeparator  Scancode = 159
	ScancodeOut        Scancode = 160
	ScancodeOper       Scancode = 161
	ScancodeClearAgain Scancode = 162
	ScancodeCrSel      Scancode = 163
	ScancodeExSel      Scancode = 164

	// 165..175 are reserved.

	ScancodeKp00               Scancode = 176
	ScancodeKp000              Scancode = 177
	ScancodeThousandsSeparator Scancode = 178
	ScancodeDecimalSeparator   Scancode = 179
	ScancodeCurrencyUnit       Scancode = 180
	ScancodeCurrencySubunit    Scancode = 181
	ScancodeKpLeftParen        Scancode = 182
	ScancodeKpRightParen       Scancode = 183
	ScancodeKpLeftBrace        Scancode = 184
	ScancodeKpRightBrace       Scancode = 185
	ScancodeKpTab              Scancode = 186
	ScancodeKpBackspace        Scancode = 187
	ScancodeKpA                Scancode = 188
	ScancodeKpB                Scancode = 189
	ScancodeKpC                Scancode = 190
	ScancodeKpD                Scancode = 191
	ScancodeKpE                Scancode = 192
	ScancodeKpF                Scancode = 193
	ScancodeKpXOR              Scancode = 194
	ScancodeKpPower            Scancode = 195
	ScancodeKpPercent          Scancode = 196
	ScancodeKpLess             Scancode = 197
	ScancodeKpGreater          Scancode = 198
	ScancodeKpAmpersand        Scancode = 199
	ScancodeKpDblAmpersand     Scancode = 200
	ScancodeKpVerticalBar      Scancode = 201
	ScancodeKpDblVerticalBar   Scancode = 202
	ScancodeKpColon            Scancode = 203
	ScancodeKpHash             Scancode = 204
	ScancodeKpSpace            Scancode = 205
	ScancodeKpAt               Scancode = 206
	ScancodeKpExclam           Scancode = 207
	ScancodeKpMemStore         Scancode = 208
	ScancodeKpMemRecall        Scancode = 209
	ScancodeKpMemClear         Scancode = 210
	ScancodeKpMemAdd           Scancode = 211
	ScancodeKpMemSubtract      Scancode = 212
	ScancodeKpMemMultiply      Scancode = 213
	ScancodeKpMemDivide        Scancode = 214
	ScancodeKpPlusMinus        Scancode = 215
	ScancodeKpClear            Scancode = 216
	ScancodeKpClearEntry       Scancode = 217
	ScancodeKpBinary           Scancode = 218
	ScancodeKpOctal            Scancode = 219
	ScancodeKpDecimal          Scancode = 220
	ScancodeKpHexadecimal      Scancode = 221

	// 222..223 are reserved.

	ScancodeLCtrl  Scancode = 224
	ScancodeLShift Scancode = 225
	ScancodeLAlt   Scancode = 226
	ScancodeLGui   Scancode = 227
	ScancodeRCtrl  Scancode = 228
	ScancodeRShift Scancode = 229
	ScancodeRAlt   Scancode = 230
	ScancodeRGui   Scancode = 231

	// 232..256 are reserved.

	ScancodeMode Scancode = 257

	ScancodeAudioNext        Scancode = 258
	ScancodeAudioPrev        Scancode = 259
	ScancodeAudioStop        Scancode = 260
	ScancodeAudioPlay        Scancode = 261
	ScancodeAudioMute        Scancode = 262
	ScancodeMediaSelect      Scancode = 263
	ScancodeWWW              Scancode = 264
	ScancodeMail             Scancode = 265
	ScancodeCalculator       Scancode = 266
	ScancodeComputer         Scancode = 267
	ScancodeACSearch         Scancode = 268
	ScancodeACHome           Scancode = 269
	ScancodeACBack           Scancode = 270
	ScancodeACForward        Scancode = 271
	ScancodeACStop           Scancode = 272
	ScancodeACRefresh        Scancode = 273
	ScancodeACBookmarks      Scancode = 274
	ScancodeBrightnessDown   Scancode = 275
	ScancodeBrightnessUp     Scancode = 276
	ScancodeDisplaySwitch    Scancode = 277
	ScancodeKbdIllumToggle   Scancode = 278
	ScancodeKbdIllumDown     Scancode = 279
	ScancodeKbdIllumUp       Scancode = 280
	ScancodeEject            Scancode = 281
	ScancodeSleep            Scancode = 282
	ScancodeApp1             Scancode = 283
	ScancodeApp2             Scancode = 284
	ScancodeAudioRewind      Scancode = 285
	ScancodeAudioFastForward Scancode = 286

	ScancodeSoftLeft  Scancode = 287
	ScancodeSoftRight Scancode = 288
	ScancodeCall      Scancode = 289
	ScancodeEndCall   Scancode = 290

	// NumScancodes sizes the keyboard state array; entries past the defined
	// codes are reserved.
	NumScancodes = 512
)
