package sdl

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	pointer "github.com/mattn/go-pointer"
)

// AudioDeviceID identifies an audio device for the lifetime of the process.
// Zero is the invalid sentinel.
type AudioDeviceID uint32

// Default device requests for OpenAudioDevice.
const (
	AudioDeviceDefaultOutput  AudioDeviceID = 0xFFFFFFFF
	AudioDeviceDefaultCapture AudioDeviceID = 0xFFFFFFFE
)

// AudioFormat mirrors SDL_AudioFormat. The bit layout encodes sample size,
// signedness, endianness and float-ness.
type AudioFormat uint16

const (
	AudioU8     AudioFormat = 0x0008
	AudioS8     AudioFormat = 0x8008
	AudioS16LSB AudioFormat = 0x8010
	AudioS16MSB AudioFormat = 0x9010
	AudioS32LSB AudioFormat = 0x8020
	AudioS32MSB AudioFormat = 0x9020
	AudioF32LSB AudioFormat = 0x8120
	AudioF32MSB AudioFormat = 0x9120

	AudioS16 = AudioS16LSB
	AudioS32 = AudioS32LSB
	AudioF32 = AudioF32LSB
)

// BitSize returns the sample size in bits.
func (f AudioFormat) BitSize() int { return int(f & 0xFF) }

// Float reports whether samples are floating point.
func (f AudioFormat) Float() bool { return f&0x0100 != 0 }

// BigEndian reports whether samples are big endian.
func (f AudioFormat) BigEndian() bool { return f&0x1000 != 0 }

// Signed reports whether samples are signed.
func (f AudioFormat) Signed() bool { return f&0x8000 != 0 }

// AudioSpec mirrors SDL_AudioSpec.
type AudioSpec struct {
	Format   AudioFormat
	_        uint16
	Channels int32
	Freq     int32
}

// AudioStream is an opaque handle to a conversion pipeline between an audio
// producer and consumer.
type AudioStream struct{ _ [0]byte }

// MixMaxVolume is the full-scale volume for MixAudioFormat.
const MixMaxVolume = 128

// AudioStreamCallback observes a stream as data is consumed or supplied.
// additional is the amount the stream is about to need or has just received;
// total includes what is already buffered. It runs on the device's audio
// thread.
type AudioStreamCallback func(stream *AudioStream, additional, total int32)

var (
	fnGetNumAudioDrivers           func() int32
	fnGetAudioDriver               func(index int32) string
	fnGetCurrentAudioDriver        func() string
	fnGetAudioOutputDevices        func(count *int32) *AudioDeviceID
	fnGetAudioCaptureDevices       func(count *int32) *AudioDeviceID
	fnGetAudioDeviceName           func(id AudioDeviceID) *byte
	fnGetAudioDeviceFormat         func(id AudioDeviceID, spec *AudioSpec, sampleFrames *int32) int32
	fnOpenAudioDevice              func(id AudioDeviceID, spec *AudioSpec) AudioDeviceID
	fnPauseAudioDevice             func(id AudioDeviceID) int32
	fnResumeAudioDevice            func(id AudioDeviceID) int32
	fnAudioDevicePaused            func(id AudioDeviceID) Bool
	fnCloseAudioDevice             func(id AudioDeviceID)
	fnBindAudioStream              func(id AudioDeviceID, stream *AudioStream) int32
	fnUnbindAudioStream            func(stream *AudioStream)
	fnGetAudioStreamDevice         func(stream *AudioStream) AudioDeviceID
	fnCreateAudioStream            func(srcSpec, dstSpec *AudioSpec) *AudioStream
	fnGetAudioStreamProperties     func(stream *AudioStream) PropertiesID
	fnGetAudioStreamFormat         func(stream *AudioStream, srcSpec, dstSpec *AudioSpec) int32
	fnSetAudioStreamFormat         func(stream *AudioStream, srcSpec, dstSpec *AudioSpec) int32
	fnGetAudioStreamFrequencyRatio func(stream *AudioStream) float32
	fnSetAudioStreamFrequencyRatio func(stream *AudioStream, ratio float32) int32
	fnPutAudioStreamData           func(stream *AudioStream, buf unsafe.Pointer, length int32) int32
	fnGetAudioStreamData           func(stream *AudioStream, buf unsafe.Pointer, length int32) int32
	fnGetAudioStreamAvailable      func(stream *AudioStream) int32
	fnGetAudioStreamQueued         func(stream *AudioStream) int32
	fnFlushAudioStream             func(stream *AudioStream) int32
	fnClearAudioStream             func(stream *AudioStream) int32
	fnLockAudioStream              func(stream *AudioStream) int32
	fnUnlockAudioStream            func(stream *AudioStream) int32
	fnSetAudioStreamGetCallback    func(stream *AudioStream, callback uintptr, userdata unsafe.Pointer) int32
	fnSetAudioStreamPutCallback    func(stream *AudioStream, callback uintptr, userdata unsafe.Pointer) int32
	fnDestroyAudioStream           func(stream *AudioStream)
	fnOpenAudioDeviceStream        func(id AudioDeviceID, spec *AudioSpec, callback uintptr, userdata unsafe.Pointer) *AudioStream
	fnLoadWAVRW                    func(src *RWops, freesrc Bool, spec *AudioSpec, audioBuf **byte, audioLen *uint32) int32
	fnMixAudioFormat               func(dst, src *uint8, format AudioFormat, length uint32, volume int32) int32
	fnConvertAudioSamples          func(srcSpec *AudioSpec, srcData *uint8, srcLen int32, dstSpec *AudioSpec, dstData **byte, dstLen *int32) int32
	fnGetSilenceValueForFormat     func(format AudioFormat) int32
)

func registerAudioFuncs() {
	register(&fnGetNumAudioDrivers, "SDL_GetNumAudioDrivers")
	register(&fnGetAudioDriver, "SDL_GetAudioDriver")
	register(&fnGetCurrentAudioDriver, "SDL_GetCurrentAudioDriver")
	register(&fnGetAudioOutputDevices, "SDL_GetAudioOutputDevices")
	register(&fnGetAudioCaptureDevices, "SDL_GetAudioCaptureDevices")
	register(&fnGetAudioDeviceName, "SDL_GetAudioDeviceName")
	register(&fnGetAudioDeviceFormat, "SDL_GetAudioDeviceFormat")
	register(&fnOpenAudioDevice, "SDL_OpenAudioDevice")
	register(&fnPauseAudioDevice, "SDL_PauseAudioDevice")
	register(&fnResumeAudioDevice, "SDL_ResumeAudioDevice")
	register(&fnAudioDevicePaused, "SDL_AudioDevicePaused")
	register(&fnCloseAudioDevice, "SDL_CloseAudioDevice")
	register(&fnBindAudioStream, "SDL_BindAudioStream")
	register(&fnUnbindAudioStream, "SDL_UnbindAudioStream")
	register(&fnGetAudioStreamDevice, "SDL_GetAudioStreamDevice")
	register(&fnCreateAudioStream, "SDL_CreateAudioStream")
	register(&fnGetAudioStreamProperties, "SDL_GetAudioStreamProperties")
	register(&fnGetAudioStreamFormat, "SDL_GetAudioStreamFormat")
	register(&fnSetAudioStreamFormat, "SDL_SetAudioStreamFormat")
	register(&fnGetAudioStreamFrequencyRatio, "SDL_GetAudioStreamFrequencyRatio")
	register(&fnSetAudioStreamFrequencyRatio, "SDL_SetAudioStreamFrequencyRatio")
	register(&fnPutAudioStreamData, "SDL_PutAudioStreamData")
	register(&fnGetAudioStreamData, "SDL_GetAudioStreamData")
	register(&fnGetAudioStreamAvailable, "SDL_GetAudioStreamAvailable")
	register(&fnGetAudioStreamQueued, "SDL_GetAudioStreamQueued")
	register(&fnFlushAudioStream, "SDL_FlushAudioStream")
	register(&fnClearAudioStream, "SDL_ClearAudioStream")
	register(&fnLockAudioStream, "SDL_LockAudioStream")
	register(&fnUnlockAudioStream, "SDL_UnlockAudioStream")
	register(&fnSetAudioStreamGetCallback, "SDL_SetAudioStreamGetCallback")
	register(&fnSetAudioStreamPutCallback, "SDL_SetAudioStreamPutCallback")
	register(&fnDestroyAudioStream, "SDL_DestroyAudioStream")
	register(&fnOpenAudioDeviceStream, "SDL_OpenAudioDeviceStream")
	register(&fnLoadWAVRW, "SDL_LoadWAV_RW")
	register(&fnMixAudioFormat, "SDL_MixAudioFormat")
	register(&fnConvertAudioSamples, "SDL_ConvertAudioSamples")
	register(&fnGetSilenceValueForFormat, "SDL_GetSilenceValueForFormat")
}

// GetNumAudioDrivers returns the number of built-in audio drivers.
func GetNumAudioDrivers() int32 {
	return fnGetNumAudioDrivers()
}

// GetAudioDriver returns a built-in driver's name by index.
func GetAudioDriver(index int32) string {
	return fnGetAudioDriver(index)
}

// GetCurrentAudioDriver returns the initialized driver's name, or "".
func GetCurrentAudioDriver() string {
	return fnGetCurrentAudioDriver()
}

// GetAudioOutputDevices returns the IDs of all playback devices.
func GetAudioOutputDevices() ([]AudioDeviceID, error) {
	var count int32
	p := fnGetAudioOutputDevices(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetAudioCaptureDevices returns the IDs of all recording devices.
func GetAudioCaptureDevices() ([]AudioDeviceID, error) {
	var count int32
	p := fnGetAudioCaptureDevices(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetAudioDeviceName returns a device's name.
func GetAudioDeviceName(id AudioDeviceID) (string, error) {
	p := fnGetAudioDeviceName(id)
	if p == nil {
		return "", fail()
	}
	return goStringFree(p), nil
}

// GetAudioDeviceFormat returns a device's preferred format and buffer size in
// sample frames.
func GetAudioDeviceFormat(id AudioDeviceID) (AudioSpec, int32, error) {
	var spec AudioSpec
	var frames int32
	if rc := fnGetAudioDeviceFormat(id, &spec, &frames); rc < 0 {
		return AudioSpec{}, 0, fail()
	}
	return spec, frames, nil
}

// OpenAudioDevice opens a device, or a logical instance of a default device,
// and returns the ID to bind streams to. A nil spec uses the device's own
// format.
func OpenAudioDevice(id AudioDeviceID, spec *AudioSpec) (AudioDeviceID, error) {
	dev := fnOpenAudioDevice(id, spec)
	if dev == 0 {
		return 0, fail()
	}
	return dev, nil
}

// PauseAudioDevice stops consuming from the device's bound streams.
func PauseAudioDevice(id AudioDeviceID) error {
	return errorFromCode(fnPauseAudioDevice(id))
}

// ResumeAudioDevice restarts a paused device.
func ResumeAudioDevice(id AudioDeviceID) error {
	return errorFromCode(fnResumeAudioDevice(id))
}

// AudioDevicePaused reports whether a device is paused.
func AudioDevicePaused(id AudioDeviceID) bool {
	return fnAudioDevicePaused(id).Bool()
}

// CloseAudioDevice closes a device opened by OpenAudioDevice, unbinding its
// streams.
func CloseAudioDevice(id AudioDeviceID) {
	fnCloseAudioDevice(id)
}

// BindAudioStream attaches a stream's output (or input, for capture devices)
// to an opened device.
func BindAudioStream(id AudioDeviceID, stream *AudioStream) error {
	return errorFromCode(fnBindAudioStream(id, stream))
}

// Unbind detaches the stream from its device.
func (s *AudioStream) Unbind() {
	fnUnbindAudioStream(s)
}

// Device returns the device the stream is bound to, or 0.
func (s *AudioStream) Device() AudioDeviceID {
	return fnGetAudioStreamDevice(s)
}

// CreateAudioStream builds a stream converting from one format to another.
func CreateAudioStream(srcSpec, dstSpec *AudioSpec) (*AudioStream, error) {
	s := fnCreateAudioStream(srcSpec, dstSpec)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// Properties returns the stream's property group.
func (s *AudioStream) Properties() (PropertiesID, error) {
	id := fnGetAudioStreamProperties(s)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// Format returns the stream's input and output formats.
func (s *AudioStream) Format() (src, dst AudioSpec, err error) {
	if rc := fnGetAudioStreamFormat(s, &src, &dst); rc < 0 {
		return AudioSpec{}, AudioSpec{}, fail()
	}
	return src, dst, nil
}

// SetFormat changes the stream's input or output format; nil leaves a side
// unchanged. Buffered data is still converted from the old format.
func (s *AudioStream) SetFormat(src, dst *AudioSpec) error {
	return errorFromCode(fnSetAudioStreamFormat(s, src, dst))
}

// FrequencyRatio returns the playback speed multiplier.
func (s *AudioStream) FrequencyRatio() float32 {
	return fnGetAudioStreamFrequencyRatio(s)
}

// SetFrequencyRatio speeds up or slows down playback, 0.01 to 100.
func (s *AudioStream) SetFrequencyRatio(ratio float32) error {
	return errorFromCode(fnSetAudioStreamFrequencyRatio(s, ratio))
}

// Put feeds sample data, in the stream's input format, into the stream.
func (s *AudioStream) Put(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return errorFromCode(fnPutAudioStreamData(s, unsafe.Pointer(&buf[0]), int32(len(buf))))
}

// Get fills buf with converted data and returns how many bytes were written.
func (s *AudioStream) Get(buf []byte) (int32, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := fnGetAudioStreamData(s, unsafe.Pointer(&buf[0]), int32(len(buf)))
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// Available returns how many converted bytes Get could return right now.
func (s *AudioStream) Available() (int32, error) {
	n := fnGetAudioStreamAvailable(s)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// Queued returns how many unconverted input bytes the stream is holding.
func (s *AudioStream) Queued() (int32, error) {
	n := fnGetAudioStreamQueued(s)
	if n < 0 {
		return 0, fail()
	}
	return n, nil
}

// Flush makes buffered input available to Get even if a conversion step
// would prefer more data.
func (s *AudioStream) Flush() error {
	return errorFromCode(fnFlushAudioStream(s))
}

// Clear drops all buffered data.
func (s *AudioStream) Clear() error {
	return errorFromCode(fnClearAudioStream(s))
}

// Lock excludes the audio thread from the stream while its callbacks' shared
// state is updated.
func (s *AudioStream) Lock() error {
	return errorFromCode(fnLockAudioStream(s))
}

// Unlock releases the lock taken by Lock.
func (s *AudioStream) Unlock() error {
	return errorFromCode(fnUnlockAudioStream(s))
}

var (
	streamCBMu  sync.Mutex
	streamGetCB = map[*AudioStream]unsafe.Pointer{}
	streamPutCB = map[*AudioStream]unsafe.Pointer{}
)

var audioStreamTrampoline = purego.NewCallback(func(userdata, stream uintptr, additional, total int32) uintptr {
	cb, ok := pointer.Restore(unsafe.Pointer(userdata)).(AudioStreamCallback)
	if ok && cb != nil {
		cb((*AudioStream)(unsafe.Pointer(stream)), additional, total)
	}
	return 0
})

func setStreamCallback(s *AudioStream, cb AudioStreamCallback, saved map[*AudioStream]unsafe.Pointer,
	set func(*AudioStream, uintptr, unsafe.Pointer) int32) error {
	streamCBMu.Lock()
	defer streamCBMu.Unlock()
	var rc int32
	var data unsafe.Pointer
	if cb == nil {
		rc = set(s, 0, nil)
	} else {
		data = pointer.Save(cb)
		rc = set(s, audioStreamTrampoline, data)
	}
	if rc < 0 {
		if data != nil {
			pointer.Unref(data)
		}
		return fail()
	}
	if old, ok := saved[s]; ok {
		pointer.Unref(old)
	}
	if data != nil {
		saved[s] = data
	} else {
		delete(saved, s)
	}
	return nil
}

// SetGetCallback installs a callback that runs before the device pulls data
// from the stream; nil removes it.
func (s *AudioStream) SetGetCallback(cb AudioStreamCallback) error {
	return setStreamCallback(s, cb, streamGetCB, fnSetAudioStreamGetCallback)
}

// SetPutCallback installs a callback that runs after data is fed into the
// stream; nil removes it.
func (s *AudioStream) SetPutCallback(cb AudioStreamCallback) error {
	return setStreamCallback(s, cb, streamPutCB, fnSetAudioStreamPutCallback)
}

// Destroy frees the stream, releasing any installed callbacks.
func (s *AudioStream) Destroy() {
	fnDestroyAudioStream(s)
	streamCBMu.Lock()
	if p, ok := streamGetCB[s]; ok {
		pointer.Unref(p)
		delete(streamGetCB, s)
	}
	if p, ok := streamPutCB[s]; ok {
		pointer.Unref(p)
		delete(streamPutCB, s)
	}
	streamCBMu.Unlock()
}

// OpenAudioDeviceStream opens a device and binds a stream to it in one step.
// For playback cb, when not nil, is asked to Put data as the device drains
// the stream. The device starts paused; destroying the stream also closes it.
func OpenAudioDeviceStream(id AudioDeviceID, spec *AudioSpec, cb AudioStreamCallback) (*AudioStream, error) {
	var data unsafe.Pointer
	var trampoline uintptr
	if cb != nil {
		data = pointer.Save(cb)
		trampoline = audioStreamTrampoline
	}
	s := fnOpenAudioDeviceStream(id, spec, trampoline, data)
	if s == nil {
		if data != nil {
			pointer.Unref(data)
		}
		return nil, fail()
	}
	if data != nil {
		streamCBMu.Lock()
		streamGetCB[s] = data
		streamCBMu.Unlock()
	}
	return s, nil
}

// LoadWAV reads a WAVE file and returns its format and sample data.
func LoadWAV(path string) (AudioSpec, []byte, error) {
	src, err := RWFromFile(path, "rb")
	if err != nil {
		return AudioSpec{}, nil, err
	}
	var spec AudioSpec
	var buf *byte
	var length uint32
	if rc := fnLoadWAVRW(src, True, &spec, &buf, &length); rc < 0 {
		return AudioSpec{}, nil, fail()
	}
	return spec, borrowedFree(buf, int32(length)), nil
}

// MixAudioFormat adds src into dst at a volume from 0 to MixMaxVolume,
// clipping to the format's range. Both buffers must hold samples in format.
func MixAudioFormat(dst, src []byte, format AudioFormat, volume int32) error {
	if len(src) == 0 {
		return nil
	}
	n := uint32(len(src))
	if uint32(len(dst)) < n {
		n = uint32(len(dst))
	}
	return errorFromCode(fnMixAudioFormat(&dst[0], &src[0], format, n, volume))
}

// ConvertAudioSamples converts a whole buffer between formats in one call.
func ConvertAudioSamples(srcSpec *AudioSpec, src []byte, dstSpec *AudioSpec) ([]byte, error) {
	if len(src) == 0 {
		return nil, SetError("empty sample buffer")
	}
	var dst *byte
	var dstLen int32
	rc := fnConvertAudioSamples(srcSpec, &src[0], int32(len(src)), dstSpec, &dst, &dstLen)
	if rc < 0 {
		return nil, fail()
	}
	return borrowedFree(dst, dstLen), nil
}

// GetSilenceValueForFormat returns the byte value representing silence for a
// format.
func GetSilenceValueForFormat(format AudioFormat) uint8 {
	return uint8(fnGetSilenceValueForFormat(format))
}
