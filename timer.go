package sdl

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	pointer "github.com/mattn/go-pointer"
)

// TimerID identifies a running timer. Zero is the invalid sentinel.
type TimerID uint32

// TimerCallback returns the next interval in milliseconds, or 0 to stop the
// timer. It runs on a separate thread.
type TimerCallback func(interval uint32) uint32

type timerRecord struct {
	cb   TimerCallback
	data unsafe.Pointer
	id   TimerID
	once sync.Once
}

func (r *timerRecord) release() {
	r.once.Do(func() {
		pointer.Unref(r.data)
		timerMu.Lock()
		delete(timers, r.id)
		timerMu.Unlock()
	})
}

var (
	timerMu sync.Mutex
	timers  = map[TimerID]*timerRecord{}
)

var (
	fnGetTicks                func() uint64
	fnGetTicksNS              func() uint64
	fnGetPerformanceCounter   func() uint64
	fnGetPerformanceFrequency func() uint64
	fnDelay                   func(ms uint32)
	fnDelayNS                 func(ns uint64)
	fnAddTimer                func(interval uint32, callback uintptr, param unsafe.Pointer) TimerID
	fnRemoveTimer             func(id TimerID) Bool
)

func registerTimerFuncs() {
	register(&fnGetTicks, "SDL_GetTicks")
	register(&fnGetTicksNS, "SDL_GetTicksNS")
	register(&fnGetPerformanceCounter, "SDL_GetPerformanceCounter")
	register(&fnGetPerformanceFrequency, "SDL_GetPerformanceFrequency")
	register(&fnDelay, "SDL_Delay")
	register(&fnDelayNS, "SDL_DelayNS")
	register(&fnAddTimer, "SDL_AddTimer")
	register(&fnRemoveTimer, "SDL_RemoveTimer")
}

// GetTicks returns milliseconds since library initialization.
func GetTicks() uint64 {
	return fnGetTicks()
}

// GetTicksNS returns nanoseconds since library initialization.
func GetTicksNS() uint64 {
	return fnGetTicksNS()
}

// GetPerformanceCounter returns the high-resolution counter's current value.
func GetPerformanceCounter() uint64 {
	return fnGetPerformanceCounter()
}

// GetPerformanceFrequency returns the counter's ticks per second.
func GetPerformanceFrequency() uint64 {
	return fnGetPerformanceFrequency()
}

// Delay sleeps for at least ms milliseconds.
func Delay(ms uint32) {
	fnDelay(ms)
}

// DelayNS sleeps for at least ns nanoseconds.
func DelayNS(ns uint64) {
	fnDelayNS(ns)
}

var timerTrampoline = purego.NewCallback(func(interval uint32, param uintptr) uintptr {
	rec, ok := pointer.Restore(unsafe.Pointer(param)).(*timerRecord)
	if !ok || rec == nil {
		return 0
	}
	next := rec.cb(interval)
	if next == 0 {
		rec.release()
	}
	return uintptr(next)
})

// AddTimer schedules cb to run after interval milliseconds and then at
// whatever interval it returns.
func AddTimer(interval uint32, cb TimerCallback) (TimerID, error) {
	if cb == nil {
		return 0, SetError("nil timer callback")
	}
	rec := &timerRecord{cb: cb}
	rec.data = pointer.Save(rec)
	id := fnAddTimer(interval, timerTrampoline, rec.data)
	if id == 0 {
		pointer.Unref(rec.data)
		return 0, fail()
	}
	rec.id = id
	timerMu.Lock()
	timers[id] = rec
	timerMu.Unlock()
	return id, nil
}

// RemoveTimer cancels a timer. It reports whether the timer was still
// scheduled.
func RemoveTimer(id TimerID) bool {
	ok := fnRemoveTimer(id).Bool()
	timerMu.Lock()
	rec := timers[id]
	timerMu.Unlock()
	if rec != nil {
		rec.release()
	}
	return ok
}
