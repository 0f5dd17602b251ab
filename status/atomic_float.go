package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float metric written by the engine goroutine and read by the HUD,
// e.g. the current ball speed; the zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set publishes val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the last published value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
