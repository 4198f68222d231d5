// internal/testutil/mocks.go
package testutil

import (
	"errors"
	"sync"
)

// Nota: Los mocks específicos de domain/ports están en sus respectivos paquetes
// Este archivo contiene solo utilidades genéricas sin dependencias circulares

// ErrMockWrite is returned by FailingWriter.
var ErrMockWrite = errors.New("mock write failure")

// FailingWriter is an io.Writer that fails after Limit bytes.
type FailingWriter struct {
	Limit   int
	written int
}

// Write accepts bytes until Limit is reached, then returns ErrMockWrite.
func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.Limit {
		n := w.Limit - w.written
		w.written = w.Limit
		return n, ErrMockWrite
	}
	w.written += len(p)
	return len(p), nil
}

// ProgressRecorder collects (done, total) progress callbacks.
type ProgressRecorder struct {
	mu    sync.Mutex
	Calls [][2]int
}

// Record stores one callback.
func (r *ProgressRecorder) Record(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, [2]int{done, total})
}

// Last returns the most recent callback, or zeros.
func (r *ProgressRecorder) Last() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return 0, 0
	}
	c := r.Calls[len(r.Calls)-1]
	return c[0], c[1]
}
