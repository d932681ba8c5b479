// Package registry holds the API client handle the rest of the library
// talks through. A Registry stores at most one handle; registering a new
// one replaces the old one with a warning.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
)

// ErrNilClient is returned by Register when given a nil handle.
var ErrNilClient = fmt.Errorf("%w: registration requires a valid client instance", domain.ErrInvalidArgument)

// ReplacedWarning is logged when a registered handle is replaced.
const ReplacedWarning = "MIXR library re-initialized; previous client replaced"

// Registry holds zero or one client handle. Safe for concurrent use;
// readers never observe a partially replaced handle.
type Registry[T any] struct {
	mu     sync.RWMutex
	handle T
	set    bool
	log    *logger.Logger
}

// New creates an empty registry. A nil log discards output.
func New[T any](log *logger.Logger) *Registry[T] {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry[T]{log: log}
}

// SetLogger swaps the logger used for replacement warnings.
func (r *Registry[T]) SetLogger(log *logger.Logger) {
	if log == nil {
		log = logger.Discard()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
}

// Register stores h, replacing any previous handle. A nil handle is
// rejected with ErrNilClient and leaves the registry untouched.
func (r *Registry[T]) Register(h T) error {
	if isNil(h) {
		return ErrNilClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.set {
		r.log.Warn(ReplacedWarning)
	}
	r.handle = h
	r.set = true
	r.log.Debug("client registered (%T)", h)
	return nil
}

// IsRegistered reports whether a handle is currently held.
func (r *Registry[T]) IsRegistered() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}

// Handle returns the current handle. ok is false when none is registered.
func (r *Registry[T]) Handle() (h T, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handle, r.set
}

// Require returns the current handle, or an error wrapping
// domain.ErrNotFound when the registry is empty.
func (r *Registry[T]) Require() (T, error) {
	h, ok := r.Handle()
	if !ok {
		return h, fmt.Errorf("%w: no client registered", domain.ErrNotFound)
	}
	return h, nil
}

// ResetForTesting clears the registry. It exists so tests can isolate
// process-wide state; production code has no reason to call it.
func (r *Registry[T]) ResetForTesting() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.handle = zero
	r.set = false
}

// isNil reports whether v is nil, including typed nils hidden in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
