// Package state holds small pieces of UI-facing state that log their
// changes, for front ends built on top of the library.
package state

import (
	"sync"

	"github.com/hammamikhairi/mixr/internal/logger"
)

// Value is a mutable value that logs at debug level when it is created and
// whenever Set changes it. Safe for concurrent use.
type Value[T comparable] struct {
	mu  sync.RWMutex
	v   T
	log *logger.Logger
}

// NewValue creates a Value holding initial.
func NewValue[T comparable](initial T, log *logger.Logger) *Value[T] {
	if log == nil {
		log = logger.Discard()
	}
	log.Debug("value initialized: %v", initial)
	return &Value[T]{v: initial, log: log}
}

// Get returns the current value.
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set stores v and reports whether it differed from the previous value.
// Setting the same value again is silent.
func (s *Value[T]) Set(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.v == v {
		return false
	}
	s.v = v
	s.log.Debug("value changed: %v", v)
	return true
}
