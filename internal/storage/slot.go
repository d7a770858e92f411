package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Codec converts a slot value to and from its stored payload.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(raw []byte) (T, error)
}

type SaveStatus struct {
	LastSavedAt time.Time
	LastErr     error
	// Dirty is set while memory holds changes the backend has not accepted.
	Dirty bool
}

// Slot binds one backend key to an in-memory value. Memory is authoritative:
// mutations land in memory first and are then written through to the backend.
type Slot[T any] struct {
	mu       sync.RWMutex
	backend  Backend
	key      string
	fallback T
	codec    Codec[T]
	log      zerolog.Logger
	now      func() time.Time

	value  T
	status SaveStatus
}

// NewSlot loads key from backend. A missing, unreadable or undecodable slot
// yields fallback, which is not written back until the first mutation.
func NewSlot[T any](backend Backend, key string, fallback T, codec Codec[T], logger zerolog.Logger) *Slot[T] {
	s := &Slot[T]{
		backend:  backend,
		key:      key,
		fallback: fallback,
		codec:    codec,
		log:      logger.With().Str("slot", key).Logger(),
		now:      time.Now,
	}
	s.value = s.load()
	return s
}

func (s *Slot[T]) load() T {
	raw, err := s.backend.Read(context.Background(), s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug().Msg("slot absent, using fallback")
		} else {
			s.log.Warn().Err(err).Msg("slot read failed, using fallback")
		}
		return s.fallback
	}
	v, err := s.codec.Decode([]byte(raw))
	if err != nil {
		s.log.Warn().Err(err).Msg("slot decode failed, using fallback")
		return s.fallback
	}
	return v
}

func (s *Slot[T]) Key() string { return s.key }

func (s *Slot[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Slot[T]) Set(v T) error {
	return s.Mutate(func(T) (T, bool) { return v, true })
}

func (s *Slot[T]) Update(fn func(T) T) error {
	return s.Mutate(func(prev T) (T, bool) { return fn(prev), true })
}

// Mutate replaces the value with fn's result. When fn reports no change,
// nothing is stored and nothing is written.
func (s *Slot[T]) Mutate(fn func(T) (T, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := fn(s.value)
	if !changed {
		return nil
	}
	s.value = next
	return s.persistLocked()
}

func (s *Slot[T]) persistLocked() error {
	payload, err := s.codec.Encode(s.value)
	if err == nil {
		err = s.backend.Write(context.Background(), s.key, string(payload))
	}
	if err != nil {
		s.status.LastErr = err
		s.status.Dirty = true
		s.log.Error().Stack().Err(err).Msg("slot persist failed")
		return fmt.Errorf("%w: %s: %w", ErrPersist, s.key, err)
	}
	s.status = SaveStatus{LastSavedAt: s.now()}
	return nil
}

// Reload discards memory and reads the slot again.
func (s *Slot[T]) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = s.load()
	s.status = SaveStatus{}
}

func (s *Slot[T]) Status() SaveStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
