package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonCodec[T any] struct{}

func (jsonCodec[T]) Encode(v T) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec[T]) Decode(raw []byte) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

func TestSlotAbsentUsesFallbackWithoutWriting(t *testing.T) {
	b := NewMemoryBackend()
	s := NewSlot(b, "names", []string{"seed"}, jsonCodec[[]string]{}, zerolog.Nop())

	assert.Equal(t, []string{"seed"}, s.Get())
	assert.Equal(t, 0, b.Writes())
	_, err := b.Read(context.Background(), "names")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlotCorruptPayloadIsNotOverwrittenUntilMutation(t *testing.T) {
	b := NewMemoryBackend()
	b.Seed("names", "{not json")
	var logs bytes.Buffer
	s := NewSlot(b, "names", []string{}, jsonCodec[[]string]{}, zerolog.New(&logs))

	assert.Empty(t, s.Get())
	assert.Contains(t, logs.String(), "slot decode failed")
	raw, err := b.Read(context.Background(), "names")
	require.NoError(t, err)
	assert.Equal(t, "{not json", raw)

	require.NoError(t, s.Update(func(prev []string) []string { return append(prev, "a") }))
	raw, err = b.Read(context.Background(), "names")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, raw)
}

func TestSlotReadFailureFallsBack(t *testing.T) {
	b := NewMemoryBackend()
	b.Seed("names", `["x"]`)
	b.FailReads(errors.New("disk gone"))
	s := NewSlot(b, "names", []string{"fallback"}, jsonCodec[[]string]{}, zerolog.Nop())
	assert.Equal(t, []string{"fallback"}, s.Get())
}

func TestSlotPersistFailureKeepsMemory(t *testing.T) {
	b := NewMemoryBackend()
	s := NewSlot(b, "names", []string{}, jsonCodec[[]string]{}, zerolog.Nop())
	b.FailWrites(errors.New("quota exceeded"))

	err := s.Set([]string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
	assert.Equal(t, []string{"a"}, s.Get())

	st := s.Status()
	assert.True(t, st.Dirty)
	assert.Error(t, st.LastErr)

	b.FailWrites(nil)
	saved := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return saved }
	require.NoError(t, s.Set([]string{"a", "b"}))
	st = s.Status()
	assert.False(t, st.Dirty)
	assert.NoError(t, st.LastErr)
	assert.Equal(t, saved, st.LastSavedAt)
}

func TestSlotMutateWithoutChangeSkipsWrite(t *testing.T) {
	b := NewMemoryBackend()
	s := NewSlot(b, "names", []string{"a"}, jsonCodec[[]string]{}, zerolog.Nop())
	require.NoError(t, s.Mutate(func(prev []string) ([]string, bool) { return prev, false }))
	assert.Equal(t, 0, b.Writes())
}

func TestSlotsOnSameKeyLastWriterWins(t *testing.T) {
	b := NewMemoryBackend()
	first := NewSlot(b, "names", []string{}, jsonCodec[[]string]{}, zerolog.Nop())
	second := NewSlot(b, "names", []string{}, jsonCodec[[]string]{}, zerolog.Nop())

	require.NoError(t, first.Set([]string{"from-first"}))
	require.NoError(t, second.Set([]string{"from-second"}))

	assert.Equal(t, []string{"from-first"}, first.Get(), "snapshots are independent")
	reloaded := NewSlot(b, "names", []string{}, jsonCodec[[]string]{}, zerolog.Nop())
	assert.Equal(t, []string{"from-second"}, reloaded.Get())

	first.Reload()
	assert.Equal(t, []string{"from-second"}, first.Get())
}
