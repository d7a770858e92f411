// Package codec maps planner entities to the JSON records kept in storage
// slots. Dates are written as RFC3339 UTC strings and read back into the
// codec's location.
package codec

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339Nano

// List encodes a collection as a JSON array of wire records W.
type List[T any, W any] struct {
	loc  *time.Location
	to   func(T) W
	from func(W, *time.Location) (T, error)
}

func (c List[T, W]) Encode(items []T) ([]byte, error) {
	out := make([]W, 0, len(items))
	for _, item := range items {
		out = append(out, c.to(item))
	}
	return json.Marshal(out)
}

// Decode accepts a JSON array or null. A single bad record fails the whole
// payload.
func (c List[T, W]) Decode(raw []byte) ([]T, error) {
	var records []W
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	out := make([]T, 0, len(records))
	for i, rec := range records {
		item, err := c.from(rec, c.loc)
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func locOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, v string, loc *time.Location) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("%s: missing date", field)
	}
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t.In(loc), nil
}
