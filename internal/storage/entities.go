package storage

import "time"

// SlotRecord is one stored key with its raw payload.
type SlotRecord struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
