package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Clock supplies record timestamps as host-clock nanoseconds. Injected so
// tests can run against a deterministic clock.
type Clock interface {
	Now() uint64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().UnixNano())
}

// IDGenerator supplies unique record identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random V4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("%w: generate id: %v", ErrInternal, err)
	}
	return id.String(), nil
}
