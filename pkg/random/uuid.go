package random

import uuid "github.com/satori/go.uuid"

// NewUUID returns a random (version 4) UUID. The library reads
// crypto/rand internally, matching the package's default source.
func NewUUID() uuid.UUID {
	return uuid.NewV4()
}
