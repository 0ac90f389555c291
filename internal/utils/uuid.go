package utils

import "github.com/google/uuid"

// UUIDGenerator issues vault session identifiers. The ids only tag log
// lines, they are never persisted.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so that sessions sort by start time
// in the log. A random v4 is returned if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
