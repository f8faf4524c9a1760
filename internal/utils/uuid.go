package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers. Version 7 UUIDs are
// preferred because they sort by creation time in log storage.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to a random v4 when the
// monotonic clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
