package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered request trace ids.
type UUIDGenerator struct {
	fallback func() string
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{fallback: uuid.NewString}
}

// Generate returns a UUIDv7, or a random v4 if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err == nil {
		return id.String()
	}

	return g.fallback()
}
