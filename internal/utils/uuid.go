package utils

import "github.com/google/uuid"

// UUIDGenerator produces random request identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID string.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil.String()
	}

	return id.String()
}
