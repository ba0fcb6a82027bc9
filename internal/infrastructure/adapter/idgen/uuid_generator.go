package idgen

import (
	"github.com/google/uuid"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// UUIDGenerator implements the IDGenerator interface with random UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-based id generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random identifier
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
