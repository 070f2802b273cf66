package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs, used for poll cycle correlation.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Short returns the first eight characters of a fresh id, for log lines.
func Short(g Generator) string {
	if g == nil {
		return ""
	}
	v, err := g.NewID()
	if err != nil || len(v) < 8 {
		return v
	}
	return v[:8]
}
