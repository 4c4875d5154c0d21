package utils

import "github.com/google/uuid"

// UUIDGenerator issues 128-bit uuids. Version 7 is preferred so that ids
// sort roughly by creation time; version 4 is the fallback.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
