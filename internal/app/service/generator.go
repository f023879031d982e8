package service

import (
	"fmt"
	"math/rand/v2"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGenerator produces random short codes from a 62 symbol alphabet.
// Codes are identifiers, not secrets; uniqueness is enforced by the store.
type CodeGenerator struct {
	length   int
	elements string
}

func NewCodeGenerator(length int) (*CodeGenerator, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidInput, length)
	}

	return &CodeGenerator{
		length:   length,
		elements: alphabet,
	}, nil
}

// Generate returns a code of the configured length.
func (g *CodeGenerator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = g.elements[rand.IntN(len(g.elements))]
	}
	return string(b)
}
