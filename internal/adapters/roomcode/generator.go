package roomcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"roomscheduler/internal/domain"
)

const (
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	DefaultLength   = 6
)

type generator struct {
	alphabet []rune
	length   int
	max      *big.Int
}

// NewGenerator returns a CodeGenerator drawing length runes uniformly from
// alphabet with crypto/rand.
func NewGenerator(alphabet string, length int) (domain.CodeGenerator, error) {
	runes := []rune(alphabet)
	if len(runes) < 2 {
		return nil, errors.New("room code alphabet needs at least 2 characters")
	}
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			return nil, fmt.Errorf("room code alphabet repeats %q", r)
		}
		seen[r] = struct{}{}
	}
	if length < 1 {
		return nil, fmt.Errorf("room code length must be positive, got %d", length)
	}
	return &generator{
		alphabet: runes,
		length:   length,
		max:      big.NewInt(int64(len(runes))),
	}, nil
}

func (g *generator) Generate() (string, error) {
	b := make([]rune, g.length)
	for i := range b {
		n, err := rand.Int(rand.Reader, g.max)
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		b[i] = g.alphabet[n.Int64()]
	}
	return string(b), nil
}
