package qrcode

import (
	"crypto/rand"
	"math/big"
	"strings"

	"lifelink/config"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type codeGenerator struct {
	prefix string
	length int
}

// NewCodeGenerator returns a generator of prefix + random [A-Z0-9] values.
func NewCodeGenerator(cfg *config.Config) service.CodeGenerator {
	prefix, length := "LL-", 8
	if cfg.Codes != nil {
		if cfg.Codes.Prefix != "" {
			prefix = cfg.Codes.Prefix
		}
		if cfg.Codes.Length > 0 {
			length = cfg.Codes.Length
		}
	}

	return &codeGenerator{prefix: prefix, length: length}
}

// Generate draws each character uniformly with crypto/rand.
func (g *codeGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(len(g.prefix) + g.length)
	b.WriteString(g.prefix)

	limit := big.NewInt(int64(len(codeAlphabet)))
	for range g.length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}

	return b.String(), nil
}
