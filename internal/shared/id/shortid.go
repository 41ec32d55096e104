package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Uppercase alphanumeric alphabet used for ticket-number suffixes.
	// 36^4 candidate suffixes per year (~1.6M).
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// TicketSuffixLength is the suffix length used in ticket numbers.
	TicketSuffixLength = 4
)

// Generate creates a cryptographically random uppercase-alphanumeric code
// with the specified length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = TicketSuffixLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random code and panics on error. Use only when
// generation cannot fail.
func MustGenerate(length int) string {
	code, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return code
}

// FormatTicketNumber builds a ticket number in the form
// "<prefix>-<year>-<suffix>", e.g. "RC-2026-7KQ2".
func FormatTicketNumber(prefix string, year int, suffix string) string {
	return fmt.Sprintf("%s-%04d-%s", prefix, year, suffix)
}
