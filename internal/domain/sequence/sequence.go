// Package sequence defines per-municipality ticket numbering.
package sequence

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// FallbackMin and FallbackMax bound the random suffix used when the counter
	// cannot be advanced.
	FallbackMin = 1000
	FallbackMax = 9999
)

var (
	upper = cases.Upper(language.Spanish)
	lower = cases.Lower(language.Spanish)
)

// Allocator mints the next ticket number for a municipality.
type Allocator interface {
	Next(ctx context.Context, municipality string) (string, error)
}

// RandomSource yields an integer in [min, max].
type RandomSource interface {
	IntBetween(min, max int) int
}

// Prefix is the upper-cased municipality key that starts every ticket number.
func Prefix(municipality string) string {
	return upper.String(strings.TrimSpace(municipality))
}

// MunicipalityKey is the stored form of a municipality. Names that share a
// Prefix share a key, so duplicate checks and counters agree.
func MunicipalityKey(municipality string) string {
	return lower.String(Prefix(municipality))
}

// FormatNumber renders "<PREFIX>-<counter>" with the counter zero padded to
// four digits. Larger counters keep all their digits.
func FormatNumber(municipality string, counter int64) string {
	return fmt.Sprintf("%s-%04d", Prefix(municipality), counter)
}
