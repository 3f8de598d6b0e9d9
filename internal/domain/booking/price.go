package booking

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// fallbackPrice is used when a price label carries no digits at all.
const fallbackPrice = 49

// ExtractPrice pulls the base price out of a free-text label such as
// "Starting at $199" by taking the first contiguous run of decimal digits.
// Labels without digits fall back to a fixed price; that is an operator
// problem (bad catalog copy), never a user-facing error.
func ExtractPrice(label string) int {
	start := -1
	for i := 0; i < len(label); i++ {
		if label[i] >= '0' && label[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return mustAtoi(label, label[start:i])
		}
	}
	if start >= 0 {
		return mustAtoi(label, label[start:])
	}

	log.Warn().Str("label", label).Int("fallback", fallbackPrice).Msg("Price label has no numeric value")
	return fallbackPrice
}

func mustAtoi(label, digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only reachable for absurdly long digit runs.
		log.Warn().Str("label", label).Int("fallback", fallbackPrice).Msg("Price label digits out of range")
		return fallbackPrice
	}
	return n
}
