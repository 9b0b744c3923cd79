package enums

import "fmt"

// PriceBand is one of the fixed catalogue price ranges. Bands are closed-open
// except the top band, so a price sitting exactly on a boundary belongs to
// the higher band.
type PriceBand string

const (
	PriceBandAll      PriceBand = "all"
	PriceBandUnder500 PriceBand = "0-500"
	PriceBand500To1K  PriceBand = "500-1000"
	PriceBand1KTo2K   PriceBand = "1000-2000"
	PriceBandOver2K   PriceBand = "2000+"
)

var validPriceBands = []PriceBand{
	PriceBandAll,
	PriceBandUnder500,
	PriceBand500To1K,
	PriceBand1KTo2K,
	PriceBandOver2K,
}

// String implements fmt.Stringer.
func (b PriceBand) String() string {
	return string(b)
}

// IsValid reports whether the value is a known PriceBand.
func (b PriceBand) IsValid() bool {
	for _, candidate := range validPriceBands {
		if candidate == b {
			return true
		}
	}
	return false
}

// Contains reports whether price falls inside the band. The wildcard band
// accepts every price.
func (b PriceBand) Contains(price float64) bool {
	switch b {
	case PriceBandUnder500:
		return price < 500
	case PriceBand500To1K:
		return price >= 500 && price < 1000
	case PriceBand1KTo2K:
		return price >= 1000 && price < 2000
	case PriceBandOver2K:
		return price >= 2000
	default:
		return true
	}
}

// ParsePriceBand converts raw input into a PriceBand. Empty input selects the
// wildcard band.
func ParsePriceBand(value string) (PriceBand, error) {
	if value == "" {
		return PriceBandAll, nil
	}
	for _, candidate := range validPriceBands {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price band %q", value)
}
