package enums

import "fmt"

// SortKey selects the ordering of the catalogue view.
type SortKey string

const (
	SortKeyNewest    SortKey = "newest"
	SortKeyPriceAsc  SortKey = "price-asc"
	SortKeyPriceDesc SortKey = "price-desc"
)

var validSortKeys = []SortKey{
	SortKeyNewest,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input selects the
// default newest-first ordering.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyNewest, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
