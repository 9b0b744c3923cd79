package enums

import "fmt"

// CustomizableFilter is the tri-state customizable facet.
type CustomizableFilter string

const (
	CustomizableFilterAll CustomizableFilter = "all"
	CustomizableFilterYes CustomizableFilter = "yes"
	CustomizableFilterNo  CustomizableFilter = "no"
)

var validCustomizableFilters = []CustomizableFilter{
	CustomizableFilterAll,
	CustomizableFilterYes,
	CustomizableFilterNo,
}

// String implements fmt.Stringer.
func (f CustomizableFilter) String() string {
	return string(f)
}

// IsValid reports whether the value is a known CustomizableFilter.
func (f CustomizableFilter) IsValid() bool {
	for _, candidate := range validCustomizableFilters {
		if candidate == f {
			return true
		}
	}
	return false
}

// Matches reports whether a product with the given customizable flag passes
// the facet.
func (f CustomizableFilter) Matches(customizable bool) bool {
	switch f {
	case CustomizableFilterYes:
		return customizable
	case CustomizableFilterNo:
		return !customizable
	default:
		return true
	}
}

// ParseCustomizableFilter converts raw input into a CustomizableFilter.
// Empty input selects the wildcard.
func ParseCustomizableFilter(value string) (CustomizableFilter, error) {
	if value == "" {
		return CustomizableFilterAll, nil
	}
	for _, candidate := range validCustomizableFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customizable filter %q", value)
}
