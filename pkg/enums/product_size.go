package enums

import "fmt"

// ProductSize is the fixed size scale offered on customizable products.
type ProductSize string

const (
	ProductSizeS  ProductSize = "S"
	ProductSizeM  ProductSize = "M"
	ProductSizeL  ProductSize = "L"
	ProductSizeXL ProductSize = "XL"
)

// ProductSizeUnset marks a draft with no size chosen yet.
const ProductSizeUnset ProductSize = ""

var validProductSizes = []ProductSize{
	ProductSizeS,
	ProductSizeM,
	ProductSizeL,
	ProductSizeXL,
}

// String implements fmt.Stringer.
func (s ProductSize) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductSize.
func (s ProductSize) IsValid() bool {
	for _, candidate := range validProductSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductSize converts raw input into a ProductSize.
func ParseProductSize(value string) (ProductSize, error) {
	for _, candidate := range validProductSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product size %q", value)
}
