package cart

import "fmt"

// StockPolicy decides whether cart quantity mutations are re-validated
// against product stock. The default trusts the add-time gate only.
type StockPolicy string

const (
	// StockPolicyIgnore applies no stock ceiling on cart mutations.
	StockPolicyIgnore StockPolicy = "ignore"
	// StockPolicyClamp caps adjusted quantities at the product's current
	// stock, read through the engine's product lookup.
	StockPolicyClamp StockPolicy = "clamp"
)

func (p StockPolicy) String() string {
	return string(p)
}

func (p StockPolicy) IsValid() bool {
	switch p {
	case StockPolicyIgnore, StockPolicyClamp:
		return true
	}
	return false
}

// ParseStockPolicy resolves a configured policy name. An empty value falls
// back to the ignore default.
func ParseStockPolicy(value string) (StockPolicy, error) {
	if value == "" {
		return StockPolicyIgnore, nil
	}
	policy := StockPolicy(value)
	if !policy.IsValid() {
		return "", fmt.Errorf("invalid stock policy %q", value)
	}
	return policy, nil
}
