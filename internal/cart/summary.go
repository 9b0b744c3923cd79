package cart

import (
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/shopspring/decimal"
)

// Summary carries the derived pricing of a cart. All fields are recomputed
// on every read and never stored.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Summary derives subtotal, delivery fee, tax and total from the current
// items and the pricing configuration. Delivery is free once the subtotal
// reaches the threshold. Arithmetic runs on decimals so money values stay
// exact; display rounding is the caller's concern.
func (e *Engine) Summary(cfg config.PricingConfig) Summary {
	subtotal := decimal.Zero
	for _, item := range e.items {
		price := decimal.NewFromFloat(item.PriceSnapshot)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	deliveryFee := decimal.NewFromFloat(cfg.DeliveryPrice)
	if subtotal.GreaterThanOrEqual(decimal.NewFromFloat(cfg.FreeShippingThreshold)) {
		deliveryFee = decimal.Zero
	}

	tax := subtotal.Mul(decimal.NewFromFloat(cfg.TaxRate))
	total := subtotal.Add(deliveryFee).Add(tax)

	return Summary{
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: deliveryFee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}
}
