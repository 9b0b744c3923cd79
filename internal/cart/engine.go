package cart

import (
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/pkg/types"
	"github.com/google/uuid"
)

// LineItem is one purchased entry. The same product may appear as several
// distinct line items with different customizations, so the id is freshly
// generated and independent of the product id. Price, name and image are
// snapshots taken at add time.
type LineItem struct {
	ID            uuid.UUID                    `json:"id"`
	ProductID     uuid.UUID                    `json:"product_id"`
	Name          string                       `json:"name"`
	ImageURL      string                       `json:"image_url,omitempty"`
	PriceSnapshot float64                      `json:"price"`
	Quantity      int                          `json:"quantity"`
	Customization *types.CustomizationSnapshot `json:"customization,omitempty"`
}

// ProductLookup resolves a product id against the session catalogue. Used
// only by the clamping stock policy.
type ProductLookup func(productID uuid.UUID) (catalog.Product, bool)

// Engine holds the ordered cart. Insertion order is display order; it is
// never re-sorted. Not safe for concurrent use on its own; the owning session
// serializes access.
type Engine struct {
	items  []LineItem
	policy StockPolicy
	lookup ProductLookup
}

// NewEngine builds an empty cart with the given mutation policy. The lookup
// may be nil under StockPolicyIgnore.
func NewEngine(policy StockPolicy, lookup ProductLookup) *Engine {
	if !policy.IsValid() {
		policy = StockPolicyIgnore
	}
	return &Engine{policy: policy, lookup: lookup}
}

// Add appends a line item for the product. The customization snapshot is a
// deep copy of the draft and only taken for customizable products. Callers
// gate completeness before calling; the engine does not re-validate.
func (e *Engine) Add(product catalog.Product, draft customization.Draft) LineItem {
	quantity := draft.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := LineItem{
		ID:            uuid.New(),
		ProductID:     product.ID,
		Name:          product.Name,
		ImageURL:      product.ImageURL,
		PriceSnapshot: product.Price,
		Quantity:      quantity,
	}
	if product.Customizable {
		snapshot := draft.Snapshot()
		item.Customization = &snapshot
	}

	e.items = append(e.items, item)
	return item
}

// Remove deletes the matching line item. Absent ids are a no-op.
func (e *Engine) Remove(lineItemID uuid.UUID) {
	for i, item := range e.items {
		if item.ID == lineItemID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies a delta to a line item. A resulting quantity of zero
// or less removes the item entirely. Under StockPolicyClamp the result is
// additionally capped at the product's current stock.
func (e *Engine) AdjustQuantity(lineItemID uuid.UUID, delta int) {
	for i := range e.items {
		if e.items[i].ID != lineItemID {
			continue
		}

		quantity := e.items[i].Quantity + delta
		if quantity <= 0 {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
		if e.policy == StockPolicyClamp && e.lookup != nil {
			if product, ok := e.lookup(e.items[i].ProductID); ok {
				// Ceiling before floor, so zero stock resolves to 1.
				if quantity > product.Stock {
					quantity = product.Stock
				}
				if quantity < 1 {
					quantity = 1
				}
			}
		}
		e.items[i].Quantity = quantity
		return
	}
}

// Items returns a copy of the cart in insertion order.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of line items.
func (e *Engine) Len() int {
	return len(e.items)
}

// TotalQuantity sums quantities across line items, the value shown on the
// cart badge.
func (e *Engine) TotalQuantity() int {
	total := 0
	for _, item := range e.items {
		total += item.Quantity
	}
	return total
}

// Replace swaps the whole cart content, preserving the given order. Used
// when a session is rehydrated from a mirror.
func (e *Engine) Replace(items []LineItem) {
	e.items = make([]LineItem, len(items))
	copy(e.items, items)
}
