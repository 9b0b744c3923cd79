package expansion

import (
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	"github.com/google/uuid"
)

// DismissBinder wires the outside-dismissal hook for an expanded card. The
// binder is installed only while a card is expanded and removed on every
// return to the collapsed state, so no hook outlives its expansion.
type DismissBinder interface {
	Bind(productID uuid.UUID, dismiss func())
	Unbind(productID uuid.UUID)
}

// NopBinder satisfies DismissBinder without side effects.
type NopBinder struct{}

func (NopBinder) Bind(uuid.UUID, func()) {}
func (NopBinder) Unbind(uuid.UUID)       {}

// Controller tracks which single product card is expanded. At most one
// expansion exists at any time; opening a card closes any other first.
// Not safe for concurrent use on its own; the owning session serializes
// access.
type Controller struct {
	drafts   *customization.Store
	binder   DismissBinder
	expanded uuid.UUID
	open     bool
}

// NewController builds a collapsed controller. A nil binder is replaced by
// NopBinder.
func NewController(drafts *customization.Store, binder DismissBinder) *Controller {
	if binder == nil {
		binder = NopBinder{}
	}
	return &Controller{drafts: drafts, binder: binder}
}

// Expanded returns the currently expanded product id, if any.
func (c *Controller) Expanded() (uuid.UUID, bool) {
	return c.expanded, c.open
}

// IsExpanded reports whether the given product's card is the expanded one.
func (c *Controller) IsExpanded(productID uuid.UUID) bool {
	return c.open && c.expanded == productID
}

// Toggle flips the product's card. Expanding tears down any other expanded
// card first and lazily materializes the product's customization draft.
// Toggling the already-expanded card collapses it.
func (c *Controller) Toggle(product catalog.Product) {
	if c.IsExpanded(product.ID) {
		c.Close()
		return
	}
	if c.open {
		c.Close()
	}

	c.drafts.Get(product)
	c.expanded = product.ID
	c.open = true
	c.binder.Bind(product.ID, c.Close)
}

// Close collapses whatever is expanded. Idempotent when already collapsed.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.binder.Unbind(c.expanded)
	c.expanded = uuid.UUID{}
	c.open = false
}

// IsCustomizationComplete reports whether the product can be added to the
// cart. Non-customizable products always qualify; customizable ones need a
// size chosen on their draft. Re-evaluated on every field change by callers.
func (c *Controller) IsCustomizationComplete(product catalog.Product) bool {
	if !product.Customizable {
		return true
	}
	return c.drafts.Get(product).Size != enums.ProductSizeUnset
}
