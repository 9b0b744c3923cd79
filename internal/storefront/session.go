package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/internal/expansion"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/google/uuid"
)

// CartSaver is the debounced persistence bridge a session notifies on every
// cart mutation.
type CartSaver interface {
	Notify(ctx context.Context, items []cart.LineItem)
	Flush(ctx context.Context)
	Close()
}

// NopSaver satisfies CartSaver without side effects.
type NopSaver struct{}

func (NopSaver) Notify(context.Context, []cart.LineItem) {}
func (NopSaver) Flush(context.Context)                   {}
func (NopSaver) Close()                                  {}

// Session is the application state for one browsing session: the immutable
// catalogue view, filter/sort state, customization drafts, card expansion and
// the cart. All mutation funnels through its methods under one mutex so that
// concurrent HTTP handlers observe a consistent session.
type Session struct {
	mu sync.Mutex

	id        string
	catalogue []catalog.Product
	index     map[uuid.UUID]catalog.Product

	filters catalog.FilterState
	sortKey enums.SortKey

	drafts    *customization.Store
	expansion *expansion.Controller
	cart      *cart.Engine
	pricing   config.PricingConfig
	saver     CartSaver
}

func newSession(id string, catalogue []catalog.Product, pricing config.PricingConfig, policy cart.StockPolicy, saver CartSaver) *Session {
	index := make(map[uuid.UUID]catalog.Product, len(catalogue))
	for _, product := range catalogue {
		index[product.ID] = product
	}
	if saver == nil {
		saver = NopSaver{}
	}

	drafts := customization.NewStore()
	s := &Session{
		id:        id,
		catalogue: catalogue,
		index:     index,
		filters:   catalog.DefaultFilterState(),
		sortKey:   enums.SortKeyNewest,
		drafts:    drafts,
		expansion: expansion.NewController(drafts, nil),
		pricing:   pricing,
		saver:     saver,
	}
	s.cart = cart.NewEngine(policy, s.lookupProduct)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) lookupProduct(productID uuid.UUID) (catalog.Product, bool) {
	product, ok := s.index[productID]
	return product, ok
}

// Product resolves a catalogue product by id.
func (s *Session) Product(productID uuid.UUID) (catalog.Product, error) {
	product, ok := s.index[productID]
	if !ok {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown product %s", productID))
	}
	return product, nil
}

// SetFilters replaces the filter state.
func (s *Session) SetFilters(filters catalog.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// ResetFilters restores the wildcard defaults and the default sort.
func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = catalog.DefaultFilterState()
	s.sortKey = enums.SortKeyNewest
}

// SetSort replaces the active sort key.
func (s *Session) SetSort(key enums.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// Filters returns the active filter state and sort key.
func (s *Session) Filters() (catalog.FilterState, enums.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters, s.sortKey
}

// VisibleProducts derives the filtered, sorted catalogue view.
func (s *Session) VisibleProducts() catalog.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.BuildView(s.catalogue, s.filters, s.sortKey)
}

// ToggleCard expands or collapses a product card.
func (s *Session) ToggleCard(productID uuid.UUID) error {
	product, err := s.Product(productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expansion.Toggle(product)
	return nil
}

// CloseExpanded collapses whatever card is expanded.
func (s *Session) CloseExpanded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expansion.Close()
}

// ExpandedCard returns the expanded product id, if any.
func (s *Session) ExpandedCard() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expansion.Expanded()
}

// Draft returns the product's current customization draft.
func (s *Session) Draft(productID uuid.UUID) (customization.Draft, error) {
	product, err := s.Product(productID)
	if err != nil {
		return customization.Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts.Get(product), nil
}

// UpdateCustomization overwrites one draft field and reports whether the
// product is now addable.
func (s *Session) UpdateCustomization(productID uuid.UUID, field customization.Field, value string) (customization.Draft, bool, error) {
	product, err := s.Product(productID)
	if err != nil {
		return customization.Draft{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.drafts.Set(product, field, value); err != nil {
		return customization.Draft{}, false, err
	}
	return s.drafts.Get(product), s.expansion.IsCustomizationComplete(product), nil
}

// AdjustDraftQuantity applies a clamped delta to the draft quantity.
func (s *Session) AdjustDraftQuantity(productID uuid.UUID, delta int) (customization.Draft, error) {
	product, err := s.Product(productID)
	if err != nil {
		return customization.Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts.AdjustQuantity(product, delta), nil
}

// AddToCart moves the product's draft into the cart: completeness gate,
// add-time snapshots, draft reset, expansion close, then a save notify.
func (s *Session) AddToCart(ctx context.Context, productID uuid.UUID) (cart.LineItem, error) {
	product, err := s.Product(productID)
	if err != nil {
		return cart.LineItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.expansion.IsCustomizationComplete(product) {
		return cart.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "choose a size before adding to cart")
	}

	item := s.cart.Add(product, s.drafts.Get(product))
	s.drafts.ResetAfterPurchase(product)
	s.expansion.Close()
	s.saver.Notify(ctx, s.cart.Items())
	return item, nil
}

// RemoveFromCart deletes a line item and notifies the saver.
func (s *Session) RemoveFromCart(ctx context.Context, lineItemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(lineItemID)
	s.saver.Notify(ctx, s.cart.Items())
}

// UpdateCartQuantity adjusts a line item and notifies the saver. Driving the
// quantity to zero removes the item.
func (s *Session) UpdateCartQuantity(ctx context.Context, lineItemID uuid.UUID, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(lineItemID, delta)
	s.saver.Notify(ctx, s.cart.Items())
}

// CartItems returns the cart content in insertion order.
func (s *Session) CartItems() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartSummary derives the cart pricing.
func (s *Session) CartSummary() cart.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Summary(s.pricing)
}

// CartBadge returns the total quantity across line items.
func (s *Session) CartBadge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalQuantity()
}

// Checkout awaits one final flush so the last debounced write is not lost,
// then returns the summary the order proceeds with.
func (s *Session) Checkout(ctx context.Context) (cart.Summary, error) {
	s.mu.Lock()
	if s.cart.Len() == 0 {
		s.mu.Unlock()
		return cart.Summary{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	summary := s.cart.Summary(s.pricing)
	s.mu.Unlock()

	s.saver.Flush(ctx)
	return summary, nil
}

// restore replaces the cart content, filling display snapshots from the
// catalogue. Used when a session is rehydrated from the mirror.
func (s *Session) restore(items []cart.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		if product, ok := s.index[items[i].ProductID]; ok {
			items[i].Name = product.Name
			items[i].ImageURL = product.ImageURL
		}
	}
	s.cart.Replace(items)
}

func (s *Session) close() {
	s.saver.Close()
}
