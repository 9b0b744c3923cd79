package storefront

import (
	"context"
	"sync"
	"testing"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/google/uuid"
)

type stubSaver struct {
	mu       sync.Mutex
	notifies [][]cart.LineItem
	flushes  int
	closes   int
}

func (s *stubSaver) Notify(_ context.Context, items []cart.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifies = append(s.notifies, items)
}

func (s *stubSaver) Flush(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
}

func (s *stubSaver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
}

func (s *stubSaver) notifyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifies)
}

func testCatalogue() []catalog.Product {
	return []catalog.Product{
		{
			ID:           uuid.New(),
			Name:         "Bague or rose",
			Price:        450,
			Category:     "Bagues",
			Material:     "Or rose",
			Stock:        5,
			Customizable: true,
			Sizes:        []enums.ProductSize{enums.ProductSizeS, enums.ProductSizeM},
		},
		{
			ID:       uuid.New(),
			Name:     "Vase ceramique",
			Price:    90,
			Category: "Decoration",
			Material: "Ceramique",
			Stock:    12,
		},
		{
			ID:       uuid.New(),
			Name:     "Collier perles",
			Price:    1200,
			Category: "Colliers",
			Material: "Or",
			Stock:    2,
		},
	}
}

func testPricing() config.PricingConfig {
	return config.PricingConfig{DeliveryPrice: 5.99, FreeShippingThreshold: 100, TaxRate: 0.2}
}

func newTestSession(saver CartSaver) (*Session, []catalog.Product) {
	catalogue := testCatalogue()
	return newSession("sess-1", catalogue, testPricing(), cart.StockPolicyIgnore, saver), catalogue
}

func TestVisibleProductsAppliesFiltersAndSort(t *testing.T) {
	t.Parallel()

	session, catalogue := newTestSession(nil)

	filters := catalog.DefaultFilterState()
	filters.Category = "Bagues"
	session.SetFilters(filters)

	view := session.VisibleProducts()
	if view.FilteredCount != 1 || view.Products[0].ID != catalogue[0].ID {
		t.Fatalf("expected only the ring, got %+v", view.Products)
	}
	if view.TotalCount != len(catalogue) {
		t.Errorf("expected total %d, got %d", len(catalogue), view.TotalCount)
	}

	session.ResetFilters()
	session.SetSort(enums.SortKeyPriceAsc)
	view = session.VisibleProducts()
	if view.Products[0].Price != 90 || view.Products[2].Price != 1200 {
		t.Errorf("expected price ascending order, got %+v", view.Products)
	}
}

func TestToggleCardUnknownProduct(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession(nil)

	err := session.ToggleCard(uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAddToCartGateRejectsIncompleteCustomization(t *testing.T) {
	t.Parallel()

	saver := &stubSaver{}
	session, catalogue := newTestSession(saver)
	ring := catalogue[0]

	_, err := session.AddToCart(context.Background(), ring.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if saver.notifyCount() != 0 {
		t.Error("expected no save notify on rejected add")
	}
}

func TestAddToCartFlow(t *testing.T) {
	t.Parallel()

	saver := &stubSaver{}
	session, catalogue := newTestSession(saver)
	ring := catalogue[0]
	ctx := context.Background()

	if err := session.ToggleCard(ring.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := session.UpdateCustomization(ring.ID, customization.FieldSize, "M"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.AdjustDraftQuantity(ring.ID, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, err := session.AddToCart(ctx, ring.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Quantity != 2 || item.PriceSnapshot != 450 {
		t.Errorf("expected add-time snapshots, got %+v", item)
	}
	if item.Customization == nil || item.Customization.Size != enums.ProductSizeM {
		t.Errorf("expected customization snapshot, got %+v", item.Customization)
	}

	// The draft reset to defaults and the card collapsed.
	draft, err := session.Draft(ring.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Size != enums.ProductSizeUnset || draft.Quantity != 1 {
		t.Errorf("expected fresh draft after purchase, got %+v", draft)
	}
	if _, open := session.ExpandedCard(); open {
		t.Error("expected expansion closed after add")
	}
	if saver.notifyCount() != 1 {
		t.Errorf("expected one save notify, got %d", saver.notifyCount())
	}
}

func TestCartMutationsNotifySaver(t *testing.T) {
	t.Parallel()

	saver := &stubSaver{}
	session, catalogue := newTestSession(saver)
	vase := catalogue[1]
	ctx := context.Background()

	item, err := session.AddToCart(ctx, vase.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session.UpdateCartQuantity(ctx, item.ID, 2)
	session.RemoveFromCart(ctx, item.ID)

	if saver.notifyCount() != 3 {
		t.Errorf("expected 3 notifies, got %d", saver.notifyCount())
	}
	if len(session.CartItems()) != 0 {
		t.Error("expected empty cart after removal")
	}
}

func TestCheckoutFlushesAndDerivesSummary(t *testing.T) {
	t.Parallel()

	saver := &stubSaver{}
	session, catalogue := newTestSession(saver)
	vase := catalogue[1]
	ctx := context.Background()

	if _, err := session.AddToCart(ctx, vase.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := session.Checkout(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Subtotal != 90 || summary.DeliveryFee != 5.99 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if saver.flushes != 1 {
		t.Errorf("expected one flush, got %d", saver.flushes)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession(nil)

	_, err := session.Checkout(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCartBadgeCountsQuantities(t *testing.T) {
	t.Parallel()

	session, catalogue := newTestSession(nil)
	ctx := context.Background()

	item, err := session.AddToCart(ctx, catalogue[1].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session.UpdateCartQuantity(ctx, item.ID, 2)

	if got := session.CartBadge(); got != 3 {
		t.Errorf("expected badge 3, got %d", got)
	}
}
