package storefront

import (
	"context"
	"testing"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	"github.com/Kingleseu/GestionStocke/pkg/types"
	"github.com/google/uuid"
)

type stubMirror struct {
	items []cart.LineItem
	err   error
	calls int
}

func (m *stubMirror) Sync(context.Context, string, string, []cart.LineItem) error {
	return nil
}

func (m *stubMirror) Restore(context.Context, string) ([]cart.LineItem, error) {
	m.calls++
	return m.items, m.err
}

func TestManagerKeysSessionsByID(t *testing.T) {
	t.Parallel()

	manager, err := NewManager(ManagerOptions{
		Catalogue: testCatalogue(),
		Pricing:   testPricing(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer manager.Close()

	ctx := context.Background()
	first := manager.Session(ctx, "a")
	again := manager.Session(ctx, "a")
	other := manager.Session(ctx, "b")

	if first != again {
		t.Error("expected the same state for the same session id")
	}
	if first == other {
		t.Error("expected distinct states per session id")
	}
	if manager.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", manager.Len())
	}
}

func TestManagerRehydratesFromMirror(t *testing.T) {
	t.Parallel()

	catalogue := testCatalogue()
	stored := cart.LineItem{
		ID:            uuid.New(),
		ProductID:     catalogue[0].ID,
		PriceSnapshot: 450,
		Quantity:      2,
		Customization: &types.CustomizationSnapshot{Material: "Or rose", Size: enums.ProductSizeM},
	}
	mirror := &stubMirror{items: []cart.LineItem{stored}}

	manager, err := NewManager(ManagerOptions{
		Catalogue: catalogue,
		Pricing:   testPricing(),
		Mirror:    mirror,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer manager.Close()

	session := manager.Session(context.Background(), "a")
	items := session.CartItems()
	if len(items) != 1 || items[0].ID != stored.ID {
		t.Fatalf("expected rehydrated cart, got %+v", items)
	}
	if items[0].Name != "Bague or rose" {
		t.Errorf("expected display name filled from catalogue, got %q", items[0].Name)
	}
	if mirror.calls != 1 {
		t.Errorf("expected one restore call, got %d", mirror.calls)
	}

	// Existing sessions never re-restore.
	manager.Session(context.Background(), "a")
	if mirror.calls != 1 {
		t.Errorf("expected restore only on first sight, got %d calls", mirror.calls)
	}
}

func TestManagerCloseClosesSavers(t *testing.T) {
	t.Parallel()

	saver := &stubSaver{}
	manager, err := NewManager(ManagerOptions{
		Catalogue: testCatalogue(),
		Pricing:   testPricing(),
		NewSaver:  func(string) CartSaver { return saver },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.Session(context.Background(), "a")
	manager.Close()
	manager.Close()

	if saver.closes != 1 {
		t.Errorf("expected saver closed once, got %d", saver.closes)
	}
}

func TestManagerServesEmptyCatalogue(t *testing.T) {
	t.Parallel()

	manager, err := NewManager(ManagerOptions{
		Pricing: testPricing(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer manager.Close()

	session := manager.Session(context.Background(), "a")
	view := session.VisibleProducts()

	if view.TotalCount != 0 || len(view.Products) != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
	if view.NoResults {
		t.Error("empty catalogue must not read as a no-results filter state")
	}
}

func TestManagerRejectsUnknownStockPolicy(t *testing.T) {
	t.Parallel()

	_, err := NewManager(ManagerOptions{
		Catalogue:   testCatalogue(),
		Pricing:     testPricing(),
		StockPolicy: cart.StockPolicy("strict"),
	})
	if err == nil {
		t.Fatal("expected error for unknown stock policy")
	}
}
