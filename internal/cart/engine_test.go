package cart

import (
	"math"
	"testing"

	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	"github.com/google/uuid"
)

func cartProduct(price float64, customizable bool) catalog.Product {
	return catalog.Product{
		ID:           uuid.New(),
		Name:         "Bague saphir",
		Price:        price,
		Category:     "Bagues",
		Material:     "Or blanc",
		Stock:        10,
		Customizable: customizable,
		ImageURL:     "/static/bague.jpg",
	}
}

func draftWith(size enums.ProductSize, quantity int) customization.Draft {
	return customization.Draft{
		Engraving: "A&B",
		Material:  "Or blanc",
		Size:      size,
		Quantity:  quantity,
	}
}

func TestAddSnapshotsProductAndDraft(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	product := cartProduct(450, true)
	draft := draftWith(enums.ProductSizeM, 2)

	item := engine.Add(product, draft)

	if item.ID == (uuid.UUID{}) || item.ID == product.ID {
		t.Error("expected a fresh line item id")
	}
	if item.PriceSnapshot != 450 {
		t.Errorf("expected price snapshot 450, got %v", item.PriceSnapshot)
	}
	if item.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", item.Quantity)
	}
	if item.Customization == nil || item.Customization.Size != enums.ProductSizeM {
		t.Errorf("expected customization snapshot, got %+v", item.Customization)
	}
}

func TestAddNonCustomizableHasNoSnapshot(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	item := engine.Add(cartProduct(90, false), draftWith(enums.ProductSizeUnset, 1))

	if item.Customization != nil {
		t.Errorf("expected nil customization for plain product, got %+v", item.Customization)
	}
}

func TestLineItemIndependence(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	product := cartProduct(450, true)

	first := engine.Add(product, draftWith(enums.ProductSizeS, 1))
	second := engine.Add(product, draftWith(enums.ProductSizeL, 1))

	if first.ID == second.ID {
		t.Error("expected distinct line item ids for the same product")
	}
	if first.Customization.Size != enums.ProductSizeS || second.Customization.Size != enums.ProductSizeL {
		t.Error("expected each line item to keep its own snapshot")
	}

	// The engine copied the draft; mutating our local one changes nothing.
	draft := draftWith(enums.ProductSizeS, 1)
	engine.Add(product, draft)
	draft.Engraving = "changed"
	items := engine.Items()
	if items[2].Customization.Engraving == "changed" {
		t.Error("expected snapshot decoupled from the live draft")
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	engine.Add(cartProduct(100, false), draftWith(enums.ProductSizeUnset, 1))

	engine.Remove(uuid.New())

	if engine.Len() != 1 {
		t.Errorf("expected cart untouched, got %d items", engine.Len())
	}
}

func TestAdjustQuantityFloorRemoves(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	item := engine.Add(cartProduct(100, false), draftWith(enums.ProductSizeUnset, 1))

	engine.AdjustQuantity(item.ID, -1)

	if engine.Len() != 0 {
		t.Errorf("expected item removed when quantity hits zero, got %d items", engine.Len())
	}
}

func TestAdjustQuantityIgnorePolicyHasNoCeiling(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	item := engine.Add(cartProduct(100, false), draftWith(enums.ProductSizeUnset, 1))

	engine.AdjustQuantity(item.ID, 99)

	if got := engine.Items()[0].Quantity; got != 100 {
		t.Errorf("expected quantity 100 under ignore policy, got %d", got)
	}
}

func TestAdjustQuantityClampPolicy(t *testing.T) {
	t.Parallel()

	product := cartProduct(100, false)
	lookup := func(id uuid.UUID) (catalog.Product, bool) {
		if id == product.ID {
			return product, true
		}
		return catalog.Product{}, false
	}

	engine := NewEngine(StockPolicyClamp, lookup)
	item := engine.Add(product, draftWith(enums.ProductSizeUnset, 1))

	engine.AdjustQuantity(item.ID, 99)

	if got := engine.Items()[0].Quantity; got != product.Stock {
		t.Errorf("expected quantity clamped to stock %d, got %d", product.Stock, got)
	}
}

func TestAdjustQuantityClampPolicyZeroStockResolvesToOne(t *testing.T) {
	t.Parallel()

	product := cartProduct(100, false)
	product.Stock = 0
	lookup := func(id uuid.UUID) (catalog.Product, bool) {
		if id == product.ID {
			return product, true
		}
		return catalog.Product{}, false
	}

	engine := NewEngine(StockPolicyClamp, lookup)
	item := engine.Add(product, draftWith(enums.ProductSizeUnset, 2))

	engine.AdjustQuantity(item.ID, 3)
	engine.AdjustQuantity(item.ID, 3)

	if got := engine.Items()[0].Quantity; got != 1 {
		t.Errorf("expected quantity 1 on zero-stock product, got %d", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	first := engine.Add(cartProduct(300, false), draftWith(enums.ProductSizeUnset, 1))
	second := engine.Add(cartProduct(100, false), draftWith(enums.ProductSizeUnset, 1))
	third := engine.Add(cartProduct(200, false), draftWith(enums.ProductSizeUnset, 1))

	items := engine.Items()
	want := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("expected insertion order preserved, item %d is %s", i, items[i].ID)
		}
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummaryFreeDelivery(t *testing.T) {
	t.Parallel()

	cfg := config.PricingConfig{DeliveryPrice: 5.99, FreeShippingThreshold: 100, TaxRate: 0.2}
	engine := NewEngine(StockPolicyIgnore, nil)
	engine.Add(cartProduct(100, false), draftWith(enums.ProductSizeUnset, 2))

	summary := engine.Summary(cfg)

	if !approxEqual(summary.Subtotal, 200) {
		t.Errorf("expected subtotal 200, got %v", summary.Subtotal)
	}
	if !approxEqual(summary.DeliveryFee, 0) {
		t.Errorf("expected free delivery at threshold, got %v", summary.DeliveryFee)
	}
	if !approxEqual(summary.Tax, 40) {
		t.Errorf("expected tax 40, got %v", summary.Tax)
	}
	if !approxEqual(summary.Total, 240) {
		t.Errorf("expected total 240, got %v", summary.Total)
	}
}

func TestSummaryBelowThreshold(t *testing.T) {
	t.Parallel()

	cfg := config.PricingConfig{DeliveryPrice: 5.99, FreeShippingThreshold: 100, TaxRate: 0.2}
	engine := NewEngine(StockPolicyIgnore, nil)
	engine.Add(cartProduct(30, false), draftWith(enums.ProductSizeUnset, 1))

	summary := engine.Summary(cfg)

	if !approxEqual(summary.Subtotal, 30) {
		t.Errorf("expected subtotal 30, got %v", summary.Subtotal)
	}
	if !approxEqual(summary.DeliveryFee, 5.99) {
		t.Errorf("expected delivery 5.99, got %v", summary.DeliveryFee)
	}
	if !approxEqual(summary.Tax, 6) {
		t.Errorf("expected tax 6, got %v", summary.Tax)
	}
	if !approxEqual(summary.Total, 41.99) {
		t.Errorf("expected total 41.99, got %v", summary.Total)
	}
}

func TestTotalQuantity(t *testing.T) {
	t.Parallel()

	engine := NewEngine(StockPolicyIgnore, nil)
	engine.Add(cartProduct(10, false), draftWith(enums.ProductSizeUnset, 2))
	engine.Add(cartProduct(10, false), draftWith(enums.ProductSizeUnset, 3))

	if got := engine.TotalQuantity(); got != 5 {
		t.Errorf("expected total quantity 5, got %d", got)
	}
}

func TestParseStockPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    StockPolicy
		wantErr bool
	}{
		{name: "empty defaults to ignore", value: "", want: StockPolicyIgnore},
		{name: "ignore", value: "ignore", want: StockPolicyIgnore},
		{name: "clamp", value: "clamp", want: StockPolicyClamp},
		{name: "unknown", value: "strict", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStockPolicy(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
