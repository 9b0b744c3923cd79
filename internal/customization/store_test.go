package customization

import (
	"strings"
	"testing"

	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/google/uuid"
)

func testProduct(stock int) catalog.Product {
	return catalog.Product{
		ID:           uuid.New(),
		Name:         "Collier perle",
		Price:        320,
		Category:     "Colliers",
		Material:     "Argent",
		Stock:        stock,
		Customizable: true,
		Sizes:        []enums.ProductSize{enums.ProductSizeS, enums.ProductSizeM},
	}
}

func TestGetMaterializesDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(5)

	draft := store.Get(product)

	if draft.Material != "Argent" {
		t.Errorf("expected material %q, got %q", "Argent", draft.Material)
	}
	if draft.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", draft.Quantity)
	}
	if draft.Size != enums.ProductSizeUnset {
		t.Errorf("expected unset size, got %q", draft.Size)
	}
	if draft.Engraving != "" || draft.Message != "" || draft.UploadedImage != "" {
		t.Errorf("expected empty text fields, got %+v", draft)
	}
}

func TestSetOverwritesSingleField(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(5)

	if err := store.Set(product, FieldEngraving, "Pour Camille"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(product, FieldSize, "M"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := store.Get(product)
	if draft.Engraving != "Pour Camille" {
		t.Errorf("expected engraving kept, got %q", draft.Engraving)
	}
	if draft.Size != enums.ProductSizeM {
		t.Errorf("expected size M, got %q", draft.Size)
	}
	if draft.Material != "Argent" {
		t.Errorf("expected material untouched, got %q", draft.Material)
	}
}

func TestSetTrimsEngravingToLimit(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(5)

	long := strings.Repeat("a", MaxEngravingLength+10)
	if err := store.Set(product, FieldEngraving, long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := store.Get(product)
	if got := len([]rune(draft.Engraving)); got != MaxEngravingLength {
		t.Errorf("expected engraving trimmed to %d runes, got %d", MaxEngravingLength, got)
	}
}

func TestSetRejectsInvalidSize(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(5)

	err := store.Set(product, FieldSize, "XXL")
	if err == nil {
		t.Fatal("expected error for invalid size")
	}

	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAdjustQuantityClampsToStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stock    int
		deltas   []int
		expected int
	}{
		{name: "increments within stock", stock: 5, deltas: []int{1, 1}, expected: 3},
		{name: "clamps at stock ceiling", stock: 3, deltas: []int{10}, expected: 3},
		{name: "never drops below one", stock: 5, deltas: []int{-4}, expected: 1},
		{name: "recovers after floor", stock: 5, deltas: []int{-10, 2}, expected: 3},
		{name: "zero stock resolves to one", stock: 0, deltas: []int{1, 1, 1}, expected: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore()
			product := testProduct(tc.stock)

			var draft Draft
			for _, delta := range tc.deltas {
				draft = store.AdjustQuantity(product, delta)
			}
			if draft.Quantity != tc.expected {
				t.Errorf("expected quantity %d, got %d", tc.expected, draft.Quantity)
			}
		})
	}
}

func TestAdjustQuantityReadsStockAtCallTime(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(10)

	store.AdjustQuantity(product, 7)

	// Stock dropped between interactions; next adjustment sees the new value.
	product.Stock = 4
	draft := store.AdjustQuantity(product, 1)
	if draft.Quantity != 4 {
		t.Errorf("expected quantity clamped to 4, got %d", draft.Quantity)
	}
}

func TestResetAfterPurchase(t *testing.T) {
	t.Parallel()

	store := NewStore()
	product := testProduct(5)

	_ = store.Set(product, FieldEngraving, "gravure")
	_ = store.Set(product, FieldSize, "L")
	store.AdjustQuantity(product, 2)

	store.ResetAfterPurchase(product)

	draft := store.Get(product)
	if draft != DefaultDraft(product) {
		t.Errorf("expected fresh defaults, got %+v", draft)
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"engraving", "message", "material", "size", "uploadedImage"} {
		if _, err := ParseField(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParseField("color"); err == nil {
		t.Error("expected error for unknown field")
	}
}
