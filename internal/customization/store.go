package customization

import (
	"fmt"

	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/types"
	"github.com/google/uuid"
)

// MaxEngravingLength is the engraving character limit enforced on Set.
const MaxEngravingLength = 30

// Draft is the live, mutable customization for one product. Absent drafts are
// logically equal to DefaultDraft.
type Draft struct {
	Engraving     string            `json:"engraving"`
	Message       string            `json:"message"`
	Material      string            `json:"material"`
	Size          enums.ProductSize `json:"size"`
	Quantity      int               `json:"quantity"`
	UploadedImage string            `json:"uploaded_image,omitempty"`
}

// DefaultDraft materializes the starting draft for a product. The material
// defaults to the product's base material and quantity to 1.
func DefaultDraft(product catalog.Product) Draft {
	return Draft{
		Material: product.Material,
		Size:     enums.ProductSizeUnset,
		Quantity: 1,
	}
}

// Snapshot copies the draft's purchasable fields into the immutable form the
// cart keeps. The quantity travels separately on the line item.
func (d Draft) Snapshot() types.CustomizationSnapshot {
	return types.CustomizationSnapshot{
		Engraving:     d.Engraving,
		Message:       d.Message,
		Material:      d.Material,
		Size:          d.Size,
		UploadedImage: d.UploadedImage,
	}
}

// Store keeps one draft per product id. It is a plain map with no validation
// beyond field-level normalization; product existence checks belong to the
// caller, which is why every operation takes the full product record. The
// store is not safe for concurrent use on its own; the owning session
// serializes access.
type Store struct {
	drafts map[uuid.UUID]Draft
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{drafts: make(map[uuid.UUID]Draft)}
}

// Get returns the product's draft, materializing the default lazily on first
// access.
func (s *Store) Get(product catalog.Product) Draft {
	draft, ok := s.drafts[product.ID]
	if !ok {
		draft = DefaultDraft(product)
		s.drafts[product.ID] = draft
	}
	return draft
}

// Set overwrites exactly one field of the product's draft, creating the draft
// if absent. Engraving is trimmed to MaxEngravingLength runes. A size value
// must parse against the size scale.
func (s *Store) Set(product catalog.Product, field Field, value string) error {
	draft := s.Get(product)

	switch field {
	case FieldEngraving:
		runes := []rune(value)
		if len(runes) > MaxEngravingLength {
			runes = runes[:MaxEngravingLength]
		}
		draft.Engraving = string(runes)
	case FieldMessage:
		draft.Message = value
	case FieldMaterial:
		draft.Material = value
	case FieldSize:
		size, err := enums.ParseProductSize(value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "set size")
		}
		draft.Size = size
	case FieldUploadedImage:
		draft.UploadedImage = value
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown customization field %q", field))
	}

	s.drafts[product.ID] = draft
	return nil
}

// AdjustQuantity applies a delta to the draft quantity, clamped to
// [1, product.Stock]. Stock is read from the product record at call time.
func (s *Store) AdjustQuantity(product catalog.Product, delta int) Draft {
	draft := s.Get(product)

	// Ceiling before floor, so a zero-stock product resolves to 1.
	quantity := draft.Quantity + delta
	if quantity > product.Stock {
		quantity = product.Stock
	}
	if quantity < 1 {
		quantity = 1
	}

	draft.Quantity = quantity
	s.drafts[product.ID] = draft
	return draft
}

// ResetAfterPurchase replaces the draft with fresh defaults once the product
// has entered the cart.
func (s *Store) ResetAfterPurchase(product catalog.Product) {
	s.drafts[product.ID] = DefaultDraft(product)
}
