package catalog

import (
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	"github.com/google/uuid"
)

// Product is one catalogue entry as the storefront sees it: supplied by the
// host at startup, ordered, and immutable for the session.
type Product struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Price        float64             `json:"price"`
	Category     string              `json:"category"`
	Material     string              `json:"material"`
	Stock        int                 `json:"stock"`
	Customizable bool                `json:"customizable"`
	Badge        string              `json:"badge,omitempty"`
	ImageURL     string              `json:"image"`
	Sizes        []enums.ProductSize `json:"sizes,omitempty"`
}

// LowStockThreshold marks products rendered with a low-stock badge.
const LowStockThreshold = 10
