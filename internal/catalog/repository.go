package catalog

import (
	"context"

	"github.com/Kingleseu/GestionStocke/pkg/db/models"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"gorm.io/gorm"
)

// Repository loads the catalogue rows the storefront serves for a session.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns the active catalogue newest-first. The result is the
// session's immutable product sequence.
func (r *Repository) ListActive(ctx context.Context) ([]Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromRow(row))
	}
	return products, nil
}

func fromRow(row models.Product) Product {
	p := Product{
		ID:           row.ID,
		Name:         row.Name,
		Price:        row.Price.InexactFloat64(),
		Category:     row.Category,
		Material:     row.Material,
		Stock:        row.Stock,
		Customizable: row.Customizable,
		ImageURL:     row.ImageURL,
	}
	if row.Badge != nil {
		p.Badge = *row.Badge
	}
	for _, raw := range row.Sizes {
		size, err := enums.ParseProductSize(raw)
		if err != nil {
			continue
		}
		p.Sizes = append(p.Sizes, size)
	}
	return p
}
