package cartmirror

import (
	"context"
	"errors"
	"time"

	"github.com/Kingleseu/GestionStocke/pkg/db/models"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists the mirrored cart rows. Every sync is a wholesale
// replacement of the session's line items.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Replace swaps the session's mirrored cart for the given rows in one
// transaction. Item ids and positions are taken from the rows as provided.
func (r *Repository) Replace(ctx context.Context, sessionID string, items []models.CartLineItem) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.CartRecord
		err := tx.Where("session_id = ?", sessionID).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = models.CartRecord{ID: uuid.New(), SessionID: sessionID, SyncedAt: now}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&models.CartRecord{}).Where("id = ?", record.ID).Update("synced_at", now).Error; err != nil {
				return err
			}
			if err := tx.Where("cart_id = ?", record.ID).Delete(&models.CartLineItem{}).Error; err != nil {
				return err
			}
		}

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].CartID = record.ID
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace mirrored cart")
	}
	return nil
}

// BySession loads the session's mirrored cart with items in insertion order.
func (r *Repository) BySession(ctx context.Context, sessionID string) (models.CartRecord, error) {
	var record models.CartRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartRecord{}, pkgerrors.New(pkgerrors.CodeNotFound, "no mirrored cart for session")
	}
	if err != nil {
		return models.CartRecord{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mirrored cart")
	}
	return record, nil
}
