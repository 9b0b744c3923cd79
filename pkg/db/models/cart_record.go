package models

import (
	"time"

	"github.com/Kingleseu/GestionStocke/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartRecord is the session-scoped mirror of an in-memory cart, replaced
// wholesale on every sync write. It is a best-effort copy, never the source
// of truth.
type CartRecord struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string         `gorm:"column:session_id;uniqueIndex;not null"`
	Items     []CartLineItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	SyncedAt  time.Time      `gorm:"column:synced_at;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// CartLineItem mirrors one purchasable entry. Position preserves the cart's
// insertion order; Customization is the add-time snapshot, nil for
// non-customizable products.
type CartLineItem struct {
	ID            uuid.UUID                    `gorm:"column:id;type:uuid;primaryKey"`
	CartID        uuid.UUID                    `gorm:"column:cart_id;type:uuid;not null;index"`
	ProductID     uuid.UUID                    `gorm:"column:product_id;type:uuid;not null"`
	Position      int                          `gorm:"column:position;not null"`
	PriceSnapshot decimal.Decimal              `gorm:"column:price_snapshot;type:numeric(12,2);not null"`
	Quantity      int                          `gorm:"column:quantity;not null"`
	Customization *types.CustomizationSnapshot `gorm:"column:customization;type:jsonb;serializer:json"`
	CreatedAt     time.Time                    `gorm:"column:created_at;autoCreateTime"`
}
