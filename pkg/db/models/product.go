package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the canonical catalogue row. The storefront loads these once at
// startup and treats them as immutable for the session.
type Product struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Category     string          `gorm:"column:category;not null"`
	Material     string          `gorm:"column:material;not null"`
	Stock        int             `gorm:"column:stock;not null;default:0"`
	Customizable bool            `gorm:"column:customizable;not null;default:false"`
	Badge        *string         `gorm:"column:badge"`
	ImageURL     string          `gorm:"column:image_url"`
	Sizes        pq.StringArray  `gorm:"column:sizes;type:text[]"`
	IsActive     bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
