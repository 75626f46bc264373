package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is an inventory item, independent of the organizational schema.
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Codigo      string          `gorm:"size:50;uniqueIndex;not null"`
	Nombre      string          `gorm:"size:100;not null"`
	Descripcion *string         `gorm:"type:text"`
	Unidad      string          `gorm:"size:20;not null"`
	Categoria   string          `gorm:"size:50;not null"`
	Stock       int             `gorm:"not null;default:0"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }

// Disponible reports whether there is stock left.
func (p Producto) Disponible() bool { return p.Stock > 0 }
