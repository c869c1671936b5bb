package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleKind distinguishes how a batch of items was sold
type SaleKind string

const (
	SaleKindPublic  SaleKind = "public"
	SaleKindPresale SaleKind = "presale"
	SaleKindAdmin   SaleKind = "admin"
)

// SaleRecord is the sale_records table: one row per settled purchase or admin
// mint, the audit log behind the published sale events
type SaleRecord struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// DropID references the drops row
	DropID uint64 `gorm:"column:drop_id;not null;index"`
	// Kind is public, presale or admin
	Kind SaleKind `gorm:"column:kind;not null;type:text"`
	// Buyer is the recipient address
	Buyer string `gorm:"column:buyer;not null;type:text;index"`
	// Quantity is the number of items in the batch
	Quantity uint64 `gorm:"column:quantity;not null"`
	// PricePerItem is the settled per-item price in settlement units (decimal string)
	PricePerItem string `gorm:"column:price_per_item;not null;default:0;type:numeric(78,0)"`
	// FirstItemID is the first allocated identifier of the batch
	FirstItemID uint64 `gorm:"column:first_item_id;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the SaleRecord model
func (SaleRecord) TableName() string {
	return "sale_records"
}

// BeforeCreate assigns the row id
func (r *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
