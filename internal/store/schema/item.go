package schema

import (
	"time"
)

// Item is the items table: the built-in ownership ledger. One row per minted
// identifier within a drop's logical collection; rows are never deleted, a
// burn only flips the flag so burned identifiers stay excluded from
// allocation forever.
type Item struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DropSlug scopes the ledger to a logical collection
	DropSlug string `gorm:"column:drop_slug;not null;type:text;uniqueIndex:idx_items_drop_item,priority:1"`
	// ItemID is the allocated identifier (partition offset included)
	ItemID uint64 `gorm:"column:item_id;not null;uniqueIndex:idx_items_drop_item,priority:2"`
	// Owner is the current holder's address
	Owner string `gorm:"column:owner;not null;type:text;index"`
	// Burned marks permanently destroyed items
	Burned bool `gorm:"column:burned;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
