package schema

import (
	"time"
)

// WalletCounter is the wallet_counters table: per-buyer mint counts for one
// drop. PresaleMinted may temporarily exceed TotalMinted when an over-quota
// presale attempt reserved quota without settling; that reservation is
// deliberate and never rolled back.
type WalletCounter struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DropID references the drops row
	DropID uint64 `gorm:"column:drop_id;not null;uniqueIndex:idx_wallet_counters_drop_address,priority:1"`
	// Address is the buyer's address (normalized hex)
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_wallet_counters_drop_address,priority:2"`
	// PresaleMinted counts presale quota consumed, including failed reservations
	PresaleMinted uint64 `gorm:"column:presale_minted;not null;default:0"`
	// TotalMinted counts items actually minted to the address through sales
	TotalMinted uint64 `gorm:"column:total_minted;not null;default:0"`

	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the WalletCounter model
func (WalletCounter) TableName() string {
	return "wallet_counters"
}
