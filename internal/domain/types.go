package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// EditionSizeOpen marks an open edition: no cap at all. A capped edition of
// size zero is inexpressible on purpose.
const EditionSizeOpen uint64 = 0

// Configuration holds the owner-mutable collection configuration.
// It is written once at initialization and never destroyed.
type Configuration struct {
	// Owner is the address allowed to mutate configuration and admin-mint
	Owner common.Address
	// EditionSize is the maximum number of items sellable; EditionSizeOpen
	// disables the cap until the edition is finalized
	EditionSize uint64
	// RoyaltyBPS is the secondary-sale royalty in basis points
	RoyaltyBPS uint16
	// FundsRecipient receives withdrawn proceeds; the zero address means unset
	FundsRecipient common.Address
}

// SalesConfiguration holds the owner-mutable sale parameters.
// Windows are half-open intervals [start, end); a window whose end is zero or
// not after its start is inactive.
type SalesConfiguration struct {
	// PublicPrice is the per-item price in reference units
	PublicPrice *uint256.Int
	// MaxPerAddress caps public mints per buyer; 0 disables the cap
	MaxPerAddress uint32
	// PresaleMerkleRoot commits to the allow-list; each leaf binds an address
	// to its quota and per-item price
	PresaleMerkleRoot common.Hash

	PublicStart  time.Time
	PublicEnd    time.Time
	PresaleStart time.Time
	PresaleEnd   time.Time
}

// AllocatorState tracks identifier allocation for one deployment.
// Counter is monotonically non-decreasing and never reset; PartitionOffset is
// a fixed additive constant isolating this deployment's identifier range from
// other deployments of the same logical collection.
type AllocatorState struct {
	Counter         uint64
	PartitionOffset uint64
}

// WalletCounters tracks per-buyer mint counts. PresaleMinted never exceeds
// TotalMinted after a successful purchase settles; public mints are derived as
// TotalMinted - PresaleMinted.
type WalletCounters struct {
	PresaleMinted uint64
	TotalMinted   uint64
}

// SaleStatus is the read-only sale snapshot exposed to clients
type SaleStatus struct {
	PresaleActive bool         `json:"presale_active"`
	PublicActive  bool         `json:"public_active"`
	PublicPrice   *uint256.Int `json:"public_price"`
	TotalSold     uint64       `json:"total_sold"`
	// MaxSupply is 0 for open editions
	MaxSupply     uint64 `json:"max_supply"`
	MaxPerAddress uint32 `json:"max_per_address"`
}

// EventType identifies the kind of drop event published to the event stream
type EventType string

const (
	EventTypeSale          EventType = "sale"
	EventTypePresaleSale   EventType = "presale_sale"
	EventTypeAdminMint     EventType = "admin_mint"
	EventTypeConfigChange  EventType = "config_change"
	EventTypeFinalized     EventType = "finalized"
	EventTypeFundsWithdraw EventType = "funds_withdraw"
)

// DropEvent is the normalized event published to NATS after a state change
// commits. Amounts are decimal strings to survive JSON round-trips intact.
type DropEvent struct {
	EventID      string    `json:"event_id"`
	Type         EventType `json:"type"`
	Drop         string    `json:"drop"`
	Buyer        string    `json:"buyer,omitempty"`
	Quantity     uint64    `json:"quantity,omitempty"`
	PricePerItem string    `json:"price_per_item,omitempty"`
	FirstItemID  uint64    `json:"first_item_id,omitempty"`
	Amount       string    `json:"amount,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ZeroAddress is the unset-address sentinel
var ZeroAddress = common.Address{}
