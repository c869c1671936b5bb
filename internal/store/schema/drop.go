package schema

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/logger"
)

// Drop is the drops table: one row per deployment holding the collection
// configuration, the sales configuration, the allocator state and the held
// settlement balance. Created once at initialization, mutated only by
// owner/admin paths, never deleted.
type Drop struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug identifies the deployment (e.g. "genesis-drop")
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Owner is the address allowed to mutate configuration
	Owner string `gorm:"column:owner;not null;type:text"`
	// EditionSize is the supply cap; 0 means open edition
	EditionSize uint64 `gorm:"column:edition_size;not null;default:0"`
	// RoyaltyBPS is the secondary-sale royalty in basis points
	RoyaltyBPS uint16 `gorm:"column:royalty_bps;not null;default:0"`
	// FundsRecipient receives withdrawn proceeds; empty means unset
	FundsRecipient string `gorm:"column:funds_recipient;type:text"`
	// MetadataBaseURI and ContractURI configure the metadata renderer
	MetadataBaseURI string `gorm:"column:metadata_base_uri;type:text"`
	ContractURI     string `gorm:"column:contract_uri;type:text"`

	// PublicPrice is the per-item price in reference units (decimal string)
	PublicPrice string `gorm:"column:public_price;not null;default:0;type:numeric(78,0)"`
	// MaxPerAddress caps public mints per buyer; 0 disables the cap
	MaxPerAddress uint32 `gorm:"column:max_per_address;not null;default:0"`
	// PresaleMerkleRoot commits to the allow-list (hex string)
	PresaleMerkleRoot string `gorm:"column:presale_merkle_root;type:text"`
	// Phase windows as unix seconds; 0 means unset
	PublicStart  int64 `gorm:"column:public_start;not null;default:0"`
	PublicEnd    int64 `gorm:"column:public_end;not null;default:0"`
	PresaleStart int64 `gorm:"column:presale_start;not null;default:0"`
	PresaleEnd   int64 `gorm:"column:presale_end;not null;default:0"`

	// Counter is the allocator's monotonic counter; never reset
	Counter uint64 `gorm:"column:counter;not null;default:0"`
	// PartitionOffset isolates this deployment's identifier range
	PartitionOffset uint64 `gorm:"column:partition_offset;not null;default:0"`
	// Balance is the held settlement balance (decimal string)
	Balance string `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Drop model
func (Drop) TableName() string {
	return "drops"
}

// Configuration maps the row to the domain configuration
func (d *Drop) Configuration() *domain.Configuration {
	cfg := &domain.Configuration{
		Owner:       common.HexToAddress(d.Owner),
		EditionSize: d.EditionSize,
		RoyaltyBPS:  d.RoyaltyBPS,
	}
	if d.FundsRecipient != "" {
		cfg.FundsRecipient = common.HexToAddress(d.FundsRecipient)
	}
	return cfg
}

// SalesConfiguration maps the row to the domain sales configuration
func (d *Drop) SalesConfiguration() *domain.SalesConfiguration {
	return &domain.SalesConfiguration{
		PublicPrice:       MustAmount(d.PublicPrice),
		MaxPerAddress:     d.MaxPerAddress,
		PresaleMerkleRoot: common.HexToHash(d.PresaleMerkleRoot),
		PublicStart:       unixOrZero(d.PublicStart),
		PublicEnd:         unixOrZero(d.PublicEnd),
		PresaleStart:      unixOrZero(d.PresaleStart),
		PresaleEnd:        unixOrZero(d.PresaleEnd),
	}
}

// ApplySalesConfiguration writes the domain sales configuration back to the row
func (d *Drop) ApplySalesConfiguration(cfg *domain.SalesConfiguration) {
	d.PublicPrice = AmountString(cfg.PublicPrice)
	d.MaxPerAddress = cfg.MaxPerAddress
	d.PresaleMerkleRoot = cfg.PresaleMerkleRoot.Hex()
	d.PublicStart = zeroOrUnix(cfg.PublicStart)
	d.PublicEnd = zeroOrUnix(cfg.PublicEnd)
	d.PresaleStart = zeroOrUnix(cfg.PresaleStart)
	d.PresaleEnd = zeroOrUnix(cfg.PresaleEnd)
}

// BalanceAmount returns the held balance as a uint256
func (d *Drop) BalanceAmount() *uint256.Int {
	return MustAmount(d.Balance)
}

// SetBalance writes a uint256 balance back as a decimal string
func (d *Drop) SetBalance(amount *uint256.Int) {
	d.Balance = AmountString(amount)
}

// MustAmount parses a stored decimal amount. Stored amounts are written by
// AmountString, so a parse failure means the row was corrupted outside the
// service; the corruption is logged loudly and the value reads as zero to
// keep reads total.
func MustAmount(s string) *uint256.Int {
	if s == "" {
		return uint256.NewInt(0)
	}
	amount, err := uint256.FromDecimal(s)
	if err != nil {
		logger.Error(err,
			zap.String("message", "corrupt stored amount, reading as zero"),
			zap.String("stored_amount", s),
		)
		return uint256.NewInt(0)
	}
	return amount
}

// AmountString formats an amount for storage
func AmountString(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.Dec()
}

func unixOrZero(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func zeroOrUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
