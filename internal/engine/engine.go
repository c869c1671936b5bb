// Package engine coordinates the sale end to end: phase and supply
// admissibility, presale eligibility, payment validation, identifier
// allocation, fee settlement and event emission, all under a busy guard that
// rejects overlapping operations.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/allocator"
	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/events"
	"github.com/feral-file/ff-drop-engine/internal/fees"
	"github.com/feral-file/ff-drop-engine/internal/ledger"
	"github.com/feral-file/ff-drop-engine/internal/logger"
	"github.com/feral-file/ff-drop-engine/internal/metadata"
	"github.com/feral-file/ff-drop-engine/internal/sale"
	"github.com/feral-file/ff-drop-engine/internal/store"
	"github.com/feral-file/ff-drop-engine/internal/store/schema"
)

// Engine is the purchase coordinator and admin surface for one drop
type Engine struct {
	slug       string
	store      store.Store
	ledger     ledger.Ledger
	phases     *sale.Phases
	accountant *fees.Accountant
	publisher  events.Publisher
	clock      adapter.Clock

	rendererMu sync.RWMutex
	renderer   metadata.Renderer

	guard guard
}

// New creates an engine over its collaborators
func New(
	slug string,
	st store.Store,
	ld ledger.Ledger,
	phases *sale.Phases,
	accountant *fees.Accountant,
	publisher events.Publisher,
	renderer metadata.Renderer,
	clock adapter.Clock,
) *Engine {
	return &Engine{
		slug:       slug,
		store:      st,
		ledger:     ld,
		phases:     phases,
		accountant: accountant,
		publisher:  publisher,
		renderer:   renderer,
		clock:      clock,
	}
}

// InitParams holds the one-time initialization inputs for a drop
type InitParams struct {
	Owner           common.Address
	EditionSize     uint64
	RoyaltyBPS      uint16
	FundsRecipient  common.Address
	MetadataBaseURI string
	ContractURI     string
	Sales           *domain.SalesConfiguration
}

// Initialize creates the drop row. It fails with ErrAlreadyInitialized when
// the drop exists; the row is never destroyed afterward.
func (e *Engine) Initialize(ctx context.Context, params InitParams) error {
	existing, err := e.store.GetDrop(ctx, e.slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAlreadyInitialized
	}

	offset, err := e.ledger.PartitionOffset(ctx)
	if err != nil {
		return fmt.Errorf("failed to read partition offset: %w", err)
	}

	drop := &schema.Drop{
		Slug:            e.slug,
		Owner:           params.Owner.Hex(),
		EditionSize:     params.EditionSize,
		RoyaltyBPS:      params.RoyaltyBPS,
		MetadataBaseURI: params.MetadataBaseURI,
		ContractURI:     params.ContractURI,
		PartitionOffset: offset,
		Balance:         "0",
	}
	if params.FundsRecipient != domain.ZeroAddress {
		drop.FundsRecipient = params.FundsRecipient.Hex()
	}
	if params.Sales != nil {
		drop.ApplySalesConfiguration(params.Sales)
	} else {
		drop.PublicPrice = "0"
	}

	if err := e.store.CreateDrop(ctx, drop); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "drop initialized",
		zap.String("slug", e.slug),
		zap.Uint64("edition_size", params.EditionSize),
		zap.Uint64("partition_offset", offset),
	)
	return nil
}

// EnsureInitialized initializes the drop if it does not exist yet
func (e *Engine) EnsureInitialized(ctx context.Context, params InitParams) error {
	err := e.Initialize(ctx, params)
	if err == domain.ErrAlreadyInitialized {
		return nil
	}
	return err
}

// Status returns the read-only sale snapshot
func (e *Engine) Status(ctx context.Context) (*domain.SaleStatus, error) {
	drop, err := e.mustGetDrop(ctx)
	if err != nil {
		return nil, err
	}

	sales := drop.SalesConfiguration()
	return &domain.SaleStatus{
		PresaleActive: e.phases.PresaleActive(sales),
		PublicActive:  e.phases.PublicActive(sales),
		PublicPrice:   sales.PublicPrice,
		TotalSold:     drop.Counter,
		MaxSupply:     drop.EditionSize,
		MaxPerAddress: sales.MaxPerAddress,
	}, nil
}

// SaleRecords lists settled sales, newest first
func (e *Engine) SaleRecords(ctx context.Context, limit, offset int) ([]*schema.SaleRecord, error) {
	drop, err := e.mustGetDrop(ctx)
	if err != nil {
		return nil, err
	}
	return e.store.ListSaleRecords(ctx, drop.ID, limit, offset)
}

// WalletCounters returns per-buyer mint counts
func (e *Engine) WalletCounters(ctx context.Context, address common.Address) (*domain.WalletCounters, error) {
	drop, err := e.mustGetDrop(ctx)
	if err != nil {
		return nil, err
	}

	row, err := e.store.GetWalletCounter(ctx, drop.ID, address.Hex())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &domain.WalletCounters{}, nil
	}
	return &domain.WalletCounters{
		PresaleMinted: row.PresaleMinted,
		TotalMinted:   row.TotalMinted,
	}, nil
}

// ItemURI resolves an item's metadata URI through the configured renderer
func (e *Engine) ItemURI(id uint64) string {
	e.rendererMu.RLock()
	defer e.rendererMu.RUnlock()
	return e.renderer.ItemURI(id)
}

// CollectionURI resolves the collection metadata URI
func (e *Engine) CollectionURI() string {
	e.rendererMu.RLock()
	defer e.rendererMu.RUnlock()
	return e.renderer.CollectionURI()
}

func (e *Engine) mustGetDrop(ctx context.Context) (*schema.Drop, error) {
	drop, err := e.store.GetDrop(ctx, e.slug)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, domain.ErrDropNotFound
	}
	return drop, nil
}

func (e *Engine) mustLockDrop(ctx context.Context) (*schema.Drop, error) {
	drop, err := e.store.GetDropForUpdate(ctx, e.slug)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, domain.ErrDropNotFound
	}
	return drop, nil
}

// takenCheck adapts the ownership ledger into the allocator's exclusion
// predicate: existing and burned identifiers are both skipped
func (e *Engine) takenCheck() allocator.ExcludeCheck {
	return func(ctx context.Context, id uint64) (bool, error) {
		exists, err := e.ledger.Exists(ctx, id)
		if err != nil || exists {
			return exists, err
		}
		return e.ledger.Burned(ctx, id)
	}
}

// mintBatch allocates quantity identifiers from the drop's allocator state and
// mints each to the recipient, advancing the drop row's counter in place
func (e *Engine) mintBatch(ctx context.Context, drop *schema.Drop, to common.Address, quantity uint64) ([]uint64, error) {
	ids, counter, err := allocator.NextBatch(ctx, drop.Counter, drop.PartitionOffset, quantity, e.takenCheck())
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := e.ledger.Mint(ctx, to, id); err != nil {
			return nil, fmt.Errorf("failed to mint id %d: %w", id, err)
		}
	}
	drop.Counter = counter
	return ids, nil
}

// publish emits a drop event after a commit. Publication is best effort: a
// failure is logged, never surfaced to the caller, since the state change
// already settled.
func (e *Engine) publish(ctx context.Context, event *domain.DropEvent) {
	event.Drop = e.slug
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish drop event",
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
	}
}
