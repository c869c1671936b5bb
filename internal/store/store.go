package store

import (
	"context"

	"github.com/feral-file/ff-drop-engine/internal/store/schema"
)

// Store defines the interface for database operations. RunInTx is the
// engine's atomicity boundary: everything inside either fully commits or
// fully rolls back.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// RunInTx runs fn inside a transaction; the transaction travels in the context
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	// GetDrop retrieves a drop row by slug; nil when absent
	GetDrop(ctx context.Context, slug string) (*schema.Drop, error)
	// GetDropForUpdate retrieves and row-locks a drop inside a transaction
	GetDropForUpdate(ctx context.Context, slug string) (*schema.Drop, error)
	// CreateDrop inserts the drop row at initialization
	CreateDrop(ctx context.Context, drop *schema.Drop) error
	// SaveDrop persists a mutated drop row
	SaveDrop(ctx context.Context, drop *schema.Drop) error

	// GetWalletCounter retrieves a buyer's counters; nil when absent
	GetWalletCounter(ctx context.Context, dropID uint64, address string) (*schema.WalletCounter, error)
	// AddPresaleMinted atomically adds to a buyer's presale count and returns
	// the updated value
	AddPresaleMinted(ctx context.Context, dropID uint64, address string, quantity uint64) (uint64, error)
	// AddTotalMinted atomically adds to a buyer's total count and returns the
	// updated value
	AddTotalMinted(ctx context.Context, dropID uint64, address string, quantity uint64) (uint64, error)

	// InsertSaleRecord appends a settled sale to the audit log
	InsertSaleRecord(ctx context.Context, record *schema.SaleRecord) error
	// ListSaleRecords returns sale records for a drop, newest first
	ListSaleRecords(ctx context.Context, dropID uint64, limit, offset int) ([]*schema.SaleRecord, error)
}
