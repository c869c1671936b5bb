package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-drop-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the engine's tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Drop{},
		&schema.WalletCounter{},
		&schema.Item{},
		&schema.SaleRecord{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// txKey carries an open transaction through a context
type txKey struct{}

// ContextWithDB returns a context carrying db as the active transaction.
// Collaborators sharing the database (the built-in ledger) use DBFromContext
// so their writes join the engine's transaction.
func ContextWithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, db)
}

// DBFromContext returns the transaction carried by ctx, or fallback
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

func (s *pgStore) dbFor(ctx context.Context) *gorm.DB {
	return DBFromContext(ctx, s.db).WithContext(ctx)
}

// RunInTx runs fn inside a transaction carried by the context
func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithDB(ctx, tx))
	})
}

// GetDrop retrieves a drop row by slug
func (s *pgStore) GetDrop(ctx context.Context, slug string) (*schema.Drop, error) {
	var drop schema.Drop
	err := s.dbFor(ctx).Where("slug = ?", slug).First(&drop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drop: %w", err)
	}
	return &drop, nil
}

// GetDropForUpdate retrieves and row-locks a drop inside a transaction
func (s *pgStore) GetDropForUpdate(ctx context.Context, slug string) (*schema.Drop, error) {
	var drop schema.Drop
	err := s.dbFor(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slug = ?", slug).
		First(&drop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock drop: %w", err)
	}
	return &drop, nil
}

// CreateDrop inserts the drop row at initialization
func (s *pgStore) CreateDrop(ctx context.Context, drop *schema.Drop) error {
	if err := s.dbFor(ctx).Create(drop).Error; err != nil {
		return fmt.Errorf("failed to create drop: %w", err)
	}
	return nil
}

// SaveDrop persists a mutated drop row
func (s *pgStore) SaveDrop(ctx context.Context, drop *schema.Drop) error {
	drop.UpdatedAt = time.Now().UTC()
	if err := s.dbFor(ctx).Save(drop).Error; err != nil {
		return fmt.Errorf("failed to save drop: %w", err)
	}
	return nil
}

// GetWalletCounter retrieves a buyer's counters
func (s *pgStore) GetWalletCounter(ctx context.Context, dropID uint64, address string) (*schema.WalletCounter, error) {
	var counter schema.WalletCounter
	err := s.dbFor(ctx).
		Where("drop_id = ? AND address = ?", dropID, address).
		First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet counter: %w", err)
	}
	return &counter, nil
}

// AddPresaleMinted atomically adds to a buyer's presale count
func (s *pgStore) AddPresaleMinted(ctx context.Context, dropID uint64, address string, quantity uint64) (uint64, error) {
	return s.addCounter(ctx, dropID, address, "presale_minted", quantity)
}

// AddTotalMinted atomically adds to a buyer's total count
func (s *pgStore) AddTotalMinted(ctx context.Context, dropID uint64, address string, quantity uint64) (uint64, error) {
	return s.addCounter(ctx, dropID, address, "total_minted", quantity)
}

func (s *pgStore) addCounter(ctx context.Context, dropID uint64, address string, column string, quantity uint64) (uint64, error) {
	db := s.dbFor(ctx)

	row := schema.WalletCounter{
		DropID:    dropID,
		Address:   address,
		UpdatedAt: time.Now().UTC(),
	}
	switch column {
	case "presale_minted":
		row.PresaleMinted = quantity
	case "total_minted":
		row.TotalMinted = quantity
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "drop_id"}, {Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       gorm.Expr(fmt.Sprintf("wallet_counters.%s + ?", column), quantity),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("failed to add %s: %w", column, err)
	}

	counter, err := s.GetWalletCounter(ctx, dropID, address)
	if err != nil {
		return 0, err
	}
	if counter == nil {
		return 0, fmt.Errorf("wallet counter missing after upsert")
	}

	if column == "presale_minted" {
		return counter.PresaleMinted, nil
	}
	return counter.TotalMinted, nil
}

// InsertSaleRecord appends a settled sale to the audit log
func (s *pgStore) InsertSaleRecord(ctx context.Context, record *schema.SaleRecord) error {
	if err := s.dbFor(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to insert sale record: %w", err)
	}
	return nil
}

// ListSaleRecords returns sale records for a drop, newest first
func (s *pgStore) ListSaleRecords(ctx context.Context, dropID uint64, limit, offset int) ([]*schema.SaleRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var records []*schema.SaleRecord
	err := s.dbFor(ctx).
		Where("drop_id = ?", dropID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sale records: %w", err)
	}
	return records, nil
}
