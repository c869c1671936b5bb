package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"

	"github.com/feral-file/ff-drop-engine/internal/store"
	"github.com/feral-file/ff-drop-engine/internal/store/schema"
)

type pgLedger struct {
	db     *gorm.DB
	slug   string
	offset uint64
}

// NewPGLedger creates the built-in PostgreSQL ledger for one drop. Writes go
// through store.DBFromContext so they join the engine's transaction when one
// is open.
func NewPGLedger(db *gorm.DB, slug string, offset uint64) Ledger {
	return &pgLedger{db: db, slug: slug, offset: offset}
}

func (l *pgLedger) dbFor(ctx context.Context) *gorm.DB {
	return store.DBFromContext(ctx, l.db).WithContext(ctx)
}

func (l *pgLedger) get(ctx context.Context, id uint64) (*schema.Item, error) {
	var item schema.Item
	err := l.dbFor(ctx).
		Where("drop_slug = ? AND item_id = ?", l.slug, id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (l *pgLedger) Mint(ctx context.Context, owner common.Address, id uint64) error {
	item := schema.Item{
		DropSlug: l.slug,
		ItemID:   id,
		Owner:    owner.Hex(),
	}
	if err := l.dbFor(ctx).Create(&item).Error; err != nil {
		return fmt.Errorf("failed to mint item %d: %w", id, err)
	}
	return nil
}

// Exists reports whether id is currently owned. Burned identifiers report
// false here and true from Burned; they never return to circulation.
func (l *pgLedger) Exists(ctx context.Context, id uint64) (bool, error) {
	item, err := l.get(ctx, id)
	if err != nil {
		return false, err
	}
	return item != nil && !item.Burned, nil
}

func (l *pgLedger) Burned(ctx context.Context, id uint64) (bool, error) {
	item, err := l.get(ctx, id)
	if err != nil {
		return false, err
	}
	return item != nil && item.Burned, nil
}

func (l *pgLedger) OwnerOf(ctx context.Context, id uint64) (common.Address, error) {
	item, err := l.get(ctx, id)
	if err != nil {
		return common.Address{}, err
	}
	if item == nil || item.Burned {
		return common.Address{}, nil
	}
	return common.HexToAddress(item.Owner), nil
}

func (l *pgLedger) Burn(ctx context.Context, id uint64) error {
	res := l.dbFor(ctx).
		Model(&schema.Item{}).
		Where("drop_slug = ? AND item_id = ? AND burned = false", l.slug, id).
		Update("burned", true)
	if res.Error != nil {
		return fmt.Errorf("failed to burn item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item %d not found or already burned", id)
	}
	return nil
}

func (l *pgLedger) PartitionOffset(ctx context.Context) (uint64, error) {
	return l.offset, nil
}
