package engine

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/metadata"
	"github.com/feral-file/ff-drop-engine/internal/sale"
)

// Withdraw transfers the entire held settlement balance to the funds
// recipient. Callable by the recipient or the owner; the transfer runs under
// the bounded send budget and a failure rolls the whole withdrawal back.
func (e *Engine) Withdraw(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	if !e.guard.TryAcquire() {
		return nil, domain.ErrSaleInProgress
	}
	defer e.guard.Release()

	var amount *uint256.Int
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		cfg := drop.Configuration()

		if cfg.FundsRecipient == domain.ZeroAddress {
			return domain.ErrFundsRecipientNotSet
		}
		if caller != cfg.FundsRecipient && caller != cfg.Owner {
			return domain.ErrWithdrawNotAllowed
		}

		amount = drop.BalanceAmount()
		drop.SetBalance(uint256.NewInt(0))
		if err := e.store.SaveDrop(ctx, drop); err != nil {
			return err
		}

		return e.accountant.Transfer(ctx, cfg.FundsRecipient, amount)
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:   domain.EventTypeFundsWithdraw,
		Amount: amount.Dec(),
	})
	return amount, nil
}

// FinalizeOpenEdition converts an open edition into a capped one at its
// current allocation count. Owner only, irreversible. Returns the new cap.
func (e *Engine) FinalizeOpenEdition(ctx context.Context, caller common.Address) (uint64, error) {
	var size uint64
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		cfg := drop.Configuration()

		if caller != cfg.Owner {
			return domain.ErrNotOwner
		}
		if err := sale.Finalize(cfg, drop.Counter); err != nil {
			return err
		}

		drop.EditionSize = cfg.EditionSize
		size = cfg.EditionSize
		return e.store.SaveDrop(ctx, drop)
	})
	if err != nil {
		return 0, err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:     domain.EventTypeFinalized,
		Quantity: size,
	})
	return size, nil
}

// SetSalesConfiguration replaces the sale parameters. Owner only, atomic.
func (e *Engine) SetSalesConfiguration(ctx context.Context, caller common.Address, cfg *domain.SalesConfiguration) error {
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		if caller != drop.Configuration().Owner {
			return domain.ErrNotOwner
		}

		drop.ApplySalesConfiguration(cfg)
		return e.store.SaveDrop(ctx, drop)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:   domain.EventTypeConfigChange,
		Detail: "sales_configuration",
	})
	return nil
}

// SetFundsRecipient replaces the withdrawal destination. Owner only.
func (e *Engine) SetFundsRecipient(ctx context.Context, caller, recipient common.Address) error {
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		if caller != drop.Configuration().Owner {
			return domain.ErrNotOwner
		}

		drop.FundsRecipient = recipient.Hex()
		return e.store.SaveDrop(ctx, drop)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:   domain.EventTypeConfigChange,
		Detail: "funds_recipient",
	})
	return nil
}

// SetMetadataRenderer swaps the metadata renderer and persists its URIs.
// Owner only. Sale and allocation state are untouched.
func (e *Engine) SetMetadataRenderer(ctx context.Context, caller common.Address, baseURI, contractURI string) error {
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		if caller != drop.Configuration().Owner {
			return domain.ErrNotOwner
		}

		drop.MetadataBaseURI = baseURI
		drop.ContractURI = contractURI
		return e.store.SaveDrop(ctx, drop)
	})
	if err != nil {
		return err
	}

	e.rendererMu.Lock()
	e.renderer = metadata.NewBaseRenderer(baseURI, contractURI)
	e.rendererMu.Unlock()

	e.publish(ctx, &domain.DropEvent{
		Type:   domain.EventTypeConfigChange,
		Detail: "metadata_renderer",
	})
	return nil
}
