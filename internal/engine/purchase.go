package engine

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-drop-engine/internal/allowlist"
	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/sale"
	"github.com/feral-file/ff-drop-engine/internal/store/schema"
)

// settlement carries the money breakdown of one purchase in settlement units
type settlement struct {
	unitPrice *uint256.Int
	fee       *uint256.Int
	proceeds  *uint256.Int
	remainder *uint256.Int
}

// Purchase sells quantity items to buyer during the public phase. payment is
// the supplied settlement-unit amount; it must cover the unit price plus the
// protocol fee for the whole batch. Returns the first allocated identifier.
func (e *Engine) Purchase(ctx context.Context, buyer common.Address, quantity uint64, payment *uint256.Int) (uint64, error) {
	if !e.guard.TryAcquire() {
		return 0, domain.ErrSaleInProgress
	}
	defer e.guard.Release()

	var (
		firstID uint64
		settled settlement
	)
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		cfg := drop.Configuration()
		sales := drop.SalesConfiguration()

		if err := sale.CanSell(cfg.EditionSize, drop.Counter, quantity); err != nil {
			return err
		}
		if !e.phases.PublicActive(sales) {
			return domain.ErrSaleInactive
		}

		settled, err = e.settle(ctx, sales.PublicPrice, quantity, payment)
		if err != nil {
			return err
		}

		// the per-address cap counts public mints only, so presale mints
		// never eat into the public allowance. A failed over-quota presale
		// attempt leaves presaleMinted above totalMinted, so the public count
		// clamps at zero instead of underflowing.
		if sales.MaxPerAddress != 0 {
			counters, err := e.store.GetWalletCounter(ctx, drop.ID, buyer.Hex())
			if err != nil {
				return err
			}
			var publicMinted uint64
			if counters != nil && counters.TotalMinted > counters.PresaleMinted {
				publicMinted = counters.TotalMinted - counters.PresaleMinted
			}
			if publicMinted+quantity > uint64(sales.MaxPerAddress) {
				return domain.ErrTooManyForAddress
			}
		}

		ids, err := e.mintBatch(ctx, drop, buyer, quantity)
		if err != nil {
			return err
		}
		firstID = ids[0]

		if _, err := e.store.AddTotalMinted(ctx, drop.ID, buyer.Hex(), quantity); err != nil {
			return err
		}

		drop.SetBalance(new(uint256.Int).Add(drop.BalanceAmount(), settled.proceeds))
		if err := e.store.SaveDrop(ctx, drop); err != nil {
			return err
		}

		if err := e.store.InsertSaleRecord(ctx, &schema.SaleRecord{
			DropID:       drop.ID,
			Kind:         schema.SaleKindPublic,
			Buyer:        buyer.Hex(),
			Quantity:     quantity,
			PricePerItem: schema.AmountString(settled.unitPrice),
			FirstItemID:  firstID,
		}); err != nil {
			return err
		}

		// the external send goes last: everything before it can still roll
		// back, but a paid fee cannot be unpaid
		return e.accountant.PayoutFee(ctx, settled.fee)
	})
	if err != nil {
		return 0, err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:         domain.EventTypeSale,
		Buyer:        buyer.Hex(),
		Quantity:     quantity,
		PricePerItem: settled.unitPrice.Dec(),
		FirstItemID:  firstID,
	})
	e.accountant.Refund(ctx, buyer, settled.remainder)

	return firstID, nil
}

// PresalePurchase sells quantity items to buyer during the presale phase,
// gated by a membership proof binding buyer to (maxQuantity, pricePerItem).
//
// The quota bump commits before the quota comparison and outside the main
// transaction, so a failed over-quota attempt permanently reserves the
// attempted quantity. Intentional: do not reorder.
func (e *Engine) PresalePurchase(
	ctx context.Context,
	buyer common.Address,
	quantity uint64,
	maxQuantity uint64,
	pricePerItem *uint256.Int,
	proof []common.Hash,
	payment *uint256.Int,
) (uint64, error) {
	if !e.guard.TryAcquire() {
		return 0, domain.ErrSaleInProgress
	}
	defer e.guard.Release()

	drop, err := e.mustGetDrop(ctx)
	if err != nil {
		return 0, err
	}
	cfg := drop.Configuration()
	sales := drop.SalesConfiguration()

	if err := sale.CanSell(cfg.EditionSize, drop.Counter, quantity); err != nil {
		return 0, err
	}
	if !e.phases.PresaleActive(sales) {
		return 0, domain.ErrPresaleInactive
	}

	leaf := allowlist.Leaf(buyer, maxQuantity, pricePerItem)
	if !allowlist.Verify(sales.PresaleMerkleRoot, leaf, proof) {
		return 0, domain.ErrNotEligible
	}

	reserved, err := e.store.AddPresaleMinted(ctx, drop.ID, buyer.Hex(), quantity)
	if err != nil {
		return 0, err
	}
	if reserved > maxQuantity {
		return 0, domain.ErrTooManyForAddress
	}

	var (
		firstID uint64
		settled settlement
	)
	err = e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}

		settled, err = e.settle(ctx, pricePerItem, quantity, payment)
		if err != nil {
			return err
		}

		ids, err := e.mintBatch(ctx, drop, buyer, quantity)
		if err != nil {
			return err
		}
		firstID = ids[0]

		if _, err := e.store.AddTotalMinted(ctx, drop.ID, buyer.Hex(), quantity); err != nil {
			return err
		}

		drop.SetBalance(new(uint256.Int).Add(drop.BalanceAmount(), settled.proceeds))
		if err := e.store.SaveDrop(ctx, drop); err != nil {
			return err
		}

		if err := e.store.InsertSaleRecord(ctx, &schema.SaleRecord{
			DropID:       drop.ID,
			Kind:         schema.SaleKindPresale,
			Buyer:        buyer.Hex(),
			Quantity:     quantity,
			PricePerItem: schema.AmountString(settled.unitPrice),
			FirstItemID:  firstID,
		}); err != nil {
			return err
		}

		return e.accountant.PayoutFee(ctx, settled.fee)
	})
	if err != nil {
		return 0, err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:         domain.EventTypePresaleSale,
		Buyer:        buyer.Hex(),
		Quantity:     quantity,
		PricePerItem: settled.unitPrice.Dec(),
		FirstItemID:  firstID,
	})
	e.accountant.Refund(ctx, buyer, settled.remainder)

	return firstID, nil
}

// AdminMint mints quantity items to recipient free of payment and phase
// checks. Owner only; the supply cap still applies.
func (e *Engine) AdminMint(ctx context.Context, caller, recipient common.Address, quantity uint64) (uint64, error) {
	if !e.guard.TryAcquire() {
		return 0, domain.ErrSaleInProgress
	}
	defer e.guard.Release()

	var firstID uint64
	err := e.store.RunInTx(ctx, func(ctx context.Context) error {
		drop, err := e.mustLockDrop(ctx)
		if err != nil {
			return err
		}
		cfg := drop.Configuration()

		if caller != cfg.Owner {
			return domain.ErrNotOwner
		}
		if err := sale.CanSell(cfg.EditionSize, drop.Counter, quantity); err != nil {
			return err
		}

		ids, err := e.mintBatch(ctx, drop, recipient, quantity)
		if err != nil {
			return err
		}
		firstID = ids[0]

		if _, err := e.store.AddTotalMinted(ctx, drop.ID, recipient.Hex(), quantity); err != nil {
			return err
		}
		if err := e.store.SaveDrop(ctx, drop); err != nil {
			return err
		}

		return e.store.InsertSaleRecord(ctx, &schema.SaleRecord{
			DropID:      drop.ID,
			Kind:        schema.SaleKindAdmin,
			Buyer:       recipient.Hex(),
			Quantity:    quantity,
			FirstItemID: firstID,
		})
	})
	if err != nil {
		return 0, err
	}

	e.publish(ctx, &domain.DropEvent{
		Type:        domain.EventTypeAdminMint,
		Buyer:       recipient.Hex(),
		Quantity:    quantity,
		FirstItemID: firstID,
	})

	return firstID, nil
}

// settle validates the payment and computes the money breakdown. The payment
// must cover unit price plus protocol fee for the whole batch; the expected
// total carried by WrongPriceError is expressed in reference units. The
// remainder excludes the fee, which is paid out separately, never refunded.
func (e *Engine) settle(ctx context.Context, referencePrice *uint256.Int, quantity uint64, payment *uint256.Int) (settlement, error) {
	if referencePrice == nil {
		referencePrice = uint256.NewInt(0)
	}
	unitPrice, err := e.accountant.Convert(ctx, referencePrice)
	if err != nil {
		return settlement{}, err
	}
	fee, err := e.accountant.ComputeFee(ctx, quantity)
	if err != nil {
		return settlement{}, err
	}

	q := uint256.NewInt(quantity)
	proceeds := new(uint256.Int).Mul(unitPrice, q)
	required := new(uint256.Int).Add(proceeds, fee)

	if payment == nil || payment.Lt(required) {
		return settlement{}, &domain.WrongPriceError{
			Expected: new(uint256.Int).Mul(referencePrice, q),
		}
	}

	remainder := new(uint256.Int).Sub(payment, required)
	return settlement{
		unitPrice: unitPrice,
		fee:       fee,
		proceeds:  proceeds,
		remainder: remainder,
	}, nil
}
