package ledger

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger records item ownership for one drop. The engine consults it while
// allocating identifiers: an identifier already present, including a burned
// one, is skipped forever.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Mint records ownership of a newly allocated identifier
	Mint(ctx context.Context, owner common.Address, id uint64) error
	// Exists reports whether an identifier has ever been minted
	Exists(ctx context.Context, id uint64) (bool, error)
	// Burned reports whether an identifier has been destroyed
	Burned(ctx context.Context, id uint64) (bool, error)
	// OwnerOf returns the current holder; the zero address when unminted or burned
	OwnerOf(ctx context.Context, id uint64) (common.Address, error)
	// Burn destroys a minted identifier; the identifier stays excluded from
	// allocation forever
	Burn(ctx context.Context, id uint64) error
	// PartitionOffset returns the additive offset isolating this drop's
	// identifier range within the shared collection
	PartitionOffset(ctx context.Context) (uint64, error)
}
