// Package sale decides sale-phase activity and supply admissibility. Phases
// carry no stored state: activity is recomputed from the injected clock on
// every check, so there is no transition or expiry machinery to maintain.
package sale

import (
	"time"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/domain"
)

// Phases evaluates the presale and public windows against the current time
type Phases struct {
	clock adapter.Clock
}

// NewPhases creates a phase evaluator backed by the given clock
func NewPhases(clock adapter.Clock) *Phases {
	return &Phases{clock: clock}
}

// PublicActive reports whether the public window [publicStart, publicEnd)
// contains the current time
func (p *Phases) PublicActive(cfg *domain.SalesConfiguration) bool {
	return windowContains(p.clock.Now(), cfg.PublicStart, cfg.PublicEnd)
}

// PresaleActive reports whether the presale window [presaleStart, presaleEnd)
// contains the current time
func (p *Phases) PresaleActive(cfg *domain.SalesConfiguration) bool {
	return windowContains(p.clock.Now(), cfg.PresaleStart, cfg.PresaleEnd)
}

// windowContains implements the half-open interval check. A window whose end
// is unset or not after its start is inactive.
func windowContains(now, start, end time.Time) bool {
	if end.IsZero() || !end.After(start) {
		return false
	}
	return !now.Before(start) && now.Before(end)
}

// CanSell checks the supply cap: selling quantity items when counter items
// have been allocated so far. An edition size of domain.EditionSizeOpen
// disables the cap entirely.
func CanSell(editionSize, counter, quantity uint64) error {
	if editionSize == domain.EditionSizeOpen {
		return nil
	}
	if counter+quantity > editionSize {
		return domain.ErrSoldOut
	}
	return nil
}

// Finalize converts an open edition into a capped one at its current
// allocation count. Irreversible; fails on editions that already have a cap.
// Finalizing before anything sold leaves the edition open: size zero cannot
// express an empty cap.
func Finalize(cfg *domain.Configuration, counter uint64) error {
	if cfg.EditionSize != domain.EditionSizeOpen {
		return domain.ErrNotOpenEdition
	}
	cfg.EditionSize = counter
	return nil
}
