package sale_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/mocks"
	"github.com/feral-file/ff-drop-engine/internal/sale"
)

var (
	windowStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

func phasesAt(t *testing.T, now time.Time) *sale.Phases {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return sale.NewPhases(clock)
}

func TestPublicActive_WithinWindow(t *testing.T) {
	cfg := &domain.SalesConfiguration{PublicStart: windowStart, PublicEnd: windowEnd}

	assert.True(t, phasesAt(t, windowStart.Add(time.Hour)).PublicActive(cfg))
}

func TestPublicActive_HalfOpenBoundaries(t *testing.T) {
	cfg := &domain.SalesConfiguration{PublicStart: windowStart, PublicEnd: windowEnd}

	// inclusive start
	assert.True(t, phasesAt(t, windowStart).PublicActive(cfg))
	// exclusive end
	assert.False(t, phasesAt(t, windowEnd).PublicActive(cfg))
	assert.True(t, phasesAt(t, windowEnd.Add(-time.Nanosecond)).PublicActive(cfg))
}

func TestPublicActive_OutsideWindow(t *testing.T) {
	cfg := &domain.SalesConfiguration{PublicStart: windowStart, PublicEnd: windowEnd}

	assert.False(t, phasesAt(t, windowStart.Add(-time.Minute)).PublicActive(cfg))
	assert.False(t, phasesAt(t, windowEnd.Add(time.Minute)).PublicActive(cfg))
}

func TestPublicActive_DegenerateWindowsInactive(t *testing.T) {
	now := windowStart.Add(time.Hour)

	// unset end
	cfg := &domain.SalesConfiguration{PublicStart: windowStart}
	assert.False(t, phasesAt(t, now).PublicActive(cfg))

	// end before start
	cfg = &domain.SalesConfiguration{PublicStart: windowEnd, PublicEnd: windowStart}
	assert.False(t, phasesAt(t, now).PublicActive(cfg))

	// end equal to start
	cfg = &domain.SalesConfiguration{PublicStart: windowStart, PublicEnd: windowStart}
	assert.False(t, phasesAt(t, now).PublicActive(cfg))
}

func TestPresaleActive_IndependentOfPublicWindow(t *testing.T) {
	cfg := &domain.SalesConfiguration{
		PresaleStart: windowStart,
		PresaleEnd:   windowEnd,
		PublicStart:  windowEnd,
		PublicEnd:    windowEnd.Add(24 * time.Hour),
	}

	p := phasesAt(t, windowStart.Add(time.Hour))
	assert.True(t, p.PresaleActive(cfg))
	assert.False(t, p.PublicActive(cfg))
}

func TestCanSell_CappedEdition(t *testing.T) {
	assert.NoError(t, sale.CanSell(10, 7, 3))
	assert.ErrorIs(t, sale.CanSell(10, 7, 4), domain.ErrSoldOut)
	assert.ErrorIs(t, sale.CanSell(10, 10, 1), domain.ErrSoldOut)
}

func TestCanSell_OpenEditionNeverSoldOut(t *testing.T) {
	assert.NoError(t, sale.CanSell(domain.EditionSizeOpen, 1_000_000, 1_000_000))
}

func TestFinalize_OpenEdition(t *testing.T) {
	cfg := &domain.Configuration{EditionSize: domain.EditionSizeOpen}

	assert.NoError(t, sale.Finalize(cfg, 7))
	assert.Equal(t, uint64(7), cfg.EditionSize)

	// now capped at the sold count
	assert.ErrorIs(t, sale.CanSell(cfg.EditionSize, 7, 1), domain.ErrSoldOut)
}

func TestFinalize_CappedEditionRejected(t *testing.T) {
	cfg := &domain.Configuration{EditionSize: 100}

	assert.ErrorIs(t, sale.Finalize(cfg, 7), domain.ErrNotOpenEdition)
	assert.Equal(t, uint64(100), cfg.EditionSize)
}
