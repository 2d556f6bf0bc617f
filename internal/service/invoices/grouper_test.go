package invoices_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kinoops/backoffice/internal/domain"
	"github.com/kinoops/backoffice/internal/service/invoices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inv(year, month, day, version int, active bool) domain.Invoice {
	return domain.Invoice{
		ID:          uuid.New(),
		Year:        year,
		Month:       month,
		PeriodStart: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Version:     version,
		Active:      active,
	}
}

func TestGroupPeriodsSinglePeriod(t *testing.T) {
	list := []domain.Invoice{
		inv(2024, 3, 1, 1, false),
		inv(2024, 3, 1, 2, true),
		inv(2024, 3, 1, 3, false),
	}

	groups := invoices.GroupPeriods(list)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 2024, g.Year)
	assert.Equal(t, 3, g.Month)
	assert.Equal(t, 1, g.Period)

	require.Len(t, g.Versions, len(list))
	assert.Equal(t, 3, g.Versions[0].Version, "versions sorted descending")
	assert.Equal(t, 2, g.Versions[1].Version)
	assert.Equal(t, 1, g.Versions[2].Version)

	assert.Equal(t, 2, g.Active.Version, "flagged version is authoritative")
}

func TestGroupPeriodsHalfMonthsStaySeparate(t *testing.T) {
	list := []domain.Invoice{
		inv(2024, 3, 1, 1, true),
		inv(2024, 3, 16, 1, true),
	}

	groups := invoices.GroupPeriods(list)

	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Period, "period 2 sorts before period 1")
	assert.Equal(t, 1, groups[1].Period)
}

func TestGroupPeriodsSortNewestFirst(t *testing.T) {
	list := []domain.Invoice{
		inv(2024, 1, 1, 1, true),
		inv(2024, 12, 16, 1, true),
		inv(2024, 12, 1, 1, true),
		inv(2024, 5, 16, 1, true),
	}

	groups := invoices.GroupPeriods(list)

	require.Len(t, groups, 4)
	assert.Equal(t, []int{12, 12, 5, 1}, []int{groups[0].Month, groups[1].Month, groups[2].Month, groups[3].Month})
	assert.Equal(t, 2, groups[0].Period)
	assert.Equal(t, 1, groups[1].Period)
}

func TestGroupPeriodsMultipleActiveLastWins(t *testing.T) {
	first := inv(2024, 7, 16, 1, true)
	second := inv(2024, 7, 16, 2, true)

	groups := invoices.GroupPeriods([]domain.Invoice{first, second})

	require.Len(t, groups, 1)
	assert.Equal(t, second.ID, groups[0].Active.ID)
}

func TestGroupPeriodsNoActiveFallsBackToLastSeen(t *testing.T) {
	a := inv(2024, 7, 1, 1, false)
	b := inv(2024, 7, 1, 2, false)

	groups := invoices.GroupPeriods([]domain.Invoice{a, b})

	require.Len(t, groups, 1)
	assert.Equal(t, b.ID, groups[0].Active.ID, "last version seen stands in when none is flagged")
}

func TestGroupPeriodsFlaggedNotOverriddenByLaterUnflagged(t *testing.T) {
	flagged := inv(2024, 7, 1, 2, true)
	later := inv(2024, 7, 1, 3, false)

	groups := invoices.GroupPeriods([]domain.Invoice{flagged, later})

	require.Len(t, groups, 1)
	assert.Equal(t, flagged.ID, groups[0].Active.ID)
	require.Len(t, groups[0].Versions, 2)
	assert.Equal(t, 3, groups[0].Versions[0].Version)
}

func TestGroupPeriodsEmptyInput(t *testing.T) {
	assert.Empty(t, invoices.GroupPeriods(nil))
}
