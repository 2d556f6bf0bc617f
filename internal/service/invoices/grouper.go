package invoices

import (
	"sort"

	"github.com/kinoops/backoffice/internal/domain"
)

// GroupPeriods folds a flat list of invoice versions into one group per
// (year, month, period).
//
// The authoritative version of a group is the one flagged active; with
// several flagged, the last one encountered wins, and with none flagged the
// last version seen stands in. A group is never dropped.
//
// Groups come back newest first (year, month, period descending), each with
// its versions sorted by version number descending.
func GroupPeriods(list []domain.Invoice) []domain.PeriodGroup {
	type key struct {
		year, month, period int
	}

	idx := make(map[key]int)
	flagged := make(map[key]bool)

	var groups []domain.PeriodGroup

	for _, inv := range list {
		k := key{inv.Year, inv.Month, inv.Period()}

		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, domain.PeriodGroup{
				Year:   k.year,
				Month:  k.month,
				Period: k.period,
			})
		}

		g := &groups[i]
		g.Versions = append(g.Versions, inv)

		switch {
		case inv.Active:
			g.Active = inv
			flagged[k] = true
		case !flagged[k]:
			// fallback until a flagged version shows up
			g.Active = inv
		}
	}

	for i := range groups {
		vs := groups[i].Versions
		sort.Slice(vs, func(a, b int) bool {
			return vs[a].Version > vs[b].Version
		})
	}

	sort.Slice(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		if ga.Year != gb.Year {
			return ga.Year > gb.Year
		}
		if ga.Month != gb.Month {
			return ga.Month > gb.Month
		}
		return ga.Period > gb.Period
	})

	return groups
}
