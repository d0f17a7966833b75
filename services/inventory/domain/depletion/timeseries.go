package depletion

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
)

// TimeSeriesRow is one point in the usage history: a single ledger event with
// the running totals for its chemical at that date. One row per (chemical,
// event) pair: the series is not resampled to a uniform grid and gaps between
// events are not interpolated.
type TimeSeriesRow struct {
	Name           string
	Date           time.Time
	AmountUsed     decimal.Decimal
	CumulativeUsed decimal.Decimal
	Remaining      decimal.Decimal
	// RemainingPercent follows the same rule as ItemState: rounded to two
	// decimal places, NaN when the initial quantity is zero.
	RemainingPercent float64
}

// ComputeTimeSeries joins every ledger event to its catalog row (orphans and
// negative amounts are dropped), orders rows by (name, date) ascending, and
// computes per-chemical cumulative usage and remaining quantity at each event.
// The sort is stable, so same-day events keep their ledger order.
func ComputeTimeSeries(chemicals []*models.Chemical, events []*models.UsageEvent) []TimeSeriesRow {
	var diags Diagnostics
	_, known := dedupeCatalog(chemicals, &diags)

	initials := make(map[string]decimal.Decimal, len(known))
	for _, c := range chemicals {
		name := c.Name.String()
		if known[name] {
			if _, ok := initials[name]; !ok {
				initials[name] = c.InitialQuantity
			}
		}
	}

	joined := make([]*models.UsageEvent, 0, len(events))
	for _, e := range events {
		if e.AmountUsed.IsNegative() || !known[e.ChemicalName] {
			continue
		}
		joined = append(joined, e)
	}

	sort.SliceStable(joined, func(i, j int) bool {
		if joined[i].ChemicalName != joined[j].ChemicalName {
			return joined[i].ChemicalName < joined[j].ChemicalName
		}
		return joined[i].Date.Before(joined[j].Date)
	})

	rows := make([]TimeSeriesRow, 0, len(joined))
	cumulative := make(map[string]decimal.Decimal, len(known))
	for _, e := range joined {
		running := cumulative[e.ChemicalName].Add(e.AmountUsed)
		cumulative[e.ChemicalName] = running

		initial := initials[e.ChemicalName]
		remaining := initial.Sub(running)

		rows = append(rows, TimeSeriesRow{
			Name:             e.ChemicalName,
			Date:             e.Date,
			AmountUsed:       e.AmountUsed,
			CumulativeUsed:   running,
			Remaining:        remaining,
			RemainingPercent: remainingPercent(remaining, initial),
		})
	}
	return rows
}
