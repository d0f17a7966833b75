// Package depletion derives read models from the chemical catalog and the
// usage ledger: the current-state table, the red/yellow alert classification,
// and the per-event time series. It is a pure computation over snapshots the
// caller supplies, with no I/O and no shared state, and is safe to call concurrently
// as long as each call gets its own snapshot.
//
// Bad input rows never abort the whole derivation. Data-quality conditions
// (duplicate catalog names, orphan usage events, zero initial quantities) are
// surfaced in Diagnostics with the affected rows handled as documented below;
// rows that violate ingestion invariants (negative quantities) are excluded
// individually and counted.
package depletion

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
)

// percentScale is the number of decimal places remaining percentages are
// rounded to. Rounding is half away from zero (decimal.Round semantics).
const percentScale = 2

// ItemState is the derived current state of one cataloged chemical.
type ItemState struct {
	Name            string
	CASNumber       string
	InitialQuantity decimal.Decimal
	ExpiryDate      time.Time
	Notes           string
	TotalUsed       decimal.Decimal
	// Remaining is InitialQuantity minus TotalUsed. Over-consumption is a
	// valid, representable state: the value goes negative, unclamped.
	Remaining decimal.Decimal
	// RemainingPercent is 100 * Remaining / InitialQuantity rounded to two
	// decimal places, or NaN when InitialQuantity is zero. Callers must treat
	// NaN as a data-quality flag, never as 0% or 100%.
	RemainingPercent float64
}

// PercentDefined reports whether RemainingPercent carries a real value.
// It is false exactly when the initial quantity was zero.
func (s ItemState) PercentDefined() bool {
	return !math.IsNaN(s.RemainingPercent)
}

// Diagnostics collects the data-quality conditions observed during a
// derivation. None of them is fatal; partial results are always returned.
type Diagnostics struct {
	// DuplicateNames lists catalog names that appeared more than once.
	// Aggregation is first-seen-wins; later duplicates are ignored.
	DuplicateNames []string
	// OrphanNames lists distinct ledger names with no catalog row, in first
	// encounter order. Orphan events are dropped from every aggregate.
	OrphanNames []string
	// OrphanEventCount is the total number of dropped orphan events.
	OrphanEventCount int
	// UndefinedPercentNames lists chemicals whose initial quantity is zero,
	// making the remaining percentage undefined (NaN).
	UndefinedPercentNames []string
	// SkippedChemicalNames lists catalog rows excluded because their initial
	// quantity was negative. This should not occur when rows were ingested
	// through this system's own write path.
	SkippedChemicalNames []string
	// SkippedEventCount is the number of ledger rows excluded for a negative
	// amount used.
	SkippedEventCount int
}

// HasIssues reports whether any data-quality condition was observed.
func (d Diagnostics) HasIssues() bool {
	return len(d.DuplicateNames) > 0 ||
		len(d.OrphanNames) > 0 ||
		len(d.UndefinedPercentNames) > 0 ||
		len(d.SkippedChemicalNames) > 0 ||
		d.SkippedEventCount > 0
}

// Report is the output of ComputeCurrentState: one ItemState per distinct
// catalog name, in catalog order, plus the diagnostics gathered on the way.
type Report struct {
	States      []ItemState
	Diagnostics Diagnostics
}

// ComputeCurrentState joins the usage ledger to the catalog, sums consumption
// per chemical, and derives remaining quantity and percentage for every
// cataloged chemical. An empty ledger yields TotalUsed zero and Remaining equal
// to InitialQuantity for every row. Running it twice on the same snapshots
// yields identical output.
func ComputeCurrentState(chemicals []*models.Chemical, events []*models.UsageEvent) Report {
	var diags Diagnostics

	kept, seen := dedupeCatalog(chemicals, &diags)

	totals := sumUsage(events, seen, &diags)

	states := make([]ItemState, 0, len(kept))
	for _, c := range kept {
		name := c.Name.String()
		total := totals[name] // zero value when the ledger has no rows for it
		remaining := c.InitialQuantity.Sub(total)

		pct := remainingPercent(remaining, c.InitialQuantity)
		if math.IsNaN(pct) {
			diags.UndefinedPercentNames = append(diags.UndefinedPercentNames, name)
		}

		states = append(states, ItemState{
			Name:             name,
			CASNumber:        c.CASNumber,
			InitialQuantity:  c.InitialQuantity,
			ExpiryDate:       c.ExpiryDate,
			Notes:            c.Notes,
			TotalUsed:        total,
			Remaining:        remaining,
			RemainingPercent: pct,
		})
	}

	return Report{States: states, Diagnostics: diags}
}

// dedupeCatalog returns the catalog rows to aggregate (first occurrence per
// name, negative initial quantities excluded) and the set of known names.
func dedupeCatalog(chemicals []*models.Chemical, diags *Diagnostics) ([]*models.Chemical, map[string]bool) {
	kept := make([]*models.Chemical, 0, len(chemicals))
	seen := make(map[string]bool, len(chemicals))
	flaggedDup := make(map[string]bool)

	for _, c := range chemicals {
		name := c.Name.String()
		if c.InitialQuantity.IsNegative() {
			diags.SkippedChemicalNames = append(diags.SkippedChemicalNames, name)
			continue
		}
		if seen[name] {
			if !flaggedDup[name] {
				diags.DuplicateNames = append(diags.DuplicateNames, name)
				flaggedDup[name] = true
			}
			continue
		}
		seen[name] = true
		kept = append(kept, c)
	}
	return kept, seen
}

// sumUsage groups ledger rows by chemical name and sums the amounts used.
// Orphans (names absent from known) and negative amounts are excluded and
// recorded in diags.
func sumUsage(events []*models.UsageEvent, known map[string]bool, diags *Diagnostics) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(known))
	orphanSeen := make(map[string]bool)

	for _, e := range events {
		if e.AmountUsed.IsNegative() {
			diags.SkippedEventCount++
			continue
		}
		if !known[e.ChemicalName] {
			diags.OrphanEventCount++
			if !orphanSeen[e.ChemicalName] {
				orphanSeen[e.ChemicalName] = true
				diags.OrphanNames = append(diags.OrphanNames, e.ChemicalName)
			}
			continue
		}
		totals[e.ChemicalName] = totals[e.ChemicalName].Add(e.AmountUsed)
	}
	return totals
}

// remainingPercent computes 100 * remaining / initial rounded half away from
// zero to two decimal places, or NaN when initial is zero.
func remainingPercent(remaining, initial decimal.Decimal) float64 {
	if initial.IsZero() {
		return math.NaN()
	}
	pct := remaining.Mul(decimal.NewFromInt(100)).Div(initial).Round(percentScale)
	f, _ := pct.Float64()
	return f
}
