package depletion_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/depletion"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
)

func usageOn(t *testing.T, name string, date time.Time, amount string) *models.UsageEvent {
	t.Helper()
	e, err := models.NewUsageEvent(name, date, decimal.RequireFromString(amount), "")
	if err != nil {
		t.Fatalf("usage event %q: %v", name, err)
	}
	return e
}

func TestComputeTimeSeries_CumulativePerChemical(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	chemicals := []*models.Chemical{chem(t, "Acetone", "100"), chem(t, "Ethanol", "50")}
	events := []*models.UsageEvent{
		usageOn(t, "Ethanol", day(5), "10"),
		usageOn(t, "Acetone", day(3), "20"),
		usageOn(t, "Acetone", day(1), "5"),
		usageOn(t, "Ethanol", day(2), "15"),
	}

	rows := depletion.ComputeTimeSeries(chemicals, events)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	type want struct {
		name       string
		day        int
		cumulative string
		remaining  string
	}
	wants := []want{
		{"Acetone", 1, "5", "95"},
		{"Acetone", 3, "25", "75"},
		{"Ethanol", 2, "15", "35"},
		{"Ethanol", 5, "25", "25"},
	}
	for i, w := range wants {
		r := rows[i]
		if r.Name != w.name || !r.Date.Equal(day(w.day)) {
			t.Errorf("row %d: got (%s, %v), want (%s, day %d)", i, r.Name, r.Date, w.name, w.day)
		}
		if !r.CumulativeUsed.Equal(decimal.RequireFromString(w.cumulative)) {
			t.Errorf("row %d: cumulative got %s, want %s", i, r.CumulativeUsed, w.cumulative)
		}
		if !r.Remaining.Equal(decimal.RequireFromString(w.remaining)) {
			t.Errorf("row %d: remaining got %s, want %s", i, r.Remaining, w.remaining)
		}
	}
}

func TestComputeTimeSeries_DropsOrphans(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	chemicals := []*models.Chemical{chem(t, "Acetone", "100")}
	events := []*models.UsageEvent{
		usageOn(t, "Acetone", day, "10"),
		usageOn(t, "Benzene", day, "99"),
	}

	rows := depletion.ComputeTimeSeries(chemicals, events)

	if len(rows) != 1 {
		t.Fatalf("expected orphan row dropped, got %d rows", len(rows))
	}
	if rows[0].Name != "Acetone" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestComputeTimeSeries_StableForSameDayEvents(t *testing.T) {
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	chemicals := []*models.Chemical{chem(t, "Acetone", "100")}
	events := []*models.UsageEvent{
		usageOn(t, "Acetone", day, "1"),
		usageOn(t, "Acetone", day, "2"),
		usageOn(t, "Acetone", day, "3"),
	}

	rows := depletion.ComputeTimeSeries(chemicals, events)

	// Same-day rows keep ledger order, so the running sum is 1, 3, 6.
	wants := []string{"1", "3", "6"}
	for i, w := range wants {
		if !rows[i].CumulativeUsed.Equal(decimal.RequireFromString(w)) {
			t.Errorf("row %d: cumulative got %s, want %s", i, rows[i].CumulativeUsed, w)
		}
	}
}

func TestComputeTimeSeries_RemainingPercentPerRow(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	chemicals := []*models.Chemical{chem(t, "Acetone", "200")}
	events := []*models.UsageEvent{
		usageOn(t, "Acetone", day, "50"),
		usageOn(t, "Acetone", day.AddDate(0, 0, 1), "100"),
	}

	rows := depletion.ComputeTimeSeries(chemicals, events)

	if rows[0].RemainingPercent != 75.0 {
		t.Errorf("row 0 percent: got %v, want 75.0", rows[0].RemainingPercent)
	}
	if rows[1].RemainingPercent != 25.0 {
		t.Errorf("row 1 percent: got %v, want 25.0", rows[1].RemainingPercent)
	}
}

func TestComputeTimeSeries_EmptyInputs(t *testing.T) {
	if rows := depletion.ComputeTimeSeries(nil, nil); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
