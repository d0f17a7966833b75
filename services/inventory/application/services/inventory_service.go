package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ilonagrl/chemical-inventory-manager/pkg/cache"
	invdomain "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/depletion"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
	domainsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/services"
)

// InventoryService orchestrates the chemical catalog, the usage ledger, and
// the derived inventory views. Event publishing is handled by the repository
// layer (outbox pattern). The derived snapshot is served from Redis when
// available and recomputed from Postgres on a miss.
type InventoryService struct {
	chemicals repositories.ChemicalRepository
	usage     repositories.UsageRepository
	cache     *pkgcache.InventoryCache

	now func() time.Time
}

// NewInventoryService returns an InventoryService wired with the given
// repositories and snapshot cache. A nil cache disables caching.
func NewInventoryService(
	chemicals repositories.ChemicalRepository,
	usage repositories.UsageRepository,
	snapCache *pkgcache.InventoryCache,
) *InventoryService {
	return &InventoryService{
		chemicals: chemicals,
		usage:     usage,
		cache:     snapCache,
		now:       time.Now,
	}
}

// AddChemical validates and catalogs a new chemical. The repository publishes
// ChemicalAddedEvent within the same transaction.
func (s *InventoryService) AddChemical(
	ctx context.Context,
	name, casNumber string,
	initialQuantity decimal.Decimal,
	expiryDate time.Time,
	notes string,
) (*models.Chemical, error) {
	chemName, err := models.NewChemicalName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidChemical, err)
	}

	chem, err := models.NewChemical(chemName, casNumber, initialQuantity, expiryDate, notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidChemical, err)
	}

	if err := domainsvcs.ValidateChemicalForCreation(chem); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidChemical, err)
	}

	if err := s.chemicals.Save(ctx, chem); err != nil {
		return nil, fmt.Errorf("save chemical: %w", err)
	}

	s.invalidateSnapshot()
	return chem, nil
}

// LogUsage validates and appends a usage event to the ledger. The chemical
// must already be cataloged; ErrChemicalNotFound otherwise. The repository
// publishes UsageLoggedEvent within the same transaction.
func (s *InventoryService) LogUsage(
	ctx context.Context,
	chemicalName string,
	date time.Time,
	amountUsed decimal.Decimal,
	notes string,
) (*models.UsageEvent, error) {
	event, err := models.NewUsageEvent(chemicalName, date, amountUsed, notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidUsageEvent, err)
	}

	if err := domainsvcs.ValidateUsageForLogging(event); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidUsageEvent, err)
	}

	exists, err := s.chemicals.Exists(ctx, event.ChemicalName)
	if err != nil {
		return nil, fmt.Errorf("check chemical: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("log usage for %q: %w", event.ChemicalName, invdomain.ErrChemicalNotFound)
	}

	if err := s.usage.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save usage event: %w", err)
	}

	s.invalidateSnapshot()
	return event, nil
}

// ListChemicals returns a paginated slice of the catalog plus total count.
func (s *InventoryService) ListChemicals(ctx context.Context, opts repositories.QueryOpts) ([]*models.Chemical, int, error) {
	chems, total, err := s.chemicals.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list chemicals: %w", err)
	}
	return chems, total, nil
}

// ListUsage returns a paginated slice of the ledger, newest first, plus total count.
func (s *InventoryService) ListUsage(ctx context.Context, opts repositories.QueryOpts) ([]*models.UsageEvent, int, error) {
	events, total, err := s.usage.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list usage events: %w", err)
	}
	return events, total, nil
}

// CurrentState returns the derived inventory snapshot using a read-through
// cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), recompute from Postgres.
//  3. Asynchronously warm the cache with the recomputed snapshot.
func (s *InventoryService) CurrentState(ctx context.Context) (*pkgcache.InventorySnapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to recompute.
			_ = err
		}
	}

	snap, err := s.computeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), snap)
		}()
	}
	return snap, nil
}

// RefreshSnapshot recomputes the snapshot and writes it to the cache
// synchronously. Used by the worker to warm the cache after write events.
func (s *InventoryService) RefreshSnapshot(ctx context.Context) (*pkgcache.InventorySnapshot, error) {
	snap, err := s.computeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, snap); err != nil {
			return nil, fmt.Errorf("warm snapshot cache: %w", err)
		}
	}
	return snap, nil
}

// Alerts returns only the alert tiers of the current snapshot.
func (s *InventoryService) Alerts(ctx context.Context) (pkgcache.AlertSummary, error) {
	snap, err := s.CurrentState(ctx)
	if err != nil {
		return pkgcache.AlertSummary{}, err
	}
	return snap.Alerts, nil
}

// UsageHistory returns the cumulative usage time series. When chemicalName is
// non-empty only that chemical's rows are returned; the name must be
// cataloged, ErrChemicalNotFound otherwise. The series is always derived from
// the full ledger, never cached: it grows with every event and is read far
// less often than the snapshot.
func (s *InventoryService) UsageHistory(ctx context.Context, chemicalName string) ([]depletion.TimeSeriesRow, error) {
	chemicalName = strings.TrimSpace(chemicalName)
	if chemicalName != "" {
		exists, err := s.chemicals.Exists(ctx, chemicalName)
		if err != nil {
			return nil, fmt.Errorf("check chemical: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("usage history for %q: %w", chemicalName, invdomain.ErrChemicalNotFound)
		}
	}

	chems, events, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := depletion.ComputeTimeSeries(chems, events)
	if chemicalName == "" {
		return rows, nil
	}

	filtered := make([]depletion.TimeSeriesRow, 0, len(rows))
	for _, row := range rows {
		if row.Name == chemicalName {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (s *InventoryService) loadAll(ctx context.Context) ([]*models.Chemical, []*models.UsageEvent, error) {
	chems, err := s.chemicals.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	events, err := s.usage.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load usage ledger: %w", err)
	}
	return chems, events, nil
}

func (s *InventoryService) computeSnapshot(ctx context.Context) (*pkgcache.InventorySnapshot, error) {
	chems, events, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	report := depletion.ComputeCurrentState(chems, events)
	alerts := depletion.ClassifyAlerts(report.States, s.now())
	return buildSnapshot(report, alerts, s.now()), nil
}

// buildSnapshot converts the depletion report into the JSON-safe read model.
// An undefined remaining percentage becomes a nil pointer instead of NaN.
func buildSnapshot(report depletion.Report, alerts depletion.AlertSet, computedAt time.Time) *pkgcache.InventorySnapshot {
	rows := make([]pkgcache.SnapshotRow, 0, len(report.States))
	for _, st := range report.States {
		row := pkgcache.SnapshotRow{
			Name:            st.Name,
			CASNumber:       st.CASNumber,
			InitialQuantity: st.InitialQuantity,
			ExpiryDate:      st.ExpiryDate,
			Notes:           st.Notes,
			TotalUsed:       st.TotalUsed,
			Remaining:       st.Remaining,
		}
		if st.PercentDefined() {
			pct := st.RemainingPercent
			row.RemainingPercent = &pct
		}
		rows = append(rows, row)
	}

	return &pkgcache.InventorySnapshot{
		Rows: rows,
		Alerts: pkgcache.AlertSummary{
			Red:    alerts.Red,
			Yellow: alerts.Yellow,
		},
		Diagnostics: pkgcache.DiagnosticsSummary{
			DuplicateNames:        report.Diagnostics.DuplicateNames,
			OrphanNames:           report.Diagnostics.OrphanNames,
			OrphanEventCount:      report.Diagnostics.OrphanEventCount,
			UndefinedPercentNames: report.Diagnostics.UndefinedPercentNames,
			SkippedChemicalNames:  report.Diagnostics.SkippedChemicalNames,
			SkippedEventCount:     report.Diagnostics.SkippedEventCount,
		},
		ComputedAt: computedAt.UTC(),
	}
}

// invalidateSnapshot drops the cached snapshot after a write. Best effort:
// the short TTL bounds staleness if the delete fails.
func (s *InventoryService) invalidateSnapshot() {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.cache.Invalidate(ctx)
}
