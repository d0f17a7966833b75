package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/database"
	pkgevents "github.com/ilonagrl/chemical-inventory-manager/pkg/events"
	domainevents "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/events"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
)

const usageColumns = "id, chemical_name, used_on, amount_used, notes, created_at"

// UsageRepository implements repositories.UsageRepository against PostgreSQL.
// The ledger is append-only: there is deliberately no update or delete path.
type UsageRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

// NewUsageRepository returns a UsageRepository backed by the given connection
// pool and event bus. Pass a nil bus to disable event publishing.
func NewUsageRepository(db *database.Database, bus *pkgevents.EventBus) *UsageRepository {
	return &UsageRepository{db: db, bus: bus}
}

// Verify interface compliance
var _ repositories.UsageRepository = (*UsageRepository)(nil)

// Save appends a UsageEvent to the ledger and publishes a UsageLoggedEvent
// within the same transaction.
func (r *UsageRepository) Save(ctx context.Context, event *models.UsageEvent) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO usage_events (`+usageColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			event.ID,
			event.ChemicalName,
			event.Date,
			event.AmountUsed,
			event.Notes,
			event.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert usage event: %w", err)
		}

		if r.bus != nil {
			if err := r.publishLogged(tx, event); err != nil {
				return fmt.Errorf("publish usage logged: %w", err)
			}
		}
		return nil
	})
}

// Find retrieves a paginated list of usage events, newest first, plus the
// total ledger size.
func (r *UsageRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.UsageEvent, int, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+usageColumns+` FROM usage_events
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query usage events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	events, err := collectUsageEvents(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM usage_events`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count usage events: %w", err)
	}
	return events, total, nil
}

// FindAll retrieves the full ledger snapshot in append order.
func (r *UsageRepository) FindAll(ctx context.Context) ([]*models.UsageEvent, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+usageColumns+` FROM usage_events ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query usage events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectUsageEvents(rows)
}

func (r *UsageRepository) publishLogged(tx *sql.Tx, event *models.UsageEvent) error {
	evt := domainevents.UsageLoggedEvent{
		EventID:      uuid.New(),
		Version:      1,
		UsageID:      event.ID,
		ChemicalName: event.ChemicalName,
		Date:         event.Date,
		AmountUsed:   event.AmountUsed,
		OccurredAt:   event.CreatedAt,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", evt.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicUsageLogged, msg)
}

func collectUsageEvents(rows *sql.Rows) ([]*models.UsageEvent, error) {
	var events []*models.UsageEvent
	for rows.Next() {
		var e models.UsageEvent
		if err := rows.Scan(
			&e.ID,
			&e.ChemicalName,
			&e.Date,
			&e.AmountUsed,
			&e.Notes,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usage event: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage events: %w", err)
	}
	return events, nil
}
