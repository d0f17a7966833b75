package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/database"
	pkgevents "github.com/ilonagrl/chemical-inventory-manager/pkg/events"
	invdomain "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain"
	domainevents "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/events"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
)

const chemicalColumns = "id, name, cas_number, initial_quantity, expiry_date, notes, created_at"

// ChemicalRepository implements repositories.ChemicalRepository against PostgreSQL.
type ChemicalRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

// NewChemicalRepository returns a ChemicalRepository backed by the given
// connection pool and event bus. The bus is used to publish ChemicalAddedEvents
// in the same transaction as the insert; pass nil to disable publishing.
func NewChemicalRepository(db *database.Database, bus *pkgevents.EventBus) *ChemicalRepository {
	return &ChemicalRepository{db: db, bus: bus}
}

// Verify interface compliance
var _ repositories.ChemicalRepository = (*ChemicalRepository)(nil)

// Save persists a new Chemical and publishes a ChemicalAddedEvent within the
// same transaction. Returns ErrChemicalAlreadyExists on unique name violations.
func (r *ChemicalRepository) Save(ctx context.Context, chemical *models.Chemical) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO chemicals (`+chemicalColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			chemical.ID,
			chemical.Name.String(),
			chemical.CASNumber,
			chemical.InitialQuantity,
			chemical.ExpiryDate,
			chemical.Notes,
			chemical.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return invdomain.ErrChemicalAlreadyExists
			}
			return fmt.Errorf("insert chemical: %w", err)
		}

		if r.bus != nil {
			if err := r.publishAdded(tx, chemical); err != nil {
				return fmt.Errorf("publish chemical added: %w", err)
			}
		}
		return nil
	})
}

// GetByName retrieves a Chemical by its unique name.
// Returns ErrChemicalNotFound if no row matches.
func (r *ChemicalRepository) GetByName(ctx context.Context, name string) (*models.Chemical, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+chemicalColumns+` FROM chemicals WHERE name = $1`, name)

	chemical, err := scanChemical(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrChemicalNotFound
		}
		return nil, fmt.Errorf("query chemical: %w", err)
	}
	return chemical, nil
}

// Find retrieves a paginated list of chemicals in creation order plus the
// total catalog size.
func (r *ChemicalRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.Chemical, int, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+chemicalColumns+` FROM chemicals
		 ORDER BY created_at, name
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query chemicals: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	chemicals, err := collectChemicals(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM chemicals`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count chemicals: %w", err)
	}
	return chemicals, total, nil
}

// FindAll retrieves the full catalog snapshot in creation order.
func (r *ChemicalRepository) FindAll(ctx context.Context) ([]*models.Chemical, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+chemicalColumns+` FROM chemicals ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("query chemicals: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectChemicals(rows)
}

// Exists reports whether a chemical with the given name is cataloged.
func (r *ChemicalRepository) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM chemicals WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check chemical exists: %w", err)
	}
	return exists, nil
}

func (r *ChemicalRepository) publishAdded(tx *sql.Tx, chemical *models.Chemical) error {
	event := domainevents.ChemicalAddedEvent{
		EventID:         uuid.New(),
		Version:         1,
		ChemicalID:      chemical.ID,
		Name:            chemical.Name.String(),
		CASNumber:       chemical.CASNumber,
		InitialQuantity: chemical.InitialQuantity,
		ExpiryDate:      chemical.ExpiryDate,
		OccurredAt:      chemical.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicChemicalAdded, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChemical(row rowScanner) (*models.Chemical, error) {
	var c models.Chemical
	var name string
	if err := row.Scan(
		&c.ID,
		&name,
		&c.CASNumber,
		&c.InitialQuantity,
		&c.ExpiryDate,
		&c.Notes,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Name = models.ChemicalName(name)
	return &c, nil
}

func collectChemicals(rows *sql.Rows) ([]*models.Chemical, error) {
	var chemicals []*models.Chemical
	for rows.Next() {
		c, err := scanChemical(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chemical: %w", err)
		}
		chemicals = append(chemicals, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chemicals: %w", err)
	}
	return chemicals, nil
}
