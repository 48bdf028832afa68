package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// itemColumns is the canonical SELECT column list for itinerary_items.
const itemColumns = `id, trip_id, day, position, start_time, duration_min,
		name, kind, lat, lng, tags, favorite, notes, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo over SQLite. Derived times are
// never stored; the position column is the only engine-owned rank.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.ItineraryItem) error {
	query := `INSERT INTO itinerary_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.TripID,
		it.Day,
		nullableIntToValue(it.Order),
		it.StartTime,
		it.DurationMin,
		it.Name,
		string(it.Kind),
		it.Lat,
		it.Lng,
		joinTags(it.Tags),
		boolToInt(it.Favorite),
		it.Notes,
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting itinerary item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ItineraryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM itinerary_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	it, err := scanItemRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("itinerary item: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SQLiteItemRepo) ListByTrip(ctx context.Context, tripID string) ([]domain.ItineraryItem, error) {
	// Snapshot shape: day then position ascending, NULL positions last,
	// insertion order as the final tiebreak.
	query := `SELECT ` + itemColumns + ` FROM itinerary_items
		WHERE trip_id = ?
		ORDER BY day, position IS NULL, position, created_at`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("listing itinerary items: %w", err)
	}
	defer rows.Close()
	return scanItemRows(rows)
}

func (r *SQLiteItemRepo) ListFavorites(ctx context.Context) ([]domain.ItineraryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM itinerary_items
		WHERE favorite = 1
		ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing favorite items: %w", err)
	}
	defer rows.Close()
	return scanItemRows(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.ItineraryItem) error {
	query := `UPDATE itinerary_items SET
		day = ?, position = ?, start_time = ?, duration_min = ?,
		name = ?, kind = ?, lat = ?, lng = ?, tags = ?, favorite = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Day,
		nullableIntToValue(it.Order),
		it.StartTime,
		it.DurationMin,
		it.Name,
		string(it.Kind),
		it.Lat,
		it.Lng,
		joinTags(it.Tags),
		boolToInt(it.Favorite),
		it.Notes,
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating itinerary item: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("updating itinerary item %s: %w", it.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM itinerary_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting itinerary item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) ApplyOrderWrites(ctx context.Context, writes []contract.OrderWrite) error {
	query := `UPDATE itinerary_items SET position = ?, updated_at = ? WHERE id = ?`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, w := range writes {
		if _, err := r.db.ExecContext(ctx, query, w.Order, now, w.ItemID); err != nil {
			return fmt.Errorf("writing order %d for item %s: %w", w.Order, w.ItemID, err)
		}
	}
	return nil
}

func scanItemRow(row rowScanner) (domain.ItineraryItem, error) {
	var it domain.ItineraryItem
	var position sql.NullInt64
	var kind, tags string
	var favorite int
	var createdAt, updatedAt string

	err := row.Scan(
		&it.ID, &it.TripID, &it.Day, &position, &it.StartTime, &it.DurationMin,
		&it.Name, &kind, &it.Lat, &it.Lng, &tags, &favorite, &it.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return it, err
		}
		return it, fmt.Errorf("scanning itinerary item: %w", err)
	}

	it.Order = nullableIntFromColumn(position)
	it.Kind = domain.PlaceKind(kind)
	it.Tags = splitTags(tags)
	it.Favorite = intToBool(favorite)
	it.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	it.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return it, nil
}

func scanItemRows(rows *sql.Rows) ([]domain.ItineraryItem, error) {
	var items []domain.ItineraryItem
	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
