package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

const tripColumns = `id, name, destination, start_date, days, created_at, updated_at`

const dateLayout = "2006-01-02"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteTripRepo implements TripRepo over SQLite. It accepts a DBTX so
// the same code serves both direct and transactional access.
type SQLiteTripRepo struct {
	db db.DBTX
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(conn db.DBTX) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: conn}
}

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (` + tripColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Destination,
		nullableTimeToString(t.StartDate, dateLayout),
		t.Days,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	return r.scanTrip(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTripRepo) List(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTripRow(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *SQLiteTripRepo) Update(ctx context.Context, t *domain.Trip) error {
	query := `UPDATE trips SET name = ?, destination = ?, start_date = ?, days = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Destination,
		nullableTimeToString(t.StartDate, dateLayout),
		t.Days,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("updating trip %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTripRepo) scanTrip(row *sql.Row) (*domain.Trip, error) {
	t, err := scanTripRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip: %w", ErrNotFound)
	}
	return t, err
}

func scanTripRow(row rowScanner) (*domain.Trip, error) {
	var t domain.Trip
	var startDate sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.Name, &t.Destination, &startDate, &t.Days, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}

	t.StartDate = parseNullableTime(startDate, dateLayout)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}
