package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PgxPool is the subset of pgxpool.Pool the store needs.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists bookings in Postgres. The "at most one open booking per
// car / per customer" invariants live in partial unique indexes, so
// concurrent bookings race at the database, not here.
type Store struct {
	pool PgxPool
}

func NewStore(pool PgxPool) *Store {
	if pool == nil {
		return nil
	}
	return &Store{pool: pool}
}

// Book creates a pending booking and flips the car unavailable in one
// transaction. Conflicts surface as ErrCarUnavailable or
// ErrCustomerHasOpenBooking without mutating state.
func (s *Store) Book(ctx context.Context, customerID, carID int64) (Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Booking{}, fmt.Errorf("bookings: begin book: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var available bool
	err = tx.QueryRow(ctx, `SELECT available FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrCarNotFound
	}
	if err != nil {
		return Booking{}, fmt.Errorf("bookings: check car: %w", err)
	}
	if !available {
		return Booking{}, ErrCarUnavailable
	}

	b := Booking{
		Reference:  uuid.New(),
		CustomerID: customerID,
		CarID:      carID,
		Status:     StatusPending,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (reference, customer_id, car_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, start_date
	`, b.Reference, customerID, carID, StatusPending).Scan(&b.ID, &b.StartDate)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return Booking{}, conflict
		}
		return Booking{}, fmt.Errorf("bookings: insert: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE cars SET available = FALSE WHERE id = $1`, carID); err != nil {
		return Booking{}, fmt.Errorf("bookings: mark car unavailable: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("bookings: commit book: %w", err)
	}
	return b, nil
}

// OpenByCustomer returns the customer's open booking, if any.
func (s *Store) OpenByCustomer(ctx context.Context, customerID int64) (Open, error) {
	var o Open
	err := s.pool.QueryRow(ctx, `
		SELECT b.id, b.reference, b.car_id, b.status, b.start_date,
			c.make, c.model, c.year
		FROM bookings b
		JOIN cars c ON b.car_id = c.id
		WHERE b.customer_id = $1 AND b.status <> 'closed'
	`, customerID).Scan(&o.ID, &o.Reference, &o.CarID, &o.Status, &o.StartDate, &o.Make, &o.Model, &o.Year)
	if errors.Is(err, pgx.ErrNoRows) {
		return Open{}, ErrNotFound
	}
	if err != nil {
		return Open{}, fmt.Errorf("bookings: open by customer: %w", err)
	}
	return o, nil
}

// Return closes the customer's booking and frees the car.
func (s *Store) Return(ctx context.Context, bookingID, customerID int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("bookings: begin return: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var carID int64
	err = tx.QueryRow(ctx, `
		UPDATE bookings
		SET status = 'closed', end_date = now()
		WHERE id = $1 AND customer_id = $2 AND status <> 'closed'
		RETURNING car_id
	`, bookingID, customerID).Scan(&carID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("bookings: close: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE cars SET available = TRUE WHERE id = $1`, carID); err != nil {
		return fmt.Errorf("bookings: free car: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("bookings: commit return: %w", err)
	}
	return nil
}

// Approve moves a pending booking to active.
func (s *Store) Approve(ctx context.Context, bookingID int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE bookings SET status = 'active'
		WHERE id = $1 AND status = 'pending'
	`, bookingID)
	if err != nil {
		return fmt.Errorf("bookings: approve: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reject deletes a pending booking and frees the car.
func (s *Store) Reject(ctx context.Context, bookingID int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("bookings: begin reject: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var carID int64
	err = tx.QueryRow(ctx, `
		DELETE FROM bookings
		WHERE id = $1 AND status = 'pending'
		RETURNING car_id
	`, bookingID).Scan(&carID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("bookings: reject: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE cars SET available = TRUE WHERE id = $1`, carID); err != nil {
		return fmt.Errorf("bookings: free car: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("bookings: commit reject: %w", err)
	}
	return nil
}

// Delete removes any booking; when the booking was open the car is freed.
func (s *Store) Delete(ctx context.Context, bookingID int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("bookings: begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var carID int64
	var status string
	err = tx.QueryRow(ctx, `
		DELETE FROM bookings WHERE id = $1
		RETURNING car_id, status
	`, bookingID).Scan(&carID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("bookings: delete: %w", err)
	}

	if status != StatusClosed {
		if _, err := tx.Exec(ctx, `UPDATE cars SET available = TRUE WHERE id = $1`, carID); err != nil {
			return fmt.Errorf("bookings: free car: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("bookings: commit delete: %w", err)
	}
	return nil
}

// List returns admin-facing booking rows for the filter.
func (s *Store) List(ctx context.Context, filter Filter, limit int) ([]Detail, error) {
	query := `
		SELECT b.id, b.status, b.start_date, b.end_date,
			cu.name, cu.telegram_id,
			c.make, c.model, c.year
		FROM bookings b
		JOIN customers cu ON b.customer_id = cu.id
		JOIN cars c ON b.car_id = c.id
	`
	switch filter {
	case FilterPending:
		query += ` WHERE b.status = 'pending'`
	case FilterActive:
		query += ` WHERE b.status = 'active'`
	}
	query += ` ORDER BY b.start_date DESC LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("bookings: list %s: %w", filter, err)
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.Status, &d.StartDate, &d.EndDate,
			&d.CustomerName, &d.CustomerTelegramID, &d.Make, &d.Model, &d.Year); err != nil {
			return nil, fmt.Errorf("bookings: scan detail: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: list rows: %w", err)
	}
	return out, nil
}

// StatsForDealer aggregates booking counts over the dealer's fleet.
func (s *Store) StatsForDealer(ctx context.Context, dealerID int64) (DealerStats, error) {
	var stats DealerStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(DISTINCT c.id),
			COUNT(b.id),
			COUNT(b.id) FILTER (WHERE b.status <> 'closed'),
			COUNT(b.id) FILTER (WHERE b.status = 'closed')
		FROM cars c
		LEFT JOIN bookings b ON b.car_id = c.id
		WHERE c.dealer_id = $1
	`, dealerID).Scan(&stats.TotalCars, &stats.TotalBookings, &stats.ActiveBookings, &stats.CompletedBookings)
	if err != nil {
		return DealerStats{}, fmt.Errorf("bookings: dealer totals: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.make, c.model, c.year, COUNT(b.id)
		FROM cars c
		LEFT JOIN bookings b ON b.car_id = c.id
		WHERE c.dealer_id = $1
		GROUP BY c.id, c.make, c.model, c.year
		ORDER BY COUNT(b.id) DESC
	`, dealerID)
	if err != nil {
		return DealerStats{}, fmt.Errorf("bookings: dealer car stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cs CarStat
		if err := rows.Scan(&cs.CarID, &cs.Make, &cs.Model, &cs.Year, &cs.Bookings); err != nil {
			return DealerStats{}, fmt.Errorf("bookings: scan car stat: %w", err)
		}
		stats.Cars = append(stats.Cars, cs)
	}
	if err := rows.Err(); err != nil {
		return DealerStats{}, fmt.Errorf("bookings: stats rows: %w", err)
	}
	return stats, nil
}

// conflictError maps a unique violation on the open-booking indexes to
// the matching sentinel.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "customer"):
		return ErrCustomerHasOpenBooking
	case strings.Contains(pgErr.ConstraintName, "car"):
		return ErrCarUnavailable
	default:
		return ErrCarUnavailable
	}
}
