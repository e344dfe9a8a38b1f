package cars

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the store needs.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists cars and their images in Postgres.
type Store struct {
	pool PgxPool
}

func NewStore(pool PgxPool) *Store {
	if pool == nil {
		return nil
	}
	return &Store{pool: pool}
}

// Add inserts a car with its primary photo in one transaction.
func (s *Store) Add(ctx context.Context, dealerID int64, make, model string, year int, photoFileID string) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cars: begin add: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var carID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO cars (dealer_id, make, model, year, available)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id
	`, dealerID, make, model, year).Scan(&carID)
	if err != nil {
		return 0, fmt.Errorf("cars: insert: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO car_images (car_id, file_id, is_primary)
		VALUES ($1, $2, TRUE)
	`, carID, photoFileID)
	if err != nil {
		return 0, fmt.Errorf("cars: insert image: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("cars: commit add: %w", err)
	}
	return carID, nil
}

// ListAvailable returns a page of available cars joined with the dealer
// name and the primary image.
func (s *Store) ListAvailable(ctx context.Context, limit, offset int) ([]Summary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.make, c.model, c.year, d.name,
			COALESCE(img.file_id, '')
		FROM cars c
		JOIN dealers d ON c.dealer_id = d.id
		LEFT JOIN car_images img ON img.car_id = c.id AND img.is_primary
		WHERE c.available
		ORDER BY c.id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("cars: list available: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var c Summary
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.DealerName, &c.PhotoFileID); err != nil {
			return nil, fmt.Errorf("cars: scan summary: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cars: list rows: %w", err)
	}
	return out, nil
}

// CountAvailable returns the number of available cars, for pagination.
func (s *Store) CountAvailable(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cars WHERE available`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cars: count available: %w", err)
	}
	return n, nil
}

// Get loads a car with its dealer and images.
func (s *Store) Get(ctx context.Context, carID int64) (Details, error) {
	var d Details
	err := s.pool.QueryRow(ctx, `
		SELECT c.id, c.dealer_id, c.make, c.model, c.year, c.available, c.created_at,
			d.name, d.telegram_id
		FROM cars c
		JOIN dealers d ON c.dealer_id = d.id
		WHERE c.id = $1
	`, carID).Scan(
		&d.Car.ID, &d.Car.DealerID, &d.Car.Make, &d.Car.Model, &d.Car.Year,
		&d.Car.Available, &d.Car.CreatedAt, &d.DealerName, &d.DealerTelegramID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Details{}, ErrNotFound
	}
	if err != nil {
		return Details{}, fmt.Errorf("cars: get: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, file_id, is_primary
		FROM car_images
		WHERE car_id = $1
		ORDER BY is_primary DESC, id
	`, carID)
	if err != nil {
		return Details{}, fmt.Errorf("cars: get images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.FileID, &img.IsPrimary); err != nil {
			return Details{}, fmt.Errorf("cars: scan image: %w", err)
		}
		d.Images = append(d.Images, img)
	}
	if err := rows.Err(); err != nil {
		return Details{}, fmt.Errorf("cars: image rows: %w", err)
	}
	return d, nil
}

// ListByDealer returns all cars owned by a dealer.
func (s *Store) ListByDealer(ctx context.Context, dealerID int64) ([]Car, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, dealer_id, make, model, year, available, created_at
		FROM cars
		WHERE dealer_id = $1
		ORDER BY make, model
	`, dealerID)
	if err != nil {
		return nil, fmt.Errorf("cars: list by dealer: %w", err)
	}
	defer rows.Close()

	var out []Car
	for rows.Next() {
		var c Car
		if err := rows.Scan(&c.ID, &c.DealerID, &c.Make, &c.Model, &c.Year, &c.Available, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("cars: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cars: dealer rows: %w", err)
	}
	return out, nil
}

// Delete removes a dealer's car unless it has an open booking.
func (s *Store) Delete(ctx context.Context, dealerID, carID int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cars: begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var owned int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM cars WHERE id = $1 AND dealer_id = $2`,
		carID, dealerID).Scan(&owned)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cars: check ownership: %w", err)
	}

	var open int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM bookings WHERE car_id = $1 AND status <> 'closed'`,
		carID).Scan(&open)
	if err == nil {
		return ErrBooked
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("cars: check open booking: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cars WHERE id = $1`, carID); err != nil {
		return fmt.Errorf("cars: delete: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("cars: commit delete: %w", err)
	}
	return nil
}

// SetPrimaryImage replaces the car's primary photo, inserting one when absent.
func (s *Store) SetPrimaryImage(ctx context.Context, carID int64, fileID string) error {
	var exists int64
	err := s.pool.QueryRow(ctx, `SELECT id FROM cars WHERE id = $1`, carID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cars: check car: %w", err)
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE car_images SET file_id = $2
		WHERE car_id = $1 AND is_primary
	`, carID, fileID)
	if err != nil {
		return fmt.Errorf("cars: update image: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO car_images (car_id, file_id, is_primary)
		VALUES ($1, $2, TRUE)
	`, carID, fileID)
	if err != nil {
		return fmt.Errorf("cars: insert image: %w", err)
	}
	return nil
}
