package dealers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PgxPool is the subset of pgxpool.Pool the store needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists dealers in Postgres.
type Store struct {
	pool PgxPool
}

func NewStore(pool PgxPool) *Store {
	if pool == nil {
		return nil
	}
	return &Store{pool: pool}
}

// Add registers a new dealer.
func (s *Store) Add(ctx context.Context, telegramID int64, name string) (Dealer, error) {
	query := `
		INSERT INTO dealers (telegram_id, name)
		VALUES ($1, $2)
		RETURNING id, telegram_id, name, created_at
	`
	var d Dealer
	err := s.pool.QueryRow(ctx, query, telegramID, name).
		Scan(&d.ID, &d.TelegramID, &d.Name, &d.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Dealer{}, ErrExists
		}
		return Dealer{}, fmt.Errorf("dealers: add: %w", err)
	}
	return d, nil
}

// GetByTelegramID loads a dealer by telegram id.
func (s *Store) GetByTelegramID(ctx context.Context, telegramID int64) (Dealer, error) {
	query := `
		SELECT id, telegram_id, name, created_at
		FROM dealers
		WHERE telegram_id = $1
	`
	var d Dealer
	err := s.pool.QueryRow(ctx, query, telegramID).
		Scan(&d.ID, &d.TelegramID, &d.Name, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Dealer{}, ErrNotFound
	}
	if err != nil {
		return Dealer{}, fmt.Errorf("dealers: get by telegram id: %w", err)
	}
	return d, nil
}

// IsDealer reports whether the telegram id belongs to a registered dealer.
func (s *Store) IsDealer(ctx context.Context, telegramID int64) (bool, error) {
	_, err := s.GetByTelegramID(ctx, telegramID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all dealers.
func (s *Store) List(ctx context.Context) ([]Dealer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, telegram_id, name, created_at
		FROM dealers
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("dealers: list: %w", err)
	}
	defer rows.Close()

	var out []Dealer
	for rows.Next() {
		var d Dealer
		if err := rows.Scan(&d.ID, &d.TelegramID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("dealers: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dealers: list rows: %w", err)
	}
	return out, nil
}

// Get loads a dealer by id.
func (s *Store) Get(ctx context.Context, id int64) (Dealer, error) {
	query := `
		SELECT id, telegram_id, name, created_at
		FROM dealers
		WHERE id = $1
	`
	var d Dealer
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&d.ID, &d.TelegramID, &d.Name, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Dealer{}, ErrNotFound
	}
	if err != nil {
		return Dealer{}, fmt.Errorf("dealers: get: %w", err)
	}
	return d, nil
}

// Delete removes a dealer. Their cars, images, and bookings go with them
// through foreign-key cascades.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM dealers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("dealers: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
