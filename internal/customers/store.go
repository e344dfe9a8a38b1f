package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the store needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists customers in Postgres.
type Store struct {
	pool PgxPool
}

func NewStore(pool PgxPool) *Store {
	if pool == nil {
		return nil
	}
	return &Store{pool: pool}
}

// Register creates the customer if the telegram id is new and reports
// whether a row was created. Re-registering is a no-op.
func (s *Store) Register(ctx context.Context, telegramID int64, name string) (Customer, bool, error) {
	query := `
		INSERT INTO customers (telegram_id, name)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO NOTHING
		RETURNING id, telegram_id, name, language, registered_at
	`
	var c Customer
	err := s.pool.QueryRow(ctx, query, telegramID, name).
		Scan(&c.ID, &c.TelegramID, &c.Name, &c.Language, &c.RegisteredAt)
	if err == nil {
		return c, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, false, fmt.Errorf("customers: register: %w", err)
	}

	existing, err := s.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return Customer{}, false, err
	}
	return existing, false, nil
}

// GetByTelegramID loads a customer by telegram id.
func (s *Store) GetByTelegramID(ctx context.Context, telegramID int64) (Customer, error) {
	query := `
		SELECT id, telegram_id, name, language, registered_at
		FROM customers
		WHERE telegram_id = $1
	`
	var c Customer
	err := s.pool.QueryRow(ctx, query, telegramID).
		Scan(&c.ID, &c.TelegramID, &c.Name, &c.Language, &c.RegisteredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: get by telegram id: %w", err)
	}
	return c, nil
}

// SetLanguage updates the customer's preferred language.
func (s *Store) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE customers SET language = $2 WHERE telegram_id = $1`,
		telegramID, language)
	if err != nil {
		return fmt.Errorf("customers: set language: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Language returns the customer's preferred language, or the empty
// string when the user has never registered as a customer.
func (s *Store) Language(ctx context.Context, telegramID int64) (string, error) {
	var language string
	err := s.pool.QueryRow(ctx,
		`SELECT language FROM customers WHERE telegram_id = $1`,
		telegramID).Scan(&language)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("customers: get language: %w", err)
	}
	return language, nil
}
