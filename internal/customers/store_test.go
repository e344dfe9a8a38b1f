package customers

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestRegisterNewCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	now := time.Now()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(int64(100), "Alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "language", "registered_at"}).
			AddRow(int64(1), int64(100), "Alice", "en", now))

	c, created, err := store.Register(context.Background(), 100, "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !created {
		t.Error("expected created=true for new customer")
	}
	if c.Name != "Alice" || c.Language != "en" {
		t.Errorf("unexpected customer: %+v", c)
	}
}

func TestRegisterExistingCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	now := time.Now()
	// ON CONFLICT DO NOTHING yields no row for an existing customer.
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(int64(100), "Alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "language", "registered_at"}))
	mock.ExpectQuery("SELECT id, telegram_id, name, language, registered_at").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "language", "registered_at"}).
			AddRow(int64(1), int64(100), "Alice", "ru", now))

	c, created, err := store.Register(context.Background(), 100, "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created {
		t.Error("expected created=false for existing customer")
	}
	if c.Language != "ru" {
		t.Errorf("expected stored language preserved, got %q", c.Language)
	}
}

func TestSetLanguageUnknownCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectExec("UPDATE customers SET language").
		WithArgs(int64(5), "ru").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := store.SetLanguage(context.Background(), 5, "ru"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLanguageMissingCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("SELECT language FROM customers").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"language"}))

	lang, err := store.Language(context.Background(), 9)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if lang != "" {
		t.Errorf("expected empty language for unknown user, got %q", lang)
	}
}
