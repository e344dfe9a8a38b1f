package dealers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestAddDealer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("INSERT INTO dealers").
		WithArgs(int64(200), "City Motors").
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "created_at"}).
			AddRow(int64(1), int64(200), "City Motors", time.Now()))

	d, err := store.Add(context.Background(), 200, "City Motors")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if d.Name != "City Motors" {
		t.Errorf("unexpected dealer: %+v", d)
	}
}

func TestAddDealerDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("INSERT INTO dealers").
		WithArgs(int64(200), "City Motors").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "dealers_telegram_id_key"})

	if _, err := store.Add(context.Background(), 200, "City Motors"); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestIsDealer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("SELECT id, telegram_id, name, created_at").
		WithArgs(int64(200)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "created_at"}).
			AddRow(int64(1), int64(200), "City Motors", time.Now()))

	ok, err := store.IsDealer(context.Background(), 200)
	if err != nil {
		t.Fatalf("is dealer: %v", err)
	}
	if !ok {
		t.Error("expected dealer")
	}

	mock.ExpectQuery("SELECT id, telegram_id, name, created_at").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "created_at"}))

	ok, err = store.IsDealer(context.Background(), 999)
	if err != nil {
		t.Fatalf("is dealer: %v", err)
	}
	if ok {
		t.Error("expected non-dealer")
	}
}

func TestDeleteDealerNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectExec("DELETE FROM dealers").
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := store.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListDealers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	now := time.Now()
	mock.ExpectQuery("SELECT id, telegram_id, name, created_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "name", "created_at"}).
			AddRow(int64(1), int64(200), "City Motors", now).
			AddRow(int64(2), int64(300), "Prime Auto", now))

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 dealers, got %d", len(list))
	}
	if list[1].Name != "Prime Auto" {
		t.Errorf("unexpected dealer order: %+v", list)
	}
}
