package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestBookSuccess(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT available FROM cars").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"available"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(3), int64(7), StatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "start_date"}).AddRow(int64(55), time.Now()))
	mock.ExpectExec("UPDATE cars SET available = FALSE").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	b, err := store.Book(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if b.ID != 55 || b.Status != StatusPending || b.CarID != 7 {
		t.Errorf("unexpected booking: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestBookUnavailableCarDoesNotMutate(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT available FROM cars").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"available"}).AddRow(false))
	mock.ExpectRollback()

	if _, err := store.Book(context.Background(), 3, 7); !errors.Is(err, ErrCarUnavailable) {
		t.Errorf("expected ErrCarUnavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected rollback without inserts: %v", err)
	}
}

func TestBookMissingCar(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT available FROM cars").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"available"}))
	mock.ExpectRollback()

	if _, err := store.Book(context.Background(), 3, 404); !errors.Is(err, ErrCarNotFound) {
		t.Errorf("expected ErrCarNotFound, got %v", err)
	}
}

func TestBookConflictOnCustomerIndex(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT available FROM cars").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"available"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(3), int64(7), StatusPending).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bookings_open_customer_idx"})
	mock.ExpectRollback()

	if _, err := store.Book(context.Background(), 3, 7); !errors.Is(err, ErrCustomerHasOpenBooking) {
		t.Errorf("expected ErrCustomerHasOpenBooking, got %v", err)
	}
}

func TestBookConflictOnCarIndex(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT available FROM cars").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"available"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), int64(3), int64(7), StatusPending).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bookings_open_car_idx"})
	mock.ExpectRollback()

	if _, err := store.Book(context.Background(), 3, 7); !errors.Is(err, ErrCarUnavailable) {
		t.Errorf("expected ErrCarUnavailable, got %v", err)
	}
}

func TestReturnClosesAndFreesCar(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").
		WithArgs(int64(55), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"car_id"}).AddRow(int64(7)))
	mock.ExpectExec("UPDATE cars SET available = TRUE").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := store.Return(context.Background(), 55, 3); err != nil {
		t.Fatalf("return: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestReturnUnknownBooking(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").
		WithArgs(int64(55), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"car_id"}))
	mock.ExpectRollback()

	if err := store.Return(context.Background(), 55, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApproveAlreadyProcessed(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectExec("UPDATE bookings SET status = 'active'").
		WithArgs(int64(55)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := store.Approve(context.Background(), 55); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectFreesCar(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM bookings").
		WithArgs(int64(55)).
		WillReturnRows(pgxmock.NewRows([]string{"car_id"}).AddRow(int64(7)))
	mock.ExpectExec("UPDATE cars SET available = TRUE").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := store.Reject(context.Background(), 55); err != nil {
		t.Fatalf("reject: %v", err)
	}
}

func TestDeleteClosedBookingKeepsCar(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM bookings").
		WithArgs(int64(55)).
		WillReturnRows(pgxmock.NewRows([]string{"car_id", "status"}).AddRow(int64(7), StatusClosed))
	mock.ExpectCommit()

	if err := store.Delete(context.Background(), 55); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("closed booking must not touch cars: %v", err)
	}
}

func TestListPending(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	now := time.Now()
	mock.ExpectQuery("SELECT b.id, b.status, b.start_date").
		WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "status", "start_date", "end_date", "name", "telegram_id", "make", "model", "year",
		}).AddRow(int64(55), StatusPending, now, (*time.Time)(nil), "Alice", int64(100), "Toyota", "Corolla", 2020))

	list, err := store.List(context.Background(), FilterPending, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].CustomerName != "Alice" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestStatsForDealer(t *testing.T) {
	mock := newMock(t)
	store := &Store{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"cars", "total", "active", "completed"}).
			AddRow(3, 10, 2, 8))
	mock.ExpectQuery("SELECT c.id, c.make, c.model, c.year, COUNT").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "make", "model", "year", "count"}).
			AddRow(int64(7), "Toyota", "Corolla", 2020, 6).
			AddRow(int64(8), "Honda", "Civic", 2021, 4))

	stats, err := store.StatsForDealer(context.Background(), 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCars != 3 || stats.ActiveBookings != 2 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if len(stats.Cars) != 2 || stats.Cars[0].Bookings != 6 {
		t.Errorf("unexpected car stats: %+v", stats.Cars)
	}
}
