package cars

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestAddCar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(int64(1), "Toyota", "Corolla", 2021).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec("INSERT INTO car_images").
		WithArgs(int64(10), "file-abc").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	carID, err := store.Add(context.Background(), 1, "Toyota", "Corolla", 2021, "file-abc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if carID != 10 {
		t.Errorf("expected car id 10, got %d", carID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAddCarRollsBackOnImageFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(int64(1), "Toyota", "Corolla", 2021).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec("INSERT INTO car_images").
		WithArgs(int64(10), "file-abc").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := store.Add(context.Background(), 1, "Toyota", "Corolla", 2021, "file-abc"); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListAvailable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("SELECT c.id, c.make, c.model, c.year, d.name").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "make", "model", "year", "name", "file_id"}).
			AddRow(int64(1), "Toyota", "Corolla", 2020, "City Motors", "file-1").
			AddRow(int64(2), "Honda", "Civic", 2021, "City Motors", ""))

	list, err := store.ListAvailable(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(list))
	}
	if list[0].DealerName != "City Motors" || list[1].PhotoFileID != "" {
		t.Errorf("unexpected rows: %+v", list)
	}
}

func TestDeleteBookedCar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM cars").
		WithArgs(int64(10), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery("SELECT id FROM bookings").
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(77)))
	mock.ExpectRollback()

	if err := store.Delete(context.Background(), 1, 10); !errors.Is(err, ErrBooked) {
		t.Errorf("expected ErrBooked, got %v", err)
	}
}

func TestDeleteForeignCar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM cars").
		WithArgs(int64(10), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	if err := store.Delete(context.Background(), 2, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetPrimaryImageInsertsWhenMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	store := &Store{pool: mock}
	mock.ExpectQuery("SELECT id FROM cars").
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec("UPDATE car_images").
		WithArgs(int64(10), "file-new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("INSERT INTO car_images").
		WithArgs(int64(10), "file-new").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := store.SetPrimaryImage(context.Background(), 10, "file-new"); err != nil {
		t.Fatalf("set primary image: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
