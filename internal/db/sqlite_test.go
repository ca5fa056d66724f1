package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/consulta/internal/appointment"
)

func testRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testAppt(t *testing.T, name string, hour int) *appointment.Appointment {
	t.Helper()
	start := time.Date(2030, 3, 4, hour, 0, 0, 0, time.UTC)
	a, err := appointment.New(name, appointment.TypeFollowUp, start, start.Add(30*time.Minute), false)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestCreateAndGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	a.PatientPhone = "555-0101"
	a.Notes = "prefers mornings"

	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for existing appointment")
	}
	if got.PatientName != "Ana Torres" || got.PatientPhone != "555-0101" || got.Notes != "prefers mornings" {
		t.Errorf("Get returned %+v", got)
	}
	if !got.Start.Equal(a.Start) || !got.End.Equal(a.End) {
		t.Errorf("times: got [%v, %v], want [%v, %v]", got.Start, got.End, a.Start, a.End)
	}
}

func TestGetMissing(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.Get(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get for missing id = %+v, want nil", got)
	}
}

func TestListByDateRange(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	inRange := testAppt(t, "Ana Torres", 9)
	alsoIn := testAppt(t, "Luis Vega", 14)
	outside := testAppt(t, "Marta Ruiz", 9)
	outside.Start = outside.Start.AddDate(0, 0, 10)
	outside.End = outside.End.AddDate(0, 0, 10)

	for _, a := range []*appointment.Appointment{outside, alsoIn, inRange} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	day := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListByDateRange(ctx, day, day)
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
	// Ordered by start time.
	if got[0].PatientName != "Ana Torres" || got[1].PatientName != "Luis Vega" {
		t.Errorf("order: %s then %s", got[0].PatientName, got[1].PatientName)
	}
}

func TestUpdate(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	a.PatientName = "Ana Torres-Gil"
	a = a.Moved(a.Start.Add(time.Hour))
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PatientName != "Ana Torres-Gil" {
		t.Errorf("name = %q", got.PatientName)
	}
	if got.Start.Hour() != 10 {
		t.Errorf("start hour = %d, want 10", got.Start.Hour())
	}
}

func TestUpdateMissing(t *testing.T) {
	repo := testRepo(t)

	a := testAppt(t, "Ana Torres", 9)
	if err := repo.Update(context.Background(), a); !errors.Is(err, appointment.ErrNotFound) {
		t.Errorf("Update on missing row: error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	if err := repo.UpdateStatus(ctx, a.ID, appointment.StatusArrived); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, _ := repo.Get(ctx, a.ID)
	if got.Status != appointment.StatusArrived {
		t.Errorf("status = %s, want arrived", got.Status)
	}
}

func TestBatchUpdateTimes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	b := testAppt(t, "Luis Vega", 10)
	for _, x := range []*appointment.Appointment{a, b} {
		if err := repo.Create(ctx, x); err != nil {
			t.Fatal(err)
		}
	}

	updates := []appointment.TimeUpdate{
		{ID: a.ID, NewStart: a.Start.Add(time.Hour), NewEnd: a.End.Add(time.Hour)},
		{ID: b.ID, NewStart: b.Start.Add(30 * time.Minute), NewEnd: b.End.Add(30 * time.Minute)},
	}
	if err := repo.BatchUpdateTimes(ctx, updates); err != nil {
		t.Fatalf("BatchUpdateTimes: %v", err)
	}

	gotA, _ := repo.Get(ctx, a.ID)
	if gotA.Start.Hour() != 10 {
		t.Errorf("a start hour = %d, want 10", gotA.Start.Hour())
	}
	gotB, _ := repo.Get(ctx, b.ID)
	if gotB.Start.Minute() != 30 {
		t.Errorf("b start minute = %d, want 30", gotB.Start.Minute())
	}
}

func TestBatchUpdateTimesAtomic(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	updates := []appointment.TimeUpdate{
		{ID: a.ID, NewStart: a.Start.Add(time.Hour), NewEnd: a.End.Add(time.Hour)},
		{ID: "no-such-id", NewStart: a.Start, NewEnd: a.End},
	}
	if err := repo.BatchUpdateTimes(ctx, updates); err == nil {
		t.Fatal("batch with missing id succeeded, want error")
	}

	// The first update must have rolled back.
	got, _ := repo.Get(ctx, a.ID)
	if got.Start.Hour() != 9 {
		t.Errorf("start hour after rollback = %d, want 9", got.Start.Hour())
	}
}

func TestDelete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := testAppt(t, "Ana Torres", 9)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("appointment still present after delete")
	}

	if err := repo.Delete(ctx, a.ID); !errors.Is(err, appointment.ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
}
