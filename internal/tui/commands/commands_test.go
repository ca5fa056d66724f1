package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/consulta/internal/appointment"
)

type stubRepo struct {
	appointment.Repository

	appts []*appointment.Appointment
	err   error
}

func (r *stubRepo) ListByDateRange(_ context.Context, _, _ time.Time) ([]*appointment.Appointment, error) {
	return r.appts, r.err
}

func TestLoadRange(t *testing.T) {
	start := time.Date(2030, 3, 4, 9, 0, 0, 0, time.UTC)
	a, err := appointment.New("Marta Ruiz", appointment.TypeFollowUp, start, start.Add(30*time.Minute), false)
	if err != nil {
		t.Fatal(err)
	}

	repo := &stubRepo{appts: []*appointment.Appointment{a}}
	msg := LoadRange(repo, start, start)()

	loaded, ok := msg.(RangeLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeLoadedMsg", msg)
	}
	if len(loaded.Appts) != 1 || loaded.Appts[0].ID != a.ID {
		t.Errorf("unexpected appointments: %+v", loaded.Appts)
	}
}

func TestLoadRangeError(t *testing.T) {
	repo := &stubRepo{err: errors.New("boom")}
	msg := LoadRange(repo, time.Now(), time.Now())()

	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("got %T, want ErrMsg", msg)
	}
}

type stubSaver struct {
	err    error
	called bool
}

func (s *stubSaver) SaveChanges(context.Context, appointment.Repository) error {
	s.called = true
	return s.err
}

func TestSave(t *testing.T) {
	saver := &stubSaver{}
	msg := Save(saver, nil)()

	if !saver.called {
		t.Fatal("SaveChanges was not called")
	}
	if _, ok := msg.(SavedMsg); !ok {
		t.Fatalf("got %T, want SavedMsg", msg)
	}
}

func TestSaveError(t *testing.T) {
	saver := &stubSaver{err: errors.New("disk full")}
	msg := Save(saver, nil)()

	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("got %T, want ErrMsg", msg)
	}
}
