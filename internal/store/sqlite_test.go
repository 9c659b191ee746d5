package store_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gomi-quiz/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveResult_ComputesAccuracy(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveResult(7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Accuracy != 0.7 {
		t.Errorf("expected accuracy 0.7, got %v", saved.Accuracy)
	}
	if saved.Correct != 7 || saved.Total != 10 {
		t.Errorf("expected saved tuple (7, 10), got (%d, %d)", saved.Correct, saved.Total)
	}
	if saved.TS == 0 {
		t.Error("expected a server-assigned timestamp")
	}
}

func TestSaveResult_RoundsAccuracyToFourPlaces(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveResult(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Accuracy != 0.3333 {
		t.Errorf("expected accuracy 0.3333, got %v", saved.Accuracy)
	}
}

func TestSaveResult_NonPositiveTotalRejected(t *testing.T) {
	s := newTestStore(t)

	for _, total := range []int{0, -1} {
		if _, err := s.SaveResult(5, total); !errors.Is(err, store.ErrInvalidResult) {
			t.Errorf("SaveResult(5, %d): expected ErrInvalidResult, got %v", total, err)
		}
	}
}

func TestSaveResult_BoundaryValuesAccepted(t *testing.T) {
	s := newTestStore(t)

	// correct > total is accepted as-is: a deliberate simplification,
	// the caller owns the relationship between the two.
	if _, err := s.SaveResult(12, 10); err != nil {
		t.Errorf("expected correct > total to be accepted, got %v", err)
	}

	// Negative correct is likewise not validated.
	saved, err := s.SaveResult(-1, 5)
	if err != nil {
		t.Errorf("expected negative correct to be accepted, got %v", err)
	}
	if saved.Accuracy != -0.2 {
		t.Errorf("expected accuracy -0.2, got %v", saved.Accuracy)
	}
}

func TestListResults_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	ts := int64(1_700_000_000)
	s.SetClock(func() time.Time { ts++; return time.Unix(ts, 0) })

	for i := 1; i <= 3; i++ {
		if _, err := s.SaveResult(i, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	results, err := s.ListResults(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Correct != 3 || results[1].Correct != 2 {
		t.Errorf("expected the 2 most recent newest first, got %+v", results)
	}
	if results[0].TS < results[1].TS {
		t.Errorf("expected descending timestamps, got %d then %d", results[0].TS, results[1].TS)
	}
}

func TestListResults_TiedTimestampsStableOrder(t *testing.T) {
	s := newTestStore(t)
	s.SetClock(func() time.Time { return time.Unix(1_700_000_000, 0) })

	for i := 1; i <= 3; i++ {
		if _, err := s.SaveResult(i, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	results, err := s.ListResults(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Ties fall back to reverse insertion order.
	if results[0].Correct != 3 || results[2].Correct != 1 {
		t.Errorf("expected stable tie order, got %+v", results)
	}
}

func TestListResults_ClampsLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.SaveResult(i, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Values outside [1, 1000] are clamped, not rejected.
	results, err := s.ListResults(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected limit 0 clamped to 1, got %d rows", len(results))
	}

	results, err = s.ListResults(5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("expected all 5 rows under the 1000 cap, got %d", len(results))
	}
}

func TestListResults_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	results, err := s.ListResults(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil {
		t.Error("expected an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no rows, got %d", len(results))
	}
}
