package run

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/tfidf"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRanking() tfidf.Ranking {
	return tfidf.Ranking{
		{Category: "B", Documents: 1, Terms: tfidf.TermScores{{Term: "biden", Score: 0.135}, {Term: "speech", Score: 0.135}}},
		{Category: "A", Documents: 2, Terms: tfidf.TermScores{{Term: "wins", Score: 0.0676}, {Term: "trump", Score: 0}}},
		{Category: "empty", Documents: 0},
	}
}

func TestSaveAndRanking(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	saved, err := repo.Save("articles.csv", tfidf.ScopeCorpus, 10, 3, sampleRanking())
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected run id")
	}

	got, err := repo.Ranking(saved.ID)
	if err != nil {
		t.Fatalf("failed to load ranking: %v", err)
	}

	want := sampleRanking()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Category != want[i].Category || got[i].Documents != want[i].Documents {
			t.Errorf("category %d: expected %+v, got %+v", i, want[i], got[i])
		}
		if len(got[i].Terms) != len(want[i].Terms) {
			t.Fatalf("category %s: expected %d terms, got %d", want[i].Category, len(want[i].Terms), len(got[i].Terms))
		}
		for j := range want[i].Terms {
			if got[i].Terms[j] != want[i].Terms[j] {
				t.Errorf("category %s rank %d: expected %+v, got %+v", want[i].Category, j, want[i].Terms[j], got[i].Terms[j])
			}
		}
	}

	a, _ := want.MarshalJSON()
	b, _ := got.MarshalJSON()
	if string(a) != string(b) {
		t.Errorf("serialized ranking differs:\n%s\n%s", a, b)
	}
}

func TestGetAndList(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	first, err := repo.Save("one.csv", tfidf.ScopeCorpus, 10, 3, sampleRanking())
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	second, err := repo.Save("two.csv", tfidf.ScopeCategory, 5, 7, sampleRanking()[:1])
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	run, err := repo.Get(second.ID)
	if err != nil {
		t.Fatalf("failed to get run: %v", err)
	}
	if run.InputPath != "two.csv" || run.IDFScope != tfidf.ScopeCategory || run.TopK != 5 || run.DocumentCount != 7 {
		t.Errorf("unexpected run %+v", run)
	}
	if run.Categories != 1 {
		t.Errorf("expected 1 category, got %d", run.Categories)
	}

	runs, err := repo.List(10)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Errorf("expected newest first, got %d then %d", runs[0].ID, runs[1].ID)
	}

	limited, err := repo.List(1)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 run, got %d", len(limited))
	}
}

func TestGetMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	if _, err := repo.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Ranking(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	saved, err := repo.Save("articles.csv", tfidf.ScopeCorpus, 10, 3, sampleRanking())
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	if err := repo.Delete(saved.ID); err != nil {
		t.Fatalf("failed to delete run: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM run_terms WHERE run_id = ?`, saved.ID).Scan(&n); err != nil {
		t.Fatalf("failed to count terms: %v", err)
	}
	if n != 0 {
		t.Errorf("expected terms to be deleted, found %d", n)
	}

	if err := repo.Delete(saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
