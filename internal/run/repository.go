// internal/run/repository.go
package run

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/tfidf"
)

var ErrNotFound = errors.New("run not found")

// Run is the metadata of one saved scoring run.
type Run struct {
	ID            int64
	InputPath     string
	IDFScope      tfidf.Scope
	TopK          int
	DocumentCount int
	Categories    int
	CreatedAt     time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save stores the run and its ranking in one transaction.
func (r *Repository) Save(inputPath string, scope tfidf.Scope, topK, documents int, ranking tfidf.Ranking) (*Run, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC()
	result, err := tx.Exec(
		`INSERT INTO runs (input_path, idf_scope, top_k, document_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		inputPath, string(scope), topK, documents, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	catStmt, err := tx.Prepare(`INSERT INTO run_categories (run_id, position, category, document_count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer catStmt.Close()

	termStmt, err := tx.Prepare(`INSERT INTO run_terms (run_id, category, rank, term, score) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare term insert: %w", err)
	}
	defer termStmt.Close()

	for pos, c := range ranking {
		if _, err := catStmt.Exec(id, pos, c.Category, c.Documents); err != nil {
			return nil, fmt.Errorf("failed to insert category %q: %w", c.Category, err)
		}
		for rank, s := range c.Terms {
			if _, err := termStmt.Exec(id, c.Category, rank, s.Term, s.Score); err != nil {
				return nil, fmt.Errorf("failed to insert term %q: %w", s.Term, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}

	return &Run{
		ID:            id,
		InputPath:     inputPath,
		IDFScope:      scope,
		TopK:          topK,
		DocumentCount: documents,
		Categories:    len(ranking),
		CreatedAt:     createdAt,
	}, nil
}

const selectRun = `
	SELECT r.id, r.input_path, r.idf_scope, r.top_k, r.document_count, r.created_at,
	       (SELECT COUNT(*) FROM run_categories c WHERE c.run_id = r.id) AS categories
	FROM runs r`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var scope string
	if err := s.Scan(&run.ID, &run.InputPath, &scope, &run.TopK, &run.DocumentCount, &run.CreatedAt, &run.Categories); err != nil {
		return nil, err
	}
	run.IDFScope = tfidf.Scope(scope)
	return &run, nil
}

// List returns the most recent runs first.
func (r *Repository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(selectRun+` ORDER BY r.created_at DESC, r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (r *Repository) Get(id int64) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(selectRun+` WHERE r.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	return run, nil
}

// Ranking rebuilds the saved ranking with the original category and term order.
func (r *Repository) Ranking(id int64) (tfidf.Ranking, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT category, document_count FROM run_categories
		WHERE run_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranking tfidf.Ranking
	index := make(map[string]int)
	for rows.Next() {
		var c tfidf.CategoryTerms
		if err := rows.Scan(&c.Category, &c.Documents); err != nil {
			return nil, err
		}
		index[c.Category] = len(ranking)
		ranking = append(ranking, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	termRows, err := r.db.Query(`
		SELECT category, term, score FROM run_terms
		WHERE run_id = ? ORDER BY category, rank
	`, id)
	if err != nil {
		return nil, err
	}
	defer termRows.Close()

	for termRows.Next() {
		var category string
		var s tfidf.TermScore
		if err := termRows.Scan(&category, &s.Term, &s.Score); err != nil {
			return nil, err
		}
		i, ok := index[category]
		if !ok {
			return nil, fmt.Errorf("run %d: term %q has unknown category %q", id, s.Term, category)
		}
		ranking[i].Terms = append(ranking[i].Terms, s)
	}
	return ranking, termRows.Err()
}

func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}
