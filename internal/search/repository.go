package search

import (
	"strings"
	"time"

	"github.com/julienpequegnot/newsterms/internal/database"
)

// Hit is one saved ranking in which a term appears.
type Hit struct {
	RunID     int64
	InputPath string
	CreatedAt time.Time
	Category  string
	Term      string
	Rank      int
	Score     float64
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Term finds the runs and categories that rank term, newest run first.
// With prefix set, every term starting with term matches.
func (r *Repository) Term(term string, prefix bool, limit int) ([]Hit, error) {
	cond, arg := "t.term = ?", term
	if prefix {
		cond = `t.term LIKE ? ESCAPE '\'`
		arg = escapeLike(term) + "%"
	}

	rows, err := r.db.Query(`
		SELECT t.run_id, r.input_path, r.created_at, t.category, t.term, t.rank, t.score
		FROM run_terms t
		JOIN runs r ON r.id = t.run_id
		WHERE `+cond+`
		ORDER BY r.created_at DESC, r.id DESC, t.score DESC, t.rank
		LIMIT ?
	`, arg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.RunID, &h.InputPath, &h.CreatedAt, &h.Category, &h.Term, &h.Rank, &h.Score); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
