package words

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/deutschbuddy/pkg/models"
)

// Repository handles database operations for the word bank.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a repository over an open connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// All returns the whole word bank.
func (r *Repository) All() ([]models.Word, error) {
	var words []models.Word
	if err := r.db.Select(&words, "SELECT id, german, persian, level FROM words ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to load word bank: %w", err)
	}
	return words, nil
}

// ByLevels returns the words tagged with any of the given levels.
func (r *Repository) ByLevels(levels []string) ([]models.Word, error) {
	if len(levels) == 0 {
		return r.All()
	}
	query, args, err := sqlx.In("SELECT id, german, persian, level FROM words WHERE level IN (?) ORDER BY id", levels)
	if err != nil {
		return nil, fmt.Errorf("failed to build level query: %w", err)
	}
	query = r.db.Rebind(query)

	var words []models.Word
	if err := r.db.Select(&words, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load words by level: %w", err)
	}
	return words, nil
}

// Count returns the number of words in the bank.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return n, nil
}

// Upsert inserts a word or updates its translation and level if the German
// headword already exists. The word's ID is filled in on return.
func (r *Repository) Upsert(w *models.Word) error {
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO words (german, persian, level)
			VALUES ($1, $2, $3)
			ON CONFLICT (german) DO UPDATE SET persian = EXCLUDED.persian, level = EXCLUDED.level
			RETURNING id
		`
		return r.db.QueryRow(query, w.German, w.Persian, w.Level).Scan(&w.ID)
	}

	// SQLite path: upsert, then read the row ID back.
	query := `
		INSERT INTO words (german, persian, level) VALUES (?, ?, ?)
		ON CONFLICT (german) DO UPDATE SET persian = excluded.persian, level = excluded.level
	`
	if _, err := r.db.Exec(query, w.German, w.Persian, w.Level); err != nil {
		return fmt.Errorf("failed to upsert word %q: %w", w.German, err)
	}
	if err := r.db.Get(&w.ID, "SELECT id FROM words WHERE german = ?", w.German); err != nil {
		return fmt.Errorf("failed to read back word ID: %w", err)
	}
	return nil
}

// EnsureSeed fills an empty bank with the built-in seed words.
func (r *Repository) EnsureSeed() error {
	n, err := r.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range Seed {
		w := Seed[i]
		if err := r.Upsert(&w); err != nil {
			return fmt.Errorf("failed to seed word bank: %w", err)
		}
	}
	return nil
}

// NormalizeLevel canonicalizes a level tag; compound tags like "A2/B1"
// keep their higher part.
func NormalizeLevel(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return models.LevelA1
	}
	parts := strings.Split(tag, "/")
	last := strings.TrimSpace(parts[len(parts)-1])
	for _, l := range models.Levels {
		if l == last {
			return l
		}
	}
	return models.LevelA1
}
