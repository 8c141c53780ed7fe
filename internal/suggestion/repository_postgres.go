package suggestion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// seedChunkSize caps the number of terms bound into a single insert statement.
const seedChunkSize = 1000

// PostgresRepository implements Repository over the relational store.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listSuggestionsQuery = `SELECT id, type, name FROM search_suggestions`
	// Dedup happens per statement: a term already present in the table is
	// skipped, so re-running a seed never piles up duplicates.
	insertTermsQuery = `
		INSERT INTO search_suggestions (name)
		SELECT v.name
		FROM unnest($1::text[]) AS v(name)
		WHERE NOT EXISTS (SELECT 1 FROM search_suggestions s WHERE s.name = v.name)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Replace truncates the table and inserts the terms in chunks. Correctness of
// a partially failed run rests on the store's per-statement guarantees; there
// is no surrounding transaction, matching how the seeding has always behaved.
func (r *PostgresRepository) Replace(ctx context.Context, terms []string) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE TABLE search_suggestions`); err != nil {
		return fmt.Errorf("truncate search_suggestions: %w", err)
	}
	for i := 0; i < len(terms); i += seedChunkSize {
		end := i + seedChunkSize
		if end > len(terms) {
			end = len(terms)
		}
		if _, err := r.db.ExecContext(ctx, insertTermsQuery, pq.Array(terms[i:end])); err != nil {
			return fmt.Errorf("insert suggestion chunk at %d: %w", i, err)
		}
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Suggestion, error) {
	rows, err := r.db.QueryContext(ctx, listSuggestionsQuery)
	if err != nil {
		return nil, fmt.Errorf("query search_suggestions: %w", err)
	}
	defer rows.Close()

	out := make([]Suggestion, 0)
	for rows.Next() {
		var (
			s   Suggestion
			typ sql.NullString
		)
		if err := rows.Scan(&s.ID, &typ, &s.Name); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		s.Type = typ.String
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read search_suggestions: %w", err)
	}
	return out, nil
}
