package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"lorebook/internal/domain"
	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
)

// CandidateRepository persists candidate documents in postgres.
type CandidateRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCandidateRepository creates a candidate document repository.
func NewCandidateRepository(config *RepositoryConfig) repositories.CandidateRepository {
	return &CandidateRepository{pool: config.Pool, logger: config.Logger}
}

// Insert writes a candidate row. Row ids are assigned by the core store, not
// by the database.
func (r *CandidateRepository) Insert(ctx context.Context, doc *models.CandidateDocument) error {
	query := `
		INSERT INTO candidate_documents
			(row_id, item_id, faction_id, language_id, category_id, author, title, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		int64(doc.RowID),
		int64(doc.ItemID),
		int32(doc.FactionID),
		int32(doc.LanguageID),
		int64(doc.CategoryID),
		doc.Author,
		doc.Title,
		doc.Content,
	)
	if err != nil {
		if isDuplicateError(err) {
			return fmt.Errorf("%w: candidate for item %d faction %d language %d",
				domain.ErrDuplicateKey, doc.ItemID, doc.FactionID, doc.LanguageID)
		}
		return fmt.Errorf("insert candidate: %w", err)
	}

	return nil
}

// Delete removes a candidate row by its id.
func (r *CandidateRepository) Delete(ctx context.Context, rowID uint64) error {
	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, `DELETE FROM candidate_documents WHERE row_id = $1`, int64(rowID))
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

// LoadAll returns every candidate row, used to rebuild the in-memory store
// at boot.
func (r *CandidateRepository) LoadAll(ctx context.Context) ([]models.CandidateDocument, error) {
	query := `
		SELECT row_id, item_id, faction_id, language_id, category_id, author, title, content
		FROM candidate_documents
		ORDER BY row_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	defer rows.Close()

	var docs []models.CandidateDocument
	for rows.Next() {
		var doc models.CandidateDocument
		var rowID, item, cat int64
		var faction, language int32
		if err := rows.Scan(&rowID, &item, &faction, &language, &cat, &doc.Author, &doc.Title, &doc.Content); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		doc.RowID = uint64(rowID)
		doc.ItemID = uint64(item)
		doc.FactionID = uint32(faction)
		doc.LanguageID = uint32(language)
		doc.CategoryID = uint64(cat)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	return docs, nil
}
