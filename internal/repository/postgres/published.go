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

// PublishedRepository persists published documents in postgres.
type PublishedRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPublishedRepository creates a published document repository.
func NewPublishedRepository(config *RepositoryConfig) repositories.PublishedRepository {
	return &PublishedRepository{pool: config.Pool, logger: config.Logger}
}

// Insert writes a published row, typically inside the publish transaction
// that also deletes the consumed candidate.
func (r *PublishedRepository) Insert(ctx context.Context, doc *models.PublishedDocument) error {
	query := `
		INSERT INTO published_documents
			(row_id, item_id, faction_id, language_id, category_id, author, title, content, approved_at, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
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
		doc.ApprovedAt,
		doc.ApprovedBy,
	)
	if err != nil {
		if isDuplicateError(err) {
			return fmt.Errorf("%w: published document for item %d faction %d language %d",
				domain.ErrDuplicateKey, doc.ItemID, doc.FactionID, doc.LanguageID)
		}
		return fmt.Errorf("insert published document: %w", err)
	}

	return nil
}

// Delete removes a published row by its id.
func (r *PublishedRepository) Delete(ctx context.Context, rowID uint64) error {
	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, `DELETE FROM published_documents WHERE row_id = $1`, int64(rowID))
	if err != nil {
		return fmt.Errorf("delete published document: %w", err)
	}
	return nil
}

// LoadAll returns every published row for the boot rebuild.
func (r *PublishedRepository) LoadAll(ctx context.Context) ([]models.PublishedDocument, error) {
	query := `
		SELECT row_id, item_id, faction_id, language_id, category_id, author, title, content, approved_at, approved_by
		FROM published_documents
		ORDER BY row_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load published documents: %w", err)
	}
	defer rows.Close()

	var docs []models.PublishedDocument
	for rows.Next() {
		var doc models.PublishedDocument
		var rowID, item, cat int64
		var faction, language int32
		if err := rows.Scan(&rowID, &item, &faction, &language, &cat,
			&doc.Author, &doc.Title, &doc.Content, &doc.ApprovedAt, &doc.ApprovedBy); err != nil {
			return nil, fmt.Errorf("scan published document: %w", err)
		}
		doc.RowID = uint64(rowID)
		doc.ItemID = uint64(item)
		doc.FactionID = uint32(faction)
		doc.LanguageID = uint32(language)
		doc.CategoryID = uint64(cat)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load published documents: %w", err)
	}

	return docs, nil
}
