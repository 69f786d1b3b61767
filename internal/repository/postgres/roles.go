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

// AuthorRepository persists author grants in postgres.
type AuthorRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAuthorRepository creates an author grant repository.
func NewAuthorRepository(config *RepositoryConfig) repositories.AuthorRepository {
	return &AuthorRepository{pool: config.Pool, logger: config.Logger}
}

// Insert writes an author grant. The unique constraint on
// (account, faction_id, language_id) backs the duplicate-rejection policy.
func (r *AuthorRepository) Insert(ctx context.Context, a *models.Author) error {
	query := `
		INSERT INTO authors (row_id, account, faction_id, language_id)
		VALUES ($1, $2, $3, $4)
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, int64(a.RowID), a.Account, int32(a.FactionID), int32(a.LanguageID))
	if err != nil {
		if isDuplicateError(err) {
			return fmt.Errorf("%w: author grant for %q faction %d language %d",
				domain.ErrDuplicateKey, a.Account, a.FactionID, a.LanguageID)
		}
		return fmt.Errorf("insert author: %w", err)
	}

	return nil
}

// Delete removes an author grant by its row id.
func (r *AuthorRepository) Delete(ctx context.Context, rowID uint64) error {
	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, `DELETE FROM authors WHERE row_id = $1`, int64(rowID)); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// LoadAll returns every author grant for the boot rebuild.
func (r *AuthorRepository) LoadAll(ctx context.Context) ([]models.Author, error) {
	rows, err := r.pool.Query(ctx, `SELECT row_id, account, faction_id, language_id FROM authors ORDER BY row_id`)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	defer rows.Close()

	var authors []models.Author
	for rows.Next() {
		var a models.Author
		var rowID int64
		var faction, language int32
		if err := rows.Scan(&rowID, &a.Account, &faction, &language); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		a.RowID = uint64(rowID)
		a.FactionID = uint32(faction)
		a.LanguageID = uint32(language)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	return authors, nil
}

// EditorRepository persists editor grants in postgres.
type EditorRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewEditorRepository creates an editor grant repository.
func NewEditorRepository(config *RepositoryConfig) repositories.EditorRepository {
	return &EditorRepository{pool: config.Pool, logger: config.Logger}
}

// Insert writes an editor grant. Duplicate (account, faction_id) rows are
// allowed; idempotency is the operator's responsibility.
func (r *EditorRepository) Insert(ctx context.Context, e *models.Editor) error {
	query := `INSERT INTO editors (row_id, account, faction_id) VALUES ($1, $2, $3)`

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, int64(e.RowID), e.Account, int32(e.FactionID)); err != nil {
		return fmt.Errorf("insert editor: %w", err)
	}
	return nil
}

// Delete removes an editor grant by its row id.
func (r *EditorRepository) Delete(ctx context.Context, rowID uint64) error {
	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, `DELETE FROM editors WHERE row_id = $1`, int64(rowID)); err != nil {
		return fmt.Errorf("delete editor: %w", err)
	}
	return nil
}

// LoadAll returns every editor grant for the boot rebuild.
func (r *EditorRepository) LoadAll(ctx context.Context) ([]models.Editor, error) {
	rows, err := r.pool.Query(ctx, `SELECT row_id, account, faction_id FROM editors ORDER BY row_id`)
	if err != nil {
		return nil, fmt.Errorf("load editors: %w", err)
	}
	defer rows.Close()

	var editors []models.Editor
	for rows.Next() {
		var e models.Editor
		var rowID int64
		var faction int32
		if err := rows.Scan(&rowID, &e.Account, &faction); err != nil {
			return nil, fmt.Errorf("scan editor: %w", err)
		}
		e.RowID = uint64(rowID)
		e.FactionID = uint32(faction)
		editors = append(editors, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load editors: %w", err)
	}

	return editors, nil
}
