package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
)

// CategoryRepository persists the category lookup table in postgres.
type CategoryRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &CategoryRepository{pool: config.Pool, logger: config.Logger}
}

// Upsert creates or replaces the category row under its id.
func (r *CategoryRepository) Upsert(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
	`

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, int64(c.ID), c.Name, c.Description); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

// Delete removes a category row by its id.
func (r *CategoryRepository) Delete(ctx context.Context, id uint64) error {
	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, `DELETE FROM categories WHERE id = $1`, int64(id)); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// LoadAll returns every category row for the boot rebuild.
func (r *CategoryRepository) LoadAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		var id int64
		if err := rows.Scan(&id, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ID = uint64(id)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	return categories, nil
}
