package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"lorebook/internal/domain/repositories"
	"lorebook/internal/repository/postgres/migrations"
)

// RunMigrations applies the embedded schema migrations. goose drives a
// database/sql connection via the pgx stdlib driver; the pool used for
// queries is created separately.
func RunMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// NewSet wires the five postgres repositories and the transaction manager
// into one bundle.
func NewSet(config *RepositoryConfig) repositories.Set {
	return repositories.Set{
		Candidates: NewCandidateRepository(config),
		Published:  NewPublishedRepository(config),
		Categories: NewCategoryRepository(config),
		Authors:    NewAuthorRepository(config),
		Editors:    NewEditorRepository(config),
		Tx:         NewTransactionManager(config.Pool, config.Logger),
	}
}
