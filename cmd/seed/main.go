// Seed bootstraps a fresh deployment from a YAML manifest, acting as the
// operator account. Existing editor grants and categories are left alone, so
// rerunning against a live database is safe.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"lorebook/internal/config"
	"lorebook/internal/docstore"
	"lorebook/internal/domain/services"
	"lorebook/internal/repository/postgres"
	"lorebook/internal/service"
)

type seedFile struct {
	Editors []struct {
		Account  string   `yaml:"account"`
		Factions []uint32 `yaml:"factions"`
	} `yaml:"editors"`
	Categories []struct {
		ID          uint64 `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"categories"`
}

func main() {
	_ = godotenv.Load()

	path := flag.String("file", "seed.yaml", "path to the seed manifest")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set to seed")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read seed manifest: %v", err)
	}

	var manifest seedFile
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		log.Fatalf("Failed to parse seed manifest: %v", err)
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	repos := postgres.NewSet(&postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	})

	store := docstore.New()
	if err := service.LoadStore(ctx, store, repos); err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	gate := service.NewGate(cfg.OperatorAccount)
	roleService := service.NewRoleService(store, gate, repos.Authors, repos.Editors, logger)
	categoryService := service.NewCategoryService(store, gate, repos.Categories, logger)
	operator := gate.Operator()

	var granted, skipped int
	for _, e := range manifest.Editors {
		for _, factionID := range e.Factions {
			if hasEditorGrant(store, e.Account, factionID) {
				skipped++
				continue
			}
			_, err := roleService.RegisterEditor(ctx, operator, &services.RegisterEditorRequest{
				Editor:    e.Account,
				FactionID: factionID,
			})
			if err != nil {
				log.Fatalf("Failed to register editor %s for faction %d: %v", e.Account, factionID, err)
			}
			granted++
		}
	}

	var upserted int
	for _, c := range manifest.Categories {
		_, err := categoryService.SetCategory(ctx, operator, &services.SetCategoryRequest{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
		if err != nil {
			log.Fatalf("Failed to set category %d: %v", c.ID, err)
		}
		upserted++
	}

	logger.Info("seed complete",
		"editors_granted", granted,
		"editors_skipped", skipped,
		"categories_upserted", upserted,
	)
}

func hasEditorGrant(store *docstore.Store, account string, factionID uint32) bool {
	store.Lock()
	defer store.Unlock()
	for _, e := range store.EditorsByAccount(account) {
		if e.FactionID == factionID {
			return true
		}
	}
	return false
}
