package service

import (
	"context"
	"fmt"
	"log/slog"

	"lorebook/internal/docstore"
	"lorebook/internal/domain"
	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
	"lorebook/internal/domain/services"
)

// roleService implements the RoleService interface.
//
// Author registration rejects duplicate (account, faction, language) grants.
// Editor registration deliberately does not deduplicate; repeated grants for
// the same (account, faction) pile up and delete removes the first match.
type roleService struct {
	store   *docstore.Store
	gate    *Gate
	authors repositories.AuthorRepository
	editors repositories.EditorRepository
	logger  *slog.Logger
}

// NewRoleService creates the role registry service.
func NewRoleService(
	store *docstore.Store,
	gate *Gate,
	authors repositories.AuthorRepository,
	editors repositories.EditorRepository,
	logger *slog.Logger,
) services.RoleService {
	return &roleService{
		store:   store,
		gate:    gate,
		authors: authors,
		editors: editors,
		logger:  logger,
	}
}

// RegisterAuthor grants author rights. The acting editor must be the caller
// and hold an editor grant for the faction.
func (s *roleService) RegisterAuthor(ctx context.Context, caller string, req *services.RegisterAuthorRequest) (*models.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.store.Lock()
	defer s.store.Unlock()

	if err := s.gate.RequireSelf(caller, req.Editor); err != nil {
		return nil, err
	}
	if err := s.gate.RequireEditor(s.store, req.Editor, req.FactionID); err != nil {
		return nil, err
	}

	if _, exists := s.store.AuthorByKey(req.Author, req.FactionID, req.LanguageID); exists {
		return nil, fmt.Errorf("%w: author grant for %q faction %d language %d",
			domain.ErrDuplicateKey, req.Author, req.FactionID, req.LanguageID)
	}

	author := models.Author{
		RowID:      s.store.NextAuthorID(),
		Account:    req.Author,
		FactionID:  req.FactionID,
		LanguageID: req.LanguageID,
	}

	if err := s.authors.Insert(ctx, &author); err != nil {
		return nil, err
	}
	s.store.PutAuthor(author)

	s.logger.Info("author registered",
		"account", author.Account,
		"faction_id", author.FactionID,
		"language_id", author.LanguageID,
		"by", req.Editor,
	)

	return &author, nil
}

// DeleteAuthor revokes an author grant.
func (s *roleService) DeleteAuthor(ctx context.Context, caller string, req *services.DeleteAuthorRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.store.Lock()
	defer s.store.Unlock()

	if err := s.gate.RequireSelf(caller, req.Editor); err != nil {
		return err
	}
	if err := s.gate.RequireEditor(s.store, req.Editor, req.FactionID); err != nil {
		return err
	}

	author, ok := s.store.AuthorByKey(req.Author, req.FactionID, req.LanguageID)
	if !ok {
		return fmt.Errorf("%w: author grant for %q faction %d language %d",
			domain.ErrNotFound, req.Author, req.FactionID, req.LanguageID)
	}

	if err := s.authors.Delete(ctx, author.RowID); err != nil {
		return err
	}
	s.store.EraseAuthor(author.RowID)

	s.logger.Info("author deleted", "account", author.Account, "faction_id", author.FactionID, "by", req.Editor)

	return nil
}

// ListAuthors returns all author grants. Operator only.
func (s *roleService) ListAuthors(ctx context.Context, caller string) ([]models.Author, error) {
	if err := s.gate.RequireOperator(caller); err != nil {
		return nil, err
	}

	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Authors(), nil
}

// RegisterEditor grants editor rights for one faction. Operator only.
// Duplicate grants are tolerated.
func (s *roleService) RegisterEditor(ctx context.Context, caller string, req *services.RegisterEditorRequest) (*models.Editor, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.gate.RequireOperator(caller); err != nil {
		return nil, err
	}

	s.store.Lock()
	defer s.store.Unlock()

	editor := models.Editor{
		RowID:     s.store.NextEditorID(),
		Account:   req.Editor,
		FactionID: req.FactionID,
	}

	if err := s.editors.Insert(ctx, &editor); err != nil {
		return nil, err
	}
	s.store.PutEditor(editor)

	s.logger.Info("editor registered", "account", editor.Account, "faction_id", editor.FactionID)

	return &editor, nil
}

// DeleteEditor removes the first editor grant matching (account, faction).
// Operator only.
func (s *roleService) DeleteEditor(ctx context.Context, caller string, req *services.DeleteEditorRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.gate.RequireOperator(caller); err != nil {
		return err
	}

	s.store.Lock()
	defer s.store.Unlock()

	var match *models.Editor
	for _, e := range s.store.EditorsByAccount(req.Editor) {
		if e.FactionID == req.FactionID {
			grant := e
			match = &grant
			break
		}
	}
	if match == nil {
		return fmt.Errorf("%w: %q holds no editor grant for faction %d",
			domain.ErrNotRegistered, req.Editor, req.FactionID)
	}

	if err := s.editors.Delete(ctx, match.RowID); err != nil {
		return err
	}
	s.store.EraseEditor(match.RowID)

	s.logger.Info("editor deleted", "account", match.Account, "faction_id", match.FactionID)

	return nil
}

// ListEditors returns all editor grants. Operator only.
func (s *roleService) ListEditors(ctx context.Context, caller string) ([]models.Editor, error) {
	if err := s.gate.RequireOperator(caller); err != nil {
		return nil, err
	}

	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Editors(), nil
}
