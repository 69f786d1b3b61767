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

// candidateService implements the CandidateService interface.
type candidateService struct {
	store      *docstore.Store
	gate       *Gate
	candidates repositories.CandidateRepository
	logger     *slog.Logger
}

// NewCandidateService creates the candidate workflow service.
func NewCandidateService(
	store *docstore.Store,
	gate *Gate,
	candidates repositories.CandidateRepository,
	logger *slog.Logger,
) services.CandidateService {
	return &candidateService{
		store:      store,
		gate:       gate,
		candidates: candidates,
		logger:     logger,
	}
}

// AddDocument submits a candidate document. The full check-then-mutate
// sequence runs under the store lock; the durable insert commits before the
// in-memory apply so a failed write leaves no trace.
func (s *candidateService) AddDocument(ctx context.Context, caller string, req *services.AddDocumentRequest) (*models.CandidateDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.store.Lock()
	defer s.store.Unlock()

	if err := s.gate.RequireSelf(caller, req.Author); err != nil {
		return nil, err
	}
	if err := s.gate.RequireAuthor(s.store, req.Author, req.FactionID, req.LanguageID); err != nil {
		return nil, err
	}

	if _, exists := s.store.CandidateByKey(req.ItemID, req.FactionID, req.LanguageID); exists {
		return nil, fmt.Errorf("%w: candidate for item %d faction %d language %d",
			domain.ErrDuplicateKey, req.ItemID, req.FactionID, req.LanguageID)
	}

	doc := models.CandidateDocument{
		RowID:      s.store.NextCandidateID(),
		ItemID:     req.ItemID,
		FactionID:  req.FactionID,
		LanguageID: req.LanguageID,
		CategoryID: req.CategoryID,
		Author:     req.Author,
		Title:      req.Title,
		Content:    req.Content,
	}

	if err := s.candidates.Insert(ctx, &doc); err != nil {
		return nil, err
	}
	s.store.PutCandidate(doc)

	s.logger.Info("candidate submitted",
		"row_id", doc.RowID,
		"item_id", doc.ItemID,
		"faction_id", doc.FactionID,
		"language_id", doc.LanguageID,
		"author", doc.Author,
	)

	return &doc, nil
}

// DeleteDocument removes a candidate. Only the row's author may delete it;
// an editor for the faction is still refused with Forbidden.
func (s *candidateService) DeleteDocument(ctx context.Context, caller string, req *services.DeleteDocumentRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.store.Lock()
	defer s.store.Unlock()

	if err := s.gate.RequireSelf(caller, req.Author); err != nil {
		return err
	}

	doc, ok := s.store.CandidateByKey(req.ItemID, req.FactionID, req.LanguageID)
	if !ok {
		return fmt.Errorf("%w: candidate for item %d faction %d language %d",
			domain.ErrNotFound, req.ItemID, req.FactionID, req.LanguageID)
	}
	if doc.Author != req.Author {
		return fmt.Errorf("%w: only the author may delete a candidate", domain.ErrForbidden)
	}

	if err := s.candidates.Delete(ctx, doc.RowID); err != nil {
		return err
	}
	s.store.EraseCandidate(doc.RowID)

	s.logger.Info("candidate deleted", "row_id", doc.RowID, "item_id", doc.ItemID, "author", doc.Author)

	return nil
}

// GetDocument returns the candidate for a composite triple.
func (s *candidateService) GetDocument(ctx context.Context, itemID uint64, factionID, languageID uint32) (*models.CandidateDocument, error) {
	s.store.Lock()
	defer s.store.Unlock()

	doc, ok := s.store.CandidateByKey(itemID, factionID, languageID)
	if !ok {
		return nil, fmt.Errorf("%w: candidate for item %d faction %d language %d",
			domain.ErrNotFound, itemID, factionID, languageID)
	}
	return &doc, nil
}

// ListDocuments returns all candidates for a faction and language in
// ascending row-id order.
func (s *candidateService) ListDocuments(ctx context.Context, factionID, languageID uint32) ([]models.CandidateDocument, error) {
	s.store.Lock()
	defer s.store.Unlock()

	var out []models.CandidateDocument
	for _, doc := range s.store.Candidates() {
		if doc.FactionID == factionID && doc.LanguageID == languageID {
			out = append(out, doc)
		}
	}
	return out, nil
}
