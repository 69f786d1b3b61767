package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lorebook/internal/docstore"
	"lorebook/internal/domain"
	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
	"lorebook/internal/domain/services"
)

// publicationService implements the PublicationService interface.
//
// Publish consumes the candidate: the published insert and the candidate
// delete commit in one transaction, so after a successful publish the triple
// is addressable only in the published table. Unpublish discards content
// irretrievably; there is no transition back to candidate.
type publicationService struct {
	store      *docstore.Store
	gate       *Gate
	candidates repositories.CandidateRepository
	published  repositories.PublishedRepository
	tx         repositories.TransactionManager
	now        func() time.Time
	logger     *slog.Logger
}

// NewPublicationService creates the publication workflow service. now is the
// injected wall-clock used to stamp approvals; pass time.Now outside tests.
func NewPublicationService(
	store *docstore.Store,
	gate *Gate,
	candidates repositories.CandidateRepository,
	published repositories.PublishedRepository,
	tx repositories.TransactionManager,
	now func() time.Time,
	logger *slog.Logger,
) services.PublicationService {
	return &publicationService{
		store:      store,
		gate:       gate,
		candidates: candidates,
		published:  published,
		tx:         tx,
		now:        now,
		logger:     logger,
	}
}

// Publish promotes a candidate to the published table.
func (s *publicationService) Publish(ctx context.Context, caller string, req *services.PublishRequest) (*models.PublishedDocument, error) {
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

	cand, ok := s.store.CandidateByKey(req.ItemID, req.FactionID, req.LanguageID)
	if !ok {
		return nil, fmt.Errorf("%w: candidate for item %d faction %d language %d",
			domain.ErrNotFound, req.ItemID, req.FactionID, req.LanguageID)
	}

	if _, exists := s.store.PublishedByKey(req.ItemID, req.FactionID, req.LanguageID); exists {
		return nil, fmt.Errorf("%w: published document for item %d faction %d language %d",
			domain.ErrDuplicateKey, req.ItemID, req.FactionID, req.LanguageID)
	}

	pub := models.PublishedDocument{
		RowID:      s.store.NextPublishedID(),
		ItemID:     cand.ItemID,
		FactionID:  cand.FactionID,
		LanguageID: cand.LanguageID,
		CategoryID: cand.CategoryID,
		Author:     cand.Author,
		Title:      cand.Title,
		Content:    cand.Content,
		ApprovedAt: s.now().UTC(),
		ApprovedBy: req.Editor,
	}

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.published.Insert(txCtx, &pub); err != nil {
			return err
		}
		return s.candidates.Delete(txCtx, cand.RowID)
	})
	if err != nil {
		return nil, err
	}

	s.store.PutPublished(pub)
	s.store.EraseCandidate(cand.RowID)

	s.logger.Info("document published",
		"row_id", pub.RowID,
		"item_id", pub.ItemID,
		"faction_id", pub.FactionID,
		"language_id", pub.LanguageID,
		"approved_by", pub.ApprovedBy,
	)

	return &pub, nil
}

// Unpublish removes a published document.
func (s *publicationService) Unpublish(ctx context.Context, caller string, req *services.UnpublishRequest) error {
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

	pub, ok := s.store.PublishedByKey(req.ItemID, req.FactionID, req.LanguageID)
	if !ok {
		return fmt.Errorf("%w: published document for item %d faction %d language %d",
			domain.ErrNotFound, req.ItemID, req.FactionID, req.LanguageID)
	}

	if err := s.published.Delete(ctx, pub.RowID); err != nil {
		return err
	}
	s.store.ErasePublished(pub.RowID)

	s.logger.Info("document unpublished", "row_id", pub.RowID, "item_id", pub.ItemID, "editor", req.Editor)

	return nil
}

// GetPublished returns the published document for a composite triple.
func (s *publicationService) GetPublished(ctx context.Context, itemID uint64, factionID, languageID uint32) (*models.PublishedDocument, error) {
	s.store.Lock()
	defer s.store.Unlock()

	pub, ok := s.store.PublishedByKey(itemID, factionID, languageID)
	if !ok {
		return nil, fmt.Errorf("%w: published document for item %d faction %d language %d",
			domain.ErrNotFound, itemID, factionID, languageID)
	}
	return &pub, nil
}

// ListPublished returns published documents, via the category index when a
// filter is given.
func (s *publicationService) ListPublished(ctx context.Context, categoryID *uint64) ([]models.PublishedDocument, error) {
	s.store.Lock()
	defer s.store.Unlock()

	if categoryID != nil {
		return s.store.PublishedByCategory(*categoryID), nil
	}
	return s.store.Published(), nil
}
