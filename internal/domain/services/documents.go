package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lorebook/internal/config"
	"lorebook/internal/domain/models"
)

// CandidateService handles the unpublished half of the document workflow.
// The caller argument on every method is the verified account identity the
// boundary layer extracted; it is never taken from the request body.
type CandidateService interface {
	// AddDocument submits a candidate document. The caller must be the
	// named author and hold an author grant for the faction and language.
	AddDocument(ctx context.Context, caller string, req *AddDocumentRequest) (*models.CandidateDocument, error)

	// DeleteDocument removes a candidate. Only the document's author may
	// delete it; editors cannot.
	DeleteDocument(ctx context.Context, caller string, req *DeleteDocumentRequest) error

	// GetDocument returns the candidate for a composite triple.
	GetDocument(ctx context.Context, itemID uint64, factionID, languageID uint32) (*models.CandidateDocument, error)

	// ListDocuments returns all candidates for a faction and language.
	ListDocuments(ctx context.Context, factionID, languageID uint32) ([]models.CandidateDocument, error)
}

// PublicationService handles the published half of the workflow.
type PublicationService interface {
	// Publish promotes the candidate addressed by the composite triple to
	// the published table, stamping approval time and editor. The caller
	// must be the named editor and hold an editor grant for the faction.
	// The candidate row is consumed by the transition.
	Publish(ctx context.Context, caller string, req *PublishRequest) (*models.PublishedDocument, error)

	// Unpublish removes a published document. Content is discarded; there
	// is no way back to the candidate stage.
	Unpublish(ctx context.Context, caller string, req *UnpublishRequest) error

	// GetPublished returns the published document for a composite triple.
	GetPublished(ctx context.Context, itemID uint64, factionID, languageID uint32) (*models.PublishedDocument, error)

	// ListPublished returns published documents, filtered by category when
	// categoryID is non-nil.
	ListPublished(ctx context.Context, categoryID *uint64) ([]models.PublishedDocument, error)
}

// AddDocumentRequest submits a candidate document.
type AddDocumentRequest struct {
	ItemID     uint64 `json:"item_id"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	CategoryID uint64 `json:"category_id"`
	Author     string `json:"author"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// Validate checks field shape only; faction/language id domains are the
// caller's concern.
func (r *AddDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Author, validation.Required, validation.Length(1, config.MaxAccountLength)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&r.Content, validation.Required, validation.Length(1, config.MaxContentLength)),
	)
}

// DeleteDocumentRequest removes a candidate document.
type DeleteDocumentRequest struct {
	ItemID     uint64 `json:"item_id"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	Author     string `json:"author"`
}

// Validate checks field shape.
func (r *DeleteDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Author, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// PublishRequest promotes a candidate to the published table.
type PublishRequest struct {
	ItemID     uint64 `json:"item_id"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	Editor     string `json:"editor"`
}

// Validate checks field shape.
func (r *PublishRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// UnpublishRequest removes a published document.
type UnpublishRequest struct {
	ItemID     uint64 `json:"item_id"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	Editor     string `json:"editor"`
}

// Validate checks field shape.
func (r *UnpublishRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}
