package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lorebook/internal/config"
	"lorebook/internal/domain/models"
)

// RoleService manages the author and editor grant tables. Author grants are
// managed by editors of the same faction; editor grants only by the
// privileged operator.
type RoleService interface {
	RegisterAuthor(ctx context.Context, caller string, req *RegisterAuthorRequest) (*models.Author, error)
	DeleteAuthor(ctx context.Context, caller string, req *DeleteAuthorRequest) error
	ListAuthors(ctx context.Context, caller string) ([]models.Author, error)

	RegisterEditor(ctx context.Context, caller string, req *RegisterEditorRequest) (*models.Editor, error)
	DeleteEditor(ctx context.Context, caller string, req *DeleteEditorRequest) error
	ListEditors(ctx context.Context, caller string) ([]models.Editor, error)
}

// CategoryService manages the category lookup table, reachable only by the
// privileged operator except for listing.
type CategoryService interface {
	SetCategory(ctx context.Context, caller string, req *SetCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, caller string, categoryID uint64) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// RegisterAuthorRequest grants an account author rights for one faction and
// language. Editor names the acting editor, which must match the caller.
type RegisterAuthorRequest struct {
	Author     string `json:"author"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	Editor     string `json:"editor"`
}

// Validate checks field shape.
func (r *RegisterAuthorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Author, validation.Required, validation.Length(1, config.MaxAccountLength)),
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// DeleteAuthorRequest revokes an author grant.
type DeleteAuthorRequest struct {
	Author     string `json:"author"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	Editor     string `json:"editor"`
}

// Validate checks field shape.
func (r *DeleteAuthorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Author, validation.Required, validation.Length(1, config.MaxAccountLength)),
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// RegisterEditorRequest grants an account editor rights for one faction.
type RegisterEditorRequest struct {
	Editor    string `json:"editor"`
	FactionID uint32 `json:"faction_id"`
}

// Validate checks field shape.
func (r *RegisterEditorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// DeleteEditorRequest revokes one editor grant for a faction.
type DeleteEditorRequest struct {
	Editor    string `json:"editor"`
	FactionID uint32 `json:"faction_id"`
}

// Validate checks field shape.
func (r *DeleteEditorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Editor, validation.Required, validation.Length(1, config.MaxAccountLength)),
	)
}

// SetCategoryRequest creates or updates a category under an operator-chosen id.
type SetCategoryRequest struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks field shape.
func (r *SetCategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, config.MaxCategoryNameLength)),
		validation.Field(&r.Description, validation.Length(0, config.MaxCategoryDescriptionLength)),
	)
}
