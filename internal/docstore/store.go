package docstore

import (
	"sync"

	"lorebook/internal/domain/models"
)

// Store holds the five lorebook tables and their secondary indexes in memory.
//
// The embedded mutex is the single mutual-exclusion boundary for the whole
// store: every operation locks it for its full check-then-mutate sequence, so
// no two calls ever interleave against the same table. The store itself does
// not lock; the service layer owns call boundaries.
type Store struct {
	sync.Mutex

	candidates   *Table[models.CandidateDocument]
	candidateKey *Unique[Key128]

	published    *Table[models.PublishedDocument]
	publishedKey *Unique[Key128]
	byCategory   *Multi[uint64]

	categories *Table[models.Category]

	authors   *Table[models.Author]
	authorKey *Unique[AuthorKey]

	editors   *Table[models.Editor]
	byAccount *Multi[string]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		candidates:   NewTable[models.CandidateDocument](),
		candidateKey: NewUnique[Key128](),
		published:    NewTable[models.PublishedDocument](),
		publishedKey: NewUnique[Key128](),
		byCategory:   NewMulti[uint64](),
		categories:   NewTable[models.Category](),
		authors:      NewTable[models.Author](),
		authorKey:    NewUnique[AuthorKey](),
		editors:      NewTable[models.Editor](),
		byAccount:    NewMulti[string](),
	}
}

// Candidates

// NextCandidateID returns the id the next candidate row will receive.
func (s *Store) NextCandidateID() uint64 {
	return s.candidates.NextID()
}

// CandidateByKey looks up the candidate for a composite triple.
func (s *Store) CandidateByKey(itemID uint64, factionID, languageID uint32) (models.CandidateDocument, bool) {
	id, ok := s.candidateKey.Lookup(CompositeKey(itemID, factionID, languageID))
	if !ok {
		return models.CandidateDocument{}, false
	}
	return s.candidates.Get(id)
}

// PutCandidate stores doc under its RowID and indexes its composite key.
// It reports false if another candidate already claims the triple.
func (s *Store) PutCandidate(doc models.CandidateDocument) bool {
	if !s.candidateKey.Put(CompositeKey(doc.ItemID, doc.FactionID, doc.LanguageID), doc.RowID) {
		return false
	}
	s.candidates.Put(doc.RowID, doc)
	return true
}

// EraseCandidate removes the candidate row and its index entry.
func (s *Store) EraseCandidate(rowID uint64) {
	doc, ok := s.candidates.Get(rowID)
	if !ok {
		return
	}
	s.candidateKey.Delete(CompositeKey(doc.ItemID, doc.FactionID, doc.LanguageID))
	s.candidates.Erase(rowID)
}

// Candidates returns all candidate rows in ascending row-id order.
func (s *Store) Candidates() []models.CandidateDocument {
	return s.candidates.Scan()
}

// Published

// NextPublishedID returns the id the next published row will receive.
func (s *Store) NextPublishedID() uint64 {
	return s.published.NextID()
}

// PublishedByKey looks up the published document for a composite triple.
func (s *Store) PublishedByKey(itemID uint64, factionID, languageID uint32) (models.PublishedDocument, bool) {
	id, ok := s.publishedKey.Lookup(CompositeKey(itemID, factionID, languageID))
	if !ok {
		return models.PublishedDocument{}, false
	}
	return s.published.Get(id)
}

// PutPublished stores doc under its RowID and maintains the composite and
// category indexes. It reports false if the triple is already published.
func (s *Store) PutPublished(doc models.PublishedDocument) bool {
	if !s.publishedKey.Put(CompositeKey(doc.ItemID, doc.FactionID, doc.LanguageID), doc.RowID) {
		return false
	}
	s.published.Put(doc.RowID, doc)
	s.byCategory.Put(doc.CategoryID, doc.RowID)
	return true
}

// ErasePublished removes the published row and its index entries.
func (s *Store) ErasePublished(rowID uint64) {
	doc, ok := s.published.Get(rowID)
	if !ok {
		return
	}
	s.publishedKey.Delete(CompositeKey(doc.ItemID, doc.FactionID, doc.LanguageID))
	s.byCategory.Delete(doc.CategoryID, rowID)
	s.published.Erase(rowID)
}

// PublishedByCategory returns all published rows for a category in ascending
// row-id order, via the category index.
func (s *Store) PublishedByCategory(categoryID uint64) []models.PublishedDocument {
	ids := s.byCategory.Lookup(categoryID)
	out := make([]models.PublishedDocument, 0, len(ids))
	for _, id := range ids {
		if doc, ok := s.published.Get(id); ok {
			out = append(out, doc)
		}
	}
	return out
}

// Published returns all published rows in ascending row-id order.
func (s *Store) Published() []models.PublishedDocument {
	return s.published.Scan()
}

// Categories

// CategoryByID returns the category stored under id.
func (s *Store) CategoryByID(id uint64) (models.Category, bool) {
	return s.categories.Get(id)
}

// UpsertCategory creates or replaces the category under its operator-chosen id.
func (s *Store) UpsertCategory(c models.Category) {
	s.categories.Put(c.ID, c)
}

// EraseCategory removes the category and reports whether it existed.
func (s *Store) EraseCategory(id uint64) bool {
	return s.categories.Erase(id)
}

// Categories returns all categories in ascending id order.
func (s *Store) Categories() []models.Category {
	return s.categories.Scan()
}

// Authors

// NextAuthorID returns the id the next author row will receive.
func (s *Store) NextAuthorID() uint64 {
	return s.authors.NextID()
}

// AuthorByKey looks up the grant for (account, faction, language).
func (s *Store) AuthorByKey(account string, factionID, languageID uint32) (models.Author, bool) {
	id, ok := s.authorKey.Lookup(NewAuthorKey(account, factionID, languageID))
	if !ok {
		return models.Author{}, false
	}
	return s.authors.Get(id)
}

// PutAuthor stores the grant under its RowID and indexes it. It reports
// false if an identical grant already exists.
func (s *Store) PutAuthor(a models.Author) bool {
	if !s.authorKey.Put(NewAuthorKey(a.Account, a.FactionID, a.LanguageID), a.RowID) {
		return false
	}
	s.authors.Put(a.RowID, a)
	return true
}

// EraseAuthor removes the grant row and its index entry.
func (s *Store) EraseAuthor(rowID uint64) {
	a, ok := s.authors.Get(rowID)
	if !ok {
		return
	}
	s.authorKey.Delete(NewAuthorKey(a.Account, a.FactionID, a.LanguageID))
	s.authors.Erase(rowID)
}

// Authors returns all author grants in ascending row-id order.
func (s *Store) Authors() []models.Author {
	return s.authors.Scan()
}

// Editors

// NextEditorID returns the id the next editor row will receive.
func (s *Store) NextEditorID() uint64 {
	return s.editors.NextID()
}

// PutEditor stores the grant under its RowID and indexes it by account.
// Editor registration tolerates duplicate (account, faction) rows, so there
// is no uniqueness check here.
func (s *Store) PutEditor(e models.Editor) {
	s.editors.Put(e.RowID, e)
	s.byAccount.Put(e.Account, e.RowID)
}

// EraseEditor removes the grant row and its index entry.
func (s *Store) EraseEditor(rowID uint64) {
	e, ok := s.editors.Get(rowID)
	if !ok {
		return
	}
	s.byAccount.Delete(e.Account, rowID)
	s.editors.Erase(rowID)
}

// EditorsByAccount returns every editor row held by account in ascending
// row-id order. Role checks scan this and filter by faction, since one
// account may hold grants for several factions.
func (s *Store) EditorsByAccount(account string) []models.Editor {
	ids := s.byAccount.Lookup(account)
	out := make([]models.Editor, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.editors.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Editors returns all editor grants in ascending row-id order.
func (s *Store) Editors() []models.Editor {
	return s.editors.Scan()
}
