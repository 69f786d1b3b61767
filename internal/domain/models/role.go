package models

// Author grants an account permission to submit candidate documents for one
// faction and language. An account may hold several grants, but at most one
// per (account, faction, language) combination.
type Author struct {
	RowID      uint64 `json:"row_id"`
	Account    string `json:"account"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
}

// Editor grants an account permission to publish and unpublish documents and
// to manage authors for one faction. Registration does not deduplicate, so an
// account may end up with several identical rows; delete removes the first
// matching one.
type Editor struct {
	RowID     uint64 `json:"row_id"`
	Account   string `json:"account"`
	FactionID uint32 `json:"faction_id"`
}
