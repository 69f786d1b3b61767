package docstore

// Key128 is a packed 128-bit composite key used by the document indexes.
//
// Layout:
//
//	Hi (bits 127..64): item identifier
//	Lo (bits  63..32): faction identifier
//	Lo (bits  31..0):  language identifier
//
// Keys are compared for exact-match lookup only; the packing exists so that
// a three-dimensional address collapses into a single comparable value, with
// rows for one item grouped by faction. Key128 is an internal index
// optimisation and never leaves the store.
type Key128 struct {
	Hi uint64
	Lo uint64
}

// CompositeKey packs a document's (item, faction, language) triple.
func CompositeKey(itemID uint64, factionID, languageID uint32) Key128 {
	return Key128{Hi: itemID, Lo: uint64(factionID)<<32 | uint64(languageID)}
}

// FacetKey packs a (faction, language) pair into a single 64-bit value,
// faction in the high 32 bits and language in the low 32. Author grants are
// keyed by account plus this facet.
func FacetKey(factionID, languageID uint32) uint64 {
	return uint64(factionID)<<32 | uint64(languageID)
}

// AuthorKey addresses one author grant. Accounts are textual, so the grant
// key combines the account with the packed facet rather than folding the
// account into the wide integer.
type AuthorKey struct {
	Account string
	Facet   uint64
}

// NewAuthorKey builds the unique key for an (account, faction, language)
// author grant.
func NewAuthorKey(account string, factionID, languageID uint32) AuthorKey {
	return AuthorKey{Account: account, Facet: FacetKey(factionID, languageID)}
}
