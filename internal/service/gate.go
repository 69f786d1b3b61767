package service

import (
	"fmt"

	"lorebook/internal/docstore"
	"lorebook/internal/domain"
)

// Gate performs the caller checks shared by every workflow operation: caller
// identity, role membership, and the privileged-operator bypass. The operator
// identity is configured at construction, never ambient.
type Gate struct {
	operator string
}

// NewGate creates a gate with the configured operator account.
func NewGate(operator string) *Gate {
	return &Gate{operator: operator}
}

// Operator returns the configured operator account.
func (g *Gate) Operator() string {
	return g.operator
}

// RequireSelf fails unless the caller is the expected account.
func (g *Gate) RequireSelf(caller, account string) error {
	if caller != account {
		return fmt.Errorf("%w: caller %q is not %q", domain.ErrUnauthorized, caller, account)
	}
	return nil
}

// RequireOperator fails unless the caller is the privileged operator.
func (g *Gate) RequireOperator(caller string) error {
	if caller != g.operator {
		return fmt.Errorf("%w: operator authorisation required", domain.ErrUnauthorized)
	}
	return nil
}

// RequireEditor fails unless the caller holds an editor grant for factionID.
// An account may hold grants for several factions, so this scans the
// account-keyed index and filters by faction instead of doing a unique
// lookup. Caller must hold the store lock.
func (g *Gate) RequireEditor(st *docstore.Store, caller string, factionID uint32) error {
	for _, e := range st.EditorsByAccount(caller) {
		if e.FactionID == factionID {
			return nil
		}
	}
	return fmt.Errorf("%w: %q holds no editor grant for faction %d", domain.ErrNotRegistered, caller, factionID)
}

// RequireAuthor fails unless the caller holds an author grant for the
// faction and language. Caller must hold the store lock.
func (g *Gate) RequireAuthor(st *docstore.Store, caller string, factionID, languageID uint32) error {
	if _, ok := st.AuthorByKey(caller, factionID, languageID); !ok {
		return fmt.Errorf("%w: %q holds no author grant for faction %d language %d",
			domain.ErrNotRegistered, caller, factionID, languageID)
	}
	return nil
}
