package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableInsertAssignsSequentialIDs(t *testing.T) {
	tbl := NewTable[string]()

	assert.Equal(t, uint64(1), tbl.NextID())
	assert.Equal(t, uint64(1), tbl.Insert("a"))
	assert.Equal(t, uint64(2), tbl.Insert("b"))
	assert.Equal(t, uint64(3), tbl.NextID())

	row, ok := tbl.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", row)
}

func TestTableIDsAreNeverReused(t *testing.T) {
	tbl := NewTable[string]()
	id := tbl.Insert("a")

	require.True(t, tbl.Erase(id))
	assert.False(t, tbl.Erase(id))

	assert.Equal(t, uint64(2), tbl.Insert("b"))

	_, ok := tbl.Get(id)
	assert.False(t, ok)
}

func TestTablePutAdvancesSequence(t *testing.T) {
	tbl := NewTable[string]()

	tbl.Put(7, "restored")
	assert.Equal(t, uint64(8), tbl.NextID())

	// Putting below the watermark must not rewind it.
	tbl.Put(3, "older")
	assert.Equal(t, uint64(8), tbl.NextID())

	assert.Equal(t, uint64(8), tbl.Insert("next"))
}

func TestTableScanIsAscending(t *testing.T) {
	tbl := NewTable[string]()
	tbl.Put(3, "c")
	tbl.Put(1, "a")
	tbl.Put(2, "b")

	assert.Equal(t, []string{"a", "b", "c"}, tbl.Scan())
	assert.Equal(t, 3, tbl.Len())
}

func TestUniqueRefusesCollision(t *testing.T) {
	idx := NewUnique[string]()

	require.True(t, idx.Put("k", 1))
	assert.False(t, idx.Put("k", 2))

	id, ok := idx.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, uint64(1), id)

	idx.Delete("k")
	_, ok = idx.Lookup("k")
	assert.False(t, ok)

	assert.True(t, idx.Put("k", 2))
}

func TestMultiKeepsAscendingOrder(t *testing.T) {
	idx := NewMulti[string]()

	idx.Put("k", 3)
	idx.Put("k", 1)
	idx.Put("k", 2)

	assert.Equal(t, []uint64{1, 2, 3}, idx.Lookup("k"))
}

func TestMultiDelete(t *testing.T) {
	idx := NewMulti[string]()
	idx.Put("k", 1)
	idx.Put("k", 2)

	idx.Delete("k", 1)
	assert.Equal(t, []uint64{2}, idx.Lookup("k"))

	// Deleting an absent id is a no-op.
	idx.Delete("k", 99)
	assert.Equal(t, []uint64{2}, idx.Lookup("k"))

	idx.Delete("k", 2)
	assert.Empty(t, idx.Lookup("k"))
}
