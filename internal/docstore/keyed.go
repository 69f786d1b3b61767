package docstore

import "sort"

// Table is an ordered collection of rows addressed by a synthetic uint64 id.
// Ids are assigned sequentially starting at 1 and are never reused, so a row
// id observed by a caller stays dead after its row is erased.
type Table[T any] struct {
	rows   map[uint64]T
	nextID uint64
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[uint64]T), nextID: 1}
}

// NextID returns the id the next inserted row will receive.
func (t *Table[T]) NextID() uint64 {
	return t.nextID
}

// Insert stores row under the next sequential id and returns that id.
func (t *Table[T]) Insert(row T) uint64 {
	id := t.nextID
	t.nextID++
	t.rows[id] = row
	return id
}

// Put stores row under an explicit id and advances the id sequence past it.
// It serves two cases: restoring rows from persistence at boot, and tables
// whose ids are caller-chosen rather than synthetic (categories).
func (t *Table[T]) Put(id uint64, row T) {
	t.rows[id] = row
	if id >= t.nextID {
		t.nextID = id + 1
	}
}

// Get returns the row stored under id.
func (t *Table[T]) Get(id uint64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Erase removes the row stored under id and reports whether it existed.
func (t *Table[T]) Erase(id uint64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Scan returns all rows in ascending id order.
func (t *Table[T]) Scan() []T {
	ids := make([]uint64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Unique is a secondary index mapping a derived composite key to at most one
// row id. Insertion with a colliding key is refused.
type Unique[K comparable] struct {
	m map[K]uint64
}

// NewUnique returns an empty unique index.
func NewUnique[K comparable]() *Unique[K] {
	return &Unique[K]{m: make(map[K]uint64)}
}

// Lookup returns the row id registered under key.
func (u *Unique[K]) Lookup(key K) (uint64, bool) {
	id, ok := u.m[key]
	return id, ok
}

// Put registers id under key and reports whether the key was free.
func (u *Unique[K]) Put(key K, id uint64) bool {
	if _, taken := u.m[key]; taken {
		return false
	}
	u.m[key] = id
	return true
}

// Delete removes the entry for key, if any.
func (u *Unique[K]) Delete(key K) {
	delete(u.m, key)
}

// Multi is a secondary index mapping a derived key to every matching row id,
// kept in ascending id order. Lookups are exact-match scans used to answer
// questions like "all editor rows for this account".
type Multi[K comparable] struct {
	m map[K][]uint64
}

// NewMulti returns an empty non-unique index.
func NewMulti[K comparable]() *Multi[K] {
	return &Multi[K]{m: make(map[K][]uint64)}
}

// Lookup returns the row ids registered under key in ascending order. The
// returned slice is shared; callers must not mutate it.
func (m *Multi[K]) Lookup(key K) []uint64 {
	return m.m[key]
}

// Put registers id under key, preserving ascending order.
func (m *Multi[K]) Put(key K, id uint64) {
	ids := m.m[key]
	at := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	ids = append(ids, 0)
	copy(ids[at+1:], ids[at:])
	ids[at] = id
	m.m[key] = ids
}

// Delete removes id from the entry for key, if present.
func (m *Multi[K]) Delete(key K, id uint64) {
	ids := m.m[key]
	for i, candidate := range ids {
		if candidate == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(m.m, key)
		return
	}
	m.m[key] = ids
}
