package cid

// Map associates values with identifiers. Buckets are keyed by the KeyHash
// projection; structural equality resolves window collisions, so two
// distinct instances of the same identifier always address the same entry.
//
// Not safe for concurrent use; callers wrap with their own lock.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	size    int
}

type mapEntry[V any] struct {
	key Cid
	val V
}

// NewMap returns an empty map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V])}
}

// Set stores val under key, replacing any existing entry for an equal key.
func (m *Map[V]) Set(key Cid, val V) {
	h := key.KeyHash()
	for i, e := range m.buckets[h] {
		if e.key.Equals(key) {
			m.buckets[h][i].val = val
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], mapEntry[V]{key: key, val: val})
	m.size++
}

// Get returns the value stored under a key equal to key.
func (m *Map[V]) Get(key Cid) (V, bool) {
	for _, e := range m.buckets[key.KeyHash()] {
		if e.key.Equals(key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry for key, reporting whether one existed.
func (m *Map[V]) Delete(key Cid) bool {
	h := key.KeyHash()
	bucket := m.buckets[h]
	for i, e := range bucket {
		if e.key.Equals(key) {
			m.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			if len(m.buckets[h]) == 0 {
				delete(m.buckets, h)
			}
			m.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return m.size }

// Visit calls fn for every entry until fn returns false. Iteration order is
// unspecified.
func (m *Map[V]) Visit(fn func(Cid, V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.val) {
				return
			}
		}
	}
}

// Set is identifier membership on the same projection as Map.
type Set struct {
	m *Map[struct{}]
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{m: NewMap[struct{}]()}
}

// Add inserts c. Adding an equal identifier twice is a no-op.
func (s *Set) Add(c Cid) { s.m.Set(c, struct{}{}) }

// Has reports membership.
func (s *Set) Has(c Cid) bool {
	_, ok := s.m.Get(c)
	return ok
}

// Remove deletes c, reporting whether it was present.
func (s *Set) Remove(c Cid) bool { return s.m.Delete(c) }

// Len returns the number of members.
func (s *Set) Len() int { return s.m.Len() }

// Visit calls fn for every member until fn returns false.
func (s *Set) Visit(fn func(Cid) bool) {
	s.m.Visit(func(c Cid, _ struct{}) bool { return fn(c) })
}
