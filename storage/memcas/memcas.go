package memcas

import (
	"sync"

	"xdao.co/cid/cid"
	"xdao.co/cid/cidutil"
	"xdao.co/cid/storage"
)

// CAS is an in-memory content-addressable store.
//
// Objects live for the lifetime of the process and are keyed by identifier
// through the cid package's own map. Safe for concurrent use.
type CAS struct {
	mu      sync.RWMutex
	objects *cid.Map[[]byte]
}

// New constructs an empty in-memory CAS.
func New() *CAS {
	return &CAS{objects: cid.NewMap[[]byte]()}
}

var _ storage.CAS = (*CAS)(nil)

func (c *CAS) Put(bytes []byte) (cid.Cid, error) {
	id, err := cidutil.CIDv1RawSHA256CID(bytes)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, storage.ErrInvalidCID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.objects.Get(id); !ok {
		c.objects.Set(id, append([]byte(nil), bytes...))
	}
	return id, nil
}

func (c *CAS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	c.mu.RLock()
	b, ok := c.objects.Get(id)
	c.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (c *CAS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.objects.Get(id)
	return ok
}

// Len returns the number of stored objects.
func (c *CAS) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.objects.Len()
}
