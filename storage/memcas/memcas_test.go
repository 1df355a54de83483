package memcas

import (
	"bytes"
	"testing"

	"xdao.co/cid/storage"
	"xdao.co/cid/storage/testkit"
)

func TestMemCAS_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		t.Helper()
		return New()
	})
}

func TestMemCAS_GetCopiesBytes(t *testing.T) {
	cas := New()
	want := []byte("mutate me")
	id, err := cas.Put(want)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got[0] ^= 0xff

	again, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(again, want) {
		t.Fatalf("stored object mutated through Get result")
	}
	if cas.Len() != 1 {
		t.Fatalf("Len: got %d want 1", cas.Len())
	}
}
