package cidutil

import (
	"testing"

	"xdao.co/cid/cid"
)

func TestCIDv1RawSHA256_AgreesWithDecode(t *testing.T) {
	data := []byte("hello, cidutil")

	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if id.Version() != cid.V1 || id.Codec() != cid.Raw {
		t.Fatalf("unexpected identifier: %s %s", id.Version(), id.Codec())
	}

	text := CIDv1RawSHA256(data)
	if text != id.String() {
		t.Fatalf("text form mismatch: got %q want %q", text, id.String())
	}
	back, err := cid.Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !back.Equals(id) {
		t.Fatalf("round trip mismatch")
	}
}

func TestCIDv1RawSHA256_KnownVector(t *testing.T) {
	// The same identifier in its base32 rendering, from the multibase
	// conformance corpus: raw + sha2-256 over "foo".
	known, err := cid.Decode("bafkreibme22gw2h7y2h7tg2fhqotaqjucnbc24deqo72b6mkl2egezxhvy")
	if err != nil {
		t.Fatalf("Decode known vector: %v", err)
	}

	id, err := CIDv1RawSHA256CID([]byte("foo"))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if !id.Equals(known) {
		t.Fatalf("derivation disagrees with known vector: %s vs %s", id, known)
	}
}
