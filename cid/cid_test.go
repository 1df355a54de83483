package cid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mr-tron/base58"
	mh "github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"golang.org/x/crypto/sha3"
)

func sha256mh(t *testing.T, data []byte) mh.Multihash {
	t.Helper()
	sum, err := mh.Sum(data, mh.SHA2_256, -1)
	if err != nil {
		t.Fatalf("mh.Sum: %v", err)
	}
	return sum
}

func TestBasicMarshalling(t *testing.T) {
	id := NewV1(DagProtobuf, sha256mh(t, []byte("beep boop")))

	out, err := Cast(id.Bytes())
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if !out.Equals(id) {
		t.Fatalf("binary round trip mismatch: got %s want %s", out, id)
	}

	out2, err := Decode(id.String())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !out2.Equals(id) {
		t.Fatalf("text round trip mismatch: got %s want %s", out2, id)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Decode(""); !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("Decode(\"\"): got %v want ErrInputTooShort", err)
	}
	if _, err := Decode("/ipfs/"); !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("Decode(\"/ipfs/\"): got %v want ErrInputTooShort", err)
	}
}

func TestV0Handling(t *testing.T) {
	const old = "QmdfTbBqBPQ7VNxZEYEj14VmRuZBkqFbiwReogJgS1zR1n"

	id, err := Decode(old)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if id.Version() != V0 {
		t.Fatalf("version: got %s want %s", id.Version(), V0)
	}
	if id.Codec() != DagProtobuf {
		t.Fatalf("codec: got %s want dag-pb", id.Codec())
	}
	if id.String() != old {
		t.Fatalf("String: got %q want %q", id.String(), old)
	}
	if len(id.String()) != 46 {
		t.Fatalf("v0 text length: got %d want 46", len(id.String()))
	}

	out, err := Cast(id.Bytes())
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if !out.Equals(id) {
		t.Fatalf("v0 binary round trip mismatch")
	}
}

func TestV0StringIsSelectorlessBase58(t *testing.T) {
	id, err := NewV0(sha256mh(t, []byte("beep boop")))
	if err != nil {
		t.Fatalf("NewV0: %v", err)
	}
	// The v0 rendering is plain base58btc of the multihash, no multibase
	// selector in front.
	if got, want := id.String(), base58.Encode(id.Hash()); got != want {
		t.Fatalf("v0 rendering: got %q want %q", got, want)
	}
}

func TestV0CorruptedDigest(t *testing.T) {
	// Right shape for v0, but 'I' is outside the base58btc alphabet.
	const bad = "QmdfTbBqBPQ7VNxZEYEj14VmRuZBkqFbiwReogJgS1zIII"
	if _, err := Decode(bad); !errors.Is(err, ErrParse) {
		t.Fatalf("Decode corrupted v0: got %v want ErrParse", err)
	}
}

func TestPathPrefixStripping(t *testing.T) {
	const old = "QmdfTbBqBPQ7VNxZEYEj14VmRuZBkqFbiwReogJgS1zR1n"
	cases := []string{
		"/ipfs/" + old,
		"https://ipfs.io/ipfs/" + old,
		"http://localhost:8080/ipfs/" + old,
	}
	for _, in := range cases {
		id, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		if id.Version() != V0 {
			t.Fatalf("Decode(%q): version %s", in, id.Version())
		}
		if id.String() != old {
			t.Fatalf("Decode(%q): got %q want %q", in, id.String(), old)
		}
	}
}

func TestBase32Vector(t *testing.T) {
	const text = "bafkreibme22gw2h7y2h7tg2fhqotaqjucnbc24deqo72b6mkl2egezxhvy"

	id, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if id.Version() != V1 {
		t.Fatalf("version: got %s want %s", id.Version(), V1)
	}
	if id.Codec() != Raw {
		t.Fatalf("codec: got %s want raw", id.Codec())
	}
	want := sha256mh(t, []byte("foo"))
	if id.Hash().String() != want.String() {
		t.Fatalf("hash: got %s want %s", id.Hash(), want)
	}
}

func TestConstructorInvariants(t *testing.T) {
	sha256 := sha256mh(t, []byte("content"))
	sha512, err := mh.Sum([]byte("content"), mh.SHA2_512, -1)
	if err != nil {
		t.Fatalf("mh.Sum sha2-512: %v", err)
	}

	if _, err := New(V0, Raw, sha256); !errors.Is(err, ErrInvalidV0Codec) {
		t.Fatalf("New(V0, Raw): got %v want ErrInvalidV0Codec", err)
	}
	if _, err := New(V0, DagProtobuf, sha512); !errors.Is(err, ErrInvalidV0Multihash) {
		t.Fatalf("New(V0, sha2-512): got %v want ErrInvalidV0Multihash", err)
	}
	if _, err := NewV0(sha512); !errors.Is(err, ErrInvalidV0Multihash) {
		t.Fatalf("NewV0(sha2-512): got %v want ErrInvalidV0Multihash", err)
	}
	if _, err := New(Version(7), Raw, sha256); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("New(version 7): got %v want ErrUnknownVersion", err)
	}

	// V1 accepts any codec/digest pairing.
	id := NewV1(ZcashBlock, sha512)
	if id.Codec() != ZcashBlock || id.Version() != V1 {
		t.Fatalf("NewV1 fields: %s %s", id.Version(), id.Codec())
	}
}

func TestCastRejections(t *testing.T) {
	valid := sha256mh(t, []byte("x"))

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"truncated varint", []byte{0x80}, ErrVarint},
		{"empty", nil, ErrVarint},
		{"unknown version", append(varint.ToUvarint(9), varint.ToUvarint(uint64(Raw))...), ErrUnknownVersion},
		{"unknown codec", append(varint.ToUvarint(1), varint.ToUvarint(0x99)...), ErrUnknownCodec},
		{"truncated digest", append(append(varint.ToUvarint(1), varint.ToUvarint(uint64(Raw))...), 0x12, 0x20, 0x01), ErrParse},
	}
	for _, tc := range cases {
		if _, err := Cast(tc.data); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, err, tc.want)
		}
	}

	// A v0 body with flipped tag bytes is not v0-shaped and has no valid tags.
	corrupt := append([]byte(nil), valid...)
	corrupt[1] = 0x21
	if _, err := Cast(corrupt); err == nil {
		t.Fatalf("Cast of corrupted v0 body succeeded")
	}
}

func TestVersionDispatchSymmetry(t *testing.T) {
	v0, err := NewV0(sha256mh(t, []byte("symmetry")))
	if err != nil {
		t.Fatalf("NewV0: %v", err)
	}
	v1 := NewV1(Raw, sha256mh(t, []byte("symmetry")))

	for _, id := range []Cid{v0, v1} {
		fromBytes, err := Cast(id.Bytes())
		if err != nil {
			t.Fatalf("%s: Cast(Bytes): %v", id.Version(), err)
		}
		if !fromBytes.Equals(id) || fromBytes.Version() != id.Version() {
			t.Fatalf("%s: binary branch mismatch", id.Version())
		}
		fromText, err := Decode(id.String())
		if err != nil {
			t.Fatalf("%s: Decode(String): %v", id.Version(), err)
		}
		if !fromText.Equals(id) || fromText.Version() != id.Version() {
			t.Fatalf("%s: text branch mismatch", id.Version())
		}
	}

	// The two generations must not collide: same digest, different forms.
	if v0.String() == v1.String() || string(v0.Bytes()) == string(v1.Bytes()) {
		t.Fatalf("v0 and v1 forms collided")
	}
}

func TestVersionNumbers(t *testing.T) {
	for n := uint64(0); n < 2; n++ {
		v, err := VersionFromNumber(n)
		if err != nil {
			t.Fatalf("VersionFromNumber(%d): %v", n, err)
		}
		if v.Number() != n {
			t.Fatalf("Number: got %d want %d", v.Number(), n)
		}
	}
	if _, err := VersionFromNumber(2); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("VersionFromNumber(2): got %v want ErrUnknownVersion", err)
	}
}

func TestCodecNumbers(t *testing.T) {
	for c := range codecNames {
		got, err := CodecFromNumber(c.Number())
		if err != nil {
			t.Fatalf("CodecFromNumber(%#x): %v", c.Number(), err)
		}
		if got != c {
			t.Fatalf("CodecFromNumber(%#x): got %#x", c.Number(), got.Number())
		}
	}
	if _, err := CodecFromNumber(0x99); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("CodecFromNumber(0x99): got %v want ErrUnknownCodec", err)
	}
}

func TestSha3DigestAgreesWithRawHash(t *testing.T) {
	data := []byte("keccak family cross-check")
	sum, err := mh.Sum(data, mh.SHA3_256, -1)
	if err != nil {
		t.Fatalf("mh.Sum sha3-256: %v", err)
	}
	dec, err := mh.Decode(sum)
	if err != nil {
		t.Fatalf("mh.Decode: %v", err)
	}
	raw := sha3.Sum256(data)
	if string(dec.Digest) != string(raw[:]) {
		t.Fatalf("sha3-256 digest disagrees with direct hash")
	}

	id := NewV1(Raw, sum)
	out, err := Decode(id.String())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !out.Equals(id) {
		t.Fatalf("sha3 identifier round trip mismatch")
	}
}

func TestImmutability(t *testing.T) {
	buf := []byte("caller owned")
	sum := sha256mh(t, buf)
	id := NewV1(Raw, sum)

	// Mutating the input multihash must not affect the identifier.
	sum[5] ^= 0xff
	if id.Hash().String() == sum.String() {
		t.Fatalf("identifier aliases caller multihash")
	}

	// Mutating returned forms must not affect subsequent calls.
	b := id.Bytes()
	b[0] ^= 0xff
	if string(id.Bytes()) == string(b) {
		t.Fatalf("Bytes returns aliased buffer")
	}
	h := id.Hash()
	h[2] ^= 0xff
	if id.Hash().String() == h.String() {
		t.Fatalf("Hash returns aliased buffer")
	}
}

func TestUndef(t *testing.T) {
	if Undef.Defined() {
		t.Fatalf("Undef reports Defined")
	}
	var zero Cid
	if !zero.Equals(Undef) {
		t.Fatalf("zero value differs from Undef")
	}
	if got := Undef.Prefix(); got != (Prefix{}) {
		t.Fatalf("Undef.Prefix: got %+v", got)
	}
}

func TestStringer(t *testing.T) {
	id := NewV1(Raw, sha256mh(t, []byte("fmt")))
	if got := fmt.Sprintf("%s", id); got != id.String() {
		t.Fatalf("Stringer: got %q want %q", got, id.String())
	}
}
