// Package cid implements self-describing, versioned, typed content
// identifiers: a content-type codec and a multihash digest packed into a
// single immutable value with canonical binary and text forms.
//
// Two format generations exist. V1 serializes as
// varint(version) || varint(codec) || multihash and renders as a multibase
// string. V0 predates both conventions: its binary form is the bare
// sha2-256 multihash and its text form is base58btc with the multibase
// selector stripped. Both decoders re-derive the generation from the
// serialized form alone, so a round trip never needs an external version
// hint.
package cid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	mh "github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// Cid is an immutable content identifier. Construct one with New, NewV0,
// NewV1, Prefix.Sum, or the Cast/Decode parsers; never mutate it afterward.
// Values own their digest bytes and are safe to share across goroutines.
type Cid struct {
	version Version
	codec   Codec
	hash    mh.Multihash
}

// Undef is the undefined identifier. It is not a valid value for any
// operation; callers gate with Defined.
var Undef = Cid{}

// NewV0 constructs a legacy identifier. The multihash algorithm must be
// sha2-256 and the codec is implicitly dag-pb.
func NewV0(hash mh.Multihash) (Cid, error) {
	dec, err := mh.Decode(hash)
	if err != nil {
		return Undef, fmt.Errorf("%w: %v", ErrInvalidV0Multihash, err)
	}
	if dec.Code != mh.SHA2_256 {
		return Undef, ErrInvalidV0Multihash
	}
	return Cid{version: V0, codec: DagProtobuf, hash: owned(hash)}, nil
}

// NewV1 constructs a current-format identifier. It cannot fail: v1 places
// no restriction on the codec or on the digest algorithm.
func NewV1(codec Codec, hash mh.Multihash) Cid {
	return Cid{version: V1, codec: codec, hash: owned(hash)}
}

// New constructs an identifier, enforcing the v0 invariants when version
// is V0.
func New(version Version, codec Codec, hash mh.Multihash) (Cid, error) {
	switch version {
	case V0:
		if codec != DagProtobuf {
			return Undef, ErrInvalidV0Codec
		}
		return NewV0(hash)
	case V1:
		return NewV1(codec, hash), nil
	default:
		return Undef, ErrUnknownVersion
	}
}

// owned deep-copies a multihash so no identifier aliases caller memory.
func owned(h mh.Multihash) mh.Multihash {
	return mh.Multihash(append([]byte(nil), h...))
}

// Version returns the identifier's format generation.
func (c Cid) Version() Version { return c.version }

// Codec returns the identifier's content-type tag.
func (c Cid) Codec() Codec { return c.codec }

// Hash returns a copy of the identifier's multihash.
func (c Cid) Hash() mh.Multihash { return owned(c.hash) }

// Defined reports whether c is a constructed identifier rather than Undef.
func (c Cid) Defined() bool { return len(c.hash) != 0 }

// Equals reports structural equality: version, codec and digest all equal.
func (c Cid) Equals(o Cid) bool {
	return c.version == o.version && c.codec == o.codec && bytes.Equal(c.hash, o.hash)
}

// KeyHash is the 64-bit projection Set and Map bucket by: a native-order
// read of bytes 1..9 of the multihash serialized form, i.e. the first eight
// raw digest bytes of a standard-length hash. Window collisions are
// possible; Equals stays authoritative for membership.
//
// Digests with fewer than 8 raw bytes cannot fill the window and all
// project to 0.
func (c Cid) KeyHash() uint64 {
	if len(c.hash) < 9 {
		return 0
	}
	return binary.LittleEndian.Uint64(c.hash[1:9])
}

// Bytes returns the canonical binary form: the bare multihash for v0,
// varint version and codec tags followed by the multihash for v1.
func (c Cid) Bytes() []byte {
	switch c.version {
	case V0:
		return c.bytesV0()
	default:
		return c.bytesV1()
	}
}

func (c Cid) bytesV0() []byte {
	return append([]byte(nil), c.hash...)
}

func (c Cid) bytesV1() []byte {
	buf := make([]byte, 0,
		varint.UvarintSize(c.version.Number())+
			varint.UvarintSize(c.codec.Number())+
			len(c.hash))
	buf = append(buf, varint.ToUvarint(c.version.Number())...)
	buf = append(buf, varint.ToUvarint(c.codec.Number())...)
	return append(buf, c.hash...)
}

// String returns the canonical text form: base58btc of the binary form,
// with the multibase selector stripped for v0 (v0 predates multibase).
func (c Cid) String() string {
	switch c.version {
	case V0:
		return c.stringV0()
	default:
		return c.stringV1()
	}
}

func (c Cid) stringV0() string {
	s, err := multibase.Encode(multibase.Base58BTC, c.hash)
	if err != nil {
		// Base58BTC is compiled into multibase; Encode only fails for
		// unknown encodings.
		panic(err)
	}
	return s[1:]
}

func (c Cid) stringV1() string {
	s, err := multibase.Encode(multibase.Base58BTC, c.bytesV1())
	if err != nil {
		panic(err)
	}
	return s
}

// Cast parses the canonical binary form. The generation is re-derived from
// the bytes alone: a buffer shaped exactly like a sha2-256 multihash can
// only be v0, since v0 carries no tags to read.
func Cast(data []byte) (Cid, error) {
	if isV0Binary(data) {
		hash, err := mh.Cast(data)
		if err != nil {
			return Undef, fmt.Errorf("%w: %v", ErrInvalidV0Multihash, err)
		}
		return NewV0(hash)
	}

	rawVersion, n, err := varint.FromUvarint(data)
	if err != nil {
		return Undef, fmt.Errorf("%w: %v", ErrVarint, err)
	}
	rawCodec, m, err := varint.FromUvarint(data[n:])
	if err != nil {
		return Undef, fmt.Errorf("%w: %v", ErrVarint, err)
	}

	version, err := VersionFromNumber(rawVersion)
	if err != nil {
		return Undef, err
	}
	codec, err := CodecFromNumber(rawCodec)
	if err != nil {
		return Undef, err
	}

	// mh.Cast rejects truncated digests and trailing bytes alike.
	hash, err := mh.Cast(data[n+m:])
	if err != nil {
		return Undef, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return New(version, codec, hash)
}

// pathDelimiter lets Decode accept identifiers embedded in gateway URLs and
// IPFS paths. Everything up to and including the last occurrence is
// discarded.
const pathDelimiter = "/ipfs/"

// Decode parses the canonical text form. A v0-shaped string gets the
// base58btc multibase selector re-prepended before decoding; everything
// else decodes as a standard multibase string. The decoded bytes then go
// through Cast.
func Decode(s string) (Cid, error) {
	if i := strings.LastIndex(s, pathDelimiter); i >= 0 {
		s = s[i+len(pathDelimiter):]
	}
	if len(s) < 2 {
		return Undef, ErrInputTooShort
	}
	if isV0String(s) {
		s = string(rune(multibase.Base58BTC)) + s
	}
	_, data, err := multibase.Decode(s)
	if err != nil {
		return Undef, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Cast(data)
}

// Prefix projects the identifier's construction descriptor. The digest
// self-describes its algorithm and length, so this never fails for a
// defined identifier; Undef projects the zero Prefix.
func (c Cid) Prefix() Prefix {
	dec, err := mh.Decode(c.hash)
	if err != nil {
		return Prefix{}
	}
	return Prefix{
		Version:  c.version,
		Codec:    c.codec,
		MhType:   dec.Code,
		MhLength: dec.Length,
	}
}
