package cid

import (
	"fmt"

	mh "github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// Prefix describes how an identifier is built: format version, content
// codec, and the multihash algorithm and digest length. It carries no
// digest and no identity of its own; its one job is deriving fresh
// identifiers from raw content.
type Prefix struct {
	Version  Version
	Codec    Codec
	MhType   uint64
	MhLength int
}

// Sum derives the identifier of data under this prefix. Digest computation
// is delegated to the multihash layer; the result goes through the same
// constructor invariants as any other identifier.
func (p Prefix) Sum(data []byte) (Cid, error) {
	hash, err := mh.Sum(data, p.MhType, p.MhLength)
	if err != nil {
		return Undef, err
	}
	return New(p.Version, p.Codec, hash)
}

// Bytes returns the compact prefix serialization: varint multihash type,
// multihash length, codec and version, in that order. The order is specific
// to Prefix and matches no other structure here.
func (p Prefix) Bytes() []byte {
	buf := make([]byte, 0,
		varint.UvarintSize(p.MhType)+
			varint.UvarintSize(uint64(p.MhLength))+
			varint.UvarintSize(p.Codec.Number())+
			varint.UvarintSize(p.Version.Number()))
	buf = append(buf, varint.ToUvarint(p.MhType)...)
	buf = append(buf, varint.ToUvarint(uint64(p.MhLength))...)
	buf = append(buf, varint.ToUvarint(p.Codec.Number())...)
	return append(buf, varint.ToUvarint(p.Version.Number())...)
}

// PrefixFromBytes parses a prefix serialization, validating the codec and
// version tags. Truncation anywhere surfaces as ErrVarint.
func PrefixFromBytes(buf []byte) (Prefix, error) {
	mhType, n, err := varint.FromUvarint(buf)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %v", ErrVarint, err)
	}
	buf = buf[n:]

	mhLength, n, err := varint.FromUvarint(buf)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %v", ErrVarint, err)
	}
	buf = buf[n:]

	rawCodec, n, err := varint.FromUvarint(buf)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %v", ErrVarint, err)
	}
	buf = buf[n:]

	rawVersion, _, err := varint.FromUvarint(buf)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %v", ErrVarint, err)
	}

	version, err := VersionFromNumber(rawVersion)
	if err != nil {
		return Prefix{}, err
	}
	codec, err := CodecFromNumber(rawCodec)
	if err != nil {
		return Prefix{}, err
	}

	return Prefix{
		Version:  version,
		Codec:    codec,
		MhType:   mhType,
		MhLength: int(mhLength),
	}, nil
}
