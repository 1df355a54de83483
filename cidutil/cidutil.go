package cidutil

import (
	"github.com/multiformats/go-multihash"

	"xdao.co/cid/cid"
)

// CIDv1RawSHA256 returns the text form of a v1 identifier using the "raw"
// codec and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return cid.NewV1(cid.Raw, sum).String()
}

// CIDv1RawSHA256CID returns a v1 (raw + sha2-256) identifier derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewV1(cid.Raw, sum), nil
}
