package cid

// Version tags the identifier format generation.
type Version uint64

const (
	// V0 is the original prefix-less format: a bare sha2-256 multihash,
	// always read as dag-pb content.
	V0 Version = 0

	// V1 carries explicit version and codec tags ahead of the multihash.
	V1 Version = 1
)

// The v0 binary form is exactly a serialized sha2-256 multihash:
// 0x12 0x20 followed by 32 digest bytes.
const (
	v0BinaryLen = 34
	v0MhCode    = 0x12 // sha2-256
	v0DigestLen = 0x20 // 32 bytes
)

// The v0 text form is the base58btc rendering of that multihash:
// 46 characters, always starting "Qm".
const (
	v0StringLen    = 46
	v0StringPrefix = "Qm"
)

// VersionFromNumber validates a numeric version tag.
func VersionFromNumber(n uint64) (Version, error) {
	switch n {
	case 0:
		return V0, nil
	case 1:
		return V1, nil
	default:
		return 0, ErrUnknownVersion
	}
}

// Number returns the numeric tag. Total, and the inverse of VersionFromNumber.
func (v Version) Number() uint64 { return uint64(v) }

func (v Version) String() string {
	switch v {
	case V0:
		return "cidv0"
	case V1:
		return "cidv1"
	default:
		return "cidv?"
	}
}

// isV0Binary reports whether buf can only be a v0 identifier. It must run
// before any varint read: v0 carries no version or codec tags at all, so the
// only signal is the exact shape of a sha2-256 multihash.
func isV0Binary(buf []byte) bool {
	return len(buf) == v0BinaryLen && buf[0] == v0MhCode && buf[1] == v0DigestLen
}

// isV0String reports whether s is shaped like the v0 text rendering.
// Purely structural; no decoding is attempted.
func isV0String(s string) bool {
	return len(s) == v0StringLen && s[:2] == v0StringPrefix
}
