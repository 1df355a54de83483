package cid

import "errors"

// Construction and parsing failures form a closed set of sentinel values.
// Callers branch with errors.Is; messages are for humans and may evolve.
//
// All of these are deterministic: retrying the same input never helps.
var (
	// ErrUnknownVersion: a numeric version tag other than 0 or 1.
	ErrUnknownVersion = errors.New("cid: unknown version")

	// ErrUnknownCodec: a numeric codec tag absent from the multicodec table.
	ErrUnknownCodec = errors.New("cid: unknown codec")

	// ErrInvalidV0Codec: version 0 paired with a codec other than dag-pb.
	ErrInvalidV0Codec = errors.New("cid: invalid v0 codec, v0 requires dag-pb")

	// ErrInvalidV0Multihash: version 0 paired with a multihash whose
	// algorithm is not sha2-256.
	ErrInvalidV0Multihash = errors.New("cid: invalid v0 multihash, v0 requires sha2-256")

	// ErrInputTooShort: text input of fewer than 2 characters after path
	// stripping.
	ErrInputTooShort = errors.New("cid: input too short")

	// ErrParse: malformed base-encoded text, or bytes the multihash layer
	// rejects.
	ErrParse = errors.New("cid: parsing error")

	// ErrVarint: a truncated or non-minimal varint tag field.
	ErrVarint = errors.New("cid: truncated or malformed varint")
)
