package main

import (
	"encoding/hex"
	"fmt"
	"os"

	mh "github.com/multiformats/go-multihash"

	"xdao.co/cid/cid"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cid_inspect <cid>")
		os.Exit(2)
	}
	id, err := cid.Decode(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}

	p := id.Prefix()
	hashName, ok := mh.Codes[p.MhType]
	if !ok {
		hashName = fmt.Sprintf("unknown (0x%x)", p.MhType)
	}
	dec, err := mh.Decode(id.Hash())
	if err != nil {
		fmt.Fprintf(os.Stderr, "multihash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("version: %d\n", id.Version().Number())
	fmt.Printf("codec:   %s (0x%x)\n", id.Codec(), id.Codec().Number())
	fmt.Printf("hash:    %s (%d bytes)\n", hashName, p.MhLength)
	fmt.Printf("digest:  %s\n", hex.EncodeToString(dec.Digest))
	fmt.Printf("text:    %s\n", id)
	fmt.Printf("binary:  %s\n", hex.EncodeToString(id.Bytes()))
}
