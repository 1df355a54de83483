package cid

// Codec is the numeric multicodec tag naming the content type a digest was
// computed over. The table is fixed; CodecFromNumber rejects anything
// outside it.
type Codec uint64

const (
	Raw                   Codec = 0x55
	DagProtobuf           Codec = 0x70
	DagCBOR               Codec = 0x71
	GitRaw                Codec = 0x78
	EthereumBlock         Codec = 0x90
	EthereumBlockList     Codec = 0x91
	EthereumTxTrie        Codec = 0x92
	EthereumTx            Codec = 0x93
	EthereumTxReceiptTrie Codec = 0x94
	EthereumTxReceipt     Codec = 0x95
	BitcoinBlock          Codec = 0xb0
	BitcoinTx             Codec = 0xb1
	ZcashBlock            Codec = 0xc0
	ZcashTx               Codec = 0xc1
)

// CodecFromNumber validates a numeric codec tag against the table.
func CodecFromNumber(n uint64) (Codec, error) {
	switch c := Codec(n); c {
	case Raw, DagProtobuf, DagCBOR, GitRaw,
		EthereumBlock, EthereumBlockList, EthereumTxTrie, EthereumTx,
		EthereumTxReceiptTrie, EthereumTxReceipt,
		BitcoinBlock, BitcoinTx, ZcashBlock, ZcashTx:
		return c, nil
	default:
		return 0, ErrUnknownCodec
	}
}

// Number returns the numeric tag. Total, and the inverse of CodecFromNumber.
func (c Codec) Number() uint64 { return uint64(c) }

var codecNames = map[Codec]string{
	Raw:                   "raw",
	DagProtobuf:           "dag-pb",
	DagCBOR:               "dag-cbor",
	GitRaw:                "git-raw",
	EthereumBlock:         "eth-block",
	EthereumBlockList:     "eth-block-list",
	EthereumTxTrie:        "eth-tx-trie",
	EthereumTx:            "eth-tx",
	EthereumTxReceiptTrie: "eth-tx-receipt-trie",
	EthereumTxReceipt:     "eth-tx-receipt",
	BitcoinBlock:          "bitcoin-block",
	BitcoinTx:             "bitcoin-tx",
	ZcashBlock:            "zcash-block",
	ZcashTx:               "zcash-tx",
}

func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return "codec?"
}
