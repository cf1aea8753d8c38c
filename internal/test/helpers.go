package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// EncodeBase58Check builds a Base58Check string from a version prefix and payload without
// going through the address package, so tests have an independent source of fixtures
func EncodeBase58Check(version []byte, payload []byte) string {
	data := make([]byte, 0, len(version)+len(payload)+4)
	data = append(data, version...)
	data = append(data, payload...)
	data = append(data, chainhash.DoubleHashB(data)[:4]...)
	return base58.Encode(data)
}

// EncodeBech32 encodes 8-bit data as bech32 with the given prefix. It panics on error
func EncodeBech32(hrp string, data []byte) string {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("error converting bits: %s", err))
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		panic(fmt.Sprintf("error encoding bech32: %s", err))
	}
	return encoded
}

// EncodeBech32m is EncodeBech32 with the bech32m checksum constant
func EncodeBech32m(hrp string, data []byte) string {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("error converting bits: %s", err))
	}
	encoded, err := bech32.EncodeM(hrp, convData)
	if err != nil {
		panic(fmt.Sprintf("error encoding bech32m: %s", err))
	}
	return encoded
}
