// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD160 is part of the Hash160 address standard
)

const (
	// Hash160Size is the length of a Hash160 digest
	Hash160Size = 20

	opDup         = 0x76
	opHash160     = 0xa9
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xac
	opData20      = 0x14
)

// Hash160 is a RIPEMD160(SHA256(x)) digest
type Hash160 [Hash160Size]byte

// NewHash160 returns a Hash160 from a 20-byte slice
func NewHash160(data []byte) (Hash160, error) {
	var ret Hash160
	if len(data) != Hash160Size {
		return ret, fmt.Errorf("invalid hash length: %d", len(data))
	}
	copy(ret[:], data)
	return ret, nil
}

// Hash160Sum computes RIPEMD160(SHA256(data))
func Hash160Sum(data []byte) Hash160 {
	r := ripemd160.New()
	// Writes to a hash.Hash never fail
	_, _ = r.Write(chainhash.HashB(data))
	var ret Hash160
	copy(ret[:], r.Sum(nil))
	return ret
}

func (h Hash160) Bytes() []byte {
	return h[:]
}

func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// TransparentAddress is a decoded Base58Check address. It is either a PublicKeyHash or a ScriptHash
type TransparentAddress interface {
	isTransparentAddress()
	Hash() Hash160
	Script() []byte
}

// PublicKeyHash is a pay-to-public-key-hash (P2PKH) address
type PublicKeyHash struct {
	Hash160 Hash160
}

func (PublicKeyHash) isTransparentAddress() {}

func (p PublicKeyHash) Hash() Hash160 {
	return p.Hash160
}

// Script returns the P2PKH output script: OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
func (p PublicKeyHash) Script() []byte {
	script := make([]byte, 0, 25)
	script = append(script, opDup, opHash160, opData20)
	script = append(script, p.Hash160[:]...)
	script = append(script, opEqualVerify, opCheckSig)
	return script
}

func (p PublicKeyHash) String() string {
	return "p2pkh:" + p.Hash160.String()
}

// ScriptHash is a pay-to-script-hash (P2SH) address
type ScriptHash struct {
	Hash160 Hash160
}

func (ScriptHash) isTransparentAddress() {}

func (s ScriptHash) Hash() Hash160 {
	return s.Hash160
}

// Script returns the P2SH output script: OP_HASH160 <20 bytes> OP_EQUAL
func (s ScriptHash) Script() []byte {
	script := make([]byte, 0, 23)
	script = append(script, opHash160, opData20)
	script = append(script, s.Hash160[:]...)
	script = append(script, opEqual)
	return script
}

func (s ScriptHash) String() string {
	return "p2sh:" + s.Hash160.String()
}

// NewPublicKeyHashFromPubKey returns the P2PKH address for a secp256k1 public key. The key
// may be provided in compressed or uncompressed form, but is always hashed compressed
func NewPublicKeyHashFromPubKey(pubKey []byte) (PublicKeyHash, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return PublicKeyHash{}, fmt.Errorf("failed to parse public key: %w", err)
	}
	return PublicKeyHash{
		Hash160: Hash160Sum(key.SerializeCompressed()),
	}, nil
}

// DecodeTransparent decodes a Base58Check transparent address using the provided version prefixes.
// An error is returned only when the string is not valid Base58Check text. A string that decodes
// cleanly but does not carry either version prefix, or carries one with a payload that is not
// exactly 20 bytes, is reported as no match. The pubkey version is checked first
func DecodeTransparent(
	pubKeyVersion []byte,
	scriptVersion []byte,
	s string,
) (TransparentAddress, bool, error) {
	addr, err := decodeTransparent(pubKeyVersion, scriptVersion, s)
	if err != nil {
		if errors.Is(err, ErrMalformedPrefix) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if addr == nil {
		return nil, false, nil
	}
	return addr, true, nil
}

// decodeTransparent keeps the malformed prefix case as an error so the resolver can log it
func decodeTransparent(
	pubKeyVersion []byte,
	scriptVersion []byte,
	s string,
) (TransparentAddress, error) {
	payload, err := base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if hash, ok, err := matchVersion(pubKeyVersion, payload); ok {
		if err != nil {
			return nil, fmt.Errorf("pubkey hash: %w", err)
		}
		return PublicKeyHash{Hash160: hash}, nil
	}
	if hash, ok, err := matchVersion(scriptVersion, payload); ok {
		if err != nil {
			return nil, fmt.Errorf("script hash: %w", err)
		}
		return ScriptHash{Hash160: hash}, nil
	}
	return nil, nil
}

// matchVersion reports whether the payload starts with the version prefix and, if so,
// extracts the trailing hash
func matchVersion(version []byte, payload []byte) (Hash160, bool, error) {
	var ret Hash160
	if len(version) == 0 || !bytes.HasPrefix(payload, version) {
		return ret, false, nil
	}
	if len(payload) != len(version)+Hash160Size {
		return ret, true, fmt.Errorf(
			"%w: payload length %d",
			ErrMalformedPrefix,
			len(payload)-len(version),
		)
	}
	copy(ret[:], payload[len(version):])
	return ret, true, nil
}

// EncodeTransparent encodes a transparent address as Base58Check using the version prefix
// that matches its type
func EncodeTransparent(
	addr TransparentAddress,
	pubKeyVersion []byte,
	scriptVersion []byte,
) (string, error) {
	var version []byte
	switch addr.(type) {
	case PublicKeyHash:
		version = pubKeyVersion
	case ScriptHash:
		version = scriptVersion
	default:
		return "", fmt.Errorf("unsupported transparent address type: %T", addr)
	}
	if len(version) == 0 {
		return "", errors.New("empty version prefix")
	}
	hash := addr.Hash()
	payload := make([]byte, 0, len(version)+Hash160Size)
	payload = append(payload, version...)
	payload = append(payload, hash[:]...)
	return base58CheckEncode(payload), nil
}
