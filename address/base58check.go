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
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const checksumSize = 4

var errInvalidCharacter = errors.New("invalid base58 character")

// base58CheckDecode decodes a Base58Check string and returns the payload with the
// trailing checksum removed. btcutil only supports single byte versions in
// CheckDecode, so the checksum is verified here to allow 2-byte version prefixes
func base58CheckDecode(s string) ([]byte, error) {
	// base58.Decode returns an empty slice for any character outside the alphabet
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		if s == "" {
			return nil, newDecodeError(s, base58.ErrInvalidFormat)
		}
		return nil, newDecodeError(s, errInvalidCharacter)
	}
	if len(decoded) < checksumSize {
		return nil, newDecodeError(s, base58.ErrInvalidFormat)
	}
	payload := decoded[:len(decoded)-checksumSize]
	if !bytes.Equal(checksum(payload), decoded[len(decoded)-checksumSize:]) {
		return nil, newDecodeError(s, base58.ErrChecksum)
	}
	return payload, nil
}

// base58CheckEncode appends the checksum to the payload and encodes it as base58
func base58CheckEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+checksumSize)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)...)
	return base58.Encode(buf)
}

func checksum(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:checksumSize]
}
