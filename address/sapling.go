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
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// SaplingDiversifierSize is the length of the diversifier in a raw Sapling address
	SaplingDiversifierSize = 11
	// SaplingPkDSize is the length of the encoded diversified transmission key
	SaplingPkDSize = 32
	// SaplingAddressSize is the length of a raw Sapling address
	SaplingAddressSize = SaplingDiversifierSize + SaplingPkDSize
)

// ShieldedAddress is a decoded shielded payment address. The resolver does not inspect it
type ShieldedAddress interface {
	Bytes() []byte
}

// ShieldedDecoder decodes shielded payment addresses for a human-readable prefix. A string
// that is well formed but belongs to another prefix or address type is reported as no match
type ShieldedDecoder interface {
	DecodeShielded(hrp string, s string) (ShieldedAddress, bool, error)
}

// ShieldedDecoderFunc allows a plain function to be used as a ShieldedDecoder
type ShieldedDecoderFunc func(hrp string, s string) (ShieldedAddress, bool, error)

func (f ShieldedDecoderFunc) DecodeShielded(hrp string, s string) (ShieldedAddress, bool, error) {
	return f(hrp, s)
}

// SaplingAddress is a Sapling payment address made of a diversifier and a diversified
// transmission key. The key is kept in its 32-byte encoded form and is not validated as a
// curve point
type SaplingAddress struct {
	Diversifier [SaplingDiversifierSize]byte
	PkD         [SaplingPkDSize]byte
}

// NewSaplingAddressFromBytes returns a SaplingAddress from its 43-byte raw encoding
func NewSaplingAddressFromBytes(data []byte) (SaplingAddress, error) {
	var ret SaplingAddress
	if len(data) != SaplingAddressSize {
		return ret, fmt.Errorf("invalid sapling address length: %d", len(data))
	}
	copy(ret.Diversifier[:], data[:SaplingDiversifierSize])
	copy(ret.PkD[:], data[SaplingDiversifierSize:])
	return ret, nil
}

// Bytes returns the 43-byte raw encoding of the address
func (a SaplingAddress) Bytes() []byte {
	ret := make([]byte, 0, SaplingAddressSize)
	ret = append(ret, a.Diversifier[:]...)
	ret = append(ret, a.PkD[:]...)
	return ret
}

// Encode returns the bech32 encoding of the address with the given human-readable prefix
func (a SaplingAddress) Encode(hrp string) (string, error) {
	convData, err := bech32.ConvertBits(a.Bytes(), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address data to base32: %w", err)
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		return "", fmt.Errorf("failed to encode address as bech32: %w", err)
	}
	return encoded, nil
}

func (a SaplingAddress) String() string {
	return hex.EncodeToString(a.Bytes())
}

// DecodeSapling decodes a bech32 Sapling payment address. Malformed bech32 text is an error,
// while a different human-readable prefix or a payload of the wrong size is no match
func DecodeSapling(hrp string, s string) (SaplingAddress, bool, error) {
	// Sapling addresses on networks with a long prefix exceed the 90 character
	// limit of the standard decoder, e.g. 91 characters with "zregtestsapling"
	decodedHrp, data, version, err := bech32.DecodeNoLimitWithVersion(s)
	if err != nil {
		return SaplingAddress{}, false, newDecodeError(s, err)
	}
	if version != bech32.Version0 {
		return SaplingAddress{}, false, newDecodeError(
			s,
			fmt.Errorf("unexpected bech32 checksum variant: %d", version),
		)
	}
	// The decoder always lowercases the prefix
	if decodedHrp != hrp {
		return SaplingAddress{}, false, nil
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return SaplingAddress{}, false, newDecodeError(s, err)
	}
	if len(decoded) != SaplingAddressSize {
		return SaplingAddress{}, false, nil
	}
	addr, err := NewSaplingAddressFromBytes(decoded)
	if err != nil {
		return SaplingAddress{}, false, err
	}
	return addr, true, nil
}

// SaplingDecoder is the default ShieldedDecoder
type SaplingDecoder struct{}

func (SaplingDecoder) DecodeShielded(hrp string, s string) (ShieldedAddress, bool, error) {
	addr, ok, err := DecodeSapling(hrp, s)
	if err != nil || !ok {
		return nil, false, err
	}
	return addr, true, nil
}
