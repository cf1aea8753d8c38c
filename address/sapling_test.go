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
	"strings"
	"testing"

	"github.com/blinklabs-io/zaddr/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSaplingHrp = "zs"
	// 11-byte diversifier followed by a 32-byte pk_d
	testSaplingHex = "e1a2b3c4d5e6f708192a3b" +
		"4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b"
)

func TestDecodeSapling(t *testing.T) {
	raw := test.DecodeHexString(testSaplingHex)
	encoded := test.EncodeBech32(testSaplingHrp, raw)

	addr, ok, err := DecodeSapling(testSaplingHrp, encoded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw[:SaplingDiversifierSize], addr.Diversifier[:])
	assert.Equal(t, raw[SaplingDiversifierSize:], addr.PkD[:])
	assert.Equal(t, raw, addr.Bytes())
	assert.Equal(t, testSaplingHex, addr.String())

	// Upper case bech32 is valid
	addr2, ok, err := DecodeSapling(testSaplingHrp, strings.ToUpper(encoded))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, addr, addr2)
}

func TestDecodeSaplingNoMatch(t *testing.T) {
	raw := test.DecodeHexString(testSaplingHex)
	testDefs := []struct {
		name  string
		input string
	}{
		{
			name:  "testnet prefix",
			input: test.EncodeBech32("ztestsapling", raw),
		},
		{
			name:  "short payload",
			input: test.EncodeBech32(testSaplingHrp, raw[:42]),
		},
		{
			name:  "long payload",
			input: test.EncodeBech32(testSaplingHrp, append(raw, 0x00)),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, ok, err := DecodeSapling(testSaplingHrp, testDef.input)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestDecodeSaplingErrors(t *testing.T) {
	raw := test.DecodeHexString(testSaplingHex)
	valid := test.EncodeBech32(testSaplingHrp, raw)
	testDefs := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "mixed case",
			input: "Z" + valid[1:],
		},
		{
			name:  "bad checksum",
			input: valid[:len(valid)-1] + flipBech32Char(valid[len(valid)-1]),
		},
		{
			name:  "bech32m checksum",
			input: test.EncodeBech32m(testSaplingHrp, raw),
		},
		{
			name:  "base58 text",
			input: test.EncodeBase58Check(testPubKeyVersion, make([]byte, 20)),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, ok, err := DecodeSapling(testSaplingHrp, testDef.input)
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestSaplingEncodeRoundTrip(t *testing.T) {
	addr, err := NewSaplingAddressFromBytes(test.DecodeHexString(testSaplingHex))
	require.NoError(t, err)
	for _, hrp := range []string{"zs", "ztestsapling", "zregtestsapling"} {
		encoded, err := addr.Encode(hrp)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, hrp+"1"))
		decoded, ok, err := DecodeSapling(hrp, encoded)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, addr, decoded)
	}
}

func TestDecodeSaplingLongPrefix(t *testing.T) {
	raw := test.DecodeHexString(testSaplingHex)
	encoded := test.EncodeBech32("zregtestsapling", raw)
	// 6 + len(hrp) + 69
	require.Len(t, encoded, 91)

	addr, ok, err := DecodeSapling("zregtestsapling", encoded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, addr.Bytes())

	recipient, ok := Resolve(encoded, "zregtestsapling", testPubKeyVersionArr, testScriptVersionArr)
	require.True(t, ok)
	shielded, ok := recipient.Shielded()
	require.True(t, ok)
	assert.Equal(t, raw, shielded.Bytes())

	// The checksum variant is still enforced without the length limit
	_, ok, err = DecodeSapling("zregtestsapling", test.EncodeBech32m("zregtestsapling", raw))
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestNewSaplingAddressFromBytesInvalidLength(t *testing.T) {
	_, err := NewSaplingAddressFromBytes(make([]byte, 42))
	assert.Error(t, err)
}

func TestSaplingDecoder(t *testing.T) {
	raw := test.DecodeHexString(testSaplingHex)
	var decoder ShieldedDecoder = SaplingDecoder{}

	addr, ok, err := decoder.DecodeShielded(
		testSaplingHrp,
		test.EncodeBech32(testSaplingHrp, raw),
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, addr.Bytes())

	addr, ok, err = decoder.DecodeShielded(
		testSaplingHrp,
		test.EncodeBech32("ztestsapling", raw),
	)
	require.NoError(t, err)
	assert.False(t, ok)
	// No match must not produce a typed nil wrapped in the interface
	assert.Nil(t, addr)
}

// flipBech32Char returns a different character from the bech32 alphabet
func flipBech32Char(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}
