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

// Package zaddr binds Zcash network parameters to the address decoders in the address package
package zaddr

import (
	"github.com/blinklabs-io/zaddr/address"
)

// ParseRecipient classifies an address string for the given network using the default resolver
func ParseRecipient(s string, network Network) (address.RecipientAddress, bool) {
	return network.Resolve(address.NewResolver(), s)
}

// Resolve classifies an address string for this network using the provided resolver
func (n Network) Resolve(r *address.Resolver, s string) (address.RecipientAddress, bool) {
	return r.Resolve(
		s,
		n.SaplingHrp,
		n.PubKeyHashVersion,
		n.ScriptHashVersion,
	)
}

// DecodeTransparent decodes a transparent address for this network
func (n Network) DecodeTransparent(s string) (address.TransparentAddress, bool, error) {
	return address.DecodeTransparent(
		n.PubKeyHashVersion[:],
		n.ScriptHashVersion[:],
		s,
	)
}

// DecodeSapling decodes a Sapling payment address for this network
func (n Network) DecodeSapling(s string) (address.SaplingAddress, bool, error) {
	return address.DecodeSapling(n.SaplingHrp, s)
}

// EncodeTransparent encodes a transparent address for this network
func (n Network) EncodeTransparent(addr address.TransparentAddress) (string, error) {
	return address.EncodeTransparent(
		addr,
		n.PubKeyHashVersion[:],
		n.ScriptHashVersion[:],
	)
}

// EncodeSapling encodes a Sapling payment address for this network
func (n Network) EncodeSapling(addr address.SaplingAddress) (string, error) {
	return addr.Encode(n.SaplingHrp)
}
