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

// Package address classifies and decodes Zcash recipient addresses.
//
// Two address families are supported:
//   - transparent: Base58Check with a 2-byte version prefix selecting a
//     PublicKeyHash or ScriptHash payload (transparent.go)
//   - shielded: bech32 Sapling payment addresses (sapling.go)
//
// Resolve (recipient.go) tries the shielded decoder first and falls back to the
// transparent decoder. It only reports match or no match. The lower level decoders
// return DecodeError, matching ErrInvalidEncoding, for text that is not valid in
// their encoding.
//
// Network parameters are passed on every call and nothing is cached, so the same
// code serves several networks at once. See the root zaddr package for the
// predefined networks.
package address
