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
	"errors"
	"log/slog"
)

type RecipientType uint8

const (
	RecipientTypeNone RecipientType = iota
	RecipientTypeShielded
	RecipientTypeTransparent
)

func (t RecipientType) String() string {
	switch t {
	case RecipientTypeShielded:
		return "shielded"
	case RecipientTypeTransparent:
		return "transparent"
	default:
		return "none"
	}
}

// RecipientAddress is an address that funds can be sent to. Exactly one of the shielded
// or transparent variants is populated
type RecipientAddress struct {
	recipientType RecipientType
	shielded      ShieldedAddress
	transparent   TransparentAddress
}

func NewShieldedRecipient(addr ShieldedAddress) RecipientAddress {
	return RecipientAddress{
		recipientType: RecipientTypeShielded,
		shielded:      addr,
	}
}

func NewTransparentRecipient(addr TransparentAddress) RecipientAddress {
	return RecipientAddress{
		recipientType: RecipientTypeTransparent,
		transparent:   addr,
	}
}

func (r RecipientAddress) Type() RecipientType {
	return r.recipientType
}

// Shielded returns the shielded address, if this is a shielded recipient
func (r RecipientAddress) Shielded() (ShieldedAddress, bool) {
	if r.recipientType != RecipientTypeShielded {
		return nil, false
	}
	return r.shielded, true
}

// Transparent returns the transparent address, if this is a transparent recipient
func (r RecipientAddress) Transparent() (TransparentAddress, bool) {
	if r.recipientType != RecipientTypeTransparent {
		return nil, false
	}
	return r.transparent, true
}

// ResolverOptionFunc is a type that represents functions that modify the Resolver config
type ResolverOptionFunc func(*Resolver)

// WithLogger specifies the logger used for diagnostics about discarded decode failures
func WithLogger(logger *slog.Logger) ResolverOptionFunc {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithShieldedDecoder specifies the shielded address decoder. The default decodes Sapling addresses
func WithShieldedDecoder(decoder ShieldedDecoder) ResolverOptionFunc {
	return func(r *Resolver) {
		r.shieldedDecoder = decoder
	}
}

// Resolver classifies address strings as shielded or transparent recipients. It holds no
// per-call state and is safe for concurrent use
type Resolver struct {
	logger          *slog.Logger
	shieldedDecoder ShieldedDecoder
}

func NewResolver(opts ...ResolverOptionFunc) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.shieldedDecoder == nil {
		r.shieldedDecoder = SaplingDecoder{}
	}
	return r
}

// Resolve tries to decode the string as a shielded address for the given human-readable
// prefix, then as a transparent address for the given version prefixes. Decode errors are
// not returned, only whether the string matched
func (r *Resolver) Resolve(
	s string,
	shieldedHrp string,
	pubKeyVersion [2]byte,
	scriptVersion [2]byte,
) (RecipientAddress, bool) {
	shielded, ok, err := r.shieldedDecoder.DecodeShielded(shieldedHrp, s)
	if err != nil {
		r.logger.Debug(
			"not a shielded address",
			"component", "address",
			"hrp", shieldedHrp,
			"error", err,
		)
	} else if ok {
		return NewShieldedRecipient(shielded), true
	}
	transparent, err := decodeTransparent(pubKeyVersion[:], scriptVersion[:], s)
	if err != nil {
		if errors.Is(err, ErrMalformedPrefix) {
			r.logger.Debug(
				"recognized transparent version prefix with malformed payload",
				"component", "address",
				"error", err,
			)
		} else {
			r.logger.Debug(
				"not a transparent address",
				"component", "address",
				"error", err,
			)
		}
		return RecipientAddress{}, false
	}
	if transparent == nil {
		return RecipientAddress{}, false
	}
	return NewTransparentRecipient(transparent), true
}

// Resolve classifies the string using the default Sapling decoder and logger. See Resolver.Resolve
func Resolve(
	s string,
	shieldedHrp string,
	pubKeyVersion [2]byte,
	scriptVersion [2]byte,
) (RecipientAddress, bool) {
	return NewResolver().Resolve(s, shieldedHrp, pubKeyVersion, scriptVersion)
}
