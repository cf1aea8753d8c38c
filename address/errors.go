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
	"fmt"
)

// Sentinel error for input that is not valid Base58Check or bech32 text so callers can use errors.Is
var ErrInvalidEncoding = errors.New("invalid address encoding")

// ErrMalformedPrefix describes a recognized version prefix followed by a payload of the
// wrong length. The decoders report this case as "no match" rather than returning it
var ErrMalformedPrefix = errors.New("recognized version prefix with malformed payload")

// DecodeError indicates that an address string could not be decoded at the encoding level
type DecodeError struct {
	Input string
	Err   error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf(
		"failed to decode address %q: %v",
		e.Input,
		e.Err,
	)
}

func (e DecodeError) Unwrap() error { return e.Err }

func (DecodeError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

func newDecodeError(input string, err error) error {
	return DecodeError{
		Input: input,
		Err:   err,
	}
}
