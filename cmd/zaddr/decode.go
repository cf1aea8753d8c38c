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

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/zaddr/address"
	"github.com/spf13/cobra"
)

func newDecodeCommand(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode ADDRESS...",
		Short: "Classify addresses as shielded or transparent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := f.selectNetwork()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), f.debug)
			logger.Debug(
				"decoding addresses",
				"component", "cli",
				"network", network.Name,
				"count", len(args),
			)
			r := address.NewResolver(address.WithLogger(logger))
			var invalid int
			for _, arg := range args {
				recipient, ok := network.Resolve(r, arg)
				if !ok {
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", arg, describeRecipient(recipient))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d addresses are invalid for %s", invalid, len(args), network)
			}
			return nil
		},
	}
}

// describeRecipient returns the address kind followed by its payload in hex
func describeRecipient(recipient address.RecipientAddress) string {
	switch recipient.Type() {
	case address.RecipientTypeShielded:
		shielded, _ := recipient.Shielded()
		if sapling, ok := shielded.(address.SaplingAddress); ok {
			return fmt.Sprintf(
				"shielded diversifier=%s pkd=%s",
				hex.EncodeToString(sapling.Diversifier[:]),
				hex.EncodeToString(sapling.PkD[:]),
			)
		}
		return "shielded " + hex.EncodeToString(shielded.Bytes())
	case address.RecipientTypeTransparent:
		transparent, _ := recipient.Transparent()
		switch addr := transparent.(type) {
		case address.PublicKeyHash:
			return "transparent-p2pkh " + addr.Hash().String()
		case address.ScriptHash:
			return "transparent-p2sh " + addr.Hash().String()
		}
	}
	return "invalid"
}
