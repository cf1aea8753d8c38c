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
	"fmt"

	"github.com/spf13/cobra"
)

func newNetworksCommand(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List known networks and their address parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			networks, err := f.loadNetworks()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %-16s %-8s %-8s\n", "NAME", "SAPLING HRP", "P2PKH", "P2SH")
			for _, network := range networks {
				fmt.Fprintf(
					out,
					"%-16s %-16s %-8x %-8x\n",
					network.Name,
					network.SaplingHrp,
					network.PubKeyHashVersion[:],
					network.ScriptHashVersion[:],
				)
			}
			return nil
		},
	}
}
