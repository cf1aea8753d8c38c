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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/zaddr"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	network      string
	networksFile string
	debug        bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:          "zaddr",
		Short:        "Classify and decode Zcash recipient addresses",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(
		&f.network,
		"network",
		zaddr.NetworkMainnet.Name,
		"specifies network the addresses belong to",
	)
	rootCmd.PersistentFlags().StringVar(
		&f.networksFile,
		"networks-file",
		"",
		"YAML file with additional network definitions",
	)
	rootCmd.PersistentFlags().BoolVar(
		&f.debug,
		"debug",
		false,
		"enable debug logging",
	)
	rootCmd.AddCommand(
		newDecodeCommand(f),
		newNetworksCommand(f),
	)
	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	)
}

// loadNetworks returns the predefined networks followed by any from the networks file
func (f *globalFlags) loadNetworks() ([]zaddr.Network, error) {
	ret := zaddr.Networks()
	if f.networksFile == "" {
		return ret, nil
	}
	custom, err := zaddr.NewNetworksFromFile(f.networksFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load networks file: %w", err)
	}
	return append(ret, custom...), nil
}

// selectNetwork finds the requested network. Networks from the file override predefined
// networks with the same name
func (f *globalFlags) selectNetwork() (zaddr.Network, error) {
	networks, err := f.loadNetworks()
	if err != nil {
		return zaddr.NetworkInvalid, err
	}
	ret := zaddr.NetworkInvalid
	for _, network := range networks {
		if network.Name == f.network {
			ret = network
		}
	}
	if ret == zaddr.NetworkInvalid {
		return ret, errors.New("invalid network specified: " + f.network)
	}
	return ret, nil
}
