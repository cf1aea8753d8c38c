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

package zaddr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Network definitions
var (
	NetworkMainnet = Network{
		Name:              "mainnet",
		SaplingHrp:        "zs",
		PubKeyHashVersion: [2]byte{0x1C, 0xB8},
		ScriptHashVersion: [2]byte{0x1C, 0xBD},
	}
	NetworkTestnet = Network{
		Name:              "testnet",
		SaplingHrp:        "ztestsapling",
		PubKeyHashVersion: [2]byte{0x1D, 0x25},
		ScriptHashVersion: [2]byte{0x1C, 0xBA},
	}
	NetworkRegtest = Network{
		Name:              "regtest",
		SaplingHrp:        "zregtestsapling",
		PubKeyHashVersion: [2]byte{0x1D, 0x25},
		ScriptHashVersion: [2]byte{0x1C, 0xBA},
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkRegtest,
}

// Networks returns the predefined networks
func Networks() []Network {
	ret := make([]Network, len(networks))
	copy(ret, networks)
	return ret
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// Network holds the address parameters of a Zcash network
type Network struct {
	Name              string
	SaplingHrp        string  // human-readable prefix for Sapling payment addresses
	PubKeyHashVersion [2]byte // Base58Check version for P2PKH addresses
	ScriptHashVersion [2]byte // Base58Check version for P2SH addresses
}

func (n Network) String() string {
	return n.Name
}

func (n Network) Validate() error {
	if n.Name == "" {
		return errors.New("network name is empty")
	}
	if n.SaplingHrp == "" {
		return fmt.Errorf("network %s: sapling HRP is empty", n.Name)
	}
	if n.PubKeyHashVersion == n.ScriptHashVersion {
		return fmt.Errorf(
			"network %s: pubkey hash and script hash versions are identical",
			n.Name,
		)
	}
	return nil
}

type networkConfig struct {
	Name              string `yaml:"name"`
	SaplingHrp        string `yaml:"saplingHrp"`
	PubKeyHashVersion string `yaml:"pubKeyHashVersion"`
	ScriptHashVersion string `yaml:"scriptHashVersion"`
}

type networksConfig struct {
	Networks []networkConfig `yaml:"networks"`
}

// NewNetworksFromFile reads network definitions from a YAML file. See NewNetworksFromReader
func NewNetworksFromFile(path string) ([]Network, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()
	return NewNetworksFromReader(dataFile)
}

// NewNetworksFromReader reads network definitions from YAML. Version prefixes are hex encoded:
//
//	networks:
//	  - name: mainnet
//	    saplingHrp: zs
//	    pubKeyHashVersion: 1cb8
//	    scriptHashVersion: 1cbd
func NewNetworksFromReader(r io.Reader) ([]Network, error) {
	var cfg networksConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse networks config: %w", err)
	}
	ret := make([]Network, 0, len(cfg.Networks))
	for idx, tmpNetwork := range cfg.Networks {
		network := Network{
			Name:       tmpNetwork.Name,
			SaplingHrp: tmpNetwork.SaplingHrp,
		}
		var err error
		network.PubKeyHashVersion, err = decodeVersion(tmpNetwork.PubKeyHashVersion)
		if err != nil {
			return nil, fmt.Errorf("network %d: pubKeyHashVersion: %w", idx, err)
		}
		network.ScriptHashVersion, err = decodeVersion(tmpNetwork.ScriptHashVersion)
		if err != nil {
			return nil, fmt.Errorf("network %d: scriptHashVersion: %w", idx, err)
		}
		if err := network.Validate(); err != nil {
			return nil, fmt.Errorf("network %d: %w", idx, err)
		}
		ret = append(ret, network)
	}
	return ret, nil
}

func decodeVersion(s string) ([2]byte, error) {
	var ret [2]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return ret, fmt.Errorf("invalid hex: %w", err)
	}
	if len(decoded) != len(ret) {
		return ret, fmt.Errorf("expected %d bytes, got %d", len(ret), len(decoded))
	}
	copy(ret[:], decoded)
	return ret, nil
}
