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

package zaddr_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/blinklabs-io/zaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkByName(t *testing.T) {
	for _, network := range zaddr.Networks() {
		assert.Equal(t, network, zaddr.NetworkByName(network.Name))
		assert.NoError(t, network.Validate())
	}
	assert.Equal(t, zaddr.NetworkInvalid, zaddr.NetworkByName("sprout"))
}

type networksTestDefinition struct {
	yamlData         string
	expectedNetworks []zaddr.Network
}

var networksTests = []networksTestDefinition{
	{
		yamlData: `
networks:
  - name: mainnet
    saplingHrp: zs
    pubKeyHashVersion: 1cb8
    scriptHashVersion: 1cbd
  - name: custom
    saplingHrp: zcustom
    pubKeyHashVersion: "0102"
    scriptHashVersion: 0A0B
`,
		expectedNetworks: []zaddr.Network{
			zaddr.NetworkMainnet,
			{
				Name:              "custom",
				SaplingHrp:        "zcustom",
				PubKeyHashVersion: [2]byte{0x01, 0x02},
				ScriptHashVersion: [2]byte{0x0A, 0x0B},
			},
		},
	},
	{
		yamlData:         `networks: []`,
		expectedNetworks: []zaddr.Network{},
	},
}

func TestNewNetworksFromReader(t *testing.T) {
	for _, test := range networksTests {
		networks, err := zaddr.NewNetworksFromReader(
			strings.NewReader(test.yamlData),
		)
		if err != nil {
			t.Fatalf("failed to load networks from YAML data: %s", err)
		}
		if !reflect.DeepEqual(networks, test.expectedNetworks) {
			t.Fatalf(
				"did not get expected object\n  got:\n    %#v\n  wanted:\n    %#v",
				networks,
				test.expectedNetworks,
			)
		}
	}
}

func TestNewNetworksFromReaderErrors(t *testing.T) {
	testDefs := map[string]string{
		"bad hex": `
networks:
  - name: bad
    saplingHrp: zbad
    pubKeyHashVersion: zz00
    scriptHashVersion: 1cbd
`,
		"short version": `
networks:
  - name: bad
    saplingHrp: zbad
    pubKeyHashVersion: 1cb8
    scriptHashVersion: 1c
`,
		"missing hrp": `
networks:
  - name: bad
    pubKeyHashVersion: 1cb8
    scriptHashVersion: 1cbd
`,
		"identical versions": `
networks:
  - name: bad
    saplingHrp: zbad
    pubKeyHashVersion: 1cb8
    scriptHashVersion: 1cb8
`,
		"unknown field": `
networks:
  - name: bad
    saplingHrp: zbad
    sproutPrefix: 169a
    pubKeyHashVersion: 1cb8
    scriptHashVersion: 1cbd
`,
		"not yaml": `networks: [`,
	}
	for name, yamlData := range testDefs {
		t.Run(name, func(t *testing.T) {
			_, err := zaddr.NewNetworksFromReader(strings.NewReader(yamlData))
			assert.Error(t, err)
		})
	}
}

func TestNewNetworksFromReaderEmpty(t *testing.T) {
	networks, err := zaddr.NewNetworksFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, networks)
}

func TestNewNetworksFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(networksTests[0].yamlData), 0o600))
	networks, err := zaddr.NewNetworksFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, networksTests[0].expectedNetworks, networks)

	_, err = zaddr.NewNetworksFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
