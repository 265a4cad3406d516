package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryYaml = `
datasets:
  - identifier: gb-naptan
    format: csv
    source: https://naptan.api.dft.gov.uk/v1/access-nodes?dataFormat=csv
  - identifier: gb-naptan-strict
    format: csv
    parser: strict
    source: https://naptan.api.dft.gov.uk/v1/access-nodes?dataFormat=csv
---
datasets:
  - identifier: local-xml
    format: xml
    stoppointfilter: bus
    source: data/naptan.xml
`

func TestParseRegistry(t *testing.T) {
	registry, err := ParseRegistry([]byte(registryYaml))
	require.NoError(t, err)

	datasets := registry.Datasets()
	require.Len(t, datasets, 3)
	assert.Equal(t, "gb-naptan", datasets[0].Identifier)
	assert.Equal(t, "local-xml", datasets[2].Identifier)

	strict, exists := registry.Get("gb-naptan-strict")
	require.True(t, exists)
	assert.Equal(t, ParserStrict, strict.Parser)

	xml, exists := registry.Get("local-xml")
	require.True(t, exists)
	assert.Equal(t, FormatXML, xml.Format)
	assert.Equal(t, "bus", xml.StopPointFilter)

	_, exists = registry.Get("missing")
	assert.False(t, exists)
}

func TestLoadRegistryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(registryYaml), 0o644))

	registry, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Len(t, registry.Datasets(), 3)
}

func TestRegistrySelect(t *testing.T) {
	registry, err := ParseRegistry([]byte(registryYaml))
	require.NoError(t, err)

	// Nothing is marked default so the first dataset is used
	defaults, err := registry.Select(nil)
	require.NoError(t, err)
	require.Len(t, defaults, 1)
	assert.Equal(t, "gb-naptan", defaults[0].Identifier)

	selected, err := registry.Select([]string{"local-xml", "gb-naptan"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "local-xml", selected[0].Identifier)

	_, err = registry.Select([]string{"nope"})
	assert.Error(t, err)
}

func TestRegistryValidation(t *testing.T) {
	cases := map[string]string{
		"bad format":   "datasets:\n  - identifier: a\n    format: yaml\n    source: x\n",
		"bad parser":   "datasets:\n  - identifier: a\n    format: csv\n    parser: fancy\n    source: x\n",
		"no source":    "datasets:\n  - identifier: a\n    format: csv\n",
		"no datasets":  "datasets: []\n",
		"duplicate id": "datasets:\n  - identifier: a\n    format: csv\n    source: x\n  - identifier: a\n    format: json\n    source: y\n",
		"not yaml":     "datasets: [",
	}

	for name, document := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(document))
			assert.Error(t, err)
		})
	}
}

func TestDefaultDatasetIsValid(t *testing.T) {
	registry, err := NewRegistry(DefaultDataset())
	require.NoError(t, err)

	dataset, exists := registry.Get("gb-naptan")
	require.True(t, exists)
	assert.Equal(t, NaPTANAccessNodesURL, dataset.Source)
}

func TestRegistrySelectMarkedDefaults(t *testing.T) {
	registry, err := ParseRegistry([]byte("datasets:\n  - identifier: a\n    format: csv\n    source: x\n  - identifier: b\n    format: csv\n    source: y\n    default: true\n"))
	require.NoError(t, err)

	selected, err := registry.Select(nil)
	require.NoError(t, err)

	require.Len(t, selected, 1)
	assert.Equal(t, "b", selected[0].Identifier)
}

func TestShippedRegistryLoadsOneDatasetByDefault(t *testing.T) {
	registry, err := LoadRegistry(filepath.Join("..", "..", DefaultRegistryPath))
	require.NoError(t, err)

	assert.Len(t, registry.Datasets(), 3)

	selected, err := registry.Select(nil)
	require.NoError(t, err)

	require.Len(t, selected, 1)
	assert.Equal(t, "gb-naptan", selected[0].Identifier)
	assert.Equal(t, NaPTANAccessNodesURL, selected[0].Source)
}
