package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// networksFile is the on-disk shape of a network table.
type networksFile struct {
	Networks []Network `yaml:"networks"`
}

// LoadNetworksFile reads a network table from a YAML file, for enclosing
// applications that prefer file-driven configuration over environment
// variables. The result replaces Config.Networks wholesale.
func LoadNetworksFile(path string) (map[int]Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %v", err)
	}

	var file networksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %v", path, err)
	}
	if len(file.Networks) == 0 {
		return nil, fmt.Errorf("networks file %s defines no networks", path)
	}

	networks := make(map[int]Network, len(file.Networks))
	for _, network := range file.Networks {
		if network.ChainID <= 0 {
			return nil, fmt.Errorf("networks file %s: chain_id must be positive", path)
		}
		if _, dup := networks[network.ChainID]; dup {
			return nil, fmt.Errorf("networks file %s: duplicate chain %d", path, network.ChainID)
		}
		networks[network.ChainID] = network
	}

	return networks, nil
}
