package stats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PortalPriority is the business ordering of channels: listed claves sort
// first in list order, anything unlisted sorts after them alphabetically.
type PortalPriority []string

// DefaultPortalPriority is compiled in so the service works without the
// config file present.
var DefaultPortalPriority = PortalPriority{
	"ciudadania",
	"empresas",
	"extranjeria",
	"justicia",
}

// Rank returns the priority index of a clave, or len(p) for unlisted ones
// so they sort after every listed channel.
func (p PortalPriority) Rank(clave string) int {
	for i, c := range p {
		if c == clave {
			return i
		}
	}
	return len(p)
}

type portalPriorityFile struct {
	Portales []string `yaml:"portales"`
}

// LoadPortalPriority reads the priority list from a YAML file. A missing
// file falls back to the default list; a malformed one is an error.
func LoadPortalPriority(path string) (PortalPriority, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPortalPriority, nil
		}
		return nil, fmt.Errorf("read portal priority file: %w", err)
	}
	var f portalPriorityFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse portal priority file: %w", err)
	}
	if len(f.Portales) == 0 {
		return DefaultPortalPriority, nil
	}
	return PortalPriority(f.Portales), nil
}
