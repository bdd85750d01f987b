package gpio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// registerCount is the size of a GPIO block snapshot: MODER, OTYPER,
// OSPEEDR, PUPDR, IDR, ODR, BSRR, LCKR, AFRL, AFRH.
const registerCount = 10

// Indices into Port.Registers.
const (
	regMODER = iota
	regOTYPER
	regOSPEEDR
	regPUPDR
	regIDR
	regODR
	regBSRR
	regLCKR
	regAFRL
	regAFRH
)

// Snapshot is the YAML document consumed by the gpio command: the
// captured register blocks of one or more ports.
type Snapshot struct {
	Ports []Port `yaml:"ports"`
}

// Port is one GPIO port's register block, in address order.
type Port struct {
	Name      string   `yaml:"name"`
	Registers []uint32 `yaml:"registers"`
}

// Load parses and validates a register snapshot document.
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if len(snap.Ports) == 0 {
		return nil, fmt.Errorf("snapshot lists no ports")
	}
	for i, p := range snap.Ports {
		if p.Name == "" {
			return nil, fmt.Errorf("port %d: missing name", i)
		}
		if len(p.Registers) != registerCount {
			return nil, fmt.Errorf("port %s: expected %d register words, got %d",
				p.Name, registerCount, len(p.Registers))
		}
	}

	return &snap, nil
}
