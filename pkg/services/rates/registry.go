package rates

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// NewRegistry loads client day-rates from an ini profile file. Each section
// names a client and carries a `tjm` key:
//
//	[Acme]
//	tjm = 500
//
// Clients absent from the file simply resolve to a 0 rate.
func NewRegistry(path string) (Lookup, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates profile: %w", err)
	}

	rates := make(map[string]float64)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		key := section.Key("tjm")
		if key.String() == "" {
			continue
		}
		rate, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid tjm for client %q: %w", section.Name(), err)
		}
		rates[section.Name()] = rate
	}

	return NewStatic(rates), nil
}
