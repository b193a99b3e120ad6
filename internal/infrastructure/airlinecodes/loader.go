// Package airlinecodes loads the IATA to ICAO airline prefix table.
package airlinecodes

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/flight-search/flight-webhook-adapter/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed airline_codes.yaml
var defaultTable []byte

// file is the on-disk layout of an airline code table.
type file struct {
	Airlines map[string]string `yaml:"airlines"`
}

// Default returns the embedded table.
func Default() (domain.AirlineCodeMap, error) {
	return Parse(defaultTable)
}

// Load reads a table from path, or returns the embedded table when path is empty.
func Load(path string) (domain.AirlineCodeMap, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AirlineCodeMap{}, fmt.Errorf("failed to read airline codes file: %w", err)
	}

	codes, err := Parse(data)
	if err != nil {
		return domain.AirlineCodeMap{}, fmt.Errorf("%s: %w", path, err)
	}
	return codes, nil
}

// Parse decodes a YAML table. An empty table is an error.
func Parse(data []byte) (domain.AirlineCodeMap, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.AirlineCodeMap{}, fmt.Errorf("failed to parse airline codes: %w", err)
	}

	for iata, icao := range f.Airlines {
		if len(iata) != 2 || len(icao) != 3 {
			return domain.AirlineCodeMap{}, fmt.Errorf("invalid airline code pair %q -> %q", iata, icao)
		}
	}

	codes := domain.NewAirlineCodeMap(f.Airlines)
	if codes.Len() == 0 {
		return domain.AirlineCodeMap{}, fmt.Errorf("airline codes table is empty")
	}
	return codes, nil
}
