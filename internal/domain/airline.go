package domain

import (
	"regexp"
	"strings"
)

// translatableIdentRegex matches a two-letter airline prefix followed by 1-5 digits.
var translatableIdentRegex = regexp.MustCompile(`^([A-Z]{2})(\d{1,5})$`)

// AirlineCodeMap maps IATA airline prefixes to ICAO airline prefixes (e.g. "AK" -> "AXM").
// It is built once at startup and never mutated afterwards.
type AirlineCodeMap struct {
	codes map[string]string
}

// NewAirlineCodeMap copies the given table, uppercasing keys and values.
// Blank entries are dropped.
func NewAirlineCodeMap(codes map[string]string) AirlineCodeMap {
	m := make(map[string]string, len(codes))
	for iata, icao := range codes {
		iata = strings.ToUpper(strings.TrimSpace(iata))
		icao = strings.ToUpper(strings.TrimSpace(icao))
		if iata == "" || icao == "" {
			continue
		}
		m[iata] = icao
	}
	return AirlineCodeMap{codes: m}
}

// Lookup returns the ICAO prefix for an IATA prefix.
func (m AirlineCodeMap) Lookup(iata string) (string, bool) {
	icao, ok := m.codes[strings.ToUpper(iata)]
	return icao, ok
}

// Len returns the number of mapped prefixes.
func (m AirlineCodeMap) Len() int {
	return len(m.codes)
}

// TranslateIdent rewrites a normalized IATA-style ident such as "AK6322" into
// its ICAO form "AXM6322". It reports false when the ident does not have the
// two-letter + digits shape or the prefix is not mapped.
func (m AirlineCodeMap) TranslateIdent(ident string) (string, bool) {
	parts := translatableIdentRegex.FindStringSubmatch(ident)
	if parts == nil {
		return "", false
	}

	icao, ok := m.Lookup(parts[1])
	if !ok {
		return "", false
	}
	return icao + parts[2], true
}
