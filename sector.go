package brvmwatch

import (
	"encoding/json"
	"strings"
)

// Sector is one of the closed set of BRVM sector indices. Any code outside
// the published set maps to SectorUnknown: the bulletin occasionally carries
// typos and the display must not depend on an open string-keyed table.
type Sector int

const (
	SectorUnknown Sector = iota
	SectorTelecom
	SectorFinance
	SectorConsumerDiscretionary
	SectorConsumerStaples
	SectorIndustrials
	SectorEnergy
	SectorUtilities
)

// two-letter codes used in the bulletin and the backend database.
var sectorCodes = map[Sector]string{
	SectorTelecom:               "TEL",
	SectorFinance:               "FIN",
	SectorConsumerDiscretionary: "CD",
	SectorConsumerStaples:       "CB",
	SectorIndustrials:           "IND",
	SectorEnergy:                "ENE",
	SectorUtilities:             "SPU",
}

// ParseSector maps a bulletin code to its Sector, total over all inputs.
func ParseSector(code string) Sector {
	code = strings.ToUpper(strings.TrimSpace(code))
	for s, c := range sectorCodes {
		if c == code {
			return s
		}
	}
	return SectorUnknown
}

// Code returns the two-letter bulletin code, or "" for SectorUnknown.
func (s Sector) Code() string { return sectorCodes[s] }

// Label returns the full index name as published by the exchange.
func (s Sector) Label() string {
	switch s {
	case SectorTelecom:
		return "BRVM-TELECOMMUNICATIONS"
	case SectorFinance:
		return "BRVM-SERVICES FINANCIERS"
	case SectorConsumerDiscretionary:
		return "BRVM-CONSOMMATION DISCRETIONNAIRE"
	case SectorConsumerStaples:
		return "BRVM-CONSOMMATION DE BASE"
	case SectorIndustrials:
		return "BRVM-INDUSTRIELS"
	case SectorEnergy:
		return "BRVM-ENERGIE"
	case SectorUtilities:
		return "BRVM-SERVICES PUBLICS"
	default:
		return "BRVM-AUTRES"
	}
}

func (s Sector) String() string {
	if s == SectorUnknown {
		return "?"
	}
	return s.Code()
}

func (s *Sector) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	*s = ParseSector(code)
	return nil
}

func (s Sector) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Code())
}
