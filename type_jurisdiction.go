package wallet

import (
	"fmt"
	"strings"
)

// Jurisdiction identifies a tax rate table.
type Jurisdiction string

const (
	US Jurisdiction = "US"
	UK Jurisdiction = "UK"
	EU Jurisdiction = "EU"
)

// Jurisdictions lists the jurisdictions with a default rate table.
var Jurisdictions = []Jurisdiction{US, UK, EU}

// ParseJurisdiction parses a jurisdiction code, case insensitive.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	switch j := Jurisdiction(strings.ToUpper(strings.TrimSpace(s))); j {
	case US, UK, EU:
		return j, nil
	default:
		return "", fmt.Errorf("%w: unknown jurisdiction %q", ErrInvalidInput, s)
	}
}

func (j Jurisdiction) String() string { return string(j) }
