package wallet

import (
	"fmt"
	"strings"
)

// CostBasisMethod defines the method for matching disposals against lots.
type CostBasisMethod int

const (
	// FIFO (First-In, First-Out) assumes the oldest units are sold first.
	FIFO CostBasisMethod = iota
	// LIFO (Last-In, First-Out) assumes the newest units are sold first.
	LIFO
	// HIFO (Highest-In, First-Out) assumes the most expensive units are sold first.
	HIFO
	// AverageCost pools all units at a moving weighted-average unit cost.
	AverageCost
)

// CostBasisMethods lists all supported methods, in declaration order.
var CostBasisMethods = []CostBasisMethod{FIFO, LIFO, HIFO, AverageCost}

func (m CostBasisMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	case AverageCost:
		return "average"
	default:
		return "unknown"
	}
}

func (m CostBasisMethod) valid() bool { return m >= FIFO && m <= AverageCost }

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	case "average", "avg":
		return AverageCost, nil
	default:
		return 0, fmt.Errorf("%w: unknown cost basis method %q", ErrInvalidConfiguration, s)
	}
}

func (m CostBasisMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *CostBasisMethod) UnmarshalText(text []byte) error {
	v, err := ParseCostBasisMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
