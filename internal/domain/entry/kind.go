package entry

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Kind string

const (
	KindFeeding Kind = "feedings"
	KindDiaper  Kind = "diapers"
	KindSleep   Kind = "sleeps"
	KindGrowth  Kind = "growth"
)

func (Kind) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(KindFeeding),
			string(KindDiaper),
			string(KindSleep),
			string(KindGrowth),
		},
		Description: "Care entry kind",
		Examples:    []any{KindFeeding},
	}
}

// Validate implements the huma.Validatable interface.
func (k Kind) Validate() error {
	switch k {
	case KindFeeding, KindDiaper, KindSleep, KindGrowth:
		return nil
	}
	return fmt.Errorf("unknown entry kind: %s", k)
}

func (k Kind) String() string {
	return string(k)
}

// DisplayName returns the singular label used in exports and client output.
func (k Kind) DisplayName() string {
	switch k {
	case KindFeeding:
		return "Feeding"
	case KindDiaper:
		return "Diaper"
	case KindSleep:
		return "Sleep"
	case KindGrowth:
		return "Growth"
	default:
		return "Unknown"
	}
}
