package valueobjects

import "fmt"

// ConsumeType discriminates how an average-consumption link interprets its
// per-unit figure. "sqft" is a legacy alias of "area" kept for old records.
type ConsumeType string

const (
	ConsumeTypePieces ConsumeType = "pieces"
	ConsumeTypeArea   ConsumeType = "area"
	ConsumeTypeSqft   ConsumeType = "sqft"
	ConsumeTypeWeight ConsumeType = "weight"
	ConsumeTypeVolume ConsumeType = "volume"
	ConsumeTypeLength ConsumeType = "length"
)

var validConsumeTypes = map[ConsumeType]bool{
	ConsumeTypePieces: true,
	ConsumeTypeArea:   true,
	ConsumeTypeSqft:   true,
	ConsumeTypeWeight: true,
	ConsumeTypeVolume: true,
	ConsumeTypeLength: true,
}

func (c ConsumeType) String() string {
	return string(c)
}

func (c ConsumeType) IsValid() bool {
	return validConsumeTypes[c]
}

// IsAreaBased reports whether the consume type scales with production
// dimensions.
func (c ConsumeType) IsAreaBased() bool {
	return c == ConsumeTypeArea || c == ConsumeTypeSqft
}

func NewConsumeType(s string) (ConsumeType, error) {
	c := ConsumeType(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid consume type: %s", s)
	}
	return c, nil
}
