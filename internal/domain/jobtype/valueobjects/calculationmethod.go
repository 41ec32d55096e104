package valueobjects

import "fmt"

// CalculationMethod determines how a size-based rate turns dimensions into a
// price: per linear unit (length) or per square unit (area).
type CalculationMethod string

const (
	CalculationMethodArea   CalculationMethod = "area"
	CalculationMethodLength CalculationMethod = "length"
)

func (m CalculationMethod) String() string {
	return string(m)
}

func (m CalculationMethod) IsValid() bool {
	return m == CalculationMethodArea || m == CalculationMethodLength
}

func (m CalculationMethod) IsArea() bool {
	return m == CalculationMethodArea
}

func (m CalculationMethod) IsLength() bool {
	return m == CalculationMethodLength
}

func NewCalculationMethod(s string) (CalculationMethod, error) {
	m := CalculationMethod(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid calculation method: %s", s)
	}
	return m, nil
}
