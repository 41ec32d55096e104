package valueobjects

import "fmt"

// MeasurementType says how a stock item is counted. Area-measured items
// (rolls of tarpaulin, sheets of vinyl) consume by printed area; everything
// else consumes per unit.
type MeasurementType string

const (
	MeasurementPieces MeasurementType = "pieces"
	MeasurementArea   MeasurementType = "area"
	MeasurementSqft   MeasurementType = "sqft"
	MeasurementWeight MeasurementType = "weight"
	MeasurementVolume MeasurementType = "volume"
	MeasurementLength MeasurementType = "length"
)

var validMeasurementTypes = map[MeasurementType]bool{
	MeasurementPieces: true,
	MeasurementArea:   true,
	MeasurementSqft:   true,
	MeasurementWeight: true,
	MeasurementVolume: true,
	MeasurementLength: true,
}

func (mt MeasurementType) String() string {
	return string(mt)
}

func (mt MeasurementType) IsValid() bool {
	return validMeasurementTypes[mt]
}

func (mt MeasurementType) IsAreaBased() bool {
	return mt == MeasurementArea || mt == MeasurementSqft
}

func NewMeasurementType(s string) (MeasurementType, error) {
	mt := MeasurementType(s)
	if !mt.IsValid() {
		return "", fmt.Errorf("invalid measurement type: %s", s)
	}
	return mt, nil
}
