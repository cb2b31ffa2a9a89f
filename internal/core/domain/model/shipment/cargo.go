package shipment

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// CargoType is the unit in which a shipment's cargo is counted.
type CargoType string

const (
	CargoContainers  CargoType = "containers"
	CargoParcels     CargoType = "parcels"
	CargoCubicMeters CargoType = "cbm"
)

const (
	minCargoQuantity = 1
	maxCargoQuantity = 100000
)

// ErrCargoUnitsAreNotConstructed indicates a zero-value CargoUnits.
var ErrCargoUnitsAreNotConstructed = errs.NewValueIsRequiredError(
	"CargoUnits must be created via NewCargoUnits")

// CargoUnits is a value object pairing a cargo type with a quantity,
// e.g. 3 containers or 120 parcels.
type CargoUnits struct {
	cargoType CargoType
	quantity  int
}

// NewCargoUnits creates a validated CargoUnits value.
// The type must be one of the recognized cargo types and the quantity must
// lie within the permitted interval.
func NewCargoUnits(cargoType CargoType, quantity int) (CargoUnits, error) {
	switch cargoType {
	case CargoContainers, CargoParcels, CargoCubicMeters:
	default:
		return CargoUnits{}, errs.NewValueIsInvalidErrorWithCause(
			"cargoUnits.type",
			fmt.Errorf("%q is not a recognized cargo type", string(cargoType)),
		)
	}

	if quantity < minCargoQuantity || quantity > maxCargoQuantity {
		return CargoUnits{}, errs.NewValueIsOutOfRangeError(
			"cargoUnits.quantity", quantity, minCargoQuantity, maxCargoQuantity)
	}

	return CargoUnits{cargoType: cargoType, quantity: quantity}, nil
}

// Type returns the cargo unit type.
func (c CargoUnits) Type() CargoType {
	return c.cargoType
}

// Quantity returns the number of cargo units.
func (c CargoUnits) Quantity() int {
	return c.quantity
}

// IsEqual compares two cargo unit values.
func (c CargoUnits) IsEqual(other CargoUnits) bool {
	return c.cargoType == other.cargoType && c.quantity == other.quantity
}

// Validate returns ErrCargoUnitsAreNotConstructed for the zero value.
func (c CargoUnits) Validate() error {
	if c.cargoType == "" || c.quantity == 0 {
		return ErrCargoUnitsAreNotConstructed
	}
	return nil
}
