package insurance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
	"github.com/yungbote/insurance-backend/internal/pkg/pointers"
)

func init() {
	// Monthly costs go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var ErrInvalidPolicy = errors.New("invalid insurance policy")

// Policy is one insurance product held by a person.
//
// CarRegistrationNumber and VehicleDetails are only meaningful for TypeCar; nil means absent.
// VehicleDetails is filled in per request and never stored in the registry.
type Policy struct {
	Type                  Type             `json:"type"`
	MonthlyCost           decimal.Decimal  `json:"monthlyCost"`
	CarRegistrationNumber *string          `json:"carRegistrationNumber"`
	VehicleDetails        *vehicle.Vehicle `json:"vehicleDetails"`
}

// Validate enforces the per-type field rules.
func (p Policy) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPolicy, ErrUnknownType, string(p.Type))
	}
	if p.MonthlyCost.IsNegative() {
		return fmt.Errorf("%w: negative monthly cost %s", ErrInvalidPolicy, p.MonthlyCost.String())
	}
	if p.Type != TypeCar {
		if p.CarRegistrationNumber != nil {
			return fmt.Errorf("%w: %s policy carries a car registration number", ErrInvalidPolicy, p.Type)
		}
		if p.VehicleDetails != nil {
			return fmt.Errorf("%w: %s policy carries vehicle details", ErrInvalidPolicy, p.Type)
		}
	}
	return nil
}

// Registration returns the trimmed car registration number, or "" when there is none.
func (p Policy) Registration() string {
	if p.Type != TypeCar || p.CarRegistrationNumber == nil {
		return ""
	}
	return strings.TrimSpace(*p.CarRegistrationNumber)
}

// Clone deep copies the optional fields so the copy can be mutated independently.
func (p Policy) Clone() Policy {
	out := p
	out.CarRegistrationNumber = pointers.Clone(p.CarRegistrationNumber)
	out.VehicleDetails = pointers.Clone(p.VehicleDetails)
	return out
}

// ClonePolicies copies a policy list, preserving order.
func ClonePolicies(in []Policy) []Policy {
	out := make([]Policy, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
