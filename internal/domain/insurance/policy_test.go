package insurance

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
)

func TestParseType(t *testing.T) {
	for raw, want := range map[string]Type{"pet": TypePet, "HEALTH": TypeHealth, " Car ": TypeCar} {
		got, err := ParseType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}
	_, err := ParseType("Boat")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestPolicyJSON(t *testing.T) {
	reg := "ABC123"
	p := Policy{
		Type:                  TypeCar,
		MonthlyCost:           decimal.RequireFromString("12.5"),
		CarRegistrationNumber: &reg,
		VehicleDetails:        &vehicle.Vehicle{RegistrationNumber: "ABC123", Make: "Volvo"},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"Car",
		"monthlyCost":12.5,
		"carRegistrationNumber":"ABC123",
		"vehicleDetails":{"registrationNumber":"ABC123","make":"Volvo","model":"","year":0,"color":""}
	}`, string(b))

	b, err = json.Marshal(Policy{Type: TypePet, MonthlyCost: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Pet","monthlyCost":10,"carRegistrationNumber":null,"vehicleDetails":null}`, string(b))

	_, err = json.Marshal(Policy{Type: "Boat"})
	require.Error(t, err)
}

func TestPolicyValidate(t *testing.T) {
	reg := "X"
	assert.NoError(t, Policy{Type: TypeCar, MonthlyCost: decimal.NewFromInt(1), CarRegistrationNumber: &reg}.Validate())
	assert.NoError(t, Policy{Type: TypeCar, MonthlyCost: decimal.Zero}.Validate())

	bad := []Policy{
		{Type: "Boat"},
		{Type: TypePet, MonthlyCost: decimal.NewFromInt(-5)},
		{Type: TypeHealth, CarRegistrationNumber: &reg},
		{Type: TypePet, VehicleDetails: &vehicle.Vehicle{}},
	}
	for _, p := range bad {
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPolicy)
	}
}

func TestPolicyRegistration(t *testing.T) {
	reg := "  ABC123 "
	assert.Equal(t, "ABC123", Policy{Type: TypeCar, CarRegistrationNumber: &reg}.Registration())
	assert.Equal(t, "", Policy{Type: TypeCar}.Registration())
	assert.Equal(t, "", Policy{Type: TypePet, CarRegistrationNumber: &reg}.Registration())
}

func TestClonePoliciesIsDeep(t *testing.T) {
	reg := "ABC123"
	src := []Policy{{Type: TypeCar, CarRegistrationNumber: &reg, VehicleDetails: &vehicle.Vehicle{Make: "Volvo"}}}
	cp := ClonePolicies(src)

	*cp[0].CarRegistrationNumber = "CHANGED"
	cp[0].VehicleDetails.Make = "Saab"

	assert.Equal(t, "ABC123", *src[0].CarRegistrationNumber)
	assert.Equal(t, "Volvo", src[0].VehicleDetails.Make)
}

func TestTotalMonthlyCostIsExact(t *testing.T) {
	policies := []Policy{
		{Type: TypePet, MonthlyCost: decimal.RequireFromString("0.1")},
		{Type: TypeHealth, MonthlyCost: decimal.RequireFromString("0.2")},
	}
	assert.True(t, TotalMonthlyCost(policies).Equal(decimal.RequireFromString("0.3")))
	assert.True(t, TotalMonthlyCost(nil).IsZero())
}
