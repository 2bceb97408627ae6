package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/insurance-backend/internal/domain/insurance"
	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
	"github.com/yungbote/insurance-backend/internal/pkg/pointers"
)

func TestVehicleRegistryLookup(t *testing.T) {
	reg, err := NewVehicleRegistry([]vehicle.Vehicle{
		{RegistrationNumber: "abc123", Make: "Volvo", Model: "XC60", Year: 2019, Color: "Silver"},
		{RegistrationNumber: " XYZ789 ", Make: "Toyota"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"ABC123", "XYZ789"}, reg.Registrations())

	v, ok := reg.Lookup("ABC123")
	require.True(t, ok)
	assert.Equal(t, "ABC123", v.RegistrationNumber)
	assert.Equal(t, "Volvo", v.Make)

	v, ok = reg.Lookup("  xyz789")
	require.True(t, ok)
	assert.Equal(t, "Toyota", v.Make)

	_, ok = reg.Lookup("NOPE")
	assert.False(t, ok)
	_, ok = reg.Lookup("   ")
	assert.False(t, ok)
	_, ok = reg.Lookup("")
	assert.False(t, ok)
}

func TestNewVehicleRegistryRejectsBadInput(t *testing.T) {
	_, err := NewVehicleRegistry([]vehicle.Vehicle{{RegistrationNumber: " "}})
	require.Error(t, err)

	_, err = NewVehicleRegistry([]vehicle.Vehicle{{RegistrationNumber: "abc"}, {RegistrationNumber: "ABC"}})
	require.ErrorContains(t, err, "duplicate")
}

func TestInsuranceRegistryReturnsCopies(t *testing.T) {
	reg, err := NewInsuranceRegistry([]insurance.PersonInsurances{{
		PersonID: "12345",
		Policies: []insurance.Policy{
			{Type: insurance.TypePet, MonthlyCost: decimal.NewFromInt(10)},
			{Type: insurance.TypeCar, MonthlyCost: decimal.NewFromInt(30), CarRegistrationNumber: pointers.String("ABC123")},
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	first, ok := reg.Policies("12345")
	require.True(t, ok)
	require.Len(t, first, 2)

	*first[1].CarRegistrationNumber = "MUTATED"
	first[1].VehicleDetails = &vehicle.Vehicle{RegistrationNumber: "MUTATED"}
	first[0].Type = insurance.TypeHealth

	second, ok := reg.Policies("12345")
	require.True(t, ok)
	assert.Equal(t, insurance.TypePet, second[0].Type)
	assert.Equal(t, "ABC123", *second[1].CarRegistrationNumber)
	assert.Nil(t, second[1].VehicleDetails)

	_, ok = reg.Policies("99999")
	assert.False(t, ok)
}

func TestNewInsuranceRegistryValidates(t *testing.T) {
	cases := map[string][]insurance.PersonInsurances{
		"blank id":  {{PersonID: " "}},
		"duplicate": {{PersonID: "1"}, {PersonID: "1"}},
		"negative":  {{PersonID: "1", Policies: []insurance.Policy{{Type: insurance.TypePet, MonthlyCost: decimal.NewFromInt(-1)}}}},
		"pet with registration": {{PersonID: "1", Policies: []insurance.Policy{
			{Type: insurance.TypePet, MonthlyCost: decimal.NewFromInt(1), CarRegistrationNumber: pointers.String("A")},
		}}},
		"stored vehicle details": {{PersonID: "1", Policies: []insurance.Policy{
			{Type: insurance.TypeCar, MonthlyCost: decimal.NewFromInt(1), VehicleDetails: &vehicle.Vehicle{}},
		}}},
	}
	for name, records := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewInsuranceRegistry(records)
			require.Error(t, err)
		})
	}
}
