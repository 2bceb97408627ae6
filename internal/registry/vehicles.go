package registry

import (
	"fmt"
	"sort"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
)

// VehicleRegistry maps normalized registration numbers to vehicles.
// It is never written after construction, so concurrent reads need no locking.
type VehicleRegistry struct {
	byReg map[string]vehicle.Vehicle
}

func NewVehicleRegistry(vehicles []vehicle.Vehicle) (*VehicleRegistry, error) {
	r := &VehicleRegistry{byReg: make(map[string]vehicle.Vehicle, len(vehicles))}
	for _, v := range vehicles {
		v = v.Normalized()
		if v.RegistrationNumber == "" {
			return nil, fmt.Errorf("vehicle registration number required (make=%q model=%q)", v.Make, v.Model)
		}
		if _, exists := r.byReg[v.RegistrationNumber]; exists {
			return nil, fmt.Errorf("duplicate vehicle registration: %s", v.RegistrationNumber)
		}
		r.byReg[v.RegistrationNumber] = v
	}
	return r, nil
}

// Lookup finds a vehicle by registration number, ignoring case and surrounding whitespace.
// Blank input is reported as absent.
func (r *VehicleRegistry) Lookup(registrationNumber string) (vehicle.Vehicle, bool) {
	reg := vehicle.NormalizeRegistration(registrationNumber)
	if reg == "" {
		return vehicle.Vehicle{}, false
	}
	v, ok := r.byReg[reg]
	return v, ok
}

func (r *VehicleRegistry) Len() int { return len(r.byReg) }

// Registrations lists the known registration numbers in sorted order.
func (r *VehicleRegistry) Registrations() []string {
	out := make([]string, 0, len(r.byReg))
	for reg := range r.byReg {
		out = append(out, reg)
	}
	sort.Strings(out)
	return out
}
