package registry

import (
	"fmt"
	"strings"

	"github.com/yungbote/insurance-backend/internal/domain/insurance"
)

// InsuranceRegistry maps person identifiers to their ordered policy lists.
// Like VehicleRegistry it is read-only after construction.
type InsuranceRegistry struct {
	byPerson map[string][]insurance.Policy
}

func NewInsuranceRegistry(records []insurance.PersonInsurances) (*InsuranceRegistry, error) {
	r := &InsuranceRegistry{byPerson: make(map[string][]insurance.Policy, len(records))}
	for _, rec := range records {
		id := strings.TrimSpace(rec.PersonID)
		if id == "" {
			return nil, fmt.Errorf("person id required")
		}
		if _, exists := r.byPerson[id]; exists {
			return nil, fmt.Errorf("duplicate person id: %s", id)
		}
		for i, p := range rec.Policies {
			if p.VehicleDetails != nil {
				return nil, fmt.Errorf("person %s policy %d: %w: vehicle details are not stored", id, i, insurance.ErrInvalidPolicy)
			}
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("person %s policy %d: %w", id, i, err)
			}
		}
		r.byPerson[id] = insurance.ClonePolicies(rec.Policies)
	}
	return r, nil
}

// Policies returns a private copy of the person's policies in stored order.
// Callers may mutate the result freely.
func (r *InsuranceRegistry) Policies(personID string) ([]insurance.Policy, bool) {
	policies, ok := r.byPerson[strings.TrimSpace(personID)]
	if !ok {
		return nil, false
	}
	return insurance.ClonePolicies(policies), true
}

func (r *InsuranceRegistry) Len() int { return len(r.byPerson) }
