// Package seed loads the static vehicle and insurance data the services serve.
package seed

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/insurance-backend/internal/domain/insurance"
	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
)

const defaultSeedFile = "default.yaml"

//go:embed default.yaml
var defaultSeedFS embed.FS

// Data is the typed content of a seed document.
type Data struct {
	Vehicles         []vehicle.Vehicle
	PersonInsurances []insurance.PersonInsurances
}

type yamlSeed struct {
	Vehicles         []vehicle.Vehicle       `yaml:"vehicles"`
	PersonInsurances map[string][]yamlPolicy `yaml:"personInsurances"`
}

type yamlPolicy struct {
	Type                  string  `yaml:"type"`
	MonthlyCost           string  `yaml:"monthlyCost"`
	CarRegistrationNumber *string `yaml:"carRegistrationNumber"`
}

// Load reads the seed document at path, or the embedded default when path is blank.
func Load(path string) (Data, error) {
	raw, err := read(path)
	if err != nil {
		return Data{}, err
	}
	return Parse(raw)
}

// Parse decodes a seed document. Persons are returned sorted by id; policy order is preserved.
func Parse(raw []byte) (Data, error) {
	var doc yamlSeed
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}

	ids := make([]string, 0, len(doc.PersonInsurances))
	for id := range doc.PersonInsurances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := Data{Vehicles: doc.Vehicles}
	for _, id := range ids {
		rec := insurance.PersonInsurances{PersonID: id}
		for i, yp := range doc.PersonInsurances[id] {
			p, err := yp.policy()
			if err != nil {
				return Data{}, fmt.Errorf("person %s policy %d: %w", id, i, err)
			}
			rec.Policies = append(rec.Policies, p)
		}
		out.PersonInsurances = append(out.PersonInsurances, rec)
	}
	return out, nil
}

func (yp yamlPolicy) policy() (insurance.Policy, error) {
	t, err := insurance.ParseType(yp.Type)
	if err != nil {
		return insurance.Policy{}, err
	}
	costRaw := strings.TrimSpace(yp.MonthlyCost)
	if costRaw == "" {
		return insurance.Policy{}, fmt.Errorf("%w: monthly cost required", insurance.ErrInvalidPolicy)
	}
	cost, err := decimal.NewFromString(costRaw)
	if err != nil {
		return insurance.Policy{}, fmt.Errorf("%w: monthly cost %q: %w", insurance.ErrInvalidPolicy, yp.MonthlyCost, err)
	}
	return insurance.Policy{
		Type:                  t,
		MonthlyCost:           cost,
		CarRegistrationNumber: yp.CarRegistrationNumber,
	}, nil
}

func read(path string) ([]byte, error) {
	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
		return raw, nil
	}
	return defaultSeedFS.ReadFile(defaultSeedFile)
}
