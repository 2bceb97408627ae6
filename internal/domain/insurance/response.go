package insurance

import "github.com/shopspring/decimal"

// PersonInsurances is the stored record for one person.
type PersonInsurances struct {
	PersonID string
	Policies []Policy
}

// PersonInsuranceResponse is assembled fresh for every request.
type PersonInsuranceResponse struct {
	PersonID         string          `json:"personId"`
	Insurances       []Policy        `json:"insurances"`
	TotalMonthlyCost decimal.Decimal `json:"totalMonthlyCost"`
}

// TotalMonthlyCost sums the monthly cost of every policy.
func TotalMonthlyCost(policies []Policy) decimal.Decimal {
	total := decimal.Zero
	for _, p := range policies {
		total = total.Add(p.MonthlyCost)
	}
	return total
}
