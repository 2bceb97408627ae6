package vehicle

import "strings"

// Vehicle is a registered vehicle as served by the vehicle service.
// RegistrationNumber is always stored upper-cased.
type Vehicle struct {
	RegistrationNumber string `json:"registrationNumber" yaml:"registrationNumber"`
	Make               string `json:"make" yaml:"make"`
	Model              string `json:"model" yaml:"model"`
	Year               int    `json:"year" yaml:"year"`
	Color              string `json:"color" yaml:"color"`
}

// NormalizeRegistration trims surrounding whitespace and upper-cases a registration number.
func NormalizeRegistration(reg string) string {
	return strings.ToUpper(strings.TrimSpace(reg))
}

// Normalized returns a copy with the registration number normalized.
func (v Vehicle) Normalized() Vehicle {
	v.RegistrationNumber = NormalizeRegistration(v.RegistrationNumber)
	return v
}
