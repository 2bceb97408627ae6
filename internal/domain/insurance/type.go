package insurance

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Type is the closed set of insurance products.
type Type string

const (
	TypePet    Type = "Pet"
	TypeHealth Type = "Health"
	TypeCar    Type = "Car"
)

var ErrUnknownType = errors.New("unknown insurance type")

// ParseType accepts the canonical names case-insensitively.
func ParseType(raw string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pet":
		return TypePet, nil
	case "health":
		return TypeHealth, nil
	case "car":
		return TypeCar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, raw)
	}
}

func (t Type) String() string { return string(t) }

func (t Type) Valid() bool {
	switch t {
	case TypePet, TypeHealth, TypeCar:
		return true
	default:
		return false
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	return json.Marshal(string(t))
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
