package cnpj

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of validating a CNPJ
type Outcome int

const (
	// NullOrEmpty means the input had no digits at all
	NullOrEmpty Outcome = iota
	// InvalidFormat means the input did not sanitize to exactly 14 digits
	InvalidFormat
	// EqualDigits means all 14 digits are the same (00000000000000, 11111111111111, ...)
	EqualDigits
	// Invalid means the check digits do not match
	Invalid
	// Valid means the CNPJ passed every check
	Valid
)

var outcomeCodes = map[Outcome]string{
	NullOrEmpty:   "NULL_OR_EMPTY",
	InvalidFormat: "INVALID_FORMAT",
	EqualDigits:   "EQUAL_DIGITS",
	Invalid:       "INVALID",
	Valid:         "VALID",
}

// Outcomes lists every outcome in check order
func Outcomes() []Outcome {
	return []Outcome{NullOrEmpty, InvalidFormat, EqualDigits, Invalid, Valid}
}

// String returns the stable code of the outcome
func (o Outcome) String() string {
	if code, ok := outcomeCodes[o]; ok {
		return code
	}
	return fmt.Sprintf("OUTCOME(%d)", int(o))
}

// Valid reports whether the outcome is Valid
func (o Outcome) Valid() bool {
	return o == Valid
}

// MarshalJSON encodes the outcome as its code
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes an outcome from its code
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseOutcome(code)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOutcome returns the outcome for a code
func ParseOutcome(code string) (Outcome, error) {
	for outcome, c := range outcomeCodes {
		if c == code {
			return outcome, nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q", code)
}

// Kind tells head offices apart from branches
type Kind int

const (
	// Unknown is returned for anything that is not 14 digits
	Unknown Kind = iota
	// HeadOffice has branch code 0001
	HeadOffice
	// BranchOffice has any other branch code
	BranchOffice
)

// String returns the registry name of the kind
func (k Kind) String() string {
	switch k {
	case HeadOffice:
		return "MATRIZ"
	case BranchOffice:
		return "FILIAL"
	default:
		return "INVALID"
	}
}

// MarshalJSON encodes the kind as its registry name
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
