package models

import "github.com/nexconsult/cnpj-toolkit/internal/cnpj"

var outcomeMessages = map[cnpj.Outcome]string{
	cnpj.NullOrEmpty:   "CNPJ is empty",
	cnpj.InvalidFormat: "CNPJ must contain exactly 14 digits",
	cnpj.EqualDigits:   "CNPJ cannot have all digits equal",
	cnpj.Invalid:       "CNPJ check digits do not match",
	cnpj.Valid:         "CNPJ is valid",
}

// GeneratedNotice labels generated numbers
const GeneratedNotice = "Generated numbers are fictitious and must only be used for testing"

// OutcomeMessage returns the user-facing message of an outcome
func OutcomeMessage(outcome cnpj.Outcome) string {
	if msg, ok := outcomeMessages[outcome]; ok {
		return msg
	}
	return "Unknown validation outcome"
}
