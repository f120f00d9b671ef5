// Package cnpj validates, masks, formats and generates Brazilian CNPJ numbers.
//
// Every function in this package is pure and safe for concurrent use. Malformed input is
// never an error here: Validate reports what is wrong through an Outcome.
package cnpj

import (
	"errors"
	"strconv"
)

const (
	// Length is the number of digits of a complete CNPJ
	Length = 14
	// BaseLength is the number of digits before the check digits
	BaseLength = 12
	// HeadOfficeBranch is the branch code of a head office
	HeadOfficeBranch = "0001"
)

var (
	// ErrWeightsMismatch is returned when digits and weights have different lengths
	ErrWeightsMismatch = errors.New("digits and weights must have the same length")
	// ErrInvalidBase is returned when a base is not exactly 12 decimal digits
	ErrInvalidBase = errors.New("base must have exactly 12 digits")
)

var (
	firstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// FirstWeights returns the multipliers of the first check digit
func FirstWeights() []int {
	return append([]int(nil), firstWeights...)
}

// SecondWeights returns the multipliers of the second check digit
func SecondWeights() []int {
	return append([]int(nil), secondWeights...)
}

// Sanitize removes all non-numeric characters
func Sanitize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// Validate checks a CNPJ and returns exactly one outcome.
//
// Checks run in a fixed order: emptiness, format, repeated digits, check digits.
func Validate(s string) Outcome {
	cleaned := Sanitize(s)

	if len(cleaned) == 0 {
		return NullOrEmpty
	}

	if len(cleaned) != Length || !allDigits(cleaned) {
		return InvalidFormat
	}

	if isAllSameDigit(cleaned) {
		return EqualDigits
	}

	digits := toDigits(cleaned)

	first, _ := CheckDigit(digits[:BaseLength], firstWeights)
	second, _ := CheckDigit(append(digits[:BaseLength:BaseLength], first), secondWeights)

	if first != digits[12] || second != digits[13] {
		return Invalid
	}
	return Valid
}

// IsValid reports whether Validate returns Valid
func IsValid(s string) bool {
	return Validate(s) == Valid
}

// CheckDigit calculates a mod-11 check digit using the given weights
func CheckDigit(digits, weights []int) (int, error) {
	if len(digits) != len(weights) {
		return 0, ErrWeightsMismatch
	}

	sum := 0
	for i, digit := range digits {
		sum += digit * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0, nil
	}
	return 11 - remainder, nil
}

// CheckDigits calculates both check digits of a 12-digit base
func CheckDigits(base string) (int, int, error) {
	if len(base) != BaseLength || !allDigits(base) {
		return 0, 0, ErrInvalidBase
	}

	digits := toDigits(base)
	first, err := CheckDigit(digits, firstWeights)
	if err != nil {
		return 0, 0, err
	}
	second, err := CheckDigit(append(digits, first), secondWeights)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

// Complete appends both check digits to a 12-digit base
func Complete(base string) (string, error) {
	first, second, err := CheckDigits(base)
	if err != nil {
		return "", err
	}
	return base + strconv.Itoa(first) + strconv.Itoa(second), nil
}

// Mask formats digits as they are typed (XX.XXX.XXX/XXXX-XX).
//
// Input is sanitized and truncated to 14 digits; separators are only written when a digit
// follows them, so partial input gives a partial mask.
func Mask(s string) string {
	cleaned := Sanitize(s)
	if len(cleaned) > Length {
		cleaned = cleaned[:Length]
	}

	out := make([]byte, 0, len(cleaned)+4)
	for i := 0; i < len(cleaned); i++ {
		switch i {
		case 2, 5:
			out = append(out, '.')
		case 8:
			out = append(out, '/')
		case 12:
			out = append(out, '-')
		}
		out = append(out, cleaned[i])
	}
	return string(out)
}

// Format formats a raw 14-digit CNPJ, returning anything else untouched
func Format(s string) string {
	if len(s) != Length {
		return s
	}
	return Mask(s)
}

// Normalize returns the sanitized digits together with the validation outcome
func Normalize(s string) (string, Outcome) {
	return Sanitize(s), Validate(s)
}

// Root returns the first 8 digits, shared by the head office and all its branches
func Root(s string) string {
	cleaned := Sanitize(s)
	if len(cleaned) != Length {
		return ""
	}
	return cleaned[:8]
}

// Branch returns the 4-digit branch code
func Branch(s string) string {
	cleaned := Sanitize(s)
	if len(cleaned) != Length {
		return ""
	}
	return cleaned[8:12]
}

// KindOf tells whether a CNPJ belongs to a head office or a branch
func KindOf(s string) Kind {
	branch := Branch(s)
	switch {
	case branch == "":
		return Unknown
	case branch == HeadOfficeBranch:
		return HeadOffice
	default:
		return BranchOffice
	}
}

// SameRoot checks if two CNPJs belong to the same company
func SameRoot(a, b string) bool {
	rootA := Root(a)
	rootB := Root(b)
	return rootA != "" && rootA == rootB
}

// Info holds information about a CNPJ
type Info struct {
	Original  string  `json:"original"`
	Cleaned   string  `json:"cleaned"`
	Formatted string  `json:"formatted"`
	Outcome   Outcome `json:"outcome"`
	Valid     bool    `json:"valid"`
	Kind      Kind    `json:"kind"`
	Root      string  `json:"root"`
	Branch    string  `json:"branch"`
}

// Analyze breaks a CNPJ down into its parts
func Analyze(s string) Info {
	cleaned, outcome := Normalize(s)
	info := Info{
		Original: s,
		Cleaned:  cleaned,
		Outcome:  outcome,
		Valid:    outcome.Valid(),
		Kind:     KindOf(cleaned),
		Root:     Root(cleaned),
		Branch:   Branch(cleaned),
	}
	if info.Valid {
		info.Formatted = Format(cleaned)
	}
	return info
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isAllSameDigit checks if all digits in the string are the same
func isAllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func toDigits(s string) []int {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}
