package cnpj

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expected    string
	}{
		{description: "empty", input: "", expected: ""},
		{description: "letters only", input: "abc", expected: ""},
		{description: "masked", input: "11.222.333/0001-81", expected: "11222333000181"},
		{description: "mixed", input: " 11a222 b333\t0001-81x", expected: "11222333000181"},
		{description: "unicode digits are dropped", input: "1٢3", expected: "13"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual := Sanitize(testCase.input)
			assert.Equal(t, testCase.expected, actual)
			assert.Equal(t, actual, Sanitize(actual), "sanitize must be idempotent")
		})
	}
}

func TestValidate(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expected    Outcome
	}{
		{description: "empty", input: "", expected: NullOrEmpty},
		{description: "no digits", input: "abc", expected: NullOrEmpty},
		{description: "only punctuation", input: "../-", expected: NullOrEmpty},
		{description: "13 digits", input: "1234567890123", expected: InvalidFormat},
		{description: "15 digits", input: "112223330001810", expected: InvalidFormat},
		{description: "single digit", input: "7", expected: InvalidFormat},
		{description: "all ones", input: "11111111111111", expected: EqualDigits},
		{description: "all zeros masked", input: "00.000.000/0000-00", expected: EqualDigits},
		{description: "wrong second digit", input: "11222333000182", expected: Invalid},
		{description: "wrong first digit", input: "11222333000171", expected: Invalid},
		{description: "swapped digits", input: "11222333000118", expected: Invalid},
		{description: "valid raw", input: "11222333000181", expected: Valid},
		{description: "valid masked", input: "11.222.333/0001-81", expected: Valid},
		{description: "valid with noise", input: "CNPJ: 11.444.777/0001-61.", expected: Valid},
		{description: "valid branch", input: "12345678000195", expected: Valid},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Validate(testCase.input))
			assert.Equal(t, Validate(testCase.input), Validate(Sanitize(testCase.input)))
			assert.Equal(t, testCase.expected == Valid, IsValid(testCase.input))
		})
	}
}

func TestValidate_EqualDigitsBeatChecksum(t *testing.T) {
	// 00000000000000 has matching check digits but must still be rejected
	first, second, err := CheckDigits("000000000000")
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, EqualDigits, Validate("00000000000000"))

	for d := 0; d <= 9; d++ {
		repeated := ""
		for i := 0; i < Length; i++ {
			repeated += strconv.Itoa(d)
		}
		assert.Equal(t, EqualDigits, Validate(repeated), repeated)
	}
}

func TestValidate_ComputedVector(t *testing.T) {
	base := "114447770001"
	first, second, err := CheckDigits(base)
	require.NoError(t, err)
	assert.Equal(t, 6, first)
	assert.Equal(t, 1, second)

	valid := base + strconv.Itoa(first) + strconv.Itoa(second)
	assert.Equal(t, Valid, Validate(valid))

	broken := base + strconv.Itoa(first) + strconv.Itoa((second+1)%10)
	assert.Equal(t, Invalid, Validate(broken))
}

func TestCheckDigit(t *testing.T) {
	var testCases = []struct {
		description string
		digits      []int
		weights     []int
		expected    int
	}{
		{
			description: "remainder above one",
			digits:      []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1},
			weights:     FirstWeights(),
			expected:    8,
		},
		{
			description: "second pass includes first digit",
			digits:      []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1, 8},
			weights:     SecondWeights(),
			expected:    1,
		},
		{
			description: "remainder zero",
			digits:      []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			weights:     FirstWeights(),
			expected:    0,
		},
		{
			description: "remainder one maps to zero",
			digits:      []int{1},
			weights:     []int{1},
			expected:    0,
		},
		{
			description: "remainder two",
			digits:      []int{2},
			weights:     []int{1},
			expected:    9,
		},
		{
			description: "remainder ten",
			digits:      []int{5},
			weights:     []int{2},
			expected:    1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := CheckDigit(testCase.digits, testCase.weights)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestCheckDigit_LengthMismatch(t *testing.T) {
	_, err := CheckDigit([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, ErrWeightsMismatch)
}

func TestCheckDigits_InvalidBase(t *testing.T) {
	for _, base := range []string{"", "12345678901", "1234567890123", "11222333000a"} {
		_, _, err := CheckDigits(base)
		assert.ErrorIs(t, err, ErrInvalidBase, base)
	}
}

func TestWeightsAreCopies(t *testing.T) {
	w := FirstWeights()
	w[0] = 99
	assert.Equal(t, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}, FirstWeights())
	assert.Equal(t, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}, SecondWeights())
}

func TestComplete(t *testing.T) {
	actual, err := Complete("112223330001")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", actual)

	_, err = Complete("1122")
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestMask(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expected    string
	}{
		{description: "empty", input: "", expected: ""},
		{description: "two digits", input: "12", expected: "12"},
		{description: "three digits", input: "123", expected: "12.3"},
		{description: "five digits", input: "12345", expected: "12.345"},
		{description: "seven digits", input: "1234567", expected: "12.345.67"},
		{description: "nine digits", input: "123456789", expected: "12.345.678/9"},
		{description: "thirteen digits", input: "1122233300018", expected: "11.222.333/0001-8"},
		{description: "full", input: "11222333000181", expected: "11.222.333/0001-81"},
		{description: "already masked", input: "11.222.333/0001-81", expected: "11.222.333/0001-81"},
		{description: "twenty digits truncated", input: "11222333000181999999", expected: "11.222.333/0001-81"},
		{description: "noise removed", input: "ab12-3", expected: "12.3"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Mask(testCase.input))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", Format("11222333000181"))
	assert.Equal(t, "1122233300018", Format("1122233300018"))
	assert.Equal(t, "11.222.333/0001-81", Format("11.222.333/0001-81"))
	assert.Equal(t, "", Format(""))

	masked := Format("11444777000161")
	assert.Equal(t, masked, Format(Sanitize(masked)))
}

func TestRootBranchKind(t *testing.T) {
	assert.Equal(t, "11222333", Root("11.222.333/0001-81"))
	assert.Equal(t, "0001", Branch("11.222.333/0001-81"))
	assert.Equal(t, HeadOffice, KindOf("11.222.333/0001-81"))
	assert.Equal(t, BranchOffice, KindOf("11222333000262"))
	assert.Equal(t, Unknown, KindOf("1122"))
	assert.Equal(t, "", Root("1122"))
	assert.Equal(t, "", Branch("1122"))

	assert.True(t, SameRoot("11.222.333/0001-81", "11222333000262"))
	assert.False(t, SameRoot("11222333000181", "11444777000161"))
	assert.False(t, SameRoot("", ""))
}

func TestAnalyze(t *testing.T) {
	info := Analyze("11.222.333/0001-81")
	assert.Equal(t, Info{
		Original:  "11.222.333/0001-81",
		Cleaned:   "11222333000181",
		Formatted: "11.222.333/0001-81",
		Outcome:   Valid,
		Valid:     true,
		Kind:      HeadOffice,
		Root:      "11222333",
		Branch:    "0001",
	}, info)

	info = Analyze("11222333000182")
	assert.Equal(t, Invalid, info.Outcome)
	assert.False(t, info.Valid)
	assert.Empty(t, info.Formatted)
}

func TestOutcomeCodes(t *testing.T) {
	for _, outcome := range Outcomes() {
		parsed, err := ParseOutcome(outcome.String())
		require.NoError(t, err)
		assert.Equal(t, outcome, parsed)
	}
	_, err := ParseOutcome("MAYBE")
	assert.Error(t, err)

	data, err := Valid.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"VALID"`, string(data))

	var decoded Outcome
	require.NoError(t, decoded.UnmarshalJSON([]byte(`"EQUAL_DIGITS"`)))
	assert.Equal(t, EqualDigits, decoded)
}
