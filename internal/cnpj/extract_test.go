package cnpj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expected    []string
	}{
		{
			description: "nothing to find",
			text:        "no identifiers here",
			expected:    []string{},
		},
		{
			description: "masked and raw",
			text:        "Matriz 11.222.333/0001-81 e filial 11222333000262.",
			expected:    []string{"11222333000181", "11222333000262"},
		},
		{
			description: "order of appearance",
			text:        "11444777000161 then 11.222.333/0001-81",
			expected:    []string{"11444777000161", "11222333000181"},
		},
		{
			description: "duplicates collapse",
			text:        "11.222.333/0001-81, 11222333000181, 11.222.333/0001-81",
			expected:    []string{"11222333000181"},
		},
		{
			description: "invalid ones dropped",
			text:        "11.222.333/0001-82 00000000000000 11444777000161",
			expected:    []string{"11444777000161"},
		},
		{
			description: "longer digit runs ignored",
			text:        "1122233300018100",
			expected:    []string{},
		},
		{
			description: "masked inside a longer token ignored",
			text:        "111.222.333/0001-81 and 11.222.333/0001-819",
			expected:    []string{},
		},
		{
			description: "masked next to punctuation kept",
			text:        "(11.222.333/0001-81);11.444.777/0001-61",
			expected:    []string{"11222333000181", "11444777000161"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Extract(testCase.text))
		})
	}
}
