package cnpj

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed list of values, wrapping around at the end
type sequenceSource struct {
	values []int
	pos    int
	calls  int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	s.calls++
	return v
}

func TestGenerator_Deterministic(t *testing.T) {
	src := &sequenceSource{values: []int{1, 2, 3, 4, 5, 6, 7, 8}}
	g, err := NewGenerator(src)
	require.NoError(t, err)

	assert.Equal(t, "12345678000195", g.Generate())
	assert.Equal(t, 8, src.calls)
}

func TestGenerator_RetriesEqualDigits(t *testing.T) {
	// twelve zeros complete to 00000000000000, which Validate rejects
	values := make([]int, 0, 24)
	for i := 0; i < BaseLength; i++ {
		values = append(values, 0)
	}
	values = append(values, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2)

	src := &sequenceSource{values: values}
	g, err := NewGenerator(src, WithRandomBranch())
	require.NoError(t, err)

	assert.Equal(t, "12345678901230", g.Generate())
	assert.Equal(t, 2*BaseLength, src.calls)
}

func TestGenerator_WithBranch(t *testing.T) {
	src := &sequenceSource{values: []int{1, 1, 2, 2, 2, 3, 3, 3}}
	g, err := NewGenerator(src, WithBranch("0002"))
	require.NoError(t, err)

	generated := g.Generate()
	assert.Equal(t, "11222333000262", generated)
	assert.Equal(t, BranchOffice, KindOf(generated))
}

func TestGenerator_InvalidBranch(t *testing.T) {
	for _, branch := range []string{"", "1", "00001", "0000", "00a1"} {
		_, err := NewGenerator(nil, WithBranch(branch))
		assert.ErrorIs(t, err, ErrInvalidBranch, branch)
	}
}

func TestGenerator_RoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		options     []GeneratorOption
	}{
		{description: "head office"},
		{description: "random branch", options: []GeneratorOption{WithRandomBranch()}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			g, err := NewGenerator(nil, testCase.options...)
			require.NoError(t, err)

			for _, generated := range g.GenerateN(500) {
				require.Len(t, generated, Length)
				require.Equal(t, Valid, Validate(generated), generated)
				if testCase.options == nil {
					require.Equal(t, HeadOfficeBranch, Branch(generated))
				}
			}
		})
	}
}

func TestGenerator_GenerateN(t *testing.T) {
	g, err := NewGenerator(nil)
	require.NoError(t, err)

	assert.Empty(t, g.GenerateN(0))
	assert.Empty(t, g.GenerateN(-3))
	assert.Len(t, g.GenerateN(7), 7)
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make(chan string, 200)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				results <- Generate()
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for generated := range results {
		count++
		assert.True(t, IsValid(generated), generated)
	}
	assert.Equal(t, 200, count)
}
