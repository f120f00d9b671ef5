package cnpj

import (
	"errors"
	"math/rand/v2"
	"strconv"
)

// ErrInvalidBranch is returned when a branch code is not 4 digits or is 0000
var ErrInvalidBranch = errors.New("branch must have 4 digits and cannot be 0000")

// Source supplies random integers in [0, n)
type Source interface {
	IntN(n int) int
}

// defaultSource uses the math/rand/v2 top-level generator, which is safe for concurrent use
type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator) error

// WithRandomBranch draws the branch digits at random instead of using 0001
func WithRandomBranch() GeneratorOption {
	return func(g *Generator) error {
		g.randomBranch = true
		return nil
	}
}

// WithBranch pins the branch code of generated numbers
func WithBranch(branch string) GeneratorOption {
	return func(g *Generator) error {
		if len(branch) != 4 || !allDigits(branch) || branch == "0000" {
			return ErrInvalidBranch
		}
		g.branch = branch
		g.randomBranch = false
		return nil
	}
}

// Generator produces fictitious CNPJs that pass Validate
type Generator struct {
	src          Source
	branch       string
	randomBranch bool
}

// NewGenerator creates a generator; a nil source uses the package default
func NewGenerator(src Source, opts ...GeneratorOption) (*Generator, error) {
	if src == nil {
		src = defaultSource{}
	}
	g := &Generator{
		src:    src,
		branch: HeadOfficeBranch,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate returns a raw 14-digit CNPJ.
//
// Candidates are rebuilt until one validates, which guards against the rare base whose
// digits are all equal.
func (g *Generator) Generate() string {
	for {
		candidate := g.candidate()
		if Validate(candidate) == Valid {
			return candidate
		}
	}
}

// GenerateN returns n generated CNPJs
func (g *Generator) GenerateN(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}

func (g *Generator) candidate() string {
	digits := make([]int, 0, Length)

	random := 8
	if g.randomBranch {
		random = BaseLength
	}
	for i := 0; i < random; i++ {
		digits = append(digits, g.src.IntN(10))
	}
	if !g.randomBranch {
		digits = append(digits, toDigits(g.branch)...)
	}

	first, _ := CheckDigit(digits, firstWeights)
	digits = append(digits, first)
	second, _ := CheckDigit(digits, secondWeights)
	digits = append(digits, second)

	out := make([]byte, 0, Length)
	for _, d := range digits {
		out = strconv.AppendInt(out, int64(d), 10)
	}
	return string(out)
}

var defaultGenerator = &Generator{src: defaultSource{}, branch: HeadOfficeBranch}

// Generate returns a head-office CNPJ from the default generator
func Generate() string {
	return defaultGenerator.Generate()
}
