package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/nexconsult/cnpj-toolkit/internal/config"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyBatch is returned when a batch has no items
	ErrEmptyBatch = errors.New("batch must contain at least one CNPJ")
	// ErrBatchTooLarge is returned when a batch exceeds the configured size
	ErrBatchTooLarge = errors.New("batch too large")
	// ErrGenerateLimit is returned when more CNPJs are requested than allowed
	ErrGenerateLimit = errors.New("generate count out of range")
)

// CNPJService exposes the identifier engine to the presentation layers
type CNPJService struct {
	config    config.CNPJConfig
	generator *cnpj.Generator
	branchGen *cnpj.Generator
	extractor *ExtractorService
	metrics   *Metrics
	logger    *logrus.Logger
}

// NewCNPJService creates a new CNPJ service; a nil source uses the engine default
func NewCNPJService(cfg config.CNPJConfig, src cnpj.Source, metrics *Metrics, logger *logrus.Logger) (*CNPJService, error) {
	var opts []cnpj.GeneratorOption
	if cfg.RandomBranch {
		opts = append(opts, cnpj.WithRandomBranch())
	}
	generator, err := cnpj.NewGenerator(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	branchGen, err := cnpj.NewGenerator(src, cnpj.WithRandomBranch())
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &CNPJService{
		config:    cfg,
		generator: generator,
		branchGen: branchGen,
		extractor: NewExtractorService(logger),
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Validate checks a single CNPJ
func (s *CNPJService) Validate(_ context.Context, value string) models.ValidationResult {
	outcome := cnpj.Validate(value)
	s.metrics.Validations.WithLabelValues(outcome.String()).Inc()
	return models.NewValidationResult(value, outcome)
}

// ValidateBatch checks several CNPJs and aggregates the outcomes
func (s *CNPJService) ValidateBatch(ctx context.Context, values []string) (*models.BatchValidationResponse, error) {
	if len(values) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(values) > s.config.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d items, max %d", ErrBatchTooLarge, len(values), s.config.MaxBatchSize)
	}

	start := time.Now()
	response := &models.BatchValidationResponse{
		Results:   make([]models.ValidationResult, 0, len(values)),
		Total:     len(values),
		ByOutcome: make(map[string]int),
	}

	for _, value := range values {
		result := s.Validate(ctx, value)
		response.Results = append(response.Results, result)
		response.ByOutcome[result.Outcome.String()]++
		if result.Valid {
			response.Valid++
		} else {
			response.Invalid++
		}
	}

	response.DurationMs = time.Since(start).Milliseconds()
	response.Timestamp = time.Now()

	s.logger.WithFields(logrus.Fields{
		"total":   response.Total,
		"valid":   response.Valid,
		"invalid": response.Invalid,
	}).Debug("Batch validation finished")

	return response, nil
}

// Mask formats input as it is typed
func (s *CNPJService) Mask(value string) string {
	return cnpj.Mask(value)
}

// Format formats a raw 14-digit CNPJ
func (s *CNPJService) Format(value string) string {
	return cnpj.Format(value)
}

// Generate returns req.Count fictitious CNPJs (1 when zero)
func (s *CNPJService) Generate(_ context.Context, req models.GenerateRequest) ([]string, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > s.config.MaxGenerate {
		return nil, fmt.Errorf("%w: %d, allowed 1..%d", ErrGenerateLimit, count, s.config.MaxGenerate)
	}

	generator := s.generator
	if req.RandomBranch {
		generator = s.branchGen
	}

	generated := generator.GenerateN(count)
	if req.Masked {
		for i, value := range generated {
			generated[i] = cnpj.Format(value)
		}
	}

	s.metrics.Generated.Add(float64(count))
	return generated, nil
}

// Analyze breaks a CNPJ down into its parts
func (s *CNPJService) Analyze(_ context.Context, value string) cnpj.Info {
	info := cnpj.Analyze(value)
	s.metrics.Validations.WithLabelValues(info.Outcome.String()).Inc()
	return info
}

// ExtractText finds valid CNPJs in free text
func (s *CNPJService) ExtractText(_ context.Context, text string) []string {
	found := cnpj.Extract(text)
	s.metrics.Extracted.WithLabelValues("text").Add(float64(len(found)))
	return found
}

// ExtractHTML finds valid CNPJs in an HTML document
func (s *CNPJService) ExtractHTML(_ context.Context, r io.Reader) ([]string, error) {
	found, err := s.extractor.ExtractHTML(r)
	if err != nil {
		return nil, err
	}
	s.metrics.Extracted.WithLabelValues("html").Add(float64(len(found)))
	return found, nil
}

// Health returns service health status
func (s *CNPJService) Health() map[string]interface{} {
	// a generated value must round-trip; anything else means the engine is broken
	probe := s.generator.Generate()
	if cnpj.Validate(probe) != cnpj.Valid {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  fmt.Sprintf("generated CNPJ %s failed validation", probe),
		}
	}
	return map[string]interface{}{
		"status":         "healthy",
		"max_batch_size": s.config.MaxBatchSize,
		"max_generate":   s.config.MaxGenerate,
		"random_branch":  s.config.RandomBranch,
	}
}

var _ CNPJServiceInterface = (*CNPJService)(nil)
