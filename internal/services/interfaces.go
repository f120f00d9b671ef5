package services

import (
	"context"
	"io"
	"time"

	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
)

// CNPJServiceInterface defines the interface for CNPJ service
type CNPJServiceInterface interface {
	// Validate checks a single CNPJ
	Validate(ctx context.Context, value string) models.ValidationResult

	// ValidateBatch checks several CNPJs at once
	ValidateBatch(ctx context.Context, values []string) (*models.BatchValidationResponse, error)

	// Mask formats partial or complete input as it is typed
	Mask(value string) string

	// Format formats a raw 14-digit CNPJ
	Format(value string) string

	// Generate returns fictitious CNPJs
	Generate(ctx context.Context, req models.GenerateRequest) ([]string, error)

	// Analyze breaks a CNPJ down into its parts
	Analyze(ctx context.Context, value string) cnpj.Info

	// ExtractText finds valid CNPJs in free text
	ExtractText(ctx context.Context, text string) []string

	// ExtractHTML finds valid CNPJs in an HTML document
	ExtractHTML(ctx context.Context, r io.Reader) ([]string, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// RateStoreInterface counts requests per key in fixed windows shared between replicas
type RateStoreInterface interface {
	// Hit increments the counter of key and returns the count inside the current window
	// and when the window resets
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)

	// Health returns rate store health status
	Health() map[string]interface{}
}
