package models

import (
	"time"

	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
)

// ValidateRequest represents a single validation request
type ValidateRequest struct {
	CNPJ string `json:"cnpj" example:"11.222.333/0001-81"`
}

// ValidationResult represents the outcome of validating one CNPJ
type ValidationResult struct {
	Input   string       `json:"input" example:"11.222.333/0001-81"`
	Cleaned string       `json:"cleaned" example:"11222333000181"`
	Outcome cnpj.Outcome `json:"outcome" swaggertype:"string" example:"VALID"`
	Valid   bool         `json:"valid" example:"true"`
	Message string       `json:"message" example:"CNPJ is valid"`
	Masked  string       `json:"masked,omitempty" example:"11.222.333/0001-81"`
}

// NewValidationResult builds the presentation of an outcome
func NewValidationResult(input string, outcome cnpj.Outcome) ValidationResult {
	result := ValidationResult{
		Input:   input,
		Cleaned: cnpj.Sanitize(input),
		Outcome: outcome,
		Valid:   outcome.Valid(),
		Message: OutcomeMessage(outcome),
	}
	if result.Valid {
		result.Masked = cnpj.Format(result.Cleaned)
	}
	return result
}

// MaskResponse represents a mask or format response
type MaskResponse struct {
	Input  string `json:"input" example:"1122233300"`
	Output string `json:"output" example:"11.222.333/00"`
}

// GenerateRequest represents the options of a generation request
type GenerateRequest struct {
	Count        int  `form:"count" json:"count" example:"5"`
	Masked       bool `form:"masked" json:"masked" example:"false"`
	RandomBranch bool `form:"random_branch" json:"random_branch" example:"false"`
}

// GenerateResponse represents generated CNPJs
type GenerateResponse struct {
	CNPJs      []string  `json:"cnpjs" example:"12345678000195"`
	Count      int       `json:"count" example:"1"`
	Fictitious bool      `json:"fictitious" example:"true"`
	Notice     string    `json:"notice" example:"Generated numbers are fictitious and must only be used for testing"`
	Timestamp  time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ExtractRequest represents a text extraction request
type ExtractRequest struct {
	Text string `json:"text" binding:"required" example:"Contratante: 11.222.333/0001-81"`
}

// ExtractResponse represents CNPJs found in a document
type ExtractResponse struct {
	CNPJs  []string `json:"cnpjs" example:"11222333000181"`
	Count  int      `json:"count" example:"1"`
	Source string   `json:"source" example:"text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Invalid request format"`
	Message   string    `json:"message" example:"cnpjs must not be empty"`
	Code      string    `json:"code,omitempty" example:"INVALID_REQUEST"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path" example:"/api/v1/cnpj/validate/batch"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	Error     string    `json:"error,omitempty"`
}

// Error codes shared by the handlers
const (
	ErrorCodeInvalidRequest = "INVALID_REQUEST"
	ErrorCodeBatchTooLarge  = "BATCH_TOO_LARGE"
	ErrorCodeGenerateLimit  = "GENERATE_LIMIT"
	ErrorCodeExtraction     = "EXTRACTION_ERROR"
	ErrorCodeBodyTooLarge   = "BODY_TOO_LARGE"
	ErrorCodeRateLimit      = "RATE_LIMIT_EXCEEDED"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)
