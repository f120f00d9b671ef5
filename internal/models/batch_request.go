package models

import "time"

// BatchValidationRequest represents a batch validation request
// @Description List of CNPJs to validate in one call
type BatchValidationRequest struct {
	// CNPJs in any format; each one is sanitized before validation
	CNPJs []string `json:"cnpjs" binding:"required" example:"11.222.333/0001-81,11222333000182"`
}

// BatchValidationResponse represents the outcomes of a batch validation
type BatchValidationResponse struct {
	Results    []ValidationResult `json:"results"`
	Total      int                `json:"total" example:"2"`
	Valid      int                `json:"valid" example:"1"`
	Invalid    int                `json:"invalid" example:"1"`
	ByOutcome  map[string]int     `json:"by_outcome"`
	DurationMs int64              `json:"duration_ms" example:"1"`
	Timestamp  time.Time          `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
