package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
	"github.com/nexconsult/cnpj-toolkit/internal/services"
	"github.com/sirupsen/logrus"
)

// maxExtractBody caps the size of documents accepted by Extract
const maxExtractBody = 2 << 20

// CNPJHandler handles CNPJ-related requests
type CNPJHandler struct {
	cnpjService services.CNPJServiceInterface
	logger      *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(cnpjService services.CNPJServiceInterface, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		cnpjService: cnpjService,
		logger:      logger,
	}
}

// ValidatePath handles validation of a CNPJ given in the URL
// @Summary Validate a CNPJ
// @Description Validate a CNPJ given in the path. Masked input must be URL-encoded.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ, raw or masked" example(11222333000181)
// @Success 200 {object} models.ValidationResult
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/cnpj/{cnpj}/validate [get]
func (h *CNPJHandler) ValidatePath(c *gin.Context) {
	h.validate(c, c.Param("cnpj"))
}

// Validate handles validation of a CNPJ given in the body
// @Summary Validate a CNPJ
// @Description Validate a CNPJ in any format. The outcome is returned as data, never as an HTTP error.
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.ValidateRequest true "CNPJ to validate"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/cnpj/validate [post]
func (h *CNPJHandler) Validate(c *gin.Context) {
	var request models.ValidateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, err)
		return
	}
	h.validate(c, request.CNPJ)
}

func (h *CNPJHandler) validate(c *gin.Context, value string) {
	result := h.cnpjService.Validate(c.Request.Context(), value)

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"cleaned":    result.Cleaned,
		"outcome":    result.Outcome.String(),
	}).Debug("CNPJ validated")

	c.JSON(http.StatusOK, result)
}

// ValidateBatch handles batch validation
// @Summary Validate multiple CNPJs
// @Description Validate a list of CNPJs and aggregate the outcomes
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.BatchValidationRequest true "Batch validation request"
// @Success 200 {object} models.BatchValidationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/cnpj/validate/batch [post]
func (h *CNPJHandler) ValidateBatch(c *gin.Context) {
	requestID := c.GetString("request_id")

	var request models.BatchValidationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, err)
		return
	}

	response, err := h.cnpjService.ValidateBatch(c.Request.Context(), request.CNPJs)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"total":      len(request.CNPJs),
			"error":      err.Error(),
		}).Warn("Batch validation rejected")

		switch {
		case errors.Is(err, services.ErrBatchTooLarge):
			h.errorResponse(c, http.StatusRequestEntityTooLarge, "Batch too large", err.Error(), models.ErrorCodeBatchTooLarge)
		default:
			h.errorResponse(c, http.StatusBadRequest, "Invalid request format", err.Error(), models.ErrorCodeInvalidRequest)
		}
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      response.Total,
		"valid":      response.Valid,
		"invalid":    response.Invalid,
	}).Info("Batch validation completed")

	c.JSON(http.StatusOK, response)
}

// Mask handles live-typing masks
// @Summary Mask partial input
// @Description Sanitize, truncate to 14 digits and insert the separators reached so far
// @Tags CNPJ
// @Produce json
// @Param value query string true "Digits typed so far" example(1122233300)
// @Success 200 {object} models.MaskResponse
// @Router /api/v1/cnpj/mask [get]
func (h *CNPJHandler) Mask(c *gin.Context) {
	value := c.Query("value")
	c.JSON(http.StatusOK, models.MaskResponse{
		Input:  value,
		Output: h.cnpjService.Mask(value),
	})
}

// Format handles formatting of complete CNPJs
// @Summary Format a raw CNPJ
// @Description Format a raw 14-digit CNPJ; any other input is returned unchanged
// @Tags CNPJ
// @Produce json
// @Param value query string true "Raw CNPJ" example(11222333000181)
// @Success 200 {object} models.MaskResponse
// @Router /api/v1/cnpj/format [get]
func (h *CNPJHandler) Format(c *gin.Context) {
	value := c.Query("value")
	c.JSON(http.StatusOK, models.MaskResponse{
		Input:  value,
		Output: h.cnpjService.Format(value),
	})
}

// Generate handles generation of fictitious CNPJs
// @Summary Generate fictitious CNPJs
// @Description Generate CNPJs that pass validation. They are fictitious and for testing only.
// @Tags CNPJ
// @Produce json
// @Param count query int false "How many to generate" default(1)
// @Param masked query bool false "Return masked values" default(false)
// @Param random_branch query bool false "Draw the branch digits at random instead of 0001" default(false)
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/cnpj/generate [get]
func (h *CNPJHandler) Generate(c *gin.Context) {
	var request models.GenerateRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		h.badRequest(c, err)
		return
	}

	generated, err := h.cnpjService.Generate(c.Request.Context(), request)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid generate request", err.Error(), models.ErrorCodeGenerateLimit)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"count":      len(generated),
	}).Debug("CNPJs generated")

	c.JSON(http.StatusOK, models.GenerateResponse{
		CNPJs:      generated,
		Count:      len(generated),
		Fictitious: true,
		Notice:     models.GeneratedNotice,
		Timestamp:  time.Now(),
	})
}

// Analyze handles breaking a CNPJ down into its parts
// @Summary Analyze a CNPJ
// @Description Return the outcome, root, branch and kind (MATRIZ or FILIAL) of a CNPJ
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ" example(11222333000181)
// @Success 200 {object} cnpj.Info
// @Router /api/v1/cnpj/{cnpj}/analyze [get]
func (h *CNPJHandler) Analyze(c *gin.Context) {
	c.JSON(http.StatusOK, h.cnpjService.Analyze(c.Request.Context(), c.Param("cnpj")))
}

// Extract handles extraction of CNPJs from documents
// @Summary Extract CNPJs from a document
// @Description Find every valid CNPJ in a JSON text payload or in an HTML document (Content-Type text/html)
// @Tags CNPJ
// @Accept json
// @Accept html
// @Produce json
// @Param request body models.ExtractRequest false "Text to scan"
// @Success 200 {object} models.ExtractResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/cnpj/extract [post]
func (h *CNPJHandler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxExtractBody)

	var (
		found  []string
		source string
	)

	if strings.HasPrefix(c.ContentType(), "text/html") {
		source = "html"
		var err error
		found, err = h.cnpjService.ExtractHTML(ctx, body)
		if err != nil {
			if h.tooLarge(c, err) {
				return
			}
			h.logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"error":      err.Error(),
			}).Warn("HTML extraction failed")
			h.errorResponse(c, http.StatusUnprocessableEntity, "Extraction failed", err.Error(), models.ErrorCodeExtraction)
			return
		}
	} else {
		source = "text"
		c.Request.Body = body
		var request models.ExtractRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			if h.tooLarge(c, err) {
				return
			}
			h.badRequest(c, err)
			return
		}
		found = h.cnpjService.ExtractText(ctx, request.Text)
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		CNPJs:  found,
		Count:  len(found),
		Source: source,
	})
}

// tooLarge answers 413 when err comes from the body size cap
func (h *CNPJHandler) tooLarge(c *gin.Context, err error) bool {
	var maxBytesErr *http.MaxBytesError
	if !errors.As(err, &maxBytesErr) {
		return false
	}
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"limit":      maxBytesErr.Limit,
	}).Warn("Extraction body too large")

	h.errorResponse(c, http.StatusRequestEntityTooLarge, "Document too large",
		fmt.Sprintf("body exceeds %d bytes", maxBytesErr.Limit), models.ErrorCodeBodyTooLarge)
	return true
}

func (h *CNPJHandler) badRequest(c *gin.Context, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"error":      err.Error(),
	}).Warn("Invalid request format")

	h.errorResponse(c, http.StatusBadRequest, "Invalid request format", err.Error(), models.ErrorCodeInvalidRequest)
}

func (h *CNPJHandler) errorResponse(c *gin.Context, status int, title, message, code string) {
	c.JSON(status, models.ErrorResponse{
		Error:     title,
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}
