package response

import (
	"errors"
	"net/http"

	"github.com/jezdibolt/backend-go/internal/domain/auth"
	"github.com/jezdibolt/backend-go/internal/domain/company"
	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/domain/payconfig"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrPermissionDenied):
		Forbidden(w, "Permission denied")

	// User and company errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Earnings domain errors
	case errors.Is(err, earnings.ErrRecordNotFound):
		NotFound(w, "Earnings record not found")
	case errors.Is(err, earnings.ErrInvalidPaymentAmount):
		BadRequest(w, "Invalid payment amount", nil)
	case errors.Is(err, earnings.ErrUnknownAdjustmentType):
		BadRequest(w, "Unknown adjustment type", nil)

	// Import domain errors
	case errors.Is(err, importer.ErrBatchNotFound):
		NotFound(w, "Import batch not found")
	case errors.Is(err, importer.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported file format", nil)
	case errors.Is(err, importer.ErrEmptyFile):
		BadRequest(w, "File contains no rows", nil)
	case errors.Is(err, importer.ErrMissingColumn):
		BadRequest(w, err.Error(), nil)

	// Pay configuration errors
	case errors.Is(err, payconfig.ErrTierNotFound):
		NotFound(w, "Pay rate tier not found")
	case errors.Is(err, payconfig.ErrRuleNotFound):
		NotFound(w, "Pay rule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
