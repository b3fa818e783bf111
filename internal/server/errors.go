package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/stayloop/leasebill/internal/booking/domain"
	scheduledomain "github.com/stayloop/leasebill/internal/schedule/domain"
)

// APIError is the wire envelope for failed requests.
type APIError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError points at a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var ErrNotFound = &APIError{
	Status:  http.StatusNotFound,
	Code:    "not_found",
	Message: "resource not found",
}

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "validation_failed",
		Message: message,
		Fields:  []FieldError{{Field: field, Code: code, Message: message}},
	}
}

var domainStatus = map[error]int{
	bookingdomain.ErrInvalidListing:       http.StatusBadRequest,
	bookingdomain.ErrInvalidTenant:        http.StatusBadRequest,
	bookingdomain.ErrInvalidDateRange:     http.StatusBadRequest,
	bookingdomain.ErrInvalidMonthlyRent:   http.StatusBadRequest,
	bookingdomain.ErrInvalidDeposit:       http.StatusBadRequest,
	bookingdomain.ErrInvalidPetTerms:      http.StatusBadRequest,
	bookingdomain.ErrMissingPaymentMethod: http.StatusBadRequest,
	bookingdomain.ErrBookingNotFound:      http.StatusNotFound,
	scheduledomain.ErrInvalidBookingID:    http.StatusBadRequest,
	scheduledomain.ErrEmptySchedule:       http.StatusBadRequest,
	scheduledomain.ErrScheduleExists:      http.StatusConflict,
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	for domainErr, status := range domainStatus {
		if errors.Is(err, domainErr) {
			c.AbortWithStatusJSON(status, gin.H{"error": &APIError{
				Status:  status,
				Code:    domainErr.Error(),
				Message: domainErr.Error(),
			}})
			return
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "internal server error",
	}})
}
