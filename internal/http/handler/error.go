package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/http/middleware"
	"zoomboom/internal/service"
	"zoomboom/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "SAME_LOCATION", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

func writeValidationError(c *fiber.Ctx, verr *validation.Error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "request validation failed",
			Fields:  verr.Fields,
		},
	})
}

// serviceErrors maps domain sentinels to their response. The message is the
// sentinel text, never the wrapped detail.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrIDRequired, fiber.StatusBadRequest, "ID_REQUIRED"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{service.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{service.ErrSameArea, fiber.StatusBadRequest, "SAME_LOCATION"},
	{service.ErrAreaNotCovered, fiber.StatusBadRequest, "AREA_NOT_COVERED"},
	{service.ErrFeeNotComputable, fiber.StatusBadRequest, "FEE_NOT_COMPUTABLE"},
	{service.ErrParcelNotPending, fiber.StatusConflict, "PARCEL_NOT_PENDING"},
	{service.ErrPriceMismatch, fiber.StatusBadRequest, "PRICE_MISMATCH"},
	{service.ErrPaymentNotSucceeded, fiber.StatusPaymentRequired, "PAYMENT_NOT_SUCCEEDED"},
	{service.ErrIntentMismatch, fiber.StatusBadRequest, "INTENT_MISMATCH"},
	{service.ErrPaymentExists, fiber.StatusConflict, "PAYMENT_EXISTS"},
	{service.ErrApplicationExists, fiber.StatusBadRequest, "APPLICATION_EXISTS"},
	{service.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "IMAGE_REQUIRED"},
	{service.ErrUnsupportedImage, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_IMAGE"},
	{service.ErrImageTooLarge, fiber.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE"},
}

// mapServiceError writes the response for an error returned by a service.
// Unknown errors become a 500 INTERNAL_ERROR.
func mapServiceError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return writeValidationError(c, verr)
	}
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return writeError(c, se.status, se.code, se.err.Error())
		}
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "forbidden")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusInternalServerError:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		default:
			return writeError(c, status, "HTTP_ERROR", http.StatusText(status))
		}
	}
}
