package apierrors

import (
	"errors"

	"villanova-server/internal/clients/graph"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/store"
	walletprocessor "villanova-server/internal/wallet/processor"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps errors shared across packages to a response.
// Handlers map their own package errors first and fall back to this.
func RespondWithError(c *gin.Context, err error) {
	var graphErr *graph.APIError
	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")
	case errors.Is(err, store.ErrDuplicate):
		Conflict(c, "DUPLICATE", "Resource already exists")
	case errors.Is(err, walletprocessor.ErrInsufficientFunds):
		PaymentRequired(c, "Insufficient credits in wallet")
	case errors.Is(err, contentgen.ErrRateLimited):
		ServiceUnavailable(c, "AI_RATE_LIMITED", "Content generation is busy. Please try again shortly.", err)
	case errors.Is(err, contentgen.ErrNoJSON),
		errors.Is(err, contentgen.ErrInvalidOutput),
		errors.Is(err, contentgen.ErrEmptyOutput):
		BadGateway(c, "AI_INVALID_OUTPUT", "Content generation returned an unusable answer. Please try again.", err)
	case errors.As(err, &graphErr):
		BadGateway(c, "PLATFORM_ERROR", graphErr.Message, err)
	default:
		InternalError(c, err)
	}
}
