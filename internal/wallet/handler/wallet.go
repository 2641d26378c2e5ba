package handler

import (
	"net/http"

	"villanova-server/internal/apierrors"
	"villanova-server/internal/observability"
	"villanova-server/internal/wallet/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.WalletProcessor
	logger    *observability.Logger
}

func New(processor *processor.WalletProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleGetWallet returns the admin's credit balance and recent spend
func (h *Handler) HandleGetWallet(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.Unauthorized(c, "invalid admin id")
		return
	}

	wallet, err := h.processor.GetWallet(ctx, adminID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}
