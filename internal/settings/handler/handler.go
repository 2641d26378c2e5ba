package handler

import (
	"context"
	"errors"
	"net/http"

	"villanova-server/internal/apierrors"
	"villanova-server/internal/observability"
	"villanova-server/internal/settings/processor"
	"villanova-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettingsService interface {
	Connect(ctx context.Context, adminID uuid.UUID, params processor.ConnectParams) (store.PlatformSettings, error)
	Get(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error)
	Disconnect(ctx context.Context, adminID uuid.UUID) error
}

type Handler struct {
	processor SettingsService
	logger    *observability.Logger
}

func New(processor SettingsService, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// ConnectPlatformRequest represents the HTTP request for connecting a page
type ConnectPlatformRequest struct {
	PageID            string  `json:"page_id" binding:"required,numeric"`
	AccessToken       string  `json:"access_token" binding:"required,min=10"`
	NotificationEmail *string `json:"notification_email,omitempty" binding:"omitempty,email"`
	NotificationPhone *string `json:"notification_phone,omitempty" binding:"omitempty,e164"`
}

func (h *Handler) getAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.Unauthorized(c, "invalid admin id")
		return uuid.Nil, false
	}
	return adminID, true
}

// HandleConnectPlatform validates and stores the admin's page connection
func (h *Handler) HandleConnectPlatform(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	var req ConnectPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	settings, err := h.processor.Connect(ctx, adminID, processor.ConnectParams{
		PageID:            req.PageID,
		AccessToken:       req.AccessToken,
		NotificationEmail: req.NotificationEmail,
		NotificationPhone: req.NotificationPhone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) HandleGetPlatform(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	settings, err := h.processor.Get(ctx, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) HandleDisconnectPlatform(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	if err := h.processor.Disconnect(ctx, adminID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidPageToken):
		apierrors.BadRequest(c, "INVALID_PAGE_TOKEN", err.Error())
	case errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "Platform not connected")
	default:
		apierrors.RespondWithError(c, err)
	}
}
