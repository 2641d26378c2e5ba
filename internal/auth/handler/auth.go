package handler

import (
	"strings"

	"villanova-server/internal/apierrors"
	"villanova-server/internal/auth/processor"
	"villanova-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// AdminIDKey is the gin context key holding the authenticated admin id
const AdminIDKey = "User-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware authenticates the request from the bearer token. Browsers
// cannot set headers on websocket upgrades, so a token query parameter is accepted too.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenString := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	} else if q := c.Query("token"); q != "" {
		tokenString = q
	}
	if tokenString == "" {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	sub, _ := claims.GetSubject()
	c.Set(AdminIDKey, sub)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: sub}))
	c.Next()
}
