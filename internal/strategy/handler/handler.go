package handler

import (
	"context"
	"errors"
	"net/http"

	"villanova-server/internal/apierrors"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"
	"villanova-server/internal/strategy/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StrategyService is the part of the strategy processor exposed over HTTP
type StrategyService interface {
	ProposeStrategy(ctx context.Context, adminID uuid.UUID, params processor.ProposeStrategyParams) (contentgen.StrategyProposal, error)
	ApproveStrategy(ctx context.Context, adminID uuid.UUID, params processor.ApproveStrategyParams) (processor.ApprovedStrategy, error)
	CancelStrategy(ctx context.Context, adminID, strategyID uuid.UUID) error
	ListStrategies(ctx context.Context, adminID uuid.UUID) ([]store.Strategy, error)
	ListPosts(ctx context.Context, adminID, strategyID uuid.UUID) ([]store.Post, error)
	ListDiagnoses(ctx context.Context, adminID, strategyID uuid.UUID) ([]store.StrategyDiagnosis, error)
}

type Handler struct {
	processor StrategyService
	logger    *observability.Logger
}

func New(processor StrategyService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ProposeStrategyRequest represents the HTTP request for drafting a strategy
type ProposeStrategyRequest struct {
	Type      string `json:"type" binding:"required,oneof=paid free"`
	Goal      string `json:"goal" binding:"required,min=3,max=500"`
	PostCount int    `json:"post_count" binding:"omitempty,min=1,max=14"`
}

// ContentPlanItemRequest is one planned post in an approval request
type ContentPlanItemRequest struct {
	Title    string `json:"title" binding:"max=200"`
	Caption  string `json:"caption" binding:"required,min=1,max=2000"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

// ApproveStrategyRequest represents the HTTP request for activating a plan
type ApproveStrategyRequest struct {
	Type            string                   `json:"type" binding:"required,oneof=paid free"`
	Theme           string                   `json:"theme" binding:"required,min=1,max=255"`
	Goal            string                   `json:"goal" binding:"required,min=1,max=500"`
	ExpectedOutcome string                   `json:"expected_outcome" binding:"max=1000"`
	ContentPlan     []ContentPlanItemRequest `json:"content_plan" binding:"required,min=1,max=30,dive"`
}

func (h *Handler) getAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.Unauthorized(c, "invalid admin id")
		return uuid.Nil, false
	}
	return adminID, true
}

func (h *Handler) getStrategyID(c *gin.Context) (uuid.UUID, bool) {
	strategyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid strategy ID")
		return uuid.Nil, false
	}
	return strategyID, true
}

// HandleProposeStrategy drafts a plan for the admin to review
func (h *Handler) HandleProposeStrategy(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	var req ProposeStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	proposal, err := h.processor.ProposeStrategy(ctx, adminID, processor.ProposeStrategyParams{
		Type:      req.Type,
		Goal:      req.Goal,
		PostCount: req.PostCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// HandleApproveStrategy activates a plan and schedules its posts
func (h *Handler) HandleApproveStrategy(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	var req ApproveStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	plan := make([]store.ContentPlanItem, 0, len(req.ContentPlan))
	for _, item := range req.ContentPlan {
		plan = append(plan, store.ContentPlanItem{Title: item.Title, Caption: item.Caption, ImageURL: item.ImageURL})
	}

	approved, err := h.processor.ApproveStrategy(ctx, adminID, processor.ApproveStrategyParams{
		Type:            req.Type,
		Theme:           req.Theme,
		Goal:            req.Goal,
		ExpectedOutcome: req.ExpectedOutcome,
		ContentPlan:     plan,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, approved)
}

// HandleListStrategies lists the admin's strategies, newest first
func (h *Handler) HandleListStrategies(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}

	strategies, err := h.processor.ListStrategies(ctx, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}

func (h *Handler) HandleListPosts(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}
	strategyID, ok := h.getStrategyID(c)
	if !ok {
		return
	}

	posts, err := h.processor.ListPosts(ctx, adminID, strategyID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) HandleListDiagnoses(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}
	strategyID, ok := h.getStrategyID(c)
	if !ok {
		return
	}

	diagnoses, err := h.processor.ListDiagnoses(ctx, adminID, strategyID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diagnoses": diagnoses})
}

// HandleCancelStrategy stops an active strategy
func (h *Handler) HandleCancelStrategy(c *gin.Context) {
	ctx := c.Request.Context()
	adminID, ok := h.getAdminID(c)
	if !ok {
		return
	}
	strategyID, ok := h.getStrategyID(c)
	if !ok {
		return
	}

	if err := h.processor.CancelStrategy(ctx, adminID, strategyID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": strategyID, "status": store.StrategyStatusCancelled})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "Strategy not found")
	case errors.Is(err, processor.ErrStrategyNotActive):
		apierrors.Conflict(c, "STRATEGY_NOT_ACTIVE", "Strategy is not active")
	case errors.Is(err, processor.ErrInvalidStrategyType):
		apierrors.BadRequest(c, "INVALID_TYPE", "Strategy type must be paid or free")
	case errors.Is(err, processor.ErrEmptyContentPlan):
		apierrors.BadRequest(c, "EMPTY_CONTENT_PLAN", "Content plan must contain at least one post")
	default:
		apierrors.RespondWithError(c, err)
	}
}
