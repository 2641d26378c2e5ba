package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"
	walletprocessor "villanova-server/internal/wallet/processor"

	"github.com/google/uuid"
)

// ProposeStrategyParams is an admin's request for an AI drafted plan
type ProposeStrategyParams struct {
	Type      string
	Goal      string
	PostCount int
}

// ApproveStrategyParams is a plan the admin accepted, possibly edited
type ApproveStrategyParams struct {
	Type            string
	Theme           string
	Goal            string
	ExpectedOutcome string
	ContentPlan     []store.ContentPlanItem
}

// ApprovedStrategy is a newly active strategy with its scheduled posts
type ApprovedStrategy struct {
	Strategy store.Strategy `json:"strategy"`
	Posts    []store.Post   `json:"posts"`
}

func validType(t string) bool {
	return t == store.StrategyTypePaid || t == store.StrategyTypeFree
}

// ProposeStrategy drafts a plan and charges the proposal fee once a valid plan is parsed
func (p *StrategyProcessor) ProposeStrategy(ctx context.Context, adminID uuid.UUID, params ProposeStrategyParams) (contentgen.StrategyProposal, error) {
	if !validType(params.Type) {
		return contentgen.StrategyProposal{}, ErrInvalidStrategyType
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID},
		observability.Field{Key: "strategy_type", Value: params.Type},
	)

	if p.cfg.ProposalCreditCost > 0 {
		ok, err := p.credits.HasCredits(ctx, adminID, p.cfg.ProposalCreditCost)
		if err != nil {
			return contentgen.StrategyProposal{}, fmt.Errorf("failed to check wallet balance: %w", err)
		}
		if !ok {
			return contentgen.StrategyProposal{}, walletprocessor.ErrInsufficientFunds
		}
	}

	pageName := ""
	if settings, err := p.store.GetPlatformSettings(ctx, adminID); err == nil && settings.PageName != nil {
		pageName = *settings.PageName
	}

	proposal, err := p.planner.GenerateStrategyProposal(ctx, contentgen.ProposalInput{
		StrategyType: params.Type,
		Goal:         params.Goal,
		PageName:     pageName,
		PostCount:    params.PostCount,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate strategy proposal", err)
		return contentgen.StrategyProposal{}, err
	}

	if p.cfg.ProposalCreditCost > 0 {
		if _, err := p.credits.DeductCredits(ctx, adminID, p.cfg.ProposalCreditCost, "strategy proposal"); err != nil {
			return contentgen.StrategyProposal{}, err
		}
	}

	p.activity.Info(ctx, adminID, "strategy_proposed", "Drafted a %s strategy: %s", params.Type, proposal.Theme)
	return proposal, nil
}

// ApproveStrategy activates a plan and schedules one pending post per plan item.
// The first post goes out an hour after approval, the rest follow at PostSpacing intervals.
func (p *StrategyProcessor) ApproveStrategy(ctx context.Context, adminID uuid.UUID, params ApproveStrategyParams) (ApprovedStrategy, error) {
	if !validType(params.Type) {
		return ApprovedStrategy{}, ErrInvalidStrategyType
	}
	if len(params.ContentPlan) == 0 {
		return ApprovedStrategy{}, ErrEmptyContentPlan
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: adminID})

	first := p.now().Add(firstPostLead)
	posts := make([]store.CreatePostParams, 0, len(params.ContentPlan))
	for i, item := range params.ContentPlan {
		var imageURL *string
		if item.ImageURL != "" {
			url := item.ImageURL
			imageURL = &url
		}
		posts = append(posts, store.CreatePostParams{
			AdminID:       adminID,
			Content:       postContent(item.Title, item.Caption),
			ImageURL:      imageURL,
			ScheduledTime: first.Add(time.Duration(i) * p.cfg.PostSpacing),
		})
	}

	strategy, created, err := p.store.CreateStrategyWithPosts(ctx, store.CreateStrategyParams{
		AdminID: adminID,
		Type:    params.Type,
		Content: store.StrategyContent{
			Theme:       params.Theme,
			Goal:        params.Goal,
			ContentPlan: params.ContentPlan,
		},
		ExpectedOutcome: params.ExpectedOutcome,
	}, posts)
	if err != nil {
		return ApprovedStrategy{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "strategy_id", Value: strategy.ID},
		observability.Field{Key: "post_count", Value: len(created)},
	), "strategy approved")
	p.activity.Success(ctx, adminID, "strategy_approved", "Strategy %q is live with %d scheduled posts", params.Theme, len(created))
	return ApprovedStrategy{Strategy: strategy, Posts: created}, nil
}

// CancelStrategy stops an active strategy, removes its published posts from the
// page where possible and purges its posts.
func (p *StrategyProcessor) CancelStrategy(ctx context.Context, adminID, strategyID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID},
		observability.Field{Key: "strategy_id", Value: strategyID},
	)

	strategy, err := p.store.GetStrategyByID(ctx, adminID, strategyID)
	if err != nil {
		return err
	}
	if strategy.Status != store.StrategyStatusActive {
		return ErrStrategyNotActive
	}

	if err := p.store.UpdateStrategyStatus(ctx, strategyID, store.StrategyStatusCancelled); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrStrategyNotActive
		}
		return err
	}

	posts, err := p.store.ListPostsByStrategy(ctx, strategyID)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to list posts of cancelled strategy", err)
	}

	conn := p.connect(ctx, adminID)
	removed := 0
	for _, post := range posts {
		if post.Status != store.PostStatusPosted || post.ExternalPostID == nil || !conn.ok {
			continue
		}
		if err := p.graph.DeletePost(ctx, *post.ExternalPostID, conn.token); err != nil {
			p.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "external_post_id", Value: *post.ExternalPostID},
			), "failed to delete published post", err)
			continue
		}
		removed++
	}

	if err := p.store.DeletePostsByStrategy(ctx, strategyID); err != nil {
		return err
	}

	p.activity.Info(ctx, adminID, "strategy_cancelled", "Cancelled strategy %q and removed %d published posts", strategy.Content.Theme, removed)
	return nil
}

func (p *StrategyProcessor) ListStrategies(ctx context.Context, adminID uuid.UUID) ([]store.Strategy, error) {
	strategies, err := p.store.ListStrategiesByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if strategies == nil {
		strategies = []store.Strategy{}
	}
	return strategies, nil
}

// ListPosts returns a strategy's posts after checking the admin owns it
func (p *StrategyProcessor) ListPosts(ctx context.Context, adminID, strategyID uuid.UUID) ([]store.Post, error) {
	if _, err := p.store.GetStrategyByID(ctx, adminID, strategyID); err != nil {
		return nil, err
	}
	posts, err := p.store.ListPostsByStrategy(ctx, strategyID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []store.Post{}
	}
	return posts, nil
}

func (p *StrategyProcessor) ListDiagnoses(ctx context.Context, adminID, strategyID uuid.UUID) ([]store.StrategyDiagnosis, error) {
	diagnoses, err := p.store.ListStrategyDiagnoses(ctx, adminID, strategyID)
	if err != nil {
		return nil, err
	}
	if diagnoses == nil {
		diagnoses = []store.StrategyDiagnosis{}
	}
	return diagnoses, nil
}
