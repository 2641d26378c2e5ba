package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreatePostParams represents parameters for scheduling a post
type CreatePostParams struct {
	AdminID       uuid.UUID
	StrategyID    *uuid.UUID
	Content       string
	ImageURL      *string
	ScheduledTime time.Time
}

const postColumns = `id, admin_id, strategy_id, content, image_url, scheduled_time, status, posted_time, external_post_id, error_message, reach, engagement, likes, comments, shares, metrics_updated_at, created_at, updated_at`

const sqlCreatePost = `
INSERT INTO posts (admin_id, strategy_id, content, image_url, scheduled_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + postColumns

// CreatePost schedules a single pending post
func (s *Store) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	var post Post
	err := s.db.GetContext(ctx, &post, sqlCreatePost,
		params.AdminID,
		params.StrategyID,
		params.Content,
		params.ImageURL,
		params.ScheduledTime)
	if err != nil {
		s.logger.Error(ctx, "failed to create post", err)
		return Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

const sqlListDuePosts = `
SELECT p.id, p.admin_id, p.strategy_id, p.content, p.image_url, p.scheduled_time, p.status, p.posted_time,
       p.external_post_id, p.error_message, p.reach, p.engagement, p.likes, p.comments, p.shares,
       p.metrics_updated_at, p.created_at, p.updated_at, s.type AS strategy_type
FROM posts p
LEFT JOIN strategies s ON s.id = p.strategy_id
WHERE p.status = 'pending' AND p.scheduled_time <= $1
ORDER BY p.scheduled_time
`

// ListDuePosts returns pending posts whose scheduled time has passed
func (s *Store) ListDuePosts(ctx context.Context, now time.Time) ([]DuePost, error) {
	var posts []DuePost
	err := s.db.SelectContext(ctx, &posts, sqlListDuePosts, now)
	if err != nil {
		s.logger.Error(ctx, "failed to list due posts", err)
		return nil, fmt.Errorf("failed to list due posts: %w", err)
	}
	return posts, nil
}

const sqlMarkPostPosted = `
UPDATE posts
SET status = 'posted', external_post_id = $2, posted_time = $3,
    reach = 0, engagement = 0, likes = 0, comments = 0, shares = 0,
    metrics_updated_at = $3, error_message = NULL, updated_at = $3
WHERE id = $1 AND status = 'pending'
`

// MarkPostPosted transitions a pending post to posted with a zeroed metrics snapshot
func (s *Store) MarkPostPosted(ctx context.Context, postID uuid.UUID, externalPostID string, postedAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkPostPosted, postID, externalPostID, postedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to mark post posted", err)
		return fmt.Errorf("failed to mark post posted: %w", err)
	}
	return requirePendingTransition(res)
}

const sqlMarkPostFailed = `
UPDATE posts
SET status = 'failed', error_message = $2, updated_at = $3
WHERE id = $1 AND status = 'pending'
`

// MarkPostFailed transitions a pending post to failed
func (s *Store) MarkPostFailed(ctx context.Context, postID uuid.UUID, reason string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkPostFailed, postID, reason, time.Now().UTC())
	if err != nil {
		s.logger.Error(ctx, "failed to mark post failed", err)
		return fmt.Errorf("failed to mark post failed: %w", err)
	}
	return requirePendingTransition(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requirePendingTransition(res rowsAffecter) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrPostNotPending
	}
	return nil
}

const sqlListPostsByStrategy = `
SELECT ` + postColumns + `
FROM posts
WHERE strategy_id = $1
ORDER BY scheduled_time
`

// ListPostsByStrategy returns every post of a strategy in schedule order
func (s *Store) ListPostsByStrategy(ctx context.Context, strategyID uuid.UUID) ([]Post, error) {
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts, sqlListPostsByStrategy, strategyID)
	if err != nil {
		s.logger.Error(ctx, "failed to list posts by strategy", err)
		return nil, fmt.Errorf("failed to list posts by strategy: %w", err)
	}
	return posts, nil
}

const sqlListPostedPostsByStrategy = `
SELECT ` + postColumns + `
FROM posts
WHERE strategy_id = $1 AND status = 'posted'
ORDER BY posted_time
`

// ListPostedPostsByStrategy returns the published posts of a strategy
func (s *Store) ListPostedPostsByStrategy(ctx context.Context, strategyID uuid.UUID) ([]Post, error) {
	var posts []Post
	err := s.db.SelectContext(ctx, &posts, sqlListPostedPostsByStrategy, strategyID)
	if err != nil {
		s.logger.Error(ctx, "failed to list posted posts", err)
		return nil, fmt.Errorf("failed to list posted posts: %w", err)
	}
	return posts, nil
}

const sqlCountPendingPostsByStrategy = `
SELECT COUNT(*)
FROM posts
WHERE strategy_id = $1 AND status = 'pending'
`

// CountPendingPostsByStrategy counts posts of a strategy still waiting to publish
func (s *Store) CountPendingPostsByStrategy(ctx context.Context, strategyID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountPendingPostsByStrategy, strategyID)
	if err != nil {
		s.logger.Error(ctx, "failed to count pending posts", err)
		return 0, fmt.Errorf("failed to count pending posts: %w", err)
	}
	return count, nil
}

const sqlUpdatePostMetrics = `
UPDATE posts
SET reach = $2, engagement = $3, likes = $4, comments = $5, shares = $6, metrics_updated_at = $7, updated_at = $7
WHERE id = $1
`

// UpdatePostMetrics replaces the metrics snapshot of a post
func (s *Store) UpdatePostMetrics(ctx context.Context, postID uuid.UUID, metrics PostMetrics) error {
	_, err := s.db.ExecContext(ctx, sqlUpdatePostMetrics,
		postID,
		metrics.Reach,
		metrics.Engagement,
		metrics.Likes,
		metrics.Comments,
		metrics.Shares,
		time.Now().UTC())
	if err != nil {
		s.logger.Error(ctx, "failed to update post metrics", err)
		return fmt.Errorf("failed to update post metrics: %w", err)
	}
	return nil
}

const sqlDeletePostsByStrategy = `
DELETE FROM posts
WHERE strategy_id = $1
`

// DeletePostsByStrategy purges every post of a strategy
func (s *Store) DeletePostsByStrategy(ctx context.Context, strategyID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlDeletePostsByStrategy, strategyID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete posts by strategy", err)
		return fmt.Errorf("failed to delete posts by strategy: %w", err)
	}
	return nil
}
