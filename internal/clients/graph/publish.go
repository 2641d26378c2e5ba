package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"villanova-server/internal/observability"
	"villanova-server/internal/ratelimit"
)

type publishResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// PublishPost publishes to the page feed, as a photo post when imageURL is set.
// Errors carry the upstream message.
func (c *Client) PublishPost(ctx context.Context, pageID, token, content, imageURL string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "page_id", Value: pageID})

	var resp publishResponse
	var err error
	if imageURL != "" {
		err = c.call(ctx, ratelimit.PriorityNormal, http.MethodPost, pageID+"/photos",
			withToken(token, "url", imageURL, "caption", content), &resp)
	} else {
		err = c.call(ctx, ratelimit.PriorityNormal, http.MethodPost, pageID+"/feed",
			withToken(token, "message", content), &resp)
	}
	if err != nil {
		c.logger.Error(ctx, "failed to publish post", err)
		return "", fmt.Errorf("failed to publish post: %w", err)
	}

	if resp.PostID != "" {
		return resp.PostID, nil
	}
	if resp.ID == "" {
		return "", fmt.Errorf("failed to publish post: empty post id in response")
	}
	return resp.ID, nil
}

// UpdatePost replaces the message of a published post
func (c *Client) UpdatePost(ctx context.Context, postID, token, content string) error {
	var resp successResponse
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodPost, postID, withToken(token, "message", content), &resp)
	if err != nil {
		c.logger.Error(ctx, "failed to update post", err)
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeletePost removes a published post from the page
func (c *Client) DeletePost(ctx context.Context, postID, token string) error {
	var resp successResponse
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodDelete, postID, withToken(token), &resp)
	if err != nil {
		c.logger.Error(ctx, "failed to delete post", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ReplyToComment posts a reply under a comment and returns the reply's id
func (c *Client) ReplyToComment(ctx context.Context, commentID, token, message string) (string, error) {
	var resp publishResponse
	err := c.call(ctx, ratelimit.PriorityHigh, http.MethodPost, commentID+"/comments",
		withToken(token, "message", SanitizeMessage(message)), &resp)
	if err != nil {
		c.logger.Error(ctx, "failed to reply to comment", err)
		return "", fmt.Errorf("failed to reply to comment: %w", err)
	}
	return resp.ID, nil
}

type sendMessageResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// SendMessage sends a text reply to a user conversation and returns the message id
func (c *Client) SendMessage(ctx context.Context, pageID, token, recipientID, text string) (string, error) {
	recipient, _ := json.Marshal(map[string]string{"id": recipientID})
	message, _ := json.Marshal(map[string]string{"text": SanitizeMessage(text)})

	var resp sendMessageResponse
	err := c.call(ctx, ratelimit.PriorityHigh, http.MethodPost, pageID+"/messages",
		withToken(token,
			"recipient", string(recipient),
			"message", string(message),
			"messaging_type", "RESPONSE",
		), &resp)
	if err != nil {
		c.logger.Error(ctx, "failed to send message", err)
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return resp.MessageID, nil
}
