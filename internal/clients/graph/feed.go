package graph

import (
	"context"
	"net/http"
	"net/url"

	"villanova-server/internal/ratelimit"
)

type From struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Comment struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	From        From   `json:"from"`
	CreatedTime string `json:"created_time"`
}

type Message struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	From        From   `json:"from"`
	CreatedTime string `json:"created_time"`
}

type Conversation struct {
	ID          string `json:"id"`
	UpdatedTime string `json:"updated_time"`
	Messages    struct {
		Data []Message `json:"data"`
	} `json:"messages"`
}

// LatestMessage returns the newest message of the conversation, or nil when none was returned
func (c Conversation) LatestMessage() *Message {
	if len(c.Messages.Data) == 0 {
		return nil
	}
	return &c.Messages.Data[0]
}

type Notification struct {
	ID     string `json:"id"`
	Link   string `json:"link"`
	From   From   `json:"from"`
	Object struct {
		ID string `json:"id"`
	} `json:"object"`
	CreatedTime string `json:"created_time"`
}

// CommentID returns the comment a feed_comment notification points at.
// The comment id is carried in the link; the notification object is the fallback.
func (n Notification) CommentID() string {
	if n.Link != "" {
		if u, err := url.Parse(n.Link); err == nil {
			if id := u.Query().Get("comment_id"); id != "" {
				return id
			}
		}
	}
	return n.Object.ID
}

// PostID returns the post the notification refers to
func (n Notification) PostID() string {
	return n.Object.ID
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// GetComments lists the comments on a post. Failures yield an empty list.
func (c *Client) GetComments(ctx context.Context, postID, token string) []Comment {
	var resp listResponse[Comment]
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, postID+"/comments",
		withToken(token, "fields", "id,message,from,created_time", "order", "reverse_chronological"), &resp)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get comments, treating as none", err)
		return []Comment{}
	}
	return resp.Data
}

// GetComment fetches a single comment. Returns nil when it cannot be read.
func (c *Client) GetComment(ctx context.Context, commentID, token string) *Comment {
	var comment Comment
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, commentID,
		withToken(token, "fields", "id,message,from,created_time"), &comment)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get comment", err)
		return nil
	}
	return &comment
}

// GetConversations lists page conversations with their latest message. Failures yield an empty list.
func (c *Client) GetConversations(ctx context.Context, pageID, token string) []Conversation {
	var resp listResponse[Conversation]
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, pageID+"/conversations",
		withToken(token, "fields", "id,updated_time,messages.limit(1){id,message,from,created_time}"), &resp)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get conversations, treating as none", err)
		return []Conversation{}
	}
	return resp.Data
}

// GetConversationMessages lists the messages of one conversation, newest first. Failures yield an empty list.
func (c *Client) GetConversationMessages(ctx context.Context, conversationID, token string) []Message {
	var resp listResponse[Message]
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, conversationID+"/messages",
		withToken(token, "fields", "id,message,from,created_time"), &resp)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get conversation messages", err)
		return []Message{}
	}
	return resp.Data
}

// GetNotifications lists the page's comment notifications, including those on old posts.
// Failures yield an empty list.
func (c *Client) GetNotifications(ctx context.Context, pageID, token string) []Notification {
	var resp listResponse[Notification]
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, pageID+"/notifications",
		withToken(token, "type", "feed_comment", "fields", "id,link,from,object,created_time", "include_read", "true"), &resp)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get notifications, treating as none", err)
		return []Notification{}
	}
	return resp.Data
}
