package processor

import (
	"context"
	"fmt"

	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"
)

// checkComments answers new comments surfaced by the page's feed_comment
// notifications, which cover comments on older posts too. A failed reply ends
// the scan and is returned; nothing is recorded for it.
func (p *BotProcessor) checkComments(ctx context.Context, pg page) CheckResult {
	var result CheckResult

	notifications := p.graph.GetNotifications(ctx, pg.id, pg.token)
	for _, n := range notifications {
		commentID := n.CommentID()
		if commentID == "" {
			continue
		}
		result.Seen++
		commentCtx := observability.WithFields(ctx, observability.Field{Key: "comment_id", Value: commentID})

		claim, ok := p.acquire(commentCtx, commentID, store.InteractionTypeComment)
		if !ok {
			result.Skipped++
			continue
		}

		comment := p.graph.GetComment(commentCtx, commentID, pg.token)
		if comment == nil || comment.Message == "" {
			claim.Release()
			result.Skipped++
			continue
		}
		if comment.From.ID == pg.id {
			claim.Release()
			result.Skipped++
			continue
		}

		reply, err := p.generator.GenerateCommentReply(commentCtx, contentgen.ReplyContext{
			PageName:   pg.name,
			AuthorName: comment.From.Name,
			Text:       comment.Message,
		})
		if err != nil || reply == "" {
			claim.Release()
			p.logger.WarnWithError(commentCtx, "failed to generate comment reply, will retry next cycle", err)
			result.Skipped++
			continue
		}

		if _, err := p.graph.ReplyToComment(commentCtx, commentID, pg.token, reply); err != nil {
			claim.Release()
			p.activity.Error(ctx, pg.adminID, "comment_reply_failed", "Failed to reply to %s: %v", comment.From.Name, err)
			result.Err = fmt.Errorf("failed to reply to comment %s: %w", commentID, err)
			return result
		}

		postID := n.PostID()
		var postRef *string
		if postID != "" {
			postRef = &postID
		}
		if err := claim.Record(commentCtx, store.CreateInteractionParams{
			AdminID:    pg.adminID,
			Type:       store.InteractionTypeComment,
			SenderRole: store.SenderRoleUser,
			Content:    comment.Message,
			PostID:     postRef,
		}); err != nil {
			p.logger.Error(commentCtx, "reply sent but interaction not persisted", err)
		}

		observability.RepliesSent.WithLabelValues(store.InteractionTypeComment).Inc()
		p.activity.Success(ctx, pg.adminID, "comment_replied", "Replied to %s: %q", comment.From.Name, reply)
		result.Replied++
	}

	return result
}
