package processor

import (
	"context"
	"fmt"

	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"
)

// checkMessages answers conversations whose latest message came from someone
// other than the page. A failed send ends the scan and is returned.
func (p *BotProcessor) checkMessages(ctx context.Context, pg page) CheckResult {
	var result CheckResult

	conversations := p.graph.GetConversations(ctx, pg.id, pg.token)
	for _, conv := range conversations {
		latest := conv.LatestMessage()
		if latest == nil || latest.ID == "" {
			continue
		}
		result.Seen++
		if latest.From.ID == pg.id || latest.Message == "" {
			result.Skipped++
			continue
		}
		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "conversation_id", Value: conv.ID},
			observability.Field{Key: "message_id", Value: latest.ID},
		)

		claim, ok := p.acquire(msgCtx, latest.ID, store.InteractionTypeMessage)
		if !ok {
			result.Skipped++
			continue
		}

		reply, err := p.generator.GenerateMessageReply(msgCtx, contentgen.ReplyContext{
			PageName:   pg.name,
			AuthorName: latest.From.Name,
			Text:       latest.Message,
		})
		if err != nil || reply == "" {
			claim.Release()
			p.logger.WarnWithError(msgCtx, "failed to generate message reply, will retry next cycle", err)
			result.Skipped++
			continue
		}

		if _, err := p.graph.SendMessage(msgCtx, pg.id, pg.token, latest.From.ID, reply); err != nil {
			claim.Release()
			p.activity.Error(ctx, pg.adminID, "message_reply_failed", "Failed to message %s: %v", latest.From.Name, err)
			result.Err = fmt.Errorf("failed to send message in conversation %s: %w", conv.ID, err)
			return result
		}

		conversationID := conv.ID
		if err := claim.Record(msgCtx, store.CreateInteractionParams{
			AdminID:    pg.adminID,
			Type:       store.InteractionTypeMessage,
			SenderRole: store.SenderRoleUser,
			Content:    latest.Message,
			ParentID:   &conversationID,
		}); err != nil {
			p.logger.Error(msgCtx, "reply sent but interaction not persisted", err)
		}

		observability.RepliesSent.WithLabelValues(store.InteractionTypeMessage).Inc()
		p.activity.Success(ctx, pg.adminID, "message_replied", "Replied to %s: %q", latest.From.Name, reply)
		result.Replied++
	}

	return result
}
