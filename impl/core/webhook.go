package core

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/config"
	"ChiwawaRelay/internal/lib/sl"
	"ChiwawaRelay/internal/service/chiwawa"
	"context"
	"log/slog"
	"net/http"
)

func (c *Core) IsValidRequest(req *entity.InboundRequest, responder chiwawa.Responder) bool {
	if c.validator == nil {
		c.log.Error("webhook validator not set")
		if responder != nil {
			responder.SetResponse(http.StatusServiceUnavailable, "Service unavailable.")
			responder.Done()
		}
		return false
	}
	return c.validator.IsValidRequest(req, responder)
}

// ComposeReply builds the message posted back to the group a webhook came from.
func (c *Core) ComposeReply(req *entity.InboundRequest) entity.MessagePayload {
	text := req.MessageText()
	switch c.reply.mode {
	case config.ReplyAttachment:
		return chiwawa.MessageWithAttachment(c.reply.prefix, c.reply.title, text, entity.TextMarkdown)
	default:
		return chiwawa.MessageWithText(c.reply.prefix + text)
	}
}

// Reply answers a validated webhook. The responder is acknowledged before the
// outbound POST completes; its outcome is only logged.
func (c *Core) Reply(ctx context.Context, req *entity.InboundRequest, responder chiwawa.Responder) {
	logger := c.log.With(
		slog.String("company", req.CompanyID()),
		slog.String("group", req.GroupID()),
		slog.String("type", req.Body.Type),
	)

	if c.reply.mode == config.ReplyNone || c.chiwawa == nil {
		logger.Debug("webhook accepted without reply")
		responder.SetResponse(http.StatusOK, "OK.")
		responder.Done()
		return
	}

	results := c.chiwawa.SendPayload(ctx, req, c.ComposeReply(req), responder)
	go func() {
		result := <-results
		if result.Err != nil {
			logger.With(sl.Err(result.Err)).Error("reply delivery")
			return
		}
		if result.Response.StatusCode < 200 || result.Response.StatusCode >= 300 {
			logger.With(
				slog.Int("status", result.Response.StatusCode),
				slog.String("body", string(result.Body)),
			).Warn("reply rejected by platform")
			return
		}
		logger.Info("reply delivered")
	}()
}
