package webhook

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/sl"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const maxBodySize = 1 << 20

// Receive handles webhook calls from the chat platform. An undecodable body
// is treated as missing so that the token check still answers first.
func Receive(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.webhook")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		responder := newResponder(w, logger)

		req := &entity.InboundRequest{Headers: r.Header}
		var body entity.WebhookBody
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&body); err != nil {
			logger.With(sl.Err(err)).Debug("webhook body not decoded")
		} else {
			req.Body = &body
		}

		if !handler.IsValidRequest(req, responder) {
			responder.Done()
			return
		}

		logger.With(
			slog.String("company", req.CompanyID()),
			slog.String("group", req.GroupID()),
			slog.String("type", body.Type),
		).Debug("webhook accepted")

		// the reply outlives this request
		handler.Reply(context.WithoutCancel(r.Context()), req, responder)
		if !responder.isDone() {
			responder.Done()
		}
	}
}
