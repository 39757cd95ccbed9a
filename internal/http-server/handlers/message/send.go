package message

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/api/cont"
	"ChiwawaRelay/internal/lib/api/response"
	"ChiwawaRelay/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Send posts a message to a group and returns the platform's raw answer.
func Send(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.message")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("message service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Message service not available"))
			return
		}

		var msg entity.HttpSendMsg
		if err := render.Bind(r, &msg); err != nil {
			logger.With(sl.Err(err)).Debug("invalid send request")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}

		logger = logger.With(
			slog.String("company", msg.CompanyID),
			slog.String("group", msg.GroupID),
		)
		if user := cont.GetUser(r.Context()); user != nil {
			logger = logger.With(slog.String("user", user.Username))
		}

		status, err := handler.SendMessage(r.Context(), &msg)
		if err != nil {
			logger.With(sl.Err(err)).Error("send message")
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(fmt.Sprintf("Send failed: %v", err)))
			return
		}
		logger.With(slog.Int("response_status", status.ResponseStatus)).Debug("message sent")

		render.JSON(w, r, response.Ok(status))
	}
}
