package delivery

import (
	"ChiwawaRelay/internal/lib/api/response"
	"ChiwawaRelay/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const defaultLimit = 50

// List returns journaled deliveries, newest first. Query: company, limit.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.delivery")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		limit := int64(defaultLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n <= 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid limit"))
				return
			}
			limit = n
		}
		company := r.URL.Query().Get("company")

		deliveries, err := handler.RecentDeliveries(r.Context(), company, limit)
		if err != nil {
			logger.With(sl.Err(err)).Error("list deliveries")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error(fmt.Sprintf("Deliveries not available: %v", err)))
			return
		}

		render.JSON(w, r, response.Ok(deliveries))
	}
}
