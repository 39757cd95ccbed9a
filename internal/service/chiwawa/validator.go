package chiwawa

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/config"
	"ChiwawaRelay/internal/lib/sl"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

const (
	unauthorizedBody = "Unauthorized request."
	unauthorizedLog  = "401: Unauthorized request."
	badRequestBody   = "Request body is not valid. Please set a message in the request body."
	badRequestLog    = "400: Bad request."
)

type Validator struct {
	token string
	log   *slog.Logger
}

func NewValidator(conf *config.Config, log *slog.Logger) *Validator {
	return &Validator{
		token: conf.Chiwawa.ValidationToken,
		log:   log.With(sl.Module("chiwawa.validator")),
	}
}

// IsAuthorized reports whether the webhook token header matches the
// configured validation token. An unset token rejects everything.
func (v *Validator) IsAuthorized(req *entity.InboundRequest) bool {
	if req == nil || req.Headers == nil || v.token == "" {
		return false
	}
	token, ok := headerValue(req.Headers, entity.WebhookTokenHeader)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) == 1
}

// headerValue also matches keys that were stored without canonicalization.
func headerValue(h http.Header, key string) (string, bool) {
	if values := h.Values(key); len(values) > 0 {
		return values[0], true
	}
	for k, values := range h {
		if strings.EqualFold(k, key) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

func (v *Validator) IsBodyValid(req *entity.InboundRequest) bool {
	if req == nil || req.Body == nil {
		return false
	}
	return req.Body.Type != "" && req.Body.Message != nil
}

// IsValidRequest checks the token, then the body. On the first failure the
// responder, if any, receives the error response and is marked done.
func (v *Validator) IsValidRequest(req *entity.InboundRequest, responder Responder) bool {
	if !v.IsAuthorized(req) {
		v.log.Debug("webhook rejected", slog.Int("status", http.StatusUnauthorized))
		reject(responder, http.StatusUnauthorized, unauthorizedBody, unauthorizedLog)
		return false
	}

	if !v.IsBodyValid(req) {
		v.log.Debug("webhook rejected", slog.Int("status", http.StatusBadRequest))
		reject(responder, http.StatusBadRequest, badRequestBody, badRequestLog)
		return false
	}
	return true
}

func reject(responder Responder, status int, body, msg string) {
	if responder == nil {
		return
	}
	responder.SetResponse(status, body)
	responder.Log(msg)
	responder.Done()
}
