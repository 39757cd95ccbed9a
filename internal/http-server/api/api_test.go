package api

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/service/chiwawa"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeHandler struct {
	sent int
}

func (f *fakeHandler) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if token != "api-key" {
		return nil, errors.New("invalid api key")
	}
	return &entity.UserAuth{Username: "api", Token: token}, nil
}

func (f *fakeHandler) ValidateToken(token string) (string, error) {
	user, err := f.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (f *fakeHandler) IsValidRequest(req *entity.InboundRequest, responder chiwawa.Responder) bool {
	if req.Headers.Get(entity.WebhookTokenHeader) != "hook" {
		responder.SetResponse(http.StatusUnauthorized, "Unauthorized request.")
		responder.Done()
		return false
	}
	return true
}

func (f *fakeHandler) Reply(_ context.Context, _ *entity.InboundRequest, responder chiwawa.Responder) {
	responder.SetResponse(http.StatusOK, "OK.")
	responder.Done()
}

func (f *fakeHandler) SendMessage(_ context.Context, _ *entity.HttpSendMsg) (*entity.SendStatus, error) {
	f.sent++
	return &entity.SendStatus{ResponseStatus: 200}, nil
}

func (f *fakeHandler) RecentDeliveries(context.Context, string, int64) ([]entity.Delivery, error) {
	return []entity.Delivery{}, nil
}

func testRouter(h *fakeHandler) http.Handler {
	return NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), h, nil)
}

func TestRouter_WebhookDoesNotNeedBearer(t *testing.T) {
	router := testRouter(&fakeHandler{})
	req := httptest.NewRequest(http.MethodPost, "/chiwawa/webhook", bytes.NewBufferString(`{"type":"message","message":{}}`))
	req.Header.Set(entity.WebhookTokenHeader, "hook")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}
}

func TestRouter_ApiRequiresBearer(t *testing.T) {
	h := &fakeHandler{}
	router := testRouter(h)

	for _, auth := range []string{"", "Bearer", "Bearer wrong", "Basic api-key"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString(`{"companyId":"a","groupId":"g","text":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("auth %q: expected 401, got %d", auth, rr.Code)
		}
	}
	if h.sent != 0 {
		t.Errorf("no message should be sent, got %d", h.sent)
	}
}

func TestRouter_ApiWithBearer(t *testing.T) {
	h := &fakeHandler{}
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString(`{"companyId":"a","groupId":"g","text":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer api-key")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if h.sent != 1 {
		t.Errorf("expected one send, got %d", h.sent)
	}
	if rr.Header().Get("X-User") != "api" {
		t.Errorf("expected X-User api, got %q", rr.Header().Get("X-User"))
	}
}

func TestRouter_NotFoundAndNotAllowed(t *testing.T) {
	router := testRouter(&fakeHandler{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/chiwawa/webhook", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rr.Code)
	}
}

func TestRouter_NoLiveFeedWithoutHub(t *testing.T) {
	router := testRouter(&fakeHandler{})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws?token=api-key", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}
