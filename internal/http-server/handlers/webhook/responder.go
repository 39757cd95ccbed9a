package webhook

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
)

// httpResponder buffers the response until Done, then writes it once.
type httpResponder struct {
	w      http.ResponseWriter
	log    *slog.Logger
	mu     sync.Mutex
	status int
	body   string
	done   bool
}

func newResponder(w http.ResponseWriter, log *slog.Logger) *httpResponder {
	return &httpResponder{
		w:   w,
		log: log,
	}
}

func (h *httpResponder) SetResponse(status int, body string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
	h.body = body
}

func (h *httpResponder) Log(msg string) {
	h.log.Info(msg)
}

func (h *httpResponder) Done() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return
	}
	h.done = true

	if h.status == 0 {
		h.status = http.StatusOK
	}
	h.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	h.w.WriteHeader(h.status)
	_, _ = io.WriteString(h.w, h.body)
}

func (h *httpResponder) isDone() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}
