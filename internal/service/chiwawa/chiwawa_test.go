package chiwawa

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/config"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	testValidationToken = "TEST_TOKEN"
	testApiToken        = "YOUR_API_TOKEN"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	conf := &config.Config{}
	conf.Chiwawa.ValidationToken = testValidationToken
	conf.Chiwawa.ApiToken = testApiToken
	conf.Chiwawa.UrlTemplate = "https://{companyId}.chiwawa.one/api/public/v1/groups/{groupId}/messages"
	conf.Chiwawa.Timeout = 5 * time.Second
	return conf
}

func testRequest() *entity.InboundRequest {
	return &entity.InboundRequest{
		Headers: http.Header{entity.WebhookTokenHeader: []string{testValidationToken}},
		Body: &entity.WebhookBody{
			CompanyID: "acme",
			Type:      "message",
			Message: &entity.WebhookMessage{
				GroupID: "g1",
				Text:    "TEST_MESSAGE",
			},
		},
	}
}

type recordingResponder struct {
	mu     sync.Mutex
	status int
	body   string
	logs   []string
	done   int
}

func (r *recordingResponder) SetResponse(status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.body = body
}

func (r *recordingResponder) Log(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, msg)
}

func (r *recordingResponder) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

type channelObserver struct {
	deliveries chan entity.Delivery
}

func newChannelObserver() *channelObserver {
	return &channelObserver{deliveries: make(chan entity.Delivery, 8)}
}

func (o *channelObserver) Observe(d entity.Delivery) {
	o.deliveries <- d
}
