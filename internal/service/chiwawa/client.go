package chiwawa

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/config"
	"ChiwawaRelay/internal/lib/sl"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	apiTokenHeader = "X-Chiwawa-API-Token"

	companyPlaceholder = "{companyId}"
	groupPlaceholder   = "{groupId}"
)

// Observer is told about every finished delivery.
type Observer interface {
	Observe(delivery entity.Delivery)
}

// Result is the raw outcome of one POST. Response.Body is already drained
// into Body and closed.
type Result struct {
	Err      error
	Response *http.Response
	Body     []byte
}

type Client struct {
	apiToken    string
	urlTemplate string
	httpClient  *http.Client
	observers   []Observer
	mu          sync.RWMutex
	log         *slog.Logger
}

func NewClient(conf *config.Config, logger *slog.Logger) *Client {
	timeout := conf.Chiwawa.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiToken:    conf.Chiwawa.ApiToken,
		urlTemplate: conf.Chiwawa.UrlTemplate,
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With(sl.Module("chiwawa.client")),
	}
}

func (c *Client) AddObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// MessageURL fills the company and group ids into the endpoint template.
func (c *Client) MessageURL(companyID, groupID string) string {
	r := strings.NewReplacer(
		companyPlaceholder, url.PathEscape(companyID),
		groupPlaceholder, url.PathEscape(groupID),
	)
	return r.Replace(c.urlTemplate)
}

func (c *Client) notify(delivery entity.Delivery) {
	c.mu.RLock()
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.RUnlock()

	for _, o := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.log.With(slog.Any("panic", r)).Error("delivery observer")
				}
			}()
			o.Observe(delivery)
		}()
	}
}
