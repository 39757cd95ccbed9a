package chiwawa

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/sl"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const acknowledgeBody = "OK."

// Send posts payload to the group of the given company. The returned channel
// yields exactly one Result and is then closed. Transport errors and non-2xx
// answers are passed through untouched; nothing is retried.
func (c *Client) Send(ctx context.Context, companyID, groupID string, payload entity.MessagePayload) <-chan Result {
	out := make(chan Result, 1)
	target := c.MessageURL(companyID, groupID)

	go func() {
		defer close(out)

		started := time.Now()
		result := c.post(ctx, target, payload)
		out <- result

		delivery := entity.Delivery{
			ID:        uuid.NewString(),
			CompanyID: companyID,
			GroupID:   groupID,
			URL:       target,
			Payload:   payload,
			Duration:  time.Since(started).Seconds(),
			Time:      started,
		}
		if result.Response != nil {
			delivery.Status = result.Response.StatusCode
		}
		if result.Err != nil {
			delivery.Error = result.Err.Error()
		}

		c.log.With(
			slog.String("company", companyID),
			slog.String("group", groupID),
			slog.Int("status", delivery.Status),
			slog.Float64("duration", delivery.Duration),
			sl.Err(result.Err),
		).Debug("message delivered")

		c.notify(delivery)
	}()

	return out
}

// SendText sends a plain text message to the group the webhook came from.
func (c *Client) SendText(ctx context.Context, req *entity.InboundRequest, text string, responder Responder) <-chan Result {
	return c.SendPayload(ctx, req, MessageWithText(text), responder)
}

// SendPayload sends payload to the group the webhook came from. The responder
// is acknowledged with 200 right away, without waiting for the delivery.
func (c *Client) SendPayload(ctx context.Context, req *entity.InboundRequest, payload entity.MessagePayload, responder Responder) <-chan Result {
	out := c.Send(ctx, req.CompanyID(), req.GroupID(), payload)
	if responder != nil {
		responder.SetResponse(http.StatusOK, acknowledgeBody)
		responder.Done()
	}
	return out
}

func (c *Client) post(ctx context.Context, target string, payload entity.MessagePayload) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiTokenHeader, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	return Result{
		Err:      err,
		Response: resp,
		Body:     raw,
	}
}
