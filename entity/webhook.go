package entity

import (
	"bytes"
	"encoding/json"
	"net/http"
)

const WebhookTokenHeader = "X-Chiwawa-Webhook-Token"

// InboundRequest is the webhook call as seen by the relay: the raw headers and
// the decoded body, either of which may be missing.
type InboundRequest struct {
	Headers http.Header
	Body    *WebhookBody
}

type WebhookBody struct {
	CompanyID string          `json:"companyId"`
	Type      string          `json:"type"`
	Message   *WebhookMessage `json:"message"`
}

type WebhookMessage struct {
	GroupID string `json:"groupId"`
	Text    string `json:"text"`
}

// UnmarshalJSON reads the body loosely: scalar fields of any JSON type are
// taken as text, and null, false, 0 or "" count as absent. A message that is
// present but not an object yields an empty message.
func (b *WebhookBody) UnmarshalJSON(data []byte) error {
	var raw struct {
		CompanyID json.RawMessage `json:"companyId"`
		Type      json.RawMessage `json:"type"`
		Message   json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.CompanyID = looseString(raw.CompanyID)
	b.Type = looseString(raw.Type)
	b.Message = nil
	if looseString(raw.Message) == "" {
		return nil
	}

	var fields struct {
		GroupID json.RawMessage `json:"groupId"`
		Text    json.RawMessage `json:"text"`
	}
	msg := &WebhookMessage{}
	if err := json.Unmarshal(raw.Message, &fields); err == nil {
		msg.GroupID = looseString(fields.GroupID)
		msg.Text = looseString(fields.Text)
	}
	b.Message = msg
	return nil
}

func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', 'f':
		return ""
	case 't':
		return "true"
	case '{', '[':
		return string(raw)
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n == 0 {
			return ""
		}
		return string(raw)
	}
}

func (r *InboundRequest) CompanyID() string {
	if r == nil || r.Body == nil {
		return ""
	}
	return r.Body.CompanyID
}

func (r *InboundRequest) GroupID() string {
	if r == nil || r.Body == nil || r.Body.Message == nil {
		return ""
	}
	return r.Body.Message.GroupID
}

func (r *InboundRequest) MessageText() string {
	if r == nil || r.Body == nil || r.Body.Message == nil {
		return ""
	}
	return r.Body.Message.Text
}
