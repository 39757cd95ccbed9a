package entity

import (
	"ChiwawaRelay/internal/lib/validate"
	"net/http"
)

// HttpSendMsg is the management API request for posting a message directly.
type HttpSendMsg struct {
	CompanyID   string       `json:"companyId" validate:"required"`
	GroupID     string       `json:"groupId" validate:"required"`
	Text        string       `json:"text" validate:"required_without=Attachments"`
	Attachments []Attachment `json:"attachments" validate:"omitempty,dive"`
}

func (m *HttpSendMsg) Bind(_ *http.Request) error {
	return validate.Struct(m)
}

// Payload is the outbound message with defaults applied to the attachments
// the caller supplied.
func (m *HttpSendMsg) Payload() MessagePayload {
	return MessagePayload{
		Text:        m.Text,
		Attachments: m.Attachments,
	}.WithDefaults()
}

// SendStatus is the raw platform answer returned by the management API.
type SendStatus struct {
	ResponseStatus int    `json:"response_status"`
	Body           string `json:"body"`
}
