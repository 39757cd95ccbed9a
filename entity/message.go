package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TextType is the markup of an attachment body.
type TextType string

const (
	TextNone     TextType = "none"
	TextHTML     TextType = "html"
	TextMarkdown TextType = "md"
)

// CommentField controls the comment input under an attachment.
type CommentField string

const (
	CommentYes CommentField = "yes"
	CommentNo  CommentField = "no"
)

// DisplaysIn is where an action button is shown.
type DisplaysIn string

const (
	DisplaysTimeline DisplaysIn = "timeline"
	DisplaysDetail   DisplaysIn = "detail"
	DisplaysBoth     DisplaysIn = "both"
)

// ActionType is what happens when an action button is pressed.
type ActionType string

const (
	ActionDetail       ActionType = "detail"
	ActionInAppBrowser ActionType = "inAppBrowser"
	ActionExternalApp  ActionType = "externalApp"
	ActionGet          ActionType = "get"
	ActionPost         ActionType = "post"
)

// ContentType is the encoding of an action's post body.
type ContentType string

const (
	ContentJSON ContentType = "json"
	ContentForm ContentType = "form"
)

const ViewTypeText = "text"

type MessagePayload struct {
	Text        string       `json:"text" bson:"text"`
	Attachments []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
}

// MarshalJSON omits attachments only when the slice is nil; an empty slice
// is sent as [].
func (p MessagePayload) MarshalJSON() ([]byte, error) {
	out := struct {
		Text        string        `json:"text"`
		Attachments *[]Attachment `json:"attachments,omitempty"`
	}{Text: p.Text}
	if p.Attachments != nil {
		out.Attachments = &p.Attachments
	}
	return json.Marshal(out)
}

// WithDefaults returns a copy where every attachment and action carries the
// platform defaults.
func (p MessagePayload) WithDefaults() MessagePayload {
	if p.Attachments == nil {
		return p
	}
	attachments := make([]Attachment, len(p.Attachments))
	for i, a := range p.Attachments {
		attachments[i] = a.WithDefaults()
	}
	p.Attachments = attachments
	return p
}

type Attachment struct {
	AttachmentID         string       `json:"attachmentId,omitempty" bson:"attachment_id,omitempty"`
	ViewType             string       `json:"viewType" bson:"view_type"`
	Title                string       `json:"title" bson:"title"`
	Text                 string       `json:"text" bson:"text"`
	TextType             TextType     `json:"textType" bson:"text_type"`
	Color                string       `json:"color" bson:"color"`
	TagIcons             []string     `json:"tagIcons" bson:"tag_icons"`
	DisplaysCommentField CommentField `json:"displaysCommentField" bson:"displays_comment_field"`
	Actions              []Action     `json:"actions" bson:"actions"`
}

type Action struct {
	ButtonTitle         string            `json:"buttonTitle" bson:"button_title"`
	LocalizedTitle      map[string]string `json:"localizedTitle" bson:"localized_title"`
	DisplaysIn          DisplaysIn        `json:"displaysIn" bson:"displays_in"`
	ActionURL           string            `json:"actionUrl" bson:"action_url"`
	ActionType          ActionType        `json:"actionType" bson:"action_type"`
	PostBody            interface{}       `json:"postBody" bson:"post_body"`
	PostBodyContentType ContentType       `json:"postBodyContentType" bson:"post_body_content_type"`
}

// WithDefaults fills the fields left empty with the values the platform
// expects. An existing attachment id is kept.
func (a Attachment) WithDefaults() Attachment {
	if a.AttachmentID == "" {
		a.AttachmentID = uuid.NewString()
	}
	if a.ViewType == "" {
		a.ViewType = ViewTypeText
	}
	if a.TextType == "" {
		a.TextType = TextNone
	}
	if a.TagIcons == nil {
		a.TagIcons = []string{}
	}
	if a.DisplaysCommentField == "" {
		a.DisplaysCommentField = CommentNo
	}
	actions := make([]Action, len(a.Actions))
	for i, action := range a.Actions {
		actions[i] = action.WithDefaults()
	}
	a.Actions = actions
	return a
}

func (a Action) WithDefaults() Action {
	if a.LocalizedTitle == nil {
		a.LocalizedTitle = map[string]string{}
	}
	if a.DisplaysIn == "" {
		a.DisplaysIn = DisplaysBoth
	}
	if a.PostBody == nil {
		a.PostBody = map[string]interface{}{}
	}
	if a.PostBodyContentType == "" {
		a.PostBodyContentType = ContentJSON
	}
	return a
}
