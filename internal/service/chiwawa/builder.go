package chiwawa

import "ChiwawaRelay/entity"

// Builders for outbound message payloads. Empty arguments take the platform
// defaults; enum values are passed through unchecked.

func MessageWithText(text string) entity.MessagePayload {
	return entity.MessagePayload{Text: text}
}

// MessageWithAttachment wraps a single text attachment built with defaults.
func MessageWithAttachment(text, title, body string, textType entity.TextType) entity.MessagePayload {
	attachment := NewAttachment(title, body, textType, "", nil, "", nil)
	return entity.MessagePayload{
		Text:        text,
		Attachments: []entity.Attachment{attachment},
	}
}

func MessageWithAttachments(text string, attachments []entity.Attachment) entity.MessagePayload {
	return entity.MessagePayload{
		Text:        text,
		Attachments: attachments,
	}
}

func NewAttachment(
	title, text string,
	textType entity.TextType,
	color string,
	tagIcons []string,
	commentField entity.CommentField,
	actions []entity.Action,
) entity.Attachment {
	return entity.Attachment{
		Title:                title,
		Text:                 text,
		TextType:             textType,
		Color:                color,
		TagIcons:             tagIcons,
		DisplaysCommentField: commentField,
		Actions:              actions,
	}.WithDefaults()
}

// NewAction builds a button for an attachment. localizedTitle maps an ISO
// language code to the button title in that language.
func NewAction(
	buttonTitle string,
	localizedTitle map[string]string,
	displaysIn entity.DisplaysIn,
	actionURL string,
	actionType entity.ActionType,
	postBody interface{},
	contentType entity.ContentType,
) entity.Action {
	return entity.Action{
		ButtonTitle:         buttonTitle,
		LocalizedTitle:      localizedTitle,
		DisplaysIn:          displaysIn,
		ActionURL:           actionURL,
		ActionType:          actionType,
		PostBody:            postBody,
		PostBodyContentType: contentType,
	}.WithDefaults()
}
