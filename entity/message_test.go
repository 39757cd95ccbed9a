package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMessagePayload_AttachmentsKey(t *testing.T) {
	cases := []struct {
		name string
		msg  MessagePayload
		want string
	}{
		{"nil attachments", MessagePayload{Text: "hi"}, `{"text":"hi"}`},
		{"empty attachments", MessagePayload{Text: "hi", Attachments: []Attachment{}}, `{"text":"hi","attachments":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.msg)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, data)
			}
		})
	}
}

func TestAttachment_WithDefaults(t *testing.T) {
	a := Attachment{
		Title:   "t",
		Actions: []Action{{ButtonTitle: "b"}},
	}.WithDefaults()

	if a.AttachmentID == "" {
		t.Error("expected an attachment id")
	}
	if a.ViewType != ViewTypeText || a.TextType != TextNone || a.DisplaysCommentField != CommentNo {
		t.Errorf("unexpected attachment defaults %+v", a)
	}
	action := a.Actions[0]
	if action.DisplaysIn != DisplaysBoth || action.PostBodyContentType != ContentJSON {
		t.Errorf("unexpected action defaults %+v", action)
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("expected no null values, got %s", data)
	}
}

func TestAttachment_WithDefaultsKeepsValues(t *testing.T) {
	a := Attachment{
		AttachmentID:         "given",
		TextType:             TextHTML,
		DisplaysCommentField: CommentYes,
		Actions:              []Action{{DisplaysIn: DisplaysTimeline, PostBodyContentType: ContentForm}},
	}.WithDefaults()

	if a.AttachmentID != "given" {
		t.Errorf("expected given, got %s", a.AttachmentID)
	}
	if a.TextType != TextHTML || a.DisplaysCommentField != CommentYes {
		t.Errorf("values overwritten: %+v", a)
	}
	if a.Actions[0].DisplaysIn != DisplaysTimeline || a.Actions[0].PostBodyContentType != ContentForm {
		t.Errorf("action values overwritten: %+v", a.Actions[0])
	}
}
