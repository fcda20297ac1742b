// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

// Message colors accepted by the rooms/message endpoint.
const (
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorPurple = "purple"
	ColorGray   = "gray"
	ColorRandom = "random"
)

// Message body formats accepted by the rooms/message endpoint.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// MessageRequest is an ephemeral value describing a message to send to
// a room. It exists only to be passed to SendMessage and is not
// retained after the call returns; sent messages come back as [Message]
// values through room history.
//
// Zero-value fields fall back to the send-time defaults: FormatText,
// ColorYellow, no notification, and the client's from name.
type MessageRequest struct {
	// Body is the message content. Required.
	Body string
	// Format declares how the server should interpret Body: FormatText
	// (rendered verbatim, URLs auto-linked) or FormatHTML (sanitized
	// subset of HTML).
	Format string
	// Color sets the message background in the room.
	Color string
	// Notify triggers participant notifications, subject to each
	// participant's own settings.
	Notify bool
	// From overrides the sender name shown in the room.
	From string
}

// NewTextMessage creates a plain text message request with the default
// color and no notification.
func NewTextMessage(body string) MessageRequest {
	return MessageRequest{
		Body:   body,
		Format: FormatText,
	}
}

// NewHTMLMessage creates an HTML message request with the default color
// and no notification. The server sanitizes the body to its allowed
// subset of HTML.
func NewHTMLMessage(body string) MessageRequest {
	return MessageRequest{
		Body:   body,
		Format: FormatHTML,
	}
}

// Message is a message from a room's history.
//
// From is a partial User carrying only UserID and Name; fetch the full
// record with UserService.Show when more is needed.
type Message struct {
	From User    `json:"from"`
	Date ISOTime `json:"date"`
	Text string  `json:"message"`
}
