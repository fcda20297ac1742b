// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/dobarkod/hipchat-api/lib/ref"
)

// Room is a HipChat room as returned by the rooms/* endpoints.
//
// RoomID is the immutable identity; the remaining fields reflect the
// response that produced the value and are refreshed only by fetching
// the room again. Participants is populated by rooms/show and empty
// (never nil) for responses that omit it, such as rooms/list.
//
// Rooms hydrated by a RoomService carry a reference back to it, so the
// convenience methods (UpdateTopic, SendMessage, History, Delete) can
// issue calls without going through the facade. A zero-value Room has
// no such reference and returns an error from those methods.
type Room struct {
	RoomID         ref.RoomID `json:"room_id"`
	Name           string     `json:"name"`
	Topic          string     `json:"topic"`
	XMPPJID        string     `json:"xmpp_jid"`
	OwnerUserID    ref.UserID `json:"owner_user_id"`
	IsArchived     IntBool    `json:"is_archived"`
	IsPrivate      IntBool    `json:"is_private"`
	GuestAccessURL string     `json:"guest_access_url"`
	LastActive     UnixTime   `json:"last_active"`
	Created        UnixTime   `json:"created"`
	Participants   []User     `json:"participants"`

	rooms *RoomService
}

// CreateRoomRequest holds parameters for creating a room.
//
// The zero value of the optional fields matches the server defaults:
// an empty topic, an invite-only room (set Public for an open one), and
// guest access disabled.
type CreateRoomRequest struct {
	// Name is the human-readable room name. Required.
	Name string
	// OwnerUserID identifies the room owner. Required.
	OwnerUserID ref.UserID
	// Topic is the initial room topic.
	Topic string
	// Public opens the room to anyone in the group; otherwise only
	// invited users can join.
	Public bool
	// GuestAccess enables the room's guest access URL.
	GuestAccess bool
}

// HistoryOptions holds parameters for fetching room history.
type HistoryOptions struct {
	// Date selects the day to fetch, interpreted in Timezone. The zero
	// value fetches the most recent messages instead of a specific day.
	Date time.Time
	// Timezone is the tz database name used to determine when the day
	// starts and ends. If empty, "UTC" is used.
	Timezone string
}

// RoomService wraps the rooms/* endpoints. Access it as Client.Rooms.
type RoomService struct {
	client *Client
}

// List returns the rooms the token has access to. An empty collection
// is an empty slice, not an error. The response does not include
// participants; use Show for a single room's full detail.
func (s *RoomService) List(ctx context.Context) ([]Room, error) {
	body, err := s.client.get(ctx, "rooms/list", nil)
	if err != nil {
		return nil, fmt.Errorf("hipchat: list rooms failed: %w", err)
	}

	var envelope roomsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Endpoint: "rooms/list", Err: err}
	}
	if envelope.Rooms == nil {
		return nil, &DecodeError{Endpoint: "rooms/list", Err: fmt.Errorf(`response missing "rooms" list`)}
	}
	for index := range envelope.Rooms {
		s.hydrate(&envelope.Rooms[index])
	}
	return envelope.Rooms, nil
}

// Show returns the room with the given ID, including its participants.
func (s *RoomService) Show(ctx context.Context, id ref.RoomID) (*Room, error) {
	query := url.Values{}
	query.Set("room_id", id.String())

	body, err := s.client.get(ctx, "rooms/show", query)
	if err != nil {
		return nil, fmt.Errorf("hipchat: show room %s failed: %w", id, err)
	}
	return s.decodeRoom(body, "rooms/show")
}

// Create creates a new room and returns it.
func (s *RoomService) Create(ctx context.Context, request CreateRoomRequest) (*Room, error) {
	if request.Name == "" {
		return nil, fmt.Errorf("hipchat: name is required for room creation")
	}
	if request.OwnerUserID.IsZero() {
		return nil, fmt.Errorf("hipchat: owner user ID is required for room creation")
	}

	form := url.Values{}
	form.Set("name", request.Name)
	form.Set("owner_user_id", request.OwnerUserID.String())
	form.Set("topic", request.Topic)
	form.Set("private", privacyValue(request.Public))
	form.Set("guest_access", flagValue(request.GuestAccess))

	body, err := s.client.post(ctx, "rooms/create", form)
	if err != nil {
		return nil, fmt.Errorf("hipchat: create room %q failed: %w", request.Name, err)
	}

	room, err := s.decodeRoom(body, "rooms/create")
	if err != nil {
		return nil, err
	}

	s.client.logger.Info("created hipchat room",
		"room_id", room.RoomID,
		"name", room.Name,
	)
	return room, nil
}

// Delete deletes a room. There is no way to restore a deleted room or
// its history.
func (s *RoomService) Delete(ctx context.Context, id ref.RoomID) error {
	form := url.Values{}
	form.Set("room_id", id.String())

	if _, err := s.client.post(ctx, "rooms/delete", form); err != nil {
		return fmt.Errorf("hipchat: delete room %s failed: %w", id, err)
	}

	s.client.logger.Info("deleted hipchat room", "room_id", id)
	return nil
}

// SetTopic changes a room's topic. The change is attributed to the
// client's from name.
func (s *RoomService) SetTopic(ctx context.Context, id ref.RoomID, topic string) error {
	form := url.Values{}
	form.Set("room_id", id.String())
	form.Set("topic", topic)
	form.Set("from", s.client.fromName)

	if _, err := s.client.post(ctx, "rooms/topic", form); err != nil {
		return fmt.Errorf("hipchat: set topic for room %s failed: %w", id, err)
	}
	return nil
}

// SendMessage sends a message to a room. Zero-value request fields fall
// back to the defaults: text format, yellow color, no notification, and
// the client's from name.
func (s *RoomService) SendMessage(ctx context.Context, id ref.RoomID, message MessageRequest) error {
	if message.Body == "" {
		return fmt.Errorf("hipchat: message body is required")
	}

	format := message.Format
	if format == "" {
		format = FormatText
	}
	color := message.Color
	if color == "" {
		color = ColorYellow
	}
	from := message.From
	if from == "" {
		from = s.client.fromName
	}

	form := url.Values{}
	form.Set("room_id", id.String())
	form.Set("message", message.Body)
	form.Set("message_format", format)
	form.Set("notify", flagValue(message.Notify))
	form.Set("color", color)
	form.Set("from", from)

	if _, err := s.client.post(ctx, "rooms/message", form); err != nil {
		return fmt.Errorf("hipchat: send message to room %s failed: %w", id, err)
	}
	return nil
}

// History fetches a room's messages: the most recent ones by default,
// or a full day when options.Date is set. A future date is rejected
// before any request is made.
func (s *RoomService) History(ctx context.Context, id ref.RoomID, options HistoryOptions) ([]Message, error) {
	timezone := options.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	date := "recent"
	if !options.Date.IsZero() {
		date = options.Date.Format("2006-01-02")
		if date > time.Now().UTC().Format("2006-01-02") {
			return nil, fmt.Errorf("hipchat: history date %s is in the future", date)
		}
	}

	query := url.Values{}
	query.Set("room_id", id.String())
	query.Set("date", date)
	query.Set("timezone", timezone)

	body, err := s.client.get(ctx, "rooms/history", query)
	if err != nil {
		return nil, fmt.Errorf("hipchat: history for room %s failed: %w", id, err)
	}

	var envelope historyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Endpoint: "rooms/history", Err: err}
	}
	if envelope.Messages == nil {
		return nil, &DecodeError{Endpoint: "rooms/history", Err: fmt.Errorf(`response missing "messages" list`)}
	}
	return envelope.Messages, nil
}

// decodeRoom unmarshals a single-room envelope and hydrates the result.
func (s *RoomService) decodeRoom(body []byte, endpoint string) (*Room, error) {
	var envelope roomEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	if envelope.Room == nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: fmt.Errorf(`response missing "room" object`)}
	}
	s.hydrate(envelope.Room)
	return envelope.Room, nil
}

// hydrate attaches the service back-pointer and normalizes fields the
// response may omit.
func (s *RoomService) hydrate(room *Room) {
	room.rooms = s
	if room.Participants == nil {
		room.Participants = []User{}
	}
}

// UpdateTopic changes the room's topic on the server and, on success,
// updates the local Topic field. On failure the local field is left
// untouched.
func (r *Room) UpdateTopic(ctx context.Context, topic string) error {
	service, err := r.service()
	if err != nil {
		return err
	}
	if err := service.SetTopic(ctx, r.RoomID, topic); err != nil {
		return err
	}
	r.Topic = topic
	return nil
}

// SendMessage sends a message to this room. See RoomService.SendMessage.
func (r *Room) SendMessage(ctx context.Context, message MessageRequest) error {
	service, err := r.service()
	if err != nil {
		return err
	}
	return service.SendMessage(ctx, r.RoomID, message)
}

// History fetches this room's message history. See RoomService.History.
func (r *Room) History(ctx context.Context, options HistoryOptions) ([]Message, error) {
	service, err := r.service()
	if err != nil {
		return nil, err
	}
	return service.History(ctx, r.RoomID, options)
}

// Delete deletes this room. See RoomService.Delete.
func (r *Room) Delete(ctx context.Context) error {
	service, err := r.service()
	if err != nil {
		return err
	}
	return service.Delete(ctx, r.RoomID)
}

func (r *Room) service() (*RoomService, error) {
	if r.rooms == nil {
		return nil, fmt.Errorf("hipchat: room %s is not attached to a client", r.RoomID)
	}
	return r.rooms, nil
}

// privacyValue maps the Public flag to the wire values the rooms/create
// endpoint expects.
func privacyValue(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

// flagValue maps a boolean to the "0"/"1" strings the v1 API expects
// for flag parameters (notify, guest_access, include_deleted).
func flagValue(flag bool) string {
	if flag {
		return "1"
	}
	return "0"
}
