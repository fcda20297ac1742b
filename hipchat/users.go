// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dobarkod/hipchat-api/lib/ref"
)

// User is a HipChat user as returned by the users/* endpoints.
//
// Users are read-mostly: the v1 API exposes no mutation methods for
// them, so the model carries none. UserID is the immutable identity.
// Message senders in room history are partial Users with only UserID
// and Name populated; fetch the full record with UserService.Show.
type User struct {
	UserID        ref.UserID `json:"user_id"`
	Name          string     `json:"name"`
	MentionName   string     `json:"mention_name"`
	Email         string     `json:"email"`
	Title         string     `json:"title"`
	PhotoURL      string     `json:"photo_url"`
	Status        string     `json:"status"`
	StatusMessage string     `json:"status_message"`
	IsGroupAdmin  IntBool    `json:"is_group_admin"`
	IsDeleted     IntBool    `json:"is_deleted"`
	LastActive    UnixTime   `json:"last_active"`
	Created       UnixTime   `json:"created"`
}

// UserService wraps the users/* endpoints. Access it as Client.Users.
type UserService struct {
	client *Client
}

// List returns the users the token has access to. Deleted users are
// excluded unless includeDeleted is set. An empty collection is an
// empty slice, not an error.
func (s *UserService) List(ctx context.Context, includeDeleted bool) ([]User, error) {
	query := url.Values{}
	query.Set("include_deleted", flagValue(includeDeleted))

	body, err := s.client.get(ctx, "users/list", query)
	if err != nil {
		return nil, fmt.Errorf("hipchat: list users failed: %w", err)
	}

	var envelope usersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Endpoint: "users/list", Err: err}
	}
	if envelope.Users == nil {
		return nil, &DecodeError{Endpoint: "users/list", Err: fmt.Errorf(`response missing "users" list`)}
	}
	return envelope.Users, nil
}

// Show returns the user with the given ID.
func (s *UserService) Show(ctx context.Context, id ref.UserID) (*User, error) {
	query := url.Values{}
	query.Set("user_id", id.String())

	body, err := s.client.get(ctx, "users/show", query)
	if err != nil {
		return nil, fmt.Errorf("hipchat: show user %s failed: %w", id, err)
	}

	var envelope userEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Endpoint: "users/show", Err: err}
	}
	if envelope.User == nil {
		return nil, &DecodeError{Endpoint: "users/show", Err: fmt.Errorf(`response missing "user" object`)}
	}
	return envelope.User, nil
}
