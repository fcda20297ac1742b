// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUsersList(t *testing.T) {
	t.Run("maps users and flag encodings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/users/list" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			if got := request.URL.Query().Get("include_deleted"); got != "0" {
				t.Errorf("unexpected include_deleted: %q", got)
			}
			writer.Write([]byte(`{"users": [
				{"user_id": 7, "name": "Alice", "mention_name": "alice", "email": "alice@example.com",
				 "is_group_admin": 1, "is_deleted": 0, "last_active": 1290214099, "created": 1272558000},
				{"user_id": 9, "name": "Bob", "is_group_admin": "0", "status": "away"}
			]}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		users, err := client.Users.List(context.Background(), false)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("unexpected user count: %d", len(users))
		}
		if users[0].UserID != 7 || users[0].MentionName != "alice" {
			t.Errorf("unexpected user: %+v", users[0])
		}
		if !bool(users[0].IsGroupAdmin) {
			t.Error("is_group_admin=1 should decode to true")
		}
		if users[0].LastActive.IsZero() || users[0].Created.IsZero() {
			t.Error("timestamps not decoded")
		}
		if bool(users[1].IsGroupAdmin) {
			t.Error(`is_group_admin="0" should decode to false`)
		}
		// Fields the response omitted default to zero values.
		if users[1].Email != "" || !users[1].LastActive.IsZero() {
			t.Errorf("omitted fields not zero: %+v", users[1])
		}
	})

	t.Run("include deleted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if got := request.URL.Query().Get("include_deleted"); got != "1" {
				t.Errorf("unexpected include_deleted: %q", got)
			}
			writer.Write([]byte(`{"users": []}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		users, err := client.Users.List(context.Background(), true)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if users == nil || len(users) != 0 {
			t.Errorf("expected empty slice, got: %v", users)
		}
	})
}

func TestUsersShow(t *testing.T) {
	t.Run("maps response fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/users/show" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			if got := request.URL.Query().Get("user_id"); got != "7" {
				t.Errorf("unexpected user_id: %q", got)
			}
			writer.Write([]byte(`{"user": {
				"user_id": 7, "name": "Alice", "title": "SRE",
				"photo_url": "https://example.com/alice.png",
				"status": "available", "status_message": "shipping"
			}}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		user, err := client.Users.Show(context.Background(), 7)
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if user.UserID != 7 || user.Title != "SRE" || user.PhotoURL != "https://example.com/alice.png" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writeError(writer, http.StatusNotFound, "Not Found", "User not found")
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		_, err := client.Users.Show(context.Background(), 404)
		if !IsNotFoundError(err) {
			t.Fatalf("expected not-found error, got: %v", err)
		}
	})

	t.Run("missing envelope key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		_, err := client.Users.Show(context.Background(), 7)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected *DecodeError, got: %v", err)
		}
	})
}
