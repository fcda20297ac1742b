// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "testing"

func TestParseRoomID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParseRoomID("42")
		if err != nil {
			t.Fatalf("ParseRoomID failed: %v", err)
		}
		if id != 42 {
			t.Errorf("unexpected room ID: %d", id)
		}
		if id.String() != "42" {
			t.Errorf("unexpected string form: %s", id.String())
		}
		if id.IsZero() {
			t.Error("valid room ID reported as zero")
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "12.5", "-3", "0"} {
			if _, err := ParseRoomID(raw); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		}
	})
}

func TestParseUserID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParseUserID("5")
		if err != nil {
			t.Fatalf("ParseUserID failed: %v", err)
		}
		if id != 5 {
			t.Errorf("unexpected user ID: %d", id)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, raw := range []string{"", "bob", "-1", "0"} {
			if _, err := ParseUserID(raw); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		}
	})
}

func TestZeroValues(t *testing.T) {
	var room RoomID
	var user UserID
	if !room.IsZero() || !user.IsZero() {
		t.Error("zero values must report IsZero")
	}
}
