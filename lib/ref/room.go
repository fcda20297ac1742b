// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strconv"
)

// RoomID is a validated HipChat room ID.
//
// Room IDs are server-assigned positive integers returned by the
// rooms/list, rooms/show, and rooms/create endpoints. Code never invents
// room IDs — they come from API responses, or are parsed from CLI input
// with [ParseRoomID].
type RoomID int64

// ParseRoomID validates and converts a raw room ID string.
// Returns an error if the string is empty, not an integer, or not positive.
func ParseRoomID(raw string) (RoomID, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty room ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("room ID must be an integer: %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("room ID must be positive: %d", id)
	}
	return RoomID(id), nil
}

// String returns the decimal form of the room ID.
func (r RoomID) String() string { return strconv.FormatInt(int64(r), 10) }

// IsZero reports whether the RoomID is the zero value (uninitialized).
func (r RoomID) IsZero() bool { return r == 0 }
