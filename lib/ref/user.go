// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strconv"
)

// UserID is a validated HipChat user ID.
//
// Like room IDs, user IDs are server-assigned positive integers. They
// appear in users/list and users/show responses, as room owners
// (owner_user_id), and as message senders in rooms/history.
type UserID int64

// ParseUserID validates and converts a raw user ID string.
// Returns an error if the string is empty, not an integer, or not positive.
func ParseUserID(raw string) (UserID, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty user ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("user ID must be an integer: %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("user ID must be positive: %d", id)
	}
	return UserID(id), nil
}

// String returns the decimal form of the user ID.
func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }

// IsZero reports whether the UserID is the zero value (uninitialized).
func (u UserID) IsZero() bool { return u == 0 }
