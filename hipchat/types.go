// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// UnixTime is a timestamp the v1 API transmits as unix seconds
// (last_active, created). Missing, null, and zero values all decode to
// the zero time. Marshals back to unix seconds.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON decodes a unix-seconds timestamp. The server sends a
// bare number; quoted numbers are tolerated.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" || raw == "" || raw == "0" {
		t.Time = time.Time{}
		return nil
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("unix timestamp %q: %w", raw, err)
	}
	t.Time = time.Unix(seconds, 0).UTC()
	return nil
}

// MarshalJSON encodes the timestamp as unix seconds, or 0 for the zero time.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// ISOTime is a timestamp the v1 API transmits as an ISO 8601 string
// (rooms/history message dates). The server's zone offset omits the
// colon ("-0800"); RFC 3339 offsets are tolerated too.
type ISOTime struct {
	time.Time
}

// isoLayouts are the accepted wire formats, tried in order.
var isoLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// UnmarshalJSON decodes an ISO 8601 timestamp. Missing and null values
// decode to the zero time.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" || raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	for _, layout := range isoLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("ISO 8601 timestamp %q: %w", raw, err)
}

// MarshalJSON encodes the timestamp in RFC 3339, or null for the zero time.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// IntBool is a boolean the v1 API transmits inconsistently: native
// JSON booleans in some responses, 0/1 numbers or "0"/"1" strings in
// others (is_group_admin, is_deleted). Marshals as a native boolean.
type IntBool bool

// UnmarshalJSON accepts true/false, 0/1, and "0"/"1".
func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "true", "1":
		*b = true
	case "false", "0", "null", "":
		*b = false
	default:
		return fmt.Errorf("boolean flag %s: unrecognized value", data)
	}
	return nil
}

// MarshalJSON encodes the flag as a native JSON boolean.
func (b IntBool) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(b))), nil
}

// Response envelopes. Every v1 response wraps its payload in a
// single-key object; a missing key is a decode failure, not an empty
// result.
type roomsEnvelope struct {
	Rooms []Room `json:"rooms"`
}

type roomEnvelope struct {
	Room *Room `json:"room"`
}

type usersEnvelope struct {
	Users []User `json:"users"`
}

type userEnvelope struct {
	User *User `json:"user"`
}

type historyEnvelope struct {
	Messages []Message `json:"messages"`
}
