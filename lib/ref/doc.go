// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides validated identifier types for HipChat resources.
//
// The v1 API identifies rooms and users by positive integers. Raw values
// arriving from outside the program (CLI arguments, configuration) are
// parsed into [RoomID] and [UserID] at the boundary; the rest of the code
// passes the typed values around and never constructs them from untrusted
// input. Identity is immutable: there is no way to change an ID once
// parsed, only to obtain a new one.
//
// The zero value of either type is not a valid identifier; use IsZero to
// check.
package ref
