// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package hipchat wraps the HipChat v1 HTTP API.
//
// [Client] holds the auth token and HTTP transport and exposes two
// collection facades: [Client.Rooms] for the rooms/* endpoints (list,
// show, create, delete, topic, message, history) and [Client.Users] for
// the users/* endpoints (list, show). Every operation is a single
// synchronous request: the token is attached as the auth_token query
// parameter (the documented v1 scheme), GET parameters travel in the
// query string, and POST bodies are form-encoded. There are no retries
// and no caching; a failed call surfaces immediately to the caller.
//
// Responses hydrate [Room], [User], and [Message] values. A resource's
// identity (ref.RoomID, ref.UserID) is immutable; other fields reflect
// the response that produced the value and are refreshed only by
// fetching again. Rooms obtained from the facade carry a reference back
// to it, so [Room.UpdateTopic], [Room.SendMessage], [Room.History], and
// [Room.Delete] work directly on the model. UpdateTopic performs a
// remote call and mutates the local Topic field only after the server
// accepts the update.
//
// Errors come in three kinds, all usable with errors.As. A non-2xx
// response decodes into [*RemoteError] carrying the HTTP status and the
// server's error type and message; [IsAuthenticationError],
// [IsNotFoundError], [IsBadRequest], [IsRateLimited], and
// [IsServiceUnavailable] test the statuses the v1 API documents.
// Network-level failures wrap into [*TransportError]. A 2xx body that
// does not decode produces [*DecodeError] rather than a silently
// partial object. Optional fields missing from a response decode to
// zero values; only malformed JSON or a missing response envelope is an
// error.
//
// The auth token lives in a secret.Buffer (mmap-backed, locked against
// swap, excluded from core dumps); call [Client.Close] to release it.
package hipchat
