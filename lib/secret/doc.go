// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds sensitive data — primarily the HipChat auth
// token — in memory that is protected from the usual leak paths.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped. Because the memory is
// invisible to the garbage collector, it is never copied or relocated,
// so zeroing on Close actually destroys the secret.
//
// Tokens enter the program through [ReadFromPath] (file or stdin) or
// [ReadFromTerminal] (interactive no-echo prompt). Both return a Buffer
// that the caller must Close when the token is no longer needed.
//
// The token leaves protected memory only at the HTTP request boundary,
// where a short-lived heap string is unavoidable.
package secret
