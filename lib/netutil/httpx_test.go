// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestReadResponse(t *testing.T) {
	t.Run("reads full body", func(t *testing.T) {
		data, err := ReadResponse(strings.NewReader(`{"rooms": []}`))
		if err != nil {
			t.Fatalf("ReadResponse failed: %v", err)
		}
		if string(data) != `{"rooms": []}` {
			t.Errorf("unexpected body: %s", data)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		data, err := ReadResponse(strings.NewReader(""))
		if err != nil {
			t.Fatalf("ReadResponse failed: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("expected empty body, got %d bytes", len(data))
		}
	})
}

func TestErrorBody(t *testing.T) {
	body := ErrorBody(strings.NewReader("service unavailable"))
	if body != "service unavailable" {
		t.Errorf("unexpected error body: %s", body)
	}
}
