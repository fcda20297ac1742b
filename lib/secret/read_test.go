// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFromPath(t *testing.T) {
	t.Run("reads and trims file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("  abc123\n"), 0o600); err != nil {
			t.Fatalf("writing token file: %v", err)
		}

		buffer, err := ReadFromPath(path)
		if err != nil {
			t.Fatalf("ReadFromPath failed: %v", err)
		}
		defer buffer.Close()

		if buffer.String() != "abc123" {
			t.Errorf("unexpected token: %q", buffer.String())
		}
	})

	t.Run("whitespace-only file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("  \n\t"), 0o600); err != nil {
			t.Fatalf("writing token file: %v", err)
		}

		if _, err := ReadFromPath(path); err == nil {
			t.Fatal("expected error for empty secret")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFromPath(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
