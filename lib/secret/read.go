// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadFromPath loads the API token from a file, or from stdin when path
// is "-". Surrounding whitespace is stripped, so a trailing newline in
// the token file is harmless. The cleartext read from the source is
// zeroed once the token has been copied into the protected buffer.
func ReadFromPath(path string) (*Buffer, error) {
	raw, source, err := readTokenSource(path)
	if err != nil {
		return nil, err
	}
	defer Zero(raw)

	token := bytes.TrimSpace(raw)
	if len(token) == 0 {
		return nil, fmt.Errorf("secret: %s holds no token", source)
	}
	return NewFromBytes(token)
}

// readTokenSource returns the raw token bytes and a human-readable name
// for the source, for error messages.
func readTokenSource(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(io.LimitReader(os.Stdin, 4096))
		if err != nil {
			return nil, "", fmt.Errorf("secret: reading token from stdin: %w", err)
		}
		return data, "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("secret: reading token file: %w", err)
	}
	return data, fmt.Sprintf("token file %s", path), nil
}
