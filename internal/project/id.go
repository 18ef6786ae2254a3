// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package project

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// idBytes is the digest prefix kept for identifiers.
const idBytes = 16

// digest hashes parts with a zero byte between them so ("ab","c") and
// ("a","bc") differ.
func digest(parts ...string) string {
	h := blake3.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:idBytes])
}

// Digest exposes the identifier hash for callers that scope IDs by owner.
func Digest(parts ...string) string { return digest(parts...) }
