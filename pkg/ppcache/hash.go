package ppcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/relsqui/prettydoc/pkg/pp"
)

// Hash computes a SHA-256 hash of the input data, returned as a 64-character
// hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RenderKey builds the cache key for rendering docHash at width columns with
// the given EOL style. docHash is assumed to already uniquely identify the
// document (the render command and the server pass Hash of the raw docspec
// source).
func RenderKey(docHash string, width int, eol pp.EOL) string {
	return fmt.Sprintf("render:%s:%d:%d", docHash, width, int(eol))
}
