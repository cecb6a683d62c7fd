package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key names a cache entry as "kind:digest", where digest covers parts in
// order. The registry fetcher keys responses with Key("url", url), so a
// URL of any length maps to a fixed-size key that is safe as a file name.
func Key(kind string, parts ...string) string {
	// NUL cannot occur in a URL, so ("a", "bc") and ("ab", "c") differ.
	return kind + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash returns the hex SHA-256 digest of data. FileCache uses it to turn
// keys into entry file names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
