// Package memberid generates the human-shareable member identifiers
// used as the QR payload and as the join key to the remote record.
package memberid

import (
	"crypto/rand"
	"regexp"
)

// Prefix precedes every member identifier.
const Prefix = "DL-"

// suffixLen is the number of random characters after the prefix.
const suffixLen = 6

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var pattern = regexp.MustCompile(`^DL-[A-Z0-9]{6}$`)

// New returns a fresh identifier of the form DL-XXXXXX, where each X is
// an uppercase base-36 character. Uniqueness is not checked here: the
// remote store's key constraint is the only collision backstop.
func New() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return Prefix + string(buf)
}

// Valid reports whether s is a well-formed member identifier.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
