package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string for use as a record key. ULIDs sort
// lexicographically by creation time, which keeps keys unique without a
// coordination step.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
