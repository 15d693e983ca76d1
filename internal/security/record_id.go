package security

import (
	"fmt"
	"strconv"
	"time"
)

const recordIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const recordIDSuffixLength = 6

// NewRecordID builds a caller-prefixed id from the current time with a
// random tiebreaker, e.g. "meal-1693412345678-x3k9q2". Collisions are
// avoided within a session but not formally guaranteed unique.
func NewRecordID(prefix string) string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix, err := RandomString(recordIDSuffixLength, recordIDAlphabet)
	if err != nil {
		// crypto/rand failing means the host is broken; fall back to
		// the time component alone rather than aborting a save.
		return fmt.Sprintf("%s-%s", prefix, millis)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, millis, suffix)
}
