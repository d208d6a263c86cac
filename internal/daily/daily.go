// internal/daily/daily.go
//
// "Number of the day" support.
// Every player using the same salt on the same UTC date gets the same
// sequence of targets: the date key and salt are run through HKDF-SHA256
// and the result seeds a random.Seeded source.

package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"
)

// info binds derived seeds to this use so the salt can be shared safely.
const info = "numguess/daily-target"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for the date using HKDF(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) uint64 {
	r := hkdf.New(sha256.New, []byte(DateKey(date)), []byte(salt), []byte(info))
	var b [8]byte
	// HKDF-SHA256 can emit far more than 8 bytes; ReadFull cannot fail here.
	_, _ = io.ReadFull(r, b[:])
	return binary.BigEndian.Uint64(b[:])
}
